package mailer

import "context"

// Message is a provider-agnostic outbound notification. Text is the
// primary body; HTML is delivered as an alternative representation of
// the same content.
type Message struct {
	FromName string // visible sender display name
	ReplyTo  string // where a reply should go; implementations fall back to the owner address when blank
	Subject  string
	Text     string
	HTML     string
}

// Mailer hands a composed message to an external mail transport.
type Mailer interface {
	Send(ctx context.Context, msg *Message) error
}
