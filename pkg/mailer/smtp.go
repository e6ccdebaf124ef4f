package mailer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/albertsama/portfolio-api/pkg/metrics"
	"gopkg.in/gomail.v2"
)

// SMTPMailer delivers messages through an authenticated SMTP relay.
// The authenticated account is also the envelope/From address: Gmail
// and most relays reject mail whose From does not match the
// authenticated user, so the submitter only appears as the display
// name and in Reply-To.
type SMTPMailer struct {
	dialer   *gomail.Dialer
	account  string // authenticated sending address
	receiver string // site owner, destination and reply-to fallback
}

// NewSMTPMailer creates a mailer for the given relay. The dialer opens
// a fresh connection per DialAndSend call, so one SMTPMailer is safe
// for concurrent use.
func NewSMTPMailer(host string, port int, user, pass, receiver string) *SMTPMailer {
	return &SMTPMailer{
		dialer:   gomail.NewDialer(host, port, user, pass),
		account:  user,
		receiver: receiver,
	}
}

// Send delivers msg, honoring ctx cancellation. A single attempt only:
// failures are reported, never retried.
func (m *SMTPMailer) Send(ctx context.Context, msg *Message) error {
	start := time.Now()

	done := make(chan error, 1)
	gm := m.build(msg)
	go func() {
		done <- m.dialer.DialAndSend(gm)
	}()

	var err error
	select {
	case err = <-done:
	case <-ctx.Done():
		// The dial goroutine finishes on its own; the buffered channel
		// lets it exit without a reader.
		err = ctx.Err()
	}

	status := "success"
	if err != nil {
		status = "error"
	}
	metrics.MailDeliveryTotal.WithLabelValues(status).Inc()
	metrics.MailDeliveryDuration.WithLabelValues(status).Observe(metrics.MeasureDuration(start))

	if err != nil {
		return fmt.Errorf("smtp delivery failed: %w", err)
	}
	return nil
}

func (m *SMTPMailer) build(msg *Message) *gomail.Message {
	gm := gomail.NewMessage()
	gm.SetAddressHeader("From", m.account, msg.FromName)
	gm.SetHeader("To", m.receiver)

	// Reply never fails even when the submitter address is blank or junk
	replyTo := strings.TrimSpace(msg.ReplyTo)
	if replyTo == "" {
		replyTo = m.receiver
	}
	gm.SetHeader("Reply-To", replyTo)

	gm.SetHeader("Subject", msg.Subject)
	gm.SetBody("text/plain", msg.Text)
	gm.AddAlternative("text/html", msg.HTML)
	return gm
}
