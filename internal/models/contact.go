package models

// ContactRequest represents a contact form submission. No binding tags:
// missing fields must default to empty strings and be rejected with the
// fixed message, not gin's validation error shape.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Budget  string `json:"budget"`
	Message string `json:"message"`
	// Website is the honeypot. Humans never see the field; any
	// non-blank value marks the submission as automated.
	Website string `json:"website"`
}

// ContactResponse represents the acknowledgment sent back to the form.
// Spam keeps the success shape (plus Ignored) so bots cannot tell
// rejection from acceptance.
type ContactResponse struct {
	Success bool   `json:"success"`
	Ignored bool   `json:"ignored,omitempty"`
	Error   string `json:"error,omitempty"`
}
