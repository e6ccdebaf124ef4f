package services

import (
	"errors"
	"strings"

	"github.com/albertsama/portfolio-api/internal/models"
)

var (
	// ErrSpamSubmission marks a honeypot hit. Callers must keep
	// responding with the success shape so bots never learn they were
	// detected.
	ErrSpamSubmission = errors.New("honeypot field filled")

	// ErrMissingRequiredFields is returned when name, email or message
	// is blank after trimming.
	ErrMissingRequiredFields = errors.New("name, email and message are required")
)

// validate applies the spam gate, then the required-field checks.
// Email format is deliberately not checked server-side; the browser
// form does a best-effort format check.
func validate(req *models.ContactRequest) error {
	if strings.TrimSpace(req.Website) != "" {
		return ErrSpamSubmission
	}
	if strings.TrimSpace(req.Name) == "" ||
		strings.TrimSpace(req.Email) == "" ||
		strings.TrimSpace(req.Message) == "" {
		return ErrMissingRequiredFields
	}
	return nil
}
