package services

import (
	"context"
	"errors"
	"time"

	"github.com/albertsama/portfolio-api/config"
	"github.com/albertsama/portfolio-api/internal/models"
	"github.com/albertsama/portfolio-api/internal/notification"
	"github.com/albertsama/portfolio-api/pkg/logger"
	"github.com/albertsama/portfolio-api/pkg/mailer"
	"github.com/albertsama/portfolio-api/pkg/metrics"
	"go.uber.org/zap"
)

// requiredFieldsMessage is the fixed client-facing rejection message.
const requiredFieldsMessage = "Nom, email et message sont requis."

// ContactService handles contact form submissions: spam gate, required
// field validation, notification rendering and mail dispatch.
type ContactService struct {
	mailer      mailer.Mailer
	sendTimeout time.Duration
	now         func() time.Time
}

// NewContactService creates a new contact service instance
func NewContactService(m mailer.Mailer, cfg *config.Config) *ContactService {
	return &ContactService{
		mailer:      m,
		sendTimeout: time.Duration(cfg.SMTP.SendTimeoutSeconds) * time.Second,
		now:         time.Now,
	}
}

// SubmitContactForm runs the full pipeline for one submission. The
// returned error is a transport failure only; validation outcomes are
// carried in the response so the handler maps them to the right status.
// It does not return until the dispatch attempt resolves: the form's
// acknowledgment reflects the true delivery outcome.
func (s *ContactService) SubmitContactForm(ctx context.Context, req *models.ContactRequest) (*models.ContactResponse, error) {
	switch err := validate(req); {
	case errors.Is(err, ErrSpamSubmission):
		metrics.ContactFormSubmissions.WithLabelValues("spam").Inc()
		logger.Info("Contact submission ignored (honeypot filled)")
		// Success shape on purpose: never reveal spam detection
		return &models.ContactResponse{Success: true, Ignored: true}, nil

	case errors.Is(err, ErrMissingRequiredFields):
		metrics.ContactFormSubmissions.WithLabelValues("invalid").Inc()
		return &models.ContactResponse{Success: false, Error: requiredFieldsMessage}, nil
	}

	doc := notification.Render(req, s.now())

	sendCtx, cancel := context.WithTimeout(ctx, s.sendTimeout)
	defer cancel()

	msg := &mailer.Message{
		FromName: req.Name,
		ReplyTo:  req.Email,
		Subject:  buildSubject(req),
		Text:     doc.Text,
		HTML:     doc.HTML,
	}

	if err := s.mailer.Send(sendCtx, msg); err != nil {
		metrics.ContactFormSubmissions.WithLabelValues("error").Inc()
		logger.Error("Failed to dispatch contact notification", zap.Error(err))
		return nil, err
	}

	metrics.ContactFormSubmissions.WithLabelValues("sent").Inc()
	logger.Info("Contact notification dispatched")
	return &models.ContactResponse{Success: true}, nil
}

// buildSubject prefixes the owner notification subject with the
// submitter's subject when present.
func buildSubject(req *models.ContactRequest) string {
	subject := "Nouveau message du site de " + req.Name
	if req.Subject != "" {
		subject = req.Subject + " — " + subject
	}
	return subject
}
