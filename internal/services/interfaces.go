package services

import (
	"context"

	"github.com/albertsama/portfolio-api/internal/models"
)

// ContactServiceInterface defines the interface for contact form operations
type ContactServiceInterface interface {
	SubmitContactForm(ctx context.Context, req *models.ContactRequest) (*models.ContactResponse, error)
}
