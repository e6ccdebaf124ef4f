package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/albertsama/portfolio-api/config"
	"github.com/albertsama/portfolio-api/internal/models"
	"github.com/albertsama/portfolio-api/internal/services"
	"github.com/albertsama/portfolio-api/pkg/mailer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockMailer counts dispatch calls and captures the last message.
type MockMailer struct {
	calls int
	last  *mailer.Message
	err   error
}

func (m *MockMailer) Send(ctx context.Context, msg *mailer.Message) error {
	m.calls++
	m.last = msg
	return m.err
}

func newService(m *MockMailer) *services.ContactService {
	cfg := &config.Config{
		SMTP: config.SMTP{
			User:               "owner@example.com",
			Pass:               "secret",
			Receiver:           "owner@example.com",
			SendTimeoutSeconds: 5,
		},
	}
	return services.NewContactService(m, cfg)
}

func validRequest() *models.ContactRequest {
	return &models.ContactRequest{
		Name:    "Alice",
		Email:   "alice@example.com",
		Subject: "Hello",
		Message: "Hi there",
	}
}

func TestContactService_Honeypot_IgnoredWithoutDispatch(t *testing.T) {
	m := &MockMailer{}
	svc := newService(m)

	req := validRequest()
	req.Website = "http://spam.example"

	resp, err := svc.SubmitContactForm(context.Background(), req)

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.True(t, resp.Ignored)
	assert.Empty(t, resp.Error)
	assert.Equal(t, 0, m.calls, "dispatcher must not be invoked for spam")
}

func TestContactService_MissingRequiredFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.ContactRequest)
	}{
		{name: "blank name", mutate: func(r *models.ContactRequest) { r.Name = "" }},
		{name: "whitespace name", mutate: func(r *models.ContactRequest) { r.Name = "   " }},
		{name: "blank email", mutate: func(r *models.ContactRequest) { r.Email = "" }},
		{name: "blank message", mutate: func(r *models.ContactRequest) { r.Message = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &MockMailer{}
			svc := newService(m)

			req := validRequest()
			tt.mutate(req)

			resp, err := svc.SubmitContactForm(context.Background(), req)

			require.NoError(t, err)
			assert.False(t, resp.Success)
			assert.Equal(t, "Nom, email et message sont requis.", resp.Error)
			assert.Equal(t, 0, m.calls)
		})
	}
}

func TestContactService_DispatchesExactlyOnce(t *testing.T) {
	m := &MockMailer{}
	svc := newService(m)

	resp, err := svc.SubmitContactForm(context.Background(), validRequest())

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.False(t, resp.Ignored)
	require.Equal(t, 1, m.calls)

	assert.Equal(t, "Alice", m.last.FromName)
	assert.Equal(t, "alice@example.com", m.last.ReplyTo)
	assert.Contains(t, m.last.Text, "Nom: Alice")
	assert.Contains(t, m.last.Text, "Email: alice@example.com")
}

func TestContactService_EscapesHTMLBody(t *testing.T) {
	m := &MockMailer{}
	svc := newService(m)

	req := validRequest()
	req.Message = "<script>alert(1)</script>"

	_, err := svc.SubmitContactForm(context.Background(), req)

	require.NoError(t, err)
	require.Equal(t, 1, m.calls)
	assert.NotContains(t, m.last.HTML, "<script>")
	// Plain text stays raw
	assert.Contains(t, m.last.Text, "<script>alert(1)</script>")
}

func TestContactService_SubjectLine(t *testing.T) {
	tests := []struct {
		name    string
		subject string
		want    string
	}{
		{
			name:    "with subject",
			subject: "Projet web",
			want:    "Projet web — Nouveau message du site de Alice",
		},
		{
			name:    "without subject",
			subject: "",
			want:    "Nouveau message du site de Alice",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &MockMailer{}
			svc := newService(m)

			req := validRequest()
			req.Subject = tt.subject

			_, err := svc.SubmitContactForm(context.Background(), req)

			require.NoError(t, err)
			assert.Equal(t, tt.want, m.last.Subject)
		})
	}
}

func TestContactService_TransportFailure(t *testing.T) {
	m := &MockMailer{err: errors.New("smtp delivery failed: 535 bad credentials")}
	svc := newService(m)

	resp, err := svc.SubmitContactForm(context.Background(), validRequest())

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, 1, m.calls, "no retry on transport failure")
}
