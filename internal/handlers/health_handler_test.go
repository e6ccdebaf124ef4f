package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/albertsama/portfolio-api/internal/handlers"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestHealthHandler_Healthcheck(t *testing.T) {
	tests := []struct {
		name             string
		mailerConfigured bool
		wantStatus       int
	}{
		{name: "mailer configured", mailerConfigured: true, wantStatus: http.StatusOK},
		{name: "mailer not configured", mailerConfigured: false, wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			handler := handlers.NewHealthHandler(func() bool { return tt.mailerConfigured })

			router := gin.New()
			router.GET("/healthcheck", handler.Healthcheck)

			req := httptest.NewRequest("GET", "/healthcheck", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
