package handlers

import (
	"net/http"

	"github.com/albertsama/portfolio-api/internal/models"
	"github.com/albertsama/portfolio-api/internal/services"
	"github.com/gin-gonic/gin"
)

// serverErrorMessage is the fixed opaque message for dispatch failures.
// Transport diagnostics stay in the server log, never in the response.
const serverErrorMessage = "Erreur serveur"

type ContactHandler struct {
	service services.ContactServiceInterface
}

func NewContactHandler(service services.ContactServiceInterface) *ContactHandler {
	return &ContactHandler{service: service}
}

// SubmitContact handles POST /contact.
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// A malformed body becomes an empty submission: it falls into
		// the required-fields rejection with the fixed message instead
		// of gin's binding error shape.
		attachError(c, err)
		req = models.ContactRequest{}
	}

	resp, err := h.service.SubmitContactForm(c.Request.Context(), &req)
	if err != nil {
		attachError(c, err)
		c.JSON(http.StatusInternalServerError, models.ContactResponse{
			Success: false,
			Error:   serverErrorMessage,
		})
		return
	}

	if !resp.Success {
		c.JSON(http.StatusBadRequest, resp)
		return
	}

	c.JSON(http.StatusOK, resp)
}
