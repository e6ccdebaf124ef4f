package handlers

import (
	"github.com/gin-gonic/gin"
)

// attachError attaches err to the gin context so the observability
// middleware can include the reason in the request log. c.Error()
// returns *gin.Error (not the error interface), so errcheck is
// suppressed intentionally.
func attachError(c *gin.Context, err error) {
	if err != nil {
		_ = c.Error(err) //nolint:errcheck
	}
}
