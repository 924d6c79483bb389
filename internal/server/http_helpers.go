package server

import (
	"errors"
	"net/http"

	"randnd/internal/words"

	"github.com/gin-gonic/gin"
)

func writeError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"error": message,
	})
}

// errorStatus maps render failures to a server error. Upstream word source
// failures are reported as a bad gateway.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, words.ErrSourceUnavailable), errors.Is(err, words.ErrWordCountMismatch):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
