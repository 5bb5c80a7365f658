// Package api contains the Gin handlers for the HTTP surface.
package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/feastbook/backend/internal/service"
)

// respondError maps service errors onto HTTP status codes. Anything that
// is not a known sentinel is an internal store failure and is not leaked
// to the client.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrRecipeNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrAlreadyFavorited):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrPasswordTooShort),
		errors.Is(err, service.ErrNameRequired),
		errors.Is(err, service.ErrNoIngredients),
		errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// respondBindError turns a binding failure into a 400 carrying the joined
// field-error messages.
func respondBindError(c *gin.Context, err error) {
	msg := strings.ReplaceAll(err.Error(), "\n", ", ")
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}
