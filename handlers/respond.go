package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"triviaroom/models"
)

// respondError maps the application error taxonomy onto HTTP statuses.
// Unexpected failures (store errors and the like) surface as a generic 500.
func respondError(c *gin.Context, err error) {
	switch models.KindOf(err) {
	case models.ErrValidation, models.ErrInvalidState, models.ErrConflict, models.ErrCapacity:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case models.ErrNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case models.ErrForbidden:
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
