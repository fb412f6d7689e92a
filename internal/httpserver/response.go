package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JustAsh123/shopalot/internal/domain"
)

// respondError translates the domain error taxonomy into HTTP statuses.
// Storage failures are reported as 502 without leaking the cause.
func respondError(c *gin.Context, err error) {
	var storageErr *domain.StorageError
	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrVersionConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "cart was modified concurrently, please retry"})
	case errors.As(err, &storageErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": "storage unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
