package handlers

import (
	"errors"
	"net/http"

	"resale-price-service/internal/core/domain"
	"resale-price-service/internal/metrics"

	"github.com/gin-gonic/gin"
)

// mapDomainError writes err as a plain-text response. Validation failures are
// answered with 200 and the message, which existing clients rely on.
func mapDomainError(c *gin.Context, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		metrics.ValidationRejections.WithLabelValues(ve.Field).Inc()
		c.String(http.StatusOK, ve.Message)

	default:
		_ = c.Error(err)
		c.String(http.StatusInternalServerError, err.Error())
	}
}
