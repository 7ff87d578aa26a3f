package handlers

import (
	"net/http"

	"resale-price-service/internal/core/services"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	priceSvc  *services.PriceService
	validator *services.Validator
}

func New(priceSvc *services.PriceService, validator *services.Validator) *Handler {
	return &Handler{
		priceSvc:  priceSvc,
		validator: validator,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	// Price predictions
	r.GET("/prices", h.GetPrices)
	r.POST("/prices", h.PostPrices)
}

// NotFound answers every unmatched route.
func NotFound(c *gin.Context) {
	c.String(http.StatusNotFound, "Not found")
}
