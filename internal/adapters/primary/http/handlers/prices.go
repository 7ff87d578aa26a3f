package handlers

import (
	"net/http"

	"resale-price-service/internal/adapters/primary/http/dto"
	"resale-price-service/internal/core/domain"
	"resale-price-service/internal/core/services"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

var priceFields = []string{
	domain.FieldModel,
	domain.FieldTown,
	domain.FieldStoreyRange,
	domain.FieldFlatModel,
	domain.FieldFloorAreaSqm,
	domain.FieldLeaseCommenceDate,
	domain.FieldMonthStart,
	domain.FieldMonthEnd,
}

// GetPrices answers a query-string request. Categories are not checked
// against the catalog; unknown ones produce an empty result.
func (h *Handler) GetPrices(c *gin.Context) {
	fields := services.Fields{}
	for _, f := range priceFields {
		fields[f] = c.Query(f)
	}
	h.predict(c, fields, services.ModeLenient)
}

// PostPrices answers a form-encoded request, fully validated before any
// lookup. The response is always a monthly series.
func (h *Handler) PostPrices(c *gin.Context) {
	fields := services.Fields{}
	for _, f := range priceFields {
		fields[f] = c.PostForm(f)
	}
	h.predict(c, fields, services.ModeStrict)
}

func (h *Handler) predict(c *gin.Context, fields services.Fields, mode services.Mode) {
	req, err := h.validator.Validate(fields, mode)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	results, err := h.priceSvc.Predict(c.Request.Context(), req)
	if err != nil {
		log.WithError(err).WithField("model", req.Model).Error("predict prices failed")
		mapDomainError(c, err)
		return
	}

	if req.Ranged() {
		c.JSON(http.StatusOK, dto.ToSeries(results))
		return
	}
	c.JSON(http.StatusOK, dto.ToPriceRows(results))
}
