package services

import (
	"math"

	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/floats"

	"resale-price-service/internal/core/domain"
)

// Score evaluates the linear model for one coefficient row:
//
//	intercept + month.mult*month.map + town + storey.mult*storey.map
//	  + floor_area*floor_area_map + flat_model + lease_year*lease_map
//
// Ordinal terms absent from the row are omitted. The result is clamped to be
// non-negative and rounded to two decimal places.
func Score(row domain.PredictionRow, in domain.NumericInputs) domain.PredictionResult {
	features := []float64{1, 1, 1, in.FloorAreaSqm, in.LeaseYear}
	weights := []float64{row.Intercept, row.Town, row.FlatModel, row.FloorAreaSqm, row.LeaseCommenceDate}

	var label string
	if row.Month != nil {
		features = append(features, row.Month.Multiplier)
		weights = append(weights, row.Month.Map)
		label = row.Month.Name
	}
	if row.StoreyRange != nil {
		features = append(features, row.StoreyRange.Multiplier)
		weights = append(weights, row.StoreyRange.Map)
	}

	return domain.PredictionResult{
		Label:          label,
		PredictedValue: clampRound(floats.Dot(features, weights)),
	}
}

func clampRound(raw float64) float64 {
	switch {
	case math.IsNaN(raw), raw <= 0:
		return 0
	case math.IsInf(raw, 1):
		raw = math.MaxFloat64
	}
	return decimal.NewFromFloat(raw).Round(2).InexactFloat64()
}
