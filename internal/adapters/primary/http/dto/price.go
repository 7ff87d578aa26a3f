package dto

import "resale-price-service/internal/core/domain"

// SeriesPoint is one month of a ranged prediction.
type SeriesPoint struct {
	Labels string  `json:"labels"`
	Data   float64 `json:"data"`
}

// PriceRow is one single-point prediction.
type PriceRow struct {
	PredictedValue float64 `json:"predicted_value"`
}

func ToSeries(results []domain.PredictionResult) []SeriesPoint {
	points := make([]SeriesPoint, 0, len(results))
	for _, r := range results {
		points = append(points, SeriesPoint{Labels: r.Label, Data: r.PredictedValue})
	}
	return points
}

func ToPriceRows(results []domain.PredictionResult) []PriceRow {
	rows := make([]PriceRow, 0, len(results))
	for _, r := range results {
		rows = append(rows, PriceRow{PredictedValue: r.PredictedValue})
	}
	return rows
}
