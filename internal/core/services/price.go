package services

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"resale-price-service/internal/core/domain"
	ports "resale-price-service/internal/core/ports/output"
	"resale-price-service/internal/metrics"
)

// PriceService fetches the coefficient rows for a validated request and
// scores each of them.
type PriceService struct {
	repo ports.CoefficientRepository
}

func NewPriceService(repo ports.CoefficientRepository) *PriceService {
	return &PriceService{repo: repo}
}

// Predict returns one result per matching coefficient row, in the order the
// repository returned them. No matching rows is not an error.
func (s *PriceService) Predict(ctx context.Context, req *domain.PredictionRequest) ([]domain.PredictionResult, error) {
	start := time.Now()
	rows, err := s.repo.FetchRows(ctx, req.Query())
	metrics.CoefficientFetchLatency.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.CoefficientFetchErrors.Inc()
		return nil, err
	}

	if len(rows) == 0 {
		metrics.EmptyPredictions.Inc()
		log.WithFields(log.Fields{
			"model":        req.Model,
			"town":         req.Town,
			"flat_model":   req.FlatModel,
			"storey_range": req.StoreyRange,
			"month_start":  req.MonthStart,
			"month_end":    req.MonthEnd,
		}).Debug("no coefficient rows matched")
		return []domain.PredictionResult{}, nil
	}

	inputs := req.Inputs()
	results := make([]domain.PredictionResult, 0, len(rows))
	for _, row := range rows {
		results = append(results, Score(row, inputs))
	}
	metrics.PredictionsServed.Add(float64(len(results)))

	return results, nil
}
