package ports

import (
	"context"

	"resale-price-service/internal/core/domain"
)

// CoefficientRepository reads joined regression coefficients. An unknown
// category combination yields zero rows and a nil error.
type CoefficientRepository interface {
	FetchRows(ctx context.Context, q domain.CoefficientQuery) ([]domain.PredictionRow, error)
}
