package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"resale-price-service/internal/core/domain"
)

// MockCoefficientRepo is a mock of CoefficientRepository.
type MockCoefficientRepo struct {
	mock.Mock
}

func (m *MockCoefficientRepo) FetchRows(ctx context.Context, q domain.CoefficientQuery) ([]domain.PredictionRow, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PredictionRow), args.Error(1)
}

// MonthRow builds a ranged coefficient row with unit storey weights.
func MonthRow(month string, multiplier float64) domain.PredictionRow {
	return domain.PredictionRow{
		Intercept:         -5000000,
		Town:              25000,
		FlatModel:         10000,
		FloorAreaSqm:      4500,
		LeaseCommenceDate: 2600,
		Month:             &domain.OrdinalTerm{Name: month, Multiplier: multiplier, Map: 500},
		StoreyRange:       &domain.OrdinalTerm{Name: "07 TO 09", Multiplier: 3, Map: 8000},
	}
}
