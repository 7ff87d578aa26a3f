package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	leaseMin = time.Date(1960, 1, 1, 0, 0, 0, 0, time.UTC)
	leaseMax = time.Date(2022, 2, 1, 0, 0, 0, 0, time.UTC)
)

func TestCatalog_Allows(t *testing.T) {
	c, err := NewCatalog([]string{"linear_regression"}, []string{"BEDOK"}, []string{"Model A"}, []string{"01 TO 03"}, leaseMin, leaseMax)
	require.NoError(t, err)

	assert.True(t, c.Allows(FieldModel, "linear_regression"))
	assert.True(t, c.Allows(FieldTown, "BEDOK"))
	assert.False(t, c.Allows(FieldTown, "bedok"))
	assert.True(t, c.Allows(FieldFlatModel, "Model A"))
	assert.False(t, c.Allows(FieldStoreyRange, "04 TO 06"))
	assert.True(t, c.Allows(FieldFloorAreaSqm, "anything"))
}

func TestNewCatalog_RejectsEmptyList(t *testing.T) {
	_, err := NewCatalog([]string{"linear_regression"}, nil, []string{"Model A"}, []string{"01 TO 03"}, leaseMin, leaseMax)
	assert.ErrorIs(t, err, ErrEmptyCatalog)
}

func TestNewCatalog_RejectsInvertedLeaseWindow(t *testing.T) {
	_, err := NewCatalog([]string{"m"}, []string{"t"}, []string{"f"}, []string{"s"}, leaseMax, leaseMin)
	assert.Error(t, err)
}

func TestPredictionRequest_Inputs(t *testing.T) {
	req := PredictionRequest{FloorAreaSqm: 67, LeaseCommenceDate: time.Date(1979, 7, 15, 0, 0, 0, 0, time.UTC)}

	assert.Equal(t, NumericInputs{FloorAreaSqm: 67, LeaseYear: 1979}, req.Inputs())
	assert.False(t, req.Ranged())
}
