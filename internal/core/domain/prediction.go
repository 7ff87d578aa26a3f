package domain

import "time"

// Request field names, shared by the query string and the form body.
const (
	FieldModel             = "ml_model"
	FieldTown              = "town"
	FieldStoreyRange       = "storey_range"
	FieldFlatModel         = "flat_model"
	FieldFloorAreaSqm      = "floor_area_sqm"
	FieldLeaseCommenceDate = "lease_commence_date"
	FieldMonthStart        = "month_start"
	FieldMonthEnd          = "month_end"
)

// DateLayout is the canonical wire format for lease commencement dates.
const DateLayout = "2006-01-02"

// MonthLayout is the format of stored month ordinal names.
const MonthLayout = "2006-01"

// PredictionRequest is a parsed price query. MonthStart and MonthEnd are
// empty for a single-point prediction.
type PredictionRequest struct {
	Model             string
	Town              string
	StoreyRange       string
	FlatModel         string
	FloorAreaSqm      float64
	LeaseCommenceDate time.Time
	MonthStart        string
	MonthEnd          string
}

// Ranged reports whether the request asks for a monthly series.
func (r *PredictionRequest) Ranged() bool {
	return r.MonthStart != "" || r.MonthEnd != ""
}

// Query returns the coefficient lookup keys for the request.
func (r *PredictionRequest) Query() CoefficientQuery {
	return CoefficientQuery{
		Model:       r.Model,
		Town:        r.Town,
		FlatModel:   r.FlatModel,
		StoreyRange: r.StoreyRange,
		MonthStart:  r.MonthStart,
		MonthEnd:    r.MonthEnd,
	}
}

// Inputs returns the continuous features of the request.
func (r *PredictionRequest) Inputs() NumericInputs {
	return NumericInputs{
		FloorAreaSqm: r.FloorAreaSqm,
		LeaseYear:    LeaseYear(r.LeaseCommenceDate),
	}
}

// CoefficientQuery selects the joined coefficient rows for one request.
type CoefficientQuery struct {
	Model       string
	Town        string
	FlatModel   string
	StoreyRange string
	MonthStart  string
	MonthEnd    string
}

// Ranged reports whether the query filters on a month range.
func (q CoefficientQuery) Ranged() bool {
	return q.MonthStart != "" || q.MonthEnd != ""
}

// OrdinalTerm is an ordinal coefficient joined with the model's per-position
// weight: the term contributes Multiplier * Map.
type OrdinalTerm struct {
	Name       string  `json:"name"`
	Multiplier float64 `json:"multiplier"`
	Map        float64 `json:"map"`
}

// PredictionRow is one result of joining a model with its town, flat model,
// storey range and (optionally) month coefficients.
type PredictionRow struct {
	Intercept         float64      `json:"intercept_map"`
	Town              float64      `json:"town_map"`
	FlatModel         float64      `json:"flat_model_map"`
	FloorAreaSqm      float64      `json:"floor_area_sqm_map"`
	LeaseCommenceDate float64      `json:"lease_commence_date_map"`
	Month             *OrdinalTerm `json:"month,omitempty"`
	StoreyRange       *OrdinalTerm `json:"storey_range,omitempty"`
}

// NumericInputs are the continuous features multiplied into their weights.
type NumericInputs struct {
	FloorAreaSqm float64
	LeaseYear    float64
}

// PredictionResult is a scored row. Label is the month name for ranged
// requests and empty otherwise.
type PredictionResult struct {
	Label          string
	PredictedValue float64
}

// LeaseYear encodes a lease commencement date as its calendar year, the
// granularity the stored lease coefficient was fit on.
func LeaseYear(t time.Time) float64 {
	return float64(t.Year())
}
