package services

import (
	"math"
	"strconv"
	"strings"
	"time"

	"resale-price-service/internal/core/domain"
)

// Fields carries raw request parameters keyed by field name.
type Fields map[string]string

// Get returns the trimmed value for key.
func (f Fields) Get(key string) string {
	return strings.TrimSpace(f[key])
}

// Mode selects how strictly a request is validated.
type Mode int

const (
	// ModeLenient checks presence and types only. Unknown categories are left
	// to the coefficient lookup, which returns no rows for them.
	ModeLenient Mode = iota
	// ModeStrict additionally checks allow-lists and ranges and always
	// requires a month range.
	ModeStrict
)

var requiredFields = []string{
	domain.FieldModel,
	domain.FieldTown,
	domain.FieldStoreyRange,
	domain.FieldFlatModel,
	domain.FieldFloorAreaSqm,
	domain.FieldLeaseCommenceDate,
}

var monthFields = []string{domain.FieldMonthStart, domain.FieldMonthEnd}

var fieldLabels = map[string]string{
	domain.FieldModel:             "Model",
	domain.FieldTown:              "Town",
	domain.FieldStoreyRange:       "Storey Range",
	domain.FieldFlatModel:         "Flat Model",
	domain.FieldFloorAreaSqm:      "Floor Area Sqm",
	domain.FieldLeaseCommenceDate: "Lease Commence Date",
	domain.FieldMonthStart:        "Month Start",
	domain.FieldMonthEnd:          "Month End",
}

var leaseDateLayouts = []string{domain.DateLayout, "2006-01", "2006"}

// Validator turns raw request fields into a PredictionRequest. The first
// failing field short-circuits validation.
type Validator struct {
	catalog *domain.Catalog
}

func NewValidator(catalog *domain.Catalog) *Validator {
	return &Validator{catalog: catalog}
}

func (v *Validator) Validate(fields Fields, mode Mode) (*domain.PredictionRequest, error) {
	ranged := mode == ModeStrict ||
		fields.Get(domain.FieldMonthStart) != "" ||
		fields.Get(domain.FieldMonthEnd) != ""

	required := requiredFields
	if ranged {
		required = append(append([]string{}, requiredFields...), monthFields...)
	}
	for _, field := range required {
		if fields.Get(field) == "" {
			return nil, domain.NewValidationError(field, "Missing "+fieldLabels[field])
		}
	}

	req := &domain.PredictionRequest{
		Model:       fields.Get(domain.FieldModel),
		Town:        fields.Get(domain.FieldTown),
		StoreyRange: fields.Get(domain.FieldStoreyRange),
		FlatModel:   fields.Get(domain.FieldFlatModel),
	}
	if ranged {
		req.MonthStart = fields.Get(domain.FieldMonthStart)
		req.MonthEnd = fields.Get(domain.FieldMonthEnd)
	}

	if mode == ModeStrict {
		for _, field := range []string{domain.FieldModel, domain.FieldTown, domain.FieldStoreyRange, domain.FieldFlatModel} {
			if !v.catalog.Allows(field, fields.Get(field)) {
				return nil, domain.NewValidationError(field, "Invalid "+fieldLabels[field]+": "+fields.Get(field))
			}
		}
	}

	area, err := strconv.ParseFloat(fields.Get(domain.FieldFloorAreaSqm), 64)
	if err != nil || math.IsNaN(area) || math.IsInf(area, 0) {
		return nil, domain.NewValidationError(domain.FieldFloorAreaSqm, "Invalid Floor Area Sqm: must be a number")
	}
	if mode == ModeStrict && !(area > 0) {
		return nil, domain.NewValidationError(domain.FieldFloorAreaSqm, "Invalid Floor Area Sqm: must be greater than 0")
	}
	req.FloorAreaSqm = area

	lease, err := parseLeaseDate(fields.Get(domain.FieldLeaseCommenceDate))
	if err != nil {
		return nil, domain.NewValidationError(domain.FieldLeaseCommenceDate, "Invalid Lease Commence Date: must be a date (YYYY-MM-DD)")
	}
	if mode == ModeStrict && (lease.Before(v.catalog.LeaseDateMin) || lease.After(v.catalog.LeaseDateMax)) {
		return nil, domain.NewValidationError(domain.FieldLeaseCommenceDate,
			"Invalid Lease Commence Date: must be between "+
				v.catalog.LeaseDateMin.Format(domain.DateLayout)+" and "+
				v.catalog.LeaseDateMax.Format(domain.DateLayout))
	}
	req.LeaseCommenceDate = lease

	if mode == ModeStrict {
		if err := validateMonthRange(req.MonthStart, req.MonthEnd); err != nil {
			return nil, err
		}
	}

	return req, nil
}

func parseLeaseDate(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range leaseDateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func validateMonthRange(start, end string) error {
	if _, err := time.Parse(domain.MonthLayout, start); err != nil {
		return domain.NewValidationError(domain.FieldMonthStart, "Invalid Month Start: must be YYYY-MM")
	}
	if _, err := time.Parse(domain.MonthLayout, end); err != nil {
		return domain.NewValidationError(domain.FieldMonthEnd, "Invalid Month End: must be YYYY-MM")
	}
	// Stored month names are zero-padded, so lexical order is calendar order.
	if start > end {
		return domain.NewValidationError(domain.FieldMonthEnd, "Invalid Month End: "+domain.ErrInvalidMonthRange.Error())
	}
	return nil
}
