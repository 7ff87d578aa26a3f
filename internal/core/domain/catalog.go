package domain

import (
	"fmt"
	"time"
)

// Catalog holds the values each categorical field may take and the accepted
// lease commencement window. It is built once at startup and never mutated.
type Catalog struct {
	models       map[string]struct{}
	towns        map[string]struct{}
	flatModels   map[string]struct{}
	storeyRanges map[string]struct{}

	LeaseDateMin time.Time
	LeaseDateMax time.Time
}

func NewCatalog(models, towns, flatModels, storeyRanges []string, leaseMin, leaseMax time.Time) (*Catalog, error) {
	lists := map[string][]string{
		FieldModel:       models,
		FieldTown:        towns,
		FieldFlatModel:   flatModels,
		FieldStoreyRange: storeyRanges,
	}
	for field, values := range lists {
		if len(values) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrEmptyCatalog, field)
		}
	}
	if leaseMax.Before(leaseMin) {
		return nil, fmt.Errorf("lease date window is inverted: %s > %s",
			leaseMin.Format(DateLayout), leaseMax.Format(DateLayout))
	}

	return &Catalog{
		models:       toSet(models),
		towns:        toSet(towns),
		flatModels:   toSet(flatModels),
		storeyRanges: toSet(storeyRanges),
		LeaseDateMin: leaseMin,
		LeaseDateMax: leaseMax,
	}, nil
}

// Allows reports whether value is a member of the allow-list for field.
// Fields without an allow-list always pass.
func (c *Catalog) Allows(field, value string) bool {
	var set map[string]struct{}
	switch field {
	case FieldModel:
		set = c.models
	case FieldTown:
		set = c.towns
	case FieldFlatModel:
		set = c.flatModels
	case FieldStoreyRange:
		set = c.storeyRanges
	default:
		return true
	}
	_, ok := set[value]
	return ok
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
