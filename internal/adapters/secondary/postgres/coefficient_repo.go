package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"resale-price-service/internal/core/domain"
	ports "resale-price-service/internal/core/ports/output"
)

// Schema consumed by this repository (populated out of band):
//
//	ml_models(id, name, intercept_map, floor_area_sqm_map,
//	          lease_commence_date_map, month_map, storey_range_map)
//	one_hot_coefficients(ml_model_id, category, name, value)
//	    category IN ('town', 'flat_model'), unique per (ml_model_id, category, name)
//	ordinal_coefficients(category, name, multiplier)
//	    category IN ('month', 'storey_range'), shared by all models

const continuousColumns = `m.intercept_map::float8, town.value::float8, fm.value::float8,
			   m.floor_area_sqm_map::float8, m.lease_commence_date_map::float8`

const baseJoin = `
		FROM ml_models m
		JOIN one_hot_coefficients town
			ON town.ml_model_id = m.id AND town.category = 'town'
		JOIN one_hot_coefficients fm
			ON fm.ml_model_id = m.id AND fm.category = 'flat_model'
		JOIN ordinal_coefficients storey
			ON storey.category = 'storey_range'`

const rangedQuery = `
		SELECT ` + continuousColumns + `,
			   month.name, month.multiplier::float8, m.month_map::float8,
			   storey.name, storey.multiplier::float8, m.storey_range_map::float8` + baseJoin + `
		JOIN ordinal_coefficients month
			ON month.category = 'month'
		WHERE m.name = $1 AND town.name = $2 AND fm.name = $3 AND storey.name = $4
			AND month.name BETWEEN $5 AND $6
		ORDER BY month.name ASC
	`

// The single-point variant filters on storey range without scoring it.
const pointQuery = `
		SELECT ` + continuousColumns + baseJoin + `
		WHERE m.name = $1 AND town.name = $2 AND fm.name = $3 AND storey.name = $4
	`

type coefficientRepo struct {
	pool *pgxpool.Pool
}

func NewCoefficientRepository(pool *pgxpool.Pool) ports.CoefficientRepository {
	return &coefficientRepo{pool: pool}
}

func (r *coefficientRepo) FetchRows(ctx context.Context, q domain.CoefficientQuery) ([]domain.PredictionRow, error) {
	query, args := buildCoefficientQuery(q)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query coefficients: %w", err)
	}
	defer rows.Close()

	result := []domain.PredictionRow{}
	for rows.Next() {
		row, err := scanPredictionRow(rows, q.Ranged())
		if err != nil {
			return nil, fmt.Errorf("scan coefficient row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate coefficient rows: %w", err)
	}
	return result, nil
}

func buildCoefficientQuery(q domain.CoefficientQuery) (string, []interface{}) {
	args := []interface{}{q.Model, q.Town, q.FlatModel, q.StoreyRange}
	if q.Ranged() {
		return rangedQuery, append(args, q.MonthStart, q.MonthEnd)
	}
	return pointQuery, args
}

func scanPredictionRow(rows pgx.Rows, ranged bool) (domain.PredictionRow, error) {
	var row domain.PredictionRow
	if !ranged {
		err := rows.Scan(&row.Intercept, &row.Town, &row.FlatModel,
			&row.FloorAreaSqm, &row.LeaseCommenceDate)
		return row, err
	}

	var month, storey domain.OrdinalTerm
	err := rows.Scan(&row.Intercept, &row.Town, &row.FlatModel,
		&row.FloorAreaSqm, &row.LeaseCommenceDate,
		&month.Name, &month.Multiplier, &month.Map,
		&storey.Name, &storey.Multiplier, &storey.Map)
	if err != nil {
		return row, err
	}
	row.Month = &month
	row.StoreyRange = &storey
	return row, nil
}
