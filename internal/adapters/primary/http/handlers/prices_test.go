package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"resale-price-service/internal/adapters/primary/http/dto"
	"resale-price-service/internal/adapters/primary/http/middleware"
	"resale-price-service/internal/core/domain"
	"resale-price-service/internal/core/services"
	"resale-price-service/internal/testutil"
)

func setupPriceRouter(t *testing.T) (*testutil.MockCoefficientRepo, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	catalog, err := domain.NewCatalog(
		[]string{"linear_regression"},
		[]string{"ANG MO KIO", "BEDOK"},
		[]string{"Improved", "Model A"},
		[]string{"04 TO 06", "07 TO 09"},
		time.Date(1960, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2022, 2, 1, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)

	repo := new(testutil.MockCoefficientRepo)
	h := New(services.NewPriceService(repo), services.NewValidator(catalog))

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.CORS("*", "/api/"))
	r.NoRoute(NotFound)
	h.RegisterRoutes(r.Group("/api"))

	return repo, r
}

func priceValues() url.Values {
	return url.Values{
		"ml_model":            {"linear_regression"},
		"town":                {"BEDOK"},
		"storey_range":        {"07 TO 09"},
		"flat_model":          {"Model A"},
		"floor_area_sqm":      {"92"},
		"lease_commence_date": {"1985-03-01"},
		"month_start":         {"2020-01"},
		"month_end":           {"2020-03"},
	}
}

func rangedQuery() domain.CoefficientQuery {
	return domain.CoefficientQuery{
		Model: "linear_regression", Town: "BEDOK", FlatModel: "Model A", StoreyRange: "07 TO 09",
		MonthStart: "2020-01", MonthEnd: "2020-03",
	}
}

func threeMonths() []domain.PredictionRow {
	return []domain.PredictionRow{
		testutil.MonthRow("2020-01", 1),
		testutil.MonthRow("2020-02", 2),
		testutil.MonthRow("2020-03", 3),
	}
}

func postForm(r *gin.Engine, values url.Values) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("POST", "/api/prices", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("GET", path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetPrices_Ranged(t *testing.T) {
	repo, r := setupPriceRouter(t)
	repo.On("FetchRows", mock.Anything, rangedQuery()).Return(threeMonths(), nil)

	w := get(r, "/api/prices?"+priceValues().Encode())

	assert.Equal(t, http.StatusOK, w.Code)
	var series []dto.SeriesPoint
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &series))
	require.Len(t, series, 3)
	assert.Equal(t, "2020-01", series[0].Labels)
	assert.Equal(t, "2020-02", series[1].Labels)
	assert.Equal(t, "2020-03", series[2].Labels)
	for _, p := range series {
		assert.GreaterOrEqual(t, p.Data, 0.0)
	}
}

func TestGetPrices_SinglePoint(t *testing.T) {
	repo, r := setupPriceRouter(t)

	values := priceValues()
	values.Del("month_start")
	values.Del("month_end")
	repo.On("FetchRows", mock.Anything, domain.CoefficientQuery{
		Model: "linear_regression", Town: "BEDOK", FlatModel: "Model A", StoreyRange: "07 TO 09",
	}).Return([]domain.PredictionRow{{Intercept: 1000, Town: 0.123}}, nil)

	w := get(r, "/api/prices?"+values.Encode())

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"predicted_value": 1000.12}]`, w.Body.String())
}

func TestGetPrices_MissingTown(t *testing.T) {
	repo, r := setupPriceRouter(t)

	values := priceValues()
	values.Del("town")
	w := get(r, "/api/prices?"+values.Encode())

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Missing Town", w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
	repo.AssertNotCalled(t, "FetchRows", mock.Anything, mock.Anything)
}

func TestGetPrices_UnknownTownIsEmptySeries(t *testing.T) {
	repo, r := setupPriceRouter(t)

	values := priceValues()
	values.Set("town", "ATLANTIS")
	q := rangedQuery()
	q.Town = "ATLANTIS"
	repo.On("FetchRows", mock.Anything, q).Return([]domain.PredictionRow{}, nil)

	w := get(r, "/api/prices?"+values.Encode())

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestGetPrices_DataAccessError(t *testing.T) {
	repo, r := setupPriceRouter(t)
	repo.On("FetchRows", mock.Anything, rangedQuery()).Return(nil, errors.New("query coefficients: connection refused"))

	w := get(r, "/api/prices?"+priceValues().Encode())

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "query coefficients: connection refused", w.Body.String())
}

func TestPostPrices_Ranged(t *testing.T) {
	repo, r := setupPriceRouter(t)
	repo.On("FetchRows", mock.Anything, rangedQuery()).Return(threeMonths(), nil)

	w := postForm(r, priceValues())

	assert.Equal(t, http.StatusOK, w.Code)
	var series []dto.SeriesPoint
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &series))
	assert.Len(t, series, 3)
}

func TestPostPrices_Idempotent(t *testing.T) {
	repo, r := setupPriceRouter(t)
	repo.On("FetchRows", mock.Anything, rangedQuery()).Return(threeMonths(), nil)

	first := postForm(r, priceValues())
	second := postForm(r, priceValues())

	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestPostPrices_ValidationRejections(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		value   string
		message string
	}{
		{"zero floor area", "floor_area_sqm", "0", "Invalid Floor Area Sqm: must be greater than 0"},
		{"lease before 1960", "lease_commence_date", "1950-01-01", "Invalid Lease Commence Date: must be between 1960-01-01 and 2022-02-01"},
		{"town not in catalog", "town", "ATLANTIS", "Invalid Town: ATLANTIS"},
		{"missing months", "month_start", "", "Missing Month Start"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, r := setupPriceRouter(t)

			values := priceValues()
			values.Set(tt.field, tt.value)
			w := postForm(r, values)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.message, w.Body.String())
			repo.AssertNotCalled(t, "FetchRows", mock.Anything, mock.Anything)
		})
	}
}

func TestNotFound(t *testing.T) {
	_, r := setupPriceRouter(t)

	w := get(r, "/api/unknown")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Not found", w.Body.String())
}

func TestCORS_APIRoutes(t *testing.T) {
	repo, r := setupPriceRouter(t)
	repo.On("FetchRows", mock.Anything, rangedQuery()).Return(threeMonths(), nil)

	req, _ := http.NewRequest("GET", "/api/prices?"+priceValues().Encode(), nil)
	req.Header.Set("Origin", "https://dashboard.example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_Preflight(t *testing.T) {
	_, r := setupPriceRouter(t)

	req, _ := http.NewRequest("OPTIONS", "/api/prices", nil)
	req.Header.Set("Origin", "https://dashboard.example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
