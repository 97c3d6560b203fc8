package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/sales-analytics-api/internal/api/handler/router"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-analytics-api/pkg/middleware"
)

func publishedReporter() *reporting.Service {
	service := reporting.NewService()

	set := domain.EmptyRollupSet()
	set.DailyRevenue = []domain.DailyRevenueRow{
		{Date: "2024-01-01", Revenue: 100.00},
		{Date: "2024-01-02", Revenue: 150.00},
	}
	set.CountrySummary = []domain.CountrySummaryRow{
		{Country: "UK", DistinctCustomers: 3, TotalRevenue: 12000.00, AverageRevenue: 4000.00, Tier: domain.TierHigh, Rank: 1},
	}

	quality := domain.NewQualitySummary()
	quality.TotalRecords = 10
	quality.ValidRecords = 8

	service.Publish(set, quality, &domain.BatchResult{BatchID: "abc123", RecordsIn: 10, RecordsOut: 8})
	return service
}

func doRequest(t *testing.T, service reporting.Reporter, method, path string, roleID int) *httptest.ResponseRecorder {
	t.Helper()

	handler := router.New(router.WithRoutes(Reports(service)...))

	request := httptest.NewRequest(method, path, nil)
	claims := &domain.Claims{Name: "tester", RoleID: roleID}
	request = request.WithContext(context.WithValue(request.Context(), middleware.ContextKeyUser, claims))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder
}

func TestGetDailyRevenue(t *testing.T) {
	recorder := doRequest(t, publishedReporter(), http.MethodGet, "/v1/reports/daily-revenue", domain.RoleViewer)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))

	var rows []domain.DailyRevenueRow
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "2024-01-01", rows[0].Date)
	assert.InDelta(t, 100.00, rows[0].Revenue, 0.001)
}

func TestGetCountrySales(t *testing.T) {
	service := publishedReporter()

	recorder := doRequest(t, service, http.MethodGet, "/v1/reports/country/UK", domain.RoleViewer)
	require.Equal(t, http.StatusOK, recorder.Code)

	var row domain.CountrySummaryRow
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &row))
	assert.Equal(t, "UK", row.Country)
	assert.Equal(t, domain.TierHigh, row.Tier)
}

func TestGetCountrySales_PaisDesconhecido(t *testing.T) {
	recorder := doRequest(t, publishedReporter(), http.MethodGet, "/v1/reports/country/Atlantis", domain.RoleViewer)

	require.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "RPT_001")
}

func TestGetQualitySummary(t *testing.T) {
	recorder := doRequest(t, publishedReporter(), http.MethodGet, "/v1/quality", domain.RoleViewer)

	require.Equal(t, http.StatusOK, recorder.Code)

	var quality domain.QualitySummary
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &quality))
	assert.Equal(t, 10, quality.TotalRecords)
	assert.Equal(t, 8, quality.ValidRecords)
}

func TestGetQualitySummary_SemLotePublicado(t *testing.T) {
	recorder := doRequest(t, reporting.NewService(), http.MethodGet, "/v1/quality", domain.RoleViewer)

	require.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "RPT_002")
}

func TestReports_SemAutenticacao(t *testing.T) {
	handler := router.New(router.WithRoutes(Reports(publishedReporter())...))

	request := httptest.NewRequest(http.MethodGet, "/v1/reports/daily-revenue", nil)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "AUTH_001")
}

func TestRotaDesconhecida(t *testing.T) {
	recorder := doRequest(t, publishedReporter(), http.MethodGet, "/v1/reports/nao-existe", domain.RoleViewer)

	require.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "VAL_001")
}
