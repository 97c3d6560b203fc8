package handler

import (
	"net/http"

	"github.com/vfg2006/sales-analytics-api/internal/api/handler/router"
	"github.com/vfg2006/sales-analytics-api/internal/scheduler"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-analytics-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Reports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/reports/daily-revenue",
			Method:      http.MethodGet,
			Handler:     GetDailyRevenue(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/reports/daily-growth",
			Method:      http.MethodGet,
			Handler:     GetDayOverDayGrowth(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/reports/cumulative-revenue",
			Method:      http.MethodGet,
			Handler:     GetCumulativeRevenue(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/reports/moving-average",
			Method:      http.MethodGet,
			Handler:     GetSevenDayMovingAverage(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/reports/countries",
			Method:      http.MethodGet,
			Handler:     GetCountrySummary(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/reports/countries/contribution",
			Method:      http.MethodGet,
			Handler:     GetCountryContribution(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/reports/countries/top-customers",
			Method:      http.MethodGet,
			Handler:     GetTopCustomersByCountry(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/reports/country/:name",
			Method:      http.MethodGet,
			Handler:     GetCountrySales(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/quality",
			Method:      http.MethodGet,
			Handler:     GetQualitySummary(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Batch(service *scheduler.BatchRefreshService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/batch/status",
			Method:      http.MethodGet,
			Handler:     GetBatchStatus(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/batch/run",
			Method:      http.MethodPost,
			Handler:     RunBatch(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
