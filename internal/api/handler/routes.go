package handler

import (
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/exporting"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/loading"
	"github.com/vfg2006/sales-dashboard-api/pkg/middleware"
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

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
	}
}

func Dashboard(service dashboarding.Dashboarder, exporter exporting.Exporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
		{
			Path:    "/v1/sales",
			Method:  http.MethodGet,
			Handler: GetSales(service),
		},
		{
			Path:    "/v1/sales/export",
			Method:  http.MethodGet,
			Handler: ExportSales(service, exporter),
		},
		{
			Path:    "/v1/filters/options",
			Method:  http.MethodGet,
			Handler: GetFilterOptions(service),
		},
	}
}

func Dataset(dataset loading.DatasetProvider, refresher DatasetRefresher, validator middleware.TokenValidator) []router.Route {
	adminOnly := []func(http.Handler) http.Handler{
		middleware.AuthMiddleware(validator),
		middleware.AdminOnly(),
	}

	return []router.Route{
		{
			Path:        "/v1/dataset/status",
			Method:      http.MethodGet,
			Handler:     GetDatasetStatus(dataset, refresher),
			Middlewares: adminOnly,
		},
		{
			Path:        "/v1/dataset/clear",
			Method:      http.MethodPost,
			Handler:     ClearDataset(dataset),
			Middlewares: adminOnly,
		},
		{
			Path:        "/v1/dataset/refresh",
			Method:      http.MethodPost,
			Handler:     RefreshDataset(refresher),
			Middlewares: adminOnly,
		},
	}
}
