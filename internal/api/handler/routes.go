package handler

import (
	"net/http"

	"github.com/vfg2006/weather-bid-manager/internal/api/handler/router"
	"github.com/vfg2006/weather-bid-manager/internal/scheduler"
	"github.com/vfg2006/weather-bid-manager/internal/usecases/configuring"
	"github.com/vfg2006/weather-bid-manager/internal/usecases/workflow"
	"github.com/vfg2006/weather-bid-manager/pkg/middleware"
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

func Jobs(jobs scheduler.JobScheduler) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/jobs/run/:type",
			Method:      http.MethodPost,
			Handler:     RunJob(jobs),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/jobs/status",
			Method:      http.MethodGet,
			Handler:     GetJobStatus(jobs),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func AdvertiserConfig(credentials configuring.CredentialManager, runner workflow.Runner) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/config/status",
			Method:      http.MethodGet,
			Handler:     GetConfigStatus(credentials),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/config",
			Method:      http.MethodPut,
			Handler:     SaveConfig(credentials),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/config",
			Method:      http.MethodDelete,
			Handler:     ClearConfig(runner),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
