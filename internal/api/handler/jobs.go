package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/weather-bid-manager/internal/domain"
	"github.com/vfg2006/weather-bid-manager/internal/scheduler"
	"github.com/vfg2006/weather-bid-manager/internal/usecases/workflow"
	"github.com/vfg2006/weather-bid-manager/pkg/apiErrors"
	"github.com/vfg2006/weather-bid-manager/pkg/log"
)

// RunJob dispara um job em segundo plano e responde 202
func RunJob(jobs scheduler.JobScheduler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		jobType := domain.JobType(httprouter.ParamsFromContext(r.Context()).ByName("type"))
		logger := log.ForContext(r.Context()).WithField("job", string(jobType))

		if !jobType.IsValid() {
			apiErrors.WriteError(w, apiErrors.ErrUnknownJob, "Tipo de job inválido", map[string]any{
				"accepted": domain.JobTypes,
			})
			return
		}

		if err := jobs.TriggerManualSync(jobType); err != nil {
			logger.WithError(err).Warn("Job não iniciado")

			if errors.Is(err, scheduler.ErrSyncAlreadyRunning) {
				apiErrors.WriteError(w, apiErrors.ErrJobAlreadyRunning, err.Error(), nil)
				return
			}
			writeErrorFrom(w, err, workflow.ErrorCode(err))
			return
		}

		logger.Info("Job iniciado pela API")
		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Job iniciado com sucesso",
			"type":    jobType,
		})
	})
}

func GetJobStatus(jobs scheduler.JobScheduler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Debug("INIT - GetJobStatus")
		writeJSON(w, http.StatusOK, jobs.GetStatus())
	})
}
