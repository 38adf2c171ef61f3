package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/weather-bid-manager/internal/config"
	"github.com/vfg2006/weather-bid-manager/internal/domain"
	"github.com/vfg2006/weather-bid-manager/internal/usecases/workflow"
	workflowmocks "github.com/vfg2006/weather-bid-manager/internal/usecases/workflow/mocks"
)

func newTestService(t *testing.T, sendEnabled bool) (*WeatherBidSyncService, *workflowmocks.MockRunner) {
	ctrl := gomock.NewController(t)
	runner := workflowmocks.NewMockRunner(ctrl)

	cfg := &config.Config{
		WeatherBidSync: config.WeatherBidSync{
			CronSchedule: "0 6 * * *",
			SendEnabled:  sendEnabled,
		},
	}

	return NewWeatherBidSyncService(runner, cfg), runner
}

func finished(s *WeatherBidSyncService) func() bool {
	return func() bool {
		return !s.GetStatus()["sync_running"].(bool)
	}
}

func TestWeatherBidSyncService_TriggerManualSync(t *testing.T) {
	t.Run("Ignora disparo enquanto outra execução está em andamento", func(t *testing.T) {
		service, runner := newTestService(t, false)

		release := make(chan struct{})
		runner.EXPECT().Run(gomock.Any(), domain.JobUpdateWeather).
			DoAndReturn(func(context.Context, domain.JobType) (*domain.JobResult, error) {
				<-release
				return &domain.JobResult{RunID: "abc123"}, nil
			}).
			Times(1)

		require.NoError(t, service.TriggerManualSync(domain.JobUpdateWeather))

		err := service.TriggerManualSync(domain.JobSendUpdate)
		assert.ErrorIs(t, err, ErrSyncAlreadyRunning)

		close(release)
		assert.Eventually(t, finished(service), time.Second, 5*time.Millisecond)

		status := service.GetStatus()
		assert.Equal(t, "abc123", status["last_run_id"])
		assert.Equal(t, domain.JobUpdateWeather, status["last_job"])
		assert.Empty(t, status["last_error"])
	})

	t.Run("Registra o último erro", func(t *testing.T) {
		service, runner := newTestService(t, false)

		runner.EXPECT().Run(gomock.Any(), domain.JobSendUpdate).
			Return(&domain.JobResult{RunID: "run1"}, errors.New("transferência falhou"))

		require.NoError(t, service.TriggerManualSync(domain.JobSendUpdate))
		assert.Eventually(t, finished(service), time.Second, 5*time.Millisecond)

		assert.Equal(t, "transferência falhou", service.GetStatus()["last_error"])
	})

	t.Run("Tipo de job inválido", func(t *testing.T) {
		service, _ := newTestService(t, false)

		err := service.TriggerManualSync(domain.JobClearConfig)
		assert.ErrorIs(t, err, workflow.ErrUnknownJob)
	})
}

func TestWeatherBidSyncService_scheduledJob(t *testing.T) {
	withSend, _ := newTestService(t, true)
	weatherOnly, _ := newTestService(t, false)

	assert.Equal(t, domain.JobUpdateWeatherAndSend, withSend.scheduledJob())
	assert.Equal(t, domain.JobUpdateWeather, weatherOnly.scheduledJob())
}

func TestWeatherBidSyncService_Start(t *testing.T) {
	t.Run("Desabilitado não agenda nada", func(t *testing.T) {
		service, _ := newTestService(t, false)

		require.NoError(t, service.Start(context.Background()))
		assert.Empty(t, service.scheduler.Jobs())
	})

	t.Run("Expressão cron inválida", func(t *testing.T) {
		service, _ := newTestService(t, false)
		service.config.SyncEnabled = true
		service.config.CronSchedule = "a cada manhã"

		err := service.Start(context.Background())
		assert.Error(t, err)
	})
}
