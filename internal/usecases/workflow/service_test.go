package workflow_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	sheetmocks "github.com/vfg2006/weather-bid-manager/infrastructure/spreadsheet/mocks"
	"github.com/vfg2006/weather-bid-manager/internal/config"
	"github.com/vfg2006/weather-bid-manager/internal/domain"
	bulkmocks "github.com/vfg2006/weather-bid-manager/internal/usecases/bulksheet/mocks"
	configmocks "github.com/vfg2006/weather-bid-manager/internal/usecases/configuring/mocks"
	"github.com/vfg2006/weather-bid-manager/internal/usecases/uploading"
	uploadmocks "github.com/vfg2006/weather-bid-manager/internal/usecases/uploading/mocks"
	weathermocks "github.com/vfg2006/weather-bid-manager/internal/usecases/weathering/mocks"
	"github.com/vfg2006/weather-bid-manager/internal/usecases/workflow"
	"github.com/vfg2006/weather-bid-manager/pkg/apiErrors"
	"github.com/vfg2006/weather-bid-manager/pkg/log"
)

type fixture struct {
	weather     *weathermocks.MockWeatherUpdater
	uploader    *uploadmocks.MockUploader
	formatter   *bulkmocks.MockFormatter
	credentials *configmocks.MockCredentialManager
	runLog      *sheetmocks.MockRunLog
	service     *workflow.Service
}

func newFixture(t *testing.T, timeout time.Duration) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		weather:     weathermocks.NewMockWeatherUpdater(ctrl),
		uploader:    uploadmocks.NewMockUploader(ctrl),
		formatter:   bulkmocks.NewMockFormatter(ctrl),
		credentials: configmocks.NewMockCredentialManager(ctrl),
		runLog:      sheetmocks.NewMockRunLog(ctrl),
	}

	cfg := &config.Config{App: config.App{JobTimeout: timeout}}
	f.service = workflow.NewService(cfg, f.weather, f.uploader, f.formatter, f.credentials, f.runLog)
	return f
}

func TestService_UpdateWeather(t *testing.T) {
	f := newFixture(t, time.Minute)
	summary := &domain.WeatherUpdateSummary{Total: 3, Updated: 2, Skipped: 1}

	f.weather.EXPECT().UpdateWeatherData(gomock.Any()).
		DoAndReturn(func(ctx context.Context) (*domain.WeatherUpdateSummary, error) {
			assert.NotEmpty(t, log.GetRunID(ctx))
			assert.NotEmpty(t, log.GetCorrelationID(ctx))

			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)
			return summary, nil
		})

	result, err := f.service.UpdateWeather(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.JobUpdateWeather, result.Job)
	assert.Len(t, result.RunID, 10)
	assert.Equal(t, summary, result.Weather)
	assert.Nil(t, result.Upload)
}

func TestService_UpdateWeatherAndSend(t *testing.T) {
	t.Run("Atualiza o clima, registra o início e envia", func(t *testing.T) {
		f := newFixture(t, time.Minute)
		upload := &domain.UploadResult{Advertiser: "Acme", Rows: 4}

		gomock.InOrder(
			f.weather.EXPECT().UpdateWeatherData(gomock.Any()).Return(&domain.WeatherUpdateSummary{}, nil),
			f.runLog.EXPECT().Append(gomock.Any(), workflow.MessageCampaignsUpdateStarted).Return(nil),
			f.uploader.EXPECT().SendUpdate(gomock.Any()).Return(upload, nil),
		)

		result, err := f.service.UpdateWeatherAndSend(context.Background())
		require.NoError(t, err)
		assert.Equal(t, upload, result.Upload)
	})

	t.Run("Erro no clima não envia", func(t *testing.T) {
		f := newFixture(t, time.Minute)

		f.weather.EXPECT().UpdateWeatherData(gomock.Any()).Return(nil, errors.New("planilha indisponível"))
		f.uploader.EXPECT().SendUpdate(gomock.Any()).Times(0)
		f.runLog.EXPECT().Append(gomock.Any(), gomock.Any()).Times(0)

		_, err := f.service.UpdateWeatherAndSend(context.Background())
		assert.EqualError(t, err, "planilha indisponível")
	})
}

func TestService_FormatBulkSheet(t *testing.T) {
	f := newFixture(t, 0)

	f.formatter.EXPECT().FormatBulkSheet(gomock.Any()).
		DoAndReturn(func(ctx context.Context) (int, error) {
			_, hasDeadline := ctx.Deadline()
			assert.False(t, hasDeadline)
			return 7, nil
		})

	result, err := f.service.FormatBulkSheet(context.Background())
	require.NoError(t, err)
	require.NotNil(t, result.FormattedRows)
	assert.Equal(t, 7, *result.FormattedRows)
}

func TestService_ClearConfig(t *testing.T) {
	t.Run("Limpa o log e a configuração", func(t *testing.T) {
		f := newFixture(t, time.Minute)

		gomock.InOrder(
			f.runLog.EXPECT().Clear(gomock.Any()).Return(nil),
			f.runLog.EXPECT().Append(gomock.Any(), workflow.MessageClearConfigStarted).Return(nil),
			f.credentials.EXPECT().Clear(gomock.Any()).Return(nil),
			f.runLog.EXPECT().Append(gomock.Any(), workflow.MessageClearConfigFinished).Return(nil),
		)

		_, err := f.service.ClearConfig(context.Background())
		require.NoError(t, err)
	})

	t.Run("Erro ao apagar não registra o fim", func(t *testing.T) {
		f := newFixture(t, time.Minute)

		f.runLog.EXPECT().Clear(gomock.Any()).Return(errors.New("quota"))
		f.runLog.EXPECT().Append(gomock.Any(), workflow.MessageClearConfigStarted).Return(nil)
		f.credentials.EXPECT().Clear(gomock.Any()).Return(errors.New("db down"))

		_, err := f.service.ClearConfig(context.Background())
		assert.EqualError(t, err, "db down")
	})
}

func TestService_Run(t *testing.T) {
	t.Run("Despacha pelo tipo", func(t *testing.T) {
		f := newFixture(t, time.Minute)
		f.uploader.EXPECT().SendUpdate(gomock.Any()).Return(&domain.UploadResult{}, nil)

		result, err := f.service.Run(context.Background(), domain.JobSendUpdate)
		require.NoError(t, err)
		assert.Equal(t, domain.JobSendUpdate, result.Job)
	})

	t.Run("Tipo desconhecido", func(t *testing.T) {
		f := newFixture(t, time.Minute)

		_, err := f.service.Run(context.Background(), domain.JobType("reboot"))
		assert.ErrorIs(t, err, workflow.ErrUnknownJob)
		assert.Equal(t, apiErrors.ErrUnknownJob, workflow.ErrorCode(err))
	})

	t.Run("Tempo limite excedido", func(t *testing.T) {
		f := newFixture(t, 10*time.Millisecond)

		f.weather.EXPECT().UpdateWeatherData(gomock.Any()).
			DoAndReturn(func(ctx context.Context) (*domain.WeatherUpdateSummary, error) {
				<-ctx.Done()
				return nil, ctx.Err()
			})

		_, err := f.service.Run(context.Background(), domain.JobUpdateWeather)
		assert.ErrorIs(t, err, workflow.ErrJobTimeout)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Equal(t, apiErrors.ErrJobCanceled, workflow.ErrorCode(err))
	})

	t.Run("Mantém o ID de correlação recebido", func(t *testing.T) {
		f := newFixture(t, time.Minute)
		ctx, correlationID := log.WithCorrelationID(context.Background())

		f.formatter.EXPECT().FormatBulkSheet(gomock.Any()).
			DoAndReturn(func(ctx context.Context) (int, error) {
				assert.Equal(t, correlationID, log.GetCorrelationID(ctx))
				return 0, nil
			})

		_, err := f.service.Run(ctx, domain.JobFormatBulkSheet)
		require.NoError(t, err)
	})
}

func TestErrorCode(t *testing.T) {
	uploadErr := uploading.NewUploadError(uploading.ErrInvalidPort, apiErrors.ErrInvalidPort, "porta")

	assert.Equal(t, apiErrors.ErrInvalidPort, workflow.ErrorCode(uploadErr))
	assert.Equal(t, apiErrors.ErrJobCanceled, workflow.ErrorCode(context.Canceled))
	assert.Equal(t, apiErrors.ErrInternalServer, workflow.ErrorCode(errors.New("x")))
}
