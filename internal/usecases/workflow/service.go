package workflow

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/weather-bid-manager/infrastructure/spreadsheet"
	"github.com/vfg2006/weather-bid-manager/internal/config"
	"github.com/vfg2006/weather-bid-manager/internal/domain"
	"github.com/vfg2006/weather-bid-manager/internal/usecases/bulksheet"
	"github.com/vfg2006/weather-bid-manager/internal/usecases/configuring"
	"github.com/vfg2006/weather-bid-manager/internal/usecases/uploading"
	"github.com/vfg2006/weather-bid-manager/internal/usecases/weathering"
	"github.com/vfg2006/weather-bid-manager/pkg/log"
	"github.com/vfg2006/weather-bid-manager/pkg/utils"
)

const (
	MessageCampaignsUpdateStarted = "Iniciando atualização das campanhas..."
	MessageClearConfigStarted     = "Iniciado o script para apagar a configuração (GCS/SFTP)"
	MessageClearConfigFinished    = "Script finalizado"
)

// Runner executa as ações do menu da planilha
type Runner interface {
	Run(ctx context.Context, job domain.JobType) (*domain.JobResult, error)
	UpdateWeather(ctx context.Context) (*domain.JobResult, error)
	SendUpdate(ctx context.Context) (*domain.JobResult, error)
	UpdateWeatherAndSend(ctx context.Context) (*domain.JobResult, error)
	FormatBulkSheet(ctx context.Context) (*domain.JobResult, error)
	ClearConfig(ctx context.Context) (*domain.JobResult, error)
}

type Service struct {
	weather     weathering.WeatherUpdater
	uploader    uploading.Uploader
	formatter   bulksheet.Formatter
	credentials configuring.CredentialManager
	runLog      spreadsheet.RunLog
	timeout     time.Duration
	now         func() time.Time
}

func NewService(
	cfg *config.Config,
	weather weathering.WeatherUpdater,
	uploader uploading.Uploader,
	formatter bulksheet.Formatter,
	credentials configuring.CredentialManager,
	runLog spreadsheet.RunLog,
) *Service {
	return &Service{
		weather:     weather,
		uploader:    uploader,
		formatter:   formatter,
		credentials: credentials,
		runLog:      runLog,
		timeout:     cfg.App.JobTimeout,
		now:         time.Now,
	}
}

// Run despacha o job pelo tipo
func (s *Service) Run(ctx context.Context, job domain.JobType) (*domain.JobResult, error) {
	switch job {
	case domain.JobUpdateWeather:
		return s.UpdateWeather(ctx)
	case domain.JobSendUpdate:
		return s.SendUpdate(ctx)
	case domain.JobUpdateWeatherAndSend:
		return s.UpdateWeatherAndSend(ctx)
	case domain.JobFormatBulkSheet:
		return s.FormatBulkSheet(ctx)
	case domain.JobClearConfig:
		return s.ClearConfig(ctx)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownJob, job)
	}
}

func (s *Service) UpdateWeather(ctx context.Context) (*domain.JobResult, error) {
	return s.execute(ctx, domain.JobUpdateWeather, func(ctx context.Context, result *domain.JobResult) error {
		summary, err := s.weather.UpdateWeatherData(ctx)
		result.Weather = summary
		return err
	})
}

func (s *Service) SendUpdate(ctx context.Context) (*domain.JobResult, error) {
	return s.execute(ctx, domain.JobSendUpdate, func(ctx context.Context, result *domain.JobResult) error {
		upload, err := s.uploader.SendUpdate(ctx)
		result.Upload = upload
		return err
	})
}

// UpdateWeatherAndSend atualiza o clima e em seguida envia o bulk sheet.
// O envio só acontece se a atualização do clima terminar sem erro.
func (s *Service) UpdateWeatherAndSend(ctx context.Context) (*domain.JobResult, error) {
	return s.execute(ctx, domain.JobUpdateWeatherAndSend, func(ctx context.Context, result *domain.JobResult) error {
		summary, err := s.weather.UpdateWeatherData(ctx)
		result.Weather = summary
		if err != nil {
			return err
		}

		s.logRun(ctx, MessageCampaignsUpdateStarted)

		upload, err := s.uploader.SendUpdate(ctx)
		result.Upload = upload
		return err
	})
}

func (s *Service) FormatBulkSheet(ctx context.Context) (*domain.JobResult, error) {
	return s.execute(ctx, domain.JobFormatBulkSheet, func(ctx context.Context, result *domain.JobResult) error {
		rows, err := s.formatter.FormatBulkSheet(ctx)
		if err != nil {
			return err
		}
		result.FormattedRows = &rows
		return nil
	})
}

// ClearConfig apaga a configuração SFTP/GCS gravada
func (s *Service) ClearConfig(ctx context.Context) (*domain.JobResult, error) {
	return s.execute(ctx, domain.JobClearConfig, func(ctx context.Context, _ *domain.JobResult) error {
		if err := s.runLog.Clear(ctx); err != nil {
			log.ForContext(ctx).WithError(err).Warn("Erro ao limpar o log da planilha")
		}

		s.logRun(ctx, MessageClearConfigStarted)
		if err := s.credentials.Clear(ctx); err != nil {
			return err
		}
		s.logRun(ctx, MessageClearConfigFinished)

		return nil
	})
}

// execute prepara o contexto da execução (IDs e tempo limite) e registra início e fim
func (s *Service) execute(
	ctx context.Context,
	job domain.JobType,
	fn func(ctx context.Context, result *domain.JobResult) error,
) (*domain.JobResult, error) {
	runID, err := utils.GenerateRunID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar o ID da execução: %w", err)
	}

	if log.GetCorrelationID(ctx) == "" {
		ctx, _ = log.WithCorrelationID(ctx)
	}
	ctx = log.WithRunID(ctx, runID)

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	result := &domain.JobResult{
		Job:       job,
		RunID:     runID,
		StartedAt: s.now(),
	}

	logger := log.ForContext(ctx).WithField("job", string(job))
	logger.Info("Iniciando job")

	err = fn(ctx, result)
	result.FinishedAt = s.now()

	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			err = fmt.Errorf("%w (%s): %w", ErrJobTimeout, s.timeout, err)
		}

		logger.WithError(err).Error("Job finalizado com erro")
		return result, err
	}

	logrus.WithFields(logrus.Fields{
		"job":      job,
		"run_id":   runID,
		"duration": result.FinishedAt.Sub(result.StartedAt).String(),
	}).Info("Job concluído")

	return result, nil
}

func (s *Service) logRun(ctx context.Context, message string) {
	if err := s.runLog.Append(ctx, message); err != nil {
		log.ForContext(ctx).WithError(err).Warn("Erro ao registrar no log da planilha")
	}
}
