// Package scheduler contém o agendamento da atualização de clima e lances
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/weather-bid-manager/internal/config"
	"github.com/vfg2006/weather-bid-manager/internal/domain"
	"github.com/vfg2006/weather-bid-manager/internal/usecases/workflow"
)

var ErrSyncAlreadyRunning = errors.New("já existe uma execução em andamento")

// JobScheduler é o que a API usa para disparar jobs e consultar o agendador
type JobScheduler interface {
	TriggerManualSync(job domain.JobType) error
	GetStatus() map[string]any
}

// WeatherBidSyncConfig representa a configuração do agendador
type WeatherBidSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
	SendEnabled  bool
}

// WeatherBidSyncService agenda os jobs e garante no máximo uma execução por vez
type WeatherBidSyncService struct {
	scheduler           *gocron.Scheduler
	config              WeatherBidSyncConfig
	runner              workflow.Runner
	baseCtx             context.Context
	syncRunning         bool
	syncMutex           sync.Mutex
	lastJob             domain.JobType
	lastRunID           string
	lastError           string
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewWeatherBidSyncService(runner workflow.Runner, cfg *config.Config) *WeatherBidSyncService {
	syncConfig := WeatherBidSyncConfig{
		CronSchedule: cfg.WeatherBidSync.CronSchedule,
		SyncEnabled:  cfg.WeatherBidSync.Enabled,
		SendEnabled:  cfg.WeatherBidSync.SendEnabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
		"send_enabled":  syncConfig.SendEnabled,
	}).Info("Configuração do agendador de clima e lances carregada")

	return &WeatherBidSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    syncConfig,
		runner:    runner,
		baseCtx:   context.Background(),
	}
}

// Start agenda o job diário; com envio habilitado roda clima + envio ao SA360
func (s *WeatherBidSyncService) Start(ctx context.Context) error {
	s.baseCtx = ctx

	if !s.config.SyncEnabled {
		logrus.Info("Atualização agendada de clima e lances desabilitada por configuração")
		return nil
	}

	job := s.scheduledJob()
	logrus.WithFields(logrus.Fields{
		"cron": s.config.CronSchedule,
		"job":  job,
	}).Info("Iniciando agendador de clima e lances")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if !s.reserve() {
			logrus.WithField("job", job).Info("Execução já em andamento, ignorando horário agendado")
			return
		}
		s.run(job)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar a atualização de clima e lances: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de clima e lances")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *WeatherBidSyncService) scheduledJob() domain.JobType {
	if s.config.SendEnabled {
		return domain.JobUpdateWeatherAndSend
	}
	return domain.JobUpdateWeather
}

// TriggerManualSync dispara um job em segundo plano.
// Devolve ErrSyncAlreadyRunning se houver outra execução em andamento.
func (s *WeatherBidSyncService) TriggerManualSync(job domain.JobType) error {
	if !job.IsValid() {
		return fmt.Errorf("%w: %q", workflow.ErrUnknownJob, job)
	}

	if !s.reserve() {
		logrus.WithField("job", job).Info("Execução já em andamento, ignorando solicitação manual")
		return ErrSyncAlreadyRunning
	}

	logrus.WithField("job", job).Info("Iniciando execução manual")
	go s.run(job)

	return nil
}

// reserve marca a execução como em andamento; false se já havia uma
func (s *WeatherBidSyncService) reserve() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}

	s.syncRunning = true
	return true
}

func (s *WeatherBidSyncService) run(job domain.JobType) {
	s.syncMutex.Lock()
	s.lastJob = job
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	result, err := s.runner.Run(s.baseCtx, job)

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastRunID = ""
	if result != nil {
		s.lastRunID = result.RunID
	}

	if err != nil {
		s.lastError = err.Error()
		logrus.WithFields(logrus.Fields{
			"job":    job,
			"run_id": s.lastRunID,
		}).WithError(err).Error("Erro na execução do job")
		return
	}

	s.lastError = ""
}

// GetStatus retorna o status atual do agendador
func (s *WeatherBidSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_send_enabled":      s.config.SendEnabled,
		"sync_running":           s.syncRunning,
		"last_job":               s.lastJob,
		"last_run_id":            s.lastRunID,
		"last_error":             s.lastError,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
