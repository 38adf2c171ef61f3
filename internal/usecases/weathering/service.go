package weathering

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/weather-bid-manager/infrastructure/integrator/openweather"
	"github.com/vfg2006/weather-bid-manager/infrastructure/spreadsheet"
	"github.com/vfg2006/weather-bid-manager/internal/config"
	"github.com/vfg2006/weather-bid-manager/internal/domain"
	"github.com/vfg2006/weather-bid-manager/pkg/log"
	"github.com/vfg2006/weather-bid-manager/pkg/utils"
)

const MessageUpdateCompleted = "Atualização concluída!"

type WeatherUpdater interface {
	ProcessRows(ctx context.Context, rows []*domain.LocationRow) (*domain.WeatherUpdateSummary, error)
	UpdateWeatherData(ctx context.Context) (*domain.WeatherUpdateSummary, error)
}

type Service struct {
	fetcher       openweather.WeatherFetcher
	sheet         spreadsheet.WeatherSheet
	runLog        spreadsheet.RunLog
	locationDelay time.Duration
	sleep         utils.SleepFunc
}

type Option func(*Service)

func WithSleepFunc(fn utils.SleepFunc) Option {
	return func(s *Service) {
		s.sleep = fn
	}
}

func NewService(
	cfg *config.Config,
	fetcher openweather.WeatherFetcher,
	sheet spreadsheet.WeatherSheet,
	runLog spreadsheet.RunLog,
	opts ...Option,
) *Service {
	s := &Service{
		fetcher:       fetcher,
		sheet:         sheet,
		runLog:        runLog,
		locationDelay: cfg.OpenWeather.LocationDelay,
		sleep:         utils.Sleep,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// UpdateWeatherData limpa o log da planilha, lê as localizações e atualiza o clima de cada uma
func (s *Service) UpdateWeatherData(ctx context.Context) (*domain.WeatherUpdateSummary, error) {
	if err := s.runLog.Clear(ctx); err != nil {
		log.ForContext(ctx).WithError(err).Warn("Erro ao limpar o log da planilha")
	}

	rows, err := s.sheet.ReadLocationRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler as localizações: %w", err)
	}

	summary, err := s.ProcessRows(ctx, rows)
	if err != nil {
		return summary, err
	}

	s.logRun(ctx, MessageUpdateCompleted)

	return summary, nil
}

// ProcessRows consulta o clima das linhas elegíveis, em ordem e uma de cada vez,
// com uma pausa entre localizações consecutivas. Falhas de uma localização não
// interrompem as demais; apenas o cancelamento do contexto encerra o lote.
func (s *Service) ProcessRows(ctx context.Context, rows []*domain.LocationRow) (*domain.WeatherUpdateSummary, error) {
	summary := &domain.WeatherUpdateSummary{Total: len(rows)}
	processed := 0

	for _, row := range rows {
		if !row.IsEligible() {
			summary.Skipped++
			continue
		}

		if processed > 0 {
			if err := s.sleep(ctx, s.locationDelay); err != nil {
				return summary, err
			}
		}
		processed++

		if err := s.processRow(ctx, row, summary); err != nil {
			return summary, err
		}
	}

	logrus.WithFields(logrus.Fields{
		"total":   summary.Total,
		"updated": summary.Updated,
		"failed":  summary.Failed,
		"skipped": summary.Skipped,
	}).Info("Atualização de clima finalizada")

	return summary, nil
}

func (s *Service) processRow(ctx context.Context, row *domain.LocationRow, summary *domain.WeatherUpdateSummary) error {
	location := row.APILocationName

	reading, err := s.fetcher.FetchWeather(ctx, location)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		summary.Failed++
		log.ForContext(ctx).WithField("location", location).WithError(err).Warn("Clima indisponível para a localização")
		s.logRun(ctx, "Erro ao carregar dados da API para a localização: "+location)
		return nil
	}

	row.ApplyReading(reading)
	summary.Updated++

	if err := s.sheet.WriteWeather(ctx, row); err != nil {
		log.ForContext(ctx).WithFields(log.Fields{
			"location":  location,
			"sheet_row": row.SheetRow,
		}).WithError(err).Error("Erro ao gravar o clima na planilha")
	}

	s.logRun(ctx, fmt.Sprintf(`Localização "%s": %s, %s°`, location, reading.Condition, utils.FormatTemperature(reading.Temperature)))

	return nil
}

func (s *Service) logRun(ctx context.Context, message string) {
	if err := s.runLog.Append(ctx, message); err != nil {
		log.ForContext(ctx).WithError(err).Warn("Erro ao registrar no log da planilha")
	}
}
