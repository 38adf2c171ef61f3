package openweather

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/weather-bid-manager/infrastructure/integrator/openweather/owclient"
	"github.com/vfg2006/weather-bid-manager/internal/config"
	"github.com/vfg2006/weather-bid-manager/internal/domain"
	"github.com/vfg2006/weather-bid-manager/pkg/utils"
)

var ErrRetriesExhausted = errors.New("número máximo de tentativas atingido")

type WeatherFetcher interface {
	FetchWeather(ctx context.Context, location string) (*domain.WeatherReading, error)
}

type WeatherService struct {
	client     owclient.Client
	maxRetries int
	retryDelay time.Duration
	sleep      utils.SleepFunc
}

type Option func(*WeatherService)

// WithSleepFunc substitui a pausa entre tentativas (usado nos testes)
func WithSleepFunc(fn utils.SleepFunc) Option {
	return func(s *WeatherService) {
		s.sleep = fn
	}
}

func New(cfg *config.Config, client owclient.Client, opts ...Option) *WeatherService {
	s := &WeatherService{
		client:     client,
		maxRetries: cfg.OpenWeather.MaxRetries,
		retryDelay: cfg.OpenWeather.RetryDelay,
		sleep:      utils.Sleep,
	}

	if s.maxRetries < 1 {
		s.maxRetries = 1
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// FetchWeather consulta o clima atual da localização, repetindo a chamada com
// pausa fixa até maxRetries tentativas. O contador é local a cada chamada.
func (s *WeatherService) FetchWeather(ctx context.Context, location string) (*domain.WeatherReading, error) {
	var lastErr error

	for attempt := 1; attempt <= s.maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		weather, err := s.client.GetCurrentWeather(ctx, location)
		if err == nil {
			return &domain.WeatherReading{
				Condition:   weather.Weather[0].Main,
				Temperature: *weather.Main.Temp,
			}, nil
		}

		// cancelamento durante a requisição não conta como falha da API
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}

		lastErr = err
		logrus.WithFields(logrus.Fields{
			"location": location,
			"attempt":  attempt,
			"max":      s.maxRetries,
		}).WithError(err).Warn("Falha ao consultar o clima")

		if attempt == s.maxRetries {
			break
		}

		if err := s.sleep(ctx, s.retryDelay); err != nil {
			return nil, err
		}
	}

	return nil, fmt.Errorf("%w para %q: %w", ErrRetriesExhausted, location, lastErr)
}
