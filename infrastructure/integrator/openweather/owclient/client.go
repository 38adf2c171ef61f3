package owclient

import (
	"context"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/vfg2006/weather-bid-manager/infrastructure/integrator/openweather/owdomain"
	"github.com/vfg2006/weather-bid-manager/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	GetCurrentWeather(ctx context.Context, location string) (*owdomain.CurrentWeather, error)
}

type OpenWeatherClient struct {
	httpClient *http.Client
	config     *config.OpenWeather
}

func NewClient(cfg *config.Config) Client {
	timeout := cfg.OpenWeather.RequestTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &OpenWeatherClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		config: &cfg.OpenWeather,
	}
}
