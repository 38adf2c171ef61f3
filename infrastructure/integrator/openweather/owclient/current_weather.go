package owclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"

	"github.com/vfg2006/weather-bid-manager/infrastructure/integrator/openweather/owdomain"
)

var (
	ErrEmptyWeather       = errors.New("resposta sem condição climática")
	ErrMissingTemperature = errors.New("resposta sem temperatura")
)

func (c *OpenWeatherClient) GetCurrentWeather(ctx context.Context, location string) (*owdomain.CurrentWeather, error) {
	endpoint, err := url.Parse(c.config.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, "weather")

	query := endpoint.Query()
	query.Set("q", location)
	query.Set("appid", c.config.APIKey)
	query.Set("units", c.config.Units)
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		var apiErr owdomain.ErrorResponse
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Message != "" {
			return nil, fmt.Errorf("requisição falhou com status %s: %s", resp.Status, apiErr.Message)
		}
		return nil, fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	var weather owdomain.CurrentWeather
	if err := json.NewDecoder(resp.Body).Decode(&weather); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	if len(weather.Weather) == 0 {
		return nil, ErrEmptyWeather
	}

	if weather.Main.Temp == nil {
		return nil, ErrMissingTemperature
	}

	return &weather, nil
}
