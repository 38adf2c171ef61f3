package weathering_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/weather-bid-manager/infrastructure/integrator/openweather"
	owmocks "github.com/vfg2006/weather-bid-manager/infrastructure/integrator/openweather/mocks"
	sheetmocks "github.com/vfg2006/weather-bid-manager/infrastructure/spreadsheet/mocks"
	"github.com/vfg2006/weather-bid-manager/internal/config"
	"github.com/vfg2006/weather-bid-manager/internal/domain"
	"github.com/vfg2006/weather-bid-manager/internal/usecases/weathering"
)

type fixture struct {
	fetcher *owmocks.MockWeatherFetcher
	sheet   *sheetmocks.MockWeatherSheet
	runLog  *sheetmocks.MockRunLog
	sleeps  []time.Duration
	service *weathering.Service
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		fetcher: owmocks.NewMockWeatherFetcher(ctrl),
		sheet:   sheetmocks.NewMockWeatherSheet(ctrl),
		runLog:  sheetmocks.NewMockRunLog(ctrl),
	}

	cfg := &config.Config{OpenWeather: config.OpenWeather{LocationDelay: time.Second}}
	sleep := func(ctx context.Context, d time.Duration) error {
		f.sleeps = append(f.sleeps, d)
		return ctx.Err()
	}

	f.service = weathering.NewService(cfg, f.fetcher, f.sheet, f.runLog, weathering.WithSleepFunc(sleep))
	return f
}

func row(sheetRow int, apiName string) *domain.LocationRow {
	return &domain.LocationRow{SheetRow: sheetRow, APILocationName: apiName}
}

func TestService_ProcessRows(t *testing.T) {
	t.Run("Linhas inelegíveis são ignoradas sem chamar a API", func(t *testing.T) {
		f := newFixture(t)
		rows := []*domain.LocationRow{row(2, ""), row(3, "NY"), row(4, "   ")}

		f.fetcher.EXPECT().FetchWeather(gomock.Any(), gomock.Any()).Times(0)

		summary, err := f.service.ProcessRows(context.Background(), rows)
		require.NoError(t, err)
		assert.Equal(t, &domain.WeatherUpdateSummary{Total: 3, Skipped: 3}, summary)
		assert.Empty(t, f.sleeps)
	})

	t.Run("Sucesso grava na planilha e no log", func(t *testing.T) {
		f := newFixture(t)
		milan := row(2, "Milan,IT")

		f.fetcher.EXPECT().FetchWeather(gomock.Any(), "Milan,IT").
			Return(&domain.WeatherReading{Condition: "Clear", Temperature: 21.5}, nil)
		f.sheet.EXPECT().WriteWeather(gomock.Any(), milan).Return(nil).Times(1)
		f.runLog.EXPECT().Append(gomock.Any(), `Localização "Milan,IT": Clear, 21.5°`).Return(nil)

		summary, err := f.service.ProcessRows(context.Background(), []*domain.LocationRow{milan})
		require.NoError(t, err)
		assert.Equal(t, 1, summary.Updated)
		assert.Equal(t, "Clear", milan.WeatherCondition)
		require.NotNil(t, milan.Temperature)
		assert.Equal(t, 21.5, *milan.Temperature)
	})

	t.Run("Falha registra erro e mantém a linha", func(t *testing.T) {
		f := newFixture(t)
		previous := 10.0
		atlantis := &domain.LocationRow{SheetRow: 2, APILocationName: "Atlantis", WeatherCondition: "Rain", Temperature: &previous}

		f.fetcher.EXPECT().FetchWeather(gomock.Any(), "Atlantis").Return(nil, openweather.ErrRetriesExhausted)
		f.sheet.EXPECT().WriteWeather(gomock.Any(), gomock.Any()).Times(0)
		f.runLog.EXPECT().Append(gomock.Any(), "Erro ao carregar dados da API para a localização: Atlantis").Return(nil)

		summary, err := f.service.ProcessRows(context.Background(), []*domain.LocationRow{atlantis})
		require.NoError(t, err)
		assert.Equal(t, 1, summary.Failed)
		assert.Equal(t, "Rain", atlantis.WeatherCondition)
		assert.Equal(t, 10.0, *atlantis.Temperature)
	})

	t.Run("Pausa apenas entre localizações elegíveis consecutivas", func(t *testing.T) {
		f := newFixture(t)
		rows := []*domain.LocationRow{row(2, "Milan"), row(3, ""), row(4, "Rome"), row(5, "Paris")}

		gomock.InOrder(
			f.fetcher.EXPECT().FetchWeather(gomock.Any(), "Milan").Return(&domain.WeatherReading{Condition: "Clear", Temperature: 20}, nil),
			f.fetcher.EXPECT().FetchWeather(gomock.Any(), "Rome").Return(nil, errors.New("falha")),
			f.fetcher.EXPECT().FetchWeather(gomock.Any(), "Paris").Return(&domain.WeatherReading{Condition: "Rain", Temperature: 9}, nil),
		)
		f.sheet.EXPECT().WriteWeather(gomock.Any(), gomock.Any()).Return(nil).Times(2)
		f.runLog.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil).Times(3)

		summary, err := f.service.ProcessRows(context.Background(), rows)
		require.NoError(t, err)
		assert.Equal(t, &domain.WeatherUpdateSummary{Total: 4, Updated: 2, Failed: 1, Skipped: 1}, summary)
		assert.Equal(t, []time.Duration{time.Second, time.Second}, f.sleeps)
	})

	t.Run("Erro ao gravar a linha não interrompe o lote", func(t *testing.T) {
		f := newFixture(t)
		rows := []*domain.LocationRow{row(2, "Milan"), row(3, "Rome")}

		f.fetcher.EXPECT().FetchWeather(gomock.Any(), gomock.Any()).Return(&domain.WeatherReading{Condition: "Clouds", Temperature: 15}, nil).Times(2)
		gomock.InOrder(
			f.sheet.EXPECT().WriteWeather(gomock.Any(), rows[0]).Return(errors.New("quota")),
			f.sheet.EXPECT().WriteWeather(gomock.Any(), rows[1]).Return(nil),
		)
		f.runLog.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil).Times(2)

		summary, err := f.service.ProcessRows(context.Background(), rows)
		require.NoError(t, err)
		assert.Equal(t, 2, summary.Updated)
	})

	t.Run("Falha no log da planilha não interrompe o lote", func(t *testing.T) {
		f := newFixture(t)

		f.fetcher.EXPECT().FetchWeather(gomock.Any(), "Milan").Return(&domain.WeatherReading{Condition: "Clear", Temperature: 1}, nil)
		f.sheet.EXPECT().WriteWeather(gomock.Any(), gomock.Any()).Return(nil)
		f.runLog.EXPECT().Append(gomock.Any(), gomock.Any()).Return(errors.New("sheet offline"))

		summary, err := f.service.ProcessRows(context.Background(), []*domain.LocationRow{row(2, "Milan")})
		require.NoError(t, err)
		assert.Equal(t, 1, summary.Updated)
	})

	t.Run("Cancelamento durante a pausa encerra o lote", func(t *testing.T) {
		f := newFixture(t)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		f.fetcher.EXPECT().FetchWeather(gomock.Any(), "Milan").DoAndReturn(func(context.Context, string) (*domain.WeatherReading, error) {
			cancel()
			return &domain.WeatherReading{Condition: "Clear", Temperature: 1}, nil
		})
		f.sheet.EXPECT().WriteWeather(gomock.Any(), gomock.Any()).Return(nil)
		f.runLog.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

		summary, err := f.service.ProcessRows(ctx, []*domain.LocationRow{row(2, "Milan"), row(3, "Rome")})
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, summary.Updated)
	})

	t.Run("Cancelamento durante a consulta não conta como falha", func(t *testing.T) {
		f := newFixture(t)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		f.fetcher.EXPECT().FetchWeather(gomock.Any(), "Milan").DoAndReturn(func(ctx context.Context, _ string) (*domain.WeatherReading, error) {
			cancel()
			return nil, ctx.Err()
		})

		summary, err := f.service.ProcessRows(ctx, []*domain.LocationRow{row(2, "Milan")})
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 0, summary.Failed)
	})
}

func TestService_UpdateWeatherData(t *testing.T) {
	t.Run("Limpa o log, processa e registra conclusão", func(t *testing.T) {
		f := newFixture(t)

		gomock.InOrder(
			f.runLog.EXPECT().Clear(gomock.Any()).Return(nil),
			f.sheet.EXPECT().ReadLocationRows(gomock.Any()).Return([]*domain.LocationRow{row(2, "Milan")}, nil),
			f.fetcher.EXPECT().FetchWeather(gomock.Any(), "Milan").Return(&domain.WeatherReading{Condition: "Snow", Temperature: -2}, nil),
			f.sheet.EXPECT().WriteWeather(gomock.Any(), gomock.Any()).Return(nil),
			f.runLog.EXPECT().Append(gomock.Any(), `Localização "Milan": Snow, -2°`).Return(nil),
			f.runLog.EXPECT().Append(gomock.Any(), weathering.MessageUpdateCompleted).Return(nil),
		)

		summary, err := f.service.UpdateWeatherData(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, summary.Updated)
	})

	t.Run("Erro de leitura da planilha é fatal", func(t *testing.T) {
		f := newFixture(t)

		f.runLog.EXPECT().Clear(gomock.Any()).Return(nil)
		f.sheet.EXPECT().ReadLocationRows(gomock.Any()).Return(nil, errors.New("forbidden"))

		summary, err := f.service.UpdateWeatherData(context.Background())
		assert.Nil(t, summary)
		assert.Error(t, err)
	})
}
