package spreadsheet

import (
	"context"

	"github.com/vfg2006/weather-bid-manager/internal/domain"
)

// WeatherSheet lê e atualiza a aba de localizações
type WeatherSheet interface {
	ReadLocationRows(ctx context.Context) ([]*domain.LocationRow, error)
	WriteWeather(ctx context.Context, row *domain.LocationRow) error
}

// BulkSheet cobre a aba exportada do SA360 e a aba Upload
type BulkSheet interface {
	ReadSourceGrid(ctx context.Context) ([][]string, error)
	ReplaceUploadRows(ctx context.Context, rows []*domain.BulkUploadRow) error
	ReadUploadRows(ctx context.Context) ([]*domain.BulkUploadRow, error)
	WriteBidAdjustments(ctx context.Context, rows []*domain.BulkUploadRow) error
}

// RunLog é o log de execução visível na planilha
type RunLog interface {
	Clear(ctx context.Context) error
	Append(ctx context.Context, message string) error
}
