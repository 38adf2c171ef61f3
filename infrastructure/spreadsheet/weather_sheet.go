package spreadsheet

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/api/sheets/v4"

	"github.com/vfg2006/weather-bid-manager/internal/domain"
)

var ErrInvalidSheetRow = errors.New("linha da planilha inválida")

// ReadLocationRows lê a aba Weather e memoriza as colunas encontradas no cabeçalho
func (c *SheetsClient) ReadLocationRows(ctx context.Context) ([]*domain.LocationRow, error) {
	values, err := c.getValues(ctx, sheetRange(c.names.WeatherSheet, ""), renderUnformatted)
	if err != nil {
		return nil, err
	}

	rows, columns := parseLocationRows(values)

	c.mu.Lock()
	c.weatherLayout = columns
	c.mu.Unlock()

	return rows, nil
}

// WriteWeather grava condição e temperatura da linha nas colunas da aba Weather
func (c *SheetsClient) WriteWeather(ctx context.Context, row *domain.LocationRow) error {
	if row == nil || row.SheetRow < 2 {
		return ErrInvalidSheetRow
	}

	c.mu.Lock()
	columns := c.weatherLayout
	c.mu.Unlock()

	var temperature interface{} = ""
	if row.Temperature != nil {
		temperature = *row.Temperature
	}

	request := &sheets.BatchUpdateValuesRequest{
		ValueInputOption: inputRaw,
		Data: []*sheets.ValueRange{
			{
				Range:  sheetRange(c.names.WeatherSheet, cellAddress(columns.condition, row.SheetRow)),
				Values: [][]interface{}{{row.WeatherCondition}},
			},
			{
				Range:  sheetRange(c.names.WeatherSheet, cellAddress(columns.temperature, row.SheetRow)),
				Values: [][]interface{}{{temperature}},
			},
		},
	}

	_, err := c.service.Spreadsheets.Values.
		BatchUpdate(c.spreadsheetID, request).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("erro ao gravar o clima da linha %d: %w", row.SheetRow, err)
	}

	return nil
}
