package spreadsheet

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/vfg2006/weather-bid-manager/internal/config"
)

const (
	renderFormatted   = "FORMATTED_VALUE"
	renderUnformatted = "UNFORMATTED_VALUE"
	inputRaw          = "RAW"
)

type SheetsClient struct {
	service       *sheets.Service
	spreadsheetID string
	names         config.Sheets
	location      *time.Location
	now           func() time.Time

	mu            sync.Mutex
	weatherLayout weatherColumns
}

func NewSheetsClient(ctx context.Context, cfg *config.Config) (*SheetsClient, error) {
	opts := []option.ClientOption{option.WithScopes(sheets.SpreadsheetsScope)}
	if cfg.Sheets.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Sheets.CredentialsFile))
	}

	service, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar o serviço do Google Sheets: %w", err)
	}

	return NewSheetsClientWithService(cfg, service), nil
}

func NewSheetsClientWithService(cfg *config.Config, service *sheets.Service) *SheetsClient {
	location := cfg.RunLogLocation
	if location == nil {
		location = time.UTC
	}

	return &SheetsClient{
		service:       service,
		spreadsheetID: cfg.Sheets.SpreadsheetID,
		names:         cfg.Sheets,
		location:      location,
		now:           time.Now,
		weatherLayout: defaultWeatherColumns(),
	}
}

func (c *SheetsClient) getValues(ctx context.Context, rng, render string) ([][]interface{}, error) {
	resp, err := c.service.Spreadsheets.Values.
		Get(c.spreadsheetID, rng).
		ValueRenderOption(render).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("erro ao ler %s: %w", rng, err)
	}

	return resp.Values, nil
}

func (c *SheetsClient) updateValues(ctx context.Context, rng string, values [][]interface{}) error {
	_, err := c.service.Spreadsheets.Values.
		Update(c.spreadsheetID, rng, &sheets.ValueRange{Values: values}).
		ValueInputOption(inputRaw).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("erro ao gravar %s: %w", rng, err)
	}

	return nil
}

func (c *SheetsClient) clearValues(ctx context.Context, rng string) error {
	_, err := c.service.Spreadsheets.Values.
		Clear(c.spreadsheetID, rng, &sheets.ClearValuesRequest{}).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("erro ao limpar %s: %w", rng, err)
	}

	return nil
}

// sheetRange monta a notação A1 com o nome da aba entre aspas simples
func sheetRange(sheet, cells string) string {
	quoted := "'" + strings.ReplaceAll(sheet, "'", "''") + "'"
	if cells == "" {
		return quoted
	}
	return quoted + "!" + cells
}
