package spreadsheet

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"google.golang.org/api/sheets/v4"

	"github.com/vfg2006/weather-bid-manager/internal/domain"
)

type sheetTemplate struct {
	title  string
	header []interface{}
}

func (c *SheetsClient) templates() []sheetTemplate {
	return []sheetTemplate{
		{title: c.names.WeatherSheet, header: toInterfaceRows([][]string{domain.WeatherSheetHeaders})[0]},
		{title: c.names.UploadSheet, header: toInterfaceRows([][]string{domain.BulkSheetHeaders})[0]},
		{title: c.names.SourceSheet},
		{title: c.names.LogSheet, header: runLogHeader},
	}
}

// EnsureSheets cria as abas que faltam na planilha, já com o cabeçalho.
// Abas existentes não são alteradas. Devolve os nomes das abas criadas.
func (c *SheetsClient) EnsureSheets(ctx context.Context) ([]string, error) {
	spreadsheet, err := c.service.Spreadsheets.
		Get(c.spreadsheetID).
		Fields("sheets.properties.title").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("erro ao ler as abas da planilha: %w", err)
	}

	existing := make(map[string]struct{}, len(spreadsheet.Sheets))
	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties != nil {
			existing[sheet.Properties.Title] = struct{}{}
		}
	}

	var (
		requests []*sheets.Request
		missing  []sheetTemplate
	)
	for i, template := range c.templates() {
		if _, ok := existing[template.title]; ok {
			continue
		}

		missing = append(missing, template)
		requests = append(requests, &sheets.Request{
			AddSheet: &sheets.AddSheetRequest{
				Properties: &sheets.SheetProperties{
					Title:           template.title,
					Index:           int64(i + 1),
					ForceSendFields: []string{"Index"},
				},
			},
		})
	}

	if len(requests) == 0 {
		return nil, nil
	}

	_, err = c.service.Spreadsheets.
		BatchUpdate(c.spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{Requests: requests}).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("erro ao criar as abas da planilha: %w", err)
	}

	created := make([]string, 0, len(missing))
	for _, template := range missing {
		created = append(created, template.title)
		if len(template.header) == 0 {
			continue
		}

		if err := c.updateValues(ctx, sheetRange(template.title, "A1"), [][]interface{}{template.header}); err != nil {
			return created, err
		}
	}

	logrus.WithField("sheets", created).Info("Abas criadas na planilha")

	return created, nil
}
