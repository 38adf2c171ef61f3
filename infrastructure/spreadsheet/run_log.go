package spreadsheet

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"google.golang.org/api/sheets/v4"
)

const runLogTimestampLayout = "2006-01-02 15:04:05 "

var runLogHeader = []interface{}{"Timestamp", "Message"}

// Clear apaga a aba de log e recria o cabeçalho
func (c *SheetsClient) Clear(ctx context.Context) error {
	if err := c.clearValues(ctx, sheetRange(c.names.LogSheet, "")); err != nil {
		return err
	}

	return c.updateValues(ctx, sheetRange(c.names.LogSheet, "A1"), [][]interface{}{runLogHeader})
}

// Append adiciona uma linha (carimbo, mensagem) ao final da aba de log
func (c *SheetsClient) Append(ctx context.Context, message string) error {
	timestamp := c.now().In(c.location).Format(runLogTimestampLayout)

	logrus.WithField("run_log", c.names.LogSheet).Info(message)

	_, err := c.service.Spreadsheets.Values.
		Append(c.spreadsheetID, sheetRange(c.names.LogSheet, "A:B"), &sheets.ValueRange{
			Values: [][]interface{}{{timestamp, message}},
		}).
		ValueInputOption(inputRaw).
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("erro ao registrar no log da planilha: %w", err)
	}

	return nil
}
