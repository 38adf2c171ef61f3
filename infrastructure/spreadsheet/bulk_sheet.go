package spreadsheet

import (
	"context"
	"fmt"

	"github.com/vfg2006/weather-bid-manager/internal/domain"
)

func (c *SheetsClient) ReadSourceGrid(ctx context.Context) ([][]string, error) {
	values, err := c.getValues(ctx, sheetRange(c.names.SourceSheet, ""), renderFormatted)
	if err != nil {
		return nil, err
	}

	return toStringRows(values), nil
}

// ReplaceUploadRows limpa a aba Upload e grava cabeçalho + linhas a partir de A1
func (c *SheetsClient) ReplaceUploadRows(ctx context.Context, rows []*domain.BulkUploadRow) error {
	if err := c.clearValues(ctx, sheetRange(c.names.UploadSheet, "")); err != nil {
		return err
	}

	grid := domain.BulkSheetGrid(rows)
	return c.updateValues(ctx, sheetRange(c.names.UploadSheet, "A1"), toInterfaceRows(grid))
}

// ReadUploadRows devolve as linhas de dados da aba Upload, na ordem da planilha.
// Linhas em branco são mantidas para preservar a posição de cada linha.
func (c *SheetsClient) ReadUploadRows(ctx context.Context) ([]*domain.BulkUploadRow, error) {
	values, err := c.getValues(ctx, sheetRange(c.names.UploadSheet, ""), renderFormatted)
	if err != nil {
		return nil, err
	}

	if len(values) <= 1 {
		return []*domain.BulkUploadRow{}, nil
	}

	grid := toStringRows(values[1:])
	rows := make([]*domain.BulkUploadRow, 0, len(grid))
	for _, cells := range grid {
		rows = append(rows, domain.NewBulkUploadRow(cells))
	}

	return rows, nil
}

// WriteBidAdjustments grava a coluna de ajuste de lance para as linhas lidas por ReadUploadRows
func (c *SheetsClient) WriteBidAdjustments(ctx context.Context, rows []*domain.BulkUploadRow) error {
	if len(rows) == 0 {
		return nil
	}

	column := columnLetter(domain.BulkColumnLocationBidAdjustment)
	rng := fmt.Sprintf("%s2:%s%d", column, column, len(rows)+1)

	values := make([][]interface{}, 0, len(rows))
	for _, row := range rows {
		values = append(values, []interface{}{row.LocationBidAdjustmentPct})
	}

	return c.updateValues(ctx, sheetRange(c.names.UploadSheet, rng), values)
}
