package spreadsheet

import (
	"strconv"
	"strings"

	"github.com/vfg2006/weather-bid-manager/internal/domain"
)

// weatherColumns guarda os índices (0-based) das colunas da aba Weather
type weatherColumns struct {
	apiLocation   int
	sa360Location int
	condition     int
	temperature   int
	bidAdjustment int
}

func defaultWeatherColumns() weatherColumns {
	return weatherColumns{
		apiLocation:   0,
		sa360Location: 1,
		condition:     2,
		temperature:   3,
		bidAdjustment: 4,
	}
}

// resolveWeatherColumns procura cada cabeçalho por "contém", parando na
// primeira célula vazia. Cabeçalhos não encontrados mantêm a posição padrão A..E.
func resolveWeatherColumns(header []interface{}) weatherColumns {
	columns := defaultWeatherColumns()

	for i := range header {
		title := cellString(header, i)
		if title == "" {
			break
		}

		switch {
		case strings.Contains(title, domain.HeaderLocationNameAPI):
			columns.apiLocation = i
		case strings.Contains(title, domain.HeaderLocationNameSA360):
			columns.sa360Location = i
		case strings.Contains(title, domain.HeaderWeatherCondition):
			columns.condition = i
		case strings.Contains(title, domain.HeaderWeatherTemp):
			columns.temperature = i
		case strings.Contains(title, domain.HeaderBidAdjustment):
			columns.bidAdjustment = i
		}
	}

	return columns
}

// parseLocationRows converte os valores da aba Weather (cabeçalho incluso) em linhas
func parseLocationRows(values [][]interface{}) ([]*domain.LocationRow, weatherColumns) {
	if len(values) == 0 {
		return nil, defaultWeatherColumns()
	}

	columns := resolveWeatherColumns(values[0])
	rows := make([]*domain.LocationRow, 0, len(values)-1)

	for i, cells := range values[1:] {
		row := &domain.LocationRow{
			SheetRow:          i + 2,
			APILocationName:   cellString(cells, columns.apiLocation),
			SA360LocationName: cellString(cells, columns.sa360Location),
			WeatherCondition:  cellString(cells, columns.condition),
			Temperature:       cellFloat(cells, columns.temperature),
			BidAdjustment:     cellString(cells, columns.bidAdjustment),
		}
		rows = append(rows, row)
	}

	return rows, columns
}

// cellString devolve a célula como texto; fora do intervalo vira vazio
func cellString(cells []interface{}, index int) string {
	if index < 0 || index >= len(cells) || cells[index] == nil {
		return ""
	}

	switch v := cells[index].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

func cellFloat(cells []interface{}, index int) *float64 {
	raw := strings.TrimSpace(cellString(cells, index))
	if raw == "" {
		return nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}

	return &value
}

// columnLetter converte um índice 0-based na letra da coluna (0 -> A, 26 -> AA)
func columnLetter(index int) string {
	letters := ""
	for n := index + 1; n > 0; n = (n - 1) / 26 {
		letters = string(rune('A'+(n-1)%26)) + letters
	}
	return letters
}

func cellAddress(column, row int) string {
	return columnLetter(column) + strconv.Itoa(row)
}

func toStringRows(values [][]interface{}) [][]string {
	grid := make([][]string, 0, len(values))
	for _, cells := range values {
		row := make([]string, len(cells))
		for i := range cells {
			row[i] = cellString(cells, i)
		}
		grid = append(grid, row)
	}
	return grid
}

func toInterfaceRows(grid [][]string) [][]interface{} {
	values := make([][]interface{}, 0, len(grid))
	for _, row := range grid {
		cells := make([]interface{}, len(row))
		for i, cell := range row {
			cells[i] = cell
		}
		values = append(values, cells)
	}
	return values
}
