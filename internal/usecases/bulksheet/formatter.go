package bulksheet

import (
	"github.com/vfg2006/weather-bid-manager/internal/domain"
)

// Format converte a exportação do SA360 (cabeçalho na primeira linha) nas linhas
// "location target" com as colunas fixas do bulk sheet. O tipo da linha é lido
// sempre da primeira coluna e comparado de forma exata. Colunas ausentes na
// origem ficam vazias; a ordem relativa das linhas é preservada.
func Format(source [][]string) []*domain.BulkUploadRow {
	rows := []*domain.BulkUploadRow{}
	if len(source) == 0 {
		return rows
	}

	indexes := resolveHeaderIndexes(source[0])

	for _, line := range source[1:] {
		if cell(line, 0) != domain.RowTypeLocationTarget {
			continue
		}

		cells := make([]string, len(indexes))
		for i, index := range indexes {
			cells[i] = cell(line, index)
		}

		rows = append(rows, domain.NewBulkUploadRow(cells))
	}

	return rows
}

// resolveHeaderIndexes devolve, para cada cabeçalho fixo, a coluna correspondente na origem (-1 se ausente)
func resolveHeaderIndexes(header []string) []int {
	positions := make(map[string]int, len(header))
	for i, title := range header {
		if _, exists := positions[title]; !exists {
			positions[title] = i
		}
	}

	indexes := make([]int, len(domain.BulkSheetHeaders))
	for i, title := range domain.BulkSheetHeaders {
		index, ok := positions[title]
		if !ok {
			index = -1
		}
		indexes[i] = index
	}

	return indexes
}

func cell(line []string, index int) string {
	if index < 0 || index >= len(line) {
		return ""
	}
	return line[index]
}
