package utils

import "strings"

const csvLineBreak = "\r\n"

// ToCSV converte uma grade de células em texto CSV.
// Cada célula é escapada de forma independente: aspas são duplicadas e a célula
// é envolvida em aspas; células com vírgula também são envolvidas (uma vez só).
// As linhas são separadas por CRLF, sem quebra após a última.
func ToCSV(grid [][]string) string {
	var sb strings.Builder

	for i, row := range grid {
		for j, cell := range row {
			if j > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(escapeCSVCell(cell))
		}

		if i < len(grid)-1 {
			sb.WriteString(csvLineBreak)
		}
	}

	return sb.String()
}

func escapeCSVCell(cell string) string {
	quoted := false
	if strings.Contains(cell, `"`) {
		cell = `"` + strings.ReplaceAll(cell, `"`, `""`) + `"`
		quoted = true
	}

	if !quoted && strings.Contains(cell, ",") {
		cell = `"` + cell + `"`
	}

	return cell
}
