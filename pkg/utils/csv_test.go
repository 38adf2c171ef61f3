package utils

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestToCSV(t *testing.T) {
	tests := []struct {
		name string
		grid [][]string
		want string
	}{
		{
			name: "Grade vazia gera texto vazio",
			grid: [][]string{},
			want: "",
		},
		{
			name: "Grade nula gera texto vazio",
			grid: nil,
			want: "",
		},
		{
			name: "Vírgula e aspas são escapadas",
			grid: [][]string{{"a,b", `He said "hi"`, "plain"}},
			want: `"a,b","He said ""hi""",plain`,
		},
		{
			name: "Aspas e vírgula na mesma célula não geram aspas duplas extras",
			grid: [][]string{{`x,"y"`}},
			want: `"x,""y"""`,
		},
		{
			name: "Linhas separadas por CRLF sem quebra final",
			grid: [][]string{{"Row Type", "Location"}, {"location target", "Milano"}, {"location target", "Roma"}},
			want: "Row Type,Location\r\nlocation target,Milano\r\nlocation target,Roma",
		},
		{
			name: "Células vazias são preservadas",
			grid: [][]string{{"", "a", ""}},
			want: ",a,",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToCSV(tt.grid))
		})
	}
}

func TestToCSV_RoundTrip(t *testing.T) {
	grid := [][]string{
		{"Row Type", "Location", "Location bid adjustment %"},
		{"location target", "Milano, Lombardia", "12%"},
		{"location target", `Roma "centro"`, "-5%"},
		{"location target", "Napoli", ""},
	}

	csv := ToCSV(grid)
	lines := strings.Split(csv, "\r\n")
	assert.Len(t, lines, len(grid))

	parsed := make([][]string, 0, len(lines))
	for _, line := range lines {
		parsed = append(parsed, splitCSVLine(line))
	}

	if diff := cmp.Diff(grid, parsed); diff != "" {
		t.Errorf("round trip divergente (-esperado +obtido):\n%s", diff)
	}
}

// splitCSVLine separa uma linha em células respeitando aspas
func splitCSVLine(line string) []string {
	cells := []string{}
	var current strings.Builder
	inQuotes := false

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '"' && inQuotes && i+1 < len(line) && line[i+1] == '"':
			current.WriteByte('"')
			i++
		case c == '"':
			inQuotes = !inQuotes
		case c == ',' && !inQuotes:
			cells = append(cells, current.String())
			current.Reset()
		default:
			current.WriteByte(c)
		}
	}

	return append(cells, current.String())
}
