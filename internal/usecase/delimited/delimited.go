package delimited

import (
	"strings"

	"github.com/simaogato/shifttrade-backend/internal/domain"
)

// Split turns pasted text into a grid of text cells.
// Lines are split on line breaks and blank lines are dropped. Cells are split
// on tabs when any line contains a tab (copied from a spreadsheet), otherwise
// on commas.
func Split(text string) domain.Grid {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	lines := make([]string, 0)
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}

	delimiter := Delimiter(lines)

	grid := make(domain.Grid, 0, len(lines))
	for _, line := range lines {
		parts := strings.Split(line, delimiter)
		row := make(domain.Row, len(parts))
		for i, part := range parts {
			row[i] = domain.TextCell(strings.TrimSpace(part))
		}
		grid = append(grid, row)
	}

	return grid
}

// Delimiter returns "\t" if any line contains a tab, "," otherwise
func Delimiter(lines []string) string {
	for _, line := range lines {
		if strings.Contains(line, "\t") {
			return "\t"
		}
	}
	return ","
}
