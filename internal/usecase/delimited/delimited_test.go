package delimited

import (
	"testing"

	"github.com/simaogato/shifttrade-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strings2D(grid domain.Grid) [][]string {
	out := make([][]string, len(grid))
	for i, row := range grid {
		out[i] = make([]string, len(row))
		for j, cell := range row {
			out[i][j] = cell.String()
		}
	}
	return out
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		text string
		want [][]string
	}{
		{
			name: "comma separated",
			text: "Person 1,Trade Date,Person 2\nalice, 1/2/2024 ,bob",
			want: [][]string{{"Person 1", "Trade Date", "Person 2"}, {"alice", "1/2/2024", "bob"}},
		},
		{
			name: "tab separated wins when any line has a tab",
			text: "a,b\tc\nd\te",
			want: [][]string{{"a,b", "c"}, {"d", "e"}},
		},
		{
			name: "windows line endings and blank lines",
			text: "a,b\r\n\r\n  \r\nc,d\r\n",
			want: [][]string{{"a", "b"}, {"c", "d"}},
		},
		{
			name: "empty text",
			text: "   \n\n",
			want: [][]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, strings2D(Split(tt.text)))
		})
	}
}

func TestSplit_CellsAreText(t *testing.T) {
	grid := Split("alice,0.375,\n")
	require.Len(t, grid, 1)
	require.Len(t, grid[0], 3)

	assert.Equal(t, domain.CellText, grid[0][1].Kind)
	assert.True(t, grid[0][2].IsEmpty())
}
