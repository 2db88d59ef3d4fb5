package domain

import (
	"strconv"
	"strings"
)

// CellKind represents the type of value held by a raw input cell
type CellKind int

const (
	CellEmpty CellKind = iota
	CellText
	CellNumber
)

// Cell is one raw value of an input grid, as supplied by a workbook decoder
// or by the pasted-text splitter. Numeric cells keep the spreadsheet encoding
// (serial dates, fraction-of-day times) untouched.
type Cell struct {
	Kind   CellKind
	Text   string
	Number float64
}

// Row is one ordered row of raw cells
type Row []Cell

// Grid is the full raw input of one batch, in input order
type Grid []Row

// TextCell builds a text cell. Blank text yields an empty cell.
func TextCell(s string) Cell {
	if strings.TrimSpace(s) == "" {
		return Cell{Kind: CellEmpty}
	}
	return Cell{Kind: CellText, Text: s}
}

// NumberCell builds a numeric cell
func NumberCell(f float64) Cell {
	return Cell{Kind: CellNumber, Number: f}
}

// IsEmpty reports whether the cell carries no value
func (c Cell) IsEmpty() bool {
	return c.Kind == CellEmpty
}

// String returns the cell value as text. Numbers are rendered in their
// shortest exact decimal form.
func (c Cell) String() string {
	switch c.Kind {
	case CellText:
		return c.Text
	case CellNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	default:
		return ""
	}
}

// At returns the cell at index i, or an empty cell when i is out of range
func (r Row) At(i int) Cell {
	if i < 0 || i >= len(r) {
		return Cell{}
	}
	return r[i]
}

// IsBlank reports whether the row has no cells or only empty cells
func (r Row) IsBlank() bool {
	for _, c := range r {
		if !c.IsEmpty() {
			return false
		}
	}
	return true
}
