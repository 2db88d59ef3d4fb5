package columns

import (
	"fmt"

	"github.com/simaogato/shifttrade-backend/internal/domain"
)

// Absent marks a field that has no column in the input
const Absent = -1

// Field identifies one semantic field of a trade row
type Field int

const (
	PersonA Field = iota
	PersonB
	Date
	StartTime
	EndTime
	Hours
)

func (f Field) String() string {
	switch f {
	case PersonA:
		return "Person 1"
	case PersonB:
		return "Person 2"
	case Date:
		return "Trade Date"
	case StartTime:
		return "Trade Start Time"
	case EndTime:
		return "Trade End Time"
	case Hours:
		return "Hours"
	default:
		return fmt.Sprintf("Field(%d)", int(f))
	}
}

// FieldMap maps every semantic field to a zero-based column index, or Absent
type FieldMap struct {
	PersonA   int
	PersonB   int
	Date      int
	StartTime int
	EndTime   int
	Hours     int
}

// DefaultLayout is the positional convention of trade workbooks:
// columns E, F, G, H and K
var DefaultLayout = FieldMap{
	PersonA:   4,
	Date:      5,
	StartTime: 6,
	EndTime:   7,
	PersonB:   10,
	Hours:     Absent,
}

// NewFieldMap returns a map with every field absent
func NewFieldMap() FieldMap {
	return FieldMap{
		PersonA:   Absent,
		PersonB:   Absent,
		Date:      Absent,
		StartTime: Absent,
		EndTime:   Absent,
		Hours:     Absent,
	}
}

// Index returns the column of a field
func (m FieldMap) Index(f Field) int {
	switch f {
	case PersonA:
		return m.PersonA
	case PersonB:
		return m.PersonB
	case Date:
		return m.Date
	case StartTime:
		return m.StartTime
	case EndTime:
		return m.EndTime
	case Hours:
		return m.Hours
	default:
		return Absent
	}
}

func (m *FieldMap) set(f Field, idx int) {
	switch f {
	case PersonA:
		m.PersonA = idx
	case PersonB:
		m.PersonB = idx
	case Date:
		m.Date = idx
	case StartTime:
		m.StartTime = idx
	case EndTime:
		m.EndTime = idx
	case Hours:
		m.Hours = idx
	}
}

// Values are the raw cells of one row, keyed by semantic field.
// Absent fields hold empty cells.
type Values struct {
	PersonA   domain.Cell
	PersonB   domain.Cell
	Date      domain.Cell
	StartTime domain.Cell
	EndTime   domain.Cell
	Hours     domain.Cell
}

// Extract reads the cells of every field from a row
func (m FieldMap) Extract(row domain.Row) Values {
	return Values{
		PersonA:   row.At(m.PersonA),
		PersonB:   row.At(m.PersonB),
		Date:      row.At(m.Date),
		StartTime: row.At(m.StartTime),
		EndTime:   row.At(m.EndTime),
		Hours:     row.At(m.Hours),
	}
}

// Resolver locates the semantic fields of a batch
type Resolver interface {
	// Resolve returns the field map for the batch and the rows that carry data
	Resolve(grid domain.Grid) (FieldMap, domain.Grid, error)
}

// ForMode returns the resolver for a column mode
func ForMode(mode domain.ColumnMode) (Resolver, error) {
	switch mode {
	case domain.ColumnModeFixed:
		return Fixed{Layout: DefaultLayout}, nil
	case domain.ColumnModeFuzzy:
		return Fuzzy{Synonyms: DefaultSynonyms}, nil
	default:
		return nil, fmt.Errorf("unknown column mode %q", mode)
	}
}
