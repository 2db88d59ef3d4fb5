package tradebuilder

import (
	"math"
	"regexp"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/shifttrade-backend/internal/domain"
	"github.com/simaogato/shifttrade-backend/internal/usecase/columns"
	"github.com/simaogato/shifttrade-backend/internal/usecase/datenorm"
	"github.com/simaogato/shifttrade-backend/internal/usecase/timeofday"
)

// Outcome is the terminal state of one row
type Outcome int

const (
	Accepted Outcome = iota
	SkippedHeader
	SkippedInvalid
)

func (o Outcome) String() string {
	switch o {
	case Accepted:
		return "accepted"
	case SkippedHeader:
		return "skipped_header"
	default:
		return "skipped_invalid"
	}
}

var (
	// A date made only of letters is a header label such as "Trade Date"
	headerDatePattern = regexp.MustCompile(`^[A-Za-z\s]+$`)
	nonNumericPattern = regexp.MustCompile(`[^0-9.\-]`)
)

// Build turns one raw row into a trade.
// Logic:
//  1. Rows without cells are invalid
//  2. A purely alphabetic date marks a header row, which is skipped
//  3. Person 1, Person 2 and Date must be non-empty
//  4. Hours come from Start/End Time when both are present, else from a direct Hours cell
//  5. Hours must be strictly positive after rounding to two decimals
func Build(row domain.Row, fields columns.FieldMap) (*domain.Trade, Outcome) {
	if row.IsBlank() {
		return nil, SkippedInvalid
	}

	values := fields.Extract(row)

	if values.Date.Kind == domain.CellText && headerDatePattern.MatchString(values.Date.Text) {
		return nil, SkippedHeader
	}

	person1 := domain.CanonicalName(values.PersonA.String())
	person2 := domain.CanonicalName(values.PersonB.String())
	if person1 == "" || person2 == "" || values.Date.IsEmpty() {
		return nil, SkippedInvalid
	}

	hours := hoursFor(values)
	if hours.LessThanOrEqual(decimal.Zero) {
		return nil, SkippedInvalid
	}

	trade := &domain.Trade{
		ID:      uuid.New(),
		Person1: person1,
		Date:    datenorm.Normalize(values.Date),
		Hours:   hours,
		Person2: person2,
	}
	if err := trade.Validate(); err != nil {
		return nil, SkippedInvalid
	}

	return trade, Accepted
}

// BuildBatch runs Build over every row, preserving input order.
// Returns domain.ErrNoValidRows when no row is accepted.
func BuildBatch(rows domain.Grid, fields columns.FieldMap) ([]domain.Trade, domain.ImportStats, error) {
	stats := domain.ImportStats{Rows: len(rows)}
	trades := make([]domain.Trade, 0, len(rows))

	for _, row := range rows {
		trade, outcome := Build(row, fields)
		switch outcome {
		case Accepted:
			trades = append(trades, *trade)
			stats.Accepted++
		case SkippedHeader:
			stats.SkippedHeader++
		default:
			stats.SkippedInvalid++
		}
	}

	if len(trades) == 0 {
		return nil, stats, domain.ErrNoValidRows
	}

	return trades, stats, nil
}

func hoursFor(values columns.Values) decimal.Decimal {
	if !values.StartTime.IsEmpty() && !values.EndTime.IsEmpty() {
		return timeofday.ShiftHours(values.StartTime, values.EndTime)
	}
	return directHours(values.Hours)
}

// directHours reads an Hours cell such as 7.5 or "7.5 hrs"
func directHours(cell domain.Cell) decimal.Decimal {
	var hours decimal.Decimal

	switch cell.Kind {
	case domain.CellNumber:
		if math.IsNaN(cell.Number) || math.IsInf(cell.Number, 0) {
			return decimal.Zero
		}
		hours = decimal.NewFromFloat(cell.Number)
	case domain.CellText:
		parsed, err := decimal.NewFromString(nonNumericPattern.ReplaceAllString(cell.Text, ""))
		if err != nil {
			return decimal.Zero
		}
		hours = parsed
	default:
		return decimal.Zero
	}

	hours = hours.Round(2)
	if hours.GreaterThan(domain.MaxShiftHours) {
		return domain.MaxShiftHours
	}
	return hours
}
