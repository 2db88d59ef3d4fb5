package timeofday

import (
	"github.com/shopspring/decimal"
	"github.com/simaogato/shifttrade-backend/internal/domain"
)

// ElapsedHours returns the hours between two fractions of a day.
// An end earlier than the start is an overnight shift and wraps past midnight.
// The result never exceeds 24.
func ElapsedHours(start, end float64) float64 {
	diff := (end - start) * 24
	if diff < 0 {
		diff += 24
	}
	if diff > 24 {
		diff = 24
	}
	return diff
}

// ShiftHours parses both cells and returns the elapsed hours rounded to two
// decimal places. If either time cannot be parsed the result is zero.
func ShiftHours(startCell, endCell domain.Cell) decimal.Decimal {
	start, err := Parse(startCell)
	if err != nil {
		return decimal.Zero
	}
	end, err := Parse(endCell)
	if err != nil {
		return decimal.Zero
	}

	hours := decimal.NewFromFloat(ElapsedHours(start, end)).Round(2)
	if hours.GreaterThan(domain.MaxShiftHours) {
		return domain.MaxShiftHours
	}
	return hours
}
