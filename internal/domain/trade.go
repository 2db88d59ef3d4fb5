package domain

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxShiftHours is the ceiling applied to any single trade
var MaxShiftHours = decimal.NewFromInt(24)

// Trade represents one recorded instance of Person1 covering a shift for Person2
type Trade struct {
	ID      uuid.UUID
	Person1 string          // Canonical name of the person who worked
	Date    string          // ISO-8601 calendar date when normalizable, raw text otherwise
	Hours   decimal.Decimal // In (0, 24], two decimal places
	Person2 string          // Canonical name of the person who was covered
}

// Validate ensures the trade adheres to domain rules
func (t *Trade) Validate() error {
	if t.Person1 == "" {
		return errors.New("trade person1 cannot be empty")
	}
	if t.Person2 == "" {
		return errors.New("trade person2 cannot be empty")
	}
	if t.Date == "" {
		return errors.New("trade date cannot be empty")
	}
	if t.Hours.LessThanOrEqual(decimal.Zero) {
		return errors.New("trade hours must be positive")
	}
	if t.Hours.GreaterThan(MaxShiftHours) {
		return errors.New("trade hours cannot exceed 24")
	}
	return nil
}

// PersonSummary is the net-hours reconciliation of one person across a batch.
// Total = YouWorked - TheyWorked; positive means hours are owed to the person.
type PersonSummary struct {
	Name       string
	YouWorked  decimal.Decimal
	TheyWorked decimal.Decimal
	Total      decimal.Decimal
}

// CanonicalName trims surrounding whitespace and upper-cases the name
func CanonicalName(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}
