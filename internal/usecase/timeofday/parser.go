package timeofday

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/simaogato/shifttrade-backend/internal/domain"
)

var (
	usDateTimePattern  = regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{4}\s+(\d{1,2}:\d{2}(?::\d{2})?(?:\s*[AaPp][Mm])?)$`)
	isoDateTimePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}(?:T|\s+)(\d{1,2}:\d{2}(?::\d{2})?)(?:\.\d+)?(?:Z|[+-]\d{2}:?\d{2})?$`)
	clockPattern       = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?::(\d{2}))?\s*([AaPp][Mm])?$`)
)

// Parse converts a raw cell into a fraction of a day.
// Numeric cells are spreadsheet times (possibly carrying a date serial in the
// integer part, which is discarded). Text cells are parsed by ParseText.
// Empty cells fail with domain.ErrInvalidTime.
func Parse(cell domain.Cell) (float64, error) {
	switch cell.Kind {
	case domain.CellNumber:
		if math.IsNaN(cell.Number) || math.IsInf(cell.Number, 0) {
			return 0, domain.ErrInvalidTime
		}
		frac := math.Mod(cell.Number, 1)
		if frac < 0 {
			frac++
		}
		return frac, nil
	case domain.CellText:
		return ParseText(cell.Text)
	default:
		return 0, domain.ErrInvalidTime
	}
}

// ParseText converts a textual time into a fraction of a day.
// Accepted forms, tried in order:
//   - a date followed by a time ("1/2/2024 9:00 AM", "2024-01-02 17:30"); only the time is used
//   - an RFC3339 timestamp ("1899-12-30T09:00:00Z"); the wall clock is used and the offset ignored
//   - a 12 or 24 hour clock time ("9:00 AM", "17:30", "5:15:30 pm")
//   - a decimal fraction of a day between 0 and 1 ("0.375")
func ParseText(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, domain.ErrInvalidTime
	}

	if m := usDateTimePattern.FindStringSubmatch(s); m != nil {
		return parseClock(m[1])
	}
	if m := isoDateTimePattern.FindStringSubmatch(s); m != nil {
		return parseClock(m[1])
	}
	if clockPattern.MatchString(s) {
		return parseClock(s)
	}

	if v, err := strconv.ParseFloat(s, 64); err == nil && v >= 0 && v <= 1 {
		return v, nil
	}

	return 0, fmt.Errorf("%w: %q", domain.ErrInvalidTime, s)
}

// parseClock parses H:MM[:SS] [AM|PM]
func parseClock(s string) (float64, error) {
	m := clockPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidTime, s)
	}

	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	second := 0
	if m[3] != "" {
		second, _ = strconv.Atoi(m[3])
	}

	switch strings.ToUpper(m[4]) {
	case "AM":
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour != 12 {
			hour += 12
		}
	}

	if hour > 23 || minute > 59 || second > 59 {
		return 0, fmt.Errorf("%w: %q out of range", domain.ErrInvalidTime, s)
	}

	return float64(hour*3600+minute*60+second) / 86400, nil
}
