package datenorm

import (
	"math"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/simaogato/shifttrade-backend/internal/domain"
)

const isoDate = "2006-01-02"

// maxSerial is the serial of 9999-12-31, the last date a workbook can hold
const maxSerial = 2958465

var textLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006/01/02",
	"1/2/2006",
	"01/02/2006",
	"1/2/06",
	"01/02/06",
	"1-2-2006",
	"01-02-2006",
	"1/2/2006 3:04 PM",
	"1/2/2006 3:04PM",
	"1/2/2006 3:04:05 PM",
	"1/2/2006 15:04",
	"1/2/2006 15:04:05",
	"Jan 2, 2006",
	"Jan 2 2006",
	"January 2, 2006",
	"January 2 2006",
	"Mon, Jan 2, 2006",
	"Mon Jan 2 2006",
	"Monday, January 2, 2006",
	"2 Jan 2006",
	"2 January 2006",
	time.RFC1123,
	time.RFC1123Z,
}

// Normalize converts a raw date cell into a YYYY-MM-DD string.
// Numeric cells are spreadsheet serial dates. Text that cannot be read as a
// calendar date is returned unchanged; normalization never fails.
func Normalize(cell domain.Cell) string {
	switch cell.Kind {
	case domain.CellNumber:
		if date, ok := FromSerial(cell.Number); ok {
			return date
		}
		return cell.String()
	case domain.CellText:
		if date, ok := FromText(cell.Text); ok {
			return date
		}
		return cell.Text
	default:
		return cell.String()
	}
}

// FromSerial converts a spreadsheet serial date (1900 date system) to its
// calendar date. Any time-of-day fraction is dropped after conversion.
// Negative serials and serials past 9999-12-31 are rejected.
func FromSerial(serial float64) (string, bool) {
	if math.IsNaN(serial) || math.IsInf(serial, 0) || serial < 0 || serial > maxSerial {
		return "", false
	}

	t, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return "", false
	}
	return t.UTC().Format(isoDate), true
}

// FromText parses common US and ISO calendar formats and returns the UTC
// calendar date of the parsed instant
func FromText(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	for _, layout := range textLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC().Format(isoDate), true
		}
	}
	return "", false
}
