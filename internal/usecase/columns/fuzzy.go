package columns

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/simaogato/shifttrade-backend/internal/domain"
)

// Synonyms lists the accepted header names of one field, highest priority first
type Synonyms struct {
	Field Field
	Names []string
}

// DefaultSynonyms is evaluated in order; a header claimed by an earlier field
// is not offered to later ones
var DefaultSynonyms = []Synonyms{
	{Field: PersonA, Names: []string{"person 1", "person1", "name1", "employee1", "from", "employee"}},
	{Field: PersonB, Names: []string{"person 2", "person2", "name2", "employee2", "to", "partner"}},
	{Field: Date, Names: []string{"trade date", "date", "shift date"}},
	{Field: StartTime, Names: []string{"trade start time", "start time", "start", "time start"}},
	{Field: EndTime, Names: []string{"trade end time", "end time", "end", "time end"}},
	{Field: Hours, Names: []string{"hours", "hour", "duration"}},
}

var requiredFields = []Field{PersonA, PersonB, Date}

// Fuzzy resolves fields from the first non-blank row, matching header names
// case-insensitively against each field's synonyms. A header matches a
// synonym when it equals or contains it.
type Fuzzy struct {
	Synonyms []Synonyms
}

func (f Fuzzy) Resolve(grid domain.Grid) (FieldMap, domain.Grid, error) {
	// Leading blank rows come from sheets whose table starts below row 1
	for len(grid) > 0 && grid[0].IsBlank() {
		grid = grid[1:]
	}
	if len(grid) == 0 {
		return FieldMap{}, nil, domain.ErrEmptyInput
	}

	headers := make([]string, len(grid[0]))
	for i, cell := range grid[0] {
		headers[i] = normalizeHeader(cell.String())
	}

	fields := MatchHeaders(headers, f.Synonyms)

	var missing []string
	for _, field := range requiredFields {
		if fields.Index(field) == Absent {
			missing = append(missing, field.String())
		}
	}
	if len(missing) > 0 {
		return FieldMap{}, nil, fmt.Errorf("%w (not found: %s)", domain.ErrMissingRequiredColumns, strings.Join(missing, ", "))
	}

	return fields, grid[1:], nil
}

// MatchHeaders assigns each field the first unclaimed header matching its
// synonyms. Synonym priority wins over column order; column order breaks ties.
func MatchHeaders(headers []string, synonyms []Synonyms) FieldMap {
	fields := NewFieldMap()
	claimed := make(map[int]bool, len(headers))

	for _, set := range synonyms {
		if idx := findHeader(headers, set.Names, claimed); idx != Absent {
			fields.set(set.Field, idx)
			claimed[idx] = true
		}
	}

	return fields
}

func findHeader(headers []string, names []string, claimed map[int]bool) int {
	for _, name := range names {
		for i, header := range headers {
			if header == "" || claimed[i] {
				continue
			}
			if headerMatches(header, name) {
				return i
			}
		}
	}
	return Absent
}

func headerMatches(header, name string) bool {
	if header == name || strings.Contains(header, name) {
		return true
	}
	// "employee1" also matches "Employee 1 Name"
	if endsInDigit(name) {
		return strings.Contains(strings.ReplaceAll(header, " ", ""), name)
	}
	return false
}

func endsInDigit(s string) bool {
	if s == "" {
		return false
	}
	return unicode.IsDigit(rune(s[len(s)-1]))
}

// normalizeHeader lower-cases, trims and collapses inner whitespace
func normalizeHeader(header string) string {
	return strings.Join(strings.Fields(strings.ToLower(header)), " ")
}
