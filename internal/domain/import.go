package domain

import (
	"time"

	"github.com/google/uuid"
)

// ImportSource identifies which entry point supplied a batch
type ImportSource string

const (
	ImportSourceWorkbook ImportSource = "WORKBOOK"
	ImportSourceText     ImportSource = "TEXT"
)

// ColumnMode selects how the semantic fields of a row are located
type ColumnMode string

const (
	// ColumnModeFixed reads fields from fixed column positions (E, F, G, H, K)
	ColumnModeFixed ColumnMode = "fixed"
	// ColumnModeFuzzy matches the first row's header names against synonyms
	ColumnModeFuzzy ColumnMode = "fuzzy"
)

// Valid reports whether the mode is a known column mode
func (m ColumnMode) Valid() bool {
	return m == ColumnModeFixed || m == ColumnModeFuzzy
}

// ImportStats counts row outcomes for one batch
type ImportStats struct {
	Rows           int
	Accepted       int
	SkippedHeader  int
	SkippedInvalid int
}

// ImportResult is the uniform outcome of one batch. On failure only Success
// and Message are meaningful; a batch is never partially successful.
type ImportResult struct {
	Success   bool
	Trades    []Trade
	Summaries []PersonSummary
	Message   string
}

// ImportLog is the audit record of one import attempt. It never carries the
// trades themselves.
type ImportLog struct {
	ID             uuid.UUID
	Source         ImportSource
	Mode           ColumnMode
	Rows           int
	Accepted       int
	SkippedHeader  int
	SkippedInvalid int
	Success        bool
	Message        string
	CreatedAt      time.Time
}

// ImportEvent is published once a batch has been processed
type ImportEvent struct {
	ImportID   uuid.UUID    `json:"import_id"`
	Source     ImportSource `json:"source"`
	Mode       ColumnMode   `json:"mode"`
	Success    bool         `json:"success"`
	Trades     int          `json:"trades"`
	People     int          `json:"people"`
	TotalHours string       `json:"total_hours"`
	Message    string       `json:"message"`
	OccurredAt time.Time    `json:"occurred_at"`
}
