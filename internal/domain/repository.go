package domain

import "context"

// WorkbookReader decodes a binary workbook into the raw cell grid of its first sheet
type WorkbookReader interface {
	// ReadGrid returns the rows of the first worksheet, in sheet order
	ReadGrid(data []byte) (Grid, error)
}

// ImportLogRepository defines the interface for import audit persistence
type ImportLogRepository interface {
	// Create stores a new import log entry
	Create(ctx context.Context, entry *ImportLog) error

	// ListRecent retrieves the most recent entries, newest first
	ListRecent(ctx context.Context, limit int) ([]*ImportLog, error)
}

// ImportEventPublisher announces processed batches to downstream consumers
type ImportEventPublisher interface {
	Publish(ctx context.Context, event ImportEvent) error
}

// ImportRecorder records per-batch metrics
type ImportRecorder interface {
	RecordImport(source ImportSource, mode ColumnMode, stats ImportStats, success bool)
}
