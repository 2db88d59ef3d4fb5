package postgres

import (
	"context"
	"fmt"

	"github.com/simaogato/shifttrade-backend/internal/domain"
)

// importLogRepository implements domain.ImportLogRepository
type importLogRepository struct {
	db *DB
}

// NewImportLogRepository creates a new import log repository
func NewImportLogRepository(db *DB) domain.ImportLogRepository {
	return &importLogRepository{db: db}
}

// Create appends one audit entry
func (r *importLogRepository) Create(ctx context.Context, entry *domain.ImportLog) error {
	query := `
		INSERT INTO import_logs (id, source, mode, rows_seen, accepted, skipped_header, skipped_invalid, success, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.ExecContext(ctx, query,
		entry.ID,
		string(entry.Source),
		string(entry.Mode),
		entry.Rows,
		entry.Accepted,
		entry.SkippedHeader,
		entry.SkippedInvalid,
		entry.Success,
		entry.Message,
		entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create import log: %w", err)
	}

	return nil
}

// ListRecent returns up to limit entries, newest first
func (r *importLogRepository) ListRecent(ctx context.Context, limit int) ([]*domain.ImportLog, error) {
	query := `
		SELECT id, source, mode, rows_seen, accepted, skipped_header, skipped_invalid, success, message, created_at
		FROM import_logs
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query import logs: %w", err)
	}
	defer rows.Close()

	var entries []*domain.ImportLog
	for rows.Next() {
		var entry domain.ImportLog
		var source, mode string

		if err := rows.Scan(
			&entry.ID,
			&source,
			&mode,
			&entry.Rows,
			&entry.Accepted,
			&entry.SkippedHeader,
			&entry.SkippedInvalid,
			&entry.Success,
			&entry.Message,
			&entry.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan import log: %w", err)
		}

		entry.Source = domain.ImportSource(source)
		entry.Mode = domain.ColumnMode(mode)
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating import logs: %w", err)
	}

	return entries, nil
}
