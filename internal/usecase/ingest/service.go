package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/simaogato/shifttrade-backend/internal/domain"
	"github.com/simaogato/shifttrade-backend/internal/usecase/delimited"
	"github.com/simaogato/shifttrade-backend/internal/usecase/reconcile"
)

const (
	// DefaultMaxUploadBytes bounds the size of a workbook accepted for decoding
	DefaultMaxUploadBytes = 10 << 20

	DefaultRecentImports = 20
	MaxRecentImports     = 200
)

// ImportService handles shift-trade imports from workbooks and pasted text
type ImportService struct {
	WorkbookReader domain.WorkbookReader
	ImportLogRepo  domain.ImportLogRepository
	EventPublisher domain.ImportEventPublisher
	Recorder       domain.ImportRecorder
	Logger         *slog.Logger

	WorkbookMode   domain.ColumnMode
	TextMode       domain.ColumnMode
	MaxUploadBytes int
}

// NewImportService creates a new ImportService instance.
// The log repository, publisher and recorder are optional and may be nil.
func NewImportService(
	workbookReader domain.WorkbookReader,
	importLogRepo domain.ImportLogRepository,
	eventPublisher domain.ImportEventPublisher,
	recorder domain.ImportRecorder,
	logger *slog.Logger,
) *ImportService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ImportService{
		WorkbookReader: workbookReader,
		ImportLogRepo:  importLogRepo,
		EventPublisher: eventPublisher,
		Recorder:       recorder,
		Logger:         logger,
		WorkbookMode:   domain.ColumnModeFixed,
		TextMode:       domain.ColumnModeFuzzy,
		MaxUploadBytes: DefaultMaxUploadBytes,
	}
}

// ImportWorkbook decodes a workbook and runs the first sheet through the
// pipeline. An empty mode selects the service's workbook default.
func (s *ImportService) ImportWorkbook(ctx context.Context, data []byte, mode domain.ColumnMode) domain.ImportResult {
	if mode == "" {
		mode = s.WorkbookMode
	}

	grid, err := s.readWorkbook(data)
	if err != nil {
		return s.finish(ctx, domain.ImportSourceWorkbook, mode, nil, domain.ImportStats{}, err)
	}

	batch, stats, err := Process(grid, mode)
	return s.finish(ctx, domain.ImportSourceWorkbook, mode, batch, stats, err)
}

// ImportText splits pasted delimited text and runs it through the pipeline.
// An empty mode selects the service's text default.
func (s *ImportService) ImportText(ctx context.Context, text string, mode domain.ColumnMode) domain.ImportResult {
	if mode == "" {
		mode = s.TextMode
	}

	if strings.TrimSpace(text) == "" {
		return s.finish(ctx, domain.ImportSourceText, mode, nil, domain.ImportStats{}, domain.ErrEmptyInput)
	}

	batch, stats, err := Process(delimited.Split(text), mode)
	return s.finish(ctx, domain.ImportSourceText, mode, batch, stats, err)
}

// Reconcile re-aggregates a caller-held list of trades
func (s *ImportService) Reconcile(trades []domain.Trade) ([]domain.PersonSummary, error) {
	for i := range trades {
		if err := trades[i].Validate(); err != nil {
			return nil, fmt.Errorf("trade %d: %w", i+1, err)
		}
	}
	return reconcile.Aggregate(trades), nil
}

// RecentImports returns the newest audit log entries, newest first.
// A non-positive limit selects DefaultRecentImports.
func (s *ImportService) RecentImports(ctx context.Context, limit int) ([]*domain.ImportLog, error) {
	if s.ImportLogRepo == nil {
		return nil, domain.ErrAuditLogDisabled
	}
	if limit <= 0 {
		limit = DefaultRecentImports
	}
	if limit > MaxRecentImports {
		limit = MaxRecentImports
	}

	entries, err := s.ImportLogRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list import logs: %w", err)
	}
	return entries, nil
}

func (s *ImportService) readWorkbook(data []byte) (domain.Grid, error) {
	if len(data) == 0 {
		return nil, domain.ErrEmptyInput
	}
	if s.MaxUploadBytes > 0 && len(data) > s.MaxUploadBytes {
		return nil, domain.ErrPayloadTooLarge
	}
	if s.WorkbookReader == nil {
		return nil, errors.New("workbook reader is not configured")
	}
	return s.WorkbookReader.ReadGrid(data)
}

// finish converts the pipeline outcome into the uniform result and performs
// the best-effort side effects: metrics, audit log and event.
func (s *ImportService) finish(
	ctx context.Context,
	source domain.ImportSource,
	mode domain.ColumnMode,
	batch *Batch,
	stats domain.ImportStats,
	err error,
) domain.ImportResult {
	var result domain.ImportResult
	if err != nil {
		result = domain.ImportResult{Success: false, Message: failureMessage(err)}
	} else {
		result = domain.ImportResult{
			Success:   true,
			Trades:    batch.Trades,
			Summaries: batch.Summaries,
			Message:   successMessage(len(batch.Trades)),
		}
	}

	logger := s.Logger.With(
		"source", string(source),
		"mode", string(mode),
		"rows", stats.Rows,
		"accepted", stats.Accepted,
		"skipped_header", stats.SkippedHeader,
		"skipped_invalid", stats.SkippedInvalid,
	)
	if err != nil {
		logger.Info("import rejected", "error", err)
	} else {
		logger.Info("import completed", "people", len(batch.Summaries))
	}

	if s.Recorder != nil {
		s.Recorder.RecordImport(source, mode, stats, result.Success)
	}

	entry := &domain.ImportLog{
		ID:             uuid.New(),
		Source:         source,
		Mode:           mode,
		Rows:           stats.Rows,
		Accepted:       stats.Accepted,
		SkippedHeader:  stats.SkippedHeader,
		SkippedInvalid: stats.SkippedInvalid,
		Success:        result.Success,
		Message:        result.Message,
		CreatedAt:      time.Now().UTC(),
	}

	if s.ImportLogRepo != nil {
		if err := s.ImportLogRepo.Create(ctx, entry); err != nil {
			logger.Warn("failed to store import log", "error", err)
		}
	}

	if s.EventPublisher != nil {
		event := domain.ImportEvent{
			ImportID:   entry.ID,
			Source:     source,
			Mode:       mode,
			Success:    result.Success,
			Trades:     len(result.Trades),
			People:     len(result.Summaries),
			TotalHours: reconcile.TotalHours(result.Trades).String(),
			Message:    result.Message,
			OccurredAt: entry.CreatedAt,
		}
		if err := s.EventPublisher.Publish(ctx, event); err != nil {
			logger.Warn("failed to publish import event", "error", err)
		}
	}

	return result
}

func successMessage(n int) string {
	if n == 1 {
		return "Successfully imported 1 trade"
	}
	return fmt.Sprintf("Successfully imported %d trades", n)
}

// failureMessage keeps user-facing domain messages as they are and prefixes
// anything unexpected
func failureMessage(err error) string {
	known := []error{
		domain.ErrEmptyInput,
		domain.ErrNoSheetFound,
		domain.ErrWorkbookDecode,
		domain.ErrUnsupportedFormat,
		domain.ErrPayloadTooLarge,
		domain.ErrMissingRequiredColumns,
		domain.ErrNoValidRows,
	}
	for _, target := range known {
		if errors.Is(err, target) {
			return err.Error()
		}
	}
	return "Error processing import: " + err.Error()
}
