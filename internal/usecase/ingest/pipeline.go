package ingest

import (
	"github.com/simaogato/shifttrade-backend/internal/domain"
	"github.com/simaogato/shifttrade-backend/internal/usecase/columns"
	"github.com/simaogato/shifttrade-backend/internal/usecase/reconcile"
	"github.com/simaogato/shifttrade-backend/internal/usecase/tradebuilder"
)

// Batch is the output of one pipeline run
type Batch struct {
	Trades    []domain.Trade
	Summaries []domain.PersonSummary
	Stats     domain.ImportStats
}

// Process runs the normalization and reconciliation pipeline over a raw grid.
// Logic:
//  1. Resolve the column of each field once for the whole grid
//  2. Build a trade from every data row, skipping headers and invalid rows
//  3. Aggregate the accepted trades into per-person balances
//
// The stats are returned even when the batch fails.
func Process(grid domain.Grid, mode domain.ColumnMode) (*Batch, domain.ImportStats, error) {
	if len(grid) == 0 {
		return nil, domain.ImportStats{}, domain.ErrEmptyInput
	}

	resolver, err := columns.ForMode(mode)
	if err != nil {
		return nil, domain.ImportStats{}, err
	}

	fields, rows, err := resolver.Resolve(grid)
	if err != nil {
		return nil, domain.ImportStats{}, err
	}

	trades, stats, err := tradebuilder.BuildBatch(rows, fields)
	if err != nil {
		return nil, stats, err
	}

	return &Batch{
		Trades:    trades,
		Summaries: reconcile.Aggregate(trades),
		Stats:     stats,
	}, stats, nil
}
