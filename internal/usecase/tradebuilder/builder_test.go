package tradebuilder

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/shifttrade-backend/internal/domain"
	"github.com/simaogato/shifttrade-backend/internal/usecase/columns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// compactLayout places the five fields in the first five columns
var compactLayout = columns.FieldMap{
	PersonA:   0,
	Date:      1,
	StartTime: 2,
	EndTime:   3,
	PersonB:   4,
	Hours:     columns.Absent,
}

// hoursLayout has a direct Hours column instead of start and end times
var hoursLayout = columns.FieldMap{
	PersonA:   0,
	Date:      1,
	StartTime: columns.Absent,
	EndTime:   columns.Absent,
	PersonB:   2,
	Hours:     3,
}

func row(cells ...domain.Cell) domain.Row {
	return domain.Row(cells)
}

func text(s string) domain.Cell {
	return domain.TextCell(s)
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name        string
		row         domain.Row
		fields      columns.FieldMap
		wantOutcome Outcome
		wantPerson1 string
		wantPerson2 string
		wantDate    string
		wantHours   string
	}{
		{
			name:        "day shift with text values",
			row:         row(text(" alice "), text("1/2/2024"), text("9:00 AM"), text("5:00 PM"), text("bob")),
			fields:      compactLayout,
			wantOutcome: Accepted,
			wantPerson1: "ALICE",
			wantPerson2: "BOB",
			wantDate:    "2024-01-02",
			wantHours:   "8",
		},
		{
			name:        "overnight shift with spreadsheet values",
			row:         row(text("Carol"), domain.NumberCell(45658), domain.NumberCell(22.0/24), domain.NumberCell(2.0/24), text("Dan")),
			fields:      compactLayout,
			wantOutcome: Accepted,
			wantPerson1: "CAROL",
			wantPerson2: "DAN",
			wantDate:    "2025-01-01",
			wantHours:   "4",
		},
		{
			name:        "unparseable date passes through",
			row:         row(text("alice"), text("sometime in May 2024"), text("9:00"), text("10:30"), text("bob")),
			fields:      compactLayout,
			wantOutcome: Accepted,
			wantPerson1: "ALICE",
			wantPerson2: "BOB",
			wantDate:    "sometime in May 2024",
			wantHours:   "1.5",
		},
		{
			name:        "direct hours with unit suffix",
			row:         row(text("alice"), text("2024-02-03"), text("bob"), text("7.25 hrs")),
			fields:      hoursLayout,
			wantOutcome: Accepted,
			wantPerson1: "ALICE",
			wantPerson2: "BOB",
			wantDate:    "2024-02-03",
			wantHours:   "7.25",
		},
		{
			name:        "direct numeric hours above a day are capped",
			row:         row(text("alice"), text("2024-02-03"), text("bob"), domain.NumberCell(30)),
			fields:      hoursLayout,
			wantOutcome: Accepted,
			wantPerson1: "ALICE",
			wantPerson2: "BOB",
			wantDate:    "2024-02-03",
			wantHours:   "24",
		},
		{
			name:        "header row",
			row:         row(text("Person 1"), text("Trade Date"), text("Start"), text("End"), text("Person 2")),
			fields:      compactLayout,
			wantOutcome: SkippedHeader,
		},
		{
			name:        "empty row",
			row:         row(),
			fields:      compactLayout,
			wantOutcome: SkippedInvalid,
		},
		{
			name:        "row of blank cells",
			row:         row(text(""), text("  ")),
			fields:      compactLayout,
			wantOutcome: SkippedInvalid,
		},
		{
			name:        "missing person 2",
			row:         row(text("alice"), text("1/2/2024"), text("9:00 AM"), text("5:00 PM"), text("  ")),
			fields:      compactLayout,
			wantOutcome: SkippedInvalid,
		},
		{
			name:        "missing date",
			row:         row(text("alice"), text(""), text("9:00 AM"), text("5:00 PM"), text("bob")),
			fields:      compactLayout,
			wantOutcome: SkippedInvalid,
		},
		{
			name:        "start equals end",
			row:         row(text("alice"), text("1/2/2024"), text("9:00"), text("9:00"), text("bob")),
			fields:      compactLayout,
			wantOutcome: SkippedInvalid,
		},
		{
			name:        "invalid time",
			row:         row(text("alice"), text("1/2/2024"), text("25:00"), text("5:00 PM"), text("bob")),
			fields:      compactLayout,
			wantOutcome: SkippedInvalid,
		},
		{
			name:        "no time and no hours",
			row:         row(text("alice"), text("1/2/2024"), text("9:00"), text(""), text("bob")),
			fields:      compactLayout,
			wantOutcome: SkippedInvalid,
		},
		{
			name:        "negative direct hours",
			row:         row(text("alice"), text("2024-02-03"), text("bob"), text("-3")),
			fields:      hoursLayout,
			wantOutcome: SkippedInvalid,
		},
		{
			name:        "non numeric direct hours",
			row:         row(text("alice"), text("2024-02-03"), text("bob"), text("lots")),
			fields:      hoursLayout,
			wantOutcome: SkippedInvalid,
		},
		{
			name:        "hours that round to zero",
			row:         row(text("alice"), text("2024-02-03"), text("bob"), text("0.004")),
			fields:      hoursLayout,
			wantOutcome: SkippedInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trade, outcome := Build(tt.row, tt.fields)
			assert.Equal(t, tt.wantOutcome, outcome)

			if tt.wantOutcome != Accepted {
				assert.Nil(t, trade)
				return
			}

			require.NotNil(t, trade)
			assert.NotEqual(t, uuid.Nil, trade.ID)
			assert.Equal(t, tt.wantPerson1, trade.Person1)
			assert.Equal(t, tt.wantPerson2, trade.Person2)
			assert.Equal(t, tt.wantDate, trade.Date)
			assert.True(t, decimal.RequireFromString(tt.wantHours).Equal(trade.Hours), "hours = %s, want %s", trade.Hours, tt.wantHours)
		})
	}
}

func TestBuild_DefaultLayout(t *testing.T) {
	// Values in columns E, F, G, H and K
	r := row(
		text(""), text(""), text(""), text(""),
		text("ALICE"), text("1/2/2024"), text("9:00 AM"), text("5:00 PM"),
		text(""), text(""),
		text("BOB"),
	)

	trade, outcome := Build(r, columns.DefaultLayout)
	require.Equal(t, Accepted, outcome)
	assert.Equal(t, "ALICE", trade.Person1)
	assert.Equal(t, "2024-01-02", trade.Date)
	assert.True(t, decimal.NewFromInt(8).Equal(trade.Hours))
	assert.Equal(t, "BOB", trade.Person2)
}

func TestBuildBatch(t *testing.T) {
	rows := domain.Grid{
		row(text("Person 1"), text("Trade Date"), text("Start"), text("End"), text("Person 2")),
		row(text("alice"), text("1/2/2024"), text("9:00 AM"), text("5:00 PM"), text("bob")),
		row(),
		row(text("bob"), text("1/3/2024"), text("22:00"), text("1:00"), text("alice")),
		row(text("carol"), text("1/3/2024"), text("9:00"), text("9:00"), text("dan")),
	}

	trades, stats, err := BuildBatch(rows, compactLayout)
	require.NoError(t, err)

	assert.Equal(t, domain.ImportStats{Rows: 5, Accepted: 2, SkippedHeader: 1, SkippedInvalid: 2}, stats)
	require.Len(t, trades, 2)

	// Input order is preserved
	assert.Equal(t, "ALICE", trades[0].Person1)
	assert.Equal(t, "BOB", trades[1].Person1)
	assert.True(t, decimal.NewFromInt(3).Equal(trades[1].Hours))
	assert.NotEqual(t, trades[0].ID, trades[1].ID)
}

func TestBuildBatch_NoValidRows(t *testing.T) {
	rows := domain.Grid{
		row(text("alice"), text("1/2/2024"), text("9:00 AM"), text("5:00 PM")),
		row(text("bob"), text("1/3/2024"), text("9:00 AM"), text("5:00 PM")),
	}

	trades, stats, err := BuildBatch(rows, compactLayout)
	assert.ErrorIs(t, err, domain.ErrNoValidRows)
	assert.Nil(t, trades)
	assert.Equal(t, 2, stats.SkippedInvalid)
}
