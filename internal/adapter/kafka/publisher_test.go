package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/shifttrade-backend/internal/domain"
)

type fakeWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	if _, ok := ctx.Deadline(); !ok {
		return errors.New("expected a deadline")
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestImportEventPublisher_Publish(t *testing.T) {
	writer := &fakeWriter{}
	publisher := &ImportEventPublisher{writer: writer}

	event := domain.ImportEvent{
		ImportID:   uuid.New(),
		Source:     domain.ImportSourceWorkbook,
		Mode:       domain.ColumnModeFixed,
		Success:    true,
		Trades:     3,
		People:     2,
		TotalHours: "12.5",
		Message:    "Successfully imported 3 trades",
		OccurredAt: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	require.NoError(t, publisher.Publish(context.Background(), event))
	require.Len(t, writer.messages, 1)

	msg := writer.messages[0]
	assert.Equal(t, event.ImportID.String(), string(msg.Key))
	assert.Equal(t, event.OccurredAt, msg.Time)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(msg.Value, &payload))
	assert.Equal(t, event.ImportID.String(), payload["import_id"])
	assert.Equal(t, "WORKBOOK", payload["source"])
	assert.Equal(t, "fixed", payload["mode"])
	assert.Equal(t, true, payload["success"])
	assert.Equal(t, 3.0, payload["trades"])
	assert.Equal(t, "12.5", payload["total_hours"])

	require.NoError(t, publisher.Close())
	assert.True(t, writer.closed)
}

func TestImportEventPublisher_WriteError(t *testing.T) {
	publisher := &ImportEventPublisher{writer: &fakeWriter{err: errors.New("leader not available")}}

	err := publisher.Publish(context.Background(), domain.ImportEvent{ImportID: uuid.New()})
	assert.ErrorContains(t, err, "failed to write import event: leader not available")
}
