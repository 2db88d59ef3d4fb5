package grpc

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/simaogato/shifttrade-backend/internal/domain"
)

// resultToStruct renders an import result as
// {success, message, trades:[...], summaries:[...]}.
// Trades and summaries are omitted on failure.
func resultToStruct(result domain.ImportResult) (*structpb.Struct, error) {
	body := map[string]interface{}{
		"success": result.Success,
		"message": result.Message,
	}

	if result.Success {
		trades := make([]interface{}, 0, len(result.Trades))
		for _, t := range result.Trades {
			trades = append(trades, map[string]interface{}{
				"id":      t.ID.String(),
				"person1": t.Person1,
				"date":    t.Date,
				"hours":   t.Hours.InexactFloat64(),
				"person2": t.Person2,
			})
		}

		summaries := make([]interface{}, 0, len(result.Summaries))
		for _, s := range result.Summaries {
			summaries = append(summaries, map[string]interface{}{
				"name":       s.Name,
				"youWorked":  s.YouWorked.InexactFloat64(),
				"theyWorked": s.TheyWorked.InexactFloat64(),
				"total":      s.Total.InexactFloat64(),
			})
		}

		body["trades"] = trades
		body["summaries"] = summaries
	}

	return structpb.NewStruct(body)
}

// importLogsToStruct renders audit entries as {imports:[...]}
func importLogsToStruct(entries []*domain.ImportLog) (*structpb.Struct, error) {
	imports := make([]interface{}, 0, len(entries))
	for _, e := range entries {
		imports = append(imports, map[string]interface{}{
			"id":             e.ID.String(),
			"source":         string(e.Source),
			"mode":           string(e.Mode),
			"rows":           e.Rows,
			"accepted":       e.Accepted,
			"skippedHeader":  e.SkippedHeader,
			"skippedInvalid": e.SkippedInvalid,
			"success":        e.Success,
			"message":        e.Message,
			"createdAt":      e.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	return structpb.NewStruct(map[string]interface{}{"imports": imports})
}

// tradesFromStruct reads {trades:[{id?, person1, date, hours, person2}]}.
// Names are canonicalized; a missing id gets a fresh one.
func tradesFromStruct(req *structpb.Struct) ([]domain.Trade, error) {
	list := req.GetFields()["trades"].GetListValue()
	if list == nil {
		return nil, errors.New("trades list is required")
	}

	trades := make([]domain.Trade, 0, len(list.GetValues()))
	for i, value := range list.GetValues() {
		fields := value.GetStructValue().GetFields()
		if fields == nil {
			return nil, fmt.Errorf("trade %d is not an object", i+1)
		}

		id := uuid.New()
		if raw := fields["id"].GetStringValue(); raw != "" {
			parsed, err := uuid.Parse(raw)
			if err != nil {
				return nil, fmt.Errorf("trade %d: invalid id format: %w", i+1, err)
			}
			id = parsed
		}

		hours, err := hoursFromValue(fields["hours"])
		if err != nil {
			return nil, fmt.Errorf("trade %d: %w", i+1, err)
		}

		trades = append(trades, domain.Trade{
			ID:      id,
			Person1: domain.CanonicalName(fields["person1"].GetStringValue()),
			Date:    fields["date"].GetStringValue(),
			Hours:   hours,
			Person2: domain.CanonicalName(fields["person2"].GetStringValue()),
		})
	}

	return trades, nil
}

func hoursFromValue(v *structpb.Value) (decimal.Decimal, error) {
	switch kind := v.GetKind().(type) {
	case *structpb.Value_NumberValue:
		if math.IsNaN(kind.NumberValue) || math.IsInf(kind.NumberValue, 0) {
			return decimal.Zero, errors.New("invalid hours value")
		}
		return decimal.NewFromFloat(kind.NumberValue).Round(2), nil
	case *structpb.Value_StringValue:
		d, err := decimal.NewFromString(kind.StringValue)
		if err != nil {
			return decimal.Zero, fmt.Errorf("invalid hours format: %w", err)
		}
		return d.Round(2), nil
	default:
		return decimal.Zero, errors.New("hours is required")
	}
}
