package grpc

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/simaogato/shifttrade-backend/internal/domain"
	"github.com/simaogato/shifttrade-backend/internal/usecase/ingest"
)

// ColumnModeMetadataKey selects fixed or fuzzy column resolution per request
const ColumnModeMetadataKey = "x-column-mode"

// Server implements the ShiftTradeService gRPC server
type Server struct {
	ImportService *ingest.ImportService
}

// NewServer creates a new gRPC server instance
func NewServer(importService *ingest.ImportService) *Server {
	return &Server{
		ImportService: importService,
	}
}

// ImportWorkbook handles the ImportWorkbook RPC.
// Batch failures are reported in the response body with success=false.
func (s *Server) ImportWorkbook(ctx context.Context, req *wrapperspb.BytesValue) (*structpb.Struct, error) {
	mode, err := columnModeFromContext(ctx)
	if err != nil {
		return nil, err
	}

	result := s.ImportService.ImportWorkbook(ctx, req.GetValue(), mode)

	return resultToStruct(result)
}

// ImportText handles the ImportText RPC
func (s *Server) ImportText(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	mode, err := columnModeFromContext(ctx)
	if err != nil {
		return nil, err
	}

	result := s.ImportService.ImportText(ctx, req.GetValue(), mode)

	return resultToStruct(result)
}

// Reconcile handles the Reconcile RPC: it re-aggregates a trade list held by the caller
func (s *Server) Reconcile(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	trades, err := tradesFromStruct(req)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid trades: %v", err)
	}

	summaries, err := s.ImportService.Reconcile(trades)
	if err != nil {
		return nil, mapError(err)
	}

	return resultToStruct(domain.ImportResult{
		Success:   true,
		Trades:    trades,
		Summaries: summaries,
		Message:   "Reconciled",
	})
}

// ListImports handles the ListImports RPC: the newest audit log entries
func (s *Server) ListImports(ctx context.Context, req *wrapperspb.Int32Value) (*structpb.Struct, error) {
	entries, err := s.ImportService.RecentImports(ctx, int(req.GetValue()))
	if err != nil {
		return nil, mapError(err)
	}

	return importLogsToStruct(entries)
}

// columnModeFromContext reads the optional column mode from request metadata.
// An absent value selects the service default for the entry point.
func columnModeFromContext(ctx context.Context) (domain.ColumnMode, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", nil
	}

	values := md.Get(ColumnModeMetadataKey)
	if len(values) == 0 || strings.TrimSpace(values[0]) == "" {
		return "", nil
	}

	mode := domain.ColumnMode(strings.ToLower(strings.TrimSpace(values[0])))
	if !mode.Valid() {
		return "", status.Errorf(codes.InvalidArgument, "invalid %s %q: expected fixed or fuzzy", ColumnModeMetadataKey, values[0])
	}
	return mode, nil
}

// mapError converts domain errors to gRPC status errors
func mapError(err error) error {
	if err == nil {
		return nil
	}

	errorMsg := err.Error()

	if errors.Is(err, domain.ErrAuditLogDisabled) {
		return status.Errorf(codes.FailedPrecondition, "%s", errorMsg)
	}

	if errors.Is(err, domain.ErrEmptyInput) ||
		strings.Contains(errorMsg, "cannot be empty") ||
		strings.Contains(errorMsg, "must be positive") ||
		strings.Contains(errorMsg, "cannot exceed") ||
		strings.Contains(errorMsg, "invalid") {
		return status.Errorf(codes.InvalidArgument, "%s", errorMsg)
	}

	return status.Errorf(codes.Internal, "%s", errorMsg)
}
