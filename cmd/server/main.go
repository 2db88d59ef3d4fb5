package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpcadapter "github.com/simaogato/shifttrade-backend/internal/adapter/grpc"
	"github.com/simaogato/shifttrade-backend/internal/adapter/kafka"
	"github.com/simaogato/shifttrade-backend/internal/adapter/metrics"
	"github.com/simaogato/shifttrade-backend/internal/adapter/repository/postgres"
	"github.com/simaogato/shifttrade-backend/internal/adapter/workbook"
	"github.com/simaogato/shifttrade-backend/internal/config"
	"github.com/simaogato/shifttrade-backend/internal/domain"
	"github.com/simaogato/shifttrade-backend/internal/usecase/ingest"
)

func main() {
	// .env is optional; real environment variables take precedence
	_ = godotenv.Load()

	cfg := config.MustLoad()
	logger := cfg.Log.NewLogger()
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}

// run wires the service and blocks until shutdown. Deferred cleanups run on
// every return path, including a server failing at runtime.
func run(cfg *config.Config, logger *slog.Logger) error {
	// 1. Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	importMetrics := metrics.NewImportMetrics(registry)

	// 2. Optional audit log (Postgres)
	var importLogRepo domain.ImportLogRepository
	if cfg.Database.DSN != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		db, err := postgres.NewDB(ctx, cfg.Database.DSN)
		cancel()
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer db.Close()

		if !cfg.Database.SkipMigrations {
			if err := postgres.RunMigrations(db); err != nil {
				return fmt.Errorf("failed to apply migrations: %w", err)
			}
			logger.Info("migrations applied")
		}

		importLogRepo = postgres.NewImportLogRepository(db)
	} else {
		logger.Info("database not configured; import audit log disabled")
	}

	// 3. Optional import events (Kafka)
	var eventPublisher domain.ImportEventPublisher
	if len(cfg.Kafka.Brokers) > 0 {
		publisher := kafka.NewImportEventPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer publisher.Close()
		eventPublisher = publisher
	} else {
		logger.Info("kafka not configured; import events disabled")
	}

	// 4. Import service
	importService := ingest.NewImportService(
		workbook.NewReader(),
		importLogRepo,
		eventPublisher,
		importMetrics,
		logger,
	)
	importService.WorkbookMode = domain.ColumnMode(cfg.Import.WorkbookMode)
	importService.TextMode = domain.ColumnMode(cfg.Import.TextMode)
	importService.MaxUploadBytes = cfg.GRPC.MaxUploadBytes

	// 5. gRPC server
	grpcServer := grpclib.NewServer(
		grpclib.MaxRecvMsgSize(cfg.GRPC.MaxUploadBytes+1024),
		grpclib.ChainUnaryInterceptor(
			grpcadapter.LoggingInterceptor(logger),
			grpcadapter.AuthInterceptor(cfg.GRPC.APIToken, grpcadapter.HealthCheckMethod),
		),
	)

	grpcadapter.RegisterShiftTradeServiceServer(grpcServer, grpcadapter.NewServer(importService))

	healthServer := health.NewServer()
	healthServer.SetServingStatus(grpcadapter.ShiftTradeServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", cfg.GRPC.ListenAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.GRPC.ListenAddr, err)
	}

	// One slot per server so a failing server never blocks
	serveErr := make(chan error, 2)

	go func() {
		logger.Info("gRPC server listening", "addr", cfg.GRPC.ListenAddr)
		if err := grpcServer.Serve(lis); err != nil {
			serveErr <- fmt.Errorf("gRPC server: %w", err)
		}
	}()

	// 6. Metrics endpoint
	var metricsServer *http.Server
	if cfg.Metrics.ListenAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", importMetrics.Handler())
		metricsServer = &http.Server{
			Addr:              cfg.Metrics.ListenAddr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}

		go func() {
			logger.Info("metrics server listening", "addr", cfg.Metrics.ListenAddr)
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				serveErr <- fmt.Errorf("metrics server: %w", err)
			}
		}()
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	defer signal.Stop(sigChan)

	return waitForShutdown(logger, sigChan, serveErr, grpcServer, healthServer, metricsServer)
}

// waitForShutdown blocks until a termination signal arrives or a server fails,
// then gracefully stops every server. The server failure, if any, is returned.
func waitForShutdown(
	logger *slog.Logger,
	sigChan <-chan os.Signal,
	serveErr <-chan error,
	grpcServer *grpclib.Server,
	healthServer *health.Server,
	metricsServer *http.Server,
) error {
	var cause error
	select {
	case sig := <-sigChan:
		logger.Info("shutting down gracefully", "signal", sig.String())
	case cause = <-serveErr:
		logger.Error("server failed; shutting down", "error", cause)
	}

	healthServer.Shutdown()

	if metricsServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := metricsServer.Shutdown(ctx); err != nil {
			logger.Warn("metrics server shutdown", "error", err)
		}
	}

	grpcServer.GracefulStop()
	logger.Info("gRPC server stopped")

	return cause
}
