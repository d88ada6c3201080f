package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"tokuhyocli/internal/config"
	"tokuhyocli/internal/dataprocessing"
	apperrors "tokuhyocli/internal/errors"
	"tokuhyocli/internal/exporter"
	"tokuhyocli/internal/files"
	"tokuhyocli/internal/infrastructure"
)

func main() {
	os.Exit(run())
}

func run() int {
	dir := flag.String("dir", "", "directory containing feed xml files (defaults to configured input dir)")
	configFile := flag.String("config", "config.yaml", "config file path")
	noTrace := flag.Bool("no-trace", false, "disable span export")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		cfg = config.Default()
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	otelCfg := infrastructure.DefaultOTelConfig()
	otelCfg.EnableTracing = !*noTrace
	providers, err := infrastructure.InitializeOTel(otelCfg, logger)
	if err != nil {
		logger.Warn("Failed to initialize tracing, continuing without it", slog.String("error", err.Error()))
	}
	defer func() {
		if providers != nil {
			_ = providers.Shutdown(context.Background())
		}
	}()

	if *dir == "" {
		*dir = cfg.Paths.InputDir
	}

	logger.Info("Starting feed processing",
		slog.String("input_dir", *dir),
		slog.Any("encodings", cfg.Processing.Encodings))

	discovery := files.NewDiscovery(*dir)
	feeds, err := discovery.FindFeedFiles(".")
	if err != nil {
		logger.Error("Cannot read input directory",
			slog.String("dir", *dir),
			slog.String("error", err.Error()))
		return 1
	}

	logger.Info("Feed files found", slog.Int("count", len(feeds)))
	fmt.Printf("Found %d feed files\n", len(feeds))

	proc := dataprocessing.NewProcessor(cfg.Processing, exporter.NewExcelWriter())

	processed := 0
	skipped := 0
	for i, feed := range feeds {
		logger.Info("Processing file",
			slog.Int("current", i+1),
			slog.Int("total", len(feeds)),
			slog.String("filename", feed.Name))
		fmt.Printf("Processing file %d of %d: %s\n", i+1, len(feeds), feed.Name)

		if processDocument(proc, providers, feed, logger) {
			processed++
		} else {
			skipped++
		}
	}

	logger.Info("Feed processing completed",
		slog.Int("processed", processed),
		slog.Int("skipped", skipped))
	fmt.Printf("Processing complete: %d processed, %d skipped\n", processed, skipped)
	return 0
}

// processDocument runs one document's pipeline inside its own span and
// trace-id context. Failures are logged and absorbed here; one bad
// document never stops the batch.
func processDocument(proc *dataprocessing.Processor, providers *infrastructure.OTelProviders, feed files.FileInfo, logger *slog.Logger) bool {
	ctx := infrastructure.WithTraceID(context.Background(), uuid.NewString())

	var span trace.Span
	if providers != nil {
		ctx, span = providers.Tracer.Start(ctx, "process_document",
			trace.WithAttributes(attribute.String("feed.file", feed.Name)))
		defer span.End()
	}

	result, err := proc.ProcessDocument(ctx, feed.Path)
	if err != nil {
		if span != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		if kind, ok := apperrors.KindOf(err); ok {
			logger.Warn("Skipping document",
				slog.String("filename", feed.Name),
				slog.String("kind", string(kind)),
				slog.String("error", err.Error()))
		} else {
			logger.Error("Error processing document",
				slog.String("filename", feed.Name),
				slog.String("error", err.Error()))
		}
		// Output directory problems are unrecoverable for every later
		// document too, but the reference behavior still attempts them.
		var pathErr *os.PathError
		if errors.As(err, &pathErr) {
			logger.Error("Filesystem error detail", slog.String("op", pathErr.Op), slog.String("path", pathErr.Path))
		}
		return false
	}

	if span != nil {
		span.SetAttributes(
			attribute.Int("feed.candidates", result.Candidates),
			attribute.Int("feed.reports", len(result.OutputPaths)),
			attribute.String("feed.encoding", result.Encoding),
		)
		span.SetStatus(codes.Ok, "")
	}

	for _, outPath := range result.OutputPaths {
		logger.Info("Report generated",
			slog.String("filename", feed.Name),
			slog.String("report", filepath.Base(outPath)))
	}
	return true
}
