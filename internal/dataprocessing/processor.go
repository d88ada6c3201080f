package dataprocessing

import (
	"context"
	"log/slog"
	"path/filepath"

	"tokuhyocli/internal/config"
	apperrors "tokuhyocli/internal/errors"
	"tokuhyocli/internal/files"
	"tokuhyocli/internal/infrastructure"
	"tokuhyocli/pkg/contracts/domain"
)

// Renderer writes one report to disk. The concrete implementation lives
// in internal/exporter; the pipeline only depends on this interface.
type Renderer interface {
	Render(ctx context.Context, report domain.Report, path string) error
}

// Processor chains the pipeline stages for one document at a time.
// It holds no per-document state; the same Processor serves the whole
// batch.
type Processor struct {
	resolver   *Resolver
	normalizer *Normalizer
	classifier *Classifier
	segmenter  *Segmenter
	renderer   Renderer
}

// NewProcessor creates a processor with the given processing options
// and report renderer.
func NewProcessor(cfg config.ProcessingConfig, renderer Renderer) *Processor {
	return &Processor{
		resolver:   NewResolver(cfg.Encodings),
		normalizer: NewNormalizer(),
		classifier: NewClassifier(),
		segmenter:  NewSegmenter(cfg.LoserColumns),
		renderer:   renderer,
	}
}

// reportFileSuffix is appended to the sanitized headline when naming a
// derived report's output file.
func reportFileSuffix(kind domain.ReportKind) string {
	switch kind {
	case domain.ReportWinners:
		return "当"
	case domain.ReportLosers:
		return "落"
	default:
		return ""
	}
}

// ProcessDocument runs the full pipeline for one feed file and writes
// its reports next to the source. Typed failures describe which stage
// gave up; the caller logs them and moves to the next document.
func (p *Processor) ProcessDocument(ctx context.Context, path string) (*domain.ProcessResult, error) {
	logger := infrastructure.LoggerFromContext(ctx).With(slog.String("file", filepath.Base(path)))

	text, encName, err := p.resolver.ResolveFile(path)
	if err != nil {
		return nil, err
	}
	logger.Info("resolved document encoding", slog.String("encoding", encName))

	content, err := ExtractContent(text)
	if err != nil {
		return nil, err
	}

	body := p.normalizer.Normalize(content.Body)

	classified, err := p.classifier.Classify(body)
	if err != nil {
		return nil, err
	}

	typed := CoerceColumns(classified)
	logger.Info("classified candidate records",
		slog.Int("candidates", len(typed.Rows)),
		slog.Int("columns", len(typed.Header)))

	reports := p.segmenter.Segment(typed, content.Headline)

	base := files.SanitizeFilename(content.Headline)
	outDir := filepath.Dir(path)

	result := &domain.ProcessResult{
		SourcePath: path,
		Headline:   content.Headline,
		Encoding:   encName,
		Candidates: len(typed.Rows),
	}

	for _, report := range reports {
		outPath := filepath.Join(outDir, base+reportFileSuffix(report.Kind)+".xlsx")
		if err := p.renderer.Render(ctx, report, outPath); err != nil {
			return nil, apperrors.Wrap(apperrors.KindRenderFailure, "render",
				"failed to write "+string(report.Kind)+" report", err)
		}
		logger.Info("report written",
			slog.String("kind", string(report.Kind)),
			slog.Int("rows", len(report.Records.Rows)),
			slog.String("path", outPath))
		result.OutputPaths = append(result.OutputPaths, outPath)
	}

	return result, nil
}
