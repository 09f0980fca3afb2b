package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dh-kim/ocr-ledger/constants"
	"github.com/dh-kim/ocr-ledger/internal/draft"
	"github.com/dh-kim/ocr-ledger/internal/ocr"
	"github.com/dh-kim/ocr-ledger/internal/parse"
	"github.com/dh-kim/ocr-ledger/internal/rules"
)

// Config holds behavior flags for a pipeline instance.
type Config struct {
	Strategy string // rules.StrategyReconcile (default) | rules.StrategyCompleteness
}

// Pipeline runs one receipt through OCR, parsing and validation. A single
// instance is synchronous and owns all of its intermediate state, so
// independent instances may run concurrently without coordination.
type Pipeline struct {
	Logger     *slog.Logger
	OCR        ocr.Collaborator
	Strategy   rules.Strategy
	Classifier *parse.Classifier
}

func NewPipeline(logger *slog.Logger, cfg Config, collaborator ocr.Collaborator) (*Pipeline, error) {
	if logger == nil {
		logger = slog.Default()
	}
	strategy, err := rules.ForName(cfg.Strategy, logger)
	if err != nil {
		return nil, err
	}
	return &Pipeline{
		Logger:     logger,
		OCR:        collaborator,
		Strategy:   strategy,
		Classifier: parse.NewClassifier(nil),
	}, nil
}

// Run executes the full pipeline for one image reference and always returns
// a draft: a collaborator fault becomes a terminal draft with status error
// and a logged error event, never an error past this boundary.
func (p *Pipeline) Run(ctx context.Context, imagePath string) *draft.Draft {
	runID := uuid.New()

	res, err := p.OCR.Extract(ctx, imagePath)
	if err != nil {
		p.Logger.Error("pipeline.ocr_failed", "run_id", runID, "image", imagePath, "error", err)
		d := draft.Assemble(runID, imagePath, draft.Fields{}, nil, nil)
		d.ValidationStatus = constants.StatusError
		d.AppendEvent("PIPELINE", "에러 발생", map[string]any{
			"error_type":    fmt.Sprintf("%T", err),
			"error_message": err.Error(),
		})
		return d
	}

	lines := parse.Lines(res)
	fields := parse.ExtractFields(lines, p.Classifier)
	items := parse.ExtractItems(lines)
	totals := parse.TotalCandidates(lines)

	d := draft.Assemble(runID, imagePath, draft.Fields{
		StoreName:       fields.StoreName,
		TransactionDate: fields.TransactionDate,
		Total:           fields.Total,
		Payment:         fields.Payment,
		Category:        fields.Category,
	}, items, totals)
	d.AppendEvent("OCR", "텍스트 추출 완료", map[string]any{"adapter": res.Adapter, "lines": len(lines)})
	d.AppendEvent("PARSING", "파싱 완료", map[string]any{
		"items":      len(items),
		"candidates": len(totals),
	})

	p.Strategy.Validate(d)

	p.Logger.Info("pipeline.done",
		"run_id", runID,
		"image", imagePath,
		"status", d.ValidationStatus,
		"store", fields.StoreName,
		"date", fields.TransactionDate,
		"items", len(items),
	)
	return d
}
