package rules

import (
	"log/slog"

	"github.com/dh-kim/ocr-ledger/constants"
	"github.com/dh-kim/ocr-ledger/internal/draft"
)

// Engine is the sum-reconciliation strategy: it matches the independently
// derived item sum against the total candidates within a tolerance and
// classifies the outcome. Every branch appends at least one event so a
// reviewer can replay the verdict without re-running the engine.
type Engine struct {
	logger *slog.Logger
}

func NewEngine(logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{logger: logger}
}

func (e *Engine) Name() string { return StrategyReconcile }

type scoredMatch struct {
	candidate draft.TotalCandidate
	diff      int
}

func (e *Engine) Validate(d *draft.Draft) {
	if len(d.TotalCandidates) == 0 {
		d.ValidationStatus = constants.StatusNoTotal
		d.AppendEvent("VALIDATION", "No total candidate found.", nil)
		e.logger.Info("rules.reconcile", "status", d.ValidationStatus, "image", d.ImagePath)
		return
	}

	itemSum := 0
	for _, it := range d.Items {
		qty := it.Quantity
		if qty == 0 {
			qty = 1
		}
		itemSum += qty * it.Price
	}
	d.AppendEvent("CALC_SUM", "Calculated item sum", map[string]any{"item_sum": itemSum})

	tolerance := itemSum * 5 / 1000 // floor(itemSum * 0.005)
	if tolerance < 10 {
		tolerance = 10
	}
	d.AppendEvent("VALIDATION", "Tolerance applied", map[string]any{"tolerance": tolerance})

	var matching []scoredMatch
	for _, t := range d.TotalCandidates {
		diff := itemSum - t.Value
		if diff < 0 {
			diff = -diff
		}
		if diff <= tolerance {
			matching = append(matching, scoredMatch{candidate: t, diff: diff})
		}
	}

	if len(matching) >= 1 {
		chosen := matching[0]
		for _, m := range matching[1:] {
			if m.diff < chosen.diff || (m.diff == chosen.diff && m.candidate.Score > chosen.candidate.Score) {
				chosen = m
			}
		}
		d.TotalCandidates = []draft.TotalCandidate{chosen.candidate}
		d.Total = chosen.candidate.Value
		d.ValidationStatus = constants.StatusOK
		d.AppendEvent("VALIDATION", "Validation successful", map[string]any{
			"chosen_total": chosen.candidate.Value,
			"diff":         chosen.diff,
			"score":        chosen.candidate.Score,
		})
		e.logger.Info("rules.reconcile",
			"status", d.ValidationStatus, "item_sum", itemSum,
			"chosen_total", chosen.candidate.Value, "diff", chosen.diff,
		)
		return
	}

	if len(d.TotalCandidates) == 1 {
		total := d.TotalCandidates[0].Value
		diff := itemSum - total
		if diff < 0 {
			diff = -diff
		}
		d.ValidationStatus = constants.StatusMismatch
		d.AppendEvent("VALIDATION", "Mismatch detected", map[string]any{
			"item_sum": itemSum,
			"total":    total,
			"diff":     diff,
		})
		e.logger.Info("rules.reconcile", "status", d.ValidationStatus, "item_sum", itemSum, "total", total)
		return
	}

	d.ValidationStatus = constants.StatusAmbiguous
	d.AppendEvent("VALIDATION", "Multiple total candidates found but none matched.", nil)
	e.logger.Info("rules.reconcile", "status", d.ValidationStatus, "candidates", len(d.TotalCandidates))
}
