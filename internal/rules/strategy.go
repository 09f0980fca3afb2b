// Package rules holds the reconciliation strategies that turn an assembled
// draft into a validated one. Two strategies exist: the sum-reconciliation
// engine (default) cross-checks the item sum against total candidates; the
// completeness classifier looks only at required-field presence. Both write
// their reasoning onto the draft's event trail.
package rules

import (
	"fmt"
	"log/slog"

	"github.com/dh-kim/ocr-ledger/internal/draft"
)

// Strategy validates a draft in place and sets its validation status.
type Strategy interface {
	Name() string
	Validate(d *draft.Draft)
}

const (
	StrategyReconcile    = "reconcile"
	StrategyCompleteness = "completeness"
)

// ForName returns the named strategy, defaulting to sum reconciliation.
func ForName(name string, logger *slog.Logger) (Strategy, error) {
	switch name {
	case "", StrategyReconcile:
		return NewEngine(logger), nil
	case StrategyCompleteness:
		return NewCompleteness(logger), nil
	default:
		return nil, fmt.Errorf("unknown validation strategy: %q", name)
	}
}
