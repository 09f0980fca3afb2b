package rules

import (
	"log/slog"
	"unicode/utf8"

	"github.com/dh-kim/ocr-ledger/constants"
	"github.com/dh-kim/ocr-ledger/internal/draft"
)

// Completeness is the simpler strategy: it classifies on required-field
// presence alone. Missing store or total is an error, anything else that
// looks off asks for review.
type Completeness struct {
	logger *slog.Logger
}

func NewCompleteness(logger *slog.Logger) *Completeness {
	if logger == nil {
		logger = slog.Default()
	}
	return &Completeness{logger: logger}
}

func (c *Completeness) Name() string { return StrategyCompleteness }

func (c *Completeness) Validate(d *draft.Draft) {
	var issues []string

	if utf8.RuneCountInString(d.StoreName) < 2 {
		issues = append(issues, "store_name_invalid")
	}
	if d.Total <= 0 {
		issues = append(issues, "total_invalid")
	}
	if d.TransactionDate == "" {
		issues = append(issues, "date_missing")
	}
	if d.Category == constants.CategoryUnknown {
		issues = append(issues, "category_uncertain")
	}

	status := constants.StatusSuccess
	switch {
	case contains(issues, "total_invalid") || contains(issues, "store_name_invalid"):
		status = constants.StatusError
	case len(issues) > 0:
		status = constants.StatusReviewRequired
	}

	d.ValidationStatus = status
	meta := map[string]any{"issues": issues}
	if len(issues) == 0 {
		meta = nil
	}
	d.AppendEvent("VALIDATION", string(status), meta)
	c.logger.Info("rules.completeness", "status", status, "issues", issues, "image", d.ImagePath)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
