package parse

import (
	"strings"

	"github.com/dh-kim/ocr-ledger/constants"
)

// Classifier assigns a spending category from an injected keyword table.
// Rules are checked in table order; the first matching category wins.
type Classifier struct {
	rules []CategoryRule
}

// NewClassifier builds a classifier over the given table. A nil table gets
// the built-in rules.
func NewClassifier(rules []CategoryRule) *Classifier {
	if rules == nil {
		rules = DefaultCategoryRules()
	}
	return &Classifier{rules: rules}
}

// Classify tries the store name first, then the first 10 lines, then the
// whole text. No hit across all three passes means 기타.
func (c *Classifier) Classify(storeName string, lines []string, fullText string) string {
	if cat := c.match(storeName); cat != "" {
		return cat
	}

	limit := len(lines)
	if limit > 10 {
		limit = 10
	}
	if cat := c.match(strings.Join(lines[:limit], "\n")); cat != "" {
		return cat
	}

	if cat := c.match(fullText); cat != "" {
		return cat
	}
	return constants.CategoryUnknown
}

func (c *Classifier) match(text string) string {
	if text == "" {
		return ""
	}
	lower := strings.ToLower(text)
	for _, rule := range c.rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, strings.ToLower(kw)) {
				return rule.Category
			}
		}
	}
	return ""
}
