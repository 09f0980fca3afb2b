package repository

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/dh-kim/ocr-ledger/constants"
	"github.com/dh-kim/ocr-ledger/internal/draft"
)

// LedgerDetails is the opaque sub-object carried alongside a ledger row.
// Tax/discount/card/address/tel are placeholders filled during review.
type LedgerDetails struct {
	Items      []draft.Item `json:"items"`
	Tax        string       `json:"tax"`
	Discount   int          `json:"discount"`
	CardNumber string       `json:"card_number"`
	Address    string       `json:"address"`
	Tel        string       `json:"tel"`
}

// LedgerPayload is the fixed external schema handed to persistence.
// The pipeline only produces it; writing is the collaborator's problem.
type LedgerPayload struct {
	UserID        int           `json:"user_id"`
	ImagePath     string        `json:"image_path"`
	Category      int           `json:"category"`
	Date          string        `json:"date"`
	Total         int           `json:"total"`
	StoreName     string        `json:"store_name"`
	Payment       string        `json:"payment"`
	Details       LedgerDetails `json:"details"`
	CreatedAt     string        `json:"created_at"`
	OCRConfidence float64       `json:"ocr_confidence"`
}

// Confidence derives a [0,1] score from four field-presence checks:
// store 0.3, total 0.3, date 0.2, category 0.2, rounded to 2 decimals.
func Confidence(d *draft.Draft) float64 {
	score := 0.0
	if d.StoreName != "" {
		score += 0.3
	}
	if d.Total > 0 {
		score += 0.3
	}
	if d.TransactionDate != "" {
		score += 0.2
	}
	if d.Category != constants.CategoryUnknown {
		score += 0.2
	}
	return math.Round(score*100) / 100
}

// ToLedgerPayload maps a validated draft onto the external ledger schema.
func ToLedgerPayload(d *draft.Draft, now time.Time) LedgerPayload {
	items := d.Items
	if items == nil {
		items = []draft.Item{}
	}
	return LedgerPayload{
		UserID:    1,
		ImagePath: d.ImagePath,
		Category:  constants.CategoryCode(d.Category),
		Date:      d.TransactionDate,
		Total:     d.Total,
		StoreName: d.StoreName,
		Payment:   d.Payment,
		Details: LedgerDetails{
			Items: items,
		},
		CreatedAt:     now.Format(time.RFC3339),
		OCRConfidence: Confidence(d),
	}
}

// BuildPayloadSchema is the JSON-Schema the payload must satisfy before any
// write is attempted.
func BuildPayloadSchema() map[string]any {
	return map[string]any{
		"type":     "object",
		"required": []string{"user_id", "image_path", "category", "total", "store_name", "created_at"},
		"properties": map[string]any{
			"user_id":        map[string]any{"type": "integer", "minimum": 1},
			"image_path":     map[string]any{"type": "string"},
			"category":       map[string]any{"type": "integer", "minimum": 1, "maximum": 8},
			"date":           map[string]any{"type": "string"},
			"total":          map[string]any{"type": "integer", "minimum": 0},
			"store_name":     map[string]any{"type": "string"},
			"payment":        map[string]any{"type": "string"},
			"details":        map[string]any{"type": "object"},
			"created_at":     map[string]any{"type": "string"},
			"ocr_confidence": map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
		},
	}
}

// ValidatePayload checks a payload against the ledger schema.
func ValidatePayload(p LedgerPayload) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	schemaBytes, err := json.Marshal(BuildPayloadSchema())
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("payload.json", bytes.NewReader(schemaBytes)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("payload.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal payload: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("payload does not match schema: %w", err)
	}
	return nil
}
