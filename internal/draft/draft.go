package draft

import (
	"github.com/google/uuid"

	"github.com/dh-kim/ocr-ledger/constants"
)

// Item is one purchased line recovered from the receipt body.
// Quantity*Price equals the detected row amount at extraction time.
type Item struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    int    `json:"price"`
}

// TotalCandidate is a scored guess at the receipt's grand total.
type TotalCandidate struct {
	Label  string `json:"label"`
	Value  int    `json:"value"`
	Score  int    `json:"score"`
	Source string `json:"source"`
}

// Event is one append-only audit-trail entry. Events are never deleted or
// reordered; together they explain how a verdict was reached.
type Event struct {
	Stage   string         `json:"stage"`
	Message string         `json:"message"`
	Meta    map[string]any `json:"meta,omitempty"`
}

// Draft is the single external output record for one receipt run.
// Consumers read it; nothing outside the pipeline mutates it.
type Draft struct {
	ID               uuid.UUID                  `json:"id"`
	ImagePath        string                     `json:"image_path"`
	Items            []Item                     `json:"items"`
	TotalCandidates  []TotalCandidate           `json:"total_candidates"`
	StoreName        string                     `json:"store_name"`
	TransactionDate  string                     `json:"transaction_date"`
	Total            int                        `json:"total"`
	Payment          string                     `json:"payment"`
	Category         string                     `json:"category"`
	ValidationStatus constants.ValidationStatus `json:"validation_status"`
	Events           []Event                    `json:"events"`
}

// AppendEvent records a pipeline decision on the audit trail.
func (d *Draft) AppendEvent(stage, message string, meta map[string]any) {
	ev := Event{Stage: stage, Message: message}
	if len(meta) > 0 {
		ev.Meta = meta
	}
	d.Events = append(d.Events, ev)
}
