package draft

import (
	"github.com/google/uuid"

	"github.com/dh-kim/ocr-ledger/constants"
)

// Fields carries the extractor outputs into assembly. Absent fields keep
// their zero value; the assembler never invents data.
type Fields struct {
	StoreName       string
	TransactionDate string
	Total           int
	Payment         string
	Category        string
}

// Assemble merges extractor outputs, items and total candidates into the
// externally stable Draft shape. This is the only export boundary: internal
// stage structure can change without touching the Draft contract.
func Assemble(id uuid.UUID, imagePath string, fields Fields, items []Item, totals []TotalCandidate) *Draft {
	if items == nil {
		items = []Item{}
	}
	if totals == nil {
		totals = []TotalCandidate{}
	}
	return &Draft{
		ID:               id,
		ImagePath:        imagePath,
		Items:            items,
		TotalCandidates:  totals,
		StoreName:        fields.StoreName,
		TransactionDate:  fields.TransactionDate,
		Total:            fields.Total,
		Payment:          fields.Payment,
		Category:         fields.Category,
		ValidationStatus: constants.StatusInit,
		Events:           []Event{},
	}
}
