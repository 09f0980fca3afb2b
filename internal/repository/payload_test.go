package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dh-kim/ocr-ledger/constants"
	"github.com/dh-kim/ocr-ledger/internal/draft"
)

func fullDraft() *draft.Draft {
	return &draft.Draft{
		ImagePath:       "r1.jpg",
		StoreName:       "스타벅스 강남점",
		TransactionDate: "2024-03-05",
		Total:           15000,
		Payment:         constants.PaymentCard,
		Category:        "카페",
		Items:           []draft.Item{{Name: "아메리카노", Quantity: 2, Price: 4500}},
	}
}

func TestConfidenceWeights(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*draft.Draft)
		want   float64
	}{
		{"all present", func(*draft.Draft) {}, 1.0},
		{"no store", func(d *draft.Draft) { d.StoreName = "" }, 0.7},
		{"no total", func(d *draft.Draft) { d.Total = 0 }, 0.7},
		{"no date", func(d *draft.Draft) { d.TransactionDate = "" }, 0.8},
		{"unknown category", func(d *draft.Draft) { d.Category = constants.CategoryUnknown }, 0.8},
		{"nothing", func(d *draft.Draft) {
			d.StoreName = ""
			d.Total = 0
			d.TransactionDate = ""
			d.Category = constants.CategoryUnknown
		}, 0.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := fullDraft()
			tt.mutate(d)
			assert.InDelta(t, tt.want, Confidence(d), 1e-9)
		})
	}
}

func TestToLedgerPayload(t *testing.T) {
	now := time.Date(2024, 3, 5, 12, 30, 0, 0, time.UTC)
	p := ToLedgerPayload(fullDraft(), now)

	assert.Equal(t, 1, p.UserID)
	assert.Equal(t, "r1.jpg", p.ImagePath)
	assert.Equal(t, 2, p.Category) // 카페
	assert.Equal(t, "2024-03-05", p.Date)
	assert.Equal(t, 15000, p.Total)
	assert.Equal(t, "스타벅스 강남점", p.StoreName)
	assert.Equal(t, constants.PaymentCard, p.Payment)
	assert.Equal(t, "2024-03-05T12:30:00Z", p.CreatedAt)
	assert.InDelta(t, 1.0, p.OCRConfidence, 1e-9)
	require.Len(t, p.Details.Items, 1)
	assert.Equal(t, "", p.Details.Tax)
	assert.Equal(t, 0, p.Details.Discount)
}

func TestToLedgerPayloadUnknownCategoryCode(t *testing.T) {
	d := fullDraft()
	d.Category = "없는카테고리"
	p := ToLedgerPayload(d, time.Now())
	assert.Equal(t, 8, p.Category)
}

func TestValidatePayload(t *testing.T) {
	p := ToLedgerPayload(fullDraft(), time.Now())
	assert.NoError(t, ValidatePayload(p))
}

func TestValidatePayloadRejectsBadCategory(t *testing.T) {
	p := ToLedgerPayload(fullDraft(), time.Now())
	p.Category = 99
	assert.Error(t, ValidatePayload(p))
}
