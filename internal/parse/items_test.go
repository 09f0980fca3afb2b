package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dh-kim/ocr-ledger/internal/draft"
)

func TestExtractItemsTriplet(t *testing.T) {
	lines := []string{
		"아메리카노",
		"4,500 2 9,000",
	}
	items := ExtractItems(lines)
	require.Len(t, items, 1)
	assert.Equal(t, draft.Item{Name: "아메리카노", Quantity: 2, Price: 4500}, items[0])
}

func TestExtractItemsUngroupedNumbers(t *testing.T) {
	items := ExtractItems([]string{"아메리카노 4500 2 9000"})
	require.Len(t, items, 1)
	assert.Equal(t, 4500, items[0].Price)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, "UNKNOWN", items[0].Name)
}

func TestExtractItemsSkipsShortRows(t *testing.T) {
	// fewer than 3 numbers can't be price/quantity/amount
	assert.Empty(t, ExtractItems([]string{"4,500 2"}))
}

func TestExtractItemsNoArithmeticMatch(t *testing.T) {
	assert.Empty(t, ExtractItems([]string{"4,500 2 9,999"}))
}

func TestExtractItemsNameRecovery(t *testing.T) {
	lines := []string{
		"바나나우유",
		"*8801234567890",
		"1,300 2 2,600",
	}
	items := ExtractItems(lines)
	require.Len(t, items, 1)
	// barcode line is skipped, the product name above it wins
	assert.Equal(t, "바나나우유", items[0].Name)
}

func TestExtractItemsNameRejectsHeadersAndNoise(t *testing.T) {
	lines := []string{
		"단가 수량 금액",
		"12, 34",
		"크림빵",
		"짧",
		"1,200 3 3,600",
	}
	items := ExtractItems(lines)
	require.Len(t, items, 1)
	assert.Equal(t, "크림빵", items[0].Name)
}

func TestExtractItemsNameUnknownBeyondFourLines(t *testing.T) {
	lines := []string{
		"진짜상품명",
		"1111",
		"2222",
		"3333",
		"4444",
		"1,000 2 2,000",
	}
	items := ExtractItems(lines)
	require.Len(t, items, 1)
	// the real name sits 5 lines up, past the search window
	assert.Equal(t, "UNKNOWN", items[0].Name)
}
