package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dh-kim/ocr-ledger/internal/ocr"
)

func TestLinesGrouped(t *testing.T) {
	res := ocr.Result{
		Lines: []ocr.Line{
			{Text: "  스타벅스 강남점  "},
			{Text: ""},
			{Text: "합계 15,000"},
		},
	}
	assert.Equal(t, []string{"스타벅스 강남점", "합계 15,000"}, Lines(res))
}

func TestLinesFlatFallback(t *testing.T) {
	res := ocr.Result{FullText: "스타벅스\n\n  합계  \n15,000\n"}
	assert.Equal(t, []string{"스타벅스", "합계", "15,000"}, Lines(res))
}

func TestLinesMergesSplitNumbers(t *testing.T) {
	res := ocr.Result{FullText: "합계\n15\n000\n감사합니다"}
	assert.Equal(t, []string{"합계", "15000", "감사합니다"}, Lines(res))
}

func TestLinesNoMergeForGroupedInput(t *testing.T) {
	// The digit-merge repair is a flat-text fallback only; layout-grouped
	// lines pass through untouched.
	res := ocr.Result{
		Lines: []ocr.Line{{Text: "15"}, {Text: "000"}},
	}
	assert.Equal(t, []string{"15", "000"}, Lines(res))
}

func TestMergeSplitNumbersPairsOnly(t *testing.T) {
	// Three digit lines in a row: the first two merge, the third stands.
	got := mergeSplitNumbers([]string{"1", "2", "3"})
	assert.Equal(t, []string{"12", "3"}, got)
}
