package parse

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTotalLabeledLine(t *testing.T) {
	lines := []string{"아메리카노 4,500", "합계 15,000"}
	assert.Equal(t, 15000, ExtractTotal(lines))
}

func TestExtractTotalLabelWithEmbeddedSpace(t *testing.T) {
	lines := []string{"합 계 15,000"}
	assert.Equal(t, 15000, ExtractTotal(lines))
}

func TestExtractTotalScansFollowingLines(t *testing.T) {
	lines := []string{"합계", "15,000"}
	assert.Equal(t, 15000, ExtractTotal(lines))
}

func TestExtractTotalStopsScanOnExclusion(t *testing.T) {
	lines := []string{"합계", "거스름돈 5,000", "15,000"}
	// the scan stops at the exclusion line, so pass 2 picks the max
	assert.Equal(t, 15000, ExtractTotal(lines))
}

func TestExtractTotalSkipsExcludedLabelLine(t *testing.T) {
	lines := []string{"면세 합계 3,000", "합계 15,000"}
	assert.Equal(t, 15000, ExtractTotal(lines))
}

func TestExtractTotalFallbackMax(t *testing.T) {
	lines := []string{"아메리카노 4,500", "카페라떼 5,000", "감사합니다 300"}
	// no label: the largest amount >= 500 wins; 300 is ignored
	assert.Equal(t, 5000, ExtractTotal(lines))
}

func TestExtractTotalFallbackSkipsColonAndDashLines(t *testing.T) {
	lines := []string{"TEL: 1234567", "2024-03-05", "아메리카노 4,500"}
	assert.Equal(t, 4500, ExtractTotal(lines))
}

func TestExtractTotalNone(t *testing.T) {
	assert.Equal(t, 0, ExtractTotal([]string{"감사합니다"}))
}

func TestTotalCandidatesScoring(t *testing.T) {
	lines := make([]string, 20)
	for i := range lines {
		lines[i] = "item"
	}
	lines[15] = "합계 15,000"

	cands := TotalCandidates(lines)
	require.Len(t, cands, 1)
	assert.Equal(t, 15000, cands[0].Value)
	assert.Equal(t, "합계 15,000", cands[0].Label)
	assert.Equal(t, "heuristic_line", cands[0].Source)
	// keyword +3, bottom position +2, magnitude +1
	assert.GreaterOrEqual(t, cands[0].Score, 6)
}

func TestTotalCandidatesTopThree(t *testing.T) {
	lines := []string{
		"1000",
		"2000",
		"합계 30000",
		"총액 40000",
	}
	cands := TotalCandidates(lines)
	require.Len(t, cands, 3)
	// both keyword lines outrank the plain numbers
	assert.Equal(t, 40000, cands[0].Value)
	assert.Equal(t, 30000, cands[1].Value)
}

func TestTotalCandidatesStableOrderOnTies(t *testing.T) {
	lines := []string{"1000", "2000", "3000"}
	cands := TotalCandidates(lines)
	require.Len(t, cands, 3)
	for i, want := range []int{1000, 2000, 3000} {
		assert.Equal(t, want, cands[i].Value, fmt.Sprintf("index %d", i))
	}
}

func TestTotalCandidatesIgnoresShortRuns(t *testing.T) {
	assert.Empty(t, TotalCandidates([]string{"수량 2 개"}))
}
