package parse

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dh-kim/ocr-ledger/constants"
)

func TestClassifyByStoreName(t *testing.T) {
	c := NewClassifier(nil)
	got := c.Classify("스타벅스 강남점", nil, "")
	assert.Equal(t, "카페", got)
}

func TestClassifyCaseInsensitive(t *testing.T) {
	c := NewClassifier(nil)
	assert.Equal(t, "편의점", c.Classify("GS25 역삼점", nil, ""))
}

func TestClassifyByEarlyLines(t *testing.T) {
	c := NewClassifier(nil)
	lines := []string{"영수증", "서울약국", "감사합니다"}
	got := c.Classify("무명상점", lines, strings.Join(lines, "\n"))
	assert.Equal(t, "의료", got)
}

func TestClassifyByFullTextLastResort(t *testing.T) {
	c := NewClassifier(nil)
	lines := make([]string, 12)
	for i := range lines {
		lines[i] = "무의미한 줄"
	}
	lines[11] = "주유소 이용 감사합니다"
	got := c.Classify("무명상점", lines, strings.Join(lines, "\n"))
	assert.Equal(t, "주유", got)
}

func TestClassifyFallback(t *testing.T) {
	c := NewClassifier(nil)
	got := c.Classify("무명상점", []string{"아무 관련 없는 줄"}, "아무 관련 없는 줄")
	assert.Equal(t, constants.CategoryUnknown, got)
}

func TestClassifyTableOrderWins(t *testing.T) {
	rules := []CategoryRule{
		{Category: "A", Keywords: []string{"공통"}},
		{Category: "B", Keywords: []string{"공통"}},
	}
	c := NewClassifier(rules)
	assert.Equal(t, "A", c.Classify("공통상점", nil, ""))
}
