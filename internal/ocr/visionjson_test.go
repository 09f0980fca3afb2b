package ocr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultFromJSONFullText(t *testing.T) {
	res, err := ResultFromJSON([]byte(`{"adapter":"google_vision","image_name":"r1.jpg","full_text":"스타벅스\n합계 9,000"}`))
	require.NoError(t, err)
	assert.Equal(t, "google_vision", res.Adapter)
	assert.Equal(t, "스타벅스\n합계 9,000", res.FullText)
	assert.Empty(t, res.Lines)
}

func TestResultFromJSONLines(t *testing.T) {
	res, err := ResultFromJSON([]byte(`{"lines":[{"text":"스타벅스"},{"text":"합계 9,000"}]}`))
	require.NoError(t, err)
	require.Len(t, res.Lines, 2)
	assert.Equal(t, "스타벅스", res.Lines[0].Text)
}

func TestResultFromJSONRejectsEmptyDocument(t *testing.T) {
	_, err := ResultFromJSON([]byte(`{"adapter":"x"}`))
	assert.Error(t, err)
}

func TestResultFromJSONRejectsBadLine(t *testing.T) {
	_, err := ResultFromJSON([]byte(`{"lines":[{"y_center":12}]}`))
	assert.Error(t, err)
}

func TestResultFromJSONRejectsGarbage(t *testing.T) {
	_, err := ResultFromJSON([]byte(`not json`))
	assert.Error(t, err)
}

func TestHeuristicConfidence(t *testing.T) {
	// date + currency + amount + enough content
	txt := "스타벅스 강남점 2024-03-05 아메리카노 4,500원 합계 9,000원 현금영수증 감사합니다 또 오세요 주차확인은 카운터에 문의하세요"
	assert.InDelta(t, 0.8, heuristicConfidence(txt), 1e-6)

	assert.InDelta(t, 0.2, heuristicConfidence(""), 1e-6)
}
