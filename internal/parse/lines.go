package parse

import (
	"strings"

	"github.com/dh-kim/ocr-ledger/internal/ocr"
)

// Lines turns an OCR result into the ordered sequence of cleaned text lines
// every extractor operates on. Layout-grouped lines are used as-is; a flat
// blob is split on newlines and gets the digit-merge repair, since raw OCR
// sometimes breaks one number across two lines.
func Lines(res ocr.Result) []string {
	if len(res.Lines) > 0 {
		lines := make([]string, 0, len(res.Lines))
		for _, ln := range res.Lines {
			if t := strings.TrimSpace(ln.Text); t != "" {
				lines = append(lines, t)
			}
		}
		return lines
	}

	var lines []string
	for _, raw := range strings.Split(res.FullText, "\n") {
		if t := strings.TrimSpace(raw); t != "" {
			lines = append(lines, t)
		}
	}
	return mergeSplitNumbers(lines)
}

// mergeSplitNumbers concatenates a purely-digit line with an immediately
// following purely-digit line. Applied only in flat-text fallback mode.
func mergeSplitNumbers(lines []string) []string {
	merged := make([]string, 0, len(lines))
	for i := 0; i < len(lines); i++ {
		if isAllDigits(lines[i]) && i+1 < len(lines) && isAllDigits(lines[i+1]) {
			merged = append(merged, lines[i]+lines[i+1])
			i++
			continue
		}
		merged = append(merged, lines[i])
	}
	return merged
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
