package parse

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/dh-kim/ocr-ledger/internal/draft"
)

// OCR often inserts spaces inside the keyword itself ("합 계"), so the label
// pattern permits embedded whitespace.
var reTotalLabel = regexp.MustCompile(`총\s*합\s*계|합\s*계|총\s*액|결\s*제\s*금\s*액|TOTAL`)

// ExtractTotal finds the declared grand total. Pass 1 looks for a labeled
// line and takes its trailing amount, scanning up to 3 following lines when
// the label and the number got split. Pass 2 falls back to the largest
// plausible amount in the document. No candidates at all yields 0.
func ExtractTotal(lines []string) int {
	for idx, line := range lines {
		if !reTotalLabel.MatchString(line) || containsAny(line, totalExclusions) {
			continue
		}
		if nums := lineNumbers(line); len(nums) > 0 {
			return nums[len(nums)-1]
		}
		for ahead := 1; ahead <= 3 && idx+ahead < len(lines); ahead++ {
			next := lines[idx+ahead]
			if containsAny(next, totalExclusions) {
				break
			}
			if nums := lineNumbers(next); len(nums) > 0 {
				return nums[0]
			}
		}
	}

	max := 0
	for _, line := range lines {
		if strings.ContainsAny(line, ":-") || containsAny(line, totalExclusions) {
			continue
		}
		for _, n := range lineNumbers(line) {
			if n >= 500 && n > max {
				max = n
			}
		}
	}
	return max
}

var reDigitRun = regexp.MustCompile(`\d{4,}`)

// TotalCandidates proposes up to 3 scored guesses at the grand total.
// Score: +3 total keyword, +2 bottom 30% of the document, up to +3 for
// magnitude. The sort is stable, so equal scores keep line order.
func TotalCandidates(lines []string) []draft.TotalCandidate {
	var candidates []draft.TotalCandidate

	for idx, line := range lines {
		cleaned := strings.ReplaceAll(line, ",", "")
		runs := reDigitRun.FindAllString(cleaned, -1)
		if len(runs) == 0 {
			continue
		}
		value, err := strconv.Atoi(runs[len(runs)-1])
		if err != nil {
			continue
		}

		score := 0
		if containsAny(line, totalKeywords) {
			score += 3
		}
		if 10*idx > 7*len(lines) {
			score += 2
		}
		magnitude := value / 10000
		if magnitude > 3 {
			magnitude = 3
		}
		score += magnitude

		candidates = append(candidates, draft.TotalCandidate{
			Label:  strings.TrimSpace(line),
			Value:  value,
			Score:  score,
			Source: "heuristic_line",
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
	if len(candidates) > 3 {
		candidates = candidates[:3]
	}
	return candidates
}
