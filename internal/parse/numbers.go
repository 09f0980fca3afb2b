package parse

import (
	"regexp"
	"strconv"
	"strings"
)

// Matches grouped-thousands amounts ("12,000") and plain digit runs ("4500").
// The grouped alternative comes first so "12,000" is not read as 12 and 000.
var reNumber = regexp.MustCompile(`\d{1,3}(?:,\d{3})+|\d+`)

// lineNumbers returns every numeric token on a line in order.
// Tokens that fail to parse are skipped; a malformed line never aborts
// extraction of the rest of the document.
func lineNumbers(line string) []int {
	tokens := reNumber.FindAllString(line, -1)
	if len(tokens) == 0 {
		return nil
	}
	nums := make([]int, 0, len(tokens))
	for _, tok := range tokens {
		n, err := strconv.Atoi(strings.ReplaceAll(tok, ",", ""))
		if err != nil {
			continue
		}
		nums = append(nums, n)
	}
	return nums
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
