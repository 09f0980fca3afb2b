package parse

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/dh-kim/ocr-ledger/internal/draft"
)

// A line of digits, asterisks, commas and whitespace is never a product name.
var reNumericNoise = regexp.MustCompile(`^[\d\*,\s]+$`)

// ExtractItems detects item rows by triplet arithmetic: a line with at least
// three numbers where some contiguous (price, quantity) pair multiplies to
// the line's last number. The product name is recovered by walking upward.
func ExtractItems(lines []string) []draft.Item {
	var items []draft.Item

	for idx, line := range lines {
		nums := lineNumbers(line)
		if len(nums) < 3 {
			continue
		}
		amount := nums[len(nums)-1]

		for i := 0; i+2 < len(nums); i++ {
			price, quantity := nums[i], nums[i+1]
			if quantity == 0 || price*quantity != amount {
				continue
			}
			items = append(items, draft.Item{
				Name:     recoverName(lines, idx),
				Quantity: quantity,
				Price:    price,
			})
			break
		}
	}
	return items
}

// recoverName walks up to 4 lines backward from the item row and returns the
// closest line that looks like a product name.
func recoverName(lines []string, idx int) string {
	for back := 1; back <= 4; back++ {
		if idx-back < 0 {
			break
		}
		candidate := strings.TrimSpace(lines[idx-back])

		if reNumericNoise.MatchString(candidate) {
			continue
		}
		// barcode marker
		if strings.HasPrefix(candidate, "*") {
			continue
		}
		if containsAny(candidate, itemHeaderKeywords) {
			continue
		}
		if utf8.RuneCountInString(candidate) < 3 {
			continue
		}
		return candidate
	}
	return "UNKNOWN"
}
