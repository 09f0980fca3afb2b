package constants

// CategoryUnknown is the fallback when no keyword table entry matches.
const CategoryUnknown = "기타"

// categoryCodes is the closed lookup table used by the ledger payload.
// Codes are stable; the receipts table references them by integer FK.
var categoryCodes = map[string]int{
	"식비":  1,
	"카페":  2,
	"교통":  3,
	"쇼핑":  4,
	"의료":  5,
	"편의점": 6,
	"주유":  7,
	"기타":  8,
}

// CategoryNames lists all categories in code order.
var CategoryNames = []string{"식비", "카페", "교통", "쇼핑", "의료", "편의점", "주유", "기타"}

// CategoryCode maps a category name to its ledger code.
// Unknown names map to the 기타 code.
func CategoryCode(name string) int {
	if code, ok := categoryCodes[name]; ok {
		return code
	}
	return categoryCodes[CategoryUnknown]
}
