package parse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dh-kim/ocr-ledger/constants"
)

// Fields is the combined best-effort output of the field extractors.
// Absence of a match is an empty/zero value, never an error.
type Fields struct {
	StoreName       string
	TransactionDate string
	Total           int
	Payment         string
	Category        string
}

// ExtractFields runs every field extractor over the same line sequence.
// The extractors are independent of each other; only the category
// classifier sees the extracted store name, per its own contract.
func ExtractFields(lines []string, classifier *Classifier) Fields {
	store := ExtractStoreName(lines)
	fullText := strings.Join(lines, "\n")
	return Fields{
		StoreName:       store,
		TransactionDate: ExtractDate(fullText),
		Total:           ExtractTotal(lines),
		Payment:         ExtractPayment(lines),
		Category:        classifier.Classify(store, lines, fullText),
	}
}

var reStoreLabel = regexp.MustCompile(`(?:상호|매장명|가맹점)\s*[:：]?\s*(.+)`)

// ExtractStoreName tries labeled patterns first, then scores the first 10
// lines on script, digits, length and keyword signals.
func ExtractStoreName(lines []string) string {
	for _, line := range lines {
		if m := reStoreLabel.FindStringSubmatch(line); m != nil {
			name := strings.TrimSpace(m[1])
			if utf8.RuneCountInString(name) > 1 {
				return name
			}
		}
	}

	limit := len(lines)
	if limit > 10 {
		limit = 10
	}
	bestScore := -1 << 30
	best := ""
	for _, line := range lines[:limit] {
		score := scoreStoreLine(line)
		if score > bestScore {
			bestScore = score
			best = line
		}
	}
	return best
}

func scoreStoreLine(line string) int {
	score := 0
	if hasNonLatinLetter(line) {
		score += 2
	}
	if !strings.ContainsAny(line, "0123456789") {
		score++
	}
	if n := utf8.RuneCountInString(line); n >= 2 && n <= 20 {
		score++
	}
	if containsAny(line, storeTypeKeywords) {
		score += 2
	}
	if containsAny(line, storeNoiseKeywords) {
		score -= 5
	}
	return score
}

func hasNonLatinLetter(s string) bool {
	for _, r := range s {
		if r > unicode.MaxASCII && unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

var (
	reDateSep     = regexp.MustCompile(`(\d{2,4})[-./ ](\d{1,2})[-./ ](\d{1,2})`)
	reDateCompact = regexp.MustCompile(`(20\d{2})(\d{2})(\d{2})`)
)

// ExtractDate scans the joined text for a separated or compact date and
// normalizes the first plausible one to YYYY-MM-DD. Years outside
// [2010, 2030] are rejected.
func ExtractDate(fullText string) string {
	for _, re := range []*regexp.Regexp{reDateSep, reDateCompact} {
		for _, m := range re.FindAllStringSubmatch(fullText, -1) {
			if d := normalizeDate(m[1], m[2], m[3]); d != "" {
				return d
			}
		}
	}
	return ""
}

func normalizeDate(y, mo, d string) string {
	year, _ := strconv.Atoi(y)
	if len(y) == 2 {
		year += 2000
	}
	month, _ := strconv.Atoi(mo)
	day, _ := strconv.Atoi(d)
	if year < 2010 || year > 2030 || month < 1 || month > 12 || day < 1 || day > 31 {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// ExtractPayment returns the payment method from the first line carrying a
// payment keyword. Per line the checks run card > cash > app.
func ExtractPayment(lines []string) string {
	for _, line := range lines {
		switch {
		case strings.Contains(line, "카드"):
			return constants.PaymentCard
		case strings.Contains(line, "현금"):
			return constants.PaymentCash
		case strings.Contains(line, "페이"):
			return constants.PaymentApp
		}
	}
	return ""
}
