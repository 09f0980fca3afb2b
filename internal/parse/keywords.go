package parse

// Heuristic keyword tables. These are data, not control flow: extending a
// list changes behavior without touching any extractor.

// totalKeywords mark a line as total-ish for the candidate scorer.
var totalKeywords = []string{"합계", "합", "계", "TOTAL", "총액"}

// totalExclusions disqualify a line from the total field extractor:
// change given, received amount, tax lines and the like carry large numbers
// that are not the grand total.
var totalExclusions = []string{"거스름", "받은금액", "받을금액", "면세", "부가세", "할인", "포인트"}

// itemHeaderKeywords mark table-header rows, never product names.
var itemHeaderKeywords = []string{"단가", "수량", "금액", "상품코드", "합계"}

// storeTypeKeywords boost a line in store-name scoring.
var storeTypeKeywords = []string{"마트", "카페", "편의점", "약국", "식당", "주유소", "치킨", "커피"}

// storeNoiseKeywords penalize boilerplate lines that look like names.
var storeNoiseKeywords = []string{"사업자", "대표자", "대표", "주소", "전화", "TEL", "합계", "금액", "부가세"}

// CategoryRule binds one category to its ordered keyword list.
type CategoryRule struct {
	Category string
	Keywords []string
}

// DefaultCategoryRules returns the built-in category table in code order.
// First matching category wins at each classification stage.
func DefaultCategoryRules() []CategoryRule {
	return []CategoryRule{
		{Category: "식비", Keywords: []string{"식당", "김밥", "치킨", "피자", "버거", "국밥", "분식", "족발", "초밥"}},
		{Category: "카페", Keywords: []string{"스타벅스", "이디야", "투썸", "메가커피", "커피", "카페", "베이커리", "빵"}},
		{Category: "교통", Keywords: []string{"지하철", "버스", "택시", "코레일", "철도", "고속도로", "톨게이트"}},
		{Category: "쇼핑", Keywords: []string{"이마트", "홈플러스", "롯데마트", "백화점", "다이소", "쿠팡", "마트"}},
		{Category: "의료", Keywords: []string{"약국", "병원", "의원", "치과", "한의원"}},
		{Category: "편의점", Keywords: []string{"gs25", "cu", "세븐일레븐", "이마트24", "미니스톱", "편의점"}},
		{Category: "주유", Keywords: []string{"주유소", "sk에너지", "gs칼텍스", "s-oil", "현대오일뱅크", "주유"}},
	}
}
