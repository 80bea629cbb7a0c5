package usecase

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// SEO length budgets, in runes
const (
	MaxSEOTitleLength       = 60
	MaxSEODescriptionLength = 155
)

const (
	titleSuffix          = "Best price"
	defaultRegionPhrase  = "best regions"
	budgetPriceCeiling   = 50.0
	budgetCloser         = "Best price & fast shipping at Mr D Wine."
	premiumCloserPattern = "%s Secure your bottle at Mr D Wine."
)

// SEOTitle builds the <title> tag for a product.
// The vintage is only shown for unique products: grouped products vary by
// vintage per variant. Region and the "Best price" suffix are appended
// greedily, each only if the result still fits in MaxSEOTitleLength.
func SEOTitle(vintage, baseTitle, region string, score int, isUnique bool) string {
	name := strings.TrimSpace(baseTitle)

	title := name
	if isUnique && IsVintageYear(vintage) {
		title = strings.TrimSpace(vintage + " " + name)
	}

	var components []string
	if region != "" {
		components = append(components, region)
	}
	components = append(components, titleSuffix)

	for _, comp := range components {
		candidate := title + " " + comp
		if utf8.RuneCountInString(candidate) <= MaxSEOTitleLength {
			title = candidate
		}
	}

	if utf8.RuneCountInString(title) > MaxSEOTitleLength {
		title = truncateAtWord(title, MaxSEOTitleLength)
	}

	return SentenceCase(title)
}

// SEODescription builds the meta description from whole sentences:
// a mandatory "Shop <title>." block, an optional varietal/region block and a
// closing hook chosen by price. A block that does not fit is dropped whole.
func SEODescription(price float64, title, region, varietal string, score int) string {
	regionShort := firstClause(region, defaultRegionPhrase)
	varietalShort := firstClause(varietal, DefaultVarietal)

	name := strings.TrimSpace(title)
	blockA := "Shop " + name + "."
	if utf8.RuneCountInString(blockA) > MaxSEODescriptionLength {
		blockA = "Shop " + truncateAtWord(name, MaxSEODescriptionLength-len("Shop .")) + "."
	}

	blockB := fmt.Sprintf("A prestigious %s from %s.", varietalShort, regionShort)

	var blockC string
	if price > 0 && price < budgetPriceCeiling {
		blockC = budgetCloser
	} else {
		scoreText := ""
		if score != 0 {
			scoreText = fmt.Sprintf("Rated %d pts.", score)
		}
		blockC = fmt.Sprintf(premiumCloserPattern, scoreText)
	}
	blockC = strings.TrimSpace(strings.Trim(strings.TrimSpace(blockC), ","))

	description := blockA
	if fits(description, blockB) {
		description += " " + blockB
	}
	if fits(description, blockC) {
		description += " " + blockC
	}

	if !strings.HasSuffix(description, ".") {
		description += "."
	}

	return SentenceCase(description)
}

// ParsePrice reads a price cell; anything unparseable counts as 0
func ParsePrice(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func fits(description, block string) bool {
	return utf8.RuneCountInString(description)+1+utf8.RuneCountInString(block) <= MaxSEODescriptionLength
}

// firstClause keeps the text before the first comma, so tag lists such as
// "Mendoza, Argentina, Uco Valley" read as "Mendoza".
func firstClause(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return strings.TrimSpace(strings.SplitN(s, ",", 2)[0])
}

// truncateAtWord cuts s to limit runes and then back to the last space
func truncateAtWord(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	cut := string(r[:limit])
	if i := strings.LastIndex(cut, " "); i != -1 {
		cut = cut[:i]
	}
	return cut
}
