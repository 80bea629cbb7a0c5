package usecase

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// scoreRegex matches critic scores such as "95 Pts" or "92 points"
var scoreRegex = regexp.MustCompile(`(?i)(\d{2,3})\s*(?:pts|points)`)

// DefaultVarietal is used when no known grape appears in the text
const DefaultVarietal = "fine wine"

// DefaultBottleGrams is the shipping weight of a standard 750ml bottle
const DefaultBottleGrams = 1360

const gramsPerPound = 453.592

// varietalPairings is scanned in order and the first substring hit wins, so
// "cabernet" shadows "sauvignon" and "sauvignon" shadows "sauvignon blanc".
var varietalPairings = []struct {
	Varietal string
	Pairing  string
}{
	{"cabernet", "grilled meats"},
	{"sauvignon", "grilled meats"},
	{"merlot", "roasted poultry"},
	{"pinot noir", "salmon & duck"},
	{"syrah", "bbq ribs"},
	{"shiraz", "bbq ribs"},
	{"zinfandel", "pasta & burgers"},
	{"malbec", "red meats"},
	{"chardonnay", "creamy pasta"},
	{"sauvignon blanc", "fresh seafood"},
	{"riesling", "spicy cuisine"},
	{"champagne", "oysters & caviar"},
	{"sparkling", "appetizers"},
	{"rose", "summer salads"},
	{"tempranillo", "lamb chops"},
	{"sangiovese", "tomato pasta"},
	{"nebbiolo", "truffles & risotto"},
}

// regionAliases maps appellation fragments to display names, first hit wins
var regionAliases = []struct {
	Alias  string
	Region string
}{
	{"russian river valley", "Russian River"},
	{"napa valley", "Napa"},
	{"columbia valley", "Columbia Valley"},
	{"willamette valley", "Willamette"},
	{"sonoma coast", "Sonoma Coast"},
	{"alexander valley", "Alexander Valley"},
	{"paso robles", "Paso Robles"},
	{"ribera del duero", "Ribera del Duero"},
	{"rioja doca", "Rioja"},
	{"chianti classico", "Chianti"},
	{"brunello di montalcino", "Brunello"},
}

// sizeGrams is an exact-match table; sizes not listed weigh DefaultBottleGrams
var sizeGrams = map[string]int{
	"375ml":         680,
	"500ml":         907,
	"750ml":         1360,
	"1.5L":          2720,
	"1.5l":          2720,
	"3L":            5440,
	"3l":            5440,
	"Half Bottle":   680,
	"Bottle":        1360,
	"Magnum":        2720,
	"Double Magnum": 5440,
}

// ExtractScore returns the first critic score found in an HTML body
func ExtractScore(html string) (int, bool) {
	m := scoreRegex.FindStringSubmatch(html)
	if m == nil {
		return 0, false
	}
	score, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return score, true
}

// DetectVarietal returns the first known grape contained in text
func DetectVarietal(text string) string {
	lower := strings.ToLower(text)
	for _, v := range varietalPairings {
		if strings.Contains(lower, v.Varietal) {
			return v.Varietal
		}
	}
	return DefaultVarietal
}

// PairingFor returns the food pairing of a detected varietal, if any
func PairingFor(varietal string) (string, bool) {
	for _, v := range varietalPairings {
		if v.Varietal == varietal {
			return v.Pairing, true
		}
	}
	return "", false
}

// NormalizeRegion maps a region or tag list onto a short display name,
// falling back to the title-cased input.
func NormalizeRegion(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	lower := strings.ToLower(text)
	for _, r := range regionAliases {
		if strings.Contains(lower, r.Alias) {
			return r.Region
		}
	}
	return TitleCase(text)
}

// ResolveWeight returns the shipping weight in grams for a size label
func ResolveWeight(size string) int {
	if g, ok := sizeGrams[size]; ok {
		return g
	}
	return DefaultBottleGrams
}

// WeightPounds converts grams to pounds rounded to two decimals
func WeightPounds(grams int) float64 {
	return math.Round(float64(grams)/gramsPerPound*100) / 100
}
