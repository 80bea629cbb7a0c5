package usecase

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Package-level compiled regex patterns for performance
var (
	nonSlugRegex       = regexp.MustCompile(`[^a-z0-9]+`)
	nonAlnumSpaceRegex = regexp.MustCompile(`[^a-z0-9\s]`)
	multipleSpaceRegex = regexp.MustCompile(`\s+`)
)

// Descriptor patterns stripped from titles to compute the base name. Word
// boundaries are checked by matchWords, not by \b.
var (
	yearTokenRegex     = regexp.MustCompile(`(?:19|20)\d{2}`)
	nvTokenRegex       = regexp.MustCompile(`nv`)
	volumeTokenRegex   = regexp.MustCompile(`\d+(?:\.\d+)?\s?(?:ml|l|cl)`)
	caseTokenRegex     = regexp.MustCompile(`case`)
	packSizeTokenRegex = regexp.MustCompile(`\dx\d+`)
	signatureSGWSRegex = regexp.MustCompile(`signature\s*\(sgws\)`)
	sgwsRegex          = regexp.MustCompile(`sgws`)

	vintageYearRegex = regexp.MustCompile(`19[5-9]\d|20[0-2]\d`)
)

// titleStopWords are removed, in this order, after volumes and pack sizes
var titleStopWords = []string{
	"docg", "doc", "do", "igt", "estate", "reserve", "reserva",
	"gran", "grand", "cru", "classico", "bottle", "copy",
}

var stopWordRegexes = func() []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(titleStopWords))
	for i, w := range titleStopWords {
		out[i] = regexp.MustCompile(regexp.QuoteMeta(w))
	}
	return out
}()

// NonVintage marks wines without a production year
const NonVintage = "NV"

// nonASCII selects the runes FoldASCII drops after decomposition
var nonASCII = runes.Predicate(func(r rune) bool {
	return r > unicode.MaxASCII
})

// FoldASCII strips diacritics and any remaining non-ASCII runes (Château -> Chateau).
// Transformer chains keep state, so each call builds its own.
func FoldASCII(s string) string {
	fold := transform.Chain(norm.NFKD, runes.Remove(nonASCII))
	result, _, err := transform.String(fold, s)
	if err != nil {
		return s
	}
	return result
}

// Slugify lowercases, folds to ASCII and joins alphanumeric runs with hyphens.
// It is idempotent: Slugify(Slugify(x)) == Slugify(x).
func Slugify(text string) string {
	s := strings.TrimSpace(strings.ToLower(text))
	if s == "" {
		return ""
	}
	s = FoldASCII(s)
	s = nonSlugRegex.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// MakeSearchKey builds the catalog key handle|vintage|size
func MakeSearchKey(handle, vintage, size string) string {
	return Slugify(handle) + "|" + Slugify(vintage) + "|" + Slugify(size)
}

// SearchKeyPrefix returns the handle|vintage| prefix used for size-agnostic lookups
func SearchKeyPrefix(handle, vintage string) string {
	return Slugify(handle) + "|" + Slugify(vintage) + "|"
}

// StripDescriptors reduces a wine title to its base name by removing vintage,
// volume, packaging and classification tokens. The removal order matters:
// "signature (sgws)" goes before the bare "sgws", both before the stopwords.
func StripDescriptors(title string) string {
	s := strings.ToLower(title)

	s = removeWords(s, yearTokenRegex)
	s = removeWords(s, nvTokenRegex)
	s = removeWords(s, volumeTokenRegex)
	s = removeWords(s, caseTokenRegex)
	s = removeWords(s, packSizeTokenRegex)
	s = signatureSGWSRegex.ReplaceAllString(s, "")
	s = sgwsRegex.ReplaceAllString(s, "")
	for _, re := range stopWordRegexes {
		s = removeWords(s, re)
	}

	s = FoldASCII(s)
	s = nonAlnumSpaceRegex.ReplaceAllString(s, "")
	s = multipleSpaceRegex.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// DetectVintage returns the first standalone year between 1950 and 2029 in the
// title, or NV when there is none.
func DetectVintage(title string) string {
	s := strings.ToUpper(title)
	if spans := matchWords(s, vintageYearRegex); len(spans) > 0 {
		return s[spans[0][0]:spans[0][1]]
	}
	return NonVintage
}

// IsVintageYear reports whether v is a numeric vintage rather than NV
func IsVintageYear(v string) bool {
	return v != "" && !strings.EqualFold(v, NonVintage)
}

// NormalizeVendor lowercases and trims a vendor name and drops dots (S.A. -> sa)
func NormalizeVendor(vendor string) string {
	s := strings.TrimSpace(strings.ToLower(vendor))
	return strings.ReplaceAll(s, ".", "")
}

// TitleCase upper-cases the first letter of every word
func TitleCase(s string) string {
	return cases.Title(language.Und).String(s)
}

// SentenceCase upper-cases the first rune and lower-cases the rest
func SentenceCase(s string) string {
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToTitle(r)) + strings.ToLower(s[size:])
}

// removeWords deletes every whole-word match of re
func removeWords(s string, re *regexp.Regexp) string {
	spans := matchWords(s, re)
	if len(spans) == 0 {
		return s
	}
	var b strings.Builder
	last := 0
	for _, sp := range spans {
		b.WriteString(s[last:sp[0]])
		last = sp[1]
	}
	b.WriteString(s[last:])
	return b.String()
}

// matchWords returns the non-overlapping matches of re that start and end on a
// word boundary. Letters with diacritics count as word runes, which RE2's
// ASCII-only \b does not do. A candidate failing the boundary check is retried
// one rune further on.
func matchWords(s string, re *regexp.Regexp) [][2]int {
	var spans [][2]int
	pos := 0
	for pos < len(s) {
		loc := re.FindStringIndex(s[pos:])
		if loc == nil {
			break
		}
		start, end := pos+loc[0], pos+loc[1]
		if end > start && isWordBoundary(s, start) && isWordBoundary(s, end) {
			spans = append(spans, [2]int{start, end})
			pos = end
			continue
		}
		_, size := utf8.DecodeRuneInString(s[start:])
		if size == 0 {
			break
		}
		pos = start + size
	}
	return spans
}

func isWordBoundary(s string, i int) bool {
	before := false
	if i > 0 {
		r, _ := utf8.DecodeLastRuneInString(s[:i])
		before = isWordRune(r)
	}
	after := false
	if i < len(s) {
		r, _ := utf8.DecodeRuneInString(s[i:])
		after = isWordRune(r)
	}
	return before != after
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}
