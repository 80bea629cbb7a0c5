package usecase

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestSEOTitle(t *testing.T) {
	tests := []struct {
		name      string
		vintage   string
		baseTitle string
		region    string
		score     int
		isUnique  bool
		want      string
	}{
		{
			name:      "unique product shows vintage",
			vintage:   "2020",
			baseTitle: "Chateau Margaux",
			region:    "Bordeaux",
			score:     95,
			isUnique:  true,
			want:      "2020 chateau margaux bordeaux best price",
		},
		{
			name:      "grouped product hides vintage",
			vintage:   "2019",
			baseTitle: "Opus One",
			region:    "Napa",
			isUnique:  false,
			want:      "Opus one napa best price",
		},
		{
			name:      "non vintage never shown",
			vintage:   NonVintage,
			baseTitle: "Veuve Clicquot Brut",
			isUnique:  true,
			want:      "Veuve clicquot brut best price",
		},
		{
			name:      "region dropped when it does not fit",
			vintage:   "2018",
			baseTitle: "Domaine de la Romanee Conti Grands Echezeaux",
			region:    "Cote de Nuits",
			isUnique:  true,
			want:      "2018 domaine de la romanee conti grands echezeaux best price",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SEOTitle(tt.vintage, tt.baseTitle, tt.region, tt.score, tt.isUnique)
			if got != tt.want {
				t.Errorf("SEOTitle() = %q, want %q", got, tt.want)
			}
			if n := utf8.RuneCountInString(got); n > MaxSEOTitleLength {
				t.Errorf("SEOTitle() length = %d, want <= %d", n, MaxSEOTitleLength)
			}
		})
	}
}

func TestSEOTitle_LengthBound(t *testing.T) {
	long := strings.Repeat("Magnificent ", 10) + "Cuvee"

	got := SEOTitle("2016", long, "Champagne", 98, true)

	assert.LessOrEqual(t, utf8.RuneCountInString(got), MaxSEOTitleLength)
	assert.True(t, strings.HasPrefix(got, "2016 magnificent"), "got %q", got)
	assert.False(t, strings.HasSuffix(got, " "), "got %q", got)
}

func TestSEODescription(t *testing.T) {
	t.Run("budget wine", func(t *testing.T) {
		got := SEODescription(30, "Chateau Margaux", "Bordeaux, France", "cabernet", 0)

		assert.Equal(t,
			"Shop chateau margaux. a prestigious cabernet from bordeaux. best price & fast shipping at mr d wine.",
			got)
		assert.Contains(t, got, "Shop chateau margaux.")
	})

	t.Run("premium wine with score", func(t *testing.T) {
		got := SEODescription(450, "Opus One", "Napa", "cabernet", 97)

		assert.Equal(t,
			"Shop opus one. a prestigious cabernet from napa. rated 97 pts. secure your bottle at mr d wine.",
			got)
	})

	t.Run("premium wine without score", func(t *testing.T) {
		got := SEODescription(120, "Opus One", "", "", 0)

		assert.Equal(t,
			"Shop opus one. a prestigious fine wine from best regions. secure your bottle at mr d wine.",
			got)
	})

	t.Run("unknown price uses premium closer", func(t *testing.T) {
		got := SEODescription(0, "Opus One", "Napa", "cabernet", 0)
		assert.True(t, strings.HasSuffix(got, "secure your bottle at mr d wine."), "got %q", got)
	})
}

func TestSEODescription_LengthBound(t *testing.T) {
	titles := []string{
		"Opus One",
		strings.Repeat("Grand Vin ", 8),
		strings.Repeat("Extraordinarily Long Producer Name ", 6),
		strings.Repeat("x", 200),
	}

	for _, title := range titles {
		for _, price := range []float64{0, 25, 500} {
			got := SEODescription(price, title, "Russian River, Sonoma, California", "pinot noir", 96)
			if n := utf8.RuneCountInString(got); n > MaxSEODescriptionLength {
				t.Errorf("SEODescription(%q) length = %d, want <= %d", title, n, MaxSEODescriptionLength)
			}
			if !strings.HasSuffix(got, ".") {
				t.Errorf("SEODescription(%q) = %q, want trailing period", title, got)
			}
			if !strings.HasPrefix(got, "Shop ") {
				t.Errorf("SEODescription(%q) = %q, want Shop prefix", title, got)
			}
		}
	}
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"29.99", 29.99},
		{" 450 ", 450},
		{"", 0},
		{"N/A", 0},
		{"$30", 0},
		{"NaN", 0},
		{"Inf", 0},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := ParsePrice(tt.raw); got != tt.want {
				t.Errorf("ParsePrice(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}
