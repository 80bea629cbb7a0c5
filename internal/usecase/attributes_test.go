package usecase

import (
	"testing"
)

func TestExtractScore(t *testing.T) {
	tests := []struct {
		name      string
		html      string
		wantScore int
		wantOK    bool
	}{
		{name: "pts", html: "<p>95 Pts Wine Advocate</p>", wantScore: 95, wantOK: true},
		{name: "points", html: "Rated 92 points by James Suckling", wantScore: 92, wantOK: true},
		{name: "no space hundred", html: "100pts", wantScore: 100, wantOK: true},
		{name: "year before score", html: "The 1995 vintage earned 93 Points", wantScore: 93, wantOK: true},
		{name: "first score wins", html: "94 pts WS, 96 pts RP", wantScore: 94, wantOK: true},
		{name: "single digit", html: "5 pts", wantOK: false},
		{name: "no score", html: "<p>Elegant and long.</p>", wantOK: false},
		{name: "empty", html: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, ok := ExtractScore(tt.html)
			if ok != tt.wantOK || score != tt.wantScore {
				t.Errorf("ExtractScore(%q) = (%d, %v), want (%d, %v)", tt.html, score, ok, tt.wantScore, tt.wantOK)
			}
		})
	}
}

func TestDetectVarietal(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"Malbec Reserva", "malbec"},
		{"Generic Red Blend", DefaultVarietal},
		{"Caymus Cabernet Sauvignon", "cabernet"},
		{"Cloudy Bay Sauvignon Blanc", "sauvignon"},
		{"Meiomi PINOT NOIR", "pinot noir"},
		{"Penfolds Shiraz", "shiraz"},
		{"", DefaultVarietal},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := DetectVarietal(tt.text); got != tt.want {
				t.Errorf("DetectVarietal(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestPairingFor(t *testing.T) {
	if p, ok := PairingFor("malbec"); !ok || p != "red meats" {
		t.Errorf("PairingFor(malbec) = (%q, %v), want (red meats, true)", p, ok)
	}
	if p, ok := PairingFor(DefaultVarietal); ok {
		t.Errorf("PairingFor(%q) = (%q, true), want no pairing", DefaultVarietal, p)
	}
}

func TestNormalizeRegion(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"Napa Valley, California", "Napa"},
		{"Russian River Valley", "Russian River"},
		{"RIOJA DOCa", "Rioja"},
		{"Chianti Classico DOCG", "Chianti"},
		{"mendoza, argentina", "Mendoza, Argentina"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := NormalizeRegion(tt.text); got != tt.want {
				t.Errorf("NormalizeRegion(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestResolveWeight(t *testing.T) {
	tests := []struct {
		size      string
		wantGrams int
		wantLbs   float64
	}{
		{"1.5L", 2720, 6.0},
		{"375ml", 680, 1.5},
		{"750ml", 1360, 3.0},
		{"Magnum", 2720, 6.0},
		{"3L", 5440, 11.99},
		{"1.5 L", DefaultBottleGrams, 3.0},
		{"unknown", DefaultBottleGrams, 3.0},
		{"", DefaultBottleGrams, 3.0},
	}

	for _, tt := range tests {
		t.Run(tt.size, func(t *testing.T) {
			grams := ResolveWeight(tt.size)
			if grams != tt.wantGrams {
				t.Errorf("ResolveWeight(%q) = %d, want %d", tt.size, grams, tt.wantGrams)
			}
			if lbs := WeightPounds(grams); lbs != tt.wantLbs {
				t.Errorf("WeightPounds(%d) = %v, want %v", grams, lbs, tt.wantLbs)
			}
		})
	}
}
