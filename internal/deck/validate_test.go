package deck

import (
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		deck       *Deck
		wantCount  int
		wantSubstr string
	}{
		{
			name: "validDeck",
			deck: &Deck{
				Title: "T",
				Slides: []Slide{
					{Type: TypeTitle, Title: "Hello"},
					{Type: TypeBullet, Title: "B", Bullets: []string{"a"}},
				},
			},
			wantCount: 0,
		},
		{
			name:      "emptySlidesIsLegal",
			deck:      &Deck{Title: "T", Slides: []Slide{}},
			wantCount: 0,
		},
		{
			name:       "missingTitle",
			deck:       &Deck{Slides: []Slide{}},
			wantCount:  1,
			wantSubstr: "title",
		},
		{
			name:       "missingSlides",
			deck:       &Deck{Title: "T"},
			wantCount:  1,
			wantSubstr: "slides",
		},
		{
			name: "unknownSlideType",
			deck: &Deck{
				Title:  "T",
				Slides: []Slide{{Type: "chart_slide", Title: "C"}},
			},
			wantCount:  1,
			wantSubstr: "slides[0].type",
		},
		{
			name: "missingSlideTitle",
			deck: &Deck{
				Title:  "T",
				Slides: []Slide{{Type: TypeBullet}},
			},
			wantCount:  1,
			wantSubstr: "slides[0].title",
		},
		{
			name:      "everythingMissing",
			deck:      &Deck{},
			wantCount: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			violations := Validate(tt.deck)
			if len(violations) != tt.wantCount {
				t.Fatalf("Validate() returned %d violations (%v), want %d", len(violations), violations, tt.wantCount)
			}
			if tt.wantSubstr != "" {
				found := false
				for _, v := range violations {
					if strings.Contains(v.String(), tt.wantSubstr) {
						found = true
					}
				}
				if !found {
					t.Errorf("Validate() = %v, want a violation mentioning %q", violations, tt.wantSubstr)
				}
			}
		})
	}
}

func TestDecodeSlidesPresence(t *testing.T) {
	withSlides, err := Decode([]byte(`{"title":"T","slides":[]}`))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if withSlides.Slides == nil {
		t.Error("Decode() dropped an explicitly empty slides array")
	}

	withoutSlides, err := Decode([]byte(`{"title":"T"}`))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if withoutSlides.Slides != nil {
		t.Error("Decode() invented a slides array for a document without one")
	}

	if _, err := Decode([]byte(`{"title":`)); err == nil {
		t.Error("Decode() accepted malformed JSON")
	}
}

func TestKnownType(t *testing.T) {
	for _, typ := range []string{TypeTitle, TypeBullet, TypeImage, TypeTwoColumn} {
		if !KnownType(typ) {
			t.Errorf("KnownType(%q) = false", typ)
		}
	}
	if KnownType("chart_slide") {
		t.Error(`KnownType("chart_slide") = true`)
	}
	if KnownType("") {
		t.Error(`KnownType("") = true`)
	}
}
