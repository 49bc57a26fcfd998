package deck

import (
	"encoding/json"
	"fmt"
)

const (
	TypeTitle     = "title_slide"
	TypeBullet    = "bullet_slide"
	TypeImage     = "image_slide"
	TypeTwoColumn = "two_column"
)

type Deck struct {
	Title  string  `json:"title"`
	Slides []Slide `json:"slides"`
}

type Slide struct {
	Type        string   `json:"type"`
	Title       string   `json:"title"`
	Subtitle    string   `json:"subtitle,omitempty"`
	Bullets     []string `json:"bullets,omitempty"`
	ImagePrompt string   `json:"image_prompt,omitempty"`
	Notes       string   `json:"notes,omitempty"`
}

func KnownType(t string) bool {
	switch t {
	case TypeTitle, TypeBullet, TypeImage, TypeTwoColumn:
		return true
	}
	return false
}

// Decode unmarshals a candidate document. A missing slides key decodes to a
// nil slice, which Validate distinguishes from an empty deck.
func Decode(data []byte) (*Deck, error) {
	var d Deck
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("decode deck: %w", err)
	}
	return &d, nil
}
