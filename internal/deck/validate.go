package deck

import "fmt"

// Violation describes one schema problem: the field path plus the reason.
type Violation struct {
	Path   string
	Reason string
}

func (v Violation) String() string {
	return v.Path + ": " + v.Reason
}

// Validate checks a decoded document against the deck schema. Validation is
// advisory: callers report the violations but still hand the deck to the
// renderer, which defends against missing fields on its own.
func Validate(d *Deck) []Violation {
	var violations []Violation

	if d.Title == "" {
		violations = append(violations, Violation{Path: "title", Reason: "missing or empty"})
	}
	if d.Slides == nil {
		violations = append(violations, Violation{Path: "slides", Reason: "missing"})
	}

	for i, s := range d.Slides {
		path := fmt.Sprintf("slides[%d]", i)
		if s.Type == "" {
			violations = append(violations, Violation{Path: path + ".type", Reason: "missing"})
		} else if !KnownType(s.Type) {
			violations = append(violations, Violation{Path: path + ".type", Reason: fmt.Sprintf("unknown slide type %q", s.Type)})
		}
		if s.Title == "" {
			violations = append(violations, Violation{Path: path + ".title", Reason: "missing or empty"})
		}
	}

	return violations
}
