package deck

import (
	"fmt"
	"strings"
)

// ExtractionError means the model output carried no JSON object. Raw keeps
// the full response so the caller can surface it for diagnosis.
type ExtractionError struct {
	Reason string
	Raw    string
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extract deck JSON: %s", e.Reason)
}

// Extract returns the first top-level balanced {...} object inside text.
// Markdown code fences are stripped before scanning. The scan counts brace
// depth (string-literal aware) rather than taking the first '{' and last '}',
// so prose after the object does not truncate or extend it.
func Extract(text string) (string, error) {
	cleaned := stripFences(text)

	start := strings.IndexByte(cleaned, '{')
	if start < 0 {
		return "", &ExtractionError{Reason: "no '{' found in model output", Raw: text}
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(cleaned); i++ {
		c := cleaned[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return cleaned[start : i+1], nil
			}
		}
	}

	return "", &ExtractionError{Reason: "unbalanced braces in model output", Raw: text}
}

func stripFences(text string) string {
	s := strings.TrimSpace(text)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```")
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		// drop the language tag line, e.g. ```json
		s = s[idx+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
