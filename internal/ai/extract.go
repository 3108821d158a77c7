package ai

import "strings"

// ExtractJSONObject returns the first balanced brace-delimited span in s.
// It tracks nesting depth and skips braces inside JSON strings (including
// escaped quotes), so prose around or inside the model output cannot shift
// the span boundaries the way a greedy first-{-to-last-} match would.
func ExtractJSONObject(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	for start >= 0 {
		depth := 0
		inString := false
		escaped := false

		for i := start; i < len(s); i++ {
			c := s[i]
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
					return s[start : i+1], true
				}
			}
		}

		// The object opened at start never closes; retry from the next
		// opening brace in case a stray '{' preceded the real object.
		next := strings.IndexByte(s[start+1:], '{')
		if next < 0 {
			return "", false
		}
		start += 1 + next
	}
	return "", false
}
