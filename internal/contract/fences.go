package contract

import "strings"

// StripFences removes markdown code fences the oracle often wraps around
// JSON output, e.g. "```json\n[...]\n```". Text without fences is returned
// unchanged apart from whitespace trimming.
func StripFences(text string) string {
	s := strings.TrimSpace(text)

	if !strings.HasPrefix(s, "```") {
		return s
	}

	// Drop the opening fence line, including any language tag.
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	} else {
		s = strings.TrimPrefix(s, "```")
	}

	// Drop a trailing closing fence.
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")

	return strings.TrimSpace(s)
}
