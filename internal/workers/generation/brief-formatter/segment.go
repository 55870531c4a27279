// internal/workers/generation/brief-formatter/segment.go
package briefformatter

import (
	"strings"
	"unicode"
)

// headerKeywords mark a line as a header when any appears in the lower-cased
// line. Order is irrelevant to the result but kept stable for readability.
var headerKeywords = []string{
	"objective", "background", "audience", "problem", "challenge",
	"solution", "offering", "why", "enterprise", "trend", "demand",
	"statement of work", "sow", "message", "campaign", "theme",
	"creative strategy", "digital assets", "video", "ai", "tech",
	"channels", "mediums",
}

// capturedSections keeps header bodies in first-seen header order. A repeated
// header overwrites its body but keeps its original position.
type capturedSections struct {
	keys   []string
	bodies map[string]string
}

func (c *capturedSections) put(header, body string) {
	if _, seen := c.bodies[header]; !seen {
		c.keys = append(c.keys, header)
	}
	c.bodies[header] = body
}

// segment splits raw model text into header -> body pairs. Body lines before
// the first header are dropped, as are headers with no body.
func segment(raw string) *capturedSections {
	out := &capturedSections{bodies: map[string]string{}}

	var current string
	var body []string
	flush := func() {
		if current != "" && len(body) > 0 {
			out.put(current, strings.Join(body, "\n"))
		}
	}

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if isHeaderLine(line) {
			flush()
			current = normalizeHeader(line)
			body = nil
			continue
		}
		body = append(body, line)
	}
	flush()

	return out
}

func isHeaderLine(line string) bool {
	if strings.HasPrefix(line, "**") && strings.HasSuffix(line, "**") {
		return true
	}
	if strings.HasPrefix(line, "#") {
		return true
	}
	if isUpper(line) && len(strings.Fields(line)) <= 6 {
		return true
	}

	lower := strings.ToLower(line)
	for _, kw := range headerKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// isUpper reports whether s has at least one cased letter and no lower-case
// letter.
func isUpper(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) || unicode.IsTitle(r) {
			cased = true
		}
	}
	return cased
}

func normalizeHeader(line string) string {
	line = strings.ReplaceAll(line, "**", "")
	line = strings.ReplaceAll(line, "#", "")
	return strings.TrimSpace(line)
}
