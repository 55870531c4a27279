// internal/workers/generation/brief-formatter/match.go
package briefformatter

import "strings"

type matchPattern struct {
	key      string
	keywords []string
}

// matchPatterns returns the ordered title pattern table. The platform pattern
// also accepts the product name itself.
func matchPatterns(product string) []matchPattern {
	return []matchPattern{
		{"business objective", []string{"business", "objective"}},
		{"marketing objective", []string{"marketing", "objective"}},
		{"background", []string{"background", "context"}},
		{"target audience", []string{"target", "audience", "persona"}},
		{"problem we are trying to solve", []string{"problem", "solve", "trying"}},
		{"challenges", []string{"challenge", "obstacles"}},
		{"solutions/offering", []string{"solution", "offering", "product"}},
		{"why xyz (platform)", []string{"why", "platform", strings.ToLower(product)}},
		{"why does enterprise need", []string{"enterprise", "need"}},
		{"market trend and demand", []string{"market", "trend", "demand"}},
		{"statement of work", []string{"statement", "work", "sow"}},
		{"key messages across levels", []string{"message", "level", "l1", "l2"}},
		{"campaign theme", []string{"campaign", "theme", "creative", "strategy"}},
		{"digital assets", []string{"digital", "assets", "banner", "microsite"}},
		{"digital campaign videos", []string{"video", "campaign"}},
		{"ai / tech enabled ideas", []string{"ai", "tech", "enabled", "ideas"}},
		{"channels / campaign digital mediums", []string{"channel", "mediums", "digital"}},
	}
}

// findMatchingContent returns the body of the first captured header that
// matches title, in header order.
func findMatchingContent(title string, captured *capturedSections, patterns []matchPattern) (string, bool) {
	target := strings.ToLower(title)
	for _, header := range captured.keys {
		if titlesMatch(target, strings.ToLower(header), patterns) {
			return captured.bodies[header], true
		}
	}
	return "", false
}

// titlesMatch accepts a header when any pattern applicable to target has at
// least half of its keywords (integer division) present in the header.
func titlesMatch(target, header string, patterns []matchPattern) bool {
	for _, p := range patterns {
		if !strings.Contains(target, p.key) {
			continue
		}
		hits := 0
		for _, kw := range p.keywords {
			if strings.Contains(header, kw) {
				hits++
			}
		}
		if hits >= len(p.keywords)/2 {
			return true
		}
	}
	return false
}
