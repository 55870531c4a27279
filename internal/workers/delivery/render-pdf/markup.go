// internal/workers/delivery/render-pdf/markup.go
package renderpdf

import (
	"strings"

	"golang.org/x/net/html"
)

// parseMarkup splits a section fragment into lines of styled runs. Only
// <strong>/<b> and <br> carry meaning; other tags are ignored.
func parseMarkup(fragment string) [][]run {
	z := html.NewTokenizer(strings.NewReader(fragment))

	var lines [][]run
	var current []run
	bold := 0

	flush := func() {
		if len(current) > 0 {
			lines = append(lines, current)
		}
		current = nil
	}

	for {
		switch z.Next() {
		case html.ErrorToken:
			flush()
			return lines
		case html.TextToken:
			text := strings.ReplaceAll(string(z.Text()), "\n", " ")
			if strings.TrimSpace(text) == "" && len(current) == 0 {
				continue
			}
			current = append(current, run{Text: text, Bold: bold > 0})
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "br":
				flush()
			case "strong", "b":
				bold++
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "strong", "b":
				if bold > 0 {
					bold--
				}
			}
		}
	}
}

// runsFromMarkdown turns paired ** markers into bold runs. A stray marker is
// dropped.
func runsFromMarkdown(line string) []run {
	parts := strings.Split(line, "**")
	if len(parts)%2 == 0 {
		last := len(parts) - 1
		parts[last-1] += parts[last]
		parts = parts[:last]
	}
	var out []run
	for i, p := range parts {
		if p == "" {
			continue
		}
		out = append(out, run{Text: p, Bold: i%2 == 1})
	}
	return out
}

var rawHeaderKeywords = []string{"objective", "audience", "background", "problem", "solution", "channel"}

// segmentRaw splits unreconciled model text into blocks for documents built
// without sections.
func segmentRaw(raw string) []block {
	var blocks []block
	var cur *block

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if isRawHeader(line) {
			blocks = append(blocks, block{Title: strings.TrimSpace(strings.ReplaceAll(line, "**", ""))})
			cur = &blocks[len(blocks)-1]
			continue
		}
		if cur == nil {
			continue
		}
		if strings.HasPrefix(line, "- ") {
			line = "• " + line[2:]
		}
		if runs := runsFromMarkdown(line); len(runs) > 0 {
			cur.Lines = append(cur.Lines, runs)
		}
	}
	return blocks
}

func isRawHeader(line string) bool {
	if strings.HasPrefix(line, "**") && strings.HasSuffix(line, "**") && len(line) > 4 {
		return true
	}
	lower := strings.ToLower(line)
	for _, kw := range rawHeaderKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// cp1252Extras are the non-Latin-1 runes the core fonts can still draw.
var cp1252Extras = map[rune]bool{
	'€': true, '‚': true, 'ƒ': true, '„': true, '…': true, '†': true, '‡': true,
	'ˆ': true, '‰': true, 'Š': true, '‹': true, 'Œ': true, 'Ž': true, '‘': true,
	'’': true, '“': true, '”': true, '•': true, '–': true, '—': true, '˜': true,
	'™': true, 'š': true, '›': true, 'œ': true, 'ž': true, 'Ÿ': true,
}

// sanitize drops runes the core PDF fonts cannot encode, such as emoji.
func sanitize(s string) string {
	return strings.TrimSpace(sanitizeRun(s))
}

// sanitizeRun is sanitize without trimming, so spacing between runs survives.
func sanitizeRun(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < 0x100 || cp1252Extras[r] {
			b.WriteRune(r)
		}
	}
	return b.String()
}
