// internal/workers/generation/brief-formatter/format.go
package briefformatter

import (
	"strings"

	"creative-brief/internal/models"
)

const emptyContent = "Content to be developed based on stakeholder requirements."

// Format reconciles free model text against the 17 canonical sections. It
// never fails: sections the text does not cover are filled from templates
// driven by the research record. A nil research record is treated as empty.
func Format(rawText string, research *models.ResearchRecord, input models.StakeholderInput) []models.Section {
	sections, _ := reconcile(rawText, research, input)
	return sections
}

// reconcile also reports, per section, whether the content came from the
// model text.
func reconcile(rawText string, research *models.ResearchRecord, input models.StakeholderInput) ([]models.Section, []bool) {
	if research == nil {
		research = &models.ResearchRecord{}
	}
	product := input.ProductName()
	captured := segment(rawText)
	patterns := matchPatterns(product)

	defs := models.SectionDefinitions()
	sections := make([]models.Section, 0, len(defs))
	matched := make([]bool, 0, len(defs))

	for _, def := range defs {
		content, ok := findMatchingContent(def.Title, captured, patterns)
		if !ok {
			content = fallbackContent(def.Title, research, product)
		}
		sections = append(sections, models.Section{
			ID:      def.ID,
			Icon:    def.Icon,
			Title:   strings.ReplaceAll(def.Title, models.PlaceholderToken, product),
			Content: formatContent(content),
			Type:    models.SectionTypeText,
		})
		matched = append(matched, ok)
	}
	return sections, matched
}

// formatContent converts the light markdown of a section body to the HTML
// fragment served to clients.
func formatContent(content string) string {
	if strings.TrimSpace(content) == "" {
		return emptyContent
	}

	var out []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(convertBold(line))
		if line == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, "- "), strings.HasPrefix(line, "* "):
			line = "• " + line[2:]
		case strings.HasPrefix(line, "1."), strings.HasPrefix(line, "2."), strings.HasPrefix(line, "3."):
			line = "<strong>" + line + "</strong>"
		}
		out = append(out, line)
	}
	if len(out) == 0 {
		return emptyContent
	}

	html := strings.Join(out, "<br>")
	html = strings.ReplaceAll(html, "<strong><strong>", "<strong>")
	html = strings.ReplaceAll(html, "</strong></strong>", "</strong>")
	return html
}

// convertBold pairs ** markers within one line into <strong> runs. An
// unpaired final marker is dropped.
func convertBold(s string) string {
	parts := strings.Split(s, "**")
	if len(parts)%2 == 0 {
		last := len(parts) - 1
		parts[last-1] += parts[last]
		parts = parts[:last]
	}

	var b strings.Builder
	for i, p := range parts {
		if i > 0 {
			if i%2 == 1 {
				b.WriteString("<strong>")
			} else {
				b.WriteString("</strong>")
			}
		}
		b.WriteString(p)
	}
	return b.String()
}
