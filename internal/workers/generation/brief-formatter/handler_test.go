// internal/workers/generation/brief-formatter/handler_test.go
package briefformatter

import (
	"context"
	"strings"
	"testing"

	"creative-brief/internal/common/logger"
	"creative-brief/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestConfig() *Config {
	return &Config{DefaultProduct: "EdgeVerve"}
}

func TestFormat_AlwaysSeventeenCanonicalSections(t *testing.T) {
	input := models.StakeholderInput{models.KeyCompanyName: "Acme"}
	sections := Format("", nil, input)

	require.Len(t, sections, 17)
	defs := models.SectionDefinitions()
	for i, s := range sections {
		assert.Equal(t, i+1, s.ID)
		assert.Equal(t, defs[i].Icon, s.Icon)
		assert.Equal(t, models.SectionTypeText, s.Type)
		assert.NotEmpty(t, strings.TrimSpace(s.Content), "section %d", s.ID)
	}
	assert.Equal(t, "Why Acme (Platform)?", sections[7].Title)
	assert.Equal(t, "Business Objective", sections[0].Title)
}

func TestFormat_DefaultProductName(t *testing.T) {
	sections := Format("", &models.ResearchRecord{}, models.StakeholderInput{})
	assert.Equal(t, "Why EdgeVerve (Platform)?", sections[7].Title)
	assert.Contains(t, sections[0].Content, "Establish EdgeVerve")
}

func TestFormat_Idempotent(t *testing.T) {
	raw := "**Business Objective**\nGrow revenue.\n## Target Audience\n- CFOs\n- Controllers"
	research := &models.ResearchRecord{}
	research.AudienceInsights.PainPoints = []string{"Cash flow"}

	first := Format(raw, research, models.StakeholderInput{})
	second := Format(raw, research, models.StakeholderInput{})
	assert.Equal(t, first, second)
}

func TestFormat_HeaderMatching(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		id      int
		want    string
		notWant string
	}{
		{
			name: "upper-case bold header",
			raw:  "**BUSINESS OBJECTIVE**\nDouble ARR.",
			id:   1,
			want: "Double ARR.",
		},
		{
			name: "exact body for bold header",
			raw:  "**Business Objective**\nGrow revenue by 20%.\n",
			id:   1,
			want: "Grow revenue by 20%.",
		},
		{
			name:    "matched audience beats template",
			raw:     "**Target Audience**\nMid-market CFOs",
			id:      4,
			want:    "Mid-market CFOs",
			notWant: "CIOs and CIO-1",
		},
		{
			name: "markdown heading",
			raw:  "# Statement of Work\nPhase one only.",
			id:   11,
			want: "Phase one only.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sections := Format(tt.raw, nil, models.StakeholderInput{})
			content := sections[tt.id-1].Content
			assert.Contains(t, content, tt.want)
			if tt.notWant != "" {
				assert.NotContains(t, content, tt.notWant)
			}
		})
	}
}

func TestFormat_ExactBodyForBoldHeader(t *testing.T) {
	sections := Format("**Business Objective**\nGrow revenue by 20%.\n", nil, models.StakeholderInput{})
	assert.Equal(t, "Grow revenue by 20%.", sections[0].Content)
}

func TestFormat_UnpairedBoldMarker(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"single line", "**Business Objective**\nGrow **revenue by 20%.", "Grow revenue by 20%."},
		{"one stray marker per line", "**Business Objective**\nGrow **revenue by 20%.\nCut churn **in half.", "Grow revenue by 20%.<br>Cut churn in half."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				sections := Format(tt.raw, nil, models.StakeholderInput{})
				assert.Equal(t, tt.want, sections[0].Content)
			})
		})
	}
}

func TestFormat_FallbackUsesResearch(t *testing.T) {
	research := &models.ResearchRecord{}
	research.AudienceInsights.DemographicProfile.AgeRange = "30-40"
	research.MarketTrends.IndustryTrends.GrowthRate = "+12% YoY"
	research.AudienceInsights.ChannelPreferences.PrimaryChannels = []string{"Podcasts", "Events"}

	sections := Format("", research, models.StakeholderInput{})

	assert.Contains(t, sections[3].Content, "30-40")
	assert.Contains(t, sections[3].Content, "Graduate degree")
	assert.Contains(t, sections[3].Content, "CIOs and CIO-1")
	assert.Contains(t, sections[9].Content, "+12% YoY")
	assert.Contains(t, sections[16].Content, "Podcasts, Events")
	assert.Contains(t, sections[16].Content, "YouTube, Webinars, Email")
}

func TestFormat_BodyBeforeFirstHeaderDropped(t *testing.T) {
	raw := "Here is your brief.\n**Background**\nLegacy estate."
	sections := Format(raw, nil, models.StakeholderInput{})
	assert.Equal(t, "Legacy estate.", sections[2].Content)
	for _, s := range sections {
		assert.NotContains(t, s.Content, "Here is your brief")
	}
}

func TestFormat_RepeatedHeaderOverwritesBody(t *testing.T) {
	raw := "**Background**\nfirst\n**Background**\nsecond"
	sections := Format(raw, nil, models.StakeholderInput{})
	assert.Equal(t, "second", sections[2].Content)
}

func TestFormatContent(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "  ", emptyContent},
		{"only markers", "**", emptyContent},
		{"paired bold", "**Key:** value", "<strong>Key:</strong> value"},
		{"dash bullets", "- one\n* two\n• three", "• one<br>• two<br>• three"},
		{"numbered lines", "1. First\n2. Second\n4. Fourth", "<strong>1. First</strong><br><strong>2. Second</strong><br>4. Fourth"},
		{"blank lines skipped", "a\n\n\nb", "a<br>b"},
		{"stray marker dropped", "a **b** c **d", "a <strong>b</strong> c d"},
		{"bold never spans lines", "x **a\ny **b", "x a<br>y b"},
		{"bold per line", "**A:** one\n**B:** two", "<strong>A:</strong> one<br><strong>B:</strong> two"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatContent(tt.in))
		})
	}
}

func TestIsHeaderLine(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"**Anything at all**", true},
		{"## Overview", true},
		{"KEY FACTS", true},
		{"THIS LINE HAS FAR TOO MANY WORDS TO COUNT", false},
		{"Our campaign goes live in May", true},
		{"Grow revenue by 20%.", false},
		{"12345", false},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, isHeaderLine(tt.line))
		})
	}
}

func TestTitlesMatch_PreservedQuirks(t *testing.T) {
	patterns := matchPatterns("EdgeVerve")

	// A business objective header also satisfies the marketing objective pattern.
	assert.True(t, titlesMatch("marketing objective", "business objective", patterns))
	// The platform pattern accepts the product name alone.
	assert.True(t, titlesMatch("why xyz (platform)?", "edgeverve advantage", patterns))
	assert.False(t, titlesMatch("background", "target audience", patterns))
}

func TestPreview(t *testing.T) {
	sections := Preview("")
	require.Len(t, sections, 17)
	assert.Equal(t, "Why EdgeVerve (Platform)?", sections[7].Title)
	assert.Equal(t, "<strong>1. Platform Brand Awareness:</strong> Increase EdgeVerve brand recognition among enterprise CIOs by 40%<br><strong>2. Lead Generation:</strong> Generate 500+ qualified enterprise leads quarterly<br><strong>3. Thought Leadership:</strong> Position EdgeVerve as the go-to expert in enterprise AI implementation and governance", sections[1].Content)
	assert.True(t, strings.HasPrefix(sections[5].Content, "• <strong>Technical Complexity:</strong>"))

	acme := Preview("Acme")
	assert.Equal(t, "Why Acme (Platform)?", acme[7].Title)
	assert.Contains(t, acme[0].Content, "Establish Acme")
}

func TestHandler_Execute(t *testing.T) {
	h := NewHandler(createTestConfig(), logger.NewTestLogger(t))

	out, err := h.Execute(context.Background(), &Input{
		RawText:     "**Business Objective**\nGrow revenue.",
		Stakeholder: models.StakeholderInput{},
	})
	require.NoError(t, err)
	require.Len(t, out.Sections, 17)
	assert.Contains(t, out.Matched, 1)
	assert.Contains(t, out.Matched, 2)
	assert.NotContains(t, out.Fallback, 1)
	assert.Len(t, out.Fallback, 17-len(out.Matched))
}

func TestHandler_DefaultProductFromConfig(t *testing.T) {
	h := NewHandler(&Config{DefaultProduct: "Nimbus"}, logger.NewNoOpLogger())

	out, err := h.Execute(context.Background(), &Input{})
	require.NoError(t, err)
	assert.Equal(t, "Why Nimbus (Platform)?", out.Sections[7].Title)
}

func TestFormat_AssetFallbacksArePlainLines(t *testing.T) {
	sections := Format("", nil, models.StakeholderInput{})

	for _, id := range []int{14, 15, 16} {
		content := sections[id-1].Content
		assert.True(t, strings.HasPrefix(content, "<strong>"), content)
		assert.NotContains(t, content, "•")
	}
	assert.Contains(t, sections[13].Content, "<strong>Banners:</strong> Executive-focused")
}
