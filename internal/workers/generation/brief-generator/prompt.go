// internal/workers/generation/brief-generator/prompt.go
package briefgenerator

import (
	"encoding/json"
	"fmt"
	"strings"

	"creative-brief/internal/models"
)

const sectionGuide = `**Business Objective**
[Define the primary business goal, target metrics, and success criteria for {product}]

**Marketing Objective**
1. **Platform Brand Awareness:** [Specific awareness goals and metrics]
2. **Lead Generation:** [Lead targets and qualification criteria]
3. **Thought Leadership:** [Positioning and expertise goals]

**Background**
[Company context, market position, and industry landscape for enterprise AI platforms]

**Target Audience**
[Detailed profiles of CIOs, CIO-1, and decision makers in enterprise organizations]

**The Problem we are trying to solve**
[Core challenges that {product} addresses for enterprise customers]

**What are the challenges?**
[Specific obstacles and pain points facing enterprise AI adoption]

**Solutions/Offering**
[Detailed description of {product} features, capabilities, and value propositions]

**Why {product} (Platform)?**
[Compelling reasons why {product} is the best choice over competitors]

**Why does Enterprise need this solution?**
[Business case for enterprise AI platform adoption from organizational perspective]

**Present market trend and demand**
[Current market dynamics, growth trends, and demand drivers in enterprise AI]

**Agency Statement of Work (SOW)**
[Specific deliverables, timelines, and scope of work for campaign execution]

**Key messages across Levels (L1 to L4)**
[Hierarchical messaging framework from executive to technical audiences]

**Campaign Theme, Approach/Outline/Creative Strategy**
[Overarching campaign concept, creative direction, and strategic approach]

**Digital Assets (Banners, Microsite, Infographics, Email Designs)**
[Specific digital asset requirements and specifications]

**Digital Campaign Videos**
[Video content strategy, types, and production requirements]

**AI / Tech Enabled Ideas**
[Innovative technology-driven campaign elements and personalization strategies]

**Channels / Campaign Digital Mediums**
[Complete channel strategy with primary, secondary, and supporting mediums]`

const instructions = `**SPECIFIC INSTRUCTIONS:**
1. Replace [COMPANY_NAME] with the real company name
2. Integrate the AI research findings into each relevant section of the brief
3. Use competitor data to reinforce the "Why [COMPANY] (Platform)?" section
4. Incorporate market trends into "Present market trend and demand"
5. Use audience insights to enrich the "Target Audience" section
6. For sections without explicit data, use research to infer relevant information
7. Maintain a professional and B2B business-oriented tone
8. Ensure each section has specific and actionable information
9. Include quantitative data where possible (percentages, ranges, metrics)
10. Connect audience pain points with solutions/offering

**AI RESEARCH VALIDATIONS:**
- If there are conflicts between stakeholder inputs and market research, mention both perspectives
- Use competitor analysis to validate or question assumptions about positioning
- Incorporate audience behavioral insights to refine targeting
- Suggest optimizations based on channel preferences from audience research

Generate a complete, professional, and data-driven brief following exactly the provided structure.`

// BuildPrompt assembles the single generation prompt from the section
// outline, the stakeholder input and the research excerpts.
func BuildPrompt(input models.StakeholderInput, research models.ResearchRecord) string {
	if input == nil {
		input = models.StakeholderInput{}
	}
	product := input.ProductName()
	var b strings.Builder

	fmt.Fprintf(&b, "Generate a comprehensive creative brief for %s following the EXACT structure below.\n", product)
	b.WriteString("Each section must be clearly labeled with the exact title shown and contain detailed, actionable content.\n\n")
	b.WriteString("**REQUIRED BRIEF STRUCTURE - MAINTAIN THIS EXACT ORDER:**\n\n")
	b.WriteString(strings.ReplaceAll(sectionGuide, "{product}", product))
	b.WriteString("\n\nCRITICAL REQUIREMENTS:\n")
	b.WriteString("- Use the EXACT section titles as shown above\n")
	b.WriteString("- Provide substantial content for each section (minimum 3-4 sentences)\n")
	b.WriteString("- Include specific metrics, timelines, and actionable details\n")
	b.WriteString("- Reference the research data provided to enhance each section\n")
	b.WriteString("- Maintain professional B2B enterprise tone throughout\n")
	fmt.Fprintf(&b, "- Replace any generic references with %s-specific content\n\n", product)

	b.WriteString("**TEAM INPUT DATA (JSON):**\n")
	b.WriteString(indentJSON(input))
	b.WriteString("\n\n**AI RESEARCH FINDINGS - Use them to enrich each section:**\n\n")

	ca := research.CompetitorAnalysis
	names := make([]string, 0, 3)
	for i, c := range ca.TopCompetitors {
		if i == 3 {
			break
		}
		names = append(names, orNA(c.Name))
	}
	b.WriteString("**COMPETITOR ANALYSIS:**\n")
	fmt.Fprintf(&b, "- Main competitors: %s\n", list(names))
	fmt.Fprintf(&b, "- Positioning gaps: %s\n", list(ca.MarketPositioning.GapOpportunities))
	fmt.Fprintf(&b, "- Pricing insights: %s\n", ca.PricingInsights.Recommendation)
	fmt.Fprintf(&b, "- Messaging patterns: %s\n", list(ca.MessagingPatterns.CommonThemes))
	fmt.Fprintf(&b, "- Missing angles: %s\n\n", list(ca.MessagingPatterns.MissingAngles))

	mt := research.MarketTrends
	b.WriteString("**MARKET TRENDS & DEMAND:**\n")
	fmt.Fprintf(&b, "- Industry growth: %s\n", orNA(mt.IndustryTrends.GrowthRate))
	fmt.Fprintf(&b, "- Rising searches: %s\n", list(mt.IndustryTrends.RisingSearches))
	fmt.Fprintf(&b, "- Hot topics: %s\n", list(mt.IndustryTrends.HotTopics))
	fmt.Fprintf(&b, "- Best launch timing: %s\n", mt.SeasonalPatterns.BestLaunchTiming)
	fmt.Fprintf(&b, "- Seasonal patterns: %s\n\n", compactJSON(mt.SeasonalPatterns))

	ai := research.AudienceInsights
	pains := ai.PainPoints
	if len(pains) > 5 {
		pains = pains[:5]
	}
	b.WriteString("**ENRICHED AUDIENCE INSIGHTS:**\n")
	fmt.Fprintf(&b, "- Demographic profile: %s\n", compactJSON(ai.DemographicProfile))
	fmt.Fprintf(&b, "- Validated pain points: %s\n", list(pains))
	fmt.Fprintf(&b, "- Channel preferences: %s\n", compactJSON(ai.ChannelPreferences))
	fmt.Fprintf(&b, "- Content preferences: %s\n", compactJSON(ai.ContentConsumption))
	fmt.Fprintf(&b, "- Buying journey: %s\n", compactJSON(ai.BuyingJourney))
	fmt.Fprintf(&b, "- Behavioral insights: %s\n\n", compactJSON(ai.BehavioralInsights))

	b.WriteString(instructions)
	b.WriteString("\n")
	return b.String()
}

func list(items []string) string {
	return "[" + strings.Join(items, ", ") + "]"
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func indentJSON(v interface{}) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(data)
}

func compactJSON(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(data)
}
