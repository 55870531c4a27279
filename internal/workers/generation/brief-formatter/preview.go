// internal/workers/generation/brief-formatter/preview.go
package briefformatter

import (
	"fmt"
	"strings"

	"creative-brief/internal/models"
)

// Preview returns the fixed sample brief served by the preview endpoint.
func Preview(product string) []models.Section {
	if strings.TrimSpace(product) == "" {
		product = models.DefaultProductName
	}
	samples := previewSamples(product)

	defs := models.SectionDefinitions()
	sections := make([]models.Section, 0, len(defs))
	for _, def := range defs {
		sections = append(sections, models.Section{
			ID:      def.ID,
			Icon:    def.Icon,
			Title:   strings.ReplaceAll(def.Title, models.PlaceholderToken, product),
			Content: formatContent(samples[def.ID]),
			Type:    models.SectionTypeText,
		})
	}
	return sections
}

func previewSamples(product string) map[int]string {
	return map[int]string{
		1: lines(
			fmt.Sprintf("**Primary Goal:** Establish %s as the leading provider of Applied AI solutions for enterprises", product),
			"**Target Market:** Large enterprises ($1B-$5B revenue) in financial, healthcare, and manufacturing sectors",
			"**Success Metrics:** 15% market share increase, $50M ARR growth, 500+ enterprise customers within 12 months",
		),
		2: lines(
			fmt.Sprintf("**1. Platform Brand Awareness:** Increase %s brand recognition among enterprise CIOs by 40%%", product),
			"**2. Lead Generation:** Generate 500+ qualified enterprise leads quarterly",
			fmt.Sprintf("**3. Thought Leadership:** Position %s as the go-to expert in enterprise AI implementation and governance", product),
		),
		3: lines(
			fmt.Sprintf("%s operates in the rapidly growing enterprise AI market, serving large corporations ($1B-$5B revenue) seeking to scale AI beyond experimentation. The market demands unified platforms that can democratize AI across organizations while maintaining enterprise-grade security and governance.", product),
			"**Market Size:** $50B by 2025",
			"**Growth Rate:** 67% YoY",
		),
		4: lines(
			"**Primary Audience:** CIOs and CIO-1 of large enterprises",
			"**Demographics:** 35-55 years, Graduate degree, $150K-$300K income",
			"**Company Profile:** $1B-$5B revenue companies in financial services, healthcare, and manufacturing",
			"**Pain Points:** AI scaling challenges, Data silos, Legacy integration, Governance concerns",
		),
		5: "Enterprise organizations struggle to scale AI initiatives beyond proof-of-concept stage due to fragmented systems, data silos, lack of governance frameworks, and insufficient technical expertise to implement enterprise-grade AI solutions that deliver measurable business value.",
		6: lines(
			"• **Technical Complexity:** Integrating AI with existing enterprise systems",
			"• **Data Fragmentation:** Siloed data across departments and systems",
			"• **Governance & Compliance:** Ensuring AI solutions meet regulatory requirements",
			"• **Skills Gap:** Lack of internal AI expertise and resources",
			"• **ROI Uncertainty:** Difficulty demonstrating clear business value",
		),
		7: lines(
			fmt.Sprintf("**%s AI Platform Features:**", product),
			"• **PolyAI Technology:** Multi-model flexibility and vendor-agnostic approach",
			"• **Enterprise Integration:** Seamless connection with existing systems",
			"• **Built-in Governance:** Comprehensive AI ethics and compliance frameworks",
			"• **Cloud-Agnostic Deployment:** Works across AWS, Azure, GCP",
			"• **AI Democratization:** No-code/low-code tools for business users",
		),
		8: lines(
			"• **Proven Enterprise Focus:** Purpose-built for large organization requirements",
			"• **Rapid ROI:** 6-month average time to value vs. 18+ months for custom solutions",
			"• **Scalable Architecture:** Handles enterprise-scale data and user volumes",
			"• **Security First:** Built-in enterprise-grade security and compliance",
			"• **Innovation Speed:** Continuous platform updates and latest AI model integration",
		),
		9: "Modern enterprises require AI solutions that can scale across the organization, integrate with existing infrastructure, comply with regulatory requirements, and deliver measurable business outcomes while democratizing AI access across different skill levels and departments.",
		10: lines(
			"**Market Growth:** +67% YoY",
			"**Rising Demand:** Enterprise AI platforms +156%, MLOps solutions +134%, AI governance +89%",
			"**Key Trends:** Generative AI for enterprise, AI governance, Federated learning, Responsible AI",
			"**Investment Focus:** Enterprise AI platforms expected to reach $50B market size by 2025",
		),
		11: lines(
			"**Phase 1:** Brand positioning and messaging framework (4 weeks)",
			"**Phase 2:** Multi-channel campaign development and asset creation (6 weeks)",
			"**Phase 3:** Campaign launch and optimization (8 weeks)",
			"**Phase 4:** Performance analysis and scaling (4 weeks)",
			"**Deliverables:** Brand guidelines, campaign assets, content library, performance dashboard",
		),
		12: lines(
			"**L1 (Executive):** Transform your enterprise with unified AI that scales",
			"**L2 (Technical Leaders):** Enterprise-grade AI platform with built-in governance and security",
			"**L3 (IT Teams):** Seamlessly integrate AI across your existing infrastructure",
			"**L4 (Business Users):** Democratize AI with no-code tools that deliver real business value",
		),
		13: lines(
			"**Theme:** AI That Scales, Secures, and Succeeds",
			"**Approach:** Executive-focused thought leadership combined with technical proof points",
			fmt.Sprintf("**Creative Strategy:** Position %s as the bridge between AI innovation and enterprise reality", product),
			"**Key Pillars:** Trust, Scale, Innovation, Results",
			"**Tone:** Professional, confident, results-oriented",
		),
		14: lines(
			"**Banners:** Executive-focused LinkedIn/Google Ads (5 standard sizes)",
			"**Microsite:** Interactive AI ROI calculator and platform demo",
			"**Infographics:** AI implementation roadmap, ROI comparison charts",
			"**Email Designs:** Executive briefing templates, technical deep-dive series",
			"**Interactive Tools:** AI readiness assessment, implementation timeline calculator",
		),
		15: lines(
			"**Executive Testimonials:** C-level customers sharing transformation stories (2-3 min)",
			"**Platform Demos:** Technical walkthroughs and use case demonstrations (5-7 min)",
			"**Thought Leadership:** Industry expert interviews and trend analysis (3-5 min)",
			"**Case Study Videos:** Real customer implementation journeys (4-6 min)",
			"**Social Media Clips:** Quick wins and key insights for LinkedIn (30-60 sec)",
		),
		16: lines(
			"**AI-Powered Personalization:** Dynamic content adaptation based on visitor profile and industry",
			"**Predictive Lead Scoring:** ML-driven qualification and nurturing recommendations",
			"**Intelligent Chatbots:** Industry-specific AI assistants for technical questions",
			"**Dynamic ROI Calculators:** Real-time business impact modeling",
			"**Automated Content Generation:** Personalized case studies and implementation guides",
		),
		17: lines(
			"**Primary Channels:** LinkedIn sponsored content, Industry publications, Google Ads",
			"**Secondary Channels:** YouTube demos, Webinar series, Email sequences",
			"**Content Distribution:** Thought leadership articles, technical whitepapers, interactive demos",
			"**Engagement Strategy:** Account-based marketing for top 100 enterprise prospects",
			"**Measurement:** Pipeline influence, engagement scores, brand lift studies",
		),
	}
}
