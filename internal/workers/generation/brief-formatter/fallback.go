// internal/workers/generation/brief-formatter/fallback.go
package briefformatter

import (
	"fmt"
	"strings"

	"creative-brief/internal/models"
)

// fallbackContent builds the template body for a section the model output did
// not cover. Checks run in order on the lower-cased canonical title.
func fallbackContent(title string, research *models.ResearchRecord, product string) string {
	t := strings.ToLower(title)
	audience := research.AudienceInsights
	trends := research.MarketTrends.IndustryTrends

	switch {
	case strings.Contains(t, "business objective"):
		return fmt.Sprintf("Establish %s as the leading provider of Applied AI solutions for enterprises, targeting 15%% market share increase and $50M ARR growth within 12 months.", product)

	case strings.Contains(t, "marketing objective"):
		return lines(
			fmt.Sprintf("1. **Platform Brand Awareness:** Increase %s brand recognition among enterprise CIOs by 40%%", product),
			"2. **Lead Generation:** Generate 500+ qualified enterprise leads quarterly",
			fmt.Sprintf("3. **Thought Leadership:** Position %s as the go-to expert in enterprise AI implementation", product),
		)

	case strings.Contains(t, "background"):
		return fmt.Sprintf("%s operates in the rapidly growing enterprise AI market, serving large corporations ($1B-$5B revenue) seeking to scale AI beyond experimentation. The market demands unified platforms that can democratize AI across organizations while maintaining enterprise-grade security and governance.", product)

	case strings.Contains(t, "target audience"):
		demo := audience.DemographicProfile
		return lines(
			"**Primary Audience:** CIOs and CIO-1 of large enterprises",
			fmt.Sprintf("**Demographics:** %s, %s, %s",
				orDefault(demo.AgeRange, "35-55 years"),
				orDefault(demo.EducationLevel, "Graduate degree"),
				orDefault(demo.IncomeRange, "$150K-$300K")),
			"**Company Profile:** $1B-$5B revenue companies in financial services, healthcare, and manufacturing",
			"**Pain Points:** "+joinFirst(audience.PainPoints, 3, "AI scaling challenges, Data silos, Legacy integration"),
		)

	case strings.Contains(t, "problem we are trying to solve"):
		return "Enterprise organizations struggle to scale AI initiatives beyond proof-of-concept stage due to fragmented systems, data silos, lack of governance frameworks, and insufficient technical expertise to implement enterprise-grade AI solutions."

	case strings.Contains(t, "challenges"):
		return lines(
			"• **Technical Complexity:** Integrating AI with existing enterprise systems",
			"• **Data Fragmentation:** Siloed data across departments and systems",
			"• **Governance & Compliance:** Ensuring AI solutions meet regulatory requirements",
			"• **Skills Gap:** Lack of internal AI expertise and resources",
			"• **ROI Uncertainty:** Difficulty demonstrating clear business value from AI investments",
		)

	case strings.Contains(t, "solutions/offering"):
		return lines(
			fmt.Sprintf("**%s AI Platform Features:**", product),
			"• **PolyAI Technology:** Multi-model flexibility and vendor-agnostic approach",
			"• **Enterprise Integration:** Seamless connection with existing systems and workflows",
			"• **Built-in Governance:** Comprehensive AI ethics, compliance, and monitoring frameworks",
			"• **Cloud-Agnostic Deployment:** Works across AWS, Azure, GCP, and hybrid environments",
			"• **AI Democratization:** No-code/low-code tools for business users",
		)

	case strings.Contains(t, "why") && strings.Contains(t, "platform"):
		return lines(
			"• **Proven Enterprise Focus:** Purpose-built for large organization requirements",
			"• **Rapid ROI:** 6-month average time to value vs. 18+ months for custom solutions",
			"• **Scalable Architecture:** Handles enterprise-scale data and user volumes",
			"• **Security First:** Built-in enterprise-grade security and compliance features",
			"• **Innovation Speed:** Continuous platform updates and latest AI model integration",
			"• **Expert Support:** Dedicated enterprise success and technical support teams",
		)

	case strings.Contains(t, "enterprise need"):
		return "Modern enterprises require AI solutions that can scale across the organization, integrate with existing infrastructure, comply with regulatory requirements, and deliver measurable business outcomes while democratizing AI access across different skill levels and departments."

	case strings.Contains(t, "market trend"):
		return lines(
			"**Market Growth:** "+orDefault(trends.GrowthRate, "+67% YoY"),
			"**Rising Demand:** "+joinFirst(trends.RisingSearches, 3, "Enterprise AI platforms +156%, MLOps solutions +134%"),
			"**Key Trends:** "+joinFirst(trends.HotTopics, 4, "Generative AI for enterprise, AI governance, Federated learning"),
			"**Investment Focus:** Enterprise AI platforms expected to reach $50B market size by 2025",
		)

	case strings.Contains(t, "statement of work"):
		return lines(
			"**Phase 1:** Brand positioning and messaging framework (4 weeks)",
			"**Phase 2:** Multi-channel campaign development and asset creation (6 weeks)",
			"**Phase 3:** Campaign launch and optimization (8 weeks)",
			"**Phase 4:** Performance analysis and scaling (4 weeks)",
			"**Deliverables:** Brand guidelines, campaign assets, content library, performance dashboard",
		)

	case strings.Contains(t, "key messages"):
		return lines(
			`**L1 (Executive):** "Transform your enterprise with unified AI that scales"`,
			`**L2 (Technical Leaders):** "Enterprise-grade AI platform with built-in governance and security"`,
			`**L3 (IT Teams):** "Seamlessly integrate AI across your existing infrastructure"`,
			`**L4 (Business Users):** "Democratize AI with no-code tools that deliver real business value"`,
		)

	case strings.Contains(t, "campaign theme"):
		return lines(
			`**Theme:** "AI That Scales, Secures, and Succeeds"`,
			"**Approach:** Executive-focused thought leadership combined with technical proof points",
			fmt.Sprintf("**Creative Strategy:** Position %s as the bridge between AI innovation and enterprise reality", product),
			"**Key Pillars:** Trust, Scale, Innovation, Results",
			"**Tone:** Professional, confident, results-oriented with human-centered AI messaging",
		)

	case strings.Contains(t, "digital assets"):
		return lines(
			"**Banners:** Executive-focused LinkedIn/Google Ads (5 sizes)",
			"**Microsite:** Interactive AI ROI calculator and platform demo",
			"**Infographics:** AI implementation roadmap, ROI comparison charts",
			"**Email Designs:** Executive briefing templates, technical deep-dive series",
			"**Interactive Tools:** AI readiness assessment, implementation timeline calculator",
		)

	case strings.Contains(t, "video"):
		return lines(
			"**Executive Testimonials:** C-level customers sharing transformation stories (2-3 min)",
			"**Platform Demos:** Technical walkthroughs and use case demonstrations (5-7 min)",
			"**Thought Leadership:** Industry expert interviews and trend analysis (3-5 min)",
			"**Case Study Videos:** Real customer implementation journeys (4-6 min)",
			"**Social Media Clips:** Quick wins and key insights for LinkedIn (30-60 sec)",
		)

	case strings.Contains(t, "ai / tech enabled"):
		return lines(
			"**AI-Powered Personalization:** Dynamic content adaptation based on visitor profile and industry",
			"**Predictive Lead Scoring:** ML-driven qualification and nurturing recommendations",
			"**Intelligent Chatbots:** Industry-specific AI assistants for technical questions",
			"**Dynamic ROI Calculators:** Real-time business impact modeling",
			"**Automated Content Generation:** Personalized case studies and implementation guides",
		)

	case strings.Contains(t, "channels") || strings.Contains(t, "mediums"):
		channels := audience.ChannelPreferences
		return lines(
			"**Primary Channels:** "+joinFirst(channels.PrimaryChannels, 0, "LinkedIn, Industry Publications, Google Ads"),
			"**Secondary Channels:** "+joinFirst(channels.SecondaryChannels, 0, "YouTube, Webinars, Email"),
			"**Content Distribution:** Thought leadership articles, technical whitepapers, interactive demos",
			"**Engagement Strategy:** Account-based marketing for top 100 enterprise prospects",
			"**Measurement:** Pipeline influence, engagement scores, brand lift studies",
		)
	}

	return fmt.Sprintf("Content for %s will be developed based on stakeholder requirements and market research insights.", title)
}

func lines(l ...string) string {
	return strings.Join(l, "\n")
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

// joinFirst joins up to n items (all when n is 0), or returns def for an
// empty list.
func joinFirst(items []string, n int, def string) string {
	if len(items) == 0 {
		return def
	}
	if n > 0 && len(items) > n {
		items = items[:n]
	}
	return strings.Join(items, ", ")
}
