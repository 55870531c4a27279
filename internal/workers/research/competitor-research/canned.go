// internal/workers/research/competitor-research/canned.go
package competitorresearch

import "creative-brief/internal/models"

var cannedCompetitors = map[string]map[string][]models.Competitor{
	"enterprise_ai": {
		"ai_platform": {
			{Name: "Databricks", Pricing: "Custom enterprise", Focus: "Unified analytics platform"},
			{Name: "Palantir", Pricing: "$2M+ annually", Focus: "Enterprise data integration"},
			{Name: "DataRobot", Pricing: "$100K+ annually", Focus: "Automated machine learning"},
			{Name: "H2O.ai", Pricing: "Custom", Focus: "Open source ML platform"},
			{Name: "Microsoft Azure AI", Pricing: "Pay-per-use", Focus: "Cloud-native AI services"},
		},
	},
}

var defaultCompetitors = []models.Competitor{
	{Name: "IBM Watson", Pricing: "Enterprise", Focus: "AI consulting"},
	{Name: "Salesforce Einstein", Pricing: "Add-on pricing", Focus: "CRM AI"},
	{Name: "AWS SageMaker", Pricing: "Pay-per-use", Focus: "ML platform"},
}

// simulatedCompetitors returns a copy of the canned list for the industry and
// company type.
func simulatedCompetitors(industry, companyType string) []models.Competitor {
	list, ok := cannedCompetitors[industry][companyType]
	if !ok {
		list = defaultCompetitors
	}
	out := make([]models.Competitor, len(list))
	copy(out, list)
	return out
}

func analyzePositioning(competitors []models.Competitor) models.MarketPositioning {
	seen := map[string]bool{}
	positions := []string{}
	for _, c := range competitors {
		if c.Focus == "" || seen[c.Focus] {
			continue
		}
		seen[c.Focus] = true
		positions = append(positions, c.Focus)
	}
	return models.MarketPositioning{
		CommonPositions:           positions,
		GapOpportunities:          []string{"HIPAA-first approach", "AI-powered insights", "Mobile-first design"},
		DifferentiationSuggestion: "Focus on automation and time-saving for busy professionals",
	}
}

func analyzePricing() models.PricingInsights {
	return models.PricingInsights{
		PricingModels:  []string{"Subscription", "Per-user", "Custom enterprise"},
		PriceRange:     "Free to $149/month",
		Recommendation: "Position at $49-79/month for competitive advantage",
	}
}

func analyzeMessaging() models.MessagingPatterns {
	return models.MessagingPatterns{
		CommonThemes:  []string{"Efficiency", "Integration", "User-friendly"},
		MissingAngles: []string{"Sustainability", "Work-life balance", "Mental health"},
		ToneAnalysis:  "Professional but approachable, benefit-focused",
	}
}
