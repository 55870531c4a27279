// internal/models/research.go
package models

// ResearchRecord is the consolidated output of the three research providers.
type ResearchRecord struct {
	CompetitorAnalysis CompetitorAnalysis `json:"competitor_analysis"`
	MarketTrends       MarketTrends       `json:"market_trends"`
	AudienceInsights   AudienceInsights   `json:"audience_insights"`
}

type Competitor struct {
	Name        string `json:"name"`
	Pricing     string `json:"pricing,omitempty"`
	Focus       string `json:"focus,omitempty"`
	Description string `json:"description,omitempty"`
	Website     string `json:"website,omitempty"`
	Source      string `json:"source,omitempty"`
}

type MarketPositioning struct {
	CommonPositions           []string `json:"common_positions"`
	GapOpportunities          []string `json:"gap_opportunities"`
	DifferentiationSuggestion string   `json:"differentiation_suggestion"`
}

type PricingInsights struct {
	PricingModels  []string `json:"pricing_models"`
	PriceRange     string   `json:"price_range"`
	Recommendation string   `json:"recommendation"`
}

type MessagingPatterns struct {
	CommonThemes  []string `json:"common_themes"`
	MissingAngles []string `json:"missing_angles"`
	ToneAnalysis  string   `json:"tone_analysis"`
}

type CompetitorAnalysis struct {
	TopCompetitors    []Competitor      `json:"top_competitors"`
	MarketPositioning MarketPositioning `json:"market_positioning"`
	PricingInsights   PricingInsights   `json:"pricing_insights"`
	MessagingPatterns MessagingPatterns `json:"messaging_patterns"`
	Timestamp         string            `json:"timestamp,omitempty"`
}

type IndustryTrends struct {
	RisingSearches    []string `json:"rising_searches"`
	DecliningSearches []string `json:"declining_searches,omitempty"`
	HotTopics         []string `json:"hot_topics"`
	GrowthRate        string   `json:"growth_rate"`
}

type AudienceTrends struct {
	SearchPatterns     []string `json:"search_patterns"`
	ContentPreferences []string `json:"content_preferences"`
	PeakHours          []string `json:"peak_hours"`
	DeviceUsage        string   `json:"device_usage"`
}

type SeasonalPatterns struct {
	Q1               string `json:"q1"`
	Q2               string `json:"q2"`
	Q3               string `json:"q3"`
	Q4               string `json:"q4"`
	BestLaunchTiming string `json:"best_launch_timing"`
}

type MarketTrends struct {
	IndustryTrends   IndustryTrends   `json:"industry_trends"`
	AudienceTrends   AudienceTrends   `json:"audience_trends"`
	SeasonalPatterns SeasonalPatterns `json:"seasonal_patterns"`
	EmergingTopics   []string         `json:"emerging_topics"`
	Timestamp        string           `json:"timestamp,omitempty"`
}

type DemographicProfile struct {
	PrimarySegment   string `json:"primary_segment"`
	AgeRange         string `json:"age_range"`
	IncomeRange      string `json:"income_range"`
	EducationLevel   string `json:"education_level"`
	TechAdoptionRate string `json:"tech_adoption_rate"`
	WorkLifestyle    string `json:"work_lifestyle,omitempty"`
}

type BehavioralInsights struct {
	DecisionMaking         string   `json:"decision_making"`
	PurchaseTriggers       []string `json:"purchase_triggers"`
	Objections             []string `json:"objections"`
	PreferredCommunication string   `json:"preferred_communication"`
	TrustFactors           []string `json:"trust_factors"`
}

type ChannelPreferences struct {
	PrimaryChannels   []string `json:"primary_channels"`
	SecondaryChannels []string `json:"secondary_channels"`
	AvoidChannels     []string `json:"avoid_channels,omitempty"`
	EngagementTimes   string   `json:"engagement_times"`
}

type ContentConsumption struct {
	PreferredFormats []string `json:"preferred_formats"`
	ContentLength    string   `json:"content_length"`
	TonePreference   string   `json:"tone_preference"`
	InformationDepth string   `json:"information_depth"`
	SocialProof      string   `json:"social_proof"`
}

type JourneyStage struct {
	Duration     string   `json:"duration"`
	ContentNeeds []string `json:"content_needs"`
	Channels     []string `json:"channels"`
}

type BuyingJourney struct {
	Awareness     JourneyStage `json:"awareness_stage"`
	Consideration JourneyStage `json:"consideration_stage"`
	Decision      JourneyStage `json:"decision_stage"`
}

type AudienceInsights struct {
	DemographicProfile DemographicProfile `json:"demographic_profile"`
	BehavioralInsights BehavioralInsights `json:"behavioral_insights"`
	ChannelPreferences ChannelPreferences `json:"channel_preferences"`
	ContentConsumption ContentConsumption `json:"content_consumption"`
	PainPoints         []string           `json:"pain_points"`
	BuyingJourney      BuyingJourney      `json:"buying_journey"`
	Timestamp          string             `json:"timestamp,omitempty"`
}
