// internal/workers/research/audience-research/insights.go
package audienceresearch

import (
	"strings"

	"creative-brief/internal/models"
)

// analyzeDemographics returns the first profile with any key word contained
// in the lower-cased audience.
func analyzeDemographics(audience string, profiles []SegmentProfile) models.DemographicProfile {
	a := strings.ToLower(audience)
	for _, p := range profiles {
		for _, word := range strings.Split(p.Key, "_") {
			if word == "" || !strings.Contains(a, word) {
				continue
			}
			return models.DemographicProfile{
				PrimarySegment:   segmentTitle(p.Key),
				AgeRange:         p.AgeRange,
				IncomeRange:      p.Income,
				EducationLevel:   p.Education,
				TechAdoptionRate: p.TechAdoption,
				WorkLifestyle:    p.WorkSchedule,
			}
		}
	}

	return models.DemographicProfile{
		PrimarySegment:   "General Professional",
		AgeRange:         "25-50",
		IncomeRange:      "$50K-$100K",
		EducationLevel:   "College educated",
		TechAdoptionRate: "Moderate to high",
	}
}

// segmentTitle turns healthcare_professionals into Healthcare Professionals.
func segmentTitle(key string) string {
	words := strings.Fields(strings.ReplaceAll(key, "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}

func behavioralInsights() models.BehavioralInsights {
	return models.BehavioralInsights{
		DecisionMaking:         "Research-driven, seeks peer validation",
		PurchaseTriggers:       []string{"Time savings", "ROI demonstration", "Peer recommendations"},
		Objections:             []string{"Cost concerns", "Implementation time", "Learning curve"},
		PreferredCommunication: "Email and professional networks",
		TrustFactors:           []string{"Industry certifications", "Case studies", "Free trials"},
	}
}

func channelPreferences(audience string) models.ChannelPreferences {
	a := strings.ToLower(audience)
	switch {
	case strings.Contains(a, "healthcare"):
		return models.ChannelPreferences{
			PrimaryChannels:   []string{"LinkedIn", "Medical journals", "Industry conferences"},
			SecondaryChannels: []string{"Email newsletters", "Webinars", "Peer networks"},
			AvoidChannels:     []string{"TikTok", "Snapchat", "General social media"},
			EngagementTimes:   "Weekdays 7-9 AM, 6-8 PM",
		}
	case strings.Contains(a, "professional"):
		return models.ChannelPreferences{
			PrimaryChannels:   []string{"LinkedIn", "Industry publications", "Professional networks"},
			SecondaryChannels: []string{"Email", "Instagram", "Podcasts"},
			AvoidChannels:     []string{"Facebook", "TikTok"},
			EngagementTimes:   "Weekdays 8-10 AM, 5-7 PM",
		}
	default:
		return models.ChannelPreferences{
			PrimaryChannels:   []string{"Google Search", "Social media", "Email"},
			SecondaryChannels: []string{"YouTube", "Blogs", "Reviews"},
			EngagementTimes:   "Evenings and weekends",
		}
	}
}

func contentConsumption() models.ContentConsumption {
	return models.ContentConsumption{
		PreferredFormats: []string{"Case studies", "How-to guides", "Video demos"},
		ContentLength:    "3-5 minute videos, 800-1200 word articles",
		TonePreference:   "Professional but approachable",
		InformationDepth: "Detailed with actionable insights",
		SocialProof:      "Peer testimonials and industry endorsements",
	}
}

func painPoints(audience, industry string) []string {
	points := []string{"Time constraints", "Budget limitations", "Technology complexity"}

	if strings.Contains(strings.ToLower(audience+industry), "healthcare") {
		points = append(points,
			"HIPAA compliance requirements",
			"Patient data security concerns",
			"Integration with existing EMR systems",
			"Workflow disruption during implementation",
		)
	}
	if strings.Contains(strings.ToLower(audience), "professional") {
		points = append(points,
			"Work-life balance challenges",
			"Information overload",
			"Need for efficiency improvements",
		)
	}
	return points
}

func buyingJourney() models.BuyingJourney {
	return models.BuyingJourney{
		Awareness: models.JourneyStage{
			Duration:     "2-4 weeks",
			ContentNeeds: []string{"Problem identification", "Industry trends", "Best practices"},
			Channels:     []string{"Google search", "Industry publications", "Peer networks"},
		},
		Consideration: models.JourneyStage{
			Duration:     "4-8 weeks",
			ContentNeeds: []string{"Solution comparison", "ROI calculators", "Case studies"},
			Channels:     []string{"Vendor websites", "Reviews", "Demos"},
		},
		Decision: models.JourneyStage{
			Duration:     "2-6 weeks",
			ContentNeeds: []string{"Pricing", "Implementation support", "References"},
			Channels:     []string{"Sales calls", "Free trials", "Peer recommendations"},
		},
	}
}
