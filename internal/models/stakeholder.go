// internal/models/stakeholder.go
package models

import (
	"fmt"
	"sort"
	"strings"
)

// Stakeholder input keys read by the pipeline. Every other key is passed
// through to the prompt untouched.
const (
	KeyCompanyName    = "company_name"
	KeyIndustry       = "industry"
	KeyCompanyType    = "company_type"
	KeyTargetAudience = "target_audience"
)

// Defaults applied when a key is missing or blank.
const (
	DefaultIndustry    = "technology"
	DefaultCompanyType = "software"
	DefaultAudience    = "professionals"
	DefaultProductName = "EdgeVerve"
)

// StakeholderInput is the free-form campaign description supplied by the
// marketing team.
type StakeholderInput map[string]interface{}

// String returns the value at key as a string, or def when it is absent,
// nil, or blank.
func (s StakeholderInput) String(key, def string) string {
	v, ok := s[key]
	if !ok || v == nil {
		return def
	}
	var str string
	switch t := v.(type) {
	case string:
		str = t
	default:
		str = fmt.Sprint(t)
	}
	if strings.TrimSpace(str) == "" {
		return def
	}
	return str
}

// Strings returns the value at key as a list. A scalar becomes a one element
// list.
func (s StakeholderInput) Strings(key string) []string {
	switch t := s[key].(type) {
	case nil:
		return nil
	case []string:
		return t
	case []interface{}:
		out := make([]string, 0, len(t))
		for _, item := range t {
			if item != nil {
				out = append(out, fmt.Sprint(item))
			}
		}
		return out
	case string:
		if strings.TrimSpace(t) == "" {
			return nil
		}
		return []string{t}
	default:
		return []string{fmt.Sprint(t)}
	}
}

func (s StakeholderInput) Industry() string {
	return s.String(KeyIndustry, DefaultIndustry)
}

func (s StakeholderInput) CompanyType() string {
	return s.String(KeyCompanyType, DefaultCompanyType)
}

func (s StakeholderInput) TargetAudience() string {
	return s.String(KeyTargetAudience, DefaultAudience)
}

// ProductName is the brand substituted for the XYZ placeholder.
func (s StakeholderInput) ProductName() string {
	return s.String(KeyCompanyName, DefaultProductName)
}

// Merge returns a new input with every layer applied over s in order.
func (s StakeholderInput) Merge(layers ...map[string]interface{}) StakeholderInput {
	out := make(StakeholderInput, len(s))
	for k, v := range s {
		out[k] = v
	}
	for _, layer := range layers {
		for k, v := range layer {
			out[k] = v
		}
	}
	return out
}

// Keys returns the input keys in sorted order.
func (s StakeholderInput) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// DemoStakeholderInput is the campaign used when a request supplies no input.
func DemoStakeholderInput() StakeholderInput {
	return StakeholderInput{
		KeyCompanyName:       "EdgeVerve AI Next",
		KeyIndustry:          "enterprise_ai",
		KeyCompanyType:       "ai_platform",
		"business_objective": "Establish EdgeVerve as the leading provider of Applied AI solutions for enterprises",
		KeyTargetAudience:    "CIOs and CIO-1 of companies with $1B-$5B USD revenue in financial, healthcare, and manufacturing sectors",
		"key_message":        "Unified platform that scales Applied AI across the enterprise, connecting people, processes, data, and systems",
		"budget":             "$2,000,000",
		"timeline":           "12 months",
		"brand_personality":  "Innovative, reliable, enterprise-grade",
		"preferred_channels": []interface{}{"LinkedIn", "Google Ads", "YouTube", "Industry Publications"},
		"differentiators": []interface{}{
			"PolyAI - model flexibility",
			"Cloud-agnostic deployment",
			"Built-in responsible AI",
			"AI democratization",
		},
		"market_challenges": []interface{}{
			"Scaling beyond AI experimentation",
			"Isolated systems and data",
			"Lack of enterprise data readiness",
			"Legacy manual processes",
		},
	}
}
