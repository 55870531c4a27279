// internal/workers/generation/brief-formatter/models.go
package briefformatter

import "creative-brief/internal/models"

type Input struct {
	RawText     string                  `json:"rawText"`
	Research    *models.ResearchRecord  `json:"research"`
	Stakeholder models.StakeholderInput `json:"stakeholder"`
}

type Output struct {
	Sections []models.Section `json:"sections"`
	// Matched and Fallback hold section IDs by content source.
	Matched  []int `json:"matched"`
	Fallback []int `json:"fallback"`
}
