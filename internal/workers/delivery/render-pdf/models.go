// internal/workers/delivery/render-pdf/models.go
package renderpdf

import "creative-brief/internal/models"

type Input struct {
	Sections     []models.Section        `json:"sections"`
	RawText      string                  `json:"rawText"`
	Stakeholder  models.StakeholderInput `json:"stakeholder"`
	Research     *models.ResearchRecord  `json:"research"`
	ResearchTime float64                 `json:"researchTime"`
	// OutputPath overrides the generated file name when set.
	OutputPath string `json:"outputPath,omitempty"`
}

// run is a span of text drawn in one font style.
type run struct {
	Text string
	Bold bool
}

// block is one titled section of the document body.
type block struct {
	Title string
	Lines [][]run
}
