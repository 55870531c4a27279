// internal/workers/generation/brief-generator/models.go
package briefgenerator

import "creative-brief/internal/models"

type Input struct {
	Stakeholder models.StakeholderInput `json:"stakeholder"`
	Research    models.ResearchRecord   `json:"research"`
}

type Output struct {
	Text        string `json:"text"`
	Model       string `json:"model"`
	PromptChars int    `json:"promptChars"`
}

type httpGenerateRequest struct {
	Prompt      string  `json:"prompt"`
	MaxTokens   int     `json:"max_tokens"`
	Temperature float32 `json:"temperature"`
}

type httpGenerateResponse struct {
	Text string `json:"text"`
}
