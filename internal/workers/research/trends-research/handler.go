// internal/workers/research/trends-research/handler.go
package trendsresearch

import (
	"context"
	"time"

	"creative-brief/internal/common/logger"
	"creative-brief/internal/models"
)

const (
	TaskType = "research-trends"
)

type Handler struct {
	config *Config
	logger logger.Logger
}

func NewHandler(config *Config, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		logger: log.WithFields(map[string]interface{}{"taskType": TaskType}),
	}
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*models.MarketTrends, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := Fallback(input)

	logger.WithTrace(ctx, h.logger).Debug("trends analyzed", map[string]interface{}{
		"industry":  input.Industry,
		"timeframe": h.config.Timeframe,
		"topics":    len(out.EmergingTopics),
	})
	return out, nil
}

// Fallback returns the table-driven trends record.
func Fallback(input *Input) *models.MarketTrends {
	return &models.MarketTrends{
		IndustryTrends:   getIndustryTrends(input.Industry),
		AudienceTrends:   getAudienceTrends(input.Audience),
		SeasonalPatterns: getSeasonalPatterns(),
		EmergingTopics:   getEmergingTopics(input.Industry, input.Audience),
		Timestamp:        time.Now().UTC().Format(time.RFC3339),
	}
}
