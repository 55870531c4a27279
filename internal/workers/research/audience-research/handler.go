// internal/workers/research/audience-research/handler.go
package audienceresearch

import (
	"context"
	"errors"
	"time"

	"creative-brief/internal/common/logger"
	"creative-brief/internal/common/metrics"
	"creative-brief/internal/models"
)

const (
	TaskType = "research-audience"
)

var (
	ErrProfileStoreFailed = errors.New("PROFILE_STORE_FAILED")
)

type Handler struct {
	config *Config
	store  ProfileStore
	logger logger.Logger
}

// NewHandler builds the audience provider. A nil store uses the static
// profile table.
func NewHandler(config *Config, store ProfileStore, log logger.Logger) *Handler {
	if store == nil {
		store = StaticStore{}
	}
	return &Handler{
		config: config,
		store:  store,
		logger: log.WithFields(map[string]interface{}{"taskType": TaskType}),
	}
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*models.AudienceInsights, error) {
	return insights(input, h.loadProfiles(ctx)), nil
}

// Fallback builds insights from the static profile table.
func Fallback(input *Input) *models.AudienceInsights {
	return insights(input, staticProfiles)
}

func insights(input *Input, profiles []SegmentProfile) *models.AudienceInsights {
	return &models.AudienceInsights{
		DemographicProfile: analyzeDemographics(input.Audience, profiles),
		BehavioralInsights: behavioralInsights(),
		ChannelPreferences: channelPreferences(input.Audience),
		ContentConsumption: contentConsumption(),
		PainPoints:         painPoints(input.Audience, input.Industry),
		BuyingJourney:      buyingJourney(),
		Timestamp:          time.Now().UTC().Format(time.RFC3339),
	}
}

// loadProfiles reads the configured store and falls back to the static table
// on error or an empty result.
func (h *Handler) loadProfiles(ctx context.Context) []SegmentProfile {
	if _, static := h.store.(StaticStore); static {
		return staticProfiles
	}

	if h.config.StoreTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.config.StoreTimeout)
		defer cancel()
	}

	profiles, err := h.store.Profiles(ctx)
	if err == nil && len(profiles) > 0 {
		return profiles
	}

	reason := "store_empty"
	fields := map[string]interface{}{}
	if err != nil {
		reason = "store_error"
		fields["error"] = err
	}
	fields["reason"] = reason
	metrics.ResearchFallbacks.WithLabelValues("audience", reason).Inc()
	logger.WithTrace(ctx, h.logger).Warn("profile store unavailable, using static profiles", fields)
	return staticProfiles
}
