// internal/workers/research/competitor-research/handler.go
package competitorresearch

import (
	"context"
	"errors"
	"time"

	httpclient "creative-brief/internal/common/http"
	"creative-brief/internal/common/logger"
	"creative-brief/internal/common/metrics"
	"creative-brief/internal/models"
)

const (
	TaskType = "research-competitors"
)

var (
	ErrCompetitorSearchFailed = errors.New("COMPETITOR_SEARCH_FAILED")
	ErrCatalogLookupFailed    = errors.New("COMPETITOR_CATALOG_FAILED")
)

type Handler struct {
	config  *Config
	client  *httpclient.Client
	catalog Catalog
	logger  logger.Logger
}

// NewHandler builds the competitor provider. catalog may be nil.
func NewHandler(config *Config, catalog Catalog, log logger.Logger) *Handler {
	return &Handler{
		config:  config,
		client:  httpclient.NewClient(config.Timeout),
		catalog: catalog,
		logger:  log.WithFields(map[string]interface{}{"taskType": TaskType}),
	}
}

// Execute returns the competitor analysis. Source failures degrade to the
// canned table and are never returned.
func (h *Handler) Execute(ctx context.Context, input *Input) (*models.CompetitorAnalysis, error) {
	log := logger.WithTrace(ctx, h.logger)
	return analysis(h.resolveCompetitors(ctx, input, log)), nil
}

// Fallback is the canned analysis used when the provider cannot run at all.
func Fallback(input *Input) *models.CompetitorAnalysis {
	return analysis(simulatedCompetitors(input.Industry, input.CompanyType))
}

func analysis(competitors []models.Competitor) *models.CompetitorAnalysis {
	return &models.CompetitorAnalysis{
		TopCompetitors:    competitors,
		MarketPositioning: analyzePositioning(competitors),
		PricingInsights:   analyzePricing(),
		MessagingPatterns: analyzeMessaging(),
		Timestamp:         time.Now().UTC().Format(time.RFC3339),
	}
}

func (h *Handler) resolveCompetitors(ctx context.Context, input *Input, log logger.Logger) []models.Competitor {
	if h.config.SerperAPIKey != "" {
		found, err := h.searchCompetitors(ctx, input)
		switch {
		case err != nil:
			h.recordFallback(log, "search_error", err)
		case len(found) == 0:
			h.recordFallback(log, "search_empty", nil)
		default:
			return found
		}
	}

	if h.catalog != nil {
		found, err := h.catalog.Lookup(ctx, input.Industry, input.CompanyType)
		switch {
		case err != nil:
			h.recordFallback(log, "catalog_error", errors.Join(ErrCatalogLookupFailed, err))
		case len(found) == 0:
			h.recordFallback(log, "catalog_empty", nil)
		default:
			return found
		}
	}

	return simulatedCompetitors(input.Industry, input.CompanyType)
}

func (h *Handler) recordFallback(log logger.Logger, reason string, err error) {
	metrics.ResearchFallbacks.WithLabelValues("competitor", reason).Inc()
	fields := map[string]interface{}{"reason": reason}
	if err != nil {
		fields["error"] = err
	}
	log.Warn("competitor source unavailable, falling back", fields)
}
