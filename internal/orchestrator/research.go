// internal/orchestrator/research.go
package orchestrator

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	apperrors "creative-brief/internal/common/errors"
	"creative-brief/internal/common/logger"
	"creative-brief/internal/common/metrics"
	"creative-brief/internal/models"
	audienceresearch "creative-brief/internal/workers/research/audience-research"
	competitorresearch "creative-brief/internal/workers/research/competitor-research"
	trendsresearch "creative-brief/internal/workers/research/trends-research"
)

const (
	providerCompetitor = "competitor"
	providerTrends     = "trends"
	providerAudience   = "audience"
)

// gatherResearch runs the three providers concurrently and joins. A provider
// that errors or panics is replaced by its canned record; the group itself
// never fails.
func (p *Pipeline) gatherResearch(ctx context.Context, input models.StakeholderInput, log logger.Logger) *models.ResearchRecord {
	ctx, span := p.obs.StartSpan(ctx, "brief.research")
	defer span.End()

	competitorIn := &competitorresearch.Input{Industry: input.Industry(), CompanyType: input.CompanyType()}
	trendsIn := &trendsresearch.Input{Industry: input.Industry(), Audience: input.TargetAudience()}
	audienceIn := &audienceresearch.Input{Audience: input.TargetAudience(), Industry: input.Industry()}

	record := &models.ResearchRecord{}
	var g errgroup.Group

	g.Go(func() error {
		record.CompetitorAnalysis = *runProvider(ctx, p, log, providerCompetitor, competitorIn,
			func(ctx context.Context) (*models.CompetitorAnalysis, error) { return p.competitor.Execute(ctx, competitorIn) },
			func() *models.CompetitorAnalysis { return competitorresearch.Fallback(competitorIn) })
		return nil
	})
	g.Go(func() error {
		record.MarketTrends = *runProvider(ctx, p, log, providerTrends, trendsIn,
			func(ctx context.Context) (*models.MarketTrends, error) { return p.trends.Execute(ctx, trendsIn) },
			func() *models.MarketTrends { return trendsresearch.Fallback(trendsIn) })
		return nil
	})
	g.Go(func() error {
		record.AudienceInsights = *runProvider(ctx, p, log, providerAudience, audienceIn,
			func(ctx context.Context) (*models.AudienceInsights, error) { return p.audience.Execute(ctx, audienceIn) },
			func() *models.AudienceInsights { return audienceresearch.Fallback(audienceIn) })
		return nil
	})

	_ = g.Wait()
	return record
}

// runProvider serves one provider from cache, then the live provider, then
// its fallback.
func runProvider[T any](
	ctx context.Context,
	p *Pipeline,
	log logger.Logger,
	name string,
	input interface{},
	exec func(context.Context) (*T, error),
	fallback func() *T,
) (out *T) {
	start := time.Now()
	defer func() { p.observe(ctx, "research_"+name, start) }()

	cached := new(T)
	if p.cache.Get(ctx, name, input, cached) {
		log.Debug("research served from cache", map[string]interface{}{"provider": name})
		return cached
	}

	defer func() {
		if r := recover(); r != nil {
			out = providerFallback(log, name, fmt.Errorf("panic: %v", r), fallback)
		}
	}()

	result, err := exec(ctx)
	if err != nil || result == nil {
		if err == nil {
			err = fmt.Errorf("provider returned no record")
		}
		return providerFallback(log, name, err, fallback)
	}

	p.cache.Put(ctx, name, input, result)
	return result
}

func providerFallback[T any](log logger.Logger, name string, err error, fallback func() *T) *T {
	se := apperrors.NewResearchUnavailableError(name, err)
	metrics.ResearchFallbacks.WithLabelValues(name, "provider_error").Inc()
	log.Warn("research provider failed, using canned data", map[string]interface{}{
		"provider":  name,
		"errorCode": string(se.Code),
		"error":     se.Details,
	})
	return fallback()
}
