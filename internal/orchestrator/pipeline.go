// internal/orchestrator/pipeline.go
package orchestrator

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	apperrors "creative-brief/internal/common/errors"
	"creative-brief/internal/common/logger"
	"creative-brief/internal/common/metrics"
	"creative-brief/internal/common/observability"
	"creative-brief/internal/models"
	briefformatter "creative-brief/internal/workers/generation/brief-formatter"
	briefgenerator "creative-brief/internal/workers/generation/brief-generator"
	notifybrief "creative-brief/internal/workers/delivery/notify-brief"
	renderpdf "creative-brief/internal/workers/delivery/render-pdf"
	audienceresearch "creative-brief/internal/workers/research/audience-research"
	competitorresearch "creative-brief/internal/workers/research/competitor-research"
	trendsresearch "creative-brief/internal/workers/research/trends-research"
)

type CompetitorProvider interface {
	Execute(ctx context.Context, input *competitorresearch.Input) (*models.CompetitorAnalysis, error)
}

type TrendsProvider interface {
	Execute(ctx context.Context, input *trendsresearch.Input) (*models.MarketTrends, error)
}

type AudienceProvider interface {
	Execute(ctx context.Context, input *audienceresearch.Input) (*models.AudienceInsights, error)
}

type Generator interface {
	Execute(ctx context.Context, input *briefgenerator.Input) (*briefgenerator.Output, error)
}

type Formatter interface {
	Execute(ctx context.Context, input *briefformatter.Input) (*briefformatter.Output, error)
}

type Renderer interface {
	Execute(ctx context.Context, input *renderpdf.Input) (string, bool)
}

type Notifier interface {
	Execute(ctx context.Context, input *notifybrief.Input) (*notifybrief.Output, error)
}

// Dependencies are the pipeline stages. Renderer, Notifier, Cache and
// Observability are optional.
type Dependencies struct {
	Competitor    CompetitorProvider
	Trends        TrendsProvider
	Audience      AudienceProvider
	Generator     Generator
	Formatter     Formatter
	Renderer      Renderer
	Notifier      Notifier
	Cache         *ResearchCache
	Observability *observability.Observability
	Logger        logger.Logger
}

// RunOptions selects the optional stages for one run.
type RunOptions struct {
	RenderPDF  bool
	Notify     bool
	Recipients []string
}

// Pipeline runs research, generation, reconciliation and the optional
// rendering and delivery stages for one brief.
type Pipeline struct {
	competitor CompetitorProvider
	trends     TrendsProvider
	audience   AudienceProvider
	generator  Generator
	formatter  Formatter
	renderer   Renderer
	notifier   Notifier
	cache      *ResearchCache
	obs        *observability.Observability
	logger     logger.Logger
}

func NewPipeline(deps Dependencies) *Pipeline {
	return &Pipeline{
		competitor: deps.Competitor,
		trends:     deps.Trends,
		audience:   deps.Audience,
		generator:  deps.Generator,
		formatter:  deps.Formatter,
		renderer:   deps.Renderer,
		notifier:   deps.Notifier,
		cache:      deps.Cache,
		obs:        deps.Observability,
		logger:     deps.Logger.With(map[string]interface{}{"component": "pipeline"}),
	}
}

// Run produces one brief. The only error it returns is a generation failure,
// as a *errors.StandardError.
func (p *Pipeline) Run(ctx context.Context, input models.StakeholderInput, opts RunOptions) (*models.Brief, error) {
	briefID := uuid.NewString()

	ctx, span := p.obs.StartSpan(ctx, "brief.pipeline", attribute.String("brief.id", briefID))
	defer span.End()
	log := logger.WithTrace(ctx, p.logger).WithFields(map[string]interface{}{"briefId": briefID})

	metrics.GenerationsActive.Inc()
	defer metrics.GenerationsActive.Dec()

	log.Info("brief generation started", map[string]interface{}{
		"company":  input.ProductName(),
		"industry": input.Industry(),
	})

	start := time.Now()
	research := p.gatherResearch(ctx, input, log)
	researchTime := math.Round(time.Since(start).Seconds()*100) / 100

	genStart := time.Now()
	genCtx, genSpan := p.obs.StartSpan(ctx, "brief.generate")
	generated, err := p.generator.Execute(genCtx, &briefgenerator.Input{Stakeholder: input, Research: *research})
	p.observe(ctx, "generate", genStart)
	if err != nil {
		genSpan.RecordError(err)
		genSpan.SetStatus(codes.Error, err.Error())
		genSpan.End()
		span.SetStatus(codes.Error, "generation failed")
		p.obs.RecordBriefGenerated(ctx, "failed")

		se := generationError(err)
		log.Error("brief generation failed", map[string]interface{}{
			"errorCode": string(se.Code),
			"error":     se.Details,
		})
		return nil, se
	}
	genSpan.End()

	formatStart := time.Now()
	sections := p.format(ctx, generated.Text, research, input, log)
	p.observe(ctx, "format", formatStart)

	brief := &models.Brief{
		ID:           briefID,
		Sections:     sections,
		RawText:      generated.Text,
		Research:     *research,
		Stakeholder:  input,
		ResearchTime: researchTime,
		AgentsUsed:   append([]string(nil), models.AgentsUsed...),
		GeneratedAt:  time.Now().UTC().Format(time.RFC3339),
		Model:        generated.Model,
	}

	if opts.RenderPDF && p.renderer != nil {
		renderStart := time.Now()
		if path, ok := p.renderer.Execute(ctx, &renderpdf.Input{
			Sections:     brief.Sections,
			RawText:      brief.RawText,
			Stakeholder:  input,
			Research:     research,
			ResearchTime: researchTime,
		}); ok {
			brief.PDFPath = path
		}
		p.observe(ctx, "render", renderStart)
	}

	if opts.Notify && p.notifier != nil {
		if _, err := p.notifier.Execute(ctx, &notifybrief.Input{
			BriefID:    brief.ID,
			Company:    input.ProductName(),
			Sections:   brief.Sections,
			PDFPath:    brief.PDFPath,
			Recipients: opts.Recipients,
		}); err != nil {
			log.Warn("brief delivery failed", map[string]interface{}{"error": err.Error()})
		}
	}

	p.obs.RecordBriefGenerated(ctx, "success")
	log.Info("brief generation completed", map[string]interface{}{
		"researchTime": researchTime,
		"sections":     len(brief.Sections),
		"pdf":          brief.PDFPath != "",
		"elapsedMs":    time.Since(start).Milliseconds(),
	})
	return brief, nil
}

func generationError(err error) *apperrors.StandardError {
	if errors.Is(err, briefgenerator.ErrGenerationTimeout) {
		return apperrors.NewGenerationTimeoutError(err)
	}
	return apperrors.NewGenerationFailedError(err)
}

func (p *Pipeline) observe(ctx context.Context, stage string, start time.Time) {
	d := time.Since(start)
	metrics.GenerationDuration.WithLabelValues(stage).Observe(d.Seconds())
	p.obs.RecordStageDuration(ctx, stage, d)
}

// format runs the configured formatter, falling back to the built-in engine
// when it errors or returns no sections.
func (p *Pipeline) format(ctx context.Context, rawText string, research *models.ResearchRecord, input models.StakeholderInput, log logger.Logger) []models.Section {
	formatted, err := p.formatter.Execute(ctx, &briefformatter.Input{
		RawText:     rawText,
		Research:    research,
		Stakeholder: input,
	})
	if err == nil && formatted != nil && len(formatted.Sections) > 0 {
		return formatted.Sections
	}
	if err == nil {
		err = errors.New("formatter returned no sections")
	}
	log.Warn("formatter failed, using default reconciliation", map[string]interface{}{
		"error": err.Error(),
	})
	return briefformatter.Format(rawText, research, input)
}
