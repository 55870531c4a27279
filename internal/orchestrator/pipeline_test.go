// internal/orchestrator/pipeline_test.go
package orchestrator

import (
	"context"
	stderrors "errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	apperrors "creative-brief/internal/common/errors"
	"creative-brief/internal/common/database"
	"creative-brief/internal/common/logger"
	"creative-brief/internal/common/observability"
	"creative-brief/internal/models"
	briefformatter "creative-brief/internal/workers/generation/brief-formatter"
	briefgenerator "creative-brief/internal/workers/generation/brief-generator"
	notifybrief "creative-brief/internal/workers/delivery/notify-brief"
	renderpdf "creative-brief/internal/workers/delivery/render-pdf"
	audienceresearch "creative-brief/internal/workers/research/audience-research"
	competitorresearch "creative-brief/internal/workers/research/competitor-research"
	trendsresearch "creative-brief/internal/workers/research/trends-research"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCompetitor struct {
	calls atomic.Int32
	err   error
	panic bool
}

func (s *stubCompetitor) Execute(_ context.Context, input *competitorresearch.Input) (*models.CompetitorAnalysis, error) {
	s.calls.Add(1)
	if s.panic {
		panic("index out of range")
	}
	if s.err != nil {
		return nil, s.err
	}
	return &models.CompetitorAnalysis{TopCompetitors: []models.Competitor{{Name: "StubCo", Focus: "stubs"}}}, nil
}

type stubTrends struct{ err error }

func (s *stubTrends) Execute(_ context.Context, input *trendsresearch.Input) (*models.MarketTrends, error) {
	if s.err != nil {
		return nil, s.err
	}
	return trendsresearch.Fallback(input), nil
}

type stubAudience struct{}

func (stubAudience) Execute(_ context.Context, input *audienceresearch.Input) (*models.AudienceInsights, error) {
	return audienceresearch.Fallback(input), nil
}

type stubGenerator struct {
	text string
	err  error
	seen *briefgenerator.Input
}

func (s *stubGenerator) Execute(_ context.Context, input *briefgenerator.Input) (*briefgenerator.Output, error) {
	s.seen = input
	if s.err != nil {
		return nil, s.err
	}
	return &briefgenerator.Output{Text: s.text, Model: "stub-model"}, nil
}

type stubRenderer struct {
	ok    bool
	calls int
}

func (s *stubRenderer) Execute(_ context.Context, input *renderpdf.Input) (string, bool) {
	s.calls++
	if !s.ok {
		return "", false
	}
	return "output/brief.pdf", true
}

type stubNotifier struct {
	err   error
	input *notifybrief.Input
}

func (s *stubNotifier) Execute(_ context.Context, input *notifybrief.Input) (*notifybrief.Output, error) {
	s.input = input
	return &notifybrief.Output{}, s.err
}

type failingFormatter struct{ out *briefformatter.Output }

func (f failingFormatter) Execute(context.Context, *briefformatter.Input) (*briefformatter.Output, error) {
	if f.out != nil {
		return f.out, nil
	}
	return nil, stderrors.New("template store offline")
}

type testPipeline struct {
	*Pipeline
	competitor *stubCompetitor
	trends     *stubTrends
	generator  *stubGenerator
	renderer   *stubRenderer
	notifier   *stubNotifier
}

func newTestPipeline(t *testing.T, cache *ResearchCache) *testPipeline {
	log := logger.NewTestLogger(t)
	tp := &testPipeline{
		competitor: &stubCompetitor{},
		trends:     &stubTrends{},
		generator:  &stubGenerator{text: "**Business Objective**\nGrow revenue by 20%.\n"},
		renderer:   &stubRenderer{ok: true},
		notifier:   &stubNotifier{},
	}
	tp.Pipeline = NewPipeline(Dependencies{
		Competitor:    tp.competitor,
		Trends:        tp.trends,
		Audience:      stubAudience{},
		Generator:     tp.generator,
		Formatter:     briefformatter.NewHandler(nil, log),
		Renderer:      tp.renderer,
		Notifier:      tp.notifier,
		Cache:         cache,
		Observability: observability.NewNoop(),
		Logger:        log,
	})
	return tp
}

func demoInput() models.StakeholderInput {
	return models.DemoStakeholderInput()
}

func TestPipeline_Run(t *testing.T) {
	tp := newTestPipeline(t, nil)

	brief, err := tp.Run(context.Background(), demoInput(), RunOptions{})

	require.NoError(t, err)
	require.Len(t, brief.Sections, 17)
	for i, s := range brief.Sections {
		assert.Equal(t, i+1, s.ID)
		assert.NotEmpty(t, s.Content)
	}
	assert.Equal(t, "Grow revenue by 20%.", brief.Sections[0].Content)
	assert.Equal(t, "Why EdgeVerve AI Next (Platform)?", brief.Sections[7].Title)
	assert.NotEmpty(t, brief.ID)
	assert.Equal(t, []string{"competitor", "trends", "audience", "brief_generator"}, brief.AgentsUsed)
	assert.Equal(t, "stub-model", brief.Model)
	assert.Equal(t, "StubCo", brief.Research.CompetitorAnalysis.TopCompetitors[0].Name)
	assert.NotEmpty(t, brief.Research.MarketTrends.IndustryTrends.GrowthRate)
	assert.NotEmpty(t, brief.Research.AudienceInsights.PainPoints)
	assert.GreaterOrEqual(t, brief.ResearchTime, 0.0)
	assert.Empty(t, brief.PDFPath)
	assert.Equal(t, 0, tp.renderer.calls)
	assert.Nil(t, tp.notifier.input)

	require.NotNil(t, tp.generator.seen)
	assert.Equal(t, "StubCo", tp.generator.seen.Research.CompetitorAnalysis.TopCompetitors[0].Name)
}

func TestPipeline_ProviderFailuresUseCannedData(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*testPipeline)
	}{
		{"error", func(tp *testPipeline) { tp.competitor.err = stderrors.New("catalog down") }},
		{"panic", func(tp *testPipeline) { tp.competitor.panic = true }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tp := newTestPipeline(t, nil)
			tt.setup(tp)
			tp.trends.err = stderrors.New("trends offline")

			brief, err := tp.Run(context.Background(), demoInput(), RunOptions{})

			require.NoError(t, err)
			names := []string{}
			for _, c := range brief.Research.CompetitorAnalysis.TopCompetitors {
				names = append(names, c.Name)
			}
			assert.Contains(t, names, "Databricks")
			assert.Equal(t, "+67% YoY", brief.Research.MarketTrends.IndustryTrends.GrowthRate)
			assert.Len(t, brief.Sections, 17)
		})
	}
}

func TestPipeline_GenerationErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode apperrors.ErrorCode
	}{
		{"failure", fmt.Errorf("%w: 500", briefgenerator.ErrGenerationFailed), apperrors.ErrCodeGenerationFailed},
		{"timeout", fmt.Errorf("%w: deadline", briefgenerator.ErrGenerationTimeout), apperrors.ErrCodeGenerationTimeout},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tp := newTestPipeline(t, nil)
			tp.generator.err = tt.err

			brief, err := tp.Run(context.Background(), demoInput(), RunOptions{RenderPDF: true, Notify: true})

			require.Error(t, err)
			assert.Nil(t, brief)
			assert.Equal(t, tt.wantCode, apperrors.AsStandardError(err).Code)
			assert.ErrorIs(t, err, tt.err)
			assert.Equal(t, 0, tp.renderer.calls)
			assert.Nil(t, tp.notifier.input)
		})
	}
}

func TestPipeline_RenderAndNotify(t *testing.T) {
	tp := newTestPipeline(t, nil)

	brief, err := tp.Run(context.Background(), demoInput(), RunOptions{RenderPDF: true, Notify: true, Recipients: []string{"cmo@example.com"}})

	require.NoError(t, err)
	assert.Equal(t, "output/brief.pdf", brief.PDFPath)
	require.NotNil(t, tp.notifier.input)
	assert.Equal(t, brief.ID, tp.notifier.input.BriefID)
	assert.Equal(t, "EdgeVerve AI Next", tp.notifier.input.Company)
	assert.Equal(t, "output/brief.pdf", tp.notifier.input.PDFPath)
	assert.Equal(t, []string{"cmo@example.com"}, tp.notifier.input.Recipients)
}

func TestPipeline_OptionalStageFailuresKeepBrief(t *testing.T) {
	tp := newTestPipeline(t, nil)
	tp.renderer.ok = false
	tp.notifier.err = apperrors.NewNotificationSendFailedError("smtp", stderrors.New("421"))

	brief, err := tp.Run(context.Background(), demoInput(), RunOptions{RenderPDF: true, Notify: true})

	require.NoError(t, err)
	assert.Empty(t, brief.PDFPath)
	assert.Equal(t, 1, tp.renderer.calls)
	assert.Len(t, brief.Sections, 17)
}

func TestPipeline_ResearchCache(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	rdb := database.NewRedisFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	tp := newTestPipeline(t, NewResearchCache(rdb, time.Hour, logger.NewTestLogger(t)))

	first, err := tp.Run(context.Background(), demoInput(), RunOptions{})
	require.NoError(t, err)
	second, err := tp.Run(context.Background(), demoInput(), RunOptions{})
	require.NoError(t, err)

	assert.Equal(t, int32(1), tp.competitor.calls.Load())
	assert.Equal(t, first.Research.CompetitorAnalysis, second.Research.CompetitorAnalysis)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Len(t, mr.Keys(), 3)
}

func TestPipeline_FailedProviderIsNotCached(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	rdb := database.NewRedisFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	tp := newTestPipeline(t, NewResearchCache(rdb, time.Hour, logger.NewTestLogger(t)))
	tp.competitor.err = stderrors.New("down")

	_, err = tp.Run(context.Background(), demoInput(), RunOptions{})
	require.NoError(t, err)
	_, err = tp.Run(context.Background(), demoInput(), RunOptions{})
	require.NoError(t, err)

	assert.Equal(t, int32(2), tp.competitor.calls.Load())
	assert.Len(t, mr.Keys(), 2)
}

func TestPipeline_FormatterFailureFallsBackToEngine(t *testing.T) {
	tests := []struct {
		name      string
		formatter Formatter
	}{
		{"error", failingFormatter{}},
		{"empty output", failingFormatter{out: &briefformatter.Output{}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tp := newTestPipeline(t, nil)
			tp.formatter = tt.formatter

			brief, err := tp.Run(context.Background(), demoInput(), RunOptions{})

			require.NoError(t, err)
			require.Len(t, brief.Sections, 17)
			assert.Equal(t, "Grow revenue by 20%.", brief.Sections[0].Content)
			assert.Equal(t, "Why EdgeVerve AI Next (Platform)?", brief.Sections[7].Title)
		})
	}
}
