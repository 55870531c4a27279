// internal/orchestrator/wire.go
package orchestrator

import (
	"context"
	"fmt"
	"time"

	"creative-brief/internal/common/config"
	"creative-brief/internal/common/database"
	"creative-brief/internal/common/logger"
	"creative-brief/internal/common/observability"
	briefformatter "creative-brief/internal/workers/generation/brief-formatter"
	briefgenerator "creative-brief/internal/workers/generation/brief-generator"
	notifybrief "creative-brief/internal/workers/delivery/notify-brief"
	renderpdf "creative-brief/internal/workers/delivery/render-pdf"
	audienceresearch "creative-brief/internal/workers/research/audience-research"
	competitorresearch "creative-brief/internal/workers/research/competitor-research"
	trendsresearch "creative-brief/internal/workers/research/trends-research"
)

// Components is a configured pipeline plus the connections it owns.
type Components struct {
	Pipeline *Pipeline
	Redis    *database.RedisClient
	// Checks holds a readiness probe per wired backend.
	Checks  map[string]func(ctx context.Context) error
	closers []func() error
}

func (c *Components) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		_ = c.closers[i]()
	}
}

// Build constructs every stage from cfg. Optional backends (Redis, Postgres,
// Elasticsearch, delivery) are wired only when configured; a backend that
// fails to initialise is logged and left out.
func Build(ctx context.Context, cfg *config.Config, obs *observability.Observability, log logger.Logger) (*Components, error) {
	c := &Components{Checks: map[string]func(ctx context.Context) error{}}

	generator, err := briefgenerator.NewHandler(ctx, generatorConfig(cfg.Generator), log)
	if err != nil {
		return nil, fmt.Errorf("generator: %w", err)
	}

	var catalog competitorresearch.Catalog
	if cfg.Database.Elasticsearch.Enabled() {
		es, err := database.NewElasticsearch(cfg.Database.Elasticsearch)
		if err != nil {
			log.Warn("competitor catalog disabled", map[string]interface{}{"error": err.Error()})
		} else {
			catalog = competitorresearch.NewElasticsearchCatalog(es.Client, cfg.Research.CompetitorIndex)
			c.Checks["elasticsearch"] = es.IndexCheck(cfg.Research.CompetitorIndex)
		}
	}

	var profiles audienceresearch.ProfileStore
	if cfg.Database.Postgres.Enabled() {
		pg, err := database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			log.Warn("audience profile store disabled", map[string]interface{}{"error": err.Error()})
		} else {
			profiles = audienceresearch.NewPostgresStore(pg.DB)
			c.closers = append(c.closers, pg.Close)
			c.Checks["postgres"] = pg.Ping
		}
	}

	var cache *ResearchCache
	if cfg.Database.Redis.Enabled() {
		rdb, err := database.NewRedis(cfg.Database.Redis)
		if err != nil {
			log.Warn("research cache disabled", map[string]interface{}{"error": err.Error()})
		} else {
			c.Redis = rdb
			c.closers = append(c.closers, rdb.Close)
			c.Checks["redis"] = rdb.Ping
			cache = NewResearchCache(rdb, time.Duration(cfg.Research.CacheTTL)*time.Second, log)
		}
	}

	var notifier Notifier
	if cfg.Notifications.Enabled {
		n, err := notifybrief.New(ctx, notifierConfig(cfg.Notifications), log)
		if err != nil {
			log.Warn("brief delivery disabled", map[string]interface{}{"error": err.Error()})
		} else {
			notifier = n
		}
	}

	competitorCfg := competitorresearch.LoadConfig()
	competitorCfg.SerperAPIKey = cfg.Research.SerperAPIKey
	competitorCfg.SerperBaseURL = cfg.Research.SerperBaseURL
	competitorCfg.CompetitorIndex = cfg.Research.CompetitorIndex
	competitorCfg.Timeout = config.GetDuration(cfg.Research.Timeout)

	c.Pipeline = NewPipeline(Dependencies{
		Competitor: competitorresearch.NewHandler(competitorCfg, catalog, log),
		Trends:     trendsresearch.NewHandler(trendsresearch.LoadConfig(), log),
		Audience:   audienceresearch.NewHandler(audienceresearch.LoadConfig(), profiles, log),
		Generator:  generator,
		Formatter:  briefformatter.NewHandler(briefformatter.DefaultConfig(), log),
		Renderer: renderpdf.NewHandler(&renderpdf.Config{
			Enabled:   cfg.Render.Enabled,
			OutputDir: cfg.Render.OutputDir,
			Brand:     cfg.Render.Brand,
		}, log),
		Notifier:      notifier,
		Cache:         cache,
		Observability: obs,
		Logger:        log,
	})
	return c, nil
}

func generatorConfig(g config.GeneratorConfig) *briefgenerator.Config {
	return &briefgenerator.Config{
		Provider:    g.Provider,
		Model:       g.Model,
		APIKey:      g.APIKey,
		BaseURL:     g.BaseURL,
		Timeout:     config.GetDuration(g.Timeout),
		MaxTokens:   g.MaxTokens,
		Temperature: float32(g.Temperature),
	}
}

func notifierConfig(n config.NotificationConfig) *notifybrief.Config {
	out := notifybrief.DefaultConfig()
	out.Enabled = n.Enabled
	out.Recipients = n.Recipients
	out.SMTPHost = n.SMTP.Host
	out.SMTPPort = n.SMTP.Port
	out.SMTPUsername = n.SMTP.Username
	out.SMTPPassword = n.SMTP.Password
	out.AWSRegion = n.AWS.Region
	out.SNSTopicARN = n.AWS.SNSTopicARN
	if n.FromEmail != "" {
		out.From = n.FromEmail
	}
	if n.AWS.SESEnabled {
		out.Channel = notifybrief.ChannelSES
	}
	return out
}
