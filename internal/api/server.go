// internal/api/server.go
package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	apperrors "creative-brief/internal/common/errors"
	"creative-brief/internal/common/logger"
	"creative-brief/internal/common/validation"
	"creative-brief/internal/models"
	"creative-brief/internal/orchestrator"
	briefformatter "creative-brief/internal/workers/generation/brief-formatter"
)

const maxBodyBytes = 1 << 20

// BriefRunner is satisfied by *orchestrator.Pipeline.
type BriefRunner interface {
	Run(ctx context.Context, input models.StakeholderInput, opts orchestrator.RunOptions) (*models.Brief, error)
}

// ReadinessCheck reports whether one dependency is reachable.
type ReadinessCheck func(ctx context.Context) error

type Options struct {
	Runner         BriefRunner
	ServiceName    string
	Product        string
	Defaults       map[string]interface{}
	RateLimitRPS   float64
	RateLimitBurst int
	RequestTimeout time.Duration
	CORSOrigin     string
	// Checks maps a dependency name to its probe; nil entries report "disabled".
	Checks map[string]ReadinessCheck
	Logger logger.Logger
}

type Server struct {
	runner   BriefRunner
	service  string
	product  string
	defaults models.StakeholderInput
	limiter  *rate.Limiter
	timeout  time.Duration
	cors     string
	checks   map[string]ReadinessCheck
	logger   logger.Logger
}

func NewServer(opts Options) *Server {
	limit := rate.Inf
	if opts.RateLimitRPS > 0 {
		limit = rate.Limit(opts.RateLimitRPS)
	}
	burst := opts.RateLimitBurst
	if burst <= 0 {
		burst = 1
	}
	cors := opts.CORSOrigin
	if cors == "" {
		cors = "*"
	}
	product := opts.Product
	if product == "" {
		product = models.DefaultProductName
	}

	return &Server{
		runner:   opts.Runner,
		service:  opts.ServiceName,
		product:  product,
		defaults: models.DemoStakeholderInput().Merge(opts.Defaults),
		limiter:  rate.NewLimiter(limit, burst),
		timeout:  opts.RequestTimeout,
		cors:     cors,
		checks:   opts.Checks,
		logger:   opts.Logger.With(map[string]interface{}{"component": "api"}),
	}
}

// Handler returns the routed, CORS-wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", instrument("health", s.handleHealth))
	mux.HandleFunc("GET /ready", instrument("ready", s.handleReady))
	mux.HandleFunc("GET /brief-preview", instrument("brief-preview", s.handlePreview))
	mux.HandleFunc("POST /generate-brief", instrument("generate-brief", s.handleGenerate))
	mux.Handle("GET /metrics", promhttp.Handler())
	return withRequestID(withCORS(s.cors, mux))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "healthy",
		Service:   s.service,
		Timestamp: timestamp(),
	})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	resp := readyResponse{Status: "ready", Checks: map[string]string{}, Timestamp: timestamp()}
	for name, check := range s.checks {
		if check == nil {
			resp.Checks[name] = "disabled"
			continue
		}
		if err := check(ctx); err != nil {
			resp.Checks[name] = err.Error()
			resp.Status = "degraded"
			continue
		}
		resp.Checks[name] = "ok"
	}

	status := http.StatusOK
	if resp.Status != "ready" {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, resp)
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	sections := briefformatter.Preview(s.product)
	writeJSON(w, http.StatusOK, previewResponse{
		Success:   true,
		Preview:   true,
		Timestamp: timestamp(),
		Sections:  sections,
		Metadata: previewMetadata{
			TotalSections: len(sections),
			SampleData:    true,
			Structure:     "Required 17-section format maintained",
		},
	})
}

// handleGenerate runs the pipeline for the request body merged over the
// configured defaults. Query flags pdf=true and notify=true enable the
// optional stages.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	log := logger.WithTrace(r.Context(), s.logger).WithFields(map[string]interface{}{
		"requestId": requestIDFromContext(r.Context()),
	})

	if !s.limiter.Allow() {
		se := apperrors.NewRateLimitedError()
		log.Warn("brief request rate limited", nil)
		writeError(w, http.StatusTooManyRequests, se.Message)
		return
	}

	overrides, err := decodeOverrides(w, r)
	if err != nil {
		se := apperrors.AsStandardError(err)
		log.Warn("invalid brief request", map[string]interface{}{"details": se.Details})
		writeError(w, http.StatusBadRequest, se.Message+": "+se.Details)
		return
	}

	ctx := r.Context()
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	opts := orchestrator.RunOptions{
		RenderPDF: queryFlag(r, "pdf"),
		Notify:    queryFlag(r, "notify"),
	}
	brief, err := s.runner.Run(ctx, s.defaults.Merge(overrides), opts)
	if err != nil {
		se := apperrors.AsStandardError(err)
		log.Error("brief generation failed", map[string]interface{}{
			"errorCode": string(se.Code),
			"details":   se.Details,
		})
		writeError(w, http.StatusInternalServerError, se.Message)
		return
	}

	writeJSON(w, http.StatusOK, briefResponse{
		Success:   true,
		Timestamp: timestamp(),
		Sections:  brief.Sections,
		Metadata: briefMetadata{
			ResearchTime:  brief.ResearchTime,
			AgentsUsed:    brief.AgentsUsed,
			TotalSections: len(brief.Sections),
			BriefID:       brief.ID,
			PDFPath:       brief.PDFPath,
		},
	})
}

// decodeOverrides reads an optional JSON object body. An empty body yields no
// overrides.
func decodeOverrides(w http.ResponseWriter, r *http.Request) (map[string]interface{}, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, apperrors.NewInvalidStakeholderInputError("request body too large")
		}
		return nil, apperrors.NewInvalidStakeholderInputError(err.Error())
	}
	if strings.TrimSpace(string(body)) == "" {
		return map[string]interface{}{}, nil
	}

	var overrides map[string]interface{}
	if err := json.Unmarshal(body, &overrides); err != nil {
		return nil, apperrors.NewInvalidStakeholderInputError("body must be a JSON object")
	}
	if overrides == nil {
		return map[string]interface{}{}, nil
	}

	result, err := validation.ValidateStakeholderInput(overrides)
	if err != nil {
		return nil, apperrors.NewInvalidStakeholderInputError(err.Error())
	}
	if !result.Valid {
		return nil, apperrors.NewInvalidStakeholderInputError(result.Summary())
	}
	return overrides, nil
}

func queryFlag(r *http.Request, name string) bool {
	v, err := strconv.ParseBool(r.URL.Query().Get(name))
	return err == nil && v
}

type requestIDKey struct{}

func withRequestIDContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func requestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
