// internal/api/server_test.go
package api

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apperrors "creative-brief/internal/common/errors"
	"creative-brief/internal/common/logger"
	"creative-brief/internal/models"
	"creative-brief/internal/orchestrator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRunner struct {
	err   error
	input models.StakeholderInput
	opts  orchestrator.RunOptions
	calls int
}

func (s *stubRunner) Run(_ context.Context, input models.StakeholderInput, opts orchestrator.RunOptions) (*models.Brief, error) {
	s.calls++
	s.input, s.opts = input, opts
	if s.err != nil {
		return nil, s.err
	}
	sections := make([]models.Section, 17)
	for i := range sections {
		sections[i] = models.Section{ID: i + 1, Title: "t", Content: "c", Type: models.SectionTypeText}
	}
	brief := &models.Brief{
		ID:           "brief-1",
		Sections:     sections,
		ResearchTime: 0.12,
		AgentsUsed:   models.AgentsUsed,
	}
	if opts.RenderPDF {
		brief.PDFPath = "output/brief.pdf"
	}
	return brief, nil
}

func newTestServer(t *testing.T, runner *stubRunner, mutate func(*Options)) *httptest.Server {
	opts := Options{
		Runner:         runner,
		ServiceName:    "EdgeVerve AI Brief Generator",
		Defaults:       map[string]interface{}{"budget": "$1M"},
		RateLimitRPS:   100,
		RateLimitBurst: 100,
		Logger:         logger.NewTestLogger(t),
	}
	if mutate != nil {
		mutate(&opts)
	}
	srv := httptest.NewServer(NewServer(opts).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func decode(t *testing.T, resp *http.Response) map[string]interface{} {
	defer resp.Body.Close()
	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, &stubRunner{}, nil)

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
	body := decode(t, resp)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "EdgeVerve AI Brief Generator", body["service"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestReady(t *testing.T) {
	tests := []struct {
		name       string
		checks     map[string]ReadinessCheck
		wantCode   int
		wantStatus string
		wantChecks map[string]interface{}
	}{
		{
			name:       "all ok",
			checks:     map[string]ReadinessCheck{"redis": func(context.Context) error { return nil }, "zeebe": nil},
			wantCode:   http.StatusOK,
			wantStatus: "ready",
			wantChecks: map[string]interface{}{"redis": "ok", "zeebe": "disabled"},
		},
		{
			name:       "redis down",
			checks:     map[string]ReadinessCheck{"redis": func(context.Context) error { return stderrors.New("connection refused") }},
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: "degraded",
			wantChecks: map[string]interface{}{"redis": "connection refused"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, &stubRunner{}, func(o *Options) { o.Checks = tt.checks })

			resp, err := http.Get(srv.URL + "/ready")
			require.NoError(t, err)

			assert.Equal(t, tt.wantCode, resp.StatusCode)
			body := decode(t, resp)
			assert.Equal(t, tt.wantStatus, body["status"])
			assert.Equal(t, tt.wantChecks, body["checks"])
		})
	}
}

func TestBriefPreview(t *testing.T) {
	srv := newTestServer(t, &stubRunner{}, nil)

	resp, err := http.Get(srv.URL + "/brief-preview")
	require.NoError(t, err)
	body := decode(t, resp)

	assert.Equal(t, true, body["success"])
	assert.Equal(t, true, body["preview"])
	sections := body["sections"].([]interface{})
	assert.Len(t, sections, 17)
	meta := body["metadata"].(map[string]interface{})
	assert.Equal(t, float64(17), meta["total_sections"])
	assert.Equal(t, true, meta["sample_data"])
	assert.Equal(t, "Required 17-section format maintained", meta["structure"])
}

func TestGenerateBrief_Success(t *testing.T) {
	runner := &stubRunner{}
	srv := newTestServer(t, runner, nil)

	resp, err := http.Post(srv.URL+"/generate-brief?pdf=true", "application/json",
		strings.NewReader(`{"company_name": "Acme", "industry": "retail"}`))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode(t, resp)
	assert.Equal(t, true, body["success"])
	assert.Len(t, body["sections"], 17)
	meta := body["metadata"].(map[string]interface{})
	assert.Equal(t, 0.12, meta["research_time"])
	assert.Equal(t, float64(17), meta["total_sections"])
	assert.Equal(t, "brief-1", meta["brief_id"])
	assert.Equal(t, "output/brief.pdf", meta["pdf_path"])
	assert.Equal(t, []interface{}{"competitor", "trends", "audience", "brief_generator"}, meta["agents_used"])

	assert.Equal(t, "Acme", runner.input.ProductName())
	assert.Equal(t, "retail", runner.input.Industry())
	assert.Equal(t, "ai_platform", runner.input.CompanyType())
	assert.Equal(t, "$1M", runner.input.String("budget", ""))
	assert.True(t, runner.opts.RenderPDF)
	assert.False(t, runner.opts.Notify)
}

func TestGenerateBrief_EmptyBodyUsesDemoDefaults(t *testing.T) {
	runner := &stubRunner{}
	srv := newTestServer(t, runner, nil)

	resp, err := http.Post(srv.URL+"/generate-brief", "application/json", nil)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode(t, resp)
	assert.NotContains(t, body["metadata"], "pdf_path")
	assert.Equal(t, "EdgeVerve AI Next", runner.input.ProductName())
	assert.Equal(t, "enterprise_ai", runner.input.Industry())
}

func TestGenerateBrief_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"company_name": `},
		{"not an object", `["a", "b"]`},
		{"schema violation", `{"company_name": 42}`},
		{"list field wrong type", `{"preferred_channels": "one"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &stubRunner{}
			srv := newTestServer(t, runner, nil)

			resp, err := http.Post(srv.URL+"/generate-brief", "application/json", strings.NewReader(tt.body))
			require.NoError(t, err)

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			body := decode(t, resp)
			assert.Equal(t, false, body["success"])
			assert.Contains(t, body["error"], "Invalid stakeholder input")
			assert.Equal(t, 0, runner.calls)
		})
	}
}

func TestGenerateBrief_GenerationFailure(t *testing.T) {
	runner := &stubRunner{err: apperrors.NewGenerationFailedError(stderrors.New("quota exceeded"))}
	srv := newTestServer(t, runner, nil)

	resp, err := http.Post(srv.URL+"/generate-brief", "application/json", nil)
	require.NoError(t, err)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	body := decode(t, resp)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Brief generation failed", body["error"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestGenerateBrief_RateLimited(t *testing.T) {
	runner := &stubRunner{}
	srv := newTestServer(t, runner, func(o *Options) {
		o.RateLimitRPS = 0.001
		o.RateLimitBurst = 1
	})

	first, err := http.Post(srv.URL+"/generate-brief", "application/json", nil)
	require.NoError(t, err)
	first.Body.Close()
	second, err := http.Post(srv.URL+"/generate-brief", "application/json", nil)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, first.StatusCode)
	assert.Equal(t, http.StatusTooManyRequests, second.StatusCode)
	body := decode(t, second)
	assert.Equal(t, "Too many brief generation requests", body["error"])
	assert.Equal(t, 1, runner.calls)
}

func TestCORSPreflight(t *testing.T) {
	srv := newTestServer(t, &stubRunner{}, nil)

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/generate-brief", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "GET, POST, OPTIONS", resp.Header.Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type, Authorization", resp.Header.Get("Access-Control-Allow-Headers"))
}

func TestRequestIDPropagated(t *testing.T) {
	srv := newTestServer(t, &stubRunner{}, nil)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/health", nil)
	require.NoError(t, err)
	req.Header.Set("X-Request-ID", "req-42")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "req-42", resp.Header.Get("X-Request-ID"))
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t, &stubRunner{}, nil)

	_, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
