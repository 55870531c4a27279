// internal/workers/research/competitor-research/handler_test.go
package competitorresearch

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"creative-brief/internal/common/logger"
	"creative-brief/internal/models"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestConfig() *Config {
	return &Config{
		SerperBaseURL:   "http://127.0.0.1:1",
		CompetitorIndex: "competitors",
		Timeout:         2 * time.Second,
	}
}

type stubCatalog struct {
	competitors []models.Competitor
	err         error
	calls       int
}

func (s *stubCatalog) Lookup(ctx context.Context, industry, companyType string) ([]models.Competitor, error) {
	s.calls++
	return s.competitors, s.err
}

func newSerperServer(t *testing.T, status int, body string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "serper-key", r.Header.Get("X-API-KEY"))

		var req serperRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "top ai_platform companies enterprise_ai 2024", req.Query)
		assert.Equal(t, 5, req.Num)

		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
}

func TestExecute_CannedTables(t *testing.T) {
	tests := []struct {
		name        string
		input       Input
		wantFirst   string
		wantCount   int
		wantPosFrom string
	}{
		{"enterprise ai platform", Input{Industry: "enterprise_ai", CompanyType: "ai_platform"}, "Databricks", 5, "Unified analytics platform"},
		{"unknown industry", Input{Industry: "retail", CompanyType: "saas"}, "IBM Watson", 3, "AI consulting"},
		{"known industry unknown type", Input{Industry: "enterprise_ai", CompanyType: "consulting"}, "IBM Watson", 3, "CRM AI"},
	}

	h := NewHandler(createTestConfig(), nil, logger.NewTestLogger(t))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := h.Execute(context.Background(), &tt.input)
			require.NoError(t, err)
			require.Len(t, out.TopCompetitors, tt.wantCount)
			assert.Equal(t, tt.wantFirst, out.TopCompetitors[0].Name)
			assert.Contains(t, out.MarketPositioning.CommonPositions, tt.wantPosFrom)
			assert.Equal(t, "Position at $49-79/month for competitive advantage", out.PricingInsights.Recommendation)
			assert.Equal(t, []string{"Sustainability", "Work-life balance", "Mental health"}, out.MessagingPatterns.MissingAngles)
			assert.NotEmpty(t, out.Timestamp)
		})
	}
}

func TestExecute_SerperSearch(t *testing.T) {
	server := newSerperServer(t, http.StatusOK, `{"organic":[
		{"title":"Databricks Lakehouse","snippet":"Data and AI","link":"https://databricks.com"},
		{"title":"Snowflake","snippet":"Cloud data","link":"https://snowflake.com"},
		{"title":"C3 AI Suite","snippet":"Enterprise AI","link":"https://c3.ai"},
		{"title":"Dropped Result","snippet":"","link":""}
	]}`)
	defer server.Close()

	cfg := createTestConfig()
	cfg.SerperAPIKey = "serper-key"
	cfg.SerperBaseURL = server.URL + "/"
	catalog := &stubCatalog{}

	out, err := NewHandler(cfg, catalog, logger.NewTestLogger(t)).Execute(context.Background(), &Input{Industry: "enterprise_ai", CompanyType: "ai_platform"})
	require.NoError(t, err)
	require.Len(t, out.TopCompetitors, 3)
	assert.Equal(t, "Databricks", out.TopCompetitors[0].Name)
	assert.Equal(t, "Snowflake", out.TopCompetitors[1].Name)
	assert.Equal(t, "https://c3.ai", out.TopCompetitors[2].Website)
	assert.Equal(t, serperSource, out.TopCompetitors[0].Source)
	assert.Empty(t, out.MarketPositioning.CommonPositions)
	assert.Zero(t, catalog.calls)
}

func TestExecute_SearchFailureFallsBack(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"server error", http.StatusInternalServerError, `{"message":"boom"}`},
		{"malformed body", http.StatusOK, `not json`},
		{"no organic results", http.StatusOK, `{"organic":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newSerperServer(t, tt.status, tt.body)
			defer server.Close()

			cfg := createTestConfig()
			cfg.SerperAPIKey = "serper-key"
			cfg.SerperBaseURL = server.URL

			out, err := NewHandler(cfg, nil, logger.NewTestLogger(t)).Execute(context.Background(), &Input{Industry: "enterprise_ai", CompanyType: "ai_platform"})
			require.NoError(t, err)
			assert.Equal(t, "Databricks", out.TopCompetitors[0].Name)
		})
	}
}

func TestExecute_CatalogSource(t *testing.T) {
	catalog := &stubCatalog{competitors: []models.Competitor{
		{Name: "Acme AI", Focus: "Vertical AI", Source: catalogSource},
		{Name: "Beta ML", Focus: "Vertical AI", Source: catalogSource},
	}}

	out, err := NewHandler(createTestConfig(), catalog, logger.NewTestLogger(t)).Execute(context.Background(), &Input{Industry: "enterprise_ai", CompanyType: "ai_platform"})
	require.NoError(t, err)
	require.Len(t, out.TopCompetitors, 2)
	assert.Equal(t, "Acme AI", out.TopCompetitors[0].Name)
	assert.Equal(t, []string{"Vertical AI"}, out.MarketPositioning.CommonPositions)
}

func TestExecute_CatalogErrorFallsBack(t *testing.T) {
	catalog := &stubCatalog{err: errors.New("connection refused")}

	out, err := NewHandler(createTestConfig(), catalog, logger.NewTestLogger(t)).Execute(context.Background(), &Input{Industry: "x", CompanyType: "y"})
	require.NoError(t, err)
	assert.Equal(t, 1, catalog.calls)
	assert.Equal(t, "IBM Watson", out.TopCompetitors[0].Name)
}

func TestElasticsearchCatalog_Lookup(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.Header().Set("Content-Type", "application/json")
		assert.Equal(t, "/competitors/_search", r.URL.Path)

		var body map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		filters := body["query"].(map[string]interface{})["bool"].(map[string]interface{})["filter"].([]interface{})
		assert.Len(t, filters, 2)

		_, _ = w.Write([]byte(`{"hits":{"total":{"value":1},"hits":[
			{"_source":{"industry":"enterprise_ai","company_type":"ai_platform","name":"Dataiku","pricing":"Custom","focus":"Collaborative data science"}}
		]}}`))
	}))
	defer server.Close()

	es, err := elasticsearch.NewClient(elasticsearch.Config{Addresses: []string{server.URL}})
	require.NoError(t, err)

	found, err := NewElasticsearchCatalog(es, "competitors").Lookup(context.Background(), "enterprise_ai", "ai_platform")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Dataiku", found[0].Name)
	assert.Equal(t, "Collaborative data science", found[0].Focus)
	assert.Equal(t, catalogSource, found[0].Source)
}

func TestElasticsearchCatalog_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"type":"index_not_found_exception"},"status":404}`))
	}))
	defer server.Close()

	es, err := elasticsearch.NewClient(elasticsearch.Config{Addresses: []string{server.URL}})
	require.NoError(t, err)

	_, err = NewElasticsearchCatalog(es, "competitors").Lookup(context.Background(), "a", "b")
	assert.Error(t, err)
}

func TestFirstWord(t *testing.T) {
	assert.Equal(t, "Databricks", firstWord("Databricks Lakehouse Platform"))
	assert.Equal(t, "Solo", firstWord("Solo"))
	assert.Equal(t, "", firstWord(""))
}
