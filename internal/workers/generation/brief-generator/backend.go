// internal/workers/generation/brief-generator/backend.go
package briefgenerator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	httpclient "creative-brief/internal/common/http"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"google.golang.org/genai"
)

// Backend performs one text generation call.
type Backend interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Model() string
}

// NewBackend selects the backend named by config.Provider.
func NewBackend(ctx context.Context, config *Config) (Backend, error) {
	switch config.Provider {
	case ProviderGemini, "":
		return newGeminiBackend(ctx, config)
	case ProviderOpenAI:
		return newOpenAIBackend(ctx, config)
	case ProviderHTTP:
		return newHTTPBackend(config)
	default:
		return nil, fmt.Errorf("unknown generator provider %q", config.Provider)
	}
}

type geminiBackend struct {
	client *genai.Client
	config *Config
}

func newGeminiBackend(ctx context.Context, config *Config) (*geminiBackend, error) {
	if config.APIKey == "" {
		return nil, errors.New("gemini API key is required")
	}
	cc := &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if config.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: config.BaseURL}
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &geminiBackend{client: client, config: config}, nil
}

func (g *geminiBackend) Generate(ctx context.Context, prompt string) (string, error) {
	contents := []*genai.Content{
		{
			Parts: []*genai.Part{{Text: prompt}},
			Role:  "user",
		},
	}
	temperature := g.config.Temperature
	resp, err := g.client.Models.GenerateContent(ctx, g.config.Model, contents, &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: int32(g.config.MaxTokens),
	})
	if err != nil {
		return "", fmt.Errorf("gemini API call failed: %w", err)
	}
	return resp.Text(), nil
}

func (g *geminiBackend) Model() string { return g.config.Model }

// chatModel is the part of the eino chat model used here.
type chatModel interface {
	Generate(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error)
}

type openAIBackend struct {
	cm     chatModel
	config *Config
}

func newOpenAIBackend(ctx context.Context, config *Config) (*openAIBackend, error) {
	maxTokens := config.MaxTokens
	temperature := config.Temperature
	cm, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		BaseURL:     config.BaseURL,
		APIKey:      config.APIKey,
		Model:       config.Model,
		MaxTokens:   &maxTokens,
		Temperature: &temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create chat model: %w", err)
	}
	return &openAIBackend{cm: cm, config: config}, nil
}

func (o *openAIBackend) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := o.cm.Generate(ctx, []*schema.Message{
		{Role: schema.User, Content: prompt},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	return resp.Content, nil
}

func (o *openAIBackend) Model() string { return o.config.Model }

// httpBackend posts to a generic text-generation endpoint.
type httpBackend struct {
	client *httpclient.Client
	config *Config
}

func newHTTPBackend(config *Config) (*httpBackend, error) {
	if config.BaseURL == "" {
		return nil, errors.New("base URL is required for the http provider")
	}
	return &httpBackend{client: httpclient.NewClient(config.Timeout), config: config}, nil
}

func (h *httpBackend) Generate(ctx context.Context, prompt string) (string, error) {
	headers := map[string]string{}
	if h.config.APIKey != "" {
		headers["Authorization"] = "Bearer " + h.config.APIKey
	}
	var resp httpGenerateResponse
	err := h.client.PostJSON(ctx,
		strings.TrimRight(h.config.BaseURL, "/")+"/api/ai/generate",
		headers,
		httpGenerateRequest{Prompt: prompt, MaxTokens: h.config.MaxTokens, Temperature: h.config.Temperature},
		&resp,
	)
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}

func (h *httpBackend) Model() string {
	if h.config.Model == "" {
		return ProviderHTTP
	}
	return h.config.Model
}
