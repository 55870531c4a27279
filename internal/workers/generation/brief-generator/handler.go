// internal/workers/generation/brief-generator/handler.go
package briefgenerator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"creative-brief/internal/common/logger"
)

const (
	TaskType = "generate-brief-text"
)

var (
	ErrGenerationFailed  = errors.New("GENERATION_FAILED")
	ErrGenerationTimeout = errors.New("GENERATION_TIMEOUT")
)

type Handler struct {
	config  *Config
	backend Backend
	logger  logger.Logger
}

func NewHandler(ctx context.Context, config *Config, log logger.Logger) (*Handler, error) {
	backend, err := NewBackend(ctx, config)
	if err != nil {
		return nil, err
	}
	return NewHandlerWithBackend(config, backend, log), nil
}

func NewHandlerWithBackend(config *Config, backend Backend, log logger.Logger) *Handler {
	return &Handler{
		config:  config,
		backend: backend,
		logger:  log.WithFields(map[string]interface{}{"taskType": TaskType, "model": backend.Model()}),
	}
}

// Execute makes exactly one model call. It is not retried.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	prompt := BuildPrompt(input.Stakeholder, input.Research)
	log := logger.WithTrace(ctx, h.logger)

	if h.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.config.Timeout)
		defer cancel()
	}

	start := time.Now()
	text, err := h.backend.Generate(ctx, prompt)
	elapsed := time.Since(start)

	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			log.Error("brief generation timed out", map[string]interface{}{"elapsedMs": elapsed.Milliseconds()})
			return nil, fmt.Errorf("%w: %v", ErrGenerationTimeout, err)
		}
		log.Error("brief generation failed", map[string]interface{}{"error": err})
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	if strings.TrimSpace(text) == "" {
		log.Error("model returned no text", nil)
		return nil, fmt.Errorf("%w: empty response", ErrGenerationFailed)
	}

	log.Info("brief text generated", map[string]interface{}{
		"promptChars": len(prompt),
		"textChars":   len(text),
		"elapsedMs":   elapsed.Milliseconds(),
	})

	return &Output{
		Text:        text,
		Model:       h.backend.Model(),
		PromptChars: len(prompt),
	}, nil
}
