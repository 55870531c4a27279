// internal/workers/generation/brief-formatter/handler.go
package briefformatter

import (
	"context"
	"strconv"

	"creative-brief/internal/common/logger"
	"creative-brief/internal/common/metrics"
	"creative-brief/internal/models"
)

const (
	TaskType = "format-creative-brief"
)

type Handler struct {
	config *Config
	logger logger.Logger
}

func NewHandler(config *Config, log logger.Logger) *Handler {
	if config == nil {
		config = DefaultConfig()
	}
	return &Handler{
		config: config,
		logger: log.WithFields(map[string]interface{}{"taskType": TaskType}),
	}
}

// Execute reconciles the generated text into the canonical sections. It never
// returns an error; the signature matches the other pipeline stages.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	stakeholder := input.Stakeholder
	if _, ok := stakeholder[models.KeyCompanyName]; !ok && h.config.DefaultProduct != "" {
		stakeholder = stakeholder.Merge(map[string]interface{}{
			models.KeyCompanyName: h.config.DefaultProduct,
		})
	}

	sections, matched := reconcile(input.RawText, input.Research, stakeholder)

	output := &Output{Sections: sections}
	for i, s := range sections {
		if matched[i] {
			output.Matched = append(output.Matched, s.ID)
			continue
		}
		output.Fallback = append(output.Fallback, s.ID)
		metrics.SectionFallbacks.WithLabelValues(strconv.Itoa(s.ID)).Inc()
	}

	logger.WithTrace(ctx, h.logger).Info("brief formatted", map[string]interface{}{
		"matched":  len(output.Matched),
		"fallback": len(output.Fallback),
		"rawChars": len(input.RawText),
	})

	return output, nil
}
