// internal/workers/delivery/render-pdf/handler.go
package renderpdf

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"creative-brief/internal/common/logger"
	"creative-brief/internal/common/metrics"
	"creative-brief/internal/models"
)

const (
	TaskType = "render-brief-pdf"
)

var (
	ErrRenderFailed  = errors.New("PDF_RENDER_FAILED")
	ErrNothingToDraw = errors.New("PDF_EMPTY_BRIEF")
)

type Handler struct {
	config *Config
	logger logger.Logger
	now    func() time.Time
}

func NewHandler(config *Config, log logger.Logger) *Handler {
	if config == nil {
		config = LoadConfig()
	}
	return &Handler{
		config: config,
		logger: log.WithFields(map[string]interface{}{"taskType": TaskType}),
		now:    time.Now,
	}
}

// Execute renders the brief to disk and returns the file path. Failures are
// logged and reported as ("", false); they never abort the caller.
func (h *Handler) Execute(ctx context.Context, input *Input) (string, bool) {
	log := logger.WithTrace(ctx, h.logger)

	if !h.config.Enabled {
		metrics.PDFRenders.WithLabelValues("disabled").Inc()
		return "", false
	}

	path, err := h.renderFile(ctx, input)
	if err != nil {
		metrics.PDFRenders.WithLabelValues("failed").Inc()
		log.Warn("PDF rendering failed", map[string]interface{}{"error": err.Error()})
		return "", false
	}

	metrics.PDFRenders.WithLabelValues("success").Inc()
	log.Info("PDF rendered", map[string]interface{}{"path": path})
	return path, true
}

// Render writes the PDF to w.
func (h *Handler) Render(ctx context.Context, input *Input, w io.Writer) error {
	doc, err := h.build(ctx, input)
	if err != nil {
		return err
	}
	if err := doc.write(w); err != nil {
		return fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}
	return nil
}

func (h *Handler) renderFile(ctx context.Context, input *Input) (string, error) {
	doc, err := h.build(ctx, input)
	if err != nil {
		return "", err
	}

	path := input.OutputPath
	if path == "" {
		path = filepath.Join(h.config.OutputDir, h.fileName(input.Stakeholder))
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("%w: %v", ErrRenderFailed, err)
		}
	}
	if err := doc.writeFile(path); err != nil {
		return "", fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}
	return path, nil
}

func (h *Handler) build(ctx context.Context, input *Input) (*document, error) {
	if input == nil {
		return nil, ErrNothingToDraw
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	blocks := blocksFromSections(input.Sections)
	if len(blocks) == 0 {
		blocks = segmentRaw(input.RawText)
	}
	if len(blocks) == 0 {
		return nil, ErrNothingToDraw
	}

	now := h.now()
	company := input.Stakeholder.String(models.KeyCompanyName, h.config.Brand+" AI Next")

	doc := newDocument(h.config.Brand)
	doc.header()
	doc.title(company)
	doc.projectTable(company, now)
	for _, b := range blocks {
		doc.section(b)
	}
	doc.researchInsights(input.Research)
	doc.footer(formatSeconds(input.ResearchTime), now)

	if err := doc.pdf.Error(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}
	return doc, nil
}

func (h *Handler) fileName(input models.StakeholderInput) string {
	company := input.String(models.KeyCompanyName, h.config.Brand)
	company = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '/', '\\':
			return '_'
		}
		return r
	}, company)
	return fmt.Sprintf("creative_brief_%s_%s.pdf", company, h.now().Format("20060102_150405"))
}

func blocksFromSections(sections []models.Section) []block {
	out := make([]block, 0, len(sections))
	for _, s := range sections {
		out = append(out, block{Title: s.Title, Lines: parseMarkup(s.Content)})
	}
	return out
}

func formatSeconds(v float64) string {
	if v <= 0 {
		return "N/A"
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}
