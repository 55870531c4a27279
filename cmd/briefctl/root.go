// cmd/briefctl/root.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"creative-brief/internal/common/config"
	"creative-brief/internal/common/logger"
	"creative-brief/internal/common/observability"
	"creative-brief/internal/common/validation"
	"creative-brief/internal/models"
	"creative-brief/internal/orchestrator"
	briefformatter "creative-brief/internal/workers/generation/brief-formatter"
)

type briefRunner interface {
	Run(ctx context.Context, input models.StakeholderInput, opts orchestrator.RunOptions) (*models.Brief, error)
}

// newRunner builds the pipeline; replaced in tests.
var newRunner = func(ctx context.Context, cfg *config.Config, log logger.Logger) (briefRunner, func(), error) {
	components, err := orchestrator.Build(ctx, cfg, observability.NewNoop(), log)
	if err != nil {
		return nil, nil, err
	}
	return components.Pipeline, components.Close, nil
}

var loadConfig = func(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFromFile(path)
	}
	return config.Load()
}

func NewRoot() *cobra.Command {
	var configPath string
	root := &cobra.Command{
		Use:          "briefctl",
		Short:        "Generate creative briefs from the command line",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "Path to a config YAML file")
	root.AddCommand(
		generateCmd(&configPath),
		previewCmd(),
	)
	return root
}

func generateCmd(configPath *string) *cobra.Command {
	var (
		inputPath string
		renderPDF bool
		outDir    string
		asJSON    bool
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Run research and generation once and print the brief",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			if renderPDF {
				cfg.Render.Enabled = true
			}
			if outDir != "" {
				cfg.Render.OutputDir = outDir
			}

			overrides, err := readInput(inputPath)
			if err != nil {
				return err
			}

			log := logger.NewStructured(cfg.Logging.Level, "console")
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			runner, closeFn, err := newRunner(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer closeFn()

			input := models.DemoStakeholderInput().Merge(cfg.Defaults, overrides)
			brief, err := runner.Run(ctx, input, orchestrator.RunOptions{RenderPDF: renderPDF})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, brief)
			}
			printBrief(out, brief)
			return nil
		},
	}
	cmd.Flags().StringVar(&inputPath, "input", "", "JSON file of stakeholder inputs")
	cmd.Flags().BoolVar(&renderPDF, "pdf", false, "Render the brief to PDF")
	cmd.Flags().StringVar(&outDir, "out", "", "PDF output directory")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the brief as JSON")
	return cmd
}

func previewCmd() *cobra.Command {
	var (
		product string
		asJSON  bool
	)
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Print the 17 sample sections",
		RunE: func(cmd *cobra.Command, args []string) error {
			sections := briefformatter.Preview(product)
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), sections)
			}
			printSections(cmd.OutOrStdout(), sections)
			return nil
		},
	}
	cmd.Flags().StringVar(&product, "product", models.DefaultProductName, "Product name used in titles")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print sections as JSON")
	return cmd
}

func readInput(path string) (map[string]interface{}, error) {
	if path == "" {
		return nil, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var overrides map[string]interface{}
	if err := json.Unmarshal(raw, &overrides); err != nil {
		return nil, fmt.Errorf("%s: stakeholder input must be a JSON object: %w", path, err)
	}
	result, err := validation.ValidateStakeholderInput(overrides)
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		return nil, fmt.Errorf("%s: %s", path, result.Summary())
	}
	return overrides, nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

var markupToText = strings.NewReplacer("<br>", "\n    ", "<strong>", "", "</strong>", "")

func printSections(w io.Writer, sections []models.Section) {
	for _, s := range sections {
		fmt.Fprintf(w, "%d. %s %s\n    %s\n\n", s.ID, s.Icon, s.Title, markupToText.Replace(s.Content))
	}
}

func printBrief(w io.Writer, brief *models.Brief) {
	fmt.Fprintf(w, "CREATIVE BRIEF %s\n", brief.ID)
	fmt.Fprintln(w, strings.Repeat("=", 60))
	printSections(w, brief.Sections)

	r := brief.Research
	fmt.Fprintln(w, "RESEARCH SUMMARY")
	fmt.Fprintln(w, strings.Repeat("-", 60))
	fmt.Fprintf(w, "Competitors analyzed: %d\n", len(r.CompetitorAnalysis.TopCompetitors))
	fmt.Fprintf(w, "Market growth: %s\n", r.MarketTrends.IndustryTrends.GrowthRate)
	fmt.Fprintf(w, "Primary segment: %s\n", r.AudienceInsights.DemographicProfile.PrimarySegment)
	fmt.Fprintf(w, "Research time: %.2f seconds\n", brief.ResearchTime)
	if brief.PDFPath != "" {
		fmt.Fprintf(w, "PDF: %s\n", brief.PDFPath)
	}
}
