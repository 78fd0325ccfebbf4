package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/strategy-cli/internal/config"
	"github.com/sells-group/strategy-cli/internal/render"
)

var (
	cfg *config.Config

	// formatFlag is the raw --format value; outputFormat is its parsed form,
	// shared by every command that writes a strategy document.
	formatFlag   string
	outputFormat render.Format
)

var rootCmd = &cobra.Command{
	Use:   "strategy-cli",
	Short: "Deterministic social media strategy generator",
	Long:  "Validates questionnaire answers and produces a basic strategy or an advanced 30-day action plan, as JSON, Markdown, HTML, PDF or XLSX.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		f, err := render.ParseFormat(formatFlag)
		if err != nil {
			return err
		}
		outputFormat = f

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", string(render.FormatJSON), "document format (json, markdown, html, pdf, xlsx)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
