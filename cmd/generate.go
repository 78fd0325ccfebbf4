package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/strategy-cli/internal/questionnaire"
	"github.com/sells-group/strategy-cli/internal/render"
)

var (
	generateInput    string
	generateAdvanced bool
	generateOut      string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a strategy from a questionnaire answer file",
	Long:  "Reads a YAML or JSON answer file and prints the basic strategy, or the advanced 30-day plan with --advanced.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		env, err := initEnv(ctx, "generate")
		if err != nil {
			return err
		}
		defer env.Close()

		doc, err := runGenerate(ctx, env, generateInput, generateAdvanced, string(outputFormat))
		if err != nil {
			return err
		}
		return writeOutput(generateOut, doc)
	},
}

func runGenerate(ctx context.Context, env *pipelineEnv, input string, advanced bool, format string) ([]byte, error) {
	f, err := render.ParseFormat(format)
	if err != nil {
		return nil, err
	}

	form, err := questionnaire.LoadFile(input)
	if err != nil {
		return nil, err
	}

	_, doc, err := env.Pipeline.Run(ctx, form, advanced, env.Renderer, f)
	if err != nil {
		return nil, eris.Wrap(err, "generate")
	}
	return doc, nil
}

func init() {
	generateCmd.Flags().StringVarP(&generateInput, "input", "i", "", "questionnaire answer file (YAML or JSON)")
	generateCmd.Flags().BoolVar(&generateAdvanced, "advanced", false, "generate the advanced 30-day plan")
	generateCmd.Flags().StringVarP(&generateOut, "out", "o", "", "output file (default stdout)")
	_ = generateCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(generateCmd)
}
