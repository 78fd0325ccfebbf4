package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/strategy-cli/internal/batch"
	"github.com/sells-group/strategy-cli/internal/render"
)

var (
	batchAdvanced bool
	batchOutDir   string
)

var batchCmd = &cobra.Command{
	Use:   "batch <file-or-glob>...",
	Short: "Generate strategies for many answer files",
	Long:  "Generates one strategy per answer file with bounded concurrency. Forms with an advanced section use the advanced engine. Any failure aborts the whole batch.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		f := outputFormat
		paths, err := expandInputs(args)
		if err != nil {
			return err
		}

		env, err := initEnv(ctx, "batch")
		if err != nil {
			return err
		}
		defer env.Close()

		runner := batch.NewRunner(env.Pipeline, cfg.Batch.MaxConcurrent, batchAdvanced)
		if batchOutDir != "" {
			runner.WithRender(env.Renderer, f)
		}
		results, err := runner.Run(ctx, paths)
		if err != nil {
			return err
		}

		if batchOutDir == "" {
			for _, r := range results {
				fmt.Printf("%s\t%s\t%s\n", r.Path, r.Outcome.Kind, r.Outcome.Run.ID)
			}
			return nil
		}

		if err := os.MkdirAll(batchOutDir, 0o755); err != nil {
			return eris.Wrapf(err, "create %s", batchOutDir)
		}
		for _, r := range results {
			if err := writeOutput(outputPath(batchOutDir, r.Path, f), r.Document); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	batchCmd.Flags().BoolVar(&batchAdvanced, "advanced", false, "use the advanced engine for every file")
	batchCmd.Flags().StringVar(&batchOutDir, "out-dir", "", "write one document per input into this directory")
	rootCmd.AddCommand(batchCmd)
}

// expandInputs resolves glob patterns and keeps plain paths. The result is
// de-duplicated in argument order.
func expandInputs(args []string) ([]string, error) {
	seen := make(map[string]bool)
	var paths []string
	for _, arg := range args {
		matches, err := filepath.Glob(arg)
		if err != nil {
			return nil, eris.Wrapf(err, "bad pattern %q", arg)
		}
		if matches == nil {
			matches = []string{arg}
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				paths = append(paths, m)
			}
		}
	}
	return paths, nil
}

// outputPath maps an input file to its document path in dir.
func outputPath(dir, input string, f render.Format) string {
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return filepath.Join(dir, base+"."+f.Extension())
}
