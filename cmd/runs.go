package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/strategy-cli/internal/model"
	"github.com/sells-group/strategy-cli/internal/render"
	"github.com/sells-group/strategy-cli/internal/store"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Inspect generation history",
	Long:  "Commands for listing, viewing, and summarizing stored strategy generations.",
}

// -- runs list --

var runsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored generations",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		kind, _ := cmd.Flags().GetString("kind")
		business, _ := cmd.Flags().GetString("business")
		limit, _ := cmd.Flags().GetInt("limit")
		offset, _ := cmd.Flags().GetInt("offset")

		runs, err := st.ListRuns(ctx, store.RunFilter{
			Kind:         model.RunKind(kind),
			BusinessName: business,
			Limit:        limit,
			Offset:       offset,
		})
		if err != nil {
			return eris.Wrap(err, "runs list")
		}

		if len(runs) == 0 {
			fmt.Fprintln(os.Stderr, "No runs found.")
			return nil
		}

		formatRunsList(os.Stdout, runs)
		return nil
	},
}

// -- runs show --

var runsShowCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Show a stored generation",
	Long:  "Prints the stored run as JSON, or re-renders its strategy with --format.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		run, err := st.GetRun(ctx, args[0])
		if err != nil {
			return eris.Wrap(err, "runs show")
		}

		if !cmd.Flags().Changed("format") {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(run)
		}

		doc, err := renderRun(ctx, render.NewRenderer(render.NewPDFRenderer(cfg.Render)), run, outputFormat)
		if err != nil {
			return err
		}
		out, _ := cmd.Flags().GetString("out")
		return writeOutput(out, doc)
	},
}

// -- runs stats --

var runsStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate generation statistics",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		runs, err := st.ListRuns(ctx, store.RunFilter{Limit: 10000})
		if err != nil {
			return eris.Wrap(err, "runs stats")
		}

		formatRunStats(os.Stdout, computeRunStats(runs))
		return nil
	},
}

func init() {
	runsListCmd.Flags().String("kind", "", "filter by kind (basic, advanced)")
	runsListCmd.Flags().String("business", "", "filter by business name")
	runsListCmd.Flags().Int("limit", 50, "max number of runs to display")
	runsListCmd.Flags().Int("offset", 0, "number of runs to skip")

	runsShowCmd.Flags().StringP("out", "o", "", "output file for --format (default stdout)")

	runsCmd.AddCommand(runsListCmd)
	runsCmd.AddCommand(runsShowCmd)
	runsCmd.AddCommand(runsStatsCmd)
	rootCmd.AddCommand(runsCmd)
}

// renderRun decodes a stored result and renders it in format f.
func renderRun(ctx context.Context, r *render.Renderer, run *model.Run, f render.Format) ([]byte, error) {
	if run.Kind == model.RunKindAdvanced {
		var res model.AdvancedStrategyResult
		if err := json.Unmarshal(run.Result, &res); err != nil {
			return nil, eris.Wrapf(err, "decode run %s", run.ID)
		}
		return r.Advanced(ctx, f, &res)
	}
	var res model.StrategyResult
	if err := json.Unmarshal(run.Result, &res); err != nil {
		return nil, eris.Wrapf(err, "decode run %s", run.ID)
	}
	return r.Basic(ctx, f, &res)
}

// runStats holds aggregate statistics computed from a set of runs.
type runStats struct {
	Total      int
	Basic      int
	Advanced   int
	Estimated  int
	Businesses int
}

// computeRunStats computes aggregate statistics from a list of runs.
func computeRunStats(runs []model.Run) runStats {
	s := runStats{Total: len(runs)}
	businesses := make(map[string]bool)
	for _, r := range runs {
		switch r.Kind {
		case model.RunKindAdvanced:
			s.Advanced++
			if r.WasEstimated {
				s.Estimated++
			}
		default:
			s.Basic++
		}
		businesses[r.BusinessName] = true
	}
	s.Businesses = len(businesses)
	return s
}

// formatRunsList writes a tabular list of runs to w.
func formatRunsList(out io.Writer, runs []model.Run) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tBUSINESS\tKIND\tESTIMATED\tCREATED")
	_, _ = fmt.Fprintln(w, "--\t--------\t----\t---------\t-------")

	for _, r := range runs {
		business := r.BusinessName
		if len(business) > 30 {
			business = business[:27] + "..."
		}
		estimated := ""
		if r.WasEstimated {
			estimated = "yes"
		}

		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			truncateID(r.ID),
			business,
			r.Kind,
			estimated,
			r.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
	_ = w.Flush()
}

// formatRunStats writes aggregate stats to w.
func formatRunStats(out io.Writer, s runStats) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(w, "Total runs:\t%d\n", s.Total)
	_, _ = fmt.Fprintf(w, "Basic:\t%d\n", s.Basic)
	_, _ = fmt.Fprintf(w, "Advanced:\t%d\n", s.Advanced)
	_, _ = fmt.Fprintf(w, "  Estimated:\t%d\n", s.Estimated)
	_, _ = fmt.Fprintf(w, "Businesses:\t%d\n", s.Businesses)
	_ = w.Flush()
}

// truncateID returns the first 8 characters of a UUID for compact display.
func truncateID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
