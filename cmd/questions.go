package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sells-group/strategy-cli/internal/model"
	"github.com/sells-group/strategy-cli/internal/questionnaire"
)

var (
	questionsAdvanced bool
	questionsCountry  string
	questionsJSON     bool
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Print the questionnaire catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := questionnaire.Basic()
		if questionsAdvanced {
			reg = questionnaire.Advanced()
		}
		qs := reg.ForCountry(questionsCountry)

		if questionsJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(qs)
		}
		formatQuestions(os.Stdout, qs)
		return nil
	},
}

func init() {
	questionsCmd.Flags().BoolVar(&questionsAdvanced, "advanced", false, "print the advanced catalog")
	questionsCmd.Flags().StringVar(&questionsCountry, "country", "", "filter option sets for a country")
	questionsCmd.Flags().BoolVar(&questionsJSON, "json", false, "print as JSON")
	rootCmd.AddCommand(questionsCmd)
}

// formatQuestions writes a table of questions to out.
func formatQuestions(out io.Writer, qs []model.Question) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tKIND\tREQUIRED\tOPTIONS")
	_, _ = fmt.Fprintln(w, "--\t----\t--------\t-------")
	for _, q := range qs {
		req := ""
		if q.Required {
			req = "yes"
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", q.ID, q.Kind, req, describeOptions(q))
	}
	_ = w.Flush()
}

func describeOptions(q model.Question) string {
	if len(q.Options) > 0 {
		return strings.Join(q.Options, " | ")
	}
	if q.Min != nil && q.Max != nil {
		return fmt.Sprintf("%g-%g %s", *q.Min, *q.Max, q.Unit)
	}
	if q.Min != nil {
		return fmt.Sprintf(">= %g %s", *q.Min, q.Unit)
	}
	return q.Placeholder
}
