package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vijay-prabhu/careerfit/internal/output"
)

var (
	analyzeSkills string
	analyzeTopN   int
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [skills...]",
	Short: "Analyze a skill list",
	Long: `Analyze a comma-separated list of skills.

Shows the career cluster, the best matching industry job, the skills you
already have and the ones to learn, and the top jobs by similarity.

Examples:
  careerfit analyze "python, sql, excel"
  careerfit analyze python sql excel
  careerfit analyze --skills "java, spring" --top 3 -o json`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVarP(&analyzeSkills, "skills", "s", "", "comma-separated skills")
	analyzeCmd.Flags().IntVarP(&analyzeTopN, "top", "n", 0, "number of top matches (default: analysis.top_n)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	raw := analyzeSkills
	if raw == "" {
		raw = strings.Join(args, ", ")
	}

	// Load configuration
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer log.Sync()

	// Load artifacts
	analyzer, err := newAnalyzer(cmd.Context(), cfg, log, analyzeTopN)
	if err != nil {
		return fmt.Errorf("failed to load artifacts: %w", err)
	}

	outcome := analyzer.Evaluate(raw)

	// JSON output always carries the outcome, failures included
	if outputFmt == "json" {
		if err := output.OutputTo(cmd.OutOrStdout(), outputFmt, outcome); err != nil {
			return err
		}
		return outcome.Err()
	}

	if !outcome.OK() {
		return outcome.Err()
	}
	return output.OutputTo(cmd.OutOrStdout(), outputFmt, outcome.Result)
}
