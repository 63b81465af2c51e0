package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vijay-prabhu/careerfit/internal/artifact"
	"github.com/vijay-prabhu/careerfit/internal/database"
	"github.com/vijay-prabhu/careerfit/internal/output"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "List industry jobs",
	Long: `List the industry jobs skill lists are ranked against.

Jobs are read from the configured industry source (file or database).

Examples:
  careerfit jobs                    # List all jobs
  careerfit jobs --title=engineer   # Jobs whose title contains "engineer"
  careerfit jobs --limit=10 -o json # Output as JSON`,
	RunE: runJobs,
}

var (
	jobsTitle string
	jobsLimit int
)

func init() {
	rootCmd.AddCommand(jobsCmd)

	jobsCmd.Flags().StringVar(&jobsTitle, "title", "", "Filter by job title (case-insensitive substring)")
	jobsCmd.Flags().IntVar(&jobsLimit, "limit", 0, "Maximum number of results")
}

func runJobs(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	// Load configuration
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer log.Sync()

	if cfg.Artifacts.IndustrySource == "database" {
		db, err := database.Open(cfg.Database.Path)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close()

		opts := database.ListOptions{Limit: jobsLimit}
		if jobsTitle != "" {
			opts.Title = &jobsTitle
		}

		jobs, err := db.ListIndustryJobs(ctx, opts)
		if err != nil {
			return fmt.Errorf("failed to list jobs: %w", err)
		}
		if len(jobs) == 0 && outputFmt != "json" {
			fmt.Fprintln(cmd.OutOrStdout(), "No industry jobs found. Run 'careerfit import <file>' to load some.")
			return nil
		}
		return output.OutputTo(cmd.OutOrStdout(), outputFmt, jobs)
	}

	records, err := loadIndustry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to load industry table: %w", err)
	}
	return output.OutputTo(cmd.OutOrStdout(), outputFmt, filterJobs(records, jobsTitle, jobsLimit))
}

// filterJobs keeps records whose title contains title, up to limit
func filterJobs(records []artifact.IndustryRecord, title string, limit int) []artifact.IndustryRecord {
	title = strings.ToLower(title)
	filtered := make([]artifact.IndustryRecord, 0, len(records))
	for _, rec := range records {
		if title != "" && !strings.Contains(strings.ToLower(rec.JobTitle), title) {
			continue
		}
		filtered = append(filtered, rec)
		if limit > 0 && len(filtered) == limit {
			break
		}
	}
	return filtered
}
