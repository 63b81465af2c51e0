package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vijay-prabhu/careerfit/internal/artifact"
	"github.com/vijay-prabhu/careerfit/internal/database"
	"github.com/vijay-prabhu/careerfit/internal/output"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import an industry table into the database",
	Long: `Replace the stored industry table with the rows of a CSV file.

The file needs Job_Title and Required_Skills columns. Set
artifacts.industry_source = "database" to analyze against the stored table.

Examples:
  careerfit import industry_data.csv
  careerfit import status`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

var importStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the last import",
	RunE:  runImportStatus,
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.AddCommand(importStatusCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	// Load configuration
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer log.Sync()

	path, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("failed to resolve path: %w", err)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open industry table: %w", err)
	}
	defer f.Close()

	records, err := artifact.ReadIndustryCSV(f)
	if err != nil {
		return fmt.Errorf("failed to read industry table: %w", err)
	}

	// Open database
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := db.ReplaceIndustryJobs(ctx, records, path); err != nil {
		return fmt.Errorf("failed to import industry table: %w", err)
	}

	log.Info("industry table imported",
		zap.String("source", path),
		zap.Int("records", len(records)),
		zap.String("database", cfg.Database.Path),
	)

	if outputFmt == "json" {
		state, err := db.GetImportState(ctx)
		if err != nil {
			return fmt.Errorf("failed to get import state: %w", err)
		}
		return output.OutputTo(cmd.OutOrStdout(), outputFmt, state)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d industry jobs into %s\n", len(records), cfg.Database.Path)
	if cfg.Artifacts.IndustrySource != "database" {
		fmt.Fprintln(cmd.OutOrStdout(), "Set artifacts.industry_source = \"database\" to analyze against them.")
	}
	return nil
}

func runImportStatus(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	// Load configuration
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer log.Sync()

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	state, err := db.GetImportState(ctx)
	if err != nil {
		return fmt.Errorf("failed to get import state: %w", err)
	}
	return output.OutputTo(cmd.OutOrStdout(), outputFmt, state)
}
