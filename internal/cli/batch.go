package cli

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vijay-prabhu/careerfit/internal/analysis"
	"github.com/vijay-prabhu/careerfit/internal/output"
)

var (
	batchWorkers int
	batchQuiet   bool
)

var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Analyze many skill lists",
	Long: `Analyze every skill list in a file.

Plain text files hold one comma-separated skill list per line; blank lines
and lines starting with # are skipped. CSV files must have a "skills"
column. Use - to read lines from stdin.

Failed inputs are reported per row and do not stop the run.

Examples:
  careerfit batch candidates.txt
  careerfit batch interns.csv --workers 8 -o json
  cat lists.txt | careerfit batch -`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVarP(&batchWorkers, "workers", "w", 0, "concurrent analyses (default: analysis.workers)")
	batchCmd.Flags().BoolVarP(&batchQuiet, "quiet", "q", false, "suppress progress output")
}

func runBatch(cmd *cobra.Command, args []string) error {
	inputs, err := readBatchFile(args[0])
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		return fmt.Errorf("no skill lists found in %s", args[0])
	}

	// Load configuration
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer log.Sync()

	analyzer, err := newAnalyzer(cmd.Context(), cfg, log, 0)
	if err != nil {
		return fmt.Errorf("failed to load artifacts: %w", err)
	}

	workers := batchWorkers
	if workers <= 0 {
		workers = cfg.Analysis.Workers
	}

	term := NewTerminal(os.Stderr)
	var progress analysis.ProgressCallback
	if !batchQuiet && term.IsTerminal {
		var mu sync.Mutex
		progress = func(p analysis.Progress) {
			mu.Lock()
			defer mu.Unlock()
			term.ClearLine()
			term.Printf("%s %s %d/%d (%d%%)", term.Spinner(), term.Color(ColorCyan, "Analyzing"), p.Current, p.Total, p.Percentage())
			if eta := FormatETA(p.ETA()); eta != "" {
				term.Printf(term.Color(ColorGray, " ETA %s"), eta)
			}
		}
	}

	start := time.Now()
	items, err := analyzer.EvaluateAll(cmd.Context(), inputs, workers, progress)
	if progress != nil {
		term.ClearLine()
	}
	if err != nil {
		return fmt.Errorf("batch interrupted: %w", err)
	}

	failed := 0
	for _, item := range items {
		if !item.OK() {
			failed++
		}
	}
	log.Info("batch complete",
		zap.Int("inputs", len(items)),
		zap.Int("failed", failed),
		zap.Int("workers", workers),
		zap.Duration("duration", time.Since(start)),
	)

	if err := output.OutputTo(cmd.OutOrStdout(), outputFmt, items); err != nil {
		return err
	}

	if !batchQuiet {
		summary := term.Color(ColorGreen, fmt.Sprintf("Analyzed %d skill lists", len(items)))
		if failed > 0 {
			summary += term.Color(ColorYellow, fmt.Sprintf(" (%d failed)", failed))
		}
		fmt.Fprintln(cmd.ErrOrStderr(), summary)
	}
	return nil
}

// readBatchFile reads skill lists from path, or stdin when path is "-"
func readBatchFile(path string) ([]string, error) {
	if path == "-" {
		return readBatchLines(os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return readBatchCSV(f)
	}
	return readBatchLines(f)
}

// readBatchLines returns one input per non-blank, non-comment line
func readBatchLines(r io.Reader) ([]string, error) {
	var inputs []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		inputs = append(inputs, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return inputs, nil
}

// readBatchCSV returns the skills column of every row. Empty cells are kept
// so they show up as failed rows.
func readBatchCSV(r io.Reader) ([]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	col := -1
	for i, name := range header {
		if strings.EqualFold(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")), "skills") {
			col = i
			break
		}
	}
	if col < 0 {
		return nil, fmt.Errorf("csv input has no 'skills' column")
	}

	var inputs []string
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv row: %w", err)
		}
		if col < len(row) {
			inputs = append(inputs, row[col])
		} else {
			inputs = append(inputs, "")
		}
	}
	return inputs, nil
}
