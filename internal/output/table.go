package output

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/vijay-prabhu/careerfit/internal/analysis"
	"github.com/vijay-prabhu/careerfit/internal/artifact"
	"github.com/vijay-prabhu/careerfit/internal/cluster"
	"github.com/vijay-prabhu/careerfit/internal/database"
)

// Table writes data as a formatted table to stdout
func Table(data interface{}) error {
	return TableTo(os.Stdout, data)
}

// TableTo writes data as a formatted table to the given writer
func TableTo(w io.Writer, data interface{}) error {
	switch v := data.(type) {
	case *analysis.MatchResult:
		return matchResultDetail(w, v)
	case analysis.Outcome:
		if v.Error != nil {
			_, err := fmt.Fprintln(w, v.Error.Message)
			return err
		}
		return matchResultDetail(w, v.Result)
	case []analysis.BatchItem:
		return batchTable(w, v)
	case []artifact.IndustryRecord:
		return industryTable(w, v)
	case []database.IndustryJob:
		return industryJobsTable(w, v)
	case *database.ImportState:
		return importStateDetail(w, v)
	case []cluster.Entry:
		return clustersTable(w, v)
	default:
		return fmt.Errorf("unsupported data type for table output: %T", data)
	}
}

func matchResultDetail(w io.Writer, r *analysis.MatchResult) error {
	fmt.Fprintf(w, "Career Cluster:  %s\n", r.ClusterName)
	fmt.Fprintf(w, "Best Job:        %s\n", r.BestJob)
	fmt.Fprintf(w, "Skill Match:     %s (%d of %d required skills)\n",
		formatPercent(r.MatchPercentage), len(r.ExistingSkills), r.TotalRequired)
	fmt.Fprintf(w, "Your Skills:     %s\n", joinOrDash(r.UserSkills))
	fmt.Fprintf(w, "Skills You Have: %s\n", joinOrDash(r.ExistingSkills))
	fmt.Fprintf(w, "Skills To Learn: %s\n", joinOrDash(r.MissingSkills))

	if len(r.TopMatches) == 0 {
		return nil
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Top Matches:")

	rows := make([][]string, len(r.TopMatches))
	for i, m := range r.TopMatches {
		rows[i] = []string{
			strconv.Itoa(i + 1),
			truncate(m.JobTitle, 40),
			formatPercent(m.Similarity),
			truncate(m.RequiredSkills, 50),
		}
	}
	return renderTable(w, []string{"#", "JOB TITLE", "SIMILARITY", "REQUIRED SKILLS"}, rows)
}

func batchTable(w io.Writer, items []analysis.BatchItem) error {
	if len(items) == 0 {
		fmt.Fprintln(w, "No inputs found.")
		return nil
	}

	rows := make([][]string, len(items))
	failed := 0
	for i, item := range items {
		row := []string{strconv.Itoa(i + 1), truncate(item.Input, 35)}
		if item.Error != nil {
			failed++
			row = append(row, "-", "-", item.Error.Message)
		} else {
			row = append(row,
				truncate(item.Result.BestJob, 30),
				formatPercent(item.Result.MatchPercentage),
				item.Result.ClusterName,
			)
		}
		rows[i] = row
	}

	if err := renderTable(w, []string{"#", "SKILLS", "BEST JOB", "MATCH", "CLUSTER"}, rows); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\n%d analyzed, %d failed\n", len(items)-failed, failed)
	return err
}

func industryTable(w io.Writer, records []artifact.IndustryRecord) error {
	if len(records) == 0 {
		fmt.Fprintln(w, "No industry jobs found.")
		return nil
	}

	rows := make([][]string, len(records))
	for i, rec := range records {
		skills := "-"
		if rec.HasSkills {
			skills = truncate(rec.RequiredSkills, 60)
		}
		rows[i] = []string{strconv.Itoa(i + 1), truncate(rec.JobTitle, 40), skills}
	}
	return renderTable(w, []string{"#", "JOB TITLE", "REQUIRED SKILLS"}, rows)
}

func industryJobsTable(w io.Writer, jobs []database.IndustryJob) error {
	records := make([]artifact.IndustryRecord, len(jobs))
	for i, j := range jobs {
		records[i] = j.Record()
	}
	return industryTable(w, records)
}

func importStateDetail(w io.Writer, s *database.ImportState) error {
	if s.LastImportAt == nil {
		_, err := fmt.Fprintln(w, "No import has been run yet.")
		return err
	}

	source := "-"
	if s.Source != nil {
		source = *s.Source
	}
	fmt.Fprintf(w, "Last import: %s\n", s.LastImportAt.Local().Format(time.DateTime))
	fmt.Fprintf(w, "Source:      %s\n", source)
	_, err := fmt.Fprintf(w, "Records:     %d\n", s.RecordsImported)
	return err
}

func clustersTable(w io.Writer, entries []cluster.Entry) error {
	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = []string{strconv.Itoa(int(e.ID)), e.Name}
	}
	return renderTable(w, []string{"ID", "CLUSTER"}, rows)
}

func renderTable(w io.Writer, header []string, rows [][]string) error {
	table := tablewriter.NewWriter(w)
	table.Header(header)
	if err := table.Bulk(rows); err != nil {
		return fmt.Errorf("failed to build table: %w", err)
	}
	return table.Render()
}

func formatPercent(p float64) string {
	return strconv.FormatFloat(p, 'f', 1, 64) + "%"
}

func joinOrDash(s []string) string {
	if len(s) == 0 {
		return "-"
	}
	return strings.Join(s, ", ")
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
