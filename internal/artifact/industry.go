package artifact

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// IndustryRecord is one reference job.
type IndustryRecord struct {
	JobTitle       string `json:"job_title"`
	RequiredSkills string `json:"required_skills"`
	// HasSkills is false when the job carries no required-skills value at all.
	HasSkills bool `json:"has_required_skills"`
}

// IndustryLister supplies the industry table from somewhere other than a file.
type IndustryLister interface {
	IndustryRecords(ctx context.Context) ([]IndustryRecord, error)
}

// ErrEmptyIndustry is returned when the industry table has no rows.
var ErrEmptyIndustry = errors.New("industry table is empty")

const (
	columnJobTitle       = "job title"
	columnRequiredSkills = "required skills"
)

// ReadIndustryCSV parses an industry table with Job_Title and
// Required_Skills columns. Header matching ignores case and treats
// underscores as spaces; other columns are ignored. An empty
// Required_Skills cell is read as a missing value.
func ReadIndustryCSV(r io.Reader) ([]IndustryRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyIndustry
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	titleCol, skillsCol := -1, -1
	for i, name := range header {
		switch headerKey(name) {
		case columnJobTitle:
			titleCol = i
		case columnRequiredSkills:
			skillsCol = i
		}
	}
	if titleCol < 0 || skillsCol < 0 {
		return nil, fmt.Errorf("header must contain Job_Title and Required_Skills, got %v", header)
	}

	var records []IndustryRecord
	for line := 2; ; line++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}

		rec := IndustryRecord{}
		if titleCol < len(row) {
			rec.JobTitle = strings.TrimSpace(row[titleCol])
		}
		if skillsCol < len(row) && strings.TrimSpace(row[skillsCol]) != "" {
			rec.RequiredSkills = row[skillsCol]
			rec.HasSkills = true
		}
		if rec.JobTitle == "" && !rec.HasSkills {
			continue
		}
		if rec.JobTitle == "" {
			return nil, fmt.Errorf("line %d: missing job title", line)
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, ErrEmptyIndustry
	}
	return records, nil
}

func headerKey(name string) string {
	name = strings.TrimPrefix(name, "\ufeff")
	name = strings.ReplaceAll(name, "_", " ")
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}
