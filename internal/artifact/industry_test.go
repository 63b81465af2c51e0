package artifact

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadIndustryCSV(t *testing.T) {
	doc := "\ufeffJob_Title,Required_Skills,Salary\n" +
		"Data Analyst,\"python, sql, tableau\",70000\n" +
		"Generalist,,50000\n" +
		"\n" +
		"Designer,\"Figma, Photoshop\",60000\n"

	records, err := ReadIndustryCSV(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, IndustryRecord{JobTitle: "Data Analyst", RequiredSkills: "python, sql, tableau", HasSkills: true}, records[0])
	assert.Equal(t, IndustryRecord{JobTitle: "Generalist"}, records[1])
	// Required skills are kept verbatim
	assert.Equal(t, "Figma, Photoshop", records[2].RequiredSkills)
}

func TestReadIndustryCSVHeaderVariants(t *testing.T) {
	doc := "required skills,JOB TITLE\n\"go, sql\",Backend Developer\n"

	records, err := ReadIndustryCSV(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Backend Developer", records[0].JobTitle)
	assert.Equal(t, "go, sql", records[0].RequiredSkills)
}

func TestReadIndustryCSVErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty document", ""},
		{"header only", "Job_Title,Required_Skills\n"},
		{"missing skills column", "Job_Title,Salary\nAnalyst,1\n"},
		{"missing title", "Job_Title,Required_Skills\n,\"python\"\n"},
		{"unterminated quote", "Job_Title,Required_Skills\nAnalyst,\"python\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadIndustryCSV(strings.NewReader(tt.doc))
			assert.Error(t, err)
		})
	}

	_, err := ReadIndustryCSV(strings.NewReader("Job_Title,Required_Skills\n"))
	assert.ErrorIs(t, err, ErrEmptyIndustry)
}
