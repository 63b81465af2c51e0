package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name           string
		raw            string
		wantNormalized string
		wantSet        Set
		wantErr        bool
	}{
		{
			name:           "trims and lowercases",
			raw:            "  Python, SQL, Excel  ",
			wantNormalized: "python, sql, excel",
			wantSet:        Set{"python", "sql", "excel"},
		},
		{
			name:           "keeps duplicates in order",
			raw:            "sql,python,sql",
			wantNormalized: "sql,python,sql",
			wantSet:        Set{"sql", "python", "sql"},
		},
		{
			name:           "drops empty tokens",
			raw:            "python,, sql,",
			wantNormalized: "python,, sql,",
			wantSet:        Set{"python", "sql"},
		},
		{
			name:           "single skill",
			raw:            "Go",
			wantNormalized: "go",
			wantSet:        Set{"go"},
		},
		{name: "empty", raw: "", wantErr: true},
		{name: "whitespace only", raw: " \t\n ", wantErr: true},
		{name: "delimiters only", raw: ", , ,", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			normalized, set, err := Normalize(tt.raw)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrEmptyInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantNormalized, normalized)
			assert.Equal(t, tt.wantSet, set)
		})
	}
}

func TestSetContains(t *testing.T) {
	s := Set{"python", "sql"}
	assert.True(t, s.Contains("sql"))
	assert.False(t, s.Contains("SQL"))
	assert.False(t, s.Contains("excel"))
	assert.Equal(t, "python, sql", s.String())
}

func TestAnalyze(t *testing.T) {
	tests := []struct {
		name         string
		required     string
		present      bool
		user         Set
		wantExisting Set
		wantMissing  Set
		wantPct      float64
		wantTotal    int
	}{
		{
			name:         "two of three",
			required:     "python, sql, tableau",
			present:      true,
			user:         Set{"python", "sql", "excel"},
			wantExisting: Set{"python", "sql"},
			wantMissing:  Set{"tableau"},
			wantPct:      66.7,
			wantTotal:    3,
		},
		{
			name:         "all matched",
			required:     "go,docker",
			present:      true,
			user:         Set{"docker", "go"},
			wantExisting: Set{"go", "docker"},
			wantMissing:  Set{},
			wantPct:      100,
			wantTotal:    2,
		},
		{
			name:         "duplicate required counted twice",
			required:     "sql, sql, python",
			present:      true,
			user:         Set{"sql"},
			wantExisting: Set{"sql", "sql"},
			wantMissing:  Set{"python"},
			wantPct:      66.7,
			wantTotal:    3,
		},
		{
			name:         "required side is not case folded",
			required:     "Python, sql",
			present:      true,
			user:         Set{"python", "sql"},
			wantExisting: Set{"sql"},
			wantMissing:  Set{"Python"},
			wantPct:      50,
			wantTotal:    2,
		},
		{
			name:         "absent required skills",
			present:      false,
			user:         Set{"python"},
			wantExisting: Set{},
			wantMissing:  Set{},
			wantPct:      0,
			wantTotal:    0,
		},
		{
			name:         "empty required string",
			required:     "",
			present:      true,
			user:         Set{"python"},
			wantExisting: Set{},
			wantMissing:  Set{},
			wantPct:      0,
			wantTotal:    0,
		},
		{
			name:         "one of three rounds down",
			required:     "a, b, c",
			present:      true,
			user:         Set{"a"},
			wantExisting: Set{"a"},
			wantMissing:  Set{"b", "c"},
			wantPct:      33.3,
			wantTotal:    3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gap := Analyze(tt.required, tt.present, tt.user)
			assert.Equal(t, tt.wantExisting, gap.Existing)
			assert.Equal(t, tt.wantMissing, gap.Missing)
			assert.Equal(t, tt.wantPct, gap.MatchPercentage)
			assert.Equal(t, tt.wantTotal, gap.TotalRequired())
			assert.Equal(t, gap.TotalRequired(), len(gap.Existing)+len(gap.Missing))
		})
	}
}
