package analysis

import (
	"github.com/vijay-prabhu/careerfit/internal/cluster"
	"github.com/vijay-prabhu/careerfit/internal/skills"
)

// Match is one ranked industry job.
type Match struct {
	JobTitle string `json:"job_title"`
	// Similarity is a percentage rounded to one decimal place.
	Similarity     float64 `json:"similarity"`
	RequiredSkills string  `json:"required_skills"`
}

// MatchResult is the full analysis of one skill list.
type MatchResult struct {
	BestJob         string        `json:"best_job"`
	MatchPercentage float64       `json:"match_percentage"`
	MissingSkills   skills.Set    `json:"missing_skills"`
	ExistingSkills  skills.Set    `json:"existing_skills"`
	TotalRequired   int           `json:"total_required"`
	ClusterName     string        `json:"cluster_name"`
	ClusterID       cluster.Label `json:"cluster_id"`
	TopMatches      []Match       `json:"top_matches"`
	UserSkills      skills.Set    `json:"user_skills"`
}

// Outcome carries exactly one of Result or Error.
type Outcome struct {
	Result *MatchResult `json:"result,omitempty"`
	Error  *Error       `json:"error,omitempty"`
}

// OK reports whether the outcome holds a result.
func (o Outcome) OK() bool {
	return o.Result != nil
}

// Err returns the outcome's error as an error value, or nil.
func (o Outcome) Err() error {
	if o.Error == nil {
		return nil
	}
	return o.Error
}
