package skills

import "math"

// Gap is the comparison of a job's required skills against a user's skills.
type Gap struct {
	Required        Set     `json:"required"`
	Existing        Set     `json:"existing"`
	Missing         Set     `json:"missing"`
	MatchPercentage float64 `json:"match_percentage"`
}

// TotalRequired returns the number of parsed required skills, duplicates included.
func (g Gap) TotalRequired() int {
	return len(g.Required)
}

// Analyze compares the required skills of a job with the user's skills.
//
// present is false when the job has no required-skills value at all; the
// required list is then empty. Matching is exact: required tokens are not
// case folded, and a required skill listed twice counts twice.
func Analyze(required string, present bool, user Set) Gap {
	gap := Gap{
		Required: Set{},
		Existing: Set{},
		Missing:  Set{},
	}
	if present {
		gap.Required = Split(required)
	}

	have := make(map[string]struct{}, len(user))
	for _, s := range user {
		have[s] = struct{}{}
	}

	for _, skill := range gap.Required {
		if _, ok := have[skill]; ok {
			gap.Existing = append(gap.Existing, skill)
		} else {
			gap.Missing = append(gap.Missing, skill)
		}
	}

	if len(gap.Required) > 0 {
		gap.MatchPercentage = roundTenth(100 * float64(len(gap.Existing)) / float64(len(gap.Required)))
	}

	return gap
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
