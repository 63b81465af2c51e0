// Package skills normalizes free-text skill lists and computes the gap
// between a user's skills and a job's required skills.
package skills

import (
	"errors"
	"strings"
)

// ErrEmptyInput is returned when the raw input carries no skill at all.
var ErrEmptyInput = errors.New("no skills provided")

// Set is an ordered list of skill tokens. Duplicates are kept and order
// follows the order of entry.
type Set []string

// Normalize trims and lowercases the raw input and splits it into a Set.
// The normalized string is what gets vectorized; the Set is what gets
// compared against required skills.
func Normalize(raw string) (string, Set, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if normalized == "" {
		return "", nil, ErrEmptyInput
	}

	set := Split(normalized)
	if len(set) == 0 {
		// Only delimiters, e.g. ", , ,"
		return "", nil, ErrEmptyInput
	}

	return normalized, set, nil
}

// Split breaks a comma-separated string into trimmed tokens, dropping empty ones.
// No case folding is applied.
func Split(s string) Set {
	parts := strings.Split(s, ",")
	set := make(Set, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		set = append(set, p)
	}
	return set
}

// Contains reports whether skill is present, using exact string comparison.
func (s Set) Contains(skill string) bool {
	for _, v := range s {
		if v == skill {
			return true
		}
	}
	return false
}

// String joins the set back into a comma-separated list.
func (s Set) String() string {
	return strings.Join(s, ", ")
}
