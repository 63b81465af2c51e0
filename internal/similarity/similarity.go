// Package similarity scores and ranks vectors by cosine similarity.
package similarity

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrDimensionMismatch is returned when two vectors differ in length.
var ErrDimensionMismatch = errors.New("vector dimensions differ")

// Cosine returns the cosine similarity of a and b. A zero vector on
// either side yields 0.
func Cosine[V ~[]float64](a, b V) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d and %d", ErrDimensionMismatch, len(a), len(b))
	}

	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0, nil
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb)), nil
}

// Scores returns the cosine similarity of query against each row, in row order.
func Scores[V ~[]float64](query V, rows []V) ([]float64, error) {
	scores := make([]float64, len(rows))
	for i, row := range rows {
		s, err := Cosine(query, row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		scores[i] = s
	}
	return scores, nil
}

// Ranked is a row index with its score.
type Ranked struct {
	Index int
	Score float64
}

// Percent returns the score as a percentage rounded to one decimal place.
func (r Ranked) Percent() float64 {
	return Percent(r.Score)
}

// Rank orders every row by descending score. Equal scores keep row order.
func Rank(scores []float64) []Ranked {
	ranked := make([]Ranked, len(scores))
	for i, s := range scores {
		ranked[i] = Ranked{Index: i, Score: s}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// Top returns the first n entries of Rank, or all of them when fewer exist.
func Top(scores []float64, n int) []Ranked {
	ranked := Rank(scores)
	if n >= 0 && n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

// Argmax returns the index of the highest score, preferring the first on
// ties. It returns -1 for no scores.
func Argmax(scores []float64) int {
	best := -1
	for i, s := range scores {
		if best < 0 || s > scores[best] {
			best = i
		}
	}
	return best
}

// Percent converts a similarity to a percentage rounded to one decimal place.
func Percent(score float64) float64 {
	return math.Round(score*1000) / 10
}
