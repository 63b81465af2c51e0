// Package cluster assigns skill vectors to career clusters using a fitted
// KMeans model and names the clusters for display.
package cluster

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
)

// ErrDimensionMismatch is returned when a vector does not match the centroid dimension.
var ErrDimensionMismatch = errors.New("vector dimension does not match model")

// Label identifies a cluster by its centroid index.
type Label int

// Model is a fitted KMeans model reduced to its centroids.
type Model struct {
	centroids [][]float64
}

// Params is the on-disk form of a fitted model.
type Params struct {
	Centroids [][]float64 `json:"centroids"`
}

// Load decodes a JSON model artifact.
func Load(r io.Reader) (*Model, error) {
	var p Params
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return nil, fmt.Errorf("failed to decode model: %w", err)
	}
	return New(p.Centroids)
}

// New builds a model from centroids, which must be non-empty and share one dimension.
func New(centroids [][]float64) (*Model, error) {
	if len(centroids) == 0 {
		return nil, errors.New("model has no centroids")
	}
	dim := len(centroids[0])
	if dim == 0 {
		return nil, errors.New("centroids have zero dimension")
	}
	for i, c := range centroids {
		if len(c) != dim {
			return nil, fmt.Errorf("centroid %d has dimension %d, want %d", i, len(c), dim)
		}
	}
	return &Model{centroids: centroids}, nil
}

// K returns the number of clusters.
func (m *Model) K() int {
	return len(m.centroids)
}

// Dim returns the centroid dimension.
func (m *Model) Dim() int {
	return len(m.centroids[0])
}

// Predict returns the label of the centroid nearest to v by squared
// Euclidean distance. Ties resolve to the lowest label.
func (m *Model) Predict(v []float64) (Label, error) {
	if len(v) != m.Dim() {
		return 0, fmt.Errorf("%w: got %d, want %d", ErrDimensionMismatch, len(v), m.Dim())
	}

	best, bestDist := 0, -1.0
	for i, c := range m.centroids {
		var d float64
		for j, x := range v {
			diff := x - c[j]
			d += diff * diff
		}
		if bestDist < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return Label(best), nil
}

// DefaultName is shown for labels without a curated name.
const DefaultName = "General Professional"

var names = map[Label]string{
	0: "💻 Tech & Software Development",
	1: "📊 Data Science & Analytics",
	2: "🎨 Digital Marketing & Design",
	3: "📈 Business & Management",
	4: "🔒 IT & Cybersecurity",
}

// Name returns the display name of a label.
func Name(l Label) string {
	if name, ok := names[l]; ok {
		return name
	}
	return DefaultName
}

// Entry pairs a label with its display name.
type Entry struct {
	ID   Label  `json:"id"`
	Name string `json:"name"`
}

// Names lists the named clusters ordered by label.
func Names() []Entry {
	entries := make([]Entry, 0, len(names))
	for id, name := range names {
		entries = append(entries, Entry{ID: id, Name: name})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })
	return entries
}

// Entries lists every label of the model with its display name. Labels
// beyond the curated table get DefaultName.
func (m *Model) Entries() []Entry {
	entries := make([]Entry, m.K())
	for i := range entries {
		entries[i] = Entry{ID: Label(i), Name: Name(Label(i))}
	}
	return entries
}
