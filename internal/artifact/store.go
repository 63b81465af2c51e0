package artifact

import (
	"context"
	"fmt"
	"io"

	"github.com/vijay-prabhu/careerfit/internal/cluster"
	"github.com/vijay-prabhu/careerfit/internal/vectorize"
)

// Artifact names used in LoadError.
const (
	NameVectorizer = "vectorizer"
	NameModel      = "model"
	NameIndustry   = "industry table"
)

// Store holds the loaded artifacts. It is read-only after construction
// and safe for concurrent use.
type Store struct {
	vectorizer *vectorize.Vectorizer
	model      *cluster.Model
	industry   []IndustryRecord
	vectors    []vectorize.Vector
}

// NewStore checks that the artifacts agree on dimension and vectorizes
// the industry table once.
func NewStore(v *vectorize.Vectorizer, m *cluster.Model, industry []IndustryRecord) (*Store, error) {
	if v.Dim() != m.Dim() {
		return nil, fmt.Errorf("vectorizer dimension %d does not match model dimension %d", v.Dim(), m.Dim())
	}
	if len(industry) == 0 {
		return nil, ErrEmptyIndustry
	}

	texts := make([]string, len(industry))
	for i, rec := range industry {
		// Missing values vectorize as the empty string
		if rec.HasSkills {
			texts[i] = rec.RequiredSkills
		}
	}

	return &Store{
		vectorizer: v,
		model:      m,
		industry:   industry,
		vectors:    v.TransformBatch(texts),
	}, nil
}

// Vectorizer returns the fitted vectorizer.
func (s *Store) Vectorizer() *vectorize.Vectorizer { return s.vectorizer }

// Model returns the clustering model.
func (s *Store) Model() *cluster.Model { return s.model }

// Industry returns the industry table. Callers must not modify it.
func (s *Store) Industry() []IndustryRecord { return s.industry }

// Vectors returns the industry vectors, aligned with Industry.
func (s *Store) Vectors() []vectorize.Vector { return s.vectors }

// Len returns the number of industry records.
func (s *Store) Len() int { return len(s.industry) }

// Options names the artifacts to load.
type Options struct {
	Vectorizer string
	Model      string
	Industry   string

	// Lister, when set, supplies the industry table instead of the Industry file.
	Lister IndustryLister
}

// Load reads every artifact from src and builds a Store. Any failure is
// returned as a *LoadError.
func Load(ctx context.Context, src Source, opts Options) (*Store, error) {
	vec, err := load(ctx, src, NameVectorizer, opts.Vectorizer, vectorize.Load)
	if err != nil {
		return nil, err
	}

	model, err := load(ctx, src, NameModel, opts.Model, cluster.Load)
	if err != nil {
		return nil, err
	}

	var industry []IndustryRecord
	if opts.Lister != nil {
		industry, err = opts.Lister.IndustryRecords(ctx)
		if err == nil && len(industry) == 0 {
			err = ErrEmptyIndustry
		}
		if err != nil {
			return nil, &LoadError{Artifact: NameIndustry, Location: "database", Err: err}
		}
	} else {
		industry, err = load(ctx, src, NameIndustry, opts.Industry, ReadIndustryCSV)
		if err != nil {
			return nil, err
		}
	}

	store, err := NewStore(vec, model, industry)
	if err != nil {
		return nil, &LoadError{Artifact: "artifacts", Location: src.Location(""), Err: err}
	}
	return store, nil
}

func load[T any](ctx context.Context, src Source, artifact, name string, decode func(io.Reader) (T, error)) (T, error) {
	var zero T

	rc, err := src.Open(ctx, name)
	if err != nil {
		return zero, &LoadError{Artifact: artifact, Location: src.Location(name), Err: err}
	}
	defer rc.Close()

	v, err := decode(rc)
	if err != nil {
		return zero, &LoadError{Artifact: artifact, Location: src.Location(name), Err: err}
	}
	return v, nil
}
