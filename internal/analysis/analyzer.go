// Package analysis runs the skill analysis pipeline: normalize the input,
// vectorize it, assign a career cluster, rank industry jobs by similarity
// and compute the skill gap against the best match.
package analysis

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vijay-prabhu/careerfit/internal/artifact"
	"github.com/vijay-prabhu/careerfit/internal/cluster"
	"github.com/vijay-prabhu/careerfit/internal/logger"
	"github.com/vijay-prabhu/careerfit/internal/similarity"
	"github.com/vijay-prabhu/careerfit/internal/skills"
)

// DefaultTopN is the number of ranked matches returned.
const DefaultTopN = 5

// Analyzer analyzes skill lists against a loaded artifact store.
// It holds no mutable state and is safe for concurrent use.
type Analyzer struct {
	store  *artifact.Store
	topN   int
	logger *zap.Logger
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithTopN sets how many ranked matches are returned. Values below 1 are ignored.
func WithTopN(n int) Option {
	return func(a *Analyzer) {
		if n > 0 {
			a.topN = n
		}
	}
}

// WithLogger sets the logger used for per-request diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(a *Analyzer) {
		a.logger = l
	}
}

// New creates an Analyzer over store.
func New(store *artifact.Store, opts ...Option) *Analyzer {
	a := &Analyzer{
		store: store,
		topN:  DefaultTopN,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.logger = logger.WithFields(a.logger)
	return a
}

// Store returns the artifact store the analyzer reads from.
func (a *Analyzer) Store() *artifact.Store {
	return a.store
}

// Analyze runs the pipeline on raw. Failures are returned as *Error:
// KindEmptyInput when raw holds no skills and KindAnalysis for anything
// that goes wrong afterwards, panics included.
func (a *Analyzer) Analyze(raw string) (result *MatchResult, err error) {
	start := time.Now()
	log := a.logger.With(zap.String("request_id", uuid.NewString()))

	normalized, userSkills, nerr := skills.Normalize(raw)
	if nerr != nil {
		log.Debug("rejected empty input")
		return nil, emptyInputError(nerr)
	}

	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = analysisError(fmt.Errorf("panic: %v", r))
			log.Error("analysis panicked", zap.Any("panic", r))
		}
	}()

	result, perr := a.run(normalized, userSkills)
	if perr != nil {
		log.Warn("analysis failed", zap.Error(perr))
		return nil, analysisError(perr)
	}

	log.Debug("analysis complete",
		zap.Int("skills_count", len(userSkills)),
		zap.String("best_job", result.BestJob),
		zap.String("cluster", result.ClusterName),
		zap.Duration("duration", time.Since(start)),
	)
	return result, nil
}

// Evaluate is Analyze folded into an Outcome.
func (a *Analyzer) Evaluate(raw string) Outcome {
	result, err := a.Analyze(raw)
	if err == nil {
		return Outcome{Result: result}
	}

	var e *Error
	if !errors.As(err, &e) {
		e = analysisError(err)
	}
	return Outcome{Error: e}
}

func (a *Analyzer) run(normalized string, userSkills skills.Set) (*MatchResult, error) {
	if a.store == nil || a.store.Len() == 0 {
		return nil, artifact.ErrEmptyIndustry
	}

	query := a.store.Vectorizer().Transform(normalized)

	label, err := a.store.Model().Predict(query)
	if err != nil {
		return nil, fmt.Errorf("failed to assign cluster: %w", err)
	}

	scores, err := similarity.Scores(query, a.store.Vectors())
	if err != nil {
		return nil, fmt.Errorf("failed to score industry jobs: %w", err)
	}

	industry := a.store.Industry()
	top := similarity.Top(scores, a.topN)
	matches := make([]Match, len(top))
	for i, r := range top {
		rec := industry[r.Index]
		matches[i] = Match{
			JobTitle:       rec.JobTitle,
			Similarity:     r.Percent(),
			RequiredSkills: rec.RequiredSkills,
		}
	}

	best := industry[similarity.Argmax(scores)]
	gap := skills.Analyze(best.RequiredSkills, best.HasSkills, userSkills)

	return &MatchResult{
		BestJob:         best.JobTitle,
		MatchPercentage: gap.MatchPercentage,
		MissingSkills:   gap.Missing,
		ExistingSkills:  gap.Existing,
		TotalRequired:   gap.TotalRequired(),
		ClusterName:     cluster.Name(label),
		ClusterID:       label,
		TopMatches:      matches,
		UserSkills:      userSkills,
	}, nil
}
