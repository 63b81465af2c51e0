package analysis

import (
	"context"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

// BatchItem pairs an input with its outcome.
type BatchItem struct {
	Input string `json:"input"`
	Outcome
}

// Progress reports how far a batch run has got.
type Progress struct {
	Current   int
	Total     int
	StartedAt time.Time
}

// ProgressCallback is called after each input is analyzed. It may be
// called from several goroutines.
type ProgressCallback func(Progress)

// ETA returns the estimated time remaining based on current progress
func (p Progress) ETA() time.Duration {
	if p.Current == 0 || p.Total == 0 || p.StartedAt.IsZero() {
		return 0
	}
	elapsed := time.Since(p.StartedAt)
	rate := float64(p.Current) / elapsed.Seconds()
	if rate <= 0 {
		return 0
	}
	remaining := p.Total - p.Current
	return time.Duration(float64(remaining)/rate) * time.Second
}

// Percentage returns the completion percentage (0-100)
func (p Progress) Percentage() int {
	if p.Total == 0 {
		return 0
	}
	return (p.Current * 100) / p.Total
}

// EvaluateAll analyzes inputs with at most workers concurrent analyses.
// Items come back in input order. A failed input does not stop the run;
// only cancellation of ctx does, in which case the error is returned and
// unfinished items carry an analysis error.
func (a *Analyzer) EvaluateAll(ctx context.Context, inputs []string, workers int, progress ProgressCallback) ([]BatchItem, error) {
	if workers < 1 {
		workers = 1
	}

	items := make([]BatchItem, len(inputs))
	for i, in := range inputs {
		items[i].Input = in
	}

	started := time.Now()
	var done int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range inputs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			items[i].Outcome = a.Evaluate(inputs[i])

			if progress != nil {
				current := int(atomic.AddInt64(&done, 1))
				progress(Progress{Current: current, Total: len(inputs), StartedAt: started})
			}
			return nil
		})
	}

	err := g.Wait()
	for i := range items {
		if items[i].Result != nil || items[i].Error != nil {
			continue
		}
		// Never started: the context was canceled
		if err == nil {
			err = ctx.Err()
		}
		items[i].Error = analysisError(err)
	}
	return items, err
}
