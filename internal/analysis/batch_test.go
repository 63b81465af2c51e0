package analysis_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vijay-prabhu/careerfit/internal/analysis"
	"github.com/vijay-prabhu/careerfit/internal/artifact/artifacttest"
)

func TestEvaluateAll(t *testing.T) {
	a := analysis.New(artifacttest.Store(t))
	inputs := []string{"python, sql, excel", "", "java, spring, docker, sql", "seo"}

	var mu sync.Mutex
	var seen []analysis.Progress
	items, err := a.EvaluateAll(context.Background(), inputs, 2, func(p analysis.Progress) {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, p)
	})
	require.NoError(t, err)
	require.Len(t, items, len(inputs))

	for i, item := range items {
		assert.Equal(t, inputs[i], item.Input)
		assert.NotEqual(t, item.Result == nil, item.Error == nil, "item %d must carry exactly one of result or error", i)
	}

	assert.Equal(t, "Data Analyst", items[0].Result.BestJob)
	assert.Equal(t, analysis.KindEmptyInput, items[1].Error.Kind)
	assert.Equal(t, "Backend Developer", items[2].Result.BestJob)
	assert.Equal(t, 100.0, items[2].Result.MatchPercentage)
	assert.Equal(t, "Digital Marketer", items[3].Result.BestJob)

	require.Len(t, seen, len(inputs))
	maxCurrent := 0
	for _, p := range seen {
		assert.Equal(t, len(inputs), p.Total)
		if p.Current > maxCurrent {
			maxCurrent = p.Current
		}
	}
	assert.Equal(t, len(inputs), maxCurrent)
}

func TestEvaluateAllMatchesSequential(t *testing.T) {
	a := analysis.New(artifacttest.Store(t))
	inputs := []string{"python", "docker", "figma, seo", "excel, leadership", "networking"}

	items, err := a.EvaluateAll(context.Background(), inputs, 8, nil)
	require.NoError(t, err)

	for i, in := range inputs {
		assert.Equal(t, a.Evaluate(in), items[i].Outcome)
	}
}

func TestEvaluateAllCanceled(t *testing.T) {
	a := analysis.New(artifacttest.Store(t))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	items, err := a.EvaluateAll(ctx, []string{"python", "sql"}, 1, nil)
	assert.ErrorIs(t, err, context.Canceled)
	require.Len(t, items, 2)
	for _, item := range items {
		assert.False(t, item.OK())
		require.NotNil(t, item.Error)
		assert.Equal(t, analysis.KindAnalysis, item.Error.Kind)
	}
}

func TestEvaluateAllEmpty(t *testing.T) {
	a := analysis.New(artifacttest.Store(t))

	items, err := a.EvaluateAll(context.Background(), nil, 4, nil)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestProgress(t *testing.T) {
	p := analysis.Progress{Current: 25, Total: 100, StartedAt: time.Now().Add(-10 * time.Second)}
	assert.Equal(t, 25, p.Percentage())

	eta := p.ETA()
	assert.InDelta(t, 30*time.Second, eta, float64(2*time.Second))

	assert.Zero(t, analysis.Progress{}.ETA())
	assert.Zero(t, analysis.Progress{Current: 1}.Percentage())
}
