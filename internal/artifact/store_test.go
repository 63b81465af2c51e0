package artifact_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vijay-prabhu/careerfit/internal/artifact"
	"github.com/vijay-prabhu/careerfit/internal/artifact/artifacttest"
	"github.com/vijay-prabhu/careerfit/internal/cluster"
	"github.com/vijay-prabhu/careerfit/internal/vectorize"
)

func defaultOptions() artifact.Options {
	return artifact.Options{
		Vectorizer: artifacttest.VectorizerFile,
		Model:      artifacttest.ModelFile,
		Industry:   artifacttest.IndustryFile,
	}
}

func TestLoadFromDir(t *testing.T) {
	dir := t.TempDir()
	artifacttest.WriteDir(t, dir)

	store, err := artifact.Load(context.Background(), artifact.DirSource{Dir: dir}, defaultOptions())
	require.NoError(t, err)

	assert.Equal(t, len(artifacttest.Industry), store.Len())
	assert.Equal(t, artifacttest.Industry, store.Industry())
	assert.Equal(t, len(artifacttest.Terms), store.Vectorizer().Dim())
	assert.Equal(t, 5, store.Model().K())
	require.Len(t, store.Vectors(), store.Len())

	// Industry vectors are precomputed and l2 normalized, except the empty one
	assert.InDelta(t, 1.0, store.Vectors()[0].Norm(), 1e-12)
	assert.Zero(t, store.Vectors()[len(artifacttest.Industry)-1].Norm())
}

func TestLoadMissingArtifact(t *testing.T) {
	tests := []struct {
		name     string
		remove   string
		artifact string
	}{
		{"vectorizer", artifacttest.VectorizerFile, artifact.NameVectorizer},
		{"model", artifacttest.ModelFile, artifact.NameModel},
		{"industry", artifacttest.IndustryFile, artifact.NameIndustry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			artifacttest.WriteDir(t, dir)
			require.NoError(t, os.Remove(filepath.Join(dir, tt.remove)))

			_, err := artifact.Load(context.Background(), artifact.DirSource{Dir: dir}, defaultOptions())

			var loadErr *artifact.LoadError
			require.ErrorAs(t, err, &loadErr)
			assert.Equal(t, tt.artifact, loadErr.Artifact)
			assert.Equal(t, filepath.Join(dir, tt.remove), loadErr.Location)
			assert.ErrorIs(t, err, os.ErrNotExist)
		})
	}
}

func TestLoadCorruptArtifact(t *testing.T) {
	dir := t.TempDir()
	artifacttest.WriteDir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, artifacttest.ModelFile), []byte("{"), 0644))

	_, err := artifact.Load(context.Background(), artifact.DirSource{Dir: dir}, defaultOptions())

	var loadErr *artifact.LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, artifact.NameModel, loadErr.Artifact)
	assert.Contains(t, err.Error(), "failed to load model")
}

func TestLoadDimensionMismatch(t *testing.T) {
	dir := t.TempDir()
	artifacttest.WriteDir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, artifacttest.ModelFile), []byte(`{"centroids": [[1, 0]]}`), 0644))

	_, err := artifact.Load(context.Background(), artifact.DirSource{Dir: dir}, defaultOptions())

	var loadErr *artifact.LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Contains(t, err.Error(), "does not match model dimension")
}

type fakeLister struct {
	records []artifact.IndustryRecord
	err     error
}

func (f fakeLister) IndustryRecords(context.Context) ([]artifact.IndustryRecord, error) {
	return f.records, f.err
}

func TestLoadWithLister(t *testing.T) {
	dir := t.TempDir()
	artifacttest.WriteDir(t, dir)
	require.NoError(t, os.Remove(filepath.Join(dir, artifacttest.IndustryFile)))

	opts := defaultOptions()
	opts.Lister = fakeLister{records: artifacttest.Industry[:2]}

	store, err := artifact.Load(context.Background(), artifact.DirSource{Dir: dir}, opts)
	require.NoError(t, err)
	assert.Equal(t, 2, store.Len())

	opts.Lister = fakeLister{}
	_, err = artifact.Load(context.Background(), artifact.DirSource{Dir: dir}, opts)
	assert.ErrorIs(t, err, artifact.ErrEmptyIndustry)

	opts.Lister = fakeLister{err: errors.New("database is locked")}
	_, err = artifact.Load(context.Background(), artifact.DirSource{Dir: dir}, opts)
	var loadErr *artifact.LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "database", loadErr.Location)
}

func TestNewStoreValidation(t *testing.T) {
	v, err := vectorize.New(artifacttest.Params())
	require.NoError(t, err)
	m, err := cluster.New(artifacttest.Centroids())
	require.NoError(t, err)

	_, err = artifact.NewStore(v, m, nil)
	assert.ErrorIs(t, err, artifact.ErrEmptyIndustry)

	small, err := cluster.New([][]float64{{1, 0}})
	require.NoError(t, err)
	_, err = artifact.NewStore(v, small, artifacttest.Industry)
	assert.Error(t, err)
}

// fakeS3 serves objects from a map and fails the first failures calls.
type fakeS3 struct {
	objects  map[string][]byte
	failures int
	calls    int
	keys     []string
}

func (f *fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.calls++
	key := aws.ToString(in.Key)
	f.keys = append(f.keys, aws.ToString(in.Bucket)+"/"+key)
	if f.failures > 0 {
		f.failures--
		return nil, errors.New("connection reset")
	}
	data, ok := f.objects[key]
	if !ok {
		return nil, &types.NoSuchKey{Message: aws.String("no such key")}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(data))}, nil
}

func fixtureObjects(t *testing.T, prefix string) map[string][]byte {
	t.Helper()
	dir := t.TempDir()
	artifacttest.WriteDir(t, dir)

	objects := make(map[string][]byte)
	for _, name := range []string{artifacttest.VectorizerFile, artifacttest.ModelFile, artifacttest.IndustryFile} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		objects[prefix+name] = data
	}
	return objects
}

func TestLoadFromS3(t *testing.T) {
	client := &fakeS3{objects: fixtureObjects(t, "careerfit/v1/"), failures: 1}
	src := &artifact.S3Source{Client: client, Bucket: "models", Prefix: "careerfit/v1", Backoff: time.Millisecond}

	store, err := artifact.Load(context.Background(), src, defaultOptions())
	require.NoError(t, err)
	assert.Equal(t, len(artifacttest.Industry), store.Len())

	// One retry for the first object, then one call per artifact
	assert.Equal(t, 4, client.calls)
	assert.Equal(t, "models/careerfit/v1/vectorizer.json", client.keys[0])
	assert.Equal(t, "s3://models/careerfit/v1/kmeans_model.json", src.Location(artifacttest.ModelFile))
}

func TestS3SourceMissingKeyIsNotRetried(t *testing.T) {
	client := &fakeS3{objects: map[string][]byte{}}
	src := &artifact.S3Source{Client: client, Bucket: "models", Backoff: time.Millisecond}

	_, err := src.Open(context.Background(), "vectorizer.json")
	require.Error(t, err)
	assert.Equal(t, 1, client.calls)

	var noKey *types.NoSuchKey
	assert.ErrorAs(t, err, &noKey)
}

func TestS3SourceGivesUpAfterAttempts(t *testing.T) {
	client := &fakeS3{objects: map[string][]byte{"a": []byte("x")}, failures: 10}
	src := &artifact.S3Source{Client: client, Bucket: "models", Attempts: 2, Backoff: time.Millisecond}

	_, err := src.Open(context.Background(), "a")
	require.Error(t, err)
	assert.Equal(t, 2, client.calls)
	assert.True(t, strings.Contains(err.Error(), "after 2 attempts"))
}

func TestS3SourceHonorsCancellation(t *testing.T) {
	client := &fakeS3{objects: map[string][]byte{"a": []byte("x")}, failures: 10}
	src := &artifact.S3Source{Client: client, Bucket: "models", Backoff: time.Hour}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := src.Open(ctx, "a")
	assert.ErrorIs(t, err, context.Canceled)
}
