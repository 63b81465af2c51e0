// Package artifacttest provides a small, hand-fitted artifact set for tests.
package artifacttest

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vijay-prabhu/careerfit/internal/artifact"
	"github.com/vijay-prabhu/careerfit/internal/cluster"
	"github.com/vijay-prabhu/careerfit/internal/vectorize"
)

// File names written by WriteDir.
const (
	VectorizerFile = "vectorizer.json"
	ModelFile      = "kmeans_model.json"
	IndustryFile   = "industry_data.csv"
)

// Terms is the fixture vocabulary in index order.
var Terms = []string{
	"python", "sql", "excel", "tableau",
	"java", "spring", "docker",
	"seo", "photoshop", "figma",
	"leadership", "budgeting",
	"networking", "firewalls",
}

// Industry is the fixture industry table. The last record has no
// required-skills value.
var Industry = []artifact.IndustryRecord{
	{JobTitle: "Data Analyst", RequiredSkills: "python, sql, tableau", HasSkills: true},
	{JobTitle: "Backend Developer", RequiredSkills: "java, spring, docker, sql", HasSkills: true},
	{JobTitle: "Digital Marketer", RequiredSkills: "seo, photoshop, figma", HasSkills: true},
	{JobTitle: "Project Manager", RequiredSkills: "leadership, budgeting, excel", HasSkills: true},
	{JobTitle: "Network Engineer", RequiredSkills: "networking, firewalls, docker", HasSkills: true},
	{JobTitle: "Generalist"},
}

// centroidTerms lists the terms averaged into each centroid, by label.
var centroidTerms = [][]string{
	{"java", "spring", "docker", "sql"},
	{"python", "sql", "tableau"},
	{"seo", "photoshop", "figma"},
	{"leadership", "budgeting", "excel"},
	{"networking", "firewalls", "docker"},
}

// Params returns the vectorizer params: unit IDF, l2 norm, unigrams.
func Params() vectorize.Params {
	vocab := make(map[string]int, len(Terms))
	idf := make([]float64, len(Terms))
	for i, t := range Terms {
		vocab[t] = i
		idf[i] = 1
	}
	return vectorize.Params{
		Vocabulary:   vocab,
		IDF:          idf,
		NgramRange:   [2]int{1, 1},
		TokenPattern: vectorize.DefaultTokenPattern,
	}
}

// Centroids returns one l2-normalized centroid per named cluster.
func Centroids() [][]float64 {
	index := make(map[string]int, len(Terms))
	for i, t := range Terms {
		index[t] = i
	}

	centroids := make([][]float64, len(centroidTerms))
	for label, terms := range centroidTerms {
		c := make([]float64, len(Terms))
		w := 1 / math.Sqrt(float64(len(terms)))
		for _, t := range terms {
			c[index[t]] = w
		}
		centroids[label] = c
	}
	return centroids
}

// Store builds the fixture store in memory.
func Store(tb testing.TB) *artifact.Store {
	tb.Helper()

	v, err := vectorize.New(Params())
	if err != nil {
		tb.Fatalf("vectorize.New() error = %v", err)
	}
	m, err := cluster.New(Centroids())
	if err != nil {
		tb.Fatalf("cluster.New() error = %v", err)
	}
	industry := make([]artifact.IndustryRecord, len(Industry))
	copy(industry, Industry)

	store, err := artifact.NewStore(v, m, industry)
	if err != nil {
		tb.Fatalf("artifact.NewStore() error = %v", err)
	}
	return store
}

// WriteDir writes the fixture artifacts into dir using the on-disk formats.
func WriteDir(tb testing.TB, dir string) {
	tb.Helper()

	writeJSON(tb, filepath.Join(dir, VectorizerFile), Params())
	writeJSON(tb, filepath.Join(dir, ModelFile), cluster.Params{Centroids: Centroids()})

	if err := os.WriteFile(filepath.Join(dir, IndustryFile), []byte(IndustryCSV()), 0644); err != nil {
		tb.Fatalf("failed to write industry table: %v", err)
	}
}

// IndustryCSV renders Industry as a CSV document.
func IndustryCSV() string {
	var b strings.Builder
	b.WriteString("Job_Title,Required_Skills\n")
	for _, rec := range Industry {
		b.WriteString(rec.JobTitle)
		b.WriteString(",\"")
		b.WriteString(rec.RequiredSkills)
		b.WriteString("\"\n")
	}
	return b.String()
}

func writeJSON(tb testing.TB, path string, v any) {
	tb.Helper()

	data, err := json.Marshal(v)
	if err != nil {
		tb.Fatalf("failed to encode %s: %v", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		tb.Fatalf("failed to write %s: %v", path, err)
	}
}
