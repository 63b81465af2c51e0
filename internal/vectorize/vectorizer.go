// Package vectorize turns skill text into TF-IDF vectors using a fitted
// vocabulary and IDF weights exported alongside the clustering model.
package vectorize

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"regexp"
	"strings"
)

// Normalization schemes applied to each output row.
const (
	NormL2   = "l2"
	NormL1   = "l1"
	NormNone = ""
)

// Vector is a dense TF-IDF row. Its length equals the vocabulary size.
type Vector []float64

// Norm returns the Euclidean length of v.
func (v Vector) Norm() float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}

// Params is the on-disk form of a fitted vectorizer.
type Params struct {
	Vocabulary   map[string]int `json:"vocabulary"`
	IDF          []float64      `json:"idf"`
	Lowercase    *bool          `json:"lowercase,omitempty"`
	NgramRange   [2]int         `json:"ngram_range"`
	Norm         *string        `json:"norm,omitempty"`
	UseIDF       *bool          `json:"use_idf,omitempty"`
	SublinearTF  bool           `json:"sublinear_tf"`
	StopWords    []string       `json:"stop_words,omitempty"`
	TokenPattern string         `json:"token_pattern,omitempty"`
}

// Vectorizer maps text to fixed-dimension TF-IDF vectors.
// It is immutable after construction and safe for concurrent use.
type Vectorizer struct {
	vocab     map[string]int
	idf       []float64
	lowercase bool
	minN      int
	maxN      int
	norm      string
	useIDF    bool
	sublinear bool
	stop      map[string]struct{}
	pattern   *regexp.Regexp
}

// Load decodes a JSON vectorizer artifact.
func Load(r io.Reader) (*Vectorizer, error) {
	var p Params
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return nil, fmt.Errorf("failed to decode vectorizer: %w", err)
	}
	return New(p)
}

// New validates params and builds a Vectorizer.
func New(p Params) (*Vectorizer, error) {
	if len(p.Vocabulary) == 0 {
		return nil, errors.New("vocabulary is empty")
	}

	v := &Vectorizer{
		vocab:     p.Vocabulary,
		lowercase: true,
		minN:      p.NgramRange[0],
		maxN:      p.NgramRange[1],
		norm:      NormL2,
		useIDF:    true,
		sublinear: p.SublinearTF,
	}
	if p.Lowercase != nil {
		v.lowercase = *p.Lowercase
	}
	if p.UseIDF != nil {
		v.useIDF = *p.UseIDF
	}
	if p.Norm != nil {
		v.norm = *p.Norm
	}
	if v.minN == 0 && v.maxN == 0 {
		v.minN, v.maxN = 1, 1
	}

	switch v.norm {
	case NormL2, NormL1, NormNone:
	default:
		return nil, fmt.Errorf("unsupported norm %q", v.norm)
	}
	if v.minN < 1 || v.maxN < v.minN {
		return nil, fmt.Errorf("invalid ngram_range [%d, %d]", v.minN, v.maxN)
	}

	dim := len(p.Vocabulary)
	seen := make([]bool, dim)
	for term, idx := range p.Vocabulary {
		if idx < 0 || idx >= dim {
			return nil, fmt.Errorf("term %q has index %d outside [0, %d)", term, idx, dim)
		}
		if seen[idx] {
			return nil, fmt.Errorf("index %d assigned to more than one term", idx)
		}
		seen[idx] = true
	}

	if v.useIDF {
		if len(p.IDF) != dim {
			return nil, fmt.Errorf("idf has %d weights, vocabulary has %d terms", len(p.IDF), dim)
		}
		v.idf = p.IDF
	}

	if len(p.StopWords) > 0 {
		v.stop = make(map[string]struct{}, len(p.StopWords))
		for _, w := range p.StopWords {
			v.stop[w] = struct{}{}
		}
	}

	if p.TokenPattern != "" && p.TokenPattern != DefaultTokenPattern {
		re, err := compilePattern(p.TokenPattern)
		if err != nil {
			return nil, err
		}
		v.pattern = re
	}

	return v, nil
}

// Dim returns the dimension of produced vectors.
func (v *Vectorizer) Dim() int {
	return len(v.vocab)
}

// Terms returns the analyzed terms of text: tokens after case folding,
// stop-word removal and n-gram expansion. Terms outside the vocabulary
// are included.
func (v *Vectorizer) Terms(text string) []string {
	if v.lowercase {
		text = strings.ToLower(text)
	}

	var tokens []string
	if v.pattern != nil {
		tokens = matchPattern(v.pattern, text)
	} else {
		tokens = tokenize(text)
	}

	if v.stop != nil {
		kept := tokens[:0]
		for _, tok := range tokens {
			if _, ok := v.stop[tok]; !ok {
				kept = append(kept, tok)
			}
		}
		tokens = kept
	}

	return ngrams(tokens, v.minN, v.maxN)
}

// Transform vectorizes a single document.
func (v *Vectorizer) Transform(text string) Vector {
	vec := make(Vector, v.Dim())

	for _, term := range v.Terms(text) {
		if idx, ok := v.vocab[term]; ok {
			vec[idx]++
		}
	}

	for i, tf := range vec {
		if tf == 0 {
			continue
		}
		if v.sublinear {
			tf = 1 + math.Log(tf)
		}
		if v.useIDF {
			tf *= v.idf[i]
		}
		vec[i] = tf
	}

	normalize(vec, v.norm)
	return vec
}

// TransformBatch vectorizes documents in order.
func (v *Vectorizer) TransformBatch(texts []string) []Vector {
	out := make([]Vector, len(texts))
	for i, t := range texts {
		out[i] = v.Transform(t)
	}
	return out
}

func normalize(vec Vector, norm string) {
	var length float64
	switch norm {
	case NormL2:
		length = vec.Norm()
	case NormL1:
		for _, x := range vec {
			length += math.Abs(x)
		}
	default:
		return
	}
	if length == 0 {
		return
	}
	for i := range vec {
		vec[i] /= length
	}
}

func ngrams(tokens []string, minN, maxN int) []string {
	if maxN == 1 {
		return tokens
	}

	var out []string
	if minN == 1 {
		out = append(out, tokens...)
		minN = 2
	}
	for n := minN; n <= maxN; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			out = append(out, strings.Join(tokens[i:i+n], " "))
		}
	}
	return out
}
