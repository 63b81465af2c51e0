package vectorize

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// DefaultTokenPattern is the token pattern the exporter writes when the
// vectorizer was fitted with default settings. It selects runs of two or
// more word characters and is handled by tokenize without a regexp.
const DefaultTokenPattern = `(?u)\b\w\w+\b`

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// tokenize splits text into maximal runs of word characters and keeps
// runs of at least two runes.
func tokenize(text string) []string {
	var tokens []string
	start, runes := -1, 0
	for i, r := range text {
		if isWordRune(r) {
			if start < 0 {
				start, runes = i, 0
			}
			runes++
			continue
		}
		if start >= 0 && runes >= 2 {
			tokens = append(tokens, text[start:i])
		}
		start = -1
	}
	if start >= 0 && runes >= 2 {
		tokens = append(tokens, text[start:])
	}
	return tokens
}

// compilePattern compiles a custom token pattern. The unicode flag is
// dropped since RE2 classes are already rune based.
func compilePattern(pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(strings.ReplaceAll(pattern, "(?u)", ""))
	if err != nil {
		return nil, fmt.Errorf("invalid token_pattern %q: %w", pattern, err)
	}
	if re.NumSubexp() > 1 {
		return nil, fmt.Errorf("token_pattern %q has more than one capturing group", pattern)
	}
	return re, nil
}

// matchPattern returns every match of re in text, or the first capture
// group when the pattern has one.
func matchPattern(re *regexp.Regexp, text string) []string {
	if re.NumSubexp() == 0 {
		return re.FindAllString(text, -1)
	}
	var tokens []string
	for _, m := range re.FindAllStringSubmatch(text, -1) {
		tokens = append(tokens, m[1])
	}
	return tokens
}
