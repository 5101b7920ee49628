package corpus

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/kljensen/snowball/english"
)

// DefaultTokenPattern matches runs of letters optionally joined by a single
// connector mark, so "mother-in-law" and "don't" each come out as one token
// while digits and bare punctuation are dropped.
const DefaultTokenPattern = `\p{L}+(?:[-'’_]\p{L}+)*`

// TokenizerOptions configures token extraction and normalization.
type TokenizerOptions struct {
	Pattern   string              // token regexp; DefaultTokenPattern if empty
	Lowercase bool                // lowercase tokens before anything else
	Stem      bool                // apply the Snowball English stemmer
	Stopwords map[string]struct{} // tokens to drop; nil disables filtering
}

// Tokenizer splits raw text into tokens according to a configurable pattern.
type Tokenizer struct {
	pattern   *regexp.Regexp
	lowercase bool
	stem      bool
	stopwords map[string]struct{}
}

// NewTokenizer compiles the token pattern and returns a ready tokenizer.
func NewTokenizer(opts TokenizerOptions) (*Tokenizer, error) {
	pat := opts.Pattern
	if pat == "" {
		pat = DefaultTokenPattern
	}
	re, err := regexp.Compile(pat)
	if err != nil {
		return nil, fmt.Errorf("%w: token pattern %q: %v", ErrInvalidArgument, pat, err)
	}
	return &Tokenizer{
		pattern:   re,
		lowercase: opts.Lowercase,
		stem:      opts.Stem,
		stopwords: opts.Stopwords,
	}, nil
}

// Pattern returns the compiled token pattern.
func (t *Tokenizer) Pattern() string {
	return t.pattern.String()
}

// Tokenize extracts the tokens of text in order. Pipeline: match pattern ->
// lowercase -> stop filter -> stem.
func (t *Tokenizer) Tokenize(text string) []string {
	words := t.pattern.FindAllString(text, -1)
	tokens := make([]string, 0, len(words))
	for _, w := range words {
		if t.lowercase {
			w = strings.ToLower(w)
		}
		if t.stopwords != nil {
			if _, bad := t.stopwords[strings.ToLower(w)]; bad {
				continue
			}
		}
		if t.stem {
			w = english.Stem(w, true)
		}
		if w == "" {
			continue
		}
		tokens = append(tokens, w)
	}
	return tokens
}
