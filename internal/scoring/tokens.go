package scoring

import (
	"regexp"
	"strings"
)

// preserveCase holds the determinant tokens whose case is significant.
// Upper-case M marks human movement; every other determinant folds to
// lower case before lookup or counting.
var preserveCase = map[string]struct{}{
	"Ma":   {},
	"Mp":   {},
	"Ma-p": {},
}

var tokenSeparator = regexp.MustCompile(`[.,]+`)

// SplitTokens removes all whitespace from raw and splits it on runs of
// commas and periods. Empty tokens are dropped.
func SplitTokens(raw string) []string {
	raw = strings.Join(strings.Fields(raw), "")
	if raw == "" {
		return nil
	}
	var tokens []string
	for _, p := range tokenSeparator.Split(raw, -1) {
		if p != "" {
			tokens = append(tokens, p)
		}
	}
	return tokens
}

// FoldDeterminant returns the lookup form of a determinant token.
func FoldDeterminant(tok string) string {
	if _, ok := preserveCase[tok]; ok {
		return tok
	}
	return strings.ToLower(tok)
}

// FoldContent returns the lookup form of a content token.
func FoldContent(tok string) string {
	return strings.ToLower(tok)
}

func foldAll(tokens []string, fold func(string) string) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = fold(t)
	}
	return out
}

// counter is a multiset of tokens.
type counter map[string]int

func countTokens(tokens []string) counter {
	c := make(counter, len(tokens))
	for _, t := range tokens {
		c[t]++
	}
	return c
}

func (c counter) sum(keys ...string) int {
	n := 0
	for _, k := range keys {
		n += c[k]
	}
	return n
}

func containsAny(tokens []string, wanted ...string) bool {
	for _, t := range tokens {
		for _, w := range wanted {
			if t == w {
				return true
			}
		}
	}
	return false
}
