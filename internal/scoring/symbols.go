package scoring

import (
	"strings"

	"github.com/heartmarshall/inkblot-backend/internal/domain"
)

// FieldKind identifies a coded response field with a closed vocabulary.
type FieldKind string

const (
	KindCard         FieldKind = "card"
	KindLocation     FieldKind = "location"
	KindDevQual      FieldKind = "dev_qual"
	KindDeterminants FieldKind = "determinants"
	KindContents     FieldKind = "contents"
	KindSpecial      FieldKind = "special"
	KindFormQual     FieldKind = "form_qual"
	KindPopular      FieldKind = "popular"
	KindZ            FieldKind = "Z"
	KindPair         FieldKind = "pair"
)

func (k FieldKind) String() string { return string(k) }

func (k FieldKind) IsValid() bool {
	_, ok := vocabularies[k]
	return ok
}

// multiToken reports whether values of the kind are delimited token lists.
func (k FieldKind) multiToken() bool {
	switch k {
	case KindDeterminants, KindContents, KindSpecial:
		return true
	}
	return false
}

func set(values ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(values))
	for _, v := range values {
		m[v] = struct{}{}
	}
	return m
}

var vocabularies = map[FieldKind]map[string]struct{}{
	KindCard: set(
		"I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX", "X",
		"1", "2", "3", "4", "5", "6", "7", "8", "9", "10",
	),
	KindLocation: set("W", "WS", "D", "DS", "Dd", "DdS"),
	KindDevQual:  set("+", "o", "v/+", "v"),
	KindDeterminants: set(
		"Ma", "Mp", "Ma-p",
		"ma", "mp", "ma-p",
		"fma", "fmp", "fma-p",
		"fc", "cf", "c", "cn",
		"fc'", "c'f", "c'",
		"ft", "tf", "t",
		"fv", "vf", "v",
		"fy", "yf", "y",
		"fr", "rf", "fd", "f",
	),
	KindSpecial: set(
		"DV", "DV2", "DR", "DR2", "INC", "INC2", "FAB", "FAB2", "CON", "ALOG",
		"PSV", "AB", "AG", "COP", "MOR", "PER", "CP", "GHR", "PHR",
	),
	KindContents: set(
		"h", "(h)", "hd", "(hd)", "hx", "a", "(a)", "(ad)", "ad", "an", "art", "ay", "bl",
		"bt", "cg", "cl", "ex", "fi", "fd", "ge", "hh", "ls", "na", "sc", "sx", "xy",
	),
	KindFormQual: set("+", "o", "u", "-", "no"),
	KindPopular:  set("P", ""),
	KindZ:        set("ZA", "ZW", "ZD", "ZS"),
	KindPair:     set("2"),
}

// SymbolError reports a coded value outside its field's vocabulary.
// The message is deliberately the same for every field.
type SymbolError struct {
	Kind  FieldKind
	Value string
	// Token is the first offending token of a multi-token value.
	Token string
}

func (e *SymbolError) Error() string { return "invalid symbol" }

func (e *SymbolError) Unwrap() error { return domain.ErrValidation }

// ValidateSymbol checks value against the closed vocabulary of kind and
// returns it unchanged when every token belongs to it.
//
// Determinant, content and special values are split into tokens first and
// each token must validate. Determinant and content tokens are case-folded
// for lookup (except Ma, Mp, Ma-p); special tokens are matched as written.
// An empty multi-token value is invalid.
func ValidateSymbol(kind FieldKind, value string) (string, error) {
	vocab, ok := vocabularies[kind]
	if !ok {
		return "", &SymbolError{Kind: kind, Value: value}
	}

	if !kind.multiToken() {
		if _, ok := vocab[strings.TrimSpace(value)]; !ok {
			return "", &SymbolError{Kind: kind, Value: value, Token: value}
		}
		return value, nil
	}

	tokens := SplitTokens(value)
	if len(tokens) == 0 {
		return "", &SymbolError{Kind: kind, Value: value}
	}
	for _, tok := range tokens {
		key := tok
		switch kind {
		case KindDeterminants:
			key = FoldDeterminant(tok)
		case KindContents:
			key = FoldContent(tok)
		}
		if _, ok := vocab[key]; !ok {
			return "", &SymbolError{Kind: kind, Value: value, Token: tok}
		}
	}
	return value, nil
}
