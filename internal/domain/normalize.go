package domain

import (
	"regexp"
	"strings"

	"golang.org/x/text/width"
)

var punctuationFolder = strings.NewReplacer(
	"\u00a0", " ",
	"\u200b", "",
	"\u200c", "",
	"\u201c", `"`, "\u201d", `"`,
	"\u2018", "'", "\u2019", "'", "\u2032", "'", "\u00b4", "'", "\uff40", "'",
	"\u00b7", ".", "\u318d", ".", "\u2027", ".", "\u2022", ".",
)

// NormalizeCodedValue prepares a coded symbol field for validation:
//   - removes no-break and zero-width spaces
//   - folds typographic quotes to ASCII quotes
//   - folds middle dots and bullets to "."
//   - folds full-width punctuation (：，．／－) to ASCII
//   - trims leading/trailing whitespace
//
// Letter case is preserved.
func NormalizeCodedValue(s string) string {
	if s == "" {
		return ""
	}
	s = punctuationFolder.Replace(s)
	s = width.Fold.String(s)
	return strings.TrimSpace(s)
}

var mpTypo = regexp.MustCompile(`\b([mM])['\x{2019}` + "`" + `]p\b`)

// FixDeterminantTypos rewrites the m'p spelling of the passive movement
// determinants to mp (Mp for human movement). It reports whether anything
// changed.
func FixDeterminantTypos(s string) (string, bool) {
	if s == "" {
		return s, false
	}
	fixed := mpTypo.ReplaceAllString(s, "${1}p")
	return fixed, fixed != s
}

var specialSeparators = regexp.MustCompile(`[,\s;+/]+`)

// NormalizeSpecialTokens upper-cases special score tokens, drops duplicates
// keeping first occurrence order and joins them with ", ".
func NormalizeSpecialTokens(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	seen := make(map[string]struct{})
	var out []string
	for _, tok := range specialSeparators.Split(s, -1) {
		tok = strings.ToUpper(strings.TrimSpace(tok))
		if tok == "" {
			continue
		}
		if _, ok := seen[tok]; ok {
			continue
		}
		seen[tok] = struct{}{}
		out = append(out, tok)
	}
	return strings.Join(out, ", ")
}
