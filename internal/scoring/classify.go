package scoring

const (
	TokenGHR = "GHR"
	TokenPHR = "PHR"
)

// HumanRepInput is the folded view of one response that the human
// representation classifier reads.
type HumanRepInput struct {
	Card         Card
	Determinants []string // folded
	Contents     []string // folded
	Specials     []string // without GHR/PHR
	FormQual     string
	Popular      string
}

// relevant reports whether the response carries human content or human
// movement, or animal movement with a cooperative/aggressive special score.
func (in HumanRepInput) relevant() bool {
	return containsAny(in.Contents, "h", "(h)", "hd", "(hd)", "hx") ||
		containsAny(in.Determinants, "Ma", "Mp", "Ma-p") ||
		(containsAny(in.Determinants, "fma", "fmp", "fma-p") && containsAny(in.Specials, "COP", "AG"))
}

// ClassifyHumanRepresentation returns GHR or PHR for a relevant response.
// The first matching rule wins. ok is false when the response carries no
// human representation.
func ClassifyHumanRepresentation(in HumanRepInput) (token string, ok bool) {
	if !in.relevant() {
		return "", false
	}

	fq := in.FormQual
	switch {
	case containsAny(in.Contents, "h") && (fq == "+" || fq == "o" || fq == "u") &&
		!containsAny(in.Specials, "DV2", "DR", "DR2", "INC", "INC2", "FAB", "FAB2", "CON", "ALOG", "AG", "MOR"):
		return TokenGHR, true
	case fq == "-" || fq == "no" ||
		containsAny(in.Specials, "DV2", "DR2", "INC2", "FAB2", "CON", "ALOG"):
		return TokenPHR, true
	case containsAny(in.Specials, "COP") && !containsAny(in.Specials, "AG"):
		return TokenGHR, true
	case containsAny(in.Specials, "FAB", "MOR") || containsAny(in.Contents, "an"):
		return TokenPHR, true
	case in.Popular == "P" && (in.Card == 3 || in.Card == 4 || in.Card == 7 || in.Card == 9):
		return TokenGHR, true
	case containsAny(in.Specials, "AG", "INC", "DR") || containsAny(in.Contents, "hd"):
		return TokenPHR, true
	}
	return TokenGHR, true
}

// stripHumanRep drops coder-supplied GHR and PHR tokens.
func stripHumanRep(specials []string) []string {
	out := specials[:0:0]
	for _, s := range specials {
		if s != TokenGHR && s != TokenPHR {
			out = append(out, s)
		}
	}
	return out
}
