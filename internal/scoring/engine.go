// Package scoring implements the structural summary engine: symbol
// validation, card numeral normalization, per-response classification and
// the derivation of every summary variable and special index.
//
// Everything in the package is pure. Compute never mutates its input; it
// returns normalized copies of the responses for the caller to persist.
package scoring

import (
	"math"
	"slices"
	"strings"

	"github.com/heartmarshall/inkblot-backend/internal/domain"
)

// Result is the output of one scoring run.
type Result struct {
	Summary domain.StructuralSummary
	// Responses are the scored copies of the input in card order: card in
	// Arabic form and Special rewritten with the GHR/PHR classification.
	Responses []domain.Response
}

var (
	shadingTokens = []string{"fy", "yf", "y", "ft", "tf", "t", "fv", "vf", "v", "c'f", "fc'", "c'"}
	colorTokens   = []string{"c", "cf", "fc"}
)

// parsed is the per-response token view built once and reused by every pass.
type parsed struct {
	card         Card
	cardOK       bool
	rawDets      []string
	determinants []string
	contents     []string
	specials     []string
}

func parse(r domain.Response) parsed {
	p := parsed{rawDets: SplitTokens(r.Determinants)}
	p.card, p.cardOK = ParseCard(r.Card)
	p.determinants = foldAll(p.rawDets, FoldDeterminant)
	p.contents = foldAll(SplitTokens(r.Content), FoldContent)
	p.specials = stripHumanRep(SplitTokens(r.Special))
	return p
}

// tally accumulates the token lists of pass 2.
type tally struct {
	single   []string
	all      []string
	contents []string
	specials []string
	blends   strings.Builder

	blendCount   int
	colShdBlends int
	shdBlends    int
}

// Compute derives the structural summary of a protocol for a subject of
// the given age.
//
// The responses are expected to cover the full protocol; callers check
// completeness with MissingCards before scoring. Empty input yields a
// zero-valued summary without panicking.
func Compute(responses []domain.Response, age int) Result {
	out := slices.Clone(responses)
	SortByCard(out)

	items := make([]parsed, len(out))
	for i := range out {
		items[i] = parse(out[i])
		if items[i].cardOK {
			out[i].Card = items[i].card.String()
		} else {
			out[i].Card = strings.TrimSpace(out[i].Card)
		}
	}

	var s domain.StructuralSummary
	s.Age = age

	countSimple(&s, out, items)
	t := classifyResponses(&s, out, items)

	single := countTokens(t.single)
	all := countTokens(t.all)
	contents := countTokens(t.contents)
	specials := countTokens(t.specials)

	s.Blends = t.blends.String()
	s.BlendCount = t.blendCount
	s.ColShdBlends = t.colShdBlends
	s.ShdBlends = t.shdBlends
	s.Single = singleFrequencies(single)
	s.Contents = contentFrequencies(contents)
	s.Special = specialFrequencies(specials)

	computeCore(&s, len(out), all)
	computeAffect(&s, items, all)
	computeInterpersonal(&s, all)
	computeIdeation(&s, all)
	computeMediation(&s, out)
	computeProcessing(&s)
	computeSelf(&s, all)
	s.Indices = evaluateIndices(&s, all)

	return Result{Summary: s, Responses: out}
}

// SortByCard orders responses by card number then response number.
// Responses with an unreadable card go last.
func SortByCard(rs []domain.Response) {
	key := func(r domain.Response) int {
		if c, ok := ParseCard(r.Card); ok {
			return int(c)
		}
		return math.MaxInt
	}
	slices.SortStableFunc(rs, func(a, b domain.Response) int {
		if ka, kb := key(a), key(b); ka != kb {
			return ka - kb
		}
		return a.ResponseNum - b.ResponseNum
	})
}

// ---------------------------------------------------------------------------
// Pass 1
// ---------------------------------------------------------------------------

func countSimple(s *domain.StructuralSummary, rs []domain.Response, items []parsed) {
	loc := &s.Location
	for i, r := range rs {
		if z, ok := ParseZCode(r.Z); ok {
			loc.Zf++
			if items[i].cardOK {
				loc.Zsum += ZScore(items[i].card, z)
			}
		}

		switch {
		case strings.Contains(r.Location, "W"):
			loc.W++
		case r.Location == "D" || r.Location == "DS":
			loc.D++
		}
		if strings.Contains(r.Location, "Dd") {
			loc.Dd++
		}
		if strings.Contains(r.Location, "S") {
			loc.S++
		}

		switch r.DevQual {
		case "+":
			s.DevQual.Plus++
		case "o":
			s.DevQual.Ordinary++
		case "v/+":
			s.DevQual.VaguePlus++
		case "v":
			s.DevQual.Vague++
		}

		tallyFormQual(&s.FQx, r.FormQual)
		if hasPureM(r.Determinants) {
			tallyFormQual(&s.MQual, r.FormQual)
		}
		switch r.Location {
		case "W", "D", "DS", "WS":
			tallyFormQual(&s.WD, r.FormQual)
		}
	}

	loc.Zest = Zest(loc.Zf)
	if loc.Zest > 0 {
		s.Processing.Zd = loc.Zsum - loc.Zest
	}
}

func tallyFormQual(c *domain.FormQualCounts, fq string) {
	switch fq {
	case "+":
		c.Plus++
	case "o":
		c.Ordinary++
	case "u":
		c.Unusual++
	case "-":
		c.Minus++
	case "no", "none":
		c.None++
	}
}

// hasPureM reports whether the raw determinants contain an upper-case M not
// directly preceded by F, i.e. human rather than animal movement.
func hasPureM(raw string) bool {
	for i := 0; i < len(raw); i++ {
		if raw[i] == 'M' && (i == 0 || raw[i-1] != 'F') {
			return true
		}
	}
	return false
}

// ---------------------------------------------------------------------------
// Pass 2
// ---------------------------------------------------------------------------

func classifyResponses(s *domain.StructuralSummary, rs []domain.Response, items []parsed) *tally {
	t := &tally{}
	var approach [LastCard][]string

	for i := range rs {
		r := &rs[i]
		p := items[i]

		t.all = append(t.all, p.determinants...)
		// A stray trailing separator ("F,") leaves one token: not a blend.
		if len(p.rawDets) >= 2 {
			t.blends.WriteString(strings.Join(p.rawDets, "."))
			t.blends.WriteByte(',')
			t.blendCount++
			if containsAny(p.determinants, shadingTokens...) && containsAny(p.determinants, colorTokens...) {
				t.colShdBlends++
			}
			if distinctShading(p.determinants) >= 2 {
				t.shdBlends++
			}
		} else {
			t.single = append(t.single, p.determinants...)
		}
		if strings.TrimSpace(r.Pair) != "" {
			t.single = append(t.single, "2")
			t.all = append(t.all, "2")
		}

		t.contents = append(t.contents, p.contents...)

		specials := slices.Clone(p.specials)
		if tok, ok := ClassifyHumanRepresentation(HumanRepInput{
			Card:         p.card,
			Determinants: p.determinants,
			Contents:     p.contents,
			Specials:     specials,
			FormQual:     r.FormQual,
			Popular:      r.Popular,
		}); ok {
			specials = append(specials, tok)
		}
		t.specials = append(t.specials, specials...)
		r.Special = strings.Join(specials, ",")

		if p.cardOK {
			approach[p.card-1] = append(approach[p.card-1], r.Location)
		}
	}

	for c := range approach {
		s.Approach[c] = strings.Join(approach[c], ".")
	}
	return t
}

func distinctShading(tokens []string) int {
	n := 0
	for _, sh := range shadingTokens {
		if slices.Contains(tokens, sh) {
			n++
		}
	}
	return n
}

// ---------------------------------------------------------------------------
// Frequencies
// ---------------------------------------------------------------------------

func singleFrequencies(c counter) domain.SingleDeterminants {
	return domain.SingleDeterminants{
		M:      c.sum("Ma", "Mp", "Ma-p"),
		FM:     c.sum("fma", "fmp", "fma-p"),
		LowerM: c.sum("ma", "mp", "ma-p"),
		FC:     c["fc"],
		CF:     c["cf"],
		C:      c["c"],
		Cn:     c["cn"],
		FCa:    c["fc'"],
		CaF:    c["c'f"],
		Ca:     c["c'"],
		FT:     c["ft"],
		TF:     c["tf"],
		T:      c["t"],
		FV:     c["fv"],
		VF:     c["vf"],
		V:      c["v"],
		FY:     c["fy"],
		YF:     c["yf"],
		Y:      c["y"],
		Fr:     c["fr"],
		RF:     c["rf"],
		FD:     c["fd"],
		F:      c["f"],
		Pair:   c["2"],
	}
}

func contentFrequencies(c counter) domain.ContentCounts {
	return domain.ContentCounts{
		H:       c["h"],
		HParen:  c["(h)"],
		Hd:      c["hd"],
		HdParen: c["(hd)"],
		Hx:      c["hx"],
		A:       c["a"],
		AParen:  c["(a)"],
		Ad:      c["ad"],
		AdParen: c["(ad)"],
		An:      c["an"],
		Art:     c["art"],
		Ay:      c["ay"],
		Bl:      c["bl"],
		Bt:      c["bt"],
		Cg:      c["cg"],
		Cl:      c["cl"],
		Ex:      c["ex"],
		Fd:      c["fd"],
		Fi:      c["fi"],
		Ge:      c["ge"],
		Hh:      c["hh"],
		Ls:      c["ls"],
		Na:      c["na"],
		Sc:      c["sc"],
		Sx:      c["sx"],
		Xy:      c["xy"],
		Id:      c["id"],
	}
}

func specialFrequencies(c counter) domain.SpecialScores {
	sp := domain.SpecialScores{
		DV:   c["DV"],
		DV2:  c["DV2"],
		DR:   c["DR"],
		DR2:  c["DR2"],
		INC:  c["INC"],
		INC2: c["INC2"],
		FAB:  c["FAB"],
		FAB2: c["FAB2"],
		ALOG: c["ALOG"],
		CON:  c["CON"],
		PSV:  c["PSV"],
		AB:   c["AB"],
		AG:   c["AG"],
		COP:  c["COP"],
		MOR:  c["MOR"],
		PER:  c["PER"],
		CP:   c["CP"],
		GHR:  c["GHR"],
		PHR:  c["PHR"],
	}
	sp.Sum6 = sp.DV + sp.DV2 + sp.DR + sp.DR2 + sp.INC + sp.INC2 + sp.FAB + sp.FAB2 + sp.ALOG + sp.CON
	sp.WSum6 = 1*sp.DV + 2*sp.DV2 + 2*sp.INC + 4*sp.INC2 + 3*sp.DR + 6*sp.DR2 +
		4*sp.FAB + 7*sp.FAB2 + 5*sp.ALOG + 7*sp.CON
	return sp
}

// ---------------------------------------------------------------------------
// Clusters
// ---------------------------------------------------------------------------

// dScoreDivisor sits just above 2.5 so that exact multiples of 2.5 do not
// round up through floating point error.
const dScoreDivisor = 2.5000001

func computeCore(s *domain.StructuralSummary, r int, all counter) {
	c := &s.Core
	c.R = r

	f := s.Single.F
	if r-f != 0 {
		c.Lambda = float64(f) / float64(r-f)
	} else {
		c.Lambda = float64(f) / (float64(r-f) + 0.001)
	}

	c.SumM = all.sum("Ma", "Mp", "Ma-p")
	c.WSumC = 0.5*float64(all["fc"]) + 1.0*float64(all["cf"]) + 1.5*float64(all["c"])
	c.EB = formatEB(c.SumM, c.WSumC)
	c.EA = float64(c.SumM) + c.WSumC

	c.SumFM = all.sum("fma", "fmp", "fma-p")
	c.SumLowerM = all.sum("ma", "mp", "ma-p")
	c.SumCa = all.sum("c'", "fc'", "c'f")
	c.SumV = all.sum("v", "vf", "fv")
	c.SumT = all.sum("t", "tf", "ft")
	c.SumY = all.sum("y", "yf", "fy")
	c.SumShading = c.SumCa + c.SumT + c.SumV + c.SumY
	c.SumFMm = c.SumFM + c.SumLowerM
	c.Eb = ratioString(c.SumFMm, c.SumShading)
	c.Es = c.SumFMm + c.SumShading
	c.AdjEs = c.Es - max(c.SumLowerM-1, 0) - max(c.SumY-1, 0)
	c.DScore = int((c.EA - float64(c.Es)) / dScoreDivisor)
	c.AdjD = int((c.EA - float64(c.AdjEs)) / dScoreDivisor)
	c.EBPer = ebPervasive(c.SumM, c.WSumC, c.EA, c.Lambda)
}

func formatEB(m int, wsumc float64) string {
	return itoa(m) + ":" + formatWeighted(wsumc)
}

// ebPervasive returns the EBPer ratio, or 0 when the experience type is not
// pervasive or one side of EB is empty.
func ebPervasive(sumM int, wsumc, ea, lambda float64) float64 {
	if ea < 4.0 || lambda >= 1.0 {
		return 0
	}
	m := float64(sumM)
	diff := math.Abs(m - wsumc)
	if !((ea <= 10.0 && diff > 2.0) || (ea > 10.0 && diff > 2.5)) {
		return 0
	}
	lo := math.Min(m, wsumc)
	if lo == 0 {
		return 0
	}
	return math.Max(m, wsumc) / lo
}

func computeAffect(s *domain.StructuralSummary, items []parsed, all counter) {
	a := &s.Affect
	fc, cf, c := all["fc"], all["cf"], all["c"]
	a.FCProp = ratioString(fc, cf+c)
	a.PureC = c
	a.CaCProp = itoa(s.Core.SumCa) + ":" + formatWeighted(s.Core.WSumC)

	var late, early int
	for _, p := range items {
		switch {
		case !p.cardOK:
		case p.card >= 8:
			late++
		default:
			early++
		}
	}
	if early != 0 {
		a.Afr = float64(late) / float64(early)
	} else {
		a.Afr = 1
	}
	// A record without blends renders 0:R.
	a.BlendsR = ratioString(s.BlendCount, s.Core.R)
}

func computeInterpersonal(s *domain.StructuralSummary, all counter) {
	in := &s.Interpersonal
	in.GHRPHR = ratioString(s.Special.GHR, s.Special.PHR)
	in.SumA = all.sum("ma", "Ma", "fma", "ma-p", "Ma-p", "fma-p")
	in.SumP = all.sum("mp", "Mp", "fmp", "ma-p", "Ma-p", "fma-p")
	in.AP = ratioString(in.SumA, in.SumP)
	ct := s.Contents
	in.HumanCont = ct.H + ct.HParen + ct.Hd + ct.HdParen
	in.Isol = ratio(ct.Bt+2*ct.Cl+ct.Ge+ct.Ls+2*ct.Na, s.Core.R)
}

func computeIdeation(s *domain.StructuralSummary, all counter) {
	id := &s.Ideation
	id.SumMa = all.sum("Ma", "Ma-p")
	id.SumMp = all.sum("Mp", "Ma-p")
	id.MaMp = ratioString(id.SumMa, id.SumMp)
	sp := s.Special
	id.Lvl2 = sp.DV2 + sp.DR2 + sp.INC2 + sp.FAB2
	id.Intel = 2*sp.AB + s.Contents.Art + s.Contents.Ay
}

func computeMediation(s *domain.StructuralSummary, rs []domain.Response) {
	m := &s.Mediation
	r := s.Core.R
	fq := s.FQx
	m.XMinusPer = ratio(fq.Minus, r)
	m.XAPer = ratio(fq.Plus+fq.Ordinary+fq.Unusual, r)
	wd := s.WD
	m.WDAPer = ratio(wd.Plus+wd.Ordinary+wd.Unusual, wd.Plus+wd.Ordinary+wd.Unusual+wd.Minus+wd.None)
	for _, resp := range rs {
		if strings.Contains(resp.Location, "S") && resp.FormQual == "-" {
			m.SMinus++
		}
		if strings.Contains(resp.Popular, "P") {
			m.Popular++
		}
	}
	m.XPlusPer = ratio(fq.Plus+fq.Ordinary, r)
	m.XuPer = ratio(fq.Unusual, r)
}

func computeProcessing(s *domain.StructuralSummary) {
	loc := s.Location
	s.Processing.WDDd = itoa(loc.W) + ":" + itoa(loc.D) + ":" + itoa(loc.Dd)
	s.Processing.WM = ratioString(loc.W, s.Core.SumM)
}

func computeSelf(s *domain.StructuralSummary, all counter) {
	self := &s.Self
	reflections := all.sum("fr", "rf")
	self.Ego = ratio(3*reflections+s.Single.Pair, s.Core.R)
	self.FrRF = reflections
	self.FD = all["fd"]
	self.AnXy = s.Contents.An + s.Contents.Xy
	self.HProp = ratioString(s.Contents.H, s.Contents.HParen+s.Contents.Hd+s.Contents.HdParen)
}
