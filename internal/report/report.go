// Package report projects a structural summary onto the three-sheet report
// layout: the upper section (frequencies), the lower section (ratios,
// percentages and derivations) and the special indices.
package report

import (
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/inkblot-backend/internal/domain"
	"github.com/heartmarshall/inkblot-backend/internal/scoring"
)

// Sheet names.
const (
	SheetUpper   = "upper"
	SheetLower   = "lower"
	SheetIndices = "indices"
)

// NA is printed for variables that are undefined for the protocol.
const NA = "NA"

const checkMark = "✔"

// Positivity thresholds of the index summary line.
const (
	ptiPositive  = 3
	depiPositive = 5
	cdiPositive  = 4
	sconPositive = 8
	hviPositive  = 4
)

// Cell is one value of the report. Ref is the spreadsheet-style position
// of the value, Label its caption.
type Cell struct {
	Ref   string `json:"ref"`
	Label string `json:"label"`
	Value string `json:"value"`
}

type Sheet struct {
	Name  string `json:"name"`
	Cells []Cell `json:"cells"`
}

// Lookup returns the cell at ref.
func (s Sheet) Lookup(ref string) (Cell, bool) {
	for _, c := range s.Cells {
		if c.Ref == ref {
			return c, true
		}
	}
	return Cell{}, false
}

// IndexFlag is one entry of the index summary line, e.g. "DEPI=5".
type IndexFlag struct {
	Name     string `json:"name"`
	Score    int    `json:"score"`
	Positive bool   `json:"positive"`
}

func (f IndexFlag) String() string {
	s := f.Name + "=" + strconv.Itoa(f.Score)
	if f.Positive {
		return checkMark + " " + s
	}
	return s
}

// Report is the rendered form of one summary.
type Report struct {
	SubjectID uuid.UUID     `json:"subject_id"`
	Sheets    []Sheet       `json:"sheets"`
	Flags     []IndexFlag   `json:"flags"`
	Responses []ResponseRow `json:"responses,omitempty"`
}

// Sheet returns the sheet with the given name.
func (r Report) Sheet(name string) (Sheet, bool) {
	for _, s := range r.Sheets {
		if s.Name == name {
			return s, true
		}
	}
	return Sheet{}, false
}

// Project lays out every variable of s.
func Project(s domain.StructuralSummary) Report {
	return Report{
		SubjectID: s.SubjectID,
		Sheets:    []Sheet{upper(s), lower(s), indices(s)},
		Flags:     Flags(s.Indices),
	}
}

// Flags builds the index summary line.
func Flags(idx domain.SpecialIndices) []IndexFlag {
	return []IndexFlag{
		{Name: "PTI", Score: idx.SumPTI, Positive: idx.SumPTI >= ptiPositive},
		{Name: "HVI", Score: idx.SumHVI, Positive: idx.SumHVI >= hviPositive && idx.HVIPremise},
		{Name: "DEPI", Score: idx.SumDEPI, Positive: idx.SumDEPI >= depiPositive},
		{Name: "OBS", Score: idx.OBS.Count(), Positive: idx.OBSPositive},
		{Name: "CDI", Score: idx.SumCDI, Positive: idx.SumCDI >= cdiPositive},
		{Name: "S-CON", Score: idx.SumSCON, Positive: idx.SumSCON >= sconPositive},
	}
}

// ---------------------------------------------------------------------------
// Upper section
// ---------------------------------------------------------------------------

func upper(s domain.StructuralSummary) Sheet {
	b := newBuilder(SheetUpper)

	loc := s.Location
	b.int("B5", "Zf", loc.Zf)
	b.add("B6", "Zsum", num(loc.Zsum))
	b.add("B7", "Zest", naIfZero(loc.Zest, num))
	b.int("B9", "W", loc.W)
	b.int("B10", "D", loc.D)
	b.int("B11", "Dd", loc.Dd)
	b.int("B12", "S", loc.S)

	dq := s.DevQual
	b.int("B15", "+", dq.Plus)
	b.int("B16", "o", dq.Ordinary)
	b.int("B17", "v/+", dq.VaguePlus)
	b.int("B18", "v", dq.Vague)

	formQual(b, "B", "FQx", s.FQx)
	formQual(b, "C", "MQual", s.MQual)
	formQual(b, "D", "W+D", s.WD)

	for i, blend := range scoring.SplitBlends(s.Blends) {
		b.add("F"+strconv.Itoa(6+i), "Blend", blend)
	}

	sd := s.Single
	singles := []struct {
		label string
		v     int
	}{
		{"M", sd.M}, {"FM", sd.FM}, {"m", sd.LowerM},
		{"FC", sd.FC}, {"CF", sd.CF}, {"C", sd.C}, {"Cn", sd.Cn},
		{"FC'", sd.FCa}, {"C'F", sd.CaF}, {"C'", sd.Ca},
		{"FT", sd.FT}, {"TF", sd.TF}, {"T", sd.T},
		{"FV", sd.FV}, {"VF", sd.VF}, {"V", sd.V},
		{"FY", sd.FY}, {"YF", sd.YF}, {"Y", sd.Y},
		{"Fr", sd.Fr}, {"rF", sd.RF}, {"FD", sd.FD}, {"F", sd.F},
		{"(2)", sd.Pair},
	}
	for i, d := range singles {
		b.int("H"+strconv.Itoa(6+i), d.label, d.v)
	}

	ct := s.Contents
	contents := []struct {
		label string
		v     int
	}{
		{"H", ct.H}, {"(H)", ct.HParen}, {"Hd", ct.Hd}, {"(Hd)", ct.HdParen}, {"Hx", ct.Hx},
		{"A", ct.A}, {"(A)", ct.AParen}, {"Ad", ct.Ad}, {"(Ad)", ct.AdParen}, {"An", ct.An},
		{"Art", ct.Art}, {"Ay", ct.Ay}, {"Bl", ct.Bl}, {"Bt", ct.Bt}, {"Cg", ct.Cg},
		{"Cl", ct.Cl}, {"Ex", ct.Ex}, {"Fd", ct.Fd}, {"Fi", ct.Fi}, {"Ge", ct.Ge},
		{"Hh", ct.Hh}, {"Ls", ct.Ls}, {"Na", ct.Na}, {"Sc", ct.Sc}, {"Sx", ct.Sx},
		{"Xy", ct.Xy}, {"Id", ct.Id},
	}
	for i, c := range contents {
		b.int("K"+strconv.Itoa(5+i), c.label, c.v)
	}

	for i, app := range s.Approach {
		b.add("N"+strconv.Itoa(5+i), scoring.Card(i+1).Roman(), app)
	}

	sp := s.Special
	b.int("N18", "DV", sp.DV)
	b.int("N19", "INC", sp.INC)
	b.int("N20", "DR", sp.DR)
	b.int("N21", "FAB", sp.FAB)
	b.int("N22", "ALOG", sp.ALOG)
	b.int("N23", "CON", sp.CON)
	b.int("O18", "DV2", sp.DV2)
	b.int("O19", "INC2", sp.INC2)
	b.int("O20", "DR2", sp.DR2)
	b.int("O21", "FAB2", sp.FAB2)
	b.int("N24", "Raw Sum6", sp.Sum6)
	b.int("N25", "Weighted Sum6", sp.WSum6)
	b.int("N26", "AB", sp.AB)
	b.int("N27", "AG", sp.AG)
	b.int("N28", "COP", sp.COP)
	b.int("N29", "CP", sp.CP)
	b.int("P26", "GHR", sp.GHR)
	b.int("P27", "PHR", sp.PHR)
	b.int("P28", "MOR", sp.MOR)
	b.int("P29", "PER", sp.PER)
	b.int("P30", "PSV", sp.PSV)

	return b.sheet()
}

func formQual(b *builder, col, name string, fq domain.FormQualCounts) {
	b.int(col+"22", name+" +", fq.Plus)
	b.int(col+"23", name+" o", fq.Ordinary)
	b.int(col+"24", name+" u", fq.Unusual)
	b.int(col+"25", name+" -", fq.Minus)
	b.int(col+"26", name+" none", fq.None)
}

// ---------------------------------------------------------------------------
// Lower section
// ---------------------------------------------------------------------------

func lower(s domain.StructuralSummary) Sheet {
	b := newBuilder(SheetLower)
	c := s.Core

	// Core
	b.int("B4", "R", c.R)
	b.add("D4", "L", fixed(c.Lambda))
	b.add("B5", "EB", c.EB)
	b.add("B6", "eb", c.Eb)
	b.add("D5", "EA", num(c.EA))
	b.int("D6", "es", c.Es)
	b.int("D7", "Adj es", c.AdjEs)
	b.add("F5", "EBper", naIfZero(c.EBPer, num))
	b.int("F6", "D", c.DScore)
	b.int("F7", "Adj D", c.AdjD)
	b.int("B8", "FM", c.SumFM)
	b.int("B9", "m", c.SumLowerM)
	b.int("D8", "SumC'", c.SumCa)
	b.int("D9", "SumV", c.SumV)
	b.int("F8", "SumT", c.SumT)
	b.int("F9", "SumY", c.SumY)

	// Affect
	af := s.Affect
	b.add("I4", "FC:CF+C", af.FCProp)
	b.int("I5", "Pure C", af.PureC)
	b.add("I6", "SumC':WSumC", af.CaCProp)
	b.add("I7", "Afr", fixed(af.Afr))
	b.int("I8", "S", s.Location.S)
	b.add("I9", "Blends:R", af.BlendsR)
	b.int("I10", "CP", s.Special.CP)

	// Interpersonal
	in := s.Interpersonal
	b.int("L4", "COP", s.Special.COP)
	b.int("N4", "AG", s.Special.AG)
	b.add("M5", "GHR:PHR", in.GHRPHR)
	b.add("M6", "a:p", in.AP)
	b.int("M7", "Food", s.Contents.Fd)
	b.int("M8", "SumT", c.SumT)
	b.int("M9", "Human Content", in.HumanCont)
	b.int("M10", "Pure H", s.Contents.H)
	b.int("M11", "PER", s.Special.PER)
	b.add("M12", "Isolation Index", fixed(in.Isol))

	// Ideation
	b.add("B15", "a:p", in.AP)
	b.add("B16", "Ma:Mp", s.Ideation.MaMp)
	b.int("B17", "Intel(2AB+Art+Ay)", s.Ideation.Intel)
	b.int("B18", "MOR", s.Special.MOR)
	b.int("D15", "Sum6", s.Special.Sum6)
	b.int("D16", "Lvl-2", s.Ideation.Lvl2)
	b.int("D17", "WSum6", s.Special.WSum6)
	b.int("D18", "M-", s.MQual.Minus)
	b.int("D19", "M none", s.MQual.None)

	// Mediation
	md := s.Mediation
	b.add("G15", "XA%", fixed(md.XAPer))
	b.add("G16", "WDA%", fixed(md.WDAPer))
	b.add("G17", "X-%", fixed(md.XMinusPer))
	b.int("G18", "S-", md.SMinus)
	b.int("G19", "P", md.Popular)
	b.add("G20", "X+%", fixed(md.XPlusPer))
	b.add("G21", "Xu%", fixed(md.XuPer))

	// Processing
	pr := s.Processing
	b.int("J15", "Zf", s.Location.Zf)
	b.add("J16", "W:D:Dd", pr.WDDd)
	b.add("J17", "W:M", pr.WM)
	if s.Location.Zest == 0 {
		b.add("J18", "Zd", NA)
	} else {
		b.add("J18", "Zd", signed(pr.Zd))
	}
	b.int("J19", "PSV", s.Special.PSV)
	b.int("J20", "DQ+", s.DevQual.Plus)
	b.int("J21", "DQv", s.DevQual.Vague)

	// Self
	sf := s.Self
	b.add("M15", "Ego[3r+(2)/R]", fixed(sf.Ego))
	b.int("M16", "Fr+rF", sf.FrRF)
	b.int("M17", "SumV", c.SumV)
	b.int("M18", "FD", sf.FD)
	b.int("M19", "An+Xy", sf.AnXy)
	b.int("M20", "MOR", s.Special.MOR)
	b.add("M21", "H:(H)+Hd+(Hd)", sf.HProp)

	return b.sheet()
}

// ---------------------------------------------------------------------------
// Special indices
// ---------------------------------------------------------------------------

func indices(s domain.StructuralSummary) Sheet {
	b := newBuilder(SheetIndices)
	idx := s.Indices

	b.criteria("B", 2, idx.PTI)
	b.int("B7", "PTI TOTAL", idx.SumPTI)

	b.criteria("B", 10, idx.DEPI)
	b.int("B17", "DEPI TOTAL", idx.SumDEPI)
	b.bool("B18", "DEPI POSITIVE?", idx.DEPIPositive)

	b.criteria("B", 21, idx.CDI)
	b.int("B26", "CDI TOTAL", idx.SumCDI)
	b.bool("B27", "CDI POSITIVE?", idx.CDIPositive)

	b.criteria("E", 2, idx.SCON)
	b.int("E14", "S-CON TOTAL", idx.SumSCON)
	b.bool("E15", "S-CON POSITIVE?", idx.SCONPositive)

	b.bool("E18", "SumT = 0", idx.HVIPremise)
	b.criteria("E", 19, idx.HVI)
	b.int("E26", "HVI TOTAL", idx.SumHVI)
	b.bool("E27", "HVI POSITIVE?", idx.HVIPositive)
	if idx.HVIExcept != "" {
		b.add("E28", "H+A:Hd+Ad", idx.HVIExcept)
	}

	if len(idx.OBS) > 5 {
		b.criteria("C", 30, idx.OBS[:5])
		b.criteria("E", 30, idx.OBS[5:])
	} else {
		b.criteria("C", 30, idx.OBS)
	}
	b.int("F29", "OBS TOTAL", idx.OBS.Count())
	b.bool("E34", "OBS POSITIVE?", idx.OBSPositive)

	return b.sheet()
}

// ---------------------------------------------------------------------------
// Cell builder
// ---------------------------------------------------------------------------

type builder struct {
	name  string
	cells []Cell
}

func newBuilder(name string) *builder {
	return &builder{name: name}
}

func (b *builder) add(ref, label, value string) {
	b.cells = append(b.cells, Cell{Ref: ref, Label: label, Value: value})
}

func (b *builder) int(ref, label string, v int) {
	b.add(ref, label, strconv.Itoa(v))
}

func (b *builder) bool(ref, label string, v bool) {
	b.add(ref, label, strconv.FormatBool(v))
}

// criteria writes one check cell per criterion down column col.
func (b *builder) criteria(col string, row int, cs domain.Criteria) {
	for i, c := range cs {
		v := ""
		if c.Met {
			v = checkMark
		}
		b.add(col+strconv.Itoa(row+i), c.Name, v)
	}
}

func (b *builder) sheet() Sheet {
	return Sheet{Name: b.name, Cells: b.cells}
}

// num prints v in its shortest form.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// fixed prints v with two decimals.
func fixed(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// signed prints v with an explicit plus sign on positive values.
func signed(v float64) string {
	if v > 0 {
		return "+" + num(v)
	}
	return num(v)
}

func naIfZero(v float64, format func(float64) string) string {
	if v == 0 {
		return NA
	}
	return format(v)
}
