package scoring

import (
	"github.com/heartmarshall/inkblot-backend/internal/domain"
)

const (
	depiPositiveAt = 5
	cdiPositiveAt  = 4
	sconPositiveAt = 8
	hviPositiveAt  = 4
)

func crit(name string, met bool) domain.Criterion {
	return domain.Criterion{Name: name, Met: met}
}

// evaluateIndices derives the special indices from an otherwise complete
// summary. S-CON is evaluated for every age.
func evaluateIndices(s *domain.StructuralSummary, all counter) domain.SpecialIndices {
	var idx domain.SpecialIndices

	idx.PTI = pti(s)
	idx.SumPTI = idx.PTI.Count()

	idx.DEPI = depi(s)
	idx.SumDEPI = idx.DEPI.Count()
	idx.DEPIPositive = idx.SumDEPI >= depiPositiveAt

	idx.CDI = cdi(s)
	idx.SumCDI = idx.CDI.Count()
	idx.CDIPositive = idx.SumCDI >= cdiPositiveAt

	idx.SCON = scon(s, all)
	idx.SumSCON = idx.SCON.Count()
	idx.SCONPositive = idx.SumSCON >= sconPositiveAt

	idx.HVIPremise = s.Core.SumT == 0
	idx.HVI, idx.HVIExcept = hvi(s)
	idx.SumHVI = idx.HVI.Count()
	idx.HVIPositive = idx.HVIPremise && idx.SumHVI >= hviPositiveAt

	idx.OBS = obs(s)
	idx.OBSPositive = idx.OBS.AnyMet(5)

	return idx
}

func pti(s *domain.StructuralSummary) domain.Criteria {
	short, long := wsum6LimitsFor(s.Age)
	r, wsum6 := s.Core.R, s.Special.WSum6
	med := s.Mediation
	return domain.Criteria{
		crit("XA%<.70 AND WDA%<.75", med.XAPer < 0.70 && med.WDAPer < 0.75),
		crit("X-%>.29", med.XMinusPer > 0.29),
		crit("LVL2>2 AND FAB2>0", s.Ideation.Lvl2 > 2 && s.Special.FAB2 > 0),
		crit("R<17 AND WSum6>short limit OR R>16 AND WSum6>long limit",
			(r < 17 && wsum6 > short) || (r > 16 && wsum6 > long)),
		crit("M->1 OR X-%>.40", s.MQual.Minus > 1 || med.XMinusPer > 0.40),
	}
}

func depi(s *domain.StructuralSummary) domain.Criteria {
	ego := egoRangeFor(s.Age)
	c, self, sp := s.Core, s.Self, s.Special
	return domain.Criteria{
		crit("SumV>0 OR FD>2", c.SumV > 0 || self.FD > 2),
		crit("Col-Shd Blends>0 OR S>2", s.ColShdBlends > 0 || s.Location.S > 2),
		crit("3r+(2)/R high AND Fr+rF=0 OR 3r+(2)/R low",
			(self.Ego > ego.high && self.FrRF == 0) || self.Ego < ego.low),
		crit("Afr low OR Blends<4", s.Affect.Afr < afrThreshold(s.Age) || s.BlendCount < 4),
		crit("SumShading>FM+m OR SumC'>2", c.SumShading > c.SumFMm || c.SumCa > 2),
		crit("MOR>2 OR 2AB+Art+Ay>3", sp.MOR > 2 || s.Ideation.Intel > 3),
		crit("COP<2 OR Isolate/R>.24", sp.COP < 2 || s.Interpersonal.Isol > 0.24),
	}
}

func cdi(s *domain.StructuralSummary) domain.Criteria {
	c, sp, in := s.Core, s.Special, s.Interpersonal
	return domain.Criteria{
		crit("EA<6 OR AdjD<0", c.EA < 6 || c.AdjD < 0),
		crit("COP<2 AND AG<2", sp.COP < 2 && sp.AG < 2),
		crit("WSumC<2.5 OR Afr low", c.WSumC < 2.5 || s.Affect.Afr < afrThreshold(s.Age)),
		crit("p>a+1 OR pure H<2", in.SumP > in.SumA+1 || s.Contents.H < 2),
		crit("SumT>1 OR Isolate/R>.24 OR Fd>0", c.SumT > 1 || in.Isol > 0.24 || s.Contents.Fd > 0),
	}
}

// scon compares color determinants over every response, blends included.
func scon(s *domain.StructuralSummary, all counter) domain.Criteria {
	c, self := s.Core, s.Self
	zd := s.Processing.Zd
	p := s.Mediation.Popular
	return domain.Criteria{
		crit("FV+VF+V+FD>2", c.SumV+self.FD > 2),
		crit("Col-Shd Blends>0", s.ColShdBlends > 0),
		crit("3r+(2)/R<.31 OR >.44", self.Ego < 0.31 || self.Ego > 0.44),
		crit("MOR>3", s.Special.MOR > 3),
		crit("Zd>+3.5 OR Zd<-3.5", zd > 3.5 || zd < -3.5),
		crit("es>EA", float64(c.Es) > c.EA),
		crit("CF+C>FC", all["cf"]+all["c"] > all["fc"]),
		crit("X+%<.70", s.Mediation.XPlusPer < 0.70),
		crit("S>3", s.Location.S > 3),
		crit("P<3 OR P>8", p < 3 || p > 8),
		crit("Pure H<2", s.Contents.H < 2),
		crit("R<17", c.R < 17),
	}
}

func hvi(s *domain.StructuralSummary) (domain.Criteria, string) {
	ct := s.Contents
	var except string
	whole, parts := ct.H+ct.A, ct.Hd+ct.Ad
	ratioMet := false
	if parts == 0 {
		except = ratioString(whole, parts)
	} else {
		ratioMet = float64(whole)/float64(parts) < 4
	}
	return domain.Criteria{
		crit("Zf>12", s.Location.Zf > 12),
		crit("Zd>+3.5", s.Processing.Zd > 3.5),
		crit("S>3", s.Location.S > 3),
		crit("H+(H)+Hd+(Hd)>6", s.Interpersonal.HumanCont > 6),
		crit("(H)+(A)+(Hd)+(Ad)>3", ct.HParen+ct.AParen+ct.HdParen+ct.AdParen > 3),
		crit("H+A:Hd+Ad<4:1", ratioMet),
		crit("Cg>3", ct.Cg > 3),
	}, except
}

func obs(s *domain.StructuralSummary) domain.Criteria {
	loc, med := s.Location, s.Mediation
	base := domain.Criteria{
		crit("Dd>3", loc.Dd > 3),
		crit("Zf>12", loc.Zf > 12),
		crit("Zd>+3.0", s.Processing.Zd > 3.0),
		crit("P>7", med.Popular > 7),
		crit("FQ+>1", s.FQx.Plus > 1),
	}
	firstFour := base[:4].Count()
	return append(base,
		// Condition 6 reads 1-4 only; FQ+>1 is not required.
		crit("conditions 1-4 all true", firstFour == 4),
		crit("2 or more of 1-4 true AND FQ+>3", firstFour >= 2 && s.FQx.Plus > 3),
		crit("3 or more of 1-5 true AND X+%>.89", base.Count() >= 3 && med.XPlusPer > 0.89),
		crit("FQ+>3 AND X+%>.89", s.FQx.Plus > 3 && med.XPlusPer > 0.89),
	)
}
