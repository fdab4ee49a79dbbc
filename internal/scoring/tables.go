package scoring

import "math"

// ZCode is the organizational activity code of a response.
type ZCode int

const (
	ZNone ZCode = iota
	ZW
	ZA
	ZD
	ZS
)

// ParseZCode maps the coded Z value to its enum. The empty string and any
// unknown code yield ZNone, false.
func ParseZCode(s string) (ZCode, bool) {
	switch s {
	case "ZW":
		return ZW, true
	case "ZA":
		return ZA, true
	case "ZD":
		return ZD, true
	case "ZS":
		return ZS, true
	}
	return ZNone, false
}

// zScores is indexed by [card-1][code-1] in ZW, ZA, ZD, ZS order.
var zScores = [LastCard][4]float64{
	{1.0, 4.0, 6.0, 3.5},
	{4.5, 3.0, 5.5, 4.5},
	{5.5, 3.0, 4.0, 4.5},
	{2.0, 4.0, 3.5, 5.0},
	{1.0, 2.5, 5.0, 4.0},
	{2.5, 2.5, 6.0, 6.5},
	{2.5, 1.0, 3.0, 4.0},
	{4.5, 3.0, 3.0, 4.0},
	{5.5, 2.5, 4.5, 5.0},
	{5.5, 4.0, 4.5, 6.0},
}

// ZScore returns the organizational weight for a card and code, or 0 when
// either is out of range.
func ZScore(c Card, z ZCode) float64 {
	if !c.IsValid() || z == ZNone {
		return 0
	}
	return zScores[c-1][z-1]
}

// zestByZf is indexed by Zf; entry 0 means no organizational activity.
var zestByZf = [...]float64{
	0,
	0, 2.5, 6.0, 10.0, 13.5, 17.0, 20.5, 24.0, 27.5, 31.0,
	34.5, 38.0, 41.5, 45.5, 49.0, 51.5, 56.0, 59.5, 63.0, 66.5,
	70.0, 73.5, 77.0, 81.0, 84.5, 88.0, 91.5, 95.0, 98.5, 102.5,
	105.5, 109.5, 112.5, 116.5, 120.0, 123.5, 127.0, 130.5, 134.0, 137.5,
	141.0, 144.0, 148.0, 152.0, 155.5, 159.0, 162.5, 166.0, 169.5, 173.0,
}

// Zest returns the expected Zsum for a Zf. Frequencies above the table
// saturate at its last entry.
func Zest(zf int) float64 {
	switch {
	case zf <= 0:
		return 0
	case zf >= len(zestByZf):
		return zestByZf[len(zestByZf)-1]
	}
	return zestByZf[zf]
}

type ageBand struct {
	minAge, maxAge int
}

func (b ageBand) contains(age int) bool { return age >= b.minAge && age <= b.maxAge }

// wsum6Limit is the WSum6 ceiling for short (R<17) and long records.
type wsum6Limit struct {
	band        ageBand
	short, long int
}

var wsum6Limits = [...]wsum6Limit{
	{ageBand{5, 7}, 16, 20},
	{ageBand{8, 10}, 15, 19},
	{ageBand{11, 13}, 14, 18},
	{ageBand{14, math.MaxInt}, 12, 16},
}

// wsum6LimitsFor falls back to the youngest band for ages below every band.
func wsum6LimitsFor(age int) (short, long int) {
	for _, l := range wsum6Limits {
		if l.band.contains(age) {
			return l.short, l.long
		}
	}
	return wsum6Limits[0].short, wsum6Limits[0].long
}

type afrLimit struct {
	band ageBand
	min  float64
}

var afrLimits = [...]afrLimit{
	{ageBand{5, 6}, 0.57},
	{ageBand{7, 9}, 0.55},
	{ageBand{10, 13}, 0.53},
	{ageBand{14, math.MaxInt}, 0.46},
}

// afrThreshold returns the Afr cut-off below which the DEPI and CDI
// criteria fire. Ages below every band use the youngest band.
func afrThreshold(age int) float64 {
	for _, l := range afrLimits {
		if l.band.contains(age) {
			return l.min
		}
	}
	return afrLimits[0].min
}

// egoRange holds the DEPI egocentricity cut-offs as (high, low) pairs.
type egoRange struct {
	high, low float64
}

// egoByAge covers ages 5 through 16; older subjects use adultEgo.
var egoByAge = map[int]egoRange{
	5:  {0.55, 0.83},
	6:  {0.52, 0.82},
	7:  {0.52, 0.77},
	8:  {0.48, 0.74},
	9:  {0.45, 0.69},
	10: {0.45, 0.63},
	11: {0.45, 0.58},
	12: {0.38, 0.58},
	13: {0.38, 0.56},
	14: {0.37, 0.54},
	15: {0.33, 0.50},
	16: {0.33, 0.48},
}

var adultEgo = egoRange{0.33, 0.44}

func egoRangeFor(age int) egoRange {
	if age > 16 {
		return adultEgo
	}
	if r, ok := egoByAge[age]; ok {
		return r
	}
	return egoByAge[5]
}
