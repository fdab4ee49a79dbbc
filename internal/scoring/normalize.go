package scoring

import (
	"github.com/heartmarshall/inkblot-backend/internal/domain"
)

// NormalizeResponse cleans a response as typed by an examiner or read from
// an import sheet, before symbol validation. The card is stored in Roman
// form. fixed reports whether a determinant typo was corrected.
func NormalizeResponse(r domain.Response) (out domain.Response, fixed bool) {
	out = r
	out.Card = ToRoman(r.Card)
	out.Time = domain.NormalizeCodedValue(r.Time)
	out.Rotation = domain.NormalizeCodedValue(r.Rotation)
	out.Location = domain.NormalizeCodedValue(r.Location)
	out.DevQual = domain.NormalizeCodedValue(r.DevQual)
	out.FormQual = domain.NormalizeCodedValue(r.FormQual)
	out.Pair = domain.NormalizeCodedValue(r.Pair)
	out.Content = domain.NormalizeCodedValue(r.Content)
	out.Popular = domain.NormalizeCodedValue(r.Popular)
	out.Z = domain.NormalizeCodedValue(r.Z)

	out.Determinants, fixed = domain.FixDeterminantTypos(domain.NormalizeCodedValue(r.Determinants))
	out.Special = domain.NormalizeSpecialTokens(domain.NormalizeCodedValue(r.Special))
	return out, fixed
}

// ValidateResponse checks every coded field of a normalized response and
// returns the per-field failures. Optional fields are only checked when
// set.
func ValidateResponse(r domain.Response) []domain.FieldError {
	var errs []domain.FieldError
	check := func(kind FieldKind, value string, required bool) {
		if value == "" && !required {
			return
		}
		if _, err := ValidateSymbol(kind, value); err != nil {
			errs = append(errs, domain.FieldError{Field: kind.String(), Message: err.Error()})
		}
	}

	check(KindCard, r.Card, true)
	check(KindLocation, r.Location, true)
	check(KindDevQual, r.DevQual, true)
	check(KindDeterminants, r.Determinants, true)
	check(KindFormQual, r.FormQual, true)
	check(KindContents, r.Content, true)
	check(KindPair, r.Pair, false)
	check(KindPopular, r.Popular, false)
	check(KindZ, r.Z, false)
	check(KindSpecial, r.Special, false)
	return errs
}
