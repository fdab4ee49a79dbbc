package scoring

import "strings"

// AdvisoryCode classifies a cross-field Z coding remark.
type AdvisoryCode string

const (
	// AdvisoryZMissing blocks submission: the response needs a Z score.
	AdvisoryZMissing AdvisoryCode = "z_missing"
	// AdvisoryZTooLow is informational; the response is still saved.
	AdvisoryZTooLow AdvisoryCode = "z_too_low"
)

// Advisory is reviewer guidance attached to a single response.
type Advisory struct {
	Code    AdvisoryCode `json:"code"`
	Field   string       `json:"field"`
	Message string       `json:"message"`
}

// Blocking reports whether the advisory prevents the response from being saved.
func (a Advisory) Blocking() bool { return a.Code == AdvisoryZMissing }

var zTooLowCards = map[string]struct{}{
	"1": {}, "4": {}, "5": {}, "I": {}, "II": {}, "III": {},
}

// CheckZ applies the cross-field Z rules to one response. Rules are
// evaluated in order and at most one advisory is returned.
func CheckZ(card, location, devQual, z string) []Advisory {
	switch {
	case strings.Contains(location, "W") && z == "" && devQual != "v":
		return []Advisory{{
			Code:    AdvisoryZMissing,
			Field:   string(KindZ),
			Message: "whole response without Z score; add Z or code dev_qual as v",
		}}
	case strings.Contains(devQual, "+") && z == "":
		return []Advisory{{
			Code:    AdvisoryZMissing,
			Field:   string(KindZ),
			Message: "synthesized response without Z score",
		}}
	}

	if _, ok := zTooLowCards[strings.TrimSpace(card)]; ok &&
		strings.Contains(location, "W") && strings.Contains(devQual, "+") && z == "ZW" {
		return []Advisory{{
			Code:    AdvisoryZTooLow,
			Field:   string(KindZ),
			Message: "ZW may be too low for a synthesized whole response; consider ZA",
		}}
	}
	return nil
}
