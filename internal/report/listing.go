package report

import (
	"slices"

	"github.com/heartmarshall/inkblot-backend/internal/domain"
	"github.com/heartmarshall/inkblot-backend/internal/scoring"
)

// ResponseRow is one line of the per-response listing.
type ResponseRow struct {
	Card         string `json:"card"`
	N            int    `json:"n"`
	Time         string `json:"time,omitempty"`
	Response     string `json:"response,omitempty"`
	Inquiry      string `json:"inquiry,omitempty"`
	Rotation     string `json:"rotation,omitempty"`
	Location     string `json:"location"`
	DevQual      string `json:"dev_qual"`
	LocationNum  *int   `json:"loc_num,omitempty"`
	Determinants string `json:"determinants"`
	FormQual     string `json:"form_qual"`
	Content      string `json:"content"`
	Popular      string `json:"popular,omitempty"`
	Z            string `json:"z,omitempty"`
	Special      string `json:"special,omitempty"`
}

// Listing returns the responses in card order with cards as Roman numerals
// and special scores normalized.
func Listing(responses []domain.Response) []ResponseRow {
	rs := slices.Clone(responses)
	scoring.SortByCard(rs)

	rows := make([]ResponseRow, 0, len(rs))
	for _, r := range rs {
		rows = append(rows, ResponseRow{
			Card:         scoring.ToRoman(r.Card),
			N:            r.ResponseNum,
			Time:         r.Time,
			Response:     r.Verbalized,
			Inquiry:      r.Inquiry,
			Rotation:     r.Rotation,
			Location:     r.Location,
			DevQual:      r.DevQual,
			LocationNum:  r.LocationNum,
			Determinants: r.Determinants,
			FormQual:     r.FormQual,
			Content:      r.Content,
			Popular:      r.Popular,
			Z:            r.Z,
			Special:      domain.NormalizeSpecialTokens(r.Special),
		})
	}
	return rows
}
