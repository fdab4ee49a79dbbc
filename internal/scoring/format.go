package scoring

import (
	"fmt"
	"strconv"
	"strings"
)

// formatWeighted renders a weighted sum the way ratio strings expect it:
// shortest representation, with ".0" kept on whole numbers (2 -> "2.0").
func formatWeighted(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func ratioString(a, b int) string { return fmt.Sprintf("%d:%d", a, b) }

// ratio divides num by den and yields 0 for an empty denominator.
func ratio(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}

func itoa(n int) string { return strconv.Itoa(n) }

// SplitBlends returns the individual blends of a summary's Blends field.
func SplitBlends(blends string) []string {
	var out []string
	for _, b := range strings.Split(blends, ",") {
		if b != "" {
			out = append(out, b)
		}
	}
	return out
}
