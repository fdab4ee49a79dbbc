package domain

import "strings"

// Criterion is one named condition of a special index.
type Criterion struct {
	Name string `json:"name"`
	Met  bool   `json:"met"`
}

// Criteria is the ordered criterion vector of a special index.
type Criteria []Criterion

// Count returns the number of met criteria.
func (c Criteria) Count() int {
	n := 0
	for _, cr := range c {
		if cr.Met {
			n++
		}
	}
	return n
}

// Render returns the vector in its printed form: "o" for a met criterion,
// "x" otherwise, e.g. "oxxox".
func (c Criteria) Render() string {
	var b strings.Builder
	b.Grow(len(c))
	for _, cr := range c {
		if cr.Met {
			b.WriteByte('o')
		} else {
			b.WriteByte('x')
		}
	}
	return b.String()
}

// AnyMet reports whether any criterion at index from or later is met.
func (c Criteria) AnyMet(from int) bool {
	for i := from; i < len(c); i++ {
		if c[i].Met {
			return true
		}
	}
	return false
}
