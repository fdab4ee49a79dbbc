package scoring

import (
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Card is an inkblot plate number, 1 through 10.
type Card int

const (
	FirstCard Card = 1
	LastCard  Card = 10
)

var romanNumerals = [...]string{"", "I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX", "X"}

var romanToCard = map[string]Card{
	"I": 1, "II": 2, "III": 3, "IV": 4, "V": 5,
	"VI": 6, "VII": 7, "VIII": 8, "IX": 9, "X": 10,
}

func (c Card) IsValid() bool { return c >= FirstCard && c <= LastCard }

// Roman returns the Roman numeral for the card, or "" when out of range.
func (c Card) Roman() string {
	if !c.IsValid() {
		return ""
	}
	return romanNumerals[c]
}

// String returns the Arabic form used for storage.
func (c Card) String() string { return strconv.Itoa(int(c)) }

// ParseCard resolves any accepted card spelling (Arabic, ASCII Roman or
// the Unicode Roman numeral code points) to a Card.
func ParseCard(s string) (Card, bool) {
	folded := strings.ToUpper(norm.NFKC.String(strings.TrimSpace(s)))
	if c, ok := romanToCard[folded]; ok {
		return c, true
	}

	stripped := strings.Map(func(r rune) rune {
		switch {
		case r == 'I', r == 'V', r == 'X', r >= '0' && r <= '9':
			return r
		}
		return -1
	}, folded)
	if c, ok := romanToCard[stripped]; ok {
		return c, true
	}

	n, err := strconv.Atoi(stripped)
	if err != nil || strconv.Itoa(n) != stripped {
		return 0, false
	}
	c := Card(n)
	return c, c.IsValid()
}

// NormalizeToNumber returns the Arabic numeral string for a card label.
// Unrecognized input is returned trimmed but otherwise unchanged.
func NormalizeToNumber(s string) string {
	if c, ok := ParseCard(s); ok {
		return c.String()
	}
	return strings.TrimSpace(s)
}

// ToRoman returns the Roman numeral for a card label. Unrecognized input
// is returned trimmed but otherwise unchanged.
func ToRoman(s string) string {
	if c, ok := ParseCard(s); ok {
		return c.Roman()
	}
	return strings.TrimSpace(s)
}

// MissingCards returns the Roman numerals of the cards that have no
// response among cards, in card order.
func MissingCards(cards []string) []string {
	var seen [LastCard + 1]bool
	for _, s := range cards {
		if c, ok := ParseCard(s); ok {
			seen[c] = true
		}
	}
	var missing []string
	for c := FirstCard; c <= LastCard; c++ {
		if !seen[c] {
			missing = append(missing, c.Roman())
		}
	}
	return missing
}
