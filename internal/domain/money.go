package domain

import "strconv"

// ParseMoney extracts a numeric amount from a currency-formatted string
// ("$45,000", "USD 1,250.50"). Currency symbols, thousands separators and
// other decoration are stripped; anything that still fails to parse yields 0.
// Every place that turns a money string into a number (matching, sorting,
// metadata) must go through here so the edge cases stay identical.
func ParseMoney(s string) float64 {
	buf := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9', c == '.':
			buf = append(buf, c)
		case c == '-' && len(buf) == 0:
			buf = append(buf, c)
		}
	}
	if len(buf) == 0 {
		return 0
	}
	v, err := strconv.ParseFloat(string(buf), 64)
	if err != nil {
		return 0
	}
	return v
}
