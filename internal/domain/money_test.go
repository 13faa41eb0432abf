package domain

import "testing"

func TestParseMoney(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"$45,000", 45000},
		{"$1,250.50", 1250.5},
		{"USD 900", 900},
		{"50000", 50000},
		{"-$300", -300},
		{"$1.2.3", 0}, // two decimal points cannot parse -> 0
		{"", 0},
		{"n/a", 0},
		{"$", 0},
		{"0", 0},
	}
	for _, tc := range tests {
		if got := ParseMoney(tc.in); got != tc.want {
			t.Errorf("ParseMoney(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
