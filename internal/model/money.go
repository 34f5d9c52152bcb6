package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Prices and totals are stored as int64 centavos so that arithmetic on
// currency is exact. These helpers convert between that representation
// and the "12.34" strings used on forms and pages, without ever going
// through floating point.

// ParseCents parses a decimal currency string ("15", "15.5", "15.00",
// "15,00") into centavos.
func ParseCents(s string) (int64, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", ".")
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}

	negative := false
	if strings.HasPrefix(s, "-") {
		negative = true
		s = s[1:]
	}

	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" {
		whole = "0"
	}
	switch len(frac) {
	case 0:
		frac = "00"
	case 1:
		frac += "0"
	case 2:
	default:
		return 0, fmt.Errorf("amount %q has more than two decimal places", s)
	}

	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	f, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}

	cents := w*100 + f
	if negative {
		cents = -cents
	}
	return cents, nil
}

// FormatCents renders centavos as a plain "12.34" string.
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
