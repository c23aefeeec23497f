// Package money represents amounts as integer cents to keep cart and
// order arithmetic exact.
package money

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Cents is a USD amount in minor units.
type Cents int64

var ErrInvalidAmount = errors.New("invalid amount")

// Parse converts a decimal string like "89.99" into cents. Amounts must be
// non-negative and carry at most two fractional digits.
func Parse(s string) (Cents, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	if strings.HasPrefix(s, "-") {
		return 0, ErrInvalidAmount
	}

	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" {
		whole = "0"
	}
	if len(frac) > 2 {
		return 0, ErrInvalidAmount
	}
	for len(frac) < 2 {
		frac += "0"
	}

	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	f, err := strconv.ParseUint(frac, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}

	return Cents(w*100 + int64(f)), nil
}

// Format renders cents as a plain decimal string, e.g. 8999 -> "89.99".
func Format(c Cents) string {
	sign := ""
	if c < 0 {
		sign = "-"
		c = -c
	}
	return fmt.Sprintf("%s%d.%02d", sign, c/100, c%100)
}

// String implements fmt.Stringer.
func (c Cents) String() string { return Format(c) }
