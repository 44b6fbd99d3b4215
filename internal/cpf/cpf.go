// Package cpf validates Brazilian taxpayer identity numbers (CPF).
//
// A CPF is 11 numerals: 9 base digits followed by two check digits. Each
// check digit is (weighted sum × 10) mod 11 over the preceding digits, with
// descending weights starting at 10 for the first and 11 for the second; a
// result of 10 is written as 0.
//
// Validation is a pure string check. Punctuated input ("111.444.777-35") is
// rejected; callers strip formatting before validating.
package cpf

import (
	"errors"
	"strings"
)

const (
	// Length is the number of numerals in a CPF.
	Length = 11
	// BaseLength is the number of digits the check digits are computed from.
	BaseLength = 9
)

// ErrMalformed is returned by CheckDigits when the base is not 9 numerals.
var ErrMalformed = errors.New("cpf: base must be 9 numerals")

// Validate reports whether id is an 11-numeral CPF whose trailing check
// digits match its first nine. It never panics.
func Validate(id string) bool {
	if len(id) != Length {
		return false
	}
	digits, err := CheckDigits(id[:BaseLength])
	if err != nil {
		return false
	}
	return id[:BaseLength]+digits == id
}

// CheckDigits returns the two check digits expected for a 9-numeral base.
func CheckDigits(base string) (string, error) {
	if len(base) != BaseLength {
		return "", ErrMalformed
	}
	values := make([]int, 0, Length-1)
	for i := 0; i < len(base); i++ {
		c := base[i]
		if c < '0' || c > '9' {
			return "", ErrMalformed
		}
		values = append(values, int(c-'0'))
	}

	first := checkDigit(values, 10)
	values = append(values, first)
	second := checkDigit(values, 11)

	return string(rune('0'+first)) + string(rune('0'+second)), nil
}

// checkDigit weights values from startWeight down to 2.
func checkDigit(values []int, startWeight int) int {
	sum := 0
	for i, v := range values {
		sum += v * (startWeight - i)
	}
	d := (sum * 10) % 11
	if d == 10 {
		return 0
	}
	return d
}

// Format renders a valid-length CPF as 000.000.000-00. Other input is
// returned unchanged.
func Format(id string) string {
	if len(id) != Length {
		return id
	}
	var b strings.Builder
	b.Grow(Length + 3)
	b.WriteString(id[0:3])
	b.WriteByte('.')
	b.WriteString(id[3:6])
	b.WriteByte('.')
	b.WriteString(id[6:9])
	b.WriteByte('-')
	b.WriteString(id[9:11])
	return b.String()
}
