package utils

import (
	"errors"
	"strconv"
	"strings"
)

var ErrNotANumber = errors.New("value is not a number")

// DigitsOnly drops every character of s that is not an ASCII digit.
func DigitsOnly(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// NormalizePhone reduces a phone number to its digits; an empty result means no phone.
func NormalizePhone(s string) *string {
	d := DigitsOnly(s)
	if d == "" {
		return nil
	}
	return &d
}

// ParseOptionalInt parses a form field holding an optional integer. Blank yields nil.
func ParseOptionalInt(s string) (*int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil, ErrNotANumber
	}
	return &v, nil
}

// FormatOptionalInt is the inverse of ParseOptionalInt.
func FormatOptionalInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
