package utils

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var (
	rutPattern   = regexp.MustCompile(`^(\d{7,8})-([0-9K])$`)
	dashReplacer = strings.NewReplacer("‐", "-", "‑", "-", "‒", "-", "–", "-", "—", "-", "―", "-", "−", "-")
	rutWeights   = []int{2, 3, 4, 5, 6, 7}
)

// NormalizeRut converts a Chilean RUT written with any mix of periods, spaces and dash
// variants into the canonical "<digits>-<check digit>" form, uppercased. When no dash is
// present the last character is taken as the check digit.
func NormalizeRut(raw string) string {
	s := dashReplacer.Replace(strings.ToUpper(strings.TrimSpace(raw)))
	if i := strings.LastIndex(s, "-"); i >= 0 {
		body, dv := alphanumeric(s[:i]), alphanumeric(s[i+1:])
		if body == "" {
			return dv
		}
		return body + "-" + dv
	}
	r := []rune(alphanumeric(s))
	if len(r) < 2 {
		return string(r)
	}
	return string(r[:len(r)-1]) + "-" + string(r[len(r)-1])
}

func alphanumeric(s string) string {
	var b strings.Builder
	for _, c := range s {
		if unicode.IsDigit(c) || unicode.IsLetter(c) {
			b.WriteRune(c)
		}
	}
	return b.String()
}

// RutCheckDigit computes the modulo-11 check digit of the numeric body of a RUT.
// Non-digit characters in body are ignored.
func RutCheckDigit(body string) string {
	sum, i := 0, 0
	for j := len(body) - 1; j >= 0; j-- {
		c := body[j]
		if c < '0' || c > '9' {
			continue
		}
		sum += int(c-'0') * rutWeights[i%len(rutWeights)]
		i++
	}
	switch r := 11 - sum%11; r {
	case 11:
		return "0"
	case 10:
		return "K"
	default:
		return strconv.Itoa(r)
	}
}

// IsValidRut reports whether raw normalizes to a 7 or 8 digit body whose check digit matches.
// Malformed input is simply invalid.
func IsValidRut(raw string) bool {
	m := rutPattern.FindStringSubmatch(NormalizeRut(raw))
	if m == nil {
		return false
	}
	return RutCheckDigit(m[1]) == m[2]
}
