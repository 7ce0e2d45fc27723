package utils

import "regexp"

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// IsValidEmail checks the local@domain.tld shape only. No DNS or mailbox lookup is done.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}
