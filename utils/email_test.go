package utils

import "testing"

func TestIsValidEmail(t *testing.T) {
	testCases := []struct {
		input string
		want  bool
	}{
		{"a@b.c", true},
		{"maria.perez@correo.cl", true},
		{"a@b", false},
		{"a b@c.d", false},
		{"a@b c.d", false},
		{"@b.c", false},
		{"a@@b.c", false},
		{"", false},
	}
	for _, tc := range testCases {
		if got := IsValidEmail(tc.input); got != tc.want {
			t.Errorf("IsValidEmail(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}
