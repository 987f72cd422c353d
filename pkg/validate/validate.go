package validate

import (
	"net/mail"
	"strings"
	"unicode/utf8"
)

const maxNameLength = 128

// IsEmail reports whether s is a bare address such as user@example.com.
func IsEmail(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	return addr.Address == s && strings.Contains(s[strings.LastIndex(s, "@"):], ".")
}

// IsName reports whether s is a non-blank display name of sane length.
func IsName(s string) bool {
	s = strings.TrimSpace(s)
	return s != "" && utf8.RuneCountInString(s) <= maxNameLength
}
