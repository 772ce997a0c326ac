package casing

import (
	"regexp"
	"strings"
)

var (
	// A capitalized word following any character except an underscore
	wordStart = regexp.MustCompile(`([^_])([A-Z][a-z]+)`)
	// A lowercase letter or digit directly followed by an uppercase letter
	lowerUpper = regexp.MustCompile(`([a-z0-9])([A-Z])`)
	camelHint  = regexp.MustCompile(`[a-z][A-Z]`)
)

// IsCamelCase reports whether s looks like a camelCase identifier, meaning it
// contains at least one lowercase letter immediately followed by an uppercase one.
func IsCamelCase(s string) bool {
	return camelHint.MatchString(s)
}

// ToSnakeCase converts a camelCase identifier to snake_case.
// Acronym runs are only split where they meet the next capitalized word, so
// "getHTTPResponse" becomes "get_http_response". Strings without a
// lowercase-to-uppercase transition are returned as is.
func ToSnakeCase(s string) string {
	if !IsCamelCase(s) {
		return s
	}

	s = wordStart.ReplaceAllString(s, "${1}_${2}")
	s = lowerUpper.ReplaceAllString(s, "${1}_${2}")
	return strings.ToLower(s)
}
