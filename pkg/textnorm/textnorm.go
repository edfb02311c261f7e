// Package textnorm cleans user-entered text before it is stored or matched.
package textnorm

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Clean trims surrounding whitespace, collapses inner runs of whitespace and
// composes the string to NFC, so "Bogota\u0301" and "Bogotá" are stored the same way.
func Clean(s string) string {
	s = norm.NFC.String(s)
	return strings.Join(strings.Fields(s), " ")
}

// CleanPtr applies Clean to an optional value. Blank values become nil.
func CleanPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := Clean(*s)
	if v == "" {
		return nil
	}
	return &v
}

// Email lower-cases and trims an address. Email identity is case-insensitive.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// EscapeLike escapes the LIKE metacharacters so user input matches literally.
// Pair it with ESCAPE '\' in the query.
func EscapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
