package casing

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type mode int

const (
	boundaryMode mode = iota
	lowerMode
	upperMode
)

// Words returns the words of s in order.
func Words(s string) []string {
	var res []string
	for _, piece := range strings.FieldsFunc(s, isSep) {
		res = splitPiece(res, []rune(piece))
	}
	return res
}

func isSep(r rune) bool {
	return !(unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.Is(unicode.Other_Alphabetic, r))
}

func splitPiece(res []string, rs []rune) []string {
	start := 0
	m := boundaryMode
	for i, r := range rs {
		if i == len(rs)-1 {
			return append(res, string(rs[start:]))
		}
		next := rs[i+1]
		nextMode := m
		switch {
		case unicode.IsLower(r):
			nextMode = lowerMode
		case unicode.IsUpper(r):
			nextMode = upperMode
		}
		switch {
		case nextMode == lowerMode && unicode.IsUpper(next):
			res = append(res, string(rs[start:i+1]))
			start = i + 1
			m = boundaryMode
		case m == upperMode && unicode.IsUpper(r) && unicode.IsLower(next):
			res = append(res, string(rs[start:i]))
			start = i
			m = boundaryMode
		default:
			m = nextMode
		}
	}
	return res
}

// LowerCamel converts s to lowerCamelCase: the first word in lower case,
// every following word capitalized. Converting the result again gives the
// same result.
func LowerCamel(s string) string {
	return settle(lowerCamel, s)
}

// UpperCamel converts s to UpperCamelCase, every word capitalized.
// Converting the result again gives the same result.
func UpperCamel(s string) string {
	return settle(upperCamel, s)
}

// settle applies conv until its output stops changing. Adjacent one-letter
// words such as "a_b" render as an uppercase run that splits differently
// the next time. A round never adds word starts, so this ends after a few
// rounds; the bound guards against exotic case mappings.
func settle(conv func(string) string, s string) string {
	for range utf8.RuneCountInString(s) + 2 {
		next := conv(s)
		if next == s {
			break
		}
		s = next
	}
	return s
}

func lowerCamel(s string) string {
	buf := &strings.Builder{}
	for i, w := range Words(s) {
		if i == 0 {
			buf.WriteString(lower(w))
			continue
		}
		buf.WriteString(capitalize(w))
	}
	return buf.String()
}

func upperCamel(s string) string {
	buf := &strings.Builder{}
	for _, w := range Words(s) {
		buf.WriteString(capitalize(w))
	}
	return buf.String()
}

// Casers carry state and are not safe to share, so each call gets its own.
func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

func capitalize(s string) string {
	_, n := utf8.DecodeRuneInString(s)
	if n == 0 {
		return s
	}
	return cases.Upper(language.Und).String(s[:n]) + lower(s[n:])
}
