package filter

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Kind names a string transform.
type Kind string

// Supported filters. An empty Kind behaves like Hyphen.
const (
	Hyphen   Kind = "hyphen"
	Camel    Kind = "camel"
	Pascal   Kind = "pascal"
	Constant Kind = "constant"
	Snake    Kind = "snake"
	Raw      Kind = "raw"
)

// Kinds returns every recognized filter.
func Kinds() []Kind {
	return []Kind{Hyphen, Camel, Pascal, Constant, Snake, Raw}
}

// ParseKind converts a filter name as written in a template into a Kind.
// Unknown names are preserved so Apply can fall back to the words form.
func ParseKind(name string) Kind {
	return Kind(strings.TrimSpace(name))
}

// Known reports whether k is one of the recognized filters.
func (k Kind) Known() bool {
	switch k {
	case Hyphen, Camel, Pascal, Constant, Snake, Raw:
		return true
	}
	return false
}

// Apply transforms value, a hyphen-separated lowercase string, according to
// kind. raw is the unnormalized original and is only used by the Raw filter.
func Apply(value, raw string, kind Kind) string {
	words := strings.Split(value, "-")
	switch kind {
	case "", Hyphen:
		return strings.ToLower(strings.Join(words, "-"))
	case Camel:
		var b strings.Builder
		for i, word := range words {
			if i == 0 {
				b.WriteString(word)
				continue
			}
			b.WriteString(capitalize(word))
		}
		return b.String()
	case Pascal:
		var b strings.Builder
		for _, word := range words {
			b.WriteString(capitalize(word))
		}
		return b.String()
	case Constant:
		return strings.ToUpper(strings.Join(words, "_"))
	case Snake:
		return strings.ToLower(strings.Join(words, "_"))
	case Raw:
		return raw
	}
	return strings.Join(words, " ")
}

// capitalize uppercases the first rune and leaves the rest untouched.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

var (
	disallowedChars = regexp.MustCompile(`[^a-zA-Z0-9\-_/ ]`)
	allCapsPattern  = regexp.MustCompile(`^[A-Z0-9_]+$`)
	upperPattern    = regexp.MustCompile(`([A-Z])`)
	letterDigit     = regexp.MustCompile(`([a-z])([0-9])`)
	separatorChars  = regexp.MustCompile(`[-_/]`)
	repeatedSpaces  = regexp.MustCompile(`  +`)
)

// Normalize converts a display string into the lowercase hyphenated form
// filters operate on. Punctuation is dropped, camel humps and letter/digit
// boundaries become word breaks, and "-", "_", "/" separate words.
// All-caps identifiers such as "COMPONENT_SET" are split only on
// separators.
func Normalize(s string) string {
	s = disallowedChars.ReplaceAllString(s, "")
	if !allCapsPattern.MatchString(s) {
		s = upperPattern.ReplaceAllString(s, " $1")
	}
	s = letterDigit.ReplaceAllString(s, "$1 $2")
	s = separatorChars.ReplaceAllString(s, " ")
	s = repeatedSpaces.ReplaceAllString(s, " ")
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Join(strings.Split(s, " "), "-")
}
