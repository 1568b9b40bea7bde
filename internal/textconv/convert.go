// Package textconv turns plain text into alternating-case ("mocking") text.
package textconv

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Convert returns input with its alphabetic characters alternating between
// upper and lower case, starting with upper case.
//
// Only alphabetic characters advance the alternation; digits, punctuation
// and whitespace are copied through unchanged and do not consume a slot:
//
//	Convert("Hello, World!") // "HeLlO, wOrLd!"
//
// When a character's case mapping expands to several characters (for
// example "ß" upper-cases to "SS") only the first one is kept, so the
// output always has as many characters as the input.
func Convert(input string) string {
	if input == "" {
		return ""
	}

	upper := cases.Upper(language.Und)
	lower := cases.Lower(language.Und)

	var b strings.Builder
	b.Grow(len(input))

	wantUpper := true
	for i, r := range input {
		if !IsAlphabetic(r) {
			// Copy the raw bytes so invalid UTF-8 survives untouched.
			_, size := utf8.DecodeRuneInString(input[i:])
			b.WriteString(input[i : i+size])
			continue
		}
		if wantUpper {
			b.WriteRune(mapFirst(upper, unicode.ToUpper, r))
		} else {
			b.WriteRune(mapFirst(lower, unicode.ToLower, r))
		}
		wantUpper = !wantUpper
	}
	return b.String()
}

// IsAlphabetic reports whether r has the Unicode Alphabetic property.
func IsAlphabetic(r rune) bool {
	if r < utf8.RuneSelf {
		return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
	}
	return unicode.In(r, unicode.L, unicode.Nl, unicode.Other_Alphabetic)
}

// mapFirst applies the full case mapping of c to r and returns the first
// resulting rune. ASCII goes through simple, which maps one-to-one.
func mapFirst(c cases.Caser, simple func(rune) rune, r rune) rune {
	if r < utf8.RuneSelf {
		return simple(r)
	}
	mapped := c.String(string(r))
	if mapped == "" {
		return r
	}
	first, _ := utf8.DecodeRuneInString(mapped)
	return first
}
