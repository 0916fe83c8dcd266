// file: internal/matcher/fuzzy.go
// version: 2.1.0
// guid: a1b2c3d4-e5f6-7890-abcd-ef1234567890

package matcher

import (
	"strings"
	"unicode"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// combiningDiacritics is the Combining Diacritical Marks block (U+0300..U+036F).
var combiningDiacritics = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x0300, Hi: 0x036f, Stride: 1}},
}

// Normalize lowercases s, strips diacritics, replaces every rune other than
// a-z, 0-9 and whitespace with a space, and trims the result.
// Normalize is idempotent.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(combiningDiacritics)))
	decomposed, _, err := transform.String(t, strings.ToLower(s))
	if err != nil {
		decomposed = strings.ToLower(s)
	}

	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case isSpace(r):
			b.WriteRune(r)
		default:
			b.WriteByte(' ')
		}
	}
	return strings.TrimFunc(b.String(), isSpace)
}

// Distance is the Levenshtein edit distance between a and b counted in runes,
// with unit cost for insertion, deletion and substitution.
func Distance(a, b string) int {
	if a == "" {
		return len([]rune(b))
	}
	if b == "" {
		return len([]rune(a))
	}
	return fuzzy.LevenshteinDistance(a, b)
}

// words splits normalized text on whitespace runs.
func words(s string) []string {
	return strings.FieldsFunc(s, isSpace)
}

// whitespace is the ECMAScript \s class: the Zs separators, tab through
// carriage return, the line and paragraph separators and the BOM. Unlike
// unicode.IsSpace it excludes U+0085 (NEL).
var whitespace = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x0009, Hi: 0x000d, Stride: 1},
		{Lo: 0x0020, Hi: 0x0020, Stride: 1},
		{Lo: 0x00a0, Hi: 0x00a0, Stride: 1},
		{Lo: 0x1680, Hi: 0x1680, Stride: 1},
		{Lo: 0x2000, Hi: 0x200a, Stride: 1},
		{Lo: 0x2028, Hi: 0x2029, Stride: 1},
		{Lo: 0x202f, Hi: 0x202f, Stride: 1},
		{Lo: 0x205f, Hi: 0x205f, Stride: 1},
		{Lo: 0x3000, Hi: 0x3000, Stride: 1},
		{Lo: 0xfeff, Hi: 0xfeff, Stride: 1},
	},
	LatinOffset: 3,
}

// isSpace matches the whitespace class used by Normalize.
func isSpace(r rune) bool {
	return unicode.Is(whitespace, r)
}
