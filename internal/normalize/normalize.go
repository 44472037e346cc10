// Package normalize canonicalizes diet and health filter tokens.
//
// Two casings are in play: stored recipe labels use Title-Case-with-hyphens
// ("Low-Carb", "Dairy-Free") while the search provider expects plain lowercase
// ("low-carb"). Matching only works if every label passes through here on both
// the write and the read path.
package normalize

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Label converts a token to its stored Title-Case-with-hyphens form: each
// hyphen-separated segment starts with an upper-case rune, the rest is
// lower-cased. Surrounding whitespace is dropped so provider-sourced and
// client-sourced tokens normalize identically. Idempotent.
func Label(token string) string {
	segments := strings.Split(strings.TrimSpace(token), "-")
	for i, seg := range segments {
		if seg == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(seg)
		segments[i] = string(unicode.ToUpper(r)) + strings.ToLower(seg[size:])
	}
	return strings.Join(segments, "-")
}

// Labels applies Label to every element, returning a new slice.
func Labels(tokens []string) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = Label(t)
	}
	return out
}

// QueryTerm converts a token to the lowercase form the provider's query
// parameters expect.
func QueryTerm(token string) string {
	return strings.ToLower(strings.TrimSpace(token))
}

// QueryTerms applies QueryTerm to every element, returning a new slice.
func QueryTerms(tokens []string) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = QueryTerm(t)
	}
	return out
}
