package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabel(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"low-carb", "Low-Carb"},
		{"LOW-CARB", "Low-Carb"},
		{"Low-Carb", "Low-Carb"},
		{"balanced", "Balanced"},
		{"dairy-free", "Dairy-Free"},
		{"  vegan  ", "Vegan"},
		{"gLuTeN-fReE", "Gluten-Free"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Label(tc.in), "Label(%q)", tc.in)
	}
}

func TestLabelIdempotent(t *testing.T) {
	inputs := []string{"low-carb", "HIGH-PROTEIN", "Sugar-Conscious", "keto friendly", "tree-NUT-free"}
	for _, in := range inputs {
		once := Label(in)
		assert.Equal(t, once, Label(once), "Label should be idempotent for %q", in)
	}
}

func TestLabelSegmentsStartUpperCase(t *testing.T) {
	for _, in := range []string{"low-carb", "dairy-free", "pescatarian", "kidney-friendly"} {
		out := Label(in)
		for _, seg := range splitSegments(out) {
			if seg == "" {
				continue
			}
			first := rune(seg[0])
			assert.False(t, first >= 'a' && first <= 'z', "segment %q of %q starts lowercase", seg, out)
		}
	}
}

func TestQueryTerm(t *testing.T) {
	assert.Equal(t, "low-carb", QueryTerm("Low-Carb"))
	assert.Equal(t, "balanced", QueryTerm("BALANCED"))
	assert.Equal(t, "vegan", QueryTerm("  Vegan "))
}

func TestQueryTermAllLowercase(t *testing.T) {
	for _, in := range []string{"Low-Carb", "HIGH-FIBER", "Alcohol-Free", "paleo"} {
		out := QueryTerm(in)
		for _, r := range out {
			assert.False(t, r >= 'A' && r <= 'Z', "QueryTerm(%q) contains uppercase rune in %q", in, out)
		}
	}
}

func TestSliceVariantsPreserveShape(t *testing.T) {
	in := []string{"low-carb", "VEGAN"}
	assert.Equal(t, []string{"Low-Carb", "Vegan"}, Labels(in))
	assert.Equal(t, []string{"low-carb", "vegan"}, QueryTerms(in))

	// A nil or empty input stays empty rather than panicking; handlers pass
	// QueryArray output through unconditionally.
	assert.Empty(t, Labels(nil))
	assert.Empty(t, QueryTerms([]string{}))

	// Inputs are not mutated.
	assert.Equal(t, []string{"low-carb", "VEGAN"}, in)
}

func splitSegments(s string) []string {
	var segs []string
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == '-' {
			segs = append(segs, s[start:i])
			start = i + 1
		}
	}
	return segs
}
