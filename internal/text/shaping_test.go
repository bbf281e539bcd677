package text

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fixed measures one millimetre per rune.
type fixed struct{}

func (fixed) Width(s string, _ Font) float64 { return float64(len([]rune(s))) }

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width float64
		want  []string
	}{
		{name: "fits", in: "short line", width: 20, want: []string{"short line"}},
		{name: "greedy", in: "aaa bbb ccc ddd", width: 7, want: []string{"aaa bbb", "ccc ddd"}},
		{name: "collapses spaces", in: "a    b", width: 10, want: []string{"a b"}},
		{name: "keeps newlines", in: "one\n\ntwo", width: 10, want: []string{"one", "", "two"}},
		{name: "breaks long words", in: "xx abcdefghij yy", width: 4, want: []string{"xx", "abcd", "efgh", "ij", "yy"}},
		{name: "long word then word", in: "abcdef g", width: 4, want: []string{"abcd", "ef g"}},
		{name: "empty", in: "", width: 5, want: []string{""}},
		{name: "no width", in: "a b\nc", width: 0, want: []string{"a b", "c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Wrap(tt.in, tt.width, Font{}, fixed{}))
		})
	}
}

func TestWrapRespectsWidth(t *testing.T) {
	m := ApproxMeasurer{}
	font := Font{Family: "Helvetica", Size: 10}
	in := strings.Repeat("The tenant shall keep the premises clean and sanitary. ", 20)

	lines := Wrap(in, 80, font, m)
	assert.Greater(t, len(lines), 5)
	for _, line := range lines {
		assert.LessOrEqual(t, m.Width(line, font), 80.0)
	}
	assert.Equal(t, strings.Join(strings.Fields(in), " "), strings.Join(lines, " "))
}

func TestApproxMeasurer(t *testing.T) {
	font := Font{Size: 12}
	w := ApproxMeasurer{Ratio: 0.5}.Width("abcd", font)
	assert.InDelta(t, 4*12*0.5*PointsToMM, w, 1e-9)
	assert.Equal(t, w, ApproxMeasurer{}.Width("abcd", font))
}

func TestNormalize(t *testing.T) {
	decomposed := "Jose\u0301\r\nline\ttab"
	assert.Equal(t, "Jos\u00e9\nline    tab", Normalize(decomposed))
}
