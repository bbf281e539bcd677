package mustache

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []Node
	}{
		{
			name: "plain text",
			src:  "no markup here",
			want: []Node{&Literal{Text: "no markup here"}},
		},
		{
			name: "placeholders",
			src:  "Hello {{name}}, rent is ${{ rent }}.",
			want: []Node{
				&Literal{Text: "Hello "},
				&Placeholder{Name: "name"},
				&Literal{Text: ", rent is $"},
				&Placeholder{Name: "rent"},
				&Literal{Text: "."},
			},
		},
		{
			name: "conditional with else",
			src:  "{{#if hasPets}}Pets OK{{else}}No pets{{/if}}",
			want: []Node{
				&Conditional{
					Name:    "hasPets",
					Then:    []Node{&Literal{Text: "Pets OK"}},
					Else:    []Node{&Literal{Text: "No pets"}},
					HasElse: true,
				},
			},
		},
		{
			name: "conditional without else",
			src:  "a{{#if x}}Y{{/if}}b",
			want: []Node{
				&Literal{Text: "a"},
				&Conditional{Name: "x", Then: []Node{&Literal{Text: "Y"}}},
				&Literal{Text: "b"},
			},
		},
		{
			name: "nested conditionals",
			src:  "{{#if a}}A{{#if b}}B{{else}}notB{{/if}}{{else}}notA{{/if}}",
			want: []Node{
				&Conditional{
					Name: "a",
					Then: []Node{
						&Literal{Text: "A"},
						&Conditional{
							Name:    "b",
							Then:    []Node{&Literal{Text: "B"}},
							Else:    []Node{&Literal{Text: "notB"}},
							HasElse: true,
						},
					},
					Else:    []Node{&Literal{Text: "notA"}},
					HasElse: true,
				},
			},
		},
		{
			name: "sibling blocks stay separate",
			src:  "{{#if a}}1{{/if}}-{{#if b}}2{{/if}}",
			want: []Node{
				&Conditional{Name: "a", Then: []Node{&Literal{Text: "1"}}},
				&Literal{Text: "-"},
				&Conditional{Name: "b", Then: []Node{&Literal{Text: "2"}}},
			},
		},
		{
			name: "unclosed conditional is literal",
			src:  "x {{#if a}}kept {{name}}",
			want: []Node{
				&Literal{Text: "x {{#if a}}kept "},
				&Placeholder{Name: "name"},
			},
		},
		{
			name: "stray else and end are literal",
			src:  "a{{else}}b{{/if}}c",
			want: []Node{&Literal{Text: "a{{else}}b{{/if}}c"}},
		},
		{
			name: "unterminated tag is literal",
			src:  "cost {{rent",
			want: []Node{&Literal{Text: "cost {{rent"}},
		},
		{
			name: "triple braces keep outer braces",
			src:  "{{{name}}}",
			want: []Node{
				&Literal{Text: "{"},
				&Placeholder{Name: "name"},
				&Literal{Text: "}"},
			},
		},
		{
			name: "regex characters in names are plain",
			src:  "{{a.b*c}}",
			want: []Node{&Placeholder{Name: "a.b*c"}},
		},
		{
			name: "empty and unknown tags are literal",
			src:  "{{}}{{#each x}}{{first last}}",
			want: []Node{&Literal{Text: "{{}}{{#each x}}{{first last}}"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.src, ModeLenient)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got.Nodes); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.src, diff)
			}
		})
	}
}

func TestParseStrict(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		msg    string
		offset int
	}{
		{name: "unclosed", src: "ab{{#if a}}x", msg: "unclosed conditional", offset: 2},
		{name: "stray end", src: "x{{/if}}", msg: "unexpected end of block", offset: 1},
		{name: "stray else", src: "{{else}}", msg: "unexpected else", offset: 0},
		{name: "double else", src: "{{#if a}}1{{else}}2{{else}}3{{/if}}", msg: "unexpected else", offset: 19},
		{name: "unterminated", src: "{{rent", msg: "unterminated tag", offset: 0},
		{name: "malformed if", src: "{{#ifx}}a{{/if}}", msg: "malformed conditional", offset: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.src, ModeStrict)
			var syn *SyntaxError
			require.True(t, errors.As(err, &syn), "expected SyntaxError, got %v", err)
			assert.Equal(t, tt.msg, syn.Msg)
			assert.Equal(t, tt.offset, syn.Offset)
		})
	}
}

func TestReferences(t *testing.T) {
	tmpl, err := Parse("{{a}} {{#if b}}{{c}}{{else}}{{a}}{{#if d}}{{/if}}{{/if}}", ModeStrict)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d"}, tmpl.References())
}
