package html

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/gompdf/leasedoc/internal/layout"
)

func findAll(n *html.Node, tag string) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func textOf(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

func renderAndParse(t *testing.T, blocks []layout.Block, opts Options) (*html.Node, string) {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, NewRenderer().Render(&buf, blocks, opts))
	out := buf.String()
	doc, err := html.Parse(strings.NewReader(out))
	require.NoError(t, err)
	return doc, out
}

func TestRenderChecklist(t *testing.T) {
	doc, out := renderAndParse(t, []layout.Block{
		{Kind: layout.KindTitle, Text: "Move-In Inspection Checklist"},
		{Kind: layout.KindChecklistItem, Marker: "1.", Text: "Check smoke detectors"},
		{Kind: layout.KindChecklistItem, Marker: "2.", Text: "Test locks"},
		{Kind: layout.KindSignature, Label: "Tenant Signature"},
	}, Options{Title: "Checklist", DocumentID: "abc"})

	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Equal(t, "Checklist", textOf(findAll(doc, "title")[0]))
	assert.Equal(t, "Move-In Inspection Checklist", textOf(findAll(doc, "h2")[0]))

	lists := findAll(doc, "ul")
	require.Len(t, lists, 1)
	items := findAll(lists[0], "li")
	require.Len(t, items, 2)
	assert.Equal(t, Checkbox+"1. Check smoke detectors", textOf(items[0]))
	assert.Equal(t, Checkbox+"2. Test locks", textOf(items[1]))

	assert.Equal(t, "Document ID: abc", textOf(findAll(doc, "footer")[0]))
	assert.Contains(t, textOf(doc), "Tenant Signature")
}

func TestRenderEscapesText(t *testing.T) {
	doc, out := renderAndParse(t, []layout.Block{
		{Kind: layout.KindField, Label: "Tenant", Text: "<script>alert(1)</script>"},
		{Kind: layout.KindParagraph, Text: "line one\nline two & more"},
	}, Options{})

	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
	assert.Empty(t, findAll(doc, "footer"))

	paras := findAll(doc, "p")
	require.Len(t, paras, 2)
	assert.Equal(t, "Tenant: <script>alert(1)</script>", textOf(paras[0]))
	assert.Len(t, findAll(paras[1], "br"), 1)
	assert.Equal(t, "line oneline two & more", textOf(paras[1]))
}

func TestRenderSeparatesLists(t *testing.T) {
	doc, _ := renderAndParse(t, []layout.Block{
		{Kind: layout.KindBullet, Text: "Water"},
		{Kind: layout.KindBullet, Text: "Trash"},
		{Kind: layout.KindSection, Text: "NEXT"},
		{Kind: layout.KindBullet, Text: "Gas"},
		{Kind: layout.KindRule},
		{Kind: layout.KindSpacer, Height: 5},
	}, Options{})

	lists := findAll(doc, "ul")
	require.Len(t, lists, 2)
	assert.Len(t, findAll(lists[0], "li"), 2)
	assert.Len(t, findAll(lists[1], "li"), 1)
	assert.Len(t, findAll(doc, "hr"), 1)
}

func TestStylesheetFollowsStyles(t *testing.T) {
	css := NewRenderer().stylesheet()
	assert.Contains(t, css, "h1{font-family:Helvetica,Arial,sans-serif;font-size:16pt")
	assert.Contains(t, css, "font-weight:bold")
	assert.Contains(t, css, "text-align:center")
}
