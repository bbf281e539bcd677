// Package html renders content blocks as a standalone HTML preview page.
package html

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/gompdf/leasedoc/internal/layout"
	"github.com/gompdf/leasedoc/internal/style"
)

// Checkbox is the glyph shown in front of checklist items.
const Checkbox = "☐"

// Options controls the page chrome around the blocks.
type Options struct {
	Title      string
	DocumentID string
}

// Renderer builds HTML previews.
type Renderer struct {
	Styles *style.Stylesheet
}

// NewRenderer creates a renderer using the default stylesheet.
func NewRenderer() *Renderer {
	return &Renderer{Styles: style.Default("")}
}

// Render writes a complete HTML document for blocks to w.
func (r *Renderer) Render(w io.Writer, blocks []layout.Block, opts Options) error {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	root := element(atom.Html, "lang", "en")
	doc.AppendChild(root)

	head := element(atom.Head)
	head.AppendChild(element(atom.Meta, "charset", "utf-8"))
	title := element(atom.Title)
	title.AppendChild(textNode(opts.Title))
	head.AppendChild(title)
	css := element(atom.Style)
	css.AppendChild(textNode(r.stylesheet()))
	head.AppendChild(css)
	root.AppendChild(head)

	body := element(atom.Body)
	article := element(atom.Article, "class", "document")
	r.appendBlocks(article, blocks)
	body.AppendChild(article)

	if id := strings.TrimSpace(opts.DocumentID); id != "" {
		footer := element(atom.Footer)
		footer.AppendChild(textNode("Document ID: " + id))
		body.AppendChild(footer)
	}
	root.AppendChild(body)

	if err := html.Render(w, doc); err != nil {
		return fmt.Errorf("html: render: %w", err)
	}
	return nil
}

func (r *Renderer) appendBlocks(parent *html.Node, blocks []layout.Block) {
	// list is the open <ul> that consecutive bullets or checklist items share.
	var list *html.Node
	var listKind layout.Kind

	for _, b := range blocks {
		if list != nil && b.Kind != listKind {
			list = nil
		}

		switch b.Kind {
		case layout.KindHeader:
			parent.AppendChild(withText(element(atom.H1), b.Text))
		case layout.KindTitle:
			parent.AppendChild(withText(element(atom.H2), b.Text))
		case layout.KindSection:
			parent.AppendChild(withText(element(atom.H3), b.Text))

		case layout.KindField:
			p := element(atom.P, "class", "field")
			p.AppendChild(withText(element(atom.Strong), b.Label+":"))
			p.AppendChild(textNode(" " + b.Text))
			parent.AppendChild(p)

		case layout.KindParagraph:
			parent.AppendChild(withLines(element(atom.P), b.Text))

		case layout.KindBullet, layout.KindChecklistItem:
			if list == nil {
				class := "bullets"
				if b.Kind == layout.KindChecklistItem {
					class = "checklist"
				}
				list = element(atom.Ul, "class", class)
				listKind = b.Kind
				parent.AppendChild(list)
			}
			li := element(atom.Li)
			if b.Kind == layout.KindChecklistItem {
				li.AppendChild(withText(element(atom.Span, "class", "checkbox"), Checkbox))
				if b.Marker != "" {
					li.AppendChild(withText(element(atom.Span, "class", "marker"), b.Marker))
				}
				li.AppendChild(textNode(" "))
			}
			li.AppendChild(textNode(b.Text))
			list.AppendChild(li)

		case layout.KindSignature:
			div := element(atom.Div, "class", "signature")
			div.AppendChild(element(atom.Div, "class", "line"))
			caption := b.Label
			if b.Text != "" {
				caption += ": " + b.Text
			}
			div.AppendChild(withText(element(atom.P), caption))
			div.AppendChild(withText(element(atom.P), "Date: ____________________"))
			parent.AppendChild(div)

		case layout.KindRule:
			parent.AppendChild(element(atom.Hr))

		case layout.KindSpacer:
			parent.AppendChild(element(atom.Div, "class", "spacer", "style", fmt.Sprintf("height:%.1fmm", b.Height)))
		}
	}
}

// stylesheet renders the PDF text styles as CSS so the preview matches the
// printed document.
func (r *Renderer) stylesheet() string {
	rules := []struct {
		selector string
		role     string
	}{
		{"h1", style.RoleHeader},
		{"h2", style.RoleTitle},
		{"h3", style.RoleSection},
		{"p.field", style.RoleField},
		{"p", style.RoleParagraph},
		{"ul.bullets li", style.RoleBullet},
		{"ul.checklist li", style.RoleChecklistItem},
		{".signature", style.RoleSignature},
		{"footer", style.RoleFooter},
	}

	var sb strings.Builder
	sb.WriteString("body{margin:0;background:#f4f4f4}")
	sb.WriteString(".document{max-width:170mm;margin:10mm auto;padding:20mm;background:#fff}")
	sb.WriteString("ul{list-style:none;padding:0;margin:0}")
	sb.WriteString(".checkbox{margin-right:0.5em}.marker{margin-right:0.25em}")
	sb.WriteString(".signature .line{width:80mm;border-top:1px solid #000}")
	for _, rule := range rules {
		st := r.Styles.For(rule.role)
		fmt.Fprintf(&sb, "%s{font-family:%s;font-size:%gpt;line-height:%gmm;margin:%gmm 0 %gmm %gmm",
			rule.selector, cssFamily(st.Family), st.Size, st.LineHeight, st.SpaceBefore, st.SpaceAfter, st.Indent)
		if strings.Contains(st.Style, "B") {
			sb.WriteString(";font-weight:bold")
		}
		if strings.Contains(st.Style, "I") {
			sb.WriteString(";font-style:italic")
		}
		if st.Align == "C" {
			sb.WriteString(";text-align:center")
		}
		sb.WriteString("}")
	}
	return sb.String()
}

func cssFamily(family string) string {
	switch layout.CoreFamily(family) {
	case "Times":
		return "'Times New Roman',serif"
	case "Courier":
		return "'Courier New',monospace"
	default:
		return "Helvetica,Arial,sans-serif"
	}
}

func element(a atom.Atom, attrs ...string) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	for i := 0; i+1 < len(attrs); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: attrs[i], Val: attrs[i+1]})
	}
	return n
}

func textNode(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func withText(n *html.Node, s string) *html.Node {
	n.AppendChild(textNode(s))
	return n
}

// withLines keeps explicit line breaks of s as <br> elements.
func withLines(n *html.Node, s string) *html.Node {
	for i, line := range strings.Split(s, "\n") {
		if i > 0 {
			n.AppendChild(element(atom.Br))
		}
		n.AppendChild(textNode(line))
	}
	return n
}
