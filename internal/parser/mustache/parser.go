package mustache

import (
	"fmt"
	"strings"
)

// Mode controls how malformed markup is handled.
type Mode int

const (
	// ModeLenient keeps malformed or unbalanced tags as literal text.
	ModeLenient Mode = iota
	// ModeStrict rejects malformed or unbalanced tags with a SyntaxError.
	ModeStrict
)

// SyntaxError reports malformed markup found in strict mode.
type SyntaxError struct {
	Offset int // byte offset of the offending tag
	Tag    string
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("mustache: %s at offset %d: %q", e.Msg, e.Offset, e.Tag)
}

type tokenKind int

const (
	tokText tokenKind = iota
	tokPlaceholder
	tokIf
	tokElse
	tokEnd
	tokInvalid
)

type token struct {
	kind   tokenKind
	raw    string
	name   string
	offset int
	msg    string // set for tokInvalid
}

// lex splits src into text runs and tags.
func lex(src string) []token {
	var tokens []token
	text := func(s string, off int) {
		if s == "" {
			return
		}
		if n := len(tokens); n > 0 && tokens[n-1].kind == tokText {
			tokens[n-1].raw += s
			return
		}
		tokens = append(tokens, token{kind: tokText, raw: s, offset: off})
	}

	pos := 0
	for pos < len(src) {
		open := strings.Index(src[pos:], "{{")
		if open < 0 {
			text(src[pos:], pos)
			break
		}
		open += pos
		text(src[pos:open], pos)

		// "{{{name}}}" reads as a literal brace around a placeholder.
		if open+2 < len(src) && src[open+2] == '{' {
			text("{", open)
			pos = open + 1
			continue
		}

		closeIdx := strings.Index(src[open+2:], "}}")
		if closeIdx < 0 {
			tokens = append(tokens, token{kind: tokInvalid, raw: src[open:], offset: open, msg: "unterminated tag"})
			break
		}
		body := src[open+2 : open+2+closeIdx]
		if inner := strings.LastIndex(body, "{{"); inner >= 0 {
			text(src[open:open+2+inner], open)
			pos = open + 2 + inner
			continue
		}
		end := open + 2 + closeIdx + 2
		tokens = append(tokens, classify(src[open:end], body, open))
		pos = end
	}
	return tokens
}

func classify(raw, body string, offset int) token {
	t := token{raw: raw, offset: offset}
	trimmed := strings.TrimSpace(body)
	switch {
	case trimmed == "else":
		t.kind = tokElse
	case trimmed == "/if":
		t.kind = tokEnd
	case strings.HasPrefix(trimmed, "#if"):
		name := strings.TrimSpace(strings.TrimPrefix(trimmed, "#if"))
		if name == "" || strings.ContainsAny(name, " \t\n") || trimmed[3] != ' ' && trimmed[3] != '\t' {
			t.kind, t.msg = tokInvalid, "malformed conditional"
			return t
		}
		t.kind, t.name = tokIf, name
	case trimmed == "":
		t.kind, t.msg = tokInvalid, "empty tag"
	case strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "/"):
		t.kind, t.msg = tokInvalid, "unknown block tag"
	case strings.ContainsAny(trimmed, " \t\n"):
		t.kind, t.msg = tokInvalid, "malformed placeholder"
	default:
		t.kind, t.name = tokPlaceholder, trimmed
	}
	return t
}

type frame struct {
	cond    *Conditional
	ifRaw   string
	elseRaw string
	offset  int
	inElse  bool
}

func (f *frame) add(n Node) {
	if f.inElse {
		f.cond.Else = appendNode(f.cond.Else, n)
	} else {
		f.cond.Then = appendNode(f.cond.Then, n)
	}
}

// Parse parses src into a Template.
func Parse(src string, mode Mode) (*Template, error) {
	root := &Template{}
	var stack []*frame

	add := func(n Node) {
		if len(stack) == 0 {
			root.Nodes = appendNode(root.Nodes, n)
			return
		}
		stack[len(stack)-1].add(n)
	}

	for _, tok := range lex(src) {
		switch tok.kind {
		case tokText:
			add(&Literal{Text: tok.raw})
		case tokPlaceholder:
			add(&Placeholder{Name: tok.name})
		case tokIf:
			stack = append(stack, &frame{cond: &Conditional{Name: tok.name}, ifRaw: tok.raw, offset: tok.offset})
		case tokElse:
			if len(stack) == 0 || stack[len(stack)-1].inElse {
				if mode == ModeStrict {
					return nil, &SyntaxError{Offset: tok.offset, Tag: tok.raw, Msg: "unexpected else"}
				}
				add(&Literal{Text: tok.raw})
				continue
			}
			top := stack[len(stack)-1]
			top.inElse = true
			top.elseRaw = tok.raw
			top.cond.HasElse = true
		case tokEnd:
			if len(stack) == 0 {
				if mode == ModeStrict {
					return nil, &SyntaxError{Offset: tok.offset, Tag: tok.raw, Msg: "unexpected end of block"}
				}
				add(&Literal{Text: tok.raw})
				continue
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			add(top.cond)
		case tokInvalid:
			if mode == ModeStrict {
				return nil, &SyntaxError{Offset: tok.offset, Tag: tok.raw, Msg: tok.msg}
			}
			add(&Literal{Text: tok.raw})
		}
	}

	if len(stack) > 0 && mode == ModeStrict {
		top := stack[len(stack)-1]
		return nil, &SyntaxError{Offset: top.offset, Tag: top.ifRaw, Msg: "unclosed conditional"}
	}

	// Unclosed blocks fall back to their source text, innermost first.
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		flat := []Node{&Literal{Text: top.ifRaw}}
		for _, n := range top.cond.Then {
			flat = appendNode(flat, n)
		}
		if top.cond.HasElse {
			flat = appendNode(flat, &Literal{Text: top.elseRaw})
			for _, n := range top.cond.Else {
				flat = appendNode(flat, n)
			}
		}
		for _, n := range flat {
			add(n)
		}
	}

	return root, nil
}
