// Package mustache parses the placeholder and conditional markup used by
// document templates into a small syntax tree.
//
// The supported tags are:
//
//	{{name}}                       placeholder
//	{{#if name}} ... {{/if}}        conditional block
//	{{#if name}} ... {{else}} ... {{/if}}
//
// Conditionals may nest. Anything else between braces is literal text.
package mustache

// Node is a single element of a parsed template.
type Node interface {
	node()
}

// Literal is text copied verbatim to the output.
type Literal struct {
	Text string
}

// Placeholder is replaced by the value of the named variable.
type Placeholder struct {
	Name string
}

// Conditional selects Then or Else depending on the truthiness of Name.
type Conditional struct {
	Name    string
	Then    []Node
	Else    []Node
	HasElse bool
}

func (*Literal) node()     {}
func (*Placeholder) node() {}
func (*Conditional) node() {}

// Template is the parsed form of a template source string.
type Template struct {
	Nodes []Node
}

// References returns every variable name used by a placeholder or a
// conditional, in order of first appearance.
func (t *Template) References() []string {
	seen := make(map[string]bool)
	var names []string
	var walk func([]Node)
	walk = func(nodes []Node) {
		for _, n := range nodes {
			switch v := n.(type) {
			case *Placeholder:
				if !seen[v.Name] {
					seen[v.Name] = true
					names = append(names, v.Name)
				}
			case *Conditional:
				if !seen[v.Name] {
					seen[v.Name] = true
					names = append(names, v.Name)
				}
				walk(v.Then)
				walk(v.Else)
			}
		}
	}
	walk(t.Nodes)
	return names
}

// appendNode appends n to nodes, merging adjacent literals.
func appendNode(nodes []Node, n Node) []Node {
	lit, ok := n.(*Literal)
	if !ok {
		return append(nodes, n)
	}
	if lit.Text == "" {
		return nodes
	}
	if len(nodes) > 0 {
		if prev, ok := nodes[len(nodes)-1].(*Literal); ok {
			nodes[len(nodes)-1] = &Literal{Text: prev.Text + lit.Text}
			return nodes
		}
	}
	return append(nodes, n)
}
