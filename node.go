// Package runemark converts markdown documents written with rune tags into
// typed, serializable component trees. The root package holds the AST and
// renderable tree data model, the generic transform engine, the cursor
// algebra used by rune transforms, and the model machinery that turns a
// declarative field table into a working tag schema.
package runemark

import "strings"

// Node is a single parsed markdown or tag construct. Nodes are produced
// once by the parser and are only reshaped by deliberate structural
// rewrites (HeadingsToList, a model's ProcessChildren) before transform.
type Node struct {
	// Type is the node type: heading, paragraph, list, item, fence,
	// blockquote, table, thead, tbody, tr, th, td, hr, image, tag,
	// comment, text, strong, em, s, link, code, hardbreak, document.
	Type string

	// Attributes holds raw, unvalidated key/value pairs. The parser fills
	// these (heading level, fence language, link href); tag attributes come
	// straight from the {% ... %} source.
	Attributes map[string]any

	// Children in document order.
	Children []*Node

	// Tag is the tag name for nodes of type "tag".
	Tag string

	// Lines is the inclusive source line range [start, end], zero-based.
	// Fence and tag nodes carry it so raw source can be recovered.
	Lines [2]int
}

// NewNode returns a node with a non-nil attribute map.
func NewNode(typ string, attrs map[string]any, children ...*Node) *Node {
	if attrs == nil {
		attrs = map[string]any{}
	}
	return &Node{Type: typ, Attributes: attrs, Children: children}
}

// NewTagNode returns a node of type "tag" with the given tag name.
func NewTagNode(name string, attrs map[string]any, children ...*Node) *Node {
	n := NewNode("tag", attrs, children...)
	n.Tag = name
	return n
}

// Walk returns every descendant of n in pre-order. The receiver itself is
// not included.
func (n *Node) Walk() []*Node {
	var out []*Node
	var visit func(*Node)
	visit = func(p *Node) {
		for _, c := range p.Children {
			out = append(out, c)
			visit(c)
		}
	}
	visit(n)
	return out
}

// String returns the named attribute as a string, or "" if absent or of
// another type.
func (n *Node) String(name string) string {
	s, _ := n.Attributes[name].(string)
	return s
}

// Int returns the named attribute as an int, accepting float64 values from
// the attribute scanner.
func (n *Node) Int(name string) int {
	switch v := n.Attributes[name].(type) {
	case int:
		return v
	case float64:
		return int(v)
	}
	return 0
}

// Text joins the content of every descendant text node with single spaces.
func (n *Node) Text() string {
	var parts []string
	for _, d := range n.Walk() {
		if d.Type == "text" {
			if s, ok := d.Attributes["content"].(string); ok && s != "" {
				parts = append(parts, s)
			}
		}
	}
	return strings.Join(parts, " ")
}
