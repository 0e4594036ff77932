// Package markdown parses rune-tagged markdown source into the runemark
// AST. Markdown runs are parsed with goldmark; {% tag %} blocks are
// recognized by a line scanner and nest markdown runs inside tag nodes.
package markdown

import (
	"github.com/runemark/runemark"
)

// Parse converts source text into a document node. It is total: malformed
// tag syntax degrades to error nodes in the tree, never a panic or a Go
// error. Source line ranges are recorded on tag and fence nodes so raw
// text can be recovered later.
func Parse(source string) *runemark.Node {
	doc := runemark.NewNode("document", nil)
	doc.Children = scanBlocks(source)
	return doc
}

// ParseBlocks returns the top-level children without a document wrapper.
func ParseBlocks(source string) []*runemark.Node {
	return scanBlocks(source)
}
