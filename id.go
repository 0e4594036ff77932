package runemark

import "fmt"

// IDGenerator assigns collision-free element ids within one document
// pass. It is plain mutable state scoped to a single Config; documents
// processed in parallel each get their own generator.
type IDGenerator struct {
	used map[string]struct{}
}

// NewIDGenerator returns an empty generator.
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{used: map[string]struct{}{}}
}

// GenerateIfMissing assigns "{prefix}-{index}" to a tag node that has no
// explicit id attribute, where prefix is the tag name and index is the
// smallest non-negative integer not yet used. Explicit ids are never
// overwritten.
func (g *IDGenerator) GenerateIfMissing(n *Node) {
	if g == nil || n == nil || n.Type != "tag" {
		return
	}
	if s, ok := n.Attributes["id"].(string); ok && s != "" {
		return
	}
	for index := 0; ; index++ {
		id := fmt.Sprintf("%s-%d", n.Tag, index)
		if _, taken := g.used[id]; !taken {
			g.used[id] = struct{}{}
			n.Attributes["id"] = id
			return
		}
	}
}
