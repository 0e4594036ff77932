package runemark

// RenderableNodeCursor is an ordered, read-only view over post-transform
// renderable nodes. Filtering and slicing operations return fresh
// cursors; only Next carries interior state (a single-pass offset owned
// by this cursor instance — derived views get a fresh offset).
//
// All operations are total over their input: empty in, empty out.
type RenderableNodeCursor struct {
	nodes  []any
	offset int
}

// NewCursor wraps a slice of renderable nodes.
func NewCursor(nodes []any) *RenderableNodeCursor {
	return &RenderableNodeCursor{nodes: nodes}
}

// CursorOf builds a cursor from individual nodes.
func CursorOf(nodes ...any) *RenderableNodeCursor {
	return &RenderableNodeCursor{nodes: nodes}
}

// Tag filters to tags with the given name.
func (c *RenderableNodeCursor) Tag(name string) *RenderableNodeCursor {
	return c.Tags(name)
}

// Tags filters to tags whose name is one of names. Non-tag nodes are
// dropped.
func (c *RenderableNodeCursor) Tags(names ...string) *RenderableNodeCursor {
	var out []any
	for _, n := range c.nodes {
		if t, ok := IsTag(n); ok {
			for _, name := range names {
				if t.Name == name {
					out = append(out, t)
					break
				}
			}
		}
	}
	return NewCursor(out)
}

// Headings filters to h1 through h6 tags.
func (c *RenderableNodeCursor) Headings() *RenderableNodeCursor {
	return c.Tags("h1", "h2", "h3", "h4", "h5", "h6")
}

// Typeof filters to tags whose typeof attribute equals t.
func (c *RenderableNodeCursor) Typeof(t string) *RenderableNodeCursor {
	var out []any
	for _, n := range c.nodes {
		if tag, ok := IsTag(n); ok && tag.Typeof() == t {
			out = append(out, tag)
		}
	}
	return NewCursor(out)
}

// Wrap returns a single-element cursor holding one new tag with the
// current nodes as children.
func (c *RenderableNodeCursor) Wrap(name string, attrs map[string]any) *RenderableNodeCursor {
	return CursorOf(NewTag(name, attrs, c.nodes...))
}

// Concat returns a new cursor with the receiver's nodes followed by the
// arguments in call order. Cursors and []any arguments are flattened one
// level; anything else is appended as a node.
func (c *RenderableNodeCursor) Concat(others ...any) *RenderableNodeCursor {
	out := append([]any{}, c.nodes...)
	for _, o := range others {
		switch v := o.(type) {
		case *RenderableNodeCursor:
			out = append(out, v.nodes...)
		case []any:
			out = append(out, v...)
		default:
			out = append(out, v)
		}
	}
	return NewCursor(out)
}

// Flatten walks every tag depth-first and returns each node in the tree
// exactly once, ancestors before descendants.
func (c *RenderableNodeCursor) Flatten() *RenderableNodeCursor {
	var out []any
	for _, n := range c.nodes {
		if t, ok := IsTag(n); ok {
			out = append(out, WalkTag(t)...)
		} else {
			out = append(out, n)
		}
	}
	return NewCursor(out)
}

// Limit returns a cursor over the first n nodes.
func (c *RenderableNodeCursor) Limit(n int) *RenderableNodeCursor {
	if n < 0 {
		n = 0
	}
	if n > len(c.nodes) {
		n = len(c.nodes)
	}
	return NewCursor(c.nodes[:n])
}

// Slice returns a cursor over nodes[start:end]. A negative end means
// through the end of the sequence. Out-of-range bounds clamp.
func (c *RenderableNodeCursor) Slice(start, end int) *RenderableNodeCursor {
	if end < 0 || end > len(c.nodes) {
		end = len(c.nodes)
	}
	if start < 0 {
		start = 0
	}
	if start > end {
		start = end
	}
	return NewCursor(c.nodes[start:end])
}

// Count returns the number of nodes.
func (c *RenderableNodeCursor) Count() int {
	return len(c.nodes)
}

// ToArray returns the underlying nodes.
func (c *RenderableNodeCursor) ToArray() []any {
	return c.nodes
}

// Next returns nodes in order on successive calls, advancing the
// cursor's own offset. Past the end it returns nil; that is the
// contract, not an error.
func (c *RenderableNodeCursor) Next() any {
	if c.offset >= len(c.nodes) {
		return nil
	}
	n := c.nodes[c.offset]
	c.offset++
	return n
}

// NextTag returns the next node if it is a tag, nil otherwise. The
// offset advances either way.
func (c *RenderableNodeCursor) NextTag() *Tag {
	t, _ := IsTag(c.Next())
	return t
}

// FirstTag returns the first tag in the cursor without consuming the
// offset, or nil.
func (c *RenderableNodeCursor) FirstTag() *Tag {
	for _, n := range c.nodes {
		if t, ok := IsTag(n); ok {
			return t
		}
	}
	return nil
}
