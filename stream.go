package runemark

// NodeStream is an ordered, owned sequence of pre-transform AST nodes
// bound to a transform config. Streams are the unit a model's group
// fields collect into; UseNode and UseTag return new streams with an
// extended config, leaving the original untouched.
type NodeStream struct {
	nodes  []*Node
	config *Config
}

// NewNodeStream wraps nodes with a config. The slice is owned by the
// stream afterwards.
func NewNodeStream(nodes []*Node, cfg *Config) *NodeStream {
	return &NodeStream{nodes: nodes, config: cfg}
}

// Push appends a node.
func (s *NodeStream) Push(n *Node) {
	s.nodes = append(s.nodes, n)
}

// Len returns the current node count.
func (s *NodeStream) Len() int {
	return len(s.nodes)
}

// Nodes returns the underlying slice.
func (s *NodeStream) Nodes() []*Node {
	return s.nodes
}

// WrapTag returns a new single-node stream whose one synthetic tag node
// has this stream's nodes as children. Used to re-present a flat group as
// one addressable tag before re-transforming.
func (s *NodeStream) WrapTag(tag string, attrs map[string]any) *NodeStream {
	return NewNodeStream([]*Node{NewTagNode(tag, attrs, s.nodes...)}, s.config)
}

// UseNode returns a new stream whose config binds a node type to a
// schema. The receiver's config is unaffected.
func (s *NodeStream) UseNode(typ string, schema *Schema) *NodeStream {
	return NewNodeStream(s.nodes, s.config.WithNode(typ, schema))
}

// UseTag returns a new stream whose config binds a tag name to a schema.
func (s *NodeStream) UseTag(name string, schema *Schema) *NodeStream {
	return NewNodeStream(s.nodes, s.config.WithTag(name, schema))
}

// Transform runs the generic transform over the stream's nodes with its
// attached config.
func (s *NodeStream) Transform() *RenderableNodeCursor {
	return NewCursor(Transform(s.nodes, s.config))
}
