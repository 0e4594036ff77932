package runemark

// The model machinery interprets a declarative field table: each rune
// declares what shape of content it expects (attributes, child groups) as
// an ordered list of fields, and a transform function that builds output
// from the populated model. Field order matters — group fields claim
// children sequentially, each consuming a contiguous prefix of what the
// previous field left behind.

// FieldKind discriminates model field descriptors.
type FieldKind int

const (
	AttributeField FieldKind = iota
	GroupField
	GroupListField
	IDField
)

// NodeFilter matches AST nodes for group membership. Zero fields match
// everything; set fields must all hold.
type NodeFilter struct {
	// Node requires an exact node type.
	Node string

	// Descendant requires some descendant of the given type.
	Descendant string

	// Fn is an arbitrary predicate.
	Fn func(*Node) bool
}

// FilterType matches nodes of one type.
func FilterType(t string) NodeFilter {
	return NodeFilter{Node: t}
}

// MatchesFilter reports whether n satisfies f.
func MatchesFilter(n *Node, f NodeFilter) bool {
	if f.Fn != nil {
		return f.Fn(n)
	}
	if f.Node != "" && n.Type != f.Node {
		return false
	}
	if f.Descendant != "" {
		found := false
		for _, d := range n.Walk() {
			if d.Type == f.Descendant {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// GroupOptions configures a GroupField.
type GroupOptions struct {
	// Section restricts the group to content after the Nth hr delimiter
	// (nil: any section).
	Section *int

	// Include is the set of match predicates; empty includes everything.
	Include []NodeFilter
}

// Section returns a pointer for GroupOptions.Section literals.
func Section(n int) *int {
	return &n
}

// Field declares one model field. Exactly one options struct matching
// Kind is consulted.
type Field struct {
	Name string
	Kind FieldKind

	// AttributeField
	Attribute AttributeSpec

	// GroupField
	Group GroupOptions

	// GroupListField: children split on this delimiter node type.
	Delimiter string

	// IDField: assign a generated id when the node has none.
	Generate bool
}

// Attr declares an attribute field.
func Attr(name string, spec AttributeSpec) Field {
	return Field{Name: name, Kind: AttributeField, Attribute: spec}
}

// Group declares a group field.
func Group(name string, opts GroupOptions) Field {
	return Field{Name: name, Kind: GroupField, Group: opts}
}

// GroupList declares a group-list field.
func GroupList(name, delimiter string) Field {
	return Field{Name: name, Kind: GroupListField, Delimiter: delimiter}
}

// ID declares a generated-id field.
func ID(name string, generate bool) Field {
	return Field{Name: name, Kind: IDField, Generate: generate}
}

// ModelSpec is the full declarative description of a rune: its field
// table, an optional AST rewrite that runs before groups are claimed,
// and the transform that builds renderable output.
type ModelSpec struct {
	Fields []Field

	// ProcessChildren reshapes the raw children before group fields run
	// (heading promotion and similar structural rewrites).
	ProcessChildren func(m *Model, nodes []*Node) []*Node

	// Transform builds the output from the populated model: *Tag, []any,
	// or nil. It must use the populated fields, not re-scan raw children.
	Transform func(m *Model) any
}

// Model is one rune invocation: a single AST tag node, the transform
// config, and the fields populated from them. Constructed, transformed
// once, discarded.
type Model struct {
	Node   *Node
	Config *Config

	attrs  map[string]any
	groups map[string]*NodeStream
	lists  map[string][]*NodeStream
	ids    map[string]string
}

// Attr returns the raw populated attribute value.
func (m *Model) Attr(name string) any {
	return m.attrs[name]
}

// String returns a string attribute, or "".
func (m *Model) String(name string) string {
	s, _ := m.attrs[name].(string)
	return s
}

// Int returns a numeric attribute, or 0.
func (m *Model) Int(name string) int {
	switch v := m.attrs[name].(type) {
	case int:
		return v
	case float64:
		return int(v)
	}
	return 0
}

// Bool returns a boolean attribute, or false.
func (m *Model) Bool(name string) bool {
	b, _ := m.attrs[name].(bool)
	return b
}

// Strings returns a string-list attribute, or an empty slice.
func (m *Model) Strings(name string) []string {
	if v, ok := m.attrs[name].([]string); ok {
		return v
	}
	return []string{}
}

// Ints returns an int-list attribute, or an empty slice.
func (m *Model) Ints(name string) []int {
	if v, ok := m.attrs[name].([]int); ok {
		return v
	}
	return []int{}
}

// Has reports whether the attribute was populated.
func (m *Model) Has(name string) bool {
	_, ok := m.attrs[name]
	return ok
}

// Group returns a group field's stream. Unclaimed or unknown groups
// resolve to a valid empty stream, never nil.
func (m *Model) Group(name string) *NodeStream {
	if s, ok := m.groups[name]; ok {
		return s
	}
	return NewNodeStream(nil, m.Config)
}

// GroupList returns a group-list field's streams.
func (m *Model) GroupList(name string) []*NodeStream {
	return m.lists[name]
}

// ID returns a generated-id field's value.
func (m *Model) ID(name string) string {
	return m.ids[name]
}

// TransformChildren transforms the node's (possibly rewritten) children.
// Overrides bind node types to replacement schemas for this call only.
func (m *Model) TransformChildren(overrides map[string]*Schema) *RenderableNodeCursor {
	cfg := m.Config
	for typ, s := range overrides {
		cfg = cfg.WithNode(typ, s)
	}
	return NewCursor(Transform(m.Node.Children, cfg))
}

// CreateSchema builds a tag schema from a model spec. The returned
// schema's transform constructs the model, populates id and attribute
// fields, runs ProcessChildren, claims group fields in declaration
// order, and finally invokes the spec's Transform.
func CreateSchema(spec ModelSpec) *Schema {
	attributes := map[string]AttributeSpec{}
	for _, f := range spec.Fields {
		if f.Kind == AttributeField {
			attributes[f.Name] = f.Attribute
		}
	}

	return &Schema{
		Attributes: attributes,
		Transform: func(n *Node, cfg *Config) any {
			m := &Model{
				Node:   n,
				Config: cfg,
				attrs:  map[string]any{},
				groups: map[string]*NodeStream{},
				lists:  map[string][]*NodeStream{},
				ids:    map[string]string{},
			}

			for _, f := range spec.Fields {
				if f.Kind == IDField {
					if f.Generate {
						cfg.IDs.GenerateIfMissing(n)
					}
					m.ids[f.Name] = n.String("id")
				}
			}

			for k, v := range n.TransformedAttributes(cfg) {
				m.attrs[k] = v
			}

			children := n.Children
			if spec.ProcessChildren != nil {
				children = spec.ProcessChildren(m, children)
				n.Children = children
			}

			index := 0
			for _, f := range spec.Fields {
				switch f.Kind {
				case GroupField:
					index = claimGroup(m, f, children, index)
				case GroupListField:
					index = claimGroupList(m, f, children, index)
				}
			}

			if spec.Transform == nil {
				return NewCursor(Transform(n.Children, cfg)).ToArray()
			}
			return spec.Transform(m)
		},
	}
}

// claimGroup consumes a maximal contiguous prefix of the remaining
// children matching the field's options. An hr advances the section
// counter without joining the group; a comment is always absorbed; the
// first other non-matching node terminates consumption.
func claimGroup(m *Model, f Field, nodes []*Node, index int) int {
	section := 0
	for _, n := range nodes[:min(index, len(nodes))] {
		if n.Type == "hr" {
			section++
		}
	}

	group := NewNodeStream(nil, m.Config)
	for _, n := range nodes[min(index, len(nodes)):] {
		if n.Type == "hr" {
			section++
			continue
		}
		if n.Type == "comment" || groupIncludes(f.Group, n, section) {
			group.Push(n)
		} else {
			break
		}
	}

	m.groups[f.Name] = group
	return index + group.Len()
}

func groupIncludes(opts GroupOptions, n *Node, section int) bool {
	if opts.Section != nil && *opts.Section != section {
		return false
	}
	if len(opts.Include) > 0 {
		for _, f := range opts.Include {
			if MatchesFilter(n, f) {
				return true
			}
		}
		return false
	}
	return true
}

// claimGroupList splits the remaining children on the delimiter node
// type, skipping empty segments.
func claimGroupList(m *Model, f Field, nodes []*Node, index int) int {
	var streams []*NodeStream
	current := NewNodeStream(nil, m.Config)

	for _, n := range nodes[min(index, len(nodes)):] {
		if n.Type == f.Delimiter && current.Len() > 0 {
			streams = append(streams, current)
			current = NewNodeStream(nil, m.Config)
		} else if n.Type != f.Delimiter {
			current.Push(n)
		}
	}
	if current.Len() > 0 {
		streams = append(streams, current)
	}

	m.lists[f.Name] = streams
	if len(nodes) == 0 {
		return index
	}
	return len(nodes) - 1
}
