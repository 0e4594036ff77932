package runemark

// SerializedTag is the plain-data mirror of a renderable Tag, safe for
// transport and storage. The conversion is one-way: serialized nodes are
// a sink format.
type SerializedTag struct {
	MDType     string         `json:"$$mdtype"`
	Name       string         `json:"name"`
	Attributes map[string]any `json:"attributes"`
	Children   []any          `json:"children"`
}

// IsSerializedTag reports whether v is a serialized tag node.
func IsSerializedTag(v any) (*SerializedTag, bool) {
	t, ok := v.(*SerializedTag)
	return t, ok && t != nil
}

// MakeSerializedTag builds a serialized tag with non-nil maps/slices.
func MakeSerializedTag(name string, attrs map[string]any, children []any) *SerializedTag {
	if attrs == nil {
		attrs = map[string]any{}
	}
	if children == nil {
		children = []any{}
	}
	return &SerializedTag{MDType: "Tag", Name: name, Attributes: attrs, Children: children}
}

// Serialize converts a renderable node to its plain-data form. It is the
// identity for primitives and nil, recursive for tags, and total: no
// input makes it fail. Attribute value types are preserved exactly.
func Serialize(node any) any {
	switch v := node.(type) {
	case nil:
		return nil
	case *Tag:
		children := make([]any, 0, len(v.Children))
		for _, c := range v.Children {
			children = append(children, Serialize(c))
		}
		return &SerializedTag{MDType: "Tag", Name: v.Name, Attributes: v.Attributes, Children: children}
	case []any:
		out := make([]any, 0, len(v))
		for _, c := range v {
			out = append(out, Serialize(c))
		}
		return out
	default:
		return v
	}
}

// SerializeTree lifts Serialize over a top-level array or single node.
func SerializeTree(tree any) any {
	return Serialize(tree)
}
