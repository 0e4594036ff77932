package runemark

// ComponentSpec describes the output of a rune transform: the wrapper
// tag, the typed fields (properties) and structural refs found inside the
// children, and the children themselves.
type ComponentSpec struct {
	Tag      string
	ID       string
	Class    string
	Property string

	// Properties maps field names to the tags carrying them. Values may
	// be *Tag, []*Tag, []any, or *RenderableNodeCursor; every reachable
	// tag gets property=<key>.
	Properties map[string]any

	// Refs maps structural names similarly; tags get data-name=<key>.
	Refs map[string]any

	Children []any
}

// CreateComponentRenderable stamps property and data-name attributes onto
// the tags referenced by the spec and assembles the wrapper tag with a
// typeof attribute identifying the component. This is the single assembly
// path for rune output; stamping happens nowhere else.
//
// The referenced tags are mutated in place — they are the same instances
// that appear among the children.
func CreateComponentRenderable(typeName string, spec ComponentSpec) *Tag {
	for key, value := range spec.Properties {
		for _, t := range tagsOf(value) {
			t.Attributes["property"] = key
		}
	}
	for key, value := range spec.Refs {
		for _, t := range tagsOf(value) {
			t.Attributes["data-name"] = key
		}
	}

	attrs := map[string]any{"typeof": typeName}
	if spec.ID != "" {
		attrs["id"] = spec.ID
	}
	if spec.Property != "" {
		attrs["property"] = spec.Property
	}
	if spec.Class != "" {
		attrs["class"] = spec.Class
	}

	return NewTag(spec.Tag, attrs, spec.Children...)
}

// tagsOf normalizes a property/ref value to the tags it references.
func tagsOf(value any) []*Tag {
	switch v := value.(type) {
	case nil:
		return nil
	case *Tag:
		if v == nil {
			return nil
		}
		return []*Tag{v}
	case []*Tag:
		return v
	case []any:
		var out []*Tag
		for _, e := range v {
			if t, ok := IsTag(e); ok {
				out = append(out, t)
			}
		}
		return out
	case *RenderableNodeCursor:
		if v == nil {
			return nil
		}
		return tagsOf(v.ToArray())
	}
	return nil
}
