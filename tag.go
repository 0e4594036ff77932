package runemark

// Tag is a renderable output element. Children elements are *Tag, string,
// int, float64, nil, or nested []any produced by transforms.
//
// Every semantically meaningful tag carries either a property attribute
// (a named field of its parent component type) or a data-name attribute
// (a structural ref). Both are set exclusively by
// CreateComponentRenderable.
type Tag struct {
	Name       string
	Attributes map[string]any
	Children   []any
}

// NewTag returns a tag with a non-nil attribute map.
func NewTag(name string, attrs map[string]any, children ...any) *Tag {
	if attrs == nil {
		attrs = map[string]any{}
	}
	return &Tag{Name: name, Attributes: attrs, Children: children}
}

// IsTag reports whether v is a renderable tag.
func IsTag(v any) (*Tag, bool) {
	t, ok := v.(*Tag)
	return t, ok && t != nil
}

// Typeof returns the tag's typeof attribute, or "".
func (t *Tag) Typeof() string {
	s, _ := t.Attributes["typeof"].(string)
	return s
}

// WalkTag yields t and then every descendant in depth-first pre-order.
// Non-tag children appear once, in place.
func WalkTag(t *Tag) []any {
	out := []any{t}
	for _, c := range t.Children {
		if ct, ok := IsTag(c); ok {
			out = append(out, WalkTag(ct)...)
		} else {
			out = append(out, c)
		}
	}
	return out
}

// TagText joins every string descendant of t, without separators. Used by
// runes that read rendered text back out of a subtree (chart, tabs).
func TagText(t *Tag) string {
	var b []byte
	for _, n := range WalkTag(t) {
		if s, ok := n.(string); ok {
			b = append(b, s...)
		}
	}
	return string(b)
}
