package theme

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/runemark/runemark"
)

// findMeta returns the first meta child carrying the given property.
func findMeta(t *runemark.Tag, property string) *runemark.Tag {
	for _, c := range t.Children {
		ct, ok := runemark.IsTag(c)
		if !ok || ct.Name != "meta" {
			continue
		}
		if ct.Attributes["property"] == property {
			return ct
		}
	}
	return nil
}

// readMeta returns a meta child's content as a string, or fallback.
func readMeta(t *runemark.Tag, property, fallback string) string {
	m := findMeta(t, property)
	if m == nil {
		return fallback
	}
	return attrString(m.Attributes["content"])
}

// findByDataName returns the first child with the given data-name.
func findByDataName(t *runemark.Tag, name string) *runemark.Tag {
	for _, c := range t.Children {
		if ct, ok := runemark.IsTag(c); ok && ct.Attributes["data-name"] == name {
			return ct
		}
	}
	return nil
}

// attrString renders an attribute value as text. Nil is "".
func attrString(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// kebab converts lowerCamelCase to kebab-case for data attributes.
func kebab(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsUpper(r) {
			b.WriteByte('-')
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// cloneTag copies a tag one level deep: fresh attribute map and child
// slice, shared grandchildren.
func cloneTag(t *runemark.Tag) *runemark.Tag {
	attrs := make(map[string]any, len(t.Attributes))
	for k, v := range t.Attributes {
		attrs[k] = v
	}
	children := make([]any, len(t.Children))
	copy(children, t.Children)
	return &runemark.Tag{Name: t.Name, Attributes: attrs, Children: children}
}

// joinClasses joins non-empty class fragments with single spaces.
func joinClasses(parts ...string) string {
	out := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}
