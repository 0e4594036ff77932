package theme

import (
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/runemark/runemark"
)

// IconRegistry resolves icon SVG sources to renderable tag trees,
// caching parses. Lookups are keyed "group/name"; parsed trees are
// cloned on the way out so callers may restamp attributes freely.
type IconRegistry struct {
	icons map[string]map[string]string
	cache *lru.Cache[string, *runemark.Tag]
}

// NewIconRegistry wraps a group → name → SVG source map.
func NewIconRegistry(icons map[string]map[string]string) *IconRegistry {
	cache, _ := lru.New[string, *runemark.Tag](256)
	return &IconRegistry{icons: icons, cache: cache}
}

// Source returns the raw SVG string for an icon, or "".
func (r *IconRegistry) Source(group, name string) string {
	if r == nil {
		return ""
	}
	return r.icons[group][name]
}

// Icons returns the underlying source map, suitable for the transform
// variables bag.
func (r *IconRegistry) Icons() map[string]map[string]string {
	if r == nil {
		return nil
	}
	return r.icons
}

// Renderable parses an icon into a tag tree, memoizing the parse. The
// returned tree is a fresh deep clone; nil when the icon is unknown.
func (r *IconRegistry) Renderable(group, name string) *runemark.Tag {
	svg := r.Source(group, name)
	if svg == "" {
		return nil
	}
	key := group + "/" + name
	if cached, ok := r.cache.Get(key); ok {
		return deepCloneTag(cached)
	}
	parsed := runemark.ParseSVG(svg, key)
	r.cache.Add(key, parsed)
	return deepCloneTag(parsed)
}

// InlineIcons replaces empty icon placeholder elements with parsed SVG
// trees from the registry. A placeholder is any childless tag carrying
// a data-icon attribute of the form "group/name" (bare names resolve in
// the global group). Unresolvable placeholders pass through unchanged.
func InlineIcons(tree any, reg *IconRegistry) any {
	if reg == nil {
		return tree
	}
	switch node := tree.(type) {
	case []any:
		out := make([]any, len(node))
		for i, n := range node {
			out[i] = InlineIcons(n, reg)
		}
		return out
	case *runemark.Tag:
		name := attrString(node.Attributes["data-icon"])
		if name != "" && len(node.Children) == 0 {
			group, icon := "global", name
			if i := strings.Index(name, "/"); i != -1 {
				group, icon = name[:i], name[i+1:]
			}
			if svg := reg.Renderable(group, icon); svg != nil {
				out := cloneTag(node)
				out.Children = []any{svg}
				return out
			}
			return node
		}
		out := cloneTag(node)
		for i, c := range out.Children {
			out.Children[i] = InlineIcons(c, reg)
		}
		return out
	default:
		return tree
	}
}

func deepCloneTag(t *runemark.Tag) *runemark.Tag {
	out := cloneTag(t)
	for i, c := range out.Children {
		if ct, ok := runemark.IsTag(c); ok {
			out.Children[i] = deepCloneTag(ct)
		}
	}
	return out
}
