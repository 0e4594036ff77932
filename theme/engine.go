package theme

import (
	"regexp"
	"sort"
	"strings"

	"github.com/runemark/runemark"
)

var isoDuration = regexp.MustCompile(`PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?`)

// textTransform applies a named text transform to a metaText value.
// Unknown names pass the value through.
func textTransform(name, v string) string {
	switch name {
	case "duration":
		m := isoDuration.FindStringSubmatch(v)
		if m == nil {
			return v
		}
		var parts []string
		if m[1] != "" {
			parts = append(parts, m[1]+"h")
		}
		if m[2] != "" {
			parts = append(parts, m[2]+"m")
		}
		if m[3] != "" {
			parts = append(parts, m[3]+"s")
		}
		if len(parts) == 0 {
			return v
		}
		return strings.Join(parts, " ")
	case "uppercase":
		return strings.ToUpper(v)
	case "capitalize":
		if v == "" {
			return v
		}
		return strings.ToUpper(v[:1]) + v[1:]
	}
	return v
}

// NewTransform returns the identity transform for a theme config. The
// returned function walks a renderable tree and rewrites each typed
// node: BEM classes from the rune config, modifier data attributes,
// auto-labeling, structural element injection, consumed-meta removal,
// and inline styles. Input trees are not mutated; untyped tags pass
// through with only their children rewritten.
func NewTransform(cfg *Config) func(any) any {
	e := &engine{cfg: cfg}
	return func(tree any) any {
		return e.walk(tree, "")
	}
}

type engine struct {
	cfg *Config
}

func (e *engine) walk(tree any, parentTypeof string) any {
	switch node := tree.(type) {
	case nil:
		return nil
	case []any:
		out := make([]any, len(node))
		for i, n := range node {
			out[i] = e.walk(n, parentTypeof)
		}
		return out
	case *runemark.Tag:
		if rc, ok := e.cfg.Runes[node.Typeof()]; ok {
			return e.transformRune(node, rc, parentTypeof)
		}
		out := cloneTag(node)
		for i, c := range out.Children {
			out.Children[i] = e.walk(c, parentTypeof)
		}
		return out
	default:
		return tree
	}
}

func (e *engine) transformRune(tag *runemark.Tag, rc RuneConfig, parentTypeof string) *runemark.Tag {
	block := e.cfg.Prefix + "-" + rc.Block
	typeofName := tag.Typeof()

	// Resolve modifiers, in name order for stable class output.
	var modifierClasses []string
	modifierValues := map[string]string{}
	for _, name := range sortedKeys(rc.Modifiers) {
		mod := rc.Modifiers[name]
		var value string
		if mod.Source == "meta" {
			value = readMeta(tag, name, mod.Default)
		} else {
			value = attrString(tag.Attributes[name])
			if value == "" {
				value = mod.Default
			}
		}
		if value != "" {
			modifierValues[name] = value
			modifierClasses = append(modifierClasses, block+"--"+value)
		}
	}

	if suffix, ok := rc.ContextModifiers[parentTypeof]; ok && parentTypeof != "" {
		modifierClasses = append(modifierClasses, block+"--"+suffix)
	}
	for _, mod := range rc.StaticModifiers {
		modifierClasses = append(modifierClasses, block+"--"+mod)
	}

	out := cloneTag(tag)

	// Expose resolved modifiers as data attributes; meta sources are
	// consumed below, so this is how components still read them.
	for name, value := range modifierValues {
		out.Attributes["data-"+kebab(name)] = value
	}

	existing := attrString(tag.Attributes["class"])
	out.Attributes["class"] = joinClasses(append(append([]string{block}, modifierClasses...), existing)...)

	children := out.Children

	if len(rc.AutoLabel) > 0 {
		for i, c := range children {
			ct, ok := runemark.IsTag(c)
			if !ok {
				continue
			}
			label, found := rc.AutoLabel[ct.Name]
			if !found {
				label, found = rc.AutoLabel[attrString(ct.Attributes["property"])]
			}
			if !found || label == "" || ct.Attributes["data-name"] != nil {
				continue
			}
			labeled := cloneTag(ct)
			labeled.Attributes["data-name"] = label
			children[i] = labeled
		}
	}

	// Inject structural elements, wrapping content if configured.
	var prepend, appended []any
	for _, key := range rc.Structure.Keys() {
		entry, _ := rc.Structure.Get(key)
		element := e.buildStructureElement(entry, key, modifierValues)
		if element == nil {
			continue
		}
		if entry.Before {
			prepend = append(prepend, element)
		} else {
			appended = append(appended, element)
		}
	}
	if rc.ContentWrapper != nil {
		wrapped := runemark.NewTag(rc.ContentWrapper.Tag,
			map[string]any{"data-name": rc.ContentWrapper.Ref}, children...)
		children = append(append(append([]any{}, prepend...), wrapped), appended...)
	} else if len(prepend) > 0 || len(appended) > 0 {
		children = append(append(append([]any{}, prepend...), children...), appended...)
	}

	// BEM element classes for data-name children, then recursion.
	enhanced := make([]any, len(children))
	for i, c := range children {
		ct, ok := runemark.IsTag(c)
		if !ok {
			enhanced[i] = e.walk(c, typeofName)
			continue
		}
		enhanced[i] = e.applyElementClasses(ct, block, typeofName)
	}

	// Drop the meta tags the modifiers consumed.
	filtered := enhanced[:0]
	for _, c := range enhanced {
		if ct, ok := runemark.IsTag(c); ok && ct.Name == "meta" {
			prop := attrString(ct.Attributes["property"])
			if _, consumed := rc.Modifiers[prop]; consumed && prop != "" {
				continue
			}
		}
		filtered = append(filtered, c)
	}
	out.Children = filtered

	if typeofName != "" {
		out.Attributes["data-rune"] = strings.ToLower(typeofName)
	}
	for k, v := range rc.RootAttributes {
		out.Attributes[k] = v
	}

	if len(rc.Styles) > 0 {
		var parts []string
		for _, modName := range sortedKeys(rc.Styles) {
			val := modifierValues[modName]
			if val == "" {
				continue
			}
			spec := rc.Styles[modName]
			if spec.Template == "" {
				parts = append(parts, spec.Prop+": "+val)
			} else {
				parts = append(parts, spec.Prop+": "+strings.ReplaceAll(spec.Template, "{}", val))
			}
		}
		if len(parts) > 0 {
			style := attrString(out.Attributes["style"])
			if style != "" {
				style += "; "
			}
			out.Attributes["style"] = style + strings.Join(parts, "; ")
		}
	}

	if rc.PostTransform != nil {
		return rc.PostTransform(out, PostContext{
			Modifiers:  modifierValues,
			ParentType: parentTypeof,
		})
	}
	return out
}

// applyElementClasses adds the BEM element class to a data-name tag and
// to nested data-name tags inside it, then recurses normally.
func (e *engine) applyElementClasses(tag *runemark.Tag, block, parentTypeof string) any {
	dataName := attrString(tag.Attributes["data-name"])
	if dataName == "" {
		return e.walk(tag, parentTypeof)
	}

	out := cloneTag(tag)
	out.Attributes["class"] = joinClasses(block+"__"+dataName, attrString(tag.Attributes["class"]))
	for i, c := range out.Children {
		if ct, ok := runemark.IsTag(c); ok {
			out.Children[i] = e.applyElementClasses(ct, block, parentTypeof)
		}
	}
	return e.walk(out, parentTypeof)
}

// buildStructureElement materializes one structure entry, or nil when
// its condition is not met.
func (e *engine) buildStructureElement(entry StructureEntry, key string, modifierValues map[string]string) *runemark.Tag {
	if entry.Condition != "" && modifierValues[entry.Condition] == "" {
		return nil
	}
	if len(entry.ConditionAny) > 0 {
		met := false
		for _, name := range entry.ConditionAny {
			if modifierValues[name] != "" {
				met = true
				break
			}
		}
		if !met {
			return nil
		}
	}

	dataName := entry.Ref
	if dataName == "" {
		dataName = key
	}
	attrs := map[string]any{"data-name": dataName}
	for _, name := range sortedKeys(entry.Attrs) {
		a := entry.Attrs[name]
		if a.FromModifier != "" {
			attrs[name] = modifierValues[a.FromModifier]
		} else {
			attrs[name] = a.Value
		}
	}

	// Icon elements stay empty; CSS supplies the glyph via mask-image,
	// or InlineIcons fills them from the data-icon reference.
	if entry.Icon != nil {
		variant := modifierValues[entry.Icon.Variant]
		if variant == "" {
			variant = entry.Icon.Variant
		}
		attrs["data-icon"] = entry.Icon.Group + "/" + variant
		return runemark.NewTag(entry.Tag, attrs)
	}

	if entry.MetaText != "" {
		text := modifierValues[entry.MetaText]
		if entry.Transform != "" {
			text = textTransform(entry.Transform, text)
		}
		text = entry.TextPrefix + text + entry.TextSuffix
		return runemark.NewTag(entry.Tag, attrs, text)
	}

	var children []any
	for _, c := range entry.Children {
		if c.Entry == nil {
			children = append(children, c.Text)
			continue
		}
		if built := e.buildStructureElement(*c.Entry, c.Entry.Ref, modifierValues); built != nil {
			children = append(children, built)
		}
	}
	return runemark.NewTag(entry.Tag, attrs, children...)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
