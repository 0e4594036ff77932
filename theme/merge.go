package theme

// Merge layers overlay onto base additively and returns a new config.
// Overlay rune configs are added where base has none; where both define
// a rune, overlay fills only the fields base leaves empty, never
// replacing settings the base already carries. Icon groups merge name
// by name, base winning on conflicts. Neither input is mutated.
func Merge(base, overlay *Config) *Config {
	if base == nil && overlay == nil {
		return &Config{}
	}
	if base == nil {
		return overlay.clone()
	}
	if overlay == nil {
		return base.clone()
	}

	out := base.clone()
	if out.Prefix == "" {
		out.Prefix = overlay.Prefix
	}
	if out.TokenPrefix == "" {
		out.TokenPrefix = overlay.TokenPrefix
	}

	for group, icons := range overlay.Icons {
		if out.Icons == nil {
			out.Icons = map[string]map[string]string{}
		}
		if out.Icons[group] == nil {
			out.Icons[group] = map[string]string{}
		}
		for name, svg := range icons {
			if _, taken := out.Icons[group][name]; !taken {
				out.Icons[group][name] = svg
			}
		}
	}

	for name, rc := range overlay.Runes {
		if out.Runes == nil {
			out.Runes = map[string]RuneConfig{}
		}
		existing, ok := out.Runes[name]
		if !ok {
			out.Runes[name] = rc
			continue
		}
		out.Runes[name] = mergeRune(existing, rc)
	}
	return out
}

// mergeRune fills base's empty fields from overlay. Map-valued fields
// merge key by key with base winning; list-valued fields are taken
// whole only when base has none.
func mergeRune(base, overlay RuneConfig) RuneConfig {
	if base.Block == "" {
		base.Block = overlay.Block
	}
	if base.Parent == "" {
		base.Parent = overlay.Parent
	}
	base.Modifiers = mergeMap(base.Modifiers, overlay.Modifiers)
	base.ContextModifiers = mergeMap(base.ContextModifiers, overlay.ContextModifiers)
	base.AutoLabel = mergeMap(base.AutoLabel, overlay.AutoLabel)
	base.RootAttributes = mergeMap(base.RootAttributes, overlay.RootAttributes)
	base.Styles = mergeMap(base.Styles, overlay.Styles)

	if base.Structure.Len() == 0 {
		base.Structure = overlay.Structure
	} else if overlay.Structure.Len() > 0 {
		merged := Structure{}
		for _, key := range base.Structure.Keys() {
			entry, _ := base.Structure.Get(key)
			merged.Set(key, entry)
		}
		for _, key := range overlay.Structure.Keys() {
			if _, taken := merged.Get(key); !taken {
				entry, _ := overlay.Structure.Get(key)
				merged.Set(key, entry)
			}
		}
		base.Structure = merged
	}
	if base.ContentWrapper == nil {
		base.ContentWrapper = overlay.ContentWrapper
	}
	if len(base.StaticModifiers) == 0 {
		base.StaticModifiers = overlay.StaticModifiers
	}
	if base.PostTransform == nil {
		base.PostTransform = overlay.PostTransform
	}
	return base
}

func mergeMap[V any](base, overlay map[string]V) map[string]V {
	if len(overlay) == 0 {
		return base
	}
	out := make(map[string]V, len(base)+len(overlay))
	for k, v := range overlay {
		out[k] = v
	}
	for k, v := range base {
		out[k] = v
	}
	return out
}

func (c *Config) clone() *Config {
	out := &Config{
		Prefix:      c.Prefix,
		TokenPrefix: c.TokenPrefix,
	}
	if c.Icons != nil {
		out.Icons = make(map[string]map[string]string, len(c.Icons))
		for group, icons := range c.Icons {
			g := make(map[string]string, len(icons))
			for name, svg := range icons {
				g[name] = svg
			}
			out.Icons[group] = g
		}
	}
	if c.Runes != nil {
		out.Runes = make(map[string]RuneConfig, len(c.Runes))
		for name, rc := range c.Runes {
			out.Runes[name] = rc
		}
	}
	return out
}
