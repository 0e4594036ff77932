package runemark

import "sort"

// Transform runs every node through its schema and returns the flattened
// renderable results. Schemas returning []any are spliced; nil results
// are dropped. The function is total over its input: a missing schema
// falls back to splicing the node's children through.
func Transform(nodes []*Node, cfg *Config) []any {
	var out []any
	for _, n := range nodes {
		appendRenderable(&out, TransformNode(n, cfg))
	}
	return out
}

// TransformNode transforms a single node. Tags dispatch through
// cfg.Tags; other node types through cfg.Nodes with built-in fallbacks.
func TransformNode(n *Node, cfg *Config) any {
	if n == nil {
		return nil
	}

	var schema *Schema
	if n.Type == "tag" {
		schema = cfg.Tag(n.Tag)
		if schema == nil {
			// Unknown tag: render the body, skip the wrapper.
			return n.TransformChildren(cfg)
		}
	} else {
		schema = cfg.Node(n.Type)
		if schema == nil {
			return n.TransformChildren(cfg)
		}
	}

	if schema.Transform != nil {
		return schema.Transform(n, cfg)
	}
	if schema.Render != "" {
		return NewTag(schema.Render, n.TransformAttributes(cfg), n.TransformChildren(cfg)...)
	}
	return n.TransformChildren(cfg)
}

// TransformChildren transforms the node's children in order.
func (n *Node) TransformChildren(cfg *Config) []any {
	return Transform(n.Children, cfg)
}

// Transform transforms the node itself.
func (n *Node) Transform(cfg *Config) any {
	return TransformNode(n, cfg)
}

// TransformAttributes applies the node schema's attribute specs: defaults
// for absent values, custom type transforms, and NoRender filtering.
// Attributes without a spec pass through only for the universal class and
// id attributes.
func (n *Node) TransformAttributes(cfg *Config) map[string]any {
	var schema *Schema
	if n.Type == "tag" {
		schema = cfg.Tag(n.Tag)
	} else {
		schema = cfg.Node(n.Type)
	}

	out := map[string]any{}
	if schema != nil {
		names := make([]string, 0, len(schema.Attributes))
		for name := range schema.Attributes {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			spec := schema.Attributes[name]
			raw, present := n.Attributes[name]
			if !present {
				raw = spec.Default
			}
			if raw == nil {
				continue
			}
			if t, ok := spec.Type.(AttributeType); ok {
				raw = t.TransformValue(raw)
			}
			if spec.NoRender {
				continue
			}
			out[name] = raw
		}
	}

	for _, universal := range []string{"class", "id"} {
		if v, ok := n.Attributes[universal]; ok {
			if _, declared := out[universal]; !declared {
				out[universal] = v
			}
		}
	}
	return out
}

// TransformedAttributes returns the full post-transform attribute set
// including NoRender values, used by models to populate their fields.
func (n *Node) TransformedAttributes(cfg *Config) map[string]any {
	var schema *Schema
	if n.Type == "tag" {
		schema = cfg.Tag(n.Tag)
	} else {
		schema = cfg.Node(n.Type)
	}

	out := map[string]any{}
	if schema == nil {
		for k, v := range n.Attributes {
			out[k] = v
		}
		return out
	}
	for name, spec := range schema.Attributes {
		raw, present := n.Attributes[name]
		if !present {
			raw = spec.Default
		}
		if raw == nil {
			continue
		}
		if t, ok := spec.Type.(AttributeType); ok {
			raw = t.TransformValue(raw)
		}
		out[name] = raw
	}
	for _, universal := range []string{"class", "id"} {
		if v, ok := n.Attributes[universal]; ok {
			if _, declared := out[universal]; !declared {
				out[universal] = v
			}
		}
	}
	return out
}

func appendRenderable(out *[]any, v any) {
	switch t := v.(type) {
	case nil:
	case []any:
		for _, e := range t {
			appendRenderable(out, e)
		}
	default:
		*out = append(*out, v)
	}
}
