package runemark

// Config carries the transform environment: tag and node schemas, the
// variables bag, and the per-document id generator. Configs are treated
// as immutable; WithNode and WithTag return extended copies.
type Config struct {
	Tags  map[string]*Schema
	Nodes map[string]*Schema

	// Variables is shared transform state. Recognized keys:
	// "__source" (raw document text, for line-accurate extraction),
	// "__icons" (group → name → SVG string registry), and
	// "__headings" (pre-scanned []HeadingInfo).
	Variables map[string]any

	// IDs is the per-document id generator. Nil is valid; id generation
	// then becomes a no-op.
	IDs *IDGenerator
}

// NewConfig returns an empty config with a fresh id generator.
func NewConfig() *Config {
	return &Config{
		Tags:      map[string]*Schema{},
		Nodes:     map[string]*Schema{},
		Variables: map[string]any{},
		IDs:       NewIDGenerator(),
	}
}

// Tag returns the schema bound to a tag name, or nil.
func (c *Config) Tag(name string) *Schema {
	if c == nil || c.Tags == nil {
		return nil
	}
	return c.Tags[name]
}

// Node returns the schema bound to a node type, falling back to the
// built-in node schemas.
func (c *Config) Node(typ string) *Schema {
	if c != nil && c.Nodes != nil {
		if s, ok := c.Nodes[typ]; ok {
			return s
		}
	}
	return defaultNodes[typ]
}

// Source returns the raw document text from the variables bag, or "".
func (c *Config) Source() string {
	if c == nil || c.Variables == nil {
		return ""
	}
	s, _ := c.Variables["__source"].(string)
	return s
}

// Icons returns the icon registry from the variables bag, or nil.
func (c *Config) Icons() map[string]map[string]string {
	if c == nil || c.Variables == nil {
		return nil
	}
	icons, _ := c.Variables["__icons"].(map[string]map[string]string)
	return icons
}

// Headings returns the pre-scanned heading summary from the variables
// bag, or nil.
func (c *Config) Headings() []HeadingInfo {
	if c == nil || c.Variables == nil {
		return nil
	}
	headings, _ := c.Variables["__headings"].([]HeadingInfo)
	return headings
}

// WithNode returns a copy of c binding a node type to a schema. The
// receiver's maps are not touched.
func (c *Config) WithNode(typ string, s *Schema) *Config {
	out := c.clone()
	out.Nodes[typ] = s
	return out
}

// WithTag returns a copy of c binding a tag name to a schema.
func (c *Config) WithTag(name string, s *Schema) *Config {
	out := c.clone()
	out.Tags[name] = s
	return out
}

// clone copies the config one map level deep. Schemas and variables are
// shared; the maps themselves are fresh.
func (c *Config) clone() *Config {
	out := &Config{
		Tags:      make(map[string]*Schema, len(c.Tags)),
		Nodes:     make(map[string]*Schema, len(c.Nodes)),
		Variables: c.Variables,
		IDs:       c.IDs,
	}
	for k, v := range c.Tags {
		out.Tags[k] = v
	}
	for k, v := range c.Nodes {
		out.Nodes[k] = v
	}
	return out
}
