package runemark

// ScalarType identifies a built-in attribute value type.
type ScalarType int

const (
	StringType ScalarType = iota
	NumberType
	BooleanType
)

// AttributeType is a custom attribute value parser/validator. Validate
// runs before the model is constructed; TransformValue converts the raw
// attribute value into its parsed form.
type AttributeType interface {
	Validate(value any, cfg *Config, name string) []ValidationError
	TransformValue(value any) any
}

// AttributeSpec describes one attribute of a tag schema.
type AttributeSpec struct {
	// Type is a ScalarType or an AttributeType. Nil means StringType.
	Type any

	Required bool

	// Default is used when the attribute is absent.
	Default any

	// Matches restricts string values to an enumerated set.
	Matches []string

	// ErrorLevel overrides the level reported for a Matches violation.
	ErrorLevel string

	// NoRender excludes the attribute from TransformAttributes output.
	NoRender bool
}

// Schema describes how one node type or tag transforms into renderable
// output. Exactly one of Render or Transform is typically set; with
// neither, the node's children are spliced through.
type Schema struct {
	// Render wraps the node's transformed children in a tag of this name.
	Render string

	// SelfClosing marks tags that take no body ({% icon /%}).
	SelfClosing bool

	Attributes map[string]AttributeSpec

	// Transform produces the renderable output: *Tag, []any, string, or
	// nil. It must never panic; structural problems degrade to partial
	// output.
	Transform func(n *Node, cfg *Config) any

	// Description documents the schema for tooling.
	Description string
}

// RenderAs returns a schema that renders a node under the given tag name.
func RenderAs(name string) *Schema {
	return &Schema{Render: name}
}

// TransformWith returns a schema wrapping a bare transform function.
func TransformWith(fn func(n *Node, cfg *Config) any) *Schema {
	return &Schema{Transform: fn}
}

func scalarOf(t any) ScalarType {
	if s, ok := t.(ScalarType); ok {
		return s
	}
	return StringType
}
