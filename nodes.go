package runemark

import (
	"regexp"
	"strings"
)

// defaultNodes are the built-in node schemas, used when a config does not
// override a node type. They give markdown primitives their neutral HTML
// form; runes reinterpret them by overriding entries via NodeStream.UseNode
// or Model.TransformChildren.
var defaultNodes map[string]*Schema

var slugStrip = regexp.MustCompile(`[?]`)
var slugSpace = regexp.MustCompile(`\s+`)

// HeadingSlug derives a heading id from its text: drops question marks,
// joins words with dashes, lowercases.
func HeadingSlug(text string) string {
	s := slugStrip.ReplaceAllString(text, "")
	s = slugSpace.ReplaceAllString(strings.TrimSpace(s), "-")
	return strings.ToLower(s)
}

func init() {
	defaultNodes = map[string]*Schema{
		"document": {Render: "article"},

		"heading": {
			Attributes: map[string]AttributeSpec{
				"level":    {Type: NumberType, Required: true, NoRender: true},
				"property": {Type: StringType},
			},
			Transform: func(n *Node, cfg *Config) any {
				attrs := n.TransformAttributes(cfg)
				children := n.TransformChildren(cfg)

				if s, ok := attrs["id"].(string); !ok || s == "" {
					var parts []string
					for _, c := range children {
						if str, ok := c.(string); ok {
							parts = append(parts, str)
						}
					}
					attrs["id"] = HeadingSlug(strings.Join(parts, " "))
				}

				level := n.Int("level")
				if level < 1 || level > 6 {
					level = 1
				}
				name := [...]string{"h1", "h2", "h3", "h4", "h5", "h6"}[level-1]
				return NewTag(name, attrs, children...)
			},
		},

		"paragraph": {
			Render: "p",
			Attributes: map[string]AttributeSpec{
				"property": {Type: StringType},
			},
		},

		"fence": {
			Attributes: map[string]AttributeSpec{
				"content":  {Type: StringType, NoRender: true},
				"language": {Type: StringType, Default: "shell", NoRender: true},
				"process":  {Type: BooleanType, Default: false, NoRender: true},
			},
			Transform: func(n *Node, cfg *Config) any {
				lang := n.String("language")
				if lang == "" {
					lang = "shell"
				}
				return NewTag("pre", map[string]any{"data-language": lang},
					NewTag("code", map[string]any{"data-language": lang}, n.String("content")))
			},
		},

		"list": {
			Attributes: map[string]AttributeSpec{
				"ordered": {Type: BooleanType, Required: true, NoRender: true},
				"start":   {Type: NumberType},
				"marker":  {Type: StringType, NoRender: true},
			},
			Transform: func(n *Node, cfg *Config) any {
				name := "ul"
				if b, _ := n.Attributes["ordered"].(bool); b {
					name = "ol"
				}
				return NewTag(name, n.TransformAttributes(cfg), n.TransformChildren(cfg)...)
			},
		},

		"item": {
			Render: "li",
			Attributes: map[string]AttributeSpec{
				"property": {Type: StringType},
				"typeof":   {Type: StringType},
			},
		},

		"blockquote": {Render: "blockquote"},
		"hr":         {Render: "hr"},
		"table":      {Render: "table"},
		"thead":      {Render: "thead"},
		"tbody":      {Render: "tbody"},
		"tr":         {Render: "tr"},
		"th":         {Render: "th"},
		"td":         {Render: "td"},

		"image": {
			Attributes: map[string]AttributeSpec{
				"src":      {Type: StringType, Required: true},
				"alt":      {Type: StringType},
				"title":    {Type: StringType},
				"property": {Type: StringType},
			},
			Transform: func(n *Node, cfg *Config) any {
				return NewTag("img", n.TransformAttributes(cfg))
			},
		},

		"text": {
			Attributes: map[string]AttributeSpec{
				"content":  {Type: StringType, Required: true, NoRender: true},
				"property": {Type: StringType},
			},
			Transform: func(n *Node, cfg *Config) any {
				content := n.String("content")
				if prop := n.String("property"); prop != "" {
					return NewTag("span", map[string]any{"property": prop}, content)
				}
				return content
			},
		},

		"strong": {Render: "strong"},
		"em":     {Render: "em"},
		"s":      {Render: "s"},

		"link": {
			Render: "a",
			Attributes: map[string]AttributeSpec{
				"href":  {Type: StringType, Required: true},
				"title": {Type: StringType},
			},
		},

		"code": {
			Attributes: map[string]AttributeSpec{
				"content": {Type: StringType, Required: true, NoRender: true},
			},
			Transform: func(n *Node, cfg *Config) any {
				return NewTag("code", nil, n.String("content"))
			},
		},

		"hardbreak": {Render: "br"},

		// Comments and parse errors produce no output.
		"comment": {Transform: func(*Node, *Config) any { return nil }},
		"error":   {Transform: func(*Node, *Config) any { return nil }},
	}
}
