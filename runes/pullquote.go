package runes

import (
	"github.com/runemark/runemark"
)

var pullquoteSchema = runemark.CreateSchema(runemark.ModelSpec{
	Fields: []runemark.Field{
		runemark.Attr("align", runemark.AttributeSpec{
			Type:    runemark.StringType,
			Default: "center",
			Matches: []string{"left", "center", "right"},
		}),
		runemark.Attr("style", runemark.AttributeSpec{
			Type:    runemark.StringType,
			Default: "default",
			Matches: []string{"default", "accent", "editorial"},
		}),
	},
	Transform: func(m *runemark.Model) any {
		children := m.TransformChildren(nil)

		alignMeta := meta(m.String("align"))
		styleMeta := meta(m.String("style"))

		quote := children.Tag("blockquote").Limit(1).ToArray()
		if len(quote) == 0 {
			quote = children.Tag("p").ToArray()
		}

		return runemark.CreateComponentRenderable("PullQuote", runemark.ComponentSpec{
			Tag: "blockquote",
			Properties: map[string]any{
				"align": alignMeta,
				"style": styleMeta,
			},
			Children: append(quote, alignMeta, styleMeta),
		})
	},
})

var pullquoteRune = &Rune{
	Name:        "pullquote",
	Schema:      pullquoteSchema,
	Description: "An emphasized excerpt pulled out of the flow of the text.",
	Type:        "PullQuote",
}
