package runes

import (
	"github.com/runemark/runemark"
)

var detailsSchema = runemark.CreateSchema(runemark.ModelSpec{
	Fields: []runemark.Field{
		runemark.Attr("summary", runemark.AttributeSpec{Type: runemark.StringType}),
		runemark.Attr("open", runemark.AttributeSpec{Type: runemark.BooleanType}),
	},
	Transform: func(m *runemark.Model) any {
		children := m.TransformChildren(nil)

		summaryText := m.String("summary")
		if summaryText == "" {
			summaryText = "Details"
		}

		summary := runemark.NewTag("summary", nil, summaryText)
		body := children.Wrap("div", nil)

		result := runemark.CreateComponentRenderable("Details", runemark.ComponentSpec{
			Tag: "details",
			Refs: map[string]any{
				"body": body.Tag("div"),
			},
			Children: []any{summary, body.Next()},
		})
		if m.Bool("open") {
			result.Attributes["open"] = true
		}
		return result
	},
})

var detailsRune = &Rune{
	Name:        "details",
	Schema:      detailsSchema,
	Description: "A disclosure block with a summary line, optionally open by default.",
	Type:        "Details",
}
