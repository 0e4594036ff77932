package runes

import (
	"github.com/runemark/runemark"
)

var hintSchema = runemark.CreateSchema(runemark.ModelSpec{
	Fields: []runemark.Field{
		runemark.Attr("type", runemark.AttributeSpec{
			Type:       runemark.StringType,
			Default:    "note",
			Matches:    []string{"caution", "check", "note", "warning"},
			ErrorLevel: "critical",
		}),
	},
	Transform: func(m *runemark.Model) any {
		hintType := meta(m.String("type"))
		body := m.TransformChildren(nil).Wrap("div", nil)

		return runemark.CreateComponentRenderable("Hint", runemark.ComponentSpec{
			Tag:      "section",
			Property: "contentSection",
			Properties: map[string]any{
				"hintType": hintType,
			},
			Refs: map[string]any{
				"body": body.Tag("div"),
			},
			Children: []any{hintType, body.Next()},
		})
	},
})

var hintRune = &Rune{
	Name:        "hint",
	Aliases:     []string{"callout", "alert"},
	Schema:      hintSchema,
	Description: "A callout block for asides the reader should notice: notes, warnings, cautions, and confirmations.",
	Type:        "Hint",
}
