package runes

import (
	"strconv"

	"github.com/runemark/runemark"
)

var textblockSchema = runemark.CreateSchema(runemark.ModelSpec{
	Fields: []runemark.Field{
		runemark.Attr("dropcap", runemark.AttributeSpec{Type: runemark.BooleanType}),
		runemark.Attr("columns", runemark.AttributeSpec{Type: runemark.NumberType, Default: 1}),
		runemark.Attr("lead", runemark.AttributeSpec{Type: runemark.BooleanType}),
		runemark.Attr("align", runemark.AttributeSpec{
			Type:    runemark.StringType,
			Default: "left",
			Matches: []string{"left", "center", "right", "justify"},
		}),
	},
	Transform: func(m *runemark.Model) any {
		children := m.TransformChildren(nil)
		body := children.Wrap("div", nil)

		properties := map[string]any{}
		var tagChildren []any
		if m.Bool("dropcap") {
			dropcapMeta := meta("true")
			properties["dropcap"] = dropcapMeta
			tagChildren = append(tagChildren, dropcapMeta)
		}
		if columns := m.Int("columns"); columns > 1 {
			columnsMeta := meta(strconv.Itoa(columns))
			properties["columns"] = columnsMeta
			tagChildren = append(tagChildren, columnsMeta)
		}
		if m.Bool("lead") {
			leadMeta := meta("true")
			properties["lead"] = leadMeta
			tagChildren = append(tagChildren, leadMeta)
		}
		if align := m.String("align"); align != "left" {
			alignMeta := meta(align)
			properties["align"] = alignMeta
			tagChildren = append(tagChildren, alignMeta)
		}
		tagChildren = append(tagChildren, body.Next())

		return runemark.CreateComponentRenderable("TextBlock", runemark.ComponentSpec{
			Tag:        "div",
			Properties: properties,
			Refs: map[string]any{
				"body": body.Tag("div"),
			},
			Children: tagChildren,
		})
	},
})

var textblockRune = &Rune{
	Name:        "textblock",
	Schema:      textblockSchema,
	Description: "Prose styling controls: drop caps, multi-column flow, lead paragraphs, and alignment.",
	Type:        "TextBlock",
}
