package runes

import (
	"strconv"

	"github.com/runemark/runemark"
)

var swatchSchema = runemark.CreateSchema(runemark.ModelSpec{
	Fields: []runemark.Field{
		runemark.Attr("color", runemark.AttributeSpec{Type: runemark.StringType, Required: true}),
		runemark.Attr("label", runemark.AttributeSpec{Type: runemark.StringType, Required: true}),
		runemark.Attr("showValue", runemark.AttributeSpec{Type: runemark.BooleanType}),
	},
	Transform: func(m *runemark.Model) any {
		color := m.String("color")

		colorMeta := meta(color)
		label := runemark.NewTag("span", nil, m.String("label"))
		showValueMeta := meta(strconv.FormatBool(m.Bool("showValue")))
		chip := runemark.NewTag("span", map[string]any{"style": "background-color: " + color})

		children := []any{colorMeta, showValueMeta, chip, label}
		value := runemark.NewTag("span", nil)
		if m.Bool("showValue") {
			value = runemark.NewTag("span", nil, color)
			children = append(children, value)
		}

		return runemark.CreateComponentRenderable("Swatch", runemark.ComponentSpec{
			Tag: "span",
			Properties: map[string]any{
				"color":     colorMeta,
				"label":     label,
				"showValue": showValueMeta,
			},
			Refs: map[string]any{
				"chip":  chip,
				"value": value,
			},
			Children: children,
		})
	},
})

func init() {
	swatchSchema.SelfClosing = true
}

var swatchRune = &Rune{
	Name:        "swatch",
	Schema:      swatchSchema,
	Description: "An inline color chip with a label and optional value readout.",
	Type:        "Swatch",
}
