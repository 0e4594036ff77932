package runes

import (
	"github.com/runemark/runemark"
)

var mediatextSchema = runemark.CreateSchema(runemark.ModelSpec{
	Fields: []runemark.Field{
		runemark.Attr("align", runemark.AttributeSpec{
			Type:    runemark.StringType,
			Default: "left",
			Matches: []string{"left", "right"},
		}),
		runemark.Attr("ratio", runemark.AttributeSpec{
			Type:    runemark.StringType,
			Default: "1:1",
			Matches: []string{"1:2", "1:1", "2:1"},
		}),
		runemark.Attr("wrap", runemark.AttributeSpec{Type: runemark.BooleanType}),
	},
	Transform: func(m *runemark.Model) any {
		children := m.TransformChildren(nil)

		alignMeta := meta(m.String("align"))
		ratioMeta := meta(m.String("ratio"))

		media := runemark.NewTag("div", nil, children.Tag("img").ToArray()...)
		body := children.Wrap("div", nil)

		properties := map[string]any{
			"align": alignMeta,
			"ratio": ratioMeta,
		}
		out := []any{alignMeta, ratioMeta}
		if m.Bool("wrap") {
			wrapMeta := meta("true")
			properties["wrap"] = wrapMeta
			out = append(out, wrapMeta)
		}
		out = append(out, media, body.Next())

		return runemark.CreateComponentRenderable("MediaText", runemark.ComponentSpec{
			Tag:        "div",
			Properties: properties,
			Refs: map[string]any{
				"media": media,
				"body":  body.Tag("div"),
			},
			Children: out,
		})
	},
})

var mediatextRune = &Rune{
	Name:        "mediatext",
	Schema:      mediatextSchema,
	Description: "A side-by-side media and text block with alignment and ratio controls.",
	Reinterprets: map[string]string{
		"image": "becomes the media region",
	},
	Type: "MediaText",
}
