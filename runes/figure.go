package runes

import (
	"github.com/runemark/runemark"
)

var figureSchema = runemark.CreateSchema(runemark.ModelSpec{
	Fields: []runemark.Field{
		runemark.Attr("size", runemark.AttributeSpec{
			Type:    runemark.StringType,
			Matches: []string{"small", "medium", "large", "full"},
		}),
		runemark.Attr("align", runemark.AttributeSpec{
			Type:    runemark.StringType,
			Matches: []string{"left", "center", "right"},
		}),
		runemark.Attr("caption", runemark.AttributeSpec{Type: runemark.StringType}),
	},
	Transform: func(m *runemark.Model) any {
		children := m.TransformChildren(nil)

		// An explicit caption attribute wins; otherwise the first
		// paragraph of the body captions the figure.
		var caption *runemark.Tag
		if c := m.String("caption"); c != "" {
			caption = runemark.NewTag("figcaption", nil, c)
		} else if ps := children.Tag("p"); ps.Count() > 0 {
			caption = runemark.NewTag("figcaption", nil, ps.Limit(1).ToArray()...)
		}

		properties := map[string]any{}
		out := children.Tag("img").ToArray()
		if caption != nil {
			properties["caption"] = caption
			out = append(out, caption)
		}
		if size := m.String("size"); size != "" {
			sizeMeta := meta(size)
			properties["size"] = sizeMeta
			out = append(out, sizeMeta)
		}
		if align := m.String("align"); align != "" {
			alignMeta := meta(align)
			properties["align"] = alignMeta
			out = append(out, alignMeta)
		}

		return runemark.CreateComponentRenderable("Figure", runemark.ComponentSpec{
			Tag:        "figure",
			Properties: properties,
			Children:   out,
		})
	},
})

var figureRune = &Rune{
	Name:        "figure",
	Schema:      figureSchema,
	Description: "A captioned figure; the first paragraph captions the image unless a caption attribute is given.",
	Reinterprets: map[string]string{
		"paragraph": "becomes the caption",
	},
	Type: "Figure",
}
