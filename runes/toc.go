package runes

import (
	"github.com/runemark/runemark"
)

// tocSchema builds a table of contents from the pre-scanned heading
// summary carried in the config variables. Depth counts below the page
// title: depth 3 lists h2 through h4.
var tocSchema = runemark.CreateSchema(runemark.ModelSpec{
	Fields: []runemark.Field{
		runemark.Attr("depth", runemark.AttributeSpec{Type: runemark.NumberType, Default: 3}),
		runemark.Attr("ordered", runemark.AttributeSpec{Type: runemark.BooleanType}),
	},
	Transform: func(m *runemark.Model) any {
		depth := m.Int("depth")
		maxLevel := depth + 1

		var items []any
		for _, h := range m.Config.Headings() {
			if h.Level < 2 || h.Level > maxLevel {
				continue
			}
			items = append(items, runemark.NewTag("li",
				map[string]any{"data-level": h.Level},
				runemark.NewTag("a", map[string]any{"href": "#" + h.ID}, h.Text),
			))
		}

		list := runemark.NewTag("ul", nil, items...)
		depthMeta := meta(depth)
		orderedMeta := meta(m.Bool("ordered"))

		return runemark.CreateComponentRenderable("TableOfContents", runemark.ComponentSpec{
			Tag: "nav",
			Properties: map[string]any{
				"depth":   depthMeta,
				"ordered": orderedMeta,
			},
			Refs: map[string]any{
				"list": list,
			},
			Children: []any{depthMeta, orderedMeta, list},
		})
	},
})

var tocRune = &Rune{
	Name:        "toc",
	Schema:      tocSchema,
	Description: "An auto-generated table of contents linking to the document's headings.",
	Type:        "TableOfContents",
}
