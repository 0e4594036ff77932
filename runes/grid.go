package runes

import (
	"github.com/runemark/runemark"
)

var gridFlow = []string{"row", "column", "dense", "row dense", "column dense"}

var gridSchema = runemark.CreateSchema(runemark.ModelSpec{
	Fields: []runemark.Field{
		runemark.Attr("columns", runemark.AttributeSpec{Type: runemark.NumberType}),
		runemark.Attr("rows", runemark.AttributeSpec{Type: runemark.NumberType}),
		runemark.Attr("flow", runemark.AttributeSpec{Type: runemark.StringType, Matches: gridFlow}),
		runemark.Attr("layout", runemark.AttributeSpec{Type: runemark.SpaceSeparatedList{}}),
		runemark.GroupList("tiles", "hr"),
	},
	Transform: func(m *runemark.Model) any {
		var tiles []*runemark.RenderableNodeCursor
		for _, t := range m.GroupList("tiles") {
			tiles = append(tiles, t.Transform())
		}

		layout := runemark.GridLayout(runemark.GridLayoutOptions{
			Items:   runemark.GridItems(m.Strings("layout"), tiles),
			Rows:    m.Int("rows"),
			Columns: m.Int("columns"),
			Flow:    m.String("flow"),
		})

		return runemark.CreateComponentRenderable("Grid", runemark.ComponentSpec{
			Tag: "section",
			Refs: map[string]any{
				"item": runemark.NewCursor(layout.Children).Tag("div"),
			},
			Children: []any{layout},
		})
	},
})

var gridRune = &Rune{
	Name:        "grid",
	Aliases:     []string{"columns"},
	Schema:      gridSchema,
	Description: "A free-form grid of tiles separated by hr, with spans taken from the layout attribute.",
	Reinterprets: map[string]string{
		"hr": "separates one tile from the next",
	},
	Type: "Grid",
}
