package runes

import (
	"strconv"

	"github.com/runemark/runemark"
)

var bentoCellSchema = runemark.CreateSchema(runemark.ModelSpec{
	Fields: []runemark.Field{
		runemark.Attr("name", runemark.AttributeSpec{Type: runemark.StringType}),
		runemark.Attr("size", runemark.AttributeSpec{Type: runemark.StringType, Default: "small"}),
	},
	Transform: func(m *runemark.Model) any {
		name := runemark.NewTag("span", nil, m.String("name"))
		size := meta(m.String("size"))
		body := m.TransformChildren(nil).Wrap("div", nil)

		return runemark.CreateComponentRenderable("BentoCell", runemark.ComponentSpec{
			Tag: "div",
			Properties: map[string]any{
				"name": name,
				"size": size,
			},
			Refs: map[string]any{
				"body": body.Tag("div"),
			},
			Children: []any{name, size, body.Next()},
		})
	},
})

var bentoSchema = runemark.CreateSchema(runemark.ModelSpec{
	Fields: []runemark.Field{
		runemark.Attr("headingLevel", runemark.AttributeSpec{Type: runemark.NumberType, Default: 2}),
		runemark.Attr("gap", runemark.AttributeSpec{Type: runemark.StringType, Default: "1rem"}),
		runemark.Attr("columns", runemark.AttributeSpec{Type: runemark.NumberType, Default: 4}),
		runemark.Group("cellgroup", runemark.GroupOptions{Include: []runemark.NodeFilter{
			runemark.FilterType("tag"),
		}}),
	},
	ProcessChildren: bentoHeadingsToCells,
	Transform: func(m *runemark.Model) any {
		gapMeta := meta(m.String("gap"))
		columnsMeta := meta(strconv.Itoa(m.Int("columns")))

		cells := m.Group("cellgroup").Transform().Tag("div").Typeof("BentoCell")
		grid := cells.Wrap("div", nil)

		return runemark.CreateComponentRenderable("Bento", runemark.ComponentSpec{
			Tag:      "section",
			Property: "contentSection",
			Properties: map[string]any{
				"cell": cells,
			},
			Refs: map[string]any{
				"grid": grid,
			},
			Children: []any{gapMeta, columnsMeta, grid.Next()},
		})
	},
})

// bentoHeadingsToCells turns each heading at or below the base level
// into a bento-cell tag. The distance from the base level picks the cell
// size: base is large, one deeper medium, anything deeper small.
func bentoHeadingsToCells(m *runemark.Model, nodes []*runemark.Node) []*runemark.Node {
	baseLevel := m.Int("headingLevel")

	var cells []*runemark.Node
	var currentHeading *runemark.Node
	var currentChildren []*runemark.Node

	flush := func() {
		if currentHeading == nil {
			return
		}
		level := currentHeading.Int("level")
		if level == 0 {
			level = baseLevel
		}
		size := "small"
		switch level - baseLevel {
		case 0:
			size = "large"
		case 1:
			size = "medium"
		}
		cells = append(cells, runemark.NewTagNode("bento-cell",
			map[string]any{"name": headingText(currentHeading), "size": size},
			currentChildren...))
	}

	for _, node := range nodes {
		if node.Type == "heading" && node.Int("level") >= baseLevel {
			flush()
			currentHeading = node
			currentChildren = nil
		} else {
			currentChildren = append(currentChildren, node)
		}
	}
	flush()

	return cells
}

var bentoRune = &Rune{
	Name:        "bento",
	Schema:      bentoSchema,
	Description: "A bento grid; heading depth relative to headingLevel picks each cell's size.",
	Reinterprets: map[string]string{
		"heading": "opens a cell, its depth choosing the cell size",
	},
	Type: "Bento",
}

var bentoCellRune = &Rune{
	Name:        "bento-cell",
	Schema:      bentoCellSchema,
	Description: "One cell in a bento grid.",
	Type:        "BentoCell",
}
