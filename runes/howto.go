package runes

import (
	"github.com/runemark/runemark"
)

var howtoSchema = runemark.CreateSchema(runemark.ModelSpec{
	Fields: []runemark.Field{
		runemark.Attr("estimatedTime", runemark.AttributeSpec{Type: runemark.StringType}),
		runemark.Attr("difficulty", runemark.AttributeSpec{
			Type:    runemark.StringType,
			Matches: []string{"easy", "medium", "hard"},
		}),
		runemark.Attr("headingLevel", runemark.AttributeSpec{Type: runemark.NumberType}),
		runemark.Group("header", runemark.GroupOptions{Include: []runemark.NodeFilter{
			runemark.FilterType("heading"),
			runemark.FilterType("paragraph"),
			runemark.FilterType("image"),
		}}),
		runemark.Group("body", runemark.GroupOptions{Include: []runemark.NodeFilter{
			runemark.FilterType("list"),
			runemark.FilterType("tag"),
		}}),
	},
	ProcessChildren: func(m *runemark.Model, nodes []*runemark.Node) []*runemark.Node {
		if level := m.Int("headingLevel"); level > 0 {
			return runemark.HeadingsToList(runemark.HeadingsToListOptions{Level: level})(nodes)
		}
		return nodes
	},
	Transform: func(m *runemark.Model) any {
		header := m.Group("header").Transform()
		body := m.Group("body").Transform()

		estimatedTimeMeta := meta(m.String("estimatedTime"))
		difficultyMeta := meta(m.String("difficulty"))

		// Unordered lists hold the tools and materials, ordered lists the
		// steps.
		var tools, steps []any
		for _, node := range body.ToArray() {
			if t, ok := runemark.IsTag(node); ok {
				switch t.Name {
				case "ul":
					tools = append(tools, t.Children...)
				case "ol":
					steps = append(steps, t.Children...)
				}
			}
		}

		toolsList := runemark.NewTag("ul", nil, tools...)
		stepsList := runemark.NewTag("ol", nil, steps...)

		children := []any{estimatedTimeMeta, difficultyMeta, header.Wrap("header", nil).Next()}
		if len(tools) > 0 {
			children = append(children, toolsList)
		}
		children = append(children, stepsList)

		return runemark.CreateComponentRenderable("HowTo", runemark.ComponentSpec{
			Tag:      "article",
			Property: "contentSection",
			Properties: merge(pageSectionProperties(header), map[string]any{
				"estimatedTime": estimatedTimeMeta,
				"difficulty":    difficultyMeta,
			}),
			Refs: map[string]any{
				"tools": toolsList,
				"steps": stepsList,
			},
			Children: children,
		})
	},
})

var howtoRune = &Rune{
	Name:        "howto",
	Schema:      howtoSchema,
	Description: "A how-to guide: unordered lists become the tools and materials, ordered lists the steps.",
	Reinterprets: map[string]string{
		"list": "unordered becomes tools and materials, ordered becomes steps",
	},
	SEOType: "HowTo",
	Type:    "HowTo",
}
