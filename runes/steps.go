package runes

import (
	"github.com/runemark/runemark"
)

var stepsSchema = runemark.CreateSchema(runemark.ModelSpec{
	Fields: append(splitFields(),
		runemark.Attr("headingLevel", runemark.AttributeSpec{Type: runemark.NumberType}),
	),
	ProcessChildren: func(m *runemark.Model, nodes []*runemark.Node) []*runemark.Node {
		return runemark.HeadingsToList(runemark.HeadingsToListOptions{Level: m.Int("headingLevel")})(nodes)
	},
	Transform: func(m *runemark.Model) any {
		children := m.TransformChildren(map[string]*runemark.Schema{
			"list": runemark.RenderAs("ol"),
			"item": runemark.TransformWith(func(n *runemark.Node, cfg *runemark.Config) any {
				step := runemark.NewTagNode("step",
					map[string]any{"split": n.Attributes["split"]}, n.Children...)
				return runemark.TransformNode(step, cfg)
			}),
		})

		return runemark.CreateComponentRenderable("Steps", runemark.ComponentSpec{
			Tag:      "section",
			Property: "contentSection",
			Properties: merge(pageSectionProperties(children), map[string]any{
				"step": children.Flatten().Tag("li").Typeof("Step"),
			}),
			Children: children.ToArray(),
		})
	},
})

var stepSchema = runemark.CreateSchema(runemark.ModelSpec{
	Fields: append(splitFields(),
		runemark.Group("main", runemark.GroupOptions{Section: runemark.Section(0)}),
		runemark.Group("side", runemark.GroupOptions{Section: runemark.Section(1)}),
	),
	Transform: func(m *runemark.Model) any {
		main := m.Group("main").Transform()
		side := m.Group("side").Transform()

		layout := runemark.SplitLayout(runemark.SplitLayoutOptions{
			Split: m.Ints("split"),
			Main:  main.ToArray(),
			Side:  side.ToArray(),
		})

		return runemark.CreateComponentRenderable("Step", runemark.ComponentSpec{
			Tag: "li",
			Properties: map[string]any{
				"name": nameOf(main),
			},
			Children: []any{layout.Next()},
		})
	},
})

var stepsRune = &Rune{
	Name:        "steps",
	Schema:      stepsSchema,
	Description: "An ordered sequence of steps; headings in the body open new steps and an hr inside a step moves content to its side region.",
	Reinterprets: map[string]string{
		"heading": "opens a new step",
		"hr":      "inside a step, separates main content from the side region",
	},
	SEOType: "HowTo",
	Type:    "Steps",
}

var stepRune = &Rune{
	Name:        "step",
	Schema:      stepSchema,
	Description: "One step in a steps sequence.",
	Type:        "Step",
}
