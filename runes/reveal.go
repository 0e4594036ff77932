package runes

import (
	"github.com/runemark/runemark"
)

var revealStepSchema = runemark.CreateSchema(runemark.ModelSpec{
	Fields: []runemark.Field{
		runemark.Attr("name", runemark.AttributeSpec{Type: runemark.StringType, Required: true}),
	},
	Transform: func(m *runemark.Model) any {
		name := runemark.NewTag("span", nil, m.String("name"))
		body := m.TransformChildren(nil).Wrap("div", nil)

		return runemark.CreateComponentRenderable("RevealStep", runemark.ComponentSpec{
			Tag: "div",
			Properties: map[string]any{
				"name": name,
			},
			Refs: map[string]any{
				"body": body.Tag("div"),
			},
			Children: []any{name, body.Next()},
		})
	},
})

var revealSchema = runemark.CreateSchema(runemark.ModelSpec{
	Fields: []runemark.Field{
		runemark.Attr("headingLevel", runemark.AttributeSpec{Type: runemark.NumberType}),
		runemark.Attr("mode", runemark.AttributeSpec{
			Type:    runemark.StringType,
			Default: "click",
			Matches: []string{"click", "scroll", "auto"},
		}),
		runemark.Group("header", runemark.GroupOptions{Include: []runemark.NodeFilter{
			runemark.FilterType("heading"),
			runemark.FilterType("paragraph"),
		}}),
		runemark.Group("stepgroup", runemark.GroupOptions{Include: []runemark.NodeFilter{
			runemark.FilterType("tag"),
		}}),
	},
	ProcessChildren: func(m *runemark.Model, nodes []*runemark.Node) []*runemark.Node {
		return headingTags(m.Int("headingLevel"), nodes,
			func(text string, _ *runemark.Node, body []*runemark.Node) *runemark.Node {
				return runemark.NewTagNode("reveal-step", map[string]any{"name": text}, body...)
			})
	},
	Transform: func(m *runemark.Model) any {
		header := m.Group("header").Transform()
		modeMeta := meta(m.String("mode"))

		steps := m.Group("stepgroup").Transform().Tag("div").Typeof("RevealStep")
		stepsContainer := steps.Wrap("div", nil)

		children := []any{modeMeta, stepsContainer.Next()}
		if header.Count() > 0 {
			children = append([]any{header.Wrap("header", nil).Next()}, children...)
		}

		return runemark.CreateComponentRenderable("Reveal", runemark.ComponentSpec{
			Tag:      "section",
			Property: "contentSection",
			Properties: merge(pageSectionProperties(header), map[string]any{
				"step": steps,
			}),
			Refs: map[string]any{
				"steps": stepsContainer,
			},
			Children: children,
		})
	},
})

var revealRune = &Rune{
	Name:        "reveal",
	Schema:      revealSchema,
	Description: "Progressive disclosure of steps, revealed on click, scroll, or a timer; headings open new steps.",
	Reinterprets: map[string]string{
		"heading": "opens a new step",
	},
	Type: "Reveal",
}

var revealStepRune = &Rune{
	Name:        "reveal-step",
	Schema:      revealStepSchema,
	Description: "One step inside a reveal sequence.",
	Type:        "RevealStep",
}
