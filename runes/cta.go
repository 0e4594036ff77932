package runes

import (
	"strconv"
	"strings"

	"github.com/runemark/runemark"
)

// commandSchema renders a fence as a copyable command with its code
// stamped for theming.
var commandSchema = runemark.TransformWith(func(n *runemark.Node, cfg *runemark.Config) any {
	output := runemark.CursorOf(n.Transform(cfg))

	return runemark.CreateComponentRenderable("Command", runemark.ComponentSpec{
		Tag: "div",
		Properties: map[string]any{
			"code": output.Flatten().Tag("code"),
		},
		Children: []any{output.Next()},
	})
})

var ctaSchema = runemark.CreateSchema(runemark.ModelSpec{
	Fields: append(splitFields(),
		runemark.Group("nav", runemark.GroupOptions{
			Section: runemark.Section(0),
			Include: []runemark.NodeFilter{runemark.FilterType("list")},
		}),
		runemark.Group("header", runemark.GroupOptions{
			Section: runemark.Section(0),
			Include: []runemark.NodeFilter{
				runemark.FilterType("heading"),
				runemark.FilterType("paragraph"),
			},
		}),
		runemark.Group("actions", runemark.GroupOptions{
			Section: runemark.Section(0),
			Include: []runemark.NodeFilter{
				runemark.FilterType("list"),
				runemark.FilterType("fence"),
			},
		}),
		runemark.Group("showcase", runemark.GroupOptions{Section: runemark.Section(1)}),
	),
	Transform: func(m *runemark.Model) any {
		header := m.Group("header").Transform()
		nav := m.Group("nav").Transform()
		actions := m.Group("actions").
			UseNode("item", linkItem).
			UseNode("fence", commandSchema).
			Transform()

		side := m.Group("showcase").Transform()
		mainContent := nav.Concat(header, actions).Wrap("div", map[string]any{"data-name": "main"})
		showcaseContent := side.Wrap("div", map[string]any{"data-name": "showcase"})

		var children []any
		if split := m.Ints("split"); len(split) > 0 {
			parts := make([]string, len(split))
			for i, s := range split {
				parts[i] = strconv.Itoa(s)
			}
			children = append(children, runemark.NewTag("meta",
				map[string]any{"property": "split", "content": strings.Join(parts, " ")}))
		}
		if m.Bool("mirror") {
			children = append(children, runemark.NewTag("meta",
				map[string]any{"property": "mirror", "content": "true"}))
		}
		children = append(children, mainContent.Next())
		if side.Count() > 0 {
			children = append(children, showcaseContent.Next())
		}

		return runemark.CreateComponentRenderable("CallToAction", runemark.ComponentSpec{
			Tag:      "section",
			Property: "contentSection",
			Class:    classOf(m),
			Properties: merge(pageSectionProperties(header), map[string]any{
				"action": actions.Flatten().Tags("li", "div"),
			}),
			Refs: map[string]any{
				"showcase": showcaseContent,
			},
			Children: children,
		})
	},
})

var ctaRune = &Rune{
	Name:        "cta",
	Aliases:     []string{"call-to-action"},
	Schema:      ctaSchema,
	Description: "A call-to-action section: header copy, action links or a copyable command, and an optional showcase region after an hr.",
	Reinterprets: map[string]string{
		"list":  "before the header, becomes navigation; after it, action links",
		"fence": "becomes a copyable command",
		"hr":    "separates the main content from the showcase",
	},
	Type: "CallToAction",
}
