package runes

import (
	"github.com/runemark/runemark"
)

var heroSchema = runemark.CreateSchema(runemark.ModelSpec{
	Fields: []runemark.Field{
		runemark.Attr("background", runemark.AttributeSpec{Type: runemark.StringType}),
		runemark.Attr("backgroundImage", runemark.AttributeSpec{Type: runemark.StringType}),
		runemark.Attr("align", runemark.AttributeSpec{
			Type:    runemark.StringType,
			Default: "center",
			Matches: []string{"left", "center", "right"},
		}),
		runemark.Group("header", runemark.GroupOptions{Include: []runemark.NodeFilter{
			runemark.FilterType("heading"),
			runemark.FilterType("paragraph"),
		}}),
		runemark.Group("actions", runemark.GroupOptions{Include: []runemark.NodeFilter{
			runemark.FilterType("list"),
			runemark.FilterType("fence"),
		}}),
	},
	Transform: func(m *runemark.Model) any {
		header := m.Group("header").Transform()
		actions := m.Group("actions").
			UseNode("item", linkItem).
			UseNode("fence", commandSchema).
			Transform()

		background := meta(m.String("background"))
		backgroundImage := meta(m.String("backgroundImage"))
		align := meta(m.String("align"))

		actionsDiv := actions.Wrap("div", nil)

		return runemark.CreateComponentRenderable("Hero", runemark.ComponentSpec{
			Tag:      "section",
			Property: "contentSection",
			Properties: merge(pageSectionProperties(header), map[string]any{
				"background":      background,
				"backgroundImage": backgroundImage,
				"align":           align,
				"action":          actions.Flatten().Tags("li", "div"),
			}),
			Refs: map[string]any{
				"actions": actionsDiv,
				"body":    header.Wrap("div", nil),
			},
			Children: []any{
				background,
				backgroundImage,
				align,
				header.Wrap("header", nil).Next(),
				actionsDiv.Next(),
			},
		})
	},
})

var heroRune = &Rune{
	Name:        "hero",
	Schema:      heroSchema,
	Description: "A full-width opening section with background styling, header copy, and action links or a command.",
	Reinterprets: map[string]string{
		"list":  "becomes the action links",
		"fence": "becomes a copyable command",
	},
	Type: "Hero",
}
