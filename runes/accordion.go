package runes

import (
	"github.com/runemark/runemark"
)

var accordionItemSchema = runemark.CreateSchema(runemark.ModelSpec{
	Fields: []runemark.Field{
		runemark.Attr("name", runemark.AttributeSpec{Type: runemark.StringType, Required: true}),
	},
	Transform: func(m *runemark.Model) any {
		name := runemark.NewTag("summary", nil, m.String("name"))
		body := m.TransformChildren(nil).Wrap("div", nil)

		return runemark.CreateComponentRenderable("AccordionItem", runemark.ComponentSpec{
			Tag: "details",
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

var accordionSchema = runemark.CreateSchema(runemark.ModelSpec{
	Fields: []runemark.Field{
		runemark.Attr("headingLevel", runemark.AttributeSpec{Type: runemark.NumberType}),
		runemark.Attr("multiple", runemark.AttributeSpec{Type: runemark.BooleanType, Default: true}),
		runemark.Group("header", runemark.GroupOptions{Include: []runemark.NodeFilter{
			runemark.FilterType("heading"),
			runemark.FilterType("paragraph"),
		}}),
		runemark.Group("itemgroup", runemark.GroupOptions{Include: []runemark.NodeFilter{
			runemark.FilterType("tag"),
		}}),
	},
	ProcessChildren: accordionHeadingsToItems,
	Transform: func(m *runemark.Model) any {
		header := m.Group("header").Transform()
		items := m.Group("itemgroup").Transform().Tag("details").Typeof("AccordionItem")
		itemsContainer := items.Wrap("div", nil)

		children := []any{itemsContainer.Next()}
		if header.Count() > 0 {
			children = []any{header.Wrap("header", nil).Next(), children[0]}
		}

		return runemark.CreateComponentRenderable("Accordion", runemark.ComponentSpec{
			Tag:      "section",
			Property: "contentSection",
			Properties: merge(pageSectionProperties(header), map[string]any{
				"item": items,
			}),
			Refs: map[string]any{
				"items": itemsContainer,
			},
			Children: children,
		})
	},
})

// accordionHeadingsToItems rewrites a run of headings and their following
// content into accordion-item tag nodes, so authors can write plain
// markdown sections instead of explicit item tags. The heading text
// becomes the item name.
func accordionHeadingsToItems(m *runemark.Model, nodes []*runemark.Node) []*runemark.Node {
	return headingTags(m.Int("headingLevel"), nodes,
		func(text string, _ *runemark.Node, body []*runemark.Node) *runemark.Node {
			return runemark.NewTagNode("accordion-item", map[string]any{"name": text}, body...)
		})
}

var accordionRune = &Rune{
	Name:        "accordion",
	Schema:      accordionSchema,
	Description: "Collapsible sections with summary headings; headings in the body become items automatically.",
	Reinterprets: map[string]string{
		"heading":   "becomes the name of a collapsible item",
		"paragraph": "before the first heading, becomes header copy",
	},
	Type: "Accordion",
}

var accordionItemRune = &Rune{
	Name:        "accordion-item",
	Schema:      accordionItemSchema,
	Description: "One collapsible entry inside an accordion.",
	Type:        "AccordionItem",
}
