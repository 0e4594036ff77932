package runes

import (
	"github.com/runemark/runemark"
)

var factionSectionSchema = namedSectionSchema("FactionSection")

var factionSchema = runemark.CreateSchema(runemark.ModelSpec{
	Fields: []runemark.Field{
		runemark.Attr("headingLevel", runemark.AttributeSpec{Type: runemark.NumberType}),
		runemark.Attr("name", runemark.AttributeSpec{Type: runemark.StringType, Required: true}),
		runemark.Attr("type", runemark.AttributeSpec{Type: runemark.StringType}),
		runemark.Attr("alignment", runemark.AttributeSpec{Type: runemark.StringType}),
		runemark.Attr("size", runemark.AttributeSpec{Type: runemark.StringType}),
		runemark.Attr("tags", runemark.AttributeSpec{Type: runemark.StringType}),
		runemark.Group("header", runemark.GroupOptions{Include: []runemark.NodeFilter{
			runemark.FilterType("heading"),
			runemark.FilterType("paragraph"),
			runemark.FilterType("image"),
		}}),
		runemark.Group("itemgroup", runemark.GroupOptions{Include: []runemark.NodeFilter{
			runemark.FilterType("tag"),
		}}),
	},
	ProcessChildren: func(m *runemark.Model, nodes []*runemark.Node) []*runemark.Node {
		return headingTags(m.Int("headingLevel"), nodes,
			func(text string, _ *runemark.Node, body []*runemark.Node) *runemark.Node {
				return runemark.NewTagNode("faction-section", map[string]any{"name": text}, body...)
			})
	},
	Transform: func(m *runemark.Model) any {
		itemStream := m.Group("itemgroup").Transform()

		name := runemark.NewTag("span", nil, m.String("name"))
		factionType := meta(m.String("type"))
		alignment := meta(m.String("alignment"))
		size := meta(m.String("size"))
		tags := meta(m.String("tags"))

		properties := map[string]any{
			"name":        name,
			"factionType": factionType,
			"alignment":   alignment,
			"size":        size,
			"tags":        tags,
		}
		children := []any{name, factionType, alignment, size, tags}

		sections := itemStream.Tag("div").Typeof("FactionSection")
		refs := map[string]any{}
		if sections.Count() > 0 {
			container := sections.Wrap("div", nil)
			properties["section"] = sections
			refs["sections"] = container
			children = append(children, container.Next())
		} else {
			body := itemStream.Wrap("div", nil)
			refs["body"] = body
			children = append(children, body.Next())
		}

		return runemark.CreateComponentRenderable("Faction", runemark.ComponentSpec{
			Tag:        "article",
			Property:   "contentSection",
			Properties: properties,
			Refs:       refs,
			Children:   children,
		})
	},
})

var factionRune = &Rune{
	Name:        "faction",
	Schema:      factionSchema,
	Description: "A faction profile card for worldbuilding content, with alignment, size, and tag metadata; headings become named sections.",
	Reinterprets: map[string]string{
		"heading": "opens a named section of the profile",
	},
	Type: "Faction",
}

var factionSectionRune = &Rune{
	Name:        "faction-section",
	Schema:      factionSectionSchema,
	Description: "One named section of a faction profile.",
	Type:        "FactionSection",
}
