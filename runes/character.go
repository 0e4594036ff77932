package runes

import (
	"github.com/runemark/runemark"
)

var characterSectionSchema = namedSectionSchema("CharacterSection")

var characterSchema = runemark.CreateSchema(runemark.ModelSpec{
	Fields: []runemark.Field{
		runemark.Attr("headingLevel", runemark.AttributeSpec{Type: runemark.NumberType}),
		runemark.Attr("name", runemark.AttributeSpec{Type: runemark.StringType, Required: true}),
		runemark.Attr("role", runemark.AttributeSpec{
			Type:    runemark.StringType,
			Default: "supporting",
			Matches: []string{"protagonist", "antagonist", "supporting", "minor"},
		}),
		runemark.Attr("status", runemark.AttributeSpec{
			Type:    runemark.StringType,
			Default: "alive",
			Matches: []string{"alive", "dead", "unknown", "missing"},
		}),
		runemark.Attr("aliases", runemark.AttributeSpec{Type: runemark.StringType}),
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
				return runemark.NewTagNode("character-section", map[string]any{"name": text}, body...)
			})
	},
	Transform: func(m *runemark.Model) any {
		header := m.Group("header").Transform()
		itemStream := m.Group("itemgroup").Transform()

		name := runemark.NewTag("span", nil, m.String("name"))
		role := meta(m.String("role"))
		status := meta(m.String("status"))
		aliases := meta(m.String("aliases"))
		tags := meta(m.String("tags"))

		properties := map[string]any{
			"name":    name,
			"role":    role,
			"status":  status,
			"aliases": aliases,
			"tags":    tags,
		}
		children := []any{name, role, status, aliases, tags}
		refs := map[string]any{}

		// An image in the header becomes the portrait.
		if portrait := header.Tag("img").Limit(1); portrait.Count() > 0 {
			portraitDiv := portrait.Wrap("div", nil)
			refs["portrait"] = portraitDiv
			children = append(children, portraitDiv.Next())
		}

		sections := itemStream.Tag("div").Typeof("CharacterSection")
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

		return runemark.CreateComponentRenderable("Character", runemark.ComponentSpec{
			Tag:        "article",
			Property:   "contentSection",
			Properties: properties,
			Refs:       refs,
			Children:   children,
		})
	},
})

var characterRune = &Rune{
	Name:        "character",
	Schema:      characterSchema,
	Description: "A character profile card with role, status, and alias metadata; a header image becomes the portrait and headings become named sections.",
	Reinterprets: map[string]string{
		"heading": "opens a named section of the profile",
		"image":   "in the header, becomes the portrait",
	},
	Type: "Character",
}

var characterSectionRune = &Rune{
	Name:        "character-section",
	Schema:      characterSectionSchema,
	Description: "One named section of a character profile.",
	Type:        "CharacterSection",
}
