package runes

import (
	"github.com/runemark/runemark"
)

var realmSectionSchema = namedSectionSchema("RealmSection")

var realmSchema = runemark.CreateSchema(runemark.ModelSpec{
	Fields: []runemark.Field{
		runemark.Attr("headingLevel", runemark.AttributeSpec{Type: runemark.NumberType}),
		runemark.Attr("name", runemark.AttributeSpec{Type: runemark.StringType, Required: true}),
		runemark.Attr("type", runemark.AttributeSpec{Type: runemark.StringType, Default: "place"}),
		runemark.Attr("scale", runemark.AttributeSpec{Type: runemark.StringType}),
		runemark.Attr("tags", runemark.AttributeSpec{Type: runemark.StringType}),
		runemark.Attr("parent", runemark.AttributeSpec{Type: runemark.StringType}),
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
				return runemark.NewTagNode("realm-section", map[string]any{"name": text}, body...)
			})
	},
	Transform: func(m *runemark.Model) any {
		header := m.Group("header").Transform()
		itemStream := m.Group("itemgroup").Transform()

		name := runemark.NewTag("span", nil, m.String("name"))
		realmType := meta(m.String("type"))
		scale := meta(m.String("scale"))
		tags := meta(m.String("tags"))
		parent := meta(m.String("parent"))

		properties := map[string]any{
			"name":      name,
			"realmType": realmType,
			"scale":     scale,
			"tags":      tags,
			"parent":    parent,
		}
		children := []any{name, realmType, scale, tags, parent}
		refs := map[string]any{}

		// An image in the header becomes the establishing scene.
		if scene := header.Tag("img").Limit(1); scene.Count() > 0 {
			sceneDiv := scene.Wrap("div", nil)
			refs["scene"] = sceneDiv
			children = append(children, sceneDiv.Next())
		}

		sections := itemStream.Tag("div").Typeof("RealmSection")
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

		return runemark.CreateComponentRenderable("Realm", runemark.ComponentSpec{
			Tag:        "article",
			Property:   "contentSection",
			Properties: properties,
			Refs:       refs,
			Children:   children,
		})
	},
})

var realmRune = &Rune{
	Name:        "realm",
	Schema:      realmSchema,
	Description: "A place profile card for worldbuilding content, with scale and lineage metadata; a header image becomes the establishing scene.",
	Reinterprets: map[string]string{
		"heading": "opens a named section of the profile",
		"image":   "in the header, becomes the establishing scene",
	},
	Type: "Realm",
}

var realmSectionRune = &Rune{
	Name:        "realm-section",
	Schema:      realmSectionSchema,
	Description: "One named section of a realm profile.",
	Type:        "RealmSection",
}
