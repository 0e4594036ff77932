package runes

import (
	"github.com/runemark/runemark"
)

// definitionSchema turns the leading emphasized text or heading of a
// list item into a term and the following paragraphs into its
// description.
var definitionSchema = runemark.CreateSchema(runemark.ModelSpec{
	Fields: []runemark.Field{
		runemark.Group("term", runemark.GroupOptions{Include: []runemark.NodeFilter{
			{Node: "paragraph", Descendant: "image"},
			{Node: "paragraph", Descendant: "strong"},
			runemark.FilterType("heading"),
		}}),
		runemark.Group("description", runemark.GroupOptions{Include: []runemark.NodeFilter{
			runemark.FilterType("paragraph"),
		}}),
	},
	Transform: func(m *runemark.Model) any {
		dt := m.Group("term").
			UseNode("paragraph", runemark.TransformWith(func(n *runemark.Node, cfg *runemark.Config) any {
				for _, d := range n.Walk() {
					if d.Type == "image" {
						return d.Transform(cfg)
					}
				}
				for _, d := range n.Walk() {
					if d.Type == "strong" {
						return runemark.NewTag("span", nil, d.TransformChildren(cfg)...)
					}
				}
				return n.Transform(cfg)
			})).
			UseNode("heading", runemark.TransformWith(func(n *runemark.Node, cfg *runemark.Config) any {
				var img *runemark.Node
				var texts []*runemark.Node
				for _, d := range n.Walk() {
					switch d.Type {
					case "image":
						if img == nil {
							img = d
						}
					case "text":
						texts = append(texts, d)
					}
				}
				span := runemark.NewTag("span", nil, runemark.Transform(texts, cfg)...)
				if img != nil {
					return []any{img.Transform(cfg), span}
				}
				return span
			})).
			Transform().
			Wrap("dt", nil)

		dd := m.Group("description").
			UseNode("paragraph", runemark.RenderAs("dd")).
			Transform()

		return runemark.CreateComponentRenderable("FeatureDefinition", runemark.ComponentSpec{
			Tag: "div",
			Properties: map[string]any{
				"image":       dt.Flatten().Tag("svg"),
				"name":        dt.Flatten().Tag("span"),
				"description": dd.Tag("dd"),
			},
			Children: dt.Concat(dd).ToArray(),
		})
	},
})

var featureSchema = runemark.CreateSchema(runemark.ModelSpec{
	Fields: []runemark.Field{
		runemark.Attr("split", runemark.AttributeSpec{Type: runemark.BooleanType}),
		runemark.Attr("mirror", runemark.AttributeSpec{Type: runemark.BooleanType}),
		runemark.Group("header", runemark.GroupOptions{
			Section: runemark.Section(0),
			Include: []runemark.NodeFilter{
				runemark.FilterType("heading"),
				runemark.FilterType("paragraph"),
			},
		}),
		runemark.Group("definitions", runemark.GroupOptions{
			Section: runemark.Section(0),
			Include: []runemark.NodeFilter{runemark.FilterType("list")},
		}),
		runemark.Group("showcase", runemark.GroupOptions{Section: runemark.Section(1)}),
	},
	Transform: func(m *runemark.Model) any {
		split := m.Bool("split")

		header := m.Group("header").Transform()
		definitions := m.Group("definitions").
			UseNode("item", runemark.TransformWith(func(n *runemark.Node, cfg *runemark.Config) any {
				def := runemark.NewTagNode("definition", nil, n.Children...)
				return runemark.TransformNode(def, cfg)
			})).
			UseNode("list", runemark.TransformWith(func(n *runemark.Node, cfg *runemark.Config) any {
				attrs := map[string]any{}
				if !split {
					attrs["data-layout"] = "grid"
					attrs["data-columns"] = len(n.Children)
				}
				return runemark.NewTag("dl", attrs, n.TransformChildren(cfg)...)
			})).
			Transform()

		side := m.Group("showcase").Transform()

		main := runemark.NewCursor(nil)
		if header.Count() > 0 {
			main = main.Concat(header.Wrap("header", nil).Next())
		}
		mainContent := main.Concat(definitions).Wrap("div", nil)
		showcaseContent := side.Wrap("div", nil)

		var splitMeta, mirrorMeta *runemark.Tag
		var children []any
		if split {
			splitMeta = meta("split")
			children = append(children, splitMeta)
		}
		if m.Bool("mirror") {
			mirrorMeta = meta("mirror")
			children = append(children, mirrorMeta)
		}
		children = append(children, mainContent.Next())
		if side.Count() > 0 {
			children = append(children, showcaseContent.Next())
		}

		properties := merge(pageSectionProperties(header), map[string]any{
			"featureItem": definitions.Flatten().Tag("div"),
		})
		if splitMeta != nil {
			properties["split"] = splitMeta
		}
		if mirrorMeta != nil {
			properties["mirror"] = mirrorMeta
		}

		return runemark.CreateComponentRenderable("Feature", runemark.ComponentSpec{
			Tag:        "section",
			Property:   "contentSection",
			Properties: properties,
			Refs: map[string]any{
				"body":     mainContent,
				"showcase": showcaseContent,
			},
			Children: children,
		})
	},
})

var featureRune = &Rune{
	Name:        "feature",
	Schema:      featureSchema,
	Description: "A feature grid built from a list: each item's bold text, image, or heading becomes a term with the following paragraphs as its description.",
	Reinterprets: map[string]string{
		"list": "each item becomes a feature definition",
		"hr":   "separates the definitions from the showcase region",
	},
	Type: "Feature",
}

var definitionRune = &Rune{
	Name:        "definition",
	Schema:      definitionSchema,
	Description: "One term and description pair inside a feature section.",
	Type:        "FeatureDefinition",
}
