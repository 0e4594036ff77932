package runes

import (
	"regexp"

	"github.com/runemark/runemark"
)

var headingName = regexp.MustCompile(`^h[1-6]$`)

// navItemSchema renders one navigation entry: text becomes a slug span
// and nested lists become child items.
var navItemSchema = runemark.CreateSchema(runemark.ModelSpec{
	Transform: func(m *runemark.Model) any {
		children := m.TransformChildren(map[string]*runemark.Schema{
			"text": runemark.TransformWith(func(n *runemark.Node, _ *runemark.Config) any {
				return runemark.NewTag("span", map[string]any{"property": "slug"}, n.String("content"))
			}),
		})

		slug := children.Tag("span")
		nested := children.Tag("ul")

		properties := map[string]any{"slug": slug}
		out := slug.ToArray()
		if nested.Count() > 0 {
			properties["children"] = nested.Flatten().Tag("li")
			out = append(out, nested.ToArray()...)
		}

		return runemark.CreateComponentRenderable("NavItem", runemark.ComponentSpec{
			Tag:        "li",
			Properties: properties,
			Children:   out,
		})
	},
})

var navSchema = runemark.CreateSchema(runemark.ModelSpec{
	Fields: []runemark.Field{
		runemark.Attr("ordered", runemark.AttributeSpec{Type: runemark.BooleanType}),
	},
	ProcessChildren: func(_ *runemark.Model, nodes []*runemark.Node) []*runemark.Node {
		return runemark.HeadingsToList(runemark.HeadingsToListOptions{})(nodes)
	},
	Transform: func(m *runemark.Model) any {
		children := m.TransformChildren(map[string]*runemark.Schema{
			"item": navItemSchema,
			"list": runemark.TransformWith(func(n *runemark.Node, cfg *runemark.Config) any {
				return runemark.NewTag("ul", nil, n.TransformChildren(cfg)...)
			}),
		})

		class := ""
		if m.Bool("ordered") {
			class = "ordered"
		}

		if children.Headings().Count() > 0 {
			groups := buildNavGroups(children.ToArray())
			var items []any
			for _, g := range groups {
				group, _ := runemark.IsTag(g)
				for _, c := range group.Children {
					if ul, ok := runemark.IsTag(c); ok && ul.Name == "ul" {
						for _, li := range ul.Children {
							if item, ok := runemark.IsTag(li); ok && item.Name == "li" {
								items = append(items, item)
							}
						}
					}
				}
			}

			return runemark.CreateComponentRenderable("Nav", runemark.ComponentSpec{
				Tag:   "nav",
				Class: class,
				Properties: map[string]any{
					"group": groups,
					"item":  items,
				},
				Children: groups,
			})
		}

		return runemark.CreateComponentRenderable("Nav", runemark.ComponentSpec{
			Tag:   "nav",
			Class: class,
			Properties: map[string]any{
				"group": []any{},
				"item":  children.Flatten().Tag("li"),
			},
			Children: children.ToArray(),
		})
	},
})

// buildNavGroups folds a heading-then-list sequence into NavGroup
// components, one per heading.
func buildNavGroups(nodes []any) []any {
	var groups []any
	var currentHeading *runemark.Tag
	var currentLists []any

	flush := func() {
		if currentHeading == nil {
			return
		}
		var items []any
		for _, ulNode := range currentLists {
			if ul, ok := runemark.IsTag(ulNode); ok {
				for _, li := range ul.Children {
					if item, ok := runemark.IsTag(li); ok && item.Name == "li" {
						items = append(items, item)
					}
				}
			}
		}
		groups = append(groups, runemark.CreateComponentRenderable("NavGroup", runemark.ComponentSpec{
			Tag: "section",
			Properties: map[string]any{
				"title": currentHeading,
				"item":  items,
			},
			Children: append([]any{currentHeading}, currentLists...),
		}))
	}

	for _, node := range nodes {
		t, ok := runemark.IsTag(node)
		if !ok {
			continue
		}
		switch {
		case headingName.MatchString(t.Name):
			flush()
			currentHeading = t
			currentLists = nil
		case t.Name == "ul":
			currentLists = append(currentLists, t)
		}
	}
	flush()

	return groups
}

var navRune = &Rune{
	Name:        "nav",
	Schema:      navSchema,
	Description: "Site navigation from nested lists, with headings opening titled groups.",
	Reinterprets: map[string]string{
		"heading": "opens a titled group",
		"list":    "nested lists become the navigation tree",
	},
	Type: "Nav",
}
