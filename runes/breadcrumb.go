package runes

import (
	"strings"

	"github.com/runemark/runemark"
)

var breadcrumbSchema = runemark.CreateSchema(runemark.ModelSpec{
	Fields: []runemark.Field{
		runemark.Attr("separator", runemark.AttributeSpec{Type: runemark.StringType, Default: "/"}),
	},
	Transform: func(m *runemark.Model) any {
		separatorMeta := meta(m.String("separator"))
		children := m.TransformChildren(nil)

		// Each list item with a link becomes a crumb; an item without one
		// is the current page.
		var items []any
		for _, node := range children.ToArray() {
			list, ok := runemark.IsTag(node)
			if !ok || (list.Name != "ul" && list.Name != "ol") {
				continue
			}
			for _, liNode := range list.Children {
				li, ok := runemark.IsTag(liNode)
				if !ok || li.Name != "li" {
					continue
				}

				var link *runemark.Tag
				for _, c := range li.Children {
					if a, ok := runemark.IsTag(c); ok && a.Name == "a" {
						link = a
						break
					}
				}

				if link != nil {
					name := runemark.NewTag("span", map[string]any{"hidden": true}, link.Children...)
					url := runemark.NewTag("a", map[string]any{"href": link.Attributes["href"]}, link.Children...)
					items = append(items, runemark.CreateComponentRenderable("BreadcrumbItem", runemark.ComponentSpec{
						Tag: "li",
						Properties: map[string]any{
							"name": name,
							"url":  url,
						},
						Children: []any{name, url},
					}))
					continue
				}

				var text strings.Builder
				for _, c := range li.Children {
					if s, ok := c.(string); ok {
						text.WriteString(s)
					}
				}
				nameChildren := li.Children
				if t := strings.TrimSpace(text.String()); t != "" {
					nameChildren = []any{t}
				}
				name := runemark.NewTag("span", nil, nameChildren...)
				items = append(items, runemark.CreateComponentRenderable("BreadcrumbItem", runemark.ComponentSpec{
					Tag: "li",
					Properties: map[string]any{
						"name": name,
					},
					Children: []any{name},
				}))
			}
		}

		itemsList := runemark.NewTag("ol", nil, items...)

		return runemark.CreateComponentRenderable("Breadcrumb", runemark.ComponentSpec{
			Tag: "nav",
			Properties: map[string]any{
				"separator": separatorMeta,
			},
			Refs: map[string]any{
				"items": itemsList,
			},
			Children: []any{separatorMeta, itemsList},
		})
	},
})

var breadcrumbRune = &Rune{
	Name:        "breadcrumb",
	Schema:      breadcrumbSchema,
	Description: "A breadcrumb trail built from a list of links; the unlinked last item is the current page.",
	Reinterprets: map[string]string{
		"list": "each item becomes a crumb",
	},
	SEOType: "BreadcrumbList",
	Type:    "Breadcrumb",
}
