package runes

import (
	"github.com/runemark/runemark"
)

var tabSchema = runemark.CreateSchema(runemark.ModelSpec{
	Fields: []runemark.Field{
		runemark.Attr("name", runemark.AttributeSpec{Type: runemark.StringType, Required: true}),
		runemark.Attr("image", runemark.AttributeSpec{Type: runemark.StringType}),
	},
	Transform: func(m *runemark.Model) any {
		tab := runemark.NewCursor(nil)
		if src := m.String("image"); src != "" {
			img := runemark.NewNode("image", map[string]any{"src": src})
			tab = tab.Concat(runemark.Transform([]*runemark.Node{img}, m.Config))
		}
		tab = tab.Concat(runemark.NewTag("span", nil, m.String("name")))

		panel := m.TransformChildren(nil)

		return []any{
			runemark.CreateComponentRenderable("Tab", runemark.ComponentSpec{
				Tag: "li",
				Properties: map[string]any{
					"name":  tab.Tag("span"),
					"image": tab.Tag("svg"),
				},
				Children: tab.ToArray(),
			}),
			runemark.CreateComponentRenderable("TabPanel", runemark.ComponentSpec{
				Tag:      "li",
				Children: panel.ToArray(),
			}),
		}
	},
})

var tabsSchema = runemark.CreateSchema(runemark.ModelSpec{
	Fields: []runemark.Field{
		runemark.ID("id", true),
		runemark.Attr("headingLevel", runemark.AttributeSpec{Type: runemark.NumberType}),
		runemark.Group("header", runemark.GroupOptions{Include: []runemark.NodeFilter{
			runemark.FilterType("heading"),
			runemark.FilterType("paragraph"),
		}}),
		runemark.Group("tabgroup", runemark.GroupOptions{Include: []runemark.NodeFilter{
			runemark.FilterType("tag"),
		}}),
	},
	ProcessChildren: tabsHeadingsToTabs,
	Transform: func(m *runemark.Model) any {
		header := m.Group("header").Transform()
		tabStream := m.Group("tabgroup").Transform()

		tabs := tabStream.Tag("li").Typeof("Tab")
		panels := tabStream.Tag("li").Typeof("TabPanel")

		tabList := tabs.Wrap("ul", nil)
		panelList := panels.Wrap("ul", nil)

		children := []any{tabList.Next(), panelList.Next()}
		if header.Count() > 0 {
			children = append([]any{header.Wrap("header", nil).Next()}, children...)
		}

		return runemark.CreateComponentRenderable("TabGroup", runemark.ComponentSpec{
			Tag:      "section",
			ID:       m.ID("id"),
			Class:    classOf(m),
			Property: "contentSection",
			Properties: merge(pageSectionProperties(header), map[string]any{
				"tab":   tabs,
				"panel": panels,
			}),
			Refs: map[string]any{
				"tabs":   tabList,
				"panels": panelList,
			},
			Children: children,
		})
	},
})

// tabsHeadingsToTabs rewrites headings at the tab level into tab tag
// nodes. The heading text becomes the tab name and a heading image, if
// present, becomes the tab icon.
func tabsHeadingsToTabs(m *runemark.Model, nodes []*runemark.Node) []*runemark.Node {
	return headingTags(m.Int("headingLevel"), nodes,
		func(text string, heading *runemark.Node, body []*runemark.Node) *runemark.Node {
			attrs := map[string]any{"name": text}
			for _, d := range heading.Walk() {
				if d.Type == "image" {
					attrs["image"] = d.String("src")
					break
				}
			}
			return runemark.NewTagNode("tab", attrs, body...)
		})
}

var tabsRune = &Rune{
	Name:        "tabs",
	Schema:      tabsSchema,
	Description: "A tab group; headings in the body become tabs, with any heading image used as the tab icon.",
	Reinterprets: map[string]string{
		"heading": "becomes a tab name",
		"image":   "inside a heading, becomes the tab icon",
	},
	Type: "TabGroup",
}

var tabRune = &Rune{
	Name:        "tab",
	Schema:      tabSchema,
	Description: "One tab and its panel inside a tab group.",
	Type:        "Tab",
}
