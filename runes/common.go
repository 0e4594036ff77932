package runes

import (
	"strings"

	"github.com/runemark/runemark"
)

// meta builds a non-visual meta tag carrying a single value. Themes read
// these for modifiers; renderers skip them.
func meta(content any) *runemark.Tag {
	return runemark.NewTag("meta", map[string]any{"content": content})
}

// merge combines property maps; later maps win on key collisions.
func merge(maps ...map[string]any) map[string]any {
	out := map[string]any{}
	for _, m := range maps {
		for k, v := range m {
			out[k] = v
		}
	}
	return out
}

// pageSectionProperties extracts the standard page-section fields from a
// section's transformed content: an optional eyebrow (the first heading
// when there are at least two), the headline, and the first image and
// paragraph. The headings cursor is consumed statefully so eyebrow and
// headline never alias.
func pageSectionProperties(content *runemark.RenderableNodeCursor) map[string]any {
	headings := content.Headings()
	props := map[string]any{}
	if headings.Count() > 1 {
		props["eyebrow"] = headings.Next()
	}
	props["headline"] = headings.Next()
	props["image"] = content.Tag("img").Limit(1)
	props["blurb"] = content.Tag("p").Limit(1)
	return props
}

// splitFields declares the split/mirror attributes shared by every
// two-region section.
func splitFields() []runemark.Field {
	return []runemark.Field{
		runemark.Attr("split", runemark.AttributeSpec{Type: runemark.SpaceSeparatedNumberList{}}),
		runemark.Attr("mirror", runemark.AttributeSpec{Type: runemark.BooleanType}),
	}
}

// sectionSplit lays main and side content out per the model's split and
// mirror attributes.
func sectionSplit(m *runemark.Model, main, side []any) *runemark.GridLayoutCursor {
	return runemark.SplitLayout(runemark.SplitLayoutOptions{
		Split:  m.Ints("split"),
		Mirror: m.Bool("mirror"),
		Main:   main,
		Side:   side,
	})
}

// nameOf returns the first heading of a cursor, for components that use
// a heading as their accessible name.
func nameOf(c *runemark.RenderableNodeCursor) *runemark.RenderableNodeCursor {
	return c.Headings().Limit(1)
}

// descriptionOf returns the first paragraph of a cursor.
func descriptionOf(c *runemark.RenderableNodeCursor) *runemark.RenderableNodeCursor {
	return c.Tag("p").Limit(1)
}

// linkItem reshapes a list item into a LinkItem component: the link text
// becomes the name and the link itself the url. Used wherever a list of
// links becomes navigation or actions.
var linkItem = runemark.CreateSchema(runemark.ModelSpec{
	Transform: func(m *runemark.Model) any {
		output := m.TransformChildren(map[string]*runemark.Schema{
			"text": runemark.TransformWith(func(n *runemark.Node, _ *runemark.Config) any {
				return runemark.NewTag("span", nil, n.String("content"))
			}),
		})

		return runemark.CreateComponentRenderable("LinkItem", runemark.ComponentSpec{
			Tag: "li",
			Properties: map[string]any{
				"name": output.Flatten().Tag("span"),
				"url":  output.Tag("a"),
			},
			Children: output.ToArray(),
		})
	},
})

// headingText joins the text descendants of a node with spaces.
func headingText(n *runemark.Node) string {
	var parts []string
	for _, d := range n.Walk() {
		if d.Type == "text" {
			parts = append(parts, d.String("content"))
		}
	}
	return strings.Join(parts, " ")
}

// headingTags rewrites headings at the given level into tag nodes built
// by build, which receives the heading's text, the heading itself, and
// the content that followed it. Level 0 means the level of the first
// heading found; with no heading at all the nodes pass through
// untouched. Content before the first heading stays ahead of the
// produced tags.
func headingTags(level int, nodes []*runemark.Node, build func(text string, heading *runemark.Node, body []*runemark.Node) *runemark.Node) []*runemark.Node {
	if level == 0 {
		for _, n := range nodes {
			if n.Type == "heading" {
				level = n.Int("level")
				break
			}
		}
	}
	if level == 0 {
		return nodes
	}

	converted := runemark.HeadingsToList(runemark.HeadingsToListOptions{Level: level})(nodes)
	last := len(converted) - 1
	if last < 0 || converted[last].Type != "list" {
		return nodes
	}

	var tags []*runemark.Node
	for _, item := range converted[last].Children {
		if len(item.Children) == 0 {
			continue
		}
		heading := item.Children[0]
		tags = append(tags, build(headingText(heading), heading, item.Children[1:]))
	}

	out := append([]*runemark.Node{}, converted[:last]...)
	return append(out, tags...)
}

// namedSectionSchema builds the schema shared by profile card sections:
// a required name rendered as a span and the body wrapped in a div.
func namedSectionSchema(typeName string) *runemark.Schema {
	return runemark.CreateSchema(runemark.ModelSpec{
		Fields: []runemark.Field{
			runemark.Attr("name", runemark.AttributeSpec{Type: runemark.StringType, Required: true}),
		},
		Transform: func(m *runemark.Model) any {
			name := runemark.NewTag("span", nil, m.String("name"))
			body := m.TransformChildren(nil).Wrap("div", nil)

			return runemark.CreateComponentRenderable(typeName, runemark.ComponentSpec{
				Tag: "div",
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
}

// classOf reads the raw class attribute of a model's node.
func classOf(m *runemark.Model) string {
	class, _ := m.Node.TransformAttributes(m.Config)["class"].(string)
	return class
}
