package runes

import (
	"regexp"
	"strings"

	"github.com/runemark/runemark"
)

// dateLabelPattern splits entry headings like "2023 - Company founded"
// or "2020-2023: Growth phase" into a date part and a label part.
var dateLabelPattern = regexp.MustCompile(`^(.+?)\s*[-\x{2013}\x{2014}:]\s*(.+)$`)

var timelineEntrySchema = runemark.CreateSchema(runemark.ModelSpec{
	Fields: []runemark.Field{
		runemark.Attr("date", runemark.AttributeSpec{Type: runemark.StringType}),
		runemark.Attr("label", runemark.AttributeSpec{Type: runemark.StringType}),
	},
	Transform: func(m *runemark.Model) any {
		date := runemark.NewTag("time", nil, m.String("date"))
		label := runemark.NewTag("span", nil, m.String("label"))
		body := m.TransformChildren(nil).Wrap("div", nil)

		return runemark.CreateComponentRenderable("TimelineEntry", runemark.ComponentSpec{
			Tag: "li",
			Properties: map[string]any{
				"date":  date,
				"label": label,
			},
			Refs: map[string]any{
				"body": body.Tag("div"),
			},
			Children: []any{date, label, body.Next()},
		})
	},
})

var timelineSchema = runemark.CreateSchema(runemark.ModelSpec{
	Fields: []runemark.Field{
		runemark.Attr("headingLevel", runemark.AttributeSpec{Type: runemark.NumberType}),
		runemark.Attr("direction", runemark.AttributeSpec{Type: runemark.StringType, Default: "vertical"}),
		runemark.Group("header", runemark.GroupOptions{Include: []runemark.NodeFilter{
			runemark.FilterType("heading"),
			runemark.FilterType("paragraph"),
		}}),
		runemark.Group("itemgroup", runemark.GroupOptions{Include: []runemark.NodeFilter{
			runemark.FilterType("tag"),
		}}),
	},
	ProcessChildren: timelineHeadingsToEntries,
	Transform: func(m *runemark.Model) any {
		header := m.Group("header").Transform()
		direction := meta(m.String("direction"))

		items := m.Group("itemgroup").Transform().Tag("li").Typeof("TimelineEntry")
		entries := runemark.NewTag("ol", nil, items.ToArray()...)

		children := []any{direction}
		if header.Count() > 0 {
			children = append(children, header.Wrap("header", nil).Next())
		}
		children = append(children, entries)

		return runemark.CreateComponentRenderable("Timeline", runemark.ComponentSpec{
			Tag:      "section",
			Property: "contentSection",
			Properties: merge(pageSectionProperties(header), map[string]any{
				"direction": direction,
				"entry":     items,
			}),
			Refs: map[string]any{
				"entries": entries,
			},
			Children: children,
		})
	},
})

// timelineHeadingsToEntries rewrites entry headings into timeline-entry
// tag nodes, splitting each heading into date and label text.
func timelineHeadingsToEntries(m *runemark.Model, nodes []*runemark.Node) []*runemark.Node {
	return headingTags(m.Int("headingLevel"), nodes,
		func(text string, _ *runemark.Node, body []*runemark.Node) *runemark.Node {
			date, label := "", text
			if match := dateLabelPattern.FindStringSubmatch(text); match != nil {
				date = strings.TrimSpace(match[1])
				label = strings.TrimSpace(match[2])
			}
			return runemark.NewTagNode("timeline-entry",
				map[string]any{"date": date, "label": label}, body...)
		})
}

var timelineRune = &Rune{
	Name:        "timeline",
	Schema:      timelineSchema,
	Description: "A chronological sequence of entries; headings like \"2023 - Founded\" split into a date and a label.",
	Reinterprets: map[string]string{
		"heading": "becomes an entry, its text split into date and label",
	},
	Type: "Timeline",
}

var timelineEntryRune = &Rune{
	Name:        "timeline-entry",
	Schema:      timelineEntrySchema,
	Description: "One dated entry in a timeline.",
	Type:        "TimelineEntry",
}
