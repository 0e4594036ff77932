package runes

import (
	"github.com/runemark/runemark"
)

var eventSchema = runemark.CreateSchema(runemark.ModelSpec{
	Fields: []runemark.Field{
		runemark.Attr("date", runemark.AttributeSpec{Type: runemark.StringType}),
		runemark.Attr("endDate", runemark.AttributeSpec{Type: runemark.StringType}),
		runemark.Attr("location", runemark.AttributeSpec{Type: runemark.StringType}),
		runemark.Attr("url", runemark.AttributeSpec{Type: runemark.StringType}),
		runemark.Group("header", runemark.GroupOptions{Include: []runemark.NodeFilter{
			runemark.FilterType("heading"),
			runemark.FilterType("paragraph"),
			runemark.FilterType("image"),
		}}),
		runemark.Group("body", runemark.GroupOptions{Include: []runemark.NodeFilter{
			runemark.FilterType("list"),
			runemark.FilterType("blockquote"),
			runemark.FilterType("tag"),
		}}),
	},
	Transform: func(m *runemark.Model) any {
		header := m.Group("header").Transform()
		body := m.Group("body").Transform()

		dateMeta := meta(m.String("date"))
		endDateMeta := meta(m.String("endDate"))
		locationMeta := meta(m.String("location"))
		urlMeta := meta(m.String("url"))

		bodyDiv := body.Wrap("div", nil)

		return runemark.CreateComponentRenderable("Event", runemark.ComponentSpec{
			Tag:      "article",
			Property: "contentSection",
			Properties: merge(pageSectionProperties(header), map[string]any{
				"date":     dateMeta,
				"endDate":  endDateMeta,
				"location": locationMeta,
				"url":      urlMeta,
			}),
			Refs: map[string]any{
				"body": bodyDiv,
			},
			Children: []any{
				dateMeta,
				endDateMeta,
				locationMeta,
				urlMeta,
				header.Wrap("header", nil).Next(),
				bodyDiv.Next(),
			},
		})
	},
})

var eventRune = &Rune{
	Name:        "event",
	Schema:      eventSchema,
	Description: "An event announcement with date, location, and link metadata.",
	SEOType:     "Event",
	Type:        "Event",
}
