package runes

import (
	"regexp"
	"strings"

	"github.com/runemark/runemark"
)

// versionDatePattern splits release headings like "v2.1.0 - 2024-01-15"
// or "0.1.0 - January 2024" into a version and a date.
var versionDatePattern = regexp.MustCompile(`^v?([\d.]+(?:-[\w.]+)?)\s*[-\x{2013}\x{2014}]\s*(.+)$`)

var changelogReleaseSchema = runemark.CreateSchema(runemark.ModelSpec{
	Fields: []runemark.Field{
		runemark.Attr("version", runemark.AttributeSpec{Type: runemark.StringType}),
		runemark.Attr("date", runemark.AttributeSpec{Type: runemark.StringType}),
	},
	Transform: func(m *runemark.Model) any {
		version := runemark.NewTag("h3", nil, m.String("version"))
		date := runemark.NewTag("time", nil, m.String("date"))
		body := m.TransformChildren(nil).Wrap("div", nil)

		return runemark.CreateComponentRenderable("ChangelogRelease", runemark.ComponentSpec{
			Tag: "section",
			Properties: map[string]any{
				"version": version,
				"date":    date,
			},
			Refs: map[string]any{
				"body": body.Tag("div"),
			},
			Children: []any{version, date, body.Next()},
		})
	},
})

var changelogSchema = runemark.CreateSchema(runemark.ModelSpec{
	Fields: []runemark.Field{
		runemark.Attr("headingLevel", runemark.AttributeSpec{Type: runemark.NumberType}),
		runemark.Attr("project", runemark.AttributeSpec{Type: runemark.StringType}),
		runemark.Group("header", runemark.GroupOptions{Include: []runemark.NodeFilter{
			runemark.FilterType("heading"),
			runemark.FilterType("paragraph"),
		}}),
		runemark.Group("itemgroup", runemark.GroupOptions{Include: []runemark.NodeFilter{
			runemark.FilterType("tag"),
		}}),
	},
	ProcessChildren: func(m *runemark.Model, nodes []*runemark.Node) []*runemark.Node {
		return headingTags(m.Int("headingLevel"), nodes,
			func(text string, _ *runemark.Node, body []*runemark.Node) *runemark.Node {
				version, date := text, ""
				if match := versionDatePattern.FindStringSubmatch(text); match != nil {
					version = strings.TrimSpace(match[1])
					date = strings.TrimSpace(match[2])
				}
				return runemark.NewTagNode("changelog-release",
					map[string]any{"version": version, "date": date}, body...)
			})
	},
	Transform: func(m *runemark.Model) any {
		header := m.Group("header").Transform()
		projectMeta := meta(m.String("project"))

		releases := m.Group("itemgroup").Transform().Tag("section").Typeof("ChangelogRelease")
		releasesDiv := runemark.NewTag("div", nil, releases.ToArray()...)

		children := []any{projectMeta}
		if header.Count() > 0 {
			children = append(children, header.Wrap("header", nil).Next())
		}
		children = append(children, releasesDiv)

		return runemark.CreateComponentRenderable("Changelog", runemark.ComponentSpec{
			Tag:      "section",
			Property: "contentSection",
			Properties: merge(pageSectionProperties(header), map[string]any{
				"project": projectMeta,
				"release": releases,
			}),
			Refs: map[string]any{
				"releases": releasesDiv,
			},
			Children: children,
		})
	},
})

var changelogRune = &Rune{
	Name:        "changelog",
	Schema:      changelogSchema,
	Description: "A release history; headings like \"v2.1.0 - 2024-01-15\" split into a version and a date.",
	Reinterprets: map[string]string{
		"heading": "becomes a release, its text split into version and date",
	},
	Type: "Changelog",
}

var changelogReleaseRune = &Rune{
	Name:        "changelog-release",
	Schema:      changelogReleaseSchema,
	Description: "One versioned release inside a changelog.",
	Type:        "ChangelogRelease",
}
