package runes

import (
	"strconv"

	"github.com/runemark/runemark"
)

var datatableSchema = runemark.CreateSchema(runemark.ModelSpec{
	Fields: []runemark.Field{
		runemark.Attr("sortable", runemark.AttributeSpec{Type: runemark.StringType}),
		runemark.Attr("searchable", runemark.AttributeSpec{Type: runemark.BooleanType}),
		runemark.Attr("pageSize", runemark.AttributeSpec{Type: runemark.NumberType}),
		runemark.Attr("defaultSort", runemark.AttributeSpec{Type: runemark.StringType}),
	},
	Transform: func(m *runemark.Model) any {
		children := m.TransformChildren(nil)

		sortableMeta := meta(m.String("sortable"))
		searchableMeta := meta(strconv.FormatBool(m.Bool("searchable")))
		pageSizeMeta := meta(strconv.Itoa(m.Int("pageSize")))
		defaultSortMeta := meta(m.String("defaultSort"))

		table := children.Tag("table")
		var tableTag *runemark.Tag
		if table.Count() > 0 {
			tableTag, _ = table.Next().(*runemark.Tag)
		}
		if tableTag == nil {
			tableTag = runemark.NewTag("table", nil)
		}

		return runemark.CreateComponentRenderable("DataTable", runemark.ComponentSpec{
			Tag: "div",
			Properties: map[string]any{
				"sortable":    sortableMeta,
				"searchable":  searchableMeta,
				"pageSize":    pageSizeMeta,
				"defaultSort": defaultSortMeta,
			},
			Refs: map[string]any{
				"table": tableTag,
			},
			Children: []any{sortableMeta, searchableMeta, pageSizeMeta, defaultSortMeta, tableTag},
		})
	},
})

var datatableRune = &Rune{
	Name:        "datatable",
	Schema:      datatableSchema,
	Description: "A markdown table upgraded with sorting, searching, and pagination hints.",
	Reinterprets: map[string]string{
		"table": "the data source",
	},
	Type: "DataTable",
}
