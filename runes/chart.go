package runes

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/runemark/runemark"
)

type chartData struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// extractTableData pulls header and body cell text out of rendered table
// tags. Cell text is every string in the cell's subtree, concatenated.
func extractTableData(children []any) chartData {
	data := chartData{Headers: []string{}, Rows: [][]string{}}

	cellText := func(cell *runemark.Tag) string {
		var b strings.Builder
		for _, n := range runemark.WalkTag(cell) {
			if s, ok := n.(string); ok {
				b.WriteString(s)
			}
		}
		return strings.TrimSpace(b.String())
	}

	for _, child := range children {
		table, ok := runemark.IsTag(child)
		if !ok || table.Name != "table" {
			continue
		}
		for _, sectionNode := range table.Children {
			section, ok := runemark.IsTag(sectionNode)
			if !ok {
				continue
			}
			for _, trNode := range section.Children {
				tr, ok := runemark.IsTag(trNode)
				if !ok || tr.Name != "tr" {
					continue
				}
				switch section.Name {
				case "thead":
					for _, cellNode := range tr.Children {
						if cell, ok := runemark.IsTag(cellNode); ok {
							data.Headers = append(data.Headers, cellText(cell))
						}
					}
				case "tbody":
					row := []string{}
					for _, cellNode := range tr.Children {
						if cell, ok := runemark.IsTag(cellNode); ok {
							row = append(row, cellText(cell))
						}
					}
					data.Rows = append(data.Rows, row)
				}
			}
		}
	}

	return data
}

var chartSchema = runemark.CreateSchema(runemark.ModelSpec{
	Fields: []runemark.Field{
		runemark.Attr("type", runemark.AttributeSpec{
			Type:    runemark.StringType,
			Default: "bar",
			Matches: []string{"bar", "line", "pie", "area"},
		}),
		runemark.Attr("title", runemark.AttributeSpec{Type: runemark.StringType}),
		runemark.Attr("stacked", runemark.AttributeSpec{Type: runemark.BooleanType}),
	},
	Transform: func(m *runemark.Model) any {
		children := m.TransformChildren(nil)

		typeMeta := meta(m.String("type"))
		titleMeta := meta(m.String("title"))
		stackedMeta := meta(strconv.FormatBool(m.Bool("stacked")))

		encoded, _ := json.Marshal(extractTableData(children.ToArray()))
		dataMeta := meta(string(encoded))

		return runemark.CreateComponentRenderable("Chart", runemark.ComponentSpec{
			Tag: "figure",
			Properties: map[string]any{
				"type":    typeMeta,
				"title":   titleMeta,
				"stacked": stackedMeta,
			},
			Refs: map[string]any{
				"data": dataMeta,
			},
			Children: []any{typeMeta, titleMeta, stackedMeta, dataMeta},
		})
	},
})

var chartRune = &Rune{
	Name:        "chart",
	Schema:      chartSchema,
	Description: "A chart fed by a markdown table: headers become series names and rows become data points, serialized as JSON for the client renderer.",
	Reinterprets: map[string]string{
		"table": "becomes the chart's data set",
	},
	Type: "Chart",
}
