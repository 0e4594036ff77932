package runes

import (
	"encoding/json"
	"html"
	"strings"

	"github.com/runemark/runemark"
)

type diffHunk struct {
	Type string `json:"type"` // "equal", "add", "remove"
	Text string `json:"text"`
	HTML string `json:"html"`
}

type diffData struct {
	Language string     `json:"language"`
	Hunks    []diffHunk `json:"hunks"`
}

// computeLineDiff produces a line-level diff of two sources using a
// longest-common-subsequence table. Each hunk carries the raw line and
// an HTML-escaped copy for direct rendering.
func computeLineDiff(before, after string) []diffHunk {
	a := strings.Split(before, "\n")
	b := strings.Split(after, "\n")

	m, n := len(a), len(b)
	dp := make([][]int, m+1)
	for i := range dp {
		dp[i] = make([]int, n+1)
	}
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			if a[i-1] == b[j-1] {
				dp[i][j] = dp[i-1][j-1] + 1
			} else {
				dp[i][j] = max(dp[i-1][j], dp[i][j-1])
			}
		}
	}

	var reversed []diffHunk
	i, j := m, n
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && a[i-1] == b[j-1]:
			reversed = append(reversed, diffHunk{Type: "equal", Text: a[i-1]})
			i--
			j--
		case j > 0 && (i == 0 || dp[i][j-1] >= dp[i-1][j]):
			reversed = append(reversed, diffHunk{Type: "add", Text: b[j-1]})
			j--
		default:
			reversed = append(reversed, diffHunk{Type: "remove", Text: a[i-1]})
			i--
		}
	}

	hunks := make([]diffHunk, 0, len(reversed))
	for k := len(reversed) - 1; k >= 0; k-- {
		h := reversed[k]
		h.HTML = html.EscapeString(h.Text)
		hunks = append(hunks, h)
	}
	return hunks
}

var diffSchema = runemark.CreateSchema(runemark.ModelSpec{
	Fields: []runemark.Field{
		runemark.Attr("mode", runemark.AttributeSpec{
			Type:    runemark.StringType,
			Default: "unified",
			Matches: []string{"unified", "split", "inline"},
		}),
		runemark.Attr("language", runemark.AttributeSpec{Type: runemark.StringType}),
	},
	Transform: func(m *runemark.Model) any {
		modeMeta := meta(m.String("mode"))
		languageMeta := meta(m.String("language"))

		// The raw fence content is diffed, not the rendered code blocks.
		type fence struct{ content, language string }
		var fences []fence
		for _, child := range m.Node.Children {
			if child.Type == "fence" {
				fences = append(fences, fence{child.String("content"), child.String("language")})
			}
		}

		before, after := "", ""
		if len(fences) > 0 {
			before = strings.TrimSuffix(fences[0].content, "\n")
		}
		if len(fences) > 1 {
			after = strings.TrimSuffix(fences[1].content, "\n")
		}
		lang := m.String("language")
		if lang == "" && len(fences) > 0 {
			lang = fences[0].language
		}

		encoded, _ := json.Marshal(diffData{Language: lang, Hunks: computeLineDiff(before, after)})
		dataMeta := meta(string(encoded))

		return runemark.CreateComponentRenderable("Diff", runemark.ComponentSpec{
			Tag: "div",
			Properties: map[string]any{
				"mode":     modeMeta,
				"language": languageMeta,
			},
			Refs: map[string]any{
				"data": dataMeta,
			},
			Children: []any{modeMeta, languageMeta, dataMeta},
		})
	},
})

var diffRune = &Rune{
	Name:        "diff",
	Schema:      diffSchema,
	Description: "A before/after code comparison: the first fence is the old version, the second the new, diffed line by line.",
	Reinterprets: map[string]string{
		"fence": "the first fence is the before, the second the after",
	},
	Type: "Diff",
}
