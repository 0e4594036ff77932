package runes

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/runemark/runemark"
)

// dedent strips the common leading whitespace of all non-blank lines.
func dedent(text string) string {
	lines := strings.Split(text, "\n")
	min := -1
	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		indent := len(l) - len(strings.TrimLeft(l, " \t"))
		if min == -1 || indent < min {
			min = indent
		}
	}
	if min <= 0 {
		return text
	}
	for i, l := range lines {
		if len(l) >= min {
			lines[i] = l[min:]
		}
	}
	return strings.Join(lines, "\n")
}

type sourcePanel struct {
	label    string
	language string
	content  string
}

var dataSourceOpen = regexp.MustCompile(`<(\w+)\b([^>]*?)\bdata-source(?:="([^"]*)")?([^>]*)>`)

// extractDataSourcePanels finds elements marked data-source in raw HTML
// and turns each into a labeled source panel. Style and script bodies
// are shown bare; other elements are shown with their own markup,
// reindented.
func extractDataSourcePanels(html string) []sourcePanel {
	var panels []sourcePanel

	rest := html
	for {
		loc := dataSourceOpen.FindStringSubmatchIndex(rest)
		if loc == nil {
			break
		}
		match := dataSourceOpen.FindStringSubmatch(rest)
		tagName, before, labelAttr, after := match[1], match[2], match[3], match[4]

		closing := "</" + tagName + ">"
		bodyStart := loc[1]
		closeAt := strings.Index(rest[bodyStart:], closing)
		if closeAt == -1 {
			break
		}
		inner := rest[bodyStart : bodyStart+closeAt]
		rest = rest[bodyStart+closeAt+len(closing):]

		language := "html"
		switch tagName {
		case "style":
			language = "css"
		case "script":
			language = "javascript"
		}

		var content string
		if tagName == "style" || tagName == "script" {
			content = dedent(strings.TrimSpace(inner))
		} else {
			attrs := strings.TrimSpace(regexp.MustCompile(`\s{2,}`).ReplaceAllString(before+after, " "))
			attrStr := ""
			if attrs != "" {
				attrStr = " " + attrs
			}
			lines := strings.Split(dedent(inner), "\n")
			for i, l := range lines {
				if strings.TrimSpace(l) != "" {
					lines[i] = "  " + l
				}
			}
			content = strings.TrimSpace("<" + tagName + attrStr + ">" + strings.Join(lines, "\n") + closing)
		}

		label := labelAttr
		if label == "" {
			label = strings.ToUpper(language[:1]) + language[1:]
		}
		panels = append(panels, sourcePanel{label: label, language: language, content: content})
	}

	return panels
}

var sandboxSchema = runemark.CreateSchema(runemark.ModelSpec{
	Fields: []runemark.Field{
		runemark.Attr("framework", runemark.AttributeSpec{Type: runemark.StringType}),
		runemark.Attr("dependencies", runemark.AttributeSpec{Type: runemark.StringType}),
		runemark.Attr("label", runemark.AttributeSpec{Type: runemark.StringType}),
		runemark.Attr("height", runemark.AttributeSpec{Type: runemark.NumberType}),
	},
	Transform: func(m *runemark.Model) any {
		// The body is read back out of the raw document text, skipping
		// the tag's own open and close lines. Block-level HTML such as
		// style and script elements never survives markdown parsing, so
		// the parsed children are useless here.
		rawContent := ""
		if raw := m.Config.Source(); raw != "" {
			allLines := strings.Split(raw, "\n")
			start := m.Node.Lines[0] + 1
			end := m.Node.Lines[1] - 1
			if start >= 0 && end <= len(allLines) && start < end {
				rawContent = strings.TrimSpace(strings.Join(allLines[start:end], "\n"))
			}
		}

		contentMeta := meta(rawContent)
		frameworkMeta := meta(m.String("framework"))
		dependenciesMeta := meta(m.String("dependencies"))
		heightValue := "auto"
		if m.Has("height") {
			heightValue = strconv.Itoa(m.Int("height"))
		}
		heightMeta := meta(heightValue)

		properties := map[string]any{
			"content":      contentMeta,
			"framework":    frameworkMeta,
			"dependencies": dependenciesMeta,
			"height":       heightMeta,
		}
		children := []any{contentMeta, frameworkMeta, dependenciesMeta}
		if label := m.String("label"); label != "" {
			labelMeta := meta(label)
			properties["label"] = labelMeta
			children = append(children, labelMeta)
		}
		children = append(children, heightMeta)

		if rawContent != "" {
			children = append(children, runemark.NewTag("pre",
				map[string]any{"data-language": "html"},
				runemark.NewTag("code", map[string]any{"data-language": "html"}, rawContent)))
		}

		for _, panel := range extractDataSourcePanels(rawContent) {
			pre := runemark.NewTag("pre",
				map[string]any{"data-language": panel.language},
				runemark.NewTag("code", map[string]any{"data-language": panel.language}, panel.content))
			children = append(children, runemark.NewTag("meta",
				map[string]any{"property": "source-panel", "data-label": panel.label}, pre))
		}

		return runemark.CreateComponentRenderable("Sandbox", runemark.ComponentSpec{
			Tag:        "div",
			Properties: properties,
			Children:   children,
		})
	},
})

var sandboxRune = &Rune{
	Name:        "sandbox",
	Schema:      sandboxSchema,
	Description: "A live HTML/CSS/JS sandbox whose body is lifted verbatim from the source document, with data-source panels extracted for static highlighting.",
	Type:        "Sandbox",
}
