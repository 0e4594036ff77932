package runes

import (
	"strings"

	"github.com/runemark/runemark"
)

var languageNames = map[string]string{
	"js": "JavaScript", "ts": "TypeScript", "py": "Python",
	"rb": "Ruby", "rs": "Rust", "go": "Go", "sh": "Shell",
	"bash": "Bash", "zsh": "Zsh", "shell": "Shell",
	"html": "HTML", "css": "CSS", "json": "JSON", "yaml": "YAML",
	"sql": "SQL", "swift": "Swift", "kt": "Kotlin", "java": "Java",
	"cpp": "C++", "c": "C", "cs": "C#", "php": "PHP",
}

func prettifyLanguage(lang string) string {
	if name, ok := languageNames[lang]; ok {
		return name
	}
	if lang == "" {
		return ""
	}
	return strings.ToUpper(lang[:1]) + lang[1:]
}

var codegroupSchema = runemark.CreateSchema(runemark.ModelSpec{
	Fields: []runemark.Field{
		runemark.Attr("title", runemark.AttributeSpec{Type: runemark.StringType}),
		runemark.Attr("labels", runemark.AttributeSpec{Type: runemark.StringType}),
	},
	Transform: func(m *runemark.Model) any {
		var customLabels []string
		if labels := m.String("labels"); labels != "" {
			for _, l := range strings.Split(labels, ",") {
				customLabels = append(customLabels, strings.TrimSpace(l))
			}
		}

		var tabItems, panelItems []any
		for _, child := range m.Node.Children {
			if child.Type != "fence" {
				continue
			}

			lang := child.String("language")
			if lang == "" {
				lang = "shell"
			}
			label := prettifyLanguage(lang)
			if len(customLabels) > len(tabItems) {
				label = customLabels[len(tabItems)]
			}

			name := runemark.NewTag("span", nil, label)
			tabItems = append(tabItems, runemark.CreateComponentRenderable("Tab", runemark.ComponentSpec{
				Tag:        "li",
				Properties: map[string]any{"name": name},
				Children:   []any{name},
			}))

			panelItems = append(panelItems, runemark.CreateComponentRenderable("TabPanel", runemark.ComponentSpec{
				Tag:      "li",
				Children: []any{child.Transform(m.Config)},
			}))
		}

		tabs := runemark.NewCursor(tabItems)
		panels := runemark.NewCursor(panelItems)
		tabList := tabs.Wrap("ul", nil)
		panelList := panels.Wrap("ul", nil)

		properties := map[string]any{"tab": tabs, "panel": panels}
		var children []any
		if title := m.String("title"); title != "" {
			titleSpan := runemark.NewTag("span", nil, title)
			properties["title"] = titleSpan
			children = append(children, titleSpan)
		}
		children = append(children, tabList.Next(), panelList.Next())

		return runemark.CreateComponentRenderable("CodeGroup", runemark.ComponentSpec{
			Tag:        "section",
			Properties: properties,
			Refs: map[string]any{
				"tabs":   tabList,
				"panels": panelList,
			},
			Children: children,
		})
	},
})

var codegroupRune = &Rune{
	Name:        "codegroup",
	Schema:      codegroupSchema,
	Description: "A tabbed group of code fences, labeled by language or by an explicit label list.",
	Reinterprets: map[string]string{
		"fence": "each fence becomes one tab, labeled by its language",
	},
	Type: "CodeGroup",
}
