package runes

import (
	"regexp"
	"strings"

	"github.com/runemark/runemark"
)

var trailingColon = regexp.MustCompile(`:\s*$`)

var conversationMessageSchema = runemark.CreateSchema(runemark.ModelSpec{
	Fields: []runemark.Field{
		runemark.Attr("speaker", runemark.AttributeSpec{Type: runemark.StringType}),
		runemark.Attr("alignment", runemark.AttributeSpec{Type: runemark.StringType, Default: "left"}),
	},
	Transform: func(m *runemark.Model) any {
		speaker := runemark.NewTag("span", nil, m.String("speaker"))
		alignment := meta(m.String("alignment"))
		body := m.TransformChildren(nil).Wrap("div", nil)

		return runemark.CreateComponentRenderable("ConversationMessage", runemark.ComponentSpec{
			Tag: "div",
			Properties: map[string]any{
				"speaker":   speaker,
				"alignment": alignment,
			},
			Refs: map[string]any{
				"body": body.Tag("div"),
			},
			Children: []any{speaker, alignment, body.Next()},
		})
	},
})

var conversationSchema = runemark.CreateSchema(runemark.ModelSpec{
	Fields: []runemark.Field{
		runemark.Attr("speakers", runemark.AttributeSpec{Type: runemark.StringType}),
		runemark.Group("body", runemark.GroupOptions{Include: []runemark.NodeFilter{
			runemark.FilterType("tag"),
		}}),
	},
	ProcessChildren: func(m *runemark.Model, nodes []*runemark.Node) []*runemark.Node {
		var speakerList []string
		if speakers := m.String("speakers"); speakers != "" {
			for _, s := range strings.Split(speakers, ",") {
				speakerList = append(speakerList, strings.TrimSpace(s))
			}
		}

		var converted []*runemark.Node
		messageIndex := 0

		for _, node := range nodes {
			if node.Type != "blockquote" {
				converted = append(converted, node)
				continue
			}

			// A leading "**Name:**" names the speaker; otherwise speakers
			// from the attribute alternate in order.
			speaker := ""
			if len(node.Children) > 0 && node.Children[0].Type == "paragraph" {
				para := node.Children[0]
				if len(para.Children) > 0 && para.Children[0].Type == "strong" {
					var parts []string
					for _, d := range para.Children[0].Walk() {
						if d.Type == "text" {
							parts = append(parts, d.String("content"))
						}
					}
					speaker = trailingColon.ReplaceAllString(strings.Join(parts, ""), "")
				}
			}
			if speaker == "" && len(speakerList) > 0 {
				speaker = speakerList[messageIndex%len(speakerList)]
			}

			alignment := "left"
			if messageIndex%2 == 1 {
				alignment = "right"
			}

			converted = append(converted, runemark.NewTagNode("conversation-message",
				map[string]any{"speaker": speaker, "alignment": alignment},
				node.Children...))
			messageIndex++
		}

		return converted
	},
	Transform: func(m *runemark.Model) any {
		body := m.Group("body").Transform()

		messages := body.Tag("div").Typeof("ConversationMessage")
		container := messages.Wrap("div", nil)

		return runemark.CreateComponentRenderable("Conversation", runemark.ComponentSpec{
			Tag: "div",
			Properties: map[string]any{
				"message": messages,
			},
			Refs: map[string]any{
				"messages": container,
			},
			Children: []any{container.Next()},
		})
	},
})

var conversationRune = &Rune{
	Name:        "conversation",
	Schema:      conversationSchema,
	Description: "A chat-style exchange built from blockquotes; bold leading text names the speaker and messages alternate sides.",
	Reinterprets: map[string]string{
		"blockquote": "becomes a message bubble",
		"strong":     "a leading bold \"Name:\" names the speaker",
	},
	Type: "Conversation",
}

var conversationMessageRune = &Rune{
	Name:        "conversation-message",
	Schema:      conversationMessageSchema,
	Description: "One message bubble in a conversation.",
	Type:        "ConversationMessage",
}
