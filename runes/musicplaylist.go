package runes

import (
	"strconv"
	"strings"

	"github.com/runemark/runemark"
)

var musicPlaylistSchema = runemark.CreateSchema(runemark.ModelSpec{
	Fields: []runemark.Field{
		runemark.Attr("trackFields", runemark.AttributeSpec{Type: runemark.CommaSeparatedList{}}),
		runemark.Attr("audio", runemark.AttributeSpec{Type: runemark.StringType}),
		runemark.Attr("split", runemark.AttributeSpec{Type: runemark.SpaceSeparatedNumberList{}}),
		runemark.Attr("mirror", runemark.AttributeSpec{Type: runemark.BooleanType}),
		runemark.Group("header", runemark.GroupOptions{
			Section: runemark.Section(0),
			Include: []runemark.NodeFilter{
				runemark.FilterType("heading"),
				runemark.FilterType("paragraph"),
			},
		}),
		runemark.Group("tracks", runemark.GroupOptions{Include: []runemark.NodeFilter{
			runemark.FilterType("tag"),
		}}),
	},
	ProcessChildren: func(m *runemark.Model, nodes []*runemark.Node) []*runemark.Node {
		// The track list becomes a run of music-recording tags in place.
		listIndex := -1
		for i, n := range nodes {
			if n.Type == "list" {
				listIndex = i
				break
			}
		}
		if listIndex == -1 {
			return nodes
		}

		fieldNames := m.Strings("trackFields")
		out := append([]*runemark.Node{}, nodes[:listIndex]...)
		for _, item := range nodes[listIndex].Children {
			out = append(out, musicRecordingFromItem(item, fieldNames))
		}
		return append(out, nodes[listIndex+1:]...)
	},
	Transform: func(m *runemark.Model) any {
		header := m.Group("header").
			UseNode("paragraph", runemark.TransformWith(func(n *runemark.Node, cfg *runemark.Config) any {
				for _, d := range n.Walk() {
					if d.Type == "image" {
						return d.Transform(cfg)
					}
				}
				return n.Transform(cfg)
			})).
			Transform()

		tracks := m.Group("tracks").Transform()

		mainContent := header.Wrap("div", map[string]any{"data-name": "main"})
		sideContent := tracks.Wrap("ol", nil).Wrap("div", map[string]any{"data-name": "showcase"})

		var children []any
		if split := m.Ints("split"); len(split) > 0 {
			parts := make([]string, len(split))
			for i, s := range split {
				parts[i] = strconv.Itoa(s)
			}
			children = append(children, runemark.NewTag("meta",
				map[string]any{"property": "split", "content": strings.Join(parts, " ")}))
		}
		if m.Bool("mirror") {
			children = append(children, runemark.NewTag("meta",
				map[string]any{"property": "mirror", "content": "true"}))
		}
		children = append(children, mainContent.Next(), sideContent.Next())

		return runemark.CreateComponentRenderable("MusicPlaylist", runemark.ComponentSpec{
			Tag:      "section",
			Property: "contentSection",
			Properties: merge(pageSectionProperties(header), map[string]any{
				"track": tracks.Tag("li").Typeof("MusicRecording"),
			}),
			Children: children,
		})
	},
})

var musicPlaylistRune = &Rune{
	Name:        "music-playlist",
	Schema:      musicPlaylistSchema,
	Description: "A track listing: each list item's pipe-separated fields become track metadata per the trackFields attribute.",
	Reinterprets: map[string]string{
		"list": "each item becomes a track, its text split on pipes into fields",
	},
	SEOType: "MusicPlaylist",
	Type:    "MusicPlaylist",
}
