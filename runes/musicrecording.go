package runes

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/runemark/runemark"
)

var isoDurationPattern = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)

// formatISODuration renders an ISO 8601 duration like PT3M25S as a
// track time ("3:25"). Unparseable values come back unchanged.
func formatISODuration(d string) string {
	match := isoDurationPattern.FindStringSubmatch(d)
	if match == nil {
		return d
	}
	hours, _ := strconv.Atoi(match[1])
	minutes, _ := strconv.Atoi(match[2])
	seconds, _ := strconv.Atoi(match[3])
	return fmt.Sprintf("%d:%02d", hours*60+minutes, seconds)
}

var musicRecordingSchema = runemark.CreateSchema(runemark.ModelSpec{
	Fields: []runemark.Field{
		runemark.Attr("listItem", runemark.AttributeSpec{Type: runemark.BooleanType}),
		runemark.Attr("byArtist", runemark.AttributeSpec{Type: runemark.StringType}),
		runemark.Attr("copyrightYear", runemark.AttributeSpec{Type: runemark.NumberType}),
		runemark.Attr("duration", runemark.AttributeSpec{Type: runemark.StringType}),
		runemark.Group("title", runemark.GroupOptions{Include: []runemark.NodeFilter{
			runemark.FilterType("heading"),
		}}),
	},
	Transform: func(m *runemark.Model) any {
		tagName := "div"
		if m.Bool("listItem") {
			tagName = "li"
		}

		children := m.Group("title").Transform()

		name := children.Tag("h1")
		byArtist := runemark.CursorOf(runemark.NewTag("span", nil, m.String("byArtist")))
		copyrightYear := runemark.CursorOf(runemark.NewTag("span", nil, m.Int("copyrightYear")))
		duration := runemark.NewCursor(nil)
		if d := m.String("duration"); d != "" {
			duration = runemark.CursorOf(runemark.NewTag("span",
				map[string]any{"content": d}, formatISODuration(d)))
		}

		return runemark.CreateComponentRenderable("MusicRecording", runemark.ComponentSpec{
			Tag: tagName,
			Properties: map[string]any{
				"name":          name,
				"byArtist":      byArtist,
				"copyrightYear": copyrightYear,
				"duration":      duration,
			},
			Children: children.Concat(byArtist, copyrightYear, duration).ToArray(),
		})
	},
})

// musicRecordingFromItem builds a music-recording tag node from a list
// item whose text is a pipe-separated field row, with field names taken
// from the playlist's trackFields attribute. Headings inside the item
// carry the track title.
func musicRecordingFromItem(item *runemark.Node, fieldNames []string) *runemark.Node {
	attrs := map[string]any{"listItem": true}

	for _, child := range item.Children {
		if child.Type != "text" {
			continue
		}
		fields := strings.Split(child.String("content"), "|")
		for i, key := range fieldNames {
			if i >= len(fields) {
				break
			}
			value := strings.TrimSpace(fields[i])
			if key == "copyrightYear" {
				year, _ := strconv.Atoi(value)
				attrs[key] = year
			} else {
				attrs[key] = value
			}
		}
		break
	}

	var headings []*runemark.Node
	for _, child := range item.Children {
		if child.Type == "heading" {
			headings = append(headings, child)
		}
	}

	return runemark.NewTagNode("music-recording", attrs, headings...)
}

var musicRecordingRune = &Rune{
	Name:        "music-recording",
	Schema:      musicRecordingSchema,
	Description: "One track with artist, year, and ISO 8601 duration metadata.",
	SEOType:     "MusicRecording",
	Type:        "MusicRecording",
}
