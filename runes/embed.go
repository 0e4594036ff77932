package runes

import (
	"net/url"
	"strings"

	"github.com/runemark/runemark"
)

type providerInfo struct {
	provider string
	embedURL string
	kind     string
}

// detectProvider maps a media URL to its embed form. Unknown hosts and
// unparseable URLs degrade to a generic embed of the original URL.
func detectProvider(raw string) providerInfo {
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Hostname() == "" {
		return providerInfo{provider: "generic", embedURL: raw, kind: "generic"}
	}
	host := strings.TrimPrefix(parsed.Hostname(), "www.")

	switch host {
	case "youtube.com", "youtu.be":
		videoID := parsed.Query().Get("v")
		if host == "youtu.be" {
			videoID = strings.TrimPrefix(parsed.Path, "/")
		}
		embedURL := raw
		if videoID != "" {
			embedURL = "https://www.youtube-nocookie.com/embed/" + videoID
		}
		return providerInfo{provider: "youtube", embedURL: embedURL, kind: "video"}

	case "vimeo.com":
		videoID := strings.TrimPrefix(parsed.Path, "/")
		return providerInfo{
			provider: "vimeo",
			embedURL: "https://player.vimeo.com/video/" + videoID,
			kind:     "video",
		}

	case "twitter.com", "x.com":
		return providerInfo{provider: "twitter", embedURL: raw, kind: "tweet"}

	case "codepen.io":
		return providerInfo{
			provider: "codepen",
			embedURL: strings.Replace(raw, "/pen/", "/embed/", 1),
			kind:     "codepen",
		}

	case "open.spotify.com":
		return providerInfo{
			provider: "spotify",
			embedURL: strings.Replace(raw, "open.spotify.com/", "open.spotify.com/embed/", 1),
			kind:     "spotify",
		}
	}

	return providerInfo{provider: "generic", embedURL: raw, kind: "generic"}
}

var embedSchema = runemark.CreateSchema(runemark.ModelSpec{
	Fields: []runemark.Field{
		runemark.Attr("url", runemark.AttributeSpec{Type: runemark.StringType, Required: true}),
		runemark.Attr("type", runemark.AttributeSpec{Type: runemark.StringType}),
		runemark.Attr("aspect", runemark.AttributeSpec{
			Type:    runemark.StringType,
			Default: "16:9",
			Matches: []string{"16:9", "4:3", "1:1", "auto"},
		}),
		runemark.Attr("title", runemark.AttributeSpec{Type: runemark.StringType}),
	},
	Transform: func(m *runemark.Model) any {
		detected := detectProvider(m.String("url"))
		resolvedType := m.String("type")
		if resolvedType == "" {
			resolvedType = detected.kind
		}

		urlMeta := meta(m.String("url"))
		typeMeta := meta(resolvedType)
		aspectMeta := meta(m.String("aspect"))
		titleMeta := meta(m.String("title"))
		embedURLMeta := meta(detected.embedURL)
		providerMeta := meta(detected.provider)

		fallback := m.TransformChildren(nil).Wrap("div", nil)

		return runemark.CreateComponentRenderable("Embed", runemark.ComponentSpec{
			Tag: "figure",
			Properties: map[string]any{
				"url":      urlMeta,
				"type":     typeMeta,
				"aspect":   aspectMeta,
				"title":    titleMeta,
				"embedUrl": embedURLMeta,
				"provider": providerMeta,
			},
			Refs: map[string]any{
				"fallback": fallback.Tag("div"),
			},
			Children: []any{urlMeta, typeMeta, aspectMeta, titleMeta, embedURLMeta, providerMeta, fallback.Next()},
		})
	},
})

var embedRune = &Rune{
	Name:        "embed",
	Schema:      embedSchema,
	Description: "An external media embed with provider detection for YouTube, Vimeo, Twitter, CodePen, and Spotify; the body is the no-script fallback.",
	Type:        "Embed",
}
