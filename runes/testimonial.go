package runes

import (
	"regexp"
	"strings"

	"github.com/runemark/runemark"
)

var leadingDash = regexp.MustCompile(`^\s*[-\x{2013}\x{2014}]\s*`)

var testimonialSchema = runemark.CreateSchema(runemark.ModelSpec{
	Fields: []runemark.Field{
		runemark.Attr("rating", runemark.AttributeSpec{Type: runemark.NumberType}),
		runemark.Attr("layout", runemark.AttributeSpec{
			Type:    runemark.StringType,
			Default: "card",
			Matches: []string{"card", "inline", "quote"},
		}),
	},
	Transform: func(m *runemark.Model) any {
		children := m.TransformChildren(nil)

		// The blockquote is the quote; a paragraph opening with bold text
		// names the author, with "Role, Company" after a dash; an image
		// becomes the avatar.
		var quote, avatar *runemark.Tag
		var authorName, authorRole *runemark.Tag

		for _, node := range children.ToArray() {
			t, ok := runemark.IsTag(node)
			if !ok {
				continue
			}

			switch {
			case t.Name == "blockquote" && quote == nil:
				quote = t

			case t.Name == "img" && avatar == nil:
				avatar = t

			case t.Name == "p" && authorName == nil:
				for i, child := range t.Children {
					strong, ok := runemark.IsTag(child)
					if !ok || strong.Name != "strong" {
						continue
					}
					var name strings.Builder
					for _, c := range strong.Children {
						if s, ok := c.(string); ok {
							name.WriteString(s)
						}
					}
					authorName = runemark.NewTag("span", nil, name.String())

					var rest strings.Builder
					for _, c := range t.Children[i+1:] {
						if s, ok := c.(string); ok {
							rest.WriteString(s)
						}
					}
					if role := strings.TrimSpace(leadingDash.ReplaceAllString(rest.String(), "")); role != "" {
						authorRole = runemark.NewTag("span", nil, role)
					}
					break
				}

			case t.Name == "p" && avatar == nil:
				for _, c := range t.Children {
					if img, ok := runemark.IsTag(c); ok && img.Name == "img" {
						avatar = img
						break
					}
				}
			}
		}

		layoutMeta := meta(m.String("layout"))
		properties := map[string]any{}
		var out []any
		if quote != nil {
			properties["quote"] = quote
			out = append(out, quote)
		}
		if authorName != nil {
			properties["authorName"] = authorName
			out = append(out, authorName)
		}
		if authorRole != nil {
			properties["authorRole"] = authorRole
			out = append(out, authorRole)
		}
		if m.Has("rating") {
			ratingMeta := meta(m.Int("rating"))
			properties["rating"] = ratingMeta
			out = append(out, ratingMeta)
		}
		out = append(out, layoutMeta)
		if avatar != nil {
			properties["avatar"] = avatar
			out = append(out, avatar)
		}

		return runemark.CreateComponentRenderable("Testimonial", runemark.ComponentSpec{
			Tag:        "article",
			Properties: properties,
			Children:   out,
		})
	},
})

var testimonialRune = &Rune{
	Name:        "testimonial",
	Schema:      testimonialSchema,
	Description: "A quote card: the blockquote is the quote, bold text names the author with their role after a dash, and an image becomes the avatar.",
	Reinterprets: map[string]string{
		"blockquote": "becomes the quote",
		"strong":     "names the author",
		"image":      "becomes the avatar",
	},
	Type: "Testimonial",
}
