package runes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runemark/runemark"
	"github.com/runemark/runemark/markdown"
	"github.com/runemark/runemark/runes"
)

// render runs source through the full pipeline with the built-in runes.
func render(t *testing.T, source string, variables map[string]any) []any {
	t.Helper()
	doc := markdown.Parse(source)
	return runemark.Transform(doc.Children, runes.NewConfig(variables))
}

func rootTag(t *testing.T, out []any) *runemark.Tag {
	t.Helper()
	require.NotEmpty(t, out)
	tag, ok := runemark.IsTag(out[0])
	require.True(t, ok)
	return tag
}

// property finds the descendant carrying the given property attribute.
func property(root *runemark.Tag, name string) *runemark.Tag {
	for _, n := range runemark.WalkTag(root) {
		if tag, ok := runemark.IsTag(n); ok && tag.Attributes["property"] == name {
			return tag
		}
	}
	return nil
}

// ref finds the descendant carrying the given data-name attribute.
func ref(root *runemark.Tag, name string) *runemark.Tag {
	for _, n := range runemark.WalkTag(root) {
		if tag, ok := runemark.IsTag(n); ok && tag.Attributes["data-name"] == name {
			return tag
		}
	}
	return nil
}

func typeofTags(root *runemark.Tag, typeName string) []*runemark.Tag {
	var out []*runemark.Tag
	for _, n := range runemark.WalkTag(root) {
		if tag, ok := runemark.IsTag(n); ok && tag.Typeof() == typeName {
			out = append(out, tag)
		}
	}
	return out
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	t.Run("lookup by name and alias resolves the same rune", func(t *testing.T) {
		t.Parallel()
		byName := runes.Get("hint")
		require.NotNil(t, byName)
		assert.Same(t, byName, runes.Get("callout"))
		assert.Same(t, byName, runes.Get("alert"))
		assert.Nil(t, runes.Get("nonsense"))
	})

	t.Run("tag map binds aliases to the primary schema", func(t *testing.T) {
		t.Parallel()
		tags := runes.TagMap(runes.All())
		assert.Same(t, tags["cta"], tags["call-to-action"])
		assert.Same(t, tags["grid"], tags["columns"])
		assert.Contains(t, tags, "accordion-item")
	})

	t.Run("every rune has a name and schema", func(t *testing.T) {
		t.Parallel()
		for _, r := range runes.All() {
			assert.NotEmpty(t, r.Name)
			assert.NotNil(t, r.Schema, r.Name)
		}
	})

	t.Run("new config carries variables and an id generator", func(t *testing.T) {
		t.Parallel()
		cfg := runes.NewConfig(map[string]any{"__source": "x"})
		assert.Equal(t, "x", cfg.Variables["__source"])
		assert.NotNil(t, cfg.IDs)
		assert.NotNil(t, cfg.Tag("hint"))

		assert.NotNil(t, runes.NewConfig(nil).Variables)
	})
}

func TestHintRune(t *testing.T) {
	t.Parallel()
	out := render(t, "{% hint type=\"warning\" %}\nBe careful.\n{% /hint %}", nil)

	root := rootTag(t, out)
	assert.Equal(t, "section", root.Name)
	assert.Equal(t, "Hint", root.Typeof())
	assert.Equal(t, "contentSection", root.Attributes["property"])

	hintType := property(root, "hintType")
	require.NotNil(t, hintType)
	assert.Equal(t, "warning", hintType.Attributes["content"])

	body := ref(root, "body")
	require.NotNil(t, body)
	assert.Contains(t, runemark.TagText(body), "Be careful.")
}

func TestAccordionHeadingsBecomeItems(t *testing.T) {
	t.Parallel()
	out := render(t, "{% accordion %}\nIntro copy.\n\n## First\nAlpha\n\n## Second\nBeta\n{% /accordion %}", nil)

	root := rootTag(t, out)
	assert.Equal(t, "Accordion", root.Typeof())

	items := typeofTags(root, "AccordionItem")
	require.Len(t, items, 2)
	name := property(items[0], "name")
	require.NotNil(t, name)
	assert.Equal(t, "First", runemark.TagText(name))
}

func TestEmbedProviderDetection(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		url      string
		provider string
		embedURL string
		kind     string
	}{
		{"youtube watch", "https://www.youtube.com/watch?v=abc123", "youtube", "https://www.youtube-nocookie.com/embed/abc123", "video"},
		{"youtube short link", "https://youtu.be/abc123", "youtube", "https://www.youtube-nocookie.com/embed/abc123", "video"},
		{"vimeo", "https://vimeo.com/12345", "vimeo", "https://player.vimeo.com/video/12345", "video"},
		{"codepen", "https://codepen.io/u/pen/xyz", "codepen", "https://codepen.io/u/embed/xyz", "codepen"},
		{"unknown host", "https://example.com/media", "generic", "https://example.com/media", "generic"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			out := render(t, "{% embed url=\""+tc.url+"\" /%}", nil)
			root := rootTag(t, out)
			assert.Equal(t, "Embed", root.Typeof())
			assert.Equal(t, tc.provider, property(root, "provider").Attributes["content"])
			assert.Equal(t, tc.embedURL, property(root, "embedUrl").Attributes["content"])
			assert.Equal(t, tc.kind, property(root, "type").Attributes["content"])
		})
	}
}

func TestDetailsRune(t *testing.T) {
	t.Parallel()

	t.Run("summary and open attribute", func(t *testing.T) {
		t.Parallel()
		out := render(t, "{% details summary=\"More info\" open=true %}\nHidden body.\n{% /details %}", nil)
		root := rootTag(t, out)
		assert.Equal(t, "details", root.Name)
		assert.Equal(t, true, root.Attributes["open"])
		assert.Contains(t, runemark.TagText(root), "More info")
	})

	t.Run("summary falls back to a default label", func(t *testing.T) {
		t.Parallel()
		out := render(t, "{% details %}\nBody.\n{% /details %}", nil)
		root := rootTag(t, out)
		_, hasOpen := root.Attributes["open"]
		assert.False(t, hasOpen)
		assert.Contains(t, runemark.TagText(root), "Details")
	})
}

func TestTOCReadsExtractedHeadings(t *testing.T) {
	t.Parallel()
	headings := []runemark.HeadingInfo{
		{Level: 1, Text: "Title", ID: "title"},
		{Level: 2, Text: "Setup", ID: "setup"},
		{Level: 3, Text: "Install", ID: "install"},
		{Level: 4, Text: "Too deep", ID: "too-deep"},
	}

	out := render(t, "{% toc depth=2 /%}", map[string]any{"__headings": headings})
	root := rootTag(t, out)
	assert.Equal(t, "TableOfContents", root.Typeof())

	list := ref(root, "list")
	require.NotNil(t, list)
	// Only h2..h3 fall inside depth 2; h1 and h4 are skipped.
	assert.Len(t, list.Children, 2)
	text := runemark.TagText(list)
	assert.Contains(t, text, "Setup")
	assert.Contains(t, text, "Install")
	assert.NotContains(t, text, "Title")
}
