package markdown_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runemark/runemark"
	"github.com/runemark/runemark/markdown"
)

func TestParseTagBlocks(t *testing.T) {
	t.Parallel()

	t.Run("open and close nest markdown content", func(t *testing.T) {
		t.Parallel()
		doc := markdown.Parse("{% hint kind=\"note\" %}\nHello **world**\n{% /hint %}")

		require.Len(t, doc.Children, 1)
		hint := doc.Children[0]
		assert.Equal(t, "tag", hint.Type)
		assert.Equal(t, "hint", hint.Tag)
		assert.Equal(t, "note", hint.Attributes["kind"])
		assert.Equal(t, [2]int{0, 3}, hint.Lines)

		require.Len(t, hint.Children, 1)
		para := hint.Children[0]
		assert.Equal(t, "paragraph", para.Type)
		require.Len(t, para.Children, 2)
		assert.Equal(t, "text", para.Children[0].Type)
		assert.Equal(t, "strong", para.Children[1].Type)
	})

	t.Run("tags nest inside tags", func(t *testing.T) {
		t.Parallel()
		doc := markdown.Parse("{% tabs %}\n{% tab label=\"One\" %}\nbody\n{% /tab %}\n{% /tabs %}")

		require.Len(t, doc.Children, 1)
		tabs := doc.Children[0]
		require.Len(t, tabs.Children, 1)
		tab := tabs.Children[0]
		assert.Equal(t, "tab", tab.Tag)
		assert.Equal(t, "One", tab.Attributes["label"])
	})

	t.Run("self-closing tag takes one line", func(t *testing.T) {
		t.Parallel()
		doc := markdown.Parse("before\n\n{% toc depth=2 /%}\n\nafter")

		require.Len(t, doc.Children, 3)
		toc := doc.Children[1]
		assert.Equal(t, "toc", toc.Tag)
		assert.Equal(t, 2, toc.Attributes["depth"])
		assert.Equal(t, [2]int{2, 3}, toc.Lines)
	})

	t.Run("unbalanced closer becomes an error node", func(t *testing.T) {
		t.Parallel()
		doc := markdown.Parse("{% /hint %}")

		require.Len(t, doc.Children, 1)
		assert.Equal(t, "error", doc.Children[0].Type)
		assert.Contains(t, doc.Children[0].String("message"), "'hint'")
	})

	t.Run("unclosed tag keeps content and reports the defect", func(t *testing.T) {
		t.Parallel()
		doc := markdown.Parse("{% hint %}\nstill inside")

		require.Len(t, doc.Children, 2)
		hint := doc.Children[0]
		assert.Equal(t, "hint", hint.Tag)
		require.Len(t, hint.Children, 1)
		assert.Equal(t, "paragraph", hint.Children[0].Type)
		assert.Equal(t, [2]int{0, 2}, hint.Lines)

		errNode := doc.Children[1]
		assert.Equal(t, "error", errNode.Type)
		assert.Contains(t, errNode.String("message"), "never closed")
	})

	t.Run("tag markers inside fences are content", func(t *testing.T) {
		t.Parallel()
		doc := markdown.Parse("```md\n{% hint %}\n```")

		require.Len(t, doc.Children, 1)
		fence := doc.Children[0]
		assert.Equal(t, "fence", fence.Type)
		assert.Contains(t, fence.String("content"), "{% hint %}")
	})
}

func TestParseTagAttributeForms(t *testing.T) {
	t.Parallel()
	doc := markdown.Parse(`{% card title="He said \"hi\"" width=3 ratio=1.5 open=true unset=null align=top-left #main .one .two /%}`)

	require.Len(t, doc.Children, 1)
	attrs := doc.Children[0].Attributes

	assert.Equal(t, `He said "hi"`, attrs["title"])
	assert.Equal(t, 3, attrs["width"])
	assert.Equal(t, 1.5, attrs["ratio"])
	assert.Equal(t, true, attrs["open"])
	assert.Equal(t, "top-left", attrs["align"])
	assert.Equal(t, "main", attrs["id"])
	assert.Equal(t, "one two", attrs["class"])

	v, present := attrs["unset"]
	assert.True(t, present)
	assert.Nil(t, v)
}

func TestParseMarkdownConstructs(t *testing.T) {
	t.Parallel()

	t.Run("heading levels", func(t *testing.T) {
		t.Parallel()
		doc := markdown.Parse("## Setup")
		require.Len(t, doc.Children, 1)
		h := doc.Children[0]
		assert.Equal(t, "heading", h.Type)
		assert.Equal(t, 2, h.Int("level"))
		assert.Equal(t, "Setup", h.Text())
	})

	t.Run("image-only paragraph is hoisted", func(t *testing.T) {
		t.Parallel()
		doc := markdown.Parse("![a chart](chart.png)")
		require.Len(t, doc.Children, 1)
		img := doc.Children[0]
		assert.Equal(t, "image", img.Type)
		assert.Equal(t, "chart.png", img.String("src"))
		assert.Equal(t, "a chart", img.String("alt"))
	})

	t.Run("ordered list with explicit start", func(t *testing.T) {
		t.Parallel()
		doc := markdown.Parse("2. two\n3. three")
		require.Len(t, doc.Children, 1)
		list := doc.Children[0]
		assert.Equal(t, "list", list.Type)
		assert.Equal(t, true, list.Attributes["ordered"])
		assert.Equal(t, 2, list.Attributes["start"])
		require.Len(t, list.Children, 2)
		assert.Equal(t, "item", list.Children[0].Type)
	})

	t.Run("unordered list omits start", func(t *testing.T) {
		t.Parallel()
		doc := markdown.Parse("- a\n- b")
		list := doc.Children[0]
		assert.Equal(t, false, list.Attributes["ordered"])
		_, has := list.Attributes["start"]
		assert.False(t, has)
	})

	t.Run("blockquote", func(t *testing.T) {
		t.Parallel()
		doc := markdown.Parse("> quoted")
		require.Len(t, doc.Children, 1)
		bq := doc.Children[0]
		assert.Equal(t, "blockquote", bq.Type)
		require.Len(t, bq.Children, 1)
		assert.Equal(t, "paragraph", bq.Children[0].Type)
	})

	t.Run("thematic break", func(t *testing.T) {
		t.Parallel()
		doc := markdown.Parse("before\n\n***\n\nafter")
		require.Len(t, doc.Children, 3)
		assert.Equal(t, "hr", doc.Children[1].Type)
	})

	t.Run("fence keeps language and falls back to shell", func(t *testing.T) {
		t.Parallel()
		doc := markdown.Parse("```go\nfmt.Println()\n```\n\n```\nls -la\n```")
		require.Len(t, doc.Children, 2)
		assert.Equal(t, "go", doc.Children[0].String("language"))
		assert.Equal(t, "fmt.Println()\n", doc.Children[0].String("content"))
		assert.Equal(t, "shell", doc.Children[1].String("language"))
	})

	t.Run("fence content keeps every line", func(t *testing.T) {
		t.Parallel()
		doc := markdown.Parse("```go\nfunc main() {\n\tfmt.Println()\n}\n```")
		require.Len(t, doc.Children, 1)
		assert.Equal(t, "func main() {\n\tfmt.Println()\n}\n", doc.Children[0].String("content"))
	})

	t.Run("indented code block reads as a shell fence", func(t *testing.T) {
		t.Parallel()
		doc := markdown.Parse("intro\n\n    ls -la\n    pwd\n")
		require.Len(t, doc.Children, 2)
		fence := doc.Children[1]
		assert.Equal(t, "fence", fence.Type)
		assert.Equal(t, "shell", fence.String("language"))
		assert.Equal(t, "ls -la\npwd\n", fence.String("content"))
	})

	t.Run("table splits header and body", func(t *testing.T) {
		t.Parallel()
		doc := markdown.Parse("| Name | Score |\n| --- | --- |\n| Ada | 10 |")
		require.Len(t, doc.Children, 1)
		table := doc.Children[0]
		assert.Equal(t, "table", table.Type)
		require.Len(t, table.Children, 2)
		assert.Equal(t, "thead", table.Children[0].Type)
		assert.Equal(t, "tbody", table.Children[1].Type)
		assert.Equal(t, "Name Score", table.Children[0].Text())
	})

	t.Run("html comment becomes a comment node", func(t *testing.T) {
		t.Parallel()
		doc := markdown.Parse("<!-- revisit this -->")
		require.Len(t, doc.Children, 1)
		assert.Equal(t, "comment", doc.Children[0].Type)
		assert.Equal(t, "revisit this", doc.Children[0].String("content"))
	})

	t.Run("emphasis and links", func(t *testing.T) {
		t.Parallel()
		doc := markdown.Parse("*em* and [docs](https://example.com \"Docs\")")
		para := doc.Children[0]
		assert.Equal(t, "em", para.Children[0].Type)
		var link *runemark.Node
		for _, c := range para.Children {
			if c.Type == "link" {
				link = c
			}
		}
		require.NotNil(t, link)
		assert.Equal(t, "https://example.com", link.String("href"))
		assert.Equal(t, "Docs", link.String("title"))
		assert.Equal(t, "docs", link.Text())
	})

	t.Run("inline code", func(t *testing.T) {
		t.Parallel()
		doc := markdown.Parse("run `go vet` first")
		para := doc.Children[0]
		var code *runemark.Node
		for _, c := range para.Children {
			if c.Type == "code" {
				code = c
			}
		}
		require.NotNil(t, code)
		assert.Equal(t, "go vet", code.String("content"))
	})
}

func TestParseBlocksOmitsDocumentWrapper(t *testing.T) {
	t.Parallel()
	blocks := markdown.ParseBlocks("one\n\ntwo")
	require.Len(t, blocks, 2)
	assert.Equal(t, "paragraph", blocks[0].Type)
}
