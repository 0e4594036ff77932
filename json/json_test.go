package json_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runemark/runemark"
	runejson "github.com/runemark/runemark/json"
)

func sampleDocument() runemark.Document {
	tree := runemark.Serialize([]any{
		runemark.NewTag("section", map[string]any{"typeof": "Hint", "data-rune": "hint"},
			runemark.NewTag("div", map[string]any{"data-name": "body"}, "watch out", 42, 1.5),
		),
		"trailing text",
	})
	return runemark.Document{
		Path:        "docs/guide.md",
		Theme:       "themes/default.yaml",
		GeneratedAt: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		Headings: []runemark.HeadingInfo{
			{Level: 1, Text: "Guide", ID: "guide"},
		},
		Tree: tree,
	}
}

func TestDocumentRoundTrip(t *testing.T) {
	t.Parallel()
	data, err := runejson.MarshalDocument(sampleDocument())
	require.NoError(t, err)

	doc, err := runejson.UnmarshalDocument(data)
	require.NoError(t, err)

	assert.Equal(t, "docs/guide.md", doc.Path)
	assert.Equal(t, "themes/default.yaml", doc.Theme)
	assert.True(t, doc.GeneratedAt.Equal(time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)))
	require.Len(t, doc.Headings, 1)
	assert.Equal(t, "guide", doc.Headings[0].ID)

	tree, ok := doc.Tree.([]any)
	require.True(t, ok)
	require.Len(t, tree, 2)

	section, ok := runemark.IsSerializedTag(tree[0])
	require.True(t, ok)
	assert.Equal(t, "section", section.Name)
	assert.Equal(t, "Hint", section.Attributes["typeof"])

	body, ok := runemark.IsSerializedTag(section.Children[0])
	require.True(t, ok)
	assert.Equal(t, "watch out", body.Children[0])
	// JSON numbers come back as float64.
	assert.Equal(t, float64(42), body.Children[1])
	assert.Equal(t, 1.5, body.Children[2])

	assert.Equal(t, "trailing text", tree[1])
}

func TestUnmarshalRejectsUnknownVersion(t *testing.T) {
	t.Parallel()
	_, err := runejson.UnmarshalDocument([]byte(`{"version": 2, "path": "x", "tree": null}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported envelope version: 2")
}

func TestUnmarshalRejectsGarbage(t *testing.T) {
	t.Parallel()
	_, err := runejson.UnmarshalDocument([]byte("not json"))
	assert.Error(t, err)
}

func TestPlainObjectsAreNotTags(t *testing.T) {
	t.Parallel()
	data, err := runejson.MarshalDocument(runemark.Document{
		Path: "x.md",
		Tree: map[string]any{"name": "looks like a tag"},
	})
	require.NoError(t, err)

	doc, err := runejson.UnmarshalDocument(data)
	require.NoError(t, err)
	_, isTag := runemark.IsSerializedTag(doc.Tree)
	assert.False(t, isTag)
}

func TestSaveAndLoad(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "out", "nested", "doc.json")

	require.NoError(t, runejson.Save(path, sampleDocument()))

	// The temp file from the atomic write is gone.
	_, err := os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))

	doc, err := runejson.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "docs/guide.md", doc.Path)

	_, err = runejson.Load(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}
