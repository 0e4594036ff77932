package runemark_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runemark/runemark"
)

func TestGridItems(t *testing.T) {
	t.Parallel()

	content := []*runemark.RenderableNodeCursor{
		runemark.CursorOf(runemark.NewTag("p", nil, "a")),
		runemark.CursorOf(runemark.NewTag("p", nil, "b")),
	}

	t.Run("colspan and colspan:rowspan entries", func(t *testing.T) {
		t.Parallel()
		items := runemark.GridItems([]string{"2", "1:3"}, content)
		require.Len(t, items, 2)
		assert.Equal(t, 2, items[0].Colspan)
		assert.Equal(t, 0, items[0].Rowspan)
		assert.Equal(t, 1, items[1].Colspan)
		assert.Equal(t, 3, items[1].Rowspan)
	})

	t.Run("entries without content are dropped", func(t *testing.T) {
		t.Parallel()
		items := runemark.GridItems([]string{"2", "1", "1"}, content)
		assert.Len(t, items, 2)
	})
}

func TestGridLayout(t *testing.T) {
	t.Parallel()
	grid := runemark.GridLayout(runemark.GridLayoutOptions{
		Items: runemark.GridItems([]string{"2:1", "1"}, []*runemark.RenderableNodeCursor{
			runemark.CursorOf(runemark.NewTag("p", nil, "left")),
			runemark.CursorOf(runemark.NewTag("p", nil, "right")),
		}),
		Columns: 3,
		Flow:    "dense",
	})

	assert.Equal(t, "grid", grid.Attributes["data-layout"])
	assert.Equal(t, 3, grid.Attributes["data-columns"])
	assert.Equal(t, "dense", grid.Attributes["data-flow"])

	require.Len(t, grid.Children, 2)
	first, _ := runemark.IsTag(grid.Children[0])
	assert.Equal(t, 2, first.Attributes["data-colspan"])
	assert.Equal(t, 1, first.Attributes["data-rowspan"])
}

func TestSplitLayout(t *testing.T) {
	t.Parallel()
	main := []any{runemark.NewTag("p", nil, "main")}
	side := []any{runemark.NewTag("aside", nil, "side")}

	t.Run("two-entry split assigns spans in order", func(t *testing.T) {
		t.Parallel()
		layout := runemark.SplitLayout(runemark.SplitLayoutOptions{
			Split: []int{2, 1},
			Main:  main,
			Side:  side,
		})

		root := layout.FirstTag()
		require.NotNil(t, root)
		assert.Equal(t, "layout", root.Attributes["data-name"])
		assert.Equal(t, 3, root.Attributes["data-columns"])

		first := layout.GridItem(0).FirstTag()
		require.NotNil(t, first)
		assert.Equal(t, 2, first.Attributes["data-colspan"])
		assert.Equal(t, "main", runemark.TagText(first))
	})

	t.Run("mirror swaps regions and spans", func(t *testing.T) {
		t.Parallel()
		layout := runemark.SplitLayout(runemark.SplitLayoutOptions{
			Split:  []int{2, 1},
			Mirror: true,
			Main:   main,
			Side:   side,
		})

		first := layout.GridItem(0).FirstTag()
		require.NotNil(t, first)
		assert.Equal(t, 1, first.Attributes["data-colspan"])
		assert.Equal(t, "side", runemark.TagText(first))
	})

	t.Run("no split stacks both regions full-width", func(t *testing.T) {
		t.Parallel()
		layout := runemark.SplitLayout(runemark.SplitLayoutOptions{Main: main, Side: side})

		first := layout.GridItem(0).FirstTag()
		second := layout.GridItem(1).FirstTag()
		require.NotNil(t, first)
		require.NotNil(t, second)
		assert.Equal(t, 12, first.Attributes["data-colspan"])
		assert.Equal(t, 12, second.Attributes["data-colspan"])
	})

	t.Run("out-of-range cells come back empty", func(t *testing.T) {
		t.Parallel()
		layout := runemark.SplitLayout(runemark.SplitLayoutOptions{Main: main, Side: side})
		assert.Equal(t, 0, layout.GridItem(5).Count())
	})
}
