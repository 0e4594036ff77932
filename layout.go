package runemark

import (
	"strconv"
	"strings"
)

// GridItem pairs one cell's content with its span.
type GridItem struct {
	Colspan  int
	Rowspan  int
	Children *RenderableNodeCursor
}

// GridLayoutOptions configures GridLayout.
type GridLayoutOptions struct {
	Items   []GridItem
	Columns int
	Rows    int
	Flow    string // "row", "column", "dense", "row dense", "column dense"
}

// GridItems zips a span specification ("colspan" or "colspan:rowspan"
// entries) with per-cell content cursors. Entries without content are
// dropped.
func GridItems(layout []string, content []*RenderableNodeCursor) []GridItem {
	var items []GridItem
	for i, entry := range layout {
		if i >= len(content) || content[i] == nil {
			continue
		}
		c, r := 0, 0
		parts := strings.SplitN(entry, ":", 2)
		c, _ = strconv.Atoi(parts[0])
		if len(parts) == 2 {
			r, _ = strconv.Atoi(parts[1])
		}
		items = append(items, GridItem{Colspan: c, Rowspan: r, Children: content[i]})
	}
	return items
}

// GridLayout wraps each item's content in a spanned div and assembles a
// single grid container tag.
func GridLayout(opts GridLayoutOptions) *Tag {
	var cells []any
	for _, item := range opts.Items {
		attrs := map[string]any{}
		if item.Colspan > 0 {
			attrs["data-colspan"] = item.Colspan
		}
		if item.Rowspan > 0 {
			attrs["data-rowspan"] = item.Rowspan
		}
		cells = append(cells, item.Children.Wrap("div", attrs).ToArray()...)
	}

	attrs := map[string]any{"data-layout": "grid"}
	if opts.Columns > 0 {
		attrs["data-columns"] = opts.Columns
	}
	if opts.Rows > 0 {
		attrs["data-rows"] = opts.Rows
	}
	if opts.Flow != "" {
		attrs["data-flow"] = opts.Flow
	}
	return NewTag("div", attrs, cells...)
}

// SplitLayoutOptions configures SplitLayout.
type SplitLayoutOptions struct {
	// Split gives the two column spans, main then side. Anything other
	// than exactly two entries stacks both regions full-width.
	Split []int

	// Mirror swaps main and side.
	Mirror bool

	Main []any
	Side []any
}

// GridLayoutCursor is a cursor over a single grid container with
// positional access to its cells.
type GridLayoutCursor struct {
	*RenderableNodeCursor
}

// GridItem returns the cell div at index, as a cursor.
func (c *GridLayoutCursor) GridItem(index int) *RenderableNodeCursor {
	root := c.FirstTag()
	if root == nil || index < 0 || index >= len(root.Children) {
		return NewCursor(nil)
	}
	return CursorOf(root.Children[index]).Tag("div")
}

// SplitLayout builds a two-column grid with main content and a side
// region. The container carries data-name="layout" so themes can address
// it structurally.
func SplitLayout(opts SplitLayoutOptions) *GridLayoutCursor {
	columns := 0
	for _, c := range opts.Split {
		columns += c
	}

	wrap := func(layout *Tag) *GridLayoutCursor {
		return &GridLayoutCursor{CursorOf(layout)}
	}

	if len(opts.Split) == 2 {
		first, second := opts.Main, opts.Side
		firstSpan, secondSpan := opts.Split[0], opts.Split[1]
		if opts.Mirror {
			first, second = second, first
			firstSpan, secondSpan = secondSpan, firstSpan
		}
		return wrap(NewTag("div",
			map[string]any{"data-name": "layout", "data-layout": "grid", "data-columns": columns},
			NewTag("div", map[string]any{"data-colspan": firstSpan}, first...),
			NewTag("div", map[string]any{"data-colspan": secondSpan}, second...),
		))
	}

	return wrap(NewTag("div",
		map[string]any{"data-name": "layout", "data-layout": "grid", "data-columns": columns},
		NewTag("div", map[string]any{"data-colspan": 12}, opts.Main...),
		NewTag("div", map[string]any{"data-colspan": 12}, opts.Side...),
	))
}
