package theme_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runemark/runemark"
	"github.com/runemark/runemark/theme"
)

const starSVG = `<svg viewBox="0 0 24 24"><path d="M12 2l3 7h7"/></svg>`

func newRegistry() *theme.IconRegistry {
	return theme.NewIconRegistry(map[string]map[string]string{
		"ui":     {"star": starSVG},
		"global": {"dot": starSVG},
	})
}

func TestIconRegistry(t *testing.T) {
	t.Parallel()

	t.Run("source lookup", func(t *testing.T) {
		t.Parallel()
		reg := newRegistry()
		assert.Equal(t, starSVG, reg.Source("ui", "star"))
		assert.Equal(t, "", reg.Source("ui", "absent"))
		assert.Equal(t, "", reg.Source("absent", "star"))
	})

	t.Run("renderable parses and stamps the icon", func(t *testing.T) {
		t.Parallel()
		reg := newRegistry()
		tag := reg.Renderable("ui", "star")
		require.NotNil(t, tag)
		assert.Equal(t, "svg", tag.Name)
		assert.Equal(t, "ui/star", tag.Attributes["data-icon"])
	})

	t.Run("returned trees are independent clones", func(t *testing.T) {
		t.Parallel()
		reg := newRegistry()
		first := reg.Renderable("ui", "star")
		first.Attributes["class"] = "mutated"
		first.Children = nil

		second := reg.Renderable("ui", "star")
		assert.Equal(t, "rf-icon", second.Attributes["class"])
		assert.NotEmpty(t, second.Children)
	})

	t.Run("unknown icon is nil", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, newRegistry().Renderable("ui", "absent"))
	})
}

func TestInlineIcons(t *testing.T) {
	t.Parallel()

	t.Run("fills empty placeholders", func(t *testing.T) {
		t.Parallel()
		tree := runemark.NewTag("section", nil,
			runemark.NewTag("span", map[string]any{"data-icon": "ui/star"}),
		)

		out := theme.InlineIcons(tree, newRegistry()).(*runemark.Tag)
		placeholder, _ := runemark.IsTag(out.Children[0])
		require.Len(t, placeholder.Children, 1)
		svg, ok := runemark.IsTag(placeholder.Children[0])
		require.True(t, ok)
		assert.Equal(t, "svg", svg.Name)
	})

	t.Run("bare names resolve in the global group", func(t *testing.T) {
		t.Parallel()
		tree := runemark.NewTag("span", map[string]any{"data-icon": "dot"})
		out := theme.InlineIcons(tree, newRegistry()).(*runemark.Tag)
		require.Len(t, out.Children, 1)
	})

	t.Run("unresolvable placeholders pass through", func(t *testing.T) {
		t.Parallel()
		tree := runemark.NewTag("span", map[string]any{"data-icon": "ui/absent"})
		out := theme.InlineIcons(tree, newRegistry()).(*runemark.Tag)
		assert.Empty(t, out.Children)
	})

	t.Run("placeholders with children are left alone", func(t *testing.T) {
		t.Parallel()
		tree := runemark.NewTag("span", map[string]any{"data-icon": "ui/star"}, "already filled")
		out := theme.InlineIcons(tree, newRegistry()).(*runemark.Tag)
		assert.Equal(t, []any{"already filled"}, out.Children)
	})

	t.Run("nil registry is the identity", func(t *testing.T) {
		t.Parallel()
		tree := runemark.NewTag("span", map[string]any{"data-icon": "ui/star"})
		assert.Same(t, tree, theme.InlineIcons(tree, nil).(*runemark.Tag))
	})
}
