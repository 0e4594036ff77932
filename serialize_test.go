package runemark_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runemark/runemark"
)

func TestSerialize(t *testing.T) {
	t.Parallel()

	t.Run("tags carry the type marker recursively", func(t *testing.T) {
		t.Parallel()
		tree := runemark.NewTag("div", map[string]any{"class": "outer"},
			runemark.NewTag("span", nil, "hello"),
			"plain",
		)

		out, ok := runemark.IsSerializedTag(runemark.Serialize(tree))
		require.True(t, ok)
		assert.Equal(t, "Tag", out.MDType)
		assert.Equal(t, "div", out.Name)
		assert.Equal(t, "outer", out.Attributes["class"])
		require.Len(t, out.Children, 2)

		inner, ok := runemark.IsSerializedTag(out.Children[0])
		require.True(t, ok)
		assert.Equal(t, "span", inner.Name)
		assert.Equal(t, []any{"hello"}, inner.Children)
		assert.Equal(t, "plain", out.Children[1])
	})

	t.Run("identity for primitives and nil", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, runemark.Serialize(nil))
		assert.Equal(t, "text", runemark.Serialize("text"))
		assert.Equal(t, 42, runemark.Serialize(42))
		assert.Equal(t, 1.5, runemark.Serialize(1.5))
	})

	t.Run("arrays serialize element-wise", func(t *testing.T) {
		t.Parallel()
		out := runemark.Serialize([]any{runemark.NewTag("p", nil), "x", nil})
		arr, ok := out.([]any)
		require.True(t, ok)
		require.Len(t, arr, 3)
		_, isTag := runemark.IsSerializedTag(arr[0])
		assert.True(t, isTag)
		assert.Equal(t, "x", arr[1])
		assert.Nil(t, arr[2])
	})
}

func TestMakeSerializedTagInitializes(t *testing.T) {
	t.Parallel()
	st := runemark.MakeSerializedTag("p", nil, nil)
	assert.NotNil(t, st.Attributes)
	assert.NotNil(t, st.Children)
	assert.Equal(t, "Tag", st.MDType)
}
