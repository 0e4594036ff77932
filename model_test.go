package runemark_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runemark/runemark"
)

func heading(level int, text string) *runemark.Node {
	return runemark.NewNode("heading", map[string]any{"level": level},
		runemark.NewNode("text", map[string]any{"content": text}))
}

func paragraph(text string) *runemark.Node {
	return runemark.NewNode("paragraph", nil,
		runemark.NewNode("text", map[string]any{"content": text}))
}

func TestCreateSchema_AttributeDefaults(t *testing.T) {
	t.Parallel()
	var captured *runemark.Model
	schema := runemark.CreateSchema(runemark.ModelSpec{
		Fields: []runemark.Field{
			runemark.Attr("title", runemark.AttributeSpec{Type: runemark.StringType, Default: "untitled"}),
			runemark.Attr("split", runemark.AttributeSpec{Type: runemark.SpaceSeparatedNumberList{}}),
		},
		Transform: func(m *runemark.Model) any {
			captured = m
			return nil
		},
	})

	cfg := runemark.NewConfig().WithTag("card", schema)
	node := runemark.NewTagNode("card", map[string]any{"split": "2 1"})
	schema.Transform(node, cfg)

	require.NotNil(t, captured)
	assert.Equal(t, "untitled", captured.String("title"))
	assert.Equal(t, []int{2, 1}, captured.Ints("split"))
	assert.True(t, captured.Has("title"))
	assert.False(t, captured.Has("unknown"))
}

func TestCreateSchema_GroupsClaimSequentially(t *testing.T) {
	t.Parallel()
	var captured *runemark.Model
	schema := runemark.CreateSchema(runemark.ModelSpec{
		Fields: []runemark.Field{
			runemark.Group("header", runemark.GroupOptions{Include: []runemark.NodeFilter{
				runemark.FilterType("heading"),
				runemark.FilterType("paragraph"),
			}}),
			runemark.Group("items", runemark.GroupOptions{Include: []runemark.NodeFilter{
				runemark.FilterType("list"),
			}}),
		},
		Transform: func(m *runemark.Model) any {
			captured = m
			return nil
		},
	})

	node := runemark.NewTagNode("card", nil,
		heading(2, "Title"),
		paragraph("Blurb"),
		runemark.NewNode("list", nil),
		paragraph("Trailing, unclaimed"),
	)
	schema.Transform(node, runemark.NewConfig())

	require.NotNil(t, captured)
	assert.Equal(t, 2, captured.Group("header").Len())
	assert.Equal(t, 1, captured.Group("items").Len())
}

func TestCreateSchema_GroupStopsAtFirstNonMatch(t *testing.T) {
	t.Parallel()
	var captured *runemark.Model
	schema := runemark.CreateSchema(runemark.ModelSpec{
		Fields: []runemark.Field{
			runemark.Group("header", runemark.GroupOptions{Include: []runemark.NodeFilter{
				runemark.FilterType("heading"),
			}}),
		},
		Transform: func(m *runemark.Model) any {
			captured = m
			return nil
		},
	})

	node := runemark.NewTagNode("card", nil,
		paragraph("Not a heading"),
		heading(2, "Never reached"),
	)
	schema.Transform(node, runemark.NewConfig())

	require.NotNil(t, captured)
	assert.Equal(t, 0, captured.Group("header").Len())
}

func TestCreateSchema_GroupAbsorbsComments(t *testing.T) {
	t.Parallel()
	var captured *runemark.Model
	schema := runemark.CreateSchema(runemark.ModelSpec{
		Fields: []runemark.Field{
			runemark.Group("header", runemark.GroupOptions{Include: []runemark.NodeFilter{
				runemark.FilterType("heading"),
			}}),
		},
		Transform: func(m *runemark.Model) any {
			captured = m
			return nil
		},
	})

	node := runemark.NewTagNode("card", nil,
		heading(2, "One"),
		runemark.NewNode("comment", map[string]any{"content": "todo"}),
		heading(3, "Two"),
	)
	schema.Transform(node, runemark.NewConfig())

	require.NotNil(t, captured)
	assert.Equal(t, 3, captured.Group("header").Len())
}

func TestCreateSchema_SectionGroups(t *testing.T) {
	t.Parallel()
	var captured *runemark.Model
	schema := runemark.CreateSchema(runemark.ModelSpec{
		Fields: []runemark.Field{
			runemark.Group("main", runemark.GroupOptions{Section: runemark.Section(0)}),
			runemark.Group("side", runemark.GroupOptions{Section: runemark.Section(1)}),
		},
		Transform: func(m *runemark.Model) any {
			captured = m
			return nil
		},
	})

	node := runemark.NewTagNode("step", nil,
		paragraph("main content"),
		runemark.NewNode("hr", nil),
		paragraph("side content"),
		paragraph("more side"),
	)
	schema.Transform(node, runemark.NewConfig())

	require.NotNil(t, captured)
	assert.Equal(t, 1, captured.Group("main").Len())
	assert.Equal(t, 2, captured.Group("side").Len())
}

func TestCreateSchema_GroupList(t *testing.T) {
	t.Parallel()
	var captured *runemark.Model
	schema := runemark.CreateSchema(runemark.ModelSpec{
		Fields: []runemark.Field{
			runemark.GroupList("tiles", "hr"),
		},
		Transform: func(m *runemark.Model) any {
			captured = m
			return nil
		},
	})

	node := runemark.NewTagNode("grid", nil,
		paragraph("a"),
		runemark.NewNode("hr", nil),
		paragraph("b"),
		paragraph("c"),
		runemark.NewNode("hr", nil),
		paragraph("d"),
	)
	schema.Transform(node, runemark.NewConfig())

	require.NotNil(t, captured)
	tiles := captured.GroupList("tiles")
	require.Len(t, tiles, 3)
	assert.Equal(t, 1, tiles[0].Len())
	assert.Equal(t, 2, tiles[1].Len())
	assert.Equal(t, 1, tiles[2].Len())
}

func TestCreateSchema_GeneratedID(t *testing.T) {
	t.Parallel()
	var captured *runemark.Model
	schema := runemark.CreateSchema(runemark.ModelSpec{
		Fields: []runemark.Field{
			runemark.ID("id", true),
		},
		Transform: func(m *runemark.Model) any {
			captured = m
			return nil
		},
	})

	cfg := runemark.NewConfig()
	schema.Transform(runemark.NewTagNode("tabs", nil), cfg)
	require.NotNil(t, captured)
	assert.Equal(t, "tabs-0", captured.ID("id"))

	schema.Transform(runemark.NewTagNode("tabs", nil), cfg)
	assert.Equal(t, "tabs-1", captured.ID("id"))

	schema.Transform(runemark.NewTagNode("tabs", map[string]any{"id": "custom"}), cfg)
	assert.Equal(t, "custom", captured.ID("id"))
}

func TestCreateSchema_ProcessChildrenRunsBeforeGroups(t *testing.T) {
	t.Parallel()
	var captured *runemark.Model
	schema := runemark.CreateSchema(runemark.ModelSpec{
		Fields: []runemark.Field{
			runemark.Group("items", runemark.GroupOptions{Include: []runemark.NodeFilter{
				runemark.FilterType("list"),
			}}),
		},
		ProcessChildren: func(m *runemark.Model, nodes []*runemark.Node) []*runemark.Node {
			return []*runemark.Node{runemark.NewNode("list", nil, nodes...)}
		},
		Transform: func(m *runemark.Model) any {
			captured = m
			return nil
		},
	})

	node := runemark.NewTagNode("steps", nil, paragraph("a"), paragraph("b"))
	schema.Transform(node, runemark.NewConfig())

	require.NotNil(t, captured)
	assert.Equal(t, 1, captured.Group("items").Len())
}
