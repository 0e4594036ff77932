package theme_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runemark/runemark"
	"github.com/runemark/runemark/theme"
)

func metaTag(property string, content any) *runemark.Tag {
	return runemark.NewTag("meta", map[string]any{"property": property, "content": content})
}

func hintConfig() *theme.Config {
	return &theme.Config{
		Prefix: "rf",
		Runes: map[string]theme.RuneConfig{
			"Hint": {
				Block: "hint",
				Modifiers: map[string]theme.Modifier{
					"hintType": {Source: "meta", Default: "note"},
				},
			},
		},
	}
}

func hintTree(hintType string) *runemark.Tag {
	return runemark.NewTag("section", map[string]any{"typeof": "Hint"},
		metaTag("hintType", hintType),
		runemark.NewTag("div", map[string]any{"data-name": "body"}, "watch out"),
	)
}

func TestTransformBlockAndModifiers(t *testing.T) {
	t.Parallel()
	transform := theme.NewTransform(hintConfig())

	out := transform(hintTree("warning")).(*runemark.Tag)
	assert.Equal(t, "rf-hint rf-hint--warning", out.Attributes["class"])
	assert.Equal(t, "warning", out.Attributes["data-hint-type"])
	assert.Equal(t, "hint", out.Attributes["data-rune"])

	// The consumed meta is gone; the body got its element class.
	require.Len(t, out.Children, 1)
	body, isTag := runemark.IsTag(out.Children[0])
	require.True(t, isTag)
	assert.Equal(t, "rf-hint__body", body.Attributes["class"])
}

func TestTransformDoesNotMutateInput(t *testing.T) {
	t.Parallel()
	transform := theme.NewTransform(hintConfig())
	in := hintTree("warning")

	transform(in)

	assert.Nil(t, in.Attributes["class"])
	assert.Len(t, in.Children, 2)
}

func TestTransformMetaDefault(t *testing.T) {
	t.Parallel()
	transform := theme.NewTransform(hintConfig())
	tree := runemark.NewTag("section", map[string]any{"typeof": "Hint"})

	out := transform(tree).(*runemark.Tag)
	assert.Equal(t, "rf-hint rf-hint--note", out.Attributes["class"])
}

func TestTransformAttributeModifier(t *testing.T) {
	t.Parallel()
	cfg := &theme.Config{
		Prefix: "rf",
		Runes: map[string]theme.RuneConfig{
			"Figure": {
				Block: "figure",
				Modifiers: map[string]theme.Modifier{
					"align": {Source: "attribute", Default: "center"},
				},
			},
		},
	}
	transform := theme.NewTransform(cfg)

	withAttr := transform(runemark.NewTag("figure",
		map[string]any{"typeof": "Figure", "align": "left"})).(*runemark.Tag)
	assert.Equal(t, "rf-figure rf-figure--left", withAttr.Attributes["class"])

	withDefault := transform(runemark.NewTag("figure",
		map[string]any{"typeof": "Figure"})).(*runemark.Tag)
	assert.Equal(t, "rf-figure rf-figure--center", withDefault.Attributes["class"])
}

func TestTransformContextAndStaticModifiers(t *testing.T) {
	t.Parallel()
	cfg := &theme.Config{
		Prefix: "rf",
		Runes: map[string]theme.RuneConfig{
			"Hero": {Block: "hero"},
			"CallToAction": {
				Block:            "cta",
				ContextModifiers: map[string]string{"Hero": "in-hero"},
				StaticModifiers:  []string{"elevated"},
			},
		},
	}
	transform := theme.NewTransform(cfg)

	nested := runemark.NewTag("section", map[string]any{"typeof": "Hero"},
		runemark.NewTag("div", map[string]any{"typeof": "CallToAction"}),
	)
	out := transform(nested).(*runemark.Tag)
	cta, ok := runemark.IsTag(out.Children[0])
	require.True(t, ok)
	assert.Equal(t, "rf-cta rf-cta--in-hero rf-cta--elevated", cta.Attributes["class"])

	// Standalone, only the static modifier applies.
	alone := transform(runemark.NewTag("div", map[string]any{"typeof": "CallToAction"})).(*runemark.Tag)
	assert.Equal(t, "rf-cta rf-cta--elevated", alone.Attributes["class"])
}

func TestTransformAutoLabel(t *testing.T) {
	t.Parallel()
	cfg := &theme.Config{
		Prefix: "rf",
		Runes: map[string]theme.RuneConfig{
			"Quote": {
				Block: "quote",
				AutoLabel: map[string]string{
					"blockquote":  "body",
					"attribution": "source",
				},
			},
		},
	}
	transform := theme.NewTransform(cfg)

	tree := runemark.NewTag("figure", map[string]any{"typeof": "Quote"},
		runemark.NewTag("blockquote", nil, "words"),
		runemark.NewTag("cite", map[string]any{"property": "attribution"}, "someone"),
		runemark.NewTag("span", map[string]any{"data-name": "existing"}),
	)
	out := transform(tree).(*runemark.Tag)

	body, _ := runemark.IsTag(out.Children[0])
	assert.Equal(t, "body", body.Attributes["data-name"])
	assert.Equal(t, "rf-quote__body", body.Attributes["class"])

	source, _ := runemark.IsTag(out.Children[1])
	assert.Equal(t, "source", source.Attributes["data-name"])

	existing, _ := runemark.IsTag(out.Children[2])
	assert.Equal(t, "existing", existing.Attributes["data-name"])
	assert.Equal(t, "rf-quote__existing", existing.Attributes["class"])
}

func TestTransformStructureInjection(t *testing.T) {
	t.Parallel()

	newConfig := func(entries ...any) *theme.Config {
		return &theme.Config{
			Prefix: "rf",
			Runes: map[string]theme.RuneConfig{
				"Recording": {
					Block: "recording",
					Modifiers: map[string]theme.Modifier{
						"duration": {Source: "meta"},
						"kind":     {Source: "meta"},
					},
					Structure: theme.NewStructure(entries...),
				},
			},
		}
	}

	tree := func() *runemark.Tag {
		return runemark.NewTag("article", map[string]any{"typeof": "Recording"},
			metaTag("duration", "PT1H2M3S"),
			metaTag("kind", "live"),
			runemark.NewTag("p", nil, "notes"),
		)
	}

	t.Run("before and after placement with element classes", func(t *testing.T) {
		t.Parallel()
		transform := theme.NewTransform(newConfig(
			"frame", theme.StructureEntry{Tag: "div", Before: true},
			"footer", theme.StructureEntry{Tag: "footer"},
		))
		out := transform(tree()).(*runemark.Tag)

		require.Len(t, out.Children, 3)
		frame, _ := runemark.IsTag(out.Children[0])
		assert.Equal(t, "div", frame.Name)
		assert.Equal(t, "frame", frame.Attributes["data-name"])
		assert.Equal(t, "rf-recording__frame", frame.Attributes["class"])
		footer, _ := runemark.IsTag(out.Children[2])
		assert.Equal(t, "footer", footer.Attributes["data-name"])
	})

	t.Run("condition gates on a resolved modifier", func(t *testing.T) {
		t.Parallel()
		transform := theme.NewTransform(newConfig(
			"badge", theme.StructureEntry{Tag: "span", Condition: "missing"},
			"kindBadge", theme.StructureEntry{Tag: "span", Condition: "kind"},
		))
		out := transform(tree()).(*runemark.Tag)

		assert.Nil(t, findDataName(out, "badge"))
		assert.NotNil(t, findDataName(out, "kindBadge"))
	})

	t.Run("meta text with duration transform and affixes", func(t *testing.T) {
		t.Parallel()
		transform := theme.NewTransform(newConfig(
			"time", theme.StructureEntry{
				Tag:        "time",
				MetaText:   "duration",
				Transform:  "duration",
				TextPrefix: "(",
				TextSuffix: ")",
			},
		))
		out := transform(tree()).(*runemark.Tag)

		el := findDataName(out, "time")
		require.NotNil(t, el)
		assert.Equal(t, []any{"(1h 2m 3s)"}, el.Children)
	})

	t.Run("icon entries stay empty and carry the reference", func(t *testing.T) {
		t.Parallel()
		transform := theme.NewTransform(newConfig(
			"playIcon", theme.StructureEntry{
				Tag:  "span",
				Icon: &theme.IconRef{Group: "media", Variant: "kind"},
			},
		))
		out := transform(tree()).(*runemark.Tag)

		el := findDataName(out, "playIcon")
		require.NotNil(t, el)
		assert.Empty(t, el.Children)
		// The variant resolves through the "kind" modifier value.
		assert.Equal(t, "media/live", el.Attributes["data-icon"])
	})

	t.Run("attrs take literals or modifier values", func(t *testing.T) {
		t.Parallel()
		transform := theme.NewTransform(newConfig(
			"player", theme.StructureEntry{
				Tag: "div",
				Attrs: map[string]theme.StructureAttr{
					"role":          {Value: "group"},
					"data-duration": {FromModifier: "duration"},
				},
			},
		))
		out := transform(tree()).(*runemark.Tag)

		el := findDataName(out, "player")
		require.NotNil(t, el)
		assert.Equal(t, "group", el.Attributes["role"])
		assert.Equal(t, "PT1H2M3S", el.Attributes["data-duration"])
	})
}

func TestTransformContentWrapper(t *testing.T) {
	t.Parallel()
	cfg := hintConfig()
	rc := cfg.Runes["Hint"]
	rc.ContentWrapper = &struct {
		Tag string `yaml:"tag"`
		Ref string `yaml:"ref"`
	}{Tag: "div", Ref: "inner"}
	cfg.Runes["Hint"] = rc

	out := theme.NewTransform(cfg)(hintTree("note")).(*runemark.Tag)

	require.Len(t, out.Children, 1)
	wrapper, _ := runemark.IsTag(out.Children[0])
	assert.Equal(t, "inner", wrapper.Attributes["data-name"])
	assert.Equal(t, "rf-hint__inner", wrapper.Attributes["class"])
}

func TestTransformStylesAndRootAttributes(t *testing.T) {
	t.Parallel()
	cfg := &theme.Config{
		Prefix: "rf",
		Runes: map[string]theme.RuneConfig{
			"Swatch": {
				Block: "swatch",
				Modifiers: map[string]theme.Modifier{
					"color": {Source: "attribute"},
					"size":  {Source: "attribute"},
				},
				Styles: map[string]theme.StyleSpec{
					"color": {Prop: "--swatch-color"},
					"size":  {Prop: "width", Template: "{}px"},
				},
				RootAttributes: map[string]string{"role": "img"},
			},
		},
	}
	transform := theme.NewTransform(cfg)

	out := transform(runemark.NewTag("div",
		map[string]any{"typeof": "Swatch", "color": "#fff", "size": "32"})).(*runemark.Tag)

	assert.Equal(t, "--swatch-color: #fff; width: 32px", out.Attributes["style"])
	assert.Equal(t, "img", out.Attributes["role"])
}

func TestTransformPostTransformHook(t *testing.T) {
	t.Parallel()
	cfg := hintConfig()
	rc := cfg.Runes["Hint"]
	rc.PostTransform = func(tag *runemark.Tag, ctx theme.PostContext) *runemark.Tag {
		tag.Attributes["data-seen"] = ctx.Modifiers["hintType"]
		return tag
	}
	cfg.Runes["Hint"] = rc

	out := theme.NewTransform(cfg)(hintTree("caution")).(*runemark.Tag)
	assert.Equal(t, "caution", out.Attributes["data-seen"])
}

func TestTransformPassthrough(t *testing.T) {
	t.Parallel()
	transform := theme.NewTransform(hintConfig())

	t.Run("untyped tags keep their shape, children rewritten", func(t *testing.T) {
		t.Parallel()
		tree := runemark.NewTag("main", nil, hintTree("note"))
		out := transform(tree).(*runemark.Tag)
		assert.Equal(t, "main", out.Name)
		hint, _ := runemark.IsTag(out.Children[0])
		assert.Equal(t, "rf-hint rf-hint--note", hint.Attributes["class"])
	})

	t.Run("primitives and nil pass through", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "words", transform("words"))
		assert.Nil(t, transform(nil))
	})

	t.Run("arrays map element-wise", func(t *testing.T) {
		t.Parallel()
		out := transform([]any{hintTree("note"), "x"}).([]any)
		require.Len(t, out, 2)
		assert.Equal(t, "x", out[1])
	})
}

func findDataName(root *runemark.Tag, name string) *runemark.Tag {
	for _, n := range runemark.WalkTag(root) {
		if tag, ok := runemark.IsTag(n); ok && tag.Attributes["data-name"] == name {
			return tag
		}
	}
	return nil
}
