package theme_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runemark/runemark/theme"
)

func TestGenerateContract(t *testing.T) {
	t.Parallel()

	cfg := &theme.Config{
		Prefix: "rf",
		Runes: map[string]theme.RuneConfig{
			"MusicRecording": {
				Block: "recording",
				Modifiers: map[string]theme.Modifier{
					"playState": {Source: "meta", Default: "paused"},
				},
				ContextModifiers: map[string]string{"MusicPlaylist": "in-playlist"},
				StaticModifiers:  []string{"card"},
				Structure: theme.NewStructure(
					"artwork", theme.StructureEntry{Tag: "div", Before: true},
					"controls", theme.StructureEntry{
						Tag: "div",
						Children: []theme.StructureChild{
							{Entry: &theme.StructureEntry{Tag: "button", Ref: "playButton", Condition: "playState"}},
						},
					},
				),
				ContentWrapper: &struct {
					Tag string `yaml:"tag"`
					Ref string `yaml:"ref"`
				}{Tag: "div", Ref: "details"},
				AutoLabel: map[string]string{"h3": "title"},
				Styles:    map[string]theme.StyleSpec{"accent": {Prop: "--accent"}},
			},
		},
	}

	contract := theme.GenerateContract(cfg)
	assert.Equal(t, "https://json-schema.org/draft/2020-12/schema", contract.Schema)
	assert.Equal(t, "rf", contract.Prefix)

	rec, ok := contract.Runes["MusicRecording"]
	require.True(t, ok)
	assert.Equal(t, "recording", rec.Block)
	assert.Equal(t, ".rf-recording", rec.Root)
	assert.Equal(t, "musicrecording", rec.DataRune)

	mod := rec.Modifiers["playState"]
	assert.Equal(t, ".rf-recording--{value}", mod.ClassPattern)
	assert.Equal(t, "data-play-state", mod.DataAttribute)
	assert.Equal(t, "paused", mod.Default)

	ctx := rec.ContextModifiers["MusicPlaylist"]
	assert.Equal(t, ".rf-recording--in-playlist", ctx.Selector)

	require.Len(t, rec.StaticModifiers, 1)
	assert.Equal(t, ".rf-recording--card", rec.StaticModifiers[0].Selector)

	// Elements from structure (including nested refs), wrapper, and
	// auto-labels.
	assert.Equal(t, ".rf-recording__artwork", rec.Elements["artwork"].Selector)
	assert.Equal(t, "structure", rec.Elements["artwork"].Source)
	play := rec.Elements["playButton"]
	assert.Equal(t, "controls", play.Parent)
	assert.Equal(t, "playState", play.Condition)
	assert.Equal(t, "contentWrapper", rec.Elements["details"].Source)
	assert.Equal(t, "autoLabel", rec.Elements["title"].Source)
	assert.Equal(t, "h3", rec.Elements["title"].Tag)

	assert.Equal(t, []string{"artwork", "{content:details}", "controls"}, rec.ChildOrder)
}

func TestContractChildOrderWithoutWrapper(t *testing.T) {
	t.Parallel()
	cfg := &theme.Config{
		Prefix: "rf",
		Runes: map[string]theme.RuneConfig{
			"Hint": {Block: "hint"},
		},
	}

	contract := theme.GenerateContract(cfg)
	assert.Equal(t, []string{"{content}"}, contract.Runes["Hint"].ChildOrder)
}

func TestStyleSpecJSONForms(t *testing.T) {
	t.Parallel()

	bare, err := json.Marshal(theme.StyleSpec{Prop: "--accent"})
	require.NoError(t, err)
	assert.JSONEq(t, `"--accent"`, string(bare))

	templated, err := json.Marshal(theme.StyleSpec{Prop: "width", Template: "{}px"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"prop":"width","template":"{}px"}`, string(templated))
}

func TestContractMarshalsDeterministically(t *testing.T) {
	t.Parallel()
	cfg := &theme.Config{
		Prefix: "rf",
		Runes: map[string]theme.RuneConfig{
			"Hint": {Block: "hint", Modifiers: map[string]theme.Modifier{
				"b": {Source: "meta"},
				"a": {Source: "meta"},
			}},
			"Hero": {Block: "hero"},
		},
	}

	first, err := json.Marshal(theme.GenerateContract(cfg))
	require.NoError(t, err)
	second, err := json.Marshal(theme.GenerateContract(cfg))
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}
