package theme_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runemark/runemark"
	"github.com/runemark/runemark/theme"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("full theme file", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		path := writeFile(t, dir, "theme.yaml", `
prefix: rf
tokenPrefix: --rf
runes:
  Hint:
    block: hint
    modifiers:
      hintType:
        source: meta
        default: note
    structure:
      iconSlot:
        tag: span
        before: true
        icon:
          group: hints
          variant: hintType
      footer:
        tag: footer
    styles:
      accent: --hint-accent
      width:
        prop: max-width
        template: "{}ch"
`)

		cfg, err := theme.Load(path, quietLogger())
		require.NoError(t, err)
		assert.Equal(t, "rf", cfg.Prefix)
		assert.Equal(t, "--rf", cfg.TokenPrefix)

		hint := cfg.Runes["Hint"]
		assert.Equal(t, "hint", hint.Block)
		assert.Equal(t, "note", hint.Modifiers["hintType"].Default)

		// Structure order follows the YAML document.
		assert.Equal(t, []string{"iconSlot", "footer"}, hint.Structure.Keys())
		slot, ok := hint.Structure.Get("iconSlot")
		require.True(t, ok)
		assert.True(t, slot.Before)
		require.NotNil(t, slot.Icon)
		assert.Equal(t, "hints", slot.Icon.Group)

		// Bare style strings become property names; mappings keep both.
		assert.Equal(t, "--hint-accent", hint.Styles["accent"].Prop)
		assert.Equal(t, "{}ch", hint.Styles["width"].Template)
	})

	t.Run("icon globs resolve relative to the file", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeFile(t, dir, "icons/star.svg", "<svg></svg>")
		writeFile(t, dir, "icons/moon.svg", "<svg></svg>")
		path := writeFile(t, dir, "theme.yaml", `
prefix: rf
runes:
  Hint:
    block: hint
icons:
  ui:
    star: "<svg>inline</svg>"
iconGlobs:
  ui: "icons/*.svg"
`)

		cfg, err := theme.Load(path, quietLogger())
		require.NoError(t, err)
		// The inline icon wins over the globbed file of the same name.
		assert.Equal(t, "<svg>inline</svg>", cfg.Icons["ui"]["star"])
		assert.Equal(t, "<svg></svg>", cfg.Icons["ui"]["moon"])
	})

	t.Run("empty glob warns but loads", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		path := writeFile(t, dir, "theme.yaml", `
prefix: rf
runes:
  Hint:
    block: hint
iconGlobs:
  ui: "missing/*.svg"
`)

		cfg, err := theme.Load(path, quietLogger())
		require.NoError(t, err)
		assert.Empty(t, cfg.Icons)
	})

	t.Run("missing prefix is a validation error", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		path := writeFile(t, dir, "theme.yaml", "runes:\n  Hint:\n    block: hint\n")

		_, err := theme.Load(path, quietLogger())
		assert.ErrorIs(t, err, runemark.ErrValidation)
	})

	t.Run("rune without a block is dropped", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		path := writeFile(t, dir, "theme.yaml", `
prefix: rf
runes:
  Hint:
    block: hint
  Broken:
    parent: Hint
`)

		cfg, err := theme.Load(path, quietLogger())
		require.NoError(t, err)
		assert.Contains(t, cfg.Runes, "Hint")
		assert.NotContains(t, cfg.Runes, "Broken")
	})

	t.Run("unreadable file", func(t *testing.T) {
		t.Parallel()
		_, err := theme.Load(filepath.Join(t.TempDir(), "absent.yaml"), quietLogger())
		assert.Error(t, err)
	})
}
