package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/runemark/runemark"
)

// themeFile is the on-disk YAML shape: a Config plus icon glob patterns
// resolved relative to the theme file.
type themeFile struct {
	Config `yaml:",inline"`

	// IconGlobs maps icon group to a glob pattern; each matching .svg
	// file registers under its base name.
	IconGlobs map[string]string `yaml:"iconGlobs,omitempty"`
}

// Load reads a theme config from a YAML file. Icon globs are expanded
// with doublestar patterns relative to the file's directory;
// individual icon files that fail to read are skipped with a warning
// rather than failing the load. Inline icons win over globbed ones.
func Load(path string, logger *log.Logger) (*Config, error) {
	if logger == nil {
		logger = log.Default()
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme config: %w", err)
	}

	var file themeFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parsing theme config %s: %w", path, err)
	}
	cfg := file.Config
	if cfg.Prefix == "" {
		return nil, fmt.Errorf("theme config %s has no prefix: %w", path, runemark.ErrValidation)
	}

	dir := filepath.Dir(path)
	for group, pattern := range file.IconGlobs {
		matches, err := doublestar.FilepathGlob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, fmt.Errorf("icon glob %q for group %s: %w", pattern, group, err)
		}
		if len(matches) == 0 {
			logger.Warn("icon glob matched no files", "group", group, "pattern", pattern)
			continue
		}
		for _, match := range matches {
			svg, err := os.ReadFile(match)
			if err != nil {
				logger.Warn("skipping unreadable icon", "file", match, "error", err)
				continue
			}
			name := strings.TrimSuffix(filepath.Base(match), filepath.Ext(match))
			if cfg.Icons == nil {
				cfg.Icons = map[string]map[string]string{}
			}
			if cfg.Icons[group] == nil {
				cfg.Icons[group] = map[string]string{}
			}
			if _, inline := cfg.Icons[group][name]; !inline {
				cfg.Icons[group][name] = string(svg)
			}
		}
	}

	for name, rc := range cfg.Runes {
		if rc.Block == "" {
			logger.Warn("rune config has no block name, skipping", "rune", name)
			delete(cfg.Runes, name)
		}
	}

	return &cfg, nil
}
