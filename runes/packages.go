package runes

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/runemark/runemark"
	"github.com/runemark/runemark/theme"
)

// Extension adds attribute specs to a core rune's schema. Extensions are
// additive only; they never replace an attribute the core already
// declares.
type Extension struct {
	Schema map[string]runemark.AttributeSpec
}

// PackageTheme carries the theme fragments a community package ships
// alongside its runes.
type PackageTheme struct {
	Runes map[string]theme.RuneConfig
	Icons map[string]map[string]string
}

// Package is a community rune package: a named, versioned set of tag
// schemas, optional core-rune extensions, and optional theme fragments.
type Package struct {
	Name        string
	Version     string
	DisplayName string

	// Runes maps tag name to schema.
	Runes map[string]*runemark.Schema

	// Extends maps core rune name to the extension applied to it.
	Extends map[string]Extension

	Theme *PackageTheme
}

func (p *Package) displayName() string {
	if p.DisplayName != "" {
		return p.DisplayName
	}
	return p.Name
}

// Validate checks the fields every package must carry.
func (p *Package) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("package has an empty name: %w", runemark.ErrValidation)
	}
	if p.Version == "" {
		return fmt.Errorf("package %q has an empty version: %w", p.Name, runemark.ErrValidation)
	}
	if len(p.Runes) == 0 {
		return fmt.Errorf("package %q defines no runes: %w", p.Name, runemark.ErrValidation)
	}
	return nil
}

// Merged is the collision-free union of a set of community packages.
type Merged struct {
	// Runes holds the community runes, keyed by rune name.
	Runes map[string]*Rune

	// Tags is the transform tag map derived from Runes.
	Tags map[string]*runemark.Schema

	// ThemeRunes and ThemeIcons collect the theme fragments from every
	// package. Later packages win on rune key conflicts; icon groups
	// merge name by name.
	ThemeRunes map[string]theme.RuneConfig
	ThemeIcons map[string]map[string]string

	// Extensions maps core rune name to its merged extension.
	Extensions map[string]Extension

	Packages []*Package
}

// Merge resolves a set of community packages into one collision-free
// rune map. A community rune that shadows a core rune name is skipped
// with a warning; core runes always take priority. When two packages
// claim the same name, prefer maps the rune name to the winning package
// name; an unresolved collision is an error.
func Merge(packages []*Package, prefer map[string]string, logger *log.Logger) (*Merged, error) {
	if logger == nil {
		logger = log.Default()
	}
	for _, p := range packages {
		if err := p.Validate(); err != nil {
			return nil, err
		}
	}

	core := map[string]bool{}
	for _, r := range builtins {
		for _, n := range r.Names() {
			core[n] = true
		}
	}

	ownership := map[string][]claim{}
	var order []string
	for _, p := range packages {
		for name, schema := range p.Runes {
			if _, seen := ownership[name]; !seen {
				order = append(order, name)
			}
			ownership[name] = append(ownership[name], claim{pkg: p, schema: schema})
		}
	}

	merged := &Merged{
		Runes:      map[string]*Rune{},
		ThemeRunes: map[string]theme.RuneConfig{},
		ThemeIcons: map[string]map[string]string{},
		Extensions: map[string]Extension{},
		Packages:   packages,
	}

	for _, name := range order {
		candidates := ownership[name]
		if core[name] {
			for _, c := range candidates {
				logger.Warn("community rune shadows a core rune, skipping",
					"rune", name,
					"package", c.pkg.Name)
			}
			continue
		}

		chosen := candidates[0]
		if len(candidates) > 1 {
			preferred, ok := prefer[name]
			if !ok {
				return nil, fmt.Errorf("rune name %q is ambiguous across packages %s: %w",
					name, packageNames(candidates), runemark.ErrDuplicateRune)
			}
			found := false
			for _, c := range candidates {
				if c.pkg.Name == preferred {
					chosen, found = c, true
					break
				}
			}
			if !found {
				return nil, fmt.Errorf("rune %q preference %q does not match any providing package: %w",
					name, preferred, runemark.ErrValidation)
			}
		}

		merged.Runes[name] = &Rune{
			Name:        name,
			Schema:      chosen.schema,
			Description: fmt.Sprintf("Community rune from %s", chosen.pkg.displayName()),
		}
	}

	tags := map[string]*runemark.Schema{}
	for name, r := range merged.Runes {
		tags[name] = r.Schema
	}
	merged.Tags = tags

	for _, p := range packages {
		if p.Theme == nil {
			continue
		}
		for key, rc := range p.Theme.Runes {
			merged.ThemeRunes[key] = rc
		}
		for group, icons := range p.Theme.Icons {
			if merged.ThemeIcons[group] == nil {
				merged.ThemeIcons[group] = map[string]string{}
			}
			for iconName, svg := range icons {
				merged.ThemeIcons[group][iconName] = svg
			}
		}
	}

	for _, p := range packages {
		for runeName, ext := range p.Extends {
			dst := merged.Extensions[runeName]
			if dst.Schema == nil {
				dst.Schema = map[string]runemark.AttributeSpec{}
			}
			for attr, spec := range ext.Schema {
				dst.Schema[attr] = spec
			}
			merged.Extensions[runeName] = dst
		}
	}

	return merged, nil
}

// Apply binds a merged package set into a transform config. Community
// tags are added where no tag is already bound, and extensions add
// attribute specs to copies of the core schemas they name. The core
// schemas themselves are never mutated.
func (m *Merged) Apply(cfg *runemark.Config) {
	for name, schema := range m.Tags {
		if _, taken := cfg.Tags[name]; !taken {
			cfg.Tags[name] = schema
		}
	}

	for runeName, ext := range m.Extensions {
		r := Get(runeName)
		if r == nil {
			continue
		}
		for _, tagName := range r.Names() {
			base, ok := cfg.Tags[tagName]
			if !ok {
				continue
			}
			cfg.Tags[tagName] = extendSchema(base, ext)
		}
	}
}

// extendSchema copies a schema, adding the extension's attribute specs
// for names the base does not already declare.
func extendSchema(base *runemark.Schema, ext Extension) *runemark.Schema {
	out := *base
	out.Attributes = make(map[string]runemark.AttributeSpec, len(base.Attributes)+len(ext.Schema))
	for name, spec := range base.Attributes {
		out.Attributes[name] = spec
	}
	for name, spec := range ext.Schema {
		if _, declared := out.Attributes[name]; !declared {
			out.Attributes[name] = spec
		}
	}
	return &out
}

type claim struct {
	pkg    *Package
	schema *runemark.Schema
}

func packageNames(claims []claim) string {
	out := ""
	for i, c := range claims {
		if i > 0 {
			out += ", "
		}
		out += c.pkg.Name
	}
	return out
}
