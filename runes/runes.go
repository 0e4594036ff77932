// Package runes defines the rune vocabulary: each rune is a tag schema
// that reinterprets markdown primitives into a typed component tree. All
// runes build their output through the root package's model machinery and
// CreateComponentRenderable — there is no other assembly path.
package runes

import (
	"github.com/runemark/runemark"
)

// Rune describes one registered tag: its schema plus documentation
// metadata used by tooling. Descriptors are created at package init and
// immutable afterwards.
type Rune struct {
	// Name is the primary tag name.
	Name string

	// Aliases are alternate spellings resolving to the same schema.
	Aliases []string

	// Schema is the transform bound to the tag.
	Schema *runemark.Schema

	// Description is human-readable, for docs and prompt generation.
	Description string

	// Reinterprets documents which markdown primitives this rune gives
	// new meaning to. Documentation only; no behavior.
	Reinterprets map[string]string

	// SEOType is the schema.org type for JSON-LD generation, if any.
	SEOType string

	// Type is the typeof name of the component the rune renders as.
	Type string
}

// Names returns every tag name the rune answers to.
func (r *Rune) Names() []string {
	return append([]string{r.Name}, r.Aliases...)
}

// All returns the built-in rune set in registration order.
func All() []*Rune {
	return builtins
}

// Get looks a rune up by name or alias.
func Get(name string) *Rune {
	for _, r := range builtins {
		for _, n := range r.Names() {
			if n == name {
				return r
			}
		}
	}
	return nil
}

// TagMap builds the tag schema map for a transform config from a rune
// collection.
func TagMap(collection []*Rune) map[string]*runemark.Schema {
	tags := map[string]*runemark.Schema{}
	for _, r := range collection {
		for _, name := range r.Names() {
			tags[name] = r.Schema
		}
	}
	return tags
}

// NewConfig returns a transform config with the built-in runes bound and
// a fresh per-document id generator. The variables bag may carry
// "__source" and "__icons".
func NewConfig(variables map[string]any) *runemark.Config {
	if variables == nil {
		variables = map[string]any{}
	}
	return &runemark.Config{
		Tags:      TagMap(builtins),
		Nodes:     map[string]*runemark.Schema{},
		Variables: variables,
		IDs:       runemark.NewIDGenerator(),
	}
}
