// Package theme implements the identity transform: the second pipeline
// stage that rewrites a typed renderable tree into BEM-classed,
// framework-neutral markup, driven by per-rune configuration. It also
// derives the structure contract a theme's CSS must cover.
package theme

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/runemark/runemark"
)

// Modifier declares where a modifier value is read from.
type Modifier struct {
	// Source is "meta" (a meta child's content) or "attribute" (a root
	// attribute value).
	Source string `yaml:"source"`

	// Default is used when the source yields nothing.
	Default string `yaml:"default,omitempty"`
}

// StructureAttr is one extra attribute on an injected element: either a
// literal value or a reference to a resolved modifier.
type StructureAttr struct {
	Value        string
	FromModifier string
}

// UnmarshalYAML accepts a plain string or {fromModifier: name}.
func (a *StructureAttr) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		return node.Decode(&a.Value)
	}
	var ref struct {
		FromModifier string `yaml:"fromModifier"`
	}
	if err := node.Decode(&ref); err != nil {
		return err
	}
	a.FromModifier = ref.FromModifier
	return nil
}

// IconRef injects an icon placeholder element; CSS displays the icon
// via mask-image.
type IconRef struct {
	Group   string `yaml:"group"`
	Variant string `yaml:"variant"`
}

// StructureChild is a child of an injected element: literal text or a
// nested entry.
type StructureChild struct {
	Text  string
	Entry *StructureEntry
}

// UnmarshalYAML accepts a plain string or a nested structure entry.
func (c *StructureChild) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		return node.Decode(&c.Text)
	}
	c.Entry = &StructureEntry{}
	return node.Decode(c.Entry)
}

// StructureEntry declares one synthetic element the transform injects
// into a rune's children.
type StructureEntry struct {
	// Tag is the HTML tag name.
	Tag string `yaml:"tag"`

	// Ref overrides the data-name taken from the structure key.
	Ref string `yaml:"ref,omitempty"`

	Children []StructureChild `yaml:"children,omitempty"`

	// Before inserts the element ahead of the existing children.
	Before bool `yaml:"before,omitempty"`

	Icon *IconRef `yaml:"icon,omitempty"`

	// MetaText names a resolved modifier whose value becomes the
	// element's text content.
	MetaText string `yaml:"metaText,omitempty"`

	// Condition injects only when the named modifier resolved truthy;
	// ConditionAny when any of the named modifiers did.
	Condition    string   `yaml:"condition,omitempty"`
	ConditionAny []string `yaml:"conditionAny,omitempty"`

	Attrs map[string]StructureAttr `yaml:"attrs,omitempty"`

	// Transform is applied to the MetaText value: "duration",
	// "uppercase", or "capitalize".
	Transform string `yaml:"transform,omitempty"`

	TextPrefix string `yaml:"textPrefix,omitempty"`
	TextSuffix string `yaml:"textSuffix,omitempty"`
}

// Structure is an insertion-ordered map of structure entries. Injection
// order follows the order entries were declared in.
type Structure struct {
	keys    []string
	entries map[string]StructureEntry
}

// NewStructure builds a structure from alternating key/entry pairs.
func NewStructure(pairs ...any) Structure {
	s := Structure{entries: map[string]StructureEntry{}}
	for i := 0; i+1 < len(pairs); i += 2 {
		s.Set(pairs[i].(string), pairs[i+1].(StructureEntry))
	}
	return s
}

// Set appends or replaces an entry.
func (s *Structure) Set(key string, entry StructureEntry) {
	if s.entries == nil {
		s.entries = map[string]StructureEntry{}
	}
	if _, ok := s.entries[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.entries[key] = entry
}

// Keys returns the declaration order.
func (s *Structure) Keys() []string { return s.keys }

// Get returns an entry by key.
func (s *Structure) Get(key string) (StructureEntry, bool) {
	e, ok := s.entries[key]
	return e, ok
}

// Len returns the entry count.
func (s *Structure) Len() int { return len(s.keys) }

// UnmarshalYAML preserves mapping order.
func (s *Structure) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("structure: expected a mapping, got %v: %w", node.Kind, runemark.ErrValidation)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		var key string
		if err := node.Content[i].Decode(&key); err != nil {
			return err
		}
		var entry StructureEntry
		if err := node.Content[i+1].Decode(&entry); err != nil {
			return err
		}
		s.Set(key, entry)
	}
	return nil
}

// StyleSpec maps a modifier value to an inline style declaration: a
// bare custom property name, or a property with a value template where
// "{}" is replaced by the modifier value.
type StyleSpec struct {
	Prop     string `yaml:"prop"`
	Template string `yaml:"template"`
}

// UnmarshalYAML accepts a plain property-name string or {prop, template}.
func (s *StyleSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		return node.Decode(&s.Prop)
	}
	type plain StyleSpec
	return node.Decode((*plain)(s))
}

// PostContext is handed to a PostTransform hook.
type PostContext struct {
	// Modifiers holds the resolved modifier values.
	Modifiers map[string]string

	// ParentType is the typeof of the nearest enclosing rune, if any.
	ParentType string
}

// RuneConfig drives the identity transform for one rune type, keyed by
// typeof name in Config.Runes.
type RuneConfig struct {
	// Block is the BEM block name, without prefix.
	Block string `yaml:"block"`

	// Parent groups this rune under another for editor tooling only.
	Parent string `yaml:"parent,omitempty"`

	Modifiers map[string]Modifier `yaml:"modifiers,omitempty"`

	// ContextModifiers adds a modifier class when nested inside the
	// keyed parent typeof.
	ContextModifiers map[string]string `yaml:"contextModifiers,omitempty"`

	Structure Structure `yaml:"structure,omitempty"`

	// AutoLabel assigns data-name by child tag name or property.
	AutoLabel map[string]string `yaml:"autoLabel,omitempty"`

	RootAttributes map[string]string `yaml:"rootAttributes,omitempty"`

	// ContentWrapper wraps the non-structural children in one element.
	ContentWrapper *struct {
		Tag string `yaml:"tag"`
		Ref string `yaml:"ref"`
	} `yaml:"contentWrapper,omitempty"`

	Styles map[string]StyleSpec `yaml:"styles,omitempty"`

	// StaticModifiers are always-applied modifier suffixes.
	StaticModifiers []string `yaml:"staticModifiers,omitempty"`

	// PostTransform is a programmatic escape hatch running after all
	// declarative processing. Not expressible in YAML.
	PostTransform func(*runemark.Tag, PostContext) *runemark.Tag `yaml:"-"`
}

// Config is a full theme configuration.
type Config struct {
	// Prefix is the BEM class prefix ("rf" yields .rf-hint).
	Prefix string `yaml:"prefix"`

	// TokenPrefix is the CSS custom property prefix ("--rf").
	TokenPrefix string `yaml:"tokenPrefix"`

	// Icons holds SVG sources by group and variant.
	Icons map[string]map[string]string `yaml:"icons,omitempty"`

	// Runes holds per-rune config keyed by typeof name.
	Runes map[string]RuneConfig `yaml:"runes"`
}
