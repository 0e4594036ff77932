package theme

import (
	"encoding/json"
	"strings"
)

// ModifierContract documents one modifier's selector surface.
type ModifierContract struct {
	Source        string `json:"source"`
	Default       string `json:"default,omitempty"`
	ClassPattern  string `json:"classPattern"`
	DataAttribute string `json:"dataAttribute"`
}

// ContextModifierContract documents a nesting-dependent modifier.
type ContextModifierContract struct {
	Suffix   string `json:"suffix"`
	Selector string `json:"selector"`
}

// StaticModifierContract documents an always-applied modifier.
type StaticModifierContract struct {
	Name     string `json:"name"`
	Selector string `json:"selector"`
}

// ElementContract documents one named element inside a rune's output.
type ElementContract struct {
	Tag          string   `json:"tag"`
	Selector     string   `json:"selector"`
	Source       string   `json:"source"`
	Parent       string   `json:"parent,omitempty"`
	Condition    string   `json:"condition,omitempty"`
	ConditionAny []string `json:"conditionAny,omitempty"`
}

// RuneContract is the full selector surface one rune's output can
// expose: everything a theme stylesheet may need to cover.
type RuneContract struct {
	Block            string                             `json:"block"`
	Root             string                             `json:"root"`
	DataRune         string                             `json:"dataRune"`
	Modifiers        map[string]ModifierContract        `json:"modifiers,omitempty"`
	ContextModifiers map[string]ContextModifierContract `json:"contextModifiers,omitempty"`
	StaticModifiers  []StaticModifierContract           `json:"staticModifiers,omitempty"`
	Elements         map[string]ElementContract         `json:"elements,omitempty"`
	InlineStyles     map[string]StyleSpec               `json:"inlineStyles,omitempty"`
	ChildOrder       []string                           `json:"childOrder"`
}

// Contract is the generated structure contract document.
type Contract struct {
	Schema      string                  `json:"$schema"`
	Description string                  `json:"description"`
	Prefix      string                  `json:"prefix"`
	Runes       map[string]RuneContract `json:"runes"`
}

// MarshalJSON renders a bare custom property name as a string and a
// templated spec as an object, mirroring the config form.
func (s StyleSpec) MarshalJSON() ([]byte, error) {
	if s.Template == "" {
		return json.Marshal(s.Prop)
	}
	return json.Marshal(struct {
		Prop     string `json:"prop"`
		Template string `json:"template"`
	}{s.Prop, s.Template})
}

const contractDescription = "HTML structure contracts for the identity transform. " +
	"Documents the BEM selectors, data attributes, and HTML structure the engine " +
	"produces for each rune. Auto-generated from theme config — do not edit by hand."

// GenerateContract derives the complete selector contract for every
// rune in a theme config: BEM classes, data attributes, injected
// elements, and child ordering. Pure config analysis; the engine never
// runs. Output marshals byte-stably (encoding/json sorts map keys).
func GenerateContract(cfg *Config) *Contract {
	runes := make(map[string]RuneContract, len(cfg.Runes))
	for name, rc := range cfg.Runes {
		runes[name] = generateRuneContract(name, rc, cfg.Prefix)
	}
	return &Contract{
		Schema:      "https://json-schema.org/draft/2020-12/schema",
		Description: contractDescription,
		Prefix:      cfg.Prefix,
		Runes:       runes,
	}
}

func generateRuneContract(name string, rc RuneConfig, prefix string) RuneContract {
	block := prefix + "-" + rc.Block
	contract := RuneContract{
		Block:    rc.Block,
		Root:     "." + block,
		DataRune: strings.ToLower(name),
	}

	if len(rc.Modifiers) > 0 {
		contract.Modifiers = map[string]ModifierContract{}
		for modName, mod := range rc.Modifiers {
			contract.Modifiers[modName] = ModifierContract{
				Source:        mod.Source,
				Default:       mod.Default,
				ClassPattern:  "." + block + "--{value}",
				DataAttribute: "data-" + kebab(modName),
			}
		}
	}

	if len(rc.ContextModifiers) > 0 {
		contract.ContextModifiers = map[string]ContextModifierContract{}
		for parent, suffix := range rc.ContextModifiers {
			contract.ContextModifiers[parent] = ContextModifierContract{
				Suffix:   suffix,
				Selector: "." + block + "--" + suffix,
			}
		}
	}

	for _, mod := range rc.StaticModifiers {
		contract.StaticModifiers = append(contract.StaticModifiers, StaticModifierContract{
			Name:     mod,
			Selector: "." + block + "--" + mod,
		})
	}

	elements := map[string]ElementContract{}
	for _, key := range rc.Structure.Keys() {
		entry, _ := rc.Structure.Get(key)
		collectStructureElements(entry, key, block, "", elements)
	}
	if rc.ContentWrapper != nil {
		elements[rc.ContentWrapper.Ref] = ElementContract{
			Tag:      rc.ContentWrapper.Tag,
			Selector: "." + block + "__" + rc.ContentWrapper.Ref,
			Source:   "contentWrapper",
		}
	}
	for tagName, label := range rc.AutoLabel {
		elements[label] = ElementContract{
			Tag:      tagName,
			Selector: "." + block + "__" + label,
			Source:   "autoLabel",
		}
	}
	if len(elements) > 0 {
		contract.Elements = elements
	}

	if len(rc.Styles) > 0 {
		contract.InlineStyles = map[string]StyleSpec{}
		for modName, spec := range rc.Styles {
			contract.InlineStyles[modName] = spec
		}
	}

	contract.ChildOrder = computeChildOrder(rc)
	return contract
}

// collectStructureElements flattens a structure tree into element
// contracts. Repeated refs keep the first entry; the selector is the
// same either way.
func collectStructureElements(entry StructureEntry, key, block, parentRef string, elements map[string]ElementContract) {
	ref := entry.Ref
	if ref == "" {
		ref = key
	}
	if _, seen := elements[ref]; !seen {
		elements[ref] = ElementContract{
			Tag:          entry.Tag,
			Selector:     "." + block + "__" + ref,
			Source:       "structure",
			Parent:       parentRef,
			Condition:    entry.Condition,
			ConditionAny: entry.ConditionAny,
		}
	}
	for _, child := range entry.Children {
		if child.Entry != nil && child.Entry.Ref != "" {
			collectStructureElements(*child.Entry, child.Entry.Ref, block, ref, elements)
		}
	}
}

// computeChildOrder lists the rune's output slots in render order:
// prepended structure, the content slot, then appended structure.
func computeChildOrder(rc RuneConfig) []string {
	var order []string
	for _, key := range rc.Structure.Keys() {
		entry, _ := rc.Structure.Get(key)
		if entry.Before {
			order = append(order, refOrKey(entry, key))
		}
	}
	if rc.ContentWrapper != nil {
		order = append(order, "{content:"+rc.ContentWrapper.Ref+"}")
	} else {
		order = append(order, "{content}")
	}
	for _, key := range rc.Structure.Keys() {
		entry, _ := rc.Structure.Get(key)
		if !entry.Before {
			order = append(order, refOrKey(entry, key))
		}
	}
	return order
}

func refOrKey(entry StructureEntry, key string) string {
	if entry.Ref != "" {
		return entry.Ref
	}
	return key
}
