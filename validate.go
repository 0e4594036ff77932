package runemark

import (
	"fmt"
	"sort"
)

// ValidationError is a structured attribute validation failure. Rune
// transforms never raise these as Go errors; they are collected before
// transform and surfaced to the caller, while the transform itself
// degrades gracefully.
type ValidationError struct {
	ID      string `json:"id"`
	Level   string `json:"level"` // "warning", "error", or "critical"
	Message string `json:"message"`
}

// Validate walks nodes and checks every tag's attributes against its
// schema. It is total: unknown tags and missing schemas produce errors,
// never panics.
func Validate(nodes []*Node, cfg *Config) []ValidationError {
	var errs []ValidationError
	for _, n := range nodes {
		errs = append(errs, validateNode(n, cfg)...)
	}
	return errs
}

func validateNode(n *Node, cfg *Config) []ValidationError {
	var errs []ValidationError

	if n.Type == "tag" {
		schema := cfg.Tag(n.Tag)
		if schema == nil {
			errs = append(errs, ValidationError{
				ID:      "tag-undefined",
				Level:   "critical",
				Message: fmt.Sprintf("Undefined tag: '%s'", n.Tag),
			})
		} else {
			errs = append(errs, validateAttributes(n, schema, cfg)...)
		}
	}

	for _, c := range n.Children {
		errs = append(errs, validateNode(c, cfg)...)
	}
	return errs
}

func validateAttributes(n *Node, schema *Schema, cfg *Config) []ValidationError {
	var errs []ValidationError

	names := make([]string, 0, len(schema.Attributes))
	for name := range schema.Attributes {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		spec := schema.Attributes[name]
		raw, present := n.Attributes[name]

		if !present {
			if spec.Required {
				errs = append(errs, ValidationError{
					ID:      "attribute-missing-required",
					Level:   "critical",
					Message: fmt.Sprintf("Required attribute '%s' is missing", name),
				})
			}
			continue
		}

		if t, ok := spec.Type.(AttributeType); ok {
			errs = append(errs, t.Validate(raw, cfg, name)...)
			continue
		}

		if err := validateScalar(name, raw, spec); err != nil {
			errs = append(errs, *err)
		}
	}
	return errs
}

func validateScalar(name string, raw any, spec AttributeSpec) *ValidationError {
	level := spec.ErrorLevel
	if level == "" {
		level = "error"
	}

	switch scalarOf(spec.Type) {
	case StringType:
		s, ok := raw.(string)
		if !ok {
			return &ValidationError{
				ID:      "attribute-type-invalid",
				Level:   "critical",
				Message: fmt.Sprintf("Attribute '%s' must be a string", name),
			}
		}
		if len(spec.Matches) > 0 && !contains(spec.Matches, s) {
			return &ValidationError{
				ID:      "attribute-value-invalid",
				Level:   level,
				Message: fmt.Sprintf("Attribute '%s' must match one of %v, got '%s'", name, spec.Matches, s),
			}
		}
	case NumberType:
		switch raw.(type) {
		case int, float64:
		default:
			return &ValidationError{
				ID:      "attribute-type-invalid",
				Level:   "critical",
				Message: fmt.Sprintf("Attribute '%s' must be a number", name),
			}
		}
	case BooleanType:
		if _, ok := raw.(bool); !ok {
			return &ValidationError{
				ID:      "attribute-type-invalid",
				Level:   "critical",
				Message: fmt.Sprintf("Attribute '%s' must be a boolean", name),
			}
		}
	}
	return nil
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
