package runemark

import (
	"fmt"
	"strconv"
	"strings"
)

// separatedStringValidate rejects non-string raw values with a single
// critical error, shared by every separated-list attribute type.
func separatedStringValidate(value any, name string) []ValidationError {
	if _, ok := value.(string); !ok {
		return []ValidationError{{
			ID:      "attribute-type-invalid",
			Level:   "critical",
			Message: fmt.Sprintf("Attribute '%s' is not a string", name),
		}}
	}
	return nil
}

func splitTrimmed(value any, sep string) []string {
	s, ok := value.(string)
	if !ok || s == "" {
		return []string{}
	}
	parts := strings.Split(s, sep)
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// CommaSeparatedList parses "a, b, c" into ["a", "b", "c"].
type CommaSeparatedList struct{}

func (CommaSeparatedList) Validate(value any, _ *Config, name string) []ValidationError {
	return separatedStringValidate(value, name)
}

func (CommaSeparatedList) TransformValue(value any) any {
	return splitTrimmed(value, ",")
}

// SpaceSeparatedList parses "a b c" into ["a", "b", "c"].
type SpaceSeparatedList struct{}

func (SpaceSeparatedList) Validate(value any, _ *Config, name string) []ValidationError {
	return separatedStringValidate(value, name)
}

func (SpaceSeparatedList) TransformValue(value any) any {
	return splitTrimmed(value, " ")
}

// SpaceSeparatedNumberList parses "8 4" into [8, 4]. Validation rejects
// any non-numeric token; transform parses base-10 integers.
type SpaceSeparatedNumberList struct{}

func (SpaceSeparatedNumberList) Validate(value any, _ *Config, name string) []ValidationError {
	if errs := separatedStringValidate(value, name); len(errs) > 0 {
		return errs
	}
	for _, item := range strings.Split(value.(string), " ") {
		if _, err := strconv.Atoi(strings.TrimSpace(item)); err != nil {
			return []ValidationError{{
				ID:      "attribute-type-invalid",
				Level:   "critical",
				Message: fmt.Sprintf("Attribute '%s' contains non-numeric value: '%s'", name, item),
			}}
		}
	}
	return nil
}

func (SpaceSeparatedNumberList) TransformValue(value any) any {
	out := []int{}
	for _, item := range splitTrimmed(value, " ") {
		n, err := strconv.Atoi(item)
		if err != nil {
			// Validation rejects these upstream; never emit garbage.
			continue
		}
		out = append(out, n)
	}
	return out
}
