// Package json persists rendered documents as versioned JSON envelopes.
// The envelope format is explicit about its version so older files fail
// loudly instead of decoding into garbage.
package json

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/runemark/runemark"
)

// envelope is the v1 wire format for a persisted document.
type envelope struct {
	Version     int             `json:"version"`
	Path        string          `json:"path"`
	Theme       string          `json:"theme,omitempty"`
	GeneratedAt time.Time       `json:"generated_at"`
	Headings    []headingDTO    `json:"headings,omitempty"`
	Tree        json.RawMessage `json:"tree"`
}

type headingDTO struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
	ID    string `json:"id"`
}

// MarshalDocument serializes a Document to JSON in v1 envelope format.
func MarshalDocument(d runemark.Document) ([]byte, error) {
	tree, err := json.Marshal(d.Tree)
	if err != nil {
		return nil, fmt.Errorf("marshal tree: %w", err)
	}
	env := envelope{
		Version:     1,
		Path:        d.Path,
		Theme:       d.Theme,
		GeneratedAt: d.GeneratedAt,
		Headings:    make([]headingDTO, len(d.Headings)),
		Tree:        tree,
	}
	for i, h := range d.Headings {
		env.Headings[i] = headingDTO{Level: h.Level, Text: h.Text, ID: h.ID}
	}
	return json.MarshalIndent(env, "", "  ")
}

// UnmarshalDocument deserializes a Document from JSON in v1 envelope
// format, reconstructing typed tag nodes from the $$mdtype markers.
func UnmarshalDocument(data []byte) (runemark.Document, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return runemark.Document{}, fmt.Errorf("unmarshal envelope: %w", err)
	}
	if env.Version != 1 {
		return runemark.Document{}, fmt.Errorf("unsupported envelope version: %d", env.Version)
	}

	var raw any
	if len(env.Tree) > 0 {
		if err := json.Unmarshal(env.Tree, &raw); err != nil {
			return runemark.Document{}, fmt.Errorf("unmarshal tree: %w", err)
		}
	}

	doc := runemark.Document{
		Path:        env.Path,
		Theme:       env.Theme,
		GeneratedAt: env.GeneratedAt,
		Headings:    make([]runemark.HeadingInfo, len(env.Headings)),
		Tree:        decodeNode(raw),
	}
	for i, h := range env.Headings {
		doc.Headings[i] = runemark.HeadingInfo{Level: h.Level, Text: h.Text, ID: h.ID}
	}
	return doc, nil
}

// Save writes a Document to a JSON file, creating parent directories as
// needed. The write is atomic: temp file then rename.
func Save(path string, d runemark.Document) error {
	data, err := MarshalDocument(d)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// Load reads a Document from a JSON file.
func Load(path string) (runemark.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return runemark.Document{}, fmt.Errorf("read file: %w", err)
	}
	return UnmarshalDocument(data)
}

// decodeNode rebuilds serialized tag nodes from generic JSON values.
// Objects carrying $$mdtype "Tag" become *runemark.SerializedTag;
// everything else passes through (numbers stay float64).
func decodeNode(v any) any {
	switch node := v.(type) {
	case []any:
		out := make([]any, len(node))
		for i, c := range node {
			out[i] = decodeNode(c)
		}
		return out
	case map[string]any:
		if node["$$mdtype"] != "Tag" {
			return node
		}
		name, _ := node["name"].(string)
		attrs, _ := node["attributes"].(map[string]any)
		rawChildren, _ := node["children"].([]any)
		children := make([]any, len(rawChildren))
		for i, c := range rawChildren {
			children[i] = decodeNode(c)
		}
		return runemark.MakeSerializedTag(name, attrs, children)
	default:
		return v
	}
}
