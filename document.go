package runemark

import "time"

// Document is a rendered markdown document: the serialized component
// tree plus its provenance, as persisted between builds.
type Document struct {
	// Path is the source file the document was rendered from.
	Path string

	// Theme names the theme config applied, if any.
	Theme string

	GeneratedAt time.Time

	// Headings is the pre-scanned outline of the source.
	Headings []HeadingInfo

	// Tree is the serialized renderable tree: *SerializedTag, string,
	// number, nil, or []any of those.
	Tree any
}
