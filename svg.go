package runemark

import (
	"encoding/xml"
	"strings"
)

// ParseSVG parses an SVG string (a Lucide-style icon) into a renderable
// tag tree. The root svg tag is re-stamped with the icon class and a
// data-icon attribute; nested elements come through as-is. Unparseable
// input degrades to an empty placeholder span, never an error.
func ParseSVG(svg, iconName string) *Tag {
	dec := xml.NewDecoder(strings.NewReader(svg))
	root, err := decodeSVGElement(dec)
	if err != nil || root == nil || root.Name != "svg" {
		return NewTag("span", map[string]any{"class": "rf-icon", "data-icon": iconName})
	}
	root.Attributes["class"] = "rf-icon"
	root.Attributes["data-icon"] = iconName
	delete(root.Attributes, "xmlns")
	return root
}

// decodeSVGElement reads the next start element and its subtree.
func decodeSVGElement(dec *xml.Decoder) (*Tag, error) {
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		return decodeSVGSubtree(dec, start)
	}
}

func decodeSVGSubtree(dec *xml.Decoder, start xml.StartElement) (*Tag, error) {
	attrs := map[string]any{}
	for _, a := range start.Attr {
		attrs[a.Name.Local] = a.Value
	}
	tag := NewTag(start.Name.Local, attrs)

	for {
		tok, err := dec.Token()
		if err != nil {
			return tag, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			child, err := decodeSVGSubtree(dec, t)
			if child != nil {
				tag.Children = append(tag.Children, child)
			}
			if err != nil {
				return tag, err
			}
		case xml.CharData:
			if s := strings.TrimSpace(string(t)); s != "" {
				tag.Children = append(tag.Children, s)
			}
		case xml.EndElement:
			return tag, nil
		}
	}
}
