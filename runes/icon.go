package runes

import (
	"fmt"
	"strings"

	"github.com/runemark/runemark"
)

// iconSchema resolves an icon name to an inline SVG from the icon
// registry carried in the config variables. Names may carry a group
// prefix ("hint/warning"); bare names resolve in the global group.
// Unknown icons degrade to an empty placeholder span.
var iconSchema = &runemark.Schema{
	SelfClosing: true,
	Attributes: map[string]runemark.AttributeSpec{
		"name": {Type: runemark.StringType, Required: true},
		"size": {Type: runemark.StringType},
	},
	Transform: func(n *runemark.Node, cfg *runemark.Config) any {
		name := n.String("name")
		size := n.String("size")

		group, iconName := "global", name
		if i := strings.Index(name, "/"); i != -1 {
			group, iconName = name[:i], name[i+1:]
		}

		if svg := cfg.Icons()[group][iconName]; svg != "" {
			tag := runemark.ParseSVG(svg, name)
			if size != "" {
				tag.Attributes["width"] = size
				tag.Attributes["height"] = size
			}
			return tag
		}

		attrs := map[string]any{"class": "rf-icon", "data-icon": name}
		if size != "" {
			attrs["style"] = fmt.Sprintf("width:%s;height:%s", size, size)
		}
		return runemark.NewTag("span", attrs)
	},
}

var iconRune = &Rune{
	Name:        "icon",
	Schema:      iconSchema,
	Description: "A self-closing inline icon resolved from the theme's icon registry.",
	Type:        "Icon",
}
