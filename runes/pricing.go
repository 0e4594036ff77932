package runes

import (
	"regexp"
	"strings"

	"github.com/runemark/runemark"
)

// namePricePattern splits tier headings like "Pro - $29/month" into a
// name and a price.
var namePricePattern = regexp.MustCompile(`^(.+?)\s*[-\x{2013}\x{2014}]\s*(.+)$`)

var pricingSchema = runemark.CreateSchema(runemark.ModelSpec{
	Fields: []runemark.Field{
		runemark.Attr("headingLevel", runemark.AttributeSpec{Type: runemark.NumberType}),
		runemark.Group("header", runemark.GroupOptions{Include: []runemark.NodeFilter{
			runemark.FilterType("heading"),
			runemark.FilterType("paragraph"),
		}}),
		runemark.Group("tiers", runemark.GroupOptions{Include: []runemark.NodeFilter{
			runemark.FilterType("tag"),
		}}),
	},
	ProcessChildren: pricingHeadingsToTiers,
	Transform: func(m *runemark.Model) any {
		header := m.Group("header").Transform()
		tiers := m.Group("tiers").Transform()

		tierItems := tiers.Tag("li")
		tiersList := tiers.Wrap("ul", map[string]any{
			"data-layout":  "grid",
			"data-columns": tiers.Count(),
		})

		return runemark.CreateComponentRenderable("Pricing", runemark.ComponentSpec{
			Tag:      "section",
			Property: "contentSection",
			Properties: merge(pageSectionProperties(header), map[string]any{
				"tier": tierItems,
			}),
			Refs: map[string]any{
				"tiers": tiersList.Tag("ul"),
			},
			Children: []any{
				header.Wrap("header", nil).Next(),
				tiersList.Next(),
			},
		})
	},
})

// pricingHeadingsToTiers converts headings shaped like "Name - Price"
// into tier tags. Headings that do not match keep their original form,
// so a pricing section can mix tiers with plain copy.
func pricingHeadingsToTiers(m *runemark.Model, nodes []*runemark.Node) []*runemark.Node {
	level := m.Int("headingLevel")
	if level == 0 {
		for _, n := range nodes {
			if n.Type == "heading" && namePricePattern.MatchString(headingText(n)) {
				level = n.Int("level")
				break
			}
		}
	}
	if level == 0 {
		return nodes
	}

	converted := runemark.HeadingsToList(runemark.HeadingsToListOptions{Level: level})(nodes)
	last := len(converted) - 1
	if last < 0 || converted[last].Type != "list" {
		return nodes
	}

	out := append([]*runemark.Node{}, converted[:last]...)
	for _, item := range converted[last].Children {
		if len(item.Children) == 0 {
			continue
		}
		heading := item.Children[0]
		match := namePricePattern.FindStringSubmatch(headingText(heading))
		if match != nil {
			out = append(out, runemark.NewTagNode("tier", map[string]any{
				"name":  strings.TrimSpace(match[1]),
				"price": strings.TrimSpace(match[2]),
			}, item.Children[1:]...))
		} else {
			out = append(out, heading)
			out = append(out, item.Children[1:]...)
		}
	}
	return out
}

var tierSchema = runemark.CreateSchema(runemark.ModelSpec{
	Fields: []runemark.Field{
		runemark.Attr("name", runemark.AttributeSpec{Type: runemark.StringType, Required: true}),
		runemark.Attr("price", runemark.AttributeSpec{Type: runemark.StringType}),
		runemark.Attr("featured", runemark.AttributeSpec{Type: runemark.BooleanType}),
		runemark.Attr("currency", runemark.AttributeSpec{Type: runemark.StringType}),
		runemark.Attr("priceMonthly", runemark.AttributeSpec{Type: runemark.StringType}),
	},
	Transform: func(m *runemark.Model) any {
		typeName := "Tier"
		if m.Bool("featured") {
			typeName = "FeaturedTier"
		}

		price := m.String("price")
		if price == "" {
			// priceMonthly is the older spelling.
			price = m.String("priceMonthly")
		}

		name := runemark.NewTag("h1", nil, m.String("name"))
		priceTag := runemark.NewTag("p", nil, price)
		children := m.TransformChildren(nil)
		body := children.Wrap("div", nil)

		properties := map[string]any{
			"name":        name,
			"description": descriptionOf(children),
			"price":       priceTag,
			"url":         children.Flatten().Tag("a"),
		}
		out := []any{name, priceTag}
		if currency := m.String("currency"); currency != "" {
			currencyMeta := meta(currency)
			properties["currency"] = currencyMeta
			out = append(out, currencyMeta)
		}
		out = append(out, body.Next())

		return runemark.CreateComponentRenderable(typeName, runemark.ComponentSpec{
			Tag:        "li",
			Properties: properties,
			Refs: map[string]any{
				"body": body.Tag("div"),
			},
			Children: out,
		})
	},
})

var pricingRune = &Rune{
	Name:        "pricing",
	Schema:      pricingSchema,
	Description: "A pricing section; headings like \"Pro - $29/month\" become tiers laid out side by side.",
	Reinterprets: map[string]string{
		"heading": "shaped like \"Name - Price\", becomes a tier",
	},
	SEOType: "Product",
	Type:    "Pricing",
}

var tierRune = &Rune{
	Name:        "tier",
	Schema:      tierSchema,
	Description: "One pricing tier; featured tiers render with emphasis.",
	SEOType:     "Offer",
	Type:        "Tier",
}
