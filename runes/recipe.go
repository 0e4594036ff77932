package runes

import (
	"strconv"

	"github.com/runemark/runemark"
)

var recipeSchema = runemark.CreateSchema(runemark.ModelSpec{
	Fields: []runemark.Field{
		runemark.Attr("prepTime", runemark.AttributeSpec{Type: runemark.StringType}),
		runemark.Attr("cookTime", runemark.AttributeSpec{Type: runemark.StringType}),
		runemark.Attr("servings", runemark.AttributeSpec{Type: runemark.NumberType}),
		runemark.Attr("difficulty", runemark.AttributeSpec{
			Type:    runemark.StringType,
			Default: "medium",
			Matches: []string{"easy", "medium", "hard"},
		}),
		runemark.Group("header", runemark.GroupOptions{Include: []runemark.NodeFilter{
			runemark.FilterType("heading"),
			runemark.FilterType("paragraph"),
			runemark.FilterType("image"),
		}}),
		runemark.Group("body", runemark.GroupOptions{Include: []runemark.NodeFilter{
			runemark.FilterType("list"),
			runemark.FilterType("tag"),
			runemark.FilterType("blockquote"),
		}}),
	},
	Transform: func(m *runemark.Model) any {
		header := m.Group("header").Transform()
		body := m.Group("body").Transform()

		prepTimeMeta := meta(m.String("prepTime"))
		cookTimeMeta := meta(m.String("cookTime"))
		servings := ""
		if m.Has("servings") {
			servings = strconv.Itoa(m.Int("servings"))
		}
		servingsMeta := meta(servings)
		difficultyMeta := meta(m.String("difficulty"))

		// The first unordered list is the ingredients, the first ordered
		// list the steps, blockquotes are tips.
		var ingredients, steps, tips []any
		for _, node := range body.ToArray() {
			t, ok := runemark.IsTag(node)
			if !ok {
				continue
			}
			switch {
			case t.Name == "ul" && len(ingredients) == 0:
				ingredients = append(ingredients, t.Children...)
			case t.Name == "ol" && len(steps) == 0:
				steps = append(steps, t.Children...)
			case t.Name == "blockquote":
				tips = append(tips, t)
			}
		}

		ingredientsList := runemark.NewTag("ul", nil, ingredients...)
		stepsList := runemark.NewTag("ol", nil, steps...)
		tipsDiv := runemark.NewTag("div", nil, tips...)

		children := []any{
			prepTimeMeta, cookTimeMeta, servingsMeta, difficultyMeta,
			header.Wrap("header", nil).Next(),
			ingredientsList, stepsList,
		}
		if len(tips) > 0 {
			children = append(children, tipsDiv)
		}

		return runemark.CreateComponentRenderable("Recipe", runemark.ComponentSpec{
			Tag:      "article",
			Property: "contentSection",
			Properties: merge(pageSectionProperties(header), map[string]any{
				"prepTime":   prepTimeMeta,
				"cookTime":   cookTimeMeta,
				"servings":   servingsMeta,
				"difficulty": difficultyMeta,
			}),
			Refs: map[string]any{
				"ingredients": ingredientsList,
				"steps":       stepsList,
				"tips":        tipsDiv,
			},
			Children: children,
		})
	},
})

var recipeRune = &Rune{
	Name:        "recipe",
	Schema:      recipeSchema,
	Description: "A recipe card: the first unordered list is the ingredients, the first ordered list the steps, and blockquotes become tips.",
	Reinterprets: map[string]string{
		"list":       "unordered becomes ingredients, ordered becomes steps",
		"blockquote": "becomes a tip",
	},
	SEOType: "Recipe",
	Type:    "Recipe",
}
