package markdown

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/runemark/runemark"
)

var tagLine = regexp.MustCompile(`^\{%\s*(/)?\s*([a-zA-Z][\w-]*)\s*(.*?)\s*(/)?\s*%\}$`)

// frame is one open tag on the scanner stack.
type frame struct {
	node *runemark.Node
}

// scanBlocks splits source into tag lines and markdown runs, parsing each
// run with goldmark and nesting results under the innermost open tag.
//
// A tag node's Lines field is [openLine, closeLine+1], so the body is
// lines[open+1 : close] of the original source — the slice rune
// transforms like sandbox use for raw extraction.
func scanBlocks(source string) []*runemark.Node {
	lines := strings.Split(source, "\n")

	root := runemark.NewNode("document", nil)
	stack := []*frame{{node: root}}
	top := func() *frame { return stack[len(stack)-1] }

	var run []string
	runStart := 0
	insideFence := false

	flush := func() {
		if len(run) == 0 {
			return
		}
		nodes := convertRun(strings.Join(run, "\n"), runStart)
		top().node.Children = append(top().node.Children, nodes...)
		run = nil
	}

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)

		// Tag markers inside fenced code are content, not structure.
		if strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~") {
			insideFence = !insideFence
		}

		m := tagLine.FindStringSubmatch(trimmed)
		if m == nil || insideFence {
			if len(run) == 0 {
				runStart = i
			}
			run = append(run, line)
			continue
		}

		flush()
		closer, name, rawAttrs, selfClosing := m[1] == "/", m[2], m[3], m[4] == "/"

		switch {
		case closer:
			if len(stack) > 1 && top().node.Tag == name {
				closed := top().node
				closed.Lines[1] = i + 1
				stack = stack[:len(stack)-1]
			} else {
				top().node.Children = append(top().node.Children, errorNode(
					fmt.Sprintf("closing tag '%s' has no matching opening tag", name), i))
			}
		case selfClosing:
			n := runemark.NewTagNode(name, parseTagAttributes(rawAttrs))
			n.Lines = [2]int{i, i + 1}
			top().node.Children = append(top().node.Children, n)
		default:
			n := runemark.NewTagNode(name, parseTagAttributes(rawAttrs))
			n.Lines = [2]int{i, i + 1}
			top().node.Children = append(top().node.Children, n)
			stack = append(stack, &frame{node: n})
		}
	}

	flush()

	// Unclosed tags keep their content; the defect is reported in-tree.
	for len(stack) > 1 {
		open := top().node
		open.Lines[1] = len(lines)
		stack = stack[:len(stack)-1]
		top().node.Children = append(top().node.Children, errorNode(
			fmt.Sprintf("tag '%s' was never closed", open.Tag), open.Lines[0]))
	}

	return root.Children
}

func errorNode(message string, line int) *runemark.Node {
	n := runemark.NewNode("error", map[string]any{"message": message})
	n.Lines = [2]int{line, line + 1}
	return n
}
