package runemark

// HeadingsToListOptions configures HeadingsToList.
type HeadingsToListOptions struct {
	// Level selects the heading level to promote. Zero auto-detects from
	// the first heading in the input.
	Level int

	// Include restricts which nodes are re-parented under the current
	// item. A non-matching node stops collection; the remainder is kept
	// after the synthetic list (see below).
	Include []NodeFilter
}

// HeadingsToList returns a rewrite that promotes same-level headings in a
// flat children array into a synthetic list/item structure: each matching
// heading opens an item, and subsequent nodes are re-parented under it
// until the next matching heading. Content before the first matching
// heading stays at the front, untouched. Node identity is preserved — no
// cloning.
//
// If no heading matches the target level, the input is returned
// unchanged. When an Include filter rejects a node, collection stops at
// that point and the remainder of the input is appended after the list;
// this truncation point is deliberate and pinned by tests.
func HeadingsToList(opts HeadingsToListOptions) func([]*Node) []*Node {
	return func(nodes []*Node) []*Node {
		level := opts.Level
		if level == 0 {
			for _, n := range nodes {
				if n.Type == "heading" {
					level = n.Int("level")
					break
				}
			}
		}
		if level == 0 {
			return nodes
		}

		list := NewNode("list", map[string]any{"ordered": false})
		var head []*Node
		var tail []*Node
		started := false

	scan:
		for i, node := range nodes {
			switch {
			case node.Type == "heading" && node.Int("level") == level:
				list.Children = append(list.Children, NewNode("item", nil, node))
				started = true
			case !started:
				head = append(head, node)
			case includesNode(opts.Include, node):
				if last := len(list.Children) - 1; last >= 0 {
					item := list.Children[last]
					item.Children = append(item.Children, node)
				}
			default:
				tail = nodes[i:]
				break scan
			}
		}

		if len(list.Children) == 0 {
			return nodes
		}

		out := make([]*Node, 0, len(head)+1+len(tail))
		out = append(out, head...)
		out = append(out, list)
		out = append(out, tail...)
		return out
	}
}

func includesNode(filters []NodeFilter, n *Node) bool {
	if len(filters) == 0 {
		return true
	}
	for _, f := range filters {
		if MatchesFilter(n, f) {
			return true
		}
	}
	return false
}

// HeadingInfo is a pre-scan summary of one heading node.
type HeadingInfo struct {
	Level int
	Text  string
	ID    string
}

// ExtractHeadings walks an AST collecting heading text and ids, using the
// same slug algorithm as the built-in heading schema.
func ExtractHeadings(root *Node) []HeadingInfo {
	var out []HeadingInfo
	walk := append([]*Node{root}, root.Walk()...)
	for _, n := range walk {
		if n.Type != "heading" {
			continue
		}
		text := n.Text()
		id := n.String("id")
		if id == "" {
			id = HeadingSlug(text)
		}
		out = append(out, HeadingInfo{Level: n.Int("level"), Text: text, ID: id})
	}
	return out
}
