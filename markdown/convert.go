package markdown

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/runemark/runemark"
)

var md = goldmark.New(
	goldmark.WithExtensions(extension.Table, extension.Strikethrough),
	goldmark.WithParserOptions(parser.WithAttribute()),
)

// convertRun parses one markdown run (no tag lines) and converts the
// goldmark AST into runemark nodes. lineOffset is the run's first line in
// the full document, used to absolutize recorded line ranges.
func convertRun(source string, lineOffset int) []*runemark.Node {
	src := []byte(source)
	doc := md.Parser().Parse(text.NewReader(src))

	c := &converter{src: src, lineOffset: lineOffset, lineIndex: buildLineIndex(src)}

	var out []*runemark.Node
	for child := doc.FirstChild(); child != nil; child = child.NextSibling() {
		out = append(out, c.block(child)...)
	}
	return out
}

type converter struct {
	src        []byte
	lineOffset int
	lineIndex  []int
}

// buildLineIndex records the byte offset of each line start.
func buildLineIndex(src []byte) []int {
	index := []int{0}
	for i, b := range src {
		if b == '\n' {
			index = append(index, i+1)
		}
	}
	return index
}

// lineOf returns the absolute document line of a byte offset.
func (c *converter) lineOf(offset int) int {
	line := 0
	for line+1 < len(c.lineIndex) && c.lineIndex[line+1] <= offset {
		line++
	}
	return line + c.lineOffset
}

func (c *converter) block(n ast.Node) []*runemark.Node {
	switch v := n.(type) {
	case *ast.Heading:
		node := runemark.NewNode("heading", map[string]any{"level": v.Level})
		node.Children = c.inlineChildren(v)
		c.applyAttributes(v, node)
		return []*runemark.Node{node}

	case *ast.Paragraph, *ast.TextBlock:
		children := c.inlineChildren(n)
		// A paragraph holding nothing but one image is hoisted so block
		// level cursors can address the image directly.
		if len(children) == 1 && children[0].Type == "image" {
			return children
		}
		if _, bare := n.(*ast.TextBlock); bare {
			// Tight list item content: splice inline nodes directly.
			return children
		}
		if len(children) == 0 {
			return nil
		}
		return []*runemark.Node{runemark.NewNode("paragraph", nil, children...)}

	case *ast.FencedCodeBlock:
		return []*runemark.Node{c.fence(v)}

	case *ast.CodeBlock:
		node := runemark.NewNode("fence", map[string]any{
			"content":  c.blockLinesText(v),
			"language": "shell",
		})
		return []*runemark.Node{node}

	case *ast.List:
		node := runemark.NewNode("list", map[string]any{"ordered": v.IsOrdered()})
		if v.IsOrdered() && v.Start != 1 {
			node.Attributes["start"] = v.Start
		}
		if v.Marker != 0 {
			node.Attributes["marker"] = string(v.Marker)
		}
		for item := v.FirstChild(); item != nil; item = item.NextSibling() {
			itemNode := runemark.NewNode("item", nil)
			for b := item.FirstChild(); b != nil; b = b.NextSibling() {
				itemNode.Children = append(itemNode.Children, c.block(b)...)
			}
			node.Children = append(node.Children, itemNode)
		}
		return []*runemark.Node{node}

	case *ast.Blockquote:
		node := runemark.NewNode("blockquote", nil)
		for b := v.FirstChild(); b != nil; b = b.NextSibling() {
			node.Children = append(node.Children, c.block(b)...)
		}
		return []*runemark.Node{node}

	case *ast.ThematicBreak:
		return []*runemark.Node{runemark.NewNode("hr", nil)}

	case *ast.HTMLBlock:
		content := c.blockLinesText(v)
		if strings.HasPrefix(strings.TrimSpace(content), "<!--") {
			comment := strings.TrimSpace(content)
			comment = strings.TrimPrefix(comment, "<!--")
			comment = strings.TrimSuffix(comment, "-->")
			return []*runemark.Node{runemark.NewNode("comment", map[string]any{
				"content": strings.TrimSpace(comment),
			})}
		}
		// Raw HTML is not round-tripped; runes that need it read source
		// lines instead.
		return nil

	case *east.Table:
		return []*runemark.Node{c.table(v)}

	default:
		// Unrecognized blocks: recurse into children.
		var out []*runemark.Node
		for b := n.FirstChild(); b != nil; b = b.NextSibling() {
			out = append(out, c.block(b)...)
		}
		return out
	}
}

func (c *converter) fence(v *ast.FencedCodeBlock) *runemark.Node {
	lang := string(v.Language(c.src))
	if lang == "" {
		lang = "shell"
	}
	node := runemark.NewNode("fence", map[string]any{
		"content":  c.blockLinesText(v),
		"language": lang,
	})
	if v.Lines().Len() > 0 {
		first := c.lineOf(v.Lines().At(0).Start)
		last := c.lineOf(v.Lines().At(v.Lines().Len() - 1).Start)
		// Include the fence delimiter lines.
		node.Lines = [2]int{first - 1, last + 2}
	}
	return node
}

func (c *converter) table(v *east.Table) *runemark.Node {
	table := runemark.NewNode("table", nil)
	thead := runemark.NewNode("thead", nil)
	tbody := runemark.NewNode("tbody", nil)

	for row := v.FirstChild(); row != nil; row = row.NextSibling() {
		switch r := row.(type) {
		case *east.TableHeader:
			tr := runemark.NewNode("tr", nil)
			for cell := r.FirstChild(); cell != nil; cell = cell.NextSibling() {
				tr.Children = append(tr.Children, runemark.NewNode("th", nil, c.inlineChildren(cell)...))
			}
			thead.Children = append(thead.Children, tr)
		case *east.TableRow:
			tr := runemark.NewNode("tr", nil)
			for cell := r.FirstChild(); cell != nil; cell = cell.NextSibling() {
				tr.Children = append(tr.Children, runemark.NewNode("td", nil, c.inlineChildren(cell)...))
			}
			tbody.Children = append(tbody.Children, tr)
		}
	}

	if len(thead.Children) > 0 {
		table.Children = append(table.Children, thead)
	}
	if len(tbody.Children) > 0 {
		table.Children = append(table.Children, tbody)
	}
	return table
}

func (c *converter) inlineChildren(n ast.Node) []*runemark.Node {
	var out []*runemark.Node
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		out = append(out, c.inline(child)...)
	}
	return out
}

func (c *converter) inline(n ast.Node) []*runemark.Node {
	switch v := n.(type) {
	case *ast.Text:
		content := string(v.Segment.Value(c.src))
		nodes := []*runemark.Node{textNode(content)}
		if v.HardLineBreak() {
			nodes = append(nodes, runemark.NewNode("hardbreak", nil))
		} else if v.SoftLineBreak() {
			nodes = append(nodes, textNode(" "))
		}
		return nodes

	case *ast.String:
		return []*runemark.Node{textNode(string(v.Value))}

	case *ast.Emphasis:
		typ := "em"
		if v.Level == 2 {
			typ = "strong"
		}
		return []*runemark.Node{runemark.NewNode(typ, nil, c.inlineChildren(v)...)}

	case *east.Strikethrough:
		return []*runemark.Node{runemark.NewNode("s", nil, c.inlineChildren(v)...)}

	case *ast.Link:
		attrs := map[string]any{"href": string(v.Destination)}
		if len(v.Title) > 0 {
			attrs["title"] = string(v.Title)
		}
		return []*runemark.Node{runemark.NewNode("link", attrs, c.inlineChildren(v)...)}

	case *ast.AutoLink:
		url := string(v.URL(c.src))
		return []*runemark.Node{runemark.NewNode("link", map[string]any{"href": url}, textNode(url))}

	case *ast.Image:
		attrs := map[string]any{"src": string(v.Destination)}
		if alt := string(nodeText(v, c.src)); alt != "" {
			attrs["alt"] = alt
		}
		if len(v.Title) > 0 {
			attrs["title"] = string(v.Title)
		}
		return []*runemark.Node{runemark.NewNode("image", attrs)}

	case *ast.CodeSpan:
		return []*runemark.Node{runemark.NewNode("code", map[string]any{
			"content": string(nodeText(v, c.src)),
		})}

	case *ast.RawHTML:
		return nil

	default:
		return c.inlineChildren(n)
	}
}

func (c *converter) blockLinesText(n ast.Node) string {
	var b strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		b.Write(line.Value(c.src))
	}
	return b.String()
}

// applyAttributes copies goldmark block attributes ({#id .class}) onto a
// node.
func (c *converter) applyAttributes(v ast.Node, node *runemark.Node) {
	for _, attr := range v.Attributes() {
		name := string(attr.Name)
		switch value := attr.Value.(type) {
		case []byte:
			node.Attributes[name] = string(value)
		default:
			node.Attributes[name] = value
		}
	}
}

func textNode(content string) *runemark.Node {
	return runemark.NewNode("text", map[string]any{"content": content})
}

func nodeText(n ast.Node, src []byte) []byte {
	var b strings.Builder
	var walk func(ast.Node)
	walk = func(p ast.Node) {
		for c := p.FirstChild(); c != nil; c = c.NextSibling() {
			if t, ok := c.(*ast.Text); ok {
				b.Write(t.Segment.Value(src))
			} else {
				walk(c)
			}
		}
	}
	walk(n)
	return []byte(b.String())
}
