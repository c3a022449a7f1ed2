package sgf

import (
	"io"
	"strings"
)

const indentUnit = "  "

// Write renders a collection in canonical form, trees separated by a newline.
// An empty collection, which only a lax parse produces, writes as "" and
// only parses back in lax mode.
func Write(c *Collection) string {
	var b strings.Builder
	for i, t := range c.Trees {
		if i > 0 {
			b.WriteByte('\n')
		}
		writeTree(&b, t)
	}
	return b.String()
}

// WriteTree renders a single tree in canonical form.
func WriteTree(t *Tree) string {
	var b strings.Builder
	writeTree(&b, t)
	return b.String()
}

// WriteTo writes the canonical form of c to w.
func WriteTo(w io.Writer, c *Collection) (int64, error) {
	n, err := io.WriteString(w, Write(c))
	return int64(n), err
}

func writeTree(b *strings.Builder, t *Tree) {
	b.WriteByte('(')
	if t.Root != nil {
		writeNode(b, t.Root, 1)
	}
	b.WriteString("\n)")
}

// writeNode emits n and its single-child chain at depth; each child of a
// branch point gets its own block one level deeper.
func writeNode(b *strings.Builder, n *Node, depth int) {
	indent := strings.Repeat(indentUnit, depth)
	for {
		b.WriteByte('\n')
		b.WriteString(indent)
		b.WriteByte(';')
		for i, p := range n.props {
			if i > 0 {
				b.WriteByte('\n')
				b.WriteString(indent)
			}
			writeProperty(b, p)
		}
		if len(n.children) != 1 {
			break
		}
		n = n.children[0]
	}

	for _, c := range n.children {
		b.WriteByte('\n')
		b.WriteString(indent)
		b.WriteByte('(')
		writeNode(b, c, depth+1)
		b.WriteByte('\n')
		b.WriteString(indent)
		b.WriteByte(')')
	}
}

// Comments get back the "\]" escape that parsing removed; nothing else is
// escaped.
func writeProperty(b *strings.Builder, p Property) {
	_, comment := lookupFormat(p.ID).(commentFormat)
	b.WriteString(p.ID)
	for _, item := range p.Value.items {
		if comment {
			item = strings.ReplaceAll(item, "]", `\]`)
		}
		b.WriteByte('[')
		b.WriteString(item)
		b.WriteByte(']')
	}
}
