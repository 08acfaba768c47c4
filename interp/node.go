package interp

import (
	"fmt"
	"io"
	"strings"

	"github.com/KimNorgaard/go-peg/errors"
	"github.com/KimNorgaard/go-peg/source"
)

// Node is a matched production in the concrete syntax tree. Lexical
// productions have no children.
type Node struct {
	Name     string
	Text     string
	Location source.Location
	Children []*Node
}

// Walk calls fn for n and its descendants in depth-first order. Returning
// false from fn skips the node's children.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// Find returns the first node named name, or nil.
func (n *Node) Find(name string) *Node {
	var found *Node
	n.Walk(func(c *Node) bool {
		if found != nil {
			return false
		}
		if c.Name == name {
			found = c
			return false
		}
		return true
	})
	return found
}

// WriteTo writes the tree one node per line, children indented under their
// parent. Lexical nodes show their text.
func (n *Node) WriteTo(w io.Writer) (int64, error) {
	written, err := io.WriteString(w, n.String())
	return int64(written), err
}

func (n *Node) write(b *strings.Builder, depth int) {
	start, end := n.Location.Start, n.Location.End
	fmt.Fprintf(b, "%s%s %s-%s", strings.Repeat("  ", depth), n.Name, start, end)
	if isLexical(n.Name) {
		fmt.Fprintf(b, " \"%s\"", errors.LiteralEscape(n.Text))
	}
	b.WriteByte('\n')
	for _, c := range n.Children {
		c.write(b, depth+1)
	}
}

// String returns the tree as written by WriteTo.
func (n *Node) String() string {
	var b strings.Builder
	n.write(&b, 0)
	return b.String()
}
