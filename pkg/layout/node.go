// Package layout holds a small recursive node tree that page builders emit and
// any rendering target can consume.
package layout

import (
	"slices"
	"strings"
)

// Attr is a single element attribute. Order is preserved on output.
type Attr struct {
	Key string `json:"key"`
	Val string `json:"val"`
}

// Node is an element when Tag is set and a text node otherwise.
type Node struct {
	Tag      string  `json:"tag,omitempty"`
	Text     string  `json:"text,omitempty"`
	Attrs    []Attr  `json:"attrs,omitempty"`
	Children []*Node `json:"children,omitempty"`
}

// El creates an element node.
func El(tag string, attrs ...Attr) *Node {
	return &Node{Tag: tag, Attrs: attrs}
}

// Text creates a text node.
func Text(s string) *Node {
	return &Node{Text: s}
}

// A is shorthand for an attribute.
func A(key, val string) Attr {
	return Attr{Key: key, Val: val}
}

// Class is shorthand for a class attribute.
func Class(names ...string) Attr {
	return Attr{Key: "class", Val: strings.Join(names, " ")}
}

// IsText reports whether n is a text node.
func (n *Node) IsText() bool {
	return n.Tag == ""
}

// Append adds non-nil children and returns n for chaining.
func (n *Node) Append(children ...*Node) *Node {
	for _, c := range children {
		if c != nil {
			n.Children = append(n.Children, c)
		}
	}
	return n
}

// Attr returns the value of key.
func (n *Node) Attr(key string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttr replaces or adds key.
func (n *Node) SetAttr(key, val string) {
	for i := range n.Attrs {
		if n.Attrs[i].Key == key {
			n.Attrs[i].Val = val
			return
		}
	}
	n.Attrs = append(n.Attrs, Attr{Key: key, Val: val})
}

// Classes returns the space separated class list.
func (n *Node) Classes() []string {
	v, _ := n.Attr("class")
	return strings.Fields(v)
}

// HasClass reports whether n carries class name.
func (n *Node) HasClass(name string) bool {
	return slices.Contains(n.Classes(), name)
}

// AddClass appends name unless already present.
func (n *Node) AddClass(name string) {
	if n.HasClass(name) {
		return
	}
	n.SetAttr("class", strings.Join(append(n.Classes(), name), " "))
}

// Walk visits n and its descendants depth first in document order. Returning
// false from fn skips the children of the visited node.
func (n *Node) Walk(fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// TextContent concatenates every text node below n.
func (n *Node) TextContent() string {
	var b strings.Builder
	n.Walk(func(c *Node) bool {
		if c.IsText() {
			b.WriteString(c.Text)
		}
		return true
	})
	return b.String()
}
