package layout

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"io"

	"github.com/a-h/templ"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Render writes n as HTML.
func Render(w io.Writer, n *Node) error {
	if n == nil {
		return nil
	}
	if err := html.Render(w, toHTML(n)); err != nil {
		return fmt.Errorf("render %s: %w", describe(n), err)
	}
	return nil
}

// RenderAll writes each node in turn.
func RenderAll(w io.Writer, nodes ...*Node) error {
	for _, n := range nodes {
		if err := Render(w, n); err != nil {
			return err
		}
	}
	return nil
}

// HTML renders n into a string safe to embed in an html/template.
func HTML(n *Node) (template.HTML, error) {
	var buf bytes.Buffer
	if err := Render(&buf, n); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// Component adapts n to a templ component.
func Component(n *Node) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return Render(w, n)
	})
}

func toHTML(n *Node) *html.Node {
	if n.IsText() {
		return &html.Node{Type: html.TextNode, Data: n.Text}
	}
	out := &html.Node{
		Type:     html.ElementNode,
		Data:     n.Tag,
		DataAtom: atom.Lookup([]byte(n.Tag)),
	}
	for _, a := range n.Attrs {
		out.Attr = append(out.Attr, html.Attribute{Key: a.Key, Val: a.Val})
	}
	for _, c := range n.Children {
		out.AppendChild(toHTML(c))
	}
	return out
}

func describe(n *Node) string {
	if n.IsText() {
		return "text node"
	}
	return "<" + n.Tag + ">"
}
