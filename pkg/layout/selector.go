package layout

import "strings"

// Selector matches a single element by tag, class and id, written as
// "tag", ".class", "#id" or any combination such as "div.row#first".
type Selector struct {
	Tag     string
	ID      string
	Classes []string
}

// ParseSelector parses a simple selector. Combinators are not supported.
func ParseSelector(s string) Selector {
	var sel Selector
	s = strings.TrimSpace(s)
	cur, kind := strings.Builder{}, byte(0)
	flush := func() {
		v := cur.String()
		cur.Reset()
		if v == "" {
			return
		}
		switch kind {
		case '.':
			sel.Classes = append(sel.Classes, v)
		case '#':
			sel.ID = v
		default:
			sel.Tag = v
		}
	}
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '.', '#':
			flush()
			kind = c
		default:
			cur.WriteByte(c)
		}
	}
	flush()
	return sel
}

// Matches reports whether n satisfies the selector.
func (s Selector) Matches(n *Node) bool {
	if n == nil || n.IsText() {
		return false
	}
	if s.Tag != "" && s.Tag != n.Tag {
		return false
	}
	if s.ID != "" {
		if id, _ := n.Attr("id"); id != s.ID {
			return false
		}
	}
	for _, c := range s.Classes {
		if !n.HasClass(c) {
			return false
		}
	}
	return s.Tag != "" || s.ID != "" || len(s.Classes) > 0
}

// Find returns the first element under root (root included) matching selector.
func Find(root *Node, selector string) *Node {
	sel := ParseSelector(selector)
	var found *Node
	root.Walk(func(n *Node) bool {
		if found != nil {
			return false
		}
		if sel.Matches(n) {
			found = n
			return false
		}
		return true
	})
	return found
}

// FindAll returns every element under root matching selector in document order.
func FindAll(root *Node, selector string) []*Node {
	sel := ParseSelector(selector)
	var out []*Node
	root.Walk(func(n *Node) bool {
		if sel.Matches(n) {
			out = append(out, n)
		}
		return true
	})
	return out
}
