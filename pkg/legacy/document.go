package legacy

// Element is the part of a page element the swap touches.
type Element interface {
	SetAnimation(value string)
	SetInnerHTML(html string)
}

// Document looks elements up by id and returns nil for unknown ids.
type Document interface {
	Element(id string) Element
}
