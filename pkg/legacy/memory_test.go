package legacy

import "sync"

// MemoryDocument is an in-memory Document.
type MemoryDocument struct {
	mu       sync.Mutex
	elements map[string]*MemoryElement
}

func NewMemoryDocument(ids ...string) *MemoryDocument {
	d := &MemoryDocument{elements: make(map[string]*MemoryElement, len(ids))}
	for _, id := range ids {
		d.elements[id] = &MemoryElement{doc: d}
	}
	return d
}

func (d *MemoryDocument) Element(id string) Element {
	d.mu.Lock()
	defer d.mu.Unlock()
	if el, ok := d.elements[id]; ok {
		return el
	}
	return nil
}

// Get returns the concrete element for inspection.
func (d *MemoryDocument) Get(id string) *MemoryElement {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.elements[id]
}

type MemoryElement struct {
	doc       *MemoryDocument
	animation string
	innerHTML string
	history   []string
}

func (e *MemoryElement) SetAnimation(value string) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	e.animation = value
	e.history = append(e.history, "animation="+value)
}

func (e *MemoryElement) SetInnerHTML(html string) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	e.innerHTML = html
	e.history = append(e.history, "html="+html)
}

func (e *MemoryElement) Animation() string {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	return e.animation
}

func (e *MemoryElement) InnerHTML() string {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	return e.innerHTML
}

// History lists every mutation in order.
func (e *MemoryElement) History() []string {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	return append([]string(nil), e.history...)
}
