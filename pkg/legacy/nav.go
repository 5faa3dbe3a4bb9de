// Package legacy keeps the old multi-page site's navigation: a cover fade
// around an iframe swap and the "curr" highlight on one of four nav items.
package legacy

// NavItem identifies one of the fixed navigation elements.
type NavItem int

const (
	Home NavItem = iota
	Projects
	About
	Contact
)

// NavItems lists every item in page order.
var NavItems = []NavItem{Home, Projects, About, Contact}

var navIDs = [...]string{
	Home:     "home",
	Projects: "proj",
	About:    "about",
	Contact:  "contact",
}

// ID is the element id used by the page markup.
func (n NavItem) ID() string {
	if n < 0 || int(n) >= len(navIDs) {
		return ""
	}
	return navIDs[n]
}

func (n NavItem) String() string { return n.ID() }

// ParseNavItem maps an element id back to its item.
func ParseNavItem(id string) (NavItem, bool) {
	for i, v := range navIDs {
		if v == id {
			return NavItem(i), true
		}
	}
	return 0, false
}

// CurrentClass marks the highlighted item.
const CurrentClass = "curr"

// NavState is which item, if any, is highlighted. The zero value has none.
type NavState struct {
	current NavItem
	set     bool
}

// Reset clears the highlight from every item.
func (s NavState) Reset() NavState {
	return NavState{}
}

// Set highlights item, replacing any previous highlight.
func (s NavState) Set(item NavItem) NavState {
	return NavState{current: item, set: true}
}

// SetID is Set by element id. Unknown ids leave the state unchanged.
func (s NavState) SetID(id string) NavState {
	item, ok := ParseNavItem(id)
	if !ok {
		return s
	}
	return s.Set(item)
}

func (s NavState) Current() (NavItem, bool) {
	return s.current, s.set
}

// Classes returns the class each nav item should carry.
func Classes(s NavState) map[NavItem]string {
	out := make(map[NavItem]string, len(NavItems))
	for _, item := range NavItems {
		out[item] = ""
	}
	if cur, ok := s.Current(); ok {
		out[cur] = CurrentClass
	}
	return out
}
