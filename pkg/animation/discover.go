// Package animation discovers scroll animation targets in a layout tree and
// drives their enter and exit state from viewport changes.
package animation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Zachkp/portfolio/pkg/layout"
)

// Markup classes.
const (
	AutoClass   = "site-ani-auto"
	GroupClass  = "site-ani-group"
	RepeatClass = "site-ani-repeat"
	RevealClass = "revealing-image"
	KindPrefix  = "site-ani__"
)

// ThresholdAttr carries the activation threshold on the container.
const ThresholdAttr = "data-ani-threshold"

// Kind names a transition style. The set is open; unknown names from markup
// are kept as is.
type Kind string

const (
	FadeIn     Kind = "fade-in"
	SlideUp    Kind = "slide-up"
	ShrinkLeft Kind = "shrink-left"
	Reveal     Kind = "reveal"
)

// DefaultStagger is the per member delay increment inside a group.
const DefaultStagger = 100 * time.Millisecond

var ErrContainerNotFound = errors.New("animation container not found")

// Target is an element taking part in scroll animation.
type Target struct {
	Index      int           `json:"index"`
	Kind       Kind          `json:"kind"`
	Group      int           `json:"group"`
	Position   int           `json:"position"`
	Delay      time.Duration `json:"delay"`
	Repeatable bool          `json:"repeatable"`
	Node       *layout.Node  `json:"-"`
}

// Continuous reports whether the target follows scroll offset instead of
// switching once.
func (t *Target) Continuous() bool {
	return t.Kind == Reveal
}

// Discover finds the container matching selector under root and returns its
// animation targets in document order. Targets nested in a group are staggered
// by their position in the nearest enclosing group; Group is -1 outside any group.
func Discover(root *layout.Node, selector string, stagger time.Duration) ([]*Target, error) {
	container := layout.Find(root, selector)
	if container == nil {
		return nil, fmt.Errorf("%w: %s", ErrContainerNotFound, selector)
	}
	d := discoverer{stagger: stagger}
	d.visit(container, -1)
	return d.targets, nil
}

type discoverer struct {
	stagger time.Duration
	targets []*Target
	members []int
}

func (d *discoverer) visit(n *layout.Node, group int) {
	if n.IsText() {
		return
	}
	if kind, ok := kindOf(n); ok {
		t := &Target{
			Index:      len(d.targets),
			Kind:       kind,
			Group:      group,
			Repeatable: kind == Reveal || n.HasClass(RepeatClass),
			Node:       n,
		}
		if group >= 0 && kind != Reveal {
			t.Position = d.members[group]
			t.Delay = time.Duration(t.Position) * d.stagger
			d.members[group]++
		}
		d.targets = append(d.targets, t)
	}
	if n.HasClass(GroupClass) {
		group = len(d.members)
		d.members = append(d.members, 0)
	}
	for _, c := range n.Children {
		d.visit(c, group)
	}
}

func kindOf(n *layout.Node) (Kind, bool) {
	if n.HasClass(RevealClass) {
		return Reveal, true
	}
	if !n.HasClass(AutoClass) {
		return "", false
	}
	for _, c := range n.Classes() {
		if name, ok := strings.CutPrefix(c, KindPrefix); ok && name != "" {
			return Kind(name), true
		}
	}
	return FadeIn, true
}

// Annotate writes the discovered plan onto the target nodes as data attributes.
func Annotate(targets []*Target) {
	for _, t := range targets {
		t.Node.SetAttr("data-ani-kind", string(t.Kind))
		if t.Group >= 0 {
			t.Node.SetAttr("data-ani-group", strconv.Itoa(t.Group))
		}
		if t.Delay > 0 {
			t.Node.SetAttr("data-ani-delay", strconv.FormatInt(t.Delay.Milliseconds(), 10))
		}
		if t.Repeatable {
			t.Node.SetAttr("data-ani-repeat", "true")
		}
	}
}

// AnnotateContainer writes the activation threshold onto the container so
// the browser gates activation the same way Orchestrator.Scroll does.
// Zero means DefaultThreshold.
func AnnotateContainer(container *layout.Node, threshold float64) {
	if threshold == 0 {
		threshold = DefaultThreshold
	}
	container.SetAttr(ThresholdAttr, strconv.FormatFloat(threshold, 'f', -1, 64))
}

// PlanItem is the JSON view of a target.
type PlanItem struct {
	Index      int    `json:"index"`
	Kind       Kind   `json:"kind"`
	Tag        string `json:"tag"`
	Group      int    `json:"group"`
	Position   int    `json:"position"`
	DelayMS    int64  `json:"delay_ms"`
	Repeatable bool   `json:"repeatable"`
}

func Plan(targets []*Target) []PlanItem {
	out := make([]PlanItem, 0, len(targets))
	for _, t := range targets {
		out = append(out, PlanItem{
			Index:      t.Index,
			Kind:       t.Kind,
			Tag:        t.Node.Tag,
			Group:      t.Group,
			Position:   t.Position,
			DelayMS:    t.Delay.Milliseconds(),
			Repeatable: t.Repeatable,
		})
	}
	return out
}
