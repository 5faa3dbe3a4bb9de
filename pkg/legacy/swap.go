package legacy

import (
	"bytes"
	"time"

	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/pkg/layout"
	"github.com/Zachkp/portfolio/pkg/schedule"
)

const (
	CoverID = "cover"
	MainID  = "main"

	SwitchAnimation = "switch 0.9s linear"
	NoAnimation     = "none"

	SwapDelay  = 361 * time.Millisecond
	ClearDelay = 901 * time.Millisecond
)

// Timing is the swap sequence in the form legacy.js reads it from the page.
type Timing struct {
	SwapMS    int64
	ClearMS   int64
	Animation string
	Reset     string
}

// DefaultTiming is the sequence LoadHTML runs.
func DefaultTiming() Timing {
	return Timing{
		SwapMS:    SwapDelay.Milliseconds(),
		ClearMS:   ClearDelay.Milliseconds(),
		Animation: SwitchAnimation,
		Reset:     NoAnimation,
	}
}

// Swapper replaces the main content with an iframe behind a cover fade.
// Calls are not serialised: a second LoadHTML inside the delay window runs
// its own timers alongside the first.
type Swapper struct {
	doc   Document
	sched schedule.Scheduler
	log   *zap.Logger
}

func NewSwapper(doc Document, sched schedule.Scheduler, log *zap.Logger) *Swapper {
	if sched == nil {
		sched = schedule.Real
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Swapper{doc: doc, sched: sched, log: log.Named("legacy")}
}

// Sequence holds the two timers of one LoadHTML call.
type Sequence struct {
	Swap  schedule.Timer
	Clear schedule.Timer
}

// LoadHTML starts the cover animation now, swaps #main to an iframe of
// fragment after SwapDelay and clears the animation after ClearDelay.
// Missing elements are skipped.
func (s *Swapper) LoadHTML(fragment string) Sequence {
	s.log.Debug("Loading fragment", zap.String("fragment", fragment))
	s.withElement(CoverID, func(el Element) { el.SetAnimation(SwitchAnimation) })
	markup := IframeMarkup(fragment)
	return Sequence{
		Swap: s.sched.AfterFunc(SwapDelay, func() {
			s.withElement(MainID, func(el Element) { el.SetInnerHTML(markup) })
		}),
		Clear: s.sched.AfterFunc(ClearDelay, func() {
			s.withElement(CoverID, func(el Element) { el.SetAnimation(NoAnimation) })
		}),
	}
}

func (s *Swapper) withElement(id string, fn func(Element)) {
	el := s.doc.Element(id)
	if el == nil {
		s.log.Debug("Element not found", zap.String("id", id))
		return
	}
	fn(el)
}

// IframeNode is the element #main receives.
func IframeNode(fragment string) *layout.Node {
	return layout.El("iframe", layout.Class("iframe"), layout.A("frameborder", "0"), layout.A("src", fragment))
}

// IframeMarkup renders IframeNode.
func IframeMarkup(fragment string) string {
	var buf bytes.Buffer
	// rendering a fixed element into a buffer cannot fail
	_ = layout.Render(&buf, IframeNode(fragment))
	return buf.String()
}
