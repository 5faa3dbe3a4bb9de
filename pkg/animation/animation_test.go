package animation

import (
	"errors"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"github.com/Zachkp/portfolio/pkg/layout"
	"github.com/Zachkp/portfolio/pkg/schedule"
)

func tagged(kind string, extra ...string) *layout.Node {
	return layout.El("div", layout.Class(append([]string{AutoClass, KindPrefix + kind}, extra...)...))
}

func page() *layout.Node {
	group := layout.El("div", layout.Class(GroupClass)).Append(
		tagged("fade-in"),
		tagged("fade-in"),
		tagged("fade-in"),
	)
	return layout.El("body").Append(
		tagged("fade-in"), // outside the container
		layout.El("div", layout.Class("scroll-container")).Append(
			tagged("shrink-left"),
			group,
			layout.El("img", layout.Class(RevealClass)),
			layout.El("div", layout.Class(GroupClass)).Append(
				layout.El("div", layout.Class(GroupClass, AutoClass, KindPrefix+"slide-up")).Append(
					tagged("slide-up"),
					tagged("slide-up"),
				),
				layout.El("div", layout.Class(GroupClass, AutoClass, KindPrefix+"slide-up")),
			),
		),
	)
}

func TestDiscoverKindsGroupsAndStagger(t *testing.T) {
	targets, err := Discover(page(), ".scroll-container", 100*time.Millisecond)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if len(targets) != 9 {
		t.Fatalf("targets = %d, want 9", len(targets))
	}

	want := []struct {
		kind  Kind
		delay time.Duration
		group bool
	}{
		{ShrinkLeft, 0, false},
		{FadeIn, 0, true},
		{FadeIn, 100 * time.Millisecond, true},
		{FadeIn, 200 * time.Millisecond, true},
		{Reveal, 0, false},
		{SlideUp, 0, true},                      // first row in outer group
		{SlideUp, 0, true},                      // first member of the row group
		{SlideUp, 100 * time.Millisecond, true}, // second member of the row group
		{SlideUp, 100 * time.Millisecond, true}, // second row in outer group
	}
	for i, w := range want {
		got := targets[i]
		if got.Kind != w.kind || got.Delay != w.delay || (got.Group >= 0) != w.group {
			t.Fatalf("target %d = {%s %v group=%d}, want {%s %v grouped=%t}", i, got.Kind, got.Delay, got.Group, w.kind, w.delay, w.group)
		}
	}
	if !targets[4].Repeatable || targets[0].Repeatable {
		t.Fatal("only the reveal target should be repeatable")
	}
}

func TestDiscoverMissingContainer(t *testing.T) {
	_, err := Discover(page(), ".nope", DefaultStagger)
	if !errors.Is(err, ErrContainerNotFound) {
		t.Fatalf("Discover() error = %v, want ErrContainerNotFound", err)
	}
}

func TestAnnotateWritesDataAttributes(t *testing.T) {
	targets, err := Discover(page(), ".scroll-container", 100*time.Millisecond)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	Annotate(targets)
	if v, _ := targets[2].Node.Attr("data-ani-delay"); v != "100" {
		t.Fatalf("data-ani-delay = %q, want 100", v)
	}
	if v, _ := targets[4].Node.Attr("data-ani-repeat"); v != "true" {
		t.Fatalf("data-ani-repeat = %q, want true", v)
	}
	if plan := Plan(targets); len(plan) != 9 || plan[3].DelayMS != 200 {
		t.Fatalf("Plan() = %+v", plan)
	}
}

func TestAnnotateContainerThreshold(t *testing.T) {
	for _, tc := range []struct {
		threshold float64
		want      string
	}{
		{0, "0.15"},
		{0.4, "0.4"},
		{1, "1"},
	} {
		c := layout.El("main", layout.Class("scroll-container"))
		AnnotateContainer(c, tc.threshold)
		if v, _ := c.Attr(ThresholdAttr); v != tc.want {
			t.Fatalf("AnnotateContainer(%v) = %q, want %q", tc.threshold, v, tc.want)
		}
	}
}

// stack lays targets out 100px apart, each 100px tall.
func stack(t *Target) Rect {
	return Rect{Top: float64(t.Index) * 100, Height: 100}
}

type recorder struct {
	events []Event
}

func (r *recorder) record(ev Event) { r.events = append(r.events, ev) }

func (r *recorder) count(t *Target, typ EventType) int {
	n := 0
	for _, ev := range r.events {
		if ev.Target == t && ev.Type == typ {
			n++
		}
	}
	return n
}

func TestOneShotTargetTriggersOnce(t *testing.T) {
	target := &Target{Index: 5, Kind: FadeIn, Group: -1}
	rec := &recorder{}
	o := New([]*Target{target}, MeasureFunc(stack), Options{OnEvent: rec.record, Logger: zaptest.NewLogger(t)})
	if err := o.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	steps := []Viewport{
		{Top: 0, Height: 400},   // below the fold
		{Top: 300, Height: 400}, // visible
		{Top: 900, Height: 400}, // scrolled past
		{Top: 300, Height: 400}, // back again
		{Top: 0, Height: 400},
		{Top: 400, Height: 400},
	}
	for _, vp := range steps {
		if err := o.Scroll(vp); err != nil {
			t.Fatalf("Scroll() error = %v", err)
		}
	}
	if got := rec.count(target, Enter); got != 1 {
		t.Fatalf("enter events = %d, want 1", got)
	}
	if o.State(target) != Active {
		t.Fatalf("state = %v, want active", o.State(target))
	}
}

func TestRepeatableTargetRetriggers(t *testing.T) {
	target := &Target{Index: 5, Kind: FadeIn, Group: -1, Repeatable: true}
	rec := &recorder{}
	o := New([]*Target{target}, MeasureFunc(stack), Options{OnEvent: rec.record})
	if err := o.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	for _, vp := range []Viewport{{Top: 300, Height: 400}, {Top: 900, Height: 400}, {Top: 300, Height: 400}} {
		if err := o.Scroll(vp); err != nil {
			t.Fatalf("Scroll() error = %v", err)
		}
	}
	if got := rec.count(target, Enter); got != 2 {
		t.Fatalf("enter events = %d, want 2", got)
	}
	if got := rec.count(target, Exit); got != 1 {
		t.Fatalf("exit events = %d, want 1", got)
	}
}

func TestThresholdCrossingFromBelow(t *testing.T) {
	target := &Target{Index: 5, Kind: SlideUp, Group: -1}
	rec := &recorder{}
	o := New([]*Target{target}, MeasureFunc(stack), Options{Threshold: 0.5, OnEvent: rec.record})
	if err := o.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	// 40% of the target visible
	if err := o.Scroll(Viewport{Top: 140, Height: 400}); err != nil {
		t.Fatalf("Scroll() error = %v", err)
	}
	if len(rec.events) != 0 {
		t.Fatalf("events below threshold = %d", len(rec.events))
	}
	// 60% visible
	if err := o.Scroll(Viewport{Top: 160, Height: 400}); err != nil {
		t.Fatalf("Scroll() error = %v", err)
	}
	if rec.count(target, Enter) != 1 {
		t.Fatal("target should enter once past the threshold")
	}
}

func TestStaggeredActivationWaitsForDelay(t *testing.T) {
	sched := schedule.NewManual()
	first := &Target{Index: 0, Kind: FadeIn, Group: 0}
	second := &Target{Index: 1, Kind: FadeIn, Group: 0, Position: 1, Delay: 100 * time.Millisecond}
	rec := &recorder{}
	o := New([]*Target{first, second}, MeasureFunc(stack), Options{Scheduler: sched, OnEvent: rec.record})
	if err := o.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if err := o.Scroll(Viewport{Top: 0, Height: 400}); err != nil {
		t.Fatalf("Scroll() error = %v", err)
	}
	if rec.count(first, Enter) != 1 || rec.count(second, Enter) != 0 {
		t.Fatalf("events before delay = %+v", rec.events)
	}
	if o.State(second) != Scheduled {
		t.Fatalf("second state = %v, want scheduled", o.State(second))
	}
	sched.Advance(100 * time.Millisecond)
	if rec.count(second, Enter) != 1 {
		t.Fatal("second target should enter after its delay")
	}
}

func TestNoEventsAfterStop(t *testing.T) {
	sched := schedule.NewManual()
	target := &Target{Index: 0, Kind: FadeIn, Group: 0, Delay: 100 * time.Millisecond}
	rec := &recorder{}
	o := New([]*Target{target}, MeasureFunc(stack), Options{Scheduler: sched, OnEvent: rec.record})
	if err := o.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if err := o.Scroll(Viewport{Top: 0, Height: 400}); err != nil {
		t.Fatalf("Scroll() error = %v", err)
	}
	o.Stop()
	if sched.Pending() != 0 {
		t.Fatalf("pending timers after Stop = %d, want 0", sched.Pending())
	}
	sched.Advance(time.Second)
	if len(rec.events) != 0 {
		t.Fatalf("events after Stop = %+v", rec.events)
	}
	if err := o.Scroll(Viewport{Top: 0, Height: 400}); !errors.Is(err, ErrNotRunning) {
		t.Fatalf("Scroll() after Stop = %v, want ErrNotRunning", err)
	}
	if err := o.Start(); !errors.Is(err, ErrStopped) {
		t.Fatalf("Start() after Stop = %v, want ErrStopped", err)
	}
	o.Stop()
}

func TestScrollBeforeStartIsRejected(t *testing.T) {
	target := &Target{Index: 0, Kind: FadeIn, Group: -1}
	rec := &recorder{}
	o := New([]*Target{target}, MeasureFunc(stack), Options{OnEvent: rec.record})
	if err := o.Scroll(Viewport{Top: 0, Height: 400}); !errors.Is(err, ErrNotRunning) {
		t.Fatalf("Scroll() before Start = %v, want ErrNotRunning", err)
	}
	if len(rec.events) != 0 {
		t.Fatal("no events expected before Start")
	}
	if err := o.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if err := o.Start(); !errors.Is(err, ErrAlreadyStarted) {
		t.Fatalf("second Start() = %v, want ErrAlreadyStarted", err)
	}
}

func TestRevealTracksContinuousProgress(t *testing.T) {
	target := &Target{Index: 5, Kind: Reveal, Group: -1, Repeatable: true}
	rec := &recorder{}
	o := New([]*Target{target}, MeasureFunc(stack), Options{OnEvent: rec.record})
	if err := o.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	for _, top := range []float64{200, 300, 400, 500} {
		if err := o.Scroll(Viewport{Top: top, Height: 400}); err != nil {
			t.Fatalf("Scroll() error = %v", err)
		}
	}
	var progress []float64
	for _, ev := range rec.events {
		if ev.Type == Progress {
			progress = append(progress, ev.Progress)
		}
	}
	if len(progress) != 4 {
		t.Fatalf("progress events = %d, want 4", len(progress))
	}
	for i := 1; i < len(progress); i++ {
		if progress[i] <= progress[i-1] {
			t.Fatalf("progress not increasing: %v", progress)
		}
	}
	if rec.count(target, Enter) != 1 {
		t.Fatalf("enter events = %d, want 1", rec.count(target, Enter))
	}
	if err := o.Scroll(Viewport{Top: 1000, Height: 400}); err != nil {
		t.Fatalf("Scroll() error = %v", err)
	}
	if rec.count(target, Exit) != 1 {
		t.Fatal("reveal target should exit when it leaves the viewport")
	}
}

func TestIntersection(t *testing.T) {
	cases := []struct {
		r    Rect
		vp   Viewport
		want float64
	}{
		{Rect{Top: 0, Height: 100}, Viewport{Top: 0, Height: 400}, 1},
		{Rect{Top: 350, Height: 100}, Viewport{Top: 0, Height: 400}, 0.5},
		{Rect{Top: 500, Height: 100}, Viewport{Top: 0, Height: 400}, 0},
		{Rect{Top: 200, Height: 0}, Viewport{Top: 0, Height: 400}, 1},
	}
	for _, c := range cases {
		if got := intersection(c.r, c.vp); got != c.want {
			t.Fatalf("intersection(%+v, %+v) = %v, want %v", c.r, c.vp, got, c.want)
		}
	}
}
