package animation

import (
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/pkg/schedule"
)

// DefaultThreshold is the visible fraction of a target that activates it.
const DefaultThreshold = 0.15

var (
	ErrAlreadyStarted = errors.New("orchestrator already started")
	ErrNotRunning     = errors.New("orchestrator not running")
	ErrStopped        = errors.New("orchestrator stopped")
)

// Rect is a target's vertical extent in container coordinates.
type Rect struct {
	Top    float64
	Height float64
}

// Viewport is the visible region of the scroll container.
type Viewport struct {
	Top    float64
	Height float64
}

// Measurer reports where a target currently sits.
type Measurer interface {
	Measure(t *Target) Rect
}

type MeasureFunc func(t *Target) Rect

func (f MeasureFunc) Measure(t *Target) Rect { return f(t) }

type State int

const (
	Pending State = iota
	Scheduled
	Active
)

func (s State) String() string {
	switch s {
	case Scheduled:
		return "scheduled"
	case Active:
		return "active"
	}
	return "pending"
}

type EventType int

const (
	Enter EventType = iota
	Exit
	Progress
)

// Event is delivered to Options.OnEvent. Progress is in [0,1] and only
// meaningful for continuous targets.
type Event struct {
	Target   *Target
	Type     EventType
	Progress float64
}

type Options struct {
	// Threshold of zero means DefaultThreshold.
	Threshold float64
	Scheduler schedule.Scheduler
	Logger    *zap.Logger
	// OnEvent runs with the orchestrator locked and must not call back into it.
	OnEvent func(Event)
}

type track struct {
	state State
	timer schedule.Timer
}

// Orchestrator drives targets from Pending to Active as they cross the
// threshold. Non repeatable targets activate once per lifetime. Stop releases
// every timer and reference; no event is delivered after it returns.
type Orchestrator struct {
	mu        sync.Mutex
	targets   []*Target
	tracks    map[*Target]*track
	measure   Measurer
	threshold float64
	sched     schedule.Scheduler
	onEvent   func(Event)
	log       *zap.Logger
	running   bool
	stopped   bool
}

func New(targets []*Target, measure Measurer, opts Options) *Orchestrator {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	sched := opts.Scheduler
	if sched == nil {
		sched = schedule.Real
	}
	threshold := opts.Threshold
	if threshold == 0 {
		threshold = DefaultThreshold
	}
	tracks := make(map[*Target]*track, len(targets))
	for _, t := range targets {
		tracks[t] = &track{}
	}
	return &Orchestrator{
		targets:   targets,
		tracks:    tracks,
		measure:   measure,
		threshold: threshold,
		sched:     sched,
		onEvent:   opts.OnEvent,
		log:       log.Named("animation"),
	}
}

// Start enables scroll handling. It must be called once the tree is mounted
// and measurable.
func (o *Orchestrator) Start() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	switch {
	case o.stopped:
		return ErrStopped
	case o.running:
		return ErrAlreadyStarted
	}
	o.running = true
	o.log.Debug("Started", zap.Int("targets", len(o.targets)), zap.Float64("threshold", o.threshold))
	return nil
}

// Stop cancels pending activations and drops all target references. It is
// safe to call more than once.
func (o *Orchestrator) Stop() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.stopped {
		return
	}
	cancelled := 0
	for _, tr := range o.tracks {
		if tr.timer != nil && tr.timer.Stop() {
			cancelled++
		}
	}
	o.running = false
	o.stopped = true
	o.targets = nil
	o.tracks = nil
	o.measure = nil
	o.onEvent = nil
	o.log.Debug("Stopped", zap.Int("cancelled", cancelled))
}

// State returns the current state of t.
func (o *Orchestrator) State(t *Target) State {
	o.mu.Lock()
	defer o.mu.Unlock()
	if tr, ok := o.tracks[t]; ok {
		return tr.state
	}
	return Pending
}

// Scroll re-evaluates every target against vp.
func (o *Orchestrator) Scroll(vp Viewport) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.running {
		return ErrNotRunning
	}
	for _, t := range o.targets {
		tr := o.tracks[t]
		r := o.measure.Measure(t)
		ratio := intersection(r, vp)
		visible := ratio > 0 && ratio >= o.threshold

		if t.Continuous() {
			o.reveal(t, tr, r, vp, ratio > 0)
			continue
		}
		switch {
		case visible && tr.state == Pending:
			o.trigger(t, tr)
		case !visible && tr.state != Pending && t.Repeatable:
			o.reset(t, tr)
		}
	}
	return nil
}

func (o *Orchestrator) trigger(t *Target, tr *track) {
	if t.Delay <= 0 {
		tr.state = Active
		o.emit(Event{Target: t, Type: Enter})
		return
	}
	tr.state = Scheduled
	tr.timer = o.sched.AfterFunc(t.Delay, func() { o.fire(t, tr) })
	o.log.Debug("Scheduled", zap.Int("target", t.Index), zap.Duration("delay", t.Delay))
}

func (o *Orchestrator) fire(t *Target, tr *track) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.running || o.tracks[t] != tr || tr.state != Scheduled {
		return
	}
	tr.state = Active
	tr.timer = nil
	o.emit(Event{Target: t, Type: Enter})
}

func (o *Orchestrator) reset(t *Target, tr *track) {
	if tr.timer != nil {
		tr.timer.Stop()
		tr.timer = nil
	}
	wasActive := tr.state == Active
	tr.state = Pending
	if wasActive {
		o.emit(Event{Target: t, Type: Exit})
	}
}

func (o *Orchestrator) reveal(t *Target, tr *track, r Rect, vp Viewport, intersecting bool) {
	if !intersecting {
		if tr.state == Active {
			tr.state = Pending
			o.emit(Event{Target: t, Type: Exit, Progress: revealProgress(r, vp)})
		}
		return
	}
	if tr.state != Active {
		tr.state = Active
		o.emit(Event{Target: t, Type: Enter, Progress: revealProgress(r, vp)})
	}
	o.emit(Event{Target: t, Type: Progress, Progress: revealProgress(r, vp)})
}

func (o *Orchestrator) emit(ev Event) {
	if o.onEvent != nil {
		o.onEvent(ev)
	}
}

// intersection is the fraction of r inside vp.
func intersection(r Rect, vp Viewport) float64 {
	bottom := vp.Top + vp.Height
	if r.Height <= 0 {
		if r.Top >= vp.Top && r.Top <= bottom {
			return 1
		}
		return 0
	}
	visible := min(r.Top+r.Height, bottom) - max(r.Top, vp.Top)
	if visible <= 0 {
		return 0
	}
	return visible / r.Height
}

// revealProgress is 0 when r's top meets the viewport bottom and 1 when r's
// bottom leaves the viewport top.
func revealProgress(r Rect, vp Viewport) float64 {
	total := vp.Height + r.Height
	if total <= 0 {
		return 0
	}
	p := (vp.Top + vp.Height - r.Top) / total
	return min(max(p, 0), 1)
}
