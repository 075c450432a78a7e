package motion

import (
	"sort"
	"sync"
	"time"
)

type RevealState int

const (
	NotYetVisible RevealState = iota
	Revealed
)

func (s RevealState) String() string {
	if s == Revealed {
		return "revealed"
	}
	return "not-yet-visible"
}

// Reveal is the one-shot flag behind a section's entrance animation. Once
// revealed it stays revealed.
type Reveal struct {
	mu    sync.Mutex
	state RevealState
}

// Observe records a visibility change and reports whether it fired the
// reveal. Repeat calls after the first reveal are no-ops.
func (r *Reveal) Observe(visible bool) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !visible || r.state == Revealed {
		return false
	}
	r.state = Revealed
	return true
}

func (r *Reveal) State() RevealState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Bounds is an element's vertical extent in document coordinates.
type Bounds struct {
	Top    float64
	Bottom float64
}

type observation struct {
	bounds  Bounds
	fn      func()
	visible bool
}

// Viewport tracks which observed elements intersect the visible window and
// calls their callbacks when they enter it. It is the server-side model of
// the browser's IntersectionObserver.
type Viewport struct {
	mu     sync.Mutex
	top    float64
	height float64
	next   int
	obs    map[int]*observation
}

func NewViewport(height float64) *Viewport {
	return &Viewport{height: height, obs: make(map[int]*observation)}
}

// Observe registers fn to run each time b enters the viewport. If b is
// already visible, fn runs before Observe returns. The returned release
// deregisters the observation and is safe to call more than once.
func (v *Viewport) Observe(b Bounds, fn func()) (release func()) {
	v.mu.Lock()
	id := v.next
	v.next++
	o := &observation{bounds: b, fn: fn}
	v.obs[id] = o
	fire := v.intersects(b)
	o.visible = fire
	v.mu.Unlock()

	if fire {
		fn()
	}
	return func() {
		v.mu.Lock()
		delete(v.obs, id)
		v.mu.Unlock()
	}
}

// ScrollTo moves the window and fires callbacks for elements that became
// visible, in registration order. Callbacks run without the lock held, so
// they may release their own observation.
func (v *Viewport) ScrollTo(top float64) {
	v.mu.Lock()
	v.top = top
	var ids []int
	for id, o := range v.obs {
		now := v.intersects(o.bounds)
		if now && !o.visible {
			ids = append(ids, id)
		}
		o.visible = now
	}
	sort.Ints(ids)
	fns := make([]func(), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, v.obs[id].fn)
	}
	v.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Observed reports how many observations are registered.
func (v *Viewport) Observed() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.obs)
}

func (v *Viewport) intersects(b Bounds) bool {
	return b.Bottom > v.top && b.Top < v.top+v.height
}

// Mounted is a section's reveal bound to a viewport observation.
type Mounted struct {
	Reveal *Reveal

	mu       sync.Mutex
	release  func()
	released bool
	fired    int
}

// Mount starts observing b. The first time it becomes visible the reveal
// fires and the observation is released.
func Mount(v *Viewport, b Bounds) *Mounted {
	m := &Mounted{Reveal: &Reveal{}}
	release := v.Observe(b, m.visible)

	m.mu.Lock()
	m.release = release
	done := m.fired > 0
	m.mu.Unlock()

	// Already in view at mount time: visible ran before release existed.
	if done {
		m.Unmount()
	}
	return m
}

func (m *Mounted) visible() {
	fired := m.Reveal.Observe(true)
	m.mu.Lock()
	if fired {
		m.fired++
	}
	m.mu.Unlock()
	m.Unmount()
}

// Unmount stops observing. Later scrolls have no effect on the reveal.
func (m *Mounted) Unmount() {
	m.mu.Lock()
	release := m.release
	if release == nil || m.released {
		m.mu.Unlock()
		return
	}
	m.released = true
	m.mu.Unlock()
	release()
}

// Fired reports how many times the reveal transitioned.
func (m *Mounted) Fired() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fired
}

// Entrance is the transition an element plays when it is revealed: it fades
// in from OffsetY pixels below and from Scale.
type Entrance struct {
	OffsetY  float64
	Scale    float64
	Duration time.Duration
	Delay    time.Duration
}

var (
	HeadingEntrance  = Entrance{OffsetY: 12, Scale: 1, Duration: 500 * time.Millisecond}
	SubtitleEntrance = Entrance{Scale: 1, Duration: 600 * time.Millisecond, Delay: 100 * time.Millisecond}
	CardEntrance     = Entrance{OffsetY: 20, Scale: 1, Duration: 500 * time.Millisecond}
	HeroEntrance     = Entrance{OffsetY: 10, Scale: 1, Duration: 600 * time.Millisecond}
	PortraitEntrance = Entrance{Scale: 0.96, Duration: 600 * time.Millisecond}
)
