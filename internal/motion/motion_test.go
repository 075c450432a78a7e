package motion

import (
	"math"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frame = 16 * time.Millisecond

func TestHeaderSpringIsOverDamped(t *testing.T) {
	assert.Greater(t, HeaderSpring.DampingRatio(), 1.0)
}

func TestSpringConvergesWithoutOvershoot(t *testing.T) {
	s := NewSpring(HeaderSpring, 0)
	s.SetTarget(1)

	for i := 0; i < 600 && !s.AtRest(); i++ {
		v := s.Step(frame)
		require.LessOrEqual(t, v, 1.0)
	}
	assert.True(t, s.AtRest())
	assert.Equal(t, 1.0, s.Value())
}

func TestSpringLagsBehindJump(t *testing.T) {
	s := NewSpring(HeaderSpring, 0)
	s.SetTarget(1)
	v := s.Step(frame)
	assert.Greater(t, v, 0.0)
	assert.Less(t, v, 0.5, "indicator should not snap to an abrupt jump")
}

func TestSpringFrameRateIndependent(t *testing.T) {
	a := NewSpring(HeaderSpring, 0)
	b := NewSpring(HeaderSpring, 0)
	a.SetTarget(1)
	b.SetTarget(1)

	a.Step(32 * time.Millisecond)
	b.Step(16 * time.Millisecond)
	b.Step(16 * time.Millisecond)
	assert.InDelta(t, a.Value(), b.Value(), 1e-9)
}

func TestSpringRegimes(t *testing.T) {
	configs := map[string]SpringConfig{
		"under":    {Stiffness: 100, Damping: 4, Mass: 1, RestDelta: 1e-4, RestSpeed: 1e-4},
		"critical": {Stiffness: 100, Damping: 20, Mass: 1, RestDelta: 1e-4, RestSpeed: 1e-4},
		"over":     HeaderSpring,
	}
	for name, cfg := range configs {
		t.Run(name, func(t *testing.T) {
			s := NewSpring(cfg, 0)
			s.SetTarget(1)
			for i := 0; i < 2000 && !s.AtRest(); i++ {
				s.Step(frame)
			}
			assert.True(t, s.AtRest())
			assert.Equal(t, 1.0, s.Value())
		})
	}
}

func TestUnderDampedOvershoots(t *testing.T) {
	s := NewSpring(SpringConfig{Stiffness: 100, Damping: 4, Mass: 1}, 0)
	s.SetTarget(1)
	peak := 0.0
	for i := 0; i < 200; i++ {
		peak = math.Max(peak, s.Step(frame))
	}
	assert.Greater(t, peak, 1.0)
}

func TestProgress(t *testing.T) {
	assert.Equal(t, 0.0, Progress(0, 800, 4800))
	assert.Equal(t, 0.5, Progress(2000, 800, 4800))
	assert.Equal(t, 1.0, Progress(4000, 800, 4800))
	assert.Equal(t, 1.0, Progress(9000, 800, 4800))
	assert.Equal(t, 0.0, Progress(-50, 800, 4800))
	assert.Equal(t, 1.0, Progress(0, 800, 600))
}

func TestIndicatorMonotonicAndBounded(t *testing.T) {
	ind := NewIndicator(HeaderSpring, 800, 6000)
	prev := ind.Scale()

	offsets := []float64{0, 10, 10, 300, 300, 2500, 2600, 2600, 5200, 5200, 9000}
	for _, off := range offsets {
		ind.Scroll(off)
		for i := 0; i < 20; i++ {
			scale := ind.Frame(frame)
			require.GreaterOrEqual(t, scale, prev-1e-12, "offset %v frame %d", off, i)
			require.GreaterOrEqual(t, scale, 0.0)
			require.LessOrEqual(t, scale, 1.0)
			prev = scale
		}
	}

	for i := 0; i < 600 && !ind.Settled(); i++ {
		ind.Frame(frame)
	}
	assert.Equal(t, 1.0, ind.Scale())
}

func TestIndicatorScrollBack(t *testing.T) {
	ind := NewIndicator(HeaderSpring, 800, 1800)
	ind.Scroll(1000)
	for i := 0; i < 600 && !ind.Settled(); i++ {
		ind.Frame(frame)
	}
	ind.Scroll(0)
	assert.Less(t, ind.Frame(100*time.Millisecond), 1.0)
}

func TestRevealOneShot(t *testing.T) {
	var r Reveal
	assert.Equal(t, NotYetVisible, r.State())
	assert.False(t, r.Observe(false))
	assert.Equal(t, NotYetVisible, r.State())

	assert.True(t, r.Observe(true))
	assert.Equal(t, Revealed, r.State())

	assert.False(t, r.Observe(true))
	assert.False(t, r.Observe(false))
	assert.Equal(t, Revealed, r.State(), "reveal never reverts")
	assert.Equal(t, "revealed", r.State().String())
}

func TestRevealConcurrent(t *testing.T) {
	var r Reveal
	var wg sync.WaitGroup
	var mu sync.Mutex
	fired := 0
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if r.Observe(true) {
				mu.Lock()
				fired++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, fired)
}

func TestViewportObserve(t *testing.T) {
	v := NewViewport(800)
	calls := 0
	release := v.Observe(Bounds{Top: 1000, Bottom: 1400}, func() { calls++ })

	v.ScrollTo(100)
	assert.Equal(t, 0, calls)

	v.ScrollTo(300)
	assert.Equal(t, 1, calls)

	v.ScrollTo(400)
	assert.Equal(t, 1, calls, "staying visible does not fire again")

	v.ScrollTo(0)
	v.ScrollTo(500)
	assert.Equal(t, 2, calls, "re-entering fires again")

	release()
	release()
	v.ScrollTo(0)
	v.ScrollTo(500)
	assert.Equal(t, 2, calls)
	assert.Equal(t, 0, v.Observed())
}

func TestViewportObserveAlreadyVisible(t *testing.T) {
	v := NewViewport(800)
	calls := 0
	v.Observe(Bounds{Top: 0, Bottom: 200}, func() { calls++ })
	assert.Equal(t, 1, calls)
}

func TestMountRevealsOnceAndReleases(t *testing.T) {
	v := NewViewport(800)
	m := Mount(v, Bounds{Top: 2000, Bottom: 2600})
	assert.Equal(t, 1, v.Observed())

	for _, top := range []float64{0, 1500, 0, 1500, 3000, 1500} {
		v.ScrollTo(top)
	}
	assert.Equal(t, Revealed, m.Reveal.State())
	assert.Equal(t, 1, m.Fired())
	assert.Equal(t, 0, v.Observed(), "observation released after the reveal")
}

func TestMountVisibleOnArrival(t *testing.T) {
	v := NewViewport(800)
	m := Mount(v, Bounds{Top: 100, Bottom: 400})
	assert.Equal(t, Revealed, m.Reveal.State())
	assert.Equal(t, 0, v.Observed())
}

func TestUnmountBeforeReveal(t *testing.T) {
	v := NewViewport(800)
	m := Mount(v, Bounds{Top: 2000, Bottom: 2600})
	m.Unmount()
	m.Unmount()

	v.ScrollTo(1800)
	assert.Equal(t, NotYetVisible, m.Reveal.State())
	assert.Equal(t, 0, m.Fired())
}
