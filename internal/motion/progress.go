package motion

import "time"

// Progress is the normalized scroll position in [0,1]. A document that fits
// in the viewport counts as fully scrolled.
func Progress(offset, viewport, document float64) float64 {
	span := document - viewport
	if span <= 0 {
		return 1
	}
	return clamp01(offset / span)
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

// Indicator is the header's progress bar: scroll sets the target, frames
// move the bar toward it along the spring.
type Indicator struct {
	spring   *Spring
	viewport float64
	document float64
}

func NewIndicator(cfg SpringConfig, viewport, document float64) *Indicator {
	return &Indicator{
		spring:   NewSpring(cfg, 0),
		viewport: viewport,
		document: document,
	}
}

func (i *Indicator) Scroll(offset float64) {
	i.spring.SetTarget(Progress(offset, i.viewport, i.document))
}

// Frame advances the spring by dt and returns the bar's horizontal scale.
func (i *Indicator) Frame(dt time.Duration) float64 {
	return clamp01(i.spring.Step(dt))
}

func (i *Indicator) Scale() float64 { return clamp01(i.spring.Value()) }

func (i *Indicator) Settled() bool { return i.spring.AtRest() }
