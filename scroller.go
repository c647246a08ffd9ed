package scroller

import (
	"math"

	"go.uber.org/zap"
)

// RenderFunc receives the scroll position and zoom level whenever they
// change.
type RenderFunc func(left, top, zoom float64)

// Scroller is a pure-logic scroll and zoom engine. It owns position, zoom and
// gesture state, and reports every change through its RenderFunc. All
// methods must be called from the goroutine that ticks its Animator's
// scheduler.
type Scroller struct {
	render RenderFunc
	anim   *Animator
	opts   Options
	log    *zap.Logger

	// Viewport in host coordinates, used to translate pointer positions.
	clientLeft, clientTop float64
	// Viewport size (post-zoom pixels) and unzoomed content size.
	clientWidth, clientHeight   float64
	contentWidth, contentHeight float64
	snapWidth, snapHeight       float64

	scrollLeft, scrollTop       float64
	zoomLevel                   float64
	maxScrollLeft, maxScrollTop float64

	// Target of the in-flight animation, so relative operations compose
	// against the intended end state.
	scheduledLeft, scheduledTop, scheduledZoom float64

	gesture gesture
	decel   deceleration
	refresh pullToRefresh

	animating               AnimationID
	didDecelerationComplete bool
	interruptedAnimation    bool
	zoomDone                func()
}

// New creates a Scroller driven by anim. A nil render is a no-op and nil
// opts selects DefaultOptions. Without an Animator every change is applied
// immediately.
func New(render RenderFunc, anim *Animator, opts *Options) *Scroller {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if anim == nil {
		o.Animating = false
	}
	if render == nil {
		render = func(float64, float64, float64) {}
	}
	if o.OnScrollingComplete == nil {
		o.OnScrollingComplete = func() {}
	}
	if o.Easing == nil {
		o.Easing = easeInOutCubic
	}
	if o.InterruptedEasing == nil {
		o.InterruptedEasing = easeOutCubic
	}
	logger := o.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scroller{
		render:     render,
		anim:       anim,
		opts:       o,
		log:        logger.Named("scroller"),
		snapWidth:  100,
		snapHeight: 100,
		zoomLevel:  1,

		scheduledZoom: 1,
	}
}

// Options returns the configuration the scroller runs with.
func (s *Scroller) Options() Options {
	return s.opts
}

// SetDimensions configures the viewport size and the unzoomed content size.
// Non-finite arguments (math.NaN()) keep the previous value. The current
// position is re-clamped and published without animation.
func (s *Scroller) SetDimensions(clientWidth, clientHeight, contentWidth, contentHeight float64) {
	if isFinite(clientWidth) {
		s.clientWidth = clientWidth
	}
	if isFinite(clientHeight) {
		s.clientHeight = clientHeight
	}
	if isFinite(contentWidth) {
		s.contentWidth = contentWidth
	}
	if isFinite(contentHeight) {
		s.contentHeight = contentHeight
	}

	s.computeScrollMax(s.zoomLevel)
	s.ScrollTo(s.scrollLeft, s.scrollTop, false)
}

// SetPosition stores the viewport's offset in host coordinates. It is only
// used to convert absolute pointer coordinates into viewport coordinates.
func (s *Scroller) SetPosition(left, top float64) {
	s.clientLeft = left
	s.clientTop = top
}

// SetSnapSize sets the grid used when Options.Snapping is enabled.
func (s *Scroller) SetSnapSize(width, height float64) {
	s.snapWidth = width
	s.snapHeight = height
}

// Values returns the current scroll position and zoom level.
func (s *Scroller) Values() (left, top, zoom float64) {
	return s.scrollLeft, s.scrollTop, s.zoomLevel
}

// ScrollMax returns the maximum scroll position at the current zoom level.
func (s *Scroller) ScrollMax() (left, top float64) {
	return s.maxScrollLeft, s.maxScrollTop
}

// IsTracking reports whether a touch sequence is in progress.
func (s *Scroller) IsTracking() bool { return s.gesture.tracking }

// IsDragging reports whether the current touch sequence moves the content.
func (s *Scroller) IsDragging() bool { return s.gesture.dragging }

// IsDecelerating reports whether momentum scrolling is running.
func (s *Scroller) IsDecelerating() bool { return s.decel.id != 0 }

// IsAnimating reports whether a transition to a target is running.
func (s *Scroller) IsAnimating() bool { return s.animating != 0 }

// computeScrollMax recomputes the scroll bounds for the given zoom level.
func (s *Scroller) computeScrollMax(zoom float64) {
	s.maxScrollLeft = math.Max(s.contentWidth*zoom-s.clientWidth, 0)
	s.maxScrollTop = math.Max(s.contentHeight*zoom-s.clientHeight, 0)
}

func (s *Scroller) stopDeceleration() {
	if s.decel.id != 0 {
		s.anim.Stop(s.decel.id)
		s.decel.id = 0
	}
}

// publish applies a position, either immediately or through an animation
// towards it. Starting a new animation stops the one in flight; the new run
// then eases out only, continuing the motion instead of restarting from rest.
func (s *Scroller) publish(left, top, zoom float64, animate bool) {
	wasAnimating := s.animating
	if wasAnimating != 0 {
		s.anim.Stop(wasAnimating)
		s.animating = 0
	}

	if !animate || !s.opts.Animating || s.opts.AnimationDuration <= 0 {
		s.scrollLeft, s.scheduledLeft = left, left
		s.scrollTop, s.scheduledTop = top, top
		s.zoomLevel, s.scheduledZoom = zoom, zoom

		s.render(left, top, zoom)

		if s.opts.Zooming {
			s.computeScrollMax(s.zoomLevel)
			s.fireZoomDone()
		}
		return
	}

	s.scheduledLeft = left
	s.scheduledTop = top
	s.scheduledZoom = zoom

	oldLeft, oldTop, oldZoom := s.scrollLeft, s.scrollTop, s.zoomLevel

	step := func(value, _ float64, render bool) bool {
		if render {
			s.scrollLeft = lerp(oldLeft, left, value)
			s.scrollTop = lerp(oldTop, top, value)
			s.zoomLevel = lerp(oldZoom, zoom, value)
			s.render(s.scrollLeft, s.scrollTop, s.zoomLevel)
		}
		return true
	}
	verify := func(id AnimationID) bool {
		return s.animating == id
	}
	completed := func(_ float64, id AnimationID, finished bool) {
		active := id == s.animating
		if active {
			s.animating = 0
		}
		if s.didDecelerationComplete || finished {
			s.opts.OnScrollingComplete()
		}
		if active && s.opts.Zooming {
			s.computeScrollMax(s.zoomLevel)
			s.fireZoomDone()
		}
	}

	easing := s.opts.Easing
	if wasAnimating != 0 {
		easing = s.opts.InterruptedEasing
	}
	id := s.anim.Start(step, verify, completed, s.opts.AnimationDuration, easing)
	if s.anim.IsRunning(id) {
		s.animating = id
		return
	}
	// The run never got a frame; the target was not reached.
	s.scheduledLeft, s.scheduledTop, s.scheduledZoom = s.scrollLeft, s.scrollTop, s.zoomLevel
}

func (s *Scroller) fireZoomDone() {
	if s.zoomDone != nil {
		done := s.zoomDone
		s.zoomDone = nil
		done()
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(math.Min(v, hi), lo)
}
