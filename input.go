package scroller

import (
	"math"

	"go.uber.org/zap"
)

// --- Constants ---

const (
	lockThreshold     = 3.0   // px per axis before locking lets that axis scroll
	dragThreshold     = 5.0   // px before a single touch becomes a drag
	velocityWindow    = 100.0 // ms of history used to estimate release velocity
	maxHistory        = 20    // samples kept before the oldest half is dropped
	minReleaseSpeed   = 1.0   // px/frame needed to start deceleration
	minQuantizedSpeed = 4.0   // same, with paging or snapping
)

// Touch is one contact point in host coordinates.
type Touch struct {
	PageX, PageY float64
}

// sample is one entry of the position history used for release velocity.
type sample struct {
	left, top float64
	t         float64
}

// gesture is the per-touch-sequence state.
type gesture struct {
	singleTouch bool
	tracking    bool
	dragging    bool

	// Axes allowed to scroll, decided by locking for single touches.
	enableX, enableY bool

	startX, startY float64
	lastX, lastY   float64
	lastMove       float64
	lastScale      float64

	history []sample
}

func (g *gesture) record(left, top, t float64) {
	if len(g.history) > maxHistory {
		n := copy(g.history, g.history[maxHistory/2:])
		g.history = g.history[:n]
	}
	g.history = append(g.history, sample{left: left, top: top, t: t})
}

// touchPoint returns the single touch, or the midpoint of the first two.
func touchPoint(touches []Touch) (x, y float64) {
	if len(touches) == 1 {
		return touches[0].PageX, touches[0].PageY
	}
	return math.Abs(touches[0].PageX+touches[1].PageX) / 2,
		math.Abs(touches[0].PageY+touches[1].PageY) / 2
}

// --- Touch handlers ---

// TouchStart begins a touch sequence, cancelling any deceleration or
// transition in flight. Two or more touches start dragging immediately; a
// single touch must first move past the drag threshold.
func (s *Scroller) TouchStart(touches []Touch, timestamp float64) error {
	if err := checkTouches(touches); err != nil {
		return err
	}
	if err := checkTimestamp(timestamp); err != nil {
		return err
	}

	s.interruptedAnimation = true
	s.stopDeceleration()
	if s.animating != 0 {
		s.anim.Stop(s.animating)
		s.animating = 0
	}

	x, y := touchPoint(touches)
	single := len(touches) == 1

	g := &s.gesture
	g.startX, g.startY = x, y
	g.lastX, g.lastY = x, y
	g.lastMove = timestamp
	g.lastScale = 1
	g.enableX = !single && s.opts.ScrollingX
	g.enableY = !single && s.opts.ScrollingY
	g.tracking = true
	g.dragging = !single
	g.singleTouch = single
	g.history = g.history[:0]

	s.didDecelerationComplete = false
	return nil
}

// TouchMove feeds a move of the current touch sequence.
func (s *Scroller) TouchMove(touches []Touch, timestamp float64) error {
	return s.touchMove(touches, timestamp, 0, false)
}

// TouchMoveScale feeds a move carrying the pinch scale reported by the
// platform, relative to the start of the gesture.
func (s *Scroller) TouchMoveScale(touches []Touch, timestamp, scale float64) error {
	return s.touchMove(touches, timestamp, scale, isFinite(scale) && scale > 0)
}

func (s *Scroller) touchMove(touches []Touch, timestamp, scale float64, hasScale bool) error {
	if err := checkTouches(touches); err != nil {
		return err
	}
	if err := checkTimestamp(timestamp); err != nil {
		return err
	}

	g := &s.gesture
	if !g.tracking {
		return nil
	}

	var x, y float64
	if len(touches) == 2 {
		x, y = touchPoint(touches)
	} else {
		x, y = touches[0].PageX, touches[0].PageY
	}

	if g.dragging {
		s.dragTo(x, y, timestamp, scale, hasScale)
	} else {
		minScroll := 0.0
		if s.opts.Locking {
			minScroll = lockThreshold
		}
		dx := math.Abs(x - g.startX)
		dy := math.Abs(y - g.startY)

		g.enableX = s.opts.ScrollingX && dx >= minScroll
		g.enableY = s.opts.ScrollingY && dy >= minScroll

		g.record(s.scrollLeft, s.scrollTop, timestamp)

		g.dragging = (g.enableX || g.enableY) && (dx >= dragThreshold || dy >= dragThreshold)
		if g.dragging {
			s.interruptedAnimation = false
		}
	}

	g.lastX, g.lastY = x, y
	g.lastMove = timestamp
	if hasScale {
		g.lastScale = scale
	}
	return nil
}

// dragTo moves the content with the finger, applying pinch zoom and edge
// resistance, and publishes synchronously.
func (s *Scroller) dragTo(x, y, timestamp, scale float64, hasScale bool) {
	g := &s.gesture
	moveX := x - g.lastX
	moveY := y - g.lastY

	left, top, level := s.scrollLeft, s.scrollTop, s.zoomLevel

	if hasScale && s.opts.Zooming {
		oldLevel := level
		level = clamp(level/g.lastScale*scale, s.opts.MinZoom, s.opts.MaxZoom)

		if level != oldLevel {
			// Anchor at the finger position relative to the viewport.
			relX := x - s.clientLeft
			relY := y - s.clientTop
			left = (relX+left)*level/oldLevel - relX
			top = (relY+top)*level/oldLevel - relY
			s.computeScrollMax(level)
		}
	}

	speed := s.opts.SpeedMultiplier

	if g.enableX {
		left -= moveX * speed
		if left > s.maxScrollLeft || left < 0 {
			switch {
			case s.opts.Bouncing:
				left += moveX / 2 * speed
			case left > s.maxScrollLeft:
				left = s.maxScrollLeft
			default:
				left = 0
			}
		}
	}

	if g.enableY {
		top -= moveY * speed
		if top > s.maxScrollTop || top < 0 {
			switch {
			case s.opts.Bouncing:
				top += moveY / 2 * speed
				if !g.enableX {
					s.trackRefresh(top)
				}
			case top > s.maxScrollTop:
				top = s.maxScrollTop
			default:
				top = 0
			}
		}
	}

	g.record(left, top, timestamp)
	s.publish(left, top, level, false)
}

// TouchEnd finishes the touch sequence. A fast enough single-finger release
// hands off to deceleration; otherwise the position settles back inside its
// bounds (or into the pull-to-refresh zone).
func (s *Scroller) TouchEnd(timestamp float64) error {
	if err := checkTimestamp(timestamp); err != nil {
		return err
	}

	g := &s.gesture
	if !g.tracking {
		return nil
	}
	g.tracking = false

	if g.dragging {
		g.dragging = false

		recent := timestamp-g.lastMove <= velocityWindow
		switch {
		case g.singleTouch && s.opts.Animating && recent:
			if s.releaseVelocity() {
				threshold := minReleaseSpeed
				if s.opts.Paging || s.opts.Snapping {
					threshold = minQuantizedSpeed
				}
				if math.Abs(s.decel.velocityX) > threshold || math.Abs(s.decel.velocityY) > threshold {
					if !s.refresh.active {
						s.startDeceleration()
					}
				} else {
					s.opts.OnScrollingComplete()
				}
			} else {
				s.opts.OnScrollingComplete()
			}
		case !recent:
			s.opts.OnScrollingComplete()
		}
	}

	if s.decel.id == 0 {
		if s.refresh.active && s.refresh.handlers.OnStart != nil {
			s.startRefresh()
		} else {
			if s.interruptedAnimation {
				s.opts.OnScrollingComplete()
			}
			// Snaps an over-scrolled position back inside its bounds.
			s.scrollTo(s.scrollLeft, s.scrollTop, true, s.zoomLevel)

			if s.refresh.active {
				s.disarmRefresh()
			}
		}
	}

	g.history = g.history[:0]
	return nil
}

// releaseVelocity estimates the per-frame velocity from the samples recorded
// during the last velocityWindow ms before the final move. It reports false
// when the window holds a single sample or no elapsed time.
func (s *Scroller) releaseVelocity() bool {
	h := s.gesture.history
	if len(h) == 0 {
		return false
	}
	end := len(h) - 1
	start := end
	for i := end; i >= 0 && h[i].t > s.gesture.lastMove-velocityWindow; i-- {
		start = i
	}
	if start == end {
		return false
	}
	elapsed := h[end].t - h[start].t
	if elapsed <= 0 {
		return false
	}

	s.decel.velocityX = (s.scrollLeft - h[start].left) / elapsed * frameInterval
	s.decel.velocityY = (s.scrollTop - h[start].top) / elapsed * frameInterval
	s.log.Debug("release velocity",
		zap.Float64("vx", s.decel.velocityX),
		zap.Float64("vy", s.decel.velocityY),
		zap.Float64("elapsed", elapsed))
	return true
}
