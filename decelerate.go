package scroller

import (
	"math"

	"go.uber.org/zap"
)

const (
	frictionFactor = 0.95

	minDecelerationSpeed = 0.001 // px/frame
	minSnappingSpeed     = 4.0
)

// deceleration is the momentum state started by a flick.
type deceleration struct {
	id                   AnimationID
	velocityX, velocityY float64

	// Resting bounds; the current page when paging.
	minLeft, minTop float64
	maxLeft, maxTop float64
}

func (s *Scroller) startDeceleration() {
	d := &s.decel

	if s.opts.Paging {
		left := clamp(s.scrollLeft, 0, s.maxScrollLeft)
		top := clamp(s.scrollTop, 0, s.maxScrollTop)

		d.minLeft, d.maxLeft = pageBounds(left, s.clientWidth, s.maxScrollLeft)
		d.minTop, d.maxTop = pageBounds(top, s.clientHeight, s.maxScrollTop)
	} else {
		d.minLeft, d.minTop = 0, 0
		d.maxLeft, d.maxTop = s.maxScrollLeft, s.maxScrollTop
	}

	minSpeed := minDecelerationSpeed
	if s.opts.Snapping {
		minSpeed = minSnappingSpeed
	}

	step := func(_, _ float64, render bool) bool {
		s.stepDeceleration(render)
		return true
	}
	verify := func(AnimationID) bool {
		keep := math.Abs(d.velocityX) >= minSpeed || math.Abs(d.velocityY) >= minSpeed
		if !keep {
			s.didDecelerationComplete = true
		}
		return keep
	}
	completed := func(fps float64, id AnimationID, _ bool) {
		if id != d.id {
			// Stopped by a newer interaction, which owns the position now.
			s.log.Debug("deceleration stopped", zap.Uint64("id", uint64(id)))
			return
		}
		d.id = 0
		s.log.Debug("deceleration complete",
			zap.Float64("left", s.scrollLeft),
			zap.Float64("top", s.scrollTop),
			zap.Float64("fps", fps))
		if s.didDecelerationComplete {
			s.opts.OnScrollingComplete()
		}
		// Settle onto the snap grid, or back inside the bounds after a bounce.
		s.scrollTo(s.scrollLeft, s.scrollTop, s.opts.Snapping, s.zoomLevel)
	}

	s.log.Debug("deceleration start",
		zap.Float64("vx", d.velocityX),
		zap.Float64("vy", d.velocityY))

	id := s.anim.Start(step, verify, completed, 0, nil)
	if s.anim.IsRunning(id) {
		d.id = id
	}
}

// stepDeceleration advances the momentum by one frame. Without bouncing the
// position stops hard at the bounds; with bouncing an overshoot is pulled
// back by a spring.
func (s *Scroller) stepDeceleration(render bool) {
	d := &s.decel

	left := s.scrollLeft + d.velocityX
	top := s.scrollTop + d.velocityY

	if !s.opts.Bouncing {
		if fixed := clamp(left, d.minLeft, d.maxLeft); fixed != left {
			left = fixed
			d.velocityX = 0
		}
		if fixed := clamp(top, d.minTop, d.maxTop); fixed != top {
			top = fixed
			d.velocityY = 0
		}
	}

	if render {
		s.publish(left, top, s.zoomLevel, false)
	} else {
		s.scrollLeft = left
		s.scrollTop = top
	}

	// Paging keeps its speed so the page boundary is always reached.
	if !s.opts.Paging {
		d.velocityX *= frictionFactor
		d.velocityY *= frictionFactor
	}

	if s.opts.Bouncing {
		d.velocityX = s.spring(d.velocityX, outside(left, d.minLeft, d.maxLeft))
		d.velocityY = s.spring(d.velocityY, outside(top, d.minTop, d.maxTop))
	}
}

// pageBounds returns the page edges around v. A viewport without size has a
// single page spanning the whole scroll range.
func pageBounds(v, size, limit float64) (lo, hi float64) {
	if size <= 0 {
		return 0, limit
	}
	return math.Floor(v/size) * size, math.Ceil(v/size) * size
}

// outside returns the signed distance from v back into [lo, hi].
func outside(v, lo, hi float64) float64 {
	switch {
	case v < lo:
		return lo - v
	case v > hi:
		return hi - v
	}
	return 0
}

// spring applies the bounce force for an overshoot of dist to velocity v.
// Moving further out is decelerated; moving back in is driven proportionally
// to the remaining distance.
func (s *Scroller) spring(v, dist float64) float64 {
	if dist == 0 {
		return v
	}
	if dist*v <= 0 {
		return v + dist*s.opts.PenetrationDeceleration
	}
	return dist * s.opts.PenetrationAcceleration
}
