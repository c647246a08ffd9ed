package scroller

import "math"

// ScrollTo scrolls to the given position, honoring disabled axes, paging,
// snapping and the scroll bounds. A NaN coordinate keeps the current value.
// Nothing is published while a touch sequence is tracked.
func (s *Scroller) ScrollTo(left, top float64, animate bool) {
	s.stopDeceleration()
	s.scrollTo(left, top, animate, s.zoomLevel)
}

// ScrollToZoom is ScrollTo with a target zoom level. left and top are
// unzoomed content coordinates; they are scaled by zoom before use.
func (s *Scroller) ScrollToZoom(left, top float64, animate bool, zoom float64) error {
	s.stopDeceleration()
	if zoom != s.zoomLevel && !math.IsNaN(zoom) {
		if !s.opts.Zooming {
			return errZoomDisabled("scroll to zoom")
		}
		left *= zoom
		top *= zoom
		s.computeScrollMax(zoom)
	} else {
		zoom = s.zoomLevel
	}
	s.scrollTo(left, top, animate, zoom)
	return nil
}

// ScrollBy scrolls by the given offset. While a transition is running the
// offset applies to its target rather than the interpolated position.
func (s *Scroller) ScrollBy(left, top float64, animate bool) {
	startLeft, startTop := s.scrollLeft, s.scrollTop
	if s.animating != 0 {
		startLeft, startTop = s.scheduledLeft, s.scheduledTop
	}
	s.ScrollTo(startLeft+left, startTop+top, animate)
}

func (s *Scroller) scrollTo(left, top float64, animate bool, zoom float64) {
	if math.IsNaN(left) {
		left = s.scrollLeft
	}
	if math.IsNaN(top) {
		top = s.scrollTop
	}

	if !s.opts.ScrollingX {
		left = s.scrollLeft
	} else if s.opts.Paging {
		left = quantize(left, s.clientWidth)
	} else if s.opts.Snapping {
		left = quantize(left, s.snapWidth)
	}

	if !s.opts.ScrollingY {
		top = s.scrollTop
	} else if s.opts.Paging {
		top = quantize(top, s.clientHeight)
	} else if s.opts.Snapping {
		top = quantize(top, s.snapHeight)
	}

	left = clamp(left, 0, s.maxScrollLeft)
	top = clamp(top, 0, s.maxScrollTop)

	// Still publish an unchanged position so the render stays in sync, but
	// never as a zero-length animation.
	if left == s.scrollLeft && top == s.scrollTop {
		animate = false
	}

	if !s.gesture.tracking {
		s.publish(left, top, zoom, animate)
	}
}

// quantize rounds v half-up to the nearest multiple of size.
func quantize(v, size float64) float64 {
	if size <= 0 {
		return v
	}
	return math.Floor(v/size+0.5) * size
}
