package scroller

const (
	wheelZoomOut = 0.97
	wheelZoomIn  = 1.03
)

// ZoomTo zooms to level around the viewport centre. done, when non-nil,
// fires once the zoom has been applied.
func (s *Scroller) ZoomTo(level float64, animate bool, done func()) error {
	return s.ZoomAt(level, animate, s.clientWidth/2, s.clientHeight/2, done)
}

// ZoomAt zooms to level keeping the content point under (originLeft,
// originTop), in viewport coordinates, visually fixed. The level is clamped
// to the configured limits.
func (s *Scroller) ZoomAt(level float64, animate bool, originLeft, originTop float64, done func()) error {
	if !s.opts.Zooming {
		return errZoomDisabled("zoom")
	}
	if done != nil {
		s.zoomDone = done
	}

	s.stopDeceleration()

	oldLevel := s.zoomLevel
	level = clamp(level, s.opts.MinZoom, s.opts.MaxZoom)

	// Bounds at the new level, ahead of publishing it.
	s.computeScrollMax(level)

	left := (originLeft+s.scrollLeft)*level/oldLevel - originLeft
	top := (originTop+s.scrollTop)*level/oldLevel - originTop

	left = clamp(left, 0, s.maxScrollLeft)
	top = clamp(top, 0, s.maxScrollTop)

	s.publish(left, top, level, animate)
	return nil
}

// ZoomBy multiplies the current zoom level by factor around the viewport
// centre.
func (s *Scroller) ZoomBy(factor float64, animate bool, done func()) error {
	return s.ZoomTo(s.zoomLevel*factor, animate, done)
}

// ZoomByAt multiplies the current zoom level by factor around the given
// viewport origin.
func (s *Scroller) ZoomByAt(factor float64, animate bool, originLeft, originTop float64, done func()) error {
	return s.ZoomAt(s.zoomLevel*factor, animate, originLeft, originTop, done)
}

// MouseZoom applies one wheel notch anchored at the pointer. A positive
// wheelDelta zooms out. pageX and pageY are host coordinates; see
// SetPosition.
func (s *Scroller) MouseZoom(wheelDelta, timestamp, pageX, pageY float64) error {
	if err := checkTimestamp(timestamp); err != nil {
		return err
	}
	change := wheelZoomIn
	if wheelDelta > 0 {
		change = wheelZoomOut
	}
	return s.ZoomAt(s.zoomLevel*change, false, pageX-s.clientLeft, pageY-s.clientTop, nil)
}
