package scroller

import "go.uber.org/zap"

// RefreshHandlers are the pull-to-refresh callbacks. Any of them may be nil.
type RefreshHandlers struct {
	// OnActivate fires when the pull passes the threshold and the refresh
	// arms.
	OnActivate func()
	// OnDeactivate fires when an armed pull is pushed back, and from
	// FinishPullToRefresh.
	OnDeactivate func()
	// OnStart fires when the user releases while armed. The host starts
	// loading and calls FinishPullToRefresh when done.
	OnStart func()
}

type pullToRefresh struct {
	height   float64
	enabled  bool
	active   bool
	handlers RefreshHandlers
}

// ActivatePullToRefresh enables pull-to-refresh. It only applies while the
// horizontal axis is not being dragged and bouncing is enabled: pulling the
// top edge further than height arms it.
func (s *Scroller) ActivatePullToRefresh(height float64, h RefreshHandlers) {
	s.refresh = pullToRefresh{
		height:   height,
		enabled:  true,
		handlers: h,
	}
}

// TriggerPullToRefresh shows the refresh zone and fires OnStart as if the
// user had released an armed pull.
func (s *Scroller) TriggerPullToRefresh() {
	s.startRefresh()
}

// FinishPullToRefresh disarms the refresh, fires OnDeactivate and scrolls
// back inside the bounds.
func (s *Scroller) FinishPullToRefresh() {
	s.refresh.active = false
	s.log.Debug("pull to refresh finished")
	if fn := s.refresh.handlers.OnDeactivate; fn != nil {
		fn()
	}
	s.scrollTo(s.scrollLeft, s.scrollTop, true, s.zoomLevel)
}

// RefreshArmed reports whether releasing now would start a refresh.
func (s *Scroller) RefreshArmed() bool {
	return s.refresh.active
}

// trackRefresh arms or disarms the refresh for an over-scrolled top.
func (s *Scroller) trackRefresh(top float64) {
	r := &s.refresh
	if !r.enabled {
		return
	}
	switch {
	case !r.active && top <= -r.height:
		r.active = true
		s.log.Debug("pull to refresh armed", zap.Float64("top", top))
		if r.handlers.OnActivate != nil {
			r.handlers.OnActivate()
		}
	case r.active && top > -r.height:
		s.disarmRefresh()
	}
}

func (s *Scroller) disarmRefresh() {
	s.refresh.active = false
	s.log.Debug("pull to refresh disarmed")
	if fn := s.refresh.handlers.OnDeactivate; fn != nil {
		fn()
	}
}

// startRefresh holds the content at the refresh zone and fires OnStart. The
// position is published directly because it lies outside the scroll bounds.
func (s *Scroller) startRefresh() {
	s.log.Debug("pull to refresh start", zap.Float64("height", s.refresh.height))
	s.publish(s.scrollLeft, -s.refresh.height, s.zoomLevel, true)
	if fn := s.refresh.handlers.OnStart; fn != nil {
		fn()
	}
}
