// Package ebitenhost runs scrollers inside an Ebitengine game: a frame loop
// driven from Game.Update and the glue that turns Ebitengine pointer input
// into scroller gestures.
package ebitenhost

import (
	"go.uber.org/zap"

	"github.com/phanxgames/scroller"
)

// DefaultCompactEvery is the number of ticks between registry compactions,
// about ten seconds at 60 TPS.
const DefaultCompactEvery = 600

// Loop is the frame scheduler of a game. Call Tick once per Game.Update;
// every animation waiting for a frame runs with the loop's clock.
type Loop struct {
	queue *scroller.FrameQueue
	clock scroller.Clock
	anim  *scroller.Animator

	// CompactEvery sets how often stopped animation ids are dropped from the
	// registry. Zero or negative disables compaction.
	CompactEvery int
	ticks        int
}

// NewLoop creates a loop. A nil clock uses scroller.WallClock and a nil
// logger disables logging.
func NewLoop(clock scroller.Clock, logger *zap.Logger) *Loop {
	if clock == nil {
		clock = scroller.WallClock()
	}
	q := scroller.NewFrameQueue()
	return &Loop{
		queue:        q,
		clock:        clock,
		anim:         scroller.NewAnimator(q, clock, logger),
		CompactEvery: DefaultCompactEvery,
	}
}

// Animator returns the animator every scroller of this game should share.
func (l *Loop) Animator() *scroller.Animator {
	return l.anim
}

// Now returns the loop's current time in milliseconds. Use it as the
// timestamp of input events.
func (l *Loop) Now() float64 {
	return l.clock()
}

// Pending returns the number of animations waiting for a frame.
func (l *Loop) Pending() int {
	return l.queue.Pending()
}

// Tick runs one frame and returns the number of frame callbacks run.
func (l *Loop) Tick() int {
	n := l.queue.Tick(l.clock())
	l.ticks++
	if l.CompactEvery > 0 && l.ticks%l.CompactEvery == 0 {
		l.anim.Compact()
	}
	return n
}
