package scroller

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

type eventKind uint8

const (
	eventStart eventKind = iota
	eventMove
	eventEnd
	eventWheel
)

// syntheticEvent is one queued gesture event. Timestamps are assigned when
// the event is delivered, one event per frame.
type syntheticEvent struct {
	kind    eventKind
	touches []Touch
	scale   float64 // 0 when the move carries no pinch scale
	delta   float64
}

// InjectStart queues a touch start. The event is delivered by the next Step.
func (r *GestureRunner) InjectStart(touches ...Touch) {
	r.queue = append(r.queue, syntheticEvent{kind: eventStart, touches: touches})
}

// InjectMove queues a touch move.
func (r *GestureRunner) InjectMove(touches ...Touch) {
	r.queue = append(r.queue, syntheticEvent{kind: eventMove, touches: touches})
}

// InjectPinch queues a touch move carrying a pinch scale relative to the
// start of the gesture.
func (r *GestureRunner) InjectPinch(scale float64, touches ...Touch) {
	r.queue = append(r.queue, syntheticEvent{kind: eventMove, touches: touches, scale: scale})
}

// InjectEnd queues a touch end.
func (r *GestureRunner) InjectEnd() {
	r.queue = append(r.queue, syntheticEvent{kind: eventEnd})
}

// InjectWheel queues one wheel notch at the given host coordinates.
func (r *GestureRunner) InjectWheel(delta, x, y float64) {
	r.queue = append(r.queue, syntheticEvent{
		kind:    eventWheel,
		touches: []Touch{{PageX: x, PageY: y}},
		delta:   delta,
	})
}

// InjectDrag queues a single-finger drag: a start at from, frames-2 moves
// along the eased path and a final move at to followed by the end. The
// sequence consumes frames+1 frames. A nil fn is linear.
func (r *GestureRunner) InjectDrag(from, to Touch, frames int, fn ease.TweenFunc) {
	if frames < 2 {
		frames = 2
	}
	if fn == nil {
		fn = ease.Linear
	}
	r.InjectStart(from)

	steps := frames - 2
	duration := float32(steps + 1)
	tx := gween.New(float32(from.PageX), float32(to.PageX), duration, fn)
	ty := gween.New(float32(from.PageY), float32(to.PageY), duration, fn)
	for i := 0; i < steps; i++ {
		x, _ := tx.Update(1)
		y, _ := ty.Update(1)
		r.InjectMove(Touch{PageX: float64(x), PageY: float64(y)})
	}
	r.InjectMove(to)
	r.InjectEnd()
}

// deliver pops one queued event and feeds it to s at time now. It reports
// whether an event was consumed.
func (r *GestureRunner) deliver(s *Scroller, now float64) (bool, error) {
	if len(r.queue) == 0 {
		return false, nil
	}
	evt := r.queue[0]
	copy(r.queue, r.queue[1:])
	r.queue[len(r.queue)-1] = syntheticEvent{}
	r.queue = r.queue[:len(r.queue)-1]

	var err error
	switch evt.kind {
	case eventStart:
		err = s.TouchStart(evt.touches, now)
	case eventMove:
		if evt.scale > 0 {
			err = s.TouchMoveScale(evt.touches, now, evt.scale)
		} else {
			err = s.TouchMove(evt.touches, now)
		}
	case eventEnd:
		err = s.TouchEnd(now)
	case eventWheel:
		err = s.MouseZoom(evt.delta, now, evt.touches[0].PageX, evt.touches[0].PageY)
	}
	return true, err
}
