package scroller

import "time"

// FrameFunc is invoked once by a FrameScheduler with the frame timestamp in
// milliseconds.
type FrameFunc func(now float64)

// FrameHandle identifies a requested frame.
type FrameHandle uint64

// FrameScheduler runs a callback once, approximately before the next display
// refresh. Animations never cancel frames; they stop by not requesting
// another one.
type FrameScheduler interface {
	RequestFrame(fn FrameFunc) FrameHandle
}

// Clock returns the current time in milliseconds.
type Clock func() float64

// WallClock returns a Clock measuring milliseconds since the call.
func WallClock() Clock {
	start := time.Now()
	return func() float64 {
		return float64(time.Since(start)) / float64(time.Millisecond)
	}
}

type queuedFrame struct {
	handle FrameHandle
	fn     FrameFunc
}

// FrameQueue is a FrameScheduler driven by explicit Tick calls. Game loops
// tick it once per update; tests tick it with synthetic timestamps and use
// Now as the animator's Clock.
type FrameQueue struct {
	next    FrameHandle
	pending []queuedFrame
	now     float64
}

// NewFrameQueue creates an empty queue whose clock starts at zero.
func NewFrameQueue() *FrameQueue {
	return &FrameQueue{}
}

// RequestFrame queues fn for the next Tick.
func (q *FrameQueue) RequestFrame(fn FrameFunc) FrameHandle {
	q.next++
	q.pending = append(q.pending, queuedFrame{handle: q.next, fn: fn})
	return q.next
}

// Cancel removes a queued frame. It reports whether the frame was pending.
func (q *FrameQueue) Cancel(h FrameHandle) bool {
	for i := range q.pending {
		if q.pending[i].handle == h {
			copy(q.pending[i:], q.pending[i+1:])
			q.pending[len(q.pending)-1] = queuedFrame{}
			q.pending = q.pending[:len(q.pending)-1]
			return true
		}
	}
	return false
}

// Pending returns the number of queued frames.
func (q *FrameQueue) Pending() int {
	return len(q.pending)
}

// Now returns the timestamp of the latest Tick.
func (q *FrameQueue) Now() float64 {
	return q.now
}

// Tick advances the clock to now and runs every frame queued before the
// call. Frames requested by those callbacks wait for the next Tick. It
// returns the number of callbacks run.
func (q *FrameQueue) Tick(now float64) int {
	q.now = now
	batch := q.pending
	q.pending = nil
	for _, f := range batch {
		f.fn(now)
	}
	return len(batch)
}

// Advance ticks the queue dt milliseconds after the previous Tick.
func (q *FrameQueue) Advance(dt float64) int {
	return q.Tick(q.now + dt)
}

// Drain ticks every interval milliseconds until nothing is pending or
// maxFrames ticks have run. It returns the number of ticks.
func (q *FrameQueue) Drain(interval float64, maxFrames int) int {
	frames := 0
	for len(q.pending) > 0 && frames < maxFrames {
		q.Advance(interval)
		frames++
	}
	return frames
}
