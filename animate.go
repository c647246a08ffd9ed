package scroller

import (
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"
)

const (
	desiredFrames = 60
	frameInterval = 1000.0 / desiredFrames // ms
	maxCatchUp    = 4
)

// AnimationID identifies one run of an Animator. Zero is never allocated.
type AnimationID uint64

// StepFunc advances an animation. value is the eased progress (0 throughout
// runs without a duration), now the frame time in milliseconds and render
// false for catch-up steps replayed in memory for dropped frames. Returning
// false ends the animation.
type StepFunc func(value, now float64, render bool) bool

// VerifyFunc is checked before every step; returning false stops the run
// without treating it as finished.
type VerifyFunc func(id AnimationID) bool

// CompleteFunc fires exactly once per run with the effective frame rate and
// whether the run finished on its own (duration elapsed, or a run without
// duration whose step returned false).
type CompleteFunc func(fps float64, id AnimationID, finished bool)

// Registry records which animation ids are running. Stopped ids stay as
// tombstones until Compact is called.
type Registry struct {
	counter AnimationID
	running map[AnimationID]bool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{running: make(map[AnimationID]bool)}
}

func (r *Registry) allocate() AnimationID {
	r.counter++
	r.running[r.counter] = true
	return r.counter
}

// Stop marks id stopped and reports whether it was running.
func (r *Registry) Stop(id AnimationID) bool {
	if !r.running[id] {
		return false
	}
	r.running[id] = false
	return true
}

// IsRunning reports whether id is running.
func (r *Registry) IsRunning(id AnimationID) bool {
	return r.running[id]
}

// Len returns the number of entries, tombstones included.
func (r *Registry) Len() int {
	return len(r.running)
}

// Compact rebuilds the registry without tombstones and returns how many
// entries were dropped.
func (r *Registry) Compact() int {
	live := make(map[AnimationID]bool, len(r.running))
	for id, on := range r.running {
		if on {
			live[id] = true
		}
	}
	dropped := len(r.running) - len(live)
	r.running = live
	return dropped
}

// Animator runs frame-driven animations on a FrameScheduler, replaying up to
// four in-memory steps for frames the scheduler dropped. It is not safe for
// concurrent use; every engine sharing it must run on the same loop.
type Animator struct {
	sched    FrameScheduler
	clock    Clock
	registry *Registry
	log      *zap.Logger
}

// NewAnimator creates an Animator. A nil clock uses WallClock and a nil
// logger disables logging.
func NewAnimator(sched FrameScheduler, clock Clock, logger *zap.Logger) *Animator {
	if clock == nil {
		clock = WallClock()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Animator{
		sched:    sched,
		clock:    clock,
		registry: NewRegistry(),
		log:      logger.Named("animate"),
	}
}

// Registry exposes the animator's id registry.
func (a *Animator) Registry() *Registry {
	return a.registry
}

// Stop stops the animation. It reports whether it was running.
func (a *Animator) Stop(id AnimationID) bool {
	return a.registry.Stop(id)
}

// IsRunning reports whether the animation is still running.
func (a *Animator) IsRunning(id AnimationID) bool {
	return a.registry.IsRunning(id)
}

// Compact drops stopped ids from the registry.
func (a *Animator) Compact() int {
	n := a.registry.Compact()
	if n > 0 {
		a.log.Debug("registry compacted", zap.Int("dropped", n), zap.Int("live", a.registry.Len()))
	}
	return n
}

// Start begins an animation and returns its id. A zero duration leaves the
// lifetime to step and verify; a nil easing is linear.
func (a *Animator) Start(step StepFunc, verify VerifyFunc, done CompleteFunc, duration time.Duration, easing Easing) AnimationID {
	now := a.clock()
	run := &animation{
		a:         a,
		id:        a.registry.allocate(),
		step:      step,
		verify:    verify,
		done:      done,
		duration:  float64(duration) / float64(time.Millisecond),
		easing:    easing,
		start:     now,
		lastFrame: now,
	}
	run.request(now)
	return run.id
}

// animation is the per-run state of Animator.Start.
type animation struct {
	a      *Animator
	id     AnimationID
	step   StepFunc
	verify VerifyFunc
	done   CompleteFunc
	easing Easing

	duration  float64
	start     float64
	lastFrame float64
	percent   float64
	dropped   int
	completed bool
}

func (r *animation) request(now float64) {
	defer func() {
		if p := recover(); p != nil {
			r.a.log.Warn("frame request failed", zap.Uint64("id", uint64(r.id)), zap.String("panic", fmt.Sprint(p)))
			r.finish(now, false)
		}
	}()
	r.a.sched.RequestFrame(r.frame)
}

func (r *animation) frame(float64) {
	r.tick(true)
}

// tick runs one step and reports whether the run has ended.
func (r *animation) tick(render bool) bool {
	now := r.a.clock()

	if !r.a.registry.IsRunning(r.id) || !r.callVerify() {
		r.finish(now, false)
		return true
	}

	// Bring in-memory state up to date with frames the scheduler skipped.
	if render {
		dropped := int(math.Round((now-r.lastFrame)/frameInterval)) - 1
		for j := 0; j < min(dropped, maxCatchUp); j++ {
			r.dropped++
			if r.tick(false) {
				return true
			}
		}
	}

	if r.duration > 0 {
		r.percent = math.Min((now-r.start)/r.duration, 1)
	}
	value := r.percent
	if r.easing != nil {
		value = r.easing(value)
	}

	cont := r.callStep(value, now, render)
	if !render {
		return false
	}
	if !cont || r.percent == 1 {
		r.finish(now, r.percent == 1 || r.duration == 0)
		return true
	}

	r.lastFrame = now
	r.request(now)
	return false
}

func (r *animation) callVerify() (ok bool) {
	if r.verify == nil {
		return true
	}
	defer func() {
		if p := recover(); p != nil {
			r.a.log.Warn("verify callback panicked", zap.Uint64("id", uint64(r.id)), zap.String("panic", fmt.Sprint(p)))
			ok = false
		}
	}()
	return r.verify(r.id)
}

func (r *animation) callStep(value, now float64, render bool) (cont bool) {
	defer func() {
		if p := recover(); p != nil {
			r.a.log.Warn("step callback panicked", zap.Uint64("id", uint64(r.id)), zap.String("panic", fmt.Sprint(p)))
			cont = false
		}
	}()
	return r.step(value, now, render)
}

func (r *animation) finish(now float64, finished bool) {
	if r.completed {
		return
	}
	r.completed = true
	r.a.registry.Stop(r.id)

	fps := float64(desiredFrames)
	if elapsed := (now - r.start) / 1000; elapsed > 0 {
		fps = desiredFrames - float64(r.dropped)/elapsed
	}
	r.a.log.Debug("animation complete",
		zap.Uint64("id", uint64(r.id)),
		zap.Float64("fps", fps),
		zap.Bool("finished", finished))

	if r.done != nil {
		r.done(fps, r.id, finished)
	}
}
