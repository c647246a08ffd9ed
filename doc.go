// Package scroller is a pure-logic scroll and zoom physics engine.
//
// A [Scroller] turns touch, mouse wheel and programmatic requests into a
// stream of (left, top, zoom) values delivered to a [RenderFunc]. It handles
// momentum deceleration, elastic bouncing at the edges, snapping, paging,
// anchor-preserving zoom and an optional pull-to-refresh gesture. It never
// draws anything itself.
//
// # Quick start
//
// Every transition runs on an [Animator], which needs a [FrameScheduler].
// [FrameQueue] is a scheduler ticked explicitly, once per game update:
//
//	frames := scroller.NewFrameQueue()
//	anim := scroller.NewAnimator(frames, frames.Now, logger)
//	s := scroller.New(func(left, top, zoom float64) {
//		// ... move the content ...
//	}, anim, nil)
//	s.SetDimensions(800, 600, 4000, 3000)
//
//	// each frame:
//	frames.Tick(now)
//
// The ebitenhost package wires this to an Ebitengine game, including input.
//
// # Input
//
// Hosts translate their pointer events into [Scroller.TouchStart],
// [Scroller.TouchMove] (or [Scroller.TouchMoveScale] for pinch) and
// [Scroller.TouchEnd], with millisecond timestamps ([Millis] converts a
// [time.Time]). [Scroller.MouseZoom] handles wheel zoom.
//
// # Threading
//
// A Scroller and its Animator are not safe for concurrent use. Call every
// method from the goroutine that ticks the scheduler.
//
// # Testing
//
// [GestureRunner] replays JSON gesture scripts one event per frame, which
// together with a [FrameQueue] makes whole interactions deterministic.
// [CellGrid] enumerates the visible cells of a tiled content area.
package scroller
