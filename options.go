package scroller

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Options configures a Scroller. Start from DefaultOptions and override the
// fields you need; the zero value disables scrolling on both axes.
type Options struct {
	// ScrollingX and ScrollingY enable scrolling on each axis.
	ScrollingX bool
	ScrollingY bool

	// Animating enables animation for deceleration, snap back, zooming and
	// scrolling. When false every transition is applied immediately.
	Animating bool

	// AnimationDuration is the length of transitions started by ScrollTo and
	// ZoomTo.
	AnimationDuration time.Duration

	// Bouncing lets content be dragged past its bounds with resistance and
	// springs it back on release.
	Bouncing bool

	// Locking requires a minimum per-axis displacement before a single-finger
	// drag is allowed to scroll that axis.
	Locking bool

	// Paging quantizes scroll targets to multiples of the viewport size.
	Paging bool

	// Snapping quantizes scroll targets to the grid set by SetSnapSize.
	Snapping bool

	// Zooming enables zoom through the API, pinch and mouse wheel.
	Zooming bool

	MinZoom float64
	MaxZoom float64

	// SpeedMultiplier scales finger movement into scroll movement.
	SpeedMultiplier float64

	// PenetrationDeceleration is applied to the velocity while momentum
	// carries content towards or at rest beyond a bound.
	PenetrationDeceleration float64
	// PenetrationAcceleration sets the velocity that pulls content back once
	// it is moving further out of bounds.
	PenetrationAcceleration float64

	// Easing is used for fresh transitions and InterruptedEasing for
	// transitions that replace one still in flight. Nil selects ease-in-out
	// and ease-out cubic.
	Easing            Easing
	InterruptedEasing Easing

	// OnScrollingComplete fires on the later of touch end or deceleration
	// end, provided no other scrolling action has begun.
	OnScrollingComplete func()

	// Logger receives debug diagnostics. Nil disables logging.
	Logger *zap.Logger
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		ScrollingX:              true,
		ScrollingY:              true,
		Animating:               true,
		AnimationDuration:       250 * time.Millisecond,
		Bouncing:                true,
		Locking:                 true,
		MinZoom:                 0.5,
		MaxZoom:                 3,
		SpeedMultiplier:         1,
		PenetrationDeceleration: 0.03,
		PenetrationAcceleration: 0.08,
	}
}

// Validate reports option combinations the engine cannot honor.
func (o *Options) Validate() error {
	switch {
	case o.MinZoom <= 0 || o.MaxZoom <= 0:
		return fmt.Errorf("%w: zoom limits must be positive (min %v, max %v)", ErrInvalidArgument, o.MinZoom, o.MaxZoom)
	case o.MinZoom > o.MaxZoom:
		return fmt.Errorf("%w: min zoom %v exceeds max zoom %v", ErrInvalidArgument, o.MinZoom, o.MaxZoom)
	case o.AnimationDuration < 0:
		return fmt.Errorf("%w: negative animation duration %v", ErrInvalidArgument, o.AnimationDuration)
	case o.SpeedMultiplier <= 0:
		return fmt.Errorf("%w: speed multiplier must be positive, got %v", ErrInvalidArgument, o.SpeedMultiplier)
	}
	return nil
}
