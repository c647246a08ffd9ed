package scroller

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var (
	// ErrInvalidArgument is returned for touch lists that carry no points and
	// for timestamps that are not finite numbers.
	ErrInvalidArgument = errors.New("scroller: invalid argument")

	// ErrNotPermitted is returned when a zoom is requested while
	// Options.Zooming is false.
	ErrNotPermitted = errors.New("scroller: operation not permitted")
)

// Millis converts t to a millisecond timestamp suitable for the touch and
// wheel handlers.
func Millis(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Millisecond)
}

func checkTouches(touches []Touch) error {
	if len(touches) == 0 {
		return fmt.Errorf("%w: touch list has no points", ErrInvalidArgument)
	}
	return nil
}

func checkTimestamp(ts float64) error {
	if math.IsNaN(ts) || math.IsInf(ts, 0) {
		return fmt.Errorf("%w: timestamp %v", ErrInvalidArgument, ts)
	}
	return nil
}

func errZoomDisabled(op string) error {
	return fmt.Errorf("%w: %s with zooming disabled", ErrNotPermitted, op)
}
