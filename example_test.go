package scroller_test

import (
	"fmt"

	"github.com/phanxgames/scroller"
)

func Example() {
	frames := scroller.NewFrameQueue()
	anim := scroller.NewAnimator(frames, frames.Now, nil)

	var top float64
	s := scroller.New(func(_, t, _ float64) { top = t }, anim, nil)
	s.SetDimensions(800, 600, 4000, 3000)

	s.ScrollTo(0, 400, true)
	now := 0.0
	for frames.Pending() > 0 {
		now += 1000.0 / 60
		frames.Tick(now)
	}
	fmt.Println(top, s.IsAnimating())
	// Output: 400 false
}
