package ebitenhost

import (
	"testing"

	"github.com/phanxgames/scroller"
)

func TestLoopRunsAnimations(t *testing.T) {
	clock := &manualClock{}
	loop := NewLoop(clock.read, nil)

	var renders int
	s := scroller.New(func(float64, float64, float64) { renders++ }, loop.Animator(), nil)
	s.SetDimensions(1000, 600, 5000, 5000)
	renders = 0

	s.ScrollTo(0, 400, true)
	if loop.Pending() != 1 {
		t.Fatalf("Pending() = %d, want 1", loop.Pending())
	}

	frames := 0
	for loop.Pending() > 0 {
		if frames > 100 {
			t.Fatal("animation never finished")
		}
		clock.now += 1000.0 / 60
		loop.Tick()
		frames++
	}

	if _, top, _ := s.Values(); top != 400 {
		t.Errorf("top = %v, want 400", top)
	}
	if renders != frames {
		t.Errorf("renders = %d, want one per frame (%d)", renders, frames)
	}
}

func TestLoopCompactsRegistry(t *testing.T) {
	clock := &manualClock{}
	loop := NewLoop(clock.read, nil)
	loop.CompactEvery = 3

	anim := loop.Animator()
	id := anim.Start(func(float64, float64, bool) bool { return false }, nil, nil, 0, nil)

	clock.now += 1000.0 / 60
	loop.Tick()
	if anim.IsRunning(id) {
		t.Fatal("animation still running after its step returned false")
	}
	if n := anim.Registry().Len(); n != 1 {
		t.Fatalf("registry Len() = %d before compaction, want 1", n)
	}

	loop.Tick()
	loop.Tick()
	if n := anim.Registry().Len(); n != 0 {
		t.Errorf("registry Len() = %d after compaction, want 0", n)
	}
}

func TestLoopWithoutCompaction(t *testing.T) {
	loop := NewLoop((&manualClock{}).read, nil)
	loop.CompactEvery = 0

	anim := loop.Animator()
	anim.Stop(anim.Start(func(float64, float64, bool) bool { return true }, nil, nil, 0, nil))
	for i := 0; i < 10; i++ {
		loop.Tick()
	}
	if n := anim.Registry().Len(); n != 1 {
		t.Errorf("registry Len() = %d, want the tombstone kept", n)
	}
}
