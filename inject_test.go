package scroller

import (
	"errors"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestInjectDragQueue(t *testing.T) {
	runner := NewGestureRunner()
	from, to := Touch{PageX: 100, PageY: 500}, Touch{PageX: 100, PageY: 50}
	runner.InjectDrag(from, to, 10, nil)

	if len(runner.queue) != 11 {
		t.Fatalf("queued %d events, want 11", len(runner.queue))
	}
	if runner.queue[0].kind != eventStart || runner.queue[0].touches[0] != from {
		t.Errorf("first event = %+v, want a start at %+v", runner.queue[0], from)
	}
	// Linear path: the first move is one ninth of the way.
	if y := runner.queue[1].touches[0].PageY; !approxEqual(y, 450, 1e-3) {
		t.Errorf("first move y = %v, want 450", y)
	}
	if last := runner.queue[9]; last.kind != eventMove || last.touches[0] != to {
		t.Errorf("last move = %+v, want a move at %+v", last, to)
	}
	if runner.queue[10].kind != eventEnd {
		t.Errorf("final event kind = %v, want end", runner.queue[10].kind)
	}
}

func TestInjectDragEasing(t *testing.T) {
	runner := NewGestureRunner()
	runner.InjectDrag(Touch{}, Touch{PageX: 100}, 6, ease.OutQuad)

	// outQuad covers more ground early than linear (20 per step).
	if x := runner.queue[1].touches[0].PageX; x <= 20 {
		t.Errorf("first eased move x = %v, want ahead of linear 20", x)
	}
	prev := 0.0
	for _, evt := range runner.queue[1:5] {
		if x := evt.touches[0].PageX; x < prev {
			t.Errorf("eased path went backwards: %v after %v", x, prev)
		} else {
			prev = x
		}
	}
}

func TestInjectDragMinimumFrames(t *testing.T) {
	runner := NewGestureRunner()
	runner.InjectDrag(Touch{}, Touch{PageY: 10}, 0, nil)

	kinds := make([]eventKind, 0, len(runner.queue))
	for _, evt := range runner.queue {
		kinds = append(kinds, evt.kind)
	}
	want := []eventKind{eventStart, eventMove, eventEnd}
	if len(kinds) != len(want) {
		t.Fatalf("kinds = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("kinds = %v, want %v", kinds, want)
		}
	}
}

func TestInjectWheel(t *testing.T) {
	r := newRig(zooming)
	runner := NewGestureRunner()
	runner.InjectWheel(-1, 0, 0)
	r.run(t, runner, 5)
	r.assertValues(t, 0, 0, 1.03)
}

func TestInjectWheelWithoutZooming(t *testing.T) {
	r := newRig(nil)
	runner := NewGestureRunner()
	runner.InjectWheel(-1, 0, 0)

	err := runner.Step(r.s, 100)
	if !errors.Is(err, ErrNotPermitted) {
		t.Errorf("Step() error = %v, want ErrNotPermitted", err)
	}
	if !runner.Done() {
		t.Error("runner not done after delivering its only event")
	}
}

func TestInjectPinch(t *testing.T) {
	r := newRig(zooming)
	runner := NewGestureRunner()
	a, b := Touch{PageX: 400, PageY: 300}, Touch{PageX: 600, PageY: 300}
	runner.InjectStart(a, b)
	runner.InjectPinch(2, a, b)
	r.run(t, runner, 5)

	r.assertValues(t, 500, 300, 2)
	if !r.s.IsDragging() {
		t.Error("pinch without an end stopped dragging")
	}
}
