package scroller

import (
	"strings"
	"testing"
)

// run ticks the rig's scheduler and then steps the runner, one frame at a
// time, and returns the number of frames used.
func (r *rig) run(t *testing.T, runner *GestureRunner, maxFrames int) int {
	t.Helper()
	frames := 0
	for !runner.Done() {
		if frames >= maxFrames {
			t.Fatalf("script not done after %d frames", maxFrames)
		}
		now := r.frames.Now() + frameInterval
		r.frames.Tick(now)
		if err := runner.Step(r.s, now); err != nil {
			t.Fatalf("frame %d: %v", frames, err)
		}
		frames++
	}
	return frames
}

func TestLoadGestureScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		json string
		want string
	}{
		{"bad json", `{"steps": [`, "parse gesture script"},
		{"no steps", `{"steps": []}`, "no steps"},
		{"unknown action", `{"steps": [{"action": "tap"}]}`, `unknown action "tap"`},
		{"start without touches", `{"steps": [{"action": "start"}]}`, "start needs touches"},
		{"unknown easing", `{"steps": [{"action": "drag", "easing": "wobble"}]}`, `unknown easing "wobble"`},
		{"zoom without level", `{"steps": [{"action": "zoomTo"}]}`, "positive zoom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadGestureScript([]byte(tt.json))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestGestureScriptDragDecelerates(t *testing.T) {
	runner, err := LoadGestureScript([]byte(`{"steps": [
		{"action": "drag", "fromX": 500, "fromY": 500, "toX": 500, "toY": 300, "frames": 10}
	]}`))
	if err != nil {
		t.Fatal(err)
	}

	r := newRig(nil)
	// start, 8 eased moves, final move, end
	if frames := r.run(t, runner, 50); frames != 11 {
		t.Errorf("frames = %d, want 11", frames)
	}
	if !r.s.IsDecelerating() {
		t.Fatal("flick did not start deceleration")
	}
	// The move that starts the drag does not scroll: 200 - 200/9.
	_, top, _ := r.s.Values()
	if !approxEqual(top, 200-200.0/9, 1e-3) {
		t.Errorf("top at release = %v, want %v", top, 200-200.0/9)
	}

	r.settle()
	if _, end, _ := r.s.Values(); end <= top {
		t.Errorf("deceleration did not carry on: %v -> %v", top, end)
	}
	if r.completes != 1 {
		t.Errorf("completions = %d, want 1", r.completes)
	}
}

func TestGestureScriptWaitAndScroll(t *testing.T) {
	runner, err := LoadGestureScript([]byte(`{"steps": [
		{"action": "scrollTo", "left": 300, "top": 400},
		{"action": "wait", "frames": 3},
		{"action": "scrollTo", "top": 100, "animate": true},
		{"action": "wait", "frames": 30}
	]}`))
	if err != nil {
		t.Fatal(err)
	}

	r := newRig(nil)
	if frames := r.run(t, runner, 100); frames != 35 {
		t.Errorf("frames = %d, want 35", frames)
	}
	r.assertValues(t, 300, 100, 1)
}

func TestGestureScriptPinchAndWheel(t *testing.T) {
	runner, err := LoadGestureScript([]byte(`{"steps": [
		{"action": "start", "touches": [{"x": 400, "y": 300}, {"x": 600, "y": 300}]},
		{"action": "move", "touches": [{"x": 400, "y": 300}, {"x": 600, "y": 300}], "scale": 2},
		{"action": "end"},
		{"action": "wheel", "delta": -1, "x": 0, "y": 0},
		{"action": "zoomTo", "zoom": 1, "origin": {"x": 0, "y": 0}}
	]}`))
	if err != nil {
		t.Fatal(err)
	}

	r := newRig(zooming)
	var zooms []float64
	render := r.s.render
	r.s.render = func(left, top, zoom float64) {
		zooms = append(zooms, zoom)
		render(left, top, zoom)
	}

	r.run(t, runner, 20)
	r.settle()

	if len(zooms) == 0 {
		t.Fatal("nothing rendered")
	}
	seen2, seenWheel := false, false
	for _, z := range zooms {
		if z == 2 {
			seen2 = true
		}
		if approxEqual(z, 2*1.03, 1e-9) {
			seenWheel = true
		}
	}
	if !seen2 || !seenWheel {
		t.Errorf("zooms = %v, want 2 and %v along the way", zooms, 2*1.03)
	}
	if _, _, z := r.s.Values(); z != 1 {
		t.Errorf("final zoom = %v, want 1", z)
	}
}

func TestGestureRunnerInjectWithoutScript(t *testing.T) {
	r := newRig(nil)
	r.s.ScrollTo(1000, 1000, false)

	runner := NewGestureRunner()
	runner.InjectStart(Touch{PageX: 100, PageY: 100})
	runner.InjectMove(Touch{PageX: 100, PageY: 110})
	runner.InjectMove(Touch{PageX: 100, PageY: 90})
	runner.InjectEnd()

	if frames := r.run(t, runner, 10); frames != 4 {
		t.Errorf("frames = %d, want 4", frames)
	}
	r.settle()
	if _, top, _ := r.s.Values(); top <= 1020 {
		t.Errorf("top = %v, want beyond 1020 after the flick", top)
	}
}
