package scroller

import (
	"fmt"
	"math"

	json "github.com/json-iterator/go"
)

// scriptPoint is a touch position in a gesture script.
type scriptPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// gestureStep represents a single action in a gesture script.
type gestureStep struct {
	Action  string        `json:"action"`
	Touches []scriptPoint `json:"touches,omitempty"`
	Scale   float64       `json:"scale,omitempty"`
	X       float64       `json:"x,omitempty"`
	Y       float64       `json:"y,omitempty"`
	FromX   float64       `json:"fromX,omitempty"`
	FromY   float64       `json:"fromY,omitempty"`
	ToX     float64       `json:"toX,omitempty"`
	ToY     float64       `json:"toY,omitempty"`
	Frames  int           `json:"frames,omitempty"`
	Easing  string        `json:"easing,omitempty"`
	Delta   float64       `json:"delta,omitempty"`
	Left    *float64      `json:"left,omitempty"`
	Top     *float64      `json:"top,omitempty"`
	Zoom    float64       `json:"zoom,omitempty"`
	Animate bool          `json:"animate,omitempty"`
	Origin  *scriptPoint  `json:"origin,omitempty"`
}

// gestureScript is the top-level JSON structure for a gesture script.
type gestureScript struct {
	Steps []gestureStep `json:"steps"`
}

// GestureRunner replays a gesture script against a Scroller, one synthetic
// event per frame. Call Step from the host's update loop.
type GestureRunner struct {
	steps     []gestureStep
	cursor    int
	waitCount int
	queue     []syntheticEvent
	done      bool
}

// NewGestureRunner returns an empty runner fed only through the Inject
// methods.
func NewGestureRunner() *GestureRunner {
	return &GestureRunner{}
}

// LoadGestureScript parses a JSON gesture script. Actions are start, move,
// end, drag, wheel, wait, scrollTo and zoomTo.
func LoadGestureScript(jsonData []byte) (*GestureRunner, error) {
	var script gestureScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse gesture script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse gesture script: no steps")
	}
	for i, st := range script.Steps {
		if err := st.check(); err != nil {
			return nil, fmt.Errorf("parse gesture script: step %d: %w", i, err)
		}
	}
	return &GestureRunner{steps: script.Steps}, nil
}

func (st *gestureStep) check() error {
	switch st.Action {
	case "start", "move":
		if len(st.Touches) == 0 {
			return fmt.Errorf("%s needs touches", st.Action)
		}
	case "drag":
		if st.Easing != "" {
			if _, ok := tweenFuncByName(st.Easing); !ok {
				return fmt.Errorf("unknown easing %q", st.Easing)
			}
		}
	case "zoomTo":
		if st.Zoom <= 0 {
			return fmt.Errorf("zoomTo needs a positive zoom")
		}
	case "end", "wheel", "wait", "scrollTo":
	default:
		return fmt.Errorf("unknown action %q", st.Action)
	}
	return nil
}

// Done reports whether every step has run and every queued event has been
// delivered.
func (r *GestureRunner) Done() bool {
	return r.done
}

// Step advances the runner by one frame at time now (milliseconds). Errors
// returned by the engine are passed through; the runner still advances.
func (r *GestureRunner) Step(s *Scroller, now float64) error {
	if r.done {
		return nil
	}
	// Deliver pending injections before advancing.
	if ok, err := r.deliver(s, now); ok {
		r.checkDone()
		return err
	}
	if r.waitCount > 0 {
		r.waitCount--
		r.checkDone()
		return nil
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return nil
	}

	st := r.steps[r.cursor]
	r.cursor++

	var err error
	switch st.Action {
	case "start":
		r.InjectStart(st.points()...)
	case "move":
		if st.Scale > 0 {
			r.InjectPinch(st.Scale, st.points()...)
		} else {
			r.InjectMove(st.points()...)
		}
	case "end":
		r.InjectEnd()
	case "drag":
		fn, _ := tweenFuncByName(st.Easing)
		r.InjectDrag(Touch{PageX: st.FromX, PageY: st.FromY}, Touch{PageX: st.ToX, PageY: st.ToY}, st.Frames, fn)
	case "wheel":
		r.InjectWheel(st.Delta, st.X, st.Y)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "scrollTo":
		left, top := math.NaN(), math.NaN()
		if st.Left != nil {
			left = *st.Left
		}
		if st.Top != nil {
			top = *st.Top
		}
		if st.Zoom > 0 {
			err = s.ScrollToZoom(left, top, st.Animate, st.Zoom)
		} else {
			s.ScrollTo(left, top, st.Animate)
		}
	case "zoomTo":
		if st.Origin != nil {
			err = s.ZoomAt(st.Zoom, st.Animate, st.Origin.X, st.Origin.Y, nil)
		} else {
			err = s.ZoomTo(st.Zoom, st.Animate, nil)
		}
	}

	// Queued events start on this frame.
	if ok, derr := r.deliver(s, now); ok && err == nil {
		err = derr
	}
	r.checkDone()
	return err
}

func (r *GestureRunner) checkDone() {
	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(r.queue) == 0 {
		r.done = true
	}
}

func (st *gestureStep) points() []Touch {
	touches := make([]Touch, len(st.Touches))
	for i, p := range st.Touches {
		touches[i] = Touch{PageX: p.X, PageY: p.Y}
	}
	return touches
}
