package ebitenhost

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/phanxgames/scroller"
)

// pointerState is one frame of Ebitengine pointer input.
type pointerState struct {
	touches   []scroller.Touch
	mouseDown bool
	mouseX    float64
	mouseY    float64
	wheel     float64
}

// Binder feeds Ebitengine touch, mouse and wheel input into a Scroller.
// Touches take precedence over the mouse; the left mouse button acts as a
// single finger. Coordinates are screen pixels, so place the viewport with
// SetViewport when it does not start at the origin.
type Binder struct {
	s     *scroller.Scroller
	clock scroller.Clock
	log   *zap.Logger

	touchIDs []ebiten.TouchID
	cur      pointerState
	last     []scroller.Touch
	fingers  int
	spread   float64 // finger distance when the gesture started

	mouseDown bool
	lastMouse scroller.Touch

	width, height float64
}

// NewBinder creates a binder for s. Event timestamps come from clock, which
// should be the one the scroller's animator uses (Loop.Now).
func NewBinder(s *scroller.Scroller, clock scroller.Clock, logger *zap.Logger) *Binder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Binder{
		s:     s,
		clock: clock,
		log:   logger.Named("input"),
	}
}

// SetViewport places the scrolled area on screen. A changed size is pushed
// to the scroller with SetDimensions; the content size is left alone.
func (b *Binder) SetViewport(x, y, width, height float64) {
	b.s.SetPosition(x, y)
	if width == b.width && height == b.height {
		return
	}
	b.width, b.height = width, height
	b.s.SetDimensions(width, height, math.NaN(), math.NaN())
	b.log.Debug("viewport resized", zap.Float64("width", width), zap.Float64("height", height))
}

// Update reads the current input state and forwards it. Call it from
// Game.Update before Loop.Tick.
func (b *Binder) Update() error {
	b.poll()
	return b.apply(&b.cur, b.clock())
}

func (b *Binder) poll() {
	b.touchIDs = ebiten.AppendTouchIDs(b.touchIDs[:0])
	b.cur.touches = b.cur.touches[:0]
	for _, id := range b.touchIDs {
		x, y := ebiten.TouchPosition(id)
		b.cur.touches = append(b.cur.touches, scroller.Touch{PageX: float64(x), PageY: float64(y)})
	}

	mx, my := ebiten.CursorPosition()
	b.cur.mouseX, b.cur.mouseY = float64(mx), float64(my)
	b.cur.mouseDown = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	_, b.cur.wheel = ebiten.Wheel()
}

func (b *Binder) apply(in *pointerState, now float64) error {
	var err error
	if len(in.touches) > 0 || b.fingers > 0 {
		err = b.applyTouches(in.touches, now)
	} else {
		err = b.applyMouse(in, now)
	}
	if err != nil {
		return err
	}

	// Ebitengine reports a positive y offset when the wheel moves away from
	// the user, which zooms out.
	if in.wheel != 0 && b.s.Options().Zooming {
		return b.s.MouseZoom(in.wheel, now, in.mouseX, in.mouseY)
	}
	return nil
}

// applyTouches follows the finger count between frames. A new finger
// restarts the gesture with every active touch; a lifted finger ends it.
func (b *Binder) applyTouches(touches []scroller.Touch, now float64) error {
	n := len(touches)
	var err error
	switch {
	case n > b.fingers:
		b.spread = spread(touches)
		err = b.s.TouchStart(touches, now)
	case n < b.fingers:
		err = b.s.TouchEnd(now)
	case moved(touches, b.last):
		if n == 2 && b.spread > 0 {
			err = b.s.TouchMoveScale(touches, now, spread(touches)/b.spread)
		} else {
			err = b.s.TouchMove(touches, now)
		}
	}
	b.fingers = n
	b.last = append(b.last[:0], touches...)
	return err
}

func (b *Binder) applyMouse(in *pointerState, now float64) error {
	p := scroller.Touch{PageX: in.mouseX, PageY: in.mouseY}
	switch {
	case in.mouseDown && !b.mouseDown:
		b.mouseDown = true
		b.lastMouse = p
		return b.s.TouchStart([]scroller.Touch{p}, now)
	case in.mouseDown && p != b.lastMouse:
		b.lastMouse = p
		return b.s.TouchMove([]scroller.Touch{p}, now)
	case !in.mouseDown && b.mouseDown:
		b.mouseDown = false
		return b.s.TouchEnd(now)
	}
	return nil
}

// spread is the distance between the first two touches.
func spread(touches []scroller.Touch) float64 {
	if len(touches) < 2 {
		return 0
	}
	return math.Hypot(touches[1].PageX-touches[0].PageX, touches[1].PageY-touches[0].PageY)
}

func moved(a, b []scroller.Touch) bool {
	if len(a) != len(b) {
		return true
	}
	for i := range a {
		if a[i] != b[i] {
			return true
		}
	}
	return false
}
