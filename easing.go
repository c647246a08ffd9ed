package scroller

import (
	"strings"

	"github.com/tanema/gween/ease"
)

// Easing maps linear progress in [0, 1] to eased progress.
type Easing func(p float64) float64

// EaseFunc adapts a gween easing curve to an Easing over [0, 1].
func EaseFunc(fn ease.TweenFunc) Easing {
	return func(p float64) float64 {
		return float64(fn(float32(p), 0, 1, 1))
	}
}

var (
	easeOutCubic   = EaseFunc(ease.OutCubic)
	easeInOutCubic = EaseFunc(ease.InOutCubic)
)

var easingsByName = map[string]ease.TweenFunc{
	"linear":     ease.Linear,
	"inquad":     ease.InQuad,
	"outquad":    ease.OutQuad,
	"inoutquad":  ease.InOutQuad,
	"incubic":    ease.InCubic,
	"outcubic":   ease.OutCubic,
	"inoutcubic": ease.InOutCubic,
	"inquart":    ease.InQuart,
	"outquart":   ease.OutQuart,
	"inoutquart": ease.InOutQuart,
	"inquint":    ease.InQuint,
	"outquint":   ease.OutQuint,
	"inoutquint": ease.InOutQuint,
	"insine":     ease.InSine,
	"outsine":    ease.OutSine,
	"inoutsine":  ease.InOutSine,
	"inexpo":     ease.InExpo,
	"outexpo":    ease.OutExpo,
	"inoutexpo":  ease.InOutExpo,
	"incirc":     ease.InCirc,
	"outcirc":    ease.OutCirc,
	"inoutcirc":  ease.InOutCirc,
	"inback":     ease.InBack,
	"outback":    ease.OutBack,
	"inoutback":  ease.InOutBack,
	"inbounce":   ease.InBounce,
	"outbounce":  ease.OutBounce,
}

// EasingByName looks up a gween curve by name, ignoring case and dashes
// ("outCubic", "out-cubic").
func EasingByName(name string) (Easing, bool) {
	fn, ok := tweenFuncByName(name)
	if !ok {
		return nil, false
	}
	return EaseFunc(fn), true
}

func tweenFuncByName(name string) (ease.TweenFunc, bool) {
	fn, ok := easingsByName[strings.ToLower(strings.ReplaceAll(name, "-", ""))]
	return fn, ok
}

// lerp interpolates from towards to, landing exactly on to at v == 1.
func lerp(from, to, v float64) float64 {
	if v == 1 {
		return to
	}
	return from + (to-from)*v
}
