// Implements the classic animation transition functions.
// Every easing maps the interval [0,1] onto itself with
// fixed endpoints; some of them overshoot in between
// (back, elastic, bounce).
package easing

import (
	"fmt"
	"math"
)

// Easing identifies one transition function.
// The zero value is the linear transition.
type Easing uint8

const (
	Linear Easing = iota
	InQuad
	OutQuad
	InOutQuad
	InCubic
	OutCubic
	InOutCubic
	InQuart
	OutQuart
	InOutQuart
	InQuint
	OutQuint
	InOutQuint
	InSine
	OutSine
	InOutSine
	InExpo
	OutExpo
	InOutExpo
	InCirc
	OutCirc
	InOutCirc
	InBack
	OutBack
	InElastic
	OutElastic
	InBounce
	OutBounce
)

const (
	backS    = 1.70158 // canonical overshoot amount
	elasticP = 0.3     // period of the elastic oscillation
)

func inQuad(t float64) float64  { return t * t }
func outQuad(t float64) float64 { return t * (2 - t) }

func inCubic(t float64) float64  { return t * t * t }
func outCubic(t float64) float64 { t--; return t*t*t + 1 }

func inQuart(t float64) float64  { return t * t * t * t }
func outQuart(t float64) float64 { t--; return 1 - t*t*t*t }

func inQuint(t float64) float64  { return t * t * t * t * t }
func outQuint(t float64) float64 { t--; return t*t*t*t*t + 1 }

func inSine(t float64) float64  { return 1 - math.Cos(t*math.Pi/2) }
func outSine(t float64) float64 { return math.Sin(t * math.Pi / 2) }

func inExpo(t float64) float64 {
	if t == 0 {
		return 0
	}
	return math.Pow(2, 10*(t-1))
}

func outExpo(t float64) float64 {
	if t == 1 {
		return 1
	}
	return 1 - math.Pow(2, -10*t)
}

func inCirc(t float64) float64  { return 1 - math.Sqrt(1-t*t) }
func outCirc(t float64) float64 { t--; return math.Sqrt(1 - t*t) }

func inBack(t float64) float64 { return t * t * ((backS+1)*t - backS) }
func outBack(t float64) float64 {
	t--
	return t*t*((backS+1)*t+backS) + 1
}

func inElastic(t float64) float64 {
	if t == 0 || t == 1 {
		return t
	}
	t--
	return -math.Pow(2, 10*t) * math.Sin((t-elasticP/4)*2*math.Pi/elasticP)
}

func outElastic(t float64) float64 {
	if t == 0 || t == 1 {
		return t
	}
	return math.Pow(2, -10*t)*math.Sin((t-elasticP/4)*2*math.Pi/elasticP) + 1
}

func outBounce(t float64) float64 {
	switch {
	case t < 1/2.75:
		return 7.5625 * t * t
	case t < 2/2.75:
		t -= 1.5 / 2.75
		return 7.5625*t*t + 0.75
	case t < 2.5/2.75:
		t -= 2.25 / 2.75
		return 7.5625*t*t + 0.9375
	default:
		t -= 2.625 / 2.75
		return 7.5625*t*t + 0.984375
	}
}

func inBounce(t float64) float64 { return 1 - outBounce(1-t) }

// inOut composes the "in" form of fn into the symmetric
// in-out transition.
func inOut(fn func(float64) float64, t float64) float64 {
	if t < 0.5 {
		return fn(2*t) / 2
	}
	return 1 - fn(2*(1-t))/2
}

var easings = [...]struct {
	name string
	fn   func(float64) float64
}{
	Linear:     {"linear", func(t float64) float64 { return t }},
	InQuad:     {"in_quad", inQuad},
	OutQuad:    {"out_quad", outQuad},
	InOutQuad:  {"in_out_quad", func(t float64) float64 { return inOut(inQuad, t) }},
	InCubic:    {"in_cubic", inCubic},
	OutCubic:   {"out_cubic", outCubic},
	InOutCubic: {"in_out_cubic", func(t float64) float64 { return inOut(inCubic, t) }},
	InQuart:    {"in_quart", inQuart},
	OutQuart:   {"out_quart", outQuart},
	InOutQuart: {"in_out_quart", func(t float64) float64 { return inOut(inQuart, t) }},
	InQuint:    {"in_quint", inQuint},
	OutQuint:   {"out_quint", outQuint},
	InOutQuint: {"in_out_quint", func(t float64) float64 { return inOut(inQuint, t) }},
	InSine:     {"in_sine", inSine},
	OutSine:    {"out_sine", outSine},
	InOutSine:  {"in_out_sine", func(t float64) float64 { return inOut(inSine, t) }},
	InExpo:     {"in_expo", inExpo},
	OutExpo:    {"out_expo", outExpo},
	InOutExpo:  {"in_out_expo", func(t float64) float64 { return inOut(inExpo, t) }},
	InCirc:     {"in_circ", inCirc},
	OutCirc:    {"out_circ", outCirc},
	InOutCirc:  {"in_out_circ", func(t float64) float64 { return inOut(inCirc, t) }},
	InBack:     {"in_back", inBack},
	OutBack:    {"out_back", outBack},
	InElastic:  {"in_elastic", inElastic},
	OutElastic: {"out_elastic", outElastic},
	InBounce:   {"in_bounce", inBounce},
	OutBounce:  {"out_bounce", outBounce},
}

var byName = map[string]Easing{}

func init() {
	for e, d := range easings {
		byName[d.name] = Easing(e)
	}
}

// Parse resolves an easing by its snake case name,
// such as "out_sine" or "in_out_cubic". Unknown names
// are rejected.
func Parse(name string) (Easing, error) {
	e, ok := byName[name]
	if !ok {
		return Linear, fmt.Errorf("unknown easing %q", name)
	}
	return e, nil
}

// Ease maps t in [0,1] through the transition function.
// The function is pure: terminal value handling and clamping
// belong to the caller.
func (e Easing) Ease(t float64) float64 {
	if int(e) >= len(easings) {
		return t
	}
	return easings[e].fn(t)
}

func (e Easing) String() string {
	if int(e) >= len(easings) {
		return fmt.Sprintf("Easing(%d)", e)
	}
	return easings[e].name
}

// All returns every registered easing, in declaration order.
func All() []Easing {
	out := make([]Easing, len(easings))
	for i := range out {
		out[i] = Easing(i)
	}
	return out
}
