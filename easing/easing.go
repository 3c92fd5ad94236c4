// Package easing maps normalized progress to eased progress.
//
// All curves are pure functions and may be shared freely. Results are not
// clamped to [0, 1]; back and elastic curves overshoot.
package easing

import (
	"github.com/fogleman/ease"
	"math"
)

type Func func(t float64) float64

const expoOffset = 1.0 / 1024 // 2^-10

const (
	elasticConst  = 2 * math.Pi / 0.3
	elasticConst2 = 0.3 / 4

	// subtracted so that elastic curves end exactly on 1
	elasticOffsetFull = 1.0 / 2048 // 2^-11
)

var elasticOffsetHalf = expoOffset * math.Sin((0.5-elasticConst2)*elasticConst)
var elasticOffsetQuarter = expoOffset * math.Sin((0.25-elasticConst2)*elasticConst)

var (
	// None jumps to the end value immediately.
	None Func = func(float64) float64 { return 1 }

	Linear  Func = ease.Linear
	Default      = Linear

	InQuad    Func = ease.InQuad
	OutQuad   Func = ease.OutQuad
	InOutQuad Func = ease.InOutQuad

	InCubic    Func = ease.InCubic
	OutCubic   Func = ease.OutCubic
	InOutCubic Func = ease.InOutCubic

	InQuart    Func = ease.InQuart
	OutQuart   Func = ease.OutQuart
	InOutQuart Func = ease.InOutQuart

	InQuint    Func = ease.InQuint
	OutQuint   Func = ease.OutQuint
	InOutQuint Func = ease.InOutQuint

	InSine    Func = ease.InSine
	OutSine   Func = ease.OutSine
	InOutSine Func = ease.InOutSine

	InCirc    Func = ease.InCirc
	OutCirc   Func = ease.OutCirc
	InOutCirc Func = ease.InOutCirc

	InBack    Func = ease.InBack
	OutBack   Func = ease.OutBack
	InOutBack Func = ease.InOutBack

	InBounce    Func = ease.InBounce
	OutBounce   Func = ease.OutBounce
	InOutBounce Func = ease.InOutBounce
)

// The exponential curves carry a small linear correction so they hit
// exactly 0 and 1 at the boundaries.

func InExpo(t float64) float64 {
	return math.Pow(2, 10*(t-1)) + expoOffset*(t-1)
}

func OutExpo(t float64) float64 {
	return -math.Pow(2, -10*t) + 1 + expoOffset*t
}

func InOutExpo(t float64) float64 {
	if t < 0.5 {
		return 0.5 * InExpo(2*t)
	}

	return 0.5 + 0.5*OutExpo(2*t-1)
}

func InElastic(t float64) float64 {
	return -math.Pow(2, -10+10*t)*math.Sin((1-elasticConst2-t)*elasticConst) + elasticOffsetFull*(1-t)
}

func OutElastic(t float64) float64 {
	return math.Pow(2, -10*t)*math.Sin((t-elasticConst2)*elasticConst) + 1 - elasticOffsetFull*t
}

// OutElasticHalf oscillates with half the frequency of OutElastic.
func OutElasticHalf(t float64) float64 {
	return math.Pow(2, -10*t)*math.Sin((0.5*t-elasticConst2)*elasticConst) + 1 - elasticOffsetHalf*t
}

// OutElasticQuarter oscillates with a quarter of the frequency of OutElastic.
func OutElasticQuarter(t float64) float64 {
	return math.Pow(2, -10*t)*math.Sin((0.25*t-elasticConst2)*elasticConst) + 1 - elasticOffsetQuarter*t
}

func InOutElastic(t float64) float64 {
	if t < 0.5 {
		return 0.5 * InElastic(2*t)
	}

	return 0.5 + 0.5*OutElastic(2*t-1)
}

func OutPow10(t float64) float64 {
	t -= 1
	return t*math.Pow(t, 10) + 1
}

var byName = map[string]Func{
	"None":              None,
	"Linear":            Linear,
	"Default":           Default,
	"InQuad":            InQuad,
	"OutQuad":           OutQuad,
	"InOutQuad":         InOutQuad,
	"InCubic":           InCubic,
	"OutCubic":          OutCubic,
	"InOutCubic":        InOutCubic,
	"InQuart":           InQuart,
	"OutQuart":          OutQuart,
	"InOutQuart":        InOutQuart,
	"InQuint":           InQuint,
	"OutQuint":          OutQuint,
	"InOutQuint":        InOutQuint,
	"InSine":            InSine,
	"OutSine":           OutSine,
	"InOutSine":         InOutSine,
	"InExpo":            InExpo,
	"OutExpo":           OutExpo,
	"InOutExpo":         InOutExpo,
	"InCirc":            InCirc,
	"OutCirc":           OutCirc,
	"InOutCirc":         InOutCirc,
	"InElastic":         InElastic,
	"OutElastic":        OutElastic,
	"OutElasticHalf":    OutElasticHalf,
	"OutElasticQuarter": OutElasticQuarter,
	"InOutElastic":      InOutElastic,
	"InBack":            InBack,
	"OutBack":           OutBack,
	"InOutBack":         InOutBack,
	"InBounce":          InBounce,
	"OutBounce":         OutBounce,
	"InOutBounce":       InOutBounce,
	"OutPow10":          OutPow10,
}

// ByName looks up a curve by its exported name, e.g. "OutQuad".
// The empty string resolves to Default.
func ByName(name string) (Func, bool) {
	if name == "" {
		return Default, true
	}

	fn, ok := byName[name]
	return fn, ok
}
