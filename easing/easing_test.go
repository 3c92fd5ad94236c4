package easing

import (
	"fmt"
	"github.com/stretchr/testify/assert"
	"testing"
)

var samples = []float64{0, 0.25, 0.5, 0.75, 1}

func TestBoundaries(t *testing.T) {
	curves := map[string]Func{
		"Linear":            Linear,
		"InQuad":            InQuad,
		"OutQuad":           OutQuad,
		"InOutQuad":         InOutQuad,
		"InCubic":           InCubic,
		"OutCubic":          OutCubic,
		"InOutCubic":        InOutCubic,
		"InQuart":           InQuart,
		"OutQuart":          OutQuart,
		"InQuint":           InQuint,
		"OutQuint":          OutQuint,
		"InSine":            InSine,
		"OutSine":           OutSine,
		"InOutSine":         InOutSine,
		"InCirc":            InCirc,
		"OutCirc":           OutCirc,
		"InExpo":            InExpo,
		"OutExpo":           OutExpo,
		"InOutExpo":         InOutExpo,
		"InElastic":         InElastic,
		"OutElastic":        OutElastic,
		"OutElasticHalf":    OutElasticHalf,
		"OutElasticQuarter": OutElasticQuarter,
		"InOutElastic":      InOutElastic,
		"InBounce":          InBounce,
		"OutBounce":         OutBounce,
		"InOutBounce":       InOutBounce,
		"OutPow10":          OutPow10,
	}

	for name, fn := range curves {
		t.Run(name, func(t *testing.T) {
			assert.InDelta(t, 0, fn(0), 1e-9)
			assert.InDelta(t, 1, fn(1), 1e-9)
		})
	}
}

func TestSymmetricPairs(t *testing.T) {
	pairs := []struct {
		name    string
		in, out Func
	}{
		{"Quad", InQuad, OutQuad},
		{"Cubic", InCubic, OutCubic},
		{"Quart", InQuart, OutQuart},
		{"Quint", InQuint, OutQuint},
		{"Sine", InSine, OutSine},
		{"Circ", InCirc, OutCirc},
		{"Expo", InExpo, OutExpo},
		{"Back", InBack, OutBack},
		{"Elastic", InElastic, OutElastic},
		{"Bounce", InBounce, OutBounce},
	}

	for _, pair := range pairs {
		for _, x := range samples {
			t.Run(fmt.Sprintf("%s/%v", pair.name, x), func(t *testing.T) {
				assert.InDelta(t, pair.out(x), 1-pair.in(1-x), 1e-9)
			})
		}
	}
}

func TestOvershoot(t *testing.T) {
	// back easing dips below zero before heading to the target
	assert.Less(t, InBack(0.2), 0.0)
	assert.Greater(t, OutBack(0.8), 1.0)
}

func TestNone(t *testing.T) {
	for _, x := range samples {
		assert.Equal(t, 1.0, None(x))
	}
}

func TestByName(t *testing.T) {
	fn, ok := ByName("OutBounce")
	assert.True(t, ok)
	assert.Equal(t, OutBounce(0.3), fn(0.3))

	fn, ok = ByName("")
	assert.True(t, ok)
	assert.Equal(t, 0.42, fn(0.42))

	_, ok = ByName("OutWobble")
	assert.False(t, ok)
}
