package scene

import (
	"github.com/furui/fastnoiselite-go"
	"github.com/oliverbestmann/transforms/transform"
	"github.com/quasilyte/gmath"
	"hash/fnv"
)

// wiggleTransform writes a noise driven offset into WiggleOffset. The offset
// only depends on the time within the window, the amplitude decays following
// the easing.
type wiggleTransform struct {
	transform.Base

	drawable  *Drawable
	amplitude float64
	noise     *fastnoiselite.FastNoiseLite
}

func newWiggleTransform(d *Drawable, amplitude, frequency float64) *wiggleTransform {
	noise := fastnoiselite.NewNoise()
	noise.Seed = seedOf(d.Name)
	noise.Frequency = frequency

	return &wiggleTransform{
		Base:      transform.NewBase(&d.Transformable, MemberWiggle, ""),
		drawable:  d,
		amplitude: amplitude,
		noise:     noise,
	}
}

func (t *wiggleTransform) ReadIntoStartValue() {
	// always wiggles around zero
}

func (t *wiggleTransform) Apply(time float64) {
	t.drawable.WiggleOffset = t.offsetAt(time)
}

func (t *wiggleTransform) offsetAt(time float64) gmath.Vec {
	if time < t.StartTime || time >= t.EndTime {
		return gmath.Vec{}
	}

	type F = fastnoiselite.FNLfloat

	elapsed := time - t.StartTime
	envelope := 1 - t.Easing(elapsed/t.Duration())

	x := float64(t.noise.GetNoise2D(F(elapsed), 0))
	y := float64(t.noise.GetNoise2D(F(elapsed), 1000))

	return gmath.Vec{X: x, Y: y}.Mulf(t.amplitude * envelope)
}

func (t *wiggleTransform) Clone() transform.Transform {
	clone := *t
	return &clone
}

func seedOf(name string) int32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(name))
	return int32(h.Sum32())
}
