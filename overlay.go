package main

import (
	"fmt"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/oliverbestmann/transforms/scene"
	"strings"
)

// drawAnchor marks the draw position of a sprite, including its wiggle.
func drawAnchor(screen *ebiten.Image, d *scene.Drawable) {
	pos := d.DrawPosition()
	vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), 3, DebugColor, true)

	if d.WiggleOffset.Len() > 0 {
		// line back to the resting position
		vector.StrokeLine(screen,
			float32(d.Position.X), float32(d.Position.Y),
			float32(pos.X), float32(pos.Y),
			1, DebugColor, true)
	}
}

func (g *Game) DrawDebugText(screen *ebiten.Image) {
	var transforms int
	for d := range g.root.All() {
		transforms += len(d.Transforms())
	}

	state := "playing"
	if !g.stopwatch.IsRunning() {
		state = "paused"
	}

	var lines []string
	lines = append(lines, fmt.Sprintf("%1.1f fps, %s at %1.2fx", ebiten.ActualFPS(), state, g.stopwatch.Rate()))
	lines = append(lines, fmt.Sprintf("time %1.0fms of %1.0fms", g.clock.CurrentTime(), g.duration))
	lines = append(lines, fmt.Sprintf("%d transforms", transforms))
	lines = append(lines, "space pause, arrows seek and rate, b reverse, r restart, d debug")

	ebitenutil.DebugPrint(screen, strings.Join(lines, "\n"))
}
