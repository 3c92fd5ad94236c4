package main

import (
	"fmt"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/oliverbestmann/transforms/clock"
	"github.com/oliverbestmann/transforms/config"
	"github.com/oliverbestmann/transforms/scene"
	"github.com/oliverbestmann/transforms/storyboard"
	"github.com/rs/zerolog/log"
)

const minRate = 1.0 / 16
const maxRate = 16.0

// Game plays a storyboard and implements the ebiten.Game interface.
type Game struct {
	cfg        *config.Config
	storyboard *storyboard.Storyboard

	stopwatch *clock.Stopwatch
	clock     *clock.Framed

	root     *scene.Drawable
	duration float64

	debug bool
}

func NewGame(cfg *config.Config, sb *storyboard.Storyboard) (*Game, error) {
	g := &Game{
		cfg:        cfg,
		storyboard: sb,
		debug:      Debug,
		duration:   sb.Duration(),
	}

	if err := g.Reset(); err != nil {
		return nil, err
	}

	return g, nil
}

// Reset rebuilds the scene and restarts playback from the beginning.
func (g *Game) Reset() error {
	g.stopwatch = clock.NewStopwatch()
	g.stopwatch.SetRate(g.cfg.Rate)

	g.clock = clock.NewFramed(g.stopwatch)

	root, err := g.storyboard.Build(g.clock)
	if err != nil {
		return fmt.Errorf("build storyboard: %w", err)
	}

	g.root = root

	g.stopwatch.Start()

	log.Info().
		Int("sprites", len(root.Children())).
		Float64("duration", g.duration).
		Msg("Playback started")

	return nil
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	_ = outsideWidth
	_ = outsideHeight

	// stay with a fixed screen size
	return g.cfg.Window.Width, g.cfg.Window.Height
}

func (g *Game) Update() error {
	if err := g.Input(); err != nil {
		return err
	}

	g.clock.ProcessFrame()
	g.root.Update()

	return nil
}

func (g *Game) Input() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.debug = !g.debug
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		return g.Reset()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if g.stopwatch.IsRunning() {
			g.stopwatch.Stop()
		} else {
			g.stopwatch.Start()
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		g.seek(g.stopwatch.CurrentTime() + g.cfg.SeekStepMs)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		g.seek(g.stopwatch.CurrentTime() - g.cfg.SeekStepMs)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		g.setRate(g.stopwatch.Rate() * 2)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		g.setRate(g.stopwatch.Rate() / 2)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		g.setRate(-g.stopwatch.Rate())
	}

	return nil
}

func (g *Game) seek(time float64) {
	time = max(0, time)

	if time < g.stopwatch.CurrentTime() && g.root.RemoveCompletedTransforms() {
		log.Warn().Msg("Completed transforms are purged, seeking backwards will not restore them")
	}

	g.stopwatch.Seek(time)
}

func (g *Game) setRate(rate float64) {
	sign := 1.0
	if rate < 0 {
		sign = -1
	}

	rate = sign * min(maxRate, max(minRate, sign*rate))

	log.Debug().Float64("rate", rate).Msg("Playback rate changed")
	g.stopwatch.SetRate(rate)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(BackgroundColor)

	for d := range g.root.All() {
		if d == g.root || !d.IsAlive() {
			continue
		}

		g.drawSprite(screen, d)
	}

	g.drawTimeline(screen)

	if g.debug {
		g.DrawDebugText(screen)
	}
}

func (g *Game) drawSprite(screen *ebiten.Image, d *scene.Drawable) {
	if d.Alpha <= 0 {
		return
	}

	tr := spriteGeoM(d)

	// a faint shadow below the sprite
	shadow := &ebiten.DrawImageOptions{GeoM: tr}
	shadow.GeoM.Translate(4, 4)
	shadow.ColorScale.ScaleWithColor(ShadowColor)
	shadow.ColorScale.ScaleAlpha(float32(d.Alpha))
	screen.DrawImage(whiteImage, shadow)

	op := &ebiten.DrawImageOptions{GeoM: tr}
	op.ColorScale.ScaleWithColor(d.Color)
	op.ColorScale.ScaleAlpha(float32(d.Alpha))
	screen.DrawImage(whiteImage, op)

	if g.debug {
		drawAnchor(screen, d)
	}
}

func (g *Game) drawTimeline(screen *ebiten.Image) {
	if g.duration <= 0 {
		return
	}

	screenSize := imageSizeOf(screen)

	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleWithColor(TimelineBackgroundColor)
	op.GeoM.Scale(screenSize.X, 4)
	op.GeoM.Translate(0, screenSize.Y-4)
	screen.DrawImage(whiteImage, op)

	progress := min(1, max(0, g.clock.CurrentTime()/g.duration))

	op = &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleWithColor(TimelineColor)
	op.GeoM.Scale(screenSize.X*progress, 4)
	op.GeoM.Translate(0, screenSize.Y-4)
	screen.DrawImage(whiteImage, op)
}
