package main

import (
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/TheFellow/windtunnel/pkg/fluid"
)

const (
	screenWidth  = 800
	screenHeight = 480
	minGridSize  = 8
	maxBrush     = 8
)

type Game struct {
	sim     *fluid.Sim
	pixels  []byte
	scale   int
	editing bool
	param   int
	brush   int

	// grid size requested by the last Layout call
	wantW, wantH int
}

func NewGame(sim *fluid.Sim, scale int) *Game {
	w, h := sim.Size()
	return &Game{
		sim:    sim,
		scale:  scale,
		pixels: make([]byte, 4*w*h),
		wantW:  w,
		wantH:  h,
	}
}

func (g *Game) Update() error {
	if w, h := g.sim.Size(); w != g.wantW || h != g.wantH {
		g.sim.Resize(g.wantW, g.wantH)
		g.pixels = make([]byte, 4*g.wantW*g.wantH)
	}

	g.handleKeys()
	g.handleMouse()

	if !g.editing {
		g.sim.NextStep()
	}
	return nil
}

func (g *Game) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sim.Restart()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.editing = !g.editing
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		g.brush = min(g.brush+1, maxBrush)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		g.brush = max(g.brush-1, 0)
	}

	params := fluid.Params()
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		g.param = (g.param + 1) % len(params)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.param = (g.param + len(params) - 1) % len(params)
	}

	var up bool
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyRight):
		up = true
	case inpututil.IsKeyJustPressed(ebiten.KeyLeft):
		up = false
	default:
		return
	}
	cfg := g.sim.Config().Step(params[g.param], up)
	if err := g.sim.SetConfig(cfg); err != nil {
		log.Printf("rejected config: %v", err)
	}
}

// handleMouse paints obstacles with the left button and erases them with
// the right one, using a round brush. The inlet wall and the outer ring are
// left alone.
func (g *Game) handleMouse() {
	set := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	unset := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	if !set && !unset {
		return
	}
	x, y, ok := g.cursorCell()
	if !ok {
		return
	}
	if set {
		g.sim.SetCircularBlock(x, y, g.brush)
	} else {
		g.sim.UnsetCircularBlock(x, y, g.brush)
	}
}

// cursorCell returns the sim cell under the cursor. The sim origin is
// bottom left, the screen origin top left.
func (g *Game) cursorCell() (x, y int, ok bool) {
	w, h := g.sim.Size()
	cx, cy := ebiten.CursorPosition()
	x, y = cx, h-1-cy
	return x, y, x >= 0 && x < w && y >= 0 && y < h
}

func (g *Game) Draw(screen *ebiten.Image) {
	w, h := g.sim.Size()
	if len(g.pixels) != 4*w*h {
		return
	}
	pressure := g.sim.Pressure()
	smoke := g.sim.Smoke()
	blocks := g.sim.Blocks()
	minP, maxP := pressure.MinMax()

	// the sim origin is bottom left, the screen origin top left
	for row := 0; row < h; row++ {
		y := h - 1 - row
		for x := 0; x < w; x++ {
			i := fluid.IndexWithHeight(h, x, y)
			c := blockColor
			if !blocks.At(i) {
				c = cellColor(smoke.At(i), pressure.At(i), minP, maxP)
			}
			p := 4 * (row*w + x)
			g.pixels[p] = c.R
			g.pixels[p+1] = c.G
			g.pixels[p+2] = c.B
			g.pixels[p+3] = c.A
		}
	}
	screen.WritePixels(g.pixels)

	ebitenutil.DebugPrint(screen, g.hud())
}

func (g *Game) hud() string {
	var b strings.Builder
	w, h := g.sim.Size()
	stats := g.sim.LastStep()
	fmt.Fprintf(&b, "FPS: %0.1f  grid: %dx%d\n", ebiten.ActualFPS(), w, h)
	fmt.Fprintf(&b, "step: %v (dt %v)\n", stats.Duration.Round(time.Microsecond), stats.Delta)
	fmt.Fprintf(&b, "max div: %.3g  brush: %d\n", g.sim.MaxDivergence(), g.brush)
	if x, y, ok := g.cursorCell(); ok {
		if u, v, err := g.sim.Velocity().Center(x, y); err == nil {
			fmt.Fprintf(&b, "(%d,%d) u: %.2f v: %.2f\n", x, y, u, v)
		}
	}
	if g.editing {
		b.WriteString("EDITING\n")
	}
	cfg := g.sim.Config()
	for i, p := range fluid.Params() {
		marker := "  "
		if i == g.param {
			marker = "> "
		}
		fmt.Fprintf(&b, "%s%s: %.2f\n", marker, p, cfg.Value(p))
	}
	return b.String()
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.wantW = max(outsideWidth/g.scale, minGridSize)
	g.wantH = max(outsideHeight/g.scale, minGridSize)
	return g.wantW, g.wantH
}

func main() {
	cfg := fluid.DefaultConfig()
	scale := flag.Int("scale", 4, "screen pixels per grid cell")
	workers := flag.Int("workers", 0, "solver goroutines, 0 for one per CPU")
	gravity := flag.Float64("gravity", float64(cfg.Gravity), "gravity in m/s²")
	wind := flag.Float64("wind", float64(cfg.WindSpeed), "inlet wind speed")
	smoke := flag.Float64("smoke", float64(cfg.SmokeSize), "height fraction of the smoke band")
	density := flag.Float64("density", float64(cfg.Density), "fluid density")
	flag.Parse()

	cfg = fluid.Config{
		Gravity:   float32(*gravity),
		WindSpeed: float32(*wind),
		SmokeSize: float32(*smoke),
		Density:   float32(*density),
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	if *scale < 1 {
		log.Fatalf("invalid scale %d", *scale)
	}

	sim := fluid.New(screenWidth / *scale, screenHeight / *scale, cfg)
	sim.Workers = *workers

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Wind Tunnel")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(NewGame(sim, *scale)); err != nil {
		log.Fatal(err)
	}
}
