// polyscope-gl - Desktop wireframe shape viewer
// The same engine as the terminal viewer, drawn through Ebitengine.
//
// Controls:
//
//	Tab         - Cycle through shapes
//	Arrows      - Pitch and yaw
//	Q/E         - Roll left/right
//	V/G/X/C     - Toggle vertices, grid, axes, depth coloring
//	R           - Reset view
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"
	"github.com/taigrr/polyscope/pkg/render"
	"github.com/taigrr/polyscope/pkg/shapes"
)

const (
	screenWidth  = 800
	screenHeight = 600

	autoSpinY = 0.6 // degrees per tick
	autoSpinX = 0.25
	keySpin   = 2.0
)

var (
	shapeName = flag.String("shape", "cube", "Initial shape name")
	bgColor   = flag.String("bg", "#10101a", "Background color (hex, or 'none')")
)

// Game drives the engine once per tick and retargets the canvas to the
// per-frame screen image.
type Game struct {
	engine *render.Engine
	canvas *render.EbitenCanvas

	tp       render.Transform
	autoSpin bool

	names    []string
	shapeIdx int
}

func NewGame() (*Game, error) {
	canvas := render.NewEbitenCanvas(ebiten.NewImage(screenWidth, screenHeight))
	engine := render.NewEngine(canvas)
	engine.SetLogger(zerolog.New(os.Stderr).With().Timestamp().Logger())
	engine.Settings.BackgroundColor = *bgColor
	engine.Settings.ShowGrid = true
	engine.Settings.ShowAxes = true
	engine.Settings.DepthColoring = true

	if err := engine.SetShapeByName(*shapeName); err != nil {
		return nil, err
	}

	g := &Game{
		engine:   engine,
		canvas:   canvas,
		tp:       render.NewTransform(),
		autoSpin: true,
		names:    shapes.Names(),
	}
	for i, n := range g.names {
		if n == *shapeName {
			g.shapeIdx = i
		}
	}
	return g, nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.shapeIdx = (g.shapeIdx + 1) % len(g.names)
		if err := g.engine.SetShapeByName(g.names[g.shapeIdx]); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyV) {
		g.engine.Settings.ShowVertices = !g.engine.Settings.ShowVertices
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.engine.Settings.ShowGrid = !g.engine.Settings.ShowGrid
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyX) {
		g.engine.Settings.ShowAxes = !g.engine.Settings.ShowAxes
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.engine.Settings.DepthColoring = !g.engine.Settings.DepthColoring
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.autoSpin = !g.autoSpin
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.tp = render.NewTransform()
	}

	if ebiten.IsKeyPressed(ebiten.KeyUp) {
		g.tp.RotationX -= keySpin
	}
	if ebiten.IsKeyPressed(ebiten.KeyDown) {
		g.tp.RotationX += keySpin
	}
	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		g.tp.RotationY -= keySpin
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		g.tp.RotationY += keySpin
	}
	if ebiten.IsKeyPressed(ebiten.KeyQ) {
		g.tp.RotationZ -= keySpin
	}
	if ebiten.IsKeyPressed(ebiten.KeyE) {
		g.tp.RotationZ += keySpin
	}

	if g.autoSpin {
		g.tp.RotationY += autoSpinY
		g.tp.RotationX += autoSpinX
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.SetImage(screen)
	g.engine.Transform(g.tp)
	g.engine.Render()
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	flag.Parse()

	game, err := NewGame()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("polyscope")
	if err := ebiten.RunGame(game); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
