// polyscope - Terminal wireframe shape viewer
// Spin procedural solids or glTF models in your terminal.
//
// Controls:
//
//	Tab         - Cycle through shapes
//	W/S         - Pitch up/down
//	A/D         - Yaw left/right
//	Q/E         - Roll left/right
//	Space       - Apply random impulse
//	+/-         - Zoom in/out
//	V           - Toggle vertex discs
//	G           - Toggle reference grid
//	X           - Toggle axis triad
//	C           - Toggle depth coloring
//	R           - Reset view
//	Esc         - Quit
package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/charmbracelet/harmonica"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/rs/zerolog"
	"github.com/taigrr/polyscope/pkg/render"
	"github.com/taigrr/polyscope/pkg/shapes"
)

var (
	targetFPS = flag.Int("fps", 60, "Target FPS")
	bgColor   = flag.String("bg", "#1e1e28", "Background color (hex, or 'none')")
	shapeName = flag.String("shape", "cube", "Initial shape name")
	modelPath = flag.String("model", "", "Path to a glTF/GLB model to view instead of a shape")
	debugLog  = flag.Bool("debug", false, "Write diagnostics to polyscope.log")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "polyscope - Terminal wireframe shape viewer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: polyscope [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nControls:\n")
		fmt.Fprintf(os.Stderr, "  Tab         - Cycle shapes\n")
		fmt.Fprintf(os.Stderr, "  W/S/A/D     - Pitch and yaw\n")
		fmt.Fprintf(os.Stderr, "  Q/E         - Roll left/right\n")
		fmt.Fprintf(os.Stderr, "  Space       - Random spin\n")
		fmt.Fprintf(os.Stderr, "  +/-         - Zoom in/out\n")
		fmt.Fprintf(os.Stderr, "  V/G/X/C     - Toggle vertices, grid, axes, depth color\n")
		fmt.Fprintf(os.Stderr, "  R           - Reset view\n")
		fmt.Fprintf(os.Stderr, "  Esc         - Quit\n")
	}
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// RotationAxis tracks position and velocity for one rotation axis with
// spring decay. Positions are in degrees.
type RotationAxis struct {
	Position  float64
	Velocity  float64
	velSpring harmonica.Spring
	velAccel  float64 // internal spring velocity (for animating Velocity toward 0)
}

// NewRotationAxis creates an axis with harmonica spring for smooth velocity decay
func NewRotationAxis(fps int) RotationAxis {
	return RotationAxis{
		// Frequency 4.0 = moderate speed, damping 1.0 = critically damped (no overshoot)
		velSpring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0),
	}
}

// Update applies velocity to position and decays velocity toward 0 using spring
func (a *RotationAxis) Update() {
	a.Position += a.Velocity
	a.Velocity, a.velAccel = a.velSpring.Update(a.Velocity, a.velAccel, 0)
}

// RotationState holds rotation with harmonica spring physics
type RotationState struct {
	Pitch, Yaw, Roll RotationAxis
	fps              int
}

func NewRotationState(fps int) *RotationState {
	return &RotationState{
		Pitch: NewRotationAxis(fps),
		Yaw:   NewRotationAxis(fps),
		Roll:  NewRotationAxis(fps),
		fps:   fps,
	}
}

func (r *RotationState) Update() {
	r.Pitch.Update()
	r.Yaw.Update()
	r.Roll.Update()
}

func (r *RotationState) ApplyImpulse(pitch, yaw, roll float64) {
	r.Pitch.Velocity += pitch
	r.Yaw.Velocity += yaw
	r.Roll.Velocity += roll
}

func (r *RotationState) Reset() {
	r.Pitch = NewRotationAxis(r.fps)
	r.Yaw = NewRotationAxis(r.fps)
	r.Roll = NewRotationAxis(r.fps)
}

// fitMesh recenters a loaded model on the origin and scales its longest
// dimension to match the procedural shapes.
func fitMesh(m *shapes.Mesh) {
	min, max := m.Bounds()
	center := m.Center()
	size := max.Sub(min)
	maxDim := math.Max(size.X, math.Max(size.Y, size.Z))
	if maxDim <= 0 {
		return
	}
	s := 200.0 / maxDim
	for i, v := range m.Vertices {
		m.Vertices[i] = v.Sub(center).Scale(s)
	}
}

func run() error {
	log := zerolog.Nop()
	if *debugLog {
		f, err := os.Create("polyscope.log")
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		log = zerolog.New(f).With().Timestamp().Logger()
	}

	// Create terminal
	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	// Create renderer
	termRenderer := render.NewTerminalRenderer(term, width, height)
	fbWidth, fbHeight := termRenderer.FramebufferSize()
	fb := render.NewFramebuffer(fbWidth, fbHeight)

	engine := render.NewEngine(fb)
	engine.SetLogger(log)
	engine.Settings.BackgroundColor = *bgColor
	engine.Settings.ShowGrid = true
	engine.Settings.ShowAxes = true
	engine.Settings.DepthColoring = true

	names := shapes.Names()
	shapeIdx := 0
	modelMode := false

	switch {
	case *modelPath != "":
		mesh, err := shapes.LoadGLTF(*modelPath)
		if err != nil {
			cleanupTerminal(term)
			return fmt.Errorf("load model: %w", err)
		}
		fitMesh(mesh)
		engine.SetMesh(mesh)
		modelMode = true
		log.Info().Str("model", filepath.Base(*modelPath)).
			Int("vertices", mesh.VertexCount()).
			Int("edges", mesh.EdgeCount()).
			Msg("model loaded")
	default:
		if err := engine.SetShapeByName(*shapeName); err != nil {
			cleanupTerminal(term)
			return fmt.Errorf("select shape: %w", err)
		}
		for i, n := range names {
			if n == *shapeName {
				shapeIdx = i
			}
		}
	}

	// Initialize rotation state
	rotation := NewRotationState(*targetFPS)
	zoomZ := 0.0

	// Context for clean shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Input state
	inputTorque := struct{ pitch, yaw, roll float64 }{}
	const torqueStrength = 90.0 // degrees/sec of velocity per held key

	// Event handler
	go func() {
		for ev := range term.Events() {
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				width, height = ev.Width, ev.Height
				term.Erase()
				term.Resize(width, height)
				termRenderer = render.NewTerminalRenderer(term, width, height)
				fbWidth, fbHeight = termRenderer.FramebufferSize()
				fb = render.NewFramebuffer(fbWidth, fbHeight)
				engine.SetCanvas(fb)

			case uv.KeyPressEvent:
				switch {
				case ev.MatchString("escape"), ev.MatchString("ctrl+c"):
					cancel()
					return
				case ev.MatchString("tab"):
					if !modelMode {
						shapeIdx = (shapeIdx + 1) % len(names)
						if err := engine.SetShapeByName(names[shapeIdx]); err != nil {
							log.Warn().Err(err).Msg("cycle shape")
						}
					}
				case ev.MatchString("r"):
					rotation.Reset()
					zoomZ = 0
				case ev.MatchString("w", "up"):
					inputTorque.pitch = -torqueStrength
				case ev.MatchString("s", "down"):
					inputTorque.pitch = torqueStrength
				case ev.MatchString("a", "left"):
					inputTorque.yaw = -torqueStrength
				case ev.MatchString("d", "right"):
					inputTorque.yaw = torqueStrength
				case ev.MatchString("q"):
					inputTorque.roll = -torqueStrength
				case ev.MatchString("e"):
					inputTorque.roll = torqueStrength
				case ev.MatchString("space"):
					rotation.ApplyImpulse(
						(rand.Float64()-0.5)*8,
						(rand.Float64()-0.5)*8,
						(rand.Float64()-0.5)*8,
					)
				case ev.MatchString("+", "="):
					zoomZ = math.Max(-300, zoomZ-40)
				case ev.MatchString("-", "_"):
					zoomZ = math.Min(2000, zoomZ+40)
				case ev.MatchString("v"):
					engine.Settings.ShowVertices = !engine.Settings.ShowVertices
				case ev.MatchString("g"):
					engine.Settings.ShowGrid = !engine.Settings.ShowGrid
				case ev.MatchString("x"):
					engine.Settings.ShowAxes = !engine.Settings.ShowAxes
				case ev.MatchString("c"):
					engine.Settings.DepthColoring = !engine.Settings.DepthColoring
				}

			case uv.KeyReleaseEvent:
				switch {
				case ev.MatchString("w"), ev.MatchString("up"), ev.MatchString("s"), ev.MatchString("down"):
					inputTorque.pitch = 0
				case ev.MatchString("a"), ev.MatchString("left"), ev.MatchString("d"), ev.MatchString("right"):
					inputTorque.yaw = 0
				case ev.MatchString("q"), ev.MatchString("e"):
					inputTorque.roll = 0
				}
			}
		}
	}()

	// Main loop
	targetDuration := time.Second / time.Duration(*targetFPS)
	lastFrame := time.Now()

	for {
		select {
		case <-ctx.Done():
			cleanupTerminal(term)
			return nil
		default:
		}

		now := time.Now()
		dt := now.Sub(lastFrame).Seconds()
		lastFrame = now

		if dt > 0.1 {
			dt = 0.1
		}

		// Apply input torque and decay it (key release events unreliable)
		rotation.ApplyImpulse(
			inputTorque.pitch*dt,
			inputTorque.yaw*dt,
			inputTorque.roll*dt,
		)
		inputTorque.pitch *= 0.9
		inputTorque.yaw *= 0.9
		inputTorque.roll *= 0.9

		// Update springs (harmonica handles timing internally)
		rotation.Update()

		tp := render.NewTransform()
		tp.RotationX = rotation.Pitch.Position
		tp.RotationY = rotation.Yaw.Position
		tp.RotationZ = rotation.Roll.Position
		tp.TranslateZ = zoomZ

		engine.Transform(tp)
		engine.Render()

		// Display
		termRenderer.Render(fb)
		if err := termRenderer.Flush(); err != nil {
			cleanupTerminal(term)
			return fmt.Errorf("flush: %w", err)
		}

		// Frame timing
		elapsed := time.Since(now)
		if elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}

func cleanupTerminal(term *uv.Terminal) {
	term.ExitAltScreen()
	term.ShowCursor()
	term.Shutdown(context.Background())
}
