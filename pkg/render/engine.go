package render

import (
	"image/color"
	"math"
	"sort"

	"github.com/rs/zerolog"

	"github.com/taigrr/polyscope/pkg/math3d"
	"github.com/taigrr/polyscope/pkg/palette"
	"github.com/taigrr/polyscope/pkg/shapes"
)

const (
	degToRad = math.Pi / 180

	// Auxiliary meshes are regenerated every frame and positioned
	// from the last translation only; rotation and scale do not
	// apply to reference geometry.
	gridSize      = 400.0
	gridDivisions = 8
	gridDrop      = 150.0 // fixed vertical offset below the shape
	axesLength    = 150.0

	minVertexRadius = 1.0
)

var (
	gridRGBA    = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0x64}
	fallbackRGB = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// Engine owns the active mesh, the transformed-vertex cache, and the
// render settings, and drives the transform-project-draw pipeline.
// It is single-owner, single-threaded: callers invoke Transform then
// Render per frame and must serialize concurrent access themselves.
type Engine struct {
	Settings Settings

	// FocalLength is the pinhole focal length f in the projection
	// scale f/(f+z). It is clamped to a minimum of 1 when projecting.
	FocalLength float64

	canvas      Canvas
	log         zerolog.Logger
	mesh        *shapes.Mesh
	transformed []math3d.Vec3
	last        Transform
}

// NewEngine creates an engine drawing to the given canvas, with a unit
// cube as the active mesh. The canvas may be nil; Render then reports
// a diagnostic and skips the frame.
func NewEngine(canvas Canvas) *Engine {
	e := &Engine{
		Settings:    DefaultSettings(),
		FocalLength: 400,
		canvas:      canvas,
		log:         zerolog.Nop(),
		last:        NewTransform(),
	}
	e.SetShape(shapes.Cube{Size: 100})
	return e
}

// SetLogger routes the engine's diagnostics (non-fatal configuration
// errors) to the given logger.
func (e *Engine) SetLogger(log zerolog.Logger) {
	e.log = log
}

// SetCanvas swaps the drawing backend.
func (e *Engine) SetCanvas(canvas Canvas) {
	e.canvas = canvas
}

// SetShape replaces the active mesh with a freshly generated one.
func (e *Engine) SetShape(s shapes.Shape) {
	e.SetMesh(s.Mesh())
}

// SetMesh replaces the active mesh wholesale. The transformed-vertex
// cache is reseeded with the untransformed vertices, so callers must
// Transform before Render to avoid one frame without transforms.
func (e *Engine) SetMesh(m *shapes.Mesh) {
	e.mesh = m
	e.transformed = append([]math3d.Vec3(nil), m.Vertices...)
}

// SetShapeByName translates an external shape name and positional
// parameters at the boundary. An unknown name is reported on the
// diagnostic channel and returned; the active mesh and cache stay
// untouched.
func (e *Engine) SetShapeByName(name string, params ...float64) error {
	s, err := shapes.Parse(name, params...)
	if err != nil {
		e.log.Warn().Err(err).Str("shape", name).Msg("shape selection ignored")
		return err
	}
	e.SetShape(s)
	return nil
}

// Mesh returns the active mesh.
func (e *Engine) Mesh() *shapes.Mesh {
	return e.mesh
}

// TransformedVertices returns the cache left by the last Transform
// call, one entry per mesh vertex in the same order.
func (e *Engine) TransformedVertices() []math3d.Vec3 {
	return e.transformed
}

// Transform applies the composed matrix Scale·RotZ·RotY·RotX to every
// mesh vertex, adds the translation in vector space, and stores the
// result as the transformed-vertex cache. The raw parameters are
// snapshotted for grid/axes placement. The fixed composition order
// means rotations act about the shape's local axes before translation;
// reordering changes the picture and must be preserved.
func (e *Engine) Transform(tp Transform) {
	m := math3d.Scale(math3d.V3(tp.ScaleX, tp.ScaleY, tp.ScaleZ)).
		Mul(math3d.RotateZ(tp.RotationZ * degToRad)).
		Mul(math3d.RotateY(tp.RotationY * degToRad)).
		Mul(math3d.RotateX(tp.RotationX * degToRad))
	tr := math3d.V3(tp.TranslateX, tp.TranslateY, tp.TranslateZ)

	if len(e.transformed) != len(e.mesh.Vertices) {
		e.transformed = make([]math3d.Vec3, len(e.mesh.Vertices))
	}
	for i, v := range e.mesh.Vertices {
		e.transformed[i] = m.MulVec3(v).Add(tr)
	}
	e.last = tp
}

// project maps a transformed point to screen coordinates around the
// given center using the pinhole scale f/(f+z).
func (e *Engine) project(v math3d.Vec3, cx, cy float64) (x, y, scale float64) {
	f := math.Max(1, e.FocalLength)
	scale = f / (f + v.Z)
	return cx + v.X*scale, cy + v.Y*scale, scale
}

// Render draws one frame: background, optional grid and axes, then the
// mesh edges back-to-front, then optional vertex discs. With no canvas
// attached the frame is skipped entirely after a diagnostic.
func (e *Engine) Render() {
	if e.canvas == nil {
		e.log.Warn().Msg("render skipped: no canvas attached")
		return
	}

	w, h := e.canvas.Size()
	cx, cy := float64(w)/2, float64(h)/2

	if bg := e.Settings.BackgroundColor; bg != "" && bg != "none" {
		if c, err := palette.RGBA(bg); err == nil {
			e.canvas.Fill(c)
		} else {
			e.log.Warn().Err(err).Msg("bad background color")
			e.canvas.Clear()
		}
	} else {
		e.canvas.Clear()
	}

	if e.Settings.ShowGrid {
		e.renderGrid(cx, cy)
	}
	if e.Settings.ShowAxes {
		e.renderAxes(cx, cy)
	}

	e.renderMesh(cx, cy)

	if e.Settings.ShowVertices {
		e.renderVertices(cx, cy)
	}
}

// renderGrid draws the reference grid offset by the last translation
// plus a fixed drop, in a neutral color at reduced opacity.
func (e *Engine) renderGrid(cx, cy float64) {
	mesh := shapes.Grid{Size: gridSize, Divisions: gridDivisions}.Mesh()
	offset := math3d.V3(e.last.TranslateX, e.last.TranslateY+gridDrop, e.last.TranslateZ)

	for _, edge := range mesh.Edges {
		x0, y0, _ := e.project(mesh.Vertices[edge[0]].Add(offset), cx, cy)
		x1, y1, _ := e.project(mesh.Vertices[edge[1]].Add(offset), cx, cy)
		e.canvas.StrokeLine(x0, y0, x1, y1, gridRGBA, 1)
	}
}

// renderAxes draws the axis triad offset by the last translation, each
// edge in its fixed color with a wider stroke than the default.
func (e *Engine) renderAxes(cx, cy float64) {
	mesh := shapes.Axes{Length: axesLength}.Mesh()
	offset := math3d.V3(e.last.TranslateX, e.last.TranslateY, e.last.TranslateZ)
	width := e.Settings.LineWidth + 1

	for i, edge := range mesh.Edges {
		x0, y0, _ := e.project(mesh.Vertices[edge[0]].Add(offset), cx, cy)
		x1, y1, _ := e.project(mesh.Vertices[edge[1]].Add(offset), cx, cy)
		e.canvas.StrokeLine(x0, y0, x1, y1, e.parseColor(mesh.EdgeColors[i]), width)
	}
}

// renderMesh projects the transformed-vertex cache and strokes every
// edge sorted ascending by mean endpoint depth (painter's algorithm),
// so nearer edges overpaint farther ones.
func (e *Engine) renderMesh(cx, cy float64) {
	type point struct{ x, y float64 }
	pts := make([]point, len(e.transformed))
	minZ, maxZ := math.Inf(1), math.Inf(-1)
	for i, v := range e.transformed {
		x, y, _ := e.project(v, cx, cy)
		pts[i] = point{x, y}
		minZ = math.Min(minZ, v.Z)
		maxZ = math.Max(maxZ, v.Z)
	}
	if minZ >= maxZ {
		maxZ = minZ + 1 // flat mesh; keep depth normalization finite
	}

	depths := make([]float64, len(e.mesh.Edges))
	order := make([]int, len(e.mesh.Edges))
	for i, edge := range e.mesh.Edges {
		depths[i] = (e.transformed[edge[0]].Z + e.transformed[edge[1]].Z) / 2
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		return depths[order[i]] < depths[order[j]]
	})

	wire := e.parseColor(e.Settings.WireframeColor)
	for _, i := range order {
		edge := e.mesh.Edges[i]
		col := wire
		switch {
		case i < len(e.mesh.EdgeColors):
			col = e.parseColor(e.mesh.EdgeColors[i])
		case e.Settings.DepthColoring:
			col = e.parseColor(palette.DepthColor(depths[i], minZ, maxZ))
		}
		p0, p1 := pts[edge[0]], pts[edge[1]]
		e.canvas.StrokeLine(p0.x, p0.y, p1.x, p1.y, col, e.Settings.LineWidth)
	}
}

// renderVertices draws every projected vertex as a filled disc whose
// radius follows that vertex's own perspective scale, floored so far
// vertices stay visible.
func (e *Engine) renderVertices(cx, cy float64) {
	base := math.Max(0, e.Settings.VertexSize)
	col := e.parseColor(e.Settings.VertexColor)

	for _, v := range e.transformed {
		x, y, scale := e.project(v, cx, cy)
		r := math.Max(minVertexRadius, base*scale)
		e.canvas.FillCircle(x, y, r, col)
	}
}

// parseColor resolves a hex setting, reporting bad values once per use
// and falling back to white.
func (e *Engine) parseColor(hex string) color.RGBA {
	c, err := palette.RGBA(hex)
	if err != nil {
		e.log.Warn().Err(err).Str("color", hex).Msg("bad color setting")
		return fallbackRGB
	}
	return c
}
