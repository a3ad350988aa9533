package render

import (
	"image/color"
	"math"
	"testing"

	"github.com/taigrr/polyscope/pkg/math3d"
	"github.com/taigrr/polyscope/pkg/palette"
	"github.com/taigrr/polyscope/pkg/shapes"
)

type lineCall struct {
	x0, y0, x1, y1 float64
	col            color.RGBA
	width          float64
}

type circleCall struct {
	x, y, r float64
	col     color.RGBA
}

// recordingCanvas captures draw calls in issue order.
type recordingCanvas struct {
	w, h    int
	clears  int
	fills   []color.RGBA
	lines   []lineCall
	circles []circleCall
}

func (c *recordingCanvas) Size() (int, int) { return c.w, c.h }
func (c *recordingCanvas) Clear()           { c.clears++ }
func (c *recordingCanvas) Fill(col color.RGBA) {
	c.fills = append(c.fills, col)
}

func (c *recordingCanvas) StrokeLine(x0, y0, x1, y1 float64, col color.RGBA, width float64) {
	c.lines = append(c.lines, lineCall{x0, y0, x1, y1, col, width})
}

func (c *recordingCanvas) FillCircle(x, y, r float64, col color.RGBA) {
	c.circles = append(c.circles, circleCall{x, y, r, col})
}

func newTestEngine(w, h int) (*Engine, *recordingCanvas) {
	canvas := &recordingCanvas{w: w, h: h}
	return NewEngine(canvas), canvas
}

func TestIdentityTransformKeepsVertices(t *testing.T) {
	e, _ := newTestEngine(200, 100)
	e.SetShape(shapes.Cube{Size: 100})
	e.Transform(NewTransform())

	mesh := e.Mesh()
	for i, v := range e.TransformedVertices() {
		if v != mesh.Vertices[i] {
			t.Errorf("vertex %d = %v, want %v (identity transform)", i, v, mesh.Vertices[i])
		}
	}
}

func TestTransformRotationY90(t *testing.T) {
	e, _ := newTestEngine(200, 100)
	if err := e.SetShapeByName("cube", 100); err != nil {
		t.Fatal(err)
	}

	tp := NewTransform()
	tp.RotationY = 90
	e.Transform(tp)

	// Find the vertex that started at (100, 100, 100).
	idx := -1
	for i, v := range e.Mesh().Vertices {
		if v == math3d.V3(100, 100, 100) {
			idx = i
			break
		}
	}
	if idx < 0 {
		t.Fatal("cube has no vertex at (100, 100, 100)")
	}

	got := e.TransformedVertices()[idx]
	want := math3d.V3(100, 100, -100)
	if math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 || math.Abs(got.Z-want.Z) > 1e-9 {
		t.Errorf("rotated vertex = %v, want %v", got, want)
	}
}

func TestTransformTranslationAndScale(t *testing.T) {
	e, _ := newTestEngine(200, 100)
	e.SetMesh(&shapes.Mesh{
		Name:     "point",
		Vertices: []math3d.Vec3{math3d.V3(10, 20, 30)},
	})

	tp := NewTransform()
	tp.ScaleX, tp.ScaleY, tp.ScaleZ = 2, 0, -1
	tp.TranslateX, tp.TranslateY, tp.TranslateZ = 5, 6, 7
	e.Transform(tp)

	got := e.TransformedVertices()[0]
	want := math3d.V3(25, 6, -23)
	if got != want {
		t.Errorf("transformed = %v, want %v (scale then translate)", got, want)
	}
}

// depthTestMesh has three edges with mean depths -80 < 50 < 120 and
// distinct x positions so draw order can be observed.
func depthTestMesh() *shapes.Mesh {
	return &shapes.Mesh{
		Name: "depthtest",
		Vertices: []math3d.Vec3{
			{X: 30, Z: 50}, {X: 40, Z: 50},
			{X: 10, Z: -80}, {X: 20, Z: -80},
			{X: 50, Z: 120}, {X: 60, Z: 120},
		},
		Edges: [][2]int{{0, 1}, {2, 3}, {4, 5}},
	}
}

func TestRenderDepthSortOrder(t *testing.T) {
	e, canvas := newTestEngine(200, 100)
	e.FocalLength = 1e9 // near-orthographic so screen x tracks scene x
	e.SetMesh(depthTestMesh())
	e.Transform(NewTransform())
	e.Render()

	if len(canvas.lines) != 3 {
		t.Fatalf("lines drawn = %d, want 3", len(canvas.lines))
	}

	// Ascending mean depth: -80, 50, 120 → scene x 10, 30, 50.
	wantX := []float64{10, 30, 50}
	cx := 100.0
	for i, want := range wantX {
		got := canvas.lines[i].x0 - cx
		if math.Abs(got-want) > 1e-3 {
			t.Errorf("draw %d starts at x offset %v, want %v (painter order)", i, got, want)
		}
	}
}

func TestRenderDepthColoring(t *testing.T) {
	e, canvas := newTestEngine(200, 100)
	e.Settings.DepthColoring = true
	e.SetMesh(depthTestMesh())
	e.Transform(NewTransform())
	e.Render()

	if len(canvas.lines) != 3 {
		t.Fatalf("lines drawn = %d, want 3", len(canvas.lines))
	}

	// Vertex depth bounds are -80..120; edges sorted ascending.
	for i, depth := range []float64{-80, 50, 120} {
		want, err := palette.RGBA(palette.DepthColor(depth, -80, 120))
		if err != nil {
			t.Fatal(err)
		}
		if canvas.lines[i].col != want {
			t.Errorf("edge %d color = %v, want %v", i, canvas.lines[i].col, want)
		}
	}
}

func TestRenderWireframeColor(t *testing.T) {
	e, canvas := newTestEngine(200, 100)
	e.Settings.WireframeColor = "#123456"
	e.SetShape(shapes.Tetrahedron{Size: 50})
	e.Transform(NewTransform())
	e.Render()

	want := color.RGBA{0x12, 0x34, 0x56, 0xff}
	for i, l := range canvas.lines {
		if l.col != want {
			t.Errorf("line %d color = %v, want %v", i, l.col, want)
		}
	}
}

func TestUnknownShapeLeavesStateUnchanged(t *testing.T) {
	e, _ := newTestEngine(200, 100)
	if err := e.SetShapeByName("cube", 100); err != nil {
		t.Fatal(err)
	}
	tp := NewTransform()
	tp.RotationX = 30
	e.Transform(tp)

	meshBefore := e.Mesh()
	cacheBefore := append([]math3d.Vec3(nil), e.TransformedVertices()...)

	if err := e.SetShapeByName("icosahedron"); err == nil {
		t.Fatal("SetShapeByName(icosahedron) should fail")
	}

	if e.Mesh() != meshBefore {
		t.Error("active mesh replaced after unknown shape name")
	}
	for i, v := range e.TransformedVertices() {
		if v != cacheBefore[i] {
			t.Errorf("transformed cache mutated at %d: %v != %v", i, v, cacheBefore[i])
		}
	}
}

func TestSetShapeReseedsCache(t *testing.T) {
	e, _ := newTestEngine(200, 100)
	tp := NewTransform()
	tp.RotationZ = 45
	e.Transform(tp)

	e.SetShape(shapes.Tetrahedron{Size: 50})
	mesh := e.Mesh()
	cache := e.TransformedVertices()
	if len(cache) != mesh.VertexCount() {
		t.Fatalf("cache length = %d, want %d", len(cache), mesh.VertexCount())
	}
	for i, v := range cache {
		if v != mesh.Vertices[i] {
			t.Errorf("cache[%d] = %v, want untransformed %v", i, v, mesh.Vertices[i])
		}
	}
}

func TestRenderVertexDiscs(t *testing.T) {
	e, canvas := newTestEngine(200, 100)
	e.Settings.ShowVertices = true
	e.Settings.VertexSize = -5 // clamped to 0, so the radius floor applies
	e.SetShape(shapes.Cube{Size: 100})
	e.Transform(NewTransform())
	e.Render()

	if len(canvas.circles) != 8 {
		t.Fatalf("discs drawn = %d, want 8", len(canvas.circles))
	}
	for i, c := range canvas.circles {
		if c.r != 1 {
			t.Errorf("disc %d radius = %v, want floor 1", i, c.r)
		}
	}
}

func TestRenderVertexPerspectiveScale(t *testing.T) {
	e, canvas := newTestEngine(200, 100)
	e.Settings.ShowVertices = true
	e.Settings.VertexSize = 4
	e.FocalLength = 400
	e.SetMesh(&shapes.Mesh{
		Name: "pair",
		Vertices: []math3d.Vec3{
			{Z: -200}, // near: scale 2
			{Z: 400},  // far: scale 0.5
		},
	})
	e.Transform(NewTransform())
	e.Render()

	if len(canvas.circles) != 2 {
		t.Fatalf("discs drawn = %d, want 2", len(canvas.circles))
	}
	if math.Abs(canvas.circles[0].r-8) > 1e-9 {
		t.Errorf("near disc radius = %v, want 8", canvas.circles[0].r)
	}
	if math.Abs(canvas.circles[1].r-2) > 1e-9 {
		t.Errorf("far disc radius = %v, want 2", canvas.circles[1].r)
	}
}

func TestRenderGridAndAxes(t *testing.T) {
	e, canvas := newTestEngine(400, 300)
	e.Settings.ShowGrid = true
	e.Settings.ShowAxes = true
	e.FocalLength = 1e9
	e.SetShape(shapes.Cube{Size: 100})

	tp := NewTransform()
	tp.TranslateX = 50
	tp.RotationY = 90 // must not affect grid/axes placement
	e.Transform(tp)
	e.Render()

	// 18 grid lines, then 3 axes, then 12 cube edges.
	if len(canvas.lines) != 18+3+12 {
		t.Fatalf("lines drawn = %d, want 33", len(canvas.lines))
	}

	grid := canvas.lines[:18]
	for i, l := range grid {
		if l.col != gridRGBA {
			t.Errorf("grid line %d color = %v, want %v", i, l.col, gridRGBA)
		}
	}
	// First grid line runs along z at scene x=-200; translation shifts
	// it to -150 while rotation is ignored for reference geometry.
	if got := grid[0].x0 - 200; math.Abs(got-(-150)) > 1e-3 {
		t.Errorf("grid x offset = %v, want -150", got)
	}

	axes := canvas.lines[18:21]
	wantColors := []color.RGBA{
		{0xff, 0, 0, 0xff},
		{0, 0xff, 0, 0xff},
		{0, 0, 0xff, 0xff},
	}
	for i, l := range axes {
		if l.col != wantColors[i] {
			t.Errorf("axis %d color = %v, want %v", i, l.col, wantColors[i])
		}
		if l.width != e.Settings.LineWidth+1 {
			t.Errorf("axis %d width = %v, want %v", i, l.width, e.Settings.LineWidth+1)
		}
	}
}

func TestRenderBackground(t *testing.T) {
	t.Run("solid", func(t *testing.T) {
		e, canvas := newTestEngine(200, 100)
		e.Settings.BackgroundColor = "#112233"
		e.Render()
		if canvas.clears != 0 || len(canvas.fills) != 1 {
			t.Fatalf("clears=%d fills=%d, want 0/1", canvas.clears, len(canvas.fills))
		}
		if canvas.fills[0] != (color.RGBA{0x11, 0x22, 0x33, 0xff}) {
			t.Errorf("fill color = %v", canvas.fills[0])
		}
	})

	t.Run("none", func(t *testing.T) {
		e, canvas := newTestEngine(200, 100)
		e.Settings.BackgroundColor = "none"
		e.Render()
		if canvas.clears != 1 || len(canvas.fills) != 0 {
			t.Fatalf("clears=%d fills=%d, want 1/0", canvas.clears, len(canvas.fills))
		}
	})
}

func TestRenderWithoutCanvas(t *testing.T) {
	e := NewEngine(nil)
	e.Transform(NewTransform())
	e.Render() // must be a reported no-op, not a panic
}

func TestProjectionFocalClamp(t *testing.T) {
	e, _ := newTestEngine(200, 100)
	e.FocalLength = 0 // clamped to 1

	x, _, scale := e.project(math3d.V3(10, 0, 1), 0, 0)
	if math.Abs(scale-0.5) > 1e-9 {
		t.Errorf("scale = %v, want 0.5 (f clamped to 1)", scale)
	}
	if math.Abs(x-5) > 1e-9 {
		t.Errorf("projected x = %v, want 5", x)
	}
}
