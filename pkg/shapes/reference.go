package shapes

import (
	"github.com/taigrr/polyscope/pkg/math3d"
)

// Axes generates the orientation-reference mesh: one edge per world
// axis from the origin, tagged with a fixed display color (red X,
// green Y, blue Z) that the renderer uses instead of depth coloring.
type Axes struct {
	Length float64
}

// Mesh returns 4 vertices and 3 color-tagged edges.
func (a Axes) Mesh() *Mesh {
	return &Mesh{
		Name: "axes",
		Vertices: []math3d.Vec3{
			math3d.Zero3(),
			{X: a.Length},
			{Y: a.Length},
			{Z: a.Length},
		},
		Edges:      [][2]int{{0, 1}, {0, 2}, {0, 3}},
		EdgeColors: []string{"#ff0000", "#00ff00", "#0000ff"},
	}
}

// Grid generates a square reference grid of Divisions×Divisions cells
// on the XZ plane at y=0.
type Grid struct {
	Size      float64
	Divisions int
}

// Mesh returns one straight edge per grid line, each with its own
// vertex pair.
func (g Grid) Mesh() *Mesh {
	half := g.Size / 2
	step := g.Size / float64(g.Divisions)
	m := &Mesh{Name: "grid"}

	addLine := func(p, q math3d.Vec3) {
		n := len(m.Vertices)
		m.Vertices = append(m.Vertices, p, q)
		m.Edges = append(m.Edges, [2]int{n, n + 1})
	}

	for i := 0; i <= g.Divisions; i++ {
		x := -half + float64(i)*step
		addLine(math3d.V3(x, 0, -half), math3d.V3(x, 0, half))
	}
	for i := 0; i <= g.Divisions; i++ {
		z := -half + float64(i)*step
		addLine(math3d.V3(-half, 0, z), math3d.V3(half, 0, z))
	}

	return m
}
