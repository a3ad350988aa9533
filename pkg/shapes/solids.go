package shapes

import (
	"math"

	"github.com/taigrr/polyscope/pkg/math3d"
)

// Cube generates an axis-aligned cube. Size is the half-extent: a
// Cube{Size: 100} has corners at (±100, ±100, ±100).
type Cube struct {
	Size float64
}

// Mesh returns 8 vertices and 12 edges.
func (c Cube) Mesh() *Mesh {
	s := c.Size
	return &Mesh{
		Name: "cube",
		Vertices: []math3d.Vec3{
			{X: -s, Y: -s, Z: -s},
			{X: s, Y: -s, Z: -s},
			{X: s, Y: s, Z: -s},
			{X: -s, Y: s, Z: -s},
			{X: -s, Y: -s, Z: s},
			{X: s, Y: -s, Z: s},
			{X: s, Y: s, Z: s},
			{X: -s, Y: s, Z: s},
		},
		Edges: [][2]int{
			// Back face
			{0, 1}, {1, 2}, {2, 3}, {3, 0},
			// Front face
			{4, 5}, {5, 6}, {6, 7}, {7, 4},
			// Connecting edges
			{0, 4}, {1, 5}, {2, 6}, {3, 7},
		},
		Faces: [][]int{
			{0, 1, 2, 3},
			{4, 5, 6, 7},
			{0, 1, 5, 4},
			{2, 3, 7, 6},
			{0, 3, 7, 4},
			{1, 2, 6, 5},
		},
	}
}

// Tetrahedron generates a regular tetrahedron from alternating cube
// corners at distance Size from each axis plane.
type Tetrahedron struct {
	Size float64
}

// Mesh returns 4 vertices and 6 edges.
func (t Tetrahedron) Mesh() *Mesh {
	s := t.Size
	return &Mesh{
		Name: "tetrahedron",
		Vertices: []math3d.Vec3{
			{X: s, Y: s, Z: s},
			{X: s, Y: -s, Z: -s},
			{X: -s, Y: s, Z: -s},
			{X: -s, Y: -s, Z: s},
		},
		Edges: [][2]int{
			{0, 1}, {0, 2}, {0, 3},
			{1, 2}, {1, 3}, {2, 3},
		},
		Faces: [][]int{
			{0, 1, 2},
			{0, 1, 3},
			{0, 2, 3},
			{1, 2, 3},
		},
	}
}

// Octahedron generates a regular octahedron with vertices on the axes
// at distance Size from the origin.
type Octahedron struct {
	Size float64
}

// Mesh returns 6 vertices and 12 edges.
func (o Octahedron) Mesh() *Mesh {
	s := o.Size
	return &Mesh{
		Name: "octahedron",
		Vertices: []math3d.Vec3{
			{X: s}, {X: -s},
			{Y: s}, {Y: -s},
			{Z: s}, {Z: -s},
		},
		Edges: [][2]int{
			{0, 2}, {0, 3}, {0, 4}, {0, 5},
			{1, 2}, {1, 3}, {1, 4}, {1, 5},
			{2, 4}, {2, 5}, {3, 4}, {3, 5},
		},
		Faces: [][]int{
			{0, 2, 4}, {2, 1, 4}, {1, 3, 4}, {3, 0, 4},
			{2, 0, 5}, {1, 2, 5}, {3, 1, 5}, {0, 3, 5},
		},
	}
}

// Pyramid generates a square pyramid: a Size half-extent base with the
// apex Height above the base center. Y grows downward in screen space,
// so the base sits at +Height/2 and the apex at -Height/2.
type Pyramid struct {
	Size   float64
	Height float64
}

// Mesh returns 5 vertices and 8 edges.
func (p Pyramid) Mesh() *Mesh {
	s := p.Size
	h := p.Height / 2
	return &Mesh{
		Name: "pyramid",
		Vertices: []math3d.Vec3{
			{X: -s, Y: h, Z: -s},
			{X: s, Y: h, Z: -s},
			{X: s, Y: h, Z: s},
			{X: -s, Y: h, Z: s},
			{Y: -h}, // apex
		},
		Edges: [][2]int{
			{0, 1}, {1, 2}, {2, 3}, {3, 0},
			{0, 4}, {1, 4}, {2, 4}, {3, 4},
		},
		Faces: [][]int{
			{0, 1, 2, 3},
			{0, 1, 4}, {1, 2, 4}, {2, 3, 4}, {3, 0, 4},
		},
	}
}

// Prism generates a triangular prism with Size half-extent triangles
// at y = ±Height/2.
type Prism struct {
	Size   float64
	Height float64
}

// Mesh returns 6 vertices and 9 edges.
func (p Prism) Mesh() *Mesh {
	s := p.Size
	h := p.Height / 2
	return &Mesh{
		Name: "prism",
		Vertices: []math3d.Vec3{
			{X: -s, Y: -h, Z: s},
			{X: s, Y: -h, Z: s},
			{Y: -h, Z: -s},
			{X: -s, Y: h, Z: s},
			{X: s, Y: h, Z: s},
			{Y: h, Z: -s},
		},
		Edges: [][2]int{
			{0, 1}, {1, 2}, {2, 0},
			{3, 4}, {4, 5}, {5, 3},
			{0, 3}, {1, 4}, {2, 5},
		},
		Faces: [][]int{
			{0, 1, 2},
			{3, 4, 5},
			{0, 1, 4, 3}, {1, 2, 5, 4}, {2, 0, 3, 5},
		},
	}
}

// Dodecahedron generates a regular dodecahedron from the golden-ratio
// construction: 8 cube corners at ±a combined with three mutually
// orthogonal rectangles at (0, ±b, ±c), (±b, ±c, 0) and (±c, 0, ±b),
// where a = Size, b = Size/φ, c = Size·φ.
type Dodecahedron struct {
	Size float64
}

// Mesh returns 20 vertices and 30 edges. Faces are left empty; only
// the wireframe path consumes this mesh.
func (d Dodecahedron) Mesh() *Mesh {
	phi := (1 + math.Sqrt(5)) / 2
	a := d.Size
	b := d.Size / phi
	c := d.Size * phi

	return &Mesh{
		Name: "dodecahedron",
		Vertices: []math3d.Vec3{
			// 0-7: cube corners
			{X: a, Y: a, Z: a},
			{X: a, Y: a, Z: -a},
			{X: a, Y: -a, Z: a},
			{X: a, Y: -a, Z: -a},
			{X: -a, Y: a, Z: a},
			{X: -a, Y: a, Z: -a},
			{X: -a, Y: -a, Z: a},
			{X: -a, Y: -a, Z: -a},
			// 8-11: YZ rectangle
			{Y: b, Z: c},
			{Y: b, Z: -c},
			{Y: -b, Z: c},
			{Y: -b, Z: -c},
			// 12-15: XY rectangle
			{X: b, Y: c},
			{X: b, Y: -c},
			{X: -b, Y: c},
			{X: -b, Y: -c},
			// 16-19: XZ rectangle
			{X: c, Z: b},
			{X: c, Z: -b},
			{X: -c, Z: b},
			{X: -c, Z: -b},
		},
		Edges: [][2]int{
			{0, 8}, {4, 8}, {8, 10}, {2, 10}, {6, 10},
			{1, 9}, {5, 9}, {9, 11}, {3, 11}, {7, 11},
			{0, 12}, {1, 12}, {12, 14}, {4, 14}, {5, 14},
			{2, 13}, {3, 13}, {13, 15}, {6, 15}, {7, 15},
			{0, 16}, {2, 16}, {16, 17}, {1, 17}, {3, 17},
			{4, 18}, {6, 18}, {18, 19}, {5, 19}, {7, 19},
		},
	}
}
