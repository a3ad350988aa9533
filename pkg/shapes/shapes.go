package shapes

import (
	"fmt"
	"strings"
)

// Shape is one variant of the fixed primitive set. Each variant
// carries its own generation parameters; Mesh is pure and
// deterministic for a given variant value.
type Shape interface {
	// Mesh generates a fresh wireframe mesh for this shape.
	Mesh() *Mesh
}

// Parse translates an external shape name plus positional parameters
// into a typed Shape. Names are matched case-insensitively against
// {cube, tetrahedron, octahedron, pyramid, prism, dodecahedron, torus,
// sphere, axes, grid}. Missing parameters take the listed defaults; an
// unknown name is an error and the caller's state is untouched.
func Parse(name string, params ...float64) (Shape, error) {
	arg := func(i int, def float64) float64 {
		if i < len(params) {
			return params[i]
		}
		return def
	}

	switch strings.ToLower(name) {
	case "cube":
		return Cube{Size: arg(0, 100)}, nil
	case "tetrahedron":
		return Tetrahedron{Size: arg(0, 100)}, nil
	case "octahedron":
		return Octahedron{Size: arg(0, 100)}, nil
	case "pyramid":
		size := arg(0, 100)
		return Pyramid{Size: size, Height: arg(1, size*1.5)}, nil
	case "prism":
		size := arg(0, 80)
		return Prism{Size: size, Height: arg(1, size*2)}, nil
	case "dodecahedron":
		return Dodecahedron{Size: arg(0, 100)}, nil
	case "torus":
		return Torus{
			Radius:        arg(0, 100),
			Tube:          arg(1, 40),
			MajorSegments: int(arg(2, 16)),
			MinorSegments: int(arg(3, 8)),
		}, nil
	case "sphere":
		return Sphere{
			Radius:   arg(0, 100),
			Segments: int(arg(1, 12)),
		}, nil
	case "axes":
		return Axes{Length: arg(0, 150)}, nil
	case "grid":
		return Grid{Size: arg(0, 400), Divisions: int(arg(1, 8))}, nil
	default:
		return nil, fmt.Errorf("unknown shape %q", name)
	}
}

// Names lists the shape names Parse accepts, in display order.
func Names() []string {
	return []string{
		"cube", "tetrahedron", "octahedron", "pyramid", "prism",
		"dodecahedron", "torus", "sphere", "axes", "grid",
	}
}
