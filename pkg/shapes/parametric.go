package shapes

import (
	"math"

	"github.com/taigrr/polyscope/pkg/math3d"
)

// Torus generates a ring torus by sampling (θ, φ) on [0, 2π) over
// MajorSegments × MinorSegments. Both rings close modulo their segment
// count, so there is no duplicated seam.
type Torus struct {
	Radius        float64 // distance from torus center to tube center
	Tube          float64 // tube radius
	MajorSegments int
	MinorSegments int
}

// Mesh returns MajorSegments·MinorSegments vertices and twice that
// many edges: one toward the next minor-ring sample and one toward the
// next major-ring sample per vertex.
func (t Torus) Mesh() *Mesh {
	maj, min := t.MajorSegments, t.MinorSegments
	m := &Mesh{
		Name:     "torus",
		Vertices: make([]math3d.Vec3, 0, maj*min),
		Edges:    make([][2]int, 0, 2*maj*min),
	}

	for i := range maj {
		theta := 2 * math.Pi * float64(i) / float64(maj)
		for j := range min {
			phi := 2 * math.Pi * float64(j) / float64(min)
			r := t.Radius + t.Tube*math.Cos(phi)
			m.Vertices = append(m.Vertices, math3d.V3(
				r*math.Cos(theta),
				t.Tube*math.Sin(phi),
				r*math.Sin(theta),
			))
		}
	}

	for i := range maj {
		for j := range min {
			idx := i*min + j
			m.Edges = append(m.Edges,
				[2]int{idx, i*min + (j+1)%min},
				[2]int{idx, ((i+1)%maj)*min + j},
			)
		}
	}

	return m
}

// Sphere generates a UV sphere: (Segments+1) latitude rings of
// Segments longitude samples each. The rings at the poles degenerate
// through the general latitude formula; they are kept, not collapsed.
type Sphere struct {
	Radius   float64
	Segments int
}

// Mesh returns (Segments+1)·Segments vertices. Each sample connects to
// its longitude neighbor (wrapping) and to the matching sample one
// latitude ring below.
func (s Sphere) Mesh() *Mesh {
	seg := s.Segments
	m := &Mesh{
		Name:     "sphere",
		Vertices: make([]math3d.Vec3, 0, (seg+1)*seg),
	}

	for lat := 0; lat <= seg; lat++ {
		latAngle := math.Pi * float64(lat) / float64(seg)
		for lon := range seg {
			lonAngle := 2 * math.Pi * float64(lon) / float64(seg)
			m.Vertices = append(m.Vertices, math3d.V3(
				s.Radius*math.Sin(latAngle)*math.Cos(lonAngle),
				s.Radius*math.Cos(latAngle),
				s.Radius*math.Sin(latAngle)*math.Sin(lonAngle),
			))
		}
	}

	for lat := 0; lat <= seg; lat++ {
		for lon := range seg {
			idx := lat*seg + lon
			m.Edges = append(m.Edges, [2]int{idx, lat*seg + (lon+1)%seg})
			if lat < seg {
				m.Edges = append(m.Edges, [2]int{idx, (lat+1)*seg + lon})
			}
		}
	}

	return m
}
