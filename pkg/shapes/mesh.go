// Package shapes provides wireframe mesh generation for the polyscope
// engine: a fixed set of procedural primitives plus glTF import.
package shapes

import (
	"github.com/taigrr/polyscope/pkg/math3d"
)

// Mesh is a named geometric object: an ordered vertex list (index is
// identity), an unordered edge list of vertex-index pairs, and an
// optional face list. Generators return a fresh Mesh on every call.
type Mesh struct {
	Name     string
	Vertices []math3d.Vec3
	Edges    [][2]int
	Faces    [][]int

	// EdgeColors optionally overrides the render color per edge
	// (hex strings, same ordering as Edges). Only the axes mesh
	// sets it.
	EdgeColors []string
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// EdgeCount returns the number of edges.
func (m *Mesh) EdgeCount() int {
	return len(m.Edges)
}

// Bounds returns the axis-aligned bounding box of the vertices.
// An empty mesh reports a zero box.
func (m *Mesh) Bounds() (min, max math3d.Vec3) {
	if len(m.Vertices) == 0 {
		return math3d.Zero3(), math3d.Zero3()
	}
	min, max = m.Vertices[0], m.Vertices[0]
	for _, v := range m.Vertices[1:] {
		min = min.Min(v)
		max = max.Max(v)
	}
	return min, max
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() math3d.Vec3 {
	min, max := m.Bounds()
	return min.Add(max).Scale(0.5)
}
