package render

// Transform holds the per-call transform parameters: rotation in
// degrees, translation in scene units, and unitless scale factors.
// All fields are unbounded; zero and negative scales are permitted.
type Transform struct {
	RotationX float64
	RotationY float64
	RotationZ float64

	TranslateX float64
	TranslateY float64
	TranslateZ float64

	ScaleX float64
	ScaleY float64
	ScaleZ float64
}

// NewTransform returns the default parameters: no rotation, no
// translation, unit scale.
func NewTransform() Transform {
	return Transform{ScaleX: 1, ScaleY: 1, ScaleZ: 1}
}

// Settings are the render options. Callers mutate them directly
// between frames; changes take effect on the next Render call.
type Settings struct {
	ShowVertices  bool
	ShowAxes      bool
	ShowGrid      bool
	DepthColoring bool

	WireframeColor string
	VertexColor    string

	// VertexSize is the base disc radius before perspective scaling.
	// Values below zero are clamped to zero at render time.
	VertexSize float64
	LineWidth  float64

	// BackgroundColor is a hex color, or "none" / empty for a
	// transparent clear.
	BackgroundColor string

	// Scale is an unused passthrough retained for callers that
	// persist whole settings maps.
	Scale float64
}

// DefaultSettings returns the initial render options.
func DefaultSettings() Settings {
	return Settings{
		WireframeColor:  "#00ff80",
		VertexColor:     "#ff5050",
		VertexSize:      3,
		LineWidth:       1,
		BackgroundColor: "none",
		Scale:           1,
	}
}
