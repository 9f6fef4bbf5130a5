package svgscene

import "image/color"

// Surface is the drawing backend a Scene renders into.
// The library pushes one complete frame per Advance call:
// a Clear followed by the fills and strokes of every visible
// path, in paint order. See svgraster for a reference
// implementation over a software rasterizer.
//
// Implementations are driven from the host frame loop and
// need not be safe for concurrent use.
type Surface interface {
	// Clear resets the surface at the start of a frame.
	Clear()
	// FillMesh paints an indexed triangle list, vertices
	// holding interleaved x,y pairs.
	FillMesh(vertices []float32, indices []uint32, col color.NRGBA)
	// StrokePolyline strokes a polyline of interleaved
	// x,y pairs.
	StrokePolyline(points []float32, width float64, col color.NRGBA)
}
