// Implements the tessellation of flattened SVG outlines
// into indexed triangle meshes, using the layout expected
// by GPU style renderers: interleaved float32 coordinates
// and uint32 indices.
package mesh

import "github.com/chewxy/math32"

// Contour is a flattened subpath, stored as interleaved
// x,y pairs.
type Contour struct {
	Points []float32
	Closed bool // the subpath ended with a closepath
}

// NumPoints returns the number of x,y pairs.
func (c Contour) NumPoints() int { return len(c.Points) / 2 }

// Mesh is an indexed triangle list. The fill color is a
// property of the whole path, not of the vertices.
type Mesh struct {
	Vertices []float32 // interleaved x,y pairs
	Indices  []uint32  // three per triangle
}

// IsEmpty reports whether the mesh contains no triangle.
func (m Mesh) IsEmpty() bool { return len(m.Indices) == 0 }

// Bounds is an axis aligned bounding box.
type Bounds struct {
	MinX, MinY, MaxX, MaxY float32
}

func (b Bounds) Width() float32  { return b.MaxX - b.MinX }
func (b Bounds) Height() float32 { return b.MaxY - b.MinY }

// BoundsOf returns the bounding box of the given contours,
// or the zero value if they contain no point.
func BoundsOf(contours []Contour) Bounds {
	b := Bounds{math32.MaxFloat32, math32.MaxFloat32, -math32.MaxFloat32, -math32.MaxFloat32}
	seen := false
	for _, c := range contours {
		for i := 0; i+1 < len(c.Points); i += 2 {
			seen = true
			b.MinX = math32.Min(b.MinX, c.Points[i])
			b.MinY = math32.Min(b.MinY, c.Points[i+1])
			b.MaxX = math32.Max(b.MaxX, c.Points[i])
			b.MaxY = math32.Max(b.MaxY, c.Points[i+1])
		}
	}
	if !seen {
		return Bounds{}
	}
	return b
}
