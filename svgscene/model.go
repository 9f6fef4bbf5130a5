package svgscene

import (
	"image/color"

	"github.com/benoitkugler/svganim/mesh"
)

// PathModel is the drawable form of one path element:
// its flattened outline and its triangulated body, expressed
// in surface coordinates. The geometry is computed once at
// load time and never mutated afterwards; animations write
// into scratch buffers instead.
type PathModel struct {
	ID       string
	Fill     color.NRGBA
	Contours []mesh.Contour
	Mesh     mesh.Mesh
	Bounds   mesh.Bounds
}
