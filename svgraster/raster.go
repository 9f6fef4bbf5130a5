// Implements a software raster backend for svgscene,
// by wrapping rasterx.
package svgraster

import (
	"image"
	"image/color"
	"io"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"github.com/benoitkugler/svganim/svgdoc"
	"github.com/benoitkugler/svganim/svgscene"
)

var _ svgscene.Surface = (*Renderer)(nil) // assert interface conformance

// Renderer rasterizes scene frames into an RGBA image.
type Renderer struct {
	dasher *rasterx.Dasher // to avoid shared state
	filler *rasterx.Filler // we use separated instance
	img    *image.RGBA
}

// NewRenderer returns a renderer drawing into img,
// using a default rasterx.ScannerGV scanner.
func NewRenderer(img *image.RGBA) *Renderer {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	return &Renderer{
		dasher: rasterx.NewDasher(w, h, scanner),
		filler: rasterx.NewFiller(w, h, scanner),
		img:    img,
	}
}

func toFixedP(x, y float32) (p fixed.Point26_6) {
	p.X = fixed.Int26_6(x * 64)
	p.Y = fixed.Int26_6(y * 64)
	return
}

// Clear resets the image to fully transparent.
func (rd *Renderer) Clear() {
	pix := rd.img.Pix
	for i := range pix {
		pix[i] = 0
	}
	rd.dasher.Clear()
	rd.filler.Clear()
}

// FillMesh paints an indexed triangle list with the given color.
func (rd *Renderer) FillMesh(vertices []float32, indices []uint32, col color.NRGBA) {
	if col.A == 0 {
		return
	}
	rd.filler.Clear()
	rd.filler.SetWinding(true)
	for i := 0; i+2 < len(indices); i += 3 {
		a, b, c := indices[i]*2, indices[i+1]*2, indices[i+2]*2
		rd.filler.Start(toFixedP(vertices[a], vertices[a+1]))
		rd.filler.Line(toFixedP(vertices[b], vertices[b+1]))
		rd.filler.Line(toFixedP(vertices[c], vertices[c+1]))
		rd.filler.Stop(true)
	}
	rd.filler.SetColor(col)
	rd.filler.Draw()
	rd.filler.Clear()
}

// StrokePolyline strokes the polyline with butt caps and
// bevel joins.
func (rd *Renderer) StrokePolyline(points []float32, width float64, col color.NRGBA) {
	if len(points) < 4 || col.A == 0 {
		return
	}
	rd.dasher.Clear()
	rd.dasher.SetStroke(
		fixed.Int26_6(width*64), fixed.Int26_6(4*64),
		rasterx.ButtCap, rasterx.ButtCap, rasterx.FlatGap, rasterx.Bevel,
		nil, 0,
	)
	rd.dasher.Start(toFixedP(points[0], points[1]))
	for i := 2; i+1 < len(points); i += 2 {
		rd.dasher.Line(toFixedP(points[i], points[i+1]))
	}
	rd.dasher.Stop(false)
	rd.dasher.SetColor(col)
	rd.dasher.Draw()
	rd.dasher.Clear()
}

// RenderDocument parses an SVG document and rasterizes it,
// statically drawn, into a width x height image. Non positive
// dimensions default to the document viewBox size.
func RenderDocument(svg io.Reader, width, height int) (*image.RGBA, error) {
	doc, err := svgdoc.ReadDocumentStream(svg, svgdoc.IgnoreErrorMode)
	if err != nil {
		return nil, err
	}
	if width <= 0 {
		width = int(doc.ViewBox.W)
	}
	if height <= 0 {
		height = int(doc.ViewBox.H)
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	renderer := NewRenderer(img)
	scene := svgscene.NewScene(renderer)
	if err := scene.Load(doc, 0, 0, float64(width), float64(height)); err != nil {
		return nil, err
	}
	if err := scene.Draw(svgscene.DefaultDrawOptions()); err != nil {
		return nil, err
	}
	return img, nil
}
