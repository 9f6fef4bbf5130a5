package svgscene

import (
	"image/color"

	"github.com/chewxy/math32"

	"github.com/benoitkugler/svganim/easing"
	"github.com/benoitkugler/svganim/mesh"
)

// AnimState is the lifecycle of one path animation.
// Transitions only move forward, driven by Scene.Advance.
type AnimState uint8

const (
	StatePending AnimState = iota
	StateRunning
	StateCompleted // terminal
)

// Progress converts an elapsed time into an eased fraction
// of the animation. The terminal values are exact and never
// pass through the easing function, so that a finished
// animation always lands on 1 even with overshooting
// transitions.
func Progress(elapsed, duration float64, e easing.Easing) float64 {
	if elapsed >= duration {
		return 1
	}
	if elapsed <= 0 {
		return 0
	}
	return e.Ease(elapsed / duration)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// applyGrowth writes into dst the vertices of src clamped
// against the front advancing from the growth origin. At
// progress 0 the shape is collapsed on its origin edge, at
// progress 1 dst is an exact copy of src. dst and src hold
// interleaved x,y pairs of the same length.
func applyGrowth(dst, src []float32, b mesh.Bounds, origin GrowthOrigin, progress float64) {
	p := float32(progress)
	w, h := b.Width(), b.Height()
	switch origin {
	case OriginLeft:
		front := b.MinX + p*w
		for i := 0; i+1 < len(src); i += 2 {
			dst[i] = math32.Min(src[i], front)
			dst[i+1] = src[i+1]
		}
	case OriginRight:
		front := b.MaxX - p*w
		for i := 0; i+1 < len(src); i += 2 {
			dst[i] = math32.Max(src[i], front)
			dst[i+1] = src[i+1]
		}
	case OriginTop:
		front := b.MinY + p*h
		for i := 0; i+1 < len(src); i += 2 {
			dst[i] = src[i]
			dst[i+1] = math32.Min(src[i+1], front)
		}
	case OriginBottom:
		front := b.MaxY - p*h
		for i := 0; i+1 < len(src); i += 2 {
			dst[i] = src[i]
			dst[i+1] = math32.Max(src[i+1], front)
		}
	case OriginCenterX:
		mid := (b.MinX + b.MaxX) / 2
		half := p * w / 2
		for i := 0; i+1 < len(src); i += 2 {
			dst[i] = math32.Min(math32.Max(src[i], mid-half), mid+half)
			dst[i+1] = src[i+1]
		}
	case OriginCenterY:
		mid := (b.MinY + b.MaxY) / 2
		half := p * h / 2
		for i := 0; i+1 < len(src); i += 2 {
			dst[i] = src[i]
			dst[i+1] = math32.Min(math32.Max(src[i+1], mid-half), mid+half)
		}
	default:
		copy(dst, src)
	}
}

// strokePartial strokes the leading fraction of the contours,
// measured in flattened segments across the whole outline.
// The tip of the last visible segment is interpolated so the
// reveal advances smoothly.
func strokePartial(dst Surface, contours []mesh.Contour, fraction, width float64, col color.NRGBA) {
	if fraction <= 0 {
		return
	}
	if fraction >= 1 {
		for _, c := range contours {
			dst.StrokePolyline(c.Points, width, col)
		}
		return
	}
	total := 0
	for _, c := range contours {
		total += c.NumPoints() - 1
	}
	remaining := fraction * float64(total)
	for _, c := range contours {
		segs := c.NumPoints() - 1
		if remaining >= float64(segs) {
			dst.StrokePolyline(c.Points, width, col)
			remaining -= float64(segs)
			continue
		}
		whole := int(remaining)
		frac := float32(remaining - float64(whole))
		pts := c.Points[:2*(whole+1)]
		if frac > 0 {
			x0, y0 := c.Points[2*whole], c.Points[2*whole+1]
			x1, y1 := c.Points[2*whole+2], c.Points[2*whole+3]
			pts = append(append([]float32(nil), pts...),
				x0+frac*(x1-x0), y0+frac*(y1-y0))
		}
		if len(pts) >= 4 {
			dst.StrokePolyline(pts, width, col)
		}
		return
	}
}

// revealAnim is the runtime state of one path within a run.
type revealAnim struct {
	model *PathModel
	state AnimState

	// outline reveal (draw runs)
	stroke                 bool
	strokeStart, strokeDur float64

	// fill fade (draw runs)
	fill              bool
	fillStart, fillDur float64

	// growth (shape animation runs)
	grow               bool
	origin             GrowthOrigin
	ease               easing.Easing
	growStart, growDur float64
}

func (a *revealAnim) startTime() float64 {
	if a.grow {
		return a.growStart
	}
	return a.strokeStart
}

func (a *revealAnim) endTime() float64 {
	end := a.startTime()
	if a.stroke && a.strokeStart+a.strokeDur > end {
		end = a.strokeStart + a.strokeDur
	}
	if a.fill && a.fillStart+a.fillDur > end {
		end = a.fillStart + a.fillDur
	}
	if a.grow && a.growStart+a.growDur > end {
		end = a.growStart + a.growDur
	}
	return end
}

// run is one animation run of a scene. Starting a new run
// drops the previous one wholesale, so that the callbacks of
// a canceled run can never fire.
type run struct {
	anims      []revealAnim
	lineWidth  float64
	lineColor  color.NRGBA
	onComplete func() // fired once, after the last terminal transition

	elapsed   float64
	completed bool
	scratch   []float32 // reused growth vertex buffer
}

func (r *run) scratchFor(n int) []float32 {
	if cap(r.scratch) < n {
		r.scratch = make([]float32, n)
	}
	return r.scratch[:n]
}
