// Implements the drawing and animation of SVG path documents
// over an abstract rendering surface. A Scene owns the
// tessellated form of a document and schedules reveal and
// growth animations over it; the host owns the clock and
// drives the scene one frame at a time with Advance.
//
// The model is single threaded and cooperative: the library
// starts no goroutine and takes no lock.
package svgscene

import (
	"strings"

	"github.com/benoitkugler/svganim/easing"
	"github.com/benoitkugler/svganim/mesh"
	"github.com/benoitkugler/svganim/svgdoc"
	"github.com/benoitkugler/svganim/svgpath"
)

// UnresolvedTargetError lists the ids of a shape animation
// that matched no path of the loaded document. The matching
// entries still run.
type UnresolvedTargetError struct {
	IDs []string
}

func (e *UnresolvedTargetError) Error() string {
	return "no path with id " + strings.Join(e.IDs, ", ")
}

// Scene binds a parsed document to a rendering surface.
type Scene struct {
	// Flattener holds the curve flattening settings used by
	// Load. The zero value uses the default resolution.
	Flattener mesh.Flattener

	surface Surface
	models  []*PathModel
	run     *run
}

// NewScene returns an empty scene rendering into surface.
func NewScene(surface Surface) *Scene {
	return &Scene{surface: surface}
}

// Load tessellates every path of the document, mapping the
// document viewBox onto the surface rectangle x, y, w, h.
// Loading replaces the previous content and cancels any
// running animation.
func (s *Scene) Load(doc *svgdoc.Document, x, y, w, h float64) error {
	if doc == nil {
		return &OptionError{"doc", "is required"}
	}
	if w <= 0 || h <= 0 {
		return &OptionError{"w, h", "must be positive"}
	}
	vb := doc.ViewBox
	if vb.W <= 0 || vb.H <= 0 {
		return &OptionError{"doc", "viewBox must have positive dimensions"}
	}
	m := svgpath.Identity.Translate(x-vb.X, y-vb.Y).Scale(w/vb.W, h/vb.H)
	models := make([]*PathModel, len(doc.Paths))
	for i, pe := range doc.Paths {
		contours := s.Flattener.Flatten(pe.Path, m)
		models[i] = &PathModel{
			ID:       pe.ID,
			Fill:     pe.Fill,
			Contours: contours,
			Mesh:     mesh.Triangulate(contours),
			Bounds:   mesh.BoundsOf(contours),
		}
	}
	s.models = models
	s.run = nil
	return nil
}

// Models exposes the tessellated paths, in document order.
func (s *Scene) Models() []*PathModel { return s.models }

func (s *Scene) lookup(id string) *PathModel {
	for _, m := range s.models {
		if m.ID == id {
			return m
		}
	}
	return nil
}

// Draw starts a reveal run over the whole document and renders
// its first frame. With opts.Animate false the run completes
// immediately: the paths are drawn at full visibility, outline
// first, fill on top. A previous run is canceled, its pending
// callbacks dropped.
func (s *Scene) Draw(opts DrawOptions) error {
	opts = opts.normalized()
	if err := opts.Validate(); err != nil {
		return err
	}
	steps := PlanReveal(s.models, opts)
	anims := make([]revealAnim, len(steps))
	for i, st := range steps {
		anims[i] = revealAnim{
			model:       st.Model,
			stroke:      true,
			strokeStart: st.StrokeStart,
			strokeDur:   st.StrokeDuration,
			fill:        st.Fill,
			fillStart:   st.FillStart,
			fillDur:     st.FillDuration,
		}
	}
	s.run = &run{anims: anims, lineWidth: opts.LineWidth, lineColor: opts.LineColor}
	s.Advance(0)
	return nil
}

// ShapeAnimate starts a shape animation run: each entry grows
// its path from the given origin under its easing, one after
// the other in configuration order. onComplete fires exactly
// once, after the last entry reaches its terminal state.
//
// Entries whose ID matches no loaded path are skipped and
// reported through an *UnresolvedTargetError, while the others
// still run. A previous run is canceled, its pending callbacks
// dropped. If no entry survives, onComplete fires immediately.
func (s *Scene) ShapeAnimate(specs []ShapeSpec, onComplete func()) error {
	var missing []string
	var anims []revealAnim
	var clock float64
	for _, spec := range specs {
		spec = spec.normalized()
		if err := spec.Validate(); err != nil {
			return err
		}
		model := s.lookup(spec.ID)
		if model == nil {
			missing = append(missing, spec.ID)
			continue
		}
		anims = append(anims, revealAnim{
			model:     model,
			grow:      true,
			origin:    spec.Origin,
			ease:      spec.Easing,
			growStart: clock,
			growDur:   spec.Duration,
		})
		clock += spec.Duration
	}
	var err error
	if len(missing) > 0 {
		err = &UnresolvedTargetError{IDs: missing}
	}
	s.run = &run{anims: anims, onComplete: onComplete}
	s.Advance(0)
	return err
}

// Advance moves the active run forward by dt seconds, then
// renders one complete frame: all states are updated before
// the first drawing command is submitted. Completion hooks
// fire after the frame, each exactly once. Without an active
// run Advance is a no-op and the surface keeps its last frame.
func (s *Scene) Advance(dt float64) {
	r := s.run
	if r == nil {
		return
	}
	if dt > 0 {
		r.elapsed += dt
	}

	allDone := true
	for i := range r.anims {
		a := &r.anims[i]
		switch {
		case r.elapsed >= a.endTime():
			a.state = StateCompleted
		case r.elapsed >= a.startTime():
			a.state = StateRunning
		default:
			a.state = StatePending
		}
		if a.state != StateCompleted {
			allDone = false
		}
	}

	s.surface.Clear()
	for i := range r.anims {
		s.renderAnim(&r.anims[i], r)
	}

	if allDone && !r.completed {
		r.completed = true
		if r.onComplete != nil {
			r.onComplete()
		}
	}
}

func (s *Scene) renderAnim(a *revealAnim, r *run) {
	if a.state == StatePending {
		return
	}
	if a.stroke {
		sp := Progress(r.elapsed-a.strokeStart, a.strokeDur, easing.Linear)
		strokePartial(s.surface, a.model.Contours, sp, r.lineWidth, r.lineColor)
	}
	msh := a.model.Mesh
	if msh.IsEmpty() {
		return
	}
	if a.grow {
		p := Progress(r.elapsed-a.growStart, a.growDur, a.ease)
		col := a.model.Fill
		if a.origin == OriginNone {
			// static geometry, the progress drives the opacity
			col.A = uint8(clamp01(p) * float64(col.A))
			if col.A > 0 {
				s.surface.FillMesh(msh.Vertices, msh.Indices, col)
			}
			return
		}
		verts := r.scratchFor(len(msh.Vertices))
		applyGrowth(verts, msh.Vertices, a.model.Bounds, a.origin, p)
		s.surface.FillMesh(verts, msh.Indices, col)
		return
	}
	if a.fill {
		fp := Progress(r.elapsed-a.fillStart, a.fillDur, easing.Linear)
		if fp > 0 {
			col := a.model.Fill
			col.A = uint8(fp * float64(col.A))
			s.surface.FillMesh(msh.Vertices, msh.Indices, col)
		}
	}
}
