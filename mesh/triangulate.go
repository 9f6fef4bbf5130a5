package mesh

import "github.com/chewxy/math32"

// Triangulate converts the regions outlined by the contours
// into an indexed triangle mesh, following the nonzero winding
// rule: a contour nested in another one cuts a hole when it
// runs in the opposite direction, and is filled on its own when
// it runs in the same direction. Open contours are treated as
// if they were closed by a segment back to their start.
//
// Contours with fewer than three distinct points contribute
// nothing; tessellating only degenerate contours yields an
// empty mesh.
func Triangulate(contours []Contour) Mesh {
	var rings []*ring
	for _, c := range contours {
		if r := newRing(c); r != nil {
			rings = append(rings, r)
		}
	}
	groupHoles(rings)

	var m Mesh
	for _, r := range rings {
		if r.inner {
			continue
		}
		pts := r.merged()
		tris := earClip(pts)
		if len(tris) == 0 {
			continue
		}
		base := uint32(len(m.Vertices) / 2)
		for _, p := range pts {
			m.Vertices = append(m.Vertices, p.x, p.y)
		}
		for _, idx := range tris {
			m.Indices = append(m.Indices, base+uint32(idx))
		}
	}
	return m
}

// ring is one polygon of the tessellation input.
type ring struct {
	pts   []point
	area  float32 // signed, positive for counter clockwise
	holes []*ring
	inner bool // the ring cuts a hole in a parent
}

func newRing(c Contour) *ring {
	pts := make([]point, 0, c.NumPoints())
	for i := 0; i+1 < len(c.Points); i += 2 {
		pts = append(pts, point{c.Points[i], c.Points[i+1]})
	}
	// drop the closing duplicate of closed contours
	if len(pts) > 1 && pts[0] == pts[len(pts)-1] {
		pts = pts[:len(pts)-1]
	}
	if len(pts) < 3 {
		return nil
	}
	return &ring{pts: pts, area: signedArea(pts)}
}

func signedArea(pts []point) float32 {
	var a float32
	for i := range pts {
		j := (i + 1) % len(pts)
		a += pts[i].x*pts[j].y - pts[j].x*pts[i].y
	}
	return a / 2
}

// containsPoint reports whether p lies inside the ring,
// by ray casting.
func (r *ring) containsPoint(p point) bool {
	in := false
	pts := r.pts
	for i, j := 0, len(pts)-1; i < len(pts); j, i = i, i+1 {
		pi, pj := pts[i], pts[j]
		if (pi.y > p.y) != (pj.y > p.y) &&
			p.x < (pj.x-pi.x)*(p.y-pi.y)/(pj.y-pi.y)+pi.x {
			in = !in
		}
	}
	return in
}

// groupHoles assigns every odd depth, opposite wound ring as a
// hole of its smallest enclosing ring. All the other rings stay
// filled regions of their own.
func groupHoles(rings []*ring) {
	for i, r := range rings {
		depth := 0
		var parent *ring
		for j, other := range rings {
			if i == j {
				continue
			}
			if other.containsPoint(r.pts[0]) {
				depth++
				if parent == nil || math32.Abs(other.area) < math32.Abs(parent.area) {
					parent = other
				}
			}
		}
		if depth%2 == 1 && parent != nil && (r.area > 0) != (parent.area > 0) {
			r.inner = true
			parent.holes = append(parent.holes, r)
		}
	}
}

// merged returns the outer ring oriented counter clockwise,
// with every hole spliced in through a bridge.
func (r *ring) merged() []point {
	outer := append([]point(nil), r.pts...)
	if r.area < 0 {
		reverse(outer)
	}
	for _, h := range r.holes {
		hole := append([]point(nil), h.pts...)
		if h.area > 0 { // holes run opposite to the outer ring
			reverse(hole)
		}
		outer = spliceHole(outer, hole)
	}
	return outer
}

func reverse(pts []point) {
	for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
		pts[i], pts[j] = pts[j], pts[i]
	}
}

// spliceHole joins the hole into the outer ring through the
// closest mutually visible pair of vertices. The two bridge
// vertices are duplicated, keeping the result a single ring.
func spliceHole(outer, hole []point) []point {
	bi, bk := -1, -1
	best := float32(math32.MaxFloat32)
	for i, op := range outer {
		for k, hp := range hole {
			d := dist2(op, hp)
			if d >= best {
				continue
			}
			if segmentClear(op, hp, outer) && segmentClear(op, hp, hole) {
				best, bi, bk = d, i, k
			}
		}
	}
	if bi < 0 {
		// occluded on all sides (degenerate input): fall back
		// on the closest pair
		for i, op := range outer {
			for k, hp := range hole {
				if d := dist2(op, hp); d < best {
					best, bi, bk = d, i, k
				}
			}
		}
	}
	out := make([]point, 0, len(outer)+len(hole)+2)
	out = append(out, outer[:bi+1]...)
	out = append(out, hole[bk:]...)
	out = append(out, hole[:bk+1]...)
	out = append(out, outer[bi:]...)
	return out
}

func dist2(a, b point) float32 {
	dx, dy := a.x-b.x, a.y-b.y
	return dx*dx + dy*dy
}

// segmentClear reports whether the open segment a-b crosses
// no edge of the ring. Edges sharing an endpoint with the
// segment are skipped.
func segmentClear(a, b point, pts []point) bool {
	for i := range pts {
		p, q := pts[i], pts[(i+1)%len(pts)]
		if p == a || p == b || q == a || q == b {
			continue
		}
		if segmentsIntersect(a, b, p, q) {
			return false
		}
	}
	return true
}

func segmentsIntersect(a, b, c, d point) bool {
	d1 := cross(c, d, a)
	d2 := cross(c, d, b)
	d3 := cross(a, b, c)
	d4 := cross(a, b, d)
	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}

// cross returns the z component of (a-o) x (b-o)
func cross(o, a, b point) float32 {
	return (a.x-o.x)*(b.y-o.y) - (a.y-o.y)*(b.x-o.x)
}

// earClip triangulates a simple counter clockwise polygon,
// returning indices into pts, three per triangle.
func earClip(pts []point) []int {
	n := len(pts)
	if n < 3 {
		return nil
	}
	prev := make([]int, n)
	next := make([]int, n)
	for i := range pts {
		prev[i] = (i + n - 1) % n
		next[i] = (i + 1) % n
	}
	var out []int
	remaining := n
	i := 0
	stalled := 0
	for remaining > 3 {
		p, nx := prev[i], next[i]
		// when no ear is found in a full walk the ring is
		// numerically degenerate: clip anyway so the walk
		// terminates
		if isEar(pts, prev, next, i) || stalled > remaining {
			out = append(out, p, i, nx)
			next[p], prev[nx] = nx, p
			remaining--
			i = nx
			stalled = 0
			continue
		}
		i = nx
		stalled++
	}
	a, b, c := prev[i], i, next[i]
	if cross(pts[a], pts[b], pts[c]) != 0 {
		out = append(out, a, b, c)
	}
	return out
}

func isEar(pts []point, prev, next []int, c int) bool {
	p, nx := prev[c], next[c]
	a, b, d := pts[p], pts[c], pts[nx]
	if cross(a, b, d) <= 0 {
		return false // reflex or collinear corner
	}
	// no remaining vertex may lie strictly inside the candidate
	for v := next[nx]; v != p; v = next[v] {
		if strictlyInTriangle(pts[v], a, b, d) {
			return false
		}
	}
	return true
}

func strictlyInTriangle(p, a, b, c point) bool {
	return cross(a, b, p) > 0 && cross(b, c, p) > 0 && cross(c, a, p) > 0
}
