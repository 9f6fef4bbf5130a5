package svgscene

import (
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benoitkugler/svganim/easing"
	"github.com/benoitkugler/svganim/mesh"
	"github.com/benoitkugler/svganim/svgdoc"
)

type fillCall struct {
	vertices []float32
	indices  []uint32
	col      color.NRGBA
}

type strokeCall struct {
	points []float32
	width  float64
	col    color.NRGBA
}

// recordingSurface keeps the commands of the current frame:
// Clear drops the previous ones, as a real backend would.
type recordingSurface struct {
	clears  int
	fills   []fillCall
	strokes []strokeCall
}

func (r *recordingSurface) Clear() {
	r.clears++
	r.fills = nil
	r.strokes = nil
}

func (r *recordingSurface) FillMesh(vertices []float32, indices []uint32, col color.NRGBA) {
	r.fills = append(r.fills, fillCall{
		vertices: append([]float32(nil), vertices...),
		indices:  append([]uint32(nil), indices...),
		col:      col,
	})
}

func (r *recordingSurface) StrokePolyline(points []float32, width float64, col color.NRGBA) {
	r.strokes = append(r.strokes, strokeCall{
		points: append([]float32(nil), points...),
		width:  width,
		col:    col,
	})
}

const testDoc = `<svg viewBox="0 0 10 10">
	<path id="square" d="M0 0 H10 V10 H0 Z" fill="#f00"/>
	<path id="tri" d="M0 0 L10 0 L5 10 Z" fill="#00f"/>
</svg>`

func newTestScene(t *testing.T, src string) (*Scene, *recordingSurface) {
	t.Helper()
	doc, err := svgdoc.ReadDocumentStream(strings.NewReader(src), svgdoc.IgnoreErrorMode)
	require.NoError(t, err)
	surface := &recordingSurface{}
	scene := NewScene(surface)
	vb := doc.ViewBox
	require.NoError(t, scene.Load(doc, 0, 0, vb.W, vb.H))
	return scene, surface
}

func TestLoadBuildsModels(t *testing.T) {
	scene, _ := newTestScene(t, testDoc)
	models := scene.Models()
	require.Len(t, models, 2)

	square := models[0]
	assert.Equal(t, "square", square.ID)
	assert.Equal(t, color.NRGBA{0xFF, 0, 0, 0xFF}, square.Fill)
	assert.Equal(t, mesh.Bounds{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}, square.Bounds)
	assert.False(t, square.Mesh.IsEmpty())
	assert.Equal(t, "tri", models[1].ID)
}

func TestStaticDraw(t *testing.T) {
	scene, surface := newTestScene(t, testDoc)
	require.NoError(t, scene.Draw(DefaultDrawOptions()))

	assert.Equal(t, 1, surface.clears)
	require.Len(t, surface.strokes, 2)
	require.Len(t, surface.fills, 2)
	// full visibility, original alpha
	assert.Equal(t, color.NRGBA{0xFF, 0, 0, 0xFF}, surface.fills[0].col)
	assert.Equal(t, DefaultLineColor, surface.strokes[0].col)
	assert.Equal(t, DefaultLineWidth, surface.strokes[0].width)
}

func TestDrawStrokeOnly(t *testing.T) {
	scene, surface := newTestScene(t, testDoc)
	opts := DefaultDrawOptions()
	opts.Fill = false
	require.NoError(t, scene.Draw(opts))
	assert.Len(t, surface.strokes, 2)
	assert.Empty(t, surface.fills)
}

func TestDrawValidation(t *testing.T) {
	scene, _ := newTestScene(t, testDoc)
	opts := DefaultDrawOptions()
	opts.LineWidth = -1
	err := scene.Draw(opts)
	var optErr *OptionError
	require.ErrorAs(t, err, &optErr)
}

func TestPlanSequential(t *testing.T) {
	scene, _ := newTestScene(t, testDoc)
	opts := DefaultDrawOptions()
	opts.Animate = true
	steps := PlanReveal(scene.Models(), opts)
	require.Len(t, steps, 2)

	// fill starts at the end of its own stroke
	for _, st := range steps {
		assert.Equal(t, st.StrokeStart+st.StrokeDuration, st.FillStart)
		assert.Equal(t, fillFadeDuration, st.FillDuration)
		assert.Greater(t, st.StrokeDuration, 0.0)
	}
	// the second path waits for the first one, fill included
	assert.Equal(t, steps[0].End(), steps[1].StrokeStart)
	assert.Equal(t, steps[0].FillStart+steps[0].FillDuration, steps[1].StrokeStart)
}

func TestPlanParallel(t *testing.T) {
	scene, _ := newTestScene(t, testDoc)
	opts := DefaultDrawOptions()
	opts.Animate = true
	opts.Mode = Parallel
	steps := PlanReveal(scene.Models(), opts)
	for _, st := range steps {
		assert.Equal(t, 0.0, st.StrokeStart)
	}
}

func TestPlanWithoutAnimation(t *testing.T) {
	scene, _ := newTestScene(t, testDoc)
	steps := PlanReveal(scene.Models(), DefaultDrawOptions())
	for _, st := range steps {
		assert.Equal(t, 0.0, st.StrokeStart)
		assert.Equal(t, 0.0, st.StrokeDuration)
		assert.Equal(t, 0.0, st.FillDuration)
		assert.Equal(t, 0.0, st.End())
	}
}

func TestProgressClamped(t *testing.T) {
	assert.Equal(t, 0.0, Progress(-1, 1, easing.OutSine))
	assert.Equal(t, 0.0, Progress(0, 1, easing.OutSine))
	assert.Equal(t, 1.0, Progress(1, 1, easing.OutSine))
	assert.Equal(t, 1.0, Progress(2, 1, easing.OutSine))
	assert.Equal(t, 0.5, Progress(0.5, 1, easing.Linear))
	// zero duration animations are complete as soon as they start
	assert.Equal(t, 1.0, Progress(0, 0, easing.Linear))
}

func TestApplyGrowth(t *testing.T) {
	b := mesh.Bounds{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}
	src := []float32{0, 0, 10, 0, 10, 10, 0, 10}
	dst := make([]float32, len(src))

	applyGrowth(dst, src, b, OriginLeft, 0.5)
	assert.Equal(t, []float32{0, 0, 5, 0, 5, 10, 0, 10}, dst)

	applyGrowth(dst, src, b, OriginRight, 0.5)
	assert.Equal(t, []float32{5, 0, 10, 0, 10, 10, 5, 10}, dst)

	applyGrowth(dst, src, b, OriginTop, 0.25)
	assert.Equal(t, []float32{0, 0, 10, 0, 10, 2.5, 0, 2.5}, dst)

	applyGrowth(dst, src, b, OriginBottom, 0.25)
	assert.Equal(t, []float32{0, 7.5, 10, 7.5, 10, 10, 0, 10}, dst)

	applyGrowth(dst, src, b, OriginCenterX, 0.5)
	assert.Equal(t, []float32{2.5, 0, 7.5, 0, 7.5, 10, 2.5, 10}, dst)

	// at progress 1 the copy is exact for every origin
	for origin := OriginNone; origin <= OriginCenterY; origin++ {
		applyGrowth(dst, src, b, origin, 1)
		assert.Equal(t, src, dst, "for %s", origin)
	}
	// at progress 0 the shape is collapsed on its origin edge
	applyGrowth(dst, src, b, OriginLeft, 0)
	assert.Equal(t, []float32{0, 0, 0, 0, 0, 10, 0, 10}, dst)
}

func TestAnimatedStrokeReveal(t *testing.T) {
	scene, surface := newTestScene(t, `<svg viewBox="0 0 10 10">
		<path id="square" d="M0 0 H10 V10 H0 Z"/>
	</svg>`)
	opts := DefaultDrawOptions()
	opts.Animate = true
	opts.Fill = false
	opts.StepDuration = 0.1 // 4 segments: 0.4s of stroke
	require.NoError(t, scene.Draw(opts))

	// first frame: nothing revealed yet
	assert.Empty(t, surface.strokes)

	scene.Advance(0.2) // half way: 2 of 4 segments
	require.Len(t, surface.strokes, 1)
	assert.Len(t, surface.strokes[0].points, 6)

	scene.Advance(0.2) // complete
	require.Len(t, surface.strokes, 1)
	assert.Len(t, surface.strokes[0].points, 10)
}

func TestSequentialFillAfterStroke(t *testing.T) {
	scene, surface := newTestScene(t, testDoc)
	opts := DefaultDrawOptions()
	opts.Animate = true
	opts.StepDuration = 0.1
	require.NoError(t, scene.Draw(opts))

	// while the first stroke runs, the second path is pending
	// and no fill has started
	scene.Advance(0.2)
	assert.Len(t, surface.strokes, 1)
	assert.Empty(t, surface.fills)

	// a long time later everything is revealed
	scene.Advance(100)
	assert.Len(t, surface.strokes, 2)
	assert.Len(t, surface.fills, 2)
}

func TestShapeAnimateLifecycle(t *testing.T) {
	scene, surface := newTestScene(t, testDoc)
	completions := 0
	err := scene.ShapeAnimate([]ShapeSpec{
		{ID: "square", Origin: OriginLeft, Duration: 0.3},
		{ID: "tri", Origin: OriginBottom, Duration: 0.3},
	}, func() { completions++ })
	require.NoError(t, err)

	// entries run one after the other
	scene.Advance(0.15)
	require.Len(t, surface.fills, 1)
	// linear easing, progress 0.5, growing from the left
	maxX := float32(0)
	for i := 0; i < len(surface.fills[0].vertices); i += 2 {
		if x := surface.fills[0].vertices[i]; x > maxX {
			maxX = x
		}
	}
	assert.InDelta(t, 5, maxX, 1e-4)
	assert.Equal(t, 0, completions)

	scene.Advance(0.2) // 0.35: first done, second running
	assert.Len(t, surface.fills, 2)
	assert.Equal(t, 0, completions)

	scene.Advance(0.3) // 0.65: all done
	assert.Equal(t, 1, completions)

	// the hook fires exactly once
	scene.Advance(1)
	scene.Advance(1)
	assert.Equal(t, 1, completions)
}

func TestShapeAnimateCancellation(t *testing.T) {
	scene, _ := newTestScene(t, testDoc)
	canceled, replaced := 0, 0
	require.NoError(t, scene.ShapeAnimate([]ShapeSpec{
		{ID: "square", Duration: 1},
	}, func() { canceled++ }))
	scene.Advance(0.5)

	// starting a new run drops the previous one: its callback
	// must never fire
	require.NoError(t, scene.ShapeAnimate([]ShapeSpec{
		{ID: "tri", Duration: 0.1},
	}, func() { replaced++ }))
	scene.Advance(10)
	scene.Advance(10)
	assert.Equal(t, 0, canceled)
	assert.Equal(t, 1, replaced)

	// Draw cancels as well
	require.NoError(t, scene.ShapeAnimate([]ShapeSpec{
		{ID: "square", Duration: 1},
	}, func() { canceled++ }))
	require.NoError(t, scene.Draw(DefaultDrawOptions()))
	scene.Advance(10)
	assert.Equal(t, 0, canceled)
}

func TestShapeAnimateUnresolved(t *testing.T) {
	scene, surface := newTestScene(t, testDoc)
	completions := 0
	err := scene.ShapeAnimate([]ShapeSpec{
		{ID: "square", Duration: 0.2},
		{ID: "ghost", Duration: 0.2},
	}, func() { completions++ })
	var unresolved *UnresolvedTargetError
	require.ErrorAs(t, err, &unresolved)
	assert.Equal(t, []string{"ghost"}, unresolved.IDs)

	// the resolved entry still runs to completion
	scene.Advance(0.3)
	assert.Len(t, surface.fills, 1)
	assert.Equal(t, 1, completions)
}

func TestShapeAnimateAllUnresolved(t *testing.T) {
	scene, _ := newTestScene(t, testDoc)
	completions := 0
	err := scene.ShapeAnimate([]ShapeSpec{{ID: "ghost"}}, func() { completions++ })
	require.Error(t, err)
	// nothing to animate: the completion fires immediately
	assert.Equal(t, 1, completions)
}

func TestShapeSpecValidation(t *testing.T) {
	scene, _ := newTestScene(t, testDoc)
	err := scene.ShapeAnimate([]ShapeSpec{{}}, nil)
	var optErr *OptionError
	require.ErrorAs(t, err, &optErr)

	err = scene.ShapeAnimate([]ShapeSpec{{ID: "square", Duration: -1}}, nil)
	require.ErrorAs(t, err, &optErr)
}

func TestParseGrowthOrigin(t *testing.T) {
	for origin := OriginNone; origin <= OriginCenterY; origin++ {
		got, err := ParseGrowthOrigin(origin.String())
		require.NoError(t, err)
		assert.Equal(t, origin, got)
	}
	_, err := ParseGrowthOrigin("diagonal")
	assert.Error(t, err)
}

func TestAdvanceWithoutRun(t *testing.T) {
	scene, surface := newTestScene(t, testDoc)
	scene.Advance(1)
	assert.Equal(t, 0, surface.clears)
}
