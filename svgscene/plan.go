package svgscene

// fillFadeDuration is the fixed duration of the fill fade
// played after a path outline is revealed.
const fillFadeDuration = 0.4

// RevealStep is the schedule of one path within a reveal:
// when its outline is stroked and when its body fades in.
// All times are in seconds from the start of the run.
type RevealStep struct {
	Model *PathModel

	StrokeStart    float64
	StrokeDuration float64

	Fill         bool
	FillStart    float64 // start of the fill fade, after the stroke
	FillDuration float64
}

// End returns the instant the step is fully revealed.
func (s RevealStep) End() float64 {
	end := s.StrokeStart + s.StrokeDuration
	if s.Fill && s.FillStart+s.FillDuration > end {
		end = s.FillStart + s.FillDuration
	}
	return end
}

// PlanReveal computes the schedule of a reveal run over the
// given paths. In Sequential mode a path starts once the
// previous one has ended, fill included; in Parallel mode all
// the paths start together. The fill of a path always starts
// at the end of its own stroke. When opts.Animate is false
// every duration collapses to zero: the paths are simply
// present, already revealed.
func PlanReveal(models []*PathModel, opts DrawOptions) []RevealStep {
	opts = opts.normalized()
	steps := make([]RevealStep, len(models))
	var clock float64
	for i, model := range models {
		var strokeDur float64
		if opts.Animate {
			// the stroke reveals one flattened segment per step
			segs := 0
			for _, c := range model.Contours {
				segs += c.NumPoints() - 1
			}
			strokeDur = opts.StepDuration * float64(segs)
		}
		step := RevealStep{
			Model:          model,
			StrokeDuration: strokeDur,
			Fill:           opts.Fill,
		}
		if opts.Mode == Sequential {
			step.StrokeStart = clock
		}
		step.FillStart = step.StrokeStart + strokeDur
		if opts.Fill && opts.Animate {
			step.FillDuration = fillFadeDuration
		}
		clock = step.End()
		steps[i] = step
	}
	return steps
}
