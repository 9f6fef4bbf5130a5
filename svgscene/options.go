package svgscene

import (
	"fmt"
	"image/color"

	"github.com/benoitkugler/svganim/easing"
)

// Defaults used when the corresponding option is left to
// its zero value.
const (
	DefaultLineWidth     = 2.0
	DefaultStepDuration  = 0.02 // seconds per revealed segment
	DefaultShapeDuration = 0.3
)

// DefaultLineColor is the stroke color used when none is given.
var DefaultLineColor = color.NRGBA{0x00, 0x00, 0x00, 0xFF}

// OptionError reports an invalid configuration value.
type OptionError struct {
	Field  string
	Reason string
}

func (e *OptionError) Error() string {
	return fmt.Sprintf("invalid option %s: %s", e.Field, e.Reason)
}

// RevealMode selects how the reveal of the different paths
// of a document is scheduled.
type RevealMode uint8

const (
	// Sequential starts a path once the previous one is fully
	// revealed, fill included.
	Sequential RevealMode = iota
	// Parallel reveals every path at the same time.
	Parallel
)

// DrawOptions configures Scene.Draw.
type DrawOptions struct {
	Fill         bool // paint the filled body after the outline
	Animate      bool // reveal progressively instead of at once
	Mode         RevealMode
	LineWidth    float64     // 0 means DefaultLineWidth
	LineColor    color.NRGBA // zero value means DefaultLineColor
	StepDuration float64     // seconds per segment, 0 means DefaultStepDuration
}

// DefaultDrawOptions returns the standard configuration:
// filled, not animated, sequential, black hairline strokes.
func DefaultDrawOptions() DrawOptions {
	return DrawOptions{
		Fill:         true,
		Mode:         Sequential,
		LineWidth:    DefaultLineWidth,
		LineColor:    DefaultLineColor,
		StepDuration: DefaultStepDuration,
	}
}

// normalized fills the zero fields with the defaults.
func (o DrawOptions) normalized() DrawOptions {
	if o.LineWidth == 0 {
		o.LineWidth = DefaultLineWidth
	}
	if (o.LineColor == color.NRGBA{}) {
		o.LineColor = DefaultLineColor
	}
	if o.StepDuration == 0 {
		o.StepDuration = DefaultStepDuration
	}
	return o
}

// Validate fails fast on unusable values.
func (o DrawOptions) Validate() error {
	if o.LineWidth < 0 {
		return &OptionError{"LineWidth", "must be positive"}
	}
	if o.StepDuration < 0 {
		return &OptionError{"StepDuration", "must be positive"}
	}
	if o.Mode > Parallel {
		return &OptionError{"Mode", "unknown reveal mode"}
	}
	return nil
}

// GrowthOrigin selects the edge or axis a shape grows from
// during a shape animation.
type GrowthOrigin uint8

const (
	// OriginNone keeps the geometry static and fades the
	// shape in instead.
	OriginNone GrowthOrigin = iota
	OriginLeft
	OriginRight
	OriginTop
	OriginBottom
	OriginCenterX
	OriginCenterY
)

var originNames = [...]string{
	OriginNone:    "none",
	OriginLeft:    "left",
	OriginRight:   "right",
	OriginTop:     "top",
	OriginBottom:  "bottom",
	OriginCenterX: "center_x",
	OriginCenterY: "center_y",
}

func (g GrowthOrigin) String() string {
	if int(g) < len(originNames) {
		return originNames[g]
	}
	return fmt.Sprintf("GrowthOrigin(%d)", g)
}

// ParseGrowthOrigin resolves a growth origin by name.
func ParseGrowthOrigin(name string) (GrowthOrigin, error) {
	for g, n := range originNames {
		if n == name {
			return GrowthOrigin(g), nil
		}
	}
	return OriginNone, &OptionError{"Origin", fmt.Sprintf("unknown growth origin %q", name)}
}

// ShapeSpec configures the animation of one path in
// Scene.ShapeAnimate.
type ShapeSpec struct {
	ID       string // required, matches PathModel.ID
	Origin   GrowthOrigin
	Easing   easing.Easing // zero value is linear; see DefaultShapeSpec
	Duration float64       // seconds, 0 means DefaultShapeDuration
}

// DefaultShapeSpec returns the standard animation for one
// shape: a 0.3s out_sine fade in.
func DefaultShapeSpec(id string) ShapeSpec {
	return ShapeSpec{ID: id, Easing: easing.OutSine, Duration: DefaultShapeDuration}
}

func (s ShapeSpec) normalized() ShapeSpec {
	if s.Duration == 0 {
		s.Duration = DefaultShapeDuration
	}
	return s
}

// Validate fails fast on unusable values.
func (s ShapeSpec) Validate() error {
	if s.ID == "" {
		return &OptionError{"ID", "is required"}
	}
	if s.Duration < 0 {
		return &OptionError{"Duration", "must be positive"}
	}
	if s.Origin > OriginCenterY {
		return &OptionError{"Origin", "unknown growth origin"}
	}
	return nil
}
