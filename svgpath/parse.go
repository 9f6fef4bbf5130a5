package svgpath

import (
	"fmt"
	"math"
	"strconv"
)

// MalformedPathError is returned when a path data string
// does not follow the SVG "d" attribute grammar.
type MalformedPathError struct {
	Offset int // byte offset of the offending token
	Reason string
}

func (e *MalformedPathError) Error() string {
	return fmt.Sprintf("malformed path data at offset %d: %s", e.Offset, e.Reason)
}

// Parse reads SVG path data and compiles it to a sequence
// of absolute operations. All the commands of the grammar are
// supported; relative coordinates are resolved against the
// current point, H/V/S/T shorthands are expanded and arcs are
// approximated by cubic bezier curves.
func Parse(data string) (Path, error) {
	var c pathCursor
	if err := c.compilePath(data); err != nil {
		return nil, err
	}
	return c.path, nil
}

// ParseNumberList reads a whitespace or comma separated list
// of numbers, as found in viewBox or points attributes.
func ParseNumberList(s string) ([]float64, error) {
	c := pathCursor{data: s}
	var out []float64
	for {
		c.skipSeparators()
		if c.eof() {
			return out, nil
		}
		v, err := c.readFloat()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
}

// pathCursor holds the state needed while compiling path data
type pathCursor struct {
	path Path
	data string
	pos  int

	placeX, placeY         float64 // current point
	pathStartX, pathStartY float64 // start of the current subpath
	cntlPtX, cntlPtY       float64 // second control point of the last cubic
	quadPtX, quadPtY       float64 // control point of the last quadratic
	lastKey                byte
}

func (c *pathCursor) errorf(format string, args ...interface{}) error {
	return &MalformedPathError{Offset: c.pos, Reason: fmt.Sprintf(format, args...)}
}

func (c *pathCursor) eof() bool { return c.pos >= len(c.data) }

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isNumberStart(b byte) bool {
	return isDigit(b) || b == '+' || b == '-' || b == '.'
}

func isCommandKey(b byte) bool {
	switch lowerKey(b) {
	case 'm', 'l', 'h', 'v', 'c', 's', 'q', 't', 'a', 'z':
		return true
	}
	return false
}

func lowerKey(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + 'a' - 'A'
	}
	return b
}

// skipSeparators advances past whitespace and commas
func (c *pathCursor) skipSeparators() {
	for !c.eof() {
		switch c.data[c.pos] {
		case ' ', '\t', '\n', '\r', '\f', ',':
			c.pos++
		default:
			return
		}
	}
}

// readFloat reads the next number. Numbers may be packed
// against each other: a sign or a second decimal point starts
// a new one, so that "1.5.5" reads as 1.5 then 0.5.
func (c *pathCursor) readFloat() (float64, error) {
	c.skipSeparators()
	start := c.pos
	i := c.pos
	if i < len(c.data) && (c.data[i] == '+' || c.data[i] == '-') {
		i++
	}
	seenDigit, seenDot := false, false
	for i < len(c.data) {
		switch b := c.data[i]; {
		case isDigit(b):
			seenDigit = true
			i++
		case b == '.' && !seenDot:
			seenDot = true
			i++
		default:
			goto exponent
		}
	}
exponent:
	if !seenDigit {
		return 0, c.errorf("expected number")
	}
	if i < len(c.data) && (c.data[i] == 'e' || c.data[i] == 'E') {
		j := i + 1
		if j < len(c.data) && (c.data[j] == '+' || c.data[j] == '-') {
			j++
		}
		if j < len(c.data) && isDigit(c.data[j]) {
			for j < len(c.data) && isDigit(c.data[j]) {
				j++
			}
			i = j
		}
	}
	v, err := strconv.ParseFloat(c.data[start:i], 64)
	if err != nil {
		return 0, c.errorf("invalid number %q", c.data[start:i])
	}
	c.pos = i
	return v, nil
}

// readFlag reads an arc flag, a single 0 or 1 digit.
// Flags may be packed against the next number ("a1 1 0 011 1").
func (c *pathCursor) readFlag() (bool, error) {
	c.skipSeparators()
	if c.eof() {
		return false, c.errorf("expected arc flag")
	}
	switch c.data[c.pos] {
	case '0':
		c.pos++
		return false, nil
	case '1':
		c.pos++
		return true, nil
	}
	return false, c.errorf("invalid arc flag %q", c.data[c.pos])
}

func (c *pathCursor) readFloats(n int) ([]float64, error) {
	pts := make([]float64, n)
	for i := range pts {
		v, err := c.readFloat()
		if err != nil {
			return nil, err
		}
		pts[i] = v
	}
	return pts, nil
}

// compilePath translates the svgPath description string into a path.
// All valid SVG path commands are interpreted to absolute
// coordinates, using the current cursor position.
func (c *pathCursor) compilePath(svgPath string) error {
	c.data = svgPath
	c.pos = 0
	c.lastKey = 'z'
	c.skipSeparators()
	if c.eof() {
		return nil
	}
	if lowerKey(c.data[c.pos]) != 'm' {
		return c.errorf("path must begin with a moveto command")
	}
	for {
		c.skipSeparators()
		if c.eof() {
			return nil
		}
		b := c.data[c.pos]
		var key byte
		switch {
		case isCommandKey(b):
			key = b
			c.pos++
		case isNumberStart(b):
			// coordinates following a completed command repeat it;
			// after a moveto the implied command is lineto
			switch c.lastKey {
			case 'm':
				key = 'l'
			case 'M':
				key = 'L'
			case 'z', 'Z':
				return c.errorf("expected command after closepath")
			default:
				key = c.lastKey
			}
		default:
			return c.errorf("unexpected character %q", string(b))
		}
		if err := c.addSeg(key); err != nil {
			return err
		}
		c.lastKey = key
	}
}

// addSeg reads the arguments of command key and emits
// the corresponding operation.
func (c *pathCursor) addSeg(key byte) error {
	rel := key >= 'a' // lowercase commands are relative
	switch lowerKey(key) {
	case 'm':
		pts, err := c.readFloats(2)
		if err != nil {
			return err
		}
		if rel {
			pts[0] += c.placeX
			pts[1] += c.placeY
		}
		c.path.Start(toFixedP(pts[0], pts[1]))
		c.placeX, c.placeY = pts[0], pts[1]
		c.pathStartX, c.pathStartY = pts[0], pts[1]
	case 'l':
		pts, err := c.readFloats(2)
		if err != nil {
			return err
		}
		if rel {
			pts[0] += c.placeX
			pts[1] += c.placeY
		}
		c.path.Line(toFixedP(pts[0], pts[1]))
		c.placeX, c.placeY = pts[0], pts[1]
	case 'h':
		x, err := c.readFloat()
		if err != nil {
			return err
		}
		if rel {
			x += c.placeX
		}
		c.path.Line(toFixedP(x, c.placeY))
		c.placeX = x
	case 'v':
		y, err := c.readFloat()
		if err != nil {
			return err
		}
		if rel {
			y += c.placeY
		}
		c.path.Line(toFixedP(c.placeX, y))
		c.placeY = y
	case 'c':
		pts, err := c.readFloats(6)
		if err != nil {
			return err
		}
		if rel {
			for i := 0; i < 6; i += 2 {
				pts[i] += c.placeX
				pts[i+1] += c.placeY
			}
		}
		c.path.CubeBezier(toFixedP(pts[0], pts[1]), toFixedP(pts[2], pts[3]), toFixedP(pts[4], pts[5]))
		c.cntlPtX, c.cntlPtY = pts[2], pts[3]
		c.placeX, c.placeY = pts[4], pts[5]
	case 's':
		pts, err := c.readFloats(4)
		if err != nil {
			return err
		}
		if rel {
			for i := 0; i < 4; i += 2 {
				pts[i] += c.placeX
				pts[i+1] += c.placeY
			}
		}
		x1, y1 := c.reflectCubeControl()
		c.path.CubeBezier(toFixedP(x1, y1), toFixedP(pts[0], pts[1]), toFixedP(pts[2], pts[3]))
		c.cntlPtX, c.cntlPtY = pts[0], pts[1]
		c.placeX, c.placeY = pts[2], pts[3]
	case 'q':
		pts, err := c.readFloats(4)
		if err != nil {
			return err
		}
		if rel {
			for i := 0; i < 4; i += 2 {
				pts[i] += c.placeX
				pts[i+1] += c.placeY
			}
		}
		c.path.QuadBezier(toFixedP(pts[0], pts[1]), toFixedP(pts[2], pts[3]))
		c.quadPtX, c.quadPtY = pts[0], pts[1]
		c.placeX, c.placeY = pts[2], pts[3]
	case 't':
		pts, err := c.readFloats(2)
		if err != nil {
			return err
		}
		if rel {
			pts[0] += c.placeX
			pts[1] += c.placeY
		}
		x1, y1 := c.reflectQuadControl()
		c.path.QuadBezier(toFixedP(x1, y1), toFixedP(pts[0], pts[1]))
		c.quadPtX, c.quadPtY = x1, y1
		c.placeX, c.placeY = pts[0], pts[1]
	case 'a':
		points := make([]float64, 7)
		var err error
		if points[0], err = c.readFloat(); err != nil {
			return err
		}
		if points[1], err = c.readFloat(); err != nil {
			return err
		}
		if points[2], err = c.readFloat(); err != nil {
			return err
		}
		large, err := c.readFlag()
		if err != nil {
			return err
		}
		sweep, err := c.readFlag()
		if err != nil {
			return err
		}
		if large {
			points[3] = 1
		}
		if sweep {
			points[4] = 1
		}
		if points[5], err = c.readFloat(); err != nil {
			return err
		}
		if points[6], err = c.readFloat(); err != nil {
			return err
		}
		if rel {
			points[5] += c.placeX
			points[6] += c.placeY
		}
		c.addArcFromA(points)
	case 'z':
		c.path.Stop(true)
		c.placeX, c.placeY = c.pathStartX, c.pathStartY
	}
	return nil
}

// reflectCubeControl reflects the second control point of the
// previous cubic around the current point. If the previous command
// was not a cubic, the current point is used.
func (c *pathCursor) reflectCubeControl() (x, y float64) {
	switch lowerKey(c.lastKey) {
	case 'c', 's':
		return 2*c.placeX - c.cntlPtX, 2*c.placeY - c.cntlPtY
	}
	return c.placeX, c.placeY
}

// reflectQuadControl is the quadratic counterpart of reflectCubeControl.
func (c *pathCursor) reflectQuadControl() (x, y float64) {
	switch lowerKey(c.lastKey) {
	case 'q', 't':
		return 2*c.placeX - c.quadPtX, 2*c.placeY - c.quadPtY
	}
	return c.placeX, c.placeY
}

// addArcFromA adds an arc command to the cursor path.
// Degenerate radii reduce the arc to a straight line,
// as mandated by the standard.
func (c *pathCursor) addArcFromA(points []float64) {
	if points[5] == c.placeX && points[6] == c.placeY {
		return // zero length arcs are dropped
	}
	points[0], points[1] = math.Abs(points[0]), math.Abs(points[1])
	if points[0] == 0 || points[1] == 0 {
		c.path.Line(toFixedP(points[5], points[6]))
		c.placeX, c.placeY = points[5], points[6]
		return
	}
	cx, cy := findEllipseCenter(&points[0], &points[1], points[2]*math.Pi/180, c.placeX, c.placeY,
		points[5], points[6], points[4] == 0, points[3] == 0)
	c.placeX, c.placeY = c.path.addArc(points, cx, cy, c.placeX, c.placeY)
}
