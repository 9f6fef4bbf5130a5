package svgdoc

import (
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// opaqueWhite is the placeholder used for missing or
// unsupported fill values.
var opaqueWhite = color.NRGBA{0xFF, 0xFF, 0xFF, 0xFF}

// ColorError is recorded when a fill value is not supported
// (gradients, url references, malformed strings).
type ColorError struct {
	Value string
}

func (e *ColorError) Error() string {
	return "unsupported color: " + strconv.Quote(e.Value)
}

// parseHexColor reads a color string of the form #FBD9BD.
// 3 digit numbers are expanded by duplicating each character,
// as mandated by the standard.
func parseHexColor(colorStr string) (c color.NRGBA, err error) {
	hexStr := strings.TrimPrefix(colorStr, "#")
	if len(hexStr) == 3 {
		hexStr = string([]byte{hexStr[0], hexStr[0],
			hexStr[1], hexStr[1], hexStr[2], hexStr[2]})
	}
	if len(hexStr) != 6 {
		return c, &ColorError{colorStr}
	}
	var t uint64
	for _, v := range []struct {
		dst *uint8
		s   string
	}{
		{&c.R, hexStr[0:2]},
		{&c.G, hexStr[2:4]},
		{&c.B, hexStr[4:6]}} {
		t, err = strconv.ParseUint(v.s, 16, 8)
		if err != nil {
			return c, &ColorError{colorStr}
		}
		*v.dst = uint8(t)
	}
	c.A = 0xFF
	return c, nil
}

// parseColorValue reads one component of an rgb() function,
// either as an integer or as a percentage.
func parseColorValue(v string) (uint8, error) {
	v = strings.TrimSpace(v)
	if strings.HasSuffix(v, "%") {
		n, err := strconv.Atoi(strings.TrimSpace(strings.TrimSuffix(v, "%")))
		if err != nil {
			return 0, err
		}
		return uint8(n * 0xFF / 100), nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, err
	}
	return uint8(n), nil
}

// parseFill parses an SVG fill value in all the supported forms:
// hex numbers, the SVG 1.1 color names and rgb() functions.
// Unsupported values (such as url() references to gradients)
// return an error along with the opaque white placeholder.
func parseFill(colorStr string) (color.NRGBA, error) {
	v := strings.ToLower(strings.TrimSpace(colorStr))
	if v == "" {
		return opaqueWhite, nil
	}
	if strings.HasPrefix(v, "url") {
		// gradients and patterns are not resolved
		return opaqueWhite, &ColorError{colorStr}
	}
	if v == "none" {
		// not the same as black: the fill is simply off
		return color.NRGBA{}, nil
	}
	if cn, ok := colornames.Map[v]; ok {
		return color.NRGBA{cn.R, cn.G, cn.B, 0xFF}, nil
	}
	if cStr := strings.TrimPrefix(v, "rgb("); cStr != v {
		cStr = strings.TrimSuffix(cStr, ")")
		vals := strings.Split(cStr, ",")
		if len(vals) != 3 {
			return opaqueWhite, &ColorError{colorStr}
		}
		var cvals [3]uint8
		for i := range cvals {
			var err error
			cvals[i], err = parseColorValue(vals[i])
			if err != nil {
				return opaqueWhite, &ColorError{colorStr}
			}
		}
		return color.NRGBA{cvals[0], cvals[1], cvals[2], 0xFF}, nil
	}
	if strings.HasPrefix(v, "#") {
		c, err := parseHexColor(v)
		if err != nil {
			return opaqueWhite, err
		}
		return c, nil
	}
	return opaqueWhite, &ColorError{colorStr}
}
