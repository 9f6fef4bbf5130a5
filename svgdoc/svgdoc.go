// Provides scanning of SVG documents into the list of
// path elements they contain. Only the subset of SVG needed
// to reveal and animate filled paths is read: the viewport,
// the "path" elements, their ids and their fill colors.
package svgdoc

import (
	"encoding/xml"
	"errors"
	"fmt"
	"image/color"
	"io"
	"log"
	"os"
	"strings"

	"golang.org/x/net/html/charset"

	"github.com/benoitkugler/svganim/svgpath"
)

// ErrorMode defines how non fatal parsing errors are handled
type ErrorMode uint8

const (
	// IgnoreErrorMode skips the offending element silently
	IgnoreErrorMode ErrorMode = iota
	// WarnErrorMode skips the offending element and logs a warning
	WarnErrorMode
	// StrictErrorMode aborts the parsing at the first error
	StrictErrorMode
)

// The default viewport mandated by the standard when the
// document defines no usable dimensions.
const (
	defaultWidth  = 300
	defaultHeight = 150
)

// ErrNoValidPaths is returned when a document contains path
// elements but none of them could be parsed.
var ErrNoValidPaths = errors.New("svg document contains no valid path element")

// DimensionError is recorded when the document viewport
// is missing or unusable.
type DimensionError struct {
	Attr  string // "viewBox", "width" or "height"
	Value string
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("invalid svg dimension %s=%q", e.Attr, e.Value)
}

// ViewBox defines the visible area of a document,
// in user space units.
type ViewBox struct{ X, Y, W, H float64 }

// PathElement is one "path" element of a document.
type PathElement struct {
	ID   string // the id attribute, or a generated "path_N" name
	Path svgpath.Path
	Fill color.NRGBA
}

// Document holds the drawable content of a parsed SVG document.
type Document struct {
	ViewBox       ViewBox
	Width, Height float64 // top level attributes, 0 when absent
	Paths         []PathElement

	// Errors collects the non fatal errors encountered
	// during the load (skipped paths, recovered dimensions
	// and fill colors).
	Errors []error
}

// docCursor is used while parsing SVG files
type docCursor struct {
	doc       *Document
	errorMode ErrorMode
	pathCount int
	sawPath   bool
}

// recover handles a non fatal error according to the error mode.
// It returns err itself in strict mode, nil otherwise.
func (c *docCursor) recover(err error) error {
	if c.errorMode == StrictErrorMode {
		return err
	}
	if c.errorMode == WarnErrorMode {
		log.Println(err)
	}
	c.doc.Errors = append(c.doc.Errors, err)
	return nil
}

func parseDimension(v string) (float64, bool) {
	v = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(v), "px"))
	vals, err := svgpath.ParseNumberList(v)
	if err != nil || len(vals) != 1 {
		return 0, false
	}
	return vals[0], true
}

func (c *docCursor) readSvgAttrs(attrs []xml.Attr) error {
	var viewBoxAttr string
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "viewBox":
			viewBoxAttr = attr.Value
		case "width":
			if w, ok := parseDimension(attr.Value); ok && w > 0 {
				c.doc.Width = w
			} else if err := c.recover(&DimensionError{"width", attr.Value}); err != nil {
				return err
			}
		case "height":
			if h, ok := parseDimension(attr.Value); ok && h > 0 {
				c.doc.Height = h
			} else if err := c.recover(&DimensionError{"height", attr.Value}); err != nil {
				return err
			}
		}
	}
	if viewBoxAttr != "" {
		vals, err := svgpath.ParseNumberList(viewBoxAttr)
		if err == nil && len(vals) == 4 && vals[2] > 0 && vals[3] > 0 {
			c.doc.ViewBox = ViewBox{vals[0], vals[1], vals[2], vals[3]}
			return nil
		}
		if err := c.recover(&DimensionError{"viewBox", viewBoxAttr}); err != nil {
			return err
		}
	}
	// no usable viewBox: fall back on the width and height
	// attributes, then on the default viewport
	w, h := c.doc.Width, c.doc.Height
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}
	c.doc.ViewBox = ViewBox{0, 0, w, h}
	return nil
}

func (c *docCursor) readPathElement(attrs []xml.Attr) error {
	var id, data, fill string
	hasFill := false
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "id":
			id = attr.Value
		case "d":
			data = attr.Value
		case "fill":
			fill = attr.Value
			hasFill = true
		}
	}
	index := c.pathCount
	c.pathCount++
	c.sawPath = true
	if id == "" {
		id = fmt.Sprintf("path_%d", index)
	}

	path, err := svgpath.Parse(data)
	if err != nil {
		return c.recover(fmt.Errorf("path %s: %w", id, err))
	}

	fillColor := opaqueWhite
	if hasFill {
		var errc error
		fillColor, errc = parseFill(fill)
		if errc != nil {
			// unsupported fills degrade to the opaque white
			// placeholder, they never abort the load
			if c.errorMode == WarnErrorMode {
				log.Println(fmt.Errorf("path %s: %w", id, errc))
			}
			c.doc.Errors = append(c.doc.Errors, fmt.Errorf("path %s: %w", id, errc))
		}
	}

	c.doc.Paths = append(c.doc.Paths, PathElement{ID: id, Path: path, Fill: fillColor})
	return nil
}

// ReadDocumentStream reads an SVG document from the given io.Reader.
// errMode determines if the parser ignores, errors out, or logs a
// warning when it meets a malformed element.
func ReadDocumentStream(stream io.Reader, errMode ErrorMode) (*Document, error) {
	doc := &Document{}
	cursor := &docCursor{doc: doc, errorMode: errMode}
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel
	seenTag := false
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				if !seenTag {
					return nil, errors.New("invalid svg xml document")
				}
				break
			}
			return doc, err
		}
		se, ok := t.(xml.StartElement)
		if !ok {
			continue
		}
		seenTag = true
		switch se.Name.Local {
		case "svg":
			if err := cursor.readSvgAttrs(se.Attr); err != nil {
				return doc, err
			}
		case "path":
			if err := cursor.readPathElement(se.Attr); err != nil {
				return doc, err
			}
		}
	}
	if doc.ViewBox.W == 0 { // no svg root element seen
		doc.ViewBox = ViewBox{0, 0, defaultWidth, defaultHeight}
	}
	if cursor.sawPath && len(doc.Paths) == 0 {
		return doc, fmt.Errorf("%w: %v", ErrNoValidPaths, doc.Errors)
	}
	return doc, nil
}

// ReadDocument reads an SVG document from the named file.
func ReadDocument(svgFile string, errMode ErrorMode) (*Document, error) {
	fin, errf := os.Open(svgFile)
	if errf != nil {
		return nil, errf
	}
	defer fin.Close()
	return ReadDocumentStream(fin, errMode)
}
