// Package font turns text into geometry shapes using glyph outlines from
// TrueType and OpenType fonts.
package font

import (
	"sync"

	"github.com/go-fonts/latin-modern/lmroman10regular"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"

	"github.com/Faultbox/scenelab/internal/engine/geometry"
	"github.com/Faultbox/scenelab/internal/logger"
)

// Font is a parsed outline font. It is not safe for concurrent use.
type Font struct {
	Name string

	sf   *sfnt.Font
	buf  sfnt.Buffer
	upem fixed.Int26_6
}

// Parse reads a TrueType or OpenType font.
func Parse(name string, data []byte) (*Font, error) {
	sf, err := sfnt.Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "parse font %s", name)
	}
	f := &Font{Name: name, sf: sf, upem: fixed.I(int(sf.UnitsPerEm()))}
	if family, err := sf.Name(&f.buf, sfnt.NameIDFamily); err == nil && family != "" {
		f.Name = family
	}
	return f, nil
}

var (
	fallbackOnce sync.Once
	fallback     *Font
	fallbackErr  error
)

// Fallback returns the embedded Latin Modern Roman face.
func Fallback() (*Font, error) {
	fallbackOnce.Do(func() {
		fallback, fallbackErr = Parse("Latin Modern Roman", lmroman10regular.TTF)
	})
	if fallbackErr != nil {
		return nil, fallbackErr
	}
	// Each caller gets its own glyph buffer.
	f := *fallback
	f.buf = sfnt.Buffer{}
	return &f, nil
}

// HasGlyph reports whether r maps to a real glyph.
func (f *Font) HasGlyph(r rune) bool {
	idx, err := f.sf.GlyphIndex(&f.buf, r)
	return err == nil && idx != 0
}

// units converts a 26.6 value in font units to scene units for size.
func (f *Font) units(v fixed.Int26_6, size float32) float32 {
	return float32(v) / float32(f.upem) * size
}

// LineHeight returns the distance between baselines at size.
func (f *Font) LineHeight(size float32) float32 {
	m, err := f.sf.Metrics(&f.buf, f.upem, xfont.HintingNone)
	if err != nil || m.Height == 0 {
		return size * 1.2
	}
	return f.units(m.Height, size)
}

// Layout is the result of shaping a string.
type Layout struct {
	Shapes  []*geometry.Shape
	Missing []rune
	Width   float32
}

// Shapes lays text out left to right starting at the origin, baseline on
// y = 0 and y up, and returns one shape per outer glyph contour. Text is
// NFC normalized first so decomposed jamo and accents map to precomposed
// glyphs. Runes without a glyph are skipped and reported in Missing.
func (f *Font) Shapes(text string, size float32, curveSegments int) (*Layout, error) {
	out := &Layout{}
	var penX, penY float32
	prev := sfnt.GlyphIndex(0)
	for _, r := range norm.NFC.String(text) {
		if r == '\n' {
			out.Width = max(out.Width, penX)
			penX = 0
			penY -= f.LineHeight(size)
			prev = 0
			continue
		}
		idx, err := f.sf.GlyphIndex(&f.buf, r)
		if err != nil || idx == 0 {
			out.Missing = append(out.Missing, r)
			continue
		}
		if prev != 0 {
			if k, err := f.sf.Kern(&f.buf, prev, idx, f.upem, xfont.HintingNone); err == nil {
				penX += f.units(k, size)
			}
		}
		segs, err := f.sf.LoadGlyph(&f.buf, idx, f.upem, nil)
		if err != nil {
			return nil, errors.Wrapf(err, "load glyph %q", r)
		}
		out.Shapes = append(out.Shapes, glyphShapes(segs, func(p fixed.Point26_6) (float32, float32) {
			return penX + f.units(p.X, size), penY - f.units(p.Y, size)
		}, curveSegments)...)

		adv, err := f.sf.GlyphAdvance(&f.buf, idx, f.upem, xfont.HintingNone)
		if err != nil {
			return nil, errors.Wrapf(err, "advance %q", r)
		}
		penX += f.units(adv, size)
		prev = idx
	}
	out.Width = max(out.Width, penX)
	if len(out.Missing) > 0 {
		logger.Warn("glyphs missing from font",
			zap.String("font", f.Name),
			zap.String("runes", string(out.Missing)))
	}
	return out, nil
}

// glyphShapes converts outline segments into shapes. Contours winding
// opposite to the largest contour are holes and go to the smallest outer
// contour that contains them.
func glyphShapes(segs sfnt.Segments, pt func(fixed.Point26_6) (float32, float32), curveSegments int) []*geometry.Shape {
	var paths []*geometry.Path
	var cur *geometry.Path
	for _, s := range segs {
		switch s.Op {
		case sfnt.SegmentOpMoveTo:
			cur = geometry.NewPath()
			paths = append(paths, cur)
			x, y := pt(s.Args[0])
			cur.MoveTo(x, y)
		case sfnt.SegmentOpLineTo:
			x, y := pt(s.Args[0])
			cur.LineTo(x, y)
		case sfnt.SegmentOpQuadTo:
			cx, cy := pt(s.Args[0])
			x, y := pt(s.Args[1])
			cur.QuadraticCurveTo(cx, cy, x, y)
		case sfnt.SegmentOpCubeTo:
			c1x, c1y := pt(s.Args[0])
			c2x, c2y := pt(s.Args[1])
			x, y := pt(s.Args[2])
			cur.BezierCurveTo(c1x, c1y, c2x, c2y, x, y)
		}
	}
	return classify(paths, curveSegments)
}

func classify(paths []*geometry.Path, curveSegments int) []*geometry.Shape {
	type contour struct {
		path *geometry.Path
		pts  []mgl32.Vec2
		area float32
	}
	var cs []contour
	var largest float32
	for _, p := range paths {
		pts := p.Points(curveSegments)
		if len(pts) < 3 {
			continue
		}
		a := geometry.Area(pts)
		cs = append(cs, contour{path: p, pts: pts, area: a})
		if abs(a) > abs(largest) {
			largest = a
		}
	}

	var outers []*geometry.Shape
	var outerPts [][]mgl32.Vec2
	var outerArea []float32
	var holes []contour
	for _, c := range cs {
		if (c.area > 0) == (largest > 0) {
			outers = append(outers, &geometry.Shape{Path: c.path})
			outerPts = append(outerPts, c.pts)
			outerArea = append(outerArea, abs(c.area))
			continue
		}
		holes = append(holes, c)
	}
	for _, h := range holes {
		best := -1
		for i, pts := range outerPts {
			if !insidePolygon(h.pts[0], pts) {
				continue
			}
			if best < 0 || outerArea[i] < outerArea[best] {
				best = i
			}
		}
		if best >= 0 {
			outers[best].Holes = append(outers[best].Holes, h.path)
		}
	}
	return outers
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// insidePolygon is the even-odd ray crossing test.
func insidePolygon(p mgl32.Vec2, poly []mgl32.Vec2) bool {
	in := false
	for i, j := 0, len(poly)-1; i < len(poly); j, i = i, i+1 {
		a, b := poly[i], poly[j]
		if (a[1] > p[1]) != (b[1] > p[1]) && p[0] < (b[0]-a[0])*(p[1]-a[1])/(b[1]-a[1])+a[0] {
			in = !in
		}
	}
	return in
}
