package font

import (
	"github.com/pkg/errors"

	"github.com/Faultbox/scenelab/internal/engine/geometry"
)

// TextOptions are the parameters of extruded text.
type TextOptions struct {
	Size           float32
	Depth          float32
	CurveSegments  int
	BevelEnabled   bool
	BevelThickness float32
	BevelSize      float32
	BevelOffset    float32
	BevelSegments  int
}

// DefaultTextOptions matches the usual text geometry defaults.
func DefaultTextOptions() TextOptions {
	return TextOptions{
		Size:           100,
		Depth:          50,
		CurveSegments:  12,
		BevelThickness: 10,
		BevelSize:      8,
		BevelSegments:  3,
	}
}

// TextGeometry extrudes text set in f.
func TextGeometry(f *Font, text string, opts TextOptions) (*geometry.Geometry, error) {
	layout, err := f.Shapes(text, opts.Size, opts.CurveSegments)
	if err != nil {
		return nil, err
	}
	if len(layout.Shapes) == 0 {
		return nil, errors.Wrapf(geometry.ErrEmptyShape, "text %q in %s", text, f.Name)
	}
	g, err := geometry.Extrude(layout.Shapes, geometry.ExtrudeOptions{
		Steps:          1,
		Depth:          opts.Depth,
		BevelEnabled:   opts.BevelEnabled,
		BevelThickness: opts.BevelThickness,
		BevelSize:      opts.BevelSize,
		BevelOffset:    opts.BevelOffset,
		BevelSegments:  opts.BevelSegments,
		CurveSegments:  opts.CurveSegments,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "extrude text %q", text)
	}
	g.Type = "text"
	return g, nil
}
