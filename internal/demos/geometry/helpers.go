package geometry

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/scenelab/internal/engine/font"
	geo "github.com/Faultbox/scenelab/internal/engine/geometry"
	"github.com/Faultbox/scenelab/internal/engine/gui"
)

// Helper builds one kind of geometry from parameters it exposes on a panel.
type Helper interface {
	CreateGeometry() (*geo.Geometry, error)
	// CreateGUI adds the parameter controls to folder; every change calls
	// update.
	CreateGUI(folder *gui.Folder, update func())
}

func rad(deg float32) float32 { return mgl32.DegToRad(deg) }

type boxHelper struct {
	Width, Height, Depth                         float32
	WidthSegments, HeightSegments, DepthSegments float32
}

func newBoxHelper() *boxHelper {
	return &boxHelper{1, 1, 1, 1, 1, 1}
}

// Segment counts are sliders over reals; the generator truncates them.
func (h *boxHelper) CreateGeometry() (*geo.Geometry, error) {
	return geo.Box(h.Width, h.Height, h.Depth, int(h.WidthSegments), int(h.HeightSegments), int(h.DepthSegments)), nil
}

func (h *boxHelper) CreateGUI(f *gui.Folder, update func()) {
	f.AddFloat("width", &h.Width, 0.1, 10, 0.01).OnChange(update)
	f.AddFloat("height", &h.Height, 0.1, 10, 0.01).OnChange(update)
	f.AddFloat("depth", &h.Depth, 0.1, 10, 0.01).OnChange(update)
	f.AddFloat("widthSegments", &h.WidthSegments, 0.1, 10, 0.01).OnChange(update)
	f.AddFloat("heightSegments", &h.HeightSegments, 0.1, 10, 0.01).OnChange(update)
	f.AddFloat("depthSegments", &h.DepthSegments, 0.1, 10, 0.01).OnChange(update)
}

type circleHelper struct {
	Radius                  float32
	Segments                int
	ThetaStart, ThetaLength float32
}

func newCircleHelper() *circleHelper {
	return &circleHelper{Radius: 1, Segments: 32, ThetaLength: 360}
}

func (h *circleHelper) CreateGeometry() (*geo.Geometry, error) {
	return geo.Circle(h.Radius, h.Segments, rad(h.ThetaStart), rad(h.ThetaLength)), nil
}

func (h *circleHelper) CreateGUI(f *gui.Folder, update func()) {
	f.AddFloat("radius", &h.Radius, 0.1, 1, 0.01).OnChange(update)
	f.AddInt("segments", &h.Segments, 1, 64).OnChange(update)
	f.AddFloat("thetaStart", &h.ThetaStart, 0, 360, 0.1).OnChange(update)
	f.AddFloat("thetaLength", &h.ThetaLength, 0, 360, 0.1).OnChange(update)
}

type coneHelper struct {
	Radius, Height                 float32
	RadialSegments, HeightSegments int
	OpenEnded                      bool
	ThetaStart, ThetaLength        float32
}

func newConeHelper() *coneHelper {
	return &coneHelper{Radius: 0.5, Height: 1, RadialSegments: 8, HeightSegments: 1, ThetaLength: 360}
}

func (h *coneHelper) CreateGeometry() (*geo.Geometry, error) {
	return geo.Cone(h.Radius, h.Height, h.RadialSegments, h.HeightSegments, h.OpenEnded, rad(h.ThetaStart), rad(h.ThetaLength)), nil
}

func (h *coneHelper) CreateGUI(f *gui.Folder, update func()) {
	f.AddFloat("radius", &h.Radius, 0.1, 1, 0.01).OnChange(update)
	f.AddFloat("height", &h.Height, 0.1, 2, 0.01).OnChange(update)
	f.AddInt("radialSegments", &h.RadialSegments, 1, 64).OnChange(update)
	f.AddInt("heightSegments", &h.HeightSegments, 1, 64).OnChange(update)
	f.AddBool("openEnded", &h.OpenEnded).OnChange(update)
	f.AddFloat("thetaStart", &h.ThetaStart, 0, 360, 0.1).OnChange(update)
	f.AddFloat("thetaLength", &h.ThetaLength, 0, 360, 0.1).OnChange(update)
}

type cylinderHelper struct {
	RadiusTop, RadiusBottom, Height float32
	RadialSegments, HeightSegments  int
	OpenEnded                       bool
	ThetaStart, ThetaLength         float32
}

func newCylinderHelper() *cylinderHelper {
	return &cylinderHelper{RadiusTop: 0.5, RadiusBottom: 0.5, Height: 1, RadialSegments: 8, HeightSegments: 1, ThetaLength: 360}
}

func (h *cylinderHelper) CreateGeometry() (*geo.Geometry, error) {
	return geo.Cylinder(h.RadiusTop, h.RadiusBottom, h.Height, h.RadialSegments, h.HeightSegments, h.OpenEnded, rad(h.ThetaStart), rad(h.ThetaLength)), nil
}

func (h *cylinderHelper) CreateGUI(f *gui.Folder, update func()) {
	f.AddFloat("radiusTop", &h.RadiusTop, 0, 2, 0.01).OnChange(update)
	f.AddFloat("radiusBottom", &h.RadiusBottom, 0, 2, 0.01).OnChange(update)
	f.AddFloat("height", &h.Height, 1, 2, 0.01).OnChange(update)
	f.AddInt("radialSegments", &h.RadialSegments, 3, 64).OnChange(update)
	f.AddInt("heightSegments", &h.HeightSegments, 1, 64).OnChange(update)
	f.AddBool("openEnded", &h.OpenEnded).OnChange(update)
	f.AddFloat("thetaStart", &h.ThetaStart, 0, 360, 0).OnChange(update)
	f.AddFloat("thetaLength", &h.ThetaLength, 0, 360, 0).OnChange(update)
}

type torusHelper struct {
	Radius, Tube                    float32
	RadialSegments, TubularSegments int
	Arc                             float32
}

func newTorusHelper() *torusHelper {
	return &torusHelper{Radius: 1, Tube: 0.3, RadialSegments: 16, TubularSegments: 100, Arc: 360}
}

func (h *torusHelper) CreateGeometry() (*geo.Geometry, error) {
	return geo.Torus(h.Radius, h.Tube, h.RadialSegments, h.TubularSegments, rad(h.Arc)), nil
}

func (h *torusHelper) CreateGUI(f *gui.Folder, update func()) {
	f.AddFloat("radius", &h.Radius, 0.1, 2, 0.01).OnChange(update)
	f.AddFloat("tube", &h.Tube, 0.1, 2, 0.01).OnChange(update)
	f.AddInt("radialSegments", &h.RadialSegments, 2, 30).OnChange(update)
	f.AddInt("tubularSegments", &h.TubularSegments, 3, 200).OnChange(update)
	f.AddFloat("arc", &h.Arc, 0.1, 360, 0).OnChange(update)
}

type sphereHelper struct {
	Radius                        float32
	WidthSegments, HeightSegments int
	PhiStart, PhiLength           float32
	ThetaStart, ThetaLength       float32
}

func newSphereHelper() *sphereHelper {
	return &sphereHelper{Radius: 1, WidthSegments: 32, HeightSegments: 16, PhiLength: 360, ThetaLength: 180}
}

func (h *sphereHelper) CreateGeometry() (*geo.Geometry, error) {
	return geo.Sphere(h.Radius, h.WidthSegments, h.HeightSegments, rad(h.PhiStart), rad(h.PhiLength), rad(h.ThetaStart), rad(h.ThetaLength)), nil
}

func (h *sphereHelper) CreateGUI(f *gui.Folder, update func()) {
	f.AddFloat("radius", &h.Radius, 0.5, 2, 0.01).OnChange(update)
	f.AddInt("widthSegments", &h.WidthSegments, 3, 64).OnChange(update)
	f.AddInt("heightSegments", &h.HeightSegments, 2, 32).OnChange(update)
	f.AddFloat("phiStart", &h.PhiStart, 0, 360, 0).OnChange(update)
	f.AddFloat("phiLength", &h.PhiLength, 0, 360, 0).OnChange(update)
	f.AddFloat("thetaStart", &h.ThetaStart, 0, 180, 0).OnChange(update)
	f.AddFloat("thetaLength", &h.ThetaLength, 0, 180, 0).OnChange(update)
}

type ringHelper struct {
	InnerRadius, OuterRadius   float32
	ThetaSegments, PhiSegments int
	ThetaStart, ThetaLength    float32
}

func newRingHelper() *ringHelper {
	return &ringHelper{InnerRadius: 0.5, OuterRadius: 1, ThetaSegments: 8, PhiSegments: 8, ThetaLength: 360}
}

func (h *ringHelper) CreateGeometry() (*geo.Geometry, error) {
	return geo.Ring(h.InnerRadius, h.OuterRadius, h.ThetaSegments, h.PhiSegments, rad(h.ThetaStart), rad(h.ThetaLength)), nil
}

func (h *ringHelper) CreateGUI(f *gui.Folder, update func()) {
	f.AddFloat("innerRadius", &h.InnerRadius, 0.1, 2, 0).OnChange(update)
	f.AddFloat("outerRadius", &h.OuterRadius, 0.1, 2, 0).OnChange(update)
	f.AddInt("thetaSegments", &h.ThetaSegments, 1, 32).OnChange(update)
	f.AddInt("phiSegments", &h.PhiSegments, 1, 30).OnChange(update)
	f.AddFloat("thetaStart", &h.ThetaStart, 0, 360, 0).OnChange(update)
	f.AddFloat("thetaLength", &h.ThetaLength, 0, 360, 0).OnChange(update)
}

type planeHelper struct {
	Width, Height                 float32
	WidthSegments, HeightSegments int
}

func newPlaneHelper() *planeHelper {
	return &planeHelper{Width: 1, Height: 1, WidthSegments: 1, HeightSegments: 1}
}

func (h *planeHelper) CreateGeometry() (*geo.Geometry, error) {
	return geo.Plane(h.Width, h.Height, h.WidthSegments, h.HeightSegments), nil
}

func (h *planeHelper) CreateGUI(f *gui.Folder, update func()) {
	f.AddFloat("width", &h.Width, 1, 30, 0).OnChange(update)
	f.AddFloat("height", &h.Height, 1, 30, 0).OnChange(update)
	f.AddInt("widthSegments", &h.WidthSegments, 1, 30).OnChange(update)
	f.AddInt("heightSegments", &h.HeightSegments, 1, 30).OnChange(update)
}

type torusKnotHelper struct {
	Radius, Tube                    float32
	TubularSegments, RadialSegments int
	P, Q                            int
}

func newTorusKnotHelper() *torusKnotHelper {
	return &torusKnotHelper{Radius: 0.8, Tube: 0.25, TubularSegments: 64, RadialSegments: 8, P: 2, Q: 3}
}

func (h *torusKnotHelper) CreateGeometry() (*geo.Geometry, error) {
	return geo.TorusKnot(h.Radius, h.Tube, h.TubularSegments, h.RadialSegments, h.P, h.Q), nil
}

func (h *torusKnotHelper) CreateGUI(f *gui.Folder, update func()) {
	f.AddFloat("radius", &h.Radius, 0.1, 2, 0).OnChange(update)
	f.AddFloat("tube", &h.Tube, 0.1, 1, 0).OnChange(update)
	f.AddInt("tubularSegments", &h.TubularSegments, 3, 300).OnChange(update)
	f.AddInt("radialSegments", &h.RadialSegments, 3, 20).OnChange(update)
	f.AddInt("p", &h.P, 1, 20).OnChange(update)
	f.AddInt("q", &h.Q, 1, 20).OnChange(update)
}

// shapeHelper fills the heart outline, centered and scaled down.
type shapeHelper struct {
	Segments int
	Deg      float32
}

func newShapeHelper() *shapeHelper { return &shapeHelper{Segments: 12} }

func (h *shapeHelper) CreateGeometry() (*geo.Geometry, error) {
	g, err := geo.ShapeGeometry([]*geo.Shape{geo.HeartShape(-2.5, -5)}, h.Segments)
	if err != nil {
		return nil, err
	}
	return g.Center().Scale(0.1, 0.1, 0.1).RotateZ(rad(h.Deg)), nil
}

func (h *shapeHelper) CreateGUI(f *gui.Folder, update func()) {
	f.AddInt("segments", &h.Segments, 1, 100).OnChange(update)
	f.AddFloat("deg", &h.Deg, 0, 360, 1).OnChange(update)
}

// extrudeHelper extrudes the heart outline, mirrored upright.
type extrudeHelper struct {
	opts geo.ExtrudeOptions
}

func newExtrudeHelper() *extrudeHelper {
	return &extrudeHelper{opts: geo.ExtrudeOptions{
		Steps:          2,
		Depth:          0.5,
		BevelEnabled:   true,
		BevelThickness: 0.2,
		BevelSize:      0.1,
		CurveSegments:  12,
		BevelSegments:  1,
	}}
}

func (h *extrudeHelper) CreateGeometry() (*geo.Geometry, error) {
	g, err := geo.Extrude([]*geo.Shape{geo.HeartShape(0, 0)}, h.opts)
	if err != nil {
		return nil, err
	}
	return g.Center().Scale(0.1, -0.1, 1), nil
}

func (h *extrudeHelper) CreateGUI(f *gui.Folder, update func()) {
	o := &h.opts
	f.AddInt("steps", &o.Steps, 1, 10).OnChange(update)
	f.AddFloat("depth", &o.Depth, 0, 2, 0.01).OnChange(update)
	f.AddFloat("bevelThickness", &o.BevelThickness, 0, 1, 0.01).OnChange(update)
	f.AddFloat("bevelSize", &o.BevelSize, 0, 1, 0.01).OnChange(update)
	f.AddFloat("bevelOffset", &o.BevelOffset, -4, 5, 0.01).OnChange(update)
	f.AddInt("curveSegments", &o.CurveSegments, 1, 32).OnChange(update)
	f.AddInt("bevelSegments", &o.BevelSegments, 1, 32).OnChange(update)
}

// textHelper extrudes glyph outlines. Font is swapped in when the asset
// load finishes.
type textHelper struct {
	Font *font.Font
	Text string
	opts font.TextOptions
}

func newTextHelper(f *font.Font) *textHelper {
	return &textHelper{Font: f, Text: "하디최고", opts: font.TextOptions{
		Size:           0.5,
		Depth:          0.1,
		CurveSegments:  2,
		BevelSegments:  3,
		BevelThickness: 0.1,
		BevelSize:      0.01,
		BevelEnabled:   true,
	}}
}

func (h *textHelper) CreateGeometry() (*geo.Geometry, error) {
	g, err := font.TextGeometry(h.Font, h.Text, h.opts)
	if err != nil {
		return nil, err
	}
	return g.Center(), nil
}

func (h *textHelper) CreateGUI(f *gui.Folder, update func()) {
	o := &h.opts
	f.AddText("text", &h.Text).OnChange(update)
	f.AddFloat("size", &o.Size, 0.1, 1, 0.01).OnChange(update)
	f.AddFloat("height", &o.Depth, 0.1, 1, 0.01).OnChange(update)
	f.AddInt("curveSegments", &o.CurveSegments, 1, 32).OnChange(update)
	f.AddInt("bevelSegments", &o.BevelSegments, 1, 32).OnChange(update)
	f.AddFloat("bevelThickness", &o.BevelThickness, 0.01, 1, 0.001).OnChange(update)
	f.AddFloat("bevelSize", &o.BevelSize, 0.01, 1, 0.001).OnChange(update)
	f.AddFloat("bevelOffset", &o.BevelOffset, -1, 1, 0.001).OnChange(update)
	f.AddBool("bevelEnabled", &o.BevelEnabled).OnChange(update)
}
