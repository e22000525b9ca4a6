package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// OrbitControls keeps a camera on a sphere around Target. Dragging changes
// yaw and pitch, the wheel changes the distance (or the zoom of an
// orthographic camera) and panning slides the target in the view plane.
type OrbitControls struct {
	Camera Camera
	Target mgl32.Vec3

	Distance float32
	Pitch    float32 // elevation above the target's horizontal plane, radians
	Yaw      float32 // rotation about +Y, radians; 0 looks from +Z

	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32
	MinZoom     float32
	MaxZoom     float32

	DragSensitivity float32
	ZoomSensitivity float32
	PanSensitivity  float32

	Enabled bool
}

// NewOrbitControls attaches controls to cam and derives the spherical
// coordinates from the camera's current position relative to the origin.
func NewOrbitControls(cam Camera) *OrbitControls {
	o := &OrbitControls{
		Camera:          cam,
		MinDistance:     0.1,
		MaxDistance:     1000,
		MinPitch:        -math32.Pi/2 + 0.01,
		MaxPitch:        math32.Pi/2 - 0.01,
		MinZoom:         0.05,
		MaxZoom:         20,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
		PanSensitivity:  0.002,
		Enabled:         true,
	}
	o.Sync()
	return o
}

// Sync recomputes distance, pitch and yaw from the camera position.
func (o *OrbitControls) Sync() {
	off := o.Camera.Base().Position.Sub(o.Target)
	o.Distance = off.Len()
	if o.Distance < 1e-6 {
		o.Distance = 1
		o.Pitch, o.Yaw = 0, 0
		return
	}
	o.Pitch = math32.Asin(mgl32.Clamp(off[1]/o.Distance, -1, 1))
	o.Yaw = math32.Atan2(off[0], off[2])
}

// Offset returns the camera position relative to Target.
func (o *OrbitControls) Offset() mgl32.Vec3 {
	sp, cp := math32.Sincos(o.Pitch)
	sy, cy := math32.Sincos(o.Yaw)
	return mgl32.Vec3{o.Distance * cp * sy, o.Distance * sp, o.Distance * cp * cy}
}

// HandleDrag rotates around the target by a pointer delta in pixels.
func (o *OrbitControls) HandleDrag(dx, dy float32) {
	if !o.Enabled {
		return
	}
	o.Yaw -= dx * o.DragSensitivity
	o.Pitch = mgl32.Clamp(o.Pitch+dy*o.DragSensitivity, o.MinPitch, o.MaxPitch)
}

// HandleZoom moves closer for positive wheel deltas.
func (o *OrbitControls) HandleZoom(delta float32) {
	if !o.Enabled {
		return
	}
	if ortho, ok := o.Camera.(*Orthographic); ok {
		ortho.Zoom = mgl32.Clamp(ortho.Zoom*(1+delta*o.ZoomSensitivity), o.MinZoom, o.MaxZoom)
		return
	}
	o.Distance = mgl32.Clamp(o.Distance-delta*o.Distance*o.ZoomSensitivity, o.MinDistance, o.MaxDistance)
}

// HandlePan slides the target along the camera's right and up axes.
func (o *OrbitControls) HandlePan(dx, dy float32) {
	if !o.Enabled {
		return
	}
	m := o.Camera.Base().WorldMatrix()
	right := m.Col(0).Vec3().Normalize()
	up := m.Col(1).Vec3().Normalize()
	speed := o.Distance * o.PanSensitivity
	o.Target = o.Target.Sub(right.Mul(dx * speed)).Add(up.Mul(dy * speed))
}

// Update places the camera and points it at the target.
func (o *OrbitControls) Update() {
	n := o.Camera.Base()
	n.Position = o.Target.Add(o.Offset())
	n.LookAt(o.Target)
}
