package camera

// Button is a pointer button.
type Button int

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
)

// Pointer turns raw pointer events into orbit gestures: the left button
// rotates, the middle and right buttons pan and the wheel zooms. Both hosts
// feed it, the SDL host from window events and the imgui host from the
// viewport item. A nil controls argument is allowed for demos without
// orbit controls.
type Pointer struct {
	down Button
	x, y float32
}

// Press starts a gesture with b at (x, y). A second button while one is
// held is ignored.
func (p *Pointer) Press(b Button, x, y float32) {
	if p.down != ButtonNone {
		return
	}
	p.down = b
	p.x, p.y = x, y
}

// Release ends the gesture started by b.
func (p *Pointer) Release(b Button) {
	if p.down == b {
		p.down = ButtonNone
	}
}

// Dragging reports whether a button is held.
func (p *Pointer) Dragging() bool { return p.down != ButtonNone }

// Move applies the delta since the last position to o.
func (p *Pointer) Move(o *OrbitControls, x, y float32) {
	dx, dy := x-p.x, y-p.y
	p.x, p.y = x, y
	if o == nil || (dx == 0 && dy == 0) {
		return
	}
	switch p.down {
	case ButtonLeft:
		o.HandleDrag(dx, dy)
	case ButtonMiddle, ButtonRight:
		o.HandlePan(dx, dy)
	}
}

// Wheel zooms o; positive deltas move closer.
func (p *Pointer) Wheel(o *OrbitControls, delta float32) {
	if o == nil || delta == 0 {
		return
	}
	o.HandleZoom(delta)
}
