package ui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/Faultbox/scenelab/internal/engine/camera"
)

// Viewport is an ImGui window showing the scene texture. Its content
// region is the demo surface: ClientSize follows the window layout and
// subscribers hear about changes when Draw notices them.
type Viewport struct {
	Title string

	width, height int
	ratio         float32
	listeners     map[int]func()
	nextID        int

	pointer camera.Pointer
	buttons [3]bool
}

// NewViewport creates a viewport with an initial size in points.
func NewViewport(title string, width, height int) *Viewport {
	return &Viewport{
		Title:     title,
		width:     max(width, 1),
		height:    max(height, 1),
		ratio:     1,
		listeners: make(map[int]func()),
	}
}

func (v *Viewport) ClientSize() (int, int)    { return v.width, v.height }
func (v *Viewport) DevicePixelRatio() float32 { return v.ratio }

func (v *Viewport) OnResize(fn func()) func() {
	id := v.nextID
	v.nextID++
	v.listeners[id] = fn
	return func() { delete(v.listeners, id) }
}

// Draw lays out the viewport window at (x, y) with size (w, h), shows
// texture and feeds pointer input over it to controls, which may be nil.
func (v *Viewport) Draw(x, y, w, h float32, texture uint32, controls *camera.OrbitControls) {
	imgui.SetNextWindowPos(imgui.NewVec2(x, y))
	imgui.SetNextWindowSize(imgui.NewVec2(w, h))

	flags := imgui.WindowFlagsNoResize | imgui.WindowFlagsNoMove |
		imgui.WindowFlagsNoCollapse | imgui.WindowFlagsNoScrollbar |
		imgui.WindowFlagsNoScrollWithMouse | imgui.WindowFlagsNoBringToFrontOnFocus

	imgui.PushStyleVarVec2(imgui.StyleVarWindowPadding, imgui.NewVec2(0, 0))
	if imgui.BeginV(v.Title, nil, flags) {
		avail := imgui.ContentRegionAvail()
		v.resize(int(avail.X), int(avail.Y), FramebufferScale())

		if texture != 0 {
			texRef := imgui.NewTextureRefTextureID(imgui.TextureID(texture))
			imgui.ImageV(*texRef,
				imgui.NewVec2(float32(v.width), float32(v.height)),
				imgui.NewVec2(0, 1),
				imgui.NewVec2(1, 0))
			v.handlePointer(imgui.IsItemHovered(), controls)
		}
	}
	imgui.End()
	imgui.PopStyleVar()
}

func (v *Viewport) resize(w, h int, ratio float32) {
	w, h = max(w, 1), max(h, 1)
	if w == v.width && h == v.height && ratio == v.ratio {
		return
	}
	v.width, v.height, v.ratio = w, h, ratio
	for _, fn := range v.listeners {
		fn()
	}
}

var viewportButtons = [3]struct {
	imgui imgui.MouseButton
	orbit camera.Button
}{
	{imgui.MouseButtonLeft, camera.ButtonLeft},
	{imgui.MouseButtonMiddle, camera.ButtonMiddle},
	{imgui.MouseButtonRight, camera.ButtonRight},
}

// handlePointer starts gestures only over the image; once started they
// continue until release even if the pointer leaves it.
func (v *Viewport) handlePointer(hovered bool, controls *camera.OrbitControls) {
	mouse := imgui.MousePos()
	for i, b := range viewportButtons {
		down := imgui.IsMouseDown(b.imgui)
		switch {
		case down && !v.buttons[i] && hovered:
			v.pointer.Press(b.orbit, mouse.X, mouse.Y)
		case !down && v.buttons[i]:
			v.pointer.Release(b.orbit)
		}
		v.buttons[i] = down
	}
	v.pointer.Move(controls, mouse.X, mouse.Y)
	if hovered {
		v.pointer.Wheel(controls, imgui.CurrentIO().MouseWheel())
	}
}
