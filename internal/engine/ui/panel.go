package ui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/Faultbox/scenelab/internal/engine/color"
	"github.com/Faultbox/scenelab/internal/engine/gui"
)

// DrawPanel draws p's controllers into the current window. Edits go
// through the controllers' Set so clamping and callbacks apply.
func DrawPanel(p *gui.Panel) {
	if p == nil || p.Destroyed() {
		return
	}
	drawFolder(&p.Folder, p.Title)
}

func drawFolder(f *gui.Folder, path string) {
	for _, c := range f.Controllers() {
		drawController(c, c.Label()+"##"+path)
	}
	for _, sub := range f.Folders() {
		flags := imgui.TreeNodeFlagsNone
		if sub.Open {
			flags |= imgui.TreeNodeFlagsDefaultOpen
		}
		if imgui.TreeNodeExStrV(sub.Name+"##"+path, flags) {
			drawFolder(sub, path+"/"+sub.Name)
			imgui.TreePop()
		}
	}
}

func drawController(c gui.Controller, id string) {
	switch c := c.(type) {
	case *gui.Angle:
		v := c.Degrees
		if imgui.SliderFloatV(id, &v, c.Min, c.Max, "%.0f deg", imgui.SliderFlagsNone) {
			c.Set(v)
		}
	case *gui.Float:
		v := *c.Value
		if imgui.SliderFloatV(id, &v, c.Min, c.Max, c.Format(), imgui.SliderFlagsNone) {
			c.Set(v)
		}
	case *gui.Int:
		v := int32(*c.Value)
		if imgui.SliderIntV(id, &v, int32(c.Min), int32(c.Max), "%d", imgui.SliderFlagsNone) {
			c.Set(int(v))
		}
	case *gui.Bool:
		v := *c.Value
		if imgui.Checkbox(id, &v) {
			c.Set(v)
		}
	case *gui.Text:
		v := *c.Value
		if imgui.InputTextWithHint(id, "", &v, 0, nil) {
			c.Set(v)
		}
	case *gui.Color:
		col := [3]float32{c.Value.R, c.Value.G, c.Value.B}
		if imgui.ColorEdit3(id, &col) {
			c.Set(color.Color{R: col[0], G: col[1], B: col[2]})
		}
	case *gui.Options:
		if i, ok := Combo(id, c.Names, *c.Value); ok {
			c.Set(i)
		}
	default:
		imgui.TextDisabled(c.Label())
	}
}

// Combo draws a combo box over names and returns the newly picked index.
func Combo(id string, names []string, current int) (int, bool) {
	preview := ""
	if current >= 0 && current < len(names) {
		preview = names[current]
	}
	picked, changed := current, false
	if imgui.BeginCombo(id, preview) {
		for i, name := range names {
			if imgui.SelectableBoolV(name, i == current, 0, imgui.NewVec2(0, 0)) && i != current {
				picked, changed = i, true
			}
		}
		imgui.EndCombo()
	}
	return picked, changed
}
