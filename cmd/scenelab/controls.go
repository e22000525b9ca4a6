package main

import (
	"fmt"
	"slices"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/Faultbox/scenelab/internal/engine/ui"
)

// drawControls draws the demo selector, the demo's parameter panel and
// frame statistics.
func (app *App) drawControls(x, y, w, h float32) {
	imgui.SetNextWindowPos(imgui.NewVec2(x, y))
	imgui.SetNextWindowSize(imgui.NewVec2(w, h))
	flags := imgui.WindowFlagsNoResize | imgui.WindowFlagsNoMove | imgui.WindowFlagsNoCollapse
	if !imgui.BeginV("Controls", nil, flags) {
		imgui.End()
		return
	}
	defer imgui.End()

	names := app.session.Registry.Names()
	current, preset := app.session.Selection()

	if i, ok := ui.Combo("Demo", names, slices.Index(names, current)); ok {
		app.session.Select(names[i], "")
	}

	cur := app.session.Switcher.Current()
	if cur != nil {
		presets := cur.Demo().Presets()
		if len(presets) > 1 {
			if i, ok := ui.Combo("Preset", presets, slices.Index(presets, preset)); ok {
				app.session.Select(current, presets[i])
			}
		}
	}
	imgui.TextDisabled("1-7 demo, Tab preset, F12 screenshot, P panel")

	imgui.Separator()
	if cur != nil {
		ui.DrawPanel(cur.Context().Panel)
	}

	imgui.Separator()
	stats := app.renderer.Stats()
	dw, dh := app.renderer.DrawableSize()
	imgui.Text(fmt.Sprintf("FPS: %.0f", app.fps))
	imgui.Text(fmt.Sprintf("Drawable: %dx%d", dw, dh))
	imgui.Text(fmt.Sprintf("Draw calls: %d", stats.DrawCalls))
	imgui.Text(fmt.Sprintf("Triangles: %d", stats.Triangles))
	imgui.Text(fmt.Sprintf("Lights: %d  Shadow maps: %d", stats.Lights, stats.Shadows))

	imgui.Spacing()
	if imgui.Button("Screenshot") {
		app.screenshot()
	}
	imgui.SameLine()
	if imgui.Button("Export glTF...") {
		app.exportDialog()
	}
	if imgui.Button("Save as default") {
		app.saveSelection()
	}

	if app.message != "" && time.Since(app.messageTime) < messageTTL {
		imgui.Spacing()
		imgui.TextWrapped(app.message)
	}
}
