// Package gui models a parameter panel: folders of controllers bound to
// live fields. Drawing is left to a front end; the model clamps values,
// writes them through and fires change callbacks.
package gui

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/scenelab/internal/engine/color"
)

// Controller is one bound control.
type Controller interface {
	Label() string
	// OnChange registers fn to run after every Set.
	OnChange(fn func()) Controller
}

type base struct {
	label     string
	listeners []func()
	destroyed *bool
}

func (b *base) Label() string { return b.label }

func (b *base) fire() {
	if b.destroyed != nil && *b.destroyed {
		return
	}
	for _, fn := range b.listeners {
		fn()
	}
}

// Panel is the root of a parameter panel.
type Panel struct {
	Title string
	Folder

	destroyed bool
}

// NewPanel creates an empty panel.
func NewPanel(title string) *Panel {
	p := &Panel{Title: title}
	p.Folder = Folder{Name: title, Open: true, destroyed: &p.destroyed}
	return p
}

// Destroy drops every controller. Callbacks no longer fire afterwards.
func (p *Panel) Destroy() {
	p.destroyed = true
	p.Clear()
}

// Destroyed reports whether Destroy was called.
func (p *Panel) Destroyed() bool { return p.destroyed }

// Folder groups controllers and nested folders.
type Folder struct {
	Name string
	Open bool

	controllers []Controller
	folders     []*Folder
	destroyed   *bool
}

// AddFolder creates a nested folder.
func (f *Folder) AddFolder(name string) *Folder {
	sub := &Folder{Name: name, Open: true, destroyed: f.destroyed}
	f.folders = append(f.folders, sub)
	return sub
}

// Folders returns nested folders in insertion order.
func (f *Folder) Folders() []*Folder { return f.folders }

// Controllers returns this folder's controllers in insertion order.
func (f *Folder) Controllers() []Controller { return f.controllers }

// Clear removes all controllers and nested folders.
func (f *Folder) Clear() {
	f.controllers = nil
	f.folders = nil
}

// Count returns the number of controllers in f and below.
func (f *Folder) Count() int {
	n := len(f.controllers)
	for _, sub := range f.folders {
		n += sub.Count()
	}
	return n
}

// Find returns the first controller labelled label in f or below.
func (f *Folder) Find(label string) Controller {
	for _, c := range f.controllers {
		if c.Label() == label {
			return c
		}
	}
	for _, sub := range f.folders {
		if c := sub.Find(label); c != nil {
			return c
		}
	}
	return nil
}

func (f *Folder) newBase(label string) base {
	return base{label: label, destroyed: f.destroyed}
}

// Float is a slider over [Min, Max] snapped to Step.
type Float struct {
	base
	Value          *float32
	Min, Max, Step float32
}

// AddFloat binds v. A step of 0 means continuous.
func (f *Folder) AddFloat(label string, v *float32, min, max, step float32) *Float {
	c := &Float{base: f.newBase(label), Value: v, Min: min, Max: max, Step: step}
	f.controllers = append(f.controllers, c)
	return c
}

func (c *Float) OnChange(fn func()) Controller {
	c.listeners = append(c.listeners, fn)
	return c
}

// Set clamps and snaps v, stores it and fires callbacks.
func (c *Float) Set(v float32) {
	v = math32.Max(c.Min, math32.Min(c.Max, v))
	if c.Step > 0 {
		v = c.Min + math32.Round((v-c.Min)/c.Step)*c.Step
		v = math32.Min(c.Max, v)
	}
	*c.Value = v
	c.fire()
}

// Format is a printf verb showing as many decimals as Step resolves.
func (c *Float) Format() string {
	switch {
	case c.Step <= 0:
		return "%.3f"
	case c.Step >= 1:
		return "%.0f"
	case c.Step >= 0.1:
		return "%.1f"
	case c.Step >= 0.01:
		return "%.2f"
	}
	return "%.3f"
}

// Int is an integer slider over [Min, Max].
type Int struct {
	base
	Value    *int
	Min, Max int
}

// AddInt binds v.
func (f *Folder) AddInt(label string, v *int, min, max int) *Int {
	c := &Int{base: f.newBase(label), Value: v, Min: min, Max: max}
	f.controllers = append(f.controllers, c)
	return c
}

func (c *Int) OnChange(fn func()) Controller {
	c.listeners = append(c.listeners, fn)
	return c
}

// Set clamps v, stores it and fires callbacks.
func (c *Int) Set(v int) {
	*c.Value = max(c.Min, min(c.Max, v))
	c.fire()
}

// Bool is a checkbox.
type Bool struct {
	base
	Value *bool
}

// AddBool binds v.
func (f *Folder) AddBool(label string, v *bool) *Bool {
	c := &Bool{base: f.newBase(label), Value: v}
	f.controllers = append(f.controllers, c)
	return c
}

func (c *Bool) OnChange(fn func()) Controller {
	c.listeners = append(c.listeners, fn)
	return c
}

// Set stores v and fires callbacks.
func (c *Bool) Set(v bool) {
	*c.Value = v
	c.fire()
}

// Text is a single line text input.
type Text struct {
	base
	Value *string
}

// AddText binds v.
func (f *Folder) AddText(label string, v *string) *Text {
	c := &Text{base: f.newBase(label), Value: v}
	f.controllers = append(f.controllers, c)
	return c
}

func (c *Text) OnChange(fn func()) Controller {
	c.listeners = append(c.listeners, fn)
	return c
}

// Set stores v and fires callbacks.
func (c *Text) Set(v string) {
	*c.Value = v
	c.fire()
}

// Color is a color picker.
type Color struct {
	base
	Value *color.Color
}

// AddColor binds v.
func (f *Folder) AddColor(label string, v *color.Color) *Color {
	c := &Color{base: f.newBase(label), Value: v}
	f.controllers = append(f.controllers, c)
	return c
}

func (c *Color) OnChange(fn func()) Controller {
	c.listeners = append(c.listeners, fn)
	return c
}

// Set stores v and fires callbacks.
func (c *Color) Set(v color.Color) {
	*c.Value = v
	c.fire()
}

// Options is a combo box selecting an index into Names.
type Options struct {
	base
	Value *int
	Names []string
}

// AddOptions binds v to one of names.
func (f *Folder) AddOptions(label string, v *int, names []string) *Options {
	c := &Options{base: f.newBase(label), Value: v, Names: names}
	f.controllers = append(f.controllers, c)
	return c
}

func (c *Options) OnChange(fn func()) Controller {
	c.listeners = append(c.listeners, fn)
	return c
}

// Set stores index i, clamped to Names, and fires callbacks.
func (c *Options) Set(i int) {
	if len(c.Names) == 0 {
		return
	}
	*c.Value = max(0, min(len(c.Names)-1, i))
	c.fire()
}

// Selected returns the selected name.
func (c *Options) Selected() string {
	if len(c.Names) == 0 {
		return ""
	}
	return c.Names[max(0, min(len(c.Names)-1, *c.Value))]
}

// Angle binds a radian field as a degree slider. The shown value lives in
// the controller; Set writes radians through to v.
type Angle struct {
	*Float
	Degrees float32
	target  *float32
}

// AddAngle binds radians v with a slider in degrees over [minDeg, maxDeg].
func (f *Folder) AddAngle(label string, v *float32, minDeg, maxDeg, stepDeg float32) *Angle {
	a := &Angle{Degrees: *v * 180 / math32.Pi, target: v}
	a.Float = f.AddFloat(label, &a.Degrees, minDeg, maxDeg, stepDeg)
	a.Float.listeners = append(a.Float.listeners, func() { *a.target = a.Degrees * math32.Pi / 180 })
	return a
}
