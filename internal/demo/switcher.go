package demo

import (
	"fmt"
	"sort"
)

// Factory creates a fresh demo.
type Factory func() Demo

// Registry maps demo names to factories, keeping registration order.
type Registry struct {
	names     []string
	factories map[string]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a factory under name, replacing any previous one.
func (r *Registry) Register(name string, f Factory) {
	if _, ok := r.factories[name]; !ok {
		r.names = append(r.names, name)
	}
	r.factories[name] = f
}

// Names returns demo names in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.names...)
}

// Sorted returns demo names alphabetically.
func (r *Registry) Sorted() []string {
	out := r.Names()
	sort.Strings(out)
	return out
}

// New creates the named demo.
func (r *Registry) New(name string) (Demo, error) {
	f, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDemo, name)
	}
	return f(), nil
}

type selection struct {
	name, preset string
}

// Switcher owns the running App and swaps it at frame boundaries. A change
// requested mid-frame takes effect at the start of the next Frame: the
// current app is closed before the next one initializes.
type Switcher struct {
	registry *Registry
	renderer Renderer
	surface  Surface
	opts     Options

	current *App
	next    *selection
}

// NewSwitcher creates a switcher with nothing running.
func NewSwitcher(reg *Registry, r Renderer, s Surface, opts Options) *Switcher {
	return &Switcher{registry: reg, renderer: r, surface: s, opts: opts}
}

// Change schedules a switch to demo name with preset; an empty preset
// selects the demo's first.
func (s *Switcher) Change(name, preset string) error {
	d, err := s.registry.New(name)
	if err != nil {
		return err
	}
	if preset != "" && !HasPreset(d, preset) {
		return fmt.Errorf("%w: %s has no preset %q", ErrUnknownPreset, name, preset)
	}
	s.next = &selection{name: name, preset: preset}
	return nil
}

// CyclePreset schedules the current demo's next preset.
func (s *Switcher) CyclePreset() {
	if s.current == nil {
		return
	}
	d := s.current.Demo()
	presets := d.Presets()
	cur := s.current.Context().Preset
	for i, p := range presets {
		if p == cur {
			s.next = &selection{name: d.Name(), preset: presets[(i+1)%len(presets)]}
			return
		}
	}
}

// Frame applies a pending switch, then runs one frame of the current app.
func (s *Switcher) Frame(elapsedMillis float64) error {
	if s.next != nil {
		sel := *s.next
		s.next = nil
		if s.current != nil {
			s.current.Close()
			s.current = nil
		}
		d, err := s.registry.New(sel.name)
		if err != nil {
			return err
		}
		opts := s.opts
		opts.Preset = sel.preset
		app := New(d, s.renderer, opts)
		if err := app.Initialize(s.surface); err != nil {
			return err
		}
		s.current = app
	}
	if s.current != nil {
		s.current.OnFrame(elapsedMillis)
	}
	return nil
}

// Current returns the running app or nil.
func (s *Switcher) Current() *App { return s.current }

// Close closes the running app.
func (s *Switcher) Close() {
	if s.current != nil {
		s.current.Close()
		s.current = nil
	}
	s.next = nil
}
