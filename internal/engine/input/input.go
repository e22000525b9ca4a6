// Package input handles SDL2 input events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/scenelab/internal/engine/camera"
)

// EventType is the kind of a translated event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventMouseMove
	EventMouseDown
	EventMouseUp
	EventMouseWheel
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Width  int
	Height int
	MouseX int
	MouseY int
	Button camera.Button
	// Wheel is the vertical scroll amount, positive away from the user.
	Wheel float32
}

// Action is what a key asks the host to do.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	// ActionDemo selects the demo at Command.Index in registration order.
	ActionDemo
	ActionNextPreset
	ActionScreenshot
)

// Command is a host action bound to a key.
type Command struct {
	Action Action
	Index  int
}

// KeyCommand maps a key to its host command: Esc quits, 1-9 select a demo,
// Tab cycles presets and F12 takes a screenshot.
func KeyCommand(key sdl.Scancode) Command {
	switch {
	case key == sdl.SCANCODE_ESCAPE:
		return Command{Action: ActionQuit}
	case key == sdl.SCANCODE_TAB:
		return Command{Action: ActionNextPreset}
	case key == sdl.SCANCODE_F12:
		return Command{Action: ActionScreenshot}
	case key >= sdl.SCANCODE_1 && key <= sdl.SCANCODE_9:
		return Command{Action: ActionDemo, Index: int(key - sdl.SCANCODE_1)}
	}
	return Command{}
}

func button(b uint8) camera.Button {
	switch b {
	case sdl.BUTTON_LEFT:
		return camera.ButtonLeft
	case sdl.BUTTON_MIDDLE:
		return camera.ButtonMiddle
	case sdl.BUTTON_RIGHT:
		return camera.ButtonRight
	}
	return camera.ButtonNone
}

// Input handles all input processing.
type Input struct {
	events []Event
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Update polls SDL events and converts them to events.
// Returns true if the application should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0]
	quit := false

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			quit = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			if e.Repeat != 0 {
				continue
			}
			if e.Type == sdl.KEYDOWN {
				i.events = append(i.events, Event{
					Type: EventKeyDown,
					Key:  e.Keysym.Scancode,
				})
			} else if e.Type == sdl.KEYUP {
				i.events = append(i.events, Event{
					Type: EventKeyUp,
					Key:  e.Keysym.Scancode,
				})
			}

		case *sdl.MouseMotionEvent:
			i.events = append(i.events, Event{
				Type:   EventMouseMove,
				MouseX: int(e.X),
				MouseY: int(e.Y),
			})

		case *sdl.MouseButtonEvent:
			ev := Event{
				MouseX: int(e.X),
				MouseY: int(e.Y),
				Button: button(e.Button),
			}
			if e.Type == sdl.MOUSEBUTTONDOWN {
				ev.Type = EventMouseDown
			} else {
				ev.Type = EventMouseUp
			}
			i.events = append(i.events, ev)

		case *sdl.MouseWheelEvent:
			dy := float32(e.Y)
			if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
				dy = -dy
			}
			i.events = append(i.events, Event{Type: EventMouseWheel, Wheel: dy})
		}
	}

	return quit
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// Commands returns the host commands for keys pressed since the last Update.
func (i *Input) Commands() []Command {
	var out []Command
	for _, e := range i.events {
		if e.Type != EventKeyDown {
			continue
		}
		if c := KeyCommand(e.Key); c.Action != ActionNone {
			out = append(out, c)
		}
	}
	return out
}

// Drive feeds pointer events from the last Update into p and o.
func (i *Input) Drive(p *camera.Pointer, o *camera.OrbitControls) {
	for _, e := range i.events {
		x, y := float32(e.MouseX), float32(e.MouseY)
		switch e.Type {
		case EventMouseDown:
			p.Press(e.Button, x, y)
		case EventMouseUp:
			p.Release(e.Button)
		case EventMouseMove:
			p.Move(o, x, y)
		case EventMouseWheel:
			p.Wheel(o, e.Wheel)
		}
	}
}

// IsKeyPressed checks if a specific key was pressed this frame.
func (i *Input) IsKeyPressed(scancode sdl.Scancode) bool {
	for _, e := range i.events {
		if e.Type == EventKeyDown && e.Key == scancode {
			return true
		}
	}
	return false
}
