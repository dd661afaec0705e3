// Package input buffers device events into a per-tick snapshot of held keys and
// pointer state, with edge detection against the previous tick.
package input

import "github.com/ErikKalkoken/go-set"

// Code is a stable key identifier such as "KeyA", "ArrowLeft", "Space" or "Digit1".
type Code string

// State stores the current and previous tick's held keys and pointer state.
// Device events only ever touch the current snapshot; AdvanceFrame rolls it into
// the previous one and must run once per tick after all game logic has read it.
type State struct {
	current  set.Set[Code]
	previous set.Set[Code]

	pointerX, pointerY float64
	pointerDown        bool
	pointerDownPrev    bool
}

// NewState returns an empty input state with nothing held.
func NewState() *State {
	return &State{}
}

// KeyDown records that a key is held.
func (s *State) KeyDown(code Code) {
	s.current.Add(code)
}

// KeyUp records that a key was released.
func (s *State) KeyUp(code Code) {
	s.current.Delete(code)
}

// SetKey records the level state of a key as seen by a poller.
func (s *State) SetKey(code Code, down bool) {
	if down {
		s.KeyDown(code)
	} else {
		s.KeyUp(code)
	}
}

func (s *State) PointerMove(x, y float64) {
	s.pointerX, s.pointerY = x, y
}

func (s *State) PointerPress() {
	s.pointerDown = true
}

func (s *State) PointerRelease() {
	s.pointerDown = false
}

// IsDown reports whether the key is held. Unknown codes read as not held.
func (s *State) IsDown(code Code) bool {
	return s.current.Contains(code)
}

// IsPressed reports whether the key went from not held to held this tick.
func (s *State) IsPressed(code Code) bool {
	return s.current.Contains(code) && !s.previous.Contains(code)
}

func (s *State) PointerDown() bool {
	return s.pointerDown
}

// PointerClicked reports whether the pointer went down this tick.
func (s *State) PointerClicked() bool {
	return s.pointerDown && !s.pointerDownPrev
}

// Pointer returns the last known pointer coordinates.
func (s *State) Pointer() (x, y float64) {
	return s.pointerX, s.pointerY
}

// AdvanceFrame makes the current snapshot the previous one for the next tick.
func (s *State) AdvanceFrame() {
	s.previous = s.current.Clone()
	s.pointerDownPrev = s.pointerDown
}
