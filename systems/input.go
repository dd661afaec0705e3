package systems

import (
	"github.com/automoto/eclipse-contract/components"
	cfg "github.com/automoto/eclipse-contract/config"
	"github.com/automoto/eclipse-contract/input"
)

// GetAction returns the ActionState for an action ID by checking every key
// bound to it. JustPressed is derived from the current vs previous tick.
func GetAction(in *input.State, id cfg.ActionID) components.ActionState {
	var state components.ActionState
	binding, ok := cfg.Input.Bindings[id]
	if !ok {
		return state
	}
	for _, code := range binding.Keys {
		if in.IsDown(code) {
			state.Pressed = true
		}
		if in.IsPressed(code) {
			state.JustPressed = true
		}
	}
	return state
}
