package config

import "github.com/automoto/eclipse-contract/input"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionJump
	ActionSummonGhoul
	ActionSummonWisp
	ActionSummonWard
	ActionStart
	ActionMenu
)

// InputBinding represents the key codes bound to an action
type InputBinding struct {
	Keys []input.Code
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionMoveLeft:    {Keys: []input.Code{"KeyA", "ArrowLeft"}},
			ActionMoveRight:   {Keys: []input.Code{"KeyD", "ArrowRight"}},
			ActionMoveUp:      {Keys: []input.Code{"KeyW", "ArrowUp"}},
			ActionMoveDown:    {Keys: []input.Code{"KeyS", "ArrowDown"}},
			ActionJump:        {Keys: []input.Code{"Space"}},
			ActionSummonGhoul: {Keys: []input.Code{"Digit1"}},
			ActionSummonWisp:  {Keys: []input.Code{"Digit2"}},
			ActionSummonWard:  {Keys: []input.Code{"Digit3"}},
			ActionStart:       {Keys: []input.Code{"Enter"}},
			ActionMenu:        {Keys: []input.Code{"Escape"}},
		},
	}
}
