package components

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed     bool // Currently held down
	JustPressed bool // Pressed this tick
}
