package components

import (
	"github.com/automoto/eclipse-contract/config"
	"github.com/yohamta/donburi"
)

type MovementData struct {
	Kind config.MovementKind
}

var Movement = donburi.NewComponentType[MovementData]()
