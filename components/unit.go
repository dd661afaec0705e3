package components

import (
	"github.com/automoto/eclipse-contract/config"
	"github.com/yohamta/donburi"
)

type UnitData struct {
	TypeName   string                 // "Ghoul", "Wisp", "Ward"
	TypeConfig *config.UnitTypeConfig // Cached reference to type configuration
	Speed      float64
	Cost       float64
	State      config.UnitState
}

var Unit = donburi.NewComponentType[UnitData]()
