package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

type AppearanceData struct {
	Color color.RGBA
}

var Appearance = donburi.NewComponentType[AppearanceData]()
