package factory

import (
	"github.com/automoto/eclipse-contract/archetypes"
	"github.com/automoto/eclipse-contract/components"
	"github.com/yohamta/donburi"
)

func CreateCamera(w donburi.World) *donburi.Entry {
	camera := archetypes.Camera.Spawn(w)
	components.Camera.Set(camera, &components.CameraData{})
	return camera
}
