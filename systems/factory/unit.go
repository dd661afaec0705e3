package factory

import (
	"log"

	"github.com/automoto/eclipse-contract/archetypes"
	"github.com/automoto/eclipse-contract/components"
	cfg "github.com/automoto/eclipse-contract/config"
	"github.com/automoto/eclipse-contract/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// DefaultUnitType is used when a requested unit type is not in the table.
const DefaultUnitType = "Ghoul"

// UnitType looks up an archetype in the summon table, falling back to the
// default type for unknown names.
func UnitType(typeName string) (string, cfg.UnitTypeConfig) {
	unitType, exists := cfg.Units.Types[typeName]
	if !exists {
		log.Printf("Unknown unit type %q, using %s", typeName, DefaultUnitType)
		typeName = DefaultUnitType
		unitType = cfg.Units.Types[typeName]
	}
	return typeName, unitType
}

func CreateUnit(w donburi.World, space *resolv.Space, typeName string, x, y float64) *donburi.Entry {
	typeName, unitType := UnitType(typeName)

	unit := archetypes.Unit.Spawn(w)

	obj := resolv.NewObject(x, y, unitType.Width, unitType.Height, tags.ResolvUnit)
	obj.SetShape(resolv.NewRectangle(0, 0, unitType.Width, unitType.Height))
	obj.Data = unit
	components.Body.SetValue(unit, components.BodyData{
		Object:   obj,
		Grounded: true,
	})
	components.Unit.SetValue(unit, components.UnitData{
		TypeName:   typeName,
		TypeConfig: &unitType,
		Speed:      unitType.Speed,
		Cost:       unitType.Cost,
		State:      cfg.UnitIdle,
	})
	components.Movement.SetValue(unit, components.MovementData{
		Kind: unitType.Kind,
	})
	components.Health.SetValue(unit, components.HealthData{
		Current: unitType.Health,
		Max:     unitType.Health,
	})
	components.Appearance.SetValue(unit, components.AppearanceData{
		Color: unitType.Color,
	})

	if space != nil {
		space.Add(obj)
	}
	return unit
}
