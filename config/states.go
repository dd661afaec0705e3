package config

// MovementKind governs whether gravity applies to a unit and whether it chases the player.
type MovementKind int

const (
	Ground MovementKind = iota
	Flying
	Fixed
)

func (k MovementKind) String() string {
	switch k {
	case Ground:
		return "GROUND"
	case Flying:
		return "FLYING"
	case Fixed:
		return "FIXED"
	}
	return "UNKNOWN"
}

// UnitState is the AI state of a summoned unit.
type UnitState int

const (
	UnitIdle UnitState = iota // holding position near the player
	UnitMove                  // closing the distance to the player
	UnitDead                  // terminal; the unit is reaped at the end of the tick
)

func (s UnitState) String() string {
	switch s {
	case UnitIdle:
		return "IDLE"
	case UnitMove:
		return "MOVE"
	case UnitDead:
		return "DEAD"
	}
	return "UNKNOWN"
}
