package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Overrides is the optional YAML file that tunes the defaults set in init.
// Every field is optional; absent fields keep their default.
type Overrides struct {
	Window struct {
		Width  *int `yaml:"width"`
		Height *int `yaml:"height"`
	} `yaml:"window"`

	Physics struct {
		Gravity      *float64 `yaml:"gravity"`
		Friction     *float64 `yaml:"friction"`
		MinY         *float64 `yaml:"min_y"`
		BottomMargin *float64 `yaml:"bottom_margin"`
	} `yaml:"physics"`

	Player struct {
		Speed     *float64 `yaml:"speed"`
		MaxSpeed  *float64 `yaml:"max_speed"`
		JumpForce *float64 `yaml:"jump_force"`
		Health    *int     `yaml:"health"`
		Soul      *float64 `yaml:"soul"`
		MaxSoul   *float64 `yaml:"max_soul"`
	} `yaml:"player"`

	AI struct {
		FollowDistance *float64 `yaml:"follow_distance"`
		HoverHeight    *float64 `yaml:"hover_height"`
	} `yaml:"ai"`

	Units map[string]UnitOverride `yaml:"units"`
}

// UnitOverride tunes one archetype of the summon table
type UnitOverride struct {
	Speed  *float64 `yaml:"speed"`
	Health *int     `yaml:"health"`
	Cost   *float64 `yaml:"cost"`
}

// Load reads an override file from disk.
func Load(path string) (*Overrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	o := &Overrides{}
	if err := yaml.Unmarshal(data, o); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return o, nil
}

// Apply writes the overrides into the global configuration. The overrides are
// validated as a whole first; on error nothing is changed.
func Apply(o *Overrides) error {
	if o == nil {
		return nil
	}
	if err := o.validate(); err != nil {
		return err
	}

	setInt(&C.Width, o.Window.Width)
	setInt(&C.Height, o.Window.Height)

	setFloat(&Physics.Gravity, o.Physics.Gravity)
	setFloat(&Physics.Friction, o.Physics.Friction)
	setFloat(&Physics.MinY, o.Physics.MinY)
	setFloat(&Physics.BottomMargin, o.Physics.BottomMargin)

	setFloat(&Player.Speed, o.Player.Speed)
	setFloat(&Player.MaxSpeed, o.Player.MaxSpeed)
	setFloat(&Player.JumpForce, o.Player.JumpForce)
	setFloat(&Player.Soul, o.Player.Soul)
	setFloat(&Player.MaxSoul, o.Player.MaxSoul)
	setInt(&Player.Health, o.Player.Health)

	setFloat(&AI.FollowDistance, o.AI.FollowDistance)
	setFloat(&AI.HoverHeight, o.AI.HoverHeight)

	for name, u := range o.Units {
		t := Units.Types[name]
		setFloat(&t.Speed, u.Speed)
		setFloat(&t.Cost, u.Cost)
		setInt(&t.Health, u.Health)
		Units.Types[name] = t
	}
	return nil
}

func (o *Overrides) validate() error {
	if o.Window.Width != nil && *o.Window.Width <= 0 {
		return fmt.Errorf("window width must be positive, got %d", *o.Window.Width)
	}
	if o.Window.Height != nil && *o.Window.Height <= 0 {
		return fmt.Errorf("window height must be positive, got %d", *o.Window.Height)
	}
	if o.Physics.Friction != nil && (*o.Physics.Friction < 0 || *o.Physics.Friction >= 1) {
		return fmt.Errorf("friction must be in [0, 1), got %v", *o.Physics.Friction)
	}
	for name := range o.Units {
		if _, ok := Units.Types[name]; !ok {
			return fmt.Errorf("unknown unit type %q", name)
		}
	}
	return nil
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}
