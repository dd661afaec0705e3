package factory

import (
	cfg "github.com/automoto/eclipse-contract/config"
	"github.com/solarlune/resolv"
)

// CreateSpace builds the collision space every body footprint is registered in.
func CreateSpace() *resolv.Space {
	return resolv.NewSpace(cfg.Space.Width, cfg.Space.Height, cfg.Space.CellWidth, cfg.Space.CellHeight)
}
