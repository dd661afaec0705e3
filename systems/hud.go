package systems

import (
	"strconv"

	cfg "github.com/automoto/eclipse-contract/config"
	"github.com/automoto/eclipse-contract/render"
)

// HUD shows the player's soul in the top-left corner. It receives the value
// once per tick and draws the last one it was given.
type HUD struct {
	soul int
	set  bool
}

func (h *HUD) SetSoul(soul int) {
	h.soul = soul
	h.set = true
}

func (h *HUD) Soul() int {
	return h.soul
}

// DrawHUD draws the soul readout. Nothing is drawn before the first update.
func (h *HUD) DrawHUD(s render.Surface) {
	if !h.set {
		return
	}
	s.Text("Soul: "+strconv.Itoa(h.soul), cfg.Render.HUDX, cfg.Render.HUDY, cfg.Render.TextColor)
}
