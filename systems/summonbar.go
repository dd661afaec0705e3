package systems

import (
	"strconv"

	cfg "github.com/automoto/eclipse-contract/config"
	"github.com/automoto/eclipse-contract/render"
)

// SummonSlot is one clickable cell of the summon bar, in screen coordinates.
type SummonSlot struct {
	TypeName   string
	X, Y, W, H float64
}

// Contains reports whether the point lies inside the slot. The right and
// bottom edges are exclusive.
func (s SummonSlot) Contains(x, y float64) bool {
	return x >= s.X && x < s.X+s.W && y >= s.Y && y < s.Y+s.H
}

// SummonSlots lays out one slot per summonable type, centered horizontally
// near the bottom of a viewport of the given size.
func SummonSlots(width, height float64) []SummonSlot {
	bar := cfg.SummonBar
	n := float64(len(cfg.Units.Order))
	startX := (width - n*(bar.SlotSize+bar.Padding)) / 2
	y := height - bar.BottomOffset

	slots := make([]SummonSlot, len(cfg.Units.Order))
	for i, name := range cfg.Units.Order {
		slots[i] = SummonSlot{
			TypeName: name,
			X:        startX + float64(i)*(bar.SlotSize+bar.Padding),
			Y:        y,
			W:        bar.SlotSize,
			H:        bar.SlotSize,
		}
	}
	return slots
}

// SummonSlotAt returns the type whose slot contains the point, if any.
func SummonSlotAt(width, height, x, y float64) (string, bool) {
	for _, slot := range SummonSlots(width, height) {
		if slot.Contains(x, y) {
			return slot.TypeName, true
		}
	}
	return "", false
}

// DrawSummonBar draws each slot with the unit's color, cost and hotkey. The
// outline shows whether the given soul is enough to summon it. Expects screen
// coordinates.
func DrawSummonBar(s render.Surface, soul float64) {
	bar := cfg.SummonBar
	width, height := s.Size()
	for _, slot := range SummonSlots(width, height) {
		unitType := cfg.Units.Types[slot.TypeName]

		s.FillRect(slot.X, slot.Y, slot.W, slot.H, bar.SlotColor)
		outline := bar.UnaffordableColor
		if soul >= unitType.Cost {
			outline = bar.AffordableColor
		}
		s.StrokeRect(slot.X, slot.Y, slot.W, slot.H, bar.OutlineWidth, outline)

		inset := bar.IconInset
		s.FillRect(slot.X+inset, slot.Y+inset, slot.W-2*inset, slot.H-2*inset, unitType.Color)

		cost := strconv.FormatFloat(unitType.Cost, 'f', -1, 64)
		s.Label(cost, slot.X+bar.CostOffsetX, slot.Y+bar.CostOffsetY, bar.CostColor)
		s.Label(unitType.Hotkey, slot.X+bar.HotkeyOffsetX, slot.Y+bar.HotkeyOffsetY, bar.HotkeyColor)
	}
}
