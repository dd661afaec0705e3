package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current int
	Max     int
}

// Ratio returns Current/Max clamped to [0, 1].
func (h *HealthData) Ratio() float64 {
	if h.Max <= 0 {
		return 0
	}
	r := float64(h.Current) / float64(h.Max)
	return min(max(r, 0), 1)
}

// Adjust adds delta to Current, keeping it within [0, Max].
func (h *HealthData) Adjust(delta int) {
	h.Current = min(max(h.Current+delta, 0), h.Max)
}

var Health = donburi.NewComponentType[HealthData]()
