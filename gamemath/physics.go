package gamemath

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// Approach moves current toward target by the given fraction of the gap,
// snapping once the gap is smaller than snap.
func Approach(current, target, fraction, snap float64) float64 {
	gap := target - current
	if gap < snap && gap > -snap {
		return target
	}
	return current + gap*fraction
}
