package furnace

import "math"

// Manufacturing increments, mm except the voltage step.
const (
	IncSecondaryV = 1.0
	IncElectrode  = 50.0
	IncPoleCircle = 50.0
	IncHearthDia  = 100.0
	IncHearthDep  = 100.0
)

// RoundTo snaps v to the nearest multiple of inc, ties rounding away from
// zero. Idempotent: a value already on the grid maps to itself.
func RoundTo(v, inc float64) float64 {
	return math.Round(v/inc) * inc
}
