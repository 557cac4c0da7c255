// Package furnace sizes a submerged-arc smelting furnace from transformer
// capacity and empirical coefficients. The theoretical values come straight
// from the closed-form handbook formulas; the working design state snaps
// them to manufacturing increments and lets the designer override single
// dimensions for as-built matching.
package furnace

import (
	"fmt"
	"math"

	"Smeltline/internal/catalog"
)

const sqrt3 = 1.732

// Allowance above the hearth for roof, hood and charging gear, mm.
const shellHeadroomMM = 2000

// Input is one design case. All values are strictly positive; Calculate and
// Session.Reset reject anything else before the formulas run.
type Input struct {
	CapacityMVA float64   `json:"capacity_mva"`
	PrimaryKV   float64   `json:"primary_kv"`
	LiningMM    float64   `json:"lining_mm"`
	Conductor   Conductor `json:"conductor"`
}

// Conductor is the per-phase conductive system layout on the electrode
// holder: copper contact tiles and the cooling tubes feeding them.
type Conductor struct {
	TilesPerPhase int     `json:"tiles_per_phase"`
	TubeDiaMM     float64 `json:"tube_dia_mm"`
	TubeWallMM    float64 `json:"tube_wall_mm"`
}

// TubesPerPhase follows the shop rule: two tubes serve each tile.
func (c Conductor) TubesPerPhase() int { return 2 * c.TilesPerPhase }

func (c Conductor) withDefaults() Conductor {
	if c.TilesPerPhase <= 0 {
		c.TilesPerPhase = 8
	}
	if c.TubeDiaMM <= 0 {
		c.TubeDiaMM = 70
	}
	if c.TubeWallMM <= 0 {
		c.TubeWallMM = 12.5
	}
	return c
}

// Parameters is a full set of furnace dimensions. The same shape is used for
// the exact theoretical values and for the engineering-rounded working state.
type Parameters struct {
	PrimaryA     float64 `json:"i1_a"`
	SecondaryV   float64 `json:"u2_v"`
	SecondaryA   float64 `json:"i2_a"`
	ElectrodeMM  float64 `json:"de_mm"`
	PoleCircleMM float64 `json:"dc_mm"`
	HearthDiaMM  float64 `json:"di_mm"`
	HearthDepMM  float64 `json:"hh_mm"`
	ShellDiaMM   float64 `json:"shell_id_mm"`
	ShellHMM     float64 `json:"shell_h_mm"`
}

func (in Input) validate() error {
	if in.CapacityMVA <= 0 || in.PrimaryKV <= 0 || in.LiningMM <= 0 {
		return fmt.Errorf("invalid input")
	}
	return nil
}

func validateCoefficients(c catalog.CoefficientSet) error {
	if c.Ke <= 0 || c.J <= 0 || c.Ky <= 0 || c.Ki <= 0 || c.Kh <= 0 {
		return fmt.Errorf("invalid coefficients")
	}
	return nil
}

// Theoretical computes the exact design quantities. Pure: identical inputs
// give bitwise-identical results.
func Theoretical(in Input, c catalog.CoefficientSet) Parameters {
	pKVA := in.CapacityMVA * 1000

	u2 := c.Ke * math.Cbrt(pKVA)
	i1 := pKVA * 1000 / (sqrt3 * in.PrimaryKV * 1000)
	i2 := pKVA * 1000 / (sqrt3 * u2)

	// Back-solve electrode cross-section from current density, cm -> mm.
	de := 10 * math.Sqrt(i2/(c.J*math.Pi/4))
	di := c.Ki * de
	hh := c.Kh * de

	return Parameters{
		PrimaryA:     i1,
		SecondaryV:   u2,
		SecondaryA:   i2,
		ElectrodeMM:  de,
		PoleCircleMM: c.Ky * de,
		HearthDiaMM:  di,
		HearthDepMM:  hh,
		ShellDiaMM:   di + 2*in.LiningMM,
		ShellHMM:     hh + shellHeadroomMM,
	}
}

// Design pairs the exact values with their rounded image.
type Design struct {
	Theoretical Parameters `json:"theoretical"`
	Rounded     Parameters `json:"rounded"`
}

// Size runs one complete sizing pass: theoretical values, then the rounded
// working set derived from the rounded electrode diameter.
func Size(in Input, c catalog.CoefficientSet) (Design, error) {
	if err := in.validate(); err != nil {
		return Design{}, err
	}
	if err := validateCoefficients(c); err != nil {
		return Design{}, err
	}
	theo := Theoretical(in, c)
	return Design{Theoretical: theo, Rounded: roundFrom(theo, in, c)}, nil
}

// roundFrom builds the rounded set. Every structural dimension is recomputed
// from the already-rounded electrode diameter, not from its own theoretical
// value, so an override of the electrode later lands on the same numbers.
func roundFrom(theo Parameters, in Input, c catalog.CoefficientSet) Parameters {
	p := Parameters{
		PrimaryA:    theo.PrimaryA,
		SecondaryV:  RoundTo(theo.SecondaryV, IncSecondaryV),
		ElectrodeMM: RoundTo(theo.ElectrodeMM, IncElectrode),
	}
	cascade(&p, in, c)
	return p
}

// cascade recomputes everything downstream of the electrode diameter.
// Shell dimensions are additive over rounded inputs and are never re-snapped.
func cascade(p *Parameters, in Input, c catalog.CoefficientSet) {
	p.PoleCircleMM = RoundTo(p.ElectrodeMM*c.Ky, IncPoleCircle)
	p.HearthDiaMM = RoundTo(p.ElectrodeMM*c.Ki, IncHearthDia)
	p.HearthDepMM = RoundTo(p.ElectrodeMM*c.Kh, IncHearthDep)
	p.ShellDiaMM = p.HearthDiaMM + 2*in.LiningMM
	p.ShellHMM = p.HearthDepMM + shellHeadroomMM
	p.SecondaryA = secondaryCurrent(in.CapacityMVA, p.SecondaryV)
}

func secondaryCurrent(capacityMVA, u2 float64) float64 {
	return capacityMVA * 1000 * 1000 / (sqrt3 * u2)
}
