package bolt

import (
	"fmt"
	"math"
	"strconv"

	"Smeltline/internal/catalog"
)

type Input struct {
	LoadN     float64 `json:"load_n"`
	SizeMM    float64 `json:"size_mm"` // nominal thread diameter, e.g. 10 for M10
	Grade     string  `json:"grade"`   // property class, e.g. "8.8"
	Preloaded bool    `json:"preloaded"`
}

type Result struct {
	StressAreaMM2 float64 `json:"stress_area_mm2"`
	YieldMPa      float64 `json:"yield_mpa"`
	StressMPa     float64 `json:"stress_mpa"`
	SafetyFactor  float64 `json:"safety_factor"`
	Verdict       string  `json:"verdict"`
	Notes         string  `json:"notes"`
}

// preloadFactor covers torsion from tightening when the preload is
// controlled.
const preloadFactor = 1.3

// gradeStrengths decodes a property class: the integer part gives the
// tensile strength in hundreds of MPa, the fraction the yield ratio.
func gradeStrengths(grade string) (sigmaB, sigmaS float64, err error) {
	v, err := strconv.ParseFloat(grade, 64)
	if err != nil || v <= 0 {
		return 0, 0, fmt.Errorf("invalid grade %q", grade)
	}
	whole := math.Trunc(v)
	frac := math.Round((v-whole)*10) / 10
	sigmaB = whole * 100
	sigmaS = sigmaB * frac
	if sigmaS <= 0 {
		return 0, 0, fmt.Errorf("invalid grade %q", grade)
	}
	return sigmaB, sigmaS, nil
}

// Calculate checks a bolt in axial tension against its property class.
func Calculate(in Input) (Result, error) {
	if in.LoadN <= 0 || in.SizeMM <= 0 {
		return Result{}, fmt.Errorf("invalid input")
	}
	if in.Grade == "" {
		in.Grade = "8.8"
	}
	th, err := catalog.ThreadByDiameter(in.SizeMM)
	if err != nil {
		return Result{}, err
	}
	_, sigmaS, err := gradeStrengths(in.Grade)
	if err != nil {
		return Result{}, err
	}

	load := in.LoadN
	if in.Preloaded {
		load *= preloadFactor
	}
	stress := load / th.As
	safety := sigmaS / stress

	verdict := "ok"
	switch {
	case safety < 1.5:
		verdict = "understrength"
	case safety > 5:
		verdict = "oversized"
	}

	return Result{
		StressAreaMM2: th.As,
		YieldMPa:      sigmaS,
		StressMPa:     stress,
		SafetyFactor:  safety,
		Verdict:       verdict,
		Notes:         "Axial tension check; preload adds a 1.3 torsion factor.",
	}, nil
}
