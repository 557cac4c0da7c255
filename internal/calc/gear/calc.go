package gear

import (
	"fmt"
	"math"
)

type Input struct {
	TorqueNM float64 `json:"torque_nm"`
	Ratio    float64 `json:"ratio"`
	HelixDeg float64 `json:"helix_deg"`
	HardFace bool    `json:"hard_face"`
}

type Result struct {
	D1MinMM       float64 `json:"d1_min_mm"`
	ModuleMM      float64 `json:"module_mm"`
	CentreDistMM  float64 `json:"centre_distance_mm"`
	Z1            int     `json:"z1"`
	Z2            int     `json:"z2"`
	FaceWidthMM   float64 `json:"face_width_mm"`
	ContactSigmaH float64 `json:"sigma_h_limit_mpa"`
	Notes         string  `json:"notes"`
}

var standardModules = []float64{1.5, 2, 2.5, 3, 4, 5, 6, 8, 10}

// Contact strength constants for steel-on-steel spur pairs.
const (
	kDynamic = 1.2
	zElastic = 189.8
	zZone    = 2.5
	phiWidth = 1.0 // face width over pinion diameter
	z1Pinion = 20
)

// Calculate back-solves the pinion diameter from the Hertzian contact limit
// and snaps the module up to the next standard size.
func Calculate(in Input) (Result, error) {
	if in.TorqueNM <= 0 || in.Ratio <= 0 {
		return Result{}, fmt.Errorf("invalid input")
	}

	sigmaH := 600.0
	if in.HardFace {
		sigmaH = 1100.0
	}

	factor := math.Pow(zElastic*zZone/sigmaH, 2)
	d1 := math.Cbrt(2 * kDynamic * in.TorqueNM * 1000 * (in.Ratio + 1) / in.Ratio * factor / phiWidth)

	mCalc := d1 / z1Pinion
	mFinal := standardModules[len(standardModules)-1]
	for _, m := range standardModules {
		if m >= mCalc {
			mFinal = m
			break
		}
	}

	a := mFinal * z1Pinion * (1 + in.Ratio) / (2 * math.Cos(in.HelixDeg*math.Pi/180))

	return Result{
		D1MinMM:       d1,
		ModuleMM:      mFinal,
		CentreDistMM:  a,
		Z1:            z1Pinion,
		Z2:            int(z1Pinion * in.Ratio),
		FaceWidthMM:   math.Trunc(d1 * phiWidth),
		ContactSigmaH: sigmaH,
		Notes:         "Module sized from contact strength, z1=20 assumed.",
	}, nil
}
