package shaft

import (
	"fmt"
	"math"

	"Smeltline/internal/catalog"
)

type Input struct {
	PowerKW  float64 `json:"power_kw"`
	RPM      float64 `json:"rpm"`
	Material string  `json:"material"`
	A0       float64 `json:"a0,omitempty"` // overrides the grade's diameter coefficient
}

type KeyRec struct {
	WidthMM  float64 `json:"width_mm"`
	HeightMM float64 `json:"height_mm"`
	DepthMM  float64 `json:"shaft_depth_mm"`
}

type Result struct {
	TorqueNM    float64 `json:"torque_nm"`
	MinDiaMM    float64 `json:"min_diameter_mm"`
	DesignDiaMM float64 `json:"design_diameter_mm"`
	Key         KeyRec  `json:"key"`
	Notes       string  `json:"notes"`
}

// keyRow is one band of the flat key table: shafts up to MaxDia take b x h.
type keyRow struct {
	MaxDia float64
	B, H   float64
}

var keyTable = []keyRow{
	{12, 4, 4}, {17, 5, 5}, {22, 6, 6}, {30, 8, 7}, {38, 10, 8},
	{44, 12, 8}, {50, 14, 9}, {58, 16, 10}, {65, 18, 11}, {75, 20, 12},
	{85, 22, 14},
}

// RecommendKey picks a flat key section for a shaft diameter, mm.
func RecommendKey(d float64) KeyRec {
	b, h := 25.0, 14.0
	for _, row := range keyTable {
		if d <= row.MaxDia {
			b, h = row.B, row.H
			break
		}
	}
	t1 := h/2 + 0.1
	if h > 6 {
		t1 = h/2 + 0.2
	}
	return KeyRec{WidthMM: b, HeightMM: h, DepthMM: t1}
}

// Calculate estimates the minimum shaft diameter from pure torsion, widens
// it for the keyway and snaps up to a 5 mm step.
func Calculate(in Input) (Result, error) {
	if in.PowerKW <= 0 || in.RPM <= 0 {
		return Result{}, fmt.Errorf("invalid input")
	}
	if in.Material == "" {
		in.Material = "45 steel (QT)"
	}
	m, err := catalog.MaterialByName(in.Material)
	if err != nil {
		return Result{}, err
	}
	if in.A0 > 0 {
		m.A0 = in.A0
	}

	dMin := m.A0 * math.Cbrt(in.PowerKW/in.RPM)
	dFinal := math.Ceil(dMin*1.05/5) * 5

	return Result{
		TorqueNM:    9550 * in.PowerKW / in.RPM,
		MinDiaMM:    dMin,
		DesignDiaMM: dFinal,
		Key:         RecommendKey(dFinal),
		Notes:       "Torsion-only estimate, keyway weakening included.",
	}, nil
}
