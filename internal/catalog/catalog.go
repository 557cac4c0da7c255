// Package catalog holds the read-only reference data the calculators draw
// from: empirical furnace coefficients per smelted product, shaft steel
// grades and ISO metric thread dimensions. Presets can be extended or
// overridden from an ini file at startup; request-level overrides never
// write back here.
package catalog

import (
	"fmt"

	"gopkg.in/ini.v1"
)

// CoefficientSet is one empirical preset for submerged-arc furnace sizing.
// All five factors are strictly positive for every shipped preset.
type CoefficientSet struct {
	Ke float64 `json:"ke"` // secondary voltage factor
	J  float64 `json:"j"`  // electrode current density, A/cm2
	Ky float64 `json:"ky"` // pole circle factor
	Ki float64 `json:"ki"` // hearth inner diameter factor
	Kh float64 `json:"kh"` // hearth depth factor

	DensityKGM3 float64 `json:"density_kg_m3,omitempty"` // molten product density, optional
}

// Material is a shaft steel grade from the design handbook.
type Material struct {
	SigmaB float64 `json:"sigma_b_mpa"` // tensile strength
	SigmaS float64 `json:"sigma_s_mpa"` // yield strength
	HB     float64 `json:"hb"`
	A0     float64 `json:"a0"` // shaft diameter coefficient
	E      float64 `json:"e_mpa"`
}

// Thread is one row of the ISO metric coarse thread table.
type Thread struct {
	D  float64 `json:"d_mm"`
	P  float64 `json:"pitch_mm"`
	D2 float64 `json:"d2_mm"`
	As float64 `json:"stress_area_mm2"`
}

var furnaceNames = []string{
	"SiMn", "FeCr", "FeNi-RKEF", "FeSi75", "CaC2", "Si", "custom",
}

var furnacePresets = map[string]CoefficientSet{
	"SiMn":      {Ke: 6.3, J: 5.5, Ky: 2.7, Ki: 6.4, Kh: 2.5},
	"FeCr":      {Ke: 6.8, J: 5.7, Ky: 2.65, Ki: 6.3, Kh: 2.6},
	"FeNi-RKEF": {Ke: 12.0, J: 4.0, Ky: 3.6, Ki: 10.0, Kh: 2.9},
	"FeSi75":    {Ke: 6.8, J: 6.5, Ky: 2.25, Ki: 5.8, Kh: 2.2},
	"CaC2":      {Ke: 6.5, J: 7.0, Ky: 2.7, Ki: 6.4, Kh: 2.2},
	"Si":        {Ke: 7.5, J: 6.0, Ky: 2.4, Ki: 6.0, Kh: 2.3},
	"custom":    {Ke: 6.5, J: 5.5, Ky: 2.7, Ki: 6.5, Kh: 2.5},
}

var materialNames = []string{
	"45 steel (QT)", "40Cr (QT)", "35SiMn (QT)", "Q235-A", "20CrMnTi (carburized)", "custom",
}

var materials = map[string]Material{
	"45 steel (QT)":         {SigmaB: 600, SigmaS: 355, HB: 240, A0: 118, E: 206000},
	"40Cr (QT)":             {SigmaB: 785, SigmaS: 540, HB: 260, A0: 110, E: 211000},
	"35SiMn (QT)":           {SigmaB: 885, SigmaS: 735, HB: 270, A0: 105, E: 210000},
	"Q235-A":                {SigmaB: 370, SigmaS: 235, HB: 140, A0: 130, E: 200000},
	"20CrMnTi (carburized)": {SigmaB: 1080, SigmaS: 835, HB: 600, A0: 100, E: 212000},
	"custom":                {SigmaB: 500, SigmaS: 300, HB: 200, A0: 120, E: 206000},
}

var threads = []Thread{
	{D: 6, P: 1, D2: 5.350, As: 20.1},
	{D: 8, P: 1.25, D2: 7.188, As: 36.6},
	{D: 10, P: 1.5, D2: 9.026, As: 58.0},
	{D: 12, P: 1.75, D2: 10.863, As: 84.3},
	{D: 16, P: 2, D2: 14.701, As: 157},
	{D: 20, P: 2.5, D2: 18.376, As: 245},
	{D: 24, P: 3, D2: 22.051, As: 353},
	{D: 30, P: 3.5, D2: 27.727, As: 561},
	{D: 36, P: 4, D2: 33.402, As: 817},
	{D: 42, P: 4.5, D2: 39.077, As: 1120},
	{D: 48, P: 5, D2: 44.752, As: 1470},
}

// Furnace returns the coefficient preset for a smelted product.
func Furnace(name string) (CoefficientSet, error) {
	c, ok := furnacePresets[name]
	if !ok {
		return CoefficientSet{}, fmt.Errorf("unknown furnace preset %q", name)
	}
	return c, nil
}

// FurnaceNames returns preset names in catalog order.
func FurnaceNames() []string {
	out := make([]string, len(furnaceNames))
	copy(out, furnaceNames)
	return out
}

// MaterialByName returns a shaft steel grade.
func MaterialByName(name string) (Material, error) {
	m, ok := materials[name]
	if !ok {
		return Material{}, fmt.Errorf("unknown material %q", name)
	}
	return m, nil
}

// MaterialNames returns steel grade names in handbook order.
func MaterialNames() []string {
	out := make([]string, len(materialNames))
	copy(out, materialNames)
	return out
}

// ThreadByDiameter returns the thread row for a nominal diameter.
func ThreadByDiameter(d float64) (Thread, error) {
	for _, t := range threads {
		if t.D == d {
			return t, nil
		}
	}
	return Thread{}, fmt.Errorf("no thread table entry for M%.0f", d)
}

// Threads returns the full thread table.
func Threads() []Thread {
	out := make([]Thread, len(threads))
	copy(out, threads)
	return out
}

// LoadOverlay merges furnace presets from an ini file. Each [furnace.<name>]
// section overrides the named preset, or adds a new one appended after the
// built-ins. Zero or missing keys keep the built-in value.
func LoadOverlay(path string) error {
	file, err := ini.Load(path)
	if err != nil {
		return fmt.Errorf("catalog overlay: %w", err)
	}
	for _, sec := range file.Sections() {
		name := sec.Name()
		const prefix = "furnace."
		if len(name) <= len(prefix) || name[:len(prefix)] != prefix {
			continue
		}
		name = name[len(prefix):]
		base, known := furnacePresets[name]
		base = CoefficientSet{
			Ke:          sec.Key("Ke").MustFloat64(base.Ke),
			J:           sec.Key("J").MustFloat64(base.J),
			Ky:          sec.Key("Ky").MustFloat64(base.Ky),
			Ki:          sec.Key("Ki").MustFloat64(base.Ki),
			Kh:          sec.Key("Kh").MustFloat64(base.Kh),
			DensityKGM3: sec.Key("Density").MustFloat64(base.DensityKGM3),
		}
		furnacePresets[name] = base
		if !known {
			furnaceNames = append(furnaceNames, name)
		}
	}
	return nil
}
