// Package ladle sizes a molten-metal ladle for a target working volume.
// The vessel is a truncated cone tied to its height through a fixed
// diameter-to-height ratio, so no closed form gives the height directly;
// it is solved by bisection on the strictly increasing cavity volume.
package ladle

import (
	"fmt"
	"math"
)

// Bisection bracket for the total height, m. Ladles outside this range do
// not occur in the smelting shop; an unreachable target volume clamps to
// the bracket edge rather than failing.
const (
	heightLo = 0.5
	heightHi = 10.0
)

const bisectIterations = 50

type Input struct {
	TargetVolumeM3 float64 `json:"target_volume_m3"`
	DensityKGM3    float64 `json:"density_kg_m3"`
	FreeboardMM    float64 `json:"freeboard_mm"`
	WallMM         float64 `json:"wall_mm"`
	BottomMM       float64 `json:"bottom_mm"`
	TaperDeg       float64 `json:"taper_deg"`
	RatioDH        float64 `json:"diameter_height_ratio"`
}

type Result struct {
	HeightM        float64 `json:"height_m"`
	TopDiameterM   float64 `json:"top_diameter_m"`
	BotDiameterM   float64 `json:"bottom_diameter_m"`
	CavityVolumeM3 float64 `json:"cavity_volume_m3"`
	LoadMassKG     float64 `json:"load_mass_kg"`
	Notes          string  `json:"notes"`
}

// geometry holds the shape constants in metres.
type geometry struct {
	ratio     float64
	tanTaper  float64
	wall      float64
	bottom    float64
	freeboard float64
}

// outerDiameters returns top and bottom outer diameters at height h.
func (g geometry) outerDiameters(h float64) (top, bot float64) {
	top = g.ratio * h
	bot = top - 2*h*g.tanTaper
	return top, bot
}

// cavityVolume is the working (liquid) volume at total height h. Degenerate
// radii or a non-positive cavity height count as zero volume so bisection
// keeps moving toward larger heights instead of failing.
func (g geometry) cavityVolume(h float64) float64 {
	top, bot := g.outerDiameters(h)
	r2 := top/2 - g.wall
	r1 := bot/2 - g.wall
	hc := h - g.freeboard - g.bottom
	if r1 <= 0 || r2 <= 0 || hc <= 0 {
		return 0
	}
	return math.Pi * hc / 3 * (r1*r1 + r1*r2 + r2*r2)
}

// SolveHeight finds the total height whose cavity volume matches the target.
// Fifty halvings of the bracket leave the answer well under a millimetre of
// resolution; no separate convergence check is needed.
func SolveHeight(in Input) (Result, error) {
	if in.TargetVolumeM3 <= 0 || in.WallMM <= 0 || in.BottomMM <= 0 {
		return Result{}, fmt.Errorf("invalid input")
	}
	if in.DensityKGM3 <= 0 {
		in.DensityKGM3 = 7000 // liquid steel
	}
	if in.RatioDH <= 0 {
		in.RatioDH = 1.05
	}
	if in.TaperDeg <= 0 {
		in.TaperDeg = 5
	}
	if in.FreeboardMM <= 0 {
		in.FreeboardMM = 300
	}

	g := geometry{
		ratio:     in.RatioDH,
		tanTaper:  math.Tan(in.TaperDeg * math.Pi / 180),
		wall:      in.WallMM / 1000,
		bottom:    in.BottomMM / 1000,
		freeboard: in.FreeboardMM / 1000,
	}

	lo, hi := heightLo, heightHi
	for i := 0; i < bisectIterations; i++ {
		mid := (lo + hi) / 2
		if g.cavityVolume(mid) < in.TargetVolumeM3 {
			lo = mid
		} else {
			hi = mid
		}
	}
	h := (lo + hi) / 2

	top, bot := g.outerDiameters(h)
	res := Result{
		HeightM:        h,
		TopDiameterM:   top,
		BotDiameterM:   bot,
		CavityVolumeM3: g.cavityVolume(h),
		LoadMassKG:     in.TargetVolumeM3 * in.DensityKGM3,
		Notes:          "Frustum ladle sized by bisection on cavity volume.",
	}
	return res, nil
}
