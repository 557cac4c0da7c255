package ladle

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func baseInput() Input {
	return Input{
		TargetVolumeM3: 4.5,
		DensityKGM3:    7000,
		FreeboardMM:    300,
		WallMM:         160,
		BottomMM:       230,
		TaperDeg:       5,
		RatioDH:        1.05,
	}
}

func TestSolveHeightScenario(t *testing.T) {
	res, err := SolveHeight(baseInput())
	require.NoError(t, err)
	require.Greater(t, res.HeightM, 2.0)
	require.Less(t, res.HeightM, 4.0)
	require.Equal(t, 4.5*7000, res.LoadMassKG)
	require.Equal(t, 1.05*res.HeightM, res.TopDiameterM)
	require.Less(t, res.BotDiameterM, res.TopDiameterM)
}

func TestSolveHeightRoundTrip(t *testing.T) {
	in := baseInput()
	res, err := SolveHeight(in)
	require.NoError(t, err)
	require.InEpsilon(t, in.TargetVolumeM3, res.CavityVolumeM3, 1e-3)
}

func TestSolveHeightMonotone(t *testing.T) {
	in := baseInput()
	prev := 0.0
	for _, v := range []float64{1, 2, 4.5, 8, 15} {
		in.TargetVolumeM3 = v
		res, err := SolveHeight(in)
		require.NoError(t, err)
		require.Greater(t, res.HeightM, prev, "volume %v", v)
		prev = res.HeightM
	}
}

func TestSolveHeightUnreachableClampsToBracket(t *testing.T) {
	in := baseInput()
	in.TargetVolumeM3 = 1e6
	res, err := SolveHeight(in)
	require.NoError(t, err)
	require.InDelta(t, 10.0, res.HeightM, 1e-6)
	// the caller sees the shortfall through the achieved volume
	require.Less(t, res.CavityVolumeM3, in.TargetVolumeM3)
}

func TestSolveHeightDefaults(t *testing.T) {
	res, err := SolveHeight(Input{TargetVolumeM3: 4.5, WallMM: 160, BottomMM: 230})
	require.NoError(t, err)
	require.Greater(t, res.HeightM, 2.0)
	require.Less(t, res.HeightM, 4.0)
	require.Equal(t, 4.5*7000, res.LoadMassKG)
}

func TestSolveHeightRejectsBadInput(t *testing.T) {
	_, err := SolveHeight(Input{TargetVolumeM3: -1, WallMM: 160, BottomMM: 230})
	require.Error(t, err)
	_, err = SolveHeight(Input{TargetVolumeM3: 4.5, WallMM: 0, BottomMM: 230})
	require.Error(t, err)
}

func TestCavityVolumeDegenerateGeometryIsZero(t *testing.T) {
	g := geometry{ratio: 1.05, tanTaper: 0.0875, wall: 0.16, bottom: 0.23, freeboard: 0.3}
	// at tiny heights the walls leave no cavity at all
	require.Equal(t, 0.0, g.cavityVolume(0.3))
	require.Greater(t, g.cavityVolume(2.0), 0.0)
}
