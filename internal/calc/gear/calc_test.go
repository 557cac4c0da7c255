package gear

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCalculateSoftFace(t *testing.T) {
	res, err := Calculate(Input{TorqueNM: 500, Ratio: 3.5})
	require.NoError(t, err)

	require.Greater(t, res.D1MinMM, 95.0)
	require.Less(t, res.D1MinMM, 103.0)
	require.Equal(t, 5.0, res.ModuleMM)
	require.InDelta(t, 225.0, res.CentreDistMM, 1e-9)
	require.Equal(t, 20, res.Z1)
	require.Equal(t, 70, res.Z2)
	require.Equal(t, 600.0, res.ContactSigmaH)
}

func TestCalculateHardFaceShrinksPinion(t *testing.T) {
	soft, err := Calculate(Input{TorqueNM: 500, Ratio: 3.5})
	require.NoError(t, err)
	hard, err := Calculate(Input{TorqueNM: 500, Ratio: 3.5, HardFace: true})
	require.NoError(t, err)
	require.Less(t, hard.D1MinMM, soft.D1MinMM)
	require.Equal(t, 1100.0, hard.ContactSigmaH)
}

func TestCalculateHelixWidensCentreDistance(t *testing.T) {
	straight, err := Calculate(Input{TorqueNM: 500, Ratio: 3.5})
	require.NoError(t, err)
	helical, err := Calculate(Input{TorqueNM: 500, Ratio: 3.5, HelixDeg: 15})
	require.NoError(t, err)
	require.Greater(t, helical.CentreDistMM, straight.CentreDistMM)
}

func TestCalculateRejectsBadInput(t *testing.T) {
	_, err := Calculate(Input{TorqueNM: 0, Ratio: 3.5})
	require.Error(t, err)
	_, err = Calculate(Input{TorqueNM: 500, Ratio: 0})
	require.Error(t, err)
}
