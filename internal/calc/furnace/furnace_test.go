package furnace

import (
	"testing"

	"Smeltline/internal/catalog"
	"github.com/stretchr/testify/require"
)

func siMnInput() (Input, catalog.CoefficientSet) {
	c, err := catalog.Furnace("SiMn")
	if err != nil {
		panic(err)
	}
	return Input{CapacityMVA: 33, PrimaryKV: 35, LiningMM: 1200}, c
}

func TestTheoreticalScenario33MVA(t *testing.T) {
	in, c := siMnInput()
	p := Theoretical(in, c)

	// U2 = 6.3 * 33000^(1/3), I2 = 33e6 / (1.732 * U2)
	require.InDelta(t, 202.1, p.SecondaryV, 0.5)
	require.Greater(t, p.SecondaryA, 90000.0)
	require.Less(t, p.SecondaryA, 98000.0)
	require.InDelta(t, 1477, p.ElectrodeMM, 2)
	require.Equal(t, p.HearthDiaMM+2*in.LiningMM, p.ShellDiaMM)
	require.Equal(t, p.HearthDepMM+2000, p.ShellHMM)
}

func TestTheoreticalIsPure(t *testing.T) {
	in, c := siMnInput()
	require.Equal(t, Theoretical(in, c), Theoretical(in, c))
}

func TestRoundToIdempotent(t *testing.T) {
	for _, inc := range []float64{1, 50, 100} {
		for _, v := range []float64{0, 24.9, 25, 1477.4, 3750, 9999.5} {
			once := RoundTo(v, inc)
			require.Equal(t, once, RoundTo(once, inc), "v=%v inc=%v", v, inc)
		}
	}
}

func TestRoundToTiesAwayFromZero(t *testing.T) {
	require.Equal(t, 150.0, RoundTo(125, 50))
	require.Equal(t, 3800.0, RoundTo(3750, 100))
	require.Equal(t, 1200.0, RoundTo(1224, 50))
	require.Equal(t, 1250.0, RoundTo(1234.9, 50))
}

func TestSizeRoundsFromRoundedAnchor(t *testing.T) {
	in, c := siMnInput()
	d, err := Size(in, c)
	require.NoError(t, err)

	rnd := d.Rounded
	require.Equal(t, 1500.0, rnd.ElectrodeMM)
	require.Equal(t, RoundTo(rnd.ElectrodeMM*c.Ky, IncPoleCircle), rnd.PoleCircleMM)
	require.Equal(t, 4050.0, rnd.PoleCircleMM)
	require.Equal(t, 9600.0, rnd.HearthDiaMM)
	require.Equal(t, 3800.0, rnd.HearthDepMM)
	require.Equal(t, 12000.0, rnd.ShellDiaMM)
	require.Equal(t, 5800.0, rnd.ShellHMM)
	require.Equal(t, 202.0, rnd.SecondaryV)
}

func TestSizeRejectsBadInput(t *testing.T) {
	_, c := siMnInput()
	_, err := Size(Input{CapacityMVA: 0, PrimaryKV: 35, LiningMM: 1200}, c)
	require.Error(t, err)

	in, _ := siMnInput()
	_, err = Size(in, catalog.CoefficientSet{Ke: 6.3})
	require.Error(t, err)
}
