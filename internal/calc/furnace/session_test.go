package furnace

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newSession(t *testing.T) *Session {
	t.Helper()
	in, c := siMnInput()
	s := &Session{}
	require.NoError(t, s.Reset(in, c))
	require.Equal(t, Initialized, s.State())
	return s
}

func TestOverrideBeforeResetFails(t *testing.T) {
	s := &Session{}
	require.Equal(t, Uninitialized, s.State())
	require.Error(t, s.ApplyOverride(FieldElectrode, 1400))
}

func TestAnchorOverrideCascades(t *testing.T) {
	s := newSession(t)
	c := s.Coefficients()
	u2Before := s.Rounded().SecondaryV

	require.NoError(t, s.ApplyOverride(FieldElectrode, 1400))

	rnd := s.Rounded()
	require.Equal(t, 1400.0, rnd.ElectrodeMM)
	require.Equal(t, RoundTo(1400*c.Ky, IncPoleCircle), rnd.PoleCircleMM)
	require.Equal(t, 3800.0, rnd.PoleCircleMM)
	require.Equal(t, RoundTo(1400*c.Ki, IncHearthDia), rnd.HearthDiaMM)
	require.Equal(t, 9000.0, rnd.HearthDiaMM)
	require.Equal(t, RoundTo(1400*c.Kh, IncHearthDep), rnd.HearthDepMM)
	require.Equal(t, 3500.0, rnd.HearthDepMM)
	require.Equal(t, rnd.HearthDiaMM+2*s.Inputs().LiningMM, rnd.ShellDiaMM)
	require.Equal(t, rnd.HearthDepMM+2000, rnd.ShellHMM)
	require.Equal(t, u2Before, rnd.SecondaryV)
	require.Equal(t, Initialized, s.State())
}

func TestAnchorOverrideDiscardsLeafOverrides(t *testing.T) {
	s := newSession(t)
	c := s.Coefficients()

	require.NoError(t, s.ApplyOverride(FieldPoleCircle, 4000))
	require.Equal(t, Overridden, s.State())

	require.NoError(t, s.ApplyOverride(FieldElectrode, 1400))
	require.Equal(t, RoundTo(1400*c.Ky, IncPoleCircle), s.Rounded().PoleCircleMM)
	require.Equal(t, Initialized, s.State())
}

func TestLeafOverrideIsIsolated(t *testing.T) {
	s := newSession(t)
	before := s.Rounded()

	require.NoError(t, s.ApplyOverride(FieldPoleCircle, 4000))

	rnd := s.Rounded()
	require.Equal(t, 4000.0, rnd.PoleCircleMM)
	require.Equal(t, before.ElectrodeMM, rnd.ElectrodeMM)
	require.Equal(t, before.HearthDiaMM, rnd.HearthDiaMM)
	require.Equal(t, before.HearthDepMM, rnd.HearthDepMM)
	require.Equal(t, before.ShellDiaMM, rnd.ShellDiaMM)
	require.Equal(t, before.ShellHMM, rnd.ShellHMM)
	require.Equal(t, before.SecondaryV, rnd.SecondaryV)
	require.Equal(t, Overridden, s.State())
}

func TestHearthOverrideDoesNotTouchShell(t *testing.T) {
	s := newSession(t)
	before := s.Rounded()

	require.NoError(t, s.ApplyOverride(FieldHearthDia, 9900))
	require.Equal(t, 9900.0, s.Rounded().HearthDiaMM)
	require.Equal(t, before.ShellDiaMM, s.Rounded().ShellDiaMM)
}

func TestVoltageOverrideRecomputesCurrentOnly(t *testing.T) {
	s := newSession(t)
	before := s.Rounded()

	require.NoError(t, s.ApplyOverride(FieldSecondaryV, 210))

	rnd := s.Rounded()
	require.Equal(t, 210.0, rnd.SecondaryV)
	require.InDelta(t, 33*1000*1000/(1.732*210), rnd.SecondaryA, 1e-9)
	require.Equal(t, before.ElectrodeMM, rnd.ElectrodeMM)
	require.Equal(t, before.PoleCircleMM, rnd.PoleCircleMM)
	require.Equal(t, Overridden, s.State())
}

func TestResetDropsOverrides(t *testing.T) {
	s := newSession(t)
	clean := s.Rounded()

	require.NoError(t, s.ApplyOverride(FieldHearthDep, 4200))
	require.NoError(t, s.Reset(s.Inputs(), s.Coefficients()))
	require.Equal(t, clean, s.Rounded())
	require.Equal(t, Initialized, s.State())
}

func TestOverrideRejectsUnknownFieldAndBadValue(t *testing.T) {
	s := newSession(t)
	require.Error(t, s.ApplyOverride("dx", 1000))
	require.Error(t, s.ApplyOverride(FieldElectrode, 0))
	require.Error(t, s.ApplyOverride(FieldElectrode, -50))
}

func TestResetDefaultsConductor(t *testing.T) {
	in, c := siMnInput()
	s := &Session{}
	require.NoError(t, s.Reset(in, c))

	cond := s.Inputs().Conductor
	require.Equal(t, Conductor{TilesPerPhase: 8, TubeDiaMM: 70, TubeWallMM: 12.5}, cond)
	require.Equal(t, 16, cond.TubesPerPhase())

	in.Conductor = Conductor{TilesPerPhase: 6, TubeDiaMM: 90, TubeWallMM: 15}
	require.NoError(t, s.Reset(in, c))
	require.Equal(t, in.Conductor, s.Inputs().Conductor)
	require.Equal(t, 12, s.Inputs().Conductor.TubesPerPhase())
}

func TestStoreIsolatesUsers(t *testing.T) {
	in, c := siMnInput()
	st := NewStore()

	_, err := st.Reset(1, in, c)
	require.NoError(t, err)
	_, err = st.Reset(2, in, c)
	require.NoError(t, err)

	_, err = st.Override(1, FieldElectrode, 1400)
	require.NoError(t, err)

	one, err := st.Snapshot(1)
	require.NoError(t, err)
	two, err := st.Snapshot(2)
	require.NoError(t, err)
	require.Equal(t, 1400.0, one.Rounded.ElectrodeMM)
	require.Equal(t, 1500.0, two.Rounded.ElectrodeMM)

	_, err = st.Snapshot(3)
	require.Error(t, err)
}
