package bolt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGradeStrengths(t *testing.T) {
	b, s, err := gradeStrengths("8.8")
	require.NoError(t, err)
	require.Equal(t, 800.0, b)
	require.Equal(t, 640.0, s)

	b, s, err = gradeStrengths("10.9")
	require.NoError(t, err)
	require.Equal(t, 1000.0, b)
	require.Equal(t, 900.0, s)

	_, _, err = gradeStrengths("strong")
	require.Error(t, err)
	_, _, err = gradeStrengths("8.0")
	require.Error(t, err)
}

func TestCalculateVerdicts(t *testing.T) {
	cases := []struct {
		name    string
		load    float64
		verdict string
	}{
		{"ok", 10000, "ok"},
		{"understrength", 20000, "understrength"},
		{"oversized", 5000, "oversized"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			res, err := Calculate(Input{LoadN: c.load, SizeMM: 10, Grade: "8.8", Preloaded: true})
			require.NoError(t, err)
			require.Equal(t, c.verdict, res.Verdict)
			require.InDelta(t, c.load*1.3/58.0, res.StressMPa, 1e-9)
		})
	}
}

func TestCalculateWithoutPreload(t *testing.T) {
	res, err := Calculate(Input{LoadN: 10000, SizeMM: 10, Grade: "8.8"})
	require.NoError(t, err)
	require.InDelta(t, 10000.0/58.0, res.StressMPa, 1e-9)
}

func TestCalculateDefaultsAndErrors(t *testing.T) {
	res, err := Calculate(Input{LoadN: 10000, SizeMM: 10})
	require.NoError(t, err)
	require.Equal(t, 640.0, res.YieldMPa) // grade defaults to 8.8

	_, err = Calculate(Input{LoadN: 10000, SizeMM: 11, Grade: "8.8"})
	require.Error(t, err)
	_, err = Calculate(Input{LoadN: 0, SizeMM: 10, Grade: "8.8"})
	require.Error(t, err)
}
