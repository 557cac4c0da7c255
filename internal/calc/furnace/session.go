package furnace

import (
	"fmt"

	"Smeltline/internal/catalog"
)

// State tracks whether the rounded set is still a formula-consistent image
// of the electrode diameter or carries manual edits.
type State int

const (
	Uninitialized State = iota
	Initialized
	Overridden
)

func (s State) String() string {
	switch s {
	case Initialized:
		return "initialized"
	case Overridden:
		return "overridden"
	default:
		return "uninitialized"
	}
}

// Override target field names as they appear on the wire.
const (
	FieldElectrode  = "de"
	FieldSecondaryV = "u2"
	FieldPoleCircle = "dc"
	FieldHearthDia  = "di"
	FieldHearthDep  = "hh"
	FieldShellDia   = "shell_id"
	FieldShellH     = "shell_h"
)

// Session is one designer's working state. The electrode diameter is the
// anchor: overriding it recomputes every dimension proportioned from it.
// All other fields are terminal; overriding one changes only that field and
// the change is discarded on the next reset or anchor override.
//
// A Session is not safe for concurrent use; the HTTP store serializes access.
type Session struct {
	state   State
	inputs  Input
	coeffs  catalog.CoefficientSet
	theo    Parameters
	rounded Parameters
}

// Reset recomputes everything from fresh inputs, dropping any overrides.
func (s *Session) Reset(in Input, c catalog.CoefficientSet) error {
	d, err := Size(in, c)
	if err != nil {
		return err
	}
	in.Conductor = in.Conductor.withDefaults()
	s.inputs = in
	s.coeffs = c
	s.theo = d.Theoretical
	s.rounded = d.Rounded
	s.state = Initialized
	return nil
}

// ApplyOverride writes one designer-supplied value into the rounded set.
// The anchor cascades; leaves do not. Overriding the secondary voltage also
// refreshes the displayed secondary current, which is a pure function of it.
func (s *Session) ApplyOverride(field string, v float64) error {
	if s.state == Uninitialized {
		return fmt.Errorf("session not initialized")
	}
	if v <= 0 {
		return fmt.Errorf("invalid input")
	}
	switch field {
	case FieldElectrode:
		s.rounded.ElectrodeMM = v
		cascade(&s.rounded, s.inputs, s.coeffs)
		s.state = Initialized
	case FieldSecondaryV:
		s.rounded.SecondaryV = v
		s.rounded.SecondaryA = secondaryCurrent(s.inputs.CapacityMVA, v)
		s.state = Overridden
	case FieldPoleCircle:
		s.rounded.PoleCircleMM = v
		s.state = Overridden
	case FieldHearthDia:
		s.rounded.HearthDiaMM = v
		s.state = Overridden
	case FieldHearthDep:
		s.rounded.HearthDepMM = v
		s.state = Overridden
	case FieldShellDia:
		s.rounded.ShellDiaMM = v
		s.state = Overridden
	case FieldShellH:
		s.rounded.ShellHMM = v
		s.state = Overridden
	default:
		return fmt.Errorf("unknown field %q", field)
	}
	return nil
}

// Theoretical returns the exact values from the last reset.
func (s *Session) Theoretical() Parameters { return s.theo }

// Rounded returns the current working design state.
func (s *Session) Rounded() Parameters { return s.rounded }

// Inputs returns the inputs from the last reset.
func (s *Session) Inputs() Input { return s.inputs }

// Coefficients returns the coefficient set from the last reset.
func (s *Session) Coefficients() catalog.CoefficientSet { return s.coeffs }

// State reports the session lifecycle state.
func (s *Session) State() State { return s.state }
