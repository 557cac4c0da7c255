package furnace

import (
	"fmt"
	"sync"

	"Smeltline/internal/catalog"
)

// Store keeps one Session per account, so parallel users never share design
// state. The lock serializes all session access; the engine itself stays
// single-threaded per session.
type Store struct {
	mu       sync.Mutex
	sessions map[int]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[int]*Session)}
}

// Reset creates or reinitializes the session for a user.
func (st *Store) Reset(userID int, in Input, c catalog.CoefficientSet) (Design, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[userID]
	if !ok {
		s = &Session{}
		st.sessions[userID] = s
	}
	if err := s.Reset(in, c); err != nil {
		return Design{}, err
	}
	return Design{Theoretical: s.Theoretical(), Rounded: s.Rounded()}, nil
}

// Override applies one field override to the user's session.
func (st *Store) Override(userID int, field string, v float64) (Design, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[userID]
	if !ok {
		return Design{}, fmt.Errorf("no active session")
	}
	if err := s.ApplyOverride(field, v); err != nil {
		return Design{}, err
	}
	return Design{Theoretical: s.Theoretical(), Rounded: s.Rounded()}, nil
}

// Snapshot returns the user's current design state.
func (st *Store) Snapshot(userID int) (Snapshot, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[userID]
	if !ok || s.State() == Uninitialized {
		return Snapshot{}, fmt.Errorf("no active session")
	}
	return Snapshot{
		State:       s.State().String(),
		Inputs:      s.Inputs(),
		Theoretical: s.Theoretical(),
		Rounded:     s.Rounded(),
	}, nil
}

// Snapshot is the session view handed to the UI and the report writers.
type Snapshot struct {
	State       string     `json:"state"`
	Inputs      Input      `json:"inputs"`
	Theoretical Parameters `json:"theoretical"`
	Rounded     Parameters `json:"rounded"`
}
