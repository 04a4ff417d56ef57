package machine

import "fmt"

type State interface {
	~string
}

var ErrInvalidTransition = fmt.Errorf("invalid state transition")

// Allowable maps where a from state is allowed to transition to
type Allowable[S State] struct {
	from S
	to   []S
}

// StateMachine validates transitions from a current state
type StateMachine[S State] struct {
	current     S
	transitions []Allowable[S]
}

// TransitionBuilder helps in creating a from-to relationship for state transitions
type TransitionBuilder[S State] struct {
	transition Allowable[S]
}

func New[S State](current S, transitions ...Allowable[S]) *StateMachine[S] {
	return &StateMachine[S]{current: current, transitions: transitions}
}

// From initializes a transition from a specific state
func From[S State](from S) *TransitionBuilder[S] {
	return &TransitionBuilder[S]{transition: Allowable[S]{from: from}}
}

// To sets the possible destination states and returns the configured transition
func (tb *TransitionBuilder[S]) To(to ...S) Allowable[S] {
	tb.transition.to = to
	return tb.transition
}

// Current returns the state the machine was initialized with
func (m *StateMachine[S]) Current() S {
	return m.current
}

// ToState determines if the current state can transition to the given state
func (m *StateMachine[S]) ToState(s S) error {
	for _, transition := range m.transitions {
		if transition.from != m.current {
			continue
		}

		for _, to := range transition.to {
			if to == s {
				return nil
			}
		}
	}

	return fmt.Errorf("%w: %q -> %q", ErrInvalidTransition, string(m.current), string(s))
}
