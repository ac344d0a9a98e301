package units

import "fmt"

// Scope is an explicit, stack-disciplined holder for a "current" energy unit.
//
// It replaces the ambient unit-context pattern found in some physics codes: a
// Scope is a plain value owned by its caller, so nested scopes on independent
// Scope values never interact and concurrent use of separate scopes is safe.
// Enter pushes a unit, Exit pops it; pairs must nest.
type Scope struct {
	stack []Energy
}

// NewScope returns a scope whose current unit is Internal.
func NewScope() *Scope {
	return &Scope{stack: []Energy{Internal}}
}

// Current returns the unit on top of the scope stack.
func (s *Scope) Current() Energy {
	return s.stack[len(s.stack)-1]
}

// Enter pushes u as the current unit.
func (s *Scope) Enter(u Energy) {
	s.stack = append(s.stack, u)
}

// Exit pops the current unit. Exiting the root scope panics: that is a
// pairing bug in the caller, not a runtime condition.
func (s *Scope) Exit() {
	if len(s.stack) <= 1 {
		panic("units: Scope.Exit without matching Enter")
	}
	s.stack = s.stack[:len(s.stack)-1]
}

// With runs fn with u as the current unit and restores the previous unit on
// all paths, including panics.
func (s *Scope) With(u Energy, fn func() error) error {
	s.Enter(u)
	defer s.Exit()
	return fn()
}

// ToInternal converts v from the scope's current unit to internal units.
func (s *Scope) ToInternal(v float64) (float64, error) {
	out, err := ToInternal(v, s.Current())
	if err != nil {
		return 0, fmt.Errorf("units: scope conversion: %w", err)
	}
	return out, nil
}
