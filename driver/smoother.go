// SPDX-License-Identifier: EPL-2.0

package driver

// Smoother eases a pointer toward its target by a fixed fraction per step.
// Easing of 1 follows the target exactly.
type Smoother struct {
	Easing  float64
	current Pointer
	primed  bool
}

// Step moves toward target and returns the eased position. The first step
// jumps straight to the target.
func (s *Smoother) Step(target Pointer) Pointer {
	if !s.primed {
		s.current = target
		s.primed = true
		return s.current
	}

	s.current.X += (target.X - s.current.X) * s.Easing
	s.current.Y += (target.Y - s.current.Y) * s.Easing

	return s.current
}
