package rotor

import m "bombe.dev/pkg/bombe/internal/model"

// Scrambler is the machine's signal path without a plugboard: three wheels
// with neutral rings and a reflector. Wheel 1 is leftmost, wheel 3 is the
// fast wheel on the right.
type Scrambler struct {
	wheels    [3]*Wheel
	reflector Permutation
}

// NewScrambler builds a scrambler with all wheels at position 0.
func NewScrambler(wheel1, wheel2, wheel3, reflector Permutation) *Scrambler {
	return &Scrambler{
		wheels:    [3]*Wheel{NewSimpleWheel(wheel1), NewSimpleWheel(wheel2), NewSimpleWheel(wheel3)},
		reflector: reflector,
	}
}

// SetPositions sets the three core rotations.
func (s *Scrambler) SetPositions(p m.Position) {
	for i, w := range s.wheels {
		w.SetCorePosition(p[i])
	}
}

// Positions returns the three core rotations.
func (s *Scrambler) Positions() m.Position {
	return m.Position{s.wheels[0].Position(), s.wheels[1].Position(), s.wheels[2].Position()}
}

// Advance steps the selected wheels independently; there is no carry.
func (s *Scrambler) Advance(wheel1, wheel2, wheel3 bool) {
	for i, step := range [3]bool{wheel1, wheel2, wheel3} {
		if step {
			s.wheels[i].Advance()
		}
	}
}

// LookupIndex sends a signal through the wheels and reflector and back.
func (s *Scrambler) LookupIndex(i int) int {
	i = s.wheels[2].ForwardIndex(i)
	i = s.wheels[1].ForwardIndex(i)
	i = s.wheels[0].ForwardIndex(i)
	i = s.reflector.ForwardIndex(i)
	i = s.wheels[0].BackwardIndex(i)
	i = s.wheels[1].BackwardIndex(i)

	return s.wheels[2].BackwardIndex(i)
}

// Lookup is LookupIndex on letters.
func (s *Scrambler) Lookup(letter rune) (rune, bool) {
	i, ok := m.Pos(letter)
	if !ok {
		return 0, false
	}

	return m.Unpos(s.LookupIndex(i)), true
}

// Table fills out with the scrambler's current mapping for every letter.
func (s *Scrambler) Table(out *[m.AlphabetSize]int) {
	for i := range m.AlphabetSize {
		out[i] = s.LookupIndex(i)
	}
}
