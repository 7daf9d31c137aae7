package rotor

import (
	"strings"

	m "bombe.dev/pkg/bombe/internal/model"
)

// Machine is a three-wheel rotor cipher machine with a plugboard and a
// reflector. Enciphering and deciphering are the same operation.
type Machine struct {
	plugboard Permutation
	reflector Permutation
	left      *Wheel
	middle    *Wheel
	right     *Wheel
}

// NewMachine assembles a machine. The machine takes ownership of the wheels.
func NewMachine(reflector Permutation, left, middle, right *Wheel, plugboard Permutation) *Machine {
	return &Machine{
		plugboard: plugboard,
		reflector: reflector,
		left:      left,
		middle:    middle,
		right:     right,
	}
}

// SetWheels sets the letters showing in the left, middle and right windows.
func (e *Machine) SetWheels(left, middle, right rune) {
	e.left.SetPosition(left)
	e.middle.SetPosition(middle)
	e.right.SetPosition(right)
}

// Positions returns the core rotations of the left, middle and right wheels.
func (e *Machine) Positions() m.Position {
	return m.Position{e.left.Position(), e.middle.Position(), e.right.Position()}
}

// DisplayedPositions returns the three window letters, e.g. "adt".
func (e *Machine) DisplayedPositions() string {
	return string([]rune{e.left.DisplayedPosition(), e.middle.DisplayedPosition(), e.right.DisplayedPosition()})
}

// PegOffsets returns the peg offsets of the left, middle and right wheels.
func (e *Machine) PegOffsets() [3][]int {
	return [3][]int{e.left.PegOffsets(), e.middle.PegOffsets(), e.right.PegOffsets()}
}

// LookupIndex sends one signal through plugboard, wheels, reflector and
// back without stepping.
func (e *Machine) LookupIndex(i int) int {
	i = e.plugboard.ForwardIndex(i)
	i = e.right.ForwardIndex(i)
	i = e.middle.ForwardIndex(i)
	i = e.left.ForwardIndex(i)
	i = e.reflector.ForwardIndex(i)
	i = e.left.BackwardIndex(i)
	i = e.middle.BackwardIndex(i)
	i = e.right.BackwardIndex(i)

	return e.plugboard.BackwardIndex(i)
}

// Lookup is LookupIndex on letters. Non-letters yield false.
func (e *Machine) Lookup(letter rune) (rune, bool) {
	i, ok := m.Pos(letter)
	if !ok {
		return 0, false
	}

	return m.Unpos(e.LookupIndex(i)), true
}

// Advance steps the wheels once. The middle wheel moves when the right
// wheel's peg fires or when its own peg fires; in the second case it also
// carries the left wheel, which is the double step.
func (e *Machine) Advance() {
	advanceMiddle := e.right.AtTurnover()
	advanceLeft := e.middle.AtTurnover()

	if advanceLeft {
		advanceMiddle = true
	}

	e.right.Advance()

	if advanceMiddle {
		e.middle.Advance()
	}

	if advanceLeft {
		e.left.Advance()
	}
}

// EncipherLetter steps the machine and then enciphers one letter.
func (e *Machine) EncipherLetter(letter rune) (rune, bool) {
	i, ok := m.Pos(letter)
	if !ok {
		return 0, false
	}

	e.Advance()

	return m.Unpos(e.LookupIndex(i)), true
}

// Encipher drops everything but letters, lower-cases the rest and
// enciphers it from the current wheel positions.
func (e *Machine) Encipher(text string) string {
	cleaned := m.Clean(text)

	var b strings.Builder

	b.Grow(len(cleaned))

	for _, r := range cleaned {
		out, _ := e.EncipherLetter(r)
		b.WriteRune(out)
	}

	return b.String()
}

// Decipher is Encipher: the signal path is its own inverse.
func (e *Machine) Decipher(text string) string {
	return e.Encipher(text)
}
