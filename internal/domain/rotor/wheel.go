package rotor

import (
	"fmt"

	m "bombe.dev/pkg/bombe/internal/model"
)

// Wheel is a rotating permutation. The core carries the wiring; the ring
// carries the letters shown in the window and the turnover pegs.
//
// position is the rotation of the core from neutral and is the only value
// that affects the transform. The ring setting only changes which letter is
// displayed for a given core rotation.
type Wheel struct {
	wiring      Permutation
	pegs        []int
	ringSetting int
	position    int
}

// NewWheel returns a wheel with the given wiring, peg letters and 1-based
// ring setting, showing 'a' in the window.
func NewWheel(wiring Permutation, pegLetters string, ringSetting int) (*Wheel, error) {
	if ringSetting < 1 || ringSetting > m.AlphabetSize {
		return nil, fmt.Errorf("%w: ring setting %d outside 1..%d", ErrInvalidSpecification, ringSetting, m.AlphabetSize)
	}

	pegs := make([]int, 0, len(pegLetters))

	for _, r := range pegLetters {
		n, ok := m.Pos(r)
		if !ok {
			return nil, fmt.Errorf("%w: peg %q is not a letter", ErrInvalidSpecification, r)
		}

		pegs = append(pegs, n)
	}

	w := &Wheel{wiring: wiring, pegs: pegs, ringSetting: ringSetting}
	w.SetPosition('a')

	return w, nil
}

// NewSimpleWheel returns a wheel with no pegs and a neutral ring, as used by
// the scrambler.
func NewSimpleWheel(wiring Permutation) *Wheel {
	return &Wheel{wiring: wiring, ringSetting: 1}
}

// SetPosition turns the wheel so that letter shows in the window.
func (w *Wheel) SetPosition(letter rune) {
	n, _ := m.Pos(letter)
	w.position = m.Mod(n - w.ringSetting + 1)
}

// SetCorePosition sets the core rotation directly.
func (w *Wheel) SetCorePosition(position int) {
	w.position = m.Mod(position)
}

// Position returns the core rotation, 0..25.
func (w *Wheel) Position() int {
	return w.position
}

// RingSetting returns the 1-based ring setting.
func (w *Wheel) RingSetting() int {
	return w.ringSetting
}

// DisplayedPosition returns the letter showing in the window.
func (w *Wheel) DisplayedPosition() rune {
	return m.Unpos(w.position + w.ringSetting - 1)
}

// PegOffsets returns, for each peg, how many more advances until it reaches
// the turnover point. An offset of zero means the peg fires on the next step.
func (w *Wheel) PegOffsets() []int {
	displayed := w.position + w.ringSetting - 1
	offsets := make([]int, len(w.pegs))

	for i, peg := range w.pegs {
		offsets[i] = m.Mod(peg - displayed)
	}

	return offsets
}

// AtTurnover reports whether any peg is due to fire on the next step.
func (w *Wheel) AtTurnover() bool {
	displayed := w.position + w.ringSetting - 1

	for _, peg := range w.pegs {
		if m.Mod(peg-displayed) == 0 {
			return true
		}
	}

	return false
}

// Advance rotates the wheel one step.
func (w *Wheel) Advance() {
	w.position = (w.position + 1) % m.AlphabetSize
}

// ForwardIndex passes a signal from the right-hand contacts to the left.
func (w *Wheel) ForwardIndex(i int) int {
	return m.Mod(w.wiring.ForwardIndex((i+w.position)%m.AlphabetSize) - w.position)
}

// BackwardIndex passes a signal from the left-hand contacts to the right.
func (w *Wheel) BackwardIndex(i int) int {
	return m.Mod(w.wiring.BackwardIndex((i+w.position)%m.AlphabetSize) - w.position)
}

// Forward is ForwardIndex on letters.
func (w *Wheel) Forward(letter rune) (rune, bool) {
	i, ok := m.Pos(letter)
	if !ok {
		return 0, false
	}

	return m.Unpos(w.ForwardIndex(i)), true
}

// Backward is BackwardIndex on letters.
func (w *Wheel) Backward(letter rune) (rune, bool) {
	i, ok := m.Pos(letter)
	if !ok {
		return 0, false
	}

	return m.Unpos(w.BackwardIndex(i)), true
}
