package domain

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"bombe.dev/pkg/bombe/internal/domain/rotor"
	m "bombe.dev/pkg/bombe/internal/model"
)

// BombeConfig describes a bombe: the wheel order and reflector being tried,
// the menu that wires it up, and how candidates are judged.
type BombeConfig struct {
	Wheels           [3]rotor.Permutation
	Reflector        rotor.Permutation
	Menu             m.Menu
	StartSignal      *m.Signal
	UseDiagonalBoard bool
	VerifyPlugboard  bool
}

// connection joins two banks through a scrambler whose fast wheel runs
// offset steps ahead of the base position.
type connection struct {
	banks     [2]int
	offset    int
	scrambler *rotor.Scrambler
	table     [m.AlphabetSize]int
}

func (c *connection) other(bank int) int {
	if c.banks[0] == bank {
		return c.banks[1]
	}

	return c.banks[0]
}

// Bombe tests rotor positions against a menu by propagating a hypothesis
// through one scrambler per menu item. A Bombe is not safe for concurrent
// use; parallel searches give each worker its own.
type Bombe struct {
	connections      []connection
	byBank           [m.AlphabetSize][]int
	start            m.Signal
	useDiagonalBoard bool
	verifyPlugboard  bool
	position         m.Position

	banks [m.AlphabetSize][m.AlphabetSize]bool
	queue []int
}

// NewBombe builds the scramblers for every menu item.
func NewBombe(cfg BombeConfig) (*Bombe, error) {
	if err := validateMenu(cfg.Menu); err != nil {
		return nil, err
	}

	start, err := DefaultStartSignal(cfg.Menu)
	if err != nil {
		return nil, err
	}

	if cfg.StartSignal != nil {
		start, err = normalizeSignal(*cfg.StartSignal)
		if err != nil {
			return nil, err
		}
	}

	b := &Bombe{
		connections:      make([]connection, 0, len(cfg.Menu)),
		start:            start,
		useDiagonalBoard: cfg.UseDiagonalBoard,
		verifyPlugboard:  cfg.VerifyPlugboard,
		queue:            make([]int, 0, m.AlphabetSize*m.AlphabetSize),
	}

	for _, item := range cfg.Menu {
		before, _ := m.Pos(item.Before)
		after, _ := m.Pos(item.After)

		b.connections = append(b.connections, connection{
			banks:     [2]int{before, after},
			offset:    item.Number - 1,
			scrambler: rotor.NewScrambler(cfg.Wheels[0], cfg.Wheels[1], cfg.Wheels[2], cfg.Reflector),
		})

		index := len(b.connections) - 1
		b.byBank[before] = append(b.byBank[before], index)

		if after != before {
			b.byBank[after] = append(b.byBank[after], index)
		}
	}

	b.SetPositions(m.Position{})

	slog.Debug("Built bombe", "connections", len(b.connections), "start", start.String(),
		"diagonalBoard", cfg.UseDiagonalBoard, "verifyPlugboard", cfg.VerifyPlugboard)

	return b, nil
}

func normalizeSignal(s m.Signal) (m.Signal, error) {
	bank, okBank := m.Pos(s.Bank)
	wire, okWire := m.Pos(s.Wire)

	if !okBank || !okWire {
		return m.Signal{}, fmt.Errorf("%w: start signal %q is not two letters", ErrInvalidMenu, s.String())
	}

	return m.Signal{Bank: m.Unpos(bank), Wire: m.Unpos(wire)}, nil
}

// StartSignal returns the signal tests begin from by default.
func (b *Bombe) StartSignal() m.Signal {
	return b.start
}

// SetPositions moves every scrambler to the base position, each fast wheel
// shifted by its menu item's offset.
func (b *Bombe) SetPositions(p m.Position) {
	b.position = p

	for i := range b.connections {
		c := &b.connections[i]
		c.scrambler.SetPositions(m.Position{p[0], p[1], m.Mod(p[2] + c.offset)})
		c.scrambler.Table(&c.table)
	}
}

// Position returns the current base position.
func (b *Bombe) Position() m.Position {
	return b.position
}

// Test energizes initial and everything it implies at the current
// position, then decides whether the position survives. A position where
// every wire in the initial bank goes live is rejected. With
// verifyPlugboard the plugboard pairs implied by single live or single dead
// wires must also agree with each other.
func (b *Bombe) Test(initial m.Signal, useDiagonalBoard, verifyPlugboard bool) bool {
	bank, okBank := m.Pos(initial.Bank)
	wire, okWire := m.Pos(initial.Wire)

	if !okBank || !okWire {
		return false
	}

	b.propagate(bank, wire, useDiagonalBoard)

	live := 0

	for _, on := range b.banks[bank] {
		if on {
			live++
		}
	}

	if live == m.AlphabetSize {
		return false
	}

	if !verifyPlugboard {
		return true
	}

	return consistent(b.PossiblePlugboards())
}

// Check tests base position p from the default start signal with the
// bombe's configured options.
func (b *Bombe) Check(p m.Position) bool {
	b.SetPositions(p)

	return b.Test(b.start, b.useDiagonalBoard, b.verifyPlugboard)
}

func (b *Bombe) propagate(bank, wire int, useDiagonalBoard bool) {
	b.banks = [m.AlphabetSize][m.AlphabetSize]bool{}
	b.queue = b.queue[:0]

	b.enqueue(bank, wire)

	for head := 0; head < len(b.queue); head++ {
		node := b.queue[head]
		bank, wire := node/m.AlphabetSize, node%m.AlphabetSize

		if useDiagonalBoard {
			b.enqueue(wire, bank)
		}

		for _, index := range b.byBank[bank] {
			c := &b.connections[index]
			b.enqueue(c.other(bank), c.table[wire])
		}
	}
}

func (b *Bombe) enqueue(bank, wire int) {
	if b.banks[bank][wire] {
		return
	}

	b.banks[bank][wire] = true
	b.queue = append(b.queue, bank*m.AlphabetSize+wire)
}

// Energized returns the live wires of every bank after the last test.
func (b *Bombe) Energized() [m.AlphabetSize][m.AlphabetSize]bool {
	return b.banks
}

// LiveWires lists the live wires of one bank after the last test.
func (b *Bombe) LiveWires(bank rune) string {
	i, ok := m.Pos(bank)
	if !ok {
		return ""
	}

	wires := make([]rune, 0, m.AlphabetSize)

	for wire, on := range b.banks[i] {
		if on {
			wires = append(wires, m.Unpos(wire))
		}
	}

	return string(wires)
}

// PossiblePlugboards returns the pairs implied by banks with exactly one
// live wire or exactly one dead wire, sorted and without repeats.
func (b *Bombe) PossiblePlugboards() []m.Pair {
	var pairs []m.Pair

	for bank, wires := range b.banks {
		var live, dead []int

		for wire, on := range wires {
			if on {
				live = append(live, wire)
			} else {
				dead = append(dead, wire)
			}
		}

		if len(live) == 1 {
			pairs = append(pairs, m.NewPair(m.Unpos(bank), m.Unpos(live[0])))
		}

		if len(dead) == 1 {
			pairs = append(pairs, m.NewPair(m.Unpos(bank), m.Unpos(dead[0])))
		}
	}

	slices.SortFunc(pairs, comparePairs)

	return slices.Compact(pairs)
}

func comparePairs(a, b m.Pair) int {
	if a.A != b.A {
		return int(a.A - b.A)
	}

	return int(a.B - b.B)
}

// consistent reports whether no letter is paired with two different letters.
func consistent(pairs []m.Pair) bool {
	var partner [m.AlphabetSize]int
	for i := range partner {
		partner[i] = -1
	}

	for _, pair := range pairs {
		a, _ := m.Pos(pair.A)
		c, _ := m.Pos(pair.B)

		for _, link := range [2][2]int{{a, c}, {c, a}} {
			if partner[link[0]] != -1 && partner[link[0]] != link[1] {
				return false
			}

			partner[link[0]] = link[1]
		}
	}

	return true
}

// Run tests every base position, counting from start like an odometer, and
// returns the accepted positions in the order tested.
func (b *Bombe) Run(ctx context.Context, start m.Position) ([]m.Position, error) {
	var solutions []m.Position

	first := start.Index()

	for i := range m.PositionCount {
		if i%(m.AlphabetSize*m.AlphabetSize) == 0 {
			if err := ctx.Err(); err != nil {
				return solutions, err
			}
		}

		p := m.PositionAt(first + i)
		if b.Check(p) {
			solutions = append(solutions, p)
		}
	}

	slog.Debug("Bombe run finished", "solutions", len(solutions))

	return solutions, nil
}
