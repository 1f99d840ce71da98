// Package dice implements the seeded pseudo-random roll primitive shared by
// every component that needs randomness. State is explicitly owned: each
// simulation run constructs its own roller from a seed and threads it through
// the resolution pipeline, so identical seeds replay identical roll streams
// on any platform.
package dice

import (
	"github.com/solo5e/combatsim/internal/errors"
)

// Mode selects how a d20 is drawn.
type Mode int

// Advantage modes
const (
	Normal Mode = iota
	Advantage
	Disadvantage
)

// String returns the lowercase name of the mode
func (m Mode) String() string {
	switch m {
	case Advantage:
		return "advantage"
	case Disadvantage:
		return "disadvantage"
	default:
		return "normal"
	}
}

// ParseMode parses a mode name as used in configs and CLI flags
func ParseMode(s string) (Mode, error) {
	switch s {
	case "normal", "":
		return Normal, nil
	case "advantage":
		return Advantage, nil
	case "disadvantage":
		return Disadvantage, nil
	default:
		return Normal, errors.InvalidArgumentf("unknown advantage mode: %q", s).
			WithMeta("field", "mode").WithMeta("value", s)
	}
}

// D20Roll is the outcome of a single d20 draw. Under Advantage or
// Disadvantage, Raw holds both dice in draw order and Kept the one that
// counted.
type D20Roll struct {
	Kept int
	Raw  []int
	Mode Mode
}

// Roller produces dice rolls. Seeded is the production implementation;
// Scripted replays a fixed sequence for tests.
type Roller interface {
	// D20 draws a d20 under the given mode. Advantage and Disadvantage
	// always consume exactly two draws so parallel streams stay aligned.
	D20(mode Mode) D20Roll

	// Roll returns the sum of count draws in [1, sides]. sides < 1 is
	// invalid; count <= 0 yields 0 without consuming entropy.
	Roll(count, sides int) (int, error)
}

// Seeded is a 64-bit LCG roller. The multiplier/increment pair and the
// high-32-bit output are fixed so streams are reproducible bit for bit
// across hosts.
type Seeded struct {
	state uint64
}

var _ Roller = (*Seeded)(nil)

// NewSeeded creates a roller whose entire stream is determined by seed
func NewSeeded(seed uint64) *Seeded {
	return &Seeded{state: seed}
}

func (r *Seeded) next() uint32 {
	r.state = r.state*6364136223846793005 + 1
	return uint32(r.state >> 32)
}

func (r *Seeded) die(sides int) int {
	return int(int64(r.next())%int64(sides)) + 1
}

// D20 draws a d20 under the given mode
func (r *Seeded) D20(mode Mode) D20Roll {
	switch mode {
	case Advantage:
		a, b := r.die(20), r.die(20)
		return D20Roll{Kept: max(a, b), Raw: []int{a, b}, Mode: mode}
	case Disadvantage:
		a, b := r.die(20), r.die(20)
		return D20Roll{Kept: min(a, b), Raw: []int{a, b}, Mode: mode}
	default:
		v := r.die(20)
		return D20Roll{Kept: v, Raw: []int{v}, Mode: Normal}
	}
}

// Roll returns the sum of count draws in [1, sides]
func (r *Seeded) Roll(count, sides int) (int, error) {
	if sides < 1 {
		return 0, errors.InvalidArgument("sides must be at least 1").
			WithMeta("field", "sides").WithMeta("value", sides)
	}
	if count <= 0 {
		return 0, nil
	}
	total := 0
	for i := 0; i < count; i++ {
		total += r.die(sides)
	}
	return total, nil
}

// Scripted replays a fixed value sequence. It is intended for tests that
// need exact rolls, e.g. forcing a natural 20.
type Scripted struct {
	values []int
	pos    int
}

var _ Roller = (*Scripted)(nil)

// NewScripted creates a roller that yields the given values in order and
// panics when exhausted.
func NewScripted(values ...int) *Scripted {
	return &Scripted{values: values}
}

func (r *Scripted) take() int {
	if r.pos >= len(r.values) {
		panic("dice: scripted roller exhausted")
	}
	v := r.values[r.pos]
	r.pos++
	return v
}

// D20 replays scripted values under the given mode
func (r *Scripted) D20(mode Mode) D20Roll {
	switch mode {
	case Advantage:
		a, b := r.take(), r.take()
		return D20Roll{Kept: max(a, b), Raw: []int{a, b}, Mode: mode}
	case Disadvantage:
		a, b := r.take(), r.take()
		return D20Roll{Kept: min(a, b), Raw: []int{a, b}, Mode: mode}
	default:
		v := r.take()
		return D20Roll{Kept: v, Raw: []int{v}, Mode: Normal}
	}
}

// Roll sums the next count scripted values
func (r *Scripted) Roll(count, sides int) (int, error) {
	if sides < 1 {
		return 0, errors.InvalidArgument("sides must be at least 1").
			WithMeta("field", "sides").WithMeta("value", sides)
	}
	if count <= 0 {
		return 0, nil
	}
	total := 0
	for i := 0; i < count; i++ {
		total += r.take()
	}
	return total, nil
}
