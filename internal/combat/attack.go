// Package combat resolves single combat interactions: attack rolls against
// armor class, damage rolls with critical and typed-damage adjustment, ability
// and contested checks, and the grapple and shove actions built on them. All
// functions are pure over the roller they are handed and never mutate
// creature state except where documented.
package combat

import (
	"github.com/solo5e/combatsim/internal/dice"
)

// AttackResult is the outcome of one attack roll
type AttackResult struct {
	// Roll is the kept d20; RawRolls holds every die drawn in order.
	Roll     int
	RawRolls []int
	Total    int
	AC       int
	Hit      bool
	Crit     bool
	Nat20    bool
	Nat1     bool
}

// Attack rolls a d20 under the given mode against an effective armor class.
// A natural 20 always hits and is a critical regardless of AC; a natural 1
// always misses. Criticals key off the kept die, so a 20 dropped by
// disadvantage is not a crit.
func Attack(roller dice.Roller, mode dice.Mode, bonus, ac int) AttackResult {
	d := roller.D20(mode)
	total := d.Kept + bonus
	nat20 := d.Kept == 20
	nat1 := d.Kept == 1
	return AttackResult{
		Roll:     d.Kept,
		RawRolls: d.Raw,
		Total:    total,
		AC:       ac,
		Hit:      nat20 || (!nat1 && total >= ac),
		Crit:     nat20,
		Nat20:    nat20,
		Nat1:     nat1,
	}
}
