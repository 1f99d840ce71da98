package conditions

import (
	"github.com/solo5e/combatsim/internal/dice"
)

// Vantage is the net advantage state of a pending attack roll
type Vantage int

// Vantage states
const (
	VantageNormal Vantage = iota
	VantageAdvantage
	VantageDisadvantage
)

// Combine merges two vantage sources. Advantage and disadvantage cancel
// pairwise to normal; like sources do not stack.
func (v Vantage) Combine(other Vantage) Vantage {
	switch {
	case v == other, other == VantageNormal:
		return v
	case v == VantageNormal:
		return other
	default:
		// One advantage against one disadvantage.
		return VantageNormal
	}
}

// Mode converts the net vantage to the d20 roll mode
func (v Vantage) Mode() dice.Mode {
	switch v {
	case VantageAdvantage:
		return dice.Advantage
	case VantageDisadvantage:
		return dice.Disadvantage
	default:
		return dice.Normal
	}
}

// AttackStyle distinguishes melee from ranged attacks for prone interactions
type AttackStyle int

// Attack styles
const (
	Melee AttackStyle = iota
	Ranged
)

// VantageFromConditions computes the net vantage an attack is rolled under,
// from the attacker's and target's active conditions. A poisoned or
// restrained attacker rolls at disadvantage. A restrained target grants
// advantage; a prone target grants advantage to melee attacks and imposes
// disadvantage on ranged ones. Advantage and disadvantage effects are
// counted and cancel pairwise; the majority side wins, equal counts resolve
// to normal.
func VantageFromConditions(attacker, target *Set, style AttackStyle) Vantage {
	var adv, dis int

	if attacker.Has(Poisoned) || attacker.Has(Restrained) {
		dis++
	}

	for _, kind := range target.Kinds() {
		switch kind {
		case Restrained:
			adv++
		case Prone:
			if style == Melee {
				adv++
			} else {
				dis++
			}
		}
	}

	switch {
	case adv > dis:
		return VantageAdvantage
	case dis > adv:
		return VantageDisadvantage
	default:
		return VantageNormal
	}
}
