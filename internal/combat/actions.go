package combat

import (
	"github.com/solo5e/combatsim/internal/conditions"
	"github.com/solo5e/combatsim/internal/dice"
)

// AttemptGrapple resolves a grapple: the attacker's Strength against the
// defender's better of Strength or Dexterity. On a win the defender becomes
// Grappled; an existing grapple is left untouched. Returns whether the
// defender ends up grappled by this attempt.
func AttemptGrapple(roller dice.Roller, attackerName string, attackerStrMod int,
	defenderName string, defenderStrMod, defenderDexMod int,
	defenderConds *conditions.Set, logf conditions.Logf) bool {

	_, defMod := BestOfStrDex(defenderStrMod, defenderDexMod)
	outcome := ContestedCheck(roller, attackerStrMod, defMod, logf,
		attackerName+" (STR)", defenderName+" (best STR/DEX)")
	if outcome != AttackerWins {
		logf("[CONTEST] Grapple fails")
		return false
	}
	if !defenderConds.Has(conditions.Grappled) {
		defenderConds.Apply(conditions.NewActive(conditions.Grappled))
	}
	logf("[COND][%s] is now grappled (speed 0)", defenderName)
	return true
}

// AttemptShoveProne resolves a shove using the same contest as a grapple.
// On a win the defender is knocked Prone.
func AttemptShoveProne(roller dice.Roller, attackerName string, attackerStrMod int,
	defenderName string, defenderStrMod, defenderDexMod int,
	defenderConds *conditions.Set, logf conditions.Logf) bool {

	_, defMod := BestOfStrDex(defenderStrMod, defenderDexMod)
	outcome := ContestedCheck(roller, attackerStrMod, defMod, logf,
		attackerName+" (STR)", defenderName+" (best STR/DEX)")
	if outcome != AttackerWins {
		logf("[CONTEST] Shove fails")
		return false
	}
	if !defenderConds.Has(conditions.Prone) {
		defenderConds.Apply(conditions.NewActive(conditions.Prone))
	}
	logf("[COND][%s] is shoved prone", defenderName)
	return true
}

// EscapeGrapple attempts to break a grapple at the end of the escaper's turn.
// The grappler rolls Strength to maintain the hold; the escaper defends with
// the better of Strength or Dexterity and wins ties. Returns true when the
// grapple ends. No-op when the escaper is not grappled.
func EscapeGrapple(roller dice.Roller, escaperName string, escaperStrMod, escaperDexMod,
	grapplerStrMod int, escaperConds *conditions.Set, logf conditions.Logf) bool {

	if !escaperConds.Has(conditions.Grappled) {
		return false
	}
	_, escMod := BestOfStrDex(escaperStrMod, escaperDexMod)
	outcome := ContestedCheck(roller, grapplerStrMod, escMod, logf,
		"grappler (STR)", escaperName+" (best STR/DEX)")
	if outcome == AttackerWins {
		logf("[CONTEST][%s] fails to escape the grapple", escaperName)
		return false
	}
	escaperConds.Remove(conditions.Grappled)
	logf("[COND][%s] escapes the grapple", escaperName)
	return true
}
