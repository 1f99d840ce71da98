package conditions

import (
	"github.com/solo5e/combatsim/internal/entities"
)

// SaveFunc rolls a saving throw for the affected creature and returns the
// raw d20 and the modified total. The dice state stays with the caller so
// the condition system never owns entropy.
type SaveFunc func(ability entities.Ability, dc int) (roll, total int)

// Logf appends a formatted line to the simulation log
type Logf func(format string, args ...any)

// ProcessTurnBoundary runs condition lifecycle for one creature at a turn
// boundary. At end of turn, conditions with a recurring save attempt it
// first; success removes the condition immediately regardless of its expiry
// phase. Then any condition whose one-turn duration matches this phase
// expires.
func ProcessTurnBoundary(phase Phase, name string, set *Set, save SaveFunc, logf Logf) {
	if phase == PhaseEndOfTurn {
		kept := set.items[:0]
		for _, c := range set.items {
			if c.SaveEndsEachTurn && c.EndSave != nil {
				roll, total := save(c.EndSave.Ability, c.EndSave.DC)
				success := total >= c.EndSave.DC
				outcome := "FAIL"
				if success {
					outcome = "SUCCESS"
				}
				logf("[SAVE][%s] makes a %s save DC %d vs %s: roll=%d total=%d -> %s",
					name, c.EndSave.Ability, c.EndSave.DC, c.Kind, roll, total, outcome)
				if success {
					logf("[COND][%s] is no longer %s", name, c.Kind)
					continue
				}
			}
			kept = append(kept, c)
		}
		set.items = kept
	}

	kept := set.items[:0]
	for _, c := range set.items {
		if c.pendingOneTurn && c.EndPhase == phase {
			logf("[COND][%s] %s ends at %s", name, c.Kind, phase)
			continue
		}
		kept = append(kept, c)
	}
	set.items = kept
}

// ApplyOnHit resolves a condition rider carried by an attack that just hit.
// If the spec has an application save the target rolls it; success resists.
// Otherwise (or on a failed save) the condition becomes active, replacing
// any prior instance of the same kind. Returns whether the condition was
// applied.
func ApplyOnHit(name string, set *Set, spec Spec, save SaveFunc, logf Logf) bool {
	if spec.Save != nil {
		roll, total := save(spec.Save.Ability, spec.Save.DC)
		success := total >= spec.Save.DC
		outcome := "FAILED"
		if success {
			outcome = "RESISTED"
		}
		logf("[SAVE][%s] resists %s? %s save DC %d: roll=%d total=%d -> %s",
			name, spec.Kind, spec.Save.Ability, spec.Save.DC, roll, total, outcome)
		if success {
			return false
		}
	}

	set.Apply(FromSpec(spec))
	logf("[COND][%s] gains %s", name, spec.Kind)
	return true
}
