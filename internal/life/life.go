// Package life implements the life, death, and recovery state machine:
// hit point tracking, the unconscious transition on dropping to 0, death
// saving throws, stabilization, and healing.
package life

import (
	"github.com/solo5e/combatsim/internal/conditions"
	"github.com/solo5e/combatsim/internal/errors"
)

// State is a creature's life state
type State string

// Life states
const (
	Conscious   State = "conscious"
	Unconscious State = "unconscious"
	Dead        State = "dead"
)

// DeathSaves tracks accumulated death saving throw tallies, each capped at 3
type DeathSaves struct {
	Successes int `json:"successes"`
	Failures  int `json:"failures"`
}

// Health is a creature's hit point and life state record. Stable only has
// meaning while Unconscious.
type Health struct {
	HP     int        `json:"hp"`
	MaxHP  int        `json:"max_hp"`
	State  State      `json:"state"`
	Stable bool       `json:"stable,omitempty"`
	Death  DeathSaves `json:"death"`
}

// NewHealth creates a conscious creature at full hit points
func NewHealth(maxHP int) Health {
	return Health{HP: maxHP, MaxHP: maxHP, State: Conscious}
}

// Dying reports whether the creature is unconscious, unstable, and at 0 HP,
// i.e. owes a death saving throw at the start of its turn.
func (h *Health) Dying() bool {
	return h.State == Unconscious && !h.Stable && h.HP == 0
}

// ApplyDamage reduces hit points, clamping at 0. A drop from positive HP to
// 0 sends the creature Unconscious and unstable, applying Prone once. Damage
// to the Dead is ignored. Returns whether the creature dropped to 0 on this
// call.
func ApplyDamage(name string, h *Health, conds *conditions.Set, dmg int, logf conditions.Logf) bool {
	if h.State == Dead {
		return false
	}

	before := h.HP
	h.HP = max(h.HP-dmg, 0)
	logf("[DMG][%s] %d -> %d (-%d)", name, before, h.HP, dmg)

	if before > 0 && h.HP == 0 {
		h.State = Unconscious
		h.Stable = false
		if !conds.Has(conditions.Prone) {
			conds.Apply(conditions.NewActive(conditions.Prone))
			logf("[COND][%s] gains prone (unconscious)", name)
		}
		logf("[STATE][%s] drops to 0 HP -> unconscious", name)
		return true
	}
	return false
}

// Heal restores hit points, clamping at max. An unconscious creature whose
// HP rises above 0 wakes with its death save tallies reset. Healing the Dead
// does nothing.
func Heal(name string, h *Health, amount int, logf conditions.Logf) {
	if amount <= 0 || h.State == Dead {
		return
	}
	before := h.HP
	wasUnconscious := h.State == Unconscious
	h.HP = min(h.HP+amount, h.MaxHP)
	if wasUnconscious && h.HP > 0 {
		h.State = Conscious
		h.Stable = false
		h.Death = DeathSaves{}
		logf("[HEAL][%s] +%d HP (%d -> %d) and regains consciousness", name, amount, before, h.HP)
		return
	}
	logf("[HEAL][%s] +%d HP (%d -> %d)", name, amount, before, h.HP)
}

// Stabilize marks an unconscious creature stable at 0 HP, ending death
// saves. No-op in any other state.
func Stabilize(name string, h *Health, logf conditions.Logf) {
	if h.State != Unconscious {
		return
	}
	h.Stable = true
	logf("[STATE][%s] is stabilized at 0 HP", name)
}

// DeathSave rolls one death saving throw at the start of the creature's
// turn. A natural 20 restores 1 HP and wakes the creature; a natural 1
// counts as two failures; 10 or higher is a success; anything else a
// failure. Three successes stabilize, three failures kill. Only legal while
// dying (unconscious, unstable, 0 HP). Returns a short outcome note.
func DeathSave(name string, h *Health, d20 func() int, logf conditions.Logf) (string, error) {
	if !h.Dying() {
		return "", errors.FailedPreconditionf("death save while not dying: state=%s stable=%v hp=%d",
			h.State, h.Stable, h.HP)
	}

	roll := d20()
	var note string
	switch {
	case roll == 20:
		h.Death = DeathSaves{}
		h.HP = 1
		h.State = Conscious
		h.Stable = false
		note = "NAT20 -> regain 1 HP & wake"
	case roll == 1:
		h.Death.Failures = min(h.Death.Failures+2, 3)
		note = "NAT1 -> 2 failures"
	case roll >= 10:
		h.Death.Successes = min(h.Death.Successes+1, 3)
		note = "success"
	default:
		h.Death.Failures = min(h.Death.Failures+1, 3)
		note = "failure"
	}

	if h.Death.Failures >= 3 {
		h.State = Dead
		logf("[DEATHSAVE][%s] roll=%d -> failure tally=%d, success tally=%d -> DEAD",
			name, roll, h.Death.Failures, h.Death.Successes)
		return note, nil
	}
	if h.Death.Successes >= 3 {
		h.State = Unconscious
		h.Stable = true
		logf("[DEATHSAVE][%s] roll=%d -> stabilized (3 successes)", name, roll)
		return note, nil
	}

	logf("[DEATHSAVE][%s] roll=%d -> %s (S=%d, F=%d)",
		name, roll, note, h.Death.Successes, h.Death.Failures)
	return note, nil
}
