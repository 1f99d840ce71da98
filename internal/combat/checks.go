package combat

import (
	"github.com/solo5e/combatsim/internal/conditions"
	"github.com/solo5e/combatsim/internal/dice"
	"github.com/solo5e/combatsim/internal/entities"
)

// CheckInput parameterizes a single ability or skill check
type CheckInput struct {
	DC       int
	Modifier int
	Mode     dice.Mode
}

// CheckResult is the outcome of an ability or skill check
type CheckResult struct {
	Roll     int
	RawRolls []int
	Total    int
	DC       int
	Passed   bool
}

// Check rolls d20 + modifier against a difficulty class
func Check(roller dice.Roller, in CheckInput) CheckResult {
	d := roller.D20(in.Mode)
	total := d.Kept + in.Modifier
	return CheckResult{
		Roll:     d.Kept,
		RawRolls: d.Raw,
		Total:    total,
		DC:       in.DC,
		Passed:   total >= in.DC,
	}
}

// SkillCheck rolls a skill check for a creature, using its skill modifier
// (ability mod plus proficiency when proficient).
func SkillCheck(roller dice.Roller, c *entities.Creature, skill entities.Skill, dc int, mode dice.Mode) CheckResult {
	return Check(roller, CheckInput{DC: dc, Modifier: c.SkillMod(skill), Mode: mode})
}

// ContestOutcome is the result of a contested check
type ContestOutcome int

// Contest outcomes. Ties go to the defender.
const (
	AttackerWins ContestOutcome = iota
	DefenderWins
	TieDefender
)

// ContestedCheck rolls d20 + modifier for both sides. The attacker must beat
// the defender's total outright; a tie resolves in the defender's favor.
func ContestedCheck(roller dice.Roller, attMod, defMod int, logf conditions.Logf, attLabel, defLabel string) ContestOutcome {
	ar := roller.D20(dice.Normal).Kept
	dr := roller.D20(dice.Normal).Kept
	at := ar + attMod
	dt := dr + defMod
	logf("[CONTEST] %s d20=%d (%d total) vs %s d20=%d (%d total)",
		attLabel, ar, at, defLabel, dr, dt)
	switch {
	case at > dt:
		return AttackerWins
	case at == dt:
		return TieDefender
	default:
		return DefenderWins
	}
}

// BestOfStrDex picks the defender's better escape modifier. Strength wins
// ties so grapplers cannot be cheated out of the default contest.
func BestOfStrDex(strMod, dexMod int) (entities.Ability, int) {
	if dexMod > strMod {
		return entities.AbilityDex, dexMod
	}
	return entities.AbilityStr, strMod
}
