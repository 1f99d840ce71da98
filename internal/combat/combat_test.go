package combat_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/solo5e/combatsim/internal/combat"
	"github.com/solo5e/combatsim/internal/conditions"
	"github.com/solo5e/combatsim/internal/dice"
	"github.com/solo5e/combatsim/internal/entities"
)

func discardLog(string, ...any) {}

func collectLog(lines *[]string) conditions.Logf {
	return func(format string, args ...any) {
		*lines = append(*lines, fmt.Sprintf(format, args...))
	}
}

func TestAttackFlagsAreSelfConsistent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := rapid.Uint64().Draw(t, "seed")
		bonus := rapid.IntRange(-2, 10).Draw(t, "bonus")
		ac := rapid.IntRange(5, 25).Draw(t, "ac")

		res := combat.Attack(dice.NewSeeded(seed), dice.Normal, bonus, ac)

		assert.Equal(t, res.Roll == 20, res.Nat20)
		assert.Equal(t, res.Roll == 1, res.Nat1)
		assert.Equal(t, res.Roll+bonus, res.Total)
		expectedHit := res.Nat20 || (!res.Nat1 && res.Total >= res.AC)
		assert.Equal(t, expectedHit, res.Hit)
	})
}

func TestCritOnKeptTwenty(t *testing.T) {
	res := combat.Attack(dice.NewScripted(20), dice.Normal, 5, 10)
	assert.True(t, res.Crit)
	assert.True(t, res.Hit)
	assert.Equal(t, []int{20}, res.RawRolls)

	res = combat.Attack(dice.NewScripted(7, 20), dice.Advantage, 5, 10)
	assert.True(t, res.Crit)
	assert.Equal(t, 20, res.Roll)
	assert.Equal(t, []int{7, 20}, res.RawRolls)
}

func TestNoCritWhenTwentyDroppedByDisadvantage(t *testing.T) {
	res := combat.Attack(dice.NewScripted(20, 7), dice.Disadvantage, 5, 10)
	assert.False(t, res.Crit)
	assert.Equal(t, 7, res.Roll)
	assert.Equal(t, []int{20, 7}, res.RawRolls)
}

func TestNat20AlwaysHitsAndNat1AlwaysMisses(t *testing.T) {
	res := combat.Attack(dice.NewScripted(20), dice.Normal, 0, 100)
	assert.True(t, res.Hit)

	res = combat.Attack(dice.NewScripted(1), dice.Normal, 100, 5)
	assert.False(t, res.Hit)
	assert.True(t, res.Nat1)
}

func TestCritDamageDoublesDiceOnly(t *testing.T) {
	dd := entities.DamageDice{Count: 1, Sides: 8}

	normal, err := combat.Damage(dice.NewScripted(4), dd, 3, false)
	require.NoError(t, err)
	assert.Equal(t, 7, normal)

	crit, err := combat.Damage(dice.NewScripted(4, 5), dd, 3, true)
	require.NoError(t, err)
	assert.Equal(t, 12, crit)
}

func TestDamageWithinBounds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := rapid.Uint64().Draw(t, "seed")
		dd := entities.DamageDice{Count: 2, Sides: 6}

		got, err := combat.Damage(dice.NewSeeded(seed), dd, 3, false)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, got, 5)
		assert.LessOrEqual(t, got, 15)

		crit, err := combat.Damage(dice.NewSeeded(seed), dd, 3, true)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, crit, 7)
		assert.LessOrEqual(t, crit, 27)
	})
}

func TestAdjustDamagePrecedence(t *testing.T) {
	fire := map[entities.DamageType]bool{entities.DamageFire: true}

	// Immunity beats resistance and vulnerability.
	assert.Equal(t, 0, combat.AdjustDamage(10, entities.DamageFire, fire, fire, fire))
	// Resistance halves rounding down, and beats vulnerability.
	assert.Equal(t, 5, combat.AdjustDamage(11, entities.DamageFire, fire, fire, nil))
	assert.Equal(t, 20, combat.AdjustDamage(10, entities.DamageFire, nil, fire, nil))
	// Untyped sets leave damage alone.
	assert.Equal(t, 10, combat.AdjustDamage(10, entities.DamageFire, nil, nil, nil))
	// Sets only match their own type.
	assert.Equal(t, 10, combat.AdjustDamage(10, entities.DamageCold, fire, fire, fire))
}

func TestCheckTotalConsistent(t *testing.T) {
	res := combat.Check(dice.NewSeeded(123), combat.CheckInput{DC: 13, Modifier: 2, Mode: dice.Normal})
	assert.Equal(t, res.Total >= res.DC, res.Passed)
	assert.Equal(t, res.Roll+2, res.Total)
}

func TestSkillCheckUsesProficiency(t *testing.T) {
	f := entities.SampleFighter()

	// Athletics for the sample fighter is +5; a 10 passes DC 15 exactly.
	res := combat.SkillCheck(dice.NewScripted(10), f, entities.SkillAthletics, 15, dice.Normal)
	assert.True(t, res.Passed)
	assert.Equal(t, 15, res.Total)
}

func TestContestedCheckTiesGoToDefender(t *testing.T) {
	out := combat.ContestedCheck(dice.NewScripted(10, 10), 2, 2, discardLog, "att", "def")
	assert.Equal(t, combat.TieDefender, out)

	out = combat.ContestedCheck(dice.NewScripted(15, 10), 0, 0, discardLog, "att", "def")
	assert.Equal(t, combat.AttackerWins, out)

	out = combat.ContestedCheck(dice.NewScripted(5, 10), 0, 0, discardLog, "att", "def")
	assert.Equal(t, combat.DefenderWins, out)
}

func TestBestOfStrDexTiesToStr(t *testing.T) {
	ability, mod := combat.BestOfStrDex(3, 3)
	assert.Equal(t, entities.AbilityStr, ability)
	assert.Equal(t, 3, mod)

	ability, mod = combat.BestOfStrDex(1, 4)
	assert.Equal(t, entities.AbilityDex, ability)
	assert.Equal(t, 4, mod)
}

func TestGrappleAppliesConditionOnWin(t *testing.T) {
	conds := &conditions.Set{}
	var logs []string

	ok := combat.AttemptGrapple(dice.NewScripted(15, 5), "Hero", 3, "Gob", 1, 1, conds, collectLog(&logs))
	assert.True(t, ok)
	assert.True(t, conds.Has(conditions.Grappled))

	// A second successful grapple does not stack another instance.
	ok = combat.AttemptGrapple(dice.NewScripted(15, 5), "Hero", 3, "Gob", 1, 1, conds, collectLog(&logs))
	assert.True(t, ok)
	assert.Equal(t, 1, conds.Len())
}

func TestGrappleFailsOnTie(t *testing.T) {
	conds := &conditions.Set{}

	ok := combat.AttemptGrapple(dice.NewScripted(10, 12), "Hero", 2, "Gob", 0, 0, conds, discardLog)
	assert.False(t, ok)
	assert.False(t, conds.Has(conditions.Grappled))
}

func TestShoveKnocksProne(t *testing.T) {
	conds := &conditions.Set{}

	ok := combat.AttemptShoveProne(dice.NewScripted(12, 5), "Hero", 3, "Gob", 1, 1, conds, discardLog)
	assert.True(t, ok)
	assert.True(t, conds.Has(conditions.Prone))
}

func TestEscapeGrappleRemovesCondition(t *testing.T) {
	conds := &conditions.Set{}
	conds.Apply(conditions.NewActive(conditions.Grappled))

	// Grappler rolls 10+0, escaper defends with best STR/DEX (+2) on a 15.
	ok := combat.EscapeGrapple(dice.NewScripted(10, 15), "Gob", 1, 2, 0, conds, discardLog)
	assert.True(t, ok)
	assert.False(t, conds.Has(conditions.Grappled))
}

func TestEscapeGrappleNoopWhenNotGrappled(t *testing.T) {
	conds := &conditions.Set{}

	ok := combat.EscapeGrapple(dice.NewScripted(10, 15), "Gob", 1, 2, 0, conds, discardLog)
	assert.False(t, ok)
}

func TestEscapeGrappleFailsWhenGrapplerWins(t *testing.T) {
	conds := &conditions.Set{}
	conds.Apply(conditions.NewActive(conditions.Grappled))

	ok := combat.EscapeGrapple(dice.NewScripted(18, 5), "Gob", 1, 2, 3, conds, discardLog)
	assert.False(t, ok)
	assert.True(t, conds.Has(conditions.Grappled))
}
