package content_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solo5e/combatsim/internal/conditions"
	"github.com/solo5e/combatsim/internal/content"
	"github.com/solo5e/combatsim/internal/entities"
	"github.com/solo5e/combatsim/internal/errors"
)

func TestLoadBuiltinTarget(t *testing.T) {
	target, err := content.LoadTarget("", "poison_goblin")
	require.NoError(t, err)

	assert.Equal(t, "Poison Goblin", target.Name)
	assert.Equal(t, 13, target.AC)
	assert.Equal(t, 2, target.DexterityMod())
	require.Len(t, target.Attacks, 1)

	atk := target.Attacks[0]
	assert.Equal(t, entities.DamagePiercing, atk.ResolvedDamageType())
	assert.Equal(t, conditions.Melee, atk.Style())
	require.NotNil(t, atk.ApplyCondition)
	assert.Equal(t, conditions.Poisoned, atk.ApplyCondition.Kind)
	assert.True(t, atk.ApplyCondition.Duration.SaveEndsEachTurn)

	resist := entities.CollectDamageTypes(target.Resistances)
	assert.True(t, resist[entities.DamagePoison])
}

func TestLoadBuiltinWeapons(t *testing.T) {
	weapons, err := content.LoadWeapons("", "basic")
	require.NoError(t, err)
	require.NotEmpty(t, weapons)

	longsword, ok := entities.FindWeapon(weapons, "longsword")
	require.True(t, ok)
	assert.Equal(t, entities.DamageDice{Count: 1, Sides: 10}, longsword.DamageDiceUsed())

	longbow, ok := entities.FindWeapon(weapons, "longbow")
	require.True(t, ok)
	assert.True(t, longbow.Ranged)
	assert.Equal(t, entities.AbilityDex, longbow.AttackAbility())
}

func TestLoadBuiltinEncounter(t *testing.T) {
	enc, err := content.LoadEncounter("", "goblin_ambush")
	require.NoError(t, err)
	assert.Equal(t, "Goblin Ambush", enc.Name)
	assert.Len(t, enc.Enemies, 3)
	for _, enemy := range enc.Enemies {
		assert.NotEmpty(t, enemy.Attacks)
	}
}

func TestLoadUnknownBuiltinID(t *testing.T) {
	_, err := content.LoadTarget("", "tarrasque")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestLoadNeitherPathNorID(t *testing.T) {
	_, err := content.LoadTarget("", "")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestLoadFromPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dummy.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"name": "Dummy", "ac": 10, "hp": 5,
		"attacks": [{"name": "Slam", "to_hit": 2, "dice": {"count": 1, "sides": 4}}]
	}`), 0o644))

	target, err := content.LoadTarget(path, "")
	require.NoError(t, err)
	assert.Equal(t, "Dummy", target.Name)
	assert.Equal(t, 0, target.DexterityMod())
}

func TestLoadMissingPathFallsBackToID(t *testing.T) {
	target, err := content.LoadTarget("/nonexistent/target.json", "poison_goblin")
	require.NoError(t, err)
	assert.Equal(t, "Poison Goblin", target.Name)

	_, err = content.LoadTarget("/nonexistent/target.json", "")
	require.Error(t, err)
}

func TestTargetValidate(t *testing.T) {
	bad := &content.Target{Name: "", AC: 0, HP: -1}
	err := bad.Validate()
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))

	badCond := &content.Target{
		Name: "X", AC: 10, HP: 5,
		Conditions: []conditions.Kind{"dazed"},
	}
	assert.Error(t, badCond.Validate())
}

func TestEncounterValidateRejectsEmpty(t *testing.T) {
	enc := &content.Encounter{Name: "Empty"}
	err := enc.Validate()
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestTargetAbilityModFallbacks(t *testing.T) {
	shorthand := &content.Target{Name: "X", AC: 10, HP: 5, DexMod: 3}
	assert.Equal(t, 3, shorthand.AbilityModOf(entities.AbilityDex))
	assert.Equal(t, 0, shorthand.AbilityModOf(entities.AbilityCon))

	full := &content.Target{
		Name: "Y", AC: 10, HP: 5, DexMod: 3,
		Abilities: &entities.AbilityScores{Str: 16, Dex: 8, Con: 14, Int: 10, Wis: 10, Cha: 10},
	}
	// Full scores win over the shorthand.
	assert.Equal(t, -1, full.AbilityModOf(entities.AbilityDex))
	assert.Equal(t, 3, full.AbilityModOf(entities.AbilityStr))
	assert.Equal(t, -1, full.DexterityMod())
}
