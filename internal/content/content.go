// Package content loads combat content: target stat blocks, weapon lists,
// and encounter rosters. Content comes from a JSON file on disk or from the
// embedded builtin catalog, addressed by id.
package content

import (
	_ "embed"
	"encoding/json"
	"os"

	"github.com/solo5e/combatsim/internal/conditions"
	"github.com/solo5e/combatsim/internal/entities"
	"github.com/solo5e/combatsim/internal/errors"
)

//go:embed builtin/targets/poison_goblin.json
var poisonGoblinJSON []byte

//go:embed builtin/weapons/basic.json
var basicWeaponsJSON []byte

//go:embed builtin/encounters/goblin_ambush.json
var goblinAmbushJSON []byte

// BuiltinTargets maps builtin target ids to their JSON
func BuiltinTargets() map[string][]byte {
	return map[string][]byte{
		"poison_goblin": poisonGoblinJSON,
	}
}

// BuiltinWeapons maps builtin weapon list ids to their JSON
func BuiltinWeapons() map[string][]byte {
	return map[string][]byte{
		"basic": basicWeaponsJSON,
	}
}

// BuiltinEncounters maps builtin encounter ids to their JSON
func BuiltinEncounters() map[string][]byte {
	return map[string][]byte{
		"goblin_ambush": goblinAmbushJSON,
	}
}

// TargetAttack is one attack in a target's stat block. ApplyCondition, when
// present, is a condition rider the attack applies on a hit.
type TargetAttack struct {
	Name           string              `json:"name"`
	ToHit          int                 `json:"to_hit"`
	Dice           entities.DamageDice `json:"dice"`
	DamageType     entities.DamageType `json:"damage_type,omitempty"`
	Ranged         bool                `json:"ranged,omitempty"`
	ApplyCondition *conditions.Spec    `json:"apply_condition,omitempty"`
}

// ResolvedDamageType returns the attack's damage type, defaulting to
// slashing when the stat block omits it.
func (a *TargetAttack) ResolvedDamageType() entities.DamageType {
	if a.DamageType != "" {
		return a.DamageType
	}
	return entities.DamageSlashing
}

// Style returns the attack's melee or ranged style
func (a *TargetAttack) Style() conditions.AttackStyle {
	if a.Ranged {
		return conditions.Ranged
	}
	return conditions.Melee
}

// Target is an enemy stat block. Older content carries only dex_mod; newer
// content carries full ability scores, which take precedence.
type Target struct {
	Name            string                  `json:"name"`
	AC              int                     `json:"ac"`
	HP              int                     `json:"hp"`
	DexMod          int                     `json:"dex_mod,omitempty"`
	Abilities       *entities.AbilityScores `json:"abilities,omitempty"`
	Attacks         []TargetAttack          `json:"attacks,omitempty"`
	Resistances     []string                `json:"resistances,omitempty"`
	Vulnerabilities []string                `json:"vulnerabilities,omitempty"`
	Immunities      []string                `json:"immunities,omitempty"`
	Conditions      []conditions.Kind       `json:"conditions,omitempty"`
	Cover           entities.Cover          `json:"cover,omitempty"`
}

// DexterityMod returns the target's dexterity modifier, preferring full
// ability scores over the dex_mod shorthand.
func (t *Target) DexterityMod() int {
	if t.Abilities != nil {
		return t.Abilities.Mod(entities.AbilityDex)
	}
	return t.DexMod
}

// AbilityModOf returns the target's modifier for an ability. Without full
// scores only dexterity is known; every other ability is 0.
func (t *Target) AbilityModOf(ability entities.Ability) int {
	if t.Abilities != nil {
		return t.Abilities.Mod(ability)
	}
	if ability == entities.AbilityDex {
		return t.DexMod
	}
	return 0
}

// Validate rejects stat blocks that cannot drive a simulation
func (t *Target) Validate() error {
	vb := errors.NewValidationBuilder()
	if t.Name == "" {
		vb.RequiredField("name")
	}
	if t.AC <= 0 {
		vb.InvalidField("ac", "must be positive")
	}
	if t.HP <= 0 {
		vb.InvalidField("hp", "must be positive")
	}
	for _, atk := range t.Attacks {
		if atk.Dice.Count < 1 || atk.Dice.Sides < 2 {
			vb.Fieldf("attacks", "attack %q has invalid dice %s", atk.Name, atk.Dice)
		}
		if atk.ApplyCondition != nil {
			if err := atk.ApplyCondition.Validate(); err != nil {
				vb.Fieldf("attacks", "attack %q: %v", atk.Name, err)
			}
		}
	}
	for _, kind := range t.Conditions {
		if _, err := conditions.ParseKind(string(kind)); err != nil {
			vb.Fieldf("conditions", "unknown condition %q", kind)
		}
	}
	return vb.Build()
}

// Encounter is a named roster of enemy stat blocks
type Encounter struct {
	Name    string   `json:"name,omitempty"`
	Enemies []Target `json:"enemies"`
}

// Validate rejects empty rosters and invalid enemies
func (e *Encounter) Validate() error {
	if len(e.Enemies) == 0 {
		return errors.InvalidArgument("encounter must contain at least one enemy")
	}
	for _, enemy := range e.Enemies {
		if err := enemy.Validate(); err != nil {
			return errors.Wrapf(err, "enemy %q", enemy.Name)
		}
	}
	return nil
}

// load resolves content from a file path or a builtin id. A readable path
// wins; a path that fails to read falls back to the id when one is given.
func load(path, id string, builtins map[string][]byte) ([]byte, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			return data, nil
		}
		if id == "" {
			return nil, errors.Wrapf(err, "failed to read JSON from %s", path)
		}
	}

	if id != "" {
		if data, ok := builtins[id]; ok {
			return data, nil
		}
		if path == "" {
			return nil, errors.NotFoundf("built-in id %q not found", id)
		}
	}

	if path != "" {
		return nil, errors.NotFoundf("failed to load content from path %s", path)
	}
	return nil, errors.InvalidArgument("no content found (path or built-in id required)")
}

// LoadTarget loads and validates a target stat block
func LoadTarget(path, id string) (*Target, error) {
	data, err := load(path, id, BuiltinTargets())
	if err != nil {
		return nil, err
	}
	var target Target
	if err := json.Unmarshal(data, &target); err != nil {
		return nil, errors.Wrap(err, "failed to parse target JSON")
	}
	if err := target.Validate(); err != nil {
		return nil, err
	}
	return &target, nil
}

// LoadWeapons loads a weapon list
func LoadWeapons(path, id string) ([]entities.Weapon, error) {
	data, err := load(path, id, BuiltinWeapons())
	if err != nil {
		return nil, err
	}
	var weapons []entities.Weapon
	if err := json.Unmarshal(data, &weapons); err != nil {
		return nil, errors.Wrap(err, "failed to parse weapons JSON")
	}
	return weapons, nil
}

// LoadEncounter loads and validates an encounter roster
func LoadEncounter(path, id string) (*Encounter, error) {
	data, err := load(path, id, BuiltinEncounters())
	if err != nil {
		return nil, err
	}
	var enc Encounter
	if err := json.Unmarshal(data, &enc); err != nil {
		return nil, errors.Wrap(err, "failed to parse encounter JSON")
	}
	if err := enc.Validate(); err != nil {
		return nil, err
	}
	return &enc, nil
}
