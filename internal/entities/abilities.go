// Package entities defines the core data model for the combat engine:
// ability scores, skills, damage types, weapons, and creature stat blocks.
// Everything here is plain data; rolling and resolution live in the combat
// packages.
package entities

import (
	"strings"

	"github.com/solo5e/combatsim/internal/errors"
)

// Ability identifies one of the six ability scores
type Ability string

// Abilities
const (
	AbilityStr Ability = "str"
	AbilityDex Ability = "dex"
	AbilityCon Ability = "con"
	AbilityInt Ability = "int"
	AbilityWis Ability = "wis"
	AbilityCha Ability = "cha"
)

// ParseAbility parses an ability name as it appears in content JSON
func ParseAbility(s string) (Ability, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "str", "strength":
		return AbilityStr, nil
	case "dex", "dexterity":
		return AbilityDex, nil
	case "con", "constitution":
		return AbilityCon, nil
	case "int", "intelligence":
		return AbilityInt, nil
	case "wis", "wisdom":
		return AbilityWis, nil
	case "cha", "charisma":
		return AbilityCha, nil
	default:
		return "", errors.InvalidArgumentf("unknown ability: %q", s).
			WithMeta("field", "ability").WithMeta("value", s)
	}
}

// AbilityScores holds the six raw scores
type AbilityScores struct {
	Str int `json:"str"`
	Dex int `json:"dex"`
	Con int `json:"con"`
	Int int `json:"int"`
	Wis int `json:"wis"`
	Cha int `json:"cha"`
}

// Mod returns the modifier for the given ability
func (s AbilityScores) Mod(a Ability) int {
	switch a {
	case AbilityStr:
		return AbilityMod(s.Str)
	case AbilityDex:
		return AbilityMod(s.Dex)
	case AbilityCon:
		return AbilityMod(s.Con)
	case AbilityInt:
		return AbilityMod(s.Int)
	case AbilityWis:
		return AbilityMod(s.Wis)
	case AbilityCha:
		return AbilityMod(s.Cha)
	default:
		return 0
	}
}

// AbilityMod converts a raw score to its modifier, rounding down: 8 and 9
// are both -1, 10 and 11 are 0, 12 is +1.
func AbilityMod(score int) int {
	m := score - 10
	if m < 0 && m%2 != 0 {
		return m/2 - 1
	}
	return m / 2
}

// Skill identifies a proficiency-bearing skill
type Skill string

// Skills
const (
	SkillAthletics  Skill = "athletics"
	SkillAcrobatics Skill = "acrobatics"
	SkillStealth    Skill = "stealth"
	SkillPerception Skill = "perception"
	SkillInsight    Skill = "insight"
	SkillSurvival   Skill = "survival"
)

// SkillAbility returns the ability a skill keys off
func SkillAbility(sk Skill) Ability {
	switch sk {
	case SkillAthletics:
		return AbilityStr
	case SkillAcrobatics, SkillStealth:
		return AbilityDex
	default:
		return AbilityWis
	}
}
