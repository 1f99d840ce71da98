package entities

import "strings"

// Weapon is an immutable weapon definition as loaded from content
type Weapon struct {
	Name string `json:"name"`

	// Dice is the one-handed damage expression; Versatile, when present,
	// replaces it for two-handed use.
	Dice      DamageDice  `json:"dice"`
	Versatile *DamageDice `json:"versatile,omitempty"`

	// Finesse weapons attack with the better of STR or DEX; ranged weapons
	// always use DEX.
	Finesse bool `json:"finesse,omitempty"`
	Ranged  bool `json:"ranged,omitempty"`

	// Martial weapons require martial proficiency for the attack bonus.
	Martial bool `json:"martial,omitempty"`

	DamageType DamageType `json:"damage_type,omitempty"`
}

// DamageDiceUsed returns the versatile dice when available, otherwise the
// base dice. The simulator always swings two-handed.
func (w Weapon) DamageDiceUsed() DamageDice {
	if w.Versatile != nil {
		return *w.Versatile
	}
	return w.Dice
}

// AttackAbility returns the ability the weapon attacks with
func (w Weapon) AttackAbility() Ability {
	if w.Ranged || w.Finesse {
		return AbilityDex
	}
	return AbilityStr
}

// ResolvedDamageType falls back to a per-name preset and finally slashing
// when the content omits a damage type.
func (w Weapon) ResolvedDamageType() DamageType {
	if w.DamageType != "" {
		return w.DamageType
	}
	if dt, ok := presetDamageTypes[strings.ToLower(w.Name)]; ok {
		return dt
	}
	return DamageSlashing
}

var presetDamageTypes = map[string]DamageType{
	"longsword":  DamageSlashing,
	"greatsword": DamageSlashing,
	"shortsword": DamagePiercing,
	"dagger":     DamagePiercing,
	"longbow":    DamagePiercing,
}

// FindWeapon looks a weapon up by name, case-insensitively
func FindWeapon(weapons []Weapon, name string) (Weapon, bool) {
	for _, w := range weapons {
		if strings.EqualFold(w.Name, name) {
			return w, true
		}
	}
	return Weapon{}, false
}
