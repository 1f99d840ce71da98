package entities

// Creature is a stat block: ability scores plus proficiencies. Hit points,
// conditions, and life state are tracked separately by the simulation, which
// owns all mutation during a run.
type Creature struct {
	Abilities          AbilityScores
	ProficiencyBonus   int
	SaveProficiencies  map[Ability]bool
	SkillProficiencies map[Skill]bool
}

// AbilityMod returns the creature's modifier for an ability
func (c *Creature) AbilityMod(a Ability) int {
	return c.Abilities.Mod(a)
}

// SaveMod returns the saving throw modifier, adding the proficiency bonus
// for proficient saves.
func (c *Creature) SaveMod(a Ability) int {
	m := c.AbilityMod(a)
	if c.SaveProficiencies[a] {
		m += c.ProficiencyBonus
	}
	return m
}

// SkillMod returns the skill check modifier, adding the proficiency bonus
// for proficient skills.
func (c *Creature) SkillMod(sk Skill) int {
	m := c.AbilityMod(SkillAbility(sk))
	if c.SkillProficiencies[sk] {
		m += c.ProficiencyBonus
	}
	return m
}

// AttackBonus returns the to-hit bonus for an attack using the given
// ability, adding the proficiency bonus when proficient with the weapon.
func (c *Creature) AttackBonus(a Ability, proficient bool) int {
	m := c.AbilityMod(a)
	if proficient {
		m += c.ProficiencyBonus
	}
	return m
}

// DamageMod returns the flat damage modifier for the given ability
func (c *Creature) DamageMod(a Ability) int {
	return c.AbilityMod(a)
}

// SampleFighter returns the baked-in level-1 fighter used when a simulation
// config does not supply a full creature: STR 16, DEX 14, CON 14, INT 10,
// WIS 12, CHA 8, proficiency +2, STR/CON saves, Athletics and Perception.
func SampleFighter() *Creature {
	return &Creature{
		Abilities: AbilityScores{
			Str: 16,
			Dex: 14,
			Con: 14,
			Int: 10,
			Wis: 12,
			Cha: 8,
		},
		ProficiencyBonus: 2,
		SaveProficiencies: map[Ability]bool{
			AbilityStr: true,
			AbilityCon: true,
		},
		SkillProficiencies: map[Skill]bool{
			SkillAthletics:  true,
			SkillPerception: true,
		},
	}
}
