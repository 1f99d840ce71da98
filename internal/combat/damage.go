package combat

import (
	"github.com/solo5e/combatsim/internal/dice"
	"github.com/solo5e/combatsim/internal/entities"
)

// Damage rolls weapon damage. A critical hit doubles the dice portion only
// (twice the die count); the flat modifier is added once either way.
func Damage(roller dice.Roller, dd entities.DamageDice, modifier int, crit bool) (int, error) {
	count := dd.Count
	if crit {
		count *= 2
	}
	rolled, err := roller.Roll(count, dd.Sides)
	if err != nil {
		return 0, err
	}
	return rolled + modifier, nil
}

// AdjustDamage applies the target's damage-type sets to a raw damage total.
// Immunity takes precedence over resistance, and resistance over
// vulnerability: an immune target takes 0, a resistant target takes half
// rounded down, a vulnerable target takes double. Never returns a negative.
func AdjustDamage(raw int, dtype entities.DamageType, resist, vuln, immune map[entities.DamageType]bool) int {
	if raw < 0 {
		raw = 0
	}
	switch {
	case immune[dtype]:
		return 0
	case resist[dtype]:
		return raw / 2
	case vuln[dtype]:
		return raw * 2
	default:
		return raw
	}
}
