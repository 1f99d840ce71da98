package combat

import (
	"fmt"
	"strings"

	"github.com/solo5e/combatsim/internal/conditions"
	"github.com/solo5e/combatsim/internal/entities"
)

func formatD20Sequence(raw []int, kept int) string {
	switch len(raw) {
	case 0:
		return fmt.Sprintf("d20=? (keep=%d)", kept)
	case 1:
		return fmt.Sprintf("d20=%d (keep=%d)", raw[0], kept)
	case 2:
		return fmt.Sprintf("d20=%d vs d20=%d (keep=%d)", raw[0], raw[1], kept)
	default:
		parts := make([]string, len(raw))
		for i, r := range raw {
			parts[i] = fmt.Sprintf("%d", r)
		}
		return fmt.Sprintf("d20s=[%s] (keep=%d)", strings.Join(parts, ", "), kept)
	}
}

// LogAttack appends the standard attack line for an attack result
func LogAttack(logf conditions.Logf, name string, atk AttackResult) {
	rolls := formatD20Sequence(atk.RawRolls, atk.Roll)
	outcome := "MISS"
	switch {
	case atk.Crit:
		outcome = "CRIT!"
	case atk.Hit:
		outcome = "HIT"
	case atk.Nat1:
		outcome = "MISS (NAT1)"
	}
	logf("[ATTACK][%s] %s -> %s to-hit=%d vs AC=%d", name, rolls, outcome, atk.Total, atk.AC)
}

// LogDamage appends the standard damage line for a resolved damage total
func LogDamage(logf conditions.Logf, name string, dd entities.DamageDice, modifier int, crit bool, total int, dtype entities.DamageType) {
	expr := dd.String()
	prefix := ""
	if crit {
		expr = fmt.Sprintf("2x(%s)", expr)
		prefix = "crit: "
	}
	logf("[DMG][%s] %srolled %s %+d = %d [%s]", name, prefix, expr, modifier, total, dtype)
}

// LogDefense appends the effective armor class line for the defender
func LogDefense(logf conditions.Logf, name string, baseAC int, cover entities.Cover) {
	bonus := cover.ACBonus()
	logf("[DEF][%s] AC %d + cover(%+d) = %d", name, baseAC, bonus, baseAC+bonus)
}
