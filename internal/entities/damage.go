package entities

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/solo5e/combatsim/internal/errors"
)

// DamageType classifies damage for resistance, vulnerability, and immunity
type DamageType string

// Damage types
const (
	DamageBludgeoning DamageType = "bludgeoning"
	DamagePiercing    DamageType = "piercing"
	DamageSlashing    DamageType = "slashing"
	DamageFire        DamageType = "fire"
	DamageCold        DamageType = "cold"
	DamageLightning   DamageType = "lightning"
	DamageAcid        DamageType = "acid"
	DamagePoison      DamageType = "poison"
	DamagePsychic     DamageType = "psychic"
	DamageRadiant     DamageType = "radiant"
	DamageNecrotic    DamageType = "necrotic"
	DamageThunder     DamageType = "thunder"
	DamageForce       DamageType = "force"
)

var damageTypes = map[string]DamageType{
	"bludgeoning": DamageBludgeoning,
	"piercing":    DamagePiercing,
	"slashing":    DamageSlashing,
	"fire":        DamageFire,
	"cold":        DamageCold,
	"lightning":   DamageLightning,
	"acid":        DamageAcid,
	"poison":      DamagePoison,
	"psychic":     DamagePsychic,
	"radiant":     DamageRadiant,
	"necrotic":    DamageNecrotic,
	"thunder":     DamageThunder,
	"force":       DamageForce,
}

// ParseDamageType parses a damage type name from content JSON
func ParseDamageType(s string) (DamageType, error) {
	if dt, ok := damageTypes[strings.ToLower(strings.TrimSpace(s))]; ok {
		return dt, nil
	}
	return "", errors.InvalidArgumentf("unknown damage type: %q", s).
		WithMeta("field", "damage_type").WithMeta("value", s)
}

// CollectDamageTypes builds a set from a list of names, ignoring entries
// that do not parse. Content lists are advisory; an unknown name simply
// grants nothing.
func CollectDamageTypes(names []string) map[DamageType]bool {
	set := make(map[DamageType]bool, len(names))
	for _, name := range names {
		if dt, err := ParseDamageType(name); err == nil {
			set[dt] = true
		}
	}
	return set
}

// DamageDice describes a dice expression such as 2d6
type DamageDice struct {
	Count int `json:"count"`
	Sides int `json:"sides"`
}

// String renders the XdY notation
func (d DamageDice) String() string {
	return fmt.Sprintf("%dd%d", d.Count, d.Sides)
}

// ParseDamageDice parses XdY notation, e.g. "2d6". Anything below 1d2 is
// rejected.
func ParseDamageDice(s string) (DamageDice, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(s)), "d")
	if len(parts) != 2 {
		return DamageDice{}, errors.InvalidArgumentf("invalid dice spec (expected XdY), got: %q", s).
			WithMeta("field", "dice").WithMeta("value", s)
	}
	count, err := strconv.Atoi(parts[0])
	if err != nil {
		return DamageDice{}, errors.InvalidArgumentf("invalid dice count in %q", s)
	}
	sides, err := strconv.Atoi(parts[1])
	if err != nil {
		return DamageDice{}, errors.InvalidArgumentf("invalid dice sides in %q", s)
	}
	if count < 1 || sides < 2 {
		return DamageDice{}, errors.InvalidArgument("dice must be at least 1d2").
			WithMeta("field", "dice").WithMeta("value", s)
	}
	return DamageDice{Count: count, Sides: sides}, nil
}

// Cover grants an armor class bonus to the defender
type Cover string

// Cover levels
const (
	CoverNone          Cover = ""
	CoverHalf          Cover = "half"
	CoverThreeQuarters Cover = "three_quarters"
)

// ACBonus returns the armor class bonus the cover level grants
func (c Cover) ACBonus() int {
	switch c {
	case CoverHalf:
		return 2
	case CoverThreeQuarters:
		return 5
	default:
		return 0
	}
}
