package encounter

// Focus selects which living enemy the actor attacks each turn
type Focus string

// Focus strategies
const (
	// FocusFirst attacks the first living enemy in roster order.
	FocusFirst Focus = "first"

	// FocusLowest attacks the living enemy with the fewest hit points,
	// breaking ties by roster order.
	FocusLowest Focus = "lowest"

	// FocusRandom picks a living enemy uniformly from the seeded stream.
	FocusRandom Focus = "random"
)

// SimulateEncounterInput configures one encounter run. Encounter and weapon
// content resolve from a file path or a builtin id; a readable path wins.
type SimulateEncounterInput struct {
	EncounterPath string
	EncounterID   string
	WeaponsPath   string
	WeaponsID     string

	// Weapon names the actor's weapon; empty means the default longsword.
	Weapon string

	// Starting conditions by name. EnemyConditions apply to every enemy.
	ActorConditions []string
	EnemyConditions []string

	Seed uint64

	// ActorHP overrides the default starting hit points when positive.
	ActorHP int

	// Focus selects the actor's targeting strategy; empty means first.
	Focus Focus

	// AutoPotion drinks a healing potion the first time the actor drops
	// to 0 HP. ShortRest heals a flat amount after the encounter if the
	// actor survived.
	AutoPotion bool
	ShortRest  bool

	// MaxRounds caps the round count when positive.
	MaxRounds int
}

// SimulateEncounterOutput contains the encounter result and the id of the
// stored record.
type SimulateEncounterOutput struct {
	Result   *Result
	RecordID string
}

// Result is the outcome of one encounter
type Result struct {
	Survived         bool     `json:"survived"`
	Rounds           int      `json:"rounds"`
	RemainingEnemies int      `json:"remaining_enemies"`
	ActorHPEnd       int      `json:"actor_hp_end"`
	Log              []string `json:"log"`
}
