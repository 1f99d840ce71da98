package duel

// SimulateDuelInput configures a single duel run. Target and weapon content
// resolve from a file path or a builtin id; a readable path wins.
type SimulateDuelInput struct {
	TargetPath  string
	TargetID    string
	WeaponsPath string
	WeaponsID   string

	// Weapon names the actor's weapon within the loaded weapon list.
	Weapon string

	// Starting conditions by name, applied before initiative.
	ActorConditions []string
	EnemyConditions []string

	Seed uint64

	// ActorHP overrides the default starting hit points when positive.
	ActorHP int

	// AutoPotion drinks a healing potion the first time the actor drops
	// to 0 HP. ShortRest heals a flat amount after the duel if the actor
	// survived.
	AutoPotion bool
	ShortRest  bool

	// MaxRounds caps the turn count when positive.
	MaxRounds int
}

// SimulateDuelOutput contains the duel result and the id of the stored record
type SimulateDuelOutput struct {
	Result   *Result
	RecordID string
}

// Result is the outcome of one duel
type Result struct {
	Winner     string   `json:"winner"`
	Rounds     int      `json:"rounds"`
	ActorHPEnd int      `json:"actor_hp_end"`
	EnemyHPEnd int      `json:"enemy_hp_end"`
	Log        []string `json:"log"`
}

// SimulateBatchInput runs the same duel configuration across consecutive
// seeds. Sample i runs with seed Duel.Seed+i.
type SimulateBatchInput struct {
	Duel    SimulateDuelInput
	Samples int
}

// SimulateBatchOutput contains the aggregated stats and the id of the stored
// record.
type SimulateBatchOutput struct {
	Stats    *Stats
	RecordID string
}

// Stats aggregates outcomes over a batch of duels
type Stats struct {
	Samples   int     `json:"samples"`
	ActorWins int     `json:"actor_wins"`
	EnemyWins int     `json:"enemy_wins"`
	Draws     int     `json:"draws"`
	AvgRounds float64 `json:"avg_rounds"`
}
