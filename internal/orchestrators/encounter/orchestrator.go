// Package encounter implements the encounter orchestrator: a seeded fight
// between the sample fighter and a roster of enemies, with configurable
// targeting.
package encounter

//go:generate mockgen -destination=mock/mock_service.go -package=encountermock github.com/solo5e/combatsim/internal/orchestrators/encounter Service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/solo5e/combatsim/internal/combat"
	"github.com/solo5e/combatsim/internal/conditions"
	"github.com/solo5e/combatsim/internal/content"
	"github.com/solo5e/combatsim/internal/dice"
	"github.com/solo5e/combatsim/internal/entities"
	"github.com/solo5e/combatsim/internal/errors"
	"github.com/solo5e/combatsim/internal/life"
	"github.com/solo5e/combatsim/internal/orchestrators/duel"
	"github.com/solo5e/combatsim/internal/pkg/idgen"
	"github.com/solo5e/combatsim/internal/repositories/simulation"
)

const (
	// DefaultMaxRounds caps an encounter that never resolves. Encounters
	// run longer than duels since one round covers every combatant.
	DefaultMaxRounds = 120

	// DefaultWeapon arms the actor when the input does not choose.
	DefaultWeapon    = "longsword"
	defaultWeaponsID = "basic"
	potionHealHP     = 7
	shortRestHealHP  = 5
	actorDisplayName = "Actor"
)

// Service defines the interface for encounter simulations
type Service interface {
	// SimulateEncounter runs one seeded encounter and stores the result
	SimulateEncounter(ctx context.Context, input *SimulateEncounterInput) (*SimulateEncounterOutput, error)
}

// Config holds the dependencies for the encounter orchestrator
type Config struct {
	ResultRepo  simulation.Repository
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.ResultRepo == nil {
		vb.RequiredField("ResultRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	resultRepo simulation.Repository
	idGen      idgen.Generator
}

// NewOrchestrator creates a new encounter orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		resultRepo: cfg.ResultRepo,
		idGen:      cfg.IDGenerator,
	}, nil
}

// SimulateEncounter runs one seeded encounter and stores the result
func (o *orchestrator) SimulateEncounter(ctx context.Context, input *SimulateEncounterInput) (*SimulateEncounterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	result, err := runEncounter(input)
	if err != nil {
		return nil, err
	}

	record := &simulation.Record{
		ID:               o.idGen.Generate(),
		Kind:             simulation.KindEncounter,
		Seed:             input.Seed,
		Rounds:           result.Rounds,
		Survived:         result.Survived,
		RemainingEnemies: result.RemainingEnemies,
	}
	if _, err := o.resultRepo.Create(ctx, simulation.CreateInput{Record: record}); err != nil {
		return nil, errors.Wrap(err, "failed to store encounter result")
	}

	slog.InfoContext(ctx, "encounter simulated",
		"record_id", record.ID,
		"seed", input.Seed,
		"survived", result.Survived,
		"remaining_enemies", result.RemainingEnemies,
		"rounds", result.Rounds)

	return &SimulateEncounterOutput{Result: result, RecordID: record.ID}, nil
}

// enemyState is one roster entry's mutable fight state
type enemyState struct {
	data   content.Target
	hp     int
	resist map[entities.DamageType]bool
	vuln   map[entities.DamageType]bool
	immune map[entities.DamageType]bool
	conds  conditions.Set
}

func parseFocus(f Focus) (Focus, error) {
	switch f {
	case "", FocusFirst:
		return FocusFirst, nil
	case FocusLowest, FocusRandom:
		return f, nil
	default:
		return "", errors.InvalidArgumentf("unknown focus strategy: %q", f).
			WithMeta("field", "Focus").WithMeta("value", string(f))
	}
}

// selectTarget picks the index of the enemy the actor attacks, or -1 when
// none are standing. Random selection draws from the same seeded stream as
// everything else.
func selectTarget(focus Focus, enemies []*enemyState, roller dice.Roller) (int, error) {
	alive := make([]int, 0, len(enemies))
	for i, e := range enemies {
		if e.hp > 0 {
			alive = append(alive, i)
		}
	}
	if len(alive) == 0 {
		return -1, nil
	}

	switch focus {
	case FocusLowest:
		best := alive[0]
		for _, i := range alive[1:] {
			if enemies[i].hp < enemies[best].hp {
				best = i
			}
		}
		return best, nil
	case FocusRandom:
		roll, err := roller.Roll(1, len(alive))
		if err != nil {
			return -1, err
		}
		return alive[roll-1], nil
	default:
		return alive[0], nil
	}
}

// runEncounter executes the encounter loop. One round covers the actor's
// turn and every living enemy's turn.
func runEncounter(input *SimulateEncounterInput) (*Result, error) {
	focus, err := parseFocus(input.Focus)
	if err != nil {
		return nil, err
	}

	enc, err := content.LoadEncounter(input.EncounterPath, input.EncounterID)
	if err != nil {
		return nil, err
	}

	weaponsPath, weaponsID := input.WeaponsPath, input.WeaponsID
	if weaponsPath == "" && weaponsID == "" {
		weaponsID = defaultWeaponsID
	}
	weapons, err := content.LoadWeapons(weaponsPath, weaponsID)
	if err != nil {
		return nil, err
	}
	weaponName := input.Weapon
	if weaponName == "" {
		weaponName = DefaultWeapon
	}
	weapon, ok := entities.FindWeapon(weapons, weaponName)
	if !ok {
		return nil, errors.NotFoundf("weapon %q not found", weaponName)
	}

	actor := entities.SampleFighter()
	actorHP := input.ActorHP
	if actorHP <= 0 {
		actorHP = duel.DefaultActorHP
	}
	actorAC := duel.DefaultActorAC
	health := life.NewHealth(actorHP)

	weaponDice := weapon.DamageDiceUsed()
	weaponDamageType := weapon.ResolvedDamageType()
	actorStyle := conditions.Melee
	if weapon.Ranged {
		actorStyle = conditions.Ranged
	}
	actorAbility := weapon.AttackAbility()
	attackBonus := actor.AttackBonus(actorAbility, true)
	damageMod := actor.DamageMod(actorAbility)

	var logs []string
	logf := func(format string, args ...any) {
		logs = append(logs, fmt.Sprintf(format, args...))
	}
	logf("[ENCOUNTER] %s vs %d enemies (focus: %s)", enc.Name, len(enc.Enemies), focus)

	var actorConds conditions.Set
	actorStart, err := conditions.ParseKindList(input.ActorConditions)
	if err != nil {
		return nil, err
	}
	for _, kind := range actorStart {
		logf("[COND][%s] starts with %s", actorDisplayName, kind)
		actorConds.Apply(conditions.NewActive(kind))
	}

	enemyStart, err := conditions.ParseKindList(input.EnemyConditions)
	if err != nil {
		return nil, err
	}
	enemies := make([]*enemyState, 0, len(enc.Enemies))
	for _, target := range enc.Enemies {
		state := &enemyState{
			data:   target,
			hp:     target.HP,
			resist: entities.CollectDamageTypes(target.Resistances),
			vuln:   entities.CollectDamageTypes(target.Vulnerabilities),
			immune: entities.CollectDamageTypes(target.Immunities),
		}
		for _, kind := range target.Conditions {
			logf("[COND][%s] starts with %s", target.Name, kind)
			state.conds.Apply(conditions.NewActive(kind))
		}
		for _, kind := range enemyStart {
			logf("[COND][%s] starts with %s", target.Name, kind)
			state.conds.Apply(conditions.NewActive(kind))
		}
		enemies = append(enemies, state)
	}

	roller := dice.NewSeeded(input.Seed)
	actorSave := func(ability entities.Ability, _ int) (int, int) {
		roll := roller.D20(dice.Normal).Kept
		return roll, roll + actor.SaveMod(ability)
	}

	maxRounds := input.MaxRounds
	if maxRounds <= 0 {
		maxRounds = DefaultMaxRounds
	}
	potionLeft := input.AutoPotion

	anyAlive := func() bool {
		for _, e := range enemies {
			if e.hp > 0 {
				return true
			}
		}
		return false
	}

	rounds := 0
	for rounds < maxRounds {
		if health.State == life.Dead || health.HP <= 0 {
			break
		}
		if !anyAlive() {
			break
		}

		rounds++
		logf("[ROUND] %d", rounds)

		if health.Dying() {
			note, dsErr := life.DeathSave(actorDisplayName, &health, func() int {
				return roller.D20(dice.Normal).Kept
			}, logf)
			if dsErr != nil {
				return nil, dsErr
			}
			logf("[TURN][%s] death save: %s", actorDisplayName, note)
		}

		conditions.ProcessTurnBoundary(conditions.PhaseStartOfTurn, actorDisplayName, &actorConds, actorSave, logf)

		if health.State == life.Conscious {
			idx, selErr := selectTarget(focus, enemies, roller)
			if selErr != nil {
				return nil, selErr
			}
			if idx >= 0 {
				enemy := enemies[idx]
				mode := conditions.VantageFromConditions(&actorConds, &enemy.conds, actorStyle).Mode()
				effectiveAC := enemy.data.AC + enemy.data.Cover.ACBonus()
				combat.LogDefense(logf, enemy.data.Name, enemy.data.AC, enemy.data.Cover)
				atk := combat.Attack(roller, mode, attackBonus, effectiveAC)
				combat.LogAttack(logf, actorDisplayName, atk)
				if atk.Hit {
					raw, dmgErr := combat.Damage(roller, weaponDice, damageMod, atk.Crit)
					if dmgErr != nil {
						return nil, dmgErr
					}
					dmg := combat.AdjustDamage(raw, weaponDamageType, enemy.resist, enemy.vuln, enemy.immune)
					before := enemy.hp
					enemy.hp = max(enemy.hp-dmg, 0)
					combat.LogDamage(logf, actorDisplayName, weaponDice, damageMod, atk.Crit, dmg, weaponDamageType)
					logf("[HP][%s] %d -> %d", enemy.data.Name, before, enemy.hp)
					if enemy.hp == 0 {
						logf("[ENEMY] %s defeated", enemy.data.Name)
					}
				} else {
					logf("[HP][%s] %d HP", enemy.data.Name, enemy.hp)
				}
			}
		}

		conditions.ProcessTurnBoundary(conditions.PhaseEndOfTurn, actorDisplayName, &actorConds, actorSave, logf)

		for _, enemy := range enemies {
			if enemy.hp <= 0 {
				continue
			}
			enemySave := func(ability entities.Ability, _ int) (int, int) {
				roll := roller.D20(dice.Normal).Kept
				return roll, roll + enemy.data.AbilityModOf(ability)
			}

			conditions.ProcessTurnBoundary(conditions.PhaseStartOfTurn, enemy.data.Name, &enemy.conds, enemySave, logf)

			if enemy.hp > 0 && len(enemy.data.Attacks) > 0 {
				atkSpec := enemy.data.Attacks[0]
				mode := conditions.VantageFromConditions(&enemy.conds, &actorConds, atkSpec.Style()).Mode()
				combat.LogDefense(logf, actorDisplayName, actorAC, entities.CoverNone)
				atk := combat.Attack(roller, mode, atkSpec.ToHit, actorAC)
				combat.LogAttack(logf, atkSpec.Name, atk)
				if atk.Hit {
					dmg, dmgErr := combat.Damage(roller, atkSpec.Dice, 0, atk.Crit)
					if dmgErr != nil {
						return nil, dmgErr
					}
					combat.LogDamage(logf, atkSpec.Name, atkSpec.Dice, 0, atk.Crit, dmg, atkSpec.ResolvedDamageType())
					dropped := life.ApplyDamage(actorDisplayName, &health, &actorConds, dmg, logf)
					logf("[HP][%s] %d HP", actorDisplayName, health.HP)
					if dropped {
						logf("[ITEM][%s] drops to 0 HP", actorDisplayName)
						if potionLeft {
							potionLeft = false
							life.Heal(actorDisplayName, &health, potionHealHP, logf)
							logf("[ITEM][%s] auto-potion consumed (2d4+2 ~ %d)", actorDisplayName, potionHealHP)
						}
					}
					if atkSpec.ApplyCondition != nil {
						conditions.ApplyOnHit(actorDisplayName, &actorConds, *atkSpec.ApplyCondition, actorSave, logf)
					}
				}
			}

			conditions.ProcessTurnBoundary(conditions.PhaseEndOfTurn, enemy.data.Name, &enemy.conds, enemySave, logf)
		}
	}

	remaining := 0
	for _, e := range enemies {
		if e.hp > 0 {
			remaining++
		}
	}
	survived := health.HP > 0 && health.State != life.Dead

	if input.ShortRest && health.State != life.Dead {
		logf("[REST][%s] short rest: +%d HP", actorDisplayName, shortRestHealHP)
		life.Heal(actorDisplayName, &health, shortRestHealHP, logf)
	}

	logf("[ENCOUNTER_END] survived=%t remaining_enemies=%d rounds=%d", survived, remaining, rounds)

	return &Result{
		Survived:         survived,
		Rounds:           rounds,
		RemainingEnemies: remaining,
		ActorHPEnd:       health.HP,
		Log:              logs,
	}, nil
}
