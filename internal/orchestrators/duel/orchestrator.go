// Package duel implements the duel orchestrator: a seeded one-on-one combat
// simulation between the sample fighter and a loaded target stat block, plus
// batch runs over consecutive seeds.
package duel

//go:generate mockgen -destination=mock/mock_service.go -package=duelmock github.com/solo5e/combatsim/internal/orchestrators/duel Service

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
	"github.com/solo5e/combatsim/internal/pkg/idgen"
	"github.com/solo5e/combatsim/internal/repositories/simulation"
)

const (
	// DefaultActorHP and DefaultActorAC describe the sample fighter when
	// the input does not override them.
	DefaultActorHP = 12
	DefaultActorAC = 16

	// DefaultMaxRounds caps a duel that never resolves
	DefaultMaxRounds = 30

	// potionHealHP is the flat healing of an auto-potion (2d4+2 averaged);
	// shortRestHealHP is the flat healing of a post-duel short rest.
	potionHealHP     = 7
	shortRestHealHP  = 5
	actorDisplayName = "Actor"
)

// Service defines the interface for duel simulations
type Service interface {
	// SimulateDuel runs one seeded duel and stores the result
	SimulateDuel(ctx context.Context, input *SimulateDuelInput) (*SimulateDuelOutput, error)

	// SimulateBatch runs the duel across consecutive seeds and stores the
	// aggregated stats.
	SimulateBatch(ctx context.Context, input *SimulateBatchInput) (*SimulateBatchOutput, error)
}

// Config holds the dependencies for the duel orchestrator
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

// NewOrchestrator creates a new duel orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		resultRepo: cfg.ResultRepo,
		idGen:      cfg.IDGenerator,
	}, nil
}

// SimulateDuel runs one seeded duel and stores the result
func (o *orchestrator) SimulateDuel(ctx context.Context, input *SimulateDuelInput) (*SimulateDuelOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	result, err := runDuel(input)
	if err != nil {
		return nil, err
	}

	record := &simulation.Record{
		ID:     o.idGen.Generate(),
		Kind:   simulation.KindDuel,
		Seed:   input.Seed,
		Winner: result.Winner,
		Rounds: result.Rounds,
	}
	if _, err := o.resultRepo.Create(ctx, simulation.CreateInput{Record: record}); err != nil {
		return nil, errors.Wrap(err, "failed to store duel result")
	}

	slog.InfoContext(ctx, "duel simulated",
		"record_id", record.ID,
		"seed", input.Seed,
		"winner", result.Winner,
		"rounds", result.Rounds)

	return &SimulateDuelOutput{Result: result, RecordID: record.ID}, nil
}

// SimulateBatch runs the duel across consecutive seeds. Any failing sample
// aborts the whole batch.
func (o *orchestrator) SimulateBatch(ctx context.Context, input *SimulateBatchInput) (*SimulateBatchOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Samples < 0 {
		return nil, errors.InvalidArgument("samples must not be negative").
			WithMeta("field", "Samples").WithMeta("value", input.Samples)
	}

	stats := &Stats{Samples: input.Samples}
	var sumRounds int
	for i := 0; i < input.Samples; i++ {
		run := input.Duel
		run.Seed = input.Duel.Seed + uint64(i)
		result, err := runDuel(&run)
		if err != nil {
			return nil, errors.Wrapf(err, "sample %d (seed %d)", i, run.Seed)
		}
		sumRounds += result.Rounds
		switch result.Winner {
		case "actor":
			stats.ActorWins++
		case "enemy":
			stats.EnemyWins++
		default:
			stats.Draws++
		}
	}
	stats.AvgRounds = float64(sumRounds) / float64(max(input.Samples, 1))

	record := &simulation.Record{
		ID:        o.idGen.Generate(),
		Kind:      simulation.KindBatch,
		Seed:      input.Duel.Seed,
		Samples:   stats.Samples,
		ActorWins: stats.ActorWins,
		EnemyWins: stats.EnemyWins,
		Draws:     stats.Draws,
	}
	if _, err := o.resultRepo.Create(ctx, simulation.CreateInput{Record: record}); err != nil {
		return nil, errors.Wrap(err, "failed to store batch result")
	}

	slog.InfoContext(ctx, "duel batch simulated",
		"record_id", record.ID,
		"samples", stats.Samples,
		"actor_wins", stats.ActorWins,
		"enemy_wins", stats.EnemyWins,
		"draws", stats.Draws)

	return &SimulateBatchOutput{Stats: stats, RecordID: record.ID}, nil
}

// runDuel executes the duel loop. Every roll comes from a single seeded
// stream so an identical input replays an identical fight.
func runDuel(input *SimulateDuelInput) (*Result, error) {
	if input.Weapon == "" {
		return nil, errors.InvalidArgument("weapon is required").WithMeta("field", "Weapon")
	}

	target, err := content.LoadTarget(input.TargetPath, input.TargetID)
	if err != nil {
		return nil, err
	}
	if len(target.Attacks) == 0 {
		return nil, errors.InvalidArgument("target has no attacks").
			WithMeta("target", target.Name)
	}
	enemyAttack := target.Attacks[0]

	weapons, err := content.LoadWeapons(input.WeaponsPath, input.WeaponsID)
	if err != nil {
		return nil, err
	}
	weapon, ok := entities.FindWeapon(weapons, input.Weapon)
	if !ok {
		return nil, errors.NotFoundf("weapon %q not found", input.Weapon)
	}

	actor := entities.SampleFighter()
	actorHP := input.ActorHP
	if actorHP <= 0 {
		actorHP = DefaultActorHP
	}
	actorAC := DefaultActorAC
	health := life.NewHealth(actorHP)
	enemyHP := target.HP

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

	var actorConds, enemyConds conditions.Set
	actorStart, err := conditions.ParseKindList(input.ActorConditions)
	if err != nil {
		return nil, err
	}
	for _, kind := range actorStart {
		logf("[COND][%s] starts with %s", actorDisplayName, kind)
		actorConds.Apply(conditions.NewActive(kind))
	}
	for _, kind := range target.Conditions {
		logf("[COND][%s] starts with %s", target.Name, kind)
		enemyConds.Apply(conditions.NewActive(kind))
	}
	enemyStart, err := conditions.ParseKindList(input.EnemyConditions)
	if err != nil {
		return nil, err
	}
	for _, kind := range enemyStart {
		logf("[COND][%s] starts with %s", target.Name, kind)
		enemyConds.Apply(conditions.NewActive(kind))
	}

	roller := dice.NewSeeded(input.Seed)
	actorSave := func(ability entities.Ability, _ int) (int, int) {
		roll := roller.D20(dice.Normal).Kept
		return roll, roll + actor.SaveMod(ability)
	}
	enemySave := func(ability entities.Ability, _ int) (int, int) {
		roll := roller.D20(dice.Normal).Kept
		return roll, roll + target.AbilityModOf(ability)
	}

	actorInit := roller.D20(dice.Normal).Kept + actor.AbilityMod(entities.AbilityDex)
	enemyInit := roller.D20(dice.Normal).Kept + target.DexterityMod()
	actorTurn := actorInit >= enemyInit

	logf("[START] %s (AC %d, HP %d) vs %s (AC %d, HP %d)",
		actorDisplayName, actorAC, actorHP, target.Name, target.AC, target.HP)
	starter := actorDisplayName
	if !actorTurn {
		starter = target.Name
	}
	logf("[INIT] %s %d vs %s %d -> %s starts",
		actorDisplayName, actorInit, target.Name, enemyInit, starter)

	resist := entities.CollectDamageTypes(target.Resistances)
	vuln := entities.CollectDamageTypes(target.Vulnerabilities)
	immune := entities.CollectDamageTypes(target.Immunities)

	maxRounds := input.MaxRounds
	if maxRounds <= 0 {
		maxRounds = DefaultMaxRounds
	}
	potionLeft := input.AutoPotion

	rounds := 0
	for rounds < maxRounds && health.State != life.Dead && enemyHP > 0 {
		rounds++
		turnName := actorDisplayName
		if !actorTurn {
			turnName = target.Name
		}
		logf("[ROUND] %d -> %s", rounds, turnName)

		if actorTurn {
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

			switch health.State {
			case life.Dead:
				logf("[TURN][%s] is dead; skipping", actorDisplayName)
			case life.Unconscious:
				logf("[TURN][%s] is unconscious; skipping actions", actorDisplayName)
			case life.Conscious:
				mode := conditions.VantageFromConditions(&actorConds, &enemyConds, actorStyle).Mode()
				effectiveAC := target.AC + target.Cover.ACBonus()
				combat.LogDefense(logf, target.Name, target.AC, target.Cover)
				atk := combat.Attack(roller, mode, attackBonus, effectiveAC)
				combat.LogAttack(logf, actorDisplayName, atk)
				if atk.Hit {
					raw, dmgErr := combat.Damage(roller, weaponDice, damageMod, atk.Crit)
					if dmgErr != nil {
						return nil, dmgErr
					}
					dmg := combat.AdjustDamage(raw, weaponDamageType, resist, vuln, immune)
					before := enemyHP
					enemyHP = max(enemyHP-dmg, 0)
					combat.LogDamage(logf, actorDisplayName, weaponDice, damageMod, atk.Crit, dmg, weaponDamageType)
					logf("[HP][%s] %d -> %d", target.Name, before, enemyHP)
				}
			}

			conditions.ProcessTurnBoundary(conditions.PhaseEndOfTurn, actorDisplayName, &actorConds, actorSave, logf)
		} else {
			conditions.ProcessTurnBoundary(conditions.PhaseStartOfTurn, target.Name, &enemyConds, enemySave, logf)

			if enemyHP > 0 {
				mode := conditions.VantageFromConditions(&enemyConds, &actorConds, enemyAttack.Style()).Mode()
				combat.LogDefense(logf, actorDisplayName, actorAC, entities.CoverNone)
				atk := combat.Attack(roller, mode, enemyAttack.ToHit, actorAC)
				combat.LogAttack(logf, enemyAttack.Name, atk)
				if atk.Hit {
					dmg, dmgErr := combat.Damage(roller, enemyAttack.Dice, 0, atk.Crit)
					if dmgErr != nil {
						return nil, dmgErr
					}
					combat.LogDamage(logf, enemyAttack.Name, enemyAttack.Dice, 0, atk.Crit, dmg, enemyAttack.ResolvedDamageType())
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
					if enemyAttack.ApplyCondition != nil {
						conditions.ApplyOnHit(actorDisplayName, &actorConds, *enemyAttack.ApplyCondition, actorSave, logf)
					}
				}
			}

			conditions.ProcessTurnBoundary(conditions.PhaseEndOfTurn, target.Name, &enemyConds, enemySave, logf)
		}

		if health.State == life.Dead || enemyHP <= 0 {
			break
		}
		actorTurn = !actorTurn
	}

	var winner string
	switch {
	case enemyHP <= 0 && health.HP > 0:
		winner = "actor"
	case enemyHP <= 0:
		winner = "draw"
	case health.State == life.Dead || health.HP <= 0:
		winner = "enemy"
	default:
		winner = "draw"
	}

	if input.ShortRest && health.State != life.Dead {
		logf("[REST][%s] short rest: +%d HP", actorDisplayName, shortRestHealHP)
		life.Heal(actorDisplayName, &health, shortRestHealHP, logf)
	}

	logf("[END] winner=%s actor_hp=%d enemy_hp=%d rounds=%d", winner, health.HP, enemyHP, rounds)

	return &Result{
		Winner:     winner,
		Rounds:     rounds,
		ActorHPEnd: health.HP,
		EnemyHPEnd: enemyHP,
		Log:        logs,
	}, nil
}
