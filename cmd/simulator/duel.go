package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/solo5e/combatsim/internal/orchestrators/duel"
)

// duelFlagSet is bound once per command so duel and duel-many keep
// independent flag state.
type duelFlagSet struct {
	targetPath  string
	targetID    string
	weaponsPath string
	weaponsID   string
	weapon      string
	actorCond   string
	enemyCond   string
	seed        uint64
	actorHP     int
	maxRounds   int
	autoPotion  bool
	shortRest   bool
}

func (f *duelFlagSet) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.targetPath, "target", "", "path to a target JSON file")
	cmd.Flags().StringVar(&f.targetID, "target-id", "poison_goblin", "builtin target id")
	cmd.Flags().StringVar(&f.weaponsPath, "weapons", "", "path to a weapons JSON file")
	cmd.Flags().StringVar(&f.weaponsID, "weapons-id", "basic", "builtin weapons id")
	cmd.Flags().StringVar(&f.weapon, "weapon", "longsword", "actor weapon name")
	cmd.Flags().StringVar(&f.actorCond, "actor-cond", "", "starting actor conditions (comma-separated)")
	cmd.Flags().StringVar(&f.enemyCond, "enemy-cond", "", "starting enemy conditions (comma-separated)")
	cmd.Flags().Uint64Var(&f.seed, "seed", 42, "RNG seed")
	cmd.Flags().IntVar(&f.actorHP, "actor-hp", 0, "override actor starting HP (0 = default)")
	cmd.Flags().IntVar(&f.maxRounds, "max-rounds", 0, "cap on turns (0 = default)")
	cmd.Flags().BoolVar(&f.autoPotion, "auto-potion", false,
		"drink a healing potion the first time the actor drops to 0 HP")
	cmd.Flags().BoolVar(&f.shortRest, "short-rest", false, "take a short rest after the fight")
}

func (f *duelFlagSet) input() *duel.SimulateDuelInput {
	return &duel.SimulateDuelInput{
		TargetPath:      f.targetPath,
		TargetID:        f.targetID,
		WeaponsPath:     f.weaponsPath,
		WeaponsID:       f.weaponsID,
		Weapon:          f.weapon,
		ActorConditions: splitList(f.actorCond),
		EnemyConditions: splitList(f.enemyCond),
		Seed:            f.seed,
		ActorHP:         f.actorHP,
		AutoPotion:      f.autoPotion,
		ShortRest:       f.shortRest,
		MaxRounds:       f.maxRounds,
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

var (
	duelFlags     duelFlagSet
	duelManyFlags duelFlagSet
	duelSamples   int
)

var duelCmd = &cobra.Command{
	Use:   "duel",
	Short: "Simulate a one-on-one duel against a target",
	RunE:  runDuelCmd,
}

var duelManyCmd = &cobra.Command{
	Use:   "duel-many",
	Short: "Simulate the duel across consecutive seeds and aggregate the outcomes",
	RunE:  runDuelManyCmd,
}

func init() {
	duelFlags.register(duelCmd)
	duelManyFlags.register(duelManyCmd)
	duelManyCmd.Flags().IntVar(&duelSamples, "samples", 100, "number of duels to run")
}

func runDuelCmd(cmd *cobra.Command, _ []string) error {
	svc, cleanup, err := newDuelService()
	if err != nil {
		return render(cmd, nil, err)
	}
	defer cleanup()

	out, err := svc.SimulateDuel(cmd.Context(), duelFlags.input())
	if err != nil {
		return render(cmd, nil, err)
	}
	return render(cmd, struct {
		*duel.Result
		RecordID string `json:"record_id"`
	}{out.Result, out.RecordID}, nil)
}

func runDuelManyCmd(cmd *cobra.Command, _ []string) error {
	svc, cleanup, err := newDuelService()
	if err != nil {
		return render(cmd, nil, err)
	}
	defer cleanup()

	out, err := svc.SimulateBatch(cmd.Context(), &duel.SimulateBatchInput{
		Duel:    *duelManyFlags.input(),
		Samples: duelSamples,
	})
	if err != nil {
		return render(cmd, nil, err)
	}
	return render(cmd, struct {
		*duel.Stats
		RecordID string `json:"record_id"`
	}{out.Stats, out.RecordID}, nil)
}
