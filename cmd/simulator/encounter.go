package main

import (
	"github.com/spf13/cobra"

	"github.com/solo5e/combatsim/internal/orchestrators/encounter"
)

var (
	encPath       string
	encID         string
	encWeaponsP   string
	encWeaponsID  string
	encWeapon     string
	encActorCond  string
	encEnemyCond  string
	encSeed       uint64
	encActorHP    int
	encFocus      string
	encMaxRounds  int
	encAutoPotion bool
	encShortRest  bool
)

var encounterCmd = &cobra.Command{
	Use:   "encounter",
	Short: "Simulate a fight against a roster of enemies",
	RunE:  runEncounterCmd,
}

func init() {
	encounterCmd.Flags().StringVar(&encPath, "encounter", "", "path to an encounter JSON file")
	encounterCmd.Flags().StringVar(&encID, "encounter-id", "goblin_ambush", "builtin encounter id")
	encounterCmd.Flags().StringVar(&encWeaponsP, "weapons", "", "path to a weapons JSON file")
	encounterCmd.Flags().StringVar(&encWeaponsID, "weapons-id", "", "builtin weapons id")
	encounterCmd.Flags().StringVar(&encWeapon, "weapon", "", "actor weapon name (default longsword)")
	encounterCmd.Flags().StringVar(&encActorCond, "actor-cond", "", "starting actor conditions (comma-separated)")
	encounterCmd.Flags().StringVar(&encEnemyCond, "enemy-cond", "", "starting conditions applied to each enemy (comma-separated)")
	encounterCmd.Flags().Uint64Var(&encSeed, "seed", 42, "RNG seed")
	encounterCmd.Flags().IntVar(&encActorHP, "actor-hp", 0, "override actor starting HP (0 = default)")
	encounterCmd.Flags().StringVar(&encFocus, "focus", "first", "targeting strategy: first | lowest | random")
	encounterCmd.Flags().IntVar(&encMaxRounds, "max-rounds", 0, "cap on rounds (0 = default)")
	encounterCmd.Flags().BoolVar(&encAutoPotion, "auto-potion", false,
		"drink a healing potion the first time the actor drops to 0 HP")
	encounterCmd.Flags().BoolVar(&encShortRest, "short-rest", false, "take a short rest after the fight")
}

func runEncounterCmd(cmd *cobra.Command, _ []string) error {
	svc, cleanup, err := newEncounterService()
	if err != nil {
		return render(cmd, nil, err)
	}
	defer cleanup()

	out, err := svc.SimulateEncounter(cmd.Context(), &encounter.SimulateEncounterInput{
		EncounterPath:   encPath,
		EncounterID:     encID,
		WeaponsPath:     encWeaponsP,
		WeaponsID:       encWeaponsID,
		Weapon:          encWeapon,
		ActorConditions: splitList(encActorCond),
		EnemyConditions: splitList(encEnemyCond),
		Seed:            encSeed,
		ActorHP:         encActorHP,
		Focus:           encounter.Focus(encFocus),
		AutoPotion:      encAutoPotion,
		ShortRest:       encShortRest,
		MaxRounds:       encMaxRounds,
	})
	if err != nil {
		return render(cmd, nil, err)
	}
	return render(cmd, struct {
		*encounter.Result
		RecordID string `json:"record_id"`
	}{out.Result, out.RecordID}, nil)
}
