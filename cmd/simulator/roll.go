package main

import (
	"github.com/spf13/cobra"

	"github.com/solo5e/combatsim/internal/dice"
)

var (
	rollSeed  uint64
	rollAdv   string
	rollCount int
)

var rollCmd = &cobra.Command{
	Use:   "roll",
	Short: "Roll a d20 repeatedly under an advantage mode",
	RunE:  runRoll,
}

func init() {
	rollCmd.Flags().Uint64Var(&rollSeed, "seed", 42, "RNG seed")
	rollCmd.Flags().StringVar(&rollAdv, "adv", "normal", "advantage mode: normal | advantage | disadvantage")
	rollCmd.Flags().IntVar(&rollCount, "rolls", 5, "number of rolls")
}

type d20Roll struct {
	Kept int   `json:"kept"`
	Raw  []int `json:"raw"`
}

type rollResult struct {
	Seed  uint64    `json:"seed"`
	Mode  string    `json:"mode"`
	Rolls []d20Roll `json:"rolls"`
}

func runRoll(cmd *cobra.Command, _ []string) error {
	mode, err := dice.ParseMode(rollAdv)
	if err != nil {
		return render(cmd, nil, err)
	}

	roller := dice.NewSeeded(rollSeed)
	result := rollResult{Seed: rollSeed, Mode: mode.String()}
	for i := 0; i < rollCount; i++ {
		d := roller.D20(mode)
		result.Rolls = append(result.Rolls, d20Roll{Kept: d.Kept, Raw: d.Raw})
	}
	return render(cmd, result, nil)
}
