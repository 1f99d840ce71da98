package main

import (
	"github.com/spf13/cobra"

	"github.com/solo5e/combatsim/internal/combat"
	"github.com/solo5e/combatsim/internal/dice"
)

var (
	checkSeed     uint64
	checkAdv      string
	checkDC       int
	checkModifier int
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Perform a d20 check against a DC",
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().Uint64Var(&checkSeed, "seed", 42, "RNG seed")
	checkCmd.Flags().StringVar(&checkAdv, "adv", "normal", "advantage mode: normal | advantage | disadvantage")
	checkCmd.Flags().IntVar(&checkDC, "dc", 0, "difficulty class to beat (>=)")
	checkCmd.Flags().IntVar(&checkModifier, "modifier", 0, "modifier added to the d20")
	_ = checkCmd.MarkFlagRequired("dc")
}

type checkResult struct {
	Roll   int   `json:"roll"`
	Raw    []int `json:"raw"`
	Total  int   `json:"total"`
	DC     int   `json:"dc"`
	Passed bool  `json:"passed"`
}

func runCheck(cmd *cobra.Command, _ []string) error {
	mode, err := dice.ParseMode(checkAdv)
	if err != nil {
		return render(cmd, nil, err)
	}

	out := combat.Check(dice.NewSeeded(checkSeed), combat.CheckInput{
		DC:       checkDC,
		Modifier: checkModifier,
		Mode:     mode,
	})
	return render(cmd, checkResult{
		Roll:   out.Roll,
		Raw:    out.RawRolls,
		Total:  out.Total,
		DC:     out.DC,
		Passed: out.Passed,
	}, nil)
}
