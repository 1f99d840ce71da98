package main

import (
	"github.com/spf13/cobra"
)

var redisAddr string

var rootCmd = &cobra.Command{
	Use:   "simulator",
	Short: "Deterministic tabletop combat simulator",
	Long: `Seed-driven combat simulation: d20 rolls and checks, one-on-one duels
against loaded targets, and encounters against enemy rosters. Identical
seeds replay identical fights.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&redisAddr, "redis-addr", "",
		"store results in Redis at this address instead of in memory")

	rootCmd.AddCommand(rollCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(duelCmd)
	rootCmd.AddCommand(duelManyCmd)
	rootCmd.AddCommand(encounterCmd)
}
