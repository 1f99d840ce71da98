package main

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/solo5e/combatsim/internal/errors"
	"github.com/solo5e/combatsim/internal/orchestrators/duel"
	duelmock "github.com/solo5e/combatsim/internal/orchestrators/duel/mock"
	"github.com/solo5e/combatsim/internal/orchestrators/encounter"
	encountermock "github.com/solo5e/combatsim/internal/orchestrators/encounter/mock"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func withDuelService(t *testing.T, svc duel.Service) {
	t.Helper()
	prev := newDuelService
	newDuelService = func() (duel.Service, func(), error) {
		return svc, func() {}, nil
	}
	t.Cleanup(func() { newDuelService = prev })
}

func withEncounterService(t *testing.T, svc encounter.Service) {
	t.Helper()
	prev := newEncounterService
	newEncounterService = func() (encounter.Service, func(), error) {
		return svc, func() {}, nil
	}
	t.Cleanup(func() { newEncounterService = prev })
}

func TestRollCommand(t *testing.T) {
	out, err := execute(t, "roll", "--seed", "42", "--rolls", "3", "--adv", "advantage")
	require.NoError(t, err)

	var envelope struct {
		OK     bool `json:"ok"`
		Result struct {
			Seed  uint64 `json:"seed"`
			Mode  string `json:"mode"`
			Rolls []struct {
				Kept int   `json:"kept"`
				Raw  []int `json:"raw"`
			} `json:"rolls"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &envelope))
	assert.True(t, envelope.OK)
	assert.Equal(t, uint64(42), envelope.Result.Seed)
	assert.Equal(t, "advantage", envelope.Result.Mode)
	require.Len(t, envelope.Result.Rolls, 3)
	for _, roll := range envelope.Result.Rolls {
		assert.GreaterOrEqual(t, roll.Kept, 1)
		assert.LessOrEqual(t, roll.Kept, 20)
		assert.Len(t, roll.Raw, 2)
	}
}

func TestRollCommandIsDeterministic(t *testing.T) {
	first, err := execute(t, "roll", "--seed", "7", "--rolls", "5", "--adv", "normal")
	require.NoError(t, err)
	second, err := execute(t, "roll", "--seed", "7", "--rolls", "5", "--adv", "normal")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRollCommandRejectsBadMode(t *testing.T) {
	out, err := execute(t, "roll", "--seed", "7", "--rolls", "5", "--adv", "sideways")
	require.Error(t, err)
	assert.Contains(t, out, `"ok":false`)
}

func TestCheckCommand(t *testing.T) {
	out, err := execute(t, "check", "--seed", "42", "--dc", "10", "--modifier", "3", "--adv", "normal")
	require.NoError(t, err)

	var envelope struct {
		OK     bool `json:"ok"`
		Result struct {
			Roll   int   `json:"roll"`
			Raw    []int `json:"raw"`
			Total  int   `json:"total"`
			DC     int   `json:"dc"`
			Passed bool  `json:"passed"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &envelope))
	assert.True(t, envelope.OK)
	assert.Equal(t, envelope.Result.Roll+3, envelope.Result.Total)
	assert.Equal(t, 10, envelope.Result.DC)
	assert.Equal(t, envelope.Result.Total >= 10, envelope.Result.Passed)
}

func TestDuelCommandRendersResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := duelmock.NewMockService(ctrl)
	var captured *duel.SimulateDuelInput
	svc.EXPECT().SimulateDuel(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, input *duel.SimulateDuelInput) (*duel.SimulateDuelOutput, error) {
			captured = input
			return &duel.SimulateDuelOutput{
				Result: &duel.Result{
					Winner:     "actor",
					Rounds:     3,
					ActorHPEnd: 8,
					EnemyHPEnd: 0,
					Log:        []string{"[END] winner=actor"},
				},
				RecordID: "sim_1",
			}, nil
		})
	withDuelService(t, svc)

	out, err := execute(t, "duel",
		"--target-id", "poison_goblin",
		"--weapons-id", "basic",
		"--weapon", "shortsword",
		"--actor-cond", "poisoned,prone",
		"--seed", "9")
	require.NoError(t, err)

	require.NotNil(t, captured)
	assert.Equal(t, "shortsword", captured.Weapon)
	assert.Equal(t, []string{"poisoned", "prone"}, captured.ActorConditions)
	assert.Equal(t, uint64(9), captured.Seed)

	var envelope struct {
		OK     bool `json:"ok"`
		Result struct {
			Winner   string `json:"winner"`
			Rounds   int    `json:"rounds"`
			RecordID string `json:"record_id"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &envelope))
	assert.True(t, envelope.OK)
	assert.Equal(t, "actor", envelope.Result.Winner)
	assert.Equal(t, 3, envelope.Result.Rounds)
	assert.Equal(t, "sim_1", envelope.Result.RecordID)
}

func TestDuelCommandRendersErrorEnvelope(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := duelmock.NewMockService(ctrl)
	svc.EXPECT().SimulateDuel(gomock.Any(), gomock.Any()).
		Return(nil, errors.NotFound("weapon \"halberd\" not found"))
	withDuelService(t, svc)

	out, err := execute(t, "duel", "--weapon", "halberd", "--seed", "9")
	require.Error(t, err)
	assert.Contains(t, out, `"ok":false`)
	assert.Contains(t, out, "halberd")
}

func TestDuelManyCommandRendersStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := duelmock.NewMockService(ctrl)
	svc.EXPECT().SimulateBatch(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, input *duel.SimulateBatchInput) (*duel.SimulateBatchOutput, error) {
			require.Equal(t, 25, input.Samples)
			return &duel.SimulateBatchOutput{
				Stats: &duel.Stats{
					Samples:   25,
					ActorWins: 20,
					EnemyWins: 4,
					Draws:     1,
					AvgRounds: 6.2,
				},
				RecordID: "sim_batch_1",
			}, nil
		})
	withDuelService(t, svc)

	out, err := execute(t, "duel-many", "--samples", "25", "--seed", "100")
	require.NoError(t, err)

	var envelope struct {
		OK     bool `json:"ok"`
		Result struct {
			Samples   int     `json:"samples"`
			ActorWins int     `json:"actor_wins"`
			AvgRounds float64 `json:"avg_rounds"`
			RecordID  string  `json:"record_id"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &envelope))
	assert.True(t, envelope.OK)
	assert.Equal(t, 25, envelope.Result.Samples)
	assert.Equal(t, 20, envelope.Result.ActorWins)
	assert.Equal(t, "sim_batch_1", envelope.Result.RecordID)
}

func TestEncounterCommandRendersResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := encountermock.NewMockService(ctrl)
	svc.EXPECT().SimulateEncounter(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, input *encounter.SimulateEncounterInput) (*encounter.SimulateEncounterOutput, error) {
			require.Equal(t, encounter.FocusLowest, input.Focus)
			return &encounter.SimulateEncounterOutput{
				Result: &encounter.Result{
					Survived:         true,
					Rounds:           9,
					RemainingEnemies: 0,
					ActorHPEnd:       4,
					Log:              []string{"[ENCOUNTER_END] survived=true"},
				},
				RecordID: "sim_enc_1",
			}, nil
		})
	withEncounterService(t, svc)

	out, err := execute(t, "encounter", "--encounter-id", "goblin_ambush", "--focus", "lowest", "--seed", "5")
	require.NoError(t, err)

	var envelope struct {
		OK     bool `json:"ok"`
		Result struct {
			Survived         bool   `json:"survived"`
			Rounds           int    `json:"rounds"`
			RemainingEnemies int    `json:"remaining_enemies"`
			RecordID         string `json:"record_id"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &envelope))
	assert.True(t, envelope.OK)
	assert.True(t, envelope.Result.Survived)
	assert.Equal(t, 9, envelope.Result.Rounds)
	assert.Equal(t, "sim_enc_1", envelope.Result.RecordID)
}

func TestDuelCommandEndToEnd(t *testing.T) {
	out, err := execute(t, "duel",
		"--target-id", "poison_goblin",
		"--weapons-id", "basic",
		"--weapon", "longsword",
		"--seed", "42")
	require.NoError(t, err)

	var envelope struct {
		OK     bool `json:"ok"`
		Result struct {
			Winner   string   `json:"winner"`
			Rounds   int      `json:"rounds"`
			Log      []string `json:"log"`
			RecordID string   `json:"record_id"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &envelope))
	assert.True(t, envelope.OK)
	assert.Contains(t, []string{"actor", "enemy", "draw"}, envelope.Result.Winner)
	assert.GreaterOrEqual(t, envelope.Result.Rounds, 1)
	assert.NotEmpty(t, envelope.Result.Log)
	assert.NotEmpty(t, envelope.Result.RecordID)
}
