package main

import (
	"github.com/solo5e/combatsim/internal/orchestrators/duel"
	"github.com/solo5e/combatsim/internal/orchestrators/encounter"
	"github.com/solo5e/combatsim/internal/pkg/clock"
	"github.com/solo5e/combatsim/internal/pkg/idgen"
	"github.com/solo5e/combatsim/internal/redis"
	"github.com/solo5e/combatsim/internal/repositories/simulation"
)

// Service factories are variables so command tests can substitute mocks.
var (
	newDuelService      = buildDuelService
	newEncounterService = buildEncounterService
)

func newResultRepo() (simulation.Repository, func(), error) {
	if redisAddr == "" {
		return simulation.NewInMemory(clock.New()), func() {}, nil
	}

	client, err := redis.NewClient(redisAddr, nil)
	if err != nil {
		return nil, nil, err
	}
	repo, err := simulation.NewRedisRepository(&simulation.Config{
		Client: client,
		Clock:  clock.New(),
	})
	if err != nil {
		_ = client.Close()
		return nil, nil, err
	}
	return repo, func() { _ = client.Close() }, nil
}

func buildDuelService() (duel.Service, func(), error) {
	repo, cleanup, err := newResultRepo()
	if err != nil {
		return nil, nil, err
	}
	svc, err := duel.NewOrchestrator(&duel.Config{
		ResultRepo:  repo,
		IDGenerator: idgen.NewUUID("sim"),
	})
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return svc, cleanup, nil
}

func buildEncounterService() (encounter.Service, func(), error) {
	repo, cleanup, err := newResultRepo()
	if err != nil {
		return nil, nil, err
	}
	svc, err := encounter.NewOrchestrator(&encounter.Config{
		ResultRepo:  repo,
		IDGenerator: idgen.NewUUID("sim"),
	})
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return svc, cleanup, nil
}
