package game

import (
	"context"

	"go.uber.org/zap"

	"github.com/quinxq/zoo-zov-simulator/internal/animal"
	"github.com/quinxq/zoo-zov-simulator/internal/config"
	"github.com/quinxq/zoo-zov-simulator/internal/enclosure"
	"github.com/quinxq/zoo-zov-simulator/internal/loan"
	"github.com/quinxq/zoo-zov-simulator/internal/market"
	"github.com/quinxq/zoo-zov-simulator/internal/rng"
	"github.com/quinxq/zoo-zov-simulator/internal/worker"
	"github.com/quinxq/zoo-zov-simulator/internal/world"
)

// NewZoo wires a fresh zoo: the starting cash/food/popularity from the
// balance, one temperate herbivore enclosure, the founding staff of
// four, and a stocked market.
func NewZoo(name string, bal config.Balance, src rng.Source, log *zap.Logger) (*Engine, error) {
	ctx := context.Background()

	e := &Engine{
		Animals:    animal.NewMemoryRepo(),
		Enclosures: enclosure.NewMemoryRepo(),
		Workers:    worker.NewMemoryRepo(),
		Loans:      loan.NewMemoryRepo(),
		World: world.NewMemoryRepo(world.World{
			Name:       name,
			Money:      bal.StartingMoney,
			Food:       bal.StartingFood,
			Popularity: bal.StartingPopularity,
			Day:        1,
			Special:    world.SpecialNone,
		}),
		Market:  market.New(),
		Rand:    src,
		Balance: bal,
		Log:     log,
	}

	first, err := e.Enclosures.Create(ctx, enclosure.Enclosure{
		Capacity:  5,
		Diet:      animal.Herbivore,
		Climate:   animal.Temperate,
		DailyCost: 5 * bal.UpkeepPerCapacity,
	})
	if err != nil {
		return nil, err
	}

	director := worker.New("Smith", worker.Director, 0)
	cleaner := worker.New("Trinity", worker.Cleaner, 0)
	cleaner.Assign(first.ID)
	vet := worker.New("Morpheus", worker.Veterinarian, bal.VetMaxAnimals)
	feeder := worker.New("Tank", worker.Feeder, 0)
	feeder.Assign(first.ID)

	for _, w := range []worker.Worker{director, cleaner, vet, feeder} {
		if _, err := e.Workers.Add(ctx, w); err != nil {
			return nil, err
		}
	}

	e.Market.Refresh(src)
	return e, nil
}
