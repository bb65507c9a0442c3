package game

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/quinxq/zoo-zov-simulator/internal/animal"
	"github.com/quinxq/zoo-zov-simulator/internal/config"
	"github.com/quinxq/zoo-zov-simulator/internal/market"
	"github.com/quinxq/zoo-zov-simulator/internal/rng"
	"github.com/quinxq/zoo-zov-simulator/internal/worker"
	"github.com/quinxq/zoo-zov-simulator/internal/world"
)

func testZoo(t *testing.T, bal config.Balance, src rng.Source) *Engine {
	t.Helper()
	e, err := NewZoo("Central", bal, src, zap.NewNop())
	require.NoError(t, err)
	return e
}

// scripted queues the given rolls behind the rolls NewZoo and one
// NextDay spend on stocking the market, so scenario rolls line up with
// the day pipeline.
func scripted(rolls ...int) *rng.Script {
	perRefresh := len(market.Catalog()) - 1 + market.MaxOffers
	skip := make([]int, 2*perRefresh)
	return rng.NewScript(append(skip, rolls...)...)
}

// admit registers an animal directly, bypassing the market, and keeps
// the residency and counters consistent.
func admit(t *testing.T, e *Engine, a animal.Animal) animal.Animal {
	t.Helper()
	ctx := context.Background()

	placed, err := e.Animals.Add(ctx, a)
	require.NoError(t, err)
	if placed.Placed() {
		enc, ok, err := e.Enclosures.Get(ctx, placed.EnclosureID)
		require.NoError(t, err)
		require.True(t, ok)
		enc.AddResident(placed.ID)
		_, err = e.Enclosures.Update(ctx, enc)
		require.NoError(t, err)
	}

	w, err := e.World.Get(ctx)
	require.NoError(t, err)
	w.TotalAnimals++
	require.NoError(t, e.World.Set(ctx, w))
	return placed
}

func findByRole(t *testing.T, e *Engine, role worker.Role) worker.Worker {
	t.Helper()
	workers, err := e.Workers.List(context.Background())
	require.NoError(t, err)
	for _, w := range workers {
		if w.Role == role {
			return w
		}
	}
	t.Fatalf("no worker with role %s", role)
	return worker.Worker{}
}

func TestNextDayQuietDay(t *testing.T) {
	ctx := context.Background()
	bal := config.Default()
	bal.SicknessChancePct = 0
	bal.PopularityDriftPct = 0
	e := testZoo(t, bal, scripted())

	admit(t, e, animal.Animal{Species: "Deer", DisplayName: "Bess", AgeDays: 10, Diet: animal.Herbivore, Climate: animal.Temperate, EnclosureID: 1})
	admit(t, e, animal.Animal{Species: "Rabbit", DisplayName: "Hop", AgeDays: 3, Diet: animal.Herbivore, Climate: animal.Temperate, EnclosureID: 1})
	admit(t, e, animal.Animal{Species: "Wolf", DisplayName: "Grey", AgeDays: 7, Diet: animal.Carnivore, Climate: animal.Temperate, EnclosureID: 1})

	w, err := e.World.Get(ctx)
	require.NoError(t, err)
	w.BoughtToday = 1
	require.NoError(t, e.World.Set(ctx, w))

	sum, err := e.NextDay(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, sum.Day)
	assert.Empty(t, sum.DiedOfOldAge)
	assert.Zero(t, sum.NewlySick)
	assert.Equal(t, 4, sum.FoodConsumed) // two herbivores plus a double-ration carnivore
	assert.False(t, sum.FoodShortage)
	assert.Equal(t, 50, sum.Visitors)
	assert.Equal(t, world.SpecialNone, sum.Special)
	assert.InDelta(t, 150.0, sum.Revenue, 1e-9)
	assert.Equal(t, 180, sum.Payroll)
	assert.Equal(t, 10, sum.Upkeep)
	assert.InDelta(t, 1448.0, sum.Money, 1e-9)
	assert.Equal(t, 3, sum.TotalAnimals)

	w, err = e.World.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, w.Day)
	assert.Equal(t, 96, w.Food)
	assert.InDelta(t, 50.0, w.Popularity, 1e-9)
	assert.Zero(t, w.BoughtToday, "the daily purchase counter resets overnight")
}

func TestNextDayAgesAnimals(t *testing.T) {
	ctx := context.Background()
	bal := config.Default()
	bal.SicknessChancePct = 0
	bal.PopularityDriftPct = 0
	e := testZoo(t, bal, scripted())

	a := admit(t, e, animal.Animal{Species: "Deer", DisplayName: "Bess", AgeDays: 10, Diet: animal.Herbivore, Climate: animal.Temperate, EnclosureID: 1})

	_, err := e.NextDay(ctx)
	require.NoError(t, err)

	got, ok, err := e.Animals.Get(ctx, a.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 11, got.AgeDays)
	assert.Equal(t, 1, got.DaysSincePurchase)
}

func TestNextDayOldAgeDeath(t *testing.T) {
	ctx := context.Background()
	bal := config.Default()
	bal.SicknessChancePct = 0
	bal.PopularityDriftPct = 0
	e := testZoo(t, bal, scripted())

	// Past 99 days the mortality roll cannot miss.
	old := admit(t, e, animal.Animal{Species: "Deer", DisplayName: "Methuselah", AgeDays: 100, Diet: animal.Herbivore, Climate: animal.Temperate, EnclosureID: 1})

	sum, err := e.NextDay(ctx)
	require.NoError(t, err)

	assert.Equal(t, []string{"Methuselah"}, sum.DiedOfOldAge)
	assert.Zero(t, sum.TotalAnimals)

	_, ok, err := e.Animals.Get(ctx, old.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	enc, ok, err := e.Enclosures.Get(ctx, 1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Empty(t, enc.Residents)
}

func TestNextDayOldAgeSurvival(t *testing.T) {
	ctx := context.Background()
	bal := config.Default()
	bal.SicknessChancePct = 0
	bal.PopularityDriftPct = 0
	// Mortality roll 99 beats an age of 35, sickness skipped by balance.
	e := testZoo(t, bal, scripted(99))

	a := admit(t, e, animal.Animal{Species: "Deer", DisplayName: "Granny", AgeDays: 34, Diet: animal.Herbivore, Climate: animal.Temperate, EnclosureID: 1})

	sum, err := e.NextDay(ctx)
	require.NoError(t, err)

	assert.Empty(t, sum.DiedOfOldAge)
	got, ok, err := e.Animals.Get(ctx, a.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 35, got.AgeDays)
}

func TestNextDaySicknessAndTreatment(t *testing.T) {
	ctx := context.Background()
	bal := config.Default()
	// Sickness roll 5 lands under the 10 percent chance.
	e := testZoo(t, bal, scripted(5))

	a := admit(t, e, animal.Animal{Species: "Deer", DisplayName: "Bess", AgeDays: 10, Diet: animal.Herbivore, Climate: animal.Temperate, EnclosureID: 1})

	vet := findByRole(t, e, worker.Veterinarian)
	require.NoError(t, e.Assign(ctx, vet.ID, 1, 2))

	sum, err := e.NextDay(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, sum.NewlySick)
	assert.Equal(t, 1, sum.Healed)

	got, ok, err := e.Animals.Get(ctx, a.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.False(t, got.Sick)
}

func TestNextDaySicknessWithoutVetOnDuty(t *testing.T) {
	ctx := context.Background()
	e := testZoo(t, config.Default(), scripted(5))

	a := admit(t, e, animal.Animal{Species: "Deer", DisplayName: "Bess", AgeDays: 10, Diet: animal.Herbivore, Climate: animal.Temperate, EnclosureID: 1})

	sum, err := e.NextDay(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, sum.NewlySick)
	assert.Zero(t, sum.Healed)

	got, ok, err := e.Animals.Get(ctx, a.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, got.Sick)
}

func TestNextDayVetCareLimit(t *testing.T) {
	ctx := context.Background()
	bal := config.Default()
	bal.VetMaxAnimals = 1
	// Both animals fall sick (rolls 5 and 5); the vet only reaches one.
	e := testZoo(t, bal, scripted(5, 5))

	vet := findByRole(t, e, worker.Veterinarian)
	require.NoError(t, e.Assign(ctx, vet.ID, 1, 2))

	admit(t, e, animal.Animal{Species: "Deer", DisplayName: "Bess", AgeDays: 10, Diet: animal.Herbivore, Climate: animal.Temperate, EnclosureID: 1})
	admit(t, e, animal.Animal{Species: "Rabbit", DisplayName: "Hop", AgeDays: 3, Diet: animal.Herbivore, Climate: animal.Temperate, EnclosureID: 1})

	sum, err := e.NextDay(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, sum.NewlySick)
	assert.Equal(t, 1, sum.Healed)
}

func TestNextDayFoodShortage(t *testing.T) {
	ctx := context.Background()
	e := testZoo(t, config.Default(), scripted(99, 99, 10, 50))

	starving := admit(t, e, animal.Animal{Species: "Deer", DisplayName: "Bess", AgeDays: 10, Diet: animal.Herbivore, Climate: animal.Temperate, EnclosureID: 1})
	survivor := admit(t, e, animal.Animal{Species: "Rabbit", DisplayName: "Hop", AgeDays: 3, Diet: animal.Herbivore, Climate: animal.Temperate, EnclosureID: 1})

	w, err := e.World.Get(ctx)
	require.NoError(t, err)
	w.Food = 0
	require.NoError(t, e.World.Set(ctx, w))

	sum, err := e.NextDay(ctx)
	require.NoError(t, err)

	assert.True(t, sum.FoodShortage)
	assert.Zero(t, sum.FoodConsumed, "a shortage never draws down the stock partially")
	assert.Equal(t, []string{"Bess"}, sum.Starved)
	assert.Equal(t, 1, sum.TotalAnimals)

	_, ok, err := e.Animals.Get(ctx, starving.ID)
	require.NoError(t, err)
	assert.False(t, ok)
	_, ok, err = e.Animals.Get(ctx, survivor.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	w, err = e.World.Get(ctx)
	require.NoError(t, err)
	assert.Zero(t, w.Food)
}

func TestNextDayPopularityFloor(t *testing.T) {
	ctx := context.Background()
	bal := config.Default()
	bal.SicknessChancePct = 0
	bal.PopularityDriftPct = 0
	e := testZoo(t, bal, scripted())

	w, err := e.World.Get(ctx)
	require.NoError(t, err)
	w.Popularity = 0
	require.NoError(t, e.World.Set(ctx, w))

	sum, err := e.NextDay(ctx)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, sum.Popularity, 0.0)
	assert.Zero(t, sum.Visitors)
	assert.Zero(t, sum.Revenue)
}

func TestNextDaySpecialVisitors(t *testing.T) {
	t.Run("celebrity", func(t *testing.T) {
		ctx := context.Background()
		bal := config.Default()
		bal.PopularityDriftPct = 0
		e := testZoo(t, bal, scripted(0, 25, 1))

		sum, err := e.NextDay(ctx)
		require.NoError(t, err)

		assert.Equal(t, world.SpecialCelebrity, sum.Special)
		assert.Equal(t, 2, sum.SpecialCount)
		assert.Equal(t, 50, sum.Visitors, "the bonus lands after the gate count")
		assert.InDelta(t, 70.0, sum.Popularity, 1e-9)
	})

	t.Run("photographer", func(t *testing.T) {
		ctx := context.Background()
		bal := config.Default()
		bal.PopularityDriftPct = 0
		e := testZoo(t, bal, scripted(0, 40, 2))

		sum, err := e.NextDay(ctx)
		require.NoError(t, err)

		assert.Equal(t, world.SpecialPhotographer, sum.Special)
		assert.Equal(t, 3, sum.SpecialCount)
		assert.Equal(t, 50, sum.Visitors)
		assert.InDelta(t, 65.0, sum.Popularity, 1e-9)
	})

	t.Run("quiet day", func(t *testing.T) {
		ctx := context.Background()
		bal := config.Default()
		bal.PopularityDriftPct = 0
		e := testZoo(t, bal, scripted(0, 10))

		sum, err := e.NextDay(ctx)
		require.NoError(t, err)

		assert.Equal(t, world.SpecialNone, sum.Special)
		assert.Zero(t, sum.SpecialCount)
		assert.InDelta(t, 50.0, sum.Popularity, 1e-9)
	})
}

func TestNextDayWorkerClocks(t *testing.T) {
	ctx := context.Background()
	bal := config.Default()
	bal.PopularityDriftPct = 0
	e := testZoo(t, bal, scripted())

	hired, err := e.Hire(ctx, "Bob", worker.Cleaner)
	require.NoError(t, err)
	require.NoError(t, e.Assign(ctx, hired.ID, 1, 1))

	_, err = e.NextDay(ctx)
	require.NoError(t, err)

	bob, ok, err := e.Workers.Get(ctx, hired.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Zero(t, bob.DaysAssigned)
	assert.Empty(t, bob.Enclosures, "a finished assignment releases its enclosures")
	assert.Equal(t, 1, bob.DaysWorked)

	// The founding cleaner never had a countdown running, so the
	// rollover leaves that post alone.
	cleaner := findByRole(t, e, worker.Cleaner)
	assert.Equal(t, []int{1}, cleaner.Enclosures)
	assert.Equal(t, 1, cleaner.DaysWorked)
}

func TestNextDayLoanAmortization(t *testing.T) {
	ctx := context.Background()
	bal := config.Default()
	bal.PopularityDriftPct = 0
	e := testZoo(t, bal, scripted())

	_, err := e.Borrow(ctx, 1000, 10)
	require.NoError(t, err)

	sum, err := e.NextDay(ctx)
	require.NoError(t, err)

	assert.InDelta(t, 105.0, sum.LoanPayments, 1e-9)
	assert.Zero(t, sum.LoansPaidOff)
	// 1488 start + 1000 principal - 180 payroll - 10 upkeep - 105 installment
	assert.InDelta(t, 2193.0, sum.Money, 1e-9)

	loans, err := e.Loans.List(ctx)
	require.NoError(t, err)
	require.Len(t, loans, 1)
	assert.Equal(t, 9, loans[0].DaysLeft)

	// Fast-forward to the last installment.
	last := loans[0]
	last.DaysLeft = 1
	_, err = e.Loans.Update(ctx, last)
	require.NoError(t, err)

	sum, err = e.NextDay(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, sum.LoansPaidOff)

	loans, err = e.Loans.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, loans, "settled loans are purged")
}

func TestNextDayIsReproducible(t *testing.T) {
	ctx := context.Background()

	run := func(seed int64) DaySummary {
		e := testZoo(t, config.Default(), rng.New(seed))
		admit(t, e, animal.Animal{Species: "Deer", DisplayName: "Bess", AgeDays: 10, Diet: animal.Herbivore, Climate: animal.Temperate, EnclosureID: 1})
		sum, err := e.NextDay(ctx)
		require.NoError(t, err)
		return sum
	}

	assert.Equal(t, run(5), run(5))
}

func TestNextDayRestocksMarket(t *testing.T) {
	ctx := context.Background()
	bal := config.Default()
	bal.PopularityDriftPct = 0
	e := testZoo(t, bal, scripted())

	_, ok := e.Market.Take(0)
	require.True(t, ok)
	require.Equal(t, market.MaxOffers-1, e.Market.Len())

	_, err := e.NextDay(ctx)
	require.NoError(t, err)

	assert.Equal(t, market.MaxOffers, e.Market.Len())
}
