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

// Engine owns one zoo: all entity repositories, the aggregate counters
// and the injected randomness. It is single-actor; the menu shell calls
// it synchronously, one operation at a time.
type Engine struct {
	Animals    animal.Repository
	Enclosures enclosure.Repository
	Workers    worker.Repository
	Loans      loan.Repository
	World      *world.MemoryRepo
	Market     *market.Market
	Rand       rng.Source
	Balance    config.Balance
	Log        *zap.Logger
}

// DaySummary reports what one day-advance did.
type DaySummary struct {
	Day          int                  `json:"day"`
	DiedOfOldAge []string             `json:"died_of_old_age,omitempty"`
	NewlySick    int                  `json:"newly_sick"`
	Healed       int                  `json:"healed"`
	FoodConsumed int                  `json:"food_consumed"`
	FoodShortage bool                 `json:"food_shortage"`
	Starved      []string             `json:"starved,omitempty"`
	Visitors     int                  `json:"visitors"`
	Special      world.SpecialVisitor `json:"special_visitor"`
	SpecialCount int                  `json:"special_visitor_count"`
	Revenue      float64              `json:"revenue"`
	Payroll      int                  `json:"payroll"`
	Upkeep       int                  `json:"upkeep"`
	LoanPayments float64              `json:"loan_payments"`
	LoansPaidOff int                  `json:"loans_paid_off"`
	Money        float64              `json:"money"`
	Popularity   float64              `json:"popularity"`
	TotalAnimals int                  `json:"total_animals"`
}

func (e *Engine) log() *zap.Logger {
	if e.Log == nil {
		return zap.NewNop()
	}
	return e.Log
}

// NextDay advances the world by one day. The pipeline order is load
// bearing: aging and old-age deaths precede sickness, treatment
// precedes feeding, popularity drift precedes the visitor count, and
// the special-visitor bonus lands after visitors are counted.
func (e *Engine) NextDay(ctx context.Context) (DaySummary, error) {
	w, err := e.World.Get(ctx)
	if err != nil {
		return DaySummary{}, err
	}

	w.Day++
	w.BoughtToday = 0
	e.Market.Refresh(e.Rand)
	w.Special = world.SpecialNone
	w.SpecialCount = 0

	sum := DaySummary{Day: w.Day, Special: world.SpecialNone}

	// Aging and old-age mortality. An animal older than OldAgeDays
	// dies when a roll in [0,99] lands below its age, so past 99 days
	// death is certain.
	animals, err := e.Animals.List(ctx)
	if err != nil {
		return DaySummary{}, err
	}
	for _, a := range animals {
		a.AgeDays++
		a.DaysSincePurchase++
		if a.AgeDays > e.Balance.OldAgeDays && e.Rand.Intn(100) < a.AgeDays {
			if err := e.removeAnimal(ctx, a); err != nil {
				return DaySummary{}, err
			}
			w.TotalAnimals--
			sum.DiedOfOldAge = append(sum.DiedOfOldAge, a.DisplayName)
			e.log().Info("animal died of old age",
				zap.String("name", a.DisplayName), zap.Int("age_days", a.AgeDays))
			continue
		}
		if _, err := e.Animals.Update(ctx, a); err != nil {
			return DaySummary{}, err
		}
	}

	// Worker clocks. A positive assignment duration ticks down; hitting
	// zero releases every enclosure the worker held.
	workers, err := e.Workers.List(ctx)
	if err != nil {
		return DaySummary{}, err
	}
	for i := range workers {
		workers[i].DaysWorked++
		if workers[i].DaysAssigned > 0 {
			workers[i].DaysAssigned--
			if workers[i].DaysAssigned == 0 {
				workers[i].ClearAssignments()
			}
		}
	}
	if err := e.Workers.UpdateMany(ctx, workers); err != nil {
		return DaySummary{}, err
	}

	// Sickness.
	animals, err = e.Animals.List(ctx)
	if err != nil {
		return DaySummary{}, err
	}
	for _, a := range animals {
		if !a.Sick && e.Rand.Intn(100) < e.Balance.SicknessChancePct {
			a.Sick = true
			sum.NewlySick++
			if _, err := e.Animals.Update(ctx, a); err != nil {
				return DaySummary{}, err
			}
		}
	}

	// Treatment: each on-duty veterinarian heals sick animals in its
	// assigned enclosures, registry order, up to its care limit.
	for _, vet := range workers {
		if vet.Role != worker.Veterinarian || vet.DaysAssigned <= 0 {
			continue
		}
		animals, err = e.Animals.List(ctx)
		if err != nil {
			return DaySummary{}, err
		}
		treated := 0
		for _, a := range animals {
			if treated >= vet.MaxAnimals {
				break
			}
			if a.Sick && vet.AssignedTo(a.EnclosureID) {
				a.Sick = false
				treated++
				if _, err := e.Animals.Update(ctx, a); err != nil {
					return DaySummary{}, err
				}
			}
		}
		sum.Healed += treated
	}

	// Feeding. Shortage never consumes food partially; every animal
	// instead risks starvation independently.
	animals, err = e.Animals.List(ctx)
	if err != nil {
		return DaySummary{}, err
	}
	demand := 0
	for _, a := range animals {
		demand += a.FoodUnits()
	}
	if w.Food >= demand {
		w.Food -= demand
		sum.FoodConsumed = demand
	} else {
		sum.FoodShortage = true
		for _, a := range animals {
			if e.Rand.Intn(100) < e.Balance.StarvationChancePct {
				if err := e.removeAnimal(ctx, a); err != nil {
					return DaySummary{}, err
				}
				w.TotalAnimals--
				sum.Starved = append(sum.Starved, a.DisplayName)
				e.log().Info("animal starved", zap.String("name", a.DisplayName))
			}
		}
	}

	// Popularity drift, sickness penalty, floor at zero.
	drift := rng.Between(e.Rand, -e.Balance.PopularityDriftPct, e.Balance.PopularityDriftPct)
	w.Popularity *= 1.0 + float64(drift)/100.0
	animals, err = e.Animals.List(ctx)
	if err != nil {
		return DaySummary{}, err
	}
	sick := 0
	for _, a := range animals {
		if a.Sick {
			sick++
		}
	}
	w.Popularity -= float64(sick)
	if w.Popularity < 0 {
		w.Popularity = 0
	}

	// Visitors are counted before the special-guest bonus lands.
	w.Visitors = int(w.Popularity)

	switch roll := e.Rand.Intn(100); {
	case roll < 20:
		// quiet day
	case roll < 30:
		w.Special = world.SpecialCelebrity
		w.SpecialCount = rng.Between(e.Rand, 1, 2)
		w.Popularity += float64(w.SpecialCount * 10)
	case roll < 50:
		w.Special = world.SpecialPhotographer
		w.SpecialCount = rng.Between(e.Rand, 1, 3)
		w.Popularity += float64(w.SpecialCount * 5)
	}
	sum.Special = w.Special
	sum.SpecialCount = w.SpecialCount

	// Revenue, payroll, upkeep.
	sum.Revenue = float64(w.Visitors * w.TotalAnimals)
	w.Money += sum.Revenue

	for _, wk := range workers {
		sum.Payroll += wk.Salary
	}
	encs, err := e.Enclosures.List(ctx)
	if err != nil {
		return DaySummary{}, err
	}
	for _, enc := range encs {
		sum.Upkeep += enc.DailyCost
	}
	w.Money -= float64(sum.Payroll + sum.Upkeep)

	// Loan amortization; settled loans are purged after the sweep.
	loans, err := e.Loans.List(ctx)
	if err != nil {
		return DaySummary{}, err
	}
	for _, l := range loans {
		if l.DaysLeft <= 0 {
			continue
		}
		w.Money -= l.DailyRepayment
		sum.LoanPayments += l.DailyRepayment
		l.DaysLeft--
		if l.DaysLeft == 0 {
			sum.LoansPaidOff++
			e.log().Info("loan paid off", zap.Float64("principal", l.Principal))
		}
		if _, err := e.Loans.Update(ctx, l); err != nil {
			return DaySummary{}, err
		}
	}
	if _, err := e.Loans.PurgeSettled(ctx); err != nil {
		return DaySummary{}, err
	}

	if err := e.World.Set(ctx, w); err != nil {
		return DaySummary{}, err
	}

	sum.Visitors = w.Visitors
	sum.Money = w.Money
	sum.Popularity = w.Popularity
	sum.TotalAnimals = w.TotalAnimals

	e.log().Info("day advanced",
		zap.Int("day", w.Day),
		zap.Int("visitors", w.Visitors),
		zap.Float64("money", w.Money))

	return sum, nil
}

// removeAnimal detaches an animal from its enclosure and drops it from
// the registry in one logical step. Residency bookkeeping must never be
// observed half-done.
func (e *Engine) removeAnimal(ctx context.Context, a animal.Animal) error {
	if a.Placed() {
		enc, ok, err := e.Enclosures.Get(ctx, a.EnclosureID)
		if err != nil {
			return err
		}
		if ok {
			enc.RemoveResident(a.ID)
			if _, err := e.Enclosures.Update(ctx, enc); err != nil {
				return err
			}
		}
	}
	_, err := e.Animals.Remove(ctx, a.ID)
	return err
}
