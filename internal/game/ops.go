package game

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/quinxq/zoo-zov-simulator/internal/animal"
	"github.com/quinxq/zoo-zov-simulator/internal/enclosure"
	"github.com/quinxq/zoo-zov-simulator/internal/loan"
	"github.com/quinxq/zoo-zov-simulator/internal/worker"
	"github.com/quinxq/zoo-zov-simulator/internal/world"
)

// Status returns the aggregate scoreboard.
func (e *Engine) Status(ctx context.Context) (world.World, error) {
	return e.World.Get(ctx)
}

// Purchase buys the market offer at index (0-based) and places it in
// the given enclosure. The offer leaves the market only on success.
func (e *Engine) Purchase(ctx context.Context, marketIndex, enclosureID int) (animal.Animal, error) {
	w, err := e.World.Get(ctx)
	if err != nil {
		return animal.Animal{}, err
	}

	offers := e.Market.Offers()
	if marketIndex < 0 || marketIndex >= len(offers) {
		return animal.Animal{}, fmt.Errorf("%w: no market offer at %d", ErrValidation, marketIndex+1)
	}
	offer := offers[marketIndex]

	if w.Day > e.Balance.ThrottleFromDay && w.BoughtToday >= e.Balance.DailyPurchaseCap {
		return animal.Animal{}, fmt.Errorf("%w: only %d purchase(s) per day after day %d",
			ErrIneligible, e.Balance.DailyPurchaseCap, e.Balance.ThrottleFromDay)
	}
	if w.Money < float64(offer.Price) {
		return animal.Animal{}, fmt.Errorf("%w: %s costs %d", ErrInsufficientFunds, offer.DisplayName, offer.Price)
	}

	enc, ok, err := e.Enclosures.Get(ctx, enclosureID)
	if err != nil {
		return animal.Animal{}, err
	}
	if !ok {
		return animal.Animal{}, fmt.Errorf("%w: enclosure %d", ErrNotFound, enclosureID)
	}
	if !enc.CanHouse(offer) {
		return animal.Animal{}, fmt.Errorf("%w: enclosure %d cannot house a %s", ErrIneligible, enclosureID, offer.Species)
	}

	offer, _ = e.Market.Take(marketIndex)
	offer.EnclosureID = enclosureID
	placed, err := e.Animals.Add(ctx, offer)
	if err != nil {
		return animal.Animal{}, err
	}
	enc.AddResident(placed.ID)
	if _, err := e.Enclosures.Update(ctx, enc); err != nil {
		return animal.Animal{}, err
	}

	w.Money -= float64(placed.Price)
	w.TotalAnimals++
	w.BoughtToday++
	if err := e.World.Set(ctx, w); err != nil {
		return animal.Animal{}, err
	}

	e.log().Info("animal purchased",
		zap.String("species", placed.Species), zap.Int("id", placed.ID), zap.Int("enclosure", enclosureID))
	return placed, nil
}

// Sell removes an animal and credits half its purchase price.
func (e *Engine) Sell(ctx context.Context, animalID int) (int, error) {
	a, ok, err := e.Animals.Get(ctx, animalID)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, fmt.Errorf("%w: animal %d", ErrNotFound, animalID)
	}

	if err := e.removeAnimal(ctx, a); err != nil {
		return 0, err
	}

	payout := a.Price / 2
	w, err := e.World.Get(ctx)
	if err != nil {
		return 0, err
	}
	w.Money += float64(payout)
	w.TotalAnimals--
	if err := e.World.Set(ctx, w); err != nil {
		return 0, err
	}

	e.log().Info("animal sold", zap.String("name", a.DisplayName), zap.Int("payout", payout))
	return payout, nil
}

// Rename changes an animal's display name.
func (e *Engine) Rename(ctx context.Context, animalID int, newName string) error {
	if newName == "" {
		return fmt.Errorf("%w: name must not be empty", ErrValidation)
	}
	a, ok, err := e.Animals.Get(ctx, animalID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: animal %d", ErrNotFound, animalID)
	}
	a.DisplayName = newName
	_, err = e.Animals.Update(ctx, a)
	return err
}

// RefreshMarket rolls a fresh offer list for a fixed fee.
func (e *Engine) RefreshMarket(ctx context.Context) error {
	w, err := e.World.Get(ctx)
	if err != nil {
		return err
	}
	fee := e.Balance.MarketRefreshFee
	if w.Money < float64(fee) {
		return fmt.Errorf("%w: market refresh costs %d", ErrInsufficientFunds, fee)
	}
	w.Money -= float64(fee)
	if err := e.World.Set(ctx, w); err != nil {
		return err
	}
	e.Market.Refresh(e.Rand)
	return nil
}

// Hire employs a new worker at the role's table salary. The zoo keeps
// exactly one director, so hiring another is declined.
func (e *Engine) Hire(ctx context.Context, name string, role worker.Role) (worker.Worker, error) {
	if name == "" {
		return worker.Worker{}, fmt.Errorf("%w: worker name must not be empty", ErrValidation)
	}
	switch role {
	case worker.Director, worker.Veterinarian, worker.Cleaner, worker.Feeder:
	default:
		return worker.Worker{}, fmt.Errorf("%w: unknown role %q", ErrValidation, role)
	}
	if role == worker.Director {
		return worker.Worker{}, fmt.Errorf("%w: the zoo already employs a director", ErrIneligible)
	}

	maxAnimals := 0
	if role == worker.Veterinarian {
		maxAnimals = e.Balance.VetMaxAnimals
	}
	w := worker.New(name, role, maxAnimals)
	if _, err := e.Workers.Add(ctx, w); err != nil {
		return worker.Worker{}, err
	}
	e.log().Info("worker hired", zap.String("name", name), zap.String("role", string(role)))
	return w, nil
}

// Fire dismisses a worker. The director is untouchable and the staff
// may never become empty.
func (e *Engine) Fire(ctx context.Context, workerID string) error {
	w, ok, err := e.Workers.Get(ctx, workerID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: worker %s", ErrNotFound, workerID)
	}
	count, err := e.Workers.Count(ctx)
	if err != nil {
		return err
	}
	if count <= 1 {
		return fmt.Errorf("%w: the last worker cannot be fired", ErrIneligible)
	}
	if w.Role == worker.Director {
		return fmt.Errorf("%w: the director cannot be fired", ErrIneligible)
	}
	if _, err := e.Workers.Remove(ctx, workerID); err != nil {
		return err
	}
	e.log().Info("worker fired", zap.String("name", w.Name))
	return nil
}

// Assign puts a worker on an enclosure for a number of days, subject to
// the role's caps. A veterinarian is additionally bounded by the total
// animals under all of its enclosures.
func (e *Engine) Assign(ctx context.Context, workerID string, enclosureID, durationDays int) error {
	if durationDays <= 0 {
		return fmt.Errorf("%w: assignment duration must be positive", ErrValidation)
	}
	w, ok, err := e.Workers.Get(ctx, workerID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: worker %s", ErrNotFound, workerID)
	}
	enc, ok, err := e.Enclosures.Get(ctx, enclosureID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: enclosure %d", ErrNotFound, enclosureID)
	}

	if w.Role == worker.Director {
		return fmt.Errorf("%w: the director holds no enclosure assignments", ErrIneligible)
	}
	if w.AssignedTo(enclosureID) {
		return fmt.Errorf("%w: %s is already assigned to enclosure %d", ErrIneligible, w.Name, enclosureID)
	}
	if cap, capped := worker.AssignmentCaps[w.Role]; capped && len(w.Enclosures) >= cap {
		return fmt.Errorf("%w: a %s may hold at most %d enclosure(s)", ErrIneligible, w.Role, cap)
	}
	if w.Role == worker.Veterinarian {
		under := len(enc.Residents)
		for _, id := range w.Enclosures {
			held, ok, err := e.Enclosures.Get(ctx, id)
			if err != nil {
				return err
			}
			if ok {
				under += len(held.Residents)
			}
		}
		if under > w.MaxAnimals {
			return fmt.Errorf("%w: assignment would put %d animals under care (limit %d)",
				ErrIneligible, under, w.MaxAnimals)
		}
	}

	w.Assign(enclosureID)
	w.DaysAssigned = durationDays
	if _, err := e.Workers.Update(ctx, w); err != nil {
		return err
	}
	e.log().Info("worker assigned",
		zap.String("name", w.Name), zap.Int("enclosure", enclosureID), zap.Int("days", durationDays))
	return nil
}

// BuildEnclosure constructs a new enclosure. Cost scales with capacity
// and so does the daily upkeep.
func (e *Engine) BuildEnclosure(ctx context.Context, capacity int, diet animal.Diet, climate animal.Climate) (enclosure.Enclosure, error) {
	if capacity <= 0 {
		return enclosure.Enclosure{}, fmt.Errorf("%w: capacity must be positive", ErrValidation)
	}
	switch diet {
	case animal.Herbivore, animal.Carnivore:
	default:
		return enclosure.Enclosure{}, fmt.Errorf("%w: unknown diet class %q", ErrValidation, diet)
	}
	switch climate {
	case animal.Tropical, animal.Temperate, animal.Arctic:
	default:
		return enclosure.Enclosure{}, fmt.Errorf("%w: unknown climate %q", ErrValidation, climate)
	}

	cost := capacity * e.Balance.BuildCostPerCapacity
	w, err := e.World.Get(ctx)
	if err != nil {
		return enclosure.Enclosure{}, err
	}
	if w.Money < float64(cost) {
		return enclosure.Enclosure{}, fmt.Errorf("%w: construction costs %d", ErrInsufficientFunds, cost)
	}

	enc, err := e.Enclosures.Create(ctx, enclosure.Enclosure{
		Capacity:  capacity,
		Diet:      diet,
		Climate:   climate,
		DailyCost: capacity * e.Balance.UpkeepPerCapacity,
	})
	if err != nil {
		return enclosure.Enclosure{}, err
	}
	w.Money -= float64(cost)
	if err := e.World.Set(ctx, w); err != nil {
		return enclosure.Enclosure{}, err
	}
	e.log().Info("enclosure built", zap.Int("id", enc.ID), zap.Int("capacity", capacity), zap.Int("cost", cost))
	return enc, nil
}

// BuyFood adds food stock at the fixed per-unit price.
func (e *Engine) BuyFood(ctx context.Context, units int) error {
	if units < 0 {
		return fmt.Errorf("%w: food units must not be negative", ErrValidation)
	}
	cost := units * e.Balance.FoodUnitCost
	w, err := e.World.Get(ctx)
	if err != nil {
		return err
	}
	if w.Money < float64(cost) {
		return fmt.Errorf("%w: %d food units cost %d", ErrInsufficientFunds, units, cost)
	}
	w.Food += units
	w.Money -= float64(cost)
	return e.World.Set(ctx, w)
}

// Advertise converts spend into popularity: a fixed bonus per full
// spend block, remainder spent without effect.
func (e *Engine) Advertise(ctx context.Context, amount int) error {
	if amount < 0 {
		return fmt.Errorf("%w: ad spend must not be negative", ErrValidation)
	}
	w, err := e.World.Get(ctx)
	if err != nil {
		return err
	}
	if w.Money < float64(amount) {
		return fmt.Errorf("%w: ad spend of %d", ErrInsufficientFunds, amount)
	}
	bonus := (amount / e.Balance.AdSpendPerBonus) * e.Balance.AdPopularityBonus
	w.Popularity += float64(bonus)
	w.Money -= float64(amount)
	if err := e.World.Set(ctx, w); err != nil {
		return err
	}
	e.log().Info("advertising bought", zap.Int("spend", amount), zap.Int("popularity_bonus", bonus))
	return nil
}

// Borrow opens a loan at the configured daily rate and credits the
// principal immediately.
func (e *Engine) Borrow(ctx context.Context, amount float64, termDays int) (loan.Loan, error) {
	if amount <= 0 {
		return loan.Loan{}, fmt.Errorf("%w: loan amount must be positive", ErrValidation)
	}
	if termDays < 1 || termDays > e.Balance.MaxLoanTermDays {
		return loan.Loan{}, fmt.Errorf("%w: loan term must be 1-%d days", ErrValidation, e.Balance.MaxLoanTermDays)
	}

	l, err := loan.New(amount, termDays, e.Balance.LoanDailyRate)
	if err != nil {
		return loan.Loan{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	l, err = e.Loans.Add(ctx, l)
	if err != nil {
		return loan.Loan{}, err
	}

	w, err := e.World.Get(ctx)
	if err != nil {
		return loan.Loan{}, err
	}
	w.Money += amount
	if err := e.World.Set(ctx, w); err != nil {
		return loan.Loan{}, err
	}
	e.log().Info("loan taken",
		zap.Float64("principal", amount), zap.Int("term_days", termDays), zap.Float64("daily_repayment", l.DailyRepayment))
	return l, nil
}
