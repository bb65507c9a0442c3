package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/quinxq/zoo-zov-simulator/internal/animal"
	"github.com/quinxq/zoo-zov-simulator/internal/config"
	"github.com/quinxq/zoo-zov-simulator/internal/game"
	"github.com/quinxq/zoo-zov-simulator/internal/rng"
	"github.com/quinxq/zoo-zov-simulator/internal/worker"
	"github.com/quinxq/zoo-zov-simulator/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	bal := config.FromEnv()
	if path := os.Getenv("ZOO_BALANCE"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "load balance: %v\n", err)
			os.Exit(1)
		}
		bal = loaded
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	seed := time.Now().UnixNano()
	if v := os.Getenv("ZOO_SEED"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			seed = n
		}
	}

	sh := &shell{in: bufio.NewReader(os.Stdin)}

	name := sh.readLine("Enter the name of your zoo: ")
	for name == "" {
		name = sh.readLine("The zoo name must not be empty. Try again: ")
	}

	eng, err := game.NewZoo(name, bal, rng.New(seed), logger.Named(baseLogger, "engine"))
	if err != nil {
		baseLogger.Fatal("create zoo", zap.Error(err))
	}
	sh.eng = eng

	sh.play(context.Background(), bal.MaxDays)
}

// shell is the thin I/O layer: prompts, input loops and rendering. All
// game rules live in the engine.
type shell struct {
	in  *bufio.Reader
	eng *game.Engine
}

func (s *shell) readLine(prompt string) string {
	fmt.Print(prompt)
	line, _ := s.in.ReadString('\n')
	return strings.TrimSpace(line)
}

func (s *shell) readInt(prompt string, min, max int) int {
	for {
		line := s.readLine(prompt)
		n, err := strconv.Atoi(line)
		if err == nil && n >= min && n <= max {
			return n
		}
		fmt.Printf("Invalid input. Enter a number between %d and %d.\n", min, max)
	}
}

func (s *shell) play(ctx context.Context, maxDays int) {
	for {
		w, err := s.eng.Status(ctx)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		if w.Day > maxDays {
			fmt.Printf("\nCongratulations! You ran %q for %d days!\n", w.Name, maxDays)
			return
		}
		s.printStatus(ctx)

		choice := s.readInt("\nActions:\n"+
			"1. Manage animals\n"+
			"2. Manage purchases\n"+
			"3. Manage enclosures\n"+
			"4. Manage workers\n"+
			"5. Breeding\n"+
			"6. Next day\n"+
			"Choose an action: ", 1, 6)

		switch choice {
		case 1:
			s.animalsMenu(ctx)
		case 2:
			s.purchasesMenu(ctx)
		case 3:
			s.enclosuresMenu(ctx)
		case 4:
			s.workersMenu(ctx)
		case 5:
			s.breedingMenu(ctx)
		case 6:
			sum, err := s.eng.NextDay(ctx)
			if err != nil {
				fmt.Println("error:", err)
				continue
			}
			s.printSummary(sum)
			if sum.Money < 0 {
				fmt.Printf("\nGame over! You ran out of money on day %d.\n", sum.Day)
				return
			}
		}
	}
}

func (s *shell) printStatus(ctx context.Context) {
	w, _ := s.eng.Status(ctx)
	fmt.Printf("\n--- Zoo %q (day %d) ---\n", w.Name, w.Day)
	fmt.Printf("Money: $%.2f\n", w.Money)
	fmt.Printf("Food: %d units\n", w.Food)
	fmt.Printf("Popularity: %.1f\n", w.Popularity)
	fmt.Printf("Animals: %d\n", w.TotalAnimals)
	fmt.Printf("Visitors today: %d\n", w.Visitors)
	if w.Special != "none" && w.SpecialCount > 0 {
		fmt.Printf("Special guests: %d %s\n", w.SpecialCount, w.Special)
	}
	workers, _ := s.eng.Workers.List(ctx)
	encs, _ := s.eng.Enclosures.List(ctx)
	fmt.Printf("Workers: %d\n", len(workers))
	fmt.Printf("Enclosures: %d\n", len(encs))
}

func (s *shell) printSummary(sum game.DaySummary) {
	fmt.Printf("\n--- Day %d report ---\n", sum.Day)
	for _, name := range sum.DiedOfOldAge {
		fmt.Printf("%s died of old age.\n", name)
	}
	if sum.FoodShortage {
		fmt.Println("Not enough food for everyone!")
		for _, name := range sum.Starved {
			fmt.Printf("%s starved.\n", name)
		}
	}
	if sum.Healed > 0 {
		fmt.Printf("Veterinarians treated %d animal(s).\n", sum.Healed)
	}
	if sum.Special != "none" && sum.SpecialCount > 0 {
		fmt.Printf("Special guests today: %d %s.\n", sum.SpecialCount, sum.Special)
	}
	if sum.LoansPaidOff > 0 {
		fmt.Printf("%d loan(s) paid off.\n", sum.LoansPaidOff)
	}
	fmt.Printf("Visitors: %d, revenue: $%.0f, payroll: $%d, upkeep: $%d\n",
		sum.Visitors, sum.Revenue, sum.Payroll, sum.Upkeep)
	if sum.LoanPayments > 0 {
		fmt.Printf("Loan payments: $%.2f\n", sum.LoanPayments)
	}
}

func (s *shell) animalsMenu(ctx context.Context) {
	for {
		choice := s.readInt("\nManage animals:\n"+
			"1. Buy an animal\n"+
			"2. Sell an animal\n"+
			"3. View animals\n"+
			"4. Rename an animal\n"+
			"5. Refresh the market\n"+
			"6. Back\n"+
			"Choose an action: ", 1, 6)

		switch choice {
		case 1:
			s.buyAnimal(ctx)
		case 2:
			s.sellAnimal(ctx)
		case 3:
			s.viewAnimals(ctx)
		case 4:
			s.renameAnimal(ctx)
		case 5:
			if err := s.eng.RefreshMarket(ctx); err != nil {
				fmt.Println(err)
			} else {
				fmt.Println("Market refreshed.")
			}
		case 6:
			return
		}
	}
}

func (s *shell) buyAnimal(ctx context.Context) {
	offers := s.eng.Market.Offers()
	if len(offers) == 0 {
		fmt.Println("The market is empty. Refresh it first.")
		return
	}
	fmt.Println("\nAnimals for sale:")
	for i, a := range offers {
		fmt.Printf("%d. %s, price $%d, sex %s, climate %s, diet %s\n",
			i+1, a.Species, a.Price, a.Sex, a.Climate, a.Diet)
	}
	pick := s.readInt(fmt.Sprintf("Choose an animal (1-%d) or 0 to cancel: ", len(offers)), 0, len(offers))
	if pick == 0 {
		return
	}

	encs, _ := s.eng.Enclosures.List(ctx)
	shown := false
	for _, e := range encs {
		if e.CanHouse(offers[pick-1]) {
			fmt.Printf("Enclosure %d (%d/%d animals)\n", e.ID, len(e.Residents), e.Capacity)
			shown = true
		}
	}
	if !shown {
		fmt.Println("No suitable enclosure for this animal.")
		return
	}
	encID := s.readInt("Enter an enclosure ID: ", 1, encs[len(encs)-1].ID)

	bought, err := s.eng.Purchase(ctx, pick-1, encID)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%s bought and placed in enclosure %d.\n", bought.DisplayName, encID)
}

func (s *shell) sellAnimal(ctx context.Context) {
	id, ok := s.pickAnimal(ctx, "sell")
	if !ok {
		return
	}
	payout, err := s.eng.Sell(ctx, id)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("Sold for $%d.\n", payout)
}

func (s *shell) renameAnimal(ctx context.Context) {
	id, ok := s.pickAnimal(ctx, "rename")
	if !ok {
		return
	}
	name := s.readLine("Enter the new name: ")
	if err := s.eng.Rename(ctx, id, name); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("Renamed to %s.\n", name)
}

// pickAnimal lists the registry and returns the chosen animal's ID.
func (s *shell) pickAnimal(ctx context.Context, verb string) (int, bool) {
	animals, _ := s.eng.Animals.List(ctx)
	if len(animals) == 0 {
		fmt.Println("The zoo has no animals.")
		return 0, false
	}
	for i, a := range animals {
		fmt.Printf("%d. %s (%s), enclosure %d\n", i+1, a.Species, a.DisplayName, a.EnclosureID)
	}
	pick := s.readInt(fmt.Sprintf("Choose an animal to %s (1-%d) or 0 to cancel: ", verb, len(animals)), 0, len(animals))
	if pick == 0 {
		return 0, false
	}
	return animals[pick-1].ID, true
}

func (s *shell) viewAnimals(ctx context.Context) {
	animals, _ := s.eng.Animals.List(ctx)
	if len(animals) == 0 {
		fmt.Println("The zoo has no animals.")
		return
	}
	for _, a := range animals {
		fmt.Printf("%s (%s): age %d days, sex %s, weight %.1f kg, %s, %s, enclosure %d, sick: %v",
			a.Species, a.DisplayName, a.AgeDays, a.Sex, a.Weight, a.Climate, a.Diet, a.EnclosureID, a.Sick)
		if a.BornInZoo {
			fmt.Printf(", parents: %s and %s", a.ParentA, a.ParentB)
		}
		fmt.Println()
	}
}

func (s *shell) purchasesMenu(ctx context.Context) {
	for {
		choice := s.readInt("\nManage purchases:\n"+
			"1. Buy food\n"+
			"2. Spend on advertising\n"+
			"3. Take a loan\n"+
			"4. View loans\n"+
			"5. Back\n"+
			"Choose an action: ", 1, 5)

		switch choice {
		case 1:
			units := s.readInt("Food units to buy: ", 0, 10000)
			if err := s.eng.BuyFood(ctx, units); err != nil {
				fmt.Println(err)
			} else {
				fmt.Printf("%d food units bought.\n", units)
			}
		case 2:
			amount := s.readInt("Ad spend: ", 0, 10000)
			if err := s.eng.Advertise(ctx, amount); err != nil {
				fmt.Println(err)
			} else {
				fmt.Println("Advertising bought.")
			}
		case 3:
			amount := s.readInt("Loan amount: ", 1, 1000000)
			term := s.readInt("Repayment term in days (1-20): ", 1, 20)
			l, err := s.eng.Borrow(ctx, float64(amount), term)
			if err != nil {
				fmt.Println(err)
			} else {
				fmt.Printf("Loan of $%d taken for %d days, daily payment $%.2f.\n", amount, term, l.DailyRepayment)
			}
		case 4:
			loans, _ := s.eng.Loans.List(ctx)
			if len(loans) == 0 {
				fmt.Println("No active loans.")
				continue
			}
			for _, l := range loans {
				fmt.Printf("Principal $%.0f, rate %.1f%%, days left %d, daily payment $%.2f, remaining debt $%.2f\n",
					l.Principal, l.DailyRate*100, l.DaysLeft, l.DailyRepayment, l.RemainingDebt())
			}
		case 5:
			return
		}
	}
}

func (s *shell) enclosuresMenu(ctx context.Context) {
	for {
		choice := s.readInt("\nManage enclosures:\n"+
			"1. Build an enclosure\n"+
			"2. View enclosures\n"+
			"3. Back\n"+
			"Choose an action: ", 1, 3)

		switch choice {
		case 1:
			capacity := s.readInt("Capacity: ", 1, 100)
			diet := animal.Herbivore
			if s.readInt("Diet class (1: herbivores, 2: carnivores): ", 1, 2) == 2 {
				diet = animal.Carnivore
			}
			climate := animal.Temperate
			switch s.readInt("Climate (1: tropical, 2: temperate, 3: arctic): ", 1, 3) {
			case 1:
				climate = animal.Tropical
			case 3:
				climate = animal.Arctic
			}
			enc, err := s.eng.BuildEnclosure(ctx, capacity, diet, climate)
			if err != nil {
				fmt.Println(err)
			} else {
				fmt.Printf("Enclosure %d built.\n", enc.ID)
			}
		case 2:
			encs, _ := s.eng.Enclosures.List(ctx)
			for _, e := range encs {
				fmt.Printf("ID %d: capacity %d, animals %d, %s, %s, daily cost $%d\n",
					e.ID, e.Capacity, len(e.Residents), e.Diet, e.Climate, e.DailyCost)
			}
		case 3:
			return
		}
	}
}

func (s *shell) workersMenu(ctx context.Context) {
	for {
		choice := s.readInt("\nManage workers:\n"+
			"1. Hire a worker\n"+
			"2. View workers\n"+
			"3. Fire a worker\n"+
			"4. Assign a worker to an enclosure\n"+
			"5. Back\n"+
			"Choose an action: ", 1, 5)

		switch choice {
		case 1:
			name := s.readLine("Worker name: ")
			role := worker.Cleaner
			switch s.readInt("Role (1: veterinarian, 2: cleaner, 3: feeder): ", 1, 3) {
			case 1:
				role = worker.Veterinarian
			case 3:
				role = worker.Feeder
			}
			hired, err := s.eng.Hire(ctx, name, role)
			if err != nil {
				fmt.Println(err)
			} else {
				fmt.Printf("%s hired as %s.\n", hired.Name, hired.Role)
			}
		case 2:
			workers, _ := s.eng.Workers.List(ctx)
			for i, w := range workers {
				fmt.Printf("%d. %s, %s, salary $%d, days worked %d, enclosures %v, days assigned %d\n",
					i+1, w.Name, w.Role, w.Salary, w.DaysWorked, w.Enclosures, w.DaysAssigned)
			}
		case 3:
			id, ok := s.pickWorker(ctx, "fire")
			if !ok {
				continue
			}
			if err := s.eng.Fire(ctx, id); err != nil {
				fmt.Println(err)
			} else {
				fmt.Println("Worker fired.")
			}
		case 4:
			id, ok := s.pickWorker(ctx, "assign")
			if !ok {
				continue
			}
			encs, _ := s.eng.Enclosures.List(ctx)
			for _, e := range encs {
				fmt.Printf("Enclosure %d (%d/%d animals)\n", e.ID, len(e.Residents), e.Capacity)
			}
			encID := s.readInt("Enter an enclosure ID: ", 1, encs[len(encs)-1].ID)
			days := s.readInt("Assignment duration in days: ", 1, 365)
			if err := s.eng.Assign(ctx, id, encID, days); err != nil {
				fmt.Println(err)
			} else {
				fmt.Println("Worker assigned.")
			}
		case 5:
			return
		}
	}
}

func (s *shell) pickWorker(ctx context.Context, verb string) (string, bool) {
	workers, _ := s.eng.Workers.List(ctx)
	if len(workers) == 0 {
		fmt.Println("The zoo has no workers.")
		return "", false
	}
	for i, w := range workers {
		fmt.Printf("%d. %s, %s\n", i+1, w.Name, w.Role)
	}
	pick := s.readInt(fmt.Sprintf("Choose a worker to %s (1-%d) or 0 to cancel: ", verb, len(workers)), 0, len(workers))
	if pick == 0 {
		return "", false
	}
	return workers[pick-1].ID, true
}

func (s *shell) breedingMenu(ctx context.Context) {
	for {
		choice := s.readInt("\nBreeding:\n"+
			"1. Breed animals\n"+
			"2. Back\n"+
			"Choose an action: ", 1, 2)
		if choice == 2 {
			return
		}

		animals, _ := s.eng.Animals.List(ctx)
		if len(animals) < 2 {
			fmt.Println("Not enough animals to breed.")
			continue
		}
		for i, a := range animals {
			fmt.Printf("%d. %s (%s), sex %s, enclosure %d\n", i+1, a.Species, a.DisplayName, a.Sex, a.EnclosureID)
		}
		first := s.readInt(fmt.Sprintf("Choose the first animal (1-%d) or 0 to cancel: ", len(animals)), 0, len(animals))
		if first == 0 {
			continue
		}
		second := s.readInt(fmt.Sprintf("Choose the second animal (1-%d) or 0 to cancel: ", len(animals)), 0, len(animals))
		if second == 0 {
			continue
		}
		if first == second {
			fmt.Println("You cannot pick the same animal twice.")
			continue
		}
		born, err := s.eng.Breed(ctx, animals[first-1].ID, animals[second-1].ID)
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Printf("A new animal was born: %s (%s).\n", born.Species, born.DisplayName)
	}
}
