package config

// Balance holds the economy tuning knobs
type Balance struct {
	// Starting state
	StartingMoney      float64 `yaml:"starting_money" json:"starting_money"`
	StartingFood       int     `yaml:"starting_food" json:"starting_food"`
	StartingPopularity float64 `yaml:"starting_popularity" json:"starting_popularity"`

	// Game length; win/loss detection lives in the shell, the engine
	// only reports state.
	MaxDays int `yaml:"max_days" json:"max_days"`

	// Veterinary care
	VetMaxAnimals int `yaml:"vet_max_animals" json:"vet_max_animals"`

	// Market and purchases
	MarketRefreshFee int `yaml:"market_refresh_fee" json:"market_refresh_fee"`
	ThrottleFromDay  int `yaml:"throttle_from_day" json:"throttle_from_day"`
	DailyPurchaseCap int `yaml:"daily_purchase_cap" json:"daily_purchase_cap"`

	// Supplies and promotion
	FoodUnitCost      int `yaml:"food_unit_cost" json:"food_unit_cost"`
	AdSpendPerBonus   int `yaml:"ad_spend_per_bonus" json:"ad_spend_per_bonus"`
	AdPopularityBonus int `yaml:"ad_popularity_bonus" json:"ad_popularity_bonus"`

	// Credit
	LoanDailyRate   float64 `yaml:"loan_daily_rate" json:"loan_daily_rate"`
	MaxLoanTermDays int     `yaml:"max_loan_term_days" json:"max_loan_term_days"`

	// Construction
	BuildCostPerCapacity int `yaml:"build_cost_per_capacity" json:"build_cost_per_capacity"`
	UpkeepPerCapacity    int `yaml:"upkeep_per_capacity" json:"upkeep_per_capacity"`

	// Daily hazards (percent chances out of 100)
	OldAgeDays          int `yaml:"old_age_days" json:"old_age_days"`
	SicknessChancePct   int `yaml:"sickness_chance_pct" json:"sickness_chance_pct"`
	StarvationChancePct int `yaml:"starvation_chance_pct" json:"starvation_chance_pct"`
	PopularityDriftPct  int `yaml:"popularity_drift_pct" json:"popularity_drift_pct"`

	// Breeding
	BreedingMinAgeDays int `yaml:"breeding_min_age_days" json:"breeding_min_age_days"`
}

// Default returns the classic balance
func Default() Balance {
	return Balance{
		StartingMoney:        1488,
		StartingFood:         100,
		StartingPopularity:   50,
		MaxDays:              20,
		VetMaxAnimals:        20,
		MarketRefreshFee:     50,
		ThrottleFromDay:      10,
		DailyPurchaseCap:     1,
		FoodUnitCost:         2,
		AdSpendPerBonus:      200,
		AdPopularityBonus:    5,
		LoanDailyRate:        0.005,
		MaxLoanTermDays:      20,
		BuildCostPerCapacity: 50,
		UpkeepPerCapacity:    2,
		OldAgeDays:           30,
		SicknessChancePct:    10,
		StarvationChancePct:  30,
		PopularityDriftPct:   10,
		BreedingMinAgeDays:   5,
	}
}

// Casual returns a gentler economy for new keepers
func Casual() Balance {
	cfg := Default()
	cfg.StartingMoney = 2500
	cfg.SicknessChancePct = 5
	cfg.StarvationChancePct = 20
	cfg.MarketRefreshFee = 25
	return cfg
}

// Hard returns a tighter economy for experienced keepers
func Hard() Balance {
	cfg := Default()
	cfg.StartingMoney = 1000
	cfg.StartingFood = 60
	cfg.SicknessChancePct = 15
	cfg.StarvationChancePct = 40
	cfg.LoanDailyRate = 0.01
	return cfg
}
