package config

import (
	"os"
	"strconv"
)

// FromEnv loads balance configuration from environment variables
// Falls back to defaults if variables are not set
func FromEnv() Balance {
	cfg := Default()

	if val := getEnvInt("STARTING_FOOD"); val > 0 {
		cfg.StartingFood = val
	}
	if val := getEnvFloat("STARTING_MONEY"); val > 0 {
		cfg.StartingMoney = val
	}
	if val := getEnvFloat("STARTING_POPULARITY"); val > 0 {
		cfg.StartingPopularity = val
	}
	if val := getEnvInt("MAX_DAYS"); val > 0 {
		cfg.MaxDays = val
	}
	if val := getEnvInt("VET_MAX_ANIMALS"); val > 0 {
		cfg.VetMaxAnimals = val
	}
	if val := getEnvInt("MARKET_REFRESH_FEE"); val > 0 {
		cfg.MarketRefreshFee = val
	}
	if val := getEnvInt("FOOD_UNIT_COST"); val > 0 {
		cfg.FoodUnitCost = val
	}
	if val := getEnvFloat("LOAN_DAILY_RATE"); val > 0 {
		cfg.LoanDailyRate = val
	}
	if val := getEnvInt("SICKNESS_CHANCE_PCT"); val > 0 {
		cfg.SicknessChancePct = val
	}
	if val := getEnvInt("STARVATION_CHANCE_PCT"); val > 0 {
		cfg.StarvationChancePct = val
	}

	// Support preset modes
	if mode := os.Getenv("DIFFICULTY"); mode != "" {
		switch mode {
		case "casual":
			return Casual()
		case "hard":
			return Hard()
		}
	}

	return cfg
}

func getEnvInt(key string) int {
	val := os.Getenv(key)
	if val == "" {
		return 0
	}
	num, err := strconv.Atoi(val)
	if err != nil {
		return 0
	}
	return num
}

func getEnvFloat(key string) float64 {
	val := os.Getenv(key)
	if val == "" {
		return 0
	}
	num, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0
	}
	return num
}
