// Package config holds the engine configuration value object. Every engine
// entry point takes a Config explicitly; there is no process-global state, so
// concurrent callers with different assumptions cannot interfere.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v2"
)

// Config carries every assumption the engines consume. Defaults mirror the
// Indian-market parameters the system was calibrated on (NIFTY 50 benchmark,
// G-Sec risk-free rate) but nothing in the engines is market-specific.
type Config struct {
	// Market assumptions
	RiskFreeRate         float64 `yaml:"risk_free_rate" validate:"gte=0,lt=1"`
	ExpectedMarketReturn float64 `yaml:"expected_market_return" validate:"gte=0,lt=1"`

	// Trading calendar
	TradingPeriodsPerYear float64 `yaml:"trading_periods_per_year" validate:"gt=0"`

	// Regression
	MinRegressionObservations int `yaml:"min_regression_observations" validate:"gte=2"`

	// Dividend growth estimation
	DividendLookbackYears int     `yaml:"dividend_lookback_years" validate:"gte=2"`
	DefaultDividendGrowth float64 `yaml:"default_dividend_growth" validate:"gt=-1,lt=1"`
	GrowthFloor           float64 `yaml:"growth_floor" validate:"gt=-1"`
	GrowthCeiling         float64 `yaml:"growth_ceiling" validate:"lt=1,gtfield=GrowthFloor"`

	// Ratio trends
	TrendThreshold float64 `yaml:"trend_threshold" validate:"gt=0,lt=1"`

	// DCF supplements
	TerminalGrowthRate float64 `yaml:"terminal_growth_rate" validate:"gte=0,lt=1"`
	ForecastYears      int     `yaml:"forecast_years" validate:"gte=1,lte=20"`
	TaxRate            float64 `yaml:"tax_rate" validate:"gte=0,lt=1"`
}

// Default returns the documented default configuration.
func Default() Config {
	return Config{
		RiskFreeRate:              0.0725,
		ExpectedMarketReturn:      0.13,
		TradingPeriodsPerYear:     252,
		MinRegressionObservations: 30,
		DividendLookbackYears:     5,
		DefaultDividendGrowth:     0.05,
		GrowthFloor:               -0.10,
		GrowthCeiling:             0.20,
		TrendThreshold:            0.05,
		TerminalGrowthRate:        0.03,
		ForecastYears:             5,
		TaxRate:                   0.25,
	}
}

// MarketRiskPremium is the implied premium Rm - Rf.
func (c Config) MarketRiskPremium() float64 {
	return c.ExpectedMarketReturn - c.RiskFreeRate
}

// Validate checks the configuration invariants.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// Load reads a YAML file over the defaults and validates the result.
// Fields absent from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// FromEnv overlays environment variables onto the defaults. Unset or
// malformed variables keep their defaults. Callers typically run
// godotenv.Load first.
func FromEnv() Config {
	cfg := Default()
	overlayFloat := func(key string, dst *float64) {
		if v := os.Getenv(key); v != "" {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				*dst = f
			}
		}
	}
	overlayInt := func(key string, dst *int) {
		if v := os.Getenv(key); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				*dst = n
			}
		}
	}
	overlayFloat("RISK_FREE_RATE", &cfg.RiskFreeRate)
	overlayFloat("EXPECTED_MARKET_RETURN", &cfg.ExpectedMarketReturn)
	overlayFloat("TRADING_PERIODS_PER_YEAR", &cfg.TradingPeriodsPerYear)
	overlayInt("MIN_REGRESSION_OBSERVATIONS", &cfg.MinRegressionObservations)
	overlayInt("DIVIDEND_LOOKBACK_YEARS", &cfg.DividendLookbackYears)
	overlayFloat("DEFAULT_DIVIDEND_GROWTH", &cfg.DefaultDividendGrowth)
	overlayFloat("TREND_THRESHOLD", &cfg.TrendThreshold)
	overlayFloat("TERMINAL_GROWTH_RATE", &cfg.TerminalGrowthRate)
	overlayInt("FORECAST_YEARS", &cfg.ForecastYears)
	overlayFloat("TAX_RATE", &cfg.TaxRate)
	return cfg
}
