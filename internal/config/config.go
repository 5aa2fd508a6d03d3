// Package config loads tool configuration from environment variables.
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// #region errors

// ErrBadSampleCount indicates a non-positive sample or aim count.
var ErrBadSampleCount = errors.New("sample counts must be positive")

// ErrBadGridSize indicates non-positive heat map dimensions.
var ErrBadGridSize = errors.New("heat map dimensions must be positive")

// ErrBadRule indicates an unknown finishing rule name.
var ErrBadRule = errors.New(`rule must be "any" or "double"`)

// ErrBadIntegrator indicates an unknown integrator name.
var ErrBadIntegrator = errors.New(`integrator must be "quadrature" or "montecarlo"`)

// ErrBadSigma indicates a non-positive aim dispersion.
var ErrBadSigma = errors.New("sigma must be positive")

// #endregion errors

// #region config

// Config is the shared configuration of the command-line tools.
type Config struct {
	// TargetPath is the board definition file.
	TargetPath string `env:"DARTS_TARGET" envDefault:"target.out"`
	// DBPath is the SQLite database for calibration and solve history.
	DBPath string `env:"DARTS_DB" envDefault:"darts.db"`
	// Rule selects the finishing variant: "any" or "double".
	Rule string `env:"DARTS_RULE" envDefault:"double"`
	// Integrator selects how bed probabilities are computed:
	// "quadrature" (deterministic, convex beds) or "montecarlo".
	Integrator string `env:"DARTS_INTEGRATOR" envDefault:"quadrature"`
	// SolverSamples is the aim grid budget per solved state.
	SolverSamples int `env:"DARTS_SOLVER_SAMPLES" envDefault:"10000"`
	// MCSamples is the per-integration draw count of the Monte Carlo
	// integrator.
	MCSamples int `env:"DARTS_MC_SAMPLES" envDefault:"10000"`
	// HeatRows and HeatCols are the heat map grid dimensions.
	HeatRows int `env:"DARTS_HEAT_ROWS" envDefault:"100"`
	HeatCols int `env:"DARTS_HEAT_COLS" envDefault:"100"`
	// Seed drives every pseudorandom source; fixed seed, fixed output.
	Seed int64 `env:"DARTS_SEED" envDefault:"123456789"`
	// Sigma is the aim dispersion standard deviation in millimetres; the
	// advisor and batch solver build their distribution from it.
	Sigma float64 `env:"DARTS_SIGMA" envDefault:"40"`
	// MaxState is the highest state batch solving walks up to.
	MaxState int `env:"DARTS_MAX_STATE" envDefault:"101"`
}

// Parse loads configuration from the environment and validates it.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations the engine cannot run with.
func (c Config) Validate() error {
	if c.SolverSamples <= 0 || c.MCSamples <= 0 {
		return ErrBadSampleCount
	}
	if c.HeatRows <= 0 || c.HeatCols <= 0 {
		return ErrBadGridSize
	}
	if c.Rule != "any" && c.Rule != "double" {
		return ErrBadRule
	}
	if c.Integrator != "quadrature" && c.Integrator != "montecarlo" {
		return ErrBadIntegrator
	}
	if c.Sigma <= 0 {
		return ErrBadSigma
	}
	return nil
}

// #endregion config
