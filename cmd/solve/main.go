package main

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/danielpatrickdp/darts-advisor/internal/config"
	"github.com/danielpatrickdp/darts-advisor/internal/dist"
	"github.com/danielpatrickdp/darts-advisor/internal/game"
	"github.com/danielpatrickdp/darts-advisor/internal/geom"
	"github.com/danielpatrickdp/darts-advisor/internal/solver"
	"github.com/danielpatrickdp/darts-advisor/internal/store"
	"github.com/danielpatrickdp/darts-advisor/internal/target"
)

// #region main
// Batch solver: solve every state from 1 up to DARTS_MAX_STATE, printing
// the expected throws, the optimal aim, and the heat map per state.
func main() {
	cfg, err := config.Parse()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := store.NewStore(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	defer db.Close()

	board, err := target.Load(cfg.TargetPath)
	if err != nil {
		log.Fatalf("failed to load target: %v", err)
	}

	distribution, err := makeDistribution(cfg)
	if err != nil {
		log.Fatalf("failed to build distribution: %v", err)
	}

	rules, err := game.ParseRules(cfg.Rule)
	if err != nil {
		log.Fatalf("rules: %v", err)
	}
	g, err := game.New(board, distribution, rules)
	if err != nil {
		log.Fatalf("game: %v", err)
	}

	s, err := solver.NewMinThrows(g, cfg.SolverSamples)
	if err != nil {
		log.Fatalf("solver: %v", err)
	}
	heat, err := solver.NewHeatMap(s, cfg.HeatRows, cfg.HeatCols)
	if err != nil {
		log.Fatalf("heat map: %v", err)
	}

	runID := uuid.New().String()
	bounds := g.TargetBounds()

	for state := 1; state <= cfg.MaxState; state++ {
		start := time.Now()
		result, err := s.Solve(state)
		if err != nil {
			log.Fatalf("solve %d: %v", state, err)
		}
		elapsed := time.Since(start)

		fmt.Printf("State: %d\n", state)
		fmt.Printf("Expected throws to finish: %g, Best aim: (%g, %g)\n",
			result.Value, result.Aim.X, result.Aim.Y)

		grid, err := heat.Map(state)
		if err != nil {
			log.Fatalf("heat map %d: %v", state, err)
		}
		fmt.Printf("Heat map for state %d:\n", state)
		fmt.Printf("Heat map extent: %g %g %g %g\n",
			bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
		for _, row := range grid {
			for _, cell := range row {
				fmt.Printf("%g ", cell)
			}
			fmt.Println()
		}
		fmt.Println()

		err = db.LogSolve(store.SolveEntry{
			RunID:     runID,
			Rule:      cfg.Rule,
			State:     state,
			Value:     result.Value,
			AimX:      result.Aim.X,
			AimY:      result.Aim.Y,
			Samples:   cfg.SolverSamples,
			ElapsedMS: elapsed.Milliseconds(),
		})
		if err != nil {
			log.Printf("logging error: %v", err)
		}

		log.Printf("finished state %d in %s", state, elapsed)
	}
}
// #endregion main

// #region helpers
func makeDistribution(cfg config.Config) (dist.Distribution, error) {
	cov := dist.Diagonal(cfg.Sigma*cfg.Sigma, cfg.Sigma*cfg.Sigma)
	if cfg.Integrator == "montecarlo" {
		return dist.NewNormalMonteCarlo(cov, geom.Vec2{}, cfg.Seed, cfg.MCSamples)
	}
	return dist.NewNormalQuadrature(cov, geom.Vec2{}, cfg.Seed)
}
// #endregion helpers
