package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
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

	minThrows, err := solver.NewMinThrows(g, cfg.SolverSamples)
	if err != nil {
		log.Fatalf("solver: %v", err)
	}
	maxPoints, err := solver.NewMaxPoints(g, cfg.SolverSamples)
	if err != nil {
		log.Fatalf("solver: %v", err)
	}
	heat, err := solver.NewHeatMap(minThrows, cfg.HeatRows, cfg.HeatCols)
	if err != nil {
		log.Fatalf("heat map: %v", err)
	}

	runID := uuid.New().String()

	fmt.Println("Darts Advisor ready.")
	fmt.Printf("  target: %s | rule: %s | sigma: %.1fmm | db: %s\n",
		cfg.TargetPath, rules, cfg.Sigma, cfg.DBPath)
	fmt.Println("Enter a score to solve, 'heat <score>', 'points <score>', or 'quit':")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			break
		}

		fields := strings.Fields(line)
		switch {
		case len(fields) == 1:
			state, err := strconv.Atoi(fields[0])
			if err != nil {
				fmt.Println("expected a score, 'heat <score>', 'points <score>', or 'quit'")
				continue
			}
			solveState(minThrows, db, runID, cfg, state)

		case len(fields) == 2 && fields[0] == "heat":
			state, err := strconv.Atoi(fields[1])
			if err != nil {
				fmt.Println("expected 'heat <score>'")
				continue
			}
			grid, err := heat.Map(state)
			if err != nil {
				log.Printf("heat map error: %v", err)
				continue
			}
			printGrid(grid, g.TargetBounds())

		case len(fields) == 2 && fields[0] == "points":
			state, err := strconv.Atoi(fields[1])
			if err != nil {
				fmt.Println("expected 'points <score>'")
				continue
			}
			result, err := maxPoints.Solve(state)
			if err != nil {
				log.Printf("solve error: %v", err)
				continue
			}
			fmt.Printf("expected points %.3f aiming at (%.1f, %.1f)\n",
				result.Value, result.Aim.X, result.Aim.Y)

		default:
			fmt.Println("expected a score, 'heat <score>', 'points <score>', or 'quit'")
		}
	}
}
// #endregion main

// #region solve
func solveState(s *solver.MinThrows, db *store.Store, runID string, cfg config.Config, state int) {
	start := time.Now()
	result, err := s.Solve(state)
	if err != nil {
		log.Printf("solve error: %v", err)
		return
	}
	elapsed := time.Since(start)

	if result.Value >= solver.InfiniteScore {
		fmt.Printf("score %d cannot be finished under rule %q\n", state, cfg.Rule)
	} else {
		fmt.Printf("expected throws %.3f aiming at (%.1f, %.1f)\n",
			result.Value, result.Aim.X, result.Aim.Y)
	}

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
}
// #endregion solve

// #region helpers
func makeDistribution(cfg config.Config) (dist.Distribution, error) {
	cov := dist.Diagonal(cfg.Sigma*cfg.Sigma, cfg.Sigma*cfg.Sigma)
	if cfg.Integrator == "montecarlo" {
		return dist.NewNormalMonteCarlo(cov, geom.Vec2{}, cfg.Seed, cfg.MCSamples)
	}
	return dist.NewNormalQuadrature(cov, geom.Vec2{}, cfg.Seed)
}

func printGrid(grid [][]float64, bounds game.Bounds) {
	fmt.Printf("extent: %.2f %.2f %.2f %.2f\n",
		bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
	for _, row := range grid {
		for _, cell := range row {
			fmt.Printf("%.4g ", cell)
		}
		fmt.Println()
	}
}
// #endregion helpers
