package solver

import (
	"errors"
)

// ErrBadGridSize indicates non-positive heat map dimensions.
var ErrBadGridSize = errors.New("heat map dimensions must be positive")

// #region heat-map

// HeatMap evaluates a solver at the center of every cell of a uniform
// grid over the target bounds, producing a dense picture of how good
// each aim is for a state. Grids are cached per state; the semantics of
// a cell follow the wrapped solver (expected throws or expected points).
type HeatMap struct {
	solver Solver
	rows   int
	cols   int
	memo   map[int][][]float64
}

// NewHeatMap builds a heat map generator over the given solver.
func NewHeatMap(s Solver, rows, cols int) (*HeatMap, error) {
	if s == nil {
		return nil, ErrNilGame
	}
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadGridSize
	}
	return &HeatMap{
		solver: s,
		rows:   rows,
		cols:   cols,
		memo:   make(map[int][][]float64),
	}, nil
}

// Map returns the rows x cols grid of solver values for state. Row 0 is
// the top of the board: cell (r, c) is aimed at
// (min.x + (c+0.5)/cols * w, min.y + (rows-r-0.5)/rows * h).
func (h *HeatMap) Map(state int) ([][]float64, error) {
	if cached, ok := h.memo[state]; ok {
		return cached, nil
	}

	bounds := h.solver.Game().TargetBounds()
	width := bounds.Max.X - bounds.Min.X
	height := bounds.Max.Y - bounds.Min.Y

	grid := make([][]float64, h.rows)
	for r := range grid {
		grid[r] = make([]float64, h.cols)
		for c := range grid[r] {
			aim := bounds.Min
			aim.X += width * (float64(c) + 0.5) / float64(h.cols)
			aim.Y += height * (float64(h.rows-r) - 0.5) / float64(h.rows)

			value, err := h.solver.SolveAim(state, aim)
			if err != nil {
				return nil, err
			}
			grid[r][c] = value
		}
	}

	h.memo[state] = grid
	return grid, nil
}

// #endregion heat-map
