// Package solver computes aiming strategies: a memoized dynamic program
// minimizing expected throws to finish, and a myopic strategy maximizing
// expected points per throw.
package solver

import (
	"errors"
	"math"

	"github.com/danielpatrickdp/darts-advisor/internal/game"
	"github.com/danielpatrickdp/darts-advisor/internal/geom"
)

// InfiniteScore is the sentinel value for states that cannot be won.
const InfiniteScore = 1e9

// Epsilon bounds how close the self-loop probability may get to 1 before
// an aim is treated as never escaping the current state.
const Epsilon = 1e-9

// ErrNegativeState indicates a negative game state.
var ErrNegativeState = errors.New("state must be non-negative")

// ErrBadAimCount indicates a non-positive aim sample count.
var ErrBadAimCount = errors.New("aim sample count must be positive")

// ErrNilGame indicates a solver constructed without a game.
var ErrNilGame = errors.New("solver requires a game")

// #region result

// Result pairs a solved value with the aim achieving it. For the
// min-throws solver the value is expected throws; for the max-points
// solver it is expected score reduction.
type Result struct {
	Value float64
	Aim   geom.Vec2
}

// Solver evaluates aim points for game states.
type Solver interface {
	// Solve returns the best value over the aim grid and the aim
	// achieving it.
	Solve(state int) (Result, error)
	// SolveAim evaluates a single candidate aim for a state.
	SolveAim(state int, aim geom.Vec2) (float64, error)
	// Game returns the borrowed game.
	Game() *game.Game
}

// #endregion result

// #region aim-grid

// aimGrid returns candidate aims: cell centers of a uniform grid over
// the game bounds with floor(sqrt(samples)) rows and samples/rows
// columns. Enumeration order is fixed, so value ties always resolve to
// the earlier aim.
func aimGrid(bounds game.Bounds, samples int) []geom.Vec2 {
	rows := int(math.Sqrt(float64(samples)))
	cols := samples / rows

	width := bounds.Max.X - bounds.Min.X
	height := bounds.Max.Y - bounds.Min.Y

	aims := make([]geom.Vec2, 0, rows*cols)
	for i := 0; i < cols; i++ {
		for j := 0; j < rows; j++ {
			aims = append(aims, geom.Vec2{
				X: bounds.Min.X + width*(float64(i)+0.5)/float64(cols),
				Y: bounds.Min.Y + height*(float64(j)+0.5)/float64(rows),
			})
		}
	}
	return aims
}

// #endregion aim-grid

// #region min-throws

// MinThrows finds, per state, the aim minimizing the expected number of
// throws to finish. Values and optimal aims are memoized; a winnability
// set keeps dead-end states from poisoning their ancestors.
type MinThrows struct {
	game    *game.Game
	samples int

	memo     map[int]Result
	winnable map[int]bool
}

// NewMinThrows builds the solver. samples is the aim grid budget.
func NewMinThrows(g *game.Game, samples int) (*MinThrows, error) {
	if g == nil {
		return nil, ErrNilGame
	}
	if samples <= 0 {
		return nil, ErrBadAimCount
	}
	s := &MinThrows{
		game:     g,
		samples:  samples,
		memo:     make(map[int]Result),
		winnable: make(map[int]bool),
	}
	s.winnable[0] = true
	return s, nil
}

// Game returns the borrowed game.
func (s *MinThrows) Game() *game.Game {
	return s.game
}

// Solve returns the minimum expected throws from state and the optimal
// aim. Unwinnable states yield InfiniteScore with the origin aim.
func (s *MinThrows) Solve(state int) (Result, error) {
	if state < 0 {
		return Result{}, ErrNegativeState
	}
	return s.solve(state), nil
}

// SolveAim returns the expected throws from state when always throwing
// at aim first. Successor states are solved optimally.
func (s *MinThrows) SolveAim(state int, aim geom.Vec2) (float64, error) {
	if state < 0 {
		return 0, ErrNegativeState
	}
	if state == 0 {
		return 0, nil
	}
	return s.solveAim(state, aim), nil
}

func (s *MinThrows) solve(state int) Result {
	if state == 0 {
		return Result{Value: 0}
	}
	if r, ok := s.memo[state]; ok {
		return r
	}

	best := Result{Value: InfiniteScore}
	for _, aim := range aimGrid(s.game.TargetBounds(), s.samples) {
		value := s.solveAim(state, aim)
		if value < best.Value {
			best = Result{Value: value, Aim: aim}
		}
	}

	if best.Value < InfiniteScore {
		s.winnable[state] = true
	}
	s.memo[state] = best
	return best
}

// solveAim folds the geometric self-loop in closed form: one throw now
// plus the conditional expected future given the throw escaped the
// current state. Mass flowing to unwinnable successors counts as part
// of the self-loop; every non-self successor is strictly smaller than
// state, so the recursion bottoms out at zero.
func (s *MinThrows) solveAim(state int, aim geom.Vec2) float64 {
	pSelf := 0.0
	expected := 0.0

	for _, t := range s.game.Transitions(aim, state) {
		if t.State == state {
			pSelf += t.P
			continue
		}
		child := s.solve(t.State)
		if !s.winnable[t.State] {
			pSelf += t.P
			continue
		}
		expected += child.Value * t.P
	}

	if pSelf >= 1-Epsilon {
		return InfiniteScore
	}
	return (expected + 1) / (1 - pSelf)
}

// #endregion min-throws

// #region max-points

// MaxPoints finds the aim maximizing the expected score reduction of a
// single throw. Purely myopic: no recursion, no memoization.
type MaxPoints struct {
	game    *game.Game
	samples int
}

// NewMaxPoints builds the solver. samples is the aim grid budget.
func NewMaxPoints(g *game.Game, samples int) (*MaxPoints, error) {
	if g == nil {
		return nil, ErrNilGame
	}
	if samples <= 0 {
		return nil, ErrBadAimCount
	}
	return &MaxPoints{game: g, samples: samples}, nil
}

// Game returns the borrowed game.
func (s *MaxPoints) Game() *game.Game {
	return s.game
}

// Solve returns the maximum expected score reduction over the aim grid
// and the aim achieving it.
func (s *MaxPoints) Solve(state int) (Result, error) {
	if state < 0 {
		return Result{}, ErrNegativeState
	}

	best := Result{Value: math.Inf(-1)}
	for _, aim := range aimGrid(s.game.TargetBounds(), s.samples) {
		value := s.solveAim(state, aim)
		if value > best.Value {
			best = Result{Value: value, Aim: aim}
		}
	}
	return best, nil
}

// SolveAim returns the expected score reduction of one throw at aim.
// Busted throws reduce nothing.
func (s *MaxPoints) SolveAim(state int, aim geom.Vec2) (float64, error) {
	if state < 0 {
		return 0, ErrNegativeState
	}
	return s.solveAim(state, aim), nil
}

func (s *MaxPoints) solveAim(state int, aim geom.Vec2) float64 {
	expected := 0.0
	for _, t := range s.game.Transitions(aim, state) {
		expected += float64(state-t.State) * t.P
	}
	return expected
}

// #endregion max-points
