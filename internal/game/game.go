// Package game combines a target with a throwing distribution and maps
// aim points to probability distributions over hits and successor game
// states.
package game

import (
	"errors"
	"sort"

	"github.com/danielpatrickdp/darts-advisor/internal/dist"
	"github.com/danielpatrickdp/darts-advisor/internal/geom"
	"github.com/danielpatrickdp/darts-advisor/internal/target"
)

// ErrUnknownRules indicates a rules value outside the known variants.
var ErrUnknownRules = errors.New("unknown rules variant")

// ErrNilCollaborator indicates a game constructed without a target or
// distribution.
var ErrNilCollaborator = errors.New("game requires a target and a distribution")

// #region rules

// Rules selects the finishing variant.
type Rules int

const (
	// FinishOnAny: any hit that lands exactly on zero wins; going below
	// zero busts and leaves the state unchanged.
	FinishOnAny Rules = iota
	// FinishOnDouble: the winning throw must be a double landing exactly
	// on zero. An exact finish on a non-double busts, as does going
	// below zero. State 1 is unreachable as a win on a standard board.
	FinishOnDouble
)

func (r Rules) String() string {
	switch r {
	case FinishOnAny:
		return "any"
	case FinishOnDouble:
		return "double"
	default:
		return "unknown"
	}
}

// ParseRules maps a config token to a rules variant.
func ParseRules(name string) (Rules, error) {
	switch name {
	case "any":
		return FinishOnAny, nil
	case "double":
		return FinishOnDouble, nil
	default:
		return 0, ErrUnknownRules
	}
}

// #endregion rules

// #region types

// HitProb is one entry of a hit distribution.
type HitProb struct {
	Hit target.HitData
	P   float64
}

// StateProb is one entry of a successor-state distribution.
type StateProb struct {
	State int
	P     float64
}

// Bounds is an axis-aligned box.
type Bounds struct {
	Min geom.Vec2
	Max geom.Vec2
}

// #endregion types

// #region game

// Game borrows a target and a distribution for its lifetime and owns a
// cache of hit distributions keyed by aim point. The cache key is the
// exact Vec2 value; callers that want cache hits must re-use identical
// aim points, which the solver's fixed grid does.
type Game struct {
	target *target.Target
	dist   dist.Distribution
	rules  Rules

	hitCache map[geom.Vec2][]HitProb
	bounds   *Bounds
}

// New builds a game over the given collaborators.
func New(t *target.Target, d dist.Distribution, rules Rules) (*Game, error) {
	if t == nil || d == nil {
		return nil, ErrNilCollaborator
	}
	if rules != FinishOnAny && rules != FinishOnDouble {
		return nil, ErrUnknownRules
	}
	return &Game{
		target:   t,
		dist:     d,
		rules:    rules,
		hitCache: make(map[geom.Vec2][]HitProb),
	}, nil
}

// Rules returns the finishing variant.
func (g *Game) Rules() Rules {
	return g.rules
}

// Target returns the borrowed target.
func (g *Game) Target() *target.Target {
	return g.target
}

// #endregion game

// #region hit-distribution

// HitDistribution returns the probability distribution over typed hits
// when aiming at aim: per-bed mass from integrating the translated
// density, plus the leftover mass as a miss. Entries are merged by hit
// and returned in ascending hit order; results are cached per aim point.
// The returned slice is shared with the cache and must not be mutated.
func (g *Game) HitDistribution(aim geom.Vec2) []HitProb {
	if cached, ok := g.hitCache[aim]; ok {
		return cached
	}

	acc := make(map[target.HitData]float64)
	total := 0.0
	for _, bed := range g.target.Beds() {
		p := g.dist.IntegrateOffset(bed.Shape, aim)
		acc[bed.Hit] += p
		total += p
	}

	miss := 1.0 - total
	if miss < 0 {
		miss = 0
	}
	acc[target.Miss()] += miss

	result := make([]HitProb, 0, len(acc))
	for hit, p := range acc {
		result = append(result, HitProb{Hit: hit, P: p})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Hit.Less(result[j].Hit)
	})

	g.hitCache[aim] = result
	return result
}

// #endregion hit-distribution

// #region transitions

// applyHit maps one hit to the successor state under the game's rules.
func (g *Game) applyHit(state int, hit target.HitData) int {
	next := state + hit.Diff
	switch g.rules {
	case FinishOnDouble:
		if next == 0 {
			if hit.Type == target.Double {
				return 0
			}
			return state
		}
		if next < 0 {
			return state
		}
		return next
	default: // FinishOnAny
		if next < 0 {
			return state
		}
		return next
	}
}

// Transitions returns the distribution over successor states when aiming
// at aim from state, with duplicate successors merged and entries sorted
// by state.
func (g *Game) Transitions(aim geom.Vec2, state int) []StateProb {
	hits := g.HitDistribution(aim)

	acc := make(map[int]float64, len(hits))
	for _, hp := range hits {
		acc[g.applyHit(state, hp.Hit)] += hp.P
	}

	result := make([]StateProb, 0, len(acc))
	for s, p := range acc {
		result = append(result, StateProb{State: s, P: p})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].State < result[j].State
	})
	return result
}

// ThrowSample simulates a single throw at aim from state: one draw from
// the distribution, shifted by the aim, classified and applied. Used by
// simulation only; the solver works with the full distributions.
func (g *Game) ThrowSample(aim geom.Vec2, state int) int {
	landed := g.dist.Sample().Add(aim)
	return g.applyHit(state, g.target.Classify(landed))
}

// #endregion transitions

// #region bounds

// TargetBounds returns the axis-aligned box covering all bed vertices,
// expanded by 10% of each side's extent on each side. Computed once.
func (g *Game) TargetBounds() Bounds {
	if g.bounds != nil {
		return *g.bounds
	}

	first := true
	var b Bounds
	for _, bed := range g.target.Beds() {
		for _, v := range bed.Shape.Vertices() {
			if first {
				b.Min, b.Max = v, v
				first = false
				continue
			}
			if v.X < b.Min.X {
				b.Min.X = v.X
			}
			if v.Y < b.Min.Y {
				b.Min.Y = v.Y
			}
			if v.X > b.Max.X {
				b.Max.X = v.X
			}
			if v.Y > b.Max.Y {
				b.Max.Y = v.Y
			}
		}
	}

	pad := (b.Max.X - b.Min.X) * 0.1
	b.Min.X -= pad
	b.Max.X += pad
	pad = (b.Max.Y - b.Min.Y) * 0.1
	b.Min.Y -= pad
	b.Max.Y += pad

	g.bounds = &b
	return b
}

// #endregion bounds
