// Package dist provides two-dimensional probability distributions used to
// model a player's aim dispersion, together with integration of their
// density over polygonal regions.
package dist

import (
	"errors"

	"github.com/danielpatrickdp/darts-advisor/internal/geom"
)

// #region errors

// ErrCovarianceNotPD indicates a covariance matrix that is not symmetric
// positive definite.
var ErrCovarianceNotPD = errors.New("covariance must be symmetric positive definite")

// ErrTooFewPoints indicates an attempt to estimate parameters from fewer
// than two sample points.
var ErrTooFewPoints = errors.New("at least two points are required to estimate parameters")

// ErrBadSampleCount indicates a non-positive Monte Carlo sample count.
var ErrBadSampleCount = errors.New("sample count must be positive")

// #endregion errors

// #region interface

// Distribution is a 2D probability law over the plane.
//
// IntegrateOffset(region, offset) is the probability that a draw from the
// distribution, translated by offset, lands in region. Equivalently it
// integrates the density translated by offset over the region; the game
// layer relies on this convention (the bed stays fixed, the aim shifts
// the density).
type Distribution interface {
	// Density evaluates the probability density at p.
	Density(p geom.Vec2) float64

	// Sample draws one point. Implementations hold a seeded generator;
	// concurrent sampling needs external synchronization.
	Sample() geom.Vec2

	// Integrate returns the probability mass inside region, in [0, 1].
	Integrate(region geom.Polygon) float64

	// IntegrateOffset returns the probability that sample + offset lands
	// inside region, in [0, 1].
	IntegrateOffset(region geom.Polygon, offset geom.Vec2) float64

	// AddPoint appends a calibration sample and re-estimates parameters
	// once enough points are present.
	AddPoint(p geom.Vec2)
}

// #endregion interface

// #region clamp

// clampProbability silently pulls small floating-point excursions back
// into [0, 1].
func clampProbability(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// #endregion clamp
