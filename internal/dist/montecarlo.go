package dist

import (
	"github.com/danielpatrickdp/darts-advisor/internal/geom"
)

// DefaultMonteCarloSamples is the conventional per-integration draw
// count. The constructors always take an explicit count and do not fall
// back to it.
const DefaultMonteCarloSamples = 10000

// #region monte-carlo

// NormalMonteCarlo is a bivariate normal whose region integrals are
// estimated by sampling: draw, test polygon inclusion, return the ratio.
// Works on any polygon the containment test handles, including
// non-convex ones.
type NormalMonteCarlo struct {
	Normal
	samples int
}

// NewNormalMonteCarlo builds the distribution from explicit parameters.
// samples is the per-integration draw count.
func NewNormalMonteCarlo(cov Covariance, mean geom.Vec2, seed int64, samples int) (*NormalMonteCarlo, error) {
	if samples <= 0 {
		return nil, ErrBadSampleCount
	}
	core, err := newNormal(cov, mean, seed)
	if err != nil {
		return nil, err
	}
	return &NormalMonteCarlo{Normal: core, samples: samples}, nil
}

// NewNormalMonteCarloFromPoints fits the distribution to sample points.
func NewNormalMonteCarloFromPoints(points []geom.Vec2, seed int64, samples int) (*NormalMonteCarlo, error) {
	if samples <= 0 {
		return nil, ErrBadSampleCount
	}
	core, err := newNormalFromPoints(points, seed)
	if err != nil {
		return nil, err
	}
	return &NormalMonteCarlo{Normal: core, samples: samples}, nil
}

// SetSamples adjusts the per-integration draw count. Higher is more
// accurate and slower.
func (n *NormalMonteCarlo) SetSamples(samples int) error {
	if samples <= 0 {
		return ErrBadSampleCount
	}
	n.samples = samples
	return nil
}

// Integrate estimates the probability mass inside region.
func (n *NormalMonteCarlo) Integrate(region geom.Polygon) float64 {
	return n.IntegrateOffset(region, geom.Vec2{})
}

// IntegrateOffset estimates the probability that sample + offset lands
// inside region.
func (n *NormalMonteCarlo) IntegrateOffset(region geom.Polygon, offset geom.Vec2) float64 {
	hits := 0
	for i := 0; i < n.samples; i++ {
		if region.Contains(n.Sample().Add(offset)) {
			hits++
		}
	}
	return clampProbability(float64(hits) / float64(n.samples))
}

// #endregion monte-carlo
