package dist

import (
	"github.com/danielpatrickdp/darts-advisor/internal/geom"
	"github.com/danielpatrickdp/darts-advisor/internal/quadrature"
)

// #region quadrature-normal

// NormalQuadrature is a bivariate normal whose region integrals use the
// deterministic 7-point triangle rule. Much more accurate than Monte
// Carlo for smooth densities over bed-sized regions, but the region must
// be convex: the underlying fan triangulation is wrong otherwise.
type NormalQuadrature struct {
	Normal
}

// NewNormalQuadrature builds the distribution from explicit parameters.
func NewNormalQuadrature(cov Covariance, mean geom.Vec2, seed int64) (*NormalQuadrature, error) {
	core, err := newNormal(cov, mean, seed)
	if err != nil {
		return nil, err
	}
	return &NormalQuadrature{Normal: core}, nil
}

// NewNormalQuadratureFromPoints fits the distribution to sample points.
func NewNormalQuadratureFromPoints(points []geom.Vec2, seed int64) (*NormalQuadrature, error) {
	core, err := newNormalFromPoints(points, seed)
	if err != nil {
		return nil, err
	}
	return &NormalQuadrature{Normal: core}, nil
}

// Integrate computes the probability mass inside a convex region.
func (n *NormalQuadrature) Integrate(region geom.Polygon) float64 {
	return clampProbability(quadrature.PolygonIntegral(region, n.Density))
}

// IntegrateOffset computes the probability that sample + offset lands in
// a convex region, by integrating the density translated by offset.
func (n *NormalQuadrature) IntegrateOffset(region geom.Polygon, offset geom.Vec2) float64 {
	f := func(p geom.Vec2) float64 {
		return n.Density(p.Sub(offset))
	}
	return clampProbability(quadrature.PolygonIntegral(region, f))
}

// #endregion quadrature-normal
