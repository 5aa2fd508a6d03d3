package dist

import (
	"math"
	"math/rand"

	"github.com/danielpatrickdp/darts-advisor/internal/geom"
)

// DefaultSeed seeds distributions whose caller does not pick a seed.
const DefaultSeed int64 = 123456789

// varianceFloor keeps the Cholesky factorization finite when a variance
// collapses toward zero.
const varianceFloor = 1e-12

// #region covariance

// Covariance is a 2x2 covariance matrix, row major.
type Covariance [2][2]float64

// Identity returns the unit covariance.
func Identity() Covariance {
	return Covariance{{1, 0}, {0, 1}}
}

// Diagonal returns a covariance with the given variances and no
// correlation.
func Diagonal(vx, vy float64) Covariance {
	return Covariance{{vx, 0}, {0, vy}}
}

// determinant returns det(c).
func (c Covariance) determinant() float64 {
	return c[0][0]*c[1][1] - c[0][1]*c[1][0]
}

// inverse returns the matrix inverse. Only valid when the determinant is
// non-zero.
func (c Covariance) inverse() Covariance {
	det := c.determinant()
	return Covariance{
		{c[1][1] / det, -c[0][1] / det},
		{-c[1][0] / det, c[0][0] / det},
	}
}

// validate rejects matrices that are not symmetric positive definite.
func (c Covariance) validate() error {
	if math.Abs(c[0][1]-c[1][0]) > 1e-12 {
		return ErrCovarianceNotPD
	}
	if c[0][0] <= 0 || c.determinant() <= 0 {
		return ErrCovarianceNotPD
	}
	return nil
}

// #endregion covariance

// #region normal

// Normal holds the shared state of the bivariate normal family: the
// parameters, the calibration points they may have been estimated from,
// and a seeded generator for sampling.
//
// Estimation uses the population second moment about the mean (divide by
// n, no Bessel correction).
type Normal struct {
	mean   geom.Vec2
	cov    Covariance
	points []geom.Vec2
	rng    *rand.Rand
}

func newNormal(cov Covariance, mean geom.Vec2, seed int64) (Normal, error) {
	if err := cov.validate(); err != nil {
		return Normal{}, err
	}
	return Normal{
		mean: mean,
		cov:  cov,
		rng:  rand.New(rand.NewSource(seed)),
	}, nil
}

func newNormalFromPoints(points []geom.Vec2, seed int64) (Normal, error) {
	if len(points) < 2 {
		return Normal{}, ErrTooFewPoints
	}
	n := Normal{
		points: append([]geom.Vec2(nil), points...),
		rng:    rand.New(rand.NewSource(seed)),
	}
	n.estimate()
	return n, nil
}

// Mean returns the distribution mean.
func (n *Normal) Mean() geom.Vec2 {
	return n.mean
}

// Cov returns the covariance matrix.
func (n *Normal) Cov() Covariance {
	return n.cov
}

// estimate recomputes mean and population covariance from the stored
// points. Callers guarantee len(points) >= 2.
func (n *Normal) estimate() {
	count := float64(len(n.points))

	mean := geom.Vec2{}
	for _, p := range n.points {
		mean = mean.Add(p)
	}
	mean = mean.Scale(1 / count)

	var cov Covariance
	for _, p := range n.points {
		d := p.Sub(mean)
		cov[0][0] += d.X * d.X
		cov[0][1] += d.X * d.Y
		cov[1][0] += d.Y * d.X
		cov[1][1] += d.Y * d.Y
	}
	cov[0][0] /= count
	cov[0][1] /= count
	cov[1][0] /= count
	cov[1][1] /= count

	n.mean = mean
	n.cov = cov
}

// Density evaluates the bivariate normal density at p.
func (n *Normal) Density(p geom.Vec2) float64 {
	det := n.cov.determinant()
	inv := n.cov.inverse()
	d := p.Sub(n.mean)

	quad := d.X*(inv[0][0]*d.X+inv[0][1]*d.Y) + d.Y*(inv[1][0]*d.X+inv[1][1]*d.Y)
	return math.Exp(-0.5*quad) / (2 * math.Pi * math.Sqrt(det))
}

// Sample draws one point: two standard normals pushed through the lower
// Cholesky factor of the covariance. Variances are floored so a
// near-degenerate covariance still produces finite samples.
func (n *Normal) Sample() geom.Vec2 {
	z1 := n.rng.NormFloat64()
	z2 := n.rng.NormFloat64()

	l00 := math.Sqrt(math.Max(n.cov[0][0], varianceFloor))
	l10 := n.cov[0][1] / l00
	l11 := math.Sqrt(math.Max(n.cov[1][1]-l10*l10, varianceFloor))

	return geom.Vec2{
		X: n.mean.X + l00*z1,
		Y: n.mean.Y + l10*z1 + l11*z2,
	}
}

// AddPoint appends a calibration sample. Parameters are re-estimated once
// two or more points are present; a single stored point leaves the
// current parameters untouched.
func (n *Normal) AddPoint(p geom.Vec2) {
	n.points = append(n.points, p)
	if len(n.points) >= 2 {
		n.estimate()
	}
}

// #endregion normal
