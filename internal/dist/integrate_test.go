package dist

import (
	"errors"
	"math"
	"testing"

	"github.com/danielpatrickdp/darts-advisor/internal/geom"
)

func unitSquare() geom.Polygon {
	return geom.NewPolygon([]geom.Vec2{
		{X: -1, Y: -1}, {X: 1, Y: -1}, {X: 1, Y: 1}, {X: -1, Y: 1},
	})
}

func TestQuadratureIntegrateUnitSquare(t *testing.T) {
	n, err := NewNormalQuadrature(Identity(), geom.Vec2{}, DefaultSeed)
	if err != nil {
		t.Fatalf("NewNormalQuadrature: %v", err)
	}

	// erf(1/sqrt(2))^2 is about 0.4661.
	got := n.Integrate(unitSquare())
	if got < 0.45 || got > 0.48 {
		t.Fatalf("Integrate = %f, want in [0.45, 0.48]", got)
	}
}

func TestMonteCarloIntegrateUnitSquare(t *testing.T) {
	n, err := NewNormalMonteCarlo(Identity(), geom.Vec2{}, DefaultSeed, 100000)
	if err != nil {
		t.Fatalf("NewNormalMonteCarlo: %v", err)
	}

	got := n.Integrate(unitSquare())
	if got < 0.45 || got > 0.48 {
		t.Fatalf("Integrate = %f, want in [0.45, 0.48]", got)
	}
}

func TestIntegratorsAgree(t *testing.T) {
	region := geom.NewPolygon([]geom.Vec2{
		{X: -2, Y: -1}, {X: 2, Y: -1}, {X: 2, Y: 1}, {X: -2, Y: 1},
	})

	quad, err := NewNormalQuadrature(Diagonal(2, 2), geom.Vec2{}, DefaultSeed)
	if err != nil {
		t.Fatalf("NewNormalQuadrature: %v", err)
	}
	mc, err := NewNormalMonteCarlo(Diagonal(2, 2), geom.Vec2{}, DefaultSeed, 100000)
	if err != nil {
		t.Fatalf("NewNormalMonteCarlo: %v", err)
	}

	q := quad.Integrate(region)
	m := mc.Integrate(region)
	if q == 0 {
		t.Fatal("quadrature integral is zero")
	}
	if rel := math.Abs(q-m) / q; rel > 0.05 {
		t.Fatalf("integrators disagree: quadrature %f, monte carlo %f (rel %f)", q, m, rel)
	}
}

func TestIntegrateOffsetShiftsMass(t *testing.T) {
	n, err := NewNormalQuadrature(Identity(), geom.Vec2{}, DefaultSeed)
	if err != nil {
		t.Fatalf("NewNormalQuadrature: %v", err)
	}

	region := geom.NewPolygon([]geom.Vec2{
		{X: 5, Y: 5}, {X: 7, Y: 5}, {X: 7, Y: 7}, {X: 5, Y: 7},
	})

	// Aiming far from the region leaves almost no mass there; aiming at
	// its centre concentrates most of the mass.
	far := n.IntegrateOffset(region, geom.Vec2{})
	near := n.IntegrateOffset(region, geom.Vec2{X: 6, Y: 6})
	if far > 1e-6 {
		t.Fatalf("mass with distant aim = %g, want near 0", far)
	}
	if near < 0.4 {
		t.Fatalf("mass with centred aim = %f, want > 0.4", near)
	}
}

func TestMonteCarloIntegrateOffsetAgrees(t *testing.T) {
	region := geom.NewPolygon([]geom.Vec2{
		{X: 3, Y: -1}, {X: 5, Y: -1}, {X: 5, Y: 1}, {X: 3, Y: 1},
	})
	offset := geom.Vec2{X: 4, Y: 0}

	quad, err := NewNormalQuadrature(Identity(), geom.Vec2{}, DefaultSeed)
	if err != nil {
		t.Fatalf("NewNormalQuadrature: %v", err)
	}
	mc, err := NewNormalMonteCarlo(Identity(), geom.Vec2{}, DefaultSeed, 100000)
	if err != nil {
		t.Fatalf("NewNormalMonteCarlo: %v", err)
	}

	q := quad.IntegrateOffset(region, offset)
	m := mc.IntegrateOffset(region, offset)
	if math.Abs(q-m) > 0.02 {
		t.Fatalf("offset integrals disagree: quadrature %f, monte carlo %f", q, m)
	}
}

func TestIntegrateResultsClamped(t *testing.T) {
	n, err := NewNormalQuadrature(Identity(), geom.Vec2{}, DefaultSeed)
	if err != nil {
		t.Fatalf("NewNormalQuadrature: %v", err)
	}

	// A huge region captures essentially all mass; the result must not
	// exceed 1 even with accumulated floating point error.
	huge := geom.NewPolygon([]geom.Vec2{
		{X: -100, Y: -100}, {X: 100, Y: -100}, {X: 100, Y: 100}, {X: -100, Y: 100},
	})
	if got := n.Integrate(huge); got < 0 || got > 1 {
		t.Fatalf("Integrate = %f, want within [0, 1]", got)
	}
}

func TestMonteCarloRejectsBadSampleCount(t *testing.T) {
	if _, err := NewNormalMonteCarlo(Identity(), geom.Vec2{}, DefaultSeed, 0); !errors.Is(err, ErrBadSampleCount) {
		t.Fatalf("err = %v, want ErrBadSampleCount", err)
	}

	n, err := NewNormalMonteCarlo(Identity(), geom.Vec2{}, DefaultSeed, 10)
	if err != nil {
		t.Fatalf("NewNormalMonteCarlo: %v", err)
	}
	if err := n.SetSamples(-5); !errors.Is(err, ErrBadSampleCount) {
		t.Fatalf("SetSamples err = %v, want ErrBadSampleCount", err)
	}
}
