package quadrature

import (
	"github.com/danielpatrickdp/darts-advisor/internal/geom"
)

// #region rule
// node is a quadrature node in barycentric coordinates with its weight.
type node struct {
	l1, l2, l3 float64
	w          float64
}

// dunavant7 is the 7-point degree-5 Dunavant rule on the reference
// triangle. One centroid node plus two symmetric orbits of three.
// Weights sum to 1.
var dunavant7 = [7]node{
	{1.0 / 3.0, 1.0 / 3.0, 1.0 / 3.0, 0.225},

	{0.059715871789770, 0.470142064105115, 0.470142064105115, 0.132394152788506},
	{0.470142064105115, 0.059715871789770, 0.470142064105115, 0.132394152788506},
	{0.470142064105115, 0.470142064105115, 0.059715871789770, 0.132394152788506},

	{0.797426985353087, 0.101286507323456, 0.101286507323456, 0.125939180544827},
	{0.101286507323456, 0.797426985353087, 0.101286507323456, 0.125939180544827},
	{0.101286507323456, 0.101286507323456, 0.797426985353087, 0.125939180544827},
}
// #endregion rule

// #region triangle-integral
// TriangleIntegral approximates the integral of f over the triangle
// (v0, v1, v2). Exact for polynomials of degree at most 5.
func TriangleIntegral(v0, v1, v2 geom.Vec2, f func(geom.Vec2) float64) float64 {
	area := geom.TriangleArea(v0, v1, v2)
	if area == 0 {
		return 0
	}

	sum := 0.0
	for _, n := range dunavant7 {
		pt := geom.Vec2{
			X: n.l1*v0.X + n.l2*v1.X + n.l3*v2.X,
			Y: n.l1*v0.Y + n.l2*v1.Y + n.l3*v2.Y,
		}
		sum += n.w * f(pt)
	}
	return area * sum
}
// #endregion triangle-integral

// #region polygon-integral
// PolygonIntegral approximates the integral of f over a convex polygon
// by fan-triangulating from the first vertex. The fan is only valid for
// convex polygons; a non-convex region must be decomposed into convex
// pieces before integration.
func PolygonIntegral(region geom.Polygon, f func(geom.Vec2) float64) float64 {
	verts := region.Vertices()
	if len(verts) < 3 {
		return 0
	}

	total := 0.0
	for i := 1; i < len(verts)-1; i++ {
		total += TriangleIntegral(verts[0], verts[i], verts[i+1], f)
	}
	return total
}
// #endregion polygon-integral
