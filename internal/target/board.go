package target

import (
	"fmt"
	"io"
	"math"

	"github.com/danielpatrickdp/darts-advisor/internal/geom"
)

// Standard board dimensions in millimetres, origin at board centre.
const (
	innerBullRadius   = 12.7 / 2
	outerBullRadius   = 31.8 / 2
	trebleInnerRadius = 107.0 - 8.0
	trebleOuterRadius = 107.0
	doubleInnerRadius = 170.0 - 8.0
	doubleOuterRadius = 170.0
)

// sectorNumbers is the standard number order, clockwise from the top.
var sectorNumbers = [20]int{
	20, 1, 18, 4, 13, 6, 10, 15, 2, 17,
	3, 19, 7, 16, 8, 11, 14, 9, 12, 5,
}

const sectorAngle = math.Pi / 10 // 18 degrees

// Bed colors for renderers; the solver ignores them.
const (
	colorRed   = "#DC143C"
	colorGreen = "#228B22"
	colorBlack = "#000000"
	colorCream = "#F5F5DC"
)

// #region piece

// BoardPiece is one generated bed together with its display color.
type BoardPiece struct {
	Score    int
	Color    string
	Type     HitType
	Vertices []geom.Vec2
}

// #endregion piece

// #region arcs

func arcPoint(radius, angle float64) geom.Vec2 {
	return geom.Vec2{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)}
}

// ringQuads splits an annular sector into one convex quad per arc
// subdivision. A whole ring sector is concave at its inner arc, which
// would break fan-triangulated integration; the quads are always convex.
func ringQuads(rInner, rOuter, angleStart, angleEnd float64, subdivisions int) [][]geom.Vec2 {
	quads := make([][]geom.Vec2, 0, subdivisions)
	for i := 0; i < subdivisions; i++ {
		a0 := angleStart + (angleEnd-angleStart)*float64(i)/float64(subdivisions)
		a1 := angleStart + (angleEnd-angleStart)*float64(i+1)/float64(subdivisions)
		quads = append(quads, []geom.Vec2{
			arcPoint(rInner, a0),
			arcPoint(rInner, a1),
			arcPoint(rOuter, a1),
			arcPoint(rOuter, a0),
		})
	}
	return quads
}

// discPolygon approximates a centred disc with a regular polygon, which
// is convex and safe to integrate directly.
func discPolygon(radius float64, segments int) []geom.Vec2 {
	if segments < 32 {
		segments = 32
	}
	pts := make([]geom.Vec2, segments)
	for i := range pts {
		pts[i] = arcPoint(radius, 2*math.Pi*float64(i)/float64(segments))
	}
	return pts
}

// #endregion arcs

// #region generate

// GenerateBoard builds the standard board as a list of convex pieces:
// the inner bull disc, outer bull sectors, and per numbered sector the
// inner single, treble, outer single, and double rings. subdivisions is
// the arc resolution per 18-degree sector edge.
//
// The inner bull is typed as a double: it is a legal finishing bed.
func GenerateBoard(subdivisions int) []BoardPiece {
	if subdivisions < 1 {
		subdivisions = 1
	}
	pieces := []BoardPiece{{
		Score:    50,
		Color:    colorRed,
		Type:     Double,
		Vertices: discPolygon(innerBullRadius, subdivisions*20),
	}}

	for i := range sectorNumbers {
		start, end := sectorBounds(i)
		for _, quad := range ringQuads(innerBullRadius, outerBullRadius, start, end, subdivisions) {
			pieces = append(pieces, BoardPiece{Score: 25, Color: colorGreen, Type: Normal, Vertices: quad})
		}
	}

	for i, number := range sectorNumbers {
		start, end := sectorBounds(i)

		sectorColor := colorBlack
		specialColor := colorRed
		if i%2 == 1 {
			sectorColor = colorCream
			specialColor = colorGreen
		}

		rings := []struct {
			score          int
			color          string
			hitType        HitType
			rInner, rOuter float64
		}{
			{number, sectorColor, Normal, outerBullRadius, trebleInnerRadius},
			{3 * number, specialColor, Treble, trebleInnerRadius, trebleOuterRadius},
			{number, sectorColor, Normal, trebleOuterRadius, doubleInnerRadius},
			{2 * number, specialColor, Double, doubleInnerRadius, doubleOuterRadius},
		}
		for _, ring := range rings {
			for _, quad := range ringQuads(ring.rInner, ring.rOuter, start, end, subdivisions) {
				pieces = append(pieces, BoardPiece{
					Score:    ring.score,
					Color:    ring.color,
					Type:     ring.hitType,
					Vertices: quad,
				})
			}
		}
	}

	return pieces
}

// sectorBounds returns the angular span of sector i. The 20 sector is
// centred at the top; sectors advance clockwise.
func sectorBounds(i int) (start, end float64) {
	center := math.Pi/2 - float64(i)*sectorAngle
	return center - sectorAngle/2, center + sectorAngle/2
}

// BoardTarget converts generated pieces into a classification target.
func BoardTarget(pieces []BoardPiece) (*Target, error) {
	beds := make([]Bed, len(pieces))
	for i, piece := range pieces {
		beds[i] = Bed{
			Shape: geom.NewPolygon(piece.Vertices),
			Hit:   HitData{Type: piece.Type, Diff: -piece.Score},
		}
	}
	return New(beds)
}

// WriteBoard emits pieces in the target text format understood by Parse.
func WriteBoard(w io.Writer, pieces []BoardPiece) error {
	if _, err := fmt.Fprintf(w, "%d\n", len(pieces)); err != nil {
		return fmt.Errorf("write bed count: %w", err)
	}
	for _, piece := range pieces {
		if _, err := fmt.Fprintf(w, "%d %d %s %s\n", piece.Score, len(piece.Vertices), piece.Color, piece.Type); err != nil {
			return fmt.Errorf("write bed header: %w", err)
		}
		for i, v := range piece.Vertices {
			sep := " "
			if i == len(piece.Vertices)-1 {
				sep = "\n"
			}
			if _, err := fmt.Fprintf(w, "%.6f %.6f%s", v.X, v.Y, sep); err != nil {
				return fmt.Errorf("write vertex: %w", err)
			}
		}
	}
	return nil
}

// #endregion generate
