// Package target models a dartboard as an ordered list of scoring beds
// and classifies where a dart landed.
package target

import (
	"errors"

	"github.com/danielpatrickdp/darts-advisor/internal/geom"
)

// ErrNoBeds indicates an attempt to build a target with no beds.
var ErrNoBeds = errors.New("target must have at least one bed")

// #region hit-types

// HitType tags the kind of bed a dart landed in. The order
// Normal < Double < Treble is total and drives the canonical ordering of
// hit distributions.
type HitType int

const (
	Normal HitType = iota
	Double
	Treble
)

func (t HitType) String() string {
	switch t {
	case Normal:
		return "normal"
	case Double:
		return "double"
	case Treble:
		return "treble"
	default:
		return "unknown"
	}
}

// HitData is a typed score delta. Diff is zero or negative: hitting a
// bed deducts points. A miss is {Normal, 0}.
type HitData struct {
	Type HitType
	Diff int
}

// Miss is the hit value for a dart that lands outside every bed.
func Miss() HitData {
	return HitData{Type: Normal, Diff: 0}
}

// Less orders hits by type, then by diff.
func (h HitData) Less(o HitData) bool {
	if h.Type != o.Type {
		return h.Type < o.Type
	}
	return h.Diff < o.Diff
}

// #endregion hit-types

// #region bed

// Bed is one scoring region: a polygon plus the hit it awards.
type Bed struct {
	Shape geom.Polygon
	Hit   HitData
}

// #endregion bed

// #region target

// Target is an ordered collection of beds. Classification walks the beds
// in order; where beds overlap, the first match wins.
type Target struct {
	beds []Bed
}

// New builds a target from an ordered bed list.
func New(beds []Bed) (*Target, error) {
	if len(beds) == 0 {
		return nil, ErrNoBeds
	}
	return &Target{beds: beds}, nil
}

// Beds returns the ordered bed list.
func (t *Target) Beds() []Bed {
	return t.beds
}

// Classify returns the hit for the first bed containing p, or a miss if
// p is outside every bed.
func (t *Target) Classify(p geom.Vec2) HitData {
	for _, bed := range t.beds {
		if bed.Shape.Contains(p) {
			return bed.Hit
		}
	}
	return Miss()
}

// #endregion target
