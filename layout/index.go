package layout

import (
	"math"

	"github.com/tidwall/rtree"

	"github.com/ckaiser/paperlens/model"
)

// Metric selects the distance function used by spatial index queries.
type Metric int

const (
	// Euclidean is the L2 metric
	Euclidean Metric = iota
	// Manhattan is the L1 metric
	Manhattan
)

// Index is a static nearest-neighbor structure over token centers. It is
// built once per page, before block formation begins, and never mutated.
type Index struct {
	tr rtree.RTreeG[int]
}

// NewIndex builds a spatial index over the centers of the given tokens.
// Values stored in the index are token arena indices.
func NewIndex(tokens []model.Token) *Index {
	ix := &Index{}
	for i := range tokens {
		c := tokens[i].Center()
		pt := [2]float64{c.X, c.Y}
		ix.tr.Insert(pt, pt, i)
	}
	return ix
}

// Nearest returns up to k token indices whose centers lie within maxDist of
// p under the given metric, nearest first. The query point's own token, if
// indexed, is included (at distance zero); callers filter it out.
func (ix *Index) Nearest(p model.Point, k int, metric Metric, maxDist float64) []int {
	if ix == nil || k <= 0 {
		return nil
	}

	out := make([]int, 0, k)
	ix.tr.Nearby(
		func(min, max [2]float64, _ int, _ bool) float64 {
			dx := axisDist(p.X, min[0], max[0])
			dy := axisDist(p.Y, min[1], max[1])
			if metric == Manhattan {
				return dx + dy
			}
			return math.Sqrt(dx*dx + dy*dy)
		},
		func(_, _ [2]float64, data int, dist float64) bool {
			if dist > maxDist {
				return false
			}
			out = append(out, data)
			return len(out) < k
		},
	)
	return out
}

// axisDist returns the distance from v to the interval [lo,hi] on one axis.
// For leaf entries lo == hi (points); for tree nodes this is the minimum
// distance to the node's box, which keeps the priority traversal admissible
// for both metrics.
func axisDist(v, lo, hi float64) float64 {
	switch {
	case v < lo:
		return lo - v
	case v > hi:
		return v - hi
	default:
		return 0
	}
}
