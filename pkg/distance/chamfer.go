// Package distance implements chamfer and geodesic distance transforms and
// the binary disk/ball morphology built on top of them.
package distance

import "github.com/Fepozopo/morphcore/pkg/raster"

// Weight is a single chamfer mask entry: an offset and its integer weight.
type Weight struct {
	DX, DY, DZ int
	W          int
}

// ChamferMask is a small fixed offset/weight table used to approximate the
// Euclidean distance with successive local additions. Masks only need the
// causal half (the offsets scanned in the forward pass); the anti-causal
// half is the point reflection of the causal half, built automatically by
// Transform.
type ChamferMask struct {
	Name    string
	Causal  []Weight
	Divisor float64 // causal weights are divided by this to approximate Euclidean distance
}

// FromWeights builds a named chamfer mask from an explicit causal weight
// table, normalizing by divisor.
func FromWeights(name string, divisor float64, weights []Weight) ChamferMask {
	return ChamferMask{Name: name, Causal: weights, Divisor: divisor}
}

// FromShortWeights builds a 2D mask from a bare weight list, selecting the
// mask layout from the list length: two weights give the 3x3 mask (axial,
// diagonal), three weights give the 5x5 mask adding knight moves. The
// divisor is the first (axial) weight.
func FromShortWeights(weights []int) (ChamferMask, error) {
	switch len(weights) {
	case 2:
		a, d := weights[0], weights[1]
		if a <= 0 || d <= 0 {
			return ChamferMask{}, raster.NewInvalidInput("chamfer weights must be positive")
		}
		return FromWeights("weights-3x3", float64(a), []Weight{
			{-1, -1, 0, d}, {0, -1, 0, a}, {1, -1, 0, d}, {-1, 0, 0, a},
		}), nil
	case 3:
		a, d, k := weights[0], weights[1], weights[2]
		if a <= 0 || d <= 0 || k <= 0 {
			return ChamferMask{}, raster.NewInvalidInput("chamfer weights must be positive")
		}
		return FromWeights("weights-5x5", float64(a), []Weight{
			{-1, -2, 0, k}, {1, -2, 0, k},
			{-2, -1, 0, k}, {-1, -1, 0, d}, {0, -1, 0, a}, {1, -1, 0, d}, {2, -1, 0, k},
			{-1, 0, 0, a},
		}), nil
	}
	return ChamferMask{}, raster.NewInvalidInput("chamfer weight list must hold 2 or 3 weights")
}

// Chebyshev is the 2D chessboard (8-connected, unit weight) mask. Its
// offsets have no z component, so it does not propagate across the slices
// of a 3D raster.
var Chebyshev = FromWeights("chebyshev", 1, []Weight{
	{-1, -1, 0, 1}, {0, -1, 0, 1}, {1, -1, 0, 1}, {-1, 0, 0, 1},
})

// CityBlock is the 2D 4-connected unit-weight mask. Like Chebyshev, it has
// no z offsets.
var CityBlock = FromWeights("cityblock", 1, []Weight{
	{0, -1, 0, 1}, {-1, 0, 0, 1},
})

// Chamfer34 is the classic integer 3/4 chamfer mask (axis weight 3,
// diagonal weight 4), rescaled by dividing by 3.
var Chamfer34 = FromWeights("chamfer-3-4", 3, []Weight{
	{-1, -1, 0, 4}, {0, -1, 0, 3}, {1, -1, 0, 4}, {-1, 0, 0, 3},
})

// Chamfer57_11 is the 5/7/11 chamfer mask covering knight's-move offsets
// for a closer Euclidean approximation.
var Chamfer57_11 = FromWeights("chamfer-5-7-11", 5, []Weight{
	{-1, -2, 0, 11}, {1, -2, 0, 11},
	{-2, -1, 0, 11}, {-1, -1, 0, 7}, {0, -1, 0, 5}, {1, -1, 0, 7}, {2, -1, 0, 11},
	{-1, 0, 0, 5},
})

// Borgefors345 is Borgefors' weighted 3/4/5 mask for 3D chamfer distance
// (face weight 3, edge weight 4, vertex weight 5), rescaled by 3.
var Borgefors345 = FromWeights("borgefors-3-4-5", 3, []Weight{
	{-1, -1, -1, 5}, {0, -1, -1, 4}, {1, -1, -1, 5},
	{-1, 0, -1, 4}, {0, 0, -1, 3}, {1, 0, -1, 4},
	{-1, 1, -1, 5}, {0, 1, -1, 4}, {1, 1, -1, 5},
	{-1, -1, 0, 4}, {0, -1, 0, 3}, {1, -1, 0, 4},
	{-1, 0, 0, 3},
})

func anticausal(causal []Weight) []Weight {
	out := make([]Weight, len(causal))
	for i, w := range causal {
		out[i] = Weight{DX: -w.DX, DY: -w.DY, DZ: -w.DZ, W: w.W}
	}
	return out
}

// normalizedWeight reports a weight divided by Divisor, i.e. the
// approximate Euclidean unit distance per step.
func (m ChamferMask) normalizedWeight(w int) float64 {
	if m.Divisor == 0 {
		return float64(w)
	}
	return float64(w) / m.Divisor
}

const infDistance = 1e18

func fillMask(r *raster.Raster) []bool {
	n := r.SizeX() * r.SizeY() * r.SizeZ()
	out := make([]bool, n)
	idx := 0
	for z := 0; z < r.SizeZ(); z++ {
		for y := 0; y < r.SizeY(); y++ {
			for x := 0; x < r.SizeX(); x++ {
				out[idx] = r.GetF64(x, y, z) != raster.Background
				idx++
			}
		}
	}
	return out
}
