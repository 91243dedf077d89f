package distance

import (
	"context"
	"math"

	"github.com/Fepozopo/morphcore/pkg/progress"
	"github.com/Fepozopo/morphcore/pkg/raster"
)

// Transform computes the two-pass chamfer distance transform of a binary
// raster: for every foreground pixel, the (approximate) distance to the
// nearest background pixel. Background pixels are reported as 0. The
// forward pass sweeps causal offsets in increasing (z,y,x) order; the
// backward pass sweeps the anti-causal mirror in decreasing order — the
// same forward-scan/backward-scan shape as the reconstruction engine's two
// half-passes, here folded into a single mask instead of a full
// neighborhood.
//
// outKind selects the output raster's element kind: U16 for the classic
// integer chamfer output, F32 for a normalized (divided by mask.Divisor)
// floating approximation of Euclidean distance. normalize forces division
// by mask.Divisor even for integer outputs (rounded).
func Transform(ctx context.Context, rep *progress.Reporter, input *raster.Raster, mask ChamferMask, outKind raster.Kind, normalize bool) (*raster.Raster, error) {
	if !input.IsBinary() {
		return nil, raster.NewPreconditionViolated("distance transform requires a binary input raster")
	}
	w, h, d := input.SizeX(), input.SizeY(), input.SizeZ()
	n := w * h * d
	fg := fillMask(input)
	dist := make([]float64, n)
	for i, v := range fg {
		if v {
			dist[i] = infDistance
		}
	}
	anti := anticausal(mask.Causal)

	idx := func(x, y, z int) int { return (z*h+y)*w + x }
	inBounds := func(x, y, z int) bool { return x >= 0 && x < w && y >= 0 && y < h && z >= 0 && z < d }

	pass := func(offsets []Weight, forward bool) {
		zr, yr, xr := rangeOf(d, forward), rangeOf(h, forward), rangeOf(w, forward)
		for _, z := range zr {
			for _, y := range yr {
				for _, x := range xr {
					i := idx(x, y, z)
					if !fg[i] {
						continue
					}
					for _, off := range offsets {
						nx, ny, nz := x+off.DX, y+off.DY, z+off.DZ
						if !inBounds(nx, ny, nz) {
							continue
						}
						cand := dist[idx(nx, ny, nz)] + float64(off.W)
						if cand < dist[i] {
							dist[i] = cand
						}
					}
				}
			}
		}
	}

	pass(mask.Causal, true)
	if progress.Cancelled(ctx) {
		return nil, raster.NewCancelled("distance transform cancelled")
	}
	rep.EmitProgress(0.5)
	pass(anti, false)
	rep.EmitProgress(1.0)

	var out *raster.Raster
	if d > 1 {
		out = raster.New3D(outKind, w, h, d)
	} else {
		out = raster.New2D(outKind, w, h)
	}
	for z := 0; z < d; z++ {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				v := dist[idx(x, y, z)]
				if !fg[idx(x, y, z)] {
					v = 0
				} else if normalize || outKind == raster.F32 {
					v = mask.normalizedWeight(int(v))
					if outKind != raster.F32 {
						v = math.Round(v)
					}
				}
				out.SetUnchecked3(x, y, z, out.Clamp(v))
			}
		}
	}
	return out, nil
}

func rangeOf(n int, forward bool) []int {
	out := make([]int, n)
	if forward {
		for i := 0; i < n; i++ {
			out[i] = i
		}
	} else {
		for i := 0; i < n; i++ {
			out[i] = n - 1 - i
		}
	}
	return out
}

// GeodesicTransform computes, for every pixel where within is foreground,
// the chamfer distance from the nearest foreground pixel of seed along
// paths that stay inside within (the geodesic distance within a masking
// set): the same two-pass chamfer sweep, followed by a FIFO fix-up pass.
// Distances are divided by mask.Divisor. Pixels outside within are
// reported as 0; pixels inside within that no seed reaches are reported at
// the output kind's ceiling (255 for U8, 65535 for U16; for F32, 1e18
// divided by mask.Divisor).
func GeodesicTransform(ctx context.Context, rep *progress.Reporter, seed, within *raster.Raster, mask ChamferMask, outKind raster.Kind) (*raster.Raster, error) {
	if !seed.SameShape(within) {
		return nil, raster.NewShapeMismatch("geodesic distance transform requires matching raster shapes")
	}
	if !seed.IsBinary() || !within.IsBinary() {
		return nil, raster.NewPreconditionViolated("geodesic distance transform requires binary rasters")
	}
	w, h, d := seed.SizeX(), seed.SizeY(), seed.SizeZ()
	n := w * h * d
	inWithin := fillMask(within)
	isSeed := fillMask(seed)
	dist := make([]float64, n)
	for i := range dist {
		if isSeed[i] {
			dist[i] = 0
		} else if inWithin[i] {
			dist[i] = infDistance
		} else {
			dist[i] = infDistance
		}
	}
	anti := anticausal(mask.Causal)
	idx := func(x, y, z int) int { return (z*h+y)*w + x }
	inBounds := func(x, y, z int) bool { return x >= 0 && x < w && y >= 0 && y < h && z >= 0 && z < d }

	relax := func(offsets []Weight, forward bool) {
		zr, yr, xr := rangeOf(d, forward), rangeOf(h, forward), rangeOf(w, forward)
		for _, z := range zr {
			for _, y := range yr {
				for _, x := range xr {
					i := idx(x, y, z)
					if !inWithin[i] || isSeed[i] {
						continue
					}
					for _, off := range offsets {
						nx, ny, nz := x+off.DX, y+off.DY, z+off.DZ
						if !inBounds(nx, ny, nz) || !inWithin[idx(nx, ny, nz)] {
							continue
						}
						cand := dist[idx(nx, ny, nz)] + float64(off.W)
						if cand < dist[i] {
							dist[i] = cand
						}
					}
				}
			}
		}
	}
	relax(mask.Causal, true)
	if progress.Cancelled(ctx) {
		return nil, raster.NewCancelled("geodesic distance transform cancelled")
	}
	rep.EmitProgress(0.4)
	relax(anti, false)
	rep.EmitProgress(0.8)

	// Two sweeps can leave distances too large (or still unset) when the
	// masking set bends back on itself (a spiral corridor forces
	// propagation to alternate directions more than once); a FIFO
	// relaxation pass lowers whatever the sweeps left inconsistent.
	full := append(append([]Weight{}, mask.Causal...), anti...)
	queue := make([][3]int, 0, n)
	queued := make([]bool, n)
	for z := 0; z < d; z++ {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				i := idx(x, y, z)
				if inWithin[i] && dist[i] < infDistance {
					queue = append(queue, [3]int{x, y, z})
					queued[i] = true
				}
			}
		}
	}
	for head := 0; head < len(queue); head++ {
		if head&4095 == 0 && progress.Cancelled(ctx) {
			return nil, raster.NewCancelled("geodesic distance transform cancelled")
		}
		p := queue[head]
		i := idx(p[0], p[1], p[2])
		queued[i] = false
		for _, off := range full {
			nx, ny, nz := p[0]+off.DX, p[1]+off.DY, p[2]+off.DZ
			if !inBounds(nx, ny, nz) {
				continue
			}
			j := idx(nx, ny, nz)
			if !inWithin[j] {
				continue
			}
			cand := dist[i] + float64(off.W)
			if cand < dist[j] {
				dist[j] = cand
				if !queued[j] {
					queue = append(queue, [3]int{nx, ny, nz})
					queued[j] = true
				}
			}
		}
	}
	rep.EmitProgress(1.0)

	var out *raster.Raster
	if d > 1 {
		out = raster.New3D(outKind, w, h, d)
	} else {
		out = raster.New2D(outKind, w, h)
	}
	for z := 0; z < d; z++ {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				i := idx(x, y, z)
				v := dist[i]
				if !inWithin[i] {
					v = 0
				} else {
					v = mask.normalizedWeight(int(v))
				}
				out.SetUnchecked3(x, y, z, out.Clamp(v))
			}
		}
	}
	return out, nil
}
