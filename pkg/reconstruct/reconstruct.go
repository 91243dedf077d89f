// Package reconstruct implements morphological reconstruction by
// dilation/erosion via the hybrid forward-scan/backward-scan/queue
// propagation algorithm (Vincent, 1993): two raster-order half-passes
// settle most of the image in a single sweep each direction, and a
// hierarchical queue mops up the handful of pixels a raster scan cannot
// reach directly (plateaus that must flood sideways).
package reconstruct

import (
	"context"

	"github.com/Fepozopo/morphcore/pkg/progress"
	"github.com/Fepozopo/morphcore/pkg/raster"
)

// queue is the shared push/pop/empty shape behind both the integer
// bucket queue and the float64 heap-backed queue.
type queue interface {
	push(value float64, p point)
	pop() (point, bool)
	empty() bool
}

func newQueue(kind raster.Kind, descend bool) queue {
	if kind == raster.F32 {
		return newFloatQueue(descend)
	}
	return newBucketQueue(int(kind.MaxValue()), descend)
}

// ReconstructByDilation computes the morphological reconstruction by
// dilation of mask from marker: the pointwise-smallest raster that is
// both >= marker and a "local max-plateau-connected" subset of mask, under
// connectivity conn. Requires marker <= mask pointwise and matching shapes.
func ReconstructByDilation(ctx context.Context, rep *progress.Reporter, marker, mask *raster.Raster, conn raster.Connectivity) (*raster.Raster, error) {
	return reconstruct(ctx, rep, marker, mask, conn, true)
}

// ReconstructByErosion computes the dual reconstruction by erosion: the
// pointwise-largest raster that is <= marker and plateau-connected within
// mask from below. Requires marker >= mask pointwise.
func ReconstructByErosion(ctx context.Context, rep *progress.Reporter, marker, mask *raster.Raster, conn raster.Connectivity) (*raster.Raster, error) {
	return reconstruct(ctx, rep, marker, mask, conn, false)
}

func reconstruct(ctx context.Context, rep *progress.Reporter, marker, mask *raster.Raster, conn raster.Connectivity, byDilation bool) (*raster.Raster, error) {
	if !marker.SameShape(mask) {
		return nil, raster.NewShapeMismatch("reconstruction requires marker and mask of matching shape")
	}
	if marker.Is3D() {
		if !conn.Valid3D() {
			return nil, raster.NewInvalidConnectivity(int(conn))
		}
	} else if !conn.Valid2D() {
		return nil, raster.NewInvalidConnectivity(int(conn))
	}
	if err := checkPrecondition(marker, mask, byDilation); err != nil {
		return nil, err
	}

	out := marker.Duplicate()
	cmp := func(a, b float64) float64 {
		if byDilation {
			if a > b {
				return a
			}
			return b
		}
		if a < b {
			return a
		}
		return b
	}

	if out.Is3D() {
		forwardScan3D(out, mask, conn, byDilation, cmp)
	} else {
		forwardScan2D(out, mask, conn, byDilation, cmp)
	}
	if progress.Cancelled(ctx) {
		return nil, raster.NewCancelled("reconstruction cancelled during forward scan")
	}
	rep.EmitProgress(0.33)

	q := newQueue(out.Kind(), byDilation)
	if out.Is3D() {
		backwardScan3D(out, mask, conn, byDilation, cmp, q)
	} else {
		backwardScan2D(out, mask, conn, byDilation, cmp, q)
	}
	if progress.Cancelled(ctx) {
		return nil, raster.NewCancelled("reconstruction cancelled during backward scan")
	}
	rep.EmitProgress(0.66)

	if err := propagate(ctx, rep, out, mask, conn, byDilation, q); err != nil {
		return nil, err
	}
	rep.EmitProgress(1.0)
	return out, nil
}

func checkPrecondition(marker, mask *raster.Raster, byDilation bool) error {
	w, h, d := marker.SizeX(), marker.SizeY(), marker.SizeZ()
	for z := 0; z < d; z++ {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				m, msk := marker.GetF64(x, y, z), mask.GetF64(x, y, z)
				if byDilation && m > msk {
					return raster.NewPreconditionViolated("marker must be <= mask for reconstruction by dilation")
				}
				if !byDilation && m < msk {
					return raster.NewPreconditionViolated("marker must be >= mask for reconstruction by erosion")
				}
			}
		}
	}
	return nil
}

func better(byDilation bool, a, b float64) bool {
	if byDilation {
		return a > b
	}
	return a < b
}

func forwardScan2D(out, mask *raster.Raster, conn raster.Connectivity, byDilation bool, cmp func(a, b float64) float64) {
	w, h := out.SizeX(), out.SizeY()
	offs := raster.CausalOffsets2D(conn)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := out.GetF64(x, y, 0)
			for _, o := range offs {
				nx, ny := x+o[0], y+o[1]
				if nx < 0 || nx >= w || ny < 0 || ny >= h {
					continue
				}
				v = cmp(v, out.GetF64(nx, ny, 0))
			}
			v = clampToMask(byDilation, v, mask.GetF64(x, y, 0))
			out.SetUnchecked2(x, y, v)
		}
	}
}

// clampToMask bounds v by the mask ceiling (dilation: v can never exceed
// mask; erosion: v can never fall below mask).
func clampToMask(byDilation bool, v, m float64) float64 {
	if byDilation {
		if v > m {
			return m
		}
		return v
	}
	if v < m {
		return m
	}
	return v
}

func backwardScan2D(out, mask *raster.Raster, conn raster.Connectivity, byDilation bool, cmp func(a, b float64) float64, q queue) {
	w, h := out.SizeX(), out.SizeY()
	offs := raster.AntiCausalOffsets2D(conn)
	for y := h - 1; y >= 0; y-- {
		for x := w - 1; x >= 0; x-- {
			v := out.GetF64(x, y, 0)
			for _, o := range offs {
				nx, ny := x+o[0], y+o[1]
				if nx < 0 || nx >= w || ny < 0 || ny >= h {
					continue
				}
				cand := cmp(v, out.GetF64(nx, ny, 0))
				if cand != v {
					v = cand
				}
			}
			v = clampToMask(byDilation, v, mask.GetF64(x, y, 0))
			out.SetUnchecked2(x, y, v)

			needsQueue := false
			for _, o := range offs {
				nx, ny := x+o[0], y+o[1]
				if nx < 0 || nx >= w || ny < 0 || ny >= h {
					continue
				}
				nv := out.GetF64(nx, ny, 0)
				nm := mask.GetF64(nx, ny, 0)
				if better(byDilation, v, nv) && nv != nm {
					needsQueue = true
				}
			}
			if needsQueue {
				q.push(v, point{x: x, y: y})
			}
		}
	}
}

func propagate(ctx context.Context, rep *progress.Reporter, out, mask *raster.Raster, conn raster.Connectivity, byDilation bool, q queue) error {
	processed := 0
	for !q.empty() {
		p, ok := q.pop()
		if !ok {
			break
		}
		processed++
		if processed%4096 == 0 {
			if progress.Cancelled(ctx) {
				return raster.NewCancelled("reconstruction cancelled during queue propagation")
			}
		}
		v := out.GetF64(p.x, p.y, p.z)
		visit := func(nx, ny, nz int) {
			nv := out.GetF64(nx, ny, nz)
			nm := mask.GetF64(nx, ny, nz)
			cand := clampToMask(byDilation, v, nm)
			if better(byDilation, cand, nv) {
				out.SetUnchecked3(nx, ny, nz, cand)
				q.push(cand, point{x: nx, y: ny, z: nz})
			}
		}
		if out.Is3D() {
			raster.ForEachNeighbor3D(out, p.x, p.y, p.z, conn, visit)
		} else {
			raster.ForEachNeighbor2D(out, p.x, p.y, conn, func(nx, ny int) { visit(nx, ny, 0) })
		}
	}
	return nil
}
