package extrema

import (
	"container/heap"
	"context"

	"github.com/Fepozopo/morphcore/pkg/floodfill"
	"github.com/Fepozopo/morphcore/pkg/progress"
	"github.com/Fepozopo/morphcore/pkg/raster"
)

type point struct{ x, y, z int }

type growEntry struct {
	value float64
	order int
	p     point
}

// growHeap is a max-heap over value, ties broken FIFO by insertion order.
// attributeOpen stores the pixel value when growing from a maximum and its
// negation when growing from a minimum, so the highest (resp. lowest)
// candidate pops first.
// Same container/heap approach as the reconstruction engine's float
// queue, here specialized to one-off growth per regional maximum rather
// than a long-lived reconstruction queue.
type growHeap []growEntry

func (h growHeap) Len() int { return len(h) }
func (h growHeap) Less(i, j int) bool {
	if h[i].value != h[j].value {
		return h[i].value > h[j].value
	}
	return h[i].order < h[j].order
}
func (h growHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *growHeap) Push(x any)   { *h = append(*h, x.(growEntry)) }
func (h *growHeap) Pop() any {
	old := *h
	n := len(old)
	last := old[n-1]
	*h = old[:n-1]
	return last
}

// AreaOpen merges every regional maximum (by connectivity conn) whose flat
// plateau plus adjacent descending slope contains fewer than minSize
// pixels down to its surrounding level, the priority-queue area/volume
// opening algorithm.
func AreaOpen(ctx context.Context, rep *progress.Reporter, img *raster.Raster, minSize int, conn raster.Connectivity) (*raster.Raster, error) {
	return attributeOpen(ctx, rep, img, minSize, conn, true)
}

// VolumeClose is the dual operation on regional minima.
func VolumeClose(ctx context.Context, rep *progress.Reporter, img *raster.Raster, minSize int, conn raster.Connectivity) (*raster.Raster, error) {
	return attributeOpen(ctx, rep, img, minSize, conn, false)
}

func attributeOpen(ctx context.Context, rep *progress.Reporter, img *raster.Raster, minSize int, conn raster.Connectivity, byMaxima bool) (*raster.Raster, error) {
	if minSize < 1 {
		return nil, raster.NewInvalidInput("attribute opening requires minSize >= 1")
	}
	var extremaMask *raster.Raster
	var err error
	if byMaxima {
		extremaMask, err = RegionalMaxima(ctx, rep, img, conn)
	} else {
		extremaMask, err = RegionalMinima(ctx, rep, img, conn)
	}
	if err != nil {
		return nil, err
	}
	reps, err := representatives(extremaMask, conn)
	if err != nil {
		return nil, err
	}

	out := img.Duplicate()
	w, h, d := img.SizeX(), img.SizeY(), img.SizeZ()
	settled := make([]bool, w*h*d)
	idx := func(p point) int { return (p.z*h+p.y)*w + p.x }

	better := func(a, b float64) bool {
		if byMaxima {
			return a > b
		}
		return a < b
	}
	worse := func(a, b float64) bool {
		if byMaxima {
			return a < b
		}
		return a > b
	}

	order := 0
	for _, p0 := range reps {
		if progress.Cancelled(ctx) {
			return nil, raster.NewCancelled("attribute opening cancelled")
		}
		if settled[idx(p0)] {
			continue
		}
		level := img.GetF64(p0.x, p0.y, p0.z)
		accepted := []point{p0}
		settled[idx(p0)] = true
		seen := map[point]bool{p0: true}

		hp := &growHeap{}
		heap.Init(hp)
		pushNeighbors := func(p point) {
			visit := func(nx, ny, nz int) {
				n := point{nx, ny, nz}
				if seen[n] || settled[idx(n)] {
					return
				}
				seen[n] = true
				order++
				prio := img.GetF64(nx, ny, nz)
				if !byMaxima {
					prio = -prio
				}
				heap.Push(hp, growEntry{value: prio, order: order, p: n})
			}
			if img.Is3D() {
				raster.ForEachNeighbor3D(img, p.x, p.y, p.z, conn, visit)
			} else {
				raster.ForEachNeighbor2D(img, p.x, p.y, conn, func(nx, ny int) { visit(nx, ny, 0) })
			}
		}
		pushNeighbors(p0)

		for hp.Len() > 0 {
			top := heap.Pop(hp).(growEntry)
			topValue := img.GetF64(top.p.x, top.p.y, top.p.z)
			if worse(level, topValue) {
				// topValue crosses past the current level into a
				// distinct, more extreme region: stop without accepting.
				break
			}
			accepted = append(accepted, top.p)
			settled[idx(top.p)] = true
			if better(level, topValue) {
				level = topValue
			}
			pushNeighbors(top.p)
			if len(accepted) >= minSize {
				break
			}
		}

		// Flattening to the final level is a no-op whenever the plateau
		// reached minSize without ever descending below its own value
		// (level == the representative's original value); it only takes
		// visible effect when the growth had to spill into a lower
		// surrounding level to meet minSize, which is exactly the "merged
		// down to the surrounding level" case the operation is named for.
		for _, p := range accepted {
			out.SetUnchecked3(p.x, p.y, p.z, out.Clamp(level))
		}
	}
	return out, nil
}

// representatives finds one pixel per connected plateau of a binary
// regional-extrema mask, by flood-filling each discovered plateau out of a
// working copy so later scans skip it.
func representatives(mask *raster.Raster, conn raster.Connectivity) ([]point, error) {
	work := mask.Duplicate()
	var reps []point
	w, h, d := mask.SizeX(), mask.SizeY(), mask.SizeZ()
	for z := 0; z < d; z++ {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if work.GetF64(x, y, z) != raster.Foreground {
					continue
				}
				reps = append(reps, point{x, y, z})
				var err error
				if mask.Is3D() {
					err = floodfill.FloodFillInto3D(nil, nil, mask, work, x, y, z, raster.Background, conn)
				} else {
					err = floodfill.FloodFillInto2D(nil, nil, mask, work, x, y, raster.Background, conn)
				}
				if err != nil {
					return nil, err
				}
			}
		}
	}
	return reps, nil
}
