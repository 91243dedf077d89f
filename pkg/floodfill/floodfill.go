// Package floodfill implements scan-line-based connected-region traversal
// for 2D and 3D rasters, the primitive reused by connected-component
// labeling and the flood-fill variant of regional extrema.
//
// The algorithm keeps a stack of seed positions, expands each popped seed
// left and right into a maximal same-valued run, paints the run, and
// seeds the adjacent lines once per maximal matching sub-run — which is
// what makes the cost linear in the region size regardless of its shape.
package floodfill

import (
	"context"

	"github.com/Fepozopo/morphcore/pkg/progress"
	"github.com/Fepozopo/morphcore/pkg/raster"
)

type seed2 struct{ x, y int }
type seed3 struct{ x, y, z int }

// FloodFill2D relabels, in place, the maximal connected region of pixels
// equal to r's value at (seedX,seedY) to newValue.
func FloodFill2D(ctx context.Context, rep *progress.Reporter, r *raster.Raster, seedX, seedY int, newValue float64, conn raster.Connectivity) error {
	return FloodFillInto2D(ctx, rep, r, r, seedX, seedY, newValue, conn)
}

// FloodFillInto2D traverses input (read-only) and writes newValue into
// output at every position reachable from (seedX,seedY) through pixels
// equal to input's seed value, under connectivity conn.
func FloodFillInto2D(ctx context.Context, rep *progress.Reporter, input, output *raster.Raster, seedX, seedY int, newValue float64, conn raster.Connectivity) error {
	if !conn.Valid2D() {
		return raster.NewInvalidConnectivity(int(conn))
	}
	w, h := input.SizeX(), input.SizeY()
	if seedX < 0 || seedX >= w || seedY < 0 || seedY >= h {
		return raster.NewInvalidInput("flood fill seed out of bounds")
	}
	oldValue := input.GetF64(seedX, seedY, 0)
	if output.GetF64(seedX, seedY, 0) == newValue {
		return nil
	}

	delta := 0
	if conn == raster.C8 {
		delta = 1
	}

	matches := func(x, y int) bool {
		return input.GetF64(x, y, 0) == oldValue && output.GetF64(x, y, 0) != newValue
	}

	stack := make([]seed2, 0, 1024)
	stack = append(stack, seed2{seedX, seedY})

	painted := 0
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		x, y := s.x, s.y
		if x < 0 || x >= w || y < 0 || y >= h || !matches(x, y) {
			continue
		}

		painted++
		if painted&4095 == 0 {
			if progress.Cancelled(ctx) {
				return raster.NewCancelled("flood fill")
			}
			rep.EmitProgress(0) // unbounded region size: report activity, not a fraction
		}

		x1 := x
		for x1-1 >= 0 && matches(x1-1, y) {
			x1--
		}
		x2 := x
		for x2+1 < w && matches(x2+1, y) {
			x2++
		}
		for xi := x1; xi <= x2; xi++ {
			output.SetUnchecked2(xi, y, newValue)
		}

		for _, dy := range [2]int{-1, 1} {
			ny := y + dy
			if ny < 0 || ny >= h {
				continue
			}
			lo := x1 - delta
			if lo < 0 {
				lo = 0
			}
			hi := x2 + delta
			if hi >= w {
				hi = w - 1
			}
			inRun := false
			for xi := lo; xi <= hi; xi++ {
				if matches(xi, ny) {
					if !inRun {
						stack = append(stack, seed2{xi, ny})
						inRun = true
					}
				} else {
					inRun = false
				}
			}
		}
	}
	return nil
}

// FloodFill3D relabels, in place, the maximal connected region of voxels
// equal to r's value at the seed to newValue.
func FloodFill3D(ctx context.Context, rep *progress.Reporter, r *raster.Raster, seedX, seedY, seedZ int, newValue float64, conn raster.Connectivity) error {
	return FloodFillInto3D(ctx, rep, r, r, seedX, seedY, seedZ, newValue, conn)
}

// FloodFillInto3D is the 3D analogue of FloodFillInto2D. For connectivity
// 26 it scans all eight neighboring x-lines of the 3x3x3 cube around the
// current line (the nine-minus-centre lines in the y-z plane); for
// connectivity 6 it scans only the four axis-adjacent lines. The adjacent
// line set excludes the current (y,z) line itself, which has already been
// painted in full.
func FloodFillInto3D(ctx context.Context, rep *progress.Reporter, input, output *raster.Raster, seedX, seedY, seedZ int, newValue float64, conn raster.Connectivity) error {
	if !conn.Valid3D() {
		return raster.NewInvalidConnectivity(int(conn))
	}
	w, h, d := input.SizeX(), input.SizeY(), input.SizeZ()
	if seedX < 0 || seedX >= w || seedY < 0 || seedY >= h || seedZ < 0 || seedZ >= d {
		return raster.NewInvalidInput("flood fill seed out of bounds")
	}
	oldValue := input.GetF64(seedX, seedY, seedZ)
	if output.GetF64(seedX, seedY, seedZ) == newValue {
		return nil
	}

	delta := 0
	if conn == raster.C26 {
		delta = 1
	}

	matches := func(x, y, z int) bool {
		return input.GetF64(x, y, z) == oldValue && output.GetF64(x, y, z) != newValue
	}

	// Adjacent (y,z) lines to re-scan for new seeds, relative to the
	// current line. C6: four axis-adjacent lines. C26: the eight
	// remaining lines of the 3x3 (y,z) neighborhood, excluding (0,0).
	var adjLines [][2]int
	if conn == raster.C6 {
		adjLines = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	} else {
		for dz := -1; dz <= 1; dz++ {
			for dy := -1; dy <= 1; dy++ {
				if dy == 0 && dz == 0 {
					continue
				}
				adjLines = append(adjLines, [2]int{dy, dz})
			}
		}
	}

	stack := make([]seed3, 0, 1024)
	stack = append(stack, seed3{seedX, seedY, seedZ})

	painted := 0
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		x, y, z := s.x, s.y, s.z
		if x < 0 || x >= w || y < 0 || y >= h || z < 0 || z >= d || !matches(x, y, z) {
			continue
		}

		painted++
		if painted&4095 == 0 {
			if progress.Cancelled(ctx) {
				return raster.NewCancelled("flood fill 3d")
			}
			rep.EmitProgress(0)
		}

		x1 := x
		for x1-1 >= 0 && matches(x1-1, y, z) {
			x1--
		}
		x2 := x
		for x2+1 < w && matches(x2+1, y, z) {
			x2++
		}
		for xi := x1; xi <= x2; xi++ {
			output.SetUnchecked3(xi, y, z, newValue)
		}

		for _, line := range adjLines {
			ny, nz := y+line[0], z+line[1]
			if ny < 0 || ny >= h || nz < 0 || nz >= d {
				continue
			}
			lo := x1 - delta
			if lo < 0 {
				lo = 0
			}
			hi := x2 + delta
			if hi >= w {
				hi = w - 1
			}
			inRun := false
			for xi := lo; xi <= hi; xi++ {
				if matches(xi, ny, nz) {
					if !inRun {
						stack = append(stack, seed3{xi, ny, nz})
						inRun = true
					}
				} else {
					inRun = false
				}
			}
		}
	}
	return nil
}
