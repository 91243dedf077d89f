// Package components implements flood-fill-based connected-component
// labeling of binary rasters and the size-selection utilities derived
// from it (largest region, remove largest, size opening).
package components

import (
	"context"

	"github.com/Fepozopo/morphcore/pkg/floodfill"
	"github.com/Fepozopo/morphcore/pkg/progress"
	"github.com/Fepozopo/morphcore/pkg/raster"
)

// labelKind maps a requested output bit depth to an element kind and the
// largest label value that kind can hold.
func labelKind(bitDepth int) (raster.Kind, int, error) {
	switch bitDepth {
	case 8:
		return raster.U8, 255, nil
	case 16:
		return raster.U16, 65535, nil
	case 32:
		return raster.F32, (1 << 32) - 1, nil
	}
	return 0, 0, raster.NewInvalidInput("label bit depth must be 8, 16, or 32")
}

// Label assigns a distinct positive label to every connected foreground
// region of a binary raster, in scan order, under connectivity conn. The
// output raster's element kind is chosen from bitDepth (8/16/32). Returns
// the label raster and the number of labels assigned.
func Label(ctx context.Context, rep *progress.Reporter, binary *raster.Raster, conn raster.Connectivity, bitDepth int) (*raster.Raster, int, error) {
	kind, capacity, err := labelKind(bitDepth)
	if err != nil {
		return nil, 0, err
	}
	if binary.Is3D() {
		if !conn.Valid3D() {
			return nil, 0, raster.NewInvalidConnectivity(int(conn))
		}
	} else if !conn.Valid2D() {
		return nil, 0, raster.NewInvalidConnectivity(int(conn))
	}

	w, h, d := binary.SizeX(), binary.SizeY(), binary.SizeZ()
	var labels *raster.Raster
	if binary.Is3D() {
		labels = raster.New3D(kind, w, h, d)
	} else {
		labels = raster.New2D(kind, w, h)
	}

	count := 0
	for z := 0; z < d; z++ {
		for y := 0; y < h; y++ {
			if progress.Cancelled(ctx) {
				return nil, 0, raster.NewCancelled("labeling")
			}
			for x := 0; x < w; x++ {
				if binary.GetF64(x, y, z) == raster.Background || labels.GetF64(x, y, z) != 0 {
					continue
				}
				if count >= capacity {
					return nil, 0, raster.NewLabelOverflow(count+1, bitDepth)
				}
				count++
				if binary.Is3D() {
					err = floodfill.FloodFillInto3D(ctx, rep, binary, labels, x, y, z, float64(count), conn)
				} else {
					err = floodfill.FloodFillInto2D(ctx, rep, binary, labels, x, y, float64(count), conn)
				}
				if err != nil {
					return nil, 0, err
				}
			}
		}
		rep.EmitProgress(float64(z+1) / float64(d))
	}
	return labels, count, nil
}

// regionSizes returns the pixel count per label; index 0 holds the
// background count.
func regionSizes(labels *raster.Raster, count int) []int {
	sizes := make([]int, count+1)
	w, h, d := labels.SizeX(), labels.SizeY(), labels.SizeZ()
	for z := 0; z < d; z++ {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				sizes[int(labels.GetF64(x, y, z))]++
			}
		}
	}
	return sizes
}

// binarizeSelected re-binarizes a label raster to the input's element kind,
// keeping (as Foreground) only the labels for which keep returns true.
func binarizeSelected(binary, labels *raster.Raster, keep func(label int) bool) *raster.Raster {
	w, h, d := binary.SizeX(), binary.SizeY(), binary.SizeZ()
	var out *raster.Raster
	if binary.Is3D() {
		out = raster.New3D(binary.Kind(), w, h, d)
	} else {
		out = raster.New2D(binary.Kind(), w, h)
	}
	for z := 0; z < d; z++ {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				label := int(labels.GetF64(x, y, z))
				if label != 0 && keep(label) {
					out.SetUnchecked3(x, y, z, raster.Foreground)
				}
			}
		}
	}
	return out
}
