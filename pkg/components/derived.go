package components

import (
	"context"

	"github.com/Fepozopo/morphcore/pkg/progress"
	"github.com/Fepozopo/morphcore/pkg/raster"
)

// LargestRegion keeps only the largest connected foreground region of a
// binary raster, re-binarized to Foreground/Background. An all-background
// input yields an all-background output.
func LargestRegion(ctx context.Context, rep *progress.Reporter, binary *raster.Raster, conn raster.Connectivity) (*raster.Raster, error) {
	labels, count, err := Label(ctx, rep, binary, conn, 32)
	if err != nil {
		return nil, err
	}
	largest := largestLabel(labels, count)
	return binarizeSelected(binary, labels, func(label int) bool { return label == largest }), nil
}

// RemoveLargest removes the largest connected foreground region of a
// binary raster, keeping every other region.
func RemoveLargest(ctx context.Context, rep *progress.Reporter, binary *raster.Raster, conn raster.Connectivity) (*raster.Raster, error) {
	labels, count, err := Label(ctx, rep, binary, conn, 32)
	if err != nil {
		return nil, err
	}
	largest := largestLabel(labels, count)
	return binarizeSelected(binary, labels, func(label int) bool { return label != largest }), nil
}

// SizeOpening keeps only the connected foreground regions whose pixel
// (voxel) count is at least minSize.
func SizeOpening(ctx context.Context, rep *progress.Reporter, binary *raster.Raster, minSize int, conn raster.Connectivity) (*raster.Raster, error) {
	if minSize < 0 {
		return nil, raster.NewInvalidInput("size opening threshold must be non-negative")
	}
	labels, count, err := Label(ctx, rep, binary, conn, 32)
	if err != nil {
		return nil, err
	}
	sizes := regionSizes(labels, count)
	return binarizeSelected(binary, labels, func(label int) bool { return sizes[label] >= minSize }), nil
}

func largestLabel(labels *raster.Raster, count int) int {
	sizes := regionSizes(labels, count)
	best := 0
	for label := 1; label <= count; label++ {
		if best == 0 || sizes[label] > sizes[best] {
			best = label
		}
	}
	return best
}
