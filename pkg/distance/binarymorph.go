package distance

import (
	"context"

	"github.com/Fepozopo/morphcore/pkg/progress"
	"github.com/Fepozopo/morphcore/pkg/raster"
)

// BinaryDilationDisk dilates a binary raster by a disk/ball of the given
// radius using the distance transform: a pixel belongs to the dilation iff
// it lies within radius (chamfer-normalized) of some foreground pixel.
// Compute a continuous field, then binarize — which makes the cost
// independent of the radius.
func BinaryDilationDisk(ctx context.Context, rep *progress.Reporter, input *raster.Raster, radius float64, mask ChamferMask) (*raster.Raster, error) {
	if !input.IsBinary() {
		return nil, raster.NewPreconditionViolated("binary dilation by disk requires a binary input raster")
	}
	inverted := invert(input)
	dt, err := Transform(ctx, rep, inverted, mask, raster.F32, true)
	if err != nil {
		return nil, err
	}
	return thresholdLE(dt, radius), nil
}

// BinaryErosionDisk erodes a binary raster by a disk/ball of the given
// radius: the complement of dilating the background by the same disk.
func BinaryErosionDisk(ctx context.Context, rep *progress.Reporter, input *raster.Raster, radius float64, mask ChamferMask) (*raster.Raster, error) {
	if !input.IsBinary() {
		return nil, raster.NewPreconditionViolated("binary erosion by disk requires a binary input raster")
	}
	dt, err := Transform(ctx, rep, input, mask, raster.F32, true)
	if err != nil {
		return nil, err
	}
	return thresholdGT(dt, radius), nil
}

func invert(r *raster.Raster) *raster.Raster {
	out := r.Duplicate()
	w, h, d := r.SizeX(), r.SizeY(), r.SizeZ()
	for z := 0; z < d; z++ {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if r.GetF64(x, y, z) == raster.Background {
					out.SetUnchecked3(x, y, z, raster.Foreground)
				} else {
					out.SetUnchecked3(x, y, z, raster.Background)
				}
			}
		}
	}
	return out
}

// thresholdLE builds a binary raster marking every pixel whose distance
// field value is <= radius (the dilated foreground: near a seed pixel).
func thresholdLE(dt *raster.Raster, radius float64) *raster.Raster {
	w, h, d := dt.SizeX(), dt.SizeY(), dt.SizeZ()
	var out *raster.Raster
	if d > 1 {
		out = raster.New3D(raster.U8, w, h, d)
	} else {
		out = raster.New2D(raster.U8, w, h)
	}
	for z := 0; z < d; z++ {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				v := dt.GetF64(x, y, z)
				if v <= radius {
					out.SetUnchecked3(x, y, z, raster.Foreground)
				}
			}
		}
	}
	return out
}

// thresholdGT builds a binary raster marking every pixel whose distance
// field value is > radius (the eroded foreground: far from any boundary).
func thresholdGT(dt *raster.Raster, radius float64) *raster.Raster {
	w, h, d := dt.SizeX(), dt.SizeY(), dt.SizeZ()
	var out *raster.Raster
	if d > 1 {
		out = raster.New3D(raster.U8, w, h, d)
	} else {
		out = raster.New2D(raster.U8, w, h)
	}
	for z := 0; z < d; z++ {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				v := dt.GetF64(x, y, z)
				if v > radius {
					out.SetUnchecked3(x, y, z, raster.Foreground)
				}
			}
		}
	}
	return out
}
