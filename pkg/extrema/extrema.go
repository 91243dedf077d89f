// Package extrema implements regional/extended maxima and minima, marker
// imposition, and the priority-queue area/volume opening attribute filter.
package extrema

import (
	"context"

	"github.com/Fepozopo/morphcore/pkg/progress"
	"github.com/Fepozopo/morphcore/pkg/raster"
	"github.com/Fepozopo/morphcore/pkg/reconstruct"
)

func newLike(r *raster.Raster, kind raster.Kind) *raster.Raster {
	if r.Is3D() {
		return raster.New3D(kind, r.SizeX(), r.SizeY(), r.SizeZ())
	}
	return raster.New2D(kind, r.SizeX(), r.SizeY())
}

func addClamped(r *raster.Raster, delta float64) *raster.Raster {
	out := r.Duplicate()
	w, h, d := r.SizeX(), r.SizeY(), r.SizeZ()
	for z := 0; z < d; z++ {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				out.SetUnchecked3(x, y, z, out.Clamp(r.GetF64(x, y, z)+delta))
			}
		}
	}
	return out
}

// shiftedF32 returns r+delta as an F32 raster, so the shift is not clamped
// at r's kind floor or ceiling.
func shiftedF32(r *raster.Raster, delta float64) *raster.Raster {
	out := newLike(r, raster.F32)
	w, h, d := r.SizeX(), r.SizeY(), r.SizeZ()
	for z := 0; z < d; z++ {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				out.SetUnchecked3(x, y, z, r.GetF64(x, y, z)+delta)
			}
		}
	}
	return out
}

// RegionalMaxima computes the reconstruction-method regional maxima of img:
// reconstruct_by_dilation(img, img+1), with a pixel marked foreground where
// the mask (img+1) strictly exceeds the reconstruction result.
func RegionalMaxima(ctx context.Context, rep *progress.Reporter, img *raster.Raster, conn raster.Connectivity) (*raster.Raster, error) {
	maskPlusOne := shiftedF32(img, 1)
	rec, err := reconstruct.ReconstructByDilation(ctx, rep, img, maskPlusOne, conn)
	if err != nil {
		return nil, err
	}
	return thresholdGreater(maskPlusOne, rec), nil
}

// RegionalMinima is the dual of RegionalMaxima via reconstruction by
// erosion of img against img-1.
func RegionalMinima(ctx context.Context, rep *progress.Reporter, img *raster.Raster, conn raster.Connectivity) (*raster.Raster, error) {
	maskMinusOne := shiftedF32(img, -1)
	rec, err := reconstruct.ReconstructByErosion(ctx, rep, img, maskMinusOne, conn)
	if err != nil {
		return nil, err
	}
	return thresholdLess(maskMinusOne, rec), nil
}

func thresholdGreater(mask, rec *raster.Raster) *raster.Raster {
	out := newLike(mask, raster.U8)
	w, h, d := mask.SizeX(), mask.SizeY(), mask.SizeZ()
	for z := 0; z < d; z++ {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if mask.GetF64(x, y, z) > rec.GetF64(x, y, z) {
					out.SetUnchecked3(x, y, z, raster.Foreground)
				}
			}
		}
	}
	return out
}

func thresholdLess(mask, rec *raster.Raster) *raster.Raster {
	out := newLike(mask, raster.U8)
	w, h, d := mask.SizeX(), mask.SizeY(), mask.SizeZ()
	for z := 0; z < d; z++ {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if mask.GetF64(x, y, z) < rec.GetF64(x, y, z) {
					out.SetUnchecked3(x, y, z, raster.Foreground)
				}
			}
		}
	}
	return out
}

// ExtendedMaxima computes regional_maxima(reconstruct_by_dilation(img,
// img+h)) for a non-negative dynamic threshold h; h=0 is the regional case.
func ExtendedMaxima(ctx context.Context, rep *progress.Reporter, img *raster.Raster, h float64, conn raster.Connectivity) (*raster.Raster, error) {
	if h < 0 {
		return nil, raster.NewInvalidInput("extended maxima requires a non-negative h")
	}
	maskPlusH := addClamped(img, h)
	rec, err := reconstruct.ReconstructByDilation(ctx, rep, img, maskPlusH, conn)
	if err != nil {
		return nil, err
	}
	return RegionalMaxima(ctx, rep, rec, conn)
}

// ExtendedMinima is the dual of ExtendedMaxima.
func ExtendedMinima(ctx context.Context, rep *progress.Reporter, img *raster.Raster, h float64, conn raster.Connectivity) (*raster.Raster, error) {
	if h < 0 {
		return nil, raster.NewInvalidInput("extended minima requires a non-negative h")
	}
	maskMinusH := addClamped(img, -h)
	rec, err := reconstruct.ReconstructByErosion(ctx, rep, img, maskMinusH, conn)
	if err != nil {
		return nil, err
	}
	return RegionalMinima(ctx, rep, rec, conn)
}

// ImposeMinima forces img to have regional minima exactly at the
// foreground pixels of marker (a binary raster), per the standard
// "marker=0 on M, ceiling elsewhere" / "mask=0 on M, min(img+1,max)
// elsewhere" reconstruction-by-erosion construction.
func ImposeMinima(ctx context.Context, rep *progress.Reporter, img, marker *raster.Raster, conn raster.Connectivity) (*raster.Raster, error) {
	if !img.SameShape(marker) {
		return nil, raster.NewShapeMismatch("impose minima requires img and marker of matching shape")
	}
	if !marker.IsBinary() {
		return nil, raster.NewPreconditionViolated("impose minima requires a binary marker")
	}
	maxV := img.Kind().MaxValue()
	m := newLike(img, img.Kind())
	mask := newLike(img, img.Kind())
	w, h, d := img.SizeX(), img.SizeY(), img.SizeZ()
	for z := 0; z < d; z++ {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if marker.GetF64(x, y, z) == raster.Foreground {
					m.SetUnchecked3(x, y, z, 0)
					mask.SetUnchecked3(x, y, z, 0)
				} else {
					m.SetUnchecked3(x, y, z, maxV)
					mask.SetUnchecked3(x, y, z, img.Clamp(img.GetF64(x, y, z)+1))
				}
			}
		}
	}
	return reconstruct.ReconstructByErosion(ctx, rep, m, mask, conn)
}

// ImposeMaxima is the dual of ImposeMinima via reconstruction by dilation.
func ImposeMaxima(ctx context.Context, rep *progress.Reporter, img, marker *raster.Raster, conn raster.Connectivity) (*raster.Raster, error) {
	if !img.SameShape(marker) {
		return nil, raster.NewShapeMismatch("impose maxima requires img and marker of matching shape")
	}
	if !marker.IsBinary() {
		return nil, raster.NewPreconditionViolated("impose maxima requires a binary marker")
	}
	m := newLike(img, img.Kind())
	mask := newLike(img, img.Kind())
	w, h, d := img.SizeX(), img.SizeY(), img.SizeZ()
	for z := 0; z < d; z++ {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if marker.GetF64(x, y, z) == raster.Foreground {
					m.SetUnchecked3(x, y, z, img.Kind().MaxValue())
					mask.SetUnchecked3(x, y, z, img.Kind().MaxValue())
				} else {
					m.SetUnchecked3(x, y, z, 0)
					v := img.GetF64(x, y, z) - 1
					if v < 0 {
						v = 0
					}
					mask.SetUnchecked3(x, y, z, v)
				}
			}
		}
	}
	return reconstruct.ReconstructByDilation(ctx, rep, m, mask, conn)
}
