package strel

import "github.com/Fepozopo/morphcore/pkg/raster"

// WhiteTopHat returns input - opening(input, s), the feature detector for
// bright structures smaller than s.
func WhiteTopHat(s Strel, r *raster.Raster) (*raster.Raster, error) {
	opened, err := s.Opening(r)
	if err != nil {
		return nil, err
	}
	return combine(r, opened, func(a, b float64) float64 { return a - b }, r.Kind()), nil
}

// BlackTopHat returns closing(input, s) - input, the feature detector for
// dark structures smaller than s.
func BlackTopHat(s Strel, r *raster.Raster) (*raster.Raster, error) {
	closed, err := s.Closing(r)
	if err != nil {
		return nil, err
	}
	return combine(closed, r, func(a, b float64) float64 { return a - b }, r.Kind()), nil
}

// Gradient returns dilation(input,s) - erosion(input,s), the Beucher
// morphological gradient.
func Gradient(s Strel, r *raster.Raster) (*raster.Raster, error) {
	dil, err := s.Dilation(r)
	if err != nil {
		return nil, err
	}
	ero, err := s.Erosion(r)
	if err != nil {
		return nil, err
	}
	return combine(dil, ero, func(a, b float64) float64 { return a - b }, r.Kind()), nil
}

// InternalGradient returns input - erosion(input,s), the inner half of the
// morphological gradient.
func InternalGradient(s Strel, r *raster.Raster) (*raster.Raster, error) {
	ero, err := s.Erosion(r)
	if err != nil {
		return nil, err
	}
	return combine(r, ero, func(a, b float64) float64 { return a - b }, r.Kind()), nil
}

// ExternalGradient returns dilation(input,s) - input, the outer half of the
// morphological gradient.
func ExternalGradient(s Strel, r *raster.Raster) (*raster.Raster, error) {
	dil, err := s.Dilation(r)
	if err != nil {
		return nil, err
	}
	return combine(dil, r, func(a, b float64) float64 { return a - b }, r.Kind()), nil
}

// Laplacian returns the external gradient minus the internal gradient,
// i.e. dilation(input,s) + erosion(input,s) - 2*input, recentered by
// adding max_value/2 so the signed result is representable in an unsigned
// raster and homogeneous regions render mid-grey. F32 rasters, which have
// no fixed ceiling, are returned unshifted.
func Laplacian(s Strel, r *raster.Raster) (*raster.Raster, error) {
	dil, err := s.Dilation(r)
	if err != nil {
		return nil, err
	}
	ero, err := s.Erosion(r)
	if err != nil {
		return nil, err
	}
	shift := r.Kind().MaxValue() / 2
	w, h, d := r.SizeX(), r.SizeY(), r.SizeZ()
	var out *raster.Raster
	if r.Is3D() {
		out = raster.New3D(r.Kind(), w, h, d)
	} else {
		out = raster.New2D(r.Kind(), w, h)
	}
	for z := 0; z < d; z++ {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				v := dil.GetF64(x, y, z) + ero.GetF64(x, y, z) - 2*r.GetF64(x, y, z) + shift
				out.SetUnchecked3(x, y, z, out.Clamp(v))
			}
		}
	}
	return out, nil
}

// combine applies fn pixelwise to two same-shaped rasters and clamps the
// result to kind's representable range.
func combine(a, b *raster.Raster, fn func(a, b float64) float64, kind raster.Kind) *raster.Raster {
	w, h, d := a.SizeX(), a.SizeY(), a.SizeZ()
	var out *raster.Raster
	if a.Is3D() {
		out = raster.New3D(kind, w, h, d)
	} else {
		out = raster.New2D(kind, w, h)
	}
	for z := 0; z < d; z++ {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				out.SetUnchecked3(x, y, z, out.Clamp(fn(a.GetF64(x, y, z), b.GetF64(x, y, z))))
			}
		}
	}
	return out
}
