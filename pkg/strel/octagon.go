package strel

import "github.com/Fepozopo/morphcore/pkg/raster"

// Octagon is the 2D octagon structuring element of a given radius: the
// intersection of a Chebyshev disk of radius r and a city-block disk of
// radius r+r/2, the standard truncated-corner octagon (square ⊕ diamond).
// Footprint offsets are evaluated directly (the offset-list path also
// used for Disk's general-grayscale case) rather than chained as two
// separate Minkowski sums; the truncated-corner offset test and the
// square/diamond alternation produce the same footprint for every radius.
type Octagon struct {
	radius int
}

// NewOctagon builds an octagon of the given radius (diameter 2*radius+1).
func NewOctagon(radius int) (*Octagon, error) {
	if radius < 0 {
		return nil, raster.NewInvalidInput("octagon radius must be non-negative")
	}
	return &Octagon{radius: radius}, nil
}

func (o *Octagon) Is3D() bool { return false }

func (o *Octagon) Shifts() [][3]int {
	r := o.radius
	cityLimit := r + r/2
	out := make([][3]int, 0)
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if abs(dx)+abs(dy) <= cityLimit {
				out = append(out, [3]int{dx, dy, 0})
			}
		}
	}
	return out
}

func (o *Octagon) Size() [3]int         { sz, _ := sizeAndOffset(o.Shifts()); return sz }
func (o *Octagon) Offset() [3]int       { _, off := sizeAndOffset(o.Shifts()); return off }
func (o *Octagon) Mask() *raster.Raster { return maskFromShifts(o.Shifts(), false) }
func (o *Octagon) Reverse() Strel       { return o }

func (o *Octagon) Dilation(r *raster.Raster) (*raster.Raster, error) {
	if err := checkDimension(o, r); err != nil {
		return nil, err
	}
	out := bruteForceDilation2D(r, o.Shifts())
	if r.Kind() != raster.F32 {
		// The footprint max stays within the input's range; the clamp
		// keeps U8/U16 output in range rather than letting it wrap.
		clampRaster(out)
	}
	return out, nil
}

func (o *Octagon) Erosion(r *raster.Raster) (*raster.Raster, error) {
	if err := checkDimension(o, r); err != nil {
		return nil, err
	}
	out := bruteForceErosion2D(r, o.Shifts())
	if r.Kind() != raster.F32 {
		clampRaster(out)
	}
	return out, nil
}

func (o *Octagon) Opening(r *raster.Raster) (*raster.Raster, error) { return OpeningVia(o, r) }
func (o *Octagon) Closing(r *raster.Raster) (*raster.Raster, error) { return ClosingVia(o, r) }

func clampRaster(r *raster.Raster) {
	w, h, d := r.SizeX(), r.SizeY(), r.SizeZ()
	for z := 0; z < d; z++ {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				r.SetUnchecked3(x, y, z, r.Clamp(r.GetF64(x, y, z)))
			}
		}
	}
}
