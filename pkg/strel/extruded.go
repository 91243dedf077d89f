package strel

import (
	"sync"

	"github.com/Fepozopo/morphcore/pkg/raster"
)

// Extruded lifts a 2D structuring element into 3D by applying it
// slice-wise across z, then running an axial line of the given depth
// along z. z-slices are independent, so the slice-wise pass runs one
// goroutine per slice under a sync.WaitGroup.
type Extruded struct {
	base  Strel
	depth int
	axial *Line
}

// NewExtruded builds a 3D strel from a 2D base shape extruded along z by
// depth (depth 1 performs no axial widening beyond the base's own slices).
func NewExtruded(base Strel, depth int) (*Extruded, error) {
	if base.Is3D() {
		return nil, raster.NewInvalidInput("extruded structuring element requires a 2D base shape")
	}
	if depth <= 0 {
		return nil, raster.NewInvalidInput("extruded depth must be positive")
	}
	axial, err := NewLineZ(depth)
	if err != nil {
		return nil, err
	}
	return &Extruded{base: base, depth: depth, axial: axial}, nil
}

func (s *Extruded) Is3D() bool { return true }

func (s *Extruded) Shifts() [][3]int {
	var out [][3]int
	for _, base := range s.base.Shifts() {
		for _, z := range s.axial.Shifts() {
			out = append(out, [3]int{base[0], base[1], z[2]})
		}
	}
	return out
}

func (s *Extruded) Size() [3]int       { sz, _ := sizeAndOffset(s.Shifts()); return sz }
func (s *Extruded) Offset() [3]int     { _, off := sizeAndOffset(s.Shifts()); return off }
func (s *Extruded) Mask() *raster.Raster { return maskFromShifts(s.Shifts(), true) }

func (s *Extruded) Reverse() Strel {
	return &Extruded{base: s.base.Reverse(), depth: s.depth, axial: s.axial.Reverse().(*Line)}
}

func (s *Extruded) sliceWise(r *raster.Raster, op func(Strel, *raster.Raster) (*raster.Raster, error)) (*raster.Raster, error) {
	w, h, d := r.SizeX(), r.SizeY(), r.SizeZ()
	out := raster.New3D(r.Kind(), w, h, d)
	errs := make([]error, d)
	var wg sync.WaitGroup
	for z := 0; z < d; z++ {
		wg.Add(1)
		go func(z int) {
			defer wg.Done()
			slice := raster.New2D(r.Kind(), w, h)
			for y := 0; y < h; y++ {
				for x := 0; x < w; x++ {
					slice.SetUnchecked2(x, y, r.GetF64(x, y, z))
				}
			}
			res, err := op(s.base, slice)
			if err != nil {
				errs[z] = err
				return
			}
			for y := 0; y < h; y++ {
				for x := 0; x < w; x++ {
					out.SetUnchecked3(x, y, z, res.GetF64(x, y, 0))
				}
			}
		}(z)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (s *Extruded) Dilation(r *raster.Raster) (*raster.Raster, error) {
	if err := checkDimension(s, r); err != nil {
		return nil, err
	}
	slabbed, err := s.sliceWise(r, func(strel Strel, rr *raster.Raster) (*raster.Raster, error) { return strel.Dilation(rr) })
	if err != nil {
		return nil, err
	}
	return s.axial.Dilation(slabbed)
}

func (s *Extruded) Erosion(r *raster.Raster) (*raster.Raster, error) {
	if err := checkDimension(s, r); err != nil {
		return nil, err
	}
	slabbed, err := s.sliceWise(r, func(strel Strel, rr *raster.Raster) (*raster.Raster, error) { return strel.Erosion(rr) })
	if err != nil {
		return nil, err
	}
	return s.axial.Erosion(slabbed)
}

func (s *Extruded) Opening(r *raster.Raster) (*raster.Raster, error) { return OpeningVia(s, r) }
func (s *Extruded) Closing(r *raster.Raster) (*raster.Raster, error) { return ClosingVia(s, r) }
