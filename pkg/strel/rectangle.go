package strel

import "github.com/Fepozopo/morphcore/pkg/raster"

// Rectangle is a 2D axis-aligned rectangle structuring element, decomposed
// into a horizontal line pass followed by a vertical line pass.
type Rectangle struct {
	w, h int
}

// NewSquare builds a side x side square structuring element.
func NewSquare(side int) (*Rectangle, error) { return NewRectangle(side, side) }

// NewRectangle builds a w x h rectangle structuring element.
func NewRectangle(w, h int) (*Rectangle, error) {
	if w <= 0 || h <= 0 {
		return nil, raster.NewInvalidInput("rectangle dimensions must be positive")
	}
	return &Rectangle{w: w, h: h}, nil
}

func (s *Rectangle) Is3D() bool { return false }

func (s *Rectangle) Shifts() [][3]int {
	hw, hh := (s.w-1)/2, (s.h-1)/2
	out := make([][3]int, 0, s.w*s.h)
	for dy := -hh; dy < s.h-hh; dy++ {
		for dx := -hw; dx < s.w-hw; dx++ {
			out = append(out, [3]int{dx, dy, 0})
		}
	}
	return out
}

func (s *Rectangle) Size() [3]int   { sz, _ := sizeAndOffset(s.Shifts()); return sz }
func (s *Rectangle) Offset() [3]int { _, off := sizeAndOffset(s.Shifts()); return off }
func (s *Rectangle) Mask() *raster.Raster { return maskFromShifts(s.Shifts(), false) }

// Reverse returns the point-reflected rectangle. For odd w and h this is
// the rectangle itself; for an even extent the anchor sits one step off
// centre, so reflection shifts the footprint by one pixel along that axis
// and must be built from reversed shifts rather than returned as-is.
func (s *Rectangle) Reverse() Strel {
	if s.w%2 == 1 && s.h%2 == 1 {
		return s
	}
	return &reversedShape{shifts: reverseShifts(s.Shifts()), is3D: false}
}

func (s *Rectangle) lines() (h, v *Line) {
	h, _ = NewLineHorizontal(s.w)
	v, _ = NewLineVertical(s.h)
	return h, v
}

func (s *Rectangle) Dilation(r *raster.Raster) (*raster.Raster, error) {
	if err := checkDimension(s, r); err != nil {
		return nil, err
	}
	h, v := s.lines()
	tmp, err := h.Dilation(r)
	if err != nil {
		return nil, err
	}
	return v.Dilation(tmp)
}

func (s *Rectangle) Erosion(r *raster.Raster) (*raster.Raster, error) {
	if err := checkDimension(s, r); err != nil {
		return nil, err
	}
	h, v := s.lines()
	tmp, err := h.Erosion(r)
	if err != nil {
		return nil, err
	}
	return v.Erosion(tmp)
}

func (s *Rectangle) Opening(r *raster.Raster) (*raster.Raster, error) { return OpeningVia(s, r) }
func (s *Rectangle) Closing(r *raster.Raster) (*raster.Raster, error) { return ClosingVia(s, r) }
