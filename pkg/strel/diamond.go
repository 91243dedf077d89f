package strel

import "github.com/Fepozopo/morphcore/pkg/raster"

// Cross3 is the 2D 3x3 city-block cross: direct 5-point max/min.
type Cross3 struct{}

func NewCross3() *Cross3 { return &Cross3{} }

func (c *Cross3) Is3D() bool { return false }

func (c *Cross3) Shifts() [][3]int {
	return [][3]int{{0, 0, 0}, {1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}}
}

func (c *Cross3) Size() [3]int         { return [3]int{3, 3, 1} }
func (c *Cross3) Offset() [3]int       { return [3]int{1, 1, 0} }
func (c *Cross3) Mask() *raster.Raster { return maskFromShifts(c.Shifts(), false) }
func (c *Cross3) Reverse() Strel       { return c }

func (c *Cross3) Dilation(r *raster.Raster) (*raster.Raster, error) {
	if err := checkDimension(c, r); err != nil {
		return nil, err
	}
	return bruteForceDilation2D(r, c.Shifts()), nil
}

func (c *Cross3) Erosion(r *raster.Raster) (*raster.Raster, error) {
	if err := checkDimension(c, r); err != nil {
		return nil, err
	}
	return bruteForceErosion2D(r, c.Shifts()), nil
}

func (c *Cross3) Opening(r *raster.Raster) (*raster.Raster, error) { return OpeningVia(c, r) }
func (c *Cross3) Closing(r *raster.Raster) (*raster.Raster, error) { return ClosingVia(c, r) }

// Diamond is the 2D city-block ball of a given radius, realized as the
// iterated 3x3 cross: dilation by radius-r diamond equals r successive
// dilations by Cross3 (Minkowski-sum associativity), and likewise for
// erosion.
type Diamond struct {
	radius int
}

// NewDiamond builds a city-block ball of the given radius (radius 0 is
// the identity/single-pixel strel).
func NewDiamond(radius int) (*Diamond, error) {
	if radius < 0 {
		return nil, raster.NewInvalidInput("diamond radius must be non-negative")
	}
	return &Diamond{radius: radius}, nil
}

func (d *Diamond) Is3D() bool { return false }

func (d *Diamond) Shifts() [][3]int {
	out := make([][3]int, 0, 2*d.radius*d.radius+2*d.radius+1)
	for dy := -d.radius; dy <= d.radius; dy++ {
		rem := d.radius - abs(dy)
		for dx := -rem; dx <= rem; dx++ {
			out = append(out, [3]int{dx, dy, 0})
		}
	}
	return out
}

func (d *Diamond) Size() [3]int         { sz, _ := sizeAndOffset(d.Shifts()); return sz }
func (d *Diamond) Offset() [3]int       { _, off := sizeAndOffset(d.Shifts()); return off }
func (d *Diamond) Mask() *raster.Raster { return maskFromShifts(d.Shifts(), false) }
func (d *Diamond) Reverse() Strel       { return d }

func (d *Diamond) Dilation(r *raster.Raster) (*raster.Raster, error) {
	if err := checkDimension(d, r); err != nil {
		return nil, err
	}
	out := r
	cross := NewCross3()
	for i := 0; i < d.radius; i++ {
		var err error
		out, err = cross.Dilation(out)
		if err != nil {
			return nil, err
		}
	}
	if d.radius == 0 {
		out = r.Duplicate()
	}
	return out, nil
}

func (d *Diamond) Erosion(r *raster.Raster) (*raster.Raster, error) {
	if err := checkDimension(d, r); err != nil {
		return nil, err
	}
	out := r
	cross := NewCross3()
	for i := 0; i < d.radius; i++ {
		var err error
		out, err = cross.Erosion(out)
		if err != nil {
			return nil, err
		}
	}
	if d.radius == 0 {
		out = r.Duplicate()
	}
	return out, nil
}

func (d *Diamond) Opening(r *raster.Raster) (*raster.Raster, error) { return OpeningVia(d, r) }
func (d *Diamond) Closing(r *raster.Raster) (*raster.Raster, error) { return ClosingVia(d, r) }

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
