package strel

import "github.com/Fepozopo/morphcore/pkg/raster"

// Cuboid is a 3D axis-aligned box structuring element, decomposed into
// three independent axis line passes.
type Cuboid struct {
	w, h, d int
}

// NewCube builds a side x side x side cube structuring element.
func NewCube(side int) (*Cuboid, error) { return NewCuboid(side, side, side) }

// NewCuboid builds a w x h x d box structuring element with distinct
// per-axis extents.
func NewCuboid(w, h, d int) (*Cuboid, error) {
	if w <= 0 || h <= 0 || d <= 0 {
		return nil, raster.NewInvalidInput("cuboid dimensions must be positive")
	}
	return &Cuboid{w: w, h: h, d: d}, nil
}

func (c *Cuboid) Is3D() bool { return true }

func (c *Cuboid) Shifts() [][3]int {
	hw, hh, hd := (c.w-1)/2, (c.h-1)/2, (c.d-1)/2
	out := make([][3]int, 0, c.w*c.h*c.d)
	for dz := -hd; dz < c.d-hd; dz++ {
		for dy := -hh; dy < c.h-hh; dy++ {
			for dx := -hw; dx < c.w-hw; dx++ {
				out = append(out, [3]int{dx, dy, dz})
			}
		}
	}
	return out
}

func (c *Cuboid) Size() [3]int         { sz, _ := sizeAndOffset(c.Shifts()); return sz }
func (c *Cuboid) Offset() [3]int       { _, off := sizeAndOffset(c.Shifts()); return off }
func (c *Cuboid) Mask() *raster.Raster { return maskFromShifts(c.Shifts(), true) }

// Reverse returns the point-reflected cuboid. As with Rectangle, an even
// extent along any axis puts the anchor off centre, so reflection must be
// built from reversed shifts rather than returned as-is.
func (c *Cuboid) Reverse() Strel {
	if c.w%2 == 1 && c.h%2 == 1 && c.d%2 == 1 {
		return c
	}
	return &reversedShape{shifts: reverseShifts(c.Shifts()), is3D: true}
}

func (c *Cuboid) axisLines() (lx, ly, lz *Line) {
	lx, _ = NewLineX(c.w)
	ly, _ = NewLineY(c.h)
	lz, _ = NewLineZ(c.d)
	return lx, ly, lz
}

func (c *Cuboid) Dilation(r *raster.Raster) (*raster.Raster, error) {
	if err := checkDimension(c, r); err != nil {
		return nil, err
	}
	lx, ly, lz := c.axisLines()
	tmp, err := lx.Dilation(r)
	if err != nil {
		return nil, err
	}
	tmp, err = ly.Dilation(tmp)
	if err != nil {
		return nil, err
	}
	return lz.Dilation(tmp)
}

func (c *Cuboid) Erosion(r *raster.Raster) (*raster.Raster, error) {
	if err := checkDimension(c, r); err != nil {
		return nil, err
	}
	lx, ly, lz := c.axisLines()
	tmp, err := lx.Erosion(r)
	if err != nil {
		return nil, err
	}
	tmp, err = ly.Erosion(tmp)
	if err != nil {
		return nil, err
	}
	return lz.Erosion(tmp)
}

func (c *Cuboid) Opening(r *raster.Raster) (*raster.Raster, error) { return OpeningVia(c, r) }
func (c *Cuboid) Closing(r *raster.Raster) (*raster.Raster, error) { return ClosingVia(c, r) }
