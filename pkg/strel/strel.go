// Package strel implements the structuring-element shape catalogue:
// disk, square, octagon, diamond, lines, ball, cube, ellipsoid, cuboid,
// each with dilation/erosion specialized to its shape, plus the derived
// opening/closing/top-hat/gradient/Laplacian operators.
//
// Separable shapes (lines, squares, cubes) run as successive 1D passes —
// a horizontal pass followed by a vertical (and, in 3D, depth) pass —
// the same structure as a separable blur, with max/min reductions in
// place of weighted sums.
package strel

import (
	"github.com/Fepozopo/morphcore/pkg/raster"
)

// Strel is a (small) 2D or 3D structuring element: a set of offsets with
// an anchor point.
type Strel interface {
	Dilation(r *raster.Raster) (*raster.Raster, error)
	Erosion(r *raster.Raster) (*raster.Raster, error)
	Opening(r *raster.Raster) (*raster.Raster, error)
	Closing(r *raster.Raster) (*raster.Raster, error)
	Reverse() Strel
	Size() [3]int
	Offset() [3]int
	Mask() *raster.Raster
	Shifts() [][3]int
	Is3D() bool
}

// OpeningVia computes opening = dilation(erosion(r, s), reverse(s));
// using the strel's own reverse for the second pass keeps the result
// well-defined for asymmetric strels.
func OpeningVia(s Strel, r *raster.Raster) (*raster.Raster, error) {
	eroded, err := s.Erosion(r)
	if err != nil {
		return nil, err
	}
	return s.Reverse().Dilation(eroded)
}

// ClosingVia computes closing = erosion(dilation(r, s), reverse(s)).
func ClosingVia(s Strel, r *raster.Raster) (*raster.Raster, error) {
	dilated, err := s.Dilation(r)
	if err != nil {
		return nil, err
	}
	return s.Reverse().Erosion(dilated)
}

func checkDimension(s Strel, r *raster.Raster) error {
	if s.Is3D() != r.Is3D() {
		return raster.NewShapeMismatch("structuring element dimensionality does not match raster")
	}
	return nil
}

// bruteForceDilation2D computes the naive footprint-maximum dilation: the
// correctness bar every specialized shape must match.
func bruteForceDilation2D(r *raster.Raster, shifts [][3]int) *raster.Raster {
	out := raster.New2D(r.Kind(), r.SizeX(), r.SizeY())
	w, h := r.SizeX(), r.SizeY()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			best := r.GetF64(x, y, 0)
			found := false
			for _, sh := range shifts {
				nx, ny := x+sh[0], y+sh[1]
				if nx < 0 || nx >= w || ny < 0 || ny >= h {
					continue
				}
				v := r.GetF64(nx, ny, 0)
				if !found || v > best {
					best = v
					found = true
				}
			}
			if !found {
				best = r.GetF64(x, y, 0)
			}
			out.SetUnchecked2(x, y, best)
		}
	}
	return out
}

func bruteForceErosion2D(r *raster.Raster, shifts [][3]int) *raster.Raster {
	out := raster.New2D(r.Kind(), r.SizeX(), r.SizeY())
	w, h := r.SizeX(), r.SizeY()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			best := r.GetF64(x, y, 0)
			found := false
			for _, sh := range shifts {
				nx, ny := x+sh[0], y+sh[1]
				if nx < 0 || nx >= w || ny < 0 || ny >= h {
					continue
				}
				v := r.GetF64(nx, ny, 0)
				if !found || v < best {
					best = v
					found = true
				}
			}
			if !found {
				best = r.GetF64(x, y, 0)
			}
			out.SetUnchecked2(x, y, best)
		}
	}
	return out
}

func bruteForceDilation3D(r *raster.Raster, shifts [][3]int) *raster.Raster {
	out := raster.New3D(r.Kind(), r.SizeX(), r.SizeY(), r.SizeZ())
	w, h, d := r.SizeX(), r.SizeY(), r.SizeZ()
	for z := 0; z < d; z++ {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				best := r.GetF64(x, y, z)
				found := false
				for _, sh := range shifts {
					nx, ny, nz := x+sh[0], y+sh[1], z+sh[2]
					if nx < 0 || nx >= w || ny < 0 || ny >= h || nz < 0 || nz >= d {
						continue
					}
					v := r.GetF64(nx, ny, nz)
					if !found || v > best {
						best = v
						found = true
					}
				}
				if !found {
					best = r.GetF64(x, y, z)
				}
				out.SetUnchecked3(x, y, z, best)
			}
		}
	}
	return out
}

func bruteForceErosion3D(r *raster.Raster, shifts [][3]int) *raster.Raster {
	out := raster.New3D(r.Kind(), r.SizeX(), r.SizeY(), r.SizeZ())
	w, h, d := r.SizeX(), r.SizeY(), r.SizeZ()
	for z := 0; z < d; z++ {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				best := r.GetF64(x, y, z)
				found := false
				for _, sh := range shifts {
					nx, ny, nz := x+sh[0], y+sh[1], z+sh[2]
					if nx < 0 || nx >= w || ny < 0 || ny >= h || nz < 0 || nz >= d {
						continue
					}
					v := r.GetF64(nx, ny, nz)
					if !found || v < best {
						best = v
						found = true
					}
				}
				if !found {
					best = r.GetF64(x, y, z)
				}
				out.SetUnchecked3(x, y, z, best)
			}
		}
	}
	return out
}

// reversedShape is a plain offset-list Strel, used to realize Reverse()
// for shapes whose footprint is not self-symmetric under point reflection
// (rectangles/cuboids with an even extent along some axis).
type reversedShape struct {
	shifts [][3]int
	is3D   bool
}

func (r *reversedShape) Is3D() bool       { return r.is3D }
func (r *reversedShape) Shifts() [][3]int { return r.shifts }
func (r *reversedShape) Size() [3]int     { sz, _ := sizeAndOffset(r.shifts); return sz }
func (r *reversedShape) Offset() [3]int   { _, off := sizeAndOffset(r.shifts); return off }
func (r *reversedShape) Mask() *raster.Raster { return maskFromShifts(r.shifts, r.is3D) }
func (r *reversedShape) Reverse() Strel       { return &reversedShape{shifts: reverseShifts(r.shifts), is3D: r.is3D} }

func (r *reversedShape) Dilation(rr *raster.Raster) (*raster.Raster, error) {
	if err := checkDimension(r, rr); err != nil {
		return nil, err
	}
	if r.is3D {
		return bruteForceDilation3D(rr, r.shifts), nil
	}
	return bruteForceDilation2D(rr, r.shifts), nil
}

func (r *reversedShape) Erosion(rr *raster.Raster) (*raster.Raster, error) {
	if err := checkDimension(r, rr); err != nil {
		return nil, err
	}
	if r.is3D {
		return bruteForceErosion3D(rr, r.shifts), nil
	}
	return bruteForceErosion2D(rr, r.shifts), nil
}

func (r *reversedShape) Opening(rr *raster.Raster) (*raster.Raster, error) { return OpeningVia(r, rr) }
func (r *reversedShape) Closing(rr *raster.Raster) (*raster.Raster, error) { return ClosingVia(r, rr) }

// reverseShifts returns the point-symmetric counterpart of a shift list.
func reverseShifts(shifts [][3]int) [][3]int {
	out := make([][3]int, len(shifts))
	for i, s := range shifts {
		out[i] = [3]int{-s[0], -s[1], -s[2]}
	}
	return out
}

// boundingBox returns the elementwise min/max of a shift list.
func boundingBox(shifts [][3]int) (min, max [3]int) {
	for _, s := range shifts {
		for i := 0; i < 3; i++ {
			if s[i] < min[i] {
				min[i] = s[i]
			}
			if s[i] > max[i] {
				max[i] = s[i]
			}
		}
	}
	return min, max
}

// sizeAndOffset returns the bounding-box size and the anchor's offset
// (position of the origin) within that bounding box, for Size()/Offset().
func sizeAndOffset(shifts [][3]int) (size, offset [3]int) {
	min, max := boundingBox(shifts)
	for i := 0; i < 3; i++ {
		size[i] = max[i] - min[i] + 1
		offset[i] = -min[i]
	}
	return size, offset
}

// maskFromShifts builds a 0/255 indicator raster for a shift list, sized
// to the bounding box of the shifts with an anchor at the origin.
func maskFromShifts(shifts [][3]int, is3D bool) *raster.Raster {
	minX, maxX, minY, maxY, minZ, maxZ := 0, 0, 0, 0, 0, 0
	for _, s := range shifts {
		if s[0] < minX {
			minX = s[0]
		}
		if s[0] > maxX {
			maxX = s[0]
		}
		if s[1] < minY {
			minY = s[1]
		}
		if s[1] > maxY {
			maxY = s[1]
		}
		if s[2] < minZ {
			minZ = s[2]
		}
		if s[2] > maxZ {
			maxZ = s[2]
		}
	}
	w, h := maxX-minX+1, maxY-minY+1
	if is3D {
		d := maxZ - minZ + 1
		m := raster.New3D(raster.U8, w, h, d)
		m.SetUnchecked3(-minX, -minY, -minZ, raster.Foreground)
		for _, s := range shifts {
			m.SetUnchecked3(s[0]-minX, s[1]-minY, s[2]-minZ, raster.Foreground)
		}
		return m
	}
	m := raster.New2D(raster.U8, w, h)
	m.SetUnchecked2(-minX, -minY, raster.Foreground)
	for _, s := range shifts {
		m.SetUnchecked2(s[0]-minX, s[1]-minY, raster.Foreground)
	}
	return m
}
