package strel

import (
	"context"

	"github.com/Fepozopo/morphcore/pkg/distance"
	"github.com/Fepozopo/morphcore/pkg/raster"
)

// Ellipsoid is a 3D ball with distinct per-axis radii. Binary rasters use
// the distance-transform-backed path, approximated by an isotropic ball
// whose radius is the mean of the three radii; any other raster kind falls
// back to the direct offset-list footprint.
type Ellipsoid struct {
	rx, ry, rz float64
	offsets    [][3]int
}

// NewEllipsoid builds an ellipsoid structuring element with independent
// radii along x, y and z.
func NewEllipsoid(rx, ry, rz float64) (*Ellipsoid, error) {
	if rx < 0 || ry < 0 || rz < 0 {
		return nil, raster.NewInvalidInput("ellipsoid radii must be non-negative")
	}
	irx, iry, irz := int(rx)+1, int(ry)+1, int(rz)+1
	var offsets [][3]int
	for dz := -irz; dz <= irz; dz++ {
		for dy := -iry; dy <= iry; dy++ {
			for dx := -irx; dx <= irx; dx++ {
				if ellipsoidContains(dx, dy, dz, rx, ry, rz) {
					offsets = append(offsets, [3]int{dx, dy, dz})
				}
			}
		}
	}
	return &Ellipsoid{rx: rx, ry: ry, rz: rz, offsets: offsets}, nil
}

func ellipsoidContains(dx, dy, dz int, rx, ry, rz float64) bool {
	var sum float64
	if rx > 0 {
		sum += float64(dx*dx) / (rx * rx)
	} else if dx != 0 {
		return false
	}
	if ry > 0 {
		sum += float64(dy*dy) / (ry * ry)
	} else if dy != 0 {
		return false
	}
	if rz > 0 {
		sum += float64(dz*dz) / (rz * rz)
	} else if dz != 0 {
		return false
	}
	return sum <= 1+1e-9
}

func (s *Ellipsoid) Is3D() bool         { return true }
func (s *Ellipsoid) Shifts() [][3]int   { return s.offsets }
func (s *Ellipsoid) Size() [3]int       { sz, _ := sizeAndOffset(s.offsets); return sz }
func (s *Ellipsoid) Offset() [3]int     { _, off := sizeAndOffset(s.offsets); return off }
func (s *Ellipsoid) Mask() *raster.Raster { return maskFromShifts(s.offsets, true) }
func (s *Ellipsoid) Reverse() Strel     { return s }

func (s *Ellipsoid) Dilation(r *raster.Raster) (*raster.Raster, error) {
	if err := checkDimension(s, r); err != nil {
		return nil, err
	}
	if r.IsBinary() {
		radius := (s.rx + s.ry + s.rz) / 3
		return distance.BinaryDilationDisk(context.Background(), nil, r, radius, distance.Borgefors345)
	}
	return bruteForceDilation3D(r, s.offsets), nil
}

func (s *Ellipsoid) Erosion(r *raster.Raster) (*raster.Raster, error) {
	if err := checkDimension(s, r); err != nil {
		return nil, err
	}
	if r.IsBinary() {
		radius := (s.rx + s.ry + s.rz) / 3
		return distance.BinaryErosionDisk(context.Background(), nil, r, radius, distance.Borgefors345)
	}
	return bruteForceErosion3D(r, s.offsets), nil
}

func (s *Ellipsoid) Opening(r *raster.Raster) (*raster.Raster, error) { return OpeningVia(s, r) }
func (s *Ellipsoid) Closing(r *raster.Raster) (*raster.Raster, error) { return ClosingVia(s, r) }
