package strel

import (
	"context"

	"github.com/Fepozopo/morphcore/pkg/distance"
	"github.com/Fepozopo/morphcore/pkg/raster"
)

// Ball is the 3D Euclidean ball of a given radius, the 3D analogue of Disk.
type Ball struct {
	radius  float64
	offsets [][3]int
}

// NewBall builds a ball structuring element of the given radius.
func NewBall(radius float64) (*Ball, error) {
	if radius < 0 {
		return nil, raster.NewInvalidInput("ball radius must be non-negative")
	}
	ir := int(radius)
	var offsets [][3]int
	for dz := -ir - 1; dz <= ir+1; dz++ {
		for dy := -ir - 1; dy <= ir+1; dy++ {
			for dx := -ir - 1; dx <= ir+1; dx++ {
				if float64(dx*dx+dy*dy+dz*dz) <= radius*radius+1e-9 {
					offsets = append(offsets, [3]int{dx, dy, dz})
				}
			}
		}
	}
	return &Ball{radius: radius, offsets: offsets}, nil
}

func (s *Ball) Is3D() bool         { return true }
func (s *Ball) Shifts() [][3]int   { return s.offsets }
func (s *Ball) Size() [3]int       { sz, _ := sizeAndOffset(s.offsets); return sz }
func (s *Ball) Offset() [3]int     { _, off := sizeAndOffset(s.offsets); return off }
func (s *Ball) Mask() *raster.Raster { return maskFromShifts(s.offsets, true) }
func (s *Ball) Reverse() Strel     { return s }

func (s *Ball) Dilation(r *raster.Raster) (*raster.Raster, error) {
	if err := checkDimension(s, r); err != nil {
		return nil, err
	}
	if r.IsBinary() {
		return distance.BinaryDilationDisk(context.Background(), nil, r, s.radius, distance.Borgefors345)
	}
	return bruteForceDilation3D(r, s.offsets), nil
}

func (s *Ball) Erosion(r *raster.Raster) (*raster.Raster, error) {
	if err := checkDimension(s, r); err != nil {
		return nil, err
	}
	if r.IsBinary() {
		return distance.BinaryErosionDisk(context.Background(), nil, r, s.radius, distance.Borgefors345)
	}
	return bruteForceErosion3D(r, s.offsets), nil
}

func (s *Ball) Opening(r *raster.Raster) (*raster.Raster, error) { return OpeningVia(s, r) }
func (s *Ball) Closing(r *raster.Raster) (*raster.Raster, error) { return ClosingVia(s, r) }
