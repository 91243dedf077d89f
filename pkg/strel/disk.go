package strel

import (
	"context"

	"github.com/Fepozopo/morphcore/pkg/distance"
	"github.com/Fepozopo/morphcore/pkg/raster"
)

// Disk is the 2D Euclidean ball of a given radius. Binary rasters are
// dilated/eroded through the distance-transform path (pkg/distance); any
// other raster kind falls back to the direct offset-list footprint, since
// the distance-transform shortcut only holds for binary inputs.
type Disk struct {
	radius  float64
	offsets [][3]int
}

// NewDisk builds a disk structuring element of the given (possibly
// fractional) radius.
func NewDisk(radius float64) (*Disk, error) {
	if radius < 0 {
		return nil, raster.NewInvalidInput("disk radius must be non-negative")
	}
	ir := int(radius)
	var offsets [][3]int
	for dy := -ir - 1; dy <= ir+1; dy++ {
		for dx := -ir - 1; dx <= ir+1; dx++ {
			if float64(dx*dx+dy*dy) <= radius*radius+1e-9 {
				offsets = append(offsets, [3]int{dx, dy, 0})
			}
		}
	}
	return &Disk{radius: radius, offsets: offsets}, nil
}

func (s *Disk) Is3D() bool         { return false }
func (s *Disk) Shifts() [][3]int   { return s.offsets }
func (s *Disk) Size() [3]int       { sz, _ := sizeAndOffset(s.offsets); return sz }
func (s *Disk) Offset() [3]int     { _, off := sizeAndOffset(s.offsets); return off }
func (s *Disk) Mask() *raster.Raster { return maskFromShifts(s.offsets, false) }
func (s *Disk) Reverse() Strel     { return s } // disks are symmetric under point reflection

func (s *Disk) Dilation(r *raster.Raster) (*raster.Raster, error) {
	if err := checkDimension(s, r); err != nil {
		return nil, err
	}
	if r.IsBinary() {
		return distance.BinaryDilationDisk(context.Background(), nil, r, s.radius, distance.Chamfer57_11)
	}
	return bruteForceDilation2D(r, s.offsets), nil
}

func (s *Disk) Erosion(r *raster.Raster) (*raster.Raster, error) {
	if err := checkDimension(s, r); err != nil {
		return nil, err
	}
	if r.IsBinary() {
		return distance.BinaryErosionDisk(context.Background(), nil, r, s.radius, distance.Chamfer57_11)
	}
	return bruteForceErosion2D(r, s.offsets), nil
}

func (s *Disk) Opening(r *raster.Raster) (*raster.Raster, error) { return OpeningVia(s, r) }
func (s *Disk) Closing(r *raster.Raster) (*raster.Raster, error) { return ClosingVia(s, r) }
