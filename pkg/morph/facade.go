// Package morph is the top-level facade of the module: the operation,
// shape, and reconstruction enumerations visible at the API boundary, the
// dispatcher routing each operation to its engine, shape constructors for
// the full 2D/3D catalogue, the per-channel RGB boundary adapter, and the
// derived fill-holes utility.
package morph

import (
	"context"
	"fmt"

	"github.com/Fepozopo/morphcore/pkg/progress"
	"github.com/Fepozopo/morphcore/pkg/raster"
	"github.com/Fepozopo/morphcore/pkg/reconstruct"
	"github.com/Fepozopo/morphcore/pkg/strel"
)

// Connectivity re-exports the raster neighbor relation so facade callers
// need not import pkg/raster for the enumeration alone.
type Connectivity = raster.Connectivity

const (
	C4  = raster.C4
	C8  = raster.C8
	C6  = raster.C6
	C26 = raster.C26
)

// MorphOp enumerates the morphological operations the facade can apply
// with a structuring element.
type MorphOp int

const (
	Erosion MorphOp = iota
	Dilation
	Opening
	Closing
	WhiteTopHat
	BlackTopHat
	Gradient
	Laplacian
	InternalGradient
	ExternalGradient
)

func (op MorphOp) String() string {
	switch op {
	case Erosion:
		return "erosion"
	case Dilation:
		return "dilation"
	case Opening:
		return "opening"
	case Closing:
		return "closing"
	case WhiteTopHat:
		return "white top hat"
	case BlackTopHat:
		return "black top hat"
	case Gradient:
		return "gradient"
	case Laplacian:
		return "laplacian"
	case InternalGradient:
		return "internal gradient"
	case ExternalGradient:
		return "external gradient"
	}
	return fmt.Sprintf("morphop(%d)", int(op))
}

// Apply routes op to the engine call for the given structuring element and
// returns a newly allocated result raster.
func Apply(op MorphOp, r *raster.Raster, s strel.Strel) (*raster.Raster, error) {
	switch op {
	case Erosion:
		return s.Erosion(r)
	case Dilation:
		return s.Dilation(r)
	case Opening:
		return s.Opening(r)
	case Closing:
		return s.Closing(r)
	case WhiteTopHat:
		return strel.WhiteTopHat(s, r)
	case BlackTopHat:
		return strel.BlackTopHat(s, r)
	case Gradient:
		return strel.Gradient(s, r)
	case Laplacian:
		return strel.Laplacian(s, r)
	case InternalGradient:
		return strel.InternalGradient(s, r)
	case ExternalGradient:
		return strel.ExternalGradient(s, r)
	}
	return nil, raster.NewInvalidInput(fmt.Sprintf("unknown operation %d", int(op)))
}

// Shape2D enumerates the 2D structuring-element shapes.
type Shape2D int

const (
	Disk Shape2D = iota
	Square
	Diamond
	Octagon
	LineHorizontal
	LineVertical
	LineDiag45
	LineDiag135
)

func (s Shape2D) String() string {
	switch s {
	case Disk:
		return "disk"
	case Square:
		return "square"
	case Diamond:
		return "diamond"
	case Octagon:
		return "octagon"
	case LineHorizontal:
		return "horizontal line"
	case LineVertical:
		return "vertical line"
	case LineDiag45:
		return "line 45 degrees"
	case LineDiag135:
		return "line 135 degrees"
	}
	return fmt.Sprintf("shape2d(%d)", int(s))
}

// NewStrel2D builds the named 2D shape from its diameter (extent in
// pixels): squares use it as the side and lines as the length. Diamond and
// octagon take radius (diameter-1)/2 and the disk takes radius diameter/2,
// so an odd diameter spans exactly diameter pixels, while an even one spans
// diameter-1 pixels for diamond and octagon and diameter+1 for the disk.
func NewStrel2D(shape Shape2D, diameter int) (strel.Strel, error) {
	if diameter <= 0 {
		return nil, raster.NewInvalidInput("structuring element diameter must be positive")
	}
	radius := (diameter - 1) / 2
	switch shape {
	case Disk:
		return strel.NewDisk(float64(diameter) / 2)
	case Square:
		return strel.NewSquare(diameter)
	case Diamond:
		return strel.NewDiamond(radius)
	case Octagon:
		return strel.NewOctagon(radius)
	case LineHorizontal:
		return strel.NewLineHorizontal(diameter)
	case LineVertical:
		return strel.NewLineVertical(diameter)
	case LineDiag45:
		return strel.NewLineDiag45(diameter)
	case LineDiag135:
		return strel.NewLineDiag135(diameter)
	}
	return nil, raster.NewInvalidInput(fmt.Sprintf("unknown 2D shape %d", int(shape)))
}

// Shape3D enumerates the 3D structuring-element shapes. The planar shapes
// (square, diamond, octagon, in-plane lines) act slice-wise: each z-slice
// is processed independently with the corresponding 2D shape.
type Shape3D int

const (
	Ball Shape3D = iota
	Cube
	Square3D
	Diamond3D
	Octagon3D
	LineX3D
	LineY3D
	LineZ3D
	LineDiag45_3D
	LineDiag135_3D
)

func (s Shape3D) String() string {
	switch s {
	case Ball:
		return "ball"
	case Cube:
		return "cube"
	case Square3D:
		return "square"
	case Diamond3D:
		return "diamond"
	case Octagon3D:
		return "octagon"
	case LineX3D:
		return "x line"
	case LineY3D:
		return "y line"
	case LineZ3D:
		return "z line"
	case LineDiag45_3D:
		return "line 45 degrees"
	case LineDiag135_3D:
		return "line 135 degrees"
	}
	return fmt.Sprintf("shape3d(%d)", int(s))
}

// NewStrel3D builds the named 3D shape from its diameter, with the same
// diameter conventions as NewStrel2D. Planar shapes are lifted into 3D by
// a depth-1 extrusion.
func NewStrel3D(shape Shape3D, diameter int) (strel.Strel, error) {
	if diameter <= 0 {
		return nil, raster.NewInvalidInput("structuring element diameter must be positive")
	}
	switch shape {
	case Ball:
		return strel.NewBall(float64(diameter) / 2)
	case Cube:
		return strel.NewCube(diameter)
	case LineX3D:
		return strel.NewLineX(diameter)
	case LineY3D:
		return strel.NewLineY(diameter)
	case LineZ3D:
		return strel.NewLineZ(diameter)
	}
	var base strel.Strel
	var err error
	switch shape {
	case Square3D:
		base, err = NewStrel2D(Square, diameter)
	case Diamond3D:
		base, err = NewStrel2D(Diamond, diameter)
	case Octagon3D:
		base, err = NewStrel2D(Octagon, diameter)
	case LineDiag45_3D:
		base, err = NewStrel2D(LineDiag45, diameter)
	case LineDiag135_3D:
		base, err = NewStrel2D(LineDiag135, diameter)
	default:
		return nil, raster.NewInvalidInput(fmt.Sprintf("unknown 3D shape %d", int(shape)))
	}
	if err != nil {
		return nil, err
	}
	return strel.NewExtruded(base, 1)
}

// ReconstructionKind selects the direction of a geodesic reconstruction.
type ReconstructionKind int

const (
	ByDilation ReconstructionKind = iota
	ByErosion
)

func (k ReconstructionKind) String() string {
	if k == ByErosion {
		return "by erosion"
	}
	return "by dilation"
}

// Reconstruct runs the geodesic reconstruction of mask from marker in the
// chosen direction.
func Reconstruct(ctx context.Context, rep *progress.Reporter, kind ReconstructionKind, marker, mask *raster.Raster, conn raster.Connectivity) (*raster.Raster, error) {
	if kind == ByErosion {
		return reconstruct.ReconstructByErosion(ctx, rep, marker, mask, conn)
	}
	return reconstruct.ReconstructByDilation(ctx, rep, marker, mask, conn)
}
