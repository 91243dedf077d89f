package morph

import (
	"context"

	"github.com/Fepozopo/morphcore/pkg/progress"
	"github.com/Fepozopo/morphcore/pkg/raster"
	"github.com/Fepozopo/morphcore/pkg/reconstruct"
)

// FillHoles fills the background regions of a binary raster that are not
// connected to the image border. The marker is Foreground everywhere
// except on the border, where it takes the input's value; reconstructing
// the input by erosion from that marker floods Background inward from the
// border only, so enclosed holes keep the Foreground marker value.
func FillHoles(ctx context.Context, rep *progress.Reporter, binary *raster.Raster, conn raster.Connectivity) (*raster.Raster, error) {
	if !binary.IsBinary() {
		return nil, raster.NewInvalidInput("fill holes requires a binary raster")
	}
	w, h, d := binary.SizeX(), binary.SizeY(), binary.SizeZ()
	marker := binary.Duplicate()
	marker.Fill(raster.Foreground)
	for z := 0; z < d; z++ {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				onBorder := x == 0 || x == w-1 || y == 0 || y == h-1
				if binary.Is3D() {
					onBorder = onBorder || z == 0 || z == d-1
				}
				if onBorder {
					marker.SetUnchecked3(x, y, z, binary.GetF64(x, y, z))
				}
			}
		}
	}
	return reconstruct.ReconstructByErosion(ctx, rep, marker, binary, conn)
}
