package extrema

import (
	"context"

	"github.com/Fepozopo/morphcore/pkg/floodfill"
	"github.com/Fepozopo/morphcore/pkg/progress"
	"github.com/Fepozopo/morphcore/pkg/raster"
)

// RegionalMaximaFloodFill computes regional maxima without reconstruction:
// scan the image, and at each pixel with a strictly greater neighbor,
// flood-fill its connected same-valued plateau into a "not a maximum"
// marker. Plateaus never marked are the regional maxima. Produces the same
// binary result as RegionalMaxima; the flood-fill route avoids the two
// full-image reconstruction scans when only the extrema mask is needed.
func RegionalMaximaFloodFill(ctx context.Context, rep *progress.Reporter, img *raster.Raster, conn raster.Connectivity) (*raster.Raster, error) {
	return regionalExtremaFloodFill(ctx, rep, img, conn, true)
}

// RegionalMinimaFloodFill is the dual of RegionalMaximaFloodFill.
func RegionalMinimaFloodFill(ctx context.Context, rep *progress.Reporter, img *raster.Raster, conn raster.Connectivity) (*raster.Raster, error) {
	return regionalExtremaFloodFill(ctx, rep, img, conn, false)
}

func regionalExtremaFloodFill(ctx context.Context, rep *progress.Reporter, img *raster.Raster, conn raster.Connectivity, byMaxima bool) (*raster.Raster, error) {
	if img.Is3D() {
		if !conn.Valid3D() {
			return nil, raster.NewInvalidConnectivity(int(conn))
		}
	} else if !conn.Valid2D() {
		return nil, raster.NewInvalidConnectivity(int(conn))
	}
	w, h, d := img.SizeX(), img.SizeY(), img.SizeZ()
	notExtreme := newLike(img, raster.U8)

	beats := func(neighbor, v float64) bool {
		if byMaxima {
			return neighbor > v
		}
		return neighbor < v
	}

	for z := 0; z < d; z++ {
		for y := 0; y < h; y++ {
			if progress.Cancelled(ctx) {
				return nil, raster.NewCancelled("regional extrema")
			}
			for x := 0; x < w; x++ {
				if notExtreme.GetF64(x, y, z) == raster.Foreground {
					continue
				}
				v := img.GetF64(x, y, z)
				dominated := false
				check := func(nx, ny, nz int) {
					if beats(img.GetF64(nx, ny, nz), v) {
						dominated = true
					}
				}
				if img.Is3D() {
					raster.ForEachNeighbor3D(img, x, y, z, conn, check)
				} else {
					raster.ForEachNeighbor2D(img, x, y, conn, func(nx, ny int) { check(nx, ny, 0) })
				}
				if !dominated {
					continue
				}
				var err error
				if img.Is3D() {
					err = floodfill.FloodFillInto3D(ctx, rep, img, notExtreme, x, y, z, raster.Foreground, conn)
				} else {
					err = floodfill.FloodFillInto2D(ctx, rep, img, notExtreme, x, y, raster.Foreground, conn)
				}
				if err != nil {
					return nil, err
				}
			}
		}
		rep.EmitProgress(float64(z+1) / float64(d))
	}

	out := newLike(img, raster.U8)
	for z := 0; z < d; z++ {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if notExtreme.GetF64(x, y, z) != raster.Foreground {
					out.SetUnchecked3(x, y, z, raster.Foreground)
				}
			}
		}
	}
	return out, nil
}
