package reconstruct

import (
	"context"
	"testing"

	"github.com/Fepozopo/morphcore/pkg/raster"
)

func buildU8(w, h int, vals []float64) *raster.Raster {
	r := raster.New2D(raster.U8, w, h)
	i := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r.SetUnchecked2(x, y, vals[i])
			i++
		}
	}
	return r
}

func rasterEqual(a, b *raster.Raster) bool {
	if !a.SameShape(b) {
		return false
	}
	for z := 0; z < a.SizeZ(); z++ {
		for y := 0; y < a.SizeY(); y++ {
			for x := 0; x < a.SizeX(); x++ {
				if a.GetF64(x, y, z) != b.GetF64(x, y, z) {
					return false
				}
			}
		}
	}
	return true
}

// TestReconstructionFillsOnlyConnectedRegion verifies that
// a 5x5 mask with two disjoint 2x2 foreground blobs, seeded
// only at the top-left blob, must reconstruct only that blob.
func TestReconstructionFillsOnlyConnectedRegion(t *testing.T) {
	mask := buildU8(5, 5, []float64{
		200, 200, 0, 0, 0,
		200, 200, 0, 0, 0,
		0, 0, 0, 0, 0,
		0, 0, 0, 200, 200,
		0, 0, 0, 200, 200,
	})
	marker := raster.New2D(raster.U8, 5, 5)
	marker.SetUnchecked2(0, 0, 200)

	out, err := ReconstructByDilation(context.Background(), nil, marker, mask, raster.C4)
	if err != nil {
		t.Fatalf("ReconstructByDilation: %v", err)
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if out.GetF64(x, y, 0) != 200 {
				t.Errorf("expected top-left blob pixel (%d,%d) to be 200, got %v", x, y, out.GetF64(x, y, 0))
			}
		}
	}
	for y := 3; y < 5; y++ {
		for x := 3; x < 5; x++ {
			if out.GetF64(x, y, 0) != 0 {
				t.Errorf("expected bottom-right blob pixel (%d,%d) to stay 0, got %v", x, y, out.GetF64(x, y, 0))
			}
		}
	}
}

// TestReconstructionBoundedByMarkerAndMask checks the bound marker <=
// reconstruction <= mask, pointwise.
func TestReconstructionBoundedByMarkerAndMask(t *testing.T) {
	mask := buildU8(6, 6, []float64{
		10, 20, 30, 40, 50, 60,
		15, 100, 100, 100, 45, 55,
		5, 100, 200, 100, 70, 80,
		12, 100, 100, 100, 42, 52,
		9, 19, 29, 39, 49, 59,
		1, 2, 3, 4, 5, 6,
	})
	marker := raster.New2D(raster.U8, 6, 6)
	marker.SetUnchecked2(2, 2, 200)

	out, err := ReconstructByDilation(context.Background(), nil, marker, mask, raster.C8)
	if err != nil {
		t.Fatalf("ReconstructByDilation: %v", err)
	}
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			v := out.GetF64(x, y, 0)
			if v < marker.GetF64(x, y, 0) {
				t.Errorf("reconstruction below marker at (%d,%d)", x, y)
			}
			if v > mask.GetF64(x, y, 0) {
				t.Errorf("reconstruction above mask at (%d,%d)", x, y)
			}
		}
	}
}

// TestReconstructionIdempotent checks that reconstructing the
// reconstruction (using it as both marker and mask) changes nothing.
func TestReconstructionIdempotent(t *testing.T) {
	mask := buildU8(5, 5, []float64{
		200, 200, 0, 0, 0,
		200, 200, 0, 0, 0,
		0, 0, 0, 0, 0,
		0, 0, 0, 200, 200,
		0, 0, 0, 200, 200,
	})
	marker := raster.New2D(raster.U8, 5, 5)
	marker.SetUnchecked2(0, 0, 200)

	out, err := ReconstructByDilation(context.Background(), nil, marker, mask, raster.C4)
	if err != nil {
		t.Fatalf("ReconstructByDilation: %v", err)
	}
	twice, err := ReconstructByDilation(context.Background(), nil, out, out, raster.C4)
	if err != nil {
		t.Fatalf("ReconstructByDilation twice: %v", err)
	}
	if !rasterEqual(out, twice) {
		t.Errorf("reconstruction is not idempotent")
	}
}

func TestReconstructionRejectsShapeMismatch(t *testing.T) {
	marker := raster.New2D(raster.U8, 3, 3)
	mask := raster.New2D(raster.U8, 4, 4)
	_, err := ReconstructByDilation(context.Background(), nil, marker, mask, raster.C4)
	if err == nil {
		t.Fatalf("expected shape mismatch error")
	}
}

func TestReconstructionRejectsPreconditionViolation(t *testing.T) {
	marker := buildU8(3, 3, []float64{
		10, 10, 10,
		10, 200, 10,
		10, 10, 10,
	})
	mask := raster.New2D(raster.U8, 3, 3)
	mask.Fill(50)
	_, err := ReconstructByDilation(context.Background(), nil, marker, mask, raster.C4)
	if err == nil {
		t.Fatalf("expected precondition violation (marker > mask)")
	}
}

func TestReconstructByErosionIsDual(t *testing.T) {
	mask := buildU8(5, 5, []float64{
		55, 55, 255, 255, 255,
		55, 55, 255, 255, 255,
		255, 255, 255, 255, 255,
		255, 255, 255, 55, 55,
		255, 255, 255, 55, 55,
	})
	marker := raster.New2D(raster.U8, 5, 5)
	marker.Fill(255)
	marker.SetUnchecked2(0, 0, 55)

	out, err := ReconstructByErosion(context.Background(), nil, marker, mask, raster.C4)
	if err != nil {
		t.Fatalf("ReconstructByErosion: %v", err)
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if out.GetF64(x, y, 0) != 55 {
				t.Errorf("expected top-left blob pixel (%d,%d) to be 55, got %v", x, y, out.GetF64(x, y, 0))
			}
		}
	}
	for y := 3; y < 5; y++ {
		for x := 3; x < 5; x++ {
			if out.GetF64(x, y, 0) != 255 {
				t.Errorf("expected bottom-right blob pixel (%d,%d) to stay 255, got %v", x, y, out.GetF64(x, y, 0))
			}
		}
	}
}
