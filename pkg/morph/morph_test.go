package morph

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Fepozopo/morphcore/pkg/progress"
	"github.com/Fepozopo/morphcore/pkg/raster"
)

// TestDilationOfSinglePixel verifies that dilating a
// lone pixel with a 3x3 square grows it into the 3x3 block around it.
func TestDilationOfSinglePixel(t *testing.T) {
	img := raster.New2D(raster.U8, 5, 5)
	img.SetUnchecked2(2, 2, 255)
	s, err := NewStrel2D(Square, 3)
	if err != nil {
		t.Fatalf("NewStrel2D: %v", err)
	}
	out, err := Apply(Dilation, img, s)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			want := 0.0
			if x >= 1 && x <= 3 && y >= 1 && y <= 3 {
				want = 255
			}
			if v := out.GetF64(x, y, 0); v != want {
				t.Errorf("dilation at (%d,%d): got %v want %v", x, y, v, want)
			}
		}
	}
}

// TestErosionOfRectangle verifies that eroding a 5x5
// rectangle with a 3x3 square shrinks it to the 3x3 core.
func TestErosionOfRectangle(t *testing.T) {
	img := raster.New2D(raster.U8, 7, 7)
	for y := 1; y <= 5; y++ {
		for x := 1; x <= 5; x++ {
			img.SetUnchecked2(x, y, 255)
		}
	}
	s, err := NewStrel2D(Square, 3)
	if err != nil {
		t.Fatalf("NewStrel2D: %v", err)
	}
	out, err := Apply(Erosion, img, s)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	for y := 0; y < 7; y++ {
		for x := 0; x < 7; x++ {
			want := 0.0
			if x >= 2 && x <= 4 && y >= 2 && y <= 4 {
				want = 255
			}
			if v := out.GetF64(x, y, 0); v != want {
				t.Errorf("erosion at (%d,%d): got %v want %v", x, y, v, want)
			}
		}
	}
}

// TestFillHolesFillsEnclosedInterior verifies that the 4x4 interior enclosed
// by an annulus of thickness 2 is filled, while the outer background
// stays untouched.
func TestFillHolesFillsEnclosedInterior(t *testing.T) {
	img := raster.New2D(raster.U8, 10, 10)
	for y := 1; y <= 8; y++ {
		for x := 1; x <= 8; x++ {
			img.SetUnchecked2(x, y, 255)
		}
	}
	for y := 3; y <= 6; y++ {
		for x := 3; x <= 6; x++ {
			img.SetUnchecked2(x, y, 0)
		}
	}
	out, err := FillHoles(context.Background(), nil, img, raster.C4)
	if err != nil {
		t.Fatalf("FillHoles: %v", err)
	}
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			want := 0.0
			if x >= 1 && x <= 8 && y >= 1 && y <= 8 {
				want = 255
			}
			if v := out.GetF64(x, y, 0); v != want {
				t.Errorf("fill holes at (%d,%d): got %v want %v", x, y, v, want)
			}
		}
	}
}

func TestFillHolesRejectsGrayscale(t *testing.T) {
	img := raster.New2D(raster.U8, 4, 4)
	img.SetUnchecked2(1, 1, 100)
	if _, err := FillHoles(context.Background(), nil, img, raster.C4); !errors.Is(err, raster.ErrInvalidInput) {
		t.Fatalf("expected invalid input for non-binary raster, got %v", err)
	}
}

func TestApplyRejectsUnknownOp(t *testing.T) {
	img := raster.New2D(raster.U8, 3, 3)
	s, _ := NewStrel2D(Square, 3)
	if _, err := Apply(MorphOp(99), img, s); !errors.Is(err, raster.ErrInvalidInput) {
		t.Fatalf("expected invalid input for unknown op, got %v", err)
	}
}

func TestApplyRejects2DStrelOn3DRaster(t *testing.T) {
	vol := raster.New3D(raster.U8, 3, 3, 3)
	s, _ := NewStrel2D(Square, 3)
	if _, err := Apply(Dilation, vol, s); !errors.Is(err, raster.ErrShapeMismatch) {
		t.Fatalf("expected shape mismatch, got %v", err)
	}
}

// Every operation in the registry must dispatch, and the registry names
// must agree with the op's String form up to spelling style.
func TestOperationsRegistryDispatches(t *testing.T) {
	img := raster.New2D(raster.U8, 5, 5)
	img.SetUnchecked2(2, 2, 200)
	s, err := NewStrel2D(Square, 3)
	if err != nil {
		t.Fatalf("NewStrel2D: %v", err)
	}
	if len(Operations) != 10 {
		t.Fatalf("expected 10 registered operations, got %d", len(Operations))
	}
	seen := map[MorphOp]bool{}
	for _, spec := range Operations {
		if seen[spec.Op] {
			t.Errorf("operation %v registered twice", spec.Op)
		}
		seen[spec.Op] = true
		if got, want := strings.ToLower(spec.Name), strings.ReplaceAll(spec.Op.String(), " ", ""); got != want {
			t.Errorf("registry name %q does not match op string %q", spec.Name, spec.Op.String())
		}
		out, err := Apply(spec.Op, img, s)
		if err != nil {
			t.Errorf("Apply(%s): %v", spec.Name, err)
			continue
		}
		if out == nil || out.SizeX() != 5 || out.SizeY() != 5 {
			t.Errorf("Apply(%s): unexpected output shape", spec.Name)
		}
	}
}

func TestNewStrel2DAllShapes(t *testing.T) {
	shapes := []Shape2D{Disk, Square, Diamond, Octagon, LineHorizontal, LineVertical, LineDiag45, LineDiag135}
	for _, shape := range shapes {
		s, err := NewStrel2D(shape, 5)
		if err != nil {
			t.Errorf("NewStrel2D(%v, 5): %v", shape, err)
			continue
		}
		if s.Is3D() {
			t.Errorf("NewStrel2D(%v) returned a 3D element", shape)
		}
	}
	if _, err := NewStrel2D(Square, 0); !errors.Is(err, raster.ErrInvalidInput) {
		t.Errorf("expected invalid input for zero diameter, got %v", err)
	}
}

func TestNewStrel3DAllShapes(t *testing.T) {
	shapes := []Shape3D{Ball, Cube, Square3D, Diamond3D, Octagon3D, LineX3D, LineY3D, LineZ3D, LineDiag45_3D, LineDiag135_3D}
	for _, shape := range shapes {
		s, err := NewStrel3D(shape, 3)
		if err != nil {
			t.Errorf("NewStrel3D(%v, 3): %v", shape, err)
			continue
		}
		if !s.Is3D() {
			t.Errorf("NewStrel3D(%v) returned a 2D element", shape)
		}
	}
}

// Reconstruct must route to the right direction: by dilation grows the
// marker up to the mask, by erosion shrinks it down to the mask.
func TestReconstructRoutesByKind(t *testing.T) {
	mask := raster.New2D(raster.U8, 3, 3)
	mask.Fill(100)
	markerLow := raster.New2D(raster.U8, 3, 3)
	markerLow.SetUnchecked2(1, 1, 100)
	out, err := Reconstruct(context.Background(), nil, ByDilation, markerLow, mask, raster.C4)
	if err != nil {
		t.Fatalf("Reconstruct by dilation: %v", err)
	}
	if v := out.GetF64(0, 0, 0); v != 100 {
		t.Errorf("by-dilation should flood the plateau to 100, got %v", v)
	}

	markerHigh := raster.New2D(raster.U8, 3, 3)
	markerHigh.Fill(200)
	markerHigh.SetUnchecked2(1, 1, 100)
	out, err = Reconstruct(context.Background(), nil, ByErosion, markerHigh, mask, raster.C4)
	if err != nil {
		t.Fatalf("Reconstruct by erosion: %v", err)
	}
	if v := out.GetF64(0, 0, 0); v != 100 {
		t.Errorf("by-erosion should sink the plateau to 100, got %v", v)
	}
}

func TestRGBPackedRoundTrip(t *testing.T) {
	packed := []uint8{
		10, 20, 30, 40, 50, 60,
		70, 80, 90, 100, 110, 120,
	}
	im, err := RGBFromPacked(2, 2, packed)
	if err != nil {
		t.Fatalf("RGBFromPacked: %v", err)
	}
	got := im.Packed()
	for i := range packed {
		if got[i] != packed[i] {
			t.Fatalf("packed round trip mismatch at %d: got %d want %d", i, got[i], packed[i])
		}
	}
	if _, err := RGBFromPacked(2, 2, packed[:7]); !errors.Is(err, raster.ErrInvalidInput) {
		t.Fatalf("expected invalid input for short buffer, got %v", err)
	}
}

func TestApplyRGBProcessesChannelsIndependently(t *testing.T) {
	im := NewRGB(5, 5)
	im.R.SetUnchecked2(2, 2, 255)
	im.B.SetUnchecked2(0, 0, 255)
	s, err := NewStrel2D(Square, 3)
	if err != nil {
		t.Fatalf("NewStrel2D: %v", err)
	}

	rep := progress.NewReporter()
	var statuses []string
	rep.AddListener(progress.ListenerFuncs{Status: func(msg string) { statuses = append(statuses, msg) }})

	out, err := ApplyRGB(rep, Dilation, im, s)
	if err != nil {
		t.Fatalf("ApplyRGB: %v", err)
	}
	if v := out.R.GetF64(1, 1, 0); v != 255 {
		t.Errorf("red channel should dilate, got %v at (1,1)", v)
	}
	if v := out.G.GetF64(1, 1, 0); v != 0 {
		t.Errorf("green channel should stay empty, got %v", v)
	}
	if v := out.B.GetF64(1, 1, 0); v != 255 {
		t.Errorf("blue channel should dilate its corner pixel, got %v at (1,1)", v)
	}
	if len(statuses) != 3 {
		t.Fatalf("expected one status per channel pass, got %d (%v)", len(statuses), statuses)
	}
}
