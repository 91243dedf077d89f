package raster

import "testing"

func TestGetSet2D(t *testing.T) {
	r := New2D(U8, 5, 5)
	if err := r.Set2(2, 2, 255); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, err := r.Get2(2, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 255 {
		t.Fatalf("expected 255, got %v", v)
	}
}

func TestGet2DOutOfBounds(t *testing.T) {
	r := New2D(U8, 5, 5)
	if _, err := r.Get2(5, 0); err == nil {
		t.Fatalf("expected out of bounds error")
	}
}

func TestSetClampsToKindRange(t *testing.T) {
	r := New2D(U8, 1, 1)
	_ = r.Set2(0, 0, 300)
	v, _ := r.Get2(0, 0)
	if v != 255 {
		t.Fatalf("expected clamp to 255, got %v", v)
	}
}

func TestDuplicateIsIndependent(t *testing.T) {
	r := New2D(U8, 3, 3)
	_ = r.Set2(1, 1, 100)
	dup := r.Duplicate()
	_ = dup.Set2(1, 1, 200)
	v, _ := r.Get2(1, 1)
	if v != 100 {
		t.Fatalf("mutating duplicate affected original: %v", v)
	}
}

func TestFillAndIsBinary(t *testing.T) {
	r := New2D(U8, 4, 4)
	r.Fill(Foreground)
	if !r.IsBinary() {
		t.Fatalf("expected binary raster after Fill(255)")
	}
	_ = r.Set2(0, 0, 128)
	if r.IsBinary() {
		t.Fatalf("expected non-binary raster after setting 128")
	}
}

func TestForEachNeighbor2DBoundsRespected(t *testing.T) {
	r := New2D(U8, 3, 3)
	count := 0
	ForEachNeighbor2D(r, 0, 0, C8, func(nx, ny int) { count++ })
	if count != 3 {
		t.Fatalf("corner pixel under C8 should have 3 in-bounds neighbors, got %d", count)
	}
}

func TestForEachNeighbor3DCentre26(t *testing.T) {
	r := New3D(U8, 3, 3, 3)
	count := 0
	ForEachNeighbor3D(r, 1, 1, 1, C26, func(nx, ny, nz int) { count++ })
	if count != 26 {
		t.Fatalf("centre voxel under C26 should have 26 neighbors, got %d", count)
	}
}

func TestForEachNeighbor3DCentre6(t *testing.T) {
	r := New3D(U8, 3, 3, 3)
	count := 0
	ForEachNeighbor3D(r, 1, 1, 1, C6, func(nx, ny, nz int) { count++ })
	if count != 6 {
		t.Fatalf("centre voxel under C6 should have 6 neighbors, got %d", count)
	}
}

func TestFillRegionClipsToBounds(t *testing.T) {
	r := New2D(U8, 4, 4)
	r.FillRegion(2, 2, 0, 9, 9, 0, 200)
	if v := r.GetUnchecked2(3, 3); v != 200 {
		t.Errorf("expected filled corner, got %v", v)
	}
	if v := r.GetUnchecked2(1, 1); v != 0 {
		t.Errorf("expected pixel outside region untouched, got %v", v)
	}
}
