package floodfill

import (
	"context"
	"testing"

	"github.com/Fepozopo/morphcore/pkg/raster"
)

func TestFloodFill2DRelabelsConnectedRegion(t *testing.T) {
	r := raster.New2D(raster.U8, 5, 5)
	// center 3x3 block set to 200, rest 0
	for y := 1; y <= 3; y++ {
		for x := 1; x <= 3; x++ {
			_ = r.Set2(x, y, 200)
		}
	}
	if err := FloodFill2D(context.Background(), nil, r, 2, 2, 99, raster.C4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			v, _ := r.Get2(x, y)
			inBlock := x >= 1 && x <= 3 && y >= 1 && y <= 3
			if inBlock && v != 99 {
				t.Fatalf("expected 99 at %d,%d, got %v", x, y, v)
			}
			if !inBlock && v != 0 {
				t.Fatalf("expected 0 at %d,%d, got %v", x, y, v)
			}
		}
	}
}

func TestFloodFillIntoLeavesInputIntact(t *testing.T) {
	input := raster.New2D(raster.U8, 4, 4)
	input.Fill(raster.Foreground)
	output := raster.New2D(raster.U8, 4, 4)
	if err := FloodFillInto2D(context.Background(), nil, input, output, 0, 0, 1, raster.C8); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			v, _ := input.Get2(x, y)
			if v != raster.Foreground {
				t.Fatalf("input must remain unmodified, got %v at %d,%d", v, x, y)
			}
			ov, _ := output.Get2(x, y)
			if ov != 1 {
				t.Fatalf("expected output painted 1, got %v at %d,%d", ov, x, y)
			}
		}
	}
}

func TestFloodFillDoesNotCrossDisjointRegions(t *testing.T) {
	// Two disjoint 2x2 blobs.
	r := raster.New2D(raster.U8, 5, 5)
	for _, p := range [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
		_ = r.Set2(p[0], p[1], 200)
	}
	for _, p := range [][2]int{{3, 3}, {4, 3}, {3, 4}, {4, 4}} {
		_ = r.Set2(p[0], p[1], 200)
	}
	if err := FloodFill2D(context.Background(), nil, r, 0, 0, 5, raster.C4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, _ := r.Get2(4, 4)
	if v != 200 {
		t.Fatalf("disjoint blob should be untouched, got %v", v)
	}
	v0, _ := r.Get2(0, 0)
	if v0 != 5 {
		t.Fatalf("expected seed blob relabeled to 5, got %v", v0)
	}
}

func TestFloodFillInvalidConnectivity(t *testing.T) {
	r := raster.New2D(raster.U8, 3, 3)
	if err := FloodFill2D(context.Background(), nil, r, 0, 0, 1, raster.Connectivity(7)); err == nil {
		t.Fatalf("expected invalid connectivity error")
	}
}

// naiveBFS2D is the reference implementation the equivalence test checks the
// scan-line algorithm against: a textbook pixel-at-a-time BFS.
func naiveBFS2D(input *raster.Raster, seedX, seedY int, newValue float64, conn raster.Connectivity) *raster.Raster {
	out := input.Duplicate()
	w, h := input.SizeX(), input.SizeY()
	oldValue := input.GetF64(seedX, seedY, 0)
	visited := make([]bool, w*h)
	queue := [][2]int{{seedX, seedY}}
	visited[seedY*w+seedX] = true
	var offsets [][2]int
	if conn == raster.C4 {
		offsets = [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	} else {
		offsets = [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		out.SetUnchecked2(p[0], p[1], newValue)
		for _, o := range offsets {
			nx, ny := p[0]+o[0], p[1]+o[1]
			if nx < 0 || nx >= w || ny < 0 || ny >= h || visited[ny*w+nx] {
				continue
			}
			if input.GetF64(nx, ny, 0) == oldValue {
				visited[ny*w+nx] = true
				queue = append(queue, [2]int{nx, ny})
			}
		}
	}
	return out
}

func TestFloodFillMatchesNaiveBFS(t *testing.T) {
	r := raster.New2D(raster.U8, 9, 9)
	// an irregular blob
	blob := [][2]int{{2, 2}, {3, 2}, {4, 2}, {4, 3}, {4, 4}, {3, 4}, {2, 4}, {2, 3}, {5, 5}, {6, 5}, {5, 6}}
	for _, p := range blob {
		_ = r.Set2(p[0], p[1], 7)
	}
	expect := naiveBFS2D(r, 2, 2, 250, raster.C8)
	got := r.Duplicate()
	if err := FloodFill2D(context.Background(), nil, got, 2, 2, 250, raster.C8); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for y := 0; y < 9; y++ {
		for x := 0; x < 9; x++ {
			ev, _ := expect.Get2(x, y)
			gv, _ := got.Get2(x, y)
			if ev != gv {
				t.Fatalf("mismatch at %d,%d: naive=%v scanline=%v", x, y, ev, gv)
			}
		}
	}
}

func TestFloodFill3DRelabelsCube(t *testing.T) {
	r := raster.New3D(raster.U8, 4, 4, 4)
	for z := 1; z <= 2; z++ {
		for y := 1; y <= 2; y++ {
			for x := 1; x <= 2; x++ {
				_ = r.Set3(x, y, z, 150)
			}
		}
	}
	if err := FloodFill3D(context.Background(), nil, r, 1, 1, 1, 42, raster.C6); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, _ := r.Get3(2, 2, 2)
	if v != 42 {
		t.Fatalf("expected 42 at corner of cube, got %v", v)
	}
	v0, _ := r.Get3(0, 0, 0)
	if v0 != 0 {
		t.Fatalf("background voxel must remain untouched, got %v", v0)
	}
}

func TestFloodFill3D26ConnectsDiagonalVoxel(t *testing.T) {
	r := raster.New3D(raster.U8, 3, 3, 3)
	_ = r.Set3(0, 0, 0, 9)
	_ = r.Set3(1, 1, 1, 9) // corner-diagonal neighbor, only reachable under C26
	if err := FloodFill3D(context.Background(), nil, r, 0, 0, 0, 1, raster.C26); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, _ := r.Get3(1, 1, 1)
	if v != 1 {
		t.Fatalf("expected diagonal voxel relabeled under C26, got %v", v)
	}
}
