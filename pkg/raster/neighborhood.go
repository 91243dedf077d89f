package raster

// Connectivity is the neighbor relation used by a traversal: {4,8} for
// 2D rasters, {6,26} for 3D.
type Connectivity int

const (
	C4  Connectivity = 4
	C8  Connectivity = 8
	C6  Connectivity = 6
	C26 Connectivity = 26
)

// Valid2D reports whether c is a legal 2D connectivity.
func (c Connectivity) Valid2D() bool { return c == C4 || c == C8 }

// Valid3D reports whether c is a legal 3D connectivity.
func (c Connectivity) Valid3D() bool { return c == C6 || c == C26 }

// offsets2D lists the neighbor offsets for a 2D connectivity, axis
// neighbors first.
func offsets2D(c Connectivity) [][2]int {
	switch c {
	case C4:
		return [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	case C8:
		return [][2]int{
			{1, 0}, {-1, 0}, {0, 1}, {0, -1},
			{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
		}
	default:
		return nil
	}
}

func offsets3D(c Connectivity) [][3]int {
	switch c {
	case C6:
		return [][3]int{{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}, {0, 0, 1}, {0, 0, -1}}
	case C26:
		out := make([][3]int, 0, 26)
		for dz := -1; dz <= 1; dz++ {
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 && dz == 0 {
						continue
					}
					out = append(out, [3]int{dx, dy, dz})
				}
			}
		}
		return out
	default:
		return nil
	}
}

// ForEachNeighbor2D invokes fn for every in-bounds neighbor of (x,y) under
// connectivity c, never visiting the centre.
func ForEachNeighbor2D(r *Raster, x, y int, c Connectivity, fn func(nx, ny int)) {
	for _, o := range offsets2D(c) {
		nx, ny := x+o[0], y+o[1]
		if r.inBounds(nx, ny, 0) {
			fn(nx, ny)
		}
	}
}

// ForEachNeighbor3D invokes fn for every in-bounds neighbor of (x,y,z)
// under connectivity c, never visiting the centre.
func ForEachNeighbor3D(r *Raster, x, y, z int, c Connectivity, fn func(nx, ny, nz int)) {
	for _, o := range offsets3D(c) {
		nx, ny, nz := x+o[0], y+o[1], z+o[2]
		if r.inBounds(nx, ny, nz) {
			fn(nx, ny, nz)
		}
	}
}

// CausalOffsets2D returns the "already visited" half of the neighborhood
// for a forward raster scan (top-to-bottom, left-to-right), used by
// reconstruction's forward pass.
func CausalOffsets2D(c Connectivity) [][2]int {
	switch c {
	case C4:
		return [][2]int{{-1, 0}, {0, -1}}
	case C8:
		return [][2]int{{-1, 0}, {0, -1}, {1, -1}, {-1, -1}}
	default:
		return nil
	}
}

// AntiCausalOffsets2D returns the "not yet visited in a forward scan" half
// of the neighborhood, used by reconstruction's backward pass.
func AntiCausalOffsets2D(c Connectivity) [][2]int {
	switch c {
	case C4:
		return [][2]int{{1, 0}, {0, 1}}
	case C8:
		return [][2]int{{1, 0}, {0, 1}, {-1, 1}, {1, 1}}
	default:
		return nil
	}
}

// CausalOffsets3D returns the forward-scan causal half of a 3D
// neighborhood (z major, then y, then x).
func CausalOffsets3D(c Connectivity) [][3]int {
	switch c {
	case C6:
		return [][3]int{{-1, 0, 0}, {0, -1, 0}, {0, 0, -1}}
	case C26:
		out := make([][3]int, 0, 13)
		for dz := -1; dz <= 1; dz++ {
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 && dz == 0 {
						continue
					}
					if dz < 0 || (dz == 0 && dy < 0) || (dz == 0 && dy == 0 && dx < 0) {
						out = append(out, [3]int{dx, dy, dz})
					}
				}
			}
		}
		return out
	default:
		return nil
	}
}

// AntiCausalOffsets3D returns the backward-scan anti-causal half of a 3D
// neighborhood.
func AntiCausalOffsets3D(c Connectivity) [][3]int {
	switch c {
	case C6:
		return [][3]int{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	case C26:
		out := make([][3]int, 0, 13)
		for dz := -1; dz <= 1; dz++ {
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 && dz == 0 {
						continue
					}
					if dz > 0 || (dz == 0 && dy > 0) || (dz == 0 && dy == 0 && dx > 0) {
						out = append(out, [3]int{dx, dy, dz})
					}
				}
			}
		}
		return out
	default:
		return nil
	}
}
