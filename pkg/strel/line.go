package strel

import "github.com/Fepozopo/morphcore/pkg/raster"

// Line is an axis-aligned or diagonal line structuring element. Its
// dilation/erosion run the O(n) sliding-window extremum along every
// maximal line parallel to (dx,dy,dz) through the raster, independent of
// line length.
type Line struct {
	dx, dy, dz   int
	before, after int
	is3D         bool
}

// NewLineHorizontal builds a 2D horizontal line of the given length,
// centred on its anchor (length must be positive; even lengths anchor
// one step left of centre).
func NewLineHorizontal(length int) (*Line, error) { return newAxisLine2D(1, 0, length) }

// NewLineVertical builds a 2D vertical line.
func NewLineVertical(length int) (*Line, error) { return newAxisLine2D(0, 1, length) }

// NewLineDiag45 builds a 2D 45-degree diagonal line (x and y increase
// together).
func NewLineDiag45(length int) (*Line, error) { return newAxisLine2D(1, 1, length) }

// NewLineDiag135 builds a 2D 135-degree diagonal line (x increases as y
// decreases).
func NewLineDiag135(length int) (*Line, error) { return newAxisLine2D(1, -1, length) }

// NewLineX, NewLineY, NewLineZ build 3D axis-aligned lines.
func NewLineX(length int) (*Line, error) { return newAxisLine3D(1, 0, 0, length) }
func NewLineY(length int) (*Line, error) { return newAxisLine3D(0, 1, 0, length) }
func NewLineZ(length int) (*Line, error) { return newAxisLine3D(0, 0, 1, length) }

func newAxisLine2D(dx, dy, length int) (*Line, error) {
	if length <= 0 {
		return nil, raster.NewInvalidInput("line length must be positive")
	}
	before := (length - 1) / 2
	after := length - 1 - before
	return &Line{dx: dx, dy: dy, dz: 0, before: before, after: after, is3D: false}, nil
}

func newAxisLine3D(dx, dy, dz, length int) (*Line, error) {
	if length <= 0 {
		return nil, raster.NewInvalidInput("line length must be positive")
	}
	before := (length - 1) / 2
	after := length - 1 - before
	return &Line{dx: dx, dy: dy, dz: dz, before: before, after: after, is3D: true}, nil
}

func (l *Line) Is3D() bool { return l.is3D }

func (l *Line) Shifts() [][3]int {
	out := make([][3]int, 0, l.before+l.after+1)
	for t := -l.before; t <= l.after; t++ {
		out = append(out, [3]int{t * l.dx, t * l.dy, t * l.dz})
	}
	return out
}

func (l *Line) Size() [3]int {
	size, _ := sizeAndOffset(l.Shifts())
	return size
}

func (l *Line) Offset() [3]int {
	_, offset := sizeAndOffset(l.Shifts())
	return offset
}

func (l *Line) Mask() *raster.Raster { return maskFromShifts(l.Shifts(), l.is3D) }

func (l *Line) Reverse() Strel {
	return &Line{dx: l.dx, dy: l.dy, dz: l.dz, before: l.after, after: l.before, is3D: l.is3D}
}

// lines2D enumerates every maximal line through a w x h grid parallel to
// (dx,dy), returning, for each line, the ordered list of coordinates.
func lines2D(w, h, dx, dy int) [][][2]int {
	var out [][][2]int
	inBounds := func(x, y int) bool { return x >= 0 && x < w && y >= 0 && y < h }
	for y0 := 0; y0 < h; y0++ {
		for x0 := 0; x0 < w; x0++ {
			if inBounds(x0-dx, y0-dy) {
				continue // not the start of a line
			}
			var line [][2]int
			x, y := x0, y0
			for inBounds(x, y) {
				line = append(line, [2]int{x, y})
				x += dx
				y += dy
			}
			out = append(out, line)
		}
	}
	return out
}

func lines3D(w, h, d, dx, dy, dz int) [][][3]int {
	var out [][][3]int
	inBounds := func(x, y, z int) bool { return x >= 0 && x < w && y >= 0 && y < h && z >= 0 && z < d }
	for z0 := 0; z0 < d; z0++ {
		for y0 := 0; y0 < h; y0++ {
			for x0 := 0; x0 < w; x0++ {
				if inBounds(x0-dx, y0-dy, z0-dz) {
					continue
				}
				var line [][3]int
				x, y, z := x0, y0, z0
				for inBounds(x, y, z) {
					line = append(line, [3]int{x, y, z})
					x += dx
					y += dy
					z += dz
				}
				out = append(out, line)
			}
		}
	}
	return out
}

func (l *Line) Dilation(r *raster.Raster) (*raster.Raster, error) {
	return l.run(r, slidingMax1D)
}

func (l *Line) Erosion(r *raster.Raster) (*raster.Raster, error) {
	return l.run(r, slidingMin1D)
}

func (l *Line) run(r *raster.Raster, op func([]float64, int, int) []float64) (*raster.Raster, error) {
	if err := checkDimension(l, r); err != nil {
		return nil, err
	}
	if !l.is3D {
		out := raster.New2D(r.Kind(), r.SizeX(), r.SizeY())
		for _, line := range lines2D(r.SizeX(), r.SizeY(), l.dx, l.dy) {
			vals := make([]float64, len(line))
			for i, p := range line {
				vals[i] = r.GetF64(p[0], p[1], 0)
			}
			res := op(vals, l.before, l.after)
			for i, p := range line {
				out.SetUnchecked2(p[0], p[1], res[i])
			}
		}
		return out, nil
	}
	out := raster.New3D(r.Kind(), r.SizeX(), r.SizeY(), r.SizeZ())
	for _, line := range lines3D(r.SizeX(), r.SizeY(), r.SizeZ(), l.dx, l.dy, l.dz) {
		vals := make([]float64, len(line))
		for i, p := range line {
			vals[i] = r.GetF64(p[0], p[1], p[2])
		}
		res := op(vals, l.before, l.after)
		for i, p := range line {
			out.SetUnchecked3(p[0], p[1], p[2], res[i])
		}
	}
	return out, nil
}

func (l *Line) Opening(r *raster.Raster) (*raster.Raster, error) { return OpeningVia(l, r) }
func (l *Line) Closing(r *raster.Raster) (*raster.Raster, error) { return ClosingVia(l, r) }
