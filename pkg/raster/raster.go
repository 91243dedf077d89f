// Package raster implements the typed 2D/3D pixel containers shared by
// every morphology engine in this module.
package raster

// Kind identifies the element kind stored by a Raster.
type Kind int

const (
	U8 Kind = iota
	U16
	F32
)

// MaxValue returns the largest representable value for the kind, or
// +Inf-like unrestricted behaviour for F32 (reported as 0 since F32 has no
// fixed ceiling; callers must not rely on it for clamping).
func (k Kind) MaxValue() float64 {
	switch k {
	case U8:
		return 255
	case U16:
		return 65535
	default:
		return 0
	}
}

// BitDepth returns the nominal bit depth of the kind (8/16/32).
func (k Kind) BitDepth() int {
	switch k {
	case U8:
		return 8
	case U16:
		return 16
	default:
		return 32
	}
}

const (
	Background = 0
	Foreground = 255
)

// Raster is a rectangular (2D) or cuboidal (3D) array of pixels of one
// element kind. Storage is a flat []float64 regardless of Kind; Kind only
// constrains the legal value range and clamping behaviour at Set time.
type Raster struct {
	kind       Kind
	sizeX      int
	sizeY      int
	sizeZ      int // 1 for 2D rasters
	data       []float64
}

// New2D constructs a 2D raster of the given kind, zero-filled.
func New2D(kind Kind, sizeX, sizeY int) *Raster {
	return &Raster{kind: kind, sizeX: sizeX, sizeY: sizeY, sizeZ: 1, data: make([]float64, sizeX*sizeY)}
}

// New3D constructs a 3D raster of the given kind, zero-filled.
func New3D(kind Kind, sizeX, sizeY, sizeZ int) *Raster {
	return &Raster{kind: kind, sizeX: sizeX, sizeY: sizeY, sizeZ: sizeZ, data: make([]float64, sizeX*sizeY*sizeZ)}
}

func (r *Raster) Kind() Kind { return r.kind }
func (r *Raster) Is3D() bool { return r.sizeZ > 1 }
func (r *Raster) SizeX() int { return r.sizeX }
func (r *Raster) SizeY() int { return r.sizeY }
func (r *Raster) SizeZ() int { return r.sizeZ }
func (r *Raster) BitDepth() int { return r.kind.BitDepth() }

// MaxValue returns the kind's representable ceiling (0 for F32, meaning
// unrestricted).
func (r *Raster) MaxValue() float64 { return r.kind.MaxValue() }

// MinValue returns the kind's representable floor (always 0 here). U8 and
// U16 values are clamped at 0; F32 values are not clamped and can be
// negative, for example in an F32 Laplacian.
func (r *Raster) MinValue() float64 { return 0 }

func (r *Raster) inBounds(x, y, z int) bool {
	return x >= 0 && x < r.sizeX && y >= 0 && y < r.sizeY && z >= 0 && z < r.sizeZ
}

func (r *Raster) index(x, y, z int) int {
	return (z*r.sizeY+y)*r.sizeX + x
}

// Get2 returns the bounds-checked value at (x,y) in a 2D raster.
func (r *Raster) Get2(x, y int) (float64, error) {
	if !r.inBounds(x, y, 0) {
		return 0, newOutOfBounds(x, y, r.sizeX, r.sizeY)
	}
	return r.data[r.index(x, y, 0)], nil
}

// Get3 returns the bounds-checked value at (x,y,z) in a 3D raster.
func (r *Raster) Get3(x, y, z int) (float64, error) {
	if !r.inBounds(x, y, z) {
		return 0, newOutOfBounds3(x, y, z, r.sizeX, r.sizeY, r.sizeZ)
	}
	return r.data[r.index(x, y, z)], nil
}

// GetUnchecked2 returns the value at (x,y) without bounds checking; the
// caller is obliged to pre-validate coordinates.
func (r *Raster) GetUnchecked2(x, y int) float64 { return r.data[r.index(x, y, 0)] }

// GetUnchecked3 returns the value at (x,y,z) without bounds checking.
func (r *Raster) GetUnchecked3(x, y, z int) float64 { return r.data[r.index(x, y, z)] }

// GetF64 is the accessor for numeric inner loops: an unchecked float64
// read regardless of dimensionality (z is ignored for 2D rasters).
func (r *Raster) GetF64(x, y, z int) float64 {
	if !r.Is3D() {
		z = 0
	}
	return r.data[r.index(x, y, z)]
}

// Set2 sets a bounds-checked value at (x,y) in a 2D raster, clamped to the
// kind's value range.
func (r *Raster) Set2(x, y int, v float64) error {
	if !r.inBounds(x, y, 0) {
		return newOutOfBounds(x, y, r.sizeX, r.sizeY)
	}
	r.data[r.index(x, y, 0)] = clampToKind(r.kind, v)
	return nil
}

// Set3 sets a bounds-checked value at (x,y,z) in a 3D raster, clamped to
// the kind's value range.
func (r *Raster) Set3(x, y, z int, v float64) error {
	if !r.inBounds(x, y, z) {
		return newOutOfBounds3(x, y, z, r.sizeX, r.sizeY, r.sizeZ)
	}
	r.data[r.index(x, y, z)] = clampToKind(r.kind, v)
	return nil
}

// SetUnchecked2 sets the value at (x,y) without bounds checking or
// clamping; the caller is obliged to pre-validate.
func (r *Raster) SetUnchecked2(x, y int, v float64) { r.data[r.index(x, y, 0)] = v }

// SetUnchecked3 sets the value at (x,y,z) without bounds checking or
// clamping.
func (r *Raster) SetUnchecked3(x, y, z int, v float64) { r.data[r.index(x, y, z)] = v }

func clampToKind(k Kind, v float64) float64 {
	switch k {
	case U8:
		if v < 0 {
			return 0
		}
		if v > 255 {
			return 255
		}
	case U16:
		if v < 0 {
			return 0
		}
		if v > 65535 {
			return 65535
		}
	}
	return v
}

// Clamp clamps v to this raster's kind range (exported for engines that
// compute differences/sums outside the raster and need the same rule).
func (r *Raster) Clamp(v float64) float64 { return clampToKind(r.kind, v) }

// Duplicate returns an independent copy of the raster.
func (r *Raster) Duplicate() *Raster {
	out := &Raster{kind: r.kind, sizeX: r.sizeX, sizeY: r.sizeY, sizeZ: r.sizeZ, data: make([]float64, len(r.data))}
	copy(out.data, r.data)
	return out
}

// Fill sets every pixel in the raster to value, clamped to the kind range.
func (r *Raster) Fill(value float64) {
	v := clampToKind(r.kind, value)
	for i := range r.data {
		r.data[i] = v
	}
}

// FillRegion sets every pixel in the axis-aligned box [x0,x1]x[y0,y1]x
// [z0,z1] (inclusive bounds, clipped to the raster) to value, clamped to
// the kind range. For 2D rasters pass z0 = z1 = 0.
func (r *Raster) FillRegion(x0, y0, z0, x1, y1, z1 int, value float64) {
	v := clampToKind(r.kind, value)
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if z0 < 0 {
		z0 = 0
	}
	if x1 >= r.sizeX {
		x1 = r.sizeX - 1
	}
	if y1 >= r.sizeY {
		y1 = r.sizeY - 1
	}
	if z1 >= r.sizeZ {
		z1 = r.sizeZ - 1
	}
	for z := z0; z <= z1; z++ {
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				r.data[r.index(x, y, z)] = v
			}
		}
	}
}

// MaxPixelValue returns the largest pixel value currently stored.
func (r *Raster) MaxPixelValue() float64 {
	if len(r.data) == 0 {
		return 0
	}
	m := r.data[0]
	for _, v := range r.data[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// MinPixelValue returns the smallest pixel value currently stored.
func (r *Raster) MinPixelValue() float64 {
	if len(r.data) == 0 {
		return 0
	}
	m := r.data[0]
	for _, v := range r.data[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

// IsBinary reports whether every pixel is exactly Background or
// Foreground.
func (r *Raster) IsBinary() bool {
	for _, v := range r.data {
		if v != Background && v != Foreground {
			return false
		}
	}
	return true
}

// SameShape reports whether r and other share dimensions. Element kind is
// not compared.
func (r *Raster) SameShape(other *Raster) bool {
	return r.sizeX == other.sizeX && r.sizeY == other.sizeY && r.sizeZ == other.sizeZ
}
