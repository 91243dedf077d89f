package morph

import (
	"github.com/Fepozopo/morphcore/pkg/progress"
	"github.com/Fepozopo/morphcore/pkg/raster"
	"github.com/Fepozopo/morphcore/pkg/strel"
)

// RGB is a packed three-channel 8-bit 2D image presented to the core as
// three independent U8 rasters. No channel-interaction logic exists inside
// the core: every operation applies per channel.
type RGB struct {
	R, G, B *raster.Raster
}

// NewRGB constructs a zero-filled RGB image of the given size.
func NewRGB(sizeX, sizeY int) *RGB {
	return &RGB{
		R: raster.New2D(raster.U8, sizeX, sizeY),
		G: raster.New2D(raster.U8, sizeX, sizeY),
		B: raster.New2D(raster.U8, sizeX, sizeY),
	}
}

// RGBFromPacked splits an interleaved r,g,b byte buffer (3 bytes per
// pixel, row-major) into per-channel rasters.
func RGBFromPacked(sizeX, sizeY int, packed []uint8) (*RGB, error) {
	if len(packed) != 3*sizeX*sizeY {
		return nil, raster.NewInvalidInput("packed RGB buffer length must be 3*sizeX*sizeY")
	}
	im := NewRGB(sizeX, sizeY)
	i := 0
	for y := 0; y < sizeY; y++ {
		for x := 0; x < sizeX; x++ {
			im.R.SetUnchecked2(x, y, float64(packed[i]))
			im.G.SetUnchecked2(x, y, float64(packed[i+1]))
			im.B.SetUnchecked2(x, y, float64(packed[i+2]))
			i += 3
		}
	}
	return im, nil
}

// Packed re-interleaves the three channels into an r,g,b byte buffer.
func (im *RGB) Packed() []uint8 {
	w, h := im.R.SizeX(), im.R.SizeY()
	out := make([]uint8, 0, 3*w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out = append(out,
				uint8(im.R.GetF64(x, y, 0)),
				uint8(im.G.GetF64(x, y, 0)),
				uint8(im.B.GetF64(x, y, 0)))
		}
	}
	return out
}

// ApplyRGB applies op with s to each channel independently and recomposes
// the result. Each pass announces itself on the status channel so a host
// progress bar can distinguish the three runs.
func ApplyRGB(rep *progress.Reporter, op MorphOp, im *RGB, s strel.Strel) (*RGB, error) {
	channels := []struct {
		name string
		in   *raster.Raster
	}{
		{"red", im.R},
		{"green", im.G},
		{"blue", im.B},
	}
	var out [3]*raster.Raster
	for i, ch := range channels {
		rep.EmitStatus(op.String() + ": " + ch.name + " channel")
		res, err := Apply(op, ch.in, s)
		if err != nil {
			return nil, err
		}
		out[i] = res
		rep.EmitProgress(float64(i+1) / 3)
	}
	return &RGB{R: out[0], G: out[1], B: out[2]}, nil
}
