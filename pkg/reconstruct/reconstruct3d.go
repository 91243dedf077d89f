package reconstruct

import "github.com/Fepozopo/morphcore/pkg/raster"

func forwardScan3D(out, mask *raster.Raster, conn raster.Connectivity, byDilation bool, cmp func(a, b float64) float64) {
	w, h, d := out.SizeX(), out.SizeY(), out.SizeZ()
	offs := raster.CausalOffsets3D(conn)
	for z := 0; z < d; z++ {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				v := out.GetF64(x, y, z)
				for _, o := range offs {
					nx, ny, nz := x+o[0], y+o[1], z+o[2]
					if nx < 0 || nx >= w || ny < 0 || ny >= h || nz < 0 || nz >= d {
						continue
					}
					v = cmp(v, out.GetF64(nx, ny, nz))
				}
				v = clampToMask(byDilation, v, mask.GetF64(x, y, z))
				out.SetUnchecked3(x, y, z, v)
			}
		}
	}
}

func backwardScan3D(out, mask *raster.Raster, conn raster.Connectivity, byDilation bool, cmp func(a, b float64) float64, q queue) {
	w, h, d := out.SizeX(), out.SizeY(), out.SizeZ()
	offs := raster.AntiCausalOffsets3D(conn)
	for z := d - 1; z >= 0; z-- {
		for y := h - 1; y >= 0; y-- {
			for x := w - 1; x >= 0; x-- {
				v := out.GetF64(x, y, z)
				for _, o := range offs {
					nx, ny, nz := x+o[0], y+o[1], z+o[2]
					if nx < 0 || nx >= w || ny < 0 || ny >= h || nz < 0 || nz >= d {
						continue
					}
					v = cmp(v, out.GetF64(nx, ny, nz))
				}
				v = clampToMask(byDilation, v, mask.GetF64(x, y, z))
				out.SetUnchecked3(x, y, z, v)

				needsQueue := false
				for _, o := range offs {
					nx, ny, nz := x+o[0], y+o[1], z+o[2]
					if nx < 0 || nx >= w || ny < 0 || ny >= h || nz < 0 || nz >= d {
						continue
					}
					nv := out.GetF64(nx, ny, nz)
					nm := mask.GetF64(nx, ny, nz)
					if better(byDilation, v, nv) && nv != nm {
						needsQueue = true
					}
				}
				if needsQueue {
					q.push(v, point{x: x, y: y, z: z})
				}
			}
		}
	}
}
