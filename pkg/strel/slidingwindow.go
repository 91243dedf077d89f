package strel

// slidingMax1D and slidingMin1D compute the running footprint max/min over
// a clipped window [i-before, i+after] for every index i, in O(n)
// amortized time via a monotonic deque — the deque formulation of the
// Van Herk-Gil-Werman sliding extremum, which handles clipped
// (non-wrapping) boundaries without the block-alignment bookkeeping the
// classic VHGW block scan needs.
func slidingMax1D(vals []float64, before, after int) []float64 {
	n := len(vals)
	out := make([]float64, n)
	deque := make([]int, 0, n)
	r := -1
	for i := 0; i < n; i++ {
		hi := i + after
		if hi >= n {
			hi = n - 1
		}
		for r < hi {
			r++
			for len(deque) > 0 && vals[deque[len(deque)-1]] <= vals[r] {
				deque = deque[:len(deque)-1]
			}
			deque = append(deque, r)
		}
		lo := i - before
		for len(deque) > 0 && deque[0] < lo {
			deque = deque[1:]
		}
		out[i] = vals[deque[0]]
	}
	return out
}

func slidingMin1D(vals []float64, before, after int) []float64 {
	n := len(vals)
	out := make([]float64, n)
	deque := make([]int, 0, n)
	r := -1
	for i := 0; i < n; i++ {
		hi := i + after
		if hi >= n {
			hi = n - 1
		}
		for r < hi {
			r++
			for len(deque) > 0 && vals[deque[len(deque)-1]] >= vals[r] {
				deque = deque[:len(deque)-1]
			}
			deque = append(deque, r)
		}
		lo := i - before
		for len(deque) > 0 && deque[0] < lo {
			deque = deque[1:]
		}
		out[i] = vals[deque[0]]
	}
	return out
}
