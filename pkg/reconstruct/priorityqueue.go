package reconstruct

import "container/heap"

// entry is one pending pixel in the f32 priority queue: its raster
// position and the level it was queued at.
type entry struct {
	value float64
	p     point
}

// priorityHeap backs the f32 reconstruction queue: unlike u8/u16, floating
// levels have no fixed bucket count, so a comparison-based heap (via
// container/heap, the same choice made for the area-opening queue) stands
// in for the bucket queue used by the integer kinds.
type priorityHeap struct {
	entries []entry
	descend bool
}

func (h priorityHeap) Len() int { return len(h.entries) }
func (h priorityHeap) Less(i, j int) bool {
	if h.descend {
		return h.entries[i].value > h.entries[j].value
	}
	return h.entries[i].value < h.entries[j].value
}
func (h priorityHeap) Swap(i, j int) { h.entries[i], h.entries[j] = h.entries[j], h.entries[i] }

func (h *priorityHeap) Push(x any) { h.entries = append(h.entries, x.(entry)) }

func (h *priorityHeap) Pop() any {
	old := h.entries
	n := len(old)
	last := old[n-1]
	h.entries = old[:n-1]
	return last
}

// floatQueue wraps priorityHeap behind the same push/pop/empty shape as
// bucketQueue so the reconstruction engine can treat both uniformly.
type floatQueue struct {
	h *priorityHeap
}

func newFloatQueue(descend bool) *floatQueue {
	h := &priorityHeap{descend: descend}
	heap.Init(h)
	return &floatQueue{h: h}
}

func (q *floatQueue) push(value float64, p point) {
	heap.Push(q.h, entry{value: value, p: p})
}

func (q *floatQueue) empty() bool { return q.h.Len() == 0 }

func (q *floatQueue) pop() (point, bool) {
	if q.h.Len() == 0 {
		return point{}, false
	}
	e := heap.Pop(q.h).(entry)
	return e.p, true
}
