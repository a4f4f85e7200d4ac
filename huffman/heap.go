package huffman

import (
	"container/heap"
)

// type heapEntry + type freqHeap {{{

// heapEntry pairs a node with its construction-time bookkeeping.  seq breaks
// frequency ties: leaves use their symbol value, and internal nodes use
// NumSymbols plus their order of creation.
type heapEntry struct {
	node *Node
	freq uint64
	seq  uint32
}

type freqHeap struct {
	list []heapEntry
}

func (h *freqHeap) Init() {
	heap.Init(h)
}

func (h *freqHeap) Len() int {
	return len(h.list)
}

func (h *freqHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *freqHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.freq != b.freq {
		return a.freq < b.freq
	}
	return a.seq < b.seq
}

func (h *freqHeap) Push(x interface{}) {
	h.list = append(h.list, x.(heapEntry))
}

func (h *freqHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = heapEntry{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*freqHeap)(nil)

// }}}
