package datastructure

import "errors"

var (
	ErrEmptyQueue   = errors.New("priority queue is empty")
	ErrItemNotFound = errors.New("item not found in priority queue")
)

type PriorityQueueNode[T comparable] struct {
	Rank float64
	Item T
}

func NewPriorityQueueNode[T comparable](rank float64, item T) PriorityQueueNode[T] {
	return PriorityQueueNode[T]{Rank: rank, Item: item}
}

// MinHeap binary heap priority queue. pos keeps the heap index of every item so
// DecreaseKey runs in O(logN) without scanning the heap.
type MinHeap[T comparable] struct {
	heap []PriorityQueueNode[T]
	pos  map[T]int
}

func NewMinHeap[T comparable]() *MinHeap[T] {
	return &MinHeap[T]{
		heap: make([]PriorityQueueNode[T], 0),
		pos:  make(map[T]int),
	}
}

func (h *MinHeap[T]) parent(index int) int {
	return (index - 1) / 2
}

func (h *MinHeap[T]) leftChild(index int) int {
	return 2*index + 1
}

func (h *MinHeap[T]) rightChild(index int) int {
	return 2*index + 2
}

func (h *MinHeap[T]) swap(i, j int) {
	h.heap[i], h.heap[j] = h.heap[j], h.heap[i]
	h.pos[h.heap[i].Item] = i
	h.pos[h.heap[j].Item] = j
}

// heapifyUp moves index towards the root while its parent has a larger rank. O(logN).
func (h *MinHeap[T]) heapifyUp(index int) {
	for index != 0 && h.heap[index].Rank < h.heap[h.parent(index)].Rank {
		h.swap(index, h.parent(index))
		index = h.parent(index)
	}
}

// heapifyDown moves index towards the leaves while a child has a smaller rank. O(logN).
func (h *MinHeap[T]) heapifyDown(index int) {
	for {
		smallest := index
		left := h.leftChild(index)
		right := h.rightChild(index)

		if left < len(h.heap) && h.heap[left].Rank < h.heap[smallest].Rank {
			smallest = left
		}
		if right < len(h.heap) && h.heap[right].Rank < h.heap[smallest].Rank {
			smallest = right
		}
		if smallest == index {
			return
		}
		h.swap(index, smallest)
		index = smallest
	}
}

func (h *MinHeap[T]) isEmpty() bool {
	return len(h.heap) == 0
}

func (h *MinHeap[T]) Size() int {
	return len(h.heap)
}

// GetMin returns the root without removing it.
func (h *MinHeap[T]) GetMin() (PriorityQueueNode[T], error) {
	if h.isEmpty() {
		return PriorityQueueNode[T]{}, ErrEmptyQueue
	}
	return h.heap[0], nil
}

// Insert adds a new item. Inserting an item that is already queued updates its rank instead.
func (h *MinHeap[T]) Insert(key PriorityQueueNode[T]) {
	if idx, ok := h.pos[key.Item]; ok {
		old := h.heap[idx].Rank
		h.heap[idx].Rank = key.Rank
		if key.Rank < old {
			h.heapifyUp(idx)
		} else {
			h.heapifyDown(idx)
		}
		return
	}
	h.heap = append(h.heap, key)
	index := h.Size() - 1
	h.pos[key.Item] = index
	h.heapifyUp(index)
}

// ExtractMin pops the root. O(logN).
func (h *MinHeap[T]) ExtractMin() (PriorityQueueNode[T], error) {
	if h.isEmpty() {
		return PriorityQueueNode[T]{}, ErrEmptyQueue
	}
	root := h.heap[0]
	last := h.Size() - 1
	h.swap(0, last)
	h.heap = h.heap[:last]
	delete(h.pos, root.Item)
	if !h.isEmpty() {
		h.heapifyDown(0)
	}
	return root, nil
}

// DecreaseKey lowers the rank of a queued item. A larger rank is ignored.
func (h *MinHeap[T]) DecreaseKey(item PriorityQueueNode[T]) error {
	idx, ok := h.pos[item.Item]
	if !ok {
		return ErrItemNotFound
	}
	if item.Rank > h.heap[idx].Rank {
		return nil
	}
	h.heap[idx].Rank = item.Rank
	h.heapifyUp(idx)
	return nil
}
