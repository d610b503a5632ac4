package sim

// History is a fixed-size circular buffer keeping the most recent values added to it.
type History[T any] struct {
	buffer []T
	head   int // next write position
	size   int
}

// NewHistory creates a history holding at most capacity values. capacity is at least 1.
func NewHistory[T any](capacity int) *History[T] {
	return &History[T]{buffer: make([]T, max(capacity, 1))}
}

// Add inserts a value, overwriting the oldest one once the history is full.
func (h *History[T]) Add(v T) {
	h.buffer[h.head] = v
	h.head = (h.head + 1) % len(h.buffer)
	if h.size < len(h.buffer) {
		h.size++
	}
}

// Latest returns the most recently added value.
func (h *History[T]) Latest() (T, bool) {
	if h.size == 0 {
		var zero T
		return zero, false
	}
	return h.buffer[(h.head-1+len(h.buffer))%len(h.buffer)], true
}

// Values returns the stored values from oldest to newest.
func (h *History[T]) Values() []T {
	values := make([]T, 0, h.size)
	start := (h.head - h.size + len(h.buffer)) % len(h.buffer)
	for i := 0; i < h.size; i++ {
		values = append(values, h.buffer[(start+i)%len(h.buffer)])
	}
	return values
}

// Len ...
func (h *History[T]) Len() int {
	return h.size
}

// Clear empties the history.
func (h *History[T]) Clear() {
	h.head = 0
	h.size = 0
}
