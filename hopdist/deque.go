package hopdist

// deque is an array-backed double-ended queue of position indices,
// used as the pending-reexamination list of the propagator. It grows
// on demand and is owned by a single propagation run; no locking.
// All operations are amortized O(1).
type deque struct {
	buf  []int
	head int // index of the front element
	n    int // number of stored elements
}

// newDeque returns a deque with room for capHint elements before growth.
func newDeque(capHint int) *deque {
	if capHint < 1 {
		capHint = 1
	}

	return &deque{buf: make([]int, capHint)}
}

// Len returns the number of queued positions.
func (d *deque) Len() int { return d.n }

// PushFront inserts v before the current front.
func (d *deque) PushFront(v int) {
	if d.n == len(d.buf) {
		d.grow()
	}
	d.head--
	if d.head < 0 {
		d.head = len(d.buf) - 1
	}
	d.buf[d.head] = v
	d.n++
}

// PushBack appends v after the current back.
func (d *deque) PushBack(v int) {
	if d.n == len(d.buf) {
		d.grow()
	}
	d.buf[(d.head+d.n)%len(d.buf)] = v
	d.n++
}

// PopFront removes and returns the front element.
// The second return is false when the deque is empty.
func (d *deque) PopFront() (int, bool) {
	if d.n == 0 {
		return 0, false
	}
	v := d.buf[d.head]
	d.head = (d.head + 1) % len(d.buf)
	d.n--

	return v, true
}

// grow doubles the backing array, un-wrapping the ring in the process.
func (d *deque) grow() {
	next := make([]int, 2*len(d.buf))
	for i := 0; i < d.n; i++ {
		next[i] = d.buf[(d.head+i)%len(d.buf)]
	}
	d.buf = next
	d.head = 0
}
