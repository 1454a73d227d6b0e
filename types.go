// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lcq

// Queue is the combined producer-consumer interface for a bounded FIFO.
//
// Count is an estimate: under concurrent modification it may be stale by
// the time the caller looks at it. It never leaves [0, Cap()].
//
// Example:
//
//	var q lcq.Queue[int] = lcq.NewMPMC[int](1024)
//
//	val := 42
//	if !q.TryEnqueue(&val) {
//	    // Handle full queue
//	}
//
//	if elem, ok := q.TryDequeue(); ok {
//	    fmt.Println(elem)
//	}
type Queue[T any] interface {
	Producer[T]
	Consumer[T]
	Count() int
	Cap() int
}

// Producer is the interface for enqueueing elements.
//
// The element is passed by pointer to avoid copying large structs twice.
// The queue stores a copy of the pointed-to value, so the original can be
// modified after the call returns.
type Producer[T any] interface {
	// TryEnqueue adds an element to the queue (non-blocking).
	// Returns false if the queue is full. A lost race is retried
	// internally and never reported as full.
	//
	// Thread safety depends on queue mode:
	//   - SPSC/SPMC: single producer only
	//   - MPSC/MPMC: multiple producers safe
	TryEnqueue(elem *T) bool

	// Enqueue adds an element, spinning with backoff until it succeeds.
	Enqueue(elem *T)
}

// Consumer is the interface for dequeueing elements.
//
// The element is returned by value. The slot is cleared to allow garbage
// collection of referenced objects.
type Consumer[T any] interface {
	// TryDequeue removes and returns an element (non-blocking).
	// Returns (zero-value, false) if the queue is empty. A lost race is
	// retried internally and never reported as empty.
	//
	// Thread safety depends on queue mode:
	//   - SPSC/MPSC: single consumer only
	//   - SPMC/MPMC: multiple consumers safe
	TryDequeue() (T, bool)

	// Dequeue removes and returns an element, spinning with backoff
	// until one is available.
	Dequeue() T
}

var _ Queue[int] = (*Ring[int])(nil)
