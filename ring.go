// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lcq

import (
	"math/bits"

	"code.hybscloud.com/atomix"
	"golang.org/x/sys/cpu"
)

// Ring is a bounded lock-free circular queue.
//
// The ring is an array of versioned slots indexed by two monotonically
// increasing cursors. Each slot carries a tag packing the cycle (lap) that
// last claimed it and a full bit. A value is published by a release store
// of the full tag and observed by an acquire load of the same tag.
//
// A cursor is claimed only after the slot under it shows the tag for that
// lap, so 0 <= tail-head <= capacity holds at every instant.
//
// The producer and consumer sides are configured independently:
//
//   - Single producer: wait-free, no read-modify-write on tail
//   - Multiple producers: compare-and-swap on tail, attempted only once the
//     tail slot has been released by the previous lap
//   - Single consumer: wait-free, no read-modify-write on head
//   - Multiple consumers: the mirror image of multiple producers
//
// A Ring must not be copied after first use.
//
// Memory: capacity slots, each padded to a cache line
type Ring[T any] struct {
	_          noCopy
	_          cpu.CacheLinePad
	head       atomix.Uint64 // Next position claimed by a consumer
	_          cpu.CacheLinePad
	tail       atomix.Uint64 // Next position claimed by a producer
	_          cpu.CacheLinePad
	cachedHead uint64 // Single producer's view of head
	_          cpu.CacheLinePad
	buffer     []slot[T]
	capacity   uint64
	mask       uint64
	order      uint64 // log2(capacity)
	sp, sc     bool
}

type slot[T any] struct {
	tag  atomix.Uint64
	data T
	_    cpu.CacheLinePad
}

func (s *slot[T]) load() tag { return tag(s.tag.LoadAcquire()) }

func (s *slot[T]) store(t tag) { s.tag.StoreRelease(uint64(t)) }

func newRing[T any](o Options) *Ring[T] {
	if o.capacity < MinCapacity {
		panic("lcq: capacity must be >= 32")
	}
	n := uint64(roundToPow2(o.capacity))

	// Zero tags are "empty, cycle 0": ready for positions 0..n-1.
	return &Ring[T]{
		buffer:   make([]slot[T], n),
		capacity: n,
		mask:     n - 1,
		order:    uint64(bits.TrailingZeros64(n)),
		sp:       o.singleProducer,
		sc:       o.singleConsumer,
	}
}

// cycleOf returns the lap that position p belongs to.
func (q *Ring[T]) cycleOf(p uint64) uint64 {
	return p >> q.order
}

func (q *Ring[T]) slotOf(p uint64) *slot[T] {
	return &q.buffer[p&q.mask]
}

// occupancy returns tail - head from a relaxed snapshot.
// Head is loaded first so that the difference never goes negative.
func (q *Ring[T]) occupancy() (head, tail uint64, count int64) {
	head = q.head.LoadRelaxed()
	tail = q.tail.LoadRelaxed()
	return head, tail, int64(tail - head)
}

// Count returns an estimate of the number of elements in the queue.
// The result may be stale under concurrent modification and is clamped
// to [0, Cap()].
func (q *Ring[T]) Count() int {
	_, _, n := q.occupancy()
	switch {
	case n <= 0:
		return 0
	case uint64(n) > q.capacity:
		return int(q.capacity)
	}
	return int(n)
}

// Empty reports whether Count is zero.
func (q *Ring[T]) Empty() bool {
	return q.Count() == 0
}

// Full reports whether Count equals Cap.
func (q *Ring[T]) Full() bool {
	return q.Count() == int(q.capacity)
}

// Cap returns the queue capacity.
func (q *Ring[T]) Cap() int {
	return int(q.capacity)
}

// Mode returns the producer/consumer discipline the ring was built with.
func (q *Ring[T]) Mode() Mode {
	return modeOf(q.sp, q.sc)
}

// Dispose removes every remaining element in FIFO order and passes it to
// release, which may be nil. It returns the number of elements removed.
//
// Dispose must not run concurrently with any other operation. The ring is
// empty and reusable afterwards.
func (q *Ring[T]) Dispose(release func(T)) int {
	n := 0
	for {
		elem, ok := q.TryDequeue()
		if !ok {
			return n
		}
		if release != nil {
			release(elem)
		}
		n++
	}
}

// noCopy may be embedded into structs which must not be copied
// after the first use. See go vet's copylocks checker.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
