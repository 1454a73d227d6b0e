// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package lcq provides a bounded lock-free circular queue.
//
// A single type, [Ring], covers four producer/consumer disciplines:
//
//   - SPSC: Single-Producer Single-Consumer
//   - MPSC: Multi-Producer Single-Consumer
//   - SPMC: Single-Producer Multi-Consumer
//   - MPMC: Multi-Producer Multi-Consumer
//
// # Quick Start
//
// Direct constructors:
//
//	q := lcq.NewSPSC[Event](1024)
//	q := lcq.NewMPMC[*Request](4096)
//
// Builder API:
//
//	q := lcq.Build[Event](lcq.New(1024).SingleProducer().SingleConsumer()) // → SPSC
//	q := lcq.Build[Event](lcq.New(1024).SingleConsumer())                  // → MPSC
//	q := lcq.Build[Event](lcq.New(1024).SingleProducer())                  // → SPMC
//	q := lcq.Build[Event](lcq.New(1024))                                   // → MPMC
//
// # Basic Usage
//
// Every operation comes in a non-blocking and a blocking form:
//
//	q := lcq.NewMPMC[int](1024)
//
//	value := 42
//	if !q.TryEnqueue(&value) {
//	    // Queue is full
//	}
//	q.Enqueue(&value) // Spins with backoff until it succeeds
//
//	if elem, ok := q.TryDequeue(); ok {
//	    use(elem)
//	}
//	elem := q.Dequeue() // Spins with backoff until an element arrives
//
// TryEmplace and Emplace build the element in a callback:
//
//	q.Emplace(func(ev *Event) {
//	    ev.Kind = KindTick
//	    ev.At = time.Now()
//	})
//
// Bounded waiting is available through EnqueueRetry/DequeueRetry (returns
// [ErrWouldBlock]) and EnqueueContext/DequeueContext (returns ctx.Err()).
//
// # Slot Tags
//
// Each slot stores a tag packing (cycle, full) into one word, where
// cycle = position / capacity. A producer of position p may write only when
// the tag reads (cycle(p), empty), and a consumer may read only when it reads
// (cycle(p), full). Releasing a slot stores (cycle(p)+1, empty). The cycle
// tells apart a slot that has wrapped the ring several times, so a stale
// claimer can never mistake a later lap for its own.
//
// Values are published with a release store of the full tag and observed
// with an acquire load of the same tag.
//
// # Progress
//
//	SPSC: wait-free enqueue, wait-free dequeue
//	MPSC: lock-free enqueue, wait-free dequeue
//	SPMC: wait-free enqueue, lock-free dequeue
//	MPMC: lock-free enqueue, lock-free dequeue
//
// A multi-producer claim reads tail, checks that the slot under it shows
// (cycle(tail), empty), and only then moves tail with compare-and-swap. A
// lost compare-and-swap is retried against the new tail. A slot that is not
// ready while tail has not moved means the ring is full, and the Try
// operation returns false. Multi-consumer claims on head mirror this with
// the full tag. Try operations never wait for the other side: a producer
// that has claimed but not yet published makes its position read as empty,
// and a consumer that has claimed but not yet released makes its slot read
// as full.
//
// Single-sided paths order their stores so that tail moves before the full
// tag is published and head moves before the slot is released. Neither
// cursor can therefore be claimed past the other, and tail-head stays in
// [0, capacity].
//
// # Ordering
//
// SPSC and single-goroutine use are strictly FIFO. With multiple producers,
// elements are ordered by the tail position each producer claimed;
// producers are not serialized beyond that claim.
//
// # Capacity and Count
//
// Capacity rounds up to the next power of 2 and must be at least
// [MinCapacity]:
//
//	q := lcq.NewMPMC[int](32)   // Actual capacity: 32
//	q := lcq.NewMPMC[int](1000) // Actual capacity: 1024
//	q := lcq.NewMPMC[int](16)   // Panics
//
// Count, Empty and Full derive from a relaxed snapshot of the cursors. They
// may be stale under concurrent modification and stay within [0, Cap()].
//
// # Teardown
//
// The queue holds no OS resources. Values left in the ring are collected
// with it. When they own something that must be released explicitly, call
// Dispose once all producers and consumers have stopped:
//
//	q.Dispose(func(b *Buffer) { pool.Put(b) })
//
// # Thread Safety
//
// Violating the configured discipline (e.g., two producers on SPSC) causes
// undefined behavior including lost and duplicated elements.
//
// # Race Detection
//
// Go's race detector cannot observe happens-before edges established through
// atomix acquire/release operations on the slot tags, and may report the
// non-atomic payload copies as races. Concurrent tests are skipped when
// [RaceEnabled] is true.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/atomix] for atomic primitives with
// explicit memory ordering, [code.hybscloud.com/spin] to back off
// after a lost compare-and-swap, [code.hybscloud.com/iox] for backoff and semantic errors, and
// [golang.org/x/sys/cpu] for cache line padding.
package lcq
