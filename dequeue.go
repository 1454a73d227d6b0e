// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lcq

import (
	"context"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/spin"
)

// TryDequeue removes and returns the element at the head of the queue
// (non-blocking). Returns (zero-value, false) if the queue is empty, which
// includes a head element whose producer has claimed but not yet published
// it.
func (q *Ring[T]) TryDequeue() (T, bool) {
	if q.sc {
		return q.dequeueSingle()
	}
	return q.dequeueMulti(q.head.LoadAcquire())
}

// Dequeue removes and returns an element, retrying with backoff until one
// is available. Blocks indefinitely if no producer ever enqueues.
func (q *Ring[T]) Dequeue() T {
	if elem, ok := q.TryDequeue(); ok {
		return elem
	}
	backoff := iox.Backoff{}
	for {
		if elem, ok := q.TryDequeue(); ok {
			return elem
		}
		backoff.Wait()
	}
}

// DequeueRetry makes up to attempts calls to TryDequeue with backoff in
// between. Returns (zero-value, ErrWouldBlock) if every attempt fails.
func (q *Ring[T]) DequeueRetry(attempts int) (T, error) {
	backoff := iox.Backoff{}
	for i := 0; i < attempts; i++ {
		if elem, ok := q.TryDequeue(); ok {
			return elem, nil
		}
		backoff.Wait()
	}
	var zero T
	return zero, ErrWouldBlock
}

// DequeueContext retries TryDequeue with backoff until it succeeds or ctx
// is done, in which case (zero-value, ctx.Err()) is returned.
func (q *Ring[T]) DequeueContext(ctx context.Context) (T, error) {
	backoff := iox.Backoff{}
	for {
		if elem, ok := q.TryDequeue(); ok {
			return elem, nil
		}
		if err := ctx.Err(); err != nil {
			var zero T
			return zero, err
		}
		backoff.Wait()
	}
}

// dequeueSingle is the wait-free single consumer path.
// The head slot's tag alone tells whether its producer has published.
// Head moves before the slot is released, so a producer never claims a
// position more than capacity ahead of head.
func (q *Ring[T]) dequeueSingle() (T, bool) {
	head := q.head.LoadRelaxed()
	slot := q.slotOf(head)
	if slot.load() != fullTag(q.cycleOf(head)) {
		var zero T
		return zero, false
	}
	q.head.StoreRelease(head + 1)
	return q.take(slot, head), true
}

// dequeueMulti claims head with compare-and-swap once the slot at head
// shows the full tag of its lap. head is the caller's snapshot and may be
// stale.
func (q *Ring[T]) dequeueMulti(head uint64) (T, bool) {
	sw := spin.Wait{}
	for {
		slot := q.slotOf(head)
		if slot.load() != fullTag(q.cycleOf(head)) {
			// Either nothing is published at head yet or head is stale.
			now := q.head.LoadAcquire()
			if now == head {
				var zero T
				return zero, false
			}
			head = now
			continue
		}
		if q.head.CompareAndSwapAcqRel(head, head+1) {
			return q.take(slot, head), true
		}
		sw.Once()
		head = q.head.LoadAcquire()
	}
}

// take moves the element out of a claimed slot and hands the slot to the
// producer of the next lap.
func (q *Ring[T]) take(s *slot[T], pos uint64) T {
	elem := s.data
	var zero T
	s.data = zero
	s.store(emptyTag(q.cycleOf(pos + q.capacity)))
	return elem
}
