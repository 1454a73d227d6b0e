// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lcq

import (
	"context"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/spin"
)

// TryEnqueue adds a copy of *elem to the queue (non-blocking).
// Returns false if the queue is full, which includes a tail slot whose
// previous-lap consumer has claimed but not yet released it.
func (q *Ring[T]) TryEnqueue(elem *T) bool {
	if q.sp {
		return q.enqueueSingle(elem)
	}
	return q.enqueueMulti(q.tail.LoadAcquire(), elem)
}

// Enqueue adds a copy of *elem to the queue, retrying with backoff until
// it succeeds. Blocks indefinitely if no consumer makes room.
func (q *Ring[T]) Enqueue(elem *T) {
	if q.TryEnqueue(elem) {
		return
	}
	backoff := iox.Backoff{}
	for !q.TryEnqueue(elem) {
		backoff.Wait()
	}
}

// TryEmplace builds an element with init and adds it to the queue
// (non-blocking). Returns false if the queue is full; init is not called
// when the queue is observed full.
//
// init runs on a fresh zero value before any position is claimed, so a
// panic in init propagates with the queue left unchanged.
func (q *Ring[T]) TryEmplace(init func(*T)) bool {
	if q.Full() {
		return false
	}
	var elem T
	init(&elem)
	return q.TryEnqueue(&elem)
}

// Emplace builds an element with init and adds it to the queue, retrying
// until it succeeds. init is called exactly once.
func (q *Ring[T]) Emplace(init func(*T)) {
	var elem T
	init(&elem)
	q.Enqueue(&elem)
}

// EnqueueRetry makes up to attempts calls to TryEnqueue with backoff in
// between. Returns ErrWouldBlock if every attempt fails.
func (q *Ring[T]) EnqueueRetry(elem *T, attempts int) error {
	backoff := iox.Backoff{}
	for i := 0; i < attempts; i++ {
		if q.TryEnqueue(elem) {
			return nil
		}
		backoff.Wait()
	}
	return ErrWouldBlock
}

// EnqueueContext retries TryEnqueue with backoff until it succeeds or ctx
// is done, in which case ctx.Err() is returned.
func (q *Ring[T]) EnqueueContext(ctx context.Context, elem *T) error {
	backoff := iox.Backoff{}
	for !q.TryEnqueue(elem) {
		if err := ctx.Err(); err != nil {
			return err
		}
		backoff.Wait()
	}
	return nil
}

// enqueueSingle is the wait-free single producer path.
// Only the producer writes tail, so nothing is claimed until the slot
// is known to be free. Tail moves before the full tag is stored, so a
// consumer never claims a position at or past tail.
func (q *Ring[T]) enqueueSingle(elem *T) bool {
	tail := q.tail.LoadRelaxed()
	if tail-q.cachedHead >= q.capacity {
		q.cachedHead = q.head.LoadAcquire()
		if tail-q.cachedHead >= q.capacity {
			return false
		}
	}

	slot := q.slotOf(tail)
	cycle := q.cycleOf(tail)
	if slot.load() != emptyTag(cycle) {
		// Consumer of the previous lap has claimed but not released it.
		return false
	}
	q.tail.StoreRelease(tail + 1)
	slot.data = *elem
	slot.store(fullTag(cycle))
	return true
}

// enqueueMulti claims tail with compare-and-swap once the slot at tail
// shows the empty tag of its lap. tail is the caller's snapshot and may be
// stale. The slot is released only after the consumer of the previous lap
// has moved head past it, so a claim never takes tail more than capacity
// ahead of head.
func (q *Ring[T]) enqueueMulti(tail uint64, elem *T) bool {
	sw := spin.Wait{}
	for {
		slot := q.slotOf(tail)
		cycle := q.cycleOf(tail)
		if slot.load() != emptyTag(cycle) {
			// Either the previous lap is still live (full) or tail is stale.
			now := q.tail.LoadAcquire()
			if now == tail {
				return false
			}
			tail = now
			continue
		}
		if q.tail.CompareAndSwapAcqRel(tail, tail+1) {
			slot.data = *elem
			slot.store(fullTag(cycle))
			return true
		}
		sw.Once()
		tail = q.tail.LoadAcquire()
	}
}
