// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lcq_test

import (
	"slices"
	"testing"

	"code.hybscloud.com/lcq"
)

// ringCases lists one constructor per discipline.
var ringCases = []struct {
	name string
	mode lcq.Mode
	new  func(capacity int) *lcq.Ring[int]
}{
	{"SPSC", lcq.SPSC, lcq.NewSPSC[int]},
	{"MPSC", lcq.MPSC, lcq.NewMPSC[int]},
	{"SPMC", lcq.SPMC, lcq.NewSPMC[int]},
	{"MPMC", lcq.MPMC, lcq.NewMPMC[int]},
}

// =============================================================================
// Basic Operations
// =============================================================================

// TestFillDrain32 enqueues 0..31 into a 32-slot ring, checks that the 33rd
// insert fails, then drains 0..31 in order.
func TestFillDrain32(t *testing.T) {
	for tt := range slices.Values(ringCases) {
		t.Run(tt.name, func(t *testing.T) {
			q := tt.new(32)

			if q.Cap() != 32 {
				t.Fatalf("Cap: got %d, want 32", q.Cap())
			}
			if q.Mode() != tt.mode {
				t.Fatalf("Mode: got %v, want %v", q.Mode(), tt.mode)
			}

			for i := range 32 {
				v := i
				if !q.TryEnqueue(&v) {
					t.Fatalf("TryEnqueue(%d): got false, want true", i)
				}
			}

			// Full queue rejects and keeps its state
			v := 32
			if q.TryEnqueue(&v) {
				t.Fatal("TryEnqueue on full: got true, want false")
			}
			if q.Count() != 32 || !q.Full() || q.Empty() {
				t.Fatalf("full queue: Count=%d Full=%v Empty=%v", q.Count(), q.Full(), q.Empty())
			}

			for i := range 32 {
				val, ok := q.TryDequeue()
				if !ok {
					t.Fatalf("TryDequeue(%d): got false", i)
				}
				if val != i {
					t.Fatalf("TryDequeue(%d): got %d, want %d", i, val, i)
				}
			}

			// Empty queue returns zero value and keeps its state
			val, ok := q.TryDequeue()
			if ok || val != 0 {
				t.Fatalf("TryDequeue on empty: got (%d, %v), want (0, false)", val, ok)
			}
			if q.Count() != 0 || !q.Empty() || q.Full() {
				t.Fatalf("empty queue: Count=%d Full=%v Empty=%v", q.Count(), q.Full(), q.Empty())
			}
		})
	}
}

// TestFullDoesNotOverwrite checks that a rejected insert leaves the oldest
// element in place.
func TestFullDoesNotOverwrite(t *testing.T) {
	for tt := range slices.Values(ringCases) {
		t.Run(tt.name, func(t *testing.T) {
			q := tt.new(32)
			for i := range 32 {
				v := i + 100
				q.Enqueue(&v)
			}
			for range 10 {
				v := -1
				if q.TryEnqueue(&v) {
					t.Fatal("TryEnqueue on full: got true")
				}
			}
			if got := q.Dequeue(); got != 100 {
				t.Fatalf("Dequeue: got %d, want 100", got)
			}
			if q.Count() != 31 {
				t.Fatalf("Count: got %d, want 31", q.Count())
			}
		})
	}
}

// TestRoundTrip checks FIFO order for every fill level up to capacity.
func TestRoundTrip(t *testing.T) {
	for tt := range slices.Values(ringCases) {
		t.Run(tt.name, func(t *testing.T) {
			q := tt.new(64)
			for n := 1; n <= q.Cap(); n++ {
				for i := range n {
					v := n*1000 + i
					q.Enqueue(&v)
				}
				if q.Count() != n {
					t.Fatalf("n=%d: Count got %d", n, q.Count())
				}
				for i := range n {
					if got := q.Dequeue(); got != n*1000+i {
						t.Fatalf("n=%d: Dequeue(%d) got %d, want %d", n, i, got, n*1000+i)
					}
				}
				if !q.Empty() {
					t.Fatalf("n=%d: not empty after drain", n)
				}
			}
		})
	}
}

// TestWrapAround runs many laps so every slot is reused with growing cycles.
func TestWrapAround(t *testing.T) {
	for tt := range slices.Values(ringCases) {
		t.Run(tt.name, func(t *testing.T) {
			q := tt.new(32)
			next, want := 0, 0
			for round := range 200 {
				// Uneven batch sizes shift the slot index every lap.
				batch := 1 + round%32
				for range batch {
					v := next
					if !q.TryEnqueue(&v) {
						t.Fatalf("round %d: TryEnqueue(%d) failed", round, v)
					}
					next++
				}
				for range batch {
					got, ok := q.TryDequeue()
					if !ok {
						t.Fatalf("round %d: TryDequeue failed", round)
					}
					if got != want {
						t.Fatalf("round %d: got %d, want %d", round, got, want)
					}
					want++
				}
			}
		})
	}
}

// TestInterleaved keeps the ring partially full while cycling through it.
func TestInterleaved(t *testing.T) {
	for tt := range slices.Values(ringCases) {
		t.Run(tt.name, func(t *testing.T) {
			q := tt.new(32)
			want := 0
			for i := range 20 {
				v := i
				q.Enqueue(&v)
			}
			for i := 20; i < 5000; i++ {
				v := i
				if !q.TryEnqueue(&v) {
					t.Fatalf("TryEnqueue(%d) failed at Count=%d", i, q.Count())
				}
				if got := q.Dequeue(); got != want {
					t.Fatalf("Dequeue: got %d, want %d", got, want)
				}
				want++
			}
			if q.Count() != 20 {
				t.Fatalf("Count: got %d, want 20", q.Count())
			}
		})
	}
}

// =============================================================================
// Edge Cases - Zero values, pointers, structs
// =============================================================================

// TestZeroValue tests that zero is a valid value.
func TestZeroValue(t *testing.T) {
	q := lcq.NewMPMC[int](32)
	v := 0
	if !q.TryEnqueue(&v) {
		t.Fatal("enqueue 0 failed")
	}
	val, ok := q.TryDequeue()
	if !ok {
		t.Fatal("dequeue failed")
	}
	if val != 0 {
		t.Fatalf("got %d, want 0", val)
	}
}

// TestNilPointer tests that nil is a valid element for pointer types.
func TestNilPointer(t *testing.T) {
	q := lcq.NewSPMC[*int](32)
	var p *int
	if !q.TryEnqueue(&p) {
		t.Fatal("enqueue nil failed")
	}
	got, ok := q.TryDequeue()
	if !ok || got != nil {
		t.Fatalf("got (%v, %v), want (nil, true)", got, ok)
	}
}

// TestCopySemantics tests that the queue stores a copy of *elem.
func TestCopySemantics(t *testing.T) {
	type event struct {
		ID   int
		Tags [4]string
	}
	q := lcq.NewMPSC[event](32)

	ev := event{ID: 1, Tags: [4]string{"a", "b"}}
	q.Enqueue(&ev)
	ev.ID = 2
	ev.Tags[0] = "z"

	got := q.Dequeue()
	if got.ID != 1 || got.Tags[0] != "a" || got.Tags[1] != "b" {
		t.Fatalf("got %+v, want copy taken at enqueue", got)
	}
}

// =============================================================================
// Capacity Tests
// =============================================================================

// TestCapacityRounding tests that capacity is rounded up to next power of 2.
func TestCapacityRounding(t *testing.T) {
	tests := []struct {
		input    int
		expected int
	}{
		{32, 32},
		{33, 64},
		{63, 64},
		{64, 64},
		{100, 128},
		{1000, 1024},
		{1024, 1024},
	}

	for _, tt := range tests {
		t.Run("", func(t *testing.T) {
			q := lcq.NewMPMC[int](tt.input)
			if q.Cap() != tt.expected {
				t.Fatalf("NewMPMC(%d).Cap() = %d, want %d", tt.input, q.Cap(), tt.expected)
			}
		})
	}
}

// TestPanicOnSmallCapacity tests that capacity < 32 causes panic.
func TestPanicOnSmallCapacity(t *testing.T) {
	for tt := range slices.Values(ringCases) {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil {
					t.Fatal("expected panic for capacity < 32")
				}
			}()
			tt.new(31)
		})
	}
}

// TestCountClamped checks Count stays within [0, Cap] through a fill/drain.
func TestCountClamped(t *testing.T) {
	for tt := range slices.Values(ringCases) {
		t.Run(tt.name, func(t *testing.T) {
			q := tt.new(32)
			for i := range 40 {
				v := i
				q.TryEnqueue(&v)
				if c := q.Count(); c < 0 || c > q.Cap() {
					t.Fatalf("Count out of range: %d", c)
				}
			}
			for range 40 {
				q.TryDequeue()
				if c := q.Count(); c < 0 || c > q.Cap() {
					t.Fatalf("Count out of range: %d", c)
				}
			}
		})
	}
}
