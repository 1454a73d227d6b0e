// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lcq

// MinCapacity is the smallest accepted capacity.
const MinCapacity = 32

// Options configures queue creation.
type Options struct {
	// Producer/Consumer constraints (determines the claim strategy)
	singleProducer bool
	singleConsumer bool

	// Capacity (rounds up to next power of 2)
	capacity int
}

// Builder creates queues with fluent configuration.
//
// Example:
//
//	// SPSC ring (wait-free on both sides)
//	q := lcq.BuildSPSC[Event](lcq.New(1024).SingleProducer().SingleConsumer())
//
//	// MPMC ring (default, general purpose)
//	q := lcq.Build[Request](lcq.New(4096))
//
//	// MPSC ring (wait-free consumer)
//	q := lcq.Build[Sample](lcq.New(4096).SingleConsumer())
type Builder struct {
	opts Options
}

// New creates a queue builder with the given capacity.
//
// Capacity rounds up to the next power of 2.
// For example, capacity=32 results in actual capacity=32, capacity=1000
// results in actual capacity=1024.
//
// Panics if capacity < MinCapacity.
func New(capacity int) *Builder {
	if capacity < MinCapacity {
		panic("lcq: capacity must be >= 32")
	}
	return &Builder{opts: Options{capacity: capacity}}
}

// SingleProducer declares that only one goroutine will enqueue.
// The producer side becomes wait-free.
func (b *Builder) SingleProducer() *Builder {
	b.opts.singleProducer = true
	return b
}

// SingleConsumer declares that only one goroutine will dequeue.
// The consumer side becomes wait-free.
func (b *Builder) SingleConsumer() *Builder {
	b.opts.singleConsumer = true
	return b
}

// Mode returns the discipline selected by the builder constraints.
func (b *Builder) Mode() Mode {
	return modeOf(b.opts.singleProducer, b.opts.singleConsumer)
}

// Build creates a Ring[T] for the configured discipline.
//
//	SingleProducer + SingleConsumer → SPSC
//	SingleProducer only             → SPMC
//	SingleConsumer only             → MPSC
//	Neither                         → MPMC
func Build[T any](b *Builder) *Ring[T] {
	return newRing[T](b.opts)
}

// BuildSPSC creates an SPSC ring.
// Panics if builder is not configured with SingleProducer().SingleConsumer().
func BuildSPSC[T any](b *Builder) *Ring[T] {
	if b.Mode() != SPSC {
		panic("lcq: BuildSPSC requires SingleProducer().SingleConsumer()")
	}
	return newRing[T](b.opts)
}

// BuildMPSC creates an MPSC ring.
// Panics if builder is not configured with SingleConsumer() only.
func BuildMPSC[T any](b *Builder) *Ring[T] {
	if b.Mode() != MPSC {
		panic("lcq: BuildMPSC requires SingleConsumer() without SingleProducer()")
	}
	return newRing[T](b.opts)
}

// BuildSPMC creates an SPMC ring.
// Panics if builder is not configured with SingleProducer() only.
func BuildSPMC[T any](b *Builder) *Ring[T] {
	if b.Mode() != SPMC {
		panic("lcq: BuildSPMC requires SingleProducer() without SingleConsumer()")
	}
	return newRing[T](b.opts)
}

// BuildMPMC creates an MPMC ring.
// Panics if builder has any constraints set.
func BuildMPMC[T any](b *Builder) *Ring[T] {
	if b.Mode() != MPMC {
		panic("lcq: BuildMPMC requires no constraints")
	}
	return newRing[T](b.opts)
}

// NewSPSC creates a single-producer single-consumer ring.
func NewSPSC[T any](capacity int) *Ring[T] {
	return BuildSPSC[T](New(capacity).SingleProducer().SingleConsumer())
}

// NewMPSC creates a multi-producer single-consumer ring.
func NewMPSC[T any](capacity int) *Ring[T] {
	return BuildMPSC[T](New(capacity).SingleConsumer())
}

// NewSPMC creates a single-producer multi-consumer ring.
func NewSPMC[T any](capacity int) *Ring[T] {
	return BuildSPMC[T](New(capacity).SingleProducer())
}

// NewMPMC creates a multi-producer multi-consumer ring.
func NewMPMC[T any](capacity int) *Ring[T] {
	return BuildMPMC[T](New(capacity))
}

// roundToPow2 rounds n up to the next power of 2.
func roundToPow2(n int) int {
	if n < 2 {
		return 2
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return n + 1
}
