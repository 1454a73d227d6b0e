// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command lcqbench stress-tests a ring and compares it with a buffered channel.
//
// Usage:
//
//	go run ./cmd/lcqbench -mode mpmc -producers 4 -consumers 2 -n 1000000
package main

import (
	"flag"
	"fmt"
	"os"
	"sync"
	"time"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/lcq"
	"github.com/valyala/fastrand"
)

type config struct {
	mode      lcq.Mode
	capacity  int
	producers int
	consumers int
	items     int
	burst     int
}

type result struct {
	elapsed  time.Duration
	count    int64
	sum      uint64
	expected uint64
}

func main() {
	modeName := flag.String("mode", "mpmc", "queue mode: spsc, mpsc, spmc, mpmc")
	capacity := flag.Int("cap", 1024, "queue capacity (power of 2, >= 32)")
	producers := flag.Int("producers", 4, "producer goroutines")
	consumers := flag.Int("consumers", 2, "consumer goroutines")
	items := flag.Int("n", 1_000_000, "items per producer")
	burst := flag.Int("burst", 64, "max random burst length per producer")
	flag.Parse()

	mode, err := lcq.ParseMode(*modeName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	cfg := config{
		mode:      mode,
		capacity:  *capacity,
		producers: *producers,
		consumers: *consumers,
		items:     *items,
		burst:     max(*burst, 1),
	}
	if err := cfg.validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	total := cfg.producers * cfg.items
	fmt.Printf("Benchmarking %s ring (cap=%d, producers=%d, consumers=%d, items=%d)\n",
		cfg.mode, cfg.capacity, cfg.producers, cfg.consumers, total)
	fmt.Println("─────────────────────────────────────────────────")

	ring := runRing(cfg)
	ch := runChannel(cfg)

	ringPerOp := float64(ring.elapsed.Nanoseconds()) / float64(total)
	chPerOp := float64(ch.elapsed.Nanoseconds()) / float64(total)

	fmt.Printf("\nResults (enqueue + dequeue per item):\n")
	fmt.Printf("  Ring:     %v (%.2f ns/op)\n", ring.elapsed, ringPerOp)
	fmt.Printf("  Channel:  %v (%.2f ns/op)\n", ch.elapsed, chPerOp)
	fmt.Printf("\nThroughput:\n")
	fmt.Printf("  Ring:     %.2f M ops/sec\n", 1000/ringPerOp)
	fmt.Printf("  Channel:  %.2f M ops/sec\n", 1000/chPerOp)

	if ring.count != int64(total) || ring.sum != ring.expected {
		fmt.Fprintf(os.Stderr, "\nverification failed: count=%d/%d sum=%d/%d\n",
			ring.count, total, ring.sum, ring.expected)
		os.Exit(1)
	}
	fmt.Printf("\nVerified: %d items delivered exactly once\n", ring.count)
}

func (c config) validate() error {
	switch {
	case c.producers < 1 || c.consumers < 1:
		return fmt.Errorf("lcqbench: need at least one producer and one consumer")
	case c.mode.SingleProducer() && c.producers != 1:
		return fmt.Errorf("lcqbench: %s requires exactly one producer", c.mode)
	case c.mode.SingleConsumer() && c.consumers != 1:
		return fmt.Errorf("lcqbench: %s requires exactly one consumer", c.mode)
	case c.capacity < lcq.MinCapacity:
		return fmt.Errorf("lcqbench: capacity must be >= %d", lcq.MinCapacity)
	}
	return nil
}

// value encodes producer id and sequence so that every item is distinct.
func value(producer, seq int) uint64 {
	return uint64(producer)<<32 | uint64(seq)
}

func expectedSum(c config) uint64 {
	var sum uint64
	for p := range c.producers {
		for i := range c.items {
			sum += value(p, i)
		}
	}
	return sum
}

func runRing(c config) result {
	q := lcq.Build[uint64](c.mode.Configure(lcq.New(c.capacity)))
	total := int64(c.producers * c.items)

	var wg sync.WaitGroup
	var claimed, count atomix.Int64
	var sum atomix.Uint64

	start := time.Now()
	for p := range c.producers {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			var rng fastrand.RNG
			rng.Seed(uint32(id) + 1)
			for i := 0; i < c.items; {
				// Random bursts vary the occupancy seen by the claim paths.
				n := min(int(rng.Uint32n(uint32(c.burst)))+1, c.items-i)
				for j := 0; j < n; j++ {
					v := value(id, i+j)
					q.Enqueue(&v)
				}
				i += n
			}
		}(p)
	}
	for range c.consumers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var local uint64
			var n int64
			for claimed.Add(1) <= total {
				local += q.Dequeue()
				n++
			}
			sum.Add(local)
			count.Add(n)
		}()
	}
	wg.Wait()

	return result{
		elapsed:  time.Since(start),
		count:    count.Load(),
		sum:      sum.Load(),
		expected: expectedSum(c),
	}
}

func runChannel(c config) result {
	ch := make(chan uint64, c.capacity)
	total := int64(c.producers * c.items)

	var wg sync.WaitGroup
	var claimed atomix.Int64

	start := time.Now()
	for p := range c.producers {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for i := range c.items {
				ch <- value(id, i)
			}
		}(p)
	}
	for range c.consumers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for claimed.Add(1) <= total {
				<-ch
			}
		}()
	}
	wg.Wait()
	return result{elapsed: time.Since(start), count: total}
}
