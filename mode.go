// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lcq

import (
	"fmt"
	"strings"
)

// Mode is a producer/consumer cardinality.
type Mode uint8

const (
	MPMC Mode = iota // Multi-Producer Multi-Consumer
	MPSC             // Multi-Producer Single-Consumer
	SPMC             // Single-Producer Multi-Consumer
	SPSC             // Single-Producer Single-Consumer
)

func modeOf(sp, sc bool) Mode {
	switch {
	case sp && sc:
		return SPSC
	case sp:
		return SPMC
	case sc:
		return MPSC
	default:
		return MPMC
	}
}

// SingleProducer reports whether m allows only one enqueuing goroutine.
func (m Mode) SingleProducer() bool { return m == SPSC || m == SPMC }

// SingleConsumer reports whether m allows only one dequeuing goroutine.
func (m Mode) SingleConsumer() bool { return m == SPSC || m == MPSC }

func (m Mode) String() string {
	switch m {
	case MPMC:
		return "MPMC"
	case MPSC:
		return "MPSC"
	case SPMC:
		return "SPMC"
	case SPSC:
		return "SPSC"
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// ParseMode parses a mode name such as "spsc" or "MPMC".
func ParseMode(s string) (Mode, error) {
	switch strings.ToUpper(s) {
	case "MPMC":
		return MPMC, nil
	case "MPSC":
		return MPSC, nil
	case "SPMC":
		return SPMC, nil
	case "SPSC":
		return SPSC, nil
	}
	return 0, fmt.Errorf("lcq: unknown mode %q", s)
}

// Configure applies the constraints of m to the builder.
func (m Mode) Configure(b *Builder) *Builder {
	if m.SingleProducer() {
		b.SingleProducer()
	}
	if m.SingleConsumer() {
		b.SingleConsumer()
	}
	return b
}
