// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lcq

// fullFlag marks a slot as holding a published value.
// The remaining 63 bits store the cycle the slot belongs to.
const fullFlag = 1 << 63

// cycleMask extracts the cycle from a tag.
const cycleMask = fullFlag - 1

// tag packs (cycle, full) into one word so that publish and claim
// happen at a single atomic store.
//
//	empty, ready for position p: cycle(p)
//	published by position p:     cycle(p) | fullFlag
//	released by position p:      cycle(p + capacity)
type tag uint64

func emptyTag(cycle uint64) tag { return tag(cycle & cycleMask) }

func fullTag(cycle uint64) tag { return tag(cycle&cycleMask | fullFlag) }

func (t tag) cycle() uint64 { return uint64(t) & cycleMask }

func (t tag) full() bool { return uint64(t)&fullFlag != 0 }
