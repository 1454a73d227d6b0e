// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package lcq

// RaceEnabled is true when the race detector is active.
// Tests skip concurrent ring scenarios under -race: slot payloads are
// handed off through atomix acquire/release tags the detector cannot see.
const RaceEnabled = true
