// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lcq

import "code.hybscloud.com/iox"

// ErrWouldBlock indicates the operation could not complete within the
// attempts it was given.
//
// Try operations report full/empty with a boolean and never return it.
// It is returned by EnqueueRetry (queue stayed full) and DequeueRetry
// (queue stayed empty).
//
// ErrWouldBlock is a control flow signal, not a failure. This is an alias
// for [iox.ErrWouldBlock] for ecosystem consistency.
//
// Example:
//
//	if err := q.EnqueueRetry(&item, 64); lcq.IsWouldBlock(err) {
//	    dropped.Add(1) // Shed load instead of waiting
//	}
var ErrWouldBlock = iox.ErrWouldBlock

// IsWouldBlock reports whether err indicates the operation would block.
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal (not a failure).
// Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition.
// Returns true for nil or ErrWouldBlock.
// Delegates to [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}
