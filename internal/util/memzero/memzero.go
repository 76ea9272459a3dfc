// Package memzero clears secret buffers.
package memzero

import "runtime"

// Zero overwrites b with zeros. The KeepAlive keeps the stores from being
// eliminated as dead writes.
//
//go:noinline
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}
