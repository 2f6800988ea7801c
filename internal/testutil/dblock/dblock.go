// Package dblock serializes test packages that share the local database.
// The integration suites truncate the console tables, so two packages
// running concurrently corrupt each other's fixtures.
package dblock

import (
	"net"
	"time"
)

const lockAddr = "127.0.0.1:45433"

// Acquire blocks until this process holds the cross-package lock and
// returns the release func. The lock is a TCP listener so it clears
// automatically if a test binary dies.
func Acquire() func() {
	for {
		ln, err := net.Listen("tcp", lockAddr)
		if err == nil {
			return func() { ln.Close() }
		}
		time.Sleep(50 * time.Millisecond)
	}
}
