package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync/atomic"
)

var idCounter atomic.Uint64

// NewID returns a short random hex identifier for markers and screenshots.
// If the system random source fails it falls back to a process counter.
func NewID() string {
	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		return fmt.Sprintf("id%06d", idCounter.Add(1))
	}
	return hex.EncodeToString(b[:])
}
