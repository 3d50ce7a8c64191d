package rng

import (
	crand "crypto/rand"
	"encoding/binary"
)

// EntropyUint32 returns a non-deterministic 32-bit value from the
// process-wide entropy source. It exists only for ad-hoc engine seeding and
// is explicitly not reproducible.
func EntropyUint32() uint32 {
	var b [4]byte
	// crypto/rand.Read never returns an error on supported platforms.
	_, _ = crand.Read(b[:])
	return binary.LittleEndian.Uint32(b[:])
}

// EntropyUint64 returns a non-deterministic 64-bit value from the
// process-wide entropy source.
func EntropyUint64() uint64 {
	var b [8]byte
	_, _ = crand.Read(b[:])
	return binary.LittleEndian.Uint64(b[:])
}
