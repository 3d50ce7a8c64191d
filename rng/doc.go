// Package rng provides seeded pseudo-random number generation.
//
// Two interchangeable engines implement the Generator capability: a fast
// 32-bit xorshift and a long-period 128-bit xorshift-plus. Two engines
// constructed with the same seed produce identical output sequences for the
// same sequence of draw calls. The only non-deterministic primitive is the
// ambient entropy source (EntropyUint32/EntropyUint64), which exists purely
// for ad-hoc seeding and is never used inside a seeded draw path.
//
// These engines are not cryptographically secure.
package rng
