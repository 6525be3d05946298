// Package prng implements a tiny deterministic pseudo-random sequence used to
// drive word selection in name generation.
//
// The generator is a classic linear congruential recurrence
// (state = state*9301 + 49297 mod 233280) chosen for reproducibility, not for
// statistical or cryptographic quality. Given the same seed it replays the
// same stream of picks, which makes generation runs repeatable in tests and
// debuggable in production.
//
// # Usage
//
//	seq := prng.NewSeeded(42)
//	f := seq.Next()      // fraction in [0, 1)
//	i := seq.NextInt(10) // integer in [0, 10)
//
// Use prng.New for an automatically seeded sequence; the seed mixes the clock
// with crypto/rand entropy so separate sessions do not collide.
package prng
