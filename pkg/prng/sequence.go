package prng

import (
	"crypto/rand"
	"encoding/binary"
	"time"
)

const modulus = 233280

// Sequence produces a reproducible stream of pseudo-random values from a
// numeric seed using a small linear congruential recurrence. It is meant for
// word selection, not for anything security-sensitive: the state space is tiny
// and the output is trivially predictable from any observed value.
//
// A Sequence is not safe for concurrent use.
type Sequence struct {
	state int64
}

// New returns a Sequence seeded from the current time mixed with entropy from
// crypto/rand, so two processes started in the same nanosecond still diverge.
// When the crypto source is unavailable the clock alone is used.
func New() *Sequence {
	seed := time.Now().UnixNano()

	var buf [8]byte
	if _, err := rand.Read(buf[:]); err == nil {
		seed ^= int64(binary.LittleEndian.Uint64(buf[:]))
	}

	return NewSeeded(seed)
}

// NewSeeded returns a Sequence with a fully determined stream: two Sequences
// built from the same seed produce identical values in identical order.
func NewSeeded(seed int64) *Sequence {
	// Reduce into [0, modulus) so negative seeds behave the same as their
	// positive residue.
	state := seed % modulus
	if state < 0 {
		state += modulus
	}
	return &Sequence{state: state}
}

// Next advances the sequence and returns a fraction in [0, 1).
func (s *Sequence) Next() float64 {
	s.state = (s.state*9301 + 49297) % modulus
	return float64(s.state) / modulus
}

// NextInt advances the sequence and returns an integer in [0, bound).
// A bound of zero or less yields 0 without advancing the state.
func (s *Sequence) NextInt(bound int) int {
	if bound <= 0 {
		return 0
	}
	return int(s.Next() * float64(bound))
}
