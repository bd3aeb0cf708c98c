// Package id generates the identifiers stamped on campaign runs and
// preview requests.
package id

import (
	"crypto/rand"
	"time"
)

// Crockford's Base32 alphabet (excludes I, L, O, U to avoid confusion).
const alphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

// NewULID generates a ULID: a 26-character identifier with a 48-bit
// millisecond timestamp prefix and 80 random bits. IDs sort
// lexicographically by creation time, so run IDs in logs and delivery
// reports line up chronologically.
func NewULID() string {
	var ulid [26]byte

	ms := uint64(time.Now().UnixMilli())
	for i := 9; i >= 0; i-- {
		ulid[i] = alphabet[ms&0x1f]
		ms >>= 5
	}

	var random [10]byte
	_, _ = rand.Read(random[:]) // never fails on supported platforms

	// 80 random bits drained 5 at a time yield exactly 16 characters.
	acc, bits, pos := uint32(0), 0, 10
	for _, b := range random {
		acc = acc<<8 | uint32(b)
		bits += 8
		for bits >= 5 {
			bits -= 5
			ulid[pos] = alphabet[(acc>>bits)&0x1f]
			pos++
		}
	}

	return string(ulid[:])
}
