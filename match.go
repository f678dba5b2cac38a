// SPDX-License-Identifier: MIT
// Source: github.com/avaneev/lzav-go

package lzav

import (
	"encoding/binary"
	"math/bits"
)

// matchLen returns the length of the common prefix of a and b, bounded by
// limit, using the word-XOR/trailing-zero-count technique: two equal
// little-endian words XOR to zero, and the position of the first set bit
// in a non-zero XOR locates the first differing byte. Decoding both
// operands as little-endian beforehand means the byte position falls out
// of the trailing-zero count on every host, with no separate big-endian
// path needed.
func matchLen(a, b []byte, limit int) int {
	if limit > len(a) {
		limit = len(a)
	}
	if limit > len(b) {
		limit = len(b)
	}

	i := 0

	for i+8 <= limit {
		va := binary.LittleEndian.Uint64(a[i:])
		vb := binary.LittleEndian.Uint64(b[i:])
		if d := va ^ vb; d != 0 {
			return i + bits.TrailingZeros64(d)>>3
		}
		i += 8
	}

	for i+4 <= limit {
		va := binary.LittleEndian.Uint32(a[i:])
		vb := binary.LittleEndian.Uint32(b[i:])
		if d := va ^ vb; d != 0 {
			return i + bits.TrailingZeros32(d)>>3
		}
		i += 4
	}

	for i < limit && a[i] == b[i] {
		i++
	}

	return i
}

// verifyPrefix reports whether the refMin-byte prefixes at src[ip:] and
// src[wpo:] are identical, bounds-checking both before comparing.
func verifyPrefix(src []byte, ip, wpo int) bool {
	if wpo < 0 || wpo+refMin > len(src) || ip+refMin > len(src) {
		return false
	}
	return matchLen(src[ip:], src[wpo:], refMin) == refMin
}
