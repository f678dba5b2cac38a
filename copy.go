// SPDX-License-Identifier: MIT
// Source: github.com/avaneev/lzav-go

package lzav

// referenceCopy copies length bytes from dst[outputPos-dist:] to
// dst[outputPos:]. The format guarantees dist >= length for every
// reference it emits, so the built-in copy (which handles forward
// overlap as a memmove) is always correct; the byte-by-byte fallback
// below exists only as a safety net against a corrupt or adversarial
// stream where that invariant does not hold, so a malformed dist < length
// reference still reproduces its repeating pattern instead of silently
// aliasing unread bytes.
func referenceCopy(dst []byte, outputPos, dist, length int) {
	mPos := outputPos - dist

	if dist >= length {
		copy(dst[outputPos:outputPos+length], dst[mPos:mPos+length])
		return
	}

	for i := 0; i < length; i++ {
		dst[outputPos+i] = dst[mPos+i]
	}
}
