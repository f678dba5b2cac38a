// SPDX-License-Identifier: MIT
// Source: github.com/avaneev/lzav-go

package lzav

// Every block begins with a header byte: bits 6-7 are either a carry
// payload (literal and 24-bit-offset blocks) or this block's own low two
// offset bits (10-bit and 18-bit-offset blocks); bits 4-5 are the block
// type; bits 0-3 are a length nibble. A literal nibble of 0 means the
// real length is >= 16 and one or two extension bytes follow; a reference
// nibble of 0 means the real length is >= refMin+15 and one extension
// byte follows. Nonzero nibbles encode the length directly (literals) or
// offset by refMin-1 (references), so the two ranges are contiguous with
// no gap at the extension boundary.

// writeBlock appends one pending-literal-run-then-reference block pair to
// dst at op, returning the new op. cbp holds the byte offset of the most
// recently written literal or 24-bit-offset reference header that has not
// yet donated its carry bits, or -1 if none is pending; *cbp is updated to
// reflect the state after this call.
func writeBlock(dst []byte, op, lc, rc, d int, ipa []byte, cbp *int, mref int) int {
	cb := *cbp

	for lc >= litLen {
		cb = op
		*cbp = op
		dst[op] = 0
		dst[op+1] = 255
		dst[op+2] = 255
		op += 3
		copy(dst[op:op+litLen], ipa[:litLen])
		op += litLen
		ipa = ipa[litLen:]
		lc -= litLen
	}

	if lc != 0 {
		cb = op
		*cbp = op

		switch {
		case lc < 16:
			dst[op] = byte(lc)
			op++
		case lc < 16+255:
			dst[op] = 0
			dst[op+1] = byte(lc - 16)
			op += 2
		default:
			dst[op] = 0
			dst[op+1] = 255
			dst[op+2] = byte(lc - 16 - 255)
			op += 3
		}

		copy(dst[op:op+lc], ipa[:lc])
		op += lc
	}

	if cb >= 0 {
		dst[cb] |= byte(d << 6)
		d >>= 2
		*cbp = -1
	}

	rc -= mref

	switch {
	case d < 1<<10:
		dLow := d & 3
		dHigh := d >> 2

		if rc <= 14 {
			dst[op] = byte(dLow<<6 | blkRef10<<4 | (rc + 1))
			dst[op+1] = byte(dHigh)
			return op + 2
		}

		dst[op] = byte(dLow<<6 | blkRef10<<4)
		dst[op+1] = byte(dHigh)
		dst[op+2] = byte(rc - 15)
		return op + 3

	case d < 1<<18:
		dLow := d & 3
		dHigh := d >> 2

		if rc <= 14 {
			dst[op] = byte(dLow<<6 | blkRef18<<4 | (rc + 1))
			dst[op+1] = byte(dHigh)
			dst[op+2] = byte(dHigh >> 8)
			return op + 3
		}

		dst[op] = byte(dLow<<6 | blkRef18<<4)
		dst[op+1] = byte(dHigh)
		dst[op+2] = byte(dHigh >> 8)
		dst[op+3] = byte(rc - 15)
		return op + 4

	default:
		*cbp = op // donates its own top two bits to the next reference, unless a literal block comes first

		if rc <= 14 {
			dst[op] = byte(blkRef24<<4 | (rc + 1))
			dst[op+1] = byte(d)
			dst[op+2] = byte(d >> 8)
			dst[op+3] = byte(d >> 16)
			return op + 4
		}

		dst[op] = byte(blkRef24 << 4)
		dst[op+1] = byte(d)
		dst[op+2] = byte(d >> 8)
		dst[op+3] = byte(d >> 16)
		dst[op+4] = byte(rc - 15)
		return op + 5
	}
}

// writeFin emits the mandatory trailing literal run of a stream: lc bytes
// (lc >= litFin), split into litLen-sized chunks if needed, with the very
// last chunk guaranteed to fall in [litFin, 15] so it needs no extension
// byte.
func writeFin(dst []byte, op, lc int, ipa []byte) int {
	for lc > 15 {
		wc := lc - litFin
		if wc > litLen {
			wc = litLen
		}

		switch {
		case wc < 16:
			dst[op] = byte(wc)
			op++
		case wc < 16+255:
			dst[op] = 0
			dst[op+1] = byte(wc - 16)
			op += 2
		default:
			dst[op] = 0
			dst[op+1] = 255
			dst[op+2] = byte(wc - 16 - 255)
			op += 3
		}

		copy(dst[op:op+wc], ipa[:wc])
		op += wc
		ipa = ipa[wc:]
		lc -= wc
	}

	dst[op] = byte(lc)
	op++
	copy(dst[op:op+lc], ipa[:lc])

	return op + lc
}
