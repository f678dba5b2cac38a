// SPDX-License-Identifier: MIT
// Source: github.com/avaneev/lzav-go

package lzav

import "io"

// Decompress decodes a LZAV stream from src directly into dst, which must
// be exactly the expected decompressed length. It performs no allocation.
// On success it returns len(dst) and a nil error.
func Decompress(src, dst []byte) (int, error) {
	srcl := len(src)
	dstl := len(dst)

	if srcl == 0 {
		if dstl == 0 {
			return 0, nil
		}
		return 0, ErrParams
	}
	if dstl <= 0 {
		return 0, ErrParams
	}
	if src[0]&0xF0 != fmtCur<<4 {
		return 0, ErrUnkFmt
	}

	mref := int(src[0] & 0x0F)
	ip, op := 1, 0
	cv, csh := 0, 0

	// The mandatory litFin-byte tail of the stream's final literal block is
	// never itself the start of another block, so the loop stops trying to
	// parse one once litFin or fewer bytes remain. This is what lets the
	// short-input fast path pad its final block with trailing zero bytes
	// without those bytes ever being misread as a header.
	ipet := srcl - litFin

	for ip < ipet {
		bh := src[ip]
		ip++

		nibble := int(bh & 0x0F)
		typ := int(bh>>4) & 3
		top2 := int(bh >> 6)

		if typ == blkLiteral {
			cc := nibble
			if cc == 0 {
				if ip >= srcl {
					return 0, ErrSrcOOB
				}
				e1 := int(src[ip])
				ip++
				if e1 != 255 {
					cc = 16 + e1
				} else {
					if ip >= srcl {
						return 0, ErrSrcOOB
					}
					e2 := int(src[ip])
					ip++
					cc = 16 + 255 + e2
				}
			}

			if ip+cc > srcl {
				return 0, ErrSrcOOB
			}
			if op+cc > dstl {
				return 0, ErrDstOOB
			}

			copy(dst[op:op+cc], src[ip:ip+cc])
			ip += cc
			op += cc
			cv, csh = top2, 2
			continue
		}

		var d, cc int

		switch typ {
		case blkRef10, blkRef18:
			nb := 1
			if typ == blkRef18 {
				nb = 2
			}
			if ip+nb > srcl {
				return 0, ErrSrcOOB
			}

			x := top2
			for i := 0; i < nb; i++ {
				x |= int(src[ip+i]) << (2 + 8*i)
			}
			ip += nb

			rc := nibble
			if rc == 0 {
				if ip >= srcl {
					return 0, ErrSrcOOB
				}
				rc = 15 + mref + int(src[ip])
				ip++
			} else {
				rc = rc - 1 + mref
			}

			d = x<<csh | cv
			cv, csh = 0, 0
			cc = rc

		default: // blkRef24
			if ip+3 > srcl {
				return 0, ErrSrcOOB
			}
			x := int(src[ip]) | int(src[ip+1])<<8 | int(src[ip+2])<<16
			ip += 3

			rc := nibble
			if rc == 0 {
				if ip >= srcl {
					return 0, ErrSrcOOB
				}
				rc = 15 + mref + int(src[ip])
				ip++
			} else {
				rc = rc - 1 + mref
			}

			d = x<<csh | cv
			cv, csh = top2, 2
			cc = rc
		}

		if d <= 0 || d > op {
			return 0, ErrRefOOB
		}
		if op+cc > dstl {
			return 0, ErrDstOOB
		}

		referenceCopy(dst, op, d, cc)
		op += cc
	}

	if op != dstl {
		return 0, ErrDstLen
	}

	return op, nil
}

// DecompressBytes allocates a destination of length dstLen and decodes
// src into it, returning the allocated slice.
func DecompressBytes(src []byte, dstLen int) ([]byte, error) {
	if dstLen < 0 {
		return nil, ErrParams
	}

	dst := make([]byte, dstLen)
	n, err := Decompress(src, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// DecompressFromReader reads the full compressed stream from r and decodes
// it into a buffer of length dstLen. It performs no decoding logic of its
// own, matching the reader convenience the teacher repo provides.
func DecompressFromReader(r io.Reader, dstLen int) ([]byte, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return DecompressBytes(src, dstLen)
}
