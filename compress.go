// SPDX-License-Identifier: MIT
// Source: github.com/avaneev/lzav-go

package lzav

// CompressBound returns the worst-case compressed size for a source of
// length srcl. A destination at least this large guarantees Compress
// never fails for want of space.
func CompressBound(srcl int) int {
	if srcl <= 0 {
		return 8
	}
	return srcl + srcl*3/litLen + 8
}

// CompressDefault compresses src into dst without caller-supplied scratch
// memory, allocating fingerprint-table storage on the heap if the input is
// too large for the on-stack scratch area.
func CompressDefault(src, dst []byte) int {
	return Compress(src, dst, nil)
}

// Compress performs single-pass greedy LZ77 compression of src into dst.
// A fingerprint table that fits the on-stack scratch area is placed there.
// A larger one uses extBuf, if non-nil, provided its length is a power of
// two and large enough; otherwise a heap allocation is made. Returns the number of bytes
// written to dst, or 0 if src is empty or dst is too small.
func Compress(src, dst, extBuf []byte) int {
	srcl := len(src)
	if srcl <= 0 || len(dst) < CompressBound(srcl) {
		return 0
	}

	if srcl <= litFin {
		dst[0] = fmtCur<<4 | refMin
		dst[1] = byte(srcl)
		for i := 0; i < litFin; i++ {
			dst[2+i] = 0
		}
		copy(dst[2:2+srcl], src)
		return 2 + litFin
	}

	var stack [stackTableBytes]byte
	table := newFingerprintTable(acquireTable(srcl, stack[:], extBuf), src)

	dst[0] = fmtCur<<4 | refMin
	op := 1

	ip := refMin
	ipe := srcl - litFin
	ipet := ipe - (refMin - 1)
	ipa := 0
	cbp := -1
	mavg := 100 << 22
	rndb := 0

	for ip < ipet {
		w := loadWord(src, ip)
		h2 := loadHalf(src, ip+4)
		hash := fingerprintHash(w, h2)

		key0, pos0, key1, pos1 := table.candidates(hash)

		wpo := -1
		if key0 == w && verifyPrefix(src, ip, int(pos0)) {
			wpo = int(pos0)
		} else if key1 == w && verifyPrefix(src, ip, int(pos1)) {
			wpo = int(pos1)
		}

		matched := false
		tooClose := false

		if wpo >= 0 {
			d := ip - wpo
			if d <= 7 {
				// A real candidate exists but sits inside the minimum
				// safe offset; this isn't a table miss, so it must not
				// feed the match-rate average below.
				tooClose = true
			} else if d < winLen {
				if d > refLen {
					table.insert(hash, w, uint32(ip))
				}

				ml := d
				if ml > refLen {
					ml = refLen
				}
				if ip+ml > ipe {
					ml = ipe - ip
				}

				lc := ip - ipa
				rc := 0

				if lc != 0 && lc < refMin && lc < wpo && src[ip-lc] == src[wpo-lc] {
					rc2 := 1 + matchLen(src[ip-lc+1:], src[wpo-lc+1:], ml-1)
					if rc2 >= refMin {
						rc = rc2
						ip -= lc
						lc = 0
					}
				}

				if rc == 0 {
					rc = refMin + matchLen(src[ip+refMin:], src[wpo+refMin:], ml-refMin)
				}

				op = writeBlock(dst, op, lc, rc, d, src[ipa:], &cbp, refMin)

				ip += rc
				ipa = ip
				mavg += ((rc << 22) - mavg) >> 10
				matched = true
			}
		}

		if matched {
			continue
		}

		if tooClose {
			ip++
			continue
		}

		mavg -= mavg >> 11

		if mavg < 200<<15 && ip != ipa {
			io := ip
			step := 2 + rndb
			if mavg < 130<<15 {
				step++
			}
			if mavg < 100<<15 {
				step += 100 - (mavg >> 15)
			}
			table.insert(hash, w, uint32(io))
			ip += step
			rndb = io & 1
			continue
		}

		table.insert(hash, w, uint32(ip))
		ip++
	}

	return writeFin(dst, op, ipe-ipa+litFin, src[ipa:])
}
