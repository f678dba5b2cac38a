// SPDX-License-Identifier: MIT
// Source: github.com/avaneev/lzav-go

package lzav

import "encoding/binary"

// loadWord reads the little-endian 32-bit word at src[pos:pos+4]. The
// caller guarantees pos+4 <= len(src).
func loadWord(src []byte, pos int) uint32 {
	return binary.LittleEndian.Uint32(src[pos:])
}

// loadHalf reads the little-endian 16-bit half-word at src[pos:pos+2].
func loadHalf(src []byte, pos int) uint16 {
	return binary.LittleEndian.Uint16(src[pos:])
}

// fingerprintHash folds a 4-byte word and a 2-byte extension into a 32-bit
// fingerprint used only to select a table slot; it is not cryptographic.
// Built from the same multiply-xor-fold construct as komihash, see
// https://github.com/avaneev/komihash.
func fingerprintHash(w uint32, h2 uint16) uint32 {
	seed1 := uint64(0x243F6A88 ^ w)
	m := seed1 * uint64(0x85A308D3^uint32(h2))
	return uint32(m) ^ uint32(m>>32)
}
