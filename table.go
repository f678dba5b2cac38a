// SPDX-License-Identifier: MIT
// Source: github.com/avaneev/lzav-go

package lzav

import "encoding/binary"

// fingerprintTable is the 2-way, open-addressed map used by the
// compressor: each 16-byte slot holds two (key, pos) tuples, where key is
// the 4-byte word observed at a previous scan position pos. It is a flat
// byte buffer indexed by a hash-derived mask rather than a language-level
// map, so a slot lookup costs a handful of loads and compares.
type fingerprintTable struct {
	buf  []byte
	mask uint32
}

func isPow2(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// tableSize returns the byte size of the fingerprint table for a source of
// length srcl: the smallest power-of-two slot count with slots*slotBytes
// at least srcl*4, clamped to [minTableSlots, maxTableSlots].
func tableSize(srcl int) int {
	slots := minTableSlots
	for slots < maxTableSlots && slots*slotBytes < srcl*4 {
		slots <<= 1
	}
	return slots * slotBytes
}

// acquireTable picks the table's backing storage following the scratch
// precedence: an on-stack array first, then caller-supplied scratch (if
// large enough and power-of-two sized), then the heap.
func acquireTable(srcl int, stack, extBuf []byte) []byte {
	size := tableSize(srcl)

	switch {
	case size <= len(stack):
		return stack[:size]
	case extBuf != nil && isPow2(len(extBuf)) && len(extBuf) >= size:
		return extBuf[:size]
	default:
		return make([]byte, size)
	}
}

// newFingerprintTable initializes every slot's two tuples to the sentinel
// (first4(src), refMin): a position that can never underrun a lookback,
// paired with a key unlikely to collide with a live scan key.
func newFingerprintTable(buf, src []byte) *fingerprintTable {
	var key uint32
	if len(src) >= 4 {
		key = binary.LittleEndian.Uint32(src)
	}
	pos := uint32(refMin)

	for off := 0; off < len(buf); off += slotBytes {
		binary.LittleEndian.PutUint32(buf[off:], key)
		binary.LittleEndian.PutUint32(buf[off+4:], pos)
		binary.LittleEndian.PutUint32(buf[off+8:], key)
		binary.LittleEndian.PutUint32(buf[off+12:], pos)
	}

	return &fingerprintTable{
		buf:  buf,
		mask: uint32(len(buf) - slotBytes),
	}
}

// candidates returns the two stored (key, pos) tuples for the slot hash
// selects, without verifying either against the caller's own key.
func (t *fingerprintTable) candidates(hash uint32) (key0, pos0, key1, pos1 uint32) {
	off := hash & t.mask
	key0 = binary.LittleEndian.Uint32(t.buf[off:])
	pos0 = binary.LittleEndian.Uint32(t.buf[off+4:])
	key1 = binary.LittleEndian.Uint32(t.buf[off+8:])
	pos1 = binary.LittleEndian.Uint32(t.buf[off+12:])
	return
}

// insert records that key was observed at pos. If key already occupies
// either tuple, that tuple's position is refreshed in place. Otherwise the
// slot's current tuple 0 is demoted into tuple 1 (preserving it as a
// one-generation victim cache) and the new (key, pos) takes tuple 0.
func (t *fingerprintTable) insert(hash, key, pos uint32) {
	off := hash & t.mask

	key0 := binary.LittleEndian.Uint32(t.buf[off:])
	if key0 == key {
		binary.LittleEndian.PutUint32(t.buf[off+4:], pos)
		return
	}

	pos0 := binary.LittleEndian.Uint32(t.buf[off+4:])
	key1 := binary.LittleEndian.Uint32(t.buf[off+8:])
	if key1 == key {
		binary.LittleEndian.PutUint32(t.buf[off+12:], pos)
		return
	}

	binary.LittleEndian.PutUint32(t.buf[off+8:], key0)
	binary.LittleEndian.PutUint32(t.buf[off+12:], pos0)
	binary.LittleEndian.PutUint32(t.buf[off:], key)
	binary.LittleEndian.PutUint32(t.buf[off+4:], pos)
}
