// SPDX-License-Identifier: MIT
// Source: github.com/avaneev/lzav-go (derived from the LZAV C reference)

package lzav

// Stream format and block-length limits, named after the LZAV glossary.
const (
	fmtCur = 1                  // current stream format identifier, stored in the prefix byte's high nibble
	refMin = 6                  // mref: minimum reference length, in bytes
	winLen = 1 << 24             // WIN_LEN: sliding-window size, in bytes
	litLen = 1 + 15 + 255 + 255  // LIT_LEN: max single literal-block length (526)
	litFin = 5                  // LIT_FIN: literals mandatory at stream end
	refLen = refMin + 15 + 255  // REF_LEN: max reference length (276)
)

// Block types, placed in header bits 4-5. The header's high two bits
// (6-7) are either a carry payload or this block's own low offset bits;
// the low nibble (bits 0-3) is the block's length field.
const (
	blkLiteral = 0
	blkRef10   = 1
	blkRef18   = 2
	blkRef24   = 3
)

// Fingerprint table sizing for the 2-way open-addressed design: 16 bytes
// per slot (two 4-byte keys, two 4-byte positions), slot count a power of
// two in [256, 65536].
const (
	minTableSlots   = 256
	maxTableSlots   = 1 << 16
	slotBytes       = 16
	stackTableBytes = 16 * 1024 // on-stack scratch ceiling
)
