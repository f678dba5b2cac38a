// SPDX-License-Identifier: MIT
// Source: github.com/avaneev/lzav-go

package lzav

import "github.com/cespare/xxhash/v2"

// ChecksumUncompressed returns the xxh64 digest of data. It is a caller-side
// convenience for verifying the integrity of the uncompressed payload before
// compression or after decompression; Compress and Decompress never compute
// or check it themselves.
func ChecksumUncompressed(data []byte) uint64 {
	return xxhash.Sum64(data)
}
