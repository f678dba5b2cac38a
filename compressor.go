// SPDX-License-Identifier: MIT
// Source: github.com/avaneev/lzav-go

package lzav

// Compressor is implemented by both LZAV and, for comparison in tests and
// benchmarks, a thin adapter over an LZ4 block codec.
type Compressor interface {
	Compress(src []byte) ([]byte, error)
	Decompress(src []byte, dstLen int) ([]byte, error)
}

// LZAV is the default Compressor, backed by this package's Compress and
// Decompress.
type LZAV struct{}

func (LZAV) Compress(src []byte) ([]byte, error) {
	return CompressBytes(src, nil)
}

func (LZAV) Decompress(src []byte, dstLen int) ([]byte, error) {
	return DecompressBytes(src, dstLen)
}
